package slam

import "github.com/coreslam/slamcore/config"

// configFrom adapts a config.Config (the JSON-serializable tuning
// document) into the orchestrator's own Config. It lives in the core
// package, not in package config, so that config stays free of any
// dependency on the engine's internal types and can be used purely as a
// data document by an embedder that never imports slamcore itself.
func configFrom(c config.Config) Config {
	return Config{
		MapSizePixels: c.MapSizePixels,
		MapSizeMeters: c.MapSizeMeters,
		MapQuality:    c.MapQuality,
		HoleWidthMM:   c.HoleWidthMM,
		SigmaXYMM:     c.SigmaXYMM,
		SigmaThetaDeg: c.SigmaThetaDeg,
		MaxSearchIter: c.MaxSearchIter,
		RandomSeed:    c.RandomSeed,
	}
}

// NewFromConfig constructs a Deterministic-variant SLAM instance from a
// config.Config document, validating it first.
func NewFromConfig(sensor *Sensor, c config.Config) (*SLAM, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(sensor, configFrom(c))
}

// NewRMHCFromConfig constructs an RMHC-variant SLAM instance from a
// config.Config document, validating it first.
func NewRMHCFromConfig(sensor *Sensor, c config.Config) (*SLAM, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewRMHC(sensor, configFrom(c))
}
