// Package config provides a JSON-serializable tuning configuration for a
// slamcore engine, in the style of this codebase's other tuning configs
// (see internal/config.TuningConfig in the teacher repo this package was
// adapted from): an embedder can load map and search parameters from a
// file without slamcore's core engine ever touching the filesystem
// itself.
package config

import (
	"encoding/json"
	"fmt"
)

// Config holds the tunable parameters of a slamcore engine: map geometry,
// map integration rate, and (for RMHC instances) search hyperparameters.
// All fields are JSON-tagged so a Config can round-trip through a file or
// an HTTP request body; the zero value is not valid on its own — call
// Default or Validate.
type Config struct {
	MapSizePixels int     `json:"map_size_pixels"`
	MapSizeMeters float64 `json:"map_size_meters"`
	MapQuality    int     `json:"map_quality"`
	HoleWidthMM   float64 `json:"hole_width_mm"`
	SigmaXYMM     float64 `json:"sigma_xy_mm"`
	SigmaThetaDeg float64 `json:"sigma_theta_deg"`
	MaxSearchIter int     `json:"max_search_iter"`
	RandomSeed    uint32  `json:"random_seed"`
}

// Default returns a Config with every field set to the documented default:
// an 800-pixel map covering 32 meters, map_quality 50, hole_width_mm 600,
// sigma_xy_mm 100, sigma_theta_deg 20, max_search_iter 1000, and
// random_seed 0 (the engine substitutes a clock-derived seed when this is
// left at zero).
func Default() Config {
	return Config{
		MapSizePixels: 800,
		MapSizeMeters: 32,
		MapQuality:    50,
		HoleWidthMM:   600,
		SigmaXYMM:     100,
		SigmaThetaDeg: 20,
		MaxSearchIter: 1000,
	}
}

// WithMapSize returns a copy of c with the map geometry replaced.
func (c Config) WithMapSize(sizePixels int, sizeMeters float64) Config {
	c.MapSizePixels = sizePixels
	c.MapSizeMeters = sizeMeters
	return c
}

// WithMapQuality returns a copy of c with MapQuality replaced.
func (c Config) WithMapQuality(quality int) Config {
	c.MapQuality = quality
	return c
}

// WithHoleWidthMM returns a copy of c with HoleWidthMM replaced.
func (c Config) WithHoleWidthMM(holeWidthMM float64) Config {
	c.HoleWidthMM = holeWidthMM
	return c
}

// WithSigma returns a copy of c with both RMHC mutation sigmas replaced.
func (c Config) WithSigma(sigmaXYMM, sigmaThetaDeg float64) Config {
	c.SigmaXYMM = sigmaXYMM
	c.SigmaThetaDeg = sigmaThetaDeg
	return c
}

// WithMaxSearchIter returns a copy of c with MaxSearchIter replaced.
func (c Config) WithMaxSearchIter(maxIter int) Config {
	c.MaxSearchIter = maxIter
	return c
}

// WithRandomSeed returns a copy of c with RandomSeed replaced.
func (c Config) WithRandomSeed(seed uint32) Config {
	c.RandomSeed = seed
	return c
}

// Validate reports whether c's values are physically meaningful. It does
// not mutate c; callers that want defaults filled in for zero fields
// should start from Default and apply With* builders instead.
func (c Config) Validate() error {
	if c.MapSizePixels <= 0 {
		return fmt.Errorf("config: map_size_pixels must be positive, got %d", c.MapSizePixels)
	}
	if c.MapSizeMeters <= 0 {
		return fmt.Errorf("config: map_size_meters must be positive, got %f", c.MapSizeMeters)
	}
	if c.MapQuality < 0 || c.MapQuality > 255 {
		return fmt.Errorf("config: map_quality must be in [0,255], got %d", c.MapQuality)
	}
	if c.HoleWidthMM <= 0 {
		return fmt.Errorf("config: hole_width_mm must be positive, got %f", c.HoleWidthMM)
	}
	if c.SigmaXYMM < 0 {
		return fmt.Errorf("config: sigma_xy_mm must be non-negative, got %f", c.SigmaXYMM)
	}
	if c.SigmaThetaDeg < 0 {
		return fmt.Errorf("config: sigma_theta_deg must be non-negative, got %f", c.SigmaThetaDeg)
	}
	if c.MaxSearchIter < 0 {
		return fmt.Errorf("config: max_search_iter must be non-negative, got %d", c.MaxSearchIter)
	}
	return nil
}

// LoadJSON parses a Config from JSON bytes, starting from Default so that
// any field the document omits keeps its documented default rather than
// becoming zero.
func LoadJSON(data []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MarshalJSON is the natural encoding/json round-trip; defined explicitly
// only to document that Config is safe to serialize directly (no pointer
// fields, no private state).
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	return json.Marshal(alias(c))
}
