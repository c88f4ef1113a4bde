package slam

import (
	"fmt"
	"time"
)

// PoseSearch is the strategy the orchestrator uses to turn a seed pose into
// an accepted pose for the current scan. Deterministic SLAM's strategy
// just returns the seed; RMHC SLAM's strategy runs RMHCPositionSearch. This
// replaces the source project's small class hierarchy (an abstract base
// with a deterministic and a stochastic subclass) with a single
// orchestrator parameterized by a function value — no other runtime
// polymorphism is needed.
type PoseSearch func(seed Pose, m *Map, distanceScan *Scan) Pose

// Config groups the orchestrator's constructor-time hyperparameters. Most
// fields left at their zero value are replaced by their documented
// defaults in New; MapQuality is the one exception, since 0 is itself a
// meaningful value (map integration becomes a no-op, used by the
// identity-odometry idempotence property) rather than "unset" — callers
// that want the documented default of 50 must say so explicitly, e.g. via
// config.Default().
type Config struct {
	MapSizePixels int
	MapSizeMeters float64
	MapQuality    int     // 0-255, integration rate; 0 means "never integrate"
	HoleWidthMM   float64 // default 600
	SigmaXYMM     float64 // default 100, RMHC only
	SigmaThetaDeg float64 // default 20, RMHC only
	MaxSearchIter int     // default 1000, RMHC only
	RandomSeed    uint32  // default: low 16 bits of wall clock, RMHC only
}

func (c Config) withDefaults() Config {
	if c.HoleWidthMM == 0 {
		c.HoleWidthMM = 600
	}
	if c.SigmaXYMM == 0 {
		c.SigmaXYMM = 100
	}
	if c.SigmaThetaDeg == 0 {
		c.SigmaThetaDeg = 20
	}
	if c.MaxSearchIter == 0 {
		c.MaxSearchIter = 1000
	}
	if c.RandomSeed == 0 {
		c.RandomSeed = uint32(time.Now().UnixNano() & 0xffff)
	}
	return c
}

// SLAM is the orchestrator: it owns the pose, the map, the two scan
// buffers, the sensor spec, and (for RMHC variants) the PRNG, and drives
// one full preprocess -> search -> integrate cycle per Update call.
type SLAM struct {
	sensor *Sensor
	m      *Map
	cfg    Config
	search PoseSearch

	distanceScan *Scan // stride 1, used only for scoring candidate poses
	buildScan    *Scan // stride 3, used only for map integration

	pose Pose
}

// New constructs a Deterministic-variant SLAM instance: update() trusts
// odometry alone and never runs a pose search.
func New(sensor *Sensor, cfg Config) (*SLAM, error) {
	return newSLAM(sensor, cfg, func(seed Pose, m *Map, distanceScan *Scan) Pose {
		return seed
	})
}

// NewRMHC constructs an RMHC-variant SLAM instance: update() refines the
// odometry-derived seed pose with RMHCPositionSearch before accepting it.
func NewRMHC(sensor *Sensor, cfg Config) (*SLAM, error) {
	cfg = cfg.withDefaults()
	prng := NewPRNG(cfg.RandomSeed)
	return newSLAM(sensor, cfg, func(seed Pose, m *Map, distanceScan *Scan) Pose {
		return RMHCPositionSearch(seed, m, distanceScan, cfg.SigmaXYMM, cfg.SigmaThetaDeg, cfg.MaxSearchIter, prng)
	})
}

func newSLAM(sensor *Sensor, cfg Config, search PoseSearch) (*SLAM, error) {
	cfg = cfg.withDefaults()
	m, err := NewMap(cfg.MapSizePixels, cfg.MapSizeMeters)
	if err != nil {
		return nil, err
	}

	// Initial pose is the center of the map, in millimeters (500 mm per
	// half-meter, i.e. M*1000/2 expressed as M*500).
	initial := Pose{
		XMM:      cfg.MapSizeMeters * 500,
		YMM:      cfg.MapSizeMeters * 500,
		ThetaDeg: 0,
	}

	return &SLAM{
		sensor:       sensor,
		m:            m,
		cfg:          cfg,
		search:       search,
		distanceScan: NewScan(sensor, 1),
		buildScan:    NewScan(sensor, 3),
		pose:         initial,
	}, nil
}

// UpdateOptions carries the optional arguments to Update beyond the raw
// scan itself. Use NewUpdateOptions to get one with ShouldUpdateMap
// defaulted to true, matching the ported algorithm's default; the zero
// value of UpdateOptions has ShouldUpdateMap false, since Go has no
// argument-defaulting and a bare struct literal must be honest about what
// it contains.
type UpdateOptions struct {
	PoseChange      PoseChange
	ScanAnglesDeg   []float64
	ShouldUpdateMap bool
}

// NewUpdateOptions returns UpdateOptions with ShouldUpdateMap set to true,
// the ported algorithm's default.
func NewUpdateOptions(poseChange PoseChange) UpdateOptions {
	return UpdateOptions{PoseChange: poseChange, ShouldUpdateMap: true}
}

// Update feeds one revolution's worth of raw scan distances (millimeters,
// length sensor.ScanSize) through the full preprocess -> search ->
// integrate cycle, advancing the pose and, unless suppressed, the map.
//
// should_update_map defaults to true in the ported algorithm, which is
// what this method always does; callers that need to suppress map
// integration for a scan (e.g. pure localization against a previously
// built map) use UpdateWithOptions instead.
func (s *SLAM) Update(scansMM []float64, poseChange PoseChange) error {
	return s.update(scansMM, poseChange, nil, true)
}

// UpdateWithOptions is the fully general form of Update, accepting a
// per-beam angle override and explicit control over whether this scan's
// build trace is integrated into the map.
func (s *SLAM) UpdateWithOptions(scansMM []float64, opts UpdateOptions) error {
	return s.update(scansMM, opts.PoseChange, opts.ScanAnglesDeg, opts.ShouldUpdateMap)
}

func (s *SLAM) update(scansMM []float64, poseChange PoseChange, scanAnglesDeg []float64, shouldUpdateMap bool) error {
	var vXY, vTheta float64
	if poseChange.DtS > 0 {
		vXY = poseChange.DXYMM / poseChange.DtS
		vTheta = poseChange.DThetaDeg / poseChange.DtS
	}

	if err := s.distanceScan.Update(scansMM, s.cfg.HoleWidthMM, vXY, vTheta, scanAnglesDeg); err != nil {
		return err
	}
	if err := s.buildScan.Update(scansMM, s.cfg.HoleWidthMM, vXY, vTheta, scanAnglesDeg); err != nil {
		return err
	}

	// Seed pose: advance the current pose by the commanded motion, then
	// offset forward by the sensor's mount distance so the search starts
	// from where the LIDAR itself is estimated to be, not the robot's
	// reference origin. Both the dxy advance and the mount-offset addition
	// use the OLD (pre-search) heading: the source only reassigns
	// position.theta_degrees after the search returns, so both steps read
	// the same cos/sin there. Using the already-rotated seed heading for
	// the offset would silently double-count part of dtheta's rotation
	// into the offset term.
	cosOld, sinOld := s.pose.CosTheta(), s.pose.SinTheta()
	seed := Pose{
		XMM:      s.pose.XMM + poseChange.DXYMM*cosOld,
		YMM:      s.pose.YMM + poseChange.DXYMM*sinOld,
		ThetaDeg: s.pose.ThetaDeg + poseChange.DThetaDeg,
	}
	seed.XMM += s.sensor.OffsetMM * cosOld
	seed.YMM += s.sensor.OffsetMM * sinOld

	newPose := s.search(seed, s.m, s.distanceScan)

	if shouldUpdateMap {
		if s.buildScan.Len() == 0 {
			Logf("slam: degenerate scan, skipping map integration")
		} else {
			s.m.Update(s.buildScan, newPose, s.cfg.MapQuality, s.cfg.HoleWidthMM)
		}
	}

	// Back out the mount offset using the NEW pose's heading (not the old
	// one): the offset was applied in the searched pose's frame, so it
	// must be removed in that same frame to recover the robot origin.
	cosNew, sinNew := newPose.CosTheta(), newPose.SinTheta()
	s.pose = Pose{
		XMM:      newPose.XMM - s.sensor.OffsetMM*cosNew,
		YMM:      newPose.YMM - s.sensor.OffsetMM*sinNew,
		ThetaDeg: newPose.ThetaDeg,
	}

	return nil
}

// GetPose returns the current estimated pose.
func (s *SLAM) GetPose() Pose { return s.pose }

// GetMap copies the current map into out, which must have length
// MapSizePixels*MapSizePixels.
func (s *SLAM) GetMap(out []byte) error { return s.m.Get(out) }

// SetMap overwrites the current map from in, which must have length
// MapSizePixels*MapSizePixels. Used to resume from a persisted map or to
// seed localization-only operation against a prior map.
func (s *SLAM) SetMap(in []byte) error { return s.m.Set(in) }

// String renders the orchestrator's state for logs and debugging.
func (s *SLAM) String() string {
	return fmt.Sprintf("SLAM(pose=%s map=%dx%d@%.1fm)", s.pose, s.m.SizePixels, s.m.SizePixels, s.m.SizeMeters)
}
