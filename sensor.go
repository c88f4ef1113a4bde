package slam

import "fmt"

// Sensor is the static geometry of a scanning laser rangefinder (LIDAR).
// It is immutable once constructed and shared read-only by Scan, the
// distance function, and the orchestrator.
type Sensor struct {
	ScanSize          int     // beams per revolution
	ScanRateHz        float64 // revolutions per second
	DetectionAngleDeg float64 // total angular span, centered on the forward axis
	MaxRangeMM        float64 // readings at or beyond this are "no detection"
	DetectionMargin   int     // outermost beams on each side to ignore
	OffsetMM          float64 // forward mount offset from the robot's pose origin
}

// NewSensor validates and constructs a Sensor. scanSize must be at least 1,
// detectionAngleDeg and maxRangeMM must be positive, and detectionMargin
// must be non-negative and leave at least one beam between the two masked
// margins (2*detectionMargin < scanSize).
func NewSensor(scanSize int, scanRateHz, detectionAngleDeg, maxRangeMM float64, detectionMargin int, offsetMM float64) (*Sensor, error) {
	if scanSize < 1 {
		return nil, fmt.Errorf("%w: scan_size must be >= 1, got %d", ErrInvalidSensorSpec, scanSize)
	}
	if detectionAngleDeg <= 0 {
		return nil, fmt.Errorf("%w: detection_angle_deg must be positive, got %f", ErrInvalidSensorSpec, detectionAngleDeg)
	}
	if maxRangeMM <= 0 {
		return nil, fmt.Errorf("%w: max_range_mm must be positive, got %f", ErrInvalidSensorSpec, maxRangeMM)
	}
	if detectionMargin < 0 || 2*detectionMargin >= scanSize {
		return nil, fmt.Errorf("%w: detection_margin %d leaves no beams for scan_size %d", ErrInvalidSensorSpec, detectionMargin, scanSize)
	}
	return &Sensor{
		ScanSize:          scanSize,
		ScanRateHz:        scanRateHz,
		DetectionAngleDeg: detectionAngleDeg,
		MaxRangeMM:        maxRangeMM,
		DetectionMargin:   detectionMargin,
		OffsetMM:          offsetMM,
	}, nil
}

// BeamAngleDeg returns the geometric angle, in degrees, of beam i when no
// per-beam angle override is supplied: beams are spaced evenly across
// DetectionAngleDeg, centered on the forward axis.
func (s *Sensor) BeamAngleDeg(i int) float64 {
	if s.ScanSize == 1 {
		return 0
	}
	return -s.DetectionAngleDeg/2 + s.DetectionAngleDeg*float64(i)/float64(s.ScanSize-1)
}

// String renders the sensor spec for logs and debugging.
func (s *Sensor) String() string {
	return fmt.Sprintf(
		"Sensor(scan_size=%d scan_rate=%.3fhz detection_angle=%.3fdeg max_range=%.1fmm detection_margin=%d offset=%.1fmm)",
		s.ScanSize, s.ScanRateHz, s.DetectionAngleDeg, s.MaxRangeMM, s.DetectionMargin, s.OffsetMM,
	)
}

// NewURG04LX constructs the Sensor spec for the Hokuyo URG-04LX, one of the
// LIDAR units the BreezySLAM project this package descends from was
// originally validated against.
func NewURG04LX(detectionMargin int, offsetMM float64) (*Sensor, error) {
	return NewSensor(682, 10, 240, 4000, detectionMargin, offsetMM)
}

// NewXVLidar constructs the Sensor spec for the GetSurreal XVLidar.
func NewXVLidar(detectionMargin int, offsetMM float64) (*Sensor, error) {
	return NewSensor(360, 5.5, 360, 6000, detectionMargin, offsetMM)
}

// NewRPLidarA1 constructs the Sensor spec for the SLAMTEC RPLidar A1.
func NewRPLidarA1(detectionMargin int, offsetMM float64) (*Sensor, error) {
	return NewSensor(360, 5.5, 360, 12000, detectionMargin, offsetMM)
}
