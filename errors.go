package slam

import "errors"

// Sentinel errors for the construction and per-update argument failures
// described in the package's error handling design. Callers can match them
// with errors.Is rather than string comparison.
var (
	// ErrScanSizeMismatch is returned when a scan or angle-override slice
	// does not have exactly Sensor.ScanSize entries.
	ErrScanSizeMismatch = errors.New("slam: scan length does not match sensor scan size")

	// ErrMapBufferSize is returned by Map.Get/Map.Set when the supplied
	// buffer length does not equal SizePixels*SizePixels.
	ErrMapBufferSize = errors.New("slam: map buffer length does not match map size squared")

	// ErrInvalidSensorSpec is returned by NewSensor when the geometry is
	// not physically meaningful (non-positive scan size, angle, or range).
	ErrInvalidSensorSpec = errors.New("slam: invalid sensor spec")

	// ErrInvalidMapSize is returned by NewMap when the requested grid
	// dimensions are not positive.
	ErrInvalidMapSize = errors.New("slam: invalid map size")
)
