package slam

import (
	"fmt"
	"math"
)

// Scan holds one revolution's worth of LIDAR returns, preprocessed into a
// robot-frame obstacle point set. It is rebuilt in place on every Update
// call rather than reallocated, since update() sits in the per-scan hot
// path.
//
// Stride controls how many parallel rays each valid beam contributes: 1 for
// the distance-evaluation scan used by the searcher, 3 for the map
// integration scan, which paints a slightly thicker trace so walls remain
// visible under the map's lossy EMA blending.
type Scan struct {
	sensor *Sensor
	stride int

	// Parallel slices, one slot per (beam, stride-offset) pair, sized
	// sensor.ScanSize*stride and reused across calls. Valid holds the
	// number of populated entries after the most recent Update.
	xMM         []float64
	yMM         []float64
	valid       int
	holeWidthMM float64
}

// NewScan constructs a Scan bound to the given sensor with the given ray
// stride (rays contributed per valid beam).
func NewScan(sensor *Sensor, stride int) *Scan {
	if stride < 1 {
		stride = 1
	}
	n := sensor.ScanSize * stride
	return &Scan{
		sensor: sensor,
		stride: stride,
		xMM:    make([]float64, n),
		yMM:    make([]float64, n),
	}
}

// Len returns the number of valid obstacle points from the most recent
// Update.
func (s *Scan) Len() int { return s.valid }

// Point returns the i'th valid obstacle endpoint, in robot-frame
// millimeters.
func (s *Scan) Point(i int) (x, y float64) {
	return s.xMM[i], s.yMM[i]
}

// HoleWidthMM returns the hole width passed to the most recent Update.
// Map.Update takes its hole width as a separate argument and does not read
// this value.
func (s *Scan) HoleWidthMM() float64 { return s.holeWidthMM }

// Update rebuilds the scan from raw per-beam distances. velocityXYMMS and
// velocityThetaDegS are the linear and angular velocity estimates for this
// revolution (zero if unknown); scanAnglesDeg, if non-nil, overrides the
// sensor's uniform geometric beam spacing and must have length
// sensor.ScanSize.
func (s *Scan) Update(scansMM []float64, holeWidthMM float64, velocityXYMMS, velocityThetaDegS float64, scanAnglesDeg []float64) error {
	if len(scansMM) != s.sensor.ScanSize {
		return fmt.Errorf("%w: got %d, want %d", ErrScanSizeMismatch, len(scansMM), s.sensor.ScanSize)
	}
	if scanAnglesDeg != nil && len(scanAnglesDeg) != s.sensor.ScanSize {
		return fmt.Errorf("%w: scan_angles_deg got %d, want %d", ErrScanSizeMismatch, len(scanAnglesDeg), s.sensor.ScanSize)
	}

	s.holeWidthMM = holeWidthMM
	sensor := s.sensor
	n := 0

	margin := sensor.DetectionMargin
	for i := margin; i < sensor.ScanSize-margin; i++ {
		d := scansMM[i]
		if d <= 0 || d >= sensor.MaxRangeMM {
			continue
		}

		// Fractional phase of this beam within the revolution, used to
		// distribute the scan's net velocity across beams as if the
		// sensor were sweeping continuously rather than sampling
		// instantaneously.
		f := float64(i) / float64(sensor.ScanSize)

		angleDeg := sensor.BeamAngleDeg(i)
		if scanAnglesDeg != nil {
			angleDeg = scanAnglesDeg[i]
		}
		angleDeg += velocityThetaDegS * f / sensor.ScanRateHz
		alpha := angleDeg * math.Pi / 180

		// Motion-compensate the range along the beam's own axis; the
		// perpendicular component is left untouched, matching the
		// asymmetry of the source algorithm this preprocessing is
		// ported from.
		dPrime := d + velocityXYMMS*f/sensor.ScanRateHz*math.Cos(alpha)

		x := dPrime * math.Cos(alpha)
		y := dPrime * math.Sin(alpha)

		for r := 0; r < s.stride; r++ {
			// Lateral offset spreads the build scan's extra rays either
			// side of the measured beam so a single revolution paints a
			// band of cells rather than a single-pixel line.
			lateral := float64(r-s.stride/2) * (holeWidthMM / 4)
			px := x - lateral*math.Sin(alpha)
			py := y + lateral*math.Cos(alpha)
			s.xMM[n] = px
			s.yMM[n] = py
			n++
		}
	}

	s.valid = n
	return nil
}
