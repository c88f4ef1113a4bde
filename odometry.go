package slam

import "math"

// WheeledOdometry converts raw differential-drive wheel encoder samples
// into pose changes. It is an independent collaborator: the orchestrator
// may hold one, but SLAM.Update always accepts an already-computed
// PoseChange rather than raw ticks, so an embedder is free to use a
// different odometry model entirely.
type WheeledOdometry struct {
	WheelRadiusMM float64
	HalfAxleMM    float64
	TicksPerCycle float64

	havePrev     bool
	prevTimeS    float64
	prevLeftDeg  float64
	prevRightDeg float64
}

// NewWheeledOdometry constructs an odometry model for a differential-drive
// robot with the given wheel radius, half axle length, and encoder
// resolution (ticks per full wheel revolution), all in millimeters where
// applicable.
func NewWheeledOdometry(wheelRadiusMM, halfAxleMM, ticksPerCycle float64) *WheeledOdometry {
	return &WheeledOdometry{
		WheelRadiusMM: wheelRadiusMM,
		HalfAxleMM:    halfAxleMM,
		TicksPerCycle: ticksPerCycle,
	}
}

// ComputePoseChange converts a raw encoder sample into a PoseChange. The
// timestamp is in microseconds since an arbitrary epoch consistent across
// calls. The first call after construction (or after Reset) has no prior
// sample to difference against, so it returns a zero PoseChange and simply
// records the sample.
func (o *WheeledOdometry) ComputePoseChange(timestampUS int64, leftTicks, rightTicks int64) PoseChange {
	leftDeg := float64(leftTicks) * 180 / o.TicksPerCycle
	rightDeg := float64(rightTicks) * 180 / o.TicksPerCycle
	timeS := float64(timestampUS) / 1e6

	if !o.havePrev {
		o.havePrev = true
		o.prevTimeS = timeS
		o.prevLeftDeg = leftDeg
		o.prevRightDeg = rightDeg
		return PoseChange{}
	}

	dLeftDeg := leftDeg - o.prevLeftDeg
	dRightDeg := rightDeg - o.prevRightDeg

	pc := PoseChange{
		DXYMM:     o.WheelRadiusMM * (radians(dLeftDeg) + radians(dRightDeg)),
		DThetaDeg: (o.WheelRadiusMM / o.HalfAxleMM) * (dRightDeg - dLeftDeg),
		DtS:       timeS - o.prevTimeS,
	}

	o.prevTimeS = timeS
	o.prevLeftDeg = leftDeg
	o.prevRightDeg = rightDeg

	return pc
}

// Reset discards the stored previous sample, so the next ComputePoseChange
// call behaves like the first one after construction.
func (o *WheeledOdometry) Reset() {
	o.havePrev = false
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
