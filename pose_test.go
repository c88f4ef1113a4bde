package slam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoseToWorld_IdentityAtOrigin(t *testing.T) {
	t.Parallel()

	p := Pose{XMM: 0, YMM: 0, ThetaDeg: 0}
	wx, wy := p.ToWorld(10, 20)
	require.InDelta(t, 10.0, wx, 1e-9)
	require.InDelta(t, 20.0, wy, 1e-9)
}

func TestPoseToWorld_TranslationOnly(t *testing.T) {
	t.Parallel()

	p := Pose{XMM: 100, YMM: -50, ThetaDeg: 0}
	wx, wy := p.ToWorld(10, 20)
	require.InDelta(t, 110.0, wx, 1e-9)
	require.InDelta(t, -30.0, wy, 1e-9)
}

func TestPoseToWorld_RotationQuarterTurn(t *testing.T) {
	t.Parallel()

	// A 90deg CCW rotation maps the robot-frame +x axis onto world +y.
	p := Pose{XMM: 0, YMM: 0, ThetaDeg: 90}
	wx, wy := p.ToWorld(10, 0)
	require.InDelta(t, 0.0, wx, 1e-6)
	require.InDelta(t, 10.0, wy, 1e-6)
}

func TestPoseCosSinTheta(t *testing.T) {
	t.Parallel()

	cases := []struct {
		thetaDeg float64
	}{
		{0}, {90}, {180}, {270}, {45}, {-45},
	}
	for _, c := range cases {
		p := Pose{ThetaDeg: c.thetaDeg}
		require.InDelta(t, math.Cos(c.thetaDeg*math.Pi/180), p.CosTheta(), 1e-9)
		require.InDelta(t, math.Sin(c.thetaDeg*math.Pi/180), p.SinTheta(), 1e-9)
	}
}

func TestPoseString(t *testing.T) {
	t.Parallel()

	p := Pose{XMM: 1, YMM: 2, ThetaDeg: 3}
	require.Contains(t, p.String(), "Pose(")
}
