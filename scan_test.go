package slam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSensor(t *testing.T) *Sensor {
	t.Helper()
	s, err := NewSensor(4, 5.5, 180, 4000, 0, 0)
	require.NoError(t, err)
	return s
}

func TestScanUpdate_LengthMismatchIsError(t *testing.T) {
	t.Parallel()

	s := NewScan(testSensor(t), 1)
	err := s.Update([]float64{1, 2, 3}, 200, 0, 0, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrScanSizeMismatch))
}

func TestScanUpdate_RejectsZeroAndMaxRange(t *testing.T) {
	t.Parallel()

	sensor := testSensor(t)
	s := NewScan(sensor, 1)
	err := s.Update([]float64{0, 4000, 1000, -5}, 200, 0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
}

func TestScanUpdate_AllValidBeams(t *testing.T) {
	t.Parallel()

	sensor := testSensor(t)
	s := NewScan(sensor, 1)
	err := s.Update([]float64{1000, 1000, 1000, 1000}, 200, 0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())
}

func TestScanUpdate_DetectionMarginExcludesOuterBeams(t *testing.T) {
	t.Parallel()

	sensor, err := NewSensor(6, 5.5, 180, 4000, 1, 0)
	require.NoError(t, err)
	s := NewScan(sensor, 1)

	err = s.Update([]float64{1000, 1000, 1000, 1000, 1000, 1000}, 200, 0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 4, s.Len()) // 6 beams minus 1 margin each side
}

func TestScanUpdate_StrideThreeTriplesValidPoints(t *testing.T) {
	t.Parallel()

	sensor := testSensor(t)
	s := NewScan(sensor, 3)
	err := s.Update([]float64{1000, 1000, 1000, 1000}, 200, 0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 12, s.Len())
}

func TestScanUpdate_AngleOverrideLengthMismatch(t *testing.T) {
	t.Parallel()

	sensor := testSensor(t)
	s := NewScan(sensor, 1)
	err := s.Update([]float64{1000, 1000, 1000, 1000}, 200, 0, 0, []float64{0, 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrScanSizeMismatch))
}

func TestScanUpdate_EmptyScanYieldsZeroValidPoints(t *testing.T) {
	t.Parallel()

	sensor := testSensor(t)
	s := NewScan(sensor, 1)
	err := s.Update([]float64{0, 0, 0, 0}, 200, 0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
}
