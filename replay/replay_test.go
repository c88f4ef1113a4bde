package replay

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreslam/slamcore"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	t.Parallel()

	recs := []Record{
		{TimestampUS: 1000, ScansMM: []float64{1000, 2000}, PoseChange: slam.PoseChange{DXYMM: 10, DtS: 1}},
		{TimestampUS: 2000, ScansMM: []float64{1500, 2500}, PoseChange: slam.PoseChange{DXYMM: 20, DtS: 1}},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, r := range recs {
		require.NoError(t, w.Write(r))
	}

	reader := NewReader(&buf)
	for _, want := range recs {
		got, err := reader.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := reader.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestFeed_DrivesEngineInOrder(t *testing.T) {
	t.Parallel()

	sensor, err := slam.NewSensor(4, 5.5, 180, 4000, 0, 0)
	require.NoError(t, err)
	engine, err := slam.New(sensor, slam.Config{MapSizePixels: 100, MapSizeMeters: 8})
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(Record{ScansMM: []float64{1000, 1000, 1000, 1000}}))
	require.NoError(t, w.Write(Record{ScansMM: []float64{1200, 1200, 1200, 1200}, PoseChange: slam.PoseChange{DXYMM: 10, DtS: 1}}))

	n, err := Feed(&buf, engine)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestFeed_PropagatesUpdateErrors(t *testing.T) {
	t.Parallel()

	sensor, err := slam.NewSensor(4, 5.5, 180, 4000, 0, 0)
	require.NoError(t, err)
	engine, err := slam.New(sensor, slam.Config{MapSizePixels: 100, MapSizeMeters: 8})
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(Record{ScansMM: []float64{1000, 1000}})) // wrong length for a 4-beam sensor

	_, err = Feed(&buf, engine)
	require.Error(t, err)
}
