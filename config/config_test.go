package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
}

func TestWithBuilders_ChainWithoutMutatingReceiver(t *testing.T) {
	t.Parallel()

	base := Default()
	tuned := base.
		WithMapSize(1000, 40).
		WithMapQuality(80).
		WithHoleWidthMM(400).
		WithSigma(150, 25).
		WithMaxSearchIter(2000).
		WithRandomSeed(99)

	require.Equal(t, 800, base.MapSizePixels, "base config must be unmodified")
	require.Equal(t, 1000, tuned.MapSizePixels)
	require.Equal(t, 40.0, tuned.MapSizeMeters)
	require.Equal(t, 80, tuned.MapQuality)
	require.Equal(t, 400.0, tuned.HoleWidthMM)
	require.Equal(t, 150.0, tuned.SigmaXYMM)
	require.Equal(t, 25.0, tuned.SigmaThetaDeg)
	require.Equal(t, 2000, tuned.MaxSearchIter)
	require.Equal(t, uint32(99), tuned.RandomSeed)
}

func TestValidate_RejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero pixels", Default().WithMapSize(0, 10)},
		{"negative meters", Default().WithMapSize(100, -1)},
		{"quality too high", Default().WithMapQuality(256)},
		{"quality negative", Default().WithMapQuality(-1)},
		{"zero hole width", Default().WithHoleWidthMM(0)},
		{"negative sigma xy", Default().WithSigma(-1, 20)},
		{"negative max iter", Default().WithMaxSearchIter(-5)},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			require.Error(t, c.cfg.Validate())
		})
	}
}

func TestLoadJSON_PartialDocumentKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadJSON([]byte(`{"map_quality": 90}`))
	require.NoError(t, err)

	require.Equal(t, 90, cfg.MapQuality)
	require.Equal(t, Default().MapSizePixels, cfg.MapSizePixels)
	require.Equal(t, Default().HoleWidthMM, cfg.HoleWidthMM)
}

func TestLoadJSON_InvalidDocumentIsError(t *testing.T) {
	t.Parallel()

	_, err := LoadJSON([]byte(`not json`))
	require.Error(t, err)
}

func TestLoadJSON_ValidatesResult(t *testing.T) {
	t.Parallel()

	_, err := LoadJSON([]byte(`{"map_size_pixels": -1}`))
	require.Error(t, err)
}

func TestMarshalJSON_RoundTrips(t *testing.T) {
	t.Parallel()

	original := Default().WithMapQuality(77)
	data, err := original.MarshalJSON()
	require.NoError(t, err)

	restored, err := LoadJSON(data)
	require.NoError(t, err)
	require.Equal(t, original, restored)
}
