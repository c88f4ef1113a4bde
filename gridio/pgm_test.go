package gridio

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePGM_HeaderAndBody(t *testing.T) {
	t.Parallel()

	cells := make([]byte, 4*4)
	for i := range cells {
		cells[i] = byte(i * 16)
	}

	var buf bytes.Buffer
	require.NoError(t, WritePGM(&buf, cells, 4))

	reader := bufio.NewReader(&buf)
	magic, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "P5\n", magic)

	dims, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "4 4\n", dims)

	maxVal, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "255\n", maxVal)

	body := make([]byte, len(cells))
	n, err := reader.Read(body)
	require.NoError(t, err)
	require.Equal(t, len(cells), n)
	require.Equal(t, cells, body)
}

func TestWritePGM_WrongLengthIsError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WritePGM(&buf, make([]byte, 5), 4)
	require.Error(t, err)
}

func TestEntropy_UniformAllUnknownIsZero(t *testing.T) {
	t.Parallel()

	cells := make([]byte, 100)
	for i := range cells {
		cells[i] = 127
	}
	require.Equal(t, 0.0, Entropy(cells))
}

func TestEntropy_MixedDistributionIsPositive(t *testing.T) {
	t.Parallel()

	cells := make([]byte, 100)
	for i := range cells {
		if i%2 == 0 {
			cells[i] = 0
		} else {
			cells[i] = 255
		}
	}
	require.Greater(t, Entropy(cells), 0.0)
}

func TestEntropy_EmptyIsZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, Entropy(nil))
}
