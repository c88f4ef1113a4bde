// Package gridio renders a slamcore Map snapshot to a portable graymap
// (PGM) byte stream for debugging dumps, outside the engine's synchronous
// update path. This mirrors the snapshot-export helpers elsewhere in this
// codebase (internal/lidar/l3grid's background-grid export) applied to the
// occupancy grid's byte semantics: 0 is occupied (rendered black), 255 is
// free (rendered white).
package gridio

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"
)

// WritePGM writes cells (a row-major SizePixels*SizePixels byte buffer, the
// same layout Map.Get/Map.Set use) to w as a binary (P5) PGM image.
func WritePGM(w io.Writer, cells []byte, sizePixels int) error {
	if len(cells) != sizePixels*sizePixels {
		return fmt.Errorf("gridio: cells length %d does not match %d*%d", len(cells), sizePixels, sizePixels)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", sizePixels, sizePixels); err != nil {
		return fmt.Errorf("gridio: write PGM header: %w", err)
	}
	if _, err := bw.Write(cells); err != nil {
		return fmt.Errorf("gridio: write PGM body: %w", err)
	}
	return bw.Flush()
}

// Entropy computes the Shannon entropy, in nats, of the cell-value
// distribution of cells — a quick scalar summary of how spread out the cell
// values are, useful as a one-line diagnostic log after a batch of updates.
// A map whose cells all hold one value scores 0, whether that value is
// unknown (127), free or occupied. This is a debugging
// aid with no bearing on map correctness and no reproducibility
// requirement, so unlike the core package's PRNG it delegates to
// gonum.org/v1/gonum/stat rather than hand-rolling the sum.
func Entropy(cells []byte) float64 {
	if len(cells) == 0 {
		return 0
	}
	var counts [256]int
	for _, c := range cells {
		counts[c]++
	}
	total := float64(len(cells))
	probs := make([]float64, 0, 256)
	for _, n := range counts {
		if n == 0 {
			continue
		}
		probs = append(probs, float64(n)/total)
	}
	return stat.Entropy(probs)
}
