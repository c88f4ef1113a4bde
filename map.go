package slam

import (
	"fmt"
	"math"
)

// Map is a square occupancy grid: SizePixels cells per side, covering a
// real square of SizeMeters on a side. Cell values are bytes in [0,255]:
// 0 means "definitely occupied", 255 means "definitely free", and the
// initial value 127 means "unknown".
//
// Grid coordinates follow row = y_mm*scale, col = x_mm*scale: world +y maps
// to increasing row. This is purely an internal storage convention; as
// long as Map.Update and DistanceScanToMap agree on it (they share the
// worldToPixel helper below), the grid's orientation never leaks to a
// caller, who only ever sees pose coordinates and a flat byte buffer.
type Map struct {
	SizePixels int
	SizeMeters float64
	scale      float64 // pixels per millimeter

	cells []byte // row-major, length SizePixels*SizePixels
}

// NewMap constructs an all-unknown (127) occupancy grid.
func NewMap(sizePixels int, sizeMeters float64) (*Map, error) {
	if sizePixels <= 0 || sizeMeters <= 0 {
		return nil, fmt.Errorf("%w: size_pixels=%d size_meters=%f", ErrInvalidMapSize, sizePixels, sizeMeters)
	}
	cells := make([]byte, sizePixels*sizePixels)
	for i := range cells {
		cells[i] = 127
	}
	return &Map{
		SizePixels: sizePixels,
		SizeMeters: sizeMeters,
		scale:      float64(sizePixels) / (sizeMeters * 1000),
		cells:      cells,
	}, nil
}

// Get copies the grid's current contents into out, which must have length
// SizePixels*SizePixels.
func (m *Map) Get(out []byte) error {
	if len(out) != len(m.cells) {
		return fmt.Errorf("%w: got %d, want %d", ErrMapBufferSize, len(out), len(m.cells))
	}
	copy(out, m.cells)
	return nil
}

// Set overwrites the grid's contents from in, which must have length
// SizePixels*SizePixels.
func (m *Map) Set(in []byte) error {
	if len(in) != len(m.cells) {
		return fmt.Errorf("%w: got %d, want %d", ErrMapBufferSize, len(in), len(m.cells))
	}
	copy(m.cells, in)
	return nil
}

// worldToPixel converts a world millimeter coordinate into grid row/col.
func (m *Map) worldToPixel(xMM, yMM float64) (row, col int) {
	row = int(yMM * m.scale)
	col = int(xMM * m.scale)
	return row, col
}

func (m *Map) inBounds(row, col int) bool {
	return row >= 0 && row < m.SizePixels && col >= 0 && col < m.SizePixels
}

func (m *Map) at(row, col int) byte {
	return m.cells[row*m.SizePixels+col]
}

func (m *Map) blendTo(row, col int, target float64, quality int) {
	if !m.inBounds(row, col) {
		return
	}
	idx := row*m.SizePixels + col
	cur := float64(m.cells[idx])
	next := cur + (target-cur)*float64(quality)/255
	if next < 0 {
		next = 0
	}
	if next > 255 {
		next = 255
	}
	m.cells[idx] = byte(next + 0.5)
}

// Update integrates one scan's rays into the grid at pose, blending each
// traversed cell toward free (255) short of the measured endpoint and
// toward occupied (0) in a "hole" band straddling it, with a triangular
// weight peaking exactly at the endpoint.
func (m *Map) Update(buildScan *Scan, pose Pose, quality int, holeWidthMM float64) {
	for i := 0; i < buildScan.Len(); i++ {
		lx, ly := buildScan.Point(i)
		wx, wy := pose.ToWorld(lx, ly)

		startRow, startCol := m.worldToPixel(pose.XMM, pose.YMM)
		endRow, endCol := m.worldToPixel(wx, wy)

		m.traceRay(startRow, startCol, endRow, endCol, holeWidthMM, quality)
	}
}

// traceRay walks the Bresenham line from (startRow,startCol) to
// (endRow,endCol), blending every traversed cell according to its distance
// from the ray's end: cells short of the "hole" zone are pushed toward
// free, cells within the hole zone are pushed toward occupied with a
// triangular weight peaking at the endpoint.
func (m *Map) traceRay(startRow, startCol, endRow, endCol int, holeWidthMM float64, quality int) {
	halfHolePX := (holeWidthMM / 2) * m.scale
	rayLenPX := pixelDistance(startRow, startCol, endRow, endCol)

	dRow := abs(endRow - startRow)
	dCol := abs(endCol - startCol)
	sRow := signOf(endRow - startRow)
	sCol := signOf(endCol - startCol)

	row, col := startRow, startCol

	// Classic Bresenham: step the major axis every iteration, the minor
	// axis when the accumulated error crosses zero.
	if dCol >= dRow {
		err := dCol - dRow
		for i := 0; ; i++ {
			distPX := pixelDistance(startRow, startCol, row, col)
			m.blendRayCell(row, col, distPX, rayLenPX, halfHolePX, quality)
			if col == endCol && row == endRow {
				break
			}
			e2 := 2 * err
			if e2 > -dRow {
				err -= dRow
				col += sCol
			}
			if e2 < dCol {
				err += dCol
				row += sRow
			}
		}
	} else {
		err := dRow - dCol
		for i := 0; ; i++ {
			distPX := pixelDistance(startRow, startCol, row, col)
			m.blendRayCell(row, col, distPX, rayLenPX, halfHolePX, quality)
			if col == endCol && row == endRow {
				break
			}
			e2 := 2 * err
			if e2 > -dCol {
				err -= dCol
				row += sRow
			}
			if e2 < dRow {
				err += dRow
				col += sCol
			}
		}
	}
}

func (m *Map) blendRayCell(row, col int, distPX, rayLenPX, halfHolePX float64, quality int) {
	holeStart := rayLenPX - halfHolePX
	holeEnd := rayLenPX + halfHolePX

	switch {
	case distPX < holeStart:
		m.blendTo(row, col, 255, quality)
	case distPX <= holeEnd:
		// Triangular weight: 1 at the measured endpoint, falling linearly
		// to 0 at the hole zone's edges.
		weight := 1 - abs64(distPX-rayLenPX)/halfHolePX
		if weight < 0 {
			weight = 0
		}
		target := 255 - weight*255
		m.blendTo(row, col, target, quality)
	default:
		// Beyond the hole zone: unobserved by this ray, left untouched.
	}
}

func pixelDistance(r0, c0, r1, c1 int) float64 {
	dr := float64(r1 - r0)
	dc := float64(c1 - c0)
	return math.Sqrt(dr*dr + dc*dc)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func signOf(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
