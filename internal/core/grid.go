package core

import "fmt"

// Cell values stored in a ByteGrid.
const (
	White uint8 = 0
	Black uint8 = 1

	// OutOfBounds marks cells requested outside the grid by CopyRegion.
	OutOfBounds uint8 = 2
)

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order. The
// grid only ever grows; Origin records how far the original (0, 0) has moved.
type ByteGrid struct {
	W, H int
	data []uint8

	origin Point
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// GridFromRows builds a grid from rows of '0'/'1' characters. All rows must
// have the same length.
func GridFromRows(rows []string) (*ByteGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid rows: empty grid")
	}
	g := NewByteGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.W {
			return nil, fmt.Errorf("grid rows: row %d has %d cells, want %d", y, len(row), g.W)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '0':
			case '1':
				g.data[y*g.W+x] = Black
			default:
				return nil, fmt.Errorf("grid rows: invalid cell %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	return g, nil
}

// Rows renders the grid as '0'/'1' strings, one per row.
func (g *ByteGrid) Rows() []string {
	rows := make([]string, g.H)
	buf := make([]byte, g.W)
	for y := 0; y < g.H; y++ {
		for x, c := range g.data[y*g.W : (y+1)*g.W] {
			buf[x] = '0'
			if c != White {
				buf[x] = '1'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// Cells exposes the backing slice so callers can read/write values directly.
// The slice is replaced on Grow; do not hold on to it across growth.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y), or OutOfBounds.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.In(x, y) {
		return OutOfBounds
	}
	return g.data[y*g.W+x]
}

// Origin returns the cumulative offset applied by all Grow calls.
func (g *ByteGrid) Origin() Point { return g.origin }

// Grow extends the grid by the given number of columns/rows on each side.
// Existing cells are copied verbatim into a fresh zeroed buffer; the returned
// point is the offset that maps old coordinates to new ones.
func (g *ByteGrid) Grow(left, right, top, bottom int) Point {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	if top < 0 {
		top = 0
	}
	if bottom < 0 {
		bottom = 0
	}
	if left+right+top+bottom == 0 {
		return Point{}
	}

	nw := g.W + left + right
	nh := g.H + top + bottom
	next := make([]uint8, nw*nh)
	for y := 0; y < g.H; y++ {
		dst := (y+top)*nw + left
		copy(next[dst:dst+g.W], g.data[y*g.W:(y+1)*g.W])
	}

	g.W, g.H = nw, nh
	g.data = next
	g.origin.X += left
	g.origin.Y += top
	return Point{X: left, Y: top}
}

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{
		W:      g.W,
		H:      g.H,
		data:   append([]uint8(nil), g.data...),
		origin: g.origin,
	}
}

// CopyRegion copies the w*h window starting at (x0, y0) into dst, which is
// resized as needed. Cells outside the grid are reported as OutOfBounds.
func (g *ByteGrid) CopyRegion(dst []uint8, x0, y0, w, h int) []uint8 {
	if w <= 0 || h <= 0 {
		return dst[:0]
	}
	if cap(dst) < w*h {
		dst = make([]uint8, w*h)
	}
	dst = dst[:w*h]
	for i := range dst {
		dst[i] = OutOfBounds
	}
	for y := 0; y < h; y++ {
		gy := y0 + y
		if gy < 0 || gy >= g.H {
			continue
		}
		sx, ex := x0, x0+w
		if sx < 0 {
			sx = 0
		}
		if ex > g.W {
			ex = g.W
		}
		if sx >= ex {
			continue
		}
		copy(dst[y*w+(sx-x0):y*w+(ex-x0)], g.data[gy*g.W+sx:gy*g.W+ex])
	}
	return dst
}
