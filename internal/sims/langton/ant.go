// Package langton implements Langton's ant on a grid that grows as the ant
// wanders, plus the driver that couples it to the highway detector.
package langton

import (
	"errors"
	"fmt"

	"langton-ant/internal/core"
)

var (
	// ErrInvalidDirection is returned for start directions outside 0..3.
	ErrInvalidDirection = errors.New("start direction must be 0-3")
	// ErrStartOutOfBounds is returned when the start position is off the grid.
	ErrStartOutOfBounds = errors.New("start position outside grid")
)

// Ant owns the cell grid and the agent walking on it.
type Ant struct {
	grid    *core.ByteGrid
	x, y    int
	heading Heading
	margin  int

	steps      int
	expansions int
}

// NewAnt builds an ant from cfg. The initial grid, when supplied, is copied.
func NewAnt(cfg Config) (*Ant, error) {
	if cfg.Direction < 0 || cfg.Direction > 3 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDirection, cfg.Direction)
	}

	var grid *core.ByteGrid
	if cfg.Initial != nil {
		grid = core.NewByteGrid(cfg.Initial.W, cfg.Initial.H)
		for i, c := range cfg.Initial.Cells() {
			if c != core.White {
				grid.Cells()[i] = core.Black
			}
		}
	} else {
		size := cfg.Size
		if size <= 0 {
			size = DefaultSize
		}
		grid = core.NewByteGrid(size, size)
	}

	x, y := grid.W/2, grid.H/2
	if cfg.Start != nil {
		x, y = cfg.Start.X, cfg.Start.Y
	}
	if !grid.In(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrStartOutOfBounds, x, y, grid.W, grid.H)
	}

	margin := cfg.Margin
	if margin < 0 {
		margin = 0
	}

	return &Ant{
		grid:    grid,
		x:       x,
		y:       y,
		heading: Heading(cfg.Direction),
		margin:  margin,
	}, nil
}

// Step applies one rule application: turn, flip, advance, grow if needed.
func (a *Ant) Step() {
	cells := a.grid.Cells()
	idx := a.grid.Index(a.x, a.y)
	if cells[idx] == core.White {
		a.heading = a.heading.Right()
		cells[idx] = core.Black
	} else {
		a.heading = a.heading.Left()
		cells[idx] = core.White
	}

	dx, dy := a.heading.Vector()
	a.x += dx
	a.y += dy

	a.growIfNeeded()
	a.steps++
}

// growIfNeeded doubles the grid along every edge the ant is within margin of.
// Each side is checked independently so a small grid can grow both ways at
// once; the ant ends up inside the grid because it moves at most one cell.
func (a *Ant) growIfNeeded() {
	g := a.grid
	var left, right, top, bottom int
	if a.x < a.margin {
		left = g.W
	}
	if a.x >= g.W-a.margin {
		right = g.W
	}
	if a.y < a.margin {
		top = g.H
	}
	if a.y >= g.H-a.margin {
		bottom = g.H
	}
	if left+right+top+bottom == 0 {
		return
	}

	off := g.Grow(left, right, top, bottom)
	a.x += off.X
	a.y += off.Y
	a.expansions++
}

// Steps returns the number of completed steps.
func (a *Ant) Steps() int { return a.steps }

// Position returns the ant's current cell.
func (a *Ant) Position() (x, y int) { return a.x, a.y }

// Heading returns the ant's current facing.
func (a *Ant) Heading() Heading { return a.heading }

// Size returns the current grid dimensions.
func (a *Ant) Size() core.Size { return core.Size{W: a.grid.W, H: a.grid.H} }

// Expansions returns the number of growth events so far.
func (a *Ant) Expansions() int { return a.expansions }

// Margin returns the expansion margin in cells.
func (a *Ant) Margin() int { return a.margin }

// Origin returns where the initial grid's (0, 0) now lives.
func (a *Ant) Origin() core.Point { return a.grid.Origin() }

// Cell returns the cell value at (x, y), or core.OutOfBounds.
func (a *Ant) Cell(x, y int) uint8 { return a.grid.At(x, y) }

// Grid returns a deep copy of the grid.
func (a *Ant) Grid() *core.ByteGrid { return a.grid.Clone() }

// CopyRegion copies a window of the grid into dst; see core.ByteGrid.
func (a *Ant) CopyRegion(dst []uint8, x0, y0, w, h int) []uint8 {
	return a.grid.CopyRegion(dst, x0, y0, w, h)
}
