//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay marks the ant's cell on top of the grid.
type Overlay struct {
	scale int
	col   color.RGBA
}

// NewOverlay constructs an overlay drawing cells of the given pixel scale.
func NewOverlay(scale int, col color.RGBA) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale, col: col}
}

// Draw fills the cell at view coordinates (vx, vy). Cells outside the screen
// are skipped.
func (o *Overlay) Draw(screen *ebiten.Image, vx, vy int) {
	b := screen.Bounds()
	px, py := vx*o.scale, vy*o.scale
	if px < 0 || py < 0 || px >= b.Dx() || py >= b.Dy() {
		return
	}
	inset := float32(0)
	if o.scale >= 4 {
		inset = 1
	}
	s := float32(o.scale)
	vector.DrawFilledRect(screen, float32(px)+inset, float32(py)+inset, s-2*inset, s-2*inset, o.col, false)
}
