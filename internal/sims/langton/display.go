package langton

import (
	"image/color"

	"langton-ant/internal/core"
)

var palette = []color.RGBA{
	core.White:       {R: 255, G: 255, B: 255, A: 255},
	core.Black:       {R: 0, G: 0, B: 0, A: 255},
	core.OutOfBounds: {R: 200, G: 200, B: 200, A: 255},
}

// Palette maps cell values, including core.OutOfBounds, to colours.
func (s *Simulation) Palette() []color.RGBA { return palette }

// AntColor is the marker colour drawn over the ant's cell.
func (s *Simulation) AntColor() color.RGBA { return color.RGBA{R: 255, A: 255} }
