//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RegionPainter draws a fixed-size window of a growing grid.
type RegionPainter struct {
	w, h  int
	img   *ebiten.Image
	cells []uint8
	buf   []byte
}

// RegionSource copies a window of cells, filling cells outside the grid with a
// sentinel value.
type RegionSource interface {
	CopyRegion(dst []uint8, x0, y0, w, h int) []uint8
}

// NewRegionPainter allocates a painter for a w*h window.
func NewRegionPainter(w, h int) *RegionPainter {
	return &RegionPainter{
		w:     w,
		h:     h,
		img:   ebiten.NewImage(w, h),
		cells: make([]uint8, w*h),
		buf:   make([]byte, 4*w*h),
	}
}

// Blit copies the window at (x0, y0) from src and draws it scaled onto dst.
func (p *RegionPainter) Blit(dst *ebiten.Image, src RegionSource, x0, y0 int, palette []color.RGBA, scale int) {
	p.cells = src.CopyRegion(p.cells, x0, y0, p.w, p.h)
	fillPaletteRGBA(p.buf, p.cells, palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the window dimensions in cells.
func (p *RegionPainter) Size() (int, int) { return p.w, p.h }
