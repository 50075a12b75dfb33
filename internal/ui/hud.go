//go:build ebiten

package ui

import (
	"image/color"

	"langton-ant/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
	panelAlpha   = 200
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the status panel in the top-left corner of the view.
type HUD struct {
	sim    parameterProvider
	lines  []string
	help   bool
	width  int
	height int
}

// NewHUD constructs a HUD reading from sim.
func NewHUD(sim parameterProvider) *HUD {
	return &HUD{sim: sim, help: true}
}

// Update refreshes the cached status lines.
func (h *HUD) Update(speed int, paused bool) {
	if h == nil {
		return
	}
	h.lines = StatusLines(h.sim.Parameters(), speed, paused)
	h.width = 0
	for _, line := range h.lines {
		h.width = max(h.width, text.BoundString(basicfont.Face7x13, line).Dx())
	}
	if h.help {
		for _, line := range HelpLines {
			h.width = max(h.width, text.BoundString(basicfont.Face7x13, line).Dx())
		}
	}
	h.width += 2 * panelPadding
	n := len(h.lines)
	if h.help {
		n += len(HelpLines) + 1
	}
	h.height = n*lineHeight + panelPadding
}

// ToggleHelp shows or hides the key bindings.
func (h *HUD) ToggleHelp() { h.help = !h.help }

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), color.RGBA{A: panelAlpha}, false)

	face := basicfont.Face7x13
	y := panelPadding + 10
	for _, line := range h.lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line == "PAUSED" {
			fg = color.RGBA{R: 255, G: 200, B: 60, A: 255}
		}
		text.Draw(screen, line, face, panelPadding, y, fg)
		y += lineHeight
	}
	if !h.help {
		return
	}
	y += lineHeight
	for _, line := range HelpLines {
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
	}
}
