//go:build !ebiten

package ui

import "langton-ant/internal/core"

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(parameterProvider) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, bool) {}

// ToggleHelp is a no-op in the headless build.
func (h *HUD) ToggleHelp() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
