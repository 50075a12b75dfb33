// Package ui draws the viewer's status panel and ant marker.
package ui

import (
	"fmt"

	"langton-ant/internal/core"
)

var statusKeys = []string{"steps", "position", "heading", "grid", "expansions"}

// HelpLines lists the viewer key bindings.
var HelpLines = []string{
	"SPACE: Pause/Resume",
	"N: Single step",
	"UP/DOWN: Speed",
	"R: Reset",
	"H: Toggle help",
	"Q/ESC: Quit",
}

// StatusLines formats the HUD text from a parameter snapshot and the
// viewer's own state.
func StatusLines(snap core.ParameterSnapshot, speed int, paused bool) []string {
	lines := make([]string, 0, len(statusKeys)+3)
	for _, key := range statusKeys {
		if p, ok := snap.Lookup(key); ok {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	lines = append(lines, fmt.Sprintf("Speed: %d steps/frame", speed))
	if p, ok := snap.Lookup("highway"); ok {
		lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
	}
	if paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}
