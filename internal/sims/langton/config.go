package langton

import (
	"strconv"

	"langton-ant/internal/core"
)

const (
	// DefaultSize is the side of the initial square grid.
	DefaultSize = 100
	// DefaultMargin is the clearance kept between the ant and any grid edge.
	DefaultMargin = 10
)

// Config holds the construction parameters for an ant. A nil Start places the
// ant at the grid centre; a non-nil Initial grid overrides Size.
type Config struct {
	Size      int         `json:"size" yaml:"size"`
	Start     *core.Point `json:"start,omitempty" yaml:"start,omitempty"`
	Direction int         `json:"direction" yaml:"direction"`
	Margin    int         `json:"margin" yaml:"margin"`

	Initial *core.ByteGrid `json:"-" yaml:"-"`
}

// DefaultConfig returns the standard configuration: a 100x100 white grid with
// the ant at the centre facing north.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Direction: int(North), Margin: DefaultMargin}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["dir"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < 4 {
			c.Direction = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	xs, hasX := cfg["x"]
	ys, hasY := cfg["y"]
	if hasX && hasY {
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if errX == nil && errY == nil && x >= 0 && y >= 0 && x < c.Size && y < c.Size {
			c.Start = &core.Point{X: x, Y: y}
		}
	}
	return c
}
