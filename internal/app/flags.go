package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Size   int
	X, Y   int
	Dir    int
	Margin int

	Scale int
	ViewW int
	ViewH int
	TPS   int
	Speed int
}

// NewConfig returns a Config populated with sensible defaults. X and Y are -1
// to start the ant at the grid centre.
func NewConfig() *Config {
	return &Config{
		Size:   100,
		X:      -1,
		Y:      -1,
		Margin: 10,
		Scale:  6,
		ViewW:  120,
		ViewH:  100,
		TPS:    60,
		Speed:  1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "initial grid side")
	fs.IntVar(&c.X, "x", c.X, "start column (-1 for centre)")
	fs.IntVar(&c.Y, "y", c.Y, "start row (-1 for centre)")
	fs.IntVar(&c.Dir, "dir", c.Dir, "start direction: 0=N 1=E 2=S 3=W")
	fs.IntVar(&c.Margin, "margin", c.Margin, "clearance kept between the ant and the grid edge")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.ViewW, "cols", c.ViewW, "visible columns")
	fs.IntVar(&c.ViewH, "rows", c.ViewH, "visible rows")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial steps per frame")
}

// SimParams renders the simulation settings as registry parameters.
func (c *Config) SimParams() map[string]string {
	params := map[string]string{
		"size":   strconv.Itoa(c.Size),
		"dir":    strconv.Itoa(c.Dir),
		"margin": strconv.Itoa(c.Margin),
	}
	if c.X >= 0 && c.Y >= 0 {
		params["x"] = strconv.Itoa(c.X)
		params["y"] = strconv.Itoa(c.Y)
	}
	return params
}
