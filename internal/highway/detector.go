// Package highway recognises the periodic diagonal "highway" that Langton's
// ant settles into after its chaotic transient.
package highway

import "langton-ant/internal/core"

const (
	// Period is the number of steps after which the highway's displacement
	// pattern repeats.
	Period = 104
	// CyclesToConfirm is the number of consecutive periods that must match.
	CyclesToConfirm = 3
	// MatchTolerance is the largest fraction of mismatched steps between two
	// periods that still counts as the same pattern.
	MatchTolerance = 0.05
	// HistoryCapacity bounds the trajectory history.
	HistoryCapacity = Period * CyclesToConfirm * 2

	window = Period * CyclesToConfirm
)

// Direction labels the quadrant a confirmed highway travels towards. The y
// axis points south.
type Direction string

const (
	NorthEast Direction = "NE"
	NorthWest Direction = "NW"
	SouthEast Direction = "SE"
	SouthWest Direction = "SW"
)

// Directions lists every label in reporting order.
var Directions = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// State is the detector's position in its two-state lifecycle.
type State uint8

const (
	Searching State = iota
	Confirmed
)

func (s State) String() string {
	if s == Confirmed {
		return "confirmed"
	}
	return "searching"
}

type step struct {
	dx, dy  int
	heading int
}

// Detector watches an agent's trajectory and confirms the highway once
// CyclesToConfirm consecutive periods share the same displacement pattern.
// Confirmation is terminal until Reset.
type Detector struct {
	positions *Ring[core.Point]
	headings  *Ring[int]

	state     State
	direction Direction

	cycles [CyclesToConfirm][Period - 1]step
}

// NewDetector returns an empty detector in the Searching state.
func NewDetector() *Detector {
	return &Detector{
		positions: NewRing[core.Point](HistoryCapacity),
		headings:  NewRing[int](HistoryCapacity),
	}
}

// Observe records the agent's position and heading after a step.
func (d *Detector) Observe(x, y, heading int) {
	d.positions.Push(core.Point{X: x, Y: y})
	d.headings.Push(heading)

	if d.state == Searching && d.positions.Len() >= window {
		d.match()
	}
}

func (d *Detector) match() {
	base := d.positions.Len() - window
	for c := 0; c < CyclesToConfirm; c++ {
		start := base + c*Period
		for i := 0; i < Period-1; i++ {
			cur := d.positions.At(start + i)
			nxt := d.positions.At(start + i + 1)
			d.cycles[c][i] = step{
				dx:      nxt.X - cur.X,
				dy:      nxt.Y - cur.Y,
				heading: d.headings.At(start + i),
			}
		}
	}

	ref := &d.cycles[0]
	limit := MatchTolerance * float64(Period-1)
	for c := 1; c < CyclesToConfirm; c++ {
		mismatches := 0
		for i := range ref {
			if d.cycles[c][i] != ref[i] {
				mismatches++
			}
		}
		if float64(mismatches) > limit {
			return
		}
	}

	totalDX, totalDY := 0, 0
	for _, s := range ref {
		totalDX += s.dx
		totalDY += s.dy
	}
	d.state = Confirmed
	d.direction = Classify(totalDX, totalDY)
}

// Classify maps a net displacement to a diagonal label. Displacements that do
// not fall strictly inside a quadrant resolve by the dominant axis, with ties
// going to the east-west pair.
func Classify(dx, dy int) Direction {
	switch {
	case dx > 0 && dy < 0:
		return NorthEast
	case dx < 0 && dy < 0:
		return NorthWest
	case dx > 0 && dy > 0:
		return SouthEast
	case dx < 0 && dy > 0:
		return SouthWest
	}
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return NorthEast
		}
		return NorthWest
	}
	if dy > 0 {
		return SouthEast
	}
	return SouthWest
}

// State reports whether the detector is still searching.
func (d *Detector) State() State { return d.state }

// Confirmed reports whether a highway has been confirmed.
func (d *Detector) Confirmed() bool { return d.state == Confirmed }

// Direction returns the confirmed highway direction.
func (d *Detector) Direction() (Direction, bool) {
	if d.state != Confirmed {
		return "", false
	}
	return d.direction, true
}

// Len returns the number of samples currently held.
func (d *Detector) Len() int { return d.positions.Len() }

// Cap returns the history capacity.
func (d *Detector) Cap() int { return d.positions.Cap() }

// Positions returns the retained positions, oldest first.
func (d *Detector) Positions() []core.Point { return d.positions.Slice() }

// Reset clears all history and returns to Searching.
func (d *Detector) Reset() {
	d.positions.Clear()
	d.headings.Clear()
	d.state = Searching
	d.direction = ""
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
