package app

const (
	// MinSpeed and MaxSpeed bound the steps advanced per frame.
	MinSpeed = 1
	MaxSpeed = 1000

	maxFollowMargin = 20
)

// Viewport is the window of grid cells shown on screen.
type Viewport struct {
	X, Y int
	W, H int
}

// Follow recentres the viewport on (ax, ay) once the ant comes within the
// follow margin of a visible edge. The result is clamped to the grid. It
// reports whether the viewport moved.
func (v *Viewport) Follow(ax, ay, gridW, gridH int) bool {
	margin := min(v.W/4, v.H/4, maxFollowMargin)
	rx, ry := ax-v.X, ay-v.Y
	if rx >= margin && rx <= v.W-margin && ry >= margin && ry <= v.H-margin {
		return false
	}
	oldX, oldY := v.X, v.Y
	v.Center(ax, ay, gridW, gridH)
	return v.X != oldX || v.Y != oldY
}

// Center places (ax, ay) in the middle of the viewport, clamped to the grid.
func (v *Viewport) Center(ax, ay, gridW, gridH int) {
	v.X = clamp(ax-v.W/2, 0, gridW-v.W)
	v.Y = clamp(ay-v.H/2, 0, gridH-v.H)
}

// Shift moves the viewport by an origin change so that it keeps showing the
// same cells after the grid grows on the left or top.
func (v *Viewport) Shift(dx, dy int) {
	v.X += dx
	v.Y += dy
}

// Faster doubles the speed, capped at MaxSpeed.
func Faster(speed int) int { return clamp(speed*2, MinSpeed, MaxSpeed) }

// Slower halves the speed, floored at MinSpeed.
func Slower(speed int) int { return clamp(speed/2, MinSpeed, MaxSpeed) }

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
