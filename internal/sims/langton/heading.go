package langton

// Heading is the ant's facing, encoded clockwise from north.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

var headingVectors = [4][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var headingNames = [4]string{"N", "E", "S", "W"}

// Valid reports whether h is one of the four compass headings.
func (h Heading) Valid() bool { return h < 4 }

// Right turns clockwise.
func (h Heading) Right() Heading { return (h + 1) % 4 }

// Left turns counter-clockwise.
func (h Heading) Left() Heading { return (h + 3) % 4 }

// Vector returns the unit step for the heading; y grows southwards.
func (h Heading) Vector() (dx, dy int) {
	v := headingVectors[h%4]
	return v[0], v[1]
}

func (h Heading) String() string {
	if !h.Valid() {
		return "?"
	}
	return headingNames[h]
}
