package highway

import (
	"math/rand/v2"
	"testing"
)

var unit = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

type sample struct{ x, y, heading int }

// periodic builds n samples of a walk that repeats the given per-period move
// counts (north, east, south, west) forever.
func periodic(n, north, east, south, west int) []sample {
	var pattern []int
	for i := 0; i < east; i++ {
		pattern = append(pattern, 1)
	}
	for i := 0; i < north; i++ {
		pattern = append(pattern, 0)
	}
	for i := 0; i < west; i++ {
		pattern = append(pattern, 3)
	}
	for i := 0; i < south; i++ {
		pattern = append(pattern, 2)
	}
	if len(pattern) != Period {
		panic("pattern must span one period")
	}
	out := make([]sample, n)
	x, y := 500, 500
	for i := range out {
		h := pattern[i%Period]
		x += unit[h][0]
		y += unit[h][1]
		out[i] = sample{x: x, y: y, heading: h}
	}
	return out
}

func feed(d *Detector, samples []sample) {
	for _, s := range samples {
		d.Observe(s.x, s.y, s.heading)
	}
}

func TestDetectorConfirmsPeriodicWalk(t *testing.T) {
	cases := []struct {
		name                     string
		north, east, south, west int
		want                     Direction
	}{
		{"north-east", 27, 27, 25, 25, NorthEast},
		{"north-west", 27, 25, 25, 27, NorthWest},
		{"south-east", 25, 27, 27, 25, SouthEast},
		{"south-west", 25, 25, 27, 27, SouthWest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDetector()
			feed(d, periodic(Period*CyclesToConfirm, tc.north, tc.east, tc.south, tc.west))
			if !d.Confirmed() {
				t.Fatal("periodic walk was not confirmed")
			}
			got, ok := d.Direction()
			if !ok || got != tc.want {
				t.Fatalf("direction = %q (%v), want %q", got, ok, tc.want)
			}
		})
	}
}

func TestDetectorNeedsFullWindow(t *testing.T) {
	d := NewDetector()
	feed(d, periodic(Period*CyclesToConfirm-1, 27, 27, 25, 25))
	if d.Confirmed() {
		t.Fatal("confirmed before three full periods were observed")
	}
	if _, ok := d.Direction(); ok {
		t.Fatal("direction reported while searching")
	}
	if d.State() != Searching {
		t.Fatalf("state = %v, want searching", d.State())
	}
}

func TestDetectorToleratesFewMismatches(t *testing.T) {
	for _, tc := range []struct {
		perturbed int
		confirmed bool
	}{
		{perturbed: 5, confirmed: true},
		{perturbed: 6, confirmed: false},
	} {
		samples := periodic(Period*CyclesToConfirm, 27, 27, 25, 25)
		last := Period * (CyclesToConfirm - 1)
		for i := 0; i < tc.perturbed; i++ {
			s := &samples[last+i]
			s.heading = (s.heading + 2) % 4
		}
		d := NewDetector()
		feed(d, samples)
		if d.Confirmed() != tc.confirmed {
			t.Fatalf("%d mismatches: confirmed = %v, want %v", tc.perturbed, d.Confirmed(), tc.confirmed)
		}
	}
}

func TestDetectorRejectsRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	d := NewDetector()
	x, y := 0, 0
	for i := 0; i < 5000; i++ {
		h := rng.IntN(4)
		x += unit[h][0]
		y += unit[h][1]
		d.Observe(x, y, h)
	}
	if d.Confirmed() {
		t.Fatal("random walk should never confirm")
	}
}

func TestDetectorHistoryIsBounded(t *testing.T) {
	d := NewDetector()
	if d.Cap() != Period*CyclesToConfirm*2 {
		t.Fatalf("capacity = %d, want %d", d.Cap(), Period*CyclesToConfirm*2)
	}
	for i := 0; i < d.Cap()+100; i++ {
		d.Observe(i, i, 0)
		if d.Len() > d.Cap() {
			t.Fatalf("history grew to %d entries", d.Len())
		}
	}
	if d.Len() != d.Cap() {
		t.Fatalf("len = %d, want %d", d.Len(), d.Cap())
	}
	positions := d.Positions()
	if positions[0].X != 100 || positions[len(positions)-1].X != d.Cap()+99 {
		t.Fatalf("oldest entries not evicted: first=%v last=%v", positions[0], positions[len(positions)-1])
	}
}

func TestDetectorConfirmationIsTerminal(t *testing.T) {
	d := NewDetector()
	feed(d, periodic(Period*CyclesToConfirm, 27, 27, 25, 25))
	want, _ := d.Direction()

	feed(d, periodic(Period*CyclesToConfirm*3, 25, 25, 27, 27))
	got, ok := d.Direction()
	if !ok || got != want {
		t.Fatalf("direction changed after confirmation: %q -> %q", want, got)
	}
}

func TestDetectorReset(t *testing.T) {
	d := NewDetector()
	feed(d, periodic(Period*CyclesToConfirm, 27, 27, 25, 25))
	d.Reset()
	if d.Len() != 0 || d.Confirmed() || d.State() != Searching {
		t.Fatalf("reset left state behind: len=%d state=%v", d.Len(), d.State())
	}
	if _, ok := d.Direction(); ok {
		t.Fatal("direction survived reset")
	}

	feed(d, periodic(Period*CyclesToConfirm, 25, 25, 27, 27))
	if got, _ := d.Direction(); got != SouthWest {
		t.Fatalf("direction after reset = %q, want SW", got)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   Direction
	}{
		{2, -2, NorthEast},
		{-2, -2, NorthWest},
		{2, 2, SouthEast},
		{-2, 2, SouthWest},
		{5, 0, NorthEast},
		{-5, 0, NorthWest},
		{0, 5, SouthEast},
		{0, -5, SouthWest},
		{0, 0, NorthWest},
	}
	for _, tc := range cases {
		if got := Classify(tc.dx, tc.dy); got != tc.want {
			t.Errorf("Classify(%d,%d) = %q, want %q", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestRingOverwritesOldest(t *testing.T) {
	r := NewRing[int](3)
	for i := 1; i <= 5; i++ {
		r.Push(i)
	}
	got := r.Slice()
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Fatalf("ring contents = %v, want [3 4 5]", got)
	}
	r.Clear()
	if r.Len() != 0 || r.Cap() != 3 {
		t.Fatalf("clear: len=%d cap=%d", r.Len(), r.Cap())
	}
}
