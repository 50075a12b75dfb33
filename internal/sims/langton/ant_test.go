package langton

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"langton-ant/internal/core"
)

func newAnt(t *testing.T, cfg Config) *Ant {
	t.Helper()
	ant, err := NewAnt(cfg)
	if err != nil {
		t.Fatalf("NewAnt: %v", err)
	}
	return ant
}

func TestClosedLoopOnWhiteGrid(t *testing.T) {
	ant := newAnt(t, Config{Size: 20, Start: &core.Point{X: 10, Y: 10}, Direction: int(North), Margin: DefaultMargin})

	want := [][2]int{{11, 10}, {11, 11}, {10, 11}, {10, 10}}
	for i, w := range want {
		ant.Step()
		x, y := ant.Position()
		if x != w[0] || y != w[1] {
			t.Fatalf("step %d: position (%d,%d), want (%d,%d)", i+1, x, y, w[0], w[1])
		}
	}
	if ant.Heading() != North {
		t.Fatalf("heading after loop = %v, want N", ant.Heading())
	}
	if ant.Steps() != 4 {
		t.Fatalf("steps = %d, want 4", ant.Steps())
	}
}

func TestTurnRightOnWhite(t *testing.T) {
	ant := newAnt(t, Config{Size: 10, Start: &core.Point{X: 5, Y: 5}, Direction: int(North), Margin: 2})
	ant.Step()

	if ant.Heading() != East {
		t.Fatalf("heading = %v, want E", ant.Heading())
	}
	if x, y := ant.Position(); x != 6 || y != 5 {
		t.Fatalf("position = (%d,%d), want (6,5)", x, y)
	}
	if ant.Cell(5, 5) != core.Black {
		t.Fatal("visited white cell should turn black")
	}
}

func TestTurnLeftOnBlack(t *testing.T) {
	initial := core.NewByteGrid(10, 10)
	initial.Cells()[initial.Index(5, 5)] = core.Black
	ant := newAnt(t, Config{Start: &core.Point{X: 5, Y: 5}, Direction: int(North), Margin: 2, Initial: initial})
	ant.Step()

	if ant.Heading() != West {
		t.Fatalf("heading = %v, want W", ant.Heading())
	}
	if x, y := ant.Position(); x != 4 || y != 5 {
		t.Fatalf("position = (%d,%d), want (4,5)", x, y)
	}
	if ant.Cell(5, 5) != core.White {
		t.Fatal("visited black cell should turn white")
	}
}

func TestTurnRuleHoldsEveryStep(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	initial := core.NewByteGrid(30, 30)
	for i := range initial.Cells() {
		initial.Cells()[i] = uint8(rng.IntN(2))
	}
	ant := newAnt(t, Config{Direction: int(East), Margin: 3, Initial: initial})

	for i := 0; i < 3000; i++ {
		x, y := ant.Position()
		before := ant.Cell(x, y)
		heading := ant.Heading()
		origin := ant.Origin()

		ant.Step()

		want := heading.Right()
		if before == core.Black {
			want = heading.Left()
		}
		if ant.Heading() != want {
			t.Fatalf("step %d: heading %v on cell %d, want %v", i, ant.Heading(), before, want)
		}
		shift := ant.Origin()
		ox, oy := x+shift.X-origin.X, y+shift.Y-origin.Y
		if got := ant.Cell(ox, oy); got != 1-before {
			t.Fatalf("step %d: cell (%d,%d) = %d, want %d", i, ox, oy, got, 1-before)
		}
	}
}

func TestInvalidDirection(t *testing.T) {
	for _, dir := range []int{-1, 4, 17} {
		_, err := NewAnt(Config{Size: 10, Direction: dir, Margin: 2})
		if !errors.Is(err, ErrInvalidDirection) {
			t.Fatalf("direction %d: err = %v, want ErrInvalidDirection", dir, err)
		}
	}
}

func TestStartOutOfBounds(t *testing.T) {
	_, err := NewAnt(Config{Size: 10, Start: &core.Point{X: 10, Y: 3}})
	if !errors.Is(err, ErrStartOutOfBounds) {
		t.Fatalf("err = %v, want ErrStartOutOfBounds", err)
	}
}

func TestDefaults(t *testing.T) {
	ant := newAnt(t, DefaultConfig())
	if s := ant.Size(); s.W != 100 || s.H != 100 {
		t.Fatalf("size = %+v, want 100x100", s)
	}
	if x, y := ant.Position(); x != 50 || y != 50 {
		t.Fatalf("start = (%d,%d), want centre", x, y)
	}
	if ant.Margin() != DefaultMargin || ant.Heading() != North {
		t.Fatalf("margin=%d heading=%v", ant.Margin(), ant.Heading())
	}

	ant = newAnt(t, Config{Size: 0, Margin: -4})
	if ant.Size().W != DefaultSize || ant.Margin() != 0 {
		t.Fatalf("non-positive size and negative margin not normalised: %+v margin=%d", ant.Size(), ant.Margin())
	}
}

func TestInitialGridIsCopied(t *testing.T) {
	initial := core.NewByteGrid(8, 6)
	initial.Cells()[initial.Index(1, 1)] = 7
	ant := newAnt(t, Config{Size: 50, Margin: 1, Initial: initial})

	if s := ant.Size(); s.W != 8 || s.H != 6 {
		t.Fatalf("initial grid should define size, got %+v", s)
	}
	if ant.Cell(1, 1) != core.Black {
		t.Fatal("non-zero initial cells should normalise to black")
	}
	initial.Cells()[initial.Index(2, 2)] = core.Black
	if ant.Cell(2, 2) != core.White {
		t.Fatal("ant aliases the caller's initial grid")
	}
}

func TestGridSnapshotIsDefensive(t *testing.T) {
	ant := newAnt(t, Config{Size: 10, Margin: 2})
	snap := ant.Grid()
	for i := range snap.Cells() {
		snap.Cells()[i] = core.Black
	}
	if ant.Cell(0, 0) != core.White {
		t.Fatal("mutating a snapshot changed the automaton")
	}
}

func TestGrowRightEdge(t *testing.T) {
	ant := newAnt(t, Config{Size: 20, Start: &core.Point{X: 15, Y: 10}, Direction: int(East), Margin: 5})
	ant.Step()

	if s := ant.Size(); s.W != 40 || s.H != 20 {
		t.Fatalf("size = %+v, want 40x20", s)
	}
	if x, y := ant.Position(); x != 15 || y != 11 {
		t.Fatalf("growth on the right must not move the ant, got (%d,%d)", x, y)
	}
	if ant.Expansions() != 1 {
		t.Fatalf("expansions = %d, want 1", ant.Expansions())
	}
}

func TestGrowLeftEdgeTranslatesAnt(t *testing.T) {
	ant := newAnt(t, Config{Size: 20, Start: &core.Point{X: 2, Y: 10}, Direction: int(West), Margin: 5})
	ant.Step()

	if s := ant.Size(); s.W != 40 || s.H != 20 {
		t.Fatalf("size = %+v, want 40x20", s)
	}
	if x, y := ant.Position(); x != 22 || y != 9 {
		t.Fatalf("position = (%d,%d), want (22,9)", x, y)
	}
	if ant.Cell(22, 10) != core.Black {
		t.Fatal("flipped cell not preserved at its translated coordinate")
	}
	if ant.Origin() != (core.Point{X: 20}) {
		t.Fatalf("origin = %+v, want {20 0}", ant.Origin())
	}
}

func TestGrowAllSidesOnTinyGrid(t *testing.T) {
	ant := newAnt(t, Config{Size: 4, Direction: int(North), Margin: 10})
	ant.Step()

	if s := ant.Size(); s.W != 12 || s.H != 12 {
		t.Fatalf("size = %+v, want 12x12", s)
	}
	if x, y := ant.Position(); x != 7 || y != 6 {
		t.Fatalf("position = (%d,%d), want (7,6)", x, y)
	}
	if ant.Cell(6, 6) != core.Black {
		t.Fatal("start cell lost during growth")
	}
	if ant.Expansions() != 1 {
		t.Fatalf("a multi-side growth is one event, got %d", ant.Expansions())
	}
}

func TestGrowthPreservesCells(t *testing.T) {
	ant := newAnt(t, Config{Size: 6, Margin: 2})
	for i := 0; i < 2000; i++ {
		before := ant.Grid()
		origin := ant.Origin()
		expansions := ant.Expansions()
		ant.Step()
		if ant.Expansions() == expansions {
			continue
		}
		after := ant.Grid()
		shift := ant.Origin()
		dx, dy := shift.X-origin.X, shift.Y-origin.Y
		px, py := ant.Position()
		lx, ly := px-headingDX(ant.Heading()), py-headingDY(ant.Heading())
		for y := 0; y < before.H; y++ {
			for x := 0; x < before.W; x++ {
				// The cell the ant just left was flipped by this step.
				if x+dx == lx && y+dy == ly {
					continue
				}
				if before.At(x, y) != after.At(x+dx, y+dy) {
					t.Fatalf("step %d: cell (%d,%d) changed across growth", i, x, y)
				}
			}
		}
	}
	if ant.Expansions() == 0 {
		t.Fatal("expected the small grid to grow")
	}
}

func headingDX(h Heading) int { dx, _ := h.Vector(); return dx }
func headingDY(h Heading) int { _, dy := h.Vector(); return dy }

func TestAntStaysInBounds(t *testing.T) {
	for _, margin := range []int{0, 1, 10} {
		ant := newAnt(t, Config{Size: 3, Direction: int(South), Margin: margin})
		for i := 0; i < 12000; i++ {
			ant.Step()
			x, y := ant.Position()
			s := ant.Size()
			if x < 0 || y < 0 || x >= s.W || y >= s.H {
				t.Fatalf("margin %d step %d: ant at (%d,%d) outside %dx%d", margin, i, x, y, s.W, s.H)
			}
		}
	}
}

func TestAntIsDeterministic(t *testing.T) {
	cfg := Config{Size: 50, Start: &core.Point{X: 25, Y: 25}, Direction: int(East), Margin: DefaultMargin}
	a := newAnt(t, cfg)
	b := newAnt(t, cfg)
	for i := 0; i < 5000; i++ {
		a.Step()
		b.Step()
	}
	ax, ay := a.Position()
	bx, by := b.Position()
	if ax != bx || ay != by || a.Heading() != b.Heading() || a.Expansions() != b.Expansions() {
		t.Fatal("identical configs diverged")
	}
	if !slices.Equal(a.Grid().Cells(), b.Grid().Cells()) {
		t.Fatal("identical configs produced different grids")
	}
}
