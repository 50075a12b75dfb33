package langton

import (
	"log/slog"

	"langton-ant/internal/core"
	"langton-ant/internal/highway"
)

// Result summarises a finished or interrupted run.
type Result struct {
	Steps      int
	Direction  highway.Direction
	Detected   bool
	Expansions int
	Width      int
	Height     int
}

// Simulation drives an Ant and feeds every move to a highway Detector.
type Simulation struct {
	cfg      Config
	ant      *Ant
	detector *highway.Detector
	log      *slog.Logger
}

// New constructs a simulation from cfg.
func New(cfg Config) (*Simulation, error) {
	ant, err := NewAnt(cfg)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:      cfg,
		ant:      ant,
		detector: highway.NewDetector(),
		log:      slog.New(slog.DiscardHandler),
	}, nil
}

// SetLogger routes confirmation events to l.
func (s *Simulation) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.log = l
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "langton" }

// Size returns the current grid dimensions.
func (s *Simulation) Size() core.Size { return s.ant.Size() }

// Cells returns a copy of the grid cells in row-major order.
func (s *Simulation) Cells() []uint8 { return s.ant.Grid().Cells() }

// Reset rebuilds the ant and detector from the stored configuration. The seed
// is ignored: the rule has no randomness.
func (s *Simulation) Reset(int64) {
	ant, err := NewAnt(s.cfg)
	if err != nil {
		// The config was validated by New.
		panic(err)
	}
	s.ant = ant
	s.detector.Reset()
}

// Step advances the ant once and records the move.
func (s *Simulation) Step() {
	wasConfirmed := s.detector.Confirmed()
	s.ant.Step()
	// The detector sees initial-frame coordinates so growth on the left or top
	// never shows up as a jump in the trajectory.
	x, y := s.ant.Position()
	o := s.ant.Origin()
	s.detector.Observe(x-o.X, y-o.Y, int(s.ant.Heading()))
	if !wasConfirmed && s.detector.Confirmed() {
		dir, _ := s.detector.Direction()
		s.log.Debug("highway confirmed", "step", s.ant.Steps(), "direction", string(dir), "expansions", s.ant.Expansions())
	}
}

// RunUntilHighway steps until the detector confirms a highway at one of the
// periodic checks or until the total step count reaches maxSteps.
func (s *Simulation) RunUntilHighway(maxSteps, checkInterval int) (highway.Direction, bool) {
	if checkInterval <= 0 {
		checkInterval = 1
	}
	for s.ant.Steps() < maxSteps {
		s.Step()
		if s.ant.Steps()%checkInterval == 0 && s.detector.Confirmed() {
			return s.detector.Direction()
		}
	}
	return "", false
}

// Ant exposes the automaton for read access.
func (s *Simulation) Ant() *Ant { return s.ant }

// Highway reports the detector state and direction, if confirmed.
func (s *Simulation) Highway() (highway.State, highway.Direction) {
	dir, _ := s.detector.Direction()
	return s.detector.State(), dir
}

// Agent returns the ant's position and heading.
func (s *Simulation) Agent() (x, y int, heading Heading) {
	x, y = s.ant.Position()
	return x, y, s.ant.Heading()
}

// CopyRegion copies a window of the grid into dst.
func (s *Simulation) CopyRegion(dst []uint8, x0, y0, w, h int) []uint8 {
	return s.ant.CopyRegion(dst, x0, y0, w, h)
}

// Outcome captures the current counters and detection result.
func (s *Simulation) Outcome() Result {
	dir, ok := s.detector.Direction()
	size := s.ant.Size()
	return Result{
		Steps:      s.ant.Steps(),
		Direction:  dir,
		Detected:   ok,
		Expansions: s.ant.Expansions(),
		Width:      size.W,
		Height:     size.H,
	}
}

func init() {
	core.Register("langton", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
