//go:build ebiten

package app

import (
	"langton-ant/internal/render"
	"langton-ant/internal/sims/langton"
	"langton-ant/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Langton's ant simulation to the ebiten.Game interface.
type Game struct {
	sim     *langton.Simulation
	painter *render.RegionPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	view   Viewport
	origin struct{ x, y int }

	scale    int
	speed    int
	paused   bool
	tickOnce bool
}

// New constructs a Game showing a cols x rows window of sim.
func New(sim *langton.Simulation, cfg *Config) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewRegionPainter(cfg.ViewW, cfg.ViewH),
		overlay: ui.NewOverlay(cfg.Scale, sim.AntColor()),
		hud:     ui.NewHUD(sim),
		view:    Viewport{W: cfg.ViewW, H: cfg.ViewH},
		scale:   cfg.Scale,
		speed:   clamp(cfg.Speed, MinSpeed, MaxSpeed),
	}
	g.recentre()
	return g
}

// Reset restores the simulation to its starting configuration.
func (g *Game) Reset() {
	g.sim.Reset(0)
	g.tickOnce = false
	g.recentre()
}

func (g *Game) recentre() {
	x, y, _ := g.sim.Agent()
	size := g.sim.Size()
	g.view.Center(x, y, size.W, size.H)
	o := g.sim.Ant().Origin()
	g.origin.x, g.origin.y = o.X, o.Y
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.speed = Faster(g.speed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.speed = Slower(g.speed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	switch {
	case g.tickOnce:
		g.advance(1)
		g.tickOnce = false
	case !g.paused:
		g.advance(g.speed)
	}
	g.hud.Update(g.speed, g.paused)
	return nil
}

func (g *Game) advance(n int) {
	for i := 0; i < n; i++ {
		g.sim.Step()
	}
	o := g.sim.Ant().Origin()
	g.view.Shift(o.X-g.origin.x, o.Y-g.origin.y)
	g.origin.x, g.origin.y = o.X, o.Y

	x, y, _ := g.sim.Agent()
	size := g.sim.Size()
	g.view.Follow(x, y, size.W, size.H)
}

// Draw renders the visible window, the ant marker and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.view.X, g.view.Y, g.sim.Palette(), g.scale)
	x, y, _ := g.sim.Agent()
	g.overlay.Draw(screen, x-g.view.X, y-g.view.Y)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W * g.scale, g.view.H * g.scale
}
