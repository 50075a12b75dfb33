//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"langton-ant/internal/app"
	"langton-ant/internal/core"
	"langton-ant/internal/sims/langton"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["langton"]
	if !ok {
		log.Fatal("langton simulation not registered")
	}
	sim, err := factory(cfg.SimParams())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim.(*langton.Simulation), cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Langton's Ant")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
