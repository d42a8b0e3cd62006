//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	_ "falling-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	driver, err := app.NewDriver(sim, cfg)
	if err != nil {
		log.Fatalf("start %s: %v", cfg.Sim, err)
	}
	game := app.New(driver, cfg.Scale)

	ebiten.SetWindowTitle("falling-sand: " + sim.Name())
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
