//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"flash-ca/internal/app"
	_ "flash-ca/internal/sims/flash"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.BuildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(app.Title(sim))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
