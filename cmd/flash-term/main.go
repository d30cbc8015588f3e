package main

import (
	"flag"
	"log"

	"flash-ca/internal/app"
	_ "flash-ca/internal/sims/flash"
	"flash-ca/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.BuildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	term.NewViewer(screen, sim, cfg.TPS).Run()
}
