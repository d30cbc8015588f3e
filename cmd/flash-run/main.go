package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"flash-ca/internal/scenario"
	"flash-ca/internal/textgrid"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("flash-run: ")

	file := flag.String("file", "", "digit grid to run")
	scenarioPath := flag.String("scenario", "", "YAML scenario to run")
	width := flag.Int("w", 10, "grid width when no grid is given")
	height := flag.Int("h", 10, "grid height when no grid is given")
	seed := flag.Int64("seed", 1, "seed for the random grid")
	steps := flag.Int("steps", 100, "ticks to run")
	findSync := flag.Bool("sync", false, "search for the first tick where every cell flashes")
	limit := flag.Int("limit", scenario.DefaultSyncLimit, "maximum ticks to search for synchronisation")
	printGrid := flag.Bool("print", false, "print the final grid")
	verbose := flag.Bool("v", false, "log the flash count of every tick")
	flag.Parse()

	sc := &scenario.Scenario{Width: *width, Height: *height, Seed: *seed}
	if *scenarioPath != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatal(err)
		}
		sc = loaded
	}
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("read grid: %v", err)
		}
		sc.Grid = string(data)
	}

	// Explicit flags override the scenario file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "steps":
			sc.Steps = *steps
		case "sync":
			sc.FindSync = *findSync
		case "limit":
			sc.SyncLimit = *limit
		}
	})
	if *scenarioPath == "" {
		sc.Steps = *steps
		sc.FindSync = *findSync
		sc.SyncLimit = *limit
	}
	if err := sc.Validate(); err != nil {
		log.Fatal(err)
	}

	if *verbose {
		sc.OnTick = func(tick, flashes int) {
			log.Printf("tick %d: %d flashes", tick, flashes)
		}
	}

	swarm, res, err := sc.Run()
	if err != nil {
		log.Fatal(err)
	}

	if sc.Name != "" {
		fmt.Printf("Scenario: %s\n", sc.Name)
	}
	size := swarm.Size()
	fmt.Printf("Grid: %dx%d (%d cells)\n", size.W, size.H, size.W*size.H)
	fmt.Printf("Total flashes after %d ticks: %d\n", res.Steps, res.TotalFlashes)
	if sc.FindSync {
		if res.Synced {
			fmt.Printf("First synchronised tick: %d\n", res.SyncTick)
		} else {
			fmt.Printf("No synchronised tick within %d ticks\n", swarm.Tick())
		}
	}
	if *printGrid {
		fmt.Printf("\nGrid after tick %d:\n", swarm.Tick())
		if err := textgrid.Write(os.Stdout, swarm.Grid()); err != nil {
			log.Fatal(err)
		}
	}
}
