package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"flash-ca/internal/sims/flash"
)

type sweepResult struct {
	seed     int64
	flashes  int
	peak     int
	synced   bool
	syncTick int
}

func (r sweepResult) String() string {
	when := "never"
	if r.synced {
		when = fmt.Sprintf("tick %d", r.syncTick)
	}
	return fmt.Sprintf("seed=%d flashes=%d peak=%d sync=%s", r.seed, r.flashes, r.peak, when)
}

func main() {
	width := flag.Int("w", 10, "grid width")
	height := flag.Int("h", 10, "grid height")
	firstSeed := flag.Int64("seed", 1, "first seed to evaluate")
	count := flag.Int("count", 256, "number of consecutive seeds to evaluate")
	steps := flag.Int("steps", 100, "ticks counted towards the flash total")
	limit := flag.Int("limit", 2000, "maximum ticks to search for synchronisation")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	if *workers < 1 {
		*workers = 1
	}

	fmt.Printf("Sweeping %d seeds on %dx%d grids (%d workers, %d steps, sync limit %d)\n",
		*count, *width, *height, *workers, *steps, *limit)

	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(flash.Config{Width: *width, Height: *height, Seed: seed}, *steps, *limit)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *count; i++ {
			jobs <- *firstSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	syncedCount := 0
	for res := range results {
		all = append(all, res)
		if res.synced {
			syncedCount++
		}
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return less(all[i], all[j]) })

	fmt.Printf("\n%d/%d seeds synchronised (elapsed %s)\n", syncedCount, len(all), elapsed.Round(time.Millisecond))
	fmt.Printf("\nTop %d results:\n", *top)
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}

// runSeed counts flashes over the first steps ticks, then keeps stepping
// until the grid synchronises or limit ticks have run in total.
func runSeed(cfg flash.Config, steps, limit int) sweepResult {
	swarm := flash.NewWithConfig(cfg)
	cells := swarm.Grid().Len()
	res := sweepResult{seed: cfg.Seed}

	for swarm.Tick() < limit || swarm.Tick() < steps {
		n := swarm.Step()
		if swarm.Tick() <= steps {
			res.flashes += n
		}
		if n > res.peak {
			res.peak = n
		}
		if n == cells && !res.synced {
			res.synced = true
			res.syncTick = swarm.Tick()
		}
		if res.synced && swarm.Tick() >= steps {
			break
		}
	}
	return res
}

// less orders synchronised seeds first, earliest sync first, then by flash total.
func less(a, b sweepResult) bool {
	if a.synced != b.synced {
		return a.synced
	}
	if a.synced && a.syncTick != b.syncTick {
		return a.syncTick < b.syncTick
	}
	if a.flashes != b.flashes {
		return a.flashes > b.flashes
	}
	return a.seed < b.seed
}
