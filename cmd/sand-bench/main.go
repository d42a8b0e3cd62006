// Command sand-bench pours material into headless worlds across many seeds
// and reports how long each scene takes to come to rest.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"falling-sand/internal/material"
	"falling-sand/internal/paint"
	"falling-sand/internal/sims/sand"
)

type runResult struct {
	seed    int64
	ticks   int
	settled bool
	elapsed time.Duration
	counts  [material.Count]int
}

func main() {
	steps := flag.Int("steps", 2000, "maximum ticks per run")
	runs := flag.Int("runs", 16, "number of seeds to simulate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 96, "grid width in cells")
	height := flag.Int("h", 64, "grid height in cells")
	seed := flag.Int64("seed", 1337, "seed of the first run")
	flag.Parse()

	base := sand.DefaultConfig()
	base.Width = *width
	base.Height = *height

	fmt.Printf("Running %d scenes (%d workers, up to %d ticks, %dx%d)\n", *runs, *workers, *steps, *width, *height)

	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runScene(base, s, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *runs; i++ {
			jobs <- *seed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	settled := 0
	totalTicks := 0
	for _, res := range all {
		state := "settled"
		if res.settled {
			settled++
		} else {
			state = "moving"
		}
		totalTicks += res.ticks
		fmt.Printf("seed=%d ticks=%d %s in %s sand=%d water=%d coal=%d stone=%d\n",
			res.seed, res.ticks, state, res.elapsed.Round(time.Microsecond),
			res.counts[material.Sand], res.counts[material.Water], res.counts[material.Coal], res.counts[material.Stone])
	}

	elapsed := time.Since(start)
	if len(all) > 0 {
		fmt.Printf("\n%d/%d scenes settled, mean %.1f ticks, elapsed %s\n",
			settled, len(all), float64(totalTicks)/float64(len(all)), elapsed.Round(time.Millisecond))
	}
}

// runScene lays terrain for seed, pours three blobs of material and ticks
// until every cell is at rest or the step budget runs out.
func runScene(base sand.Config, seed int64, steps int) runResult {
	cfg := base
	cfg.Seed = seed
	world := sand.NewWithConfig(cfg)
	world.Reset(seed)

	size := world.Size()
	q := paint.NewQueue()
	top := size.H / 8
	span := size.W / 8
	pours := []struct {
		x  int
		id material.ID
	}{
		{size.W / 4, material.Sand},
		{size.W / 2, material.Water},
		{3 * size.W / 4, material.Coal},
	}
	for _, p := range pours {
		q.Stroke(p.x-span/2, top, p.x+span/2, top, paint.Brush{Material: p.id, Radius: 2})
	}
	q.Drain(world)

	start := time.Now()
	res := runResult{seed: seed}
	for int(world.Ticks()) < steps {
		world.Step()
		if world.Settled() {
			res.settled = true
			break
		}
	}
	res.elapsed = time.Since(start)
	res.ticks = int(world.Ticks())
	res.counts = world.Counts()
	return res
}
