package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"lifeview/pkg/core"
	"lifeview/pkg/sims/life"
)

func main() {
	size := flag.Int("size", 1000, "grid edge length in cells")
	steps := flag.Int("steps", 100, "generations to simulate")
	seed := flag.Int64("seed", 42, "seed for the random fill")
	density := flag.Float64("density", 1.0/3.0, "probability a seeded cell starts alive")
	every := flag.Int("every", 10, "report population every N generations (0 reports only the last)")
	flag.Parse()

	cfg := life.DefaultConfig()
	cfg.Size = *size
	cfg.Density = *density
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *steps < 0 {
		log.Fatalf("invalid configuration: steps %d must not be negative", *steps)
	}

	grid, err := life.NewGrid(cfg.Size)
	if err != nil {
		log.Fatal(err)
	}
	engine, err := life.NewEngine(cfg.Size)
	if err != nil {
		log.Fatal(err)
	}
	grid.Seed(life.DefaultSeedRegion(cfg.Size), cfg.Density, core.NewRNG(*seed))

	fmt.Printf("Seeded %dx%d grid (seed %d, density %.3f): %d live cells\n", cfg.Size, cfg.Size, *seed, cfg.Density, grid.Population())

	start := time.Now()
	for i := 0; i < *steps; i++ {
		engine.Step(grid)
		gen := engine.Generation()
		if (*every > 0 && gen%*every == 0) || gen == *steps {
			fmt.Printf("generation %6d  population %8d\n", gen, grid.Population())
		}
	}
	elapsed := time.Since(start)

	if *steps > 0 {
		fmt.Printf("\n%d generations in %s (%.2f ms/generation)\n", *steps, elapsed.Round(time.Millisecond),
			float64(elapsed.Microseconds())/1000/float64(*steps))
	}
}
