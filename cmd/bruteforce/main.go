// Command bruteforce batch-solves every puzzle map in a directory and
// reports solve statistics: how many solved, how long each search took,
// and how many moves the winning push sequence needed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kbox/parabox/game/config"
	"github.com/kbox/parabox/game/engine"
	"github.com/kbox/parabox/game/solver"
)

// AttemptResult is the outcome of solving one map file.
type AttemptResult struct {
	File     string
	Solved   bool
	Moves    int
	Steps    int // number of (position, direction) probes the solver attempted
	Duration time.Duration
	Err      error
}

func main() {
	mapsDir := flag.String("dir", "maps", "Directory of .box puzzle maps to solve")
	verbose := flag.Bool("v", false, "Verbose per-file progress output")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*mapsDir, "*.box"))
	if err != nil {
		log.Fatalf("Failed to list map files: %v", err)
	}
	if len(files) == 0 {
		log.Printf("No .box map files found in %s", *mapsDir)
		return
	}

	log.Printf("Solving %d map(s) from %s", len(files), *mapsDir)

	results := make([]AttemptResult, 0, len(files))
	for _, file := range files {
		results = append(results, solveFile(file, *verbose))
	}

	printSummary(results)
}

func solveFile(path string, verbose bool) AttemptResult {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return AttemptResult{File: name, Err: fmt.Errorf("read: %w", err)}
	}

	state, win, err := config.Parse(string(data))
	if err != nil {
		return AttemptResult{File: name, Err: fmt.Errorf("parse: %w", err)}
	}

	steps := 0
	onStep := func(g engine.GlobalPos, dir engine.Direction) {
		steps++
		if verbose && steps%10000 == 0 {
			log.Printf("  %s: %d probes so far", name, steps)
		}
	}

	start := time.Now()
	res, err := solver.Solve(*state, win, onStep)
	elapsed := time.Since(start)

	if err != nil {
		return AttemptResult{File: name, Duration: elapsed, Err: err}
	}

	result := AttemptResult{
		File:     name,
		Solved:   res.Solved,
		Moves:    len(res.Directions),
		Steps:    steps,
		Duration: elapsed,
	}

	if verbose {
		if res.Solved {
			log.Printf("✅ %s solved in %d move(s), %d probe(s), %s", name, result.Moves, steps, elapsed)
		} else {
			log.Printf("❌ %s has no solution (%d probe(s), %s)", name, steps, elapsed)
		}
	}

	return result
}

func printSummary(results []AttemptResult) {
	solved := 0
	var totalDuration time.Duration
	var slowest AttemptResult

	fmt.Printf("\n%s\n", "========================================")
	for _, r := range results {
		totalDuration += r.Duration
		if r.Duration > slowest.Duration {
			slowest = r
		}

		if r.Err != nil {
			fmt.Printf("❌ %-30s error: %v\n", r.File, r.Err)
			continue
		}
		if r.Solved {
			solved++
			fmt.Printf("✅ %-30s %d move(s) in %s (%d probes)\n", r.File, r.Moves, r.Duration, r.Steps)
		} else {
			fmt.Printf("⚠️  %-30s unsolvable (%d probes, %s)\n", r.File, r.Steps, r.Duration)
		}
	}

	fmt.Printf("\nSolved %d/%d maps\n", solved, len(results))
	fmt.Printf("Total solve time: %s\n", totalDuration)
	if slowest.File != "" {
		fmt.Printf("Slowest: %s (%s)\n", slowest.File, slowest.Duration)
	}
}
