// Command sudokugen generates a batch of puzzles concurrently across a
// worker pool and writes them to a JSON file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"sudokuengine"
)

// record is one generated puzzle as written to the output file.
type record struct {
	Puzzle     string `json:"puzzle"`
	Solution   string `json:"solution"`
	Difficulty int    `json:"difficulty"`
}

// batchFile is the top-level structure of the output JSON file.
type batchFile struct {
	Version int      `json:"version"`
	Width   int      `json:"width"`
	Target  int      `json:"target_difficulty"`
	Count   int      `json:"count"`
	Puzzles []record `json:"puzzles"`
}

func main() {
	count := flag.Int("n", 100, "number of puzzles to generate")
	width := flag.Int("w", 3, "block width (9x9 board uses 3)")
	target := flag.Int("target", 500, "target difficulty score for the hill-climb")
	minDifficulty := flag.Int("min-difficulty", 0, "reject puzzles scoring below this (0 disables the check)")
	output := flag.String("o", "puzzles.json", "output file path")
	workers := flag.Int("workers", 0, "number of worker goroutines (default: num CPUs)")
	startSeed := flag.Uint64("seed", 1, "starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("Generating %d puzzles (w=%d, target=%d) with %d workers...\n", *count, *width, *target, *workers)
	start := time.Now()

	puzzles := make([]record, *count)
	errs := make([]error, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				fmt.Printf("  progress: %d/%d (%.1f/sec)\n", g, *count, rate)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + uint64(idx)
				source := sudoku.NewRNG(seed)
				puzzle, solution, difficulty, err := sudoku.GeneratePuzzle(*width, *target, *minDifficulty, source)
				if err != nil {
					errs[idx] = err
				} else {
					puzzles[idx] = record{Puzzle: puzzle, Solution: solution, Difficulty: difficulty}
				}
				atomic.AddInt64(&generated, 1)
			}
		}()
	}
	wg.Wait()
	close(done)

	elapsed := time.Since(start)
	failures := 0
	for _, err := range errs {
		if err != nil {
			failures++
		}
	}
	fmt.Printf("Generated %d puzzles in %v (%d failed)\n", *count-failures, elapsed, failures)

	out := batchFile{
		Version: 1,
		Width:   *width,
		Target:  *target,
		Count:   *count - failures,
	}
	for i, r := range puzzles {
		if errs[i] == nil {
			out.Puzzles = append(out.Puzzles, r)
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	fmt.Printf("wrote %s (%.2f KB)\n", *output, float64(info.Size())/1024)
}
