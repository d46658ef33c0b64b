// Package parallel provides parallel execution utilities for CPU kernels.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults from the detected CPU topology.
// Physical cores are preferred over logical ones for the dense float
// kernels here: hyperthread siblings share FP units and add little.
func DefaultConfig() Config {
	workers := cpuid.CPU.PhysicalCores
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	chunk := 64
	if line := cpuid.CPU.CacheLine; line > 0 {
		// At least one cache line of float32s per worker chunk.
		chunk = max(chunk, line/4)
	}

	return Config{
		Enabled:      workers > 1,
		NumWorkers:   workers,
		MinChunkSize: chunk,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// too small to amortize goroutine overhead.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
