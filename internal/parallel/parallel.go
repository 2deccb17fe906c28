// Package parallel fans the independent per-state work of a single table row
// out over goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls when a row is split across goroutines.
type Config struct {
	Enabled      bool // Whether rows may be split at all.
	NumWorkers   int  // Upper bound on goroutines per row.
	MinChunkSize int  // Rows narrower than this run inline.
}

// DefaultConfig returns defaults based on CPU count.
//
// The chunk floor keeps DNA-sized rows (8 states) inline; only large
// alphabets pay for goroutine startup.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return Config{}
}

// splits reports whether a row of n items is fanned out under cfg.
func (cfg Config) splits(n int) bool {
	return cfg.Enabled && cfg.NumWorkers > 1 && n >= cfg.MinChunkSize
}

// For executes f(i) for i in [0, n).
// Every index is visited exactly once; f must only write state owned by i.
func For(n int, f func(i int), cfg Config) {
	if !cfg.splits(n) {
		for i := range n {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
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
