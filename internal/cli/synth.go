package cli

import (
	"math/rand/v2"
)

// syntheticReads draws n reads of nblock blocks with N(0, scale^2) scores.
// Read i uses seed+i, so a read does not depend on how many are drawn.
func syntheticReads(cfg Config, n int) [][]float32 {
	ntrans := 2 * cfg.NBase * (cfg.NBase + 1)
	reads := make([][]float32, n)
	for i := range reads {
		rng := rand.New(rand.NewPCG(cfg.Seed+uint64(i), 0))
		read := make([]float32, cfg.NBlock*ntrans)
		for j := range read {
			read[j] = float32(rng.NormFloat64() * cfg.Scale)
		}
		reads[i] = read
	}
	return reads
}
