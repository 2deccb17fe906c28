// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package flipflop

import (
	internalflipflop "github.com/born-ml/flipflop/internal/flipflop"
	"github.com/born-ml/flipflop/internal/parallel"
)

// DefaultAlphabet is the DNA alphabet, "ACGT".
const DefaultAlphabet = internalflipflop.DefaultAlphabet

// LargeVal stands in for an infinite log weight when seeding tables.
const LargeVal = internalflipflop.LargeVal

// Layout derives state and transition counts and indices from nbase.
type Layout = internalflipflop.Layout

// Scorer computes tables with a fixed Config. Safe for concurrent use.
type Scorer = internalflipflop.Scorer

// Config controls parallelism of a Scorer.
type Config = internalflipflop.Config

// ParallelConfig controls splitting one table row across goroutines.
type ParallelConfig = parallel.Config

// ViterbiResult is the best path through a score matrix.
type ViterbiResult = internalflipflop.ViterbiResult

// Alphabet maps bases to symbols.
type Alphabet = internalflipflop.Alphabet

// Call is a decoded read.
type Call = internalflipflop.Call

// Errors returned, or carried by panics, from this package.
var (
	ErrBaseCount       = internalflipflop.ErrBaseCount
	ErrBlockCount      = internalflipflop.ErrBlockCount
	ErrNilBuffer       = internalflipflop.ErrNilBuffer
	ErrScoreSize       = internalflipflop.ErrScoreSize
	ErrTableSize       = internalflipflop.ErrTableSize
	ErrTransitionCount = internalflipflop.ErrTransitionCount
	ErrAlphabet        = internalflipflop.ErrAlphabet
	ErrPathState       = internalflipflop.ErrPathState
)

// Backward fills bwd from its seeded last row towards row 0 and returns the
// log-partition value.
//
// Example:
//
//	bwd := make([]float32, (nblock+1)*2*nbase)
//	logZ := flipflop.Backward(scores, nbase, nblock, bwd)
func Backward(score []float32, nbase, nblock int, bwd []float32) float32 {
	return internalflipflop.Backward(score, nbase, nblock, bwd)
}

// Forward fills fwd from its seeded row 0 towards row nblock and returns the
// log-partition value.
func Forward(score []float32, nbase, nblock int, fwd []float32) float32 {
	return internalflipflop.Forward(score, nbase, nblock, fwd)
}

// Check validates buffers for Forward or Backward.
func Check(score []float32, nbase, nblock int, table []float32) error {
	return internalflipflop.Check(score, nbase, nblock, table)
}

// LogSumExp returns log(exp(x) + exp(y)) computed stably.
func LogSumExp(x, y float32) float32 {
	return internalflipflop.LogSumExp(x, y)
}

// NewLayout returns the layout for nbase bases.
func NewLayout(nbase int) (Layout, error) {
	return internalflipflop.NewLayout(nbase)
}

// NBaseFromNTrans recovers nbase from a per-block transition count.
func NBaseFromNTrans(ntrans int) (int, error) {
	return internalflipflop.NBaseFromNTrans(ntrans)
}

// DefaultConfig returns CPU-based defaults.
func DefaultConfig() Config {
	return internalflipflop.DefaultConfig()
}

// NewScorer creates a Scorer.
//
// Example:
//
//	s := flipflop.NewScorer(flipflop.DefaultConfig())
//	totals, err := s.LogPartitionBatch(ctx, reads, 4)
func NewScorer(cfg Config) *Scorer {
	return internalflipflop.NewScorer(cfg)
}

// Viterbi finds the highest scoring flip-flop path.
func Viterbi(score []float32, nbase, nblock int) (ViterbiResult, error) {
	return internalflipflop.Viterbi(score, nbase, nblock)
}

// Posterior returns posterior transition probabilities and the log-partition value.
func Posterior(score []float32, nbase, nblock int) ([]float32, float32, error) {
	return internalflipflop.Posterior(score, nbase, nblock)
}

// NewAlphabet validates and returns an alphabet.
func NewAlphabet(symbols string) (Alphabet, error) {
	return internalflipflop.NewAlphabet(symbols)
}

// PathToSequence converts a state path into bases.
func PathToSequence(path []int, alphabet Alphabet) (string, error) {
	return internalflipflop.PathToSequence(path, alphabet)
}

// Basecall decodes the best path through score into a base sequence.
func Basecall(score []float32, alphabet Alphabet) (Call, error) {
	return internalflipflop.Basecall(score, alphabet)
}
