package flipflop

import (
	"github.com/born-ml/flipflop/internal/parallel"
)

// LargeVal stands in for an infinite log weight when seeding tables.
const LargeVal = 1e30

// Config controls how a Scorer spreads its work.
type Config struct {
	// Parallel splits the states of one row across goroutines.
	Parallel parallel.Config

	// BatchWorkers bounds the reads evaluated at once by LogPartitionBatch.
	// Zero or less means one per CPU.
	BatchWorkers int
}

// DefaultConfig returns CPU-based defaults.
func DefaultConfig() Config {
	return Config{
		Parallel:     parallel.DefaultConfig(),
		BatchWorkers: 0,
	}
}

// Scorer computes flip-flop log-partition tables.
//
// A Scorer holds no buffers and is safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

var sequential = NewScorer(Config{Parallel: parallel.Sequential(), BatchWorkers: 1})

// Backward fills bwd using a sequential scorer. See Scorer.Backward.
func Backward(score []float32, nbase, nblock int, bwd []float32) float32 {
	return sequential.Backward(score, nbase, nblock, bwd)
}

// Forward fills fwd using a sequential scorer. See Scorer.Forward.
func Forward(score []float32, nbase, nblock int, fwd []float32) float32 {
	return sequential.Forward(score, nbase, nblock, fwd)
}

// Backward sums over all flip-flop paths from the end of the read.
//
// score holds nblock rows of NTrans scores. bwd holds nblock+1 rows of NState
// entries; row nblock must carry the terminal log weights on entry, and rows
// nblock-1 down to 0 are overwritten. Row b is the log weight of all paths
// covering blocks b onwards that start in each state.
//
// Returns the log-sum-exp of row 0. Panics if the buffers violate Check.
func (s *Scorer) Backward(score []float32, nbase, nblock int, bwd []float32) float32 {
	if err := Check(score, nbase, nblock, bwd); err != nil {
		panic(err)
	}
	l := Layout{NBase: nbase}
	scores := l.NewScores(score, nblock)
	table := l.NewTable(bwd, nblock)
	nstate := l.NState()

	for blk := nblock; blk > 0; blk-- {
		pbwd := table.Row(blk)
		cbwd := table.Row(blk - 1)
		cscore := scores.Block(blk - 1)

		parallel.For(nstate, func(from int) {
			// Flop move first; it seeds the accumulator.
			acc := cscore[l.FlopIndex(from)] + pbwd[l.FlopTarget(from)]
			for to := range nbase {
				acc = LogSumExp(acc, cscore[l.FlipIndex(to, from)]+pbwd[to])
			}
			cbwd[from] = acc
		}, s.cfg.Parallel)
	}

	return LogSumExpSlice(table.Row(0))
}

// Forward sums over all flip-flop paths from the start of the read.
//
// fwd holds nblock+1 rows of NState entries; row 0 must carry the initial log
// weights on entry, and rows 1 to nblock are overwritten. Row b is the log
// weight of all paths covering blocks before b that end in each state.
//
// Returns the log-sum-exp of row nblock. Panics if the buffers violate Check.
func (s *Scorer) Forward(score []float32, nbase, nblock int, fwd []float32) float32 {
	if err := Check(score, nbase, nblock, fwd); err != nil {
		panic(err)
	}
	l := Layout{NBase: nbase}
	scores := l.NewScores(score, nblock)
	table := l.NewTable(fwd, nblock)
	nstate := l.NState()

	for blk := range nblock {
		pfwd := table.Row(blk)
		cfwd := table.Row(blk + 1)
		cscore := scores.Block(blk)

		parallel.For(nstate, func(to int) {
			if l.IsFlop(to) {
				b := to - nbase
				flip := cscore[l.FlopIndex(b)] + pfwd[b]
				flop := cscore[l.FlopIndex(to)] + pfwd[to]
				cfwd[to] = LogSumExp(flip, flop)
				return
			}
			acc := cscore[l.FlipIndex(to, 0)] + pfwd[0]
			for from := 1; from < nstate; from++ {
				acc = LogSumExp(acc, cscore[l.FlipIndex(to, from)]+pfwd[from])
			}
			cfwd[to] = acc
		}, s.cfg.Parallel)
	}

	return LogSumExpSlice(table.Row(nblock))
}
