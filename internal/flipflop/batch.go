package flipflop

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LogPartitionBatch returns the log-partition value of each read.
//
// Every read is a flat score slice holding a whole number of blocks. Tables
// are seeded with zeros at the start, so the forward total covers paths that
// begin in any state. Reads run concurrently, at most Config.BatchWorkers at
// a time; the first failure or a cancelled ctx stops the batch.
func (s *Scorer) LogPartitionBatch(ctx context.Context, scores [][]float32, nbase int) ([]float32, error) {
	l, err := NewLayout(nbase)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	workers := s.cfg.BatchWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	totals := make([]float32, len(scores))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, score := range scores {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if score == nil {
				return fmt.Errorf("batch: read %d: %w", i, ErrNilBuffer)
			}
			nblock, err := BlockCount(score, nbase)
			if err != nil {
				return fmt.Errorf("batch: read %d: %w", i, err)
			}
			fwd := make([]float32, (nblock+1)*l.NState())
			totals[i] = s.Forward(score, nbase, nblock, fwd)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return totals, nil
}
