package cli

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"
)

// CheckResult compares the two passes for one read.
type CheckResult struct {
	Read     int
	Forward  float32
	Backward float32
	RelDiff  float64
}

// runCheck evaluates forward totals as a batch, then backward per read.
func runCheck(ctx context.Context, cfg Config) ([]CheckResult, error) {
	reads := syntheticReads(cfg, cfg.Reads)
	scorer := cfg.Scorer()

	start := time.Now()
	fwd, err := scorer.LogPartitionBatch(ctx, reads, cfg.NBase)
	if err != nil {
		return nil, err
	}
	slog.Debug("Forward batch completed", "reads", len(reads), "duration", time.Since(start))

	nstate := 2 * cfg.NBase
	bwd := make([]float32, (cfg.NBlock+1)*nstate)
	results := make([]CheckResult, len(reads))
	for i, read := range reads {
		clear(bwd[cfg.NBlock*nstate:])
		b := scorer.Backward(read, cfg.NBase, cfg.NBlock, bwd)
		results[i] = CheckResult{
			Read:     i,
			Forward:  fwd[i],
			Backward: b,
			RelDiff:  relDiff(fwd[i], b),
		}
	}
	return results, nil
}

func relDiff(a, b float32) float64 {
	d := math.Abs(float64(a) - float64(b))
	scale := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if scale < 1 {
		return d
	}
	return d / scale
}

func (c *CLI) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   "Check forward and backward totals agree on synthetic reads",
		Example: `  flipflop check --nbase 4 --nblock 2000 --reads 16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("Checking", "reads", c.cfg.Reads, "nbase", c.cfg.NBase, "nblock", c.cfg.NBlock)
			results, err := runCheck(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%5s  %14s  %14s  %10s\n", "read", "forward", "backward", "rel diff")
			failed := 0
			for _, r := range results {
				fmt.Fprintf(out, "%5d  %14.6f  %14.6f  %10.3g\n", r.Read, r.Forward, r.Backward, r.RelDiff)
				if r.RelDiff > c.cfg.Tolerance {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d reads exceed tolerance %g", failed, len(results), c.cfg.Tolerance)
			}
			return nil
		},
	}
}
