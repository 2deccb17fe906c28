package cli

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/flipflop/internal/flipflop"
	"github.com/spf13/cobra"
)

func (c *CLI) newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decode",
		Short:   "Basecall synthetic reads with Viterbi",
		Example: `  flipflop decode --alphabet ACGT --nblock 200 --reads 2 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := flipflop.NewAlphabet(c.cfg.Alphabet)
			if err != nil {
				return err
			}
			if alphabet.NBase() != c.cfg.NBase {
				return fmt.Errorf("alphabet %q has %d bases, nbase is %d", alphabet, alphabet.NBase(), c.cfg.NBase)
			}

			out := cmd.OutOrStdout()
			for i, read := range syntheticReads(c.cfg, c.cfg.Reads) {
				call, err := flipflop.Basecall(read, alphabet)
				if err != nil {
					return fmt.Errorf("read %d: %w", i, err)
				}
				slog.Debug("Decoded read", "read", i, "length", len(call.Sequence), "score", call.Score)
				fmt.Fprintf(out, ">read_%d score=%.4f\n%s\n", i, call.Score, call.Sequence)
			}
			return nil
		},
	}
}
