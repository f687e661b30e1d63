package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shastream/internal/bench"
	apperrors "shastream/internal/errors"
)

// newBenchCommand creates the bench subcommand.
func newBenchCommand(opts *options) *cobra.Command {
	var (
		count int
		size  int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated hash computations on the selected engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive: %w", apperrors.ErrUsage)
			}
			if size < 0 {
				return fmt.Errorf("--size must be non-negative: %w", apperrors.ErrUsage)
			}

			engine, err := opts.buildEngine()
			if err != nil {
				return err
			}

			res, err := bench.Run(bench.Options{
				Engine:   engine,
				Messages: count,
				Size:     size,
				Seed:     seed,
			})
			if err != nil {
				return fmt.Errorf("run benchmark: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			fmt.Fprintf(cmd.OutOrStdout(), "last digest: %s\n", res.Last)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1000, "number of messages to hash")
	cmd.Flags().IntVarP(&size, "size", "s", 256, "message size in bytes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "message generator seed")
	return cmd
}
