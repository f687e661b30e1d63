package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shastream/internal/buildinfo"
)

// newVersionCommand creates the version subcommand.
func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Get().String()); err != nil {
				return fmt.Errorf("write version output: %w", err)
			}
			return nil
		},
	}
}
