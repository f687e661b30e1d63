package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shastream/internal/sha256"
)

// newHashCommand creates the hash subcommand. Arguments are hashed as
// literal messages; -f hashes file contents; with neither, stdin is
// hashed.
func newHashCommand(opts *options) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "hash [message ...]",
		Short: "Print SHA-256 digests of messages, files, or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.buildEngine()
			if err != nil {
				return err
			}

			for _, arg := range args {
				d, err := sha256.SumWith(engine, []byte(arg))
				if err != nil {
					return fmt.Errorf("hash message: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %q\n", d, arg)
			}

			for _, path := range files {
				d, err := hashFile(engine, path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d, path)
			}

			if len(args) == 0 && len(files) == 0 {
				d, err := hashStream(engine, cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("hash stdin: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  -\n", d)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "hash the contents of a file (repeatable)")
	return cmd
}

func hashFile(engine sha256.Engine, path string) (sha256.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return sha256.Digest{}, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	d, err := hashStream(engine, f)
	if err != nil {
		return sha256.Digest{}, fmt.Errorf("hash %s: %w", path, err)
	}
	return d, nil
}

func hashStream(engine sha256.Engine, r io.Reader) (sha256.Digest, error) {
	h := sha256.New(engine)
	if _, err := io.Copy(h, r); err != nil {
		return sha256.Digest{}, err
	}
	return h.Finalize()
}
