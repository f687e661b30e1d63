// Package cli implements the shastream command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"shastream/internal/config"
	"shastream/internal/hwaccel"
	"shastream/internal/logging"
	"shastream/internal/sha256"
)

// options carries state shared across subcommands.
type options struct {
	errOut  io.Writer
	cfgPath string
	engine  string
	verbose bool

	cfg config.Config
	log *slog.Logger

	// closer releases the accelerator bus after command execution.
	closer io.Closer
}

// NewRootCommand creates the shastream root command.
func NewRootCommand(out, errOut io.Writer, in io.Reader) *cobra.Command {
	opts := &options{errOut: errOut}

	root := &cobra.Command{
		Use:           "shastream",
		Short:         "Streaming SHA-256 with a replaceable block-transform engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.teardown()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	if in != nil {
		root.SetIn(in)
	}

	root.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "path to YAML configuration file")
	root.PersistentFlags().StringVar(&opts.engine, "engine", "", "block-transform engine (software|accel)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newHashCommand(opts))
	root.AddCommand(newBenchCommand(opts))
	root.AddCommand(newVersionCommand(opts))

	return root
}

// setup resolves configuration and the logger before a command runs.
func (o *options) setup() error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.log = logging.New(o.errOut, level)

	o.cfg = config.Default()
	if o.cfgPath != "" {
		cfg, err := config.Load(o.cfgPath)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	if o.engine != "" {
		o.cfg.Engine = o.engine
		if err := o.cfg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) teardown() {
	if o.closer != nil {
		_ = o.closer.Close()
		o.closer = nil
	}
}

// buildEngine constructs the configured block-transform engine.
func (o *options) buildEngine() (sha256.Engine, error) {
	if o.cfg.Engine == config.EngineSoftware {
		return sha256.SoftwareEngine{}, nil
	}

	acc := o.cfg.Accelerator
	var bus hwaccel.Bus
	if acc.Device == config.DeviceSimulator {
		bus = hwaccel.NewSimulator()
	} else {
		mmio, err := hwaccel.OpenMMIO(acc.Device, acc.Base)
		if err != nil {
			return nil, fmt.Errorf("open accelerator: %w", err)
		}
		o.closer = mmio
		bus = mmio
	}
	o.log.Debug("accelerator engine selected", "device", acc.Device, "base", fmt.Sprintf("%#x", acc.Base))

	return hwaccel.NewEngine(bus, hwaccel.Config{
		PollTimeout: acc.PollTimeout,
		LockTimeout: acc.LockTimeout,
	}, o.log), nil
}
