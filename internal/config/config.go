// Package config loads shastream runtime configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	apperrors "shastream/internal/errors"
	"shastream/internal/hwaccel"
)

// Engine backend names accepted in configuration and on the CLI.
const (
	EngineSoftware = "software"
	EngineAccel    = "accel"
)

// DeviceSimulator selects the in-process register bank instead of a
// memory device node.
const DeviceSimulator = "sim"

// Config is the resolved runtime configuration.
type Config struct {
	Engine      string
	Accelerator Accelerator
}

// Accelerator tunes the register-mapped backend.
type Accelerator struct {
	Base        uint32
	Device      string
	PollTimeout time.Duration
	LockTimeout time.Duration
}

// file mirrors the YAML document; durations are strings so the file
// can say "100ms" rather than nanosecond integers.
type file struct {
	Engine      string `yaml:"engine"`
	Accelerator struct {
		Base        uint32 `yaml:"base"`
		Device      string `yaml:"device"`
		PollTimeout string `yaml:"poll_timeout"`
		LockTimeout string `yaml:"lock_timeout"`
	} `yaml:"accelerator"`
}

// Default returns the configuration used when no file is given:
// software engine, simulator-backed accelerator at the standard base.
func Default() Config {
	return Config{
		Engine: EngineSoftware,
		Accelerator: Accelerator{
			Base:        hwaccel.DefaultBase,
			Device:      DeviceSimulator,
			PollTimeout: hwaccel.DefaultPollTimeout,
			LockTimeout: hwaccel.DefaultLockTimeout,
		},
	}
}

// Load reads and validates a YAML configuration file. Absent fields
// keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var f file
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg := Default()
	if f.Engine != "" {
		cfg.Engine = f.Engine
	}
	if f.Accelerator.Base != 0 {
		cfg.Accelerator.Base = f.Accelerator.Base
	}
	if f.Accelerator.Device != "" {
		cfg.Accelerator.Device = f.Accelerator.Device
	}
	if f.Accelerator.PollTimeout != "" {
		d, err := time.ParseDuration(f.Accelerator.PollTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse poll_timeout: %v: %w", err, apperrors.ErrUsage)
		}
		cfg.Accelerator.PollTimeout = d
	}
	if f.Accelerator.LockTimeout != "" {
		d, err := time.ParseDuration(f.Accelerator.LockTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse lock_timeout: %v: %w", err, apperrors.ErrUsage)
		}
		cfg.Accelerator.LockTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Engine {
	case EngineSoftware, EngineAccel:
	default:
		return fmt.Errorf("unknown engine %q: %w", c.Engine, apperrors.ErrUsage)
	}
	if c.Accelerator.Device == "" {
		return fmt.Errorf("accelerator device must be set: %w", apperrors.ErrUsage)
	}
	if c.Accelerator.PollTimeout <= 0 || c.Accelerator.LockTimeout <= 0 {
		return fmt.Errorf("accelerator timeouts must be positive: %w", apperrors.ErrUsage)
	}
	return nil
}
