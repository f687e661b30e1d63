package hwaccel

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	apperrors "shastream/internal/errors"
	"shastream/internal/logging"
	"shastream/internal/sha256"
)

// DefaultPollTimeout bounds the DONE poll for one transform.
const DefaultPollTimeout = 100 * time.Millisecond

// DefaultLockTimeout bounds acquisition of the accelerator guard.
const DefaultLockTimeout = 1 * time.Second

// Config tunes one Engine.
type Config struct {
	// PollTimeout bounds the busy-wait for DONE. Zero selects
	// DefaultPollTimeout; the poll is never unbounded.
	PollTimeout time.Duration
	// LockTimeout bounds waiting for exclusive access to the register
	// bank. Zero selects DefaultLockTimeout.
	LockTimeout time.Duration
}

// Engine is a sha256.Engine backed by the register-mapped accelerator.
// It is safe for concurrent use by multiple hashers: each transform
// holds the ownership token for the full register sequence.
type Engine struct {
	bus         Bus
	token       chan struct{}
	pollTimeout time.Duration
	lockTimeout time.Duration
	log         *slog.Logger
}

var _ sha256.Engine = (*Engine)(nil)

// NewEngine creates an Engine over bus. A nil logger discards debug
// output.
func NewEngine(bus Bus, cfg Config, logger *slog.Logger) *Engine {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}
	if cfg.LockTimeout <= 0 {
		cfg.LockTimeout = DefaultLockTimeout
	}
	if logger == nil {
		logger = logging.Discard()
	}
	e := &Engine{
		bus:         bus,
		token:       make(chan struct{}, 1),
		pollTimeout: cfg.PollTimeout,
		lockTimeout: cfg.LockTimeout,
		log:         logger,
	}
	e.token <- struct{}{}
	return e
}

// Transform runs one compression round on the accelerator. On any
// failure state is left unmodified.
func (e *Engine) Transform(block *[sha256.BlockSize]byte, state *[sha256.StateWords]uint32) error {
	if err := e.acquire(); err != nil {
		return err
	}
	defer e.release()

	for i := 0; i < msgWords; i++ {
		e.bus.Write32(regMsg+uint32(i)*4, binary.BigEndian.Uint32(block[i*4:]))
	}
	for i := 0; i < stateWords; i++ {
		e.bus.Write32(regStateIn+uint32(i)*4, state[i])
	}

	// Clear first so the GO edge is unambiguous, then trigger.
	e.bus.Write32(regControl, 0)
	e.bus.Write32(regControl, ctrlGo)

	start := time.Now()
	if err := e.waitDone(); err != nil {
		return err
	}
	e.log.Debug("accelerator round complete", "latency", time.Since(start))

	for i := 0; i < stateWords; i++ {
		state[i] = e.bus.Read32(regStateOut + uint32(i)*4)
	}
	return nil
}

// acquire takes the ownership token within the lock bound.
func (e *Engine) acquire() error {
	select {
	case <-e.token:
		return nil
	default:
	}
	t := time.NewTimer(e.lockTimeout)
	defer t.Stop()
	select {
	case <-e.token:
		return nil
	case <-t.C:
		return fmt.Errorf("acquire accelerator guard: %w", apperrors.ErrAcceleratorBusy)
	}
}

func (e *Engine) release() {
	e.token <- struct{}{}
}

// waitDone polls the control register until DONE, bounded by the poll
// timeout. Every iteration performs a fresh bus read.
func (e *Engine) waitDone() error {
	deadline := time.Now().Add(e.pollTimeout)
	for {
		if e.bus.Read32(regControl)&ctrlDone != 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("poll completion after %v: %w", e.pollTimeout, apperrors.ErrHardwareTimeout)
		}
	}
}
