// Package bench times repeated hash computations and reports throughput.
package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"

	"shastream/internal/sha256"
)

// Options configures one benchmark run.
type Options struct {
	// Engine executes block compression; nil selects the software engine.
	Engine sha256.Engine
	// Messages is how many messages to hash.
	Messages int
	// Size is the length of each message in bytes.
	Size int
	// Seed drives the deterministic message generator.
	Seed int64
}

// Result summarizes a completed run.
type Result struct {
	Messages int
	Bytes    uint64
	Elapsed  time.Duration
	Last     sha256.Digest
}

// Run hashes Messages generated messages of Size bytes and times the
// whole batch.
func Run(opts Options) (Result, error) {
	if opts.Messages <= 0 {
		return Result{}, fmt.Errorf("message count must be positive, got %d", opts.Messages)
	}
	if opts.Size < 0 {
		return Result{}, fmt.Errorf("message size must be non-negative, got %d", opts.Size)
	}

	msg := make([]byte, opts.Size)
	rng := rand.New(rand.NewSource(opts.Seed))

	res := Result{Messages: opts.Messages}
	start := time.Now()
	for i := 0; i < opts.Messages; i++ {
		rng.Read(msg)
		d, err := sha256.SumWith(opts.Engine, msg)
		if err != nil {
			return Result{}, fmt.Errorf("hash message %d: %w", i, err)
		}
		res.Last = d
		res.Bytes += uint64(opts.Size)
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// String formats the run for CLI output.
func (r Result) String() string {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		secs = 1e-9
	}
	byteRate := uint64(float64(r.Bytes) / secs)
	msgRate := float64(r.Messages) / secs
	return fmt.Sprintf("%s messages, %s in %s (%s/s, %s msg/s)",
		humanize.Comma(int64(r.Messages)),
		humanize.Bytes(r.Bytes),
		r.Elapsed.Round(time.Microsecond),
		humanize.Bytes(byteRate),
		humanize.CommafWithDigits(msgRate, 1))
}
