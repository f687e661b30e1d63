//go:build !linux

package hwaccel

import (
	"fmt"

	apperrors "shastream/internal/errors"
)

// MMIOBus is unavailable off Linux; the simulator backend still works.
type MMIOBus struct{}

// OpenMMIO always fails on this platform.
func OpenMMIO(device string, base uint32) (*MMIOBus, error) {
	return nil, fmt.Errorf("map %s at %#x: %w", device, base, apperrors.ErrUnsupported)
}

// Read32 implements Bus.
func (b *MMIOBus) Read32(off uint32) uint32 { return 0 }

// Write32 implements Bus.
func (b *MMIOBus) Write32(off uint32, v uint32) {}

// Close is a no-op.
func (b *MMIOBus) Close() error { return nil }
