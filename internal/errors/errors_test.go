package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "usage", err: ErrUsage, want: 2},
		{name: "wrapped usage", err: fmt.Errorf("bad flag: %w", ErrUsage), want: 2},
		{name: "hardware timeout", err: fmt.Errorf("poll: %w", ErrHardwareTimeout), want: 3},
		{name: "accelerator busy", err: fmt.Errorf("guard: %w", ErrAcceleratorBusy), want: 3},
		{name: "already finalized", err: ErrAlreadyFinalized, want: 1},
		{name: "other", err: fmt.Errorf("boom"), want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
