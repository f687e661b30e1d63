// Package errors defines application errors and exit code mapping.
package errors

import sterrors "errors"

var (
	// ErrUsage indicates a command usage failure.
	ErrUsage = sterrors.New("usage error")
	// ErrAlreadyFinalized indicates an update or finalize on a terminal hash context.
	ErrAlreadyFinalized = sterrors.New("hash context already finalized")
	// ErrHardwareTimeout indicates the accelerator did not complete within the poll bound.
	ErrHardwareTimeout = sterrors.New("accelerator completion timeout")
	// ErrAcceleratorBusy indicates the accelerator guard could not be acquired in time.
	ErrAcceleratorBusy = sterrors.New("accelerator busy")
	// ErrUnsupported indicates a backend unavailable on this platform.
	ErrUnsupported = sterrors.New("not supported on this platform")
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if sterrors.Is(err, ErrUsage) {
		return 2
	}

	if sterrors.Is(err, ErrHardwareTimeout) || sterrors.Is(err, ErrAcceleratorBusy) {
		return 3
	}

	return 1
}
