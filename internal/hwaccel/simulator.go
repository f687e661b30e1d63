package hwaccel

import (
	"encoding/binary"
	"sync"

	"shastream/internal/sha256"
)

// Simulator is an in-process register bank with the accelerator's
// observable semantics: a GO write latches the message and state-in
// words, runs one compression round, publishes state-out, and raises
// DONE. DONE stays raised until the next control-register clear.
//
// It stands in for real hardware in tests and on machines without the
// device, and is the reference against which the driver's sequencing
// is checked.
type Simulator struct {
	mu       sync.Mutex
	control  uint32
	msg      [msgWords]uint32
	stateIn  [stateWords]uint32
	stateOut [stateWords]uint32
	wedged   bool
}

var _ Bus = (*Simulator)(nil)

// NewSimulator creates an idle simulated register bank.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Wedge makes subsequent GO cycles never complete, for exercising the
// driver's poll bound.
func (s *Simulator) Wedge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wedged = true
}

// Write32 implements Bus.
func (s *Simulator) Write32(off uint32, v uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case off == regControl:
		if v&ctrlGo == 0 {
			// Clear drops GO and DONE both.
			s.control = 0
			return
		}
		s.control = ctrlGo
		if s.wedged {
			return
		}
		s.round()
		s.control |= ctrlDone
	case off >= regMsg && off < regStateIn:
		s.msg[(off-regMsg)/4] = v
	case off >= regStateIn && off < regStateOut:
		s.stateIn[(off-regStateIn)/4] = v
	}
	// Writes to state-out or outside the window are ignored, as the
	// device would.
}

// Read32 implements Bus.
func (s *Simulator) Read32(off uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case off == regControl:
		return s.control
	case off >= regMsg && off < regStateIn:
		return s.msg[(off-regMsg)/4]
	case off >= regStateIn && off < regStateOut:
		return s.stateIn[(off-regStateIn)/4]
	case off >= regStateOut && off < regWindow:
		return s.stateOut[(off-regStateOut)/4]
	}
	return 0
}

// round runs one compression over the latched words.
func (s *Simulator) round() {
	var block [sha256.BlockSize]byte
	for i, w := range s.msg {
		binary.BigEndian.PutUint32(block[i*4:], w)
	}
	st := s.stateIn
	if err := (sha256.SoftwareEngine{}).Transform(&block, &st); err != nil {
		return
	}
	s.stateOut = st
}
