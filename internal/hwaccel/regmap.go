// Package hwaccel drives a register-mapped SHA-256 block accelerator.
//
// The accelerator exposes one register bank: a control register with a
// GO trigger and a DONE flag, 16 message-word inputs, 8 chaining-state
// inputs, and 8 chaining-state outputs. One transform is one full
// write-message/write-state/GO/poll/read-result sequence; the bank is a
// single shared physical resource, so the sequence runs under an
// exclusive guard.
package hwaccel

// DefaultBase is the physical base address of accelerator 0.
const DefaultBase uint32 = 0x80001300

// Register offsets relative to the base address.
const (
	regControl  uint32 = 0x00
	regMsg      uint32 = 0x04
	regStateIn  uint32 = 0x44
	regStateOut uint32 = 0x64
	regWindow   uint32 = 0x84
)

// Control register bits.
const (
	ctrlGo   uint32 = 0x00000001
	ctrlDone uint32 = 0x80000000
)

const (
	msgWords   = 16
	stateWords = 8
)

// Bus is word-granular access to the accelerator register bank.
// Implementations must preserve strict program order between calls and
// must perform a fresh device access per call; no caching, combining,
// or reordering.
type Bus interface {
	Read32(off uint32) uint32
	Write32(off uint32, v uint32)
}
