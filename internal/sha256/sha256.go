// Package sha256 implements streaming SHA-256 (FIPS 180-4) with a
// replaceable per-block compression engine.
//
// The streaming context buffers partial blocks across writes, pads at
// message end, and tracks the total input length in a 64-bit bit
// counter. Inputs whose bit length exceeds 2^64-1 wrap modulo 2^64.
package sha256

import (
	"encoding/binary"
	"fmt"

	apperrors "shastream/internal/errors"
)

var initState = [StateWords]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Hasher is an incremental SHA-256 context. It is not safe for
// concurrent use; callers serialize access per logical stream.
type Hasher struct {
	engine    Engine
	state     [StateWords]uint32
	buf       [BlockSize]byte
	fill      int
	bits      uint64
	finalized bool
}

// New creates a Hasher backed by engine. A nil engine selects the
// software reference engine.
func New(engine Engine) *Hasher {
	if engine == nil {
		engine = SoftwareEngine{}
	}
	h := &Hasher{engine: engine}
	h.Reset()
	return h
}

// Reset returns the context to its initial state so it can hash a new
// stream, including after Finalize.
func (h *Hasher) Reset() {
	h.state = initState
	h.fill = 0
	h.bits = 0
	h.finalized = false
}

// Write absorbs p into the stream. The final digest depends only on the
// concatenation of all bytes written, never on how they were chunked.
// Write fails after Finalize, and propagates engine failures without
// advancing past the failed block.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		return 0, fmt.Errorf("update: %w", apperrors.ErrAlreadyFinalized)
	}

	written := 0
	for len(p) > 0 {
		// A full buffer here means a previous engine failure left a
		// block uncompressed; retry it before absorbing more.
		if h.fill == BlockSize {
			if err := h.flush(); err != nil {
				return written, err
			}
		}
		n := copy(h.buf[h.fill:], p)
		h.fill += n
		p = p[n:]
		written += n
		if h.fill == BlockSize {
			if err := h.flush(); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// flush compresses the buffered block and credits its bits.
func (h *Hasher) flush() error {
	if err := h.engine.Transform(&h.buf, &h.state); err != nil {
		return fmt.Errorf("compress block: %w", err)
	}
	h.bits += BlockSize * 8
	h.fill = 0
	return nil
}

// Finalize pads the stream, compresses the trailing block(s), and
// returns the digest. The context becomes terminal; further Write or
// Finalize calls fail with ErrAlreadyFinalized. Padding runs on local
// copies, so an engine failure leaves the context unchanged and
// Finalize may simply be retried.
func (h *Hasher) Finalize() (Digest, error) {
	if h.finalized {
		return Digest{}, fmt.Errorf("finalize: %w", apperrors.ErrAlreadyFinalized)
	}

	if h.fill == BlockSize {
		if err := h.flush(); err != nil {
			return Digest{}, err
		}
	}

	bits := h.bits + uint64(h.fill)*8
	state := h.state
	block := h.buf

	i := h.fill
	block[i] = 0x80
	i++
	// The 8-byte length trailer needs positions 56..63. A fill position
	// of exactly 56 still fits; only beyond that does the padding spill
	// into an extra block.
	if i > 56 {
		for ; i < BlockSize; i++ {
			block[i] = 0
		}
		if err := h.engine.Transform(&block, &state); err != nil {
			return Digest{}, fmt.Errorf("compress padding block: %w", err)
		}
		i = 0
	}
	for ; i < 56; i++ {
		block[i] = 0
	}
	binary.BigEndian.PutUint64(block[56:], bits)
	if err := h.engine.Transform(&block, &state); err != nil {
		return Digest{}, fmt.Errorf("compress final block: %w", err)
	}

	var d Digest
	for j, s := range state {
		binary.BigEndian.PutUint32(d[j*4:], s)
	}
	h.state = state
	h.bits = bits
	h.finalized = true
	return d, nil
}

// TotalBits returns the number of message bits absorbed so far,
// excluding padding.
func (h *Hasher) TotalBits() uint64 { return h.bits }

// Sum computes the digest of data in one shot on the software engine.
func Sum(data []byte) Digest {
	d, err := SumWith(SoftwareEngine{}, data)
	if err != nil {
		// The software engine cannot fail.
		panic(err)
	}
	return d
}

// SumWith computes the digest of data in one shot on engine.
func SumWith(engine Engine, data []byte) (Digest, error) {
	h := New(engine)
	if _, err := h.Write(data); err != nil {
		return Digest{}, err
	}
	return h.Finalize()
}
