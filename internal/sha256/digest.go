package sha256

import "encoding/hex"

// Size is the final digest length in bytes.
const Size = 32

// BlockSize is the compression block length in bytes.
const BlockSize = 64

// StateWords is the number of 32-bit chaining state words.
const StateWords = 8

// Digest is a finalized SHA-256 checksum.
type Digest [Size]byte

// String returns the 64-character lowercase hex form, most significant
// nibble first.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Bytes returns the raw 32 digest bytes.
func (d Digest) Bytes() []byte { return d[:] }

// IsZero reports whether d is the all-zero value.
func (d Digest) IsZero() bool { return d == Digest{} }
