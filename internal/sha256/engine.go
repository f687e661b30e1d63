package sha256

// Engine compresses one 512-bit message block into the chaining state,
// per FIPS 180-4 section 6.2. Implementations must be deterministic and
// must mutate nothing but state. The error return exists for backends
// that can fail mid-flight (hardware timeout, contention); a non-nil
// error means state was left untouched.
type Engine interface {
	Transform(block *[BlockSize]byte, state *[StateWords]uint32) error
}
