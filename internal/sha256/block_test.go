package sha256

import (
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftwareEngineMatchesStdlibAcrossRandomMessages(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		msg := make([]byte, rng.Intn(512))
		rng.Read(msg)

		want := stdsha256.Sum256(msg)
		got, err := SumWith(SoftwareEngine{}, msg)
		require.NoError(t, err)
		require.Equal(t, hex.EncodeToString(want[:]), got.String())
	}
}

func TestTransformIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	var block [BlockSize]byte
	rng.Read(block[:])

	s1 := initState
	s2 := initState
	require.NoError(t, SoftwareEngine{}.Transform(&block, &s1))
	require.NoError(t, SoftwareEngine{}.Transform(&block, &s2))
	assert.Equal(t, s1, s2)
}

func TestTransformDoesNotModifyBlock(t *testing.T) {
	var block [BlockSize]byte
	for i := range block {
		block[i] = byte(i)
	}
	saved := block

	state := initState
	require.NoError(t, SoftwareEngine{}.Transform(&block, &state))
	assert.Equal(t, saved, block)
	assert.NotEqual(t, initState, state)
}
