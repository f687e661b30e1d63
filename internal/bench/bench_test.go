package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shastream/internal/hwaccel"
	"shastream/internal/sha256"
)

func TestRunCountsMessagesAndBytes(t *testing.T) {
	res, err := Run(Options{Messages: 10, Size: 128, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Messages)
	assert.Equal(t, uint64(10*128), res.Bytes)
	assert.False(t, res.Last.IsZero())
	assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	a, err := Run(Options{Messages: 5, Size: 64, Seed: 9})
	require.NoError(t, err)
	b, err := Run(Options{Messages: 5, Size: 64, Seed: 9})
	require.NoError(t, err)
	assert.Equal(t, a.Last, b.Last)

	c, err := Run(Options{Messages: 5, Size: 64, Seed: 10})
	require.NoError(t, err)
	assert.NotEqual(t, a.Last, c.Last)
}

func TestRunEnginesAgree(t *testing.T) {
	sw, err := Run(Options{Messages: 3, Size: 200, Seed: 4, Engine: sha256.SoftwareEngine{}})
	require.NoError(t, err)

	hw, err := Run(Options{
		Messages: 3,
		Size:     200,
		Seed:     4,
		Engine:   hwaccel.NewEngine(hwaccel.NewSimulator(), hwaccel.Config{}, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, sw.Last, hw.Last)
}

func TestRunRejectsBadOptions(t *testing.T) {
	_, err := Run(Options{Messages: 0})
	require.Error(t, err)
	_, err = Run(Options{Messages: 1, Size: -1})
	require.Error(t, err)
}

func TestResultString(t *testing.T) {
	res, err := Run(Options{Messages: 2, Size: 1024, Seed: 1})
	require.NoError(t, err)
	s := res.String()
	assert.True(t, strings.Contains(s, "messages"), "got %q", s)
	assert.True(t, strings.Contains(s, "msg/s"), "got %q", s)
}
