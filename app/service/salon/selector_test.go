package salon

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickReplySingleCandidate(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pool := []string{"only"}

	// A single candidate is returned even right after itself.
	require.Equal(t, "only", pickReply(rng, pool, nil))
	require.Equal(t, "only", pickReply(rng, pool, []string{"only"}))
}

func TestPickReplySkipsLastReply(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pool := []string{"a", "b"}

	for range 50 {
		require.Equal(t, "b", pickReply(rng, pool, []string{"x", "a"}))
	}
}

func TestPickReplyOnlyLastPriorCounts(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pool := []string{"a", "b"}

	// "a" is allowed again because the most recent reply was "b".
	seen := map[string]bool{}
	for range 50 {
		seen[pickReply(rng, pool, []string{"a", "b"})] = true
	}
	require.True(t, seen["a"])
	require.False(t, seen["b"])
}
