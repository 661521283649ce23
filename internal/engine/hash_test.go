package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash32(t *testing.T) {
	// FNV-1a offset basis for the empty string.
	assert.Equal(t, uint32(2166136261), Hash32(""))

	assert.Equal(t, Hash32("seed|snatch|main"), Hash32("seed|snatch|main"), "hash must be stable")
	assert.NotEqual(t, Hash32("a"), Hash32("b"))
	assert.NotEqual(t, Hash32("1|snatch|main|w0"), Hash32("1|snatch|main|w1"))
}

func TestPickFromPool(t *testing.T) {
	pool := []Exercise{
		{Name: "Snatch"},
		{Name: "Power Snatch"},
		{Name: "Hang Snatch"},
	}

	first := PickFromPool(pool, "42|snatch|main", 0)
	require.NotNil(t, first)
	assert.Equal(t, *first, *PickFromPool(pool, "42|snatch|main", 0), "same key and week must repeat the pick")

	// Picks always come from the pool.
	for w := 0; w < 20; w++ {
		got := PickFromPool(pool, "42|snatch|main", w)
		require.NotNil(t, got)
		assert.Contains(t, []string{"Snatch", "Power Snatch", "Hang Snatch"}, got.Name)
	}

	assert.Nil(t, PickFromPool(nil, "42", 0))
}

func TestPickFromPoolVariesAcrossWeeks(t *testing.T) {
	pool := make([]Exercise, 10)
	for i := range pool {
		pool[i] = Exercise{Name: fmt.Sprintf("Variation %d", i)}
	}
	seen := map[string]bool{}
	for w := 0; w < 40; w++ {
		seen[PickFromPool(pool, "7|snatch|main", w).Name] = true
	}
	assert.Greater(t, len(seen), 1, "selection should rotate across weeks")
}

func TestPickFromPoolExcluding(t *testing.T) {
	pool := []Exercise{
		{Name: "Barbell Row"},
		{Name: "Pull-ups"},
	}
	got := PickFromPoolExcluding(pool, "9|acc", 0, []string{"Barbell Row"})
	require.NotNil(t, got)
	assert.Equal(t, "Pull-ups", got.Name)

	// Excluding everything falls back to the full pool.
	got = PickFromPoolExcluding(pool, "9|acc", 0, []string{"Barbell Row", "Pull-ups"})
	require.NotNil(t, got)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.55, clamp(0.30, 0.55, 0.92))
	assert.Equal(t, 0.92, clamp(1.10, 0.55, 0.92))
	assert.Equal(t, 0.80, clamp(0.80, 0.55, 0.92))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 78.0, roundTo(77.6, 1))
	assert.Equal(t, 77.0, roundTo(77.4, 1))
	assert.Equal(t, 77.5, roundTo(77.6, 2.5))
}
