package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFairCatalogIntegrity(t *testing.T) {
	require.Equal(t, 254, FairStateCount())

	for i, b := range fairStates {
		assert.Equal(t, TotalPieces, b.Total(), "catalog entry %d", i)
		assert.LessOrEqual(t, b[MaxStore]+b[MinStore], 2,
			"catalog entry %d starts with nearly all pieces in play", i)
	}
}

func TestNewFairStateByIndex(t *testing.T) {
	s := NewFairState(0)

	assert.Equal(t, fairStates[0], s.Board)
	assert.Equal(t, Max, s.Turn, "MAX always opens")
	assert.False(t, s.IsTerminal())
}

func TestNewFairStateOutOfRangeFallsBackToRandom(t *testing.T) {
	for _, index := range []int{-1, FairStateCount(), FairStateCount() + 100} {
		s := NewFairState(index)
		assert.Equal(t, TotalPieces, s.Board.Total(), "index %d", index)
		assert.Equal(t, Max, s.Turn)

		found := false
		for _, b := range fairStates {
			if b == s.Board {
				found = true
				break
			}
		}
		assert.True(t, found, "index %d must yield a catalog entry", index)
	}
}
