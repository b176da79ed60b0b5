package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kalah/game"
)

func TestDefaultDepthPolicyClamps(t *testing.T) {
	tests := []struct {
		name       string
		remaining  time.Duration
		pieces     int
		complexity float64
		want       int
	}{
		{"zero time", 0, 48, 1.0, MinDepth},
		{"negative time", -time.Second, 48, 1.0, MinDepth},
		{"zero pieces", time.Minute, 0, 1.0, MaxDepth},
		{"ample time hits cap", 2 * time.Minute, 10, 1.0, MaxDepth},
		{"deep floor above five seconds", 6 * time.Second, 48, 0.01, deepFloor},
		{"no deep floor below five seconds", time.Second, 48, 0.01, MinDepth},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DefaultDepthPolicy(tc.remaining, tc.pieces, tc.complexity)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultDepthPolicyBounds(t *testing.T) {
	budgets := []time.Duration{-time.Hour, 0, time.Millisecond, time.Second,
		30 * time.Second, 5 * time.Minute, 24 * time.Hour}
	for _, budget := range budgets {
		for pieces := 0; pieces <= 48; pieces += 6 {
			for _, complexity := range []float64{0.1, 0.5, 1.0} {
				got := DefaultDepthPolicy(budget, pieces, complexity)
				assert.GreaterOrEqual(t, got, MinDepth)
				assert.LessOrEqual(t, got, MaxDepth)
			}
		}
	}
}

func TestDepthGrowsWithTime(t *testing.T) {
	shallow := DefaultDepthPolicy(2*time.Second, 48, 1.0)
	deep := DefaultDepthPolicy(90*time.Second, 48, 1.0)
	assert.Greater(t, deep, shallow)
}

func TestDepthGrowsAsPiecesLeave(t *testing.T) {
	early := DefaultDepthPolicy(30*time.Second, 48, 1.0)
	late := DefaultDepthPolicy(30*time.Second, 6, 1.0)
	assert.GreaterOrEqual(t, late, early)
}

func TestObviousMoveFactor(t *testing.T) {
	s := game.NewState()
	// The standard start has a free-move pit for the mover.
	assert.Equal(t, 0.5, ObviousMoveFactor(s))

	// No free move, no capture threats: full factor.
	s = game.State{Turn: game.Max}
	s.Board = game.Board{5, 4, 5, 4, 3, 2, 1, 5, 4, 5, 4, 3, 2, 1}
	assert.Equal(t, 1.0, ObviousMoveFactor(s))

	// A one-sided capture threat discounts the factor.
	s = game.State{Turn: game.Max}
	s.Board = game.Board{0, 1, 0, 4, 4, 4, 0, 4, 4, 4, 8, 4, 4, 7}
	factor := ObviousMoveFactor(s)
	assert.Less(t, factor, 1.0)
	assert.Greater(t, factor, 0.5)
}
