package searcher

import (
	"math"
	"time"

	"kalah/game"
)

// Depth policy hyperparameters.
const (
	// MinDepth is the floor under any time pressure: a 1-ply lookahead
	// still returns a legal move.
	MinDepth = 1
	// MaxDepth bounds the worst-case branching cost.
	MaxDepth = 15

	depthFactor = 2.2
	// With this much time left the policy never drops below deepFloor.
	deepFloorBudget = 5 * time.Second
	deepFloor       = 5
)

// DepthPolicy converts a wall-clock budget into a search depth. Inputs
// are the time remaining for the side to move, the pieces still in play
// (fewer pieces mean cheaper subtrees), and a position-complexity factor
// in (0, 1]. The result is always within [MinDepth, MaxDepth].
type DepthPolicy func(remaining time.Duration, piecesInPlay int, complexity float64) int

// ComplexityFactor estimates how forced the position is; lower values
// shrink the search depth. Swappable: the engine contract does not
// depend on any particular formula.
type ComplexityFactor func(game.State) float64

// DefaultDepthPolicy scales depth logarithmically with the per-piece
// time budget. Degenerate inputs (zero or negative time, an empty
// board) clamp to the floor rather than failing.
func DefaultDepthPolicy(remaining time.Duration, piecesInPlay int, complexity float64) int {
	ms := float64(remaining.Milliseconds())
	if ms < 1 {
		ms = 1
	}
	if piecesInPlay < 1 {
		piecesInPlay = 1
	}

	depth := int(depthFactor * complexity * math.Log(ms/float64(piecesInPlay)))

	floor := MinDepth
	if remaining > deepFloorBudget {
		floor = deepFloor
	}
	if depth < floor {
		depth = floor
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	return depth
}

// ObviousMoveFactor halves the effective budget weight when the mover
// has a free-move pit (the reply is cheap to find), and discounts by 5%
// per piece of capture-threat imbalance.
func ObviousMoveFactor(s game.State) float64 {
	if s.FreeMoves() > 0 {
		return 0.5
	}
	diff := game.CaptureThreat(s.Board, game.Max) - game.CaptureThreat(s.Board, game.Min)
	return math.Pow(0.95, math.Abs(float64(diff)))
}
