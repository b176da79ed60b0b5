package searcher

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"kalah/game"
)

// minimax is the unpruned reference implementation: same depth
// accounting, same strict-inequality tie-break, no cutoffs.
func minimax(st game.State, evaluate game.Evaluate, depth int) (game.Move, float64) {
	if st.IsTerminal() {
		return game.NoMove, float64(st.Utility())
	}
	if depth <= 0 {
		return game.NoMove, evaluate(st)
	}

	moves := st.LegalMoves()
	bestMove := moves[0]
	if st.Turn == game.Max {
		best := math.Inf(-1)
		for _, m := range moves {
			if _, v := minimax(st.Apply(m), evaluate, depth-1); v > best {
				best, bestMove = v, m
			}
		}
		return bestMove, best
	}
	best := math.Inf(1)
	for _, m := range moves {
		if _, v := minimax(st.Apply(m), evaluate, depth-1); v < best {
			best, bestMove = v, m
		}
	}
	return bestMove, best
}

// randomState plays a few random moves to reach a mid-game position.
func randomState(rng *rand.Rand, plies int) game.State {
	s := game.NewFairState(rng.Intn(game.FairStateCount()))
	for i := 0; i < plies && !s.IsTerminal(); i++ {
		moves := s.LegalMoves()
		s = s.Apply(moves[rng.Intn(len(moves))])
	}
	return s
}

func TestSearchReturnsLegalMove(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	searcher := NewAlphaBeta(WithFixedDepth(3))

	for i := 0; i < 25; i++ {
		s := randomState(rng, rng.Intn(30))
		if s.IsTerminal() {
			continue
		}
		move, _ := searcher.Search(NewNode(s), time.Second)
		assert.Contains(t, s.LegalMoves(), move, "position %d: %s", i, s.Compact())
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		s := randomState(rng, rng.Intn(20))
		if s.IsTerminal() {
			continue
		}
		first := NewAlphaBeta(WithFixedDepth(4))
		second := NewAlphaBeta(WithFixedDepth(4))

		moveA, _ := first.Search(NewNode(s), time.Second)
		moveB, _ := second.Search(NewNode(s), time.Second)
		assert.Equal(t, moveA, moveB, "position %d: %s", i, s.Compact())
	}
}

func TestPruningMatchesPlainMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, depth := range []int{1, 2, 3, 5} {
		for i := 0; i < 8; i++ {
			s := randomState(rng, rng.Intn(25))
			if s.IsTerminal() {
				continue
			}
			searcher := NewAlphaBeta(WithFixedDepth(depth), WithMetrics())
			gotMove, metric := searcher.Search(NewNode(s), time.Second)
			wantMove, wantValue := minimax(s, game.EvaluateScoreDiff, depth)

			assert.Equal(t, wantMove, gotMove, "depth %d position %d: %s", depth, i, s.Compact())
			assert.Equal(t, wantValue, metric.Value, "depth %d position %d: %s", depth, i, s.Compact())
		}
	}
}

func TestTieBreaksFollowExpansionOrder(t *testing.T) {
	// A flat evaluation makes every depth-1 value identical unless a
	// move captures or scores; from a symmetric start with no such move
	// the searcher must return the first legal move.
	flat := func(game.State) float64 { return 0 }
	s := game.State{Turn: game.Max}
	s.Board = game.Board{2, 2, 2, 2, 2, 2, 12, 2, 2, 2, 2, 2, 2, 12}

	searcher := NewAlphaBeta(WithFixedDepth(1), WithEvaluationFn(flat))
	move, _ := searcher.Search(NewNode(s), time.Second)

	assert.Equal(t, s.LegalMoves()[0], move)
}

func TestSearchPrefersImmediateCapture(t *testing.T) {
	s := game.State{Turn: game.Max}
	// Pit 1 captures pit 10's eight pieces; every alternative scores at
	// most one point.
	s.Board = game.Board{0, 1, 0, 4, 4, 4, 0, 4, 4, 4, 8, 4, 4, 7}

	searcher := NewAlphaBeta(WithFixedDepth(1), WithMetrics())
	move, metric := searcher.Search(NewNode(s), time.Second)

	assert.Equal(t, game.Move(1), move)
	assert.Equal(t, 2.0, metric.Value, "nine captured against seven already banked")
}

func TestSearchUsesMinimumDepthUnderTimePressure(t *testing.T) {
	s := game.NewState()
	searcher := NewAlphaBeta(WithMetrics())

	// A degenerate budget must still produce a legal move promptly.
	move, metric := searcher.Search(NewNode(s), 0)

	assert.Contains(t, s.LegalMoves(), move)
	assert.Equal(t, MinDepth, metric.TargetDepth)
	assert.Equal(t, MinDepth, metric.CompletedDepth)
}

func TestSearchPanicsOnTerminalRoot(t *testing.T) {
	s := game.State{Turn: game.Max}
	s.Board[game.MaxStore] = 25
	s.Board[game.MinStore] = 23
	require.True(t, s.IsTerminal())

	assert.Panics(t, func() {
		NewAlphaBeta().Search(NewNode(s), time.Second)
	})
}

func TestOrderedChildrenPutStoreSwingsFirst(t *testing.T) {
	s := game.State{Turn: game.Max}
	// Pit 1 captures for nine; pit 5 banks one; the rest score nothing.
	s.Board = game.Board{0, 1, 0, 4, 4, 4, 0, 4, 4, 4, 8, 4, 4, 7}

	children := orderedChildren(s)
	require.Len(t, children, len(s.LegalMoves()))

	for i := 1; i < len(children); i++ {
		assert.GreaterOrEqual(t, children[i-1].Utility(), children[i].Utility())
	}
	assert.Equal(t, 2, children[0].Utility(), "the capture leads")
}

func TestMetricsCountWork(t *testing.T) {
	searcher := NewAlphaBeta(WithFixedDepth(4), WithMetrics())
	_, metric := searcher.Search(NewNode(game.NewState()), time.Second)

	assert.Equal(t, 4, metric.TargetDepth)
	assert.Equal(t, 4, metric.CompletedDepth)
	assert.Positive(t, metric.Nodes)
	assert.Positive(t, metric.Prunes, "a depth-4 search from the start must cut something")
	assert.Equal(t, time.Second, metric.Budget)
}
