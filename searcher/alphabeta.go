package searcher

import (
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"kalah/experiments/metrics"
	"kalah/game"
)

// Option configures an AlphaBeta searcher.
type Option func(*AlphaBeta)

// WithEvaluationFn sets the estimator used at the depth limit.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithDepthPolicy replaces the time-to-depth policy.
func WithDepthPolicy(policy DepthPolicy) Option {
	return func(s *AlphaBeta) {
		if policy != nil {
			s.policy = policy
		}
	}
}

// WithComplexityFactor replaces the position-complexity heuristic fed to
// the depth policy.
func WithComplexityFactor(factor ComplexityFactor) Option {
	return func(s *AlphaBeta) {
		if factor != nil {
			s.complexity = factor
		}
	}
}

// WithFixedDepth pins the search to an exact depth, bypassing the time
// policy. Intended for tests and experiments.
func WithFixedDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.fixedDepth = depth
		}
	}
}

// WithMetrics records per-search counters.
func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = metrics.NewCollector()
	}
}

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning
// and iterative deepening. The depth limit is chosen up front from the
// time budget; the search is never interrupted mid-ply, so an accurate
// policy is what keeps the caller inside its deadline.
type AlphaBeta struct {
	evaluate   game.Evaluate
	policy     DepthPolicy
	complexity ComplexityFactor
	fixedDepth int
	metrics    metrics.Collector
}

// NewAlphaBeta returns a searcher with the default score-difference
// evaluation and time policy.
func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{
		evaluate:   game.EvaluateScoreDiff,
		policy:     DefaultDepthPolicy,
		complexity: ObviousMoveFactor,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Search returns the best move for the root's mover within remaining
// wall-clock budget, together with the search's metrics. The move is
// always one of the root's legal moves; ties in value resolve to the
// first optimal move in expansion order. Search panics on a terminal
// root: there is no move to return.
func (s *AlphaBeta) Search(root *Node, remaining time.Duration) (game.Move, metrics.SearchMetric) {
	moves := root.State.LegalMoves()
	if len(moves) == 0 {
		panic("search called on terminal node")
	}

	target := s.fixedDepth
	if target == 0 {
		target = s.policy(remaining, root.State.Board.PiecesInPlay(), s.complexity(root.State))
	}
	s.metrics.Start(target, remaining)

	// Iterative deepening: each completed iteration replaces the best
	// move, so even the 1-ply pass leaves a legal answer. Shallower
	// iterations cost a fraction of the final one.
	var best game.Move
	var value float64
	for depth := 1; depth <= target; depth++ {
		best, value = s.searchRoot(root.State, moves, depth)
		s.metrics.CompleteDepth(depth, value)
	}

	metric := s.metrics.Complete()
	log.Debug().
		Str("player", root.State.Turn.String()).
		Int("depth", target).
		Int("nodes", metric.Nodes).
		Float64("value", value).
		Str("move", best.Label()).
		Dur("budget", remaining).
		Msg("search complete")
	return best, metric
}

// searchRoot runs one depth-limited pass over the root moves. Pruning at
// the root keeps the full window, so the returned value equals plain
// minimax at the same depth.
func (s *AlphaBeta) searchRoot(st game.State, moves []game.Move, depth int) (game.Move, float64) {
	alpha, beta := math.Inf(-1), math.Inf(1)
	bestMove := moves[0]

	if st.Turn == game.Max {
		best := math.Inf(-1)
		for _, m := range moves {
			if v := s.alphabeta(st.Apply(m), depth-1, alpha, beta); v > best {
				best, bestMove = v, m
			}
			alpha = math.Max(alpha, best)
		}
		return bestMove, best
	}

	best := math.Inf(1)
	for _, m := range moves {
		if v := s.alphabeta(st.Apply(m), depth-1, alpha, beta); v < best {
			best, bestMove = v, m
		}
		beta = math.Min(beta, best)
	}
	return bestMove, best
}

// alphabeta evaluates st to the given depth. Terminal states return the
// exact utility regardless of depth; the depth limit substitutes the
// pluggable estimate. A subtree proven outside (alpha, beta) is cut off
// without changing the root value.
func (s *AlphaBeta) alphabeta(st game.State, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()

	if st.IsTerminal() {
		return float64(st.Utility())
	}
	if depth <= 0 {
		return s.evaluate(st)
	}

	children := orderedChildren(st)
	if st.Turn == game.Max {
		value := math.Inf(-1)
		for _, child := range children {
			value = math.Max(value, s.alphabeta(child, depth-1, alpha, beta))
			if value >= beta {
				s.metrics.AddPrune()
				return value
			}
			alpha = math.Max(alpha, value)
		}
		return value
	}

	value := math.Inf(1)
	for _, child := range children {
		value = math.Min(value, s.alphabeta(child, depth-1, alpha, beta))
		if value <= alpha {
			s.metrics.AddPrune()
			return value
		}
		beta = math.Min(beta, value)
	}
	return value
}

// orderedChildren expands st with the mover's best immediate store
// swings first. Searching promising children early tightens the window
// sooner and cuts more subtrees; the stable sort keeps pit order among
// equals, and ordering inside the tree never changes the root's value
// or move.
func orderedChildren(st game.State) []game.State {
	moves := st.LegalMoves()
	children := make([]game.State, len(moves))
	for i, m := range moves {
		children[i] = st.Apply(m)
	}
	if st.Turn == game.Max {
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Utility() > children[j].Utility()
		})
	} else {
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Utility() < children[j].Utility()
		})
	}
	return children
}
