package player

import (
	"fmt"
	"time"

	"lukechampine.com/frand"

	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"
)

// Player is the strategy contract: given the current node and the time
// remaining on the mover's clock, return a legal move before the
// deadline. Implementations must not mutate the node they are given.
type Player interface {
	ChooseMove(node *searcher.Node, remaining time.Duration) (game.Move, error)
}

// Minimax plays moves found by a time-bounded alpha-beta search.
type Minimax struct {
	search *searcher.AlphaBeta
	last   metrics.SearchMetric
}

// NewMinimax returns a search-backed player. Options are forwarded to
// the underlying searcher.
func NewMinimax(options ...searcher.Option) *Minimax {
	return &Minimax{search: searcher.NewAlphaBeta(options...)}
}

func (p *Minimax) ChooseMove(node *searcher.Node, remaining time.Duration) (game.Move, error) {
	if node.IsTerminal() {
		return game.NoMove, fmt.Errorf("no legal moves: game is over")
	}
	move, metric := p.search.Search(node, remaining)
	p.last = metric
	return move, nil
}

// LastSearch returns the metrics of the most recent search.
func (p *Minimax) LastSearch() metrics.SearchMetric {
	return p.last
}

// Random plays a uniformly random legal move. A baseline opponent.
type Random struct{}

func (Random) ChooseMove(node *searcher.Node, remaining time.Duration) (game.Move, error) {
	moves := node.State.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, fmt.Errorf("no legal moves: game is over")
	}
	return moves[frand.Intn(len(moves))], nil
}

// Greedy plays the move with the best immediate evaluation, looking no
// further ahead. Ties resolve to the earliest pit.
type Greedy struct {
	Evaluate game.Evaluate
}

func (p Greedy) ChooseMove(node *searcher.Node, remaining time.Duration) (game.Move, error) {
	moves := node.State.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, fmt.Errorf("no legal moves: game is over")
	}

	evaluate := p.Evaluate
	if evaluate == nil {
		evaluate = game.EvaluateScoreDiff
	}

	utility := func(s game.State) float64 {
		if s.IsTerminal() {
			return float64(s.Utility())
		}
		return evaluate(s)
	}

	best := moves[0]
	bestValue := utility(node.State.Apply(best))
	for _, m := range moves[1:] {
		v := utility(node.State.Apply(m))
		if node.State.Turn == game.Max && v > bestValue ||
			node.State.Turn == game.Min && v < bestValue {
			best, bestValue = m, v
		}
	}
	return best, nil
}
