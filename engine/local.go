package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/player"
	"kalah/searcher"
)

// Local alternates two in-process players over one authoritative state,
// tracking a wall-clock budget per side. The engine owns the state:
// players only ever see freshly wrapped nodes and the state advances
// exactly once per completed turn.
type Local struct {
	State     game.State
	FairIndex int // catalog index of the start, -1 for standard

	players [2]player.Player
	clocks  [2]time.Duration
}

// NewLocal pairs maxPlayer and minPlayer over the given start, giving
// each side budget on its clock.
func NewLocal(maxPlayer, minPlayer player.Player, start game.State, budget time.Duration) *Local {
	if maxPlayer == nil || minPlayer == nil {
		panic("both players are required")
	}
	return &Local{
		State:     start,
		FairIndex: -1,
		players:   [2]player.Player{maxPlayer, minPlayer},
		clocks:    [2]time.Duration{budget, budget},
	}
}

// Run plays the game to completion. A side whose clock goes negative
// forfeits on time. An illegal move from a strategy is a defect in that
// strategy: Run fails loudly rather than corrupting the board.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		FairIndex: e.FairIndex,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("player", e.State.Turn.String()).Msg("game started")
	log.Debug().Msg("\n" + e.State.String())

	step := 0
	for !e.State.IsTerminal() && step < MaxMoves {
		mover := e.State.Turn
		remaining := e.clocks[mover]

		start := time.Now()
		move, err := e.players[mover].ChooseMove(searcher.NewNode(e.State), remaining)
		elapsed := time.Since(start)
		e.clocks[mover] -= elapsed

		if e.clocks[mover] < 0 {
			log.Info().Str("player", mover.String()).Dur("over", -e.clocks[mover]).
				Msg("game timer expired")
			return e.finish(gameMetric, moveMetrics, mover.Other().String(), ReasonTimeout), moveMetrics, nil
		}
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("%s failed to move: %w", mover, err)
		}
		if !slices.Contains(e.State.LegalMoves(), move) {
			return gameMetric, moveMetrics, fmt.Errorf("%s played illegal move %d in %s",
				mover, move, e.State.Compact())
		}

		e.State = e.State.Apply(move)
		step++

		moveMetric := metrics.MoveMetric{
			Step:   step,
			Player: mover.String(),
			Move:   move.Label(),
		}
		if p, ok := e.players[mover].(*player.Minimax); ok {
			moveMetric.SearchMetric = p.LastSearch()
		}
		moveMetric.Elapsed = elapsed
		moveMetric.Budget = remaining
		moveMetrics = append(moveMetrics, moveMetric)

		log.Info().
			Str("player", mover.String()).
			Str("move", move.Label()).
			Dur("elapsed", elapsed).
			Dur("remaining", e.clocks[mover]).
			Msg("move played")
		log.Debug().Msg("\n" + e.State.String())
	}

	if !e.State.IsTerminal() {
		return e.finish(gameMetric, moveMetrics, "DRAW", ReasonMaxMoves), moveMetrics, nil
	}
	return e.finish(gameMetric, moveMetrics, e.State.Winner(), ReasonScore), moveMetrics, nil
}

// Clock returns the time left on side's clock.
func (e *Local) Clock(side game.Player) time.Duration {
	return e.clocks[side]
}

func (e *Local) finish(gm metrics.GameMetric, moves []metrics.MoveMetric, winner, reason string) metrics.GameMetric {
	gm.EndTime = time.Now()
	gm.Duration = gm.EndTime.Sub(gm.StartTime)
	gm.TotalMoves = len(moves)
	gm.Winner = winner
	gm.Reason = reason
	gm.MaxStore = e.State.Board[game.MaxStore]
	gm.MinStore = e.State.Board[game.MinStore]

	log.Info().
		Str("winner", winner).
		Str("reason", reason).
		Int("max_store", gm.MaxStore).
		Int("min_store", gm.MinStore).
		Int("moves", gm.TotalMoves).
		Msg("game over")
	return gm
}
