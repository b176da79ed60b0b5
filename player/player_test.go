package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"kalah/game"
	"kalah/searcher"
)

func TestPlayersReturnLegalMoves(t *testing.T) {
	players := map[string]Player{
		"minimax": NewMinimax(searcher.WithFixedDepth(2)),
		"random":  Random{},
		"greedy":  Greedy{},
	}

	rng := rand.New(rand.NewSource(23))
	for name, p := range players {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				s := game.NewFairState(rng.Intn(game.FairStateCount()))
				for j := 0; j < rng.Intn(30) && !s.IsTerminal(); j++ {
					moves := s.LegalMoves()
					s = s.Apply(moves[rng.Intn(len(moves))])
				}
				if s.IsTerminal() {
					continue
				}

				move, err := p.ChooseMove(searcher.NewNode(s), time.Second)
				require.NoError(t, err)
				assert.Contains(t, s.LegalMoves(), move, "%s at %s", name, s.Compact())
			}
		})
	}
}

func TestPlayersRejectTerminalNode(t *testing.T) {
	s := game.State{Turn: game.Max}
	s.Board[game.MaxStore] = 30
	s.Board[game.MinStore] = 18
	require.True(t, s.IsTerminal())

	for name, p := range map[string]Player{
		"minimax": NewMinimax(),
		"random":  Random{},
		"greedy":  Greedy{},
	} {
		_, err := p.ChooseMove(searcher.NewNode(s), time.Second)
		assert.Error(t, err, name)
	}
}

func TestMinimaxRecordsSearchMetrics(t *testing.T) {
	p := NewMinimax(searcher.WithFixedDepth(3), searcher.WithMetrics())
	_, err := p.ChooseMove(searcher.NewNode(game.NewState()), time.Second)
	require.NoError(t, err)

	metric := p.LastSearch()
	assert.Equal(t, 3, metric.TargetDepth)
	assert.Positive(t, metric.Nodes)
}

func TestGreedyTakesTheCapture(t *testing.T) {
	s := game.State{Turn: game.Max}
	s.Board = game.Board{0, 1, 0, 4, 4, 4, 0, 4, 4, 4, 8, 4, 4, 7}

	move, err := Greedy{}.ChooseMove(searcher.NewNode(s), time.Second)
	require.NoError(t, err)
	assert.Equal(t, game.Move(1), move)
}

func TestGreedyMinimizesForMin(t *testing.T) {
	s := game.State{Turn: game.Min}
	// Pit 8 captures pit 3's pieces via the empty pit 9.
	s.Board = game.Board{4, 4, 4, 8, 4, 4, 7, 0, 1, 0, 4, 4, 4, 0}

	move, err := Greedy{}.ChooseMove(searcher.NewNode(s), time.Second)
	require.NoError(t, err)
	assert.Equal(t, game.Move(8), move)
}
