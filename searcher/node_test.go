package searcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kalah/game"
)

func TestExpandFollowsMoveOrder(t *testing.T) {
	root := NewNode(game.NewState())
	children := root.Expand()

	require.Len(t, children, game.PlayPits)
	for i, child := range children {
		assert.Equal(t, game.Move(i), child.Move)
		assert.Equal(t, root, child.Parent())
	}
}

func TestExpandDoesNotAliasSiblings(t *testing.T) {
	root := NewNode(game.NewState())
	children := root.Expand()

	// Each child applied a different move; mutating one board must not
	// show up in another (value semantics of the fixed-size array).
	children[0].State.Board[3] = 99
	assert.NotEqual(t, 99, children[1].State.Board[3])
	assert.Equal(t, 4, root.State.Board[0], "root untouched by expansion")
}

func TestExpandHonorsTurnRetention(t *testing.T) {
	root := NewNode(game.NewState())
	children := root.Expand()

	// Pit 2's last piece lands in MAX's store: that child is MAX to move
	// again, the rest flip to MIN.
	for _, child := range children {
		want := game.Min
		if child.Move == 2 {
			want = game.Max
		}
		assert.Equal(t, want, child.State.Turn, "move %d", child.Move)
	}
}

func TestExpandTerminal(t *testing.T) {
	s := game.State{Turn: game.Max}
	s.Board[game.MaxStore] = 24
	s.Board[game.MinStore] = 24
	node := NewNode(s)

	require.True(t, node.IsTerminal())
	assert.Empty(t, node.Expand())
}

func TestHistory(t *testing.T) {
	root := NewNode(game.NewState())
	assert.Empty(t, root.History())

	child := root.Expand()[2]
	grandchild := child.Expand()[0]
	assert.Equal(t, []game.Move{2, grandchild.Move}, grandchild.History())
}
