package searcher

import "kalah/game"

// Node wraps a game state with search metadata: the move that produced
// it and a link to its parent. The parent link exists for move-history
// reconstruction only; expansion copies the state, so siblings never
// share pit storage.
type Node struct {
	State  game.State
	Move   game.Move
	parent *Node
}

// NewNode returns a root node for state.
func NewNode(state game.State) *Node {
	return &Node{State: state, Move: game.NoMove}
}

// Parent returns the node this one was expanded from, nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsTerminal reports whether the wrapped state ends the game.
func (n *Node) IsTerminal() bool {
	return n.State.IsTerminal()
}

// Expand returns a child node per legal move, in ascending pit order.
// The ordering is part of the search contract: tie-breaks resolve to the
// first optimal move in expansion order.
func (n *Node) Expand() []*Node {
	moves := n.State.LegalMoves()
	children := make([]*Node, len(moves))
	for i, m := range moves {
		children[i] = &Node{
			State:  n.State.Apply(m),
			Move:   m,
			parent: n,
		}
	}
	return children
}

// History returns the moves leading from the root to this node.
func (n *Node) History() []game.Move {
	var moves []game.Move
	for node := n; node.parent != nil; node = node.parent {
		moves = append(moves, node.Move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
