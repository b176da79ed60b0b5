package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Player identifies which side is to move. Max moves first by convention.
type Player uint8

const (
	Max Player = iota
	Min
)

func (p Player) String() string {
	if p == Max {
		return "MAX"
	}
	return "MIN"
}

// Other returns the opposing side.
func (p Player) Other() Player {
	return 1 - p
}

// Store returns the index of p's scoring pit.
func (p Player) Store() int {
	if p == Max {
		return MaxStore
	}
	return MinStore
}

// Move names one of the mover's own play pits. Legal only when the pit
// belongs to the side to move and is non-empty.
type Move int

// NoMove marks the absence of a move, e.g. at the root of a search tree.
const NoMove Move = -1

// Label translates a move to the human-facing pit number 1-6 for its side.
// Pits are numbered 6..1 in play order on both sides.
func (m Move) Label() string {
	if !IsPlayPit(int(m), Max) && !IsPlayPit(int(m), Min) {
		return "INVALID MOVE"
	}
	return strconv.Itoa(PlayPits - int(m)%(PlayPits+1))
}

// StateHash identifies a state for determinism checks and logging.
type StateHash uint64

// State is a complete game situation: the board plus the side to move.
// State has value semantics - Apply returns a new State and never mutates
// the receiver, so snapshots held by a search tree stay independent.
type State struct {
	Board Board
	Turn  Player
}

// NewState returns the standard 4-pieces-per-pit start with MAX to move.
func NewState() State {
	return State{Board: StandardBoard(), Turn: Max}
}

// IsTerminal reports whether the game is over: all pieces are in stores,
// which only happens through the starvation sweep.
func (s State) IsTerminal() bool {
	return s.Board[MaxStore]+s.Board[MinStore] == s.Board.Total()
}

// LegalMoves returns the mover's non-empty play pits in ascending order.
// The ordering is load-bearing: expansion and search tie-breaks follow it.
func (s State) LegalMoves() []Move {
	offset := 0
	if s.Turn == Min {
		offset = MaxStore + 1
	}
	moves := make([]Move, 0, PlayPits)
	for i := offset; i < offset+PlayPits; i++ {
		if s.Board[i] > 0 {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// Legal reports whether m is currently a legal move.
func (s State) Legal(m Move) bool {
	return IsPlayPit(int(m), s.Turn) && s.Board[m] > 0
}

// Apply plays move m and returns the resulting state. It panics on an
// illegal move: callers own legality (strategies via LegalMoves, the
// orchestrator by validating before applying), and silently accepting a
// bad pit would corrupt the piece-conservation invariant.
//
// The algorithm sows the pit's pieces counter-clockwise, skipping the
// opponent's store, then applies the capture, turn-retention, and
// starvation rules in that order.
func (s State) Apply(m Move) State {
	if !s.Legal(m) {
		panic(fmt.Sprintf("illegal move %d for %s in %s", m, s.Turn, s.Compact()))
	}

	board := s.Board
	mover := s.Turn
	skip := mover.Other().Store()

	// Sow: lift every piece from the played pit and distribute one per
	// pit counter-clockwise. The opponent's store never receives a piece,
	// however many times the board wraps.
	pos := int(m)
	pieces := board[pos]
	board[pos] = 0
	for pieces > 0 {
		pos = (pos + 1) % TotalPits
		if pos == skip {
			continue
		}
		board[pos]++
		pieces--
	}

	// Capture: a last piece dropped into an own play pit that was empty
	// before this sowing pass reached it (count is exactly 1 afterwards)
	// moves to the store together with everything in the opposite pit.
	// The opposite pit may be empty; the single piece still scores.
	store := mover.Store()
	if board[pos] == 1 && IsPlayPit(pos, mover) {
		opposite := Opposite(pos)
		board[store] += 1 + board[opposite]
		board[pos] = 0
		board[opposite] = 0
	}

	// Turn retention: ending in one's own store earns another move.
	turn := mover
	if pos != store {
		turn = mover.Other()
	}

	// Starvation: if either side's play pits are empty, each side sweeps
	// its remaining pieces into its own store and the game ends.
	if board.SidePieces(Max) == 0 || board.SidePieces(Min) == 0 {
		for i := 0; i < MaxStore; i++ {
			board[MaxStore] += board[i]
			board[MinStore] += board[i+MaxStore+1]
			board[i] = 0
			board[i+MaxStore+1] = 0
		}
	}

	return State{Board: board, Turn: turn}
}

// Utility returns the exact terminal score from MAX's perspective:
// MAX's store minus MIN's store. Only meaningful once IsTerminal holds;
// before that it is merely the current store difference.
func (s State) Utility() int {
	return s.Board[MaxStore] - s.Board[MinStore]
}

// Winner names the winning side of a terminal state, or "DRAW". It
// returns "" while the game is still in progress.
func (s State) Winner() string {
	if !s.IsTerminal() {
		return ""
	}
	switch diff := s.Utility(); {
	case diff > 0:
		return Max.String()
	case diff < 0:
		return Min.String()
	default:
		return "DRAW"
	}
}

// FreeMoves counts the mover's pits whose pieces land exactly in the
// mover's own store, earning an extra turn. Sowing skips the opponent's
// store, so landing position cycles with period TotalPits-1.
func (s State) FreeMoves() int {
	store := s.Turn.Store()
	offset := store - PlayPits
	count := 0
	for i := offset; i < store; i++ {
		if s.Board[i] > 0 && s.Board[i]%(TotalPits-1) == store-i {
			count++
		}
	}
	return count
}

// Hash returns an FNV-1a digest of the full state.
func (s State) Hash() StateHash {
	hasher := fnv.New64a()
	var buf [8]byte
	for _, count := range s.Board {
		binary.LittleEndian.PutUint64(buf[:], uint64(count))
		hasher.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(s.Turn))
	hasher.Write(buf[:])
	return StateHash(hasher.Sum64())
}

// Compact returns a single-line rendering for logs and errors.
func (s State) Compact() string {
	parts := make([]string, TotalPits)
	for i, n := range s.Board {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("[%s] %s to move", strings.Join(parts, " "), s.Turn)
}

// String renders the board with an arrow marking the side to move.
func (s State) String() string {
	return s.Board.render(&s.Turn)
}
