package game

import (
	"strconv"
	"strings"
)

const (
	// PlayPits is the number of play pits per player.
	PlayPits = 6
	// MaxStore is the scoring pit index for the maximizing player.
	MaxStore = PlayPits
	// MinStore is the scoring pit index for the minimizing player.
	MinStore = 2*PlayPits + 1
	// TotalPits is the number of play and scoring pits combined.
	TotalPits = 2 * (PlayPits + 1)
	// InitialPiecesPerPit is the standard Kalah piece distribution.
	InitialPiecesPerPit = 4
	// TotalPieces is the piece count conserved for the lifetime of a game.
	TotalPieces = 2 * PlayPits * InitialPiecesPerPit
)

// Board holds the piece count of every pit. Indices 0..5 are MAX's play
// pits in play order, 6 is MAX's store, 7..12 are MIN's play pits and 13
// is MIN's store. The fixed-size array gives value semantics: assigning a
// Board copies it, so search siblings never alias pit storage.
type Board [TotalPits]int

// StandardBoard returns the standard start: four pieces in every play pit.
func StandardBoard() Board {
	var b Board
	for i := range b {
		b[i] = InitialPiecesPerPit
	}
	b[MaxStore] = 0
	b[MinStore] = 0
	return b
}

// Opposite returns the play pit directly across the board from pit p.
// Valid for play pits on either side.
func Opposite(p int) int {
	return MinStore - p - 1
}

// IsPlayPit reports whether pit p is a play pit belonging to side.
func IsPlayPit(p int, side Player) bool {
	if side == Max {
		return p >= 0 && p < MaxStore
	}
	return p > MaxStore && p < MinStore
}

// SidePieces returns the number of pieces in side's six play pits.
func (b Board) SidePieces(side Player) int {
	offset := 0
	if side == Min {
		offset = MaxStore + 1
	}
	sum := 0
	for i := offset; i < offset+PlayPits; i++ {
		sum += b[i]
	}
	return sum
}

// PiecesInPlay returns the number of pieces not yet in either store.
func (b Board) PiecesInPlay() int {
	return b.SidePieces(Max) + b.SidePieces(Min)
}

// Total returns the sum of all pit counts. It is TotalPieces for every
// board reachable from a legal start.
func (b Board) Total() int {
	sum := 0
	for _, n := range b {
		sum += n
	}
	return sum
}

// String renders the board in the fixed two-row layout, MIN's pits on top
// read right to left:
//
//	     _  _  _  _  _  _
//	     1  2  3  4  5  6
//	-------------------------
//	|  | 4| 4| 4| 4| 4| 4|  |
//	| 0|-----------------| 0|
//	|  | 4| 4| 4| 4| 4| 4|  |
//	-------------------------
//	     6  5  4  3  2  1
func (b Board) String() string {
	return b.render(nil)
}

// render draws the board; when turn is non-nil an arrow marks that side's
// row, matching the layout above.
func (b Board) render(turn *Player) string {
	var sb strings.Builder
	sb.WriteString("     _  _  _  _  _  _\n     1  2  3  4  5  6\n-------------------------\n|  ")
	for i := MinStore - 1; i > MaxStore; i-- {
		writeCell(&sb, b[i])
	}
	sb.WriteString("|  |")
	if turn != nil && *turn == Min {
		sb.WriteString(" <--")
	}
	sb.WriteString("\n")
	writeCell(&sb, b[MinStore])
	sb.WriteString("|-----------------")
	writeCell(&sb, b[MaxStore])
	sb.WriteString("|\n|  ")
	for i := 0; i < MaxStore; i++ {
		writeCell(&sb, b[i])
	}
	sb.WriteString("|  |")
	if turn != nil && *turn == Max {
		sb.WriteString(" <--")
	}
	sb.WriteString("\n-------------------------\n     6  5  4  3  2  1\n")
	return sb.String()
}

func writeCell(sb *strings.Builder, n int) {
	if n > 9 {
		sb.WriteString("|")
	} else {
		sb.WriteString("| ")
	}
	sb.WriteString(strconv.Itoa(n))
}
