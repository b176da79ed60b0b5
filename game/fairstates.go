package game

import "golang.org/x/exp/rand"

// NewFairState builds an initial game node from the FairKalah catalog:
// pre-verified starting boards for which optimal play by both sides draws.
// A valid index selects that catalog entry; any out-of-range index (the
// conventional request being -1) selects a uniformly random entry.
func NewFairState(index int) State {
	if index < 0 || index >= len(fairStates) {
		index = rand.Intn(len(fairStates))
	}
	return State{Board: fairStates[index], Turn: Max}
}

// FairStateCount returns the number of catalog entries.
func FairStateCount() int {
	return len(fairStates)
}

// fairStates are the 254 verified fair initial distributions. Each row
// holds TotalPieces pieces laid out in board order.
var fairStates = [...]Board{
	{2, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 5, 1},
	{2, 4, 4, 4, 4, 4, 0, 4, 4, 4, 5, 4, 5, 0},
	{2, 4, 4, 4, 4, 5, 0, 4, 4, 4, 4, 4, 5, 0},
	{2, 5, 5, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{3, 3, 5, 4, 4, 4, 0, 5, 4, 4, 4, 4, 4, 0},
	{3, 4, 4, 4, 4, 3, 0, 4, 4, 4, 4, 6, 4, 0},
	{3, 4, 4, 4, 4, 4, 0, 4, 4, 3, 4, 4, 4, 2},
	{3, 4, 4, 4, 4, 4, 0, 4, 4, 3, 4, 4, 5, 1},
	{3, 4, 4, 4, 4, 4, 0, 4, 4, 3, 4, 5, 5, 0},
	{3, 4, 4, 4, 4, 4, 0, 4, 4, 3, 5, 4, 4, 1},
	{3, 4, 4, 4, 4, 4, 0, 4, 4, 3, 5, 4, 5, 0},
	{3, 4, 4, 4, 4, 4, 0, 4, 4, 3, 6, 4, 4, 0},
	{3, 4, 4, 4, 4, 4, 0, 4, 4, 4, 3, 6, 4, 0},
	{3, 4, 4, 4, 4, 4, 0, 5, 4, 3, 4, 4, 4, 1},
	{3, 4, 4, 4, 4, 4, 0, 5, 4, 3, 4, 5, 4, 0},
	{3, 4, 4, 4, 4, 4, 1, 4, 4, 3, 4, 5, 4, 0},
	{3, 4, 4, 4, 4, 5, 0, 4, 4, 3, 4, 4, 4, 1},
	{3, 4, 4, 4, 4, 5, 0, 4, 4, 3, 4, 4, 5, 0},
	{3, 4, 4, 4, 4, 5, 0, 4, 4, 3, 4, 5, 4, 0},
	{3, 4, 4, 4, 5, 4, 0, 4, 4, 3, 4, 4, 4, 1},
	{3, 4, 4, 4, 5, 4, 0, 4, 4, 3, 4, 4, 5, 0},
	{3, 4, 4, 4, 5, 4, 0, 4, 4, 3, 5, 4, 4, 0},
	{3, 4, 4, 4, 5, 5, 0, 4, 4, 3, 4, 4, 4, 0},
	{3, 4, 4, 4, 6, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{3, 4, 4, 5, 4, 4, 0, 4, 4, 3, 4, 4, 4, 1},
	{3, 4, 4, 5, 4, 4, 0, 4, 4, 3, 4, 4, 5, 0},
	{3, 4, 4, 5, 4, 4, 0, 4, 4, 3, 4, 5, 4, 0},
	{3, 4, 4, 5, 4, 4, 0, 4, 4, 3, 5, 4, 4, 0},
	{3, 4, 4, 6, 4, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{3, 4, 5, 4, 3, 4, 0, 4, 4, 4, 4, 4, 4, 1},
	{3, 4, 5, 4, 3, 4, 0, 4, 4, 4, 4, 5, 4, 0},
	{3, 4, 5, 4, 3, 4, 0, 4, 4, 4, 5, 4, 4, 0},
	{3, 4, 5, 4, 3, 4, 0, 5, 4, 4, 4, 4, 4, 0},
	{3, 4, 5, 4, 3, 5, 0, 4, 4, 4, 4, 4, 4, 0},
	{3, 4, 5, 4, 4, 4, 0, 3, 4, 4, 4, 4, 4, 1},
	{3, 4, 5, 4, 4, 4, 0, 3, 4, 4, 4, 4, 5, 0},
	{3, 4, 5, 4, 4, 4, 0, 3, 4, 4, 4, 5, 4, 0},
	{3, 4, 5, 4, 4, 4, 0, 4, 3, 4, 4, 4, 5, 0},
	{3, 4, 5, 4, 4, 4, 0, 4, 3, 4, 4, 5, 4, 0},
	{3, 4, 5, 4, 4, 4, 0, 4, 3, 4, 5, 4, 4, 0},
	{3, 4, 5, 4, 4, 4, 0, 4, 4, 4, 4, 3, 5, 0},
	{3, 4, 5, 4, 4, 4, 0, 4, 4, 4, 5, 3, 4, 0},
	{3, 4, 5, 4, 4, 5, 0, 4, 3, 4, 4, 4, 4, 0},
	{3, 4, 5, 4, 4, 5, 0, 4, 4, 4, 4, 3, 4, 0},
	{3, 4, 5, 4, 5, 3, 0, 4, 4, 4, 4, 4, 4, 0},
	{3, 4, 5, 4, 5, 4, 0, 3, 4, 4, 4, 4, 4, 0},
	{3, 4, 5, 5, 3, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{3, 4, 6, 4, 3, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{3, 4, 6, 4, 4, 4, 0, 3, 4, 4, 4, 4, 4, 0},
	{3, 5, 4, 4, 4, 4, 0, 4, 4, 3, 4, 4, 4, 1},
	{3, 5, 4, 4, 4, 4, 0, 4, 4, 3, 4, 4, 5, 0},
	{3, 5, 4, 4, 4, 4, 0, 4, 4, 3, 4, 5, 4, 0},
	{3, 5, 4, 4, 4, 5, 0, 4, 4, 3, 4, 4, 4, 0},
	{3, 5, 4, 4, 5, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{3, 5, 5, 4, 3, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{3, 5, 5, 4, 4, 4, 0, 4, 4, 4, 3, 4, 4, 0},
	{3, 6, 4, 4, 3, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{3, 6, 4, 4, 4, 3, 0, 4, 4, 4, 4, 4, 4, 0},
	{3, 6, 4, 4, 4, 4, 0, 4, 4, 4, 3, 4, 4, 0},
	{4, 2, 5, 4, 4, 4, 0, 4, 4, 4, 4, 4, 5, 0},
	{4, 2, 5, 4, 4, 4, 0, 4, 4, 4, 4, 5, 4, 0},
	{4, 2, 5, 4, 4, 4, 0, 5, 4, 4, 4, 4, 4, 0},
	{4, 2, 5, 4, 4, 4, 1, 4, 4, 4, 4, 4, 4, 0},
	{4, 2, 5, 5, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{4, 2, 6, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{4, 3, 4, 4, 4, 4, 0, 4, 4, 3, 4, 5, 4, 1},
	{4, 3, 4, 4, 4, 4, 0, 4, 4, 3, 4, 5, 5, 0},
	{4, 3, 4, 4, 4, 4, 0, 4, 4, 3, 4, 6, 4, 0},
	{4, 3, 4, 4, 4, 4, 0, 4, 4, 3, 5, 4, 4, 1},
	{4, 3, 4, 4, 4, 5, 0, 5, 4, 3, 4, 4, 4, 0},
	{4, 3, 4, 4, 5, 4, 0, 4, 4, 3, 4, 5, 4, 0},
	{4, 3, 4, 5, 4, 4, 0, 4, 4, 3, 4, 4, 4, 1},
	{4, 3, 4, 5, 4, 4, 0, 4, 4, 3, 4, 5, 4, 0},
	{4, 3, 4, 5, 4, 5, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 3, 4, 5, 5, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 3, 5, 4, 3, 4, 0, 5, 4, 4, 4, 4, 4, 0},
	{4, 3, 5, 4, 4, 3, 0, 4, 5, 4, 4, 4, 4, 0},
	{4, 3, 5, 4, 4, 3, 0, 5, 4, 4, 4, 4, 4, 0},
	{4, 3, 5, 4, 4, 4, 0, 4, 3, 4, 5, 4, 4, 0},
	{4, 3, 5, 4, 4, 4, 0, 4, 4, 3, 4, 4, 5, 0},
	{4, 3, 5, 4, 4, 4, 0, 4, 4, 3, 5, 4, 4, 0},
	{4, 3, 5, 4, 4, 4, 0, 4, 4, 4, 4, 3, 4, 1},
	{4, 3, 5, 4, 4, 4, 0, 4, 4, 4, 4, 3, 5, 0},
	{4, 3, 5, 4, 4, 4, 0, 4, 4, 4, 4, 4, 3, 1},
	{4, 3, 5, 4, 4, 4, 0, 4, 4, 4, 5, 3, 4, 0},
	{4, 3, 5, 4, 4, 4, 0, 4, 4, 5, 3, 4, 4, 0},
	{4, 3, 5, 4, 4, 4, 0, 5, 3, 4, 4, 4, 4, 0},
	{4, 3, 5, 4, 4, 4, 0, 5, 4, 3, 4, 4, 4, 0},
	{4, 3, 5, 4, 4, 4, 0, 5, 4, 4, 4, 3, 4, 0},
	{4, 3, 5, 4, 4, 4, 1, 4, 3, 4, 4, 4, 4, 0},
	{4, 3, 5, 4, 4, 4, 1, 4, 4, 3, 4, 4, 4, 0},
	{4, 3, 5, 4, 4, 5, 0, 4, 3, 4, 4, 4, 4, 0},
	{4, 3, 5, 4, 4, 5, 0, 4, 4, 4, 4, 3, 4, 0},
	{4, 3, 5, 4, 5, 3, 0, 4, 4, 4, 4, 4, 4, 0},
	{4, 3, 5, 4, 5, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 3, 5, 5, 3, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{4, 3, 5, 5, 4, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 3, 6, 4, 3, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{4, 3, 6, 4, 4, 4, 0, 4, 3, 4, 4, 4, 4, 0},
	{4, 3, 6, 4, 4, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 4, 3, 4, 4, 4, 0, 4, 4, 4, 3, 4, 5, 1},
	{4, 4, 3, 4, 4, 4, 0, 4, 4, 4, 3, 4, 6, 0},
	{4, 4, 3, 4, 4, 4, 0, 5, 4, 4, 3, 4, 5, 0},
	{4, 4, 3, 4, 4, 4, 1, 5, 4, 4, 3, 4, 4, 0},
	{4, 4, 4, 4, 4, 3, 0, 4, 4, 4, 3, 4, 4, 2},
	{4, 4, 4, 4, 4, 3, 0, 4, 4, 4, 3, 4, 6, 0},
	{4, 4, 4, 4, 4, 3, 0, 5, 4, 4, 3, 4, 4, 1},
	{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 2, 4, 4, 2},
	{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 2, 4, 6, 0},
	{4, 4, 4, 4, 4, 4, 0, 5, 4, 3, 3, 4, 5, 0},
	{4, 4, 4, 4, 4, 4, 1, 5, 4, 3, 3, 4, 4, 0},
	{4, 4, 4, 4, 5, 4, 0, 5, 4, 4, 2, 4, 4, 0},
	{4, 4, 4, 5, 4, 3, 0, 4, 4, 4, 3, 4, 4, 1},
	{4, 4, 4, 5, 4, 4, 0, 4, 4, 4, 4, 2, 5, 0},
	{4, 4, 4, 5, 4, 4, 0, 5, 4, 3, 3, 4, 4, 0},
	{4, 4, 5, 4, 3, 3, 0, 5, 4, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 3, 4, 0, 3, 4, 4, 4, 5, 4, 0},
	{4, 4, 5, 4, 3, 4, 0, 3, 4, 4, 5, 4, 4, 0},
	{4, 4, 5, 4, 3, 4, 0, 4, 4, 3, 4, 5, 4, 0},
	{4, 4, 5, 4, 3, 4, 0, 4, 4, 4, 4, 4, 3, 1},
	{4, 4, 5, 4, 3, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 3, 4, 0, 5, 3, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 3, 4, 1, 3, 4, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 3, 4, 1, 4, 3, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 3, 4, 1, 4, 4, 3, 4, 4, 4, 0},
	{4, 4, 5, 4, 3, 5, 0, 3, 4, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 3, 5, 0, 4, 4, 4, 3, 4, 4, 0},
	{4, 4, 5, 4, 4, 2, 0, 4, 5, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 3, 0, 4, 4, 3, 4, 5, 4, 0},
	{4, 4, 5, 4, 4, 3, 0, 4, 4, 3, 5, 4, 4, 0},
	{4, 4, 5, 4, 4, 3, 0, 5, 3, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 3, 0, 5, 4, 3, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 3, 1, 4, 4, 3, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 3, 1, 4, 4, 4, 4, 3, 4, 0},
	{4, 4, 5, 4, 4, 3, 1, 4, 4, 4, 4, 4, 3, 0},
	{4, 4, 5, 4, 4, 4, 0, 3, 3, 4, 4, 4, 5, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 2, 4, 4, 4, 4, 1},
	{4, 4, 5, 4, 4, 4, 0, 4, 2, 4, 4, 5, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 3, 3, 4, 4, 5, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 3, 3, 4, 5, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 3, 4, 4, 3, 4, 1},
	{4, 4, 5, 4, 4, 4, 0, 4, 3, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 3, 4, 4, 5, 3, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 3, 4, 5, 3, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 4, 2, 5, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 4, 3, 4, 3, 5, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 4, 3, 5, 3, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 4, 5, 2, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 5, 4, 2, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 5, 4, 3, 3, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 4, 5, 4, 4, 2, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 5, 2, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 5, 3, 3, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 5, 3, 4, 4, 3, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 5, 4, 3, 4, 3, 4, 0},
	{4, 4, 5, 4, 4, 4, 0, 5, 4, 3, 4, 4, 3, 0},
	{4, 4, 5, 4, 4, 4, 1, 3, 3, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 1, 3, 4, 3, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 1, 4, 3, 3, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 1, 4, 4, 2, 4, 4, 4, 0},
	{4, 4, 5, 4, 4, 4, 1, 4, 4, 3, 4, 3, 4, 0},
	{4, 4, 5, 4, 4, 4, 1, 4, 4, 3, 4, 4, 3, 0},
	{4, 4, 5, 4, 4, 5, 0, 4, 3, 4, 3, 4, 4, 0},
	{4, 4, 5, 4, 4, 5, 0, 4, 3, 4, 4, 3, 4, 0},
	{4, 4, 5, 4, 4, 5, 0, 4, 4, 2, 4, 4, 4, 0},
	{4, 4, 5, 4, 5, 3, 0, 3, 4, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 5, 3, 0, 4, 3, 4, 4, 4, 4, 0},
	{4, 4, 5, 4, 5, 3, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 4, 5, 4, 5, 3, 0, 4, 4, 4, 4, 4, 3, 0},
	{4, 4, 5, 4, 5, 4, 0, 4, 3, 3, 4, 4, 4, 0},
	{4, 4, 5, 4, 5, 4, 0, 4, 4, 2, 4, 4, 4, 0},
	{4, 4, 5, 4, 5, 4, 0, 4, 4, 3, 4, 4, 3, 0},
	{4, 4, 5, 4, 5, 4, 0, 4, 4, 4, 2, 4, 4, 0},
	{4, 4, 5, 5, 3, 4, 0, 3, 4, 4, 4, 4, 4, 0},
	{4, 4, 5, 5, 3, 4, 0, 4, 3, 4, 4, 4, 4, 0},
	{4, 4, 5, 5, 4, 3, 0, 3, 4, 4, 4, 4, 4, 0},
	{4, 4, 5, 5, 4, 3, 0, 4, 4, 4, 4, 4, 3, 0},
	{4, 4, 5, 5, 4, 4, 0, 3, 4, 3, 4, 4, 4, 0},
	{4, 4, 5, 5, 4, 4, 0, 4, 2, 4, 4, 4, 4, 0},
	{4, 4, 5, 5, 4, 4, 0, 4, 3, 4, 4, 3, 4, 0},
	{4, 4, 5, 5, 4, 4, 0, 4, 4, 3, 4, 3, 4, 0},
	{4, 4, 5, 5, 4, 4, 0, 4, 4, 3, 4, 4, 3, 0},
	{4, 4, 5, 5, 4, 4, 0, 4, 4, 4, 3, 4, 3, 0},
	{4, 4, 6, 4, 3, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 4, 6, 4, 3, 4, 0, 4, 4, 4, 4, 3, 4, 0},
	{4, 4, 6, 4, 4, 3, 0, 3, 4, 4, 4, 4, 4, 0},
	{4, 4, 6, 4, 4, 3, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 4, 6, 4, 4, 3, 0, 4, 4, 4, 4, 4, 3, 0},
	{4, 4, 6, 4, 4, 4, 0, 3, 3, 4, 4, 4, 4, 0},
	{4, 4, 6, 4, 4, 4, 0, 3, 4, 3, 4, 4, 4, 0},
	{4, 4, 6, 4, 4, 4, 0, 3, 4, 4, 3, 4, 4, 0},
	{4, 4, 6, 4, 4, 4, 0, 4, 3, 4, 4, 3, 4, 0},
	{4, 4, 6, 4, 4, 4, 0, 4, 4, 2, 4, 4, 4, 0},
	{4, 4, 6, 4, 4, 4, 0, 4, 4, 3, 4, 3, 4, 0},
	{4, 4, 6, 4, 4, 4, 0, 4, 4, 3, 4, 4, 3, 0},
	{4, 5, 3, 4, 4, 4, 0, 4, 4, 3, 4, 4, 4, 1},
	{4, 5, 3, 4, 4, 4, 0, 4, 4, 3, 4, 5, 4, 0},
	{4, 5, 3, 4, 4, 4, 0, 4, 4, 3, 5, 4, 4, 0},
	{4, 5, 3, 5, 4, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 5, 4, 4, 3, 4, 0, 4, 4, 3, 4, 4, 4, 1},
	{4, 5, 4, 4, 3, 4, 0, 4, 4, 3, 4, 4, 5, 0},
	{4, 5, 4, 4, 3, 4, 0, 4, 4, 3, 4, 5, 4, 0},
	{4, 5, 4, 4, 3, 4, 0, 5, 4, 3, 4, 4, 4, 0},
	{4, 5, 4, 4, 4, 3, 0, 4, 4, 3, 4, 4, 4, 1},
	{4, 5, 4, 4, 4, 3, 0, 4, 4, 3, 4, 5, 4, 0},
	{4, 5, 4, 4, 4, 4, 0, 4, 3, 3, 4, 5, 4, 0},
	{4, 5, 4, 4, 4, 4, 0, 4, 4, 3, 3, 4, 4, 1},
	{4, 5, 4, 4, 4, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 5, 4, 4, 4, 4, 0, 4, 4, 4, 2, 5, 4, 0},
	{4, 5, 4, 4, 4, 4, 0, 5, 4, 3, 3, 4, 4, 0},
	{4, 5, 4, 4, 4, 4, 0, 5, 4, 4, 2, 4, 4, 0},
	{4, 5, 4, 4, 5, 3, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 5, 4, 4, 5, 4, 0, 4, 4, 3, 3, 4, 4, 0},
	{4, 5, 4, 5, 3, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 5, 4, 5, 4, 4, 0, 4, 4, 3, 3, 4, 4, 0},
	{4, 5, 5, 4, 4, 4, 0, 3, 4, 3, 4, 4, 4, 0},
	{4, 5, 5, 4, 4, 4, 0, 4, 4, 2, 4, 4, 4, 0},
	{4, 5, 5, 4, 4, 4, 0, 4, 4, 3, 4, 3, 4, 0},
	{4, 5, 5, 4, 4, 4, 0, 4, 4, 3, 4, 4, 3, 0},
	{4, 6, 3, 4, 3, 4, 0, 4, 4, 4, 4, 4, 4, 0},
	{4, 6, 4, 4, 3, 4, 0, 4, 3, 4, 4, 4, 4, 0},
	{4, 6, 4, 4, 3, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 6, 4, 4, 4, 3, 0, 4, 4, 3, 4, 4, 4, 0},
	{4, 6, 4, 4, 4, 4, 0, 3, 4, 3, 4, 4, 4, 0},
	{4, 6, 4, 4, 4, 4, 0, 4, 3, 3, 4, 4, 4, 0},
	{4, 6, 4, 4, 4, 4, 0, 4, 4, 2, 4, 4, 4, 0},
	{4, 6, 4, 4, 4, 4, 0, 4, 4, 3, 4, 3, 4, 0},
	{4, 6, 4, 4, 4, 4, 0, 4, 4, 3, 4, 4, 3, 0},
	{4, 6, 4, 4, 4, 4, 0, 4, 4, 4, 4, 2, 4, 0},
	{5, 3, 4, 4, 4, 4, 0, 4, 4, 3, 4, 4, 4, 1},
	{5, 3, 5, 4, 4, 4, 0, 3, 4, 4, 4, 4, 4, 0},
	{5, 3, 5, 4, 4, 4, 0, 4, 4, 4, 4, 4, 3, 0},
	{5, 4, 3, 4, 4, 4, 0, 4, 4, 3, 4, 4, 4, 1},
	{5, 4, 3, 4, 4, 4, 0, 4, 4, 3, 4, 4, 5, 0},
	{5, 4, 3, 4, 4, 4, 1, 4, 4, 4, 3, 4, 4, 0},
	{5, 4, 4, 4, 4, 3, 0, 4, 4, 4, 3, 4, 5, 0},
	{5, 4, 4, 4, 4, 3, 1, 4, 4, 4, 3, 4, 4, 0},
	{5, 4, 4, 4, 4, 4, 0, 4, 4, 2, 4, 4, 4, 1},
	{5, 4, 4, 4, 4, 4, 0, 4, 4, 4, 2, 4, 4, 1},
	{5, 4, 4, 4, 4, 4, 0, 4, 4, 4, 2, 4, 5, 0},
	{5, 4, 4, 4, 4, 4, 0, 4, 4, 4, 2, 5, 4, 0},
	{5, 4, 4, 4, 4, 4, 0, 5, 4, 4, 2, 4, 4, 0},
	{5, 4, 4, 5, 4, 4, 0, 4, 4, 2, 4, 4, 4, 0},
	{5, 4, 5, 4, 3, 4, 0, 4, 4, 4, 4, 4, 3, 0},
	{5, 4, 5, 4, 4, 4, 0, 2, 4, 4, 4, 4, 4, 0},
	{5, 4, 5, 4, 4, 4, 0, 3, 4, 4, 4, 3, 4, 0},
	{5, 4, 5, 4, 4, 4, 0, 4, 3, 4, 4, 4, 3, 0},
	{5, 4, 5, 4, 4, 4, 0, 4, 4, 4, 4, 3, 3, 0},
	{5, 4, 5, 4, 4, 4, 0, 4, 4, 4, 4, 4, 2, 0},
	{6, 4, 3, 4, 4, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{6, 4, 4, 4, 3, 4, 0, 4, 4, 3, 4, 4, 4, 0},
	{6, 4, 4, 4, 4, 4, 0, 4, 4, 3, 3, 4, 4, 0},
	{6, 4, 4, 4, 4, 4, 0, 4, 4, 3, 4, 3, 4, 0},
	{6, 4, 4, 4, 4, 4, 0, 4, 4, 4, 2, 4, 4, 0},
}
