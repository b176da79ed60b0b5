package game

// Evaluate estimates the utility of a non-terminal state from MAX's
// perspective: positive favors MAX. The search treats the value as
// opaque and relies only on its ordering.
type Evaluate func(State) float64

// EvaluateScoreDiff scores a position by store difference alone. At a
// terminal state this is the exact game utility.
func EvaluateScoreDiff(s State) float64 {
	return float64(s.Utility())
}

// EvaluateFreeMoves adds a small bonus per extra-turn opportunity on top
// of the store difference. Free moves compound: each one is another
// sowing before the opponent replies.
func EvaluateFreeMoves(s State) float64 {
	score := float64(s.Utility())
	bonus := 0.4 * float64(s.FreeMoves())
	if s.Turn == Max {
		return score + bonus
	}
	return score - bonus
}

// EvaluateCaptures weighs the pieces each side currently threatens to
// capture, on top of the store difference.
func EvaluateCaptures(s State) float64 {
	return float64(s.Utility()) +
		0.25*float64(CaptureThreat(s.Board, Max)-CaptureThreat(s.Board, Min))
}

// CaptureThreat returns the largest number of pieces side could capture
// with a single move: a pit whose last piece lands in an own empty pit
// takes that piece plus the opposite pit's contents.
func CaptureThreat(b Board, side Player) int {
	store := side.Store()
	offset := store - PlayPits
	best := 0
	for i := offset; i < store; i++ {
		if b[i] == 0 {
			continue
		}
		last := landingPit(b, i, side)
		if last == i || !IsPlayPit(last, side) {
			continue
		}
		if b[last] == 0 {
			if gain := 1 + b[Opposite(last)]; gain > best {
				best = gain
			}
		}
	}
	return best
}

// landingPit returns the pit receiving the final piece when side sows
// pit i, without mutating the board.
func landingPit(b Board, i int, side Player) int {
	skip := side.Other().Store()
	pos := i
	for pieces := b[i]; pieces > 0; pieces-- {
		pos = (pos + 1) % TotalPits
		if pos == skip {
			pos = (pos + 1) % TotalPits
		}
	}
	return pos
}
