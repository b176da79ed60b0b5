package engine

import "kalah/experiments/metrics"

// MaxMoves caps runaway games. A Kalah game from a legal start ends far
// earlier; the cap guards against a buggy strategy loop.
const MaxMoves = 10000

// Forfeit reasons recorded in GameMetric.Reason.
const (
	ReasonScore    = "score"
	ReasonTimeout  = "timeout"
	ReasonMaxMoves = "maxmoves"
)

// Engine runs a game till there is a winner, returning the game's metric
// and one metric per move played.
type Engine interface {
	Run() (metrics.GameMetric, []metrics.MoveMetric, error)
}
