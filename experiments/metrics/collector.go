package metrics

import (
	"time"
)

// SearchMetric describes one completed search: the depth the time policy
// targeted, the deepest fully completed iteration, and the work done.
type SearchMetric struct {
	TargetDepth    int
	CompletedDepth int
	Nodes          int
	Prunes         int
	Value          float64
	Budget         time.Duration
	Elapsed        time.Duration
}

// MoveMetric ties a search to its place in a game.
type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	FairIndex  int // -1 for the standard start
	Winner     string
	Reason     string // "score", "timeout" or "maxmoves"
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	MaxStore   int
	MinStore   int
}

// AgentConfig identifies a strategy configuration under experiment.
type AgentConfig struct {
	ID         int
	Budget     time.Duration
	MaxDepth   int
	Evaluation string
}

// Collector accumulates counters during a single search. The search is
// single-threaded, so plain fields suffice.
type Collector interface {
	Start(targetDepth int, budget time.Duration)
	AddNode()
	AddPrune()
	CompleteDepth(depth int, value float64)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(targetDepth int, budget time.Duration) {
	c.startTime = time.Now()
	c.metric = SearchMetric{TargetDepth: targetDepth, Budget: budget}
}

func (c *collector) AddNode() {
	c.metric.Nodes++
}

func (c *collector) AddPrune() {
	c.metric.Prunes++
}

func (c *collector) CompleteDepth(depth int, value float64) {
	c.metric.CompletedDepth = depth
	c.metric.Value = value
}

func (c *collector) Complete() SearchMetric {
	c.metric.Elapsed = time.Since(c.startTime)
	return c.metric
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op Collector for searches that do not
// record metrics.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(targetDepth int, budget time.Duration) {}
func (dummyCollector) AddNode()                                    {}
func (dummyCollector) AddPrune()                                   {}
func (dummyCollector) CompleteDepth(depth int, value float64)      {}
func (dummyCollector) Complete() SearchMetric                      { return SearchMetric{} }
