package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestWriterRoundTrip(t *testing.T) {
	chdirTemp(t)

	w, err := NewWriter("unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Budget: time.Second, MaxDepth: 9, Evaluation: "score_diff"},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Agent1: 1, Agent2: 1, GameMetric: GameMetric{
			FairIndex: 17, Winner: "DRAW", Reason: "score",
			Duration: time.Second, TotalMoves: 40, MaxStore: 24, MinStore: 24,
		}},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "MAX", Move: "3",
			SearchMetric: SearchMetric{TargetDepth: 9, CompletedDepth: 9, Nodes: 1234}}},
	}))

	games, err := os.ReadFile(filepath.Join(w.Dir(), "games.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(games)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "DRAW")
	assert.Contains(t, lines[1], "17")
}

func TestCollectorAccumulates(t *testing.T) {
	c := NewCollector()
	c.Start(7, time.Second)
	for i := 0; i < 5; i++ {
		c.AddNode()
	}
	c.AddPrune()
	c.CompleteDepth(7, 1.5)

	m := c.Complete()
	assert.Equal(t, 7, m.TargetDepth)
	assert.Equal(t, 7, m.CompletedDepth)
	assert.Equal(t, 5, m.Nodes)
	assert.Equal(t, 1, m.Prunes)
	assert.Equal(t, 1.5, m.Value)
	assert.Equal(t, time.Second, m.Budget)
	assert.GreaterOrEqual(t, m.Elapsed, time.Duration(0))
}
