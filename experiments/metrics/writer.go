package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GameRecord joins a game's metric with the agents that played it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing MAX
	Agent2 int // AgentConfig.ID, playing MIN
	GameMetric
}

// MoveRecord joins a move's metric with its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", experiment, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Budget.String(),
			strconv.Itoa(config.MaxDepth),
			config.Evaluation,
		})
	}
	header := []string{"id", "budget", "max_depth", "evaluation"}
	return w.writeFile("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			strconv.Itoa(r.FairIndex),
			r.Winner,
			r.Reason,
			r.Duration.String(),
			strconv.Itoa(r.TotalMoves),
			strconv.Itoa(r.MaxStore),
			strconv.Itoa(r.MinStore),
		})
	}
	header := []string{"id", "agent1", "agent2", "fair_index", "winner",
		"reason", "duration", "total_moves", "max_store", "min_store"}
	return w.writeFile("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			r.Move,
			strconv.Itoa(r.TargetDepth),
			strconv.Itoa(r.CompletedDepth),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Prunes),
			strconv.FormatFloat(r.Value, 'f', -1, 64),
			r.Budget.String(),
			r.Elapsed.String(),
		})
	}
	header := []string{"game", "step", "player", "move", "target_depth",
		"completed_depth", "nodes", "prunes", "value", "budget", "elapsed"}
	return w.writeFile("moves.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}
