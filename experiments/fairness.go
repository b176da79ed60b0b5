// Package experiments holds self-play studies over the engine. The
// headline study compares FairKalah catalog starts against the standard
// distribution: with reasonably deep searchers on both sides, catalog
// starts should trend toward draws. That trend is a regression signal
// for the rules engine and catalog, not a per-run assertion.
package experiments

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"kalah/engine"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/player"
	"kalah/searcher"
)

// FairnessConfig sizes a fairness study.
type FairnessConfig struct {
	GamesPerArm int           // games per start kind
	Budget      time.Duration // per-side clock for each game
	Depth       int           // fixed search depth; 0 uses the time policy
	Seed        uint64        // catalog sampling seed
}

// FairnessResult aggregates one arm of the study.
type FairnessResult struct {
	Arm      string // "fair" or "standard"
	Games    int
	Draws    int
	MaxWins  int
	MinWins  int
	DrawRate float64
}

// RunFairness plays cfg.GamesPerArm games from catalog starts and the
// same number from the standard start, both sides driven by identical
// searchers. Games are independent, so they run concurrently; each game
// itself stays single-threaded.
func RunFairness(cfg FairnessConfig) ([]FairnessResult, []metrics.GameRecord, error) {
	if cfg.GamesPerArm <= 0 {
		cfg.GamesPerArm = 30
	}
	if cfg.Budget <= 0 {
		cfg.Budget = 30 * time.Second
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	type start struct {
		arm   string
		index int
		state game.State
	}
	var starts []start
	for i := 0; i < cfg.GamesPerArm; i++ {
		index := rng.Intn(game.FairStateCount())
		starts = append(starts, start{arm: "fair", index: index, state: game.NewFairState(index)})
	}
	for i := 0; i < cfg.GamesPerArm; i++ {
		starts = append(starts, start{arm: "standard", index: -1, state: game.NewState()})
	}

	var (
		mu      sync.Mutex
		records []metrics.GameRecord
		arms    = map[string][]string{}
	)

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for id, s := range starts {
		id, s := id, s
		group.Go(func() error {
			gm, _, err := runGame(s.state, s.index, cfg)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			records = append(records, metrics.GameRecord{ID: id, Agent1: 1, Agent2: 1, GameMetric: gm})
			arms[s.arm] = append(arms[s.arm], gm.Winner)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	results := make([]FairnessResult, 0, len(arms))
	for _, arm := range []string{"fair", "standard"} {
		winners := arms[arm]
		tally := lo.CountValues(winners)
		r := FairnessResult{
			Arm:     arm,
			Games:   len(winners),
			Draws:   tally["DRAW"],
			MaxWins: tally["MAX"],
			MinWins: tally["MIN"],
		}
		if r.Games > 0 {
			r.DrawRate = float64(r.Draws) / float64(r.Games)
		}
		results = append(results, r)

		log.Info().
			Str("arm", arm).
			Int("games", r.Games).
			Int("draws", r.Draws).
			Int("max_wins", r.MaxWins).
			Int("min_wins", r.MinWins).
			Float64("draw_rate", r.DrawRate).
			Msg("fairness arm complete")
	}
	return results, records, nil
}

// WriteFairness persists the study's records next to the agent config
// that produced them.
func WriteFairness(cfg FairnessConfig, records []metrics.GameRecord) error {
	writer, err := metrics.NewWriter("fairness")
	if err != nil {
		return err
	}
	configs := []metrics.AgentConfig{{
		ID:         1,
		Budget:     cfg.Budget,
		MaxDepth:   cfg.Depth,
		Evaluation: "score_diff",
	}}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("fairness records written")
	return nil
}

func runGame(start game.State, fairIndex int, cfg FairnessConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	options := []searcher.Option{}
	if cfg.Depth > 0 {
		options = append(options, searcher.WithFixedDepth(cfg.Depth))
	}
	e := engine.NewLocal(
		player.NewMinimax(options...),
		player.NewMinimax(options...),
		start, cfg.Budget)
	e.FairIndex = fairIndex
	return e.Run()
}
