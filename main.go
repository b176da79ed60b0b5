package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"kalah/config"
	"kalah/engine"
	"kalah/experiments"
	"kalah/game"
	"kalah/player"
	"kalah/searcher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kalah: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kalah: unknown log level %q\n", cfg.LogLevel)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch cfg.Mode {
	case "match":
		err = runMatch(cfg)
	case "fairness":
		err = runFairness(cfg)
	}
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func runMatch(cfg config.Config) error {
	start, fairIndex := startState(cfg)

	options := []searcher.Option{
		searcher.WithEvaluationFn(evaluation(cfg.Evaluation)),
		searcher.WithMetrics(),
	}
	if cfg.Depth > 0 {
		options = append(options, searcher.WithFixedDepth(cfg.Depth))
	}

	e := engine.NewLocal(
		player.NewMinimax(options...),
		player.NewMinimax(options...),
		start, cfg.Budget)
	e.FairIndex = fairIndex

	gm, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Println(e.State.String())
	if gm.Winner == "DRAW" {
		fmt.Printf("Draw, %d to %d\n", gm.MaxStore, gm.MinStore)
	} else {
		fmt.Printf("%s wins, %d to %d (%s)\n", gm.Winner, gm.MaxStore, gm.MinStore, gm.Reason)
	}
	return nil
}

func runFairness(cfg config.Config) error {
	study := experiments.FairnessConfig{
		GamesPerArm: cfg.GamesPerArm,
		Budget:      cfg.Budget,
		Depth:       cfg.Depth,
		Seed:        cfg.Seed,
	}
	results, records, err := experiments.RunFairness(study)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("%-8s %d games: %d draws, %d MAX wins, %d MIN wins (draw rate %.2f)\n",
			r.Arm, r.Games, r.Draws, r.MaxWins, r.MinWins, r.DrawRate)
	}
	return experiments.WriteFairness(study, records)
}

func startState(cfg config.Config) (game.State, int) {
	if cfg.Start == "standard" {
		return game.NewState(), -1
	}
	index := cfg.FairIndex
	if index < 0 || index >= game.FairStateCount() {
		index = rand.Intn(game.FairStateCount())
	}
	return game.NewFairState(index), index
}

func evaluation(name string) game.Evaluate {
	switch name {
	case "free_moves":
		return game.EvaluateFreeMoves
	case "captures":
		return game.EvaluateCaptures
	default:
		return game.EvaluateScoreDiff
	}
}
