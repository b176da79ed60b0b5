// Package config loads process configuration from defaults, an optional
// kalah.yaml in the working directory, and KALAH_* environment
// overrides, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config drives a single process run.
type Config struct {
	// Mode selects what the process does: "match" plays one game,
	// "fairness" runs the catalog-versus-standard self-play study.
	Mode string `mapstructure:"mode"`

	// Budget is the per-side game clock.
	Budget time.Duration `mapstructure:"budget"`

	// Start selects the opening board: "fair" draws from the catalog,
	// "standard" deals four pieces per pit.
	Start string `mapstructure:"start"`

	// FairIndex picks a catalog entry for fair starts. Out of range
	// picks one at random.
	FairIndex int `mapstructure:"fair_index"`

	// Depth fixes the search depth. Zero defers to the time policy.
	Depth int `mapstructure:"depth"`

	// Evaluation names the leaf evaluation: "score_diff",
	// "free_moves" or "captures".
	Evaluation string `mapstructure:"evaluation"`

	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`

	// GamesPerArm and Seed size the fairness study.
	GamesPerArm int    `mapstructure:"games_per_arm"`
	Seed        uint64 `mapstructure:"seed"`
}

// Load resolves the effective configuration. A missing kalah.yaml is
// fine; a malformed one is not.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("mode", "match")
	v.SetDefault("budget", "2m30s")
	v.SetDefault("start", "fair")
	v.SetDefault("fair_index", -1)
	v.SetDefault("depth", 0)
	v.SetDefault("evaluation", "score_diff")
	v.SetDefault("log_level", "info")
	v.SetDefault("games_per_arm", 30)
	v.SetDefault("seed", 1)

	v.SetConfigName("kalah")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading kalah.yaml: %w", err)
		}
	}

	v.SetEnvPrefix("kalah")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	switch c.Mode {
	case "match", "fairness":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Start {
	case "fair", "standard":
	default:
		return fmt.Errorf("unknown start %q", c.Start)
	}
	switch c.Evaluation {
	case "score_diff", "free_moves", "captures":
	default:
		return fmt.Errorf("unknown evaluation %q", c.Evaluation)
	}
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %s", c.Budget)
	}
	return nil
}
