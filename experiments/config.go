package experiments

import (
	"fmt"

	"minesweeper/agent"
	"minesweeper/game"
	"minesweeper/meta"

	"github.com/caarlos0/env/v11"
)

// Config controls a batch of games played by one agent kind.
type Config struct {
	Rows      int    `env:"MINES_ROWS"       envDefault:"8"`
	Cols      int    `env:"MINES_COLS"       envDefault:"8"`
	Mines     int    `env:"MINES_COUNT"      envDefault:"10"`
	Games     int    `env:"MINES_GAMES"      envDefault:"20"`
	Seed      uint64 `env:"MINES_SEED"       envDefault:"0"`
	Agent     string `env:"MINES_AGENT"      envDefault:"logic"`
	OutputDir string `env:"MINES_OUTPUT_DIR" envDefault:"experiments/runs"`
	LogLevel  string `env:"MINES_LOG_LEVEL"  envDefault:"info"`
}

// LoadConfig reads the batch configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Game() game.Config {
	return game.Config{Rows: c.Rows, Cols: c.Cols, Mines: c.Mines}
}

// Validate applies the player-facing size and mine bounds on top of the
// engine's own configuration rules.
func (c Config) Validate() error {
	if c.Rows < meta.MIN_SIDE || c.Rows > meta.MAX_SIDE || c.Cols < meta.MIN_SIDE || c.Cols > meta.MAX_SIDE {
		return fmt.Errorf("board must be between %dx%d and %dx%d, got %dx%d",
			meta.MIN_SIDE, meta.MIN_SIDE, meta.MAX_SIDE, meta.MAX_SIDE, c.Rows, c.Cols)
	}
	if c.Mines < meta.MIN_MINES || c.Mines > meta.MAX_MINES {
		return fmt.Errorf("mines must be between %d and %d, got %d", meta.MIN_MINES, meta.MAX_MINES, c.Mines)
	}
	if err := c.Game().Validate(); err != nil {
		return err
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Agent != agent.KindLogic && c.Agent != agent.KindRandom {
		return fmt.Errorf("agent must be %q or %q, got %q", agent.KindLogic, agent.KindRandom, c.Agent)
	}
	return nil
}
