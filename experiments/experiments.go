package experiments

import (
	"fmt"
	"time"

	"minesweeper/agent"
	"minesweeper/engine"
	"minesweeper/experiments/metrics"
	"minesweeper/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Summary struct {
	Games      int
	Won        int
	Lost       int
	Unfinished int
	Dir        string // where records were written, "" if not stored
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Games)
}

// Run plays cfg.Games games and stores their records under cfg.OutputDir.
// An empty OutputDir skips storing.
func Run(cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid experiment config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	summary := Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %d games of %dx%d with %d mines using the %s agent (seed %d)...",
		cfg.Games, cfg.Rows, cfg.Cols, cfg.Mines, cfg.Agent, seed)

	for i := 0; i < cfg.Games; i++ {
		gameSeed := seed + uint64(i)
		outcome, gameMetric, moveMetrics, err := runGame(cfg, gameSeed)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		summary.Games++
		switch outcome {
		case game.Won:
			summary.Won++
		case game.Lost:
			summary.Lost++
		default:
			summary.Unfinished++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Seed:       gameSeed,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d: %s after %d moves", i+1, cfg.Games, outcome, gameMetric.TotalMoves)
	}

	log.Info().Msgf("won %d of %d games (%.1f%%)", summary.Won, summary.Games, 100*summary.WinRate())

	if cfg.OutputDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, err
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame plays a single game. The board and the agent draw from separate
// sources derived from the same seed, so a record can be replayed exactly.
func runGame(cfg Config, seed uint64) (game.Status, metrics.GameMetric, []metrics.MoveMetric, error) {
	session, err := game.NewGame(cfg.Game(), rand.NewSource(seed))
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}
	a, err := agent.New(cfg.Agent, rand.NewSource(^seed))
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(session, a, cfg.Agent, engine.WithMetrics())
	outcome, gameMetric, moveMetrics := e.Run()
	return outcome, gameMetric, moveMetrics, nil
}
