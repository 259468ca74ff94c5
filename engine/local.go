package engine

import (
	"fmt"

	"minesweeper/agent"
	"minesweeper/experiments/metrics"
	"minesweeper/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithMetrics records per-move and per-game metrics during Run.
func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// WithMaxMoves caps the number of reveals in a single Run.
func WithMaxMoves(moves int) Option {
	return func(e *Engine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

type Engine struct {
	Session  *game.Session
	Agent    agent.Agent
	Name     string // agent kind, for records
	maxMoves int
	metrics  metrics.Collector
}

func LocalEngine(session *game.Session, a agent.Agent, name string, options ...Option) *Engine {
	if session == nil {
		panic("engine needs a session")
	}
	if a == nil {
		panic("engine needs an agent")
	}

	e := &Engine{ // Default values
		Session:  session,
		Agent:    a,
		Name:     name,
		maxMoves: MaxMoves,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run lets the agent reveal cells until the session reaches a terminal status.
func (e *Engine) Run() (game.Status, metrics.GameMetric, []metrics.MoveMetric) {
	id := e.Session.ID().String()
	e.metrics.Start(id, e.Name, e.Session.Config())

	log.Debug().Str("session", id).Str("agent", e.Name).Msgf("starting game %+v", e.Session.Config())

	step := 0
	for !e.Session.Status().Terminal() && step < e.maxMoves {
		pos, strategy := e.Agent.FindMove(e.Session.Snapshot())

		res, err := e.Session.Reveal(pos)
		if err != nil {
			panic(fmt.Sprintf("agent %s chose an invalid cell: %v", e.Name, err))
		}
		if !res.Changed {
			panic(fmt.Sprintf("agent %s chose a cell that is not hidden: %v", e.Name, pos))
		}
		step++

		e.metrics.AddMove(metrics.MoveMetric{
			Step:     step,
			Row:      pos.Row,
			Col:      pos.Col,
			Strategy: strategy.String(),
			Revealed: len(res.Revealed),
			Status:   res.Status,
		})
		log.Debug().Str("session", id).Int("step", step).Msgf("%s reveal %v disclosed %d cells", strategy, pos, len(res.Revealed))
	}

	outcome := e.Session.Status()
	if !outcome.Terminal() {
		log.Warn().Str("session", id).Msgf("stopped after %d moves without a result", step)
	}
	if ev := log.Debug(); ev.Enabled() {
		ev.Str("session", id).Msgf("game over: %s\n%s", outcome, e.Session.Snapshot())
	}

	gameMetric, moveMetrics := e.metrics.Complete(outcome)
	return outcome, gameMetric, moveMetrics
}
