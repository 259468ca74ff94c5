package metrics

import (
	"minesweeper/agent"
	"minesweeper/game"
)

type MoveMetric struct {
	Step     int
	Row      int
	Col      int
	Strategy string
	Revealed int // cells that left Hidden with this move
	Status   game.Status
}

type GameMetric struct {
	Session       string
	Agent         string
	Rows          int
	Cols          int
	Mines         int
	Outcome       game.Status
	TotalMoves    int
	LogicMoves    int
	RandomMoves   int
	CellsRevealed int // safe cells revealed before the game ended
}

type Collector interface {
	Start(session string, agent string, cfg game.Config)
	AddMove(move MoveMetric)
	Complete(outcome game.Status) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(session string, agent string, cfg game.Config) {
	m.game = GameMetric{
		Session: session,
		Agent:   agent,
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Mines:   cfg.Mines,
	}
	m.moves = nil
}

func (m *collector) AddMove(move MoveMetric) {
	m.game.TotalMoves++
	if move.Strategy == agent.Logic.String() {
		m.game.LogicMoves++
	} else {
		m.game.RandomMoves++
	}
	// Mines exposed at the end are not cells the player uncovered.
	if !move.Status.Terminal() {
		m.game.CellsRevealed += move.Revealed
	} else if move.Status == game.Won {
		m.game.CellsRevealed += move.Revealed - m.game.Mines
	}
	m.moves = append(m.moves, move)
}

func (m *collector) Complete(outcome game.Status) (GameMetric, []MoveMetric) {
	m.game.Outcome = outcome
	return m.game, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(session string, agent string, cfg game.Config) {}
func (m *dummyCollector) AddMove(move MoveMetric)                             {}
func (m *dummyCollector) Complete(outcome game.Status) (GameMetric, []MoveMetric) {
	return GameMetric{Outcome: outcome}, nil
}
