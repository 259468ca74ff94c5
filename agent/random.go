package agent

import (
	"minesweeper/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that reveals a uniformly random hidden cell.
func NewRandomAgent(src rand.Source) Agent {
	return &randomAgent{rng: rand.New(src)}
}

func (a *randomAgent) FindMove(s game.Snapshot) (game.Position, Strategy) {
	hidden := s.HiddenPositions()
	if len(hidden) == 0 {
		panic("no hidden cell to reveal")
	}
	return hidden[a.rng.Intn(len(hidden))], Random
}
