package agent

import (
	"minesweeper/game"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

type logicAgent struct {
	rng *rand.Rand
}

// NewLogicAgent returns an agent that reveals provably safe cells first and
// guesses among the remaining hidden cells only when no deduction applies.
func NewLogicAgent(src rand.Source) Agent {
	return &logicAgent{rng: rand.New(src)}
}

func (a *logicAgent) FindMove(s game.Snapshot) (game.Position, Strategy) {
	mines := knownMines(s)
	if p, ok := findSafe(s, mines); ok {
		return p, Logic
	}

	hidden := s.HiddenPositions()
	if len(hidden) == 0 {
		panic("no hidden cell to reveal")
	}
	candidates := lo.Filter(hidden, func(p game.Position, _ int) bool {
		_, mine := mines[p]
		return !mine
	})
	if len(candidates) == 0 {
		candidates = hidden
	}
	return candidates[a.rng.Intn(len(candidates))], Random
}

// knownMines marks the hidden neighbors of every numbered cell whose hidden
// neighbor count equals its number.
func knownMines(s game.Snapshot) map[game.Position]struct{} {
	mines := make(map[game.Position]struct{})
	eachNumbered(s, func(count int, hidden []game.Position) {
		if len(hidden) == count {
			for _, p := range hidden {
				mines[p] = struct{}{}
			}
		}
	})
	return mines
}

// findSafe returns a hidden cell next to a numbered cell that already has all
// of its mines accounted for.
func findSafe(s game.Snapshot, mines map[game.Position]struct{}) (game.Position, bool) {
	var (
		safe  game.Position
		found bool
	)
	eachNumbered(s, func(count int, hidden []game.Position) {
		if found {
			return
		}
		unknown := lo.Filter(hidden, func(p game.Position, _ int) bool {
			_, mine := mines[p]
			return !mine
		})
		if len(unknown) > 0 && len(hidden)-len(unknown) == count {
			safe, found = unknown[0], true
		}
	})
	return safe, found
}

// eachNumbered calls fn for every revealed cell with a positive count that
// still has hidden neighbors.
func eachNumbered(s game.Snapshot, fn func(count int, hidden []game.Position)) {
	for row, cells := range s.Cells {
		for col, c := range cells {
			if c.Kind != game.Revealed || c.Count == 0 {
				continue
			}
			hidden := lo.Filter(s.Neighbors(game.Position{Row: row, Col: col}), func(n game.Position, _ int) bool {
				return s.At(n).Kind == game.Hidden
			})
			if len(hidden) > 0 {
				fn(c.Count, hidden)
			}
		}
	}
}
