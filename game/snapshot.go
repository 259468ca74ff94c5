package game

import (
	"strings"

	"github.com/samber/lo"
)

// Snapshot is a detached view of a session for rendering or for an agent
// deciding its next move.
type Snapshot struct {
	Rows   int
	Cols   int
	Mines  int
	Status Status
	Cells  [][]CellState
}

func (s Snapshot) At(p Position) CellState {
	return s.Cells[p.Row][p.Col]
}

// Hidden counts the cells the player has not seen yet.
func (s Snapshot) Hidden() int {
	return lo.SumBy(s.Cells, func(row []CellState) int {
		return lo.CountBy(row, func(c CellState) bool { return c.Kind == Hidden })
	})
}

// HiddenPositions lists the hidden cells in row-major order.
func (s Snapshot) HiddenPositions() []Position {
	var positions []Position
	for row, cells := range s.Cells {
		for col, c := range cells {
			if c.Kind == Hidden {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

func (s Snapshot) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, 8)
	around(s.Rows, s.Cols, p, func(n Position) {
		neighbors = append(neighbors, n)
	})
	return neighbors
}

// String renders one line per row with space separated cell symbols.
func (s Snapshot) String() string {
	var sb strings.Builder
	for i, row := range s.Cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Join(lo.Map(row, func(c CellState, _ int) string {
			return c.String()
		}), " "))
	}
	return sb.String()
}
