package game

import "fmt"

// Mine is the Board.Value sentinel for a mine cell. Every other cell holds its
// adjacent mine count.
const Mine = -1

// Position addresses one cell of the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Status int

const (
	InProgress Status = iota
	Lost
	Won
)

// Terminal reports whether the game is over. A terminal session never changes again.
func (s Status) Terminal() bool {
	return s == Lost || s == Won
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// around calls fn for every in-bounds Moore neighbor of p. Cells outside the
// grid are skipped, never wrapped.
func around(rows, cols int, p Position, fn func(Position)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{Row: p.Row + dr, Col: p.Col + dc}
			if inBounds(rows, cols, n) {
				fn(n)
			}
		}
	}
}

func inBounds(rows, cols int, p Position) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}
