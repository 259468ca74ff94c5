package game

import "strconv"

type CellKind int

const (
	Hidden CellKind = iota
	Revealed
	ExplodedMine
)

// CellState is what a player can see of one cell. Count is only meaningful
// for Revealed cells.
type CellState struct {
	Kind  CellKind
	Count int
}

// Clickable reports whether revealing the cell could change anything.
func (c CellState) Clickable() bool {
	return c.Kind == Hidden
}

// String maps the cell to its display symbol: "-" hidden, "." empty,
// a digit for a numbered cell and "*" for a mine.
func (c CellState) String() string {
	switch c.Kind {
	case Hidden:
		return "-"
	case ExplodedMine:
		return "*"
	}
	if c.Count == 0 {
		return "."
	}
	return strconv.Itoa(c.Count)
}
