package game

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// Board is the hidden minefield. It is immutable once built.
type Board struct {
	rows  int
	cols  int
	mines int
	cells []int // row-major, Mine or adjacent mine count
}

// NewBoard validates cfg and then places cfg.Mines mines uniformly at random.
// The same seeded src always yields the same layout. A nil src is seeded from
// the clock.
func NewBoard(cfg Config, src rand.Source) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	b := newBoard(cfg)
	b.placeMines(rand.New(src))
	b.calculateNeighbors()
	return b, nil
}

// BoardFromMines builds a board with mines at exactly the given positions.
func BoardFromMines(rows, cols int, mines []Position) (*Board, error) {
	cfg := Config{Rows: rows, Cols: cols, Mines: len(mines)}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := newBoard(cfg)
	for _, p := range mines {
		if !b.InBounds(p) {
			return nil, &OutOfBoundsError{Position: p, Rows: rows, Cols: cols}
		}
		if b.cells[b.index(p)] == Mine {
			return nil, &ConfigError{Config: cfg, Reason: fmt.Sprintf("duplicate mine at %v", p)}
		}
		b.cells[b.index(p)] = Mine
	}
	b.calculateNeighbors()
	return b, nil
}

func newBoard(cfg Config) *Board {
	return &Board{
		rows:  cfg.Rows,
		cols:  cfg.Cols,
		mines: cfg.Mines,
		cells: make([]int, cfg.Cells()),
	}
}

// placeMines runs a partial Fisher-Yates shuffle over all cell indices and mines
// the first b.mines of them. Each step draws once, so placement always terminates.
func (b *Board) placeMines(r *rand.Rand) {
	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}
	for i := 0; i < b.mines; i++ {
		j := i + r.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.cells[candidates[i]] = Mine
	}
}

func (b *Board) calculateNeighbors() {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			p := Position{Row: row, Col: col}
			if b.IsMine(p) {
				continue
			}
			b.cells[b.index(p)] = lo.CountBy(b.Neighbors(p), b.IsMine)
		}
	}
}

func (b *Board) index(p Position) int {
	return p.Row*b.cols + p.Col
}

func (b *Board) Rows() int  { return b.rows }
func (b *Board) Cols() int  { return b.cols }
func (b *Board) Mines() int { return b.mines }

func (b *Board) Config() Config {
	return Config{Rows: b.rows, Cols: b.cols, Mines: b.mines}
}

func (b *Board) InBounds(p Position) bool {
	return inBounds(b.rows, b.cols, p)
}

// Value returns Mine or the adjacent mine count of p. p must be in bounds.
func (b *Board) Value(p Position) int {
	return b.cells[b.index(p)]
}

func (b *Board) IsMine(p Position) bool {
	return b.Value(p) == Mine
}

// Neighbors lists the in-bounds Moore neighbors of p in row-major order.
func (b *Board) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, 8)
	around(b.rows, b.cols, p, func(n Position) {
		neighbors = append(neighbors, n)
	})
	return neighbors
}

// MinePositions lists every mine in row-major order.
func (b *Board) MinePositions() []Position {
	positions := make([]Position, 0, b.mines)
	for i, v := range b.cells {
		if v == Mine {
			positions = append(positions, Position{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return positions
}
