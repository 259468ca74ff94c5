package game

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// Session owns one hidden board and everything the player has seen of it.
// It is not safe for concurrent use; callers serialize Reveal per session.
type Session struct {
	id     uuid.UUID
	board  *Board
	cells  [][]CellState
	status Status
	hidden int // cells still Hidden
	moves  int
}

// Result describes what a single Reveal call changed.
type Result struct {
	Status   Status
	Changed  bool
	Revealed []Position // cells that left Hidden during the call
}

// NewGame generates a board for cfg and starts a session on it.
func NewGame(cfg Config, src rand.Source) (*Session, error) {
	board, err := NewBoard(cfg, src)
	if err != nil {
		return nil, err
	}
	return NewSession(board), nil
}

// NewSession starts a game on an existing board with every cell hidden.
func NewSession(board *Board) *Session {
	cells := lo.Times(board.Rows(), func(_ int) []CellState {
		return lo.Times(board.Cols(), func(_ int) CellState { return CellState{Kind: Hidden} })
	})
	return &Session{
		id:     uuid.New(),
		board:  board,
		cells:  cells,
		status: InProgress,
		hidden: board.Rows() * board.Cols(),
	}
}

func (s *Session) ID() uuid.UUID  { return s.id }
func (s *Session) Config() Config { return s.board.Config() }
func (s *Session) Status() Status { return s.status }
func (s *Session) Moves() int     { return s.moves }

// Reveal exposes the cell at p.
//
// Revealing a cell that is not hidden, or revealing anything once the game is
// over, is a no-op. A mine loses the game and exposes every mine. Otherwise the
// cell is disclosed, spreading through zero-count neighbors, and the game is won
// as soon as only mines remain hidden.
func (s *Session) Reveal(p Position) (Result, error) {
	if !s.board.InBounds(p) {
		return Result{Status: s.status}, &OutOfBoundsError{Position: p, Rows: s.board.Rows(), Cols: s.board.Cols()}
	}
	if s.status.Terminal() || s.cells[p.Row][p.Col].Kind != Hidden {
		return Result{Status: s.status}, nil
	}

	s.moves++
	if s.board.IsMine(p) {
		s.status = Lost
		return Result{Status: s.status, Changed: true, Revealed: s.exposeMines()}, nil
	}

	revealed := s.disclose(p)
	if s.hidden == s.board.Mines() {
		s.status = Won
		revealed = append(revealed, s.exposeMines()...)
	}
	return Result{Status: s.status, Changed: true, Revealed: revealed}, nil
}

// disclose reveals start and floods outward from every zero-count cell it
// reaches. It uses an explicit stack; each cell is pushed only while Hidden
// and revealed at most once.
func (s *Session) disclose(start Position) []Position {
	var revealed []Position
	stack := []Position{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &s.cells[p.Row][p.Col]
		if cell.Kind != Hidden {
			continue
		}
		count := s.board.Value(p)
		*cell = CellState{Kind: Revealed, Count: count}
		s.hidden--
		revealed = append(revealed, p)

		if count != 0 {
			continue
		}
		around(s.board.Rows(), s.board.Cols(), p, func(n Position) {
			if s.cells[n.Row][n.Col].Kind == Hidden {
				stack = append(stack, n)
			}
		})
	}
	return revealed
}

// exposeMines marks every mine as ExplodedMine. Used on both loss and win.
func (s *Session) exposeMines() []Position {
	mines := s.board.MinePositions()
	for _, p := range mines {
		if s.cells[p.Row][p.Col].Kind == Hidden {
			s.hidden--
		}
		s.cells[p.Row][p.Col] = CellState{Kind: ExplodedMine}
	}
	return mines
}

// Snapshot returns a copy of the visible grid and status.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Rows:   s.board.Rows(),
		Cols:   s.board.Cols(),
		Mines:  s.board.Mines(),
		Status: s.status,
		Cells: lo.Map(s.cells, func(row []CellState, _ int) []CellState {
			return append([]CellState(nil), row...)
		}),
	}
}
