package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestSession(t *testing.T, rows, cols int, mines ...Position) *Session {
	t.Helper()
	b, err := BoardFromMines(rows, cols, mines)
	require.NoError(t, err)
	return NewSession(b)
}

// wallSession is a 4x5 board split by a column of mines:
//
//	. 2 * 2 .
//	. 3 * 3 .
//	. 3 * 3 .
//	. 2 * 2 .
func wallSession(t *testing.T) *Session {
	return newTestSession(t, 4, 5, Position{0, 2}, Position{1, 2}, Position{2, 2}, Position{3, 2})
}

func TestNewSession(t *testing.T) {
	t.Run("starts in progress with every cell hidden", func(t *testing.T) {
		s := newTestSession(t, 3, 4, Position{0, 0})
		snap := s.Snapshot()

		require.Equal(t, InProgress, s.Status())
		require.Equal(t, 12, snap.Hidden())
		require.Equal(t, 3, snap.Rows)
		require.Equal(t, 4, snap.Cols)
		require.Equal(t, 1, snap.Mines)
		require.Equal(t, 0, s.Moves())
	})

	t.Run("each session gets its own id", func(t *testing.T) {
		s1 := newTestSession(t, 3, 3, Position{0, 0})
		s2 := newTestSession(t, 3, 3, Position{0, 0})

		require.NotEqual(t, s1.ID(), s2.ID())
	})
}

func TestNewGame(t *testing.T) {
	t.Run("generates a board for the configuration", func(t *testing.T) {
		cfg := Config{Rows: 8, Cols: 8, Mines: 10}
		s, err := NewGame(cfg, rand.NewSource(7))

		require.NoError(t, err)
		require.Equal(t, cfg, s.Config())
		require.Equal(t, 64, s.Snapshot().Hidden())
	})

	t.Run("rejects a configuration with no safe cell", func(t *testing.T) {
		s, err := NewGame(Config{Rows: 2, Cols: 2, Mines: 4}, rand.NewSource(7))

		require.Nil(t, s)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestReveal(t *testing.T) {
	t.Run("numbered cell reveals only itself", func(t *testing.T) {
		s := newTestSession(t, 3, 3, Position{1, 1})

		res, err := s.Reveal(Position{0, 0})

		require.NoError(t, err)
		require.True(t, res.Changed)
		require.Equal(t, []Position{{0, 0}}, res.Revealed)
		require.Equal(t, CellState{Kind: Revealed, Count: 1}, s.Snapshot().At(Position{0, 0}))
		require.Equal(t, 8, s.Snapshot().Hidden())
		require.Equal(t, InProgress, s.Status())
	})

	t.Run("revealing every safe cell wins", func(t *testing.T) {
		s := newTestSession(t, 3, 3, Position{1, 1})
		safe := []Position{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

		for i, p := range safe {
			res, err := s.Reveal(p)
			require.NoError(t, err)
			if i < len(safe)-1 {
				require.Equal(t, InProgress, res.Status, "Game should continue while safe cells remain hidden")
			}
		}

		require.Equal(t, Won, s.Status())
		require.Equal(t, CellState{Kind: ExplodedMine}, s.Snapshot().At(Position{1, 1}), "Mines should be shown on a win")
	})

	t.Run("mine loses and exposes every mine", func(t *testing.T) {
		s := newTestSession(t, 4, 4, Position{0, 0}, Position{3, 3}, Position{2, 0})

		res, err := s.Reveal(Position{3, 3})

		require.NoError(t, err)
		require.Equal(t, Lost, res.Status)
		require.Equal(t, Lost, s.Status())
		require.ElementsMatch(t, []Position{{0, 0}, {2, 0}, {3, 3}}, res.Revealed)

		snap := s.Snapshot()
		for _, p := range []Position{{0, 0}, {2, 0}, {3, 3}} {
			require.Equal(t, ExplodedMine, snap.At(p).Kind, "Mine at %v should be exposed", p)
		}
		require.Equal(t, 13, snap.Hidden(), "Only mines should be exposed on a loss")
	})

	t.Run("out of bounds is an error and changes nothing", func(t *testing.T) {
		s := newTestSession(t, 3, 3, Position{1, 1})
		before := s.Snapshot()

		for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			res, err := s.Reveal(p)

			require.ErrorIs(t, err, ErrOutOfBounds)
			var oob *OutOfBoundsError
			require.ErrorAs(t, err, &oob)
			require.Equal(t, p, oob.Position)
			require.False(t, res.Changed)
		}
		require.Equal(t, before, s.Snapshot())
		require.Equal(t, 0, s.Moves())
	})

	t.Run("revealing a revealed cell is a no-op", func(t *testing.T) {
		s := wallSession(t)
		_, err := s.Reveal(Position{1, 1})
		require.NoError(t, err)
		before := s.Snapshot()

		res, err := s.Reveal(Position{1, 1})

		require.NoError(t, err)
		require.False(t, res.Changed)
		require.Empty(t, res.Revealed)
		require.Equal(t, before, s.Snapshot())
		require.Equal(t, 1, s.Moves())
	})

	t.Run("lost game ignores further reveals", func(t *testing.T) {
		s := wallSession(t)
		_, err := s.Reveal(Position{0, 2})
		require.NoError(t, err)
		before := s.Snapshot()

		res, err := s.Reveal(Position{0, 0})

		require.NoError(t, err)
		require.False(t, res.Changed)
		require.Equal(t, Lost, res.Status)
		require.Equal(t, before, s.Snapshot())
	})

	t.Run("won game ignores further reveals", func(t *testing.T) {
		s := newTestSession(t, 1, 2, Position{0, 1})
		res, err := s.Reveal(Position{0, 0})
		require.NoError(t, err)
		require.Equal(t, Won, res.Status)
		before := s.Snapshot()

		res, err = s.Reveal(Position{0, 1})

		require.NoError(t, err)
		require.False(t, res.Changed)
		require.Equal(t, Won, s.Status(), "Mine cell should not turn a win into a loss")
		require.Equal(t, before, s.Snapshot())
	})
}

func TestFloodFill(t *testing.T) {
	t.Run("zero region spreads to its numbered border and stops", func(t *testing.T) {
		s := wallSession(t)

		res, err := s.Reveal(Position{0, 0})

		require.NoError(t, err)
		require.Equal(t, InProgress, res.Status)
		require.Len(t, res.Revealed, 8)

		snap := s.Snapshot()
		require.Equal(t, ". 2 - - -\n. 3 - - -\n. 3 - - -\n. 2 - - -", snap.String())
	})

	t.Run("starting from any zero cell discloses the same region", func(t *testing.T) {
		var want string
		for row := 0; row < 4; row++ {
			s := wallSession(t)
			_, err := s.Reveal(Position{row, 0})
			require.NoError(t, err)

			got := s.Snapshot().String()
			if want == "" {
				want = got
			}
			require.Equal(t, want, got, "Flood from row %d should match", row)
		}
	})

	t.Run("second region completes the win", func(t *testing.T) {
		s := wallSession(t)
		_, err := s.Reveal(Position{0, 0})
		require.NoError(t, err)

		res, err := s.Reveal(Position{3, 4})

		require.NoError(t, err)
		require.Equal(t, Won, res.Status)
		require.Len(t, res.Revealed, 12, "Should reveal 8 safe cells and expose 4 mines")
		require.Equal(t, ". 2 * 2 .\n. 3 * 3 .\n. 3 * 3 .\n. 2 * 2 .", s.Snapshot().String())
	})

	t.Run("large open board floods without recursion", func(t *testing.T) {
		s := newTestSession(t, 200, 200, Position{199, 199})

		res, err := s.Reveal(Position{0, 0})

		require.NoError(t, err)
		require.Equal(t, Won, res.Status)
		require.Equal(t, 0, s.Snapshot().Hidden())
	})
}

func TestWinCondition(t *testing.T) {
	t.Run("win arrives exactly when hidden cells equal mines", func(t *testing.T) {
		for seed := uint64(1); seed <= 10; seed++ {
			cfg := Config{Rows: 6, Cols: 7, Mines: 8}
			b, err := NewBoard(cfg, rand.NewSource(seed))
			require.NoError(t, err)
			s := NewSession(b)

			for row := 0; row < cfg.Rows; row++ {
				for col := 0; col < cfg.Cols; col++ {
					p := Position{Row: row, Col: col}
					if b.IsMine(p) {
						continue
					}
					_, err := s.Reveal(p)
					require.NoError(t, err)

					hidden := s.Snapshot().Hidden()
					if s.Status() == Won {
						require.Equal(t, 0, hidden, "Mines should be exposed once the game is won")
					} else {
						require.Greater(t, hidden, cfg.Mines, "Game should be won once only mines are hidden")
					}
				}
			}
			require.Equal(t, Won, s.Status())
		}
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("is detached from the session", func(t *testing.T) {
		s := newTestSession(t, 3, 3, Position{1, 1})
		snap := s.Snapshot()

		snap.Cells[0][0] = CellState{Kind: Revealed, Count: 1}

		require.Equal(t, Hidden, s.Snapshot().At(Position{0, 0}).Kind)
	})

	t.Run("lists hidden positions in row-major order", func(t *testing.T) {
		s := newTestSession(t, 2, 2, Position{1, 1})
		_, err := s.Reveal(Position{0, 0})
		require.NoError(t, err)

		require.Equal(t, []Position{{0, 1}, {1, 0}, {1, 1}}, s.Snapshot().HiddenPositions())
	})
}

func TestCellStateString(t *testing.T) {
	require.Equal(t, "-", CellState{Kind: Hidden}.String())
	require.Equal(t, ".", CellState{Kind: Revealed}.String())
	require.Equal(t, "3", CellState{Kind: Revealed, Count: 3}.String())
	require.Equal(t, "*", CellState{Kind: ExplodedMine}.String())
	require.True(t, CellState{Kind: Hidden}.Clickable())
	require.False(t, CellState{Kind: Revealed}.Clickable())
}
