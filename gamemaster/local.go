package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"minesweeper/game"

	"golang.org/x/exp/rand"
)

// ActionType is what a presentation layer asks the table to do.
type ActionType int

const (
	NewGameAction ActionType = iota
	RevealAction
)

// Action is one user interaction. Config is read for NewGameAction,
// Position for RevealAction.
type Action struct {
	Type     ActionType
	Config   game.Config
	Position game.Position
}

// Update is published after every action that changed the table.
type Update struct {
	Action   Action
	Result   game.Result
	Snapshot game.Snapshot
}

type UpdateGetter func() (Update, bool)

type Engine interface {
	Init(cfg game.Config) (game.Snapshot, UpdateGetter, error)
	Play(action Action) error
}

var ErrNoGame = errors.New("no game in progress")

var _ Engine = (*Local)(nil)

// Local hosts one session at a time for a single player. Calls are
// serialized so a UI may dispatch from several goroutines.
type Local struct {
	mu       sync.Mutex
	rng      *rand.Rand
	session  *game.Session
	updateCh chan Update
}

// NewLocalEngine seeds every new board from src. A nil src is seeded from the clock.
func NewLocalEngine(src rand.Source) *Local {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &Local{
		rng:      rand.New(src),
		updateCh: make(chan Update, 1),
	}
}

// Init starts the first game and returns its snapshot together with a
// non-blocking getter for the latest unseen update.
func (e *Local) Init(cfg game.Config) (game.Snapshot, UpdateGetter, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.newGame(cfg); err != nil {
		return game.Snapshot{}, nil, err
	}
	e.drain()
	return e.session.Snapshot(), func() (Update, bool) {
		select {
		case u := <-e.updateCh:
			return u, true
		default:
			return Update{}, false
		}
	}, nil
}

func (e *Local) Play(action Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch action.Type {
	case NewGameAction:
		if err := e.newGame(action.Config); err != nil {
			return err
		}
		e.publish(Update{Action: action, Result: game.Result{Status: game.InProgress, Changed: true}, Snapshot: e.session.Snapshot()})
		return nil

	case RevealAction:
		if e.session == nil {
			return ErrNoGame
		}
		res, err := e.session.Reveal(action.Position)
		if err != nil {
			return fmt.Errorf("reveal %v: %w", action.Position, err)
		}
		if res.Changed {
			e.publish(Update{Action: action, Result: res, Snapshot: e.session.Snapshot()})
		}
		return nil

	default:
		return fmt.Errorf("unknown action type %d", action.Type)
	}
}

// Snapshot returns the current table, or false before the first game.
func (e *Local) Snapshot() (game.Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return game.Snapshot{}, false
	}
	return e.session.Snapshot(), true
}

// newGame replaces the current session. A rejected config keeps the old one.
func (e *Local) newGame(cfg game.Config) error {
	session, err := game.NewGame(cfg, rand.NewSource(e.rng.Uint64()))
	if err != nil {
		return err
	}
	e.session = session
	return nil
}

// publish keeps only the newest update; its snapshot supersedes older ones.
func (e *Local) publish(u Update) {
	e.drain()
	e.updateCh <- u
}

func (e *Local) drain() {
	select {
	case <-e.updateCh:
	default:
	}
}
