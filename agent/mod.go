package agent

import (
	"fmt"
	"time"

	"minesweeper/game"

	"golang.org/x/exp/rand"
)

type Strategy int

const (
	Random Strategy = iota
	Logic
)

func (s Strategy) String() string {
	if s == Logic {
		return "logic"
	}
	return "random"
}

// Agent plays a session the way an outside player would, from snapshots only.
type Agent interface {
	// FindMove picks a hidden cell to reveal. It is only called while the game
	// is in progress, so at least one hidden cell exists.
	FindMove(s game.Snapshot) (game.Position, Strategy)
}

const (
	KindRandom = "random"
	KindLogic  = "logic"
)

// New builds an agent by kind name. A nil src is seeded from the clock.
func New(kind string, src rand.Source) (Agent, error) {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	switch kind {
	case KindRandom:
		return NewRandomAgent(src), nil
	case KindLogic:
		return NewLogicAgent(src), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}
