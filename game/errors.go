package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid game configuration")
	ErrOutOfBounds   = errors.New("position out of bounds")
)

// ConfigError rejects a configuration before any board is generated.
type ConfigError struct {
	Config Config
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (rows=%d cols=%d mines=%d)",
		ErrInvalidConfig, e.Reason, e.Config.Rows, e.Config.Cols, e.Config.Mines)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// OutOfBoundsError is returned for a position outside a rows x cols grid.
// It signals a caller bug and is distinct from the no-op cases of Reveal.
type OutOfBoundsError struct {
	Position Position
	Rows     int
	Cols     int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %v not in %dx%d grid", ErrOutOfBounds, e.Position, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
