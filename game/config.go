package game

import "math"

// Config is the immutable shape of one game.
type Config struct {
	Rows  int
	Cols  int
	Mines int
}

func (c Config) Cells() int {
	return c.Rows * c.Cols
}

// Validate enforces 0 < Mines < Rows*Cols with positive dimensions. Mine
// placement must never be attempted on a config that fails here.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return &ConfigError{Config: c, Reason: "rows and cols must be positive"}
	case c.Rows > math.MaxInt/c.Cols:
		return &ConfigError{Config: c, Reason: "board has too many cells"}
	case c.Mines <= 0:
		return &ConfigError{Config: c, Reason: "mine count must be positive"}
	case c.Mines >= c.Cells():
		return &ConfigError{Config: c, Reason: "mine count must be less than the number of cells"}
	}
	return nil
}
