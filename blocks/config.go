package blocks

import (
	"errors"
	"fmt"
	"time"
)

// HighScoreKey is the store key holding the best score for this game.
const HighScoreKey = "tetrisHighScore"

// PointsPerRow is awarded for every cleared row. Clearing several rows at
// once earns no bonus.
const PointsPerRow = 100

// Randomizer names accepted by Config.Randomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

var ErrInvalidConfig = errors.New("invalid blocks config")

// Config holds the initialization-time parameters of a game.
type Config struct {
	Width  int // Grid columns
	Height int // Grid rows

	Spawn Point // Origin given to every new piece

	TickInterval time.Duration // Time between gravity steps

	Randomizer   string // RandomizerUniform or RandomizerBag
	HighScoreKey string // Store key for the best score
}

// DefaultConfig returns the standard 10x20 game with a one second drop.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       20,
		Spawn:        Point{X: 4, Y: 0},
		TickInterval: time.Second,
		Randomizer:   RandomizerUniform,
		HighScoreKey: HighScoreKey,
	}
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Spawn.X < 0 || c.Spawn.X >= c.Width:
		return fmt.Errorf("%w: spawn column %d outside grid", ErrInvalidConfig, c.Spawn.X)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %s", ErrInvalidConfig, c.TickInterval)
	case c.Randomizer != RandomizerUniform && c.Randomizer != RandomizerBag:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Randomizer)
	case c.HighScoreKey == "":
		return fmt.Errorf("%w: empty high score key", ErrInvalidConfig)
	}
	return nil
}
