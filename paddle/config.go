package paddle

import (
	"errors"
	"fmt"
	"time"
)

// HighScoreKey is the store key holding the best score for this game.
const HighScoreKey = "pongHighScore"

var ErrInvalidConfig = errors.New("invalid paddle config")

// Config holds the court geometry and the starting ball.
type Config struct {
	// Court dimensions in pixels
	Width  float64
	Height float64

	// Paddle geometry. The paddle's top edge sits PaddleInset above the
	// bottom of the court.
	PaddleX      float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64

	// Ball start position, velocity per step and radius
	BallX      float64
	BallY      float64
	BallDX     float64
	BallDY     float64
	BallRadius float64

	// StepInterval is how often the ball moves
	StepInterval time.Duration

	HighScoreKey string
}

// DefaultConfig returns the 600x400 court.
func DefaultConfig() Config {
	return Config{
		Width:        600,
		Height:       400,
		PaddleX:      260,
		PaddleWidth:  80,
		PaddleHeight: 10,
		PaddleInset:  20,
		BallX:        300,
		BallY:        200,
		BallDX:       4,
		BallDY:       -4,
		BallRadius:   8,
		StepInterval: time.Second / 60,
		HighScoreKey: HighScoreKey,
	}
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: court size %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.PaddleWidth <= 0 || c.PaddleWidth > c.Width:
		return fmt.Errorf("%w: paddle width %g", ErrInvalidConfig, c.PaddleWidth)
	case c.PaddleInset <= 0 || c.PaddleInset >= c.Height:
		return fmt.Errorf("%w: paddle inset %g", ErrInvalidConfig, c.PaddleInset)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius %g", ErrInvalidConfig, c.BallRadius)
	case c.BallY+c.BallRadius >= c.Height-c.PaddleInset:
		return fmt.Errorf("%w: ball starts below the paddle line", ErrInvalidConfig)
	case c.StepInterval <= 0:
		return fmt.Errorf("%w: step interval %s", ErrInvalidConfig, c.StepInterval)
	case c.HighScoreKey == "":
		return fmt.Errorf("%w: empty high score key", ErrInvalidConfig)
	}
	return nil
}
