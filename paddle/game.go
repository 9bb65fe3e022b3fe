// Package paddle implements the ball-and-paddle game: a ball bounces around
// a court and the player scores a point each time the paddle returns it.
package paddle

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/plus3/blockfall/score"
)

// Ball is the ball's center, velocity per step and radius.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Paddle is the player's bat. Y is its top edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// State is a snapshot of the game.
type State struct {
	Ball     Ball
	Paddle   Paddle
	Score    score.State
	GameOver bool
	Hits     int
}

// Game owns the court. Methods are safe for concurrent use.
type Game struct {
	mu     sync.Mutex
	cfg    Config
	score  *score.Tracker
	logger *slog.Logger

	ball     Ball
	paddle   Paddle
	gameOver bool
	hits     int
}

// NewGame creates a game with the ball at its starting position.
func NewGame(cfg Config, tracker *score.Tracker, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if tracker == nil {
		tracker = score.NewTracker(nil, cfg.HighScoreKey, logger)
	}

	g := &Game{
		cfg:    cfg,
		score:  tracker,
		logger: logger,
		paddle: Paddle{
			X:      cfg.PaddleX,
			Y:      cfg.Height - cfg.PaddleInset,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
		},
	}
	g.resetBall()
	return g, nil
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) resetBall() {
	g.ball = Ball{
		X:      g.cfg.BallX,
		Y:      g.cfg.BallY,
		DX:     g.cfg.BallDX,
		DY:     g.cfg.BallDY,
		Radius: g.cfg.BallRadius,
	}
}

// Step moves the ball once and resolves bounces, hits and misses.
func (g *Game) Step(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return
	}

	b := &g.ball
	b.X += b.DX
	b.Y += b.DY

	if b.X+b.Radius > g.cfg.Width || b.X-b.Radius < 0 {
		b.DX = -b.DX
	}
	if b.Y-b.Radius < 0 {
		b.DY = -b.DY
	}

	// only a descending ball can be returned, so a ball still inside the
	// paddle line after a hit is not counted twice
	if b.DY > 0 &&
		b.Y+b.Radius > g.paddle.Y &&
		b.X > g.paddle.X &&
		b.X < g.paddle.X+g.paddle.Width {
		b.DY = -b.DY
		g.hits++
		g.score.AddPoints(ctx, 1)
	}

	if b.Y+b.Radius > g.cfg.Height {
		g.gameOver = true
		st := g.score.State()
		g.logger.Info("game over", "score", st.Current, "best", st.Best, "hits", g.hits)
	}
}

// MovePaddleTo centers the paddle on x. Positions that would push the
// paddle past either wall are ignored.
func (g *Game) MovePaddleTo(x float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	nx := x - g.paddle.Width/2
	if nx < 0 || nx > g.cfg.Width-g.paddle.Width {
		return false
	}
	g.paddle.X = nx
	return true
}

// Restart puts the ball back and zeroes the current score. The paddle
// stays where it is.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetBall()
	g.gameOver = false
	g.hits = 0
	g.score.Reset()
	g.logger.Info("game restarted", "best", g.score.State().Best)
}

func (g *Game) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameOver
}

func (g *Game) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return State{
		Ball:     g.ball,
		Paddle:   g.paddle,
		Score:    g.score.State(),
		GameOver: g.gameOver,
		Hits:     g.hits,
	}
}
