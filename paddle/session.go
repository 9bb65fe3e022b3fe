package paddle

import (
	"context"
	"time"

	"github.com/plus3/blockfall/loop"
)

// Renderer draws game snapshots.
type Renderer interface {
	Render(s State)
}

// Session drives a game from a loop stepping at the configured interval.
type Session struct {
	Game *Game
	Loop *loop.Loop

	clock func() time.Time
}

func NewSession(game *Game, renderers ...Renderer) *Session {
	l := loop.New(game.Config().StepInterval)
	l.OnTick(loop.Named("PaddleStep", func(f *loop.Frame) {
		game.Step(f.Context)
	}))
	l.OnFrame(loop.Named("PaddleRender", func(*loop.Frame) {
		if len(renderers) == 0 {
			return
		}
		s := game.Snapshot()
		for _, r := range renderers {
			r.Render(s)
		}
	}))
	l.OnFrame(loop.Named("PaddleHalt", func(*loop.Frame) {
		if game.Over() {
			l.Stop()
		}
	}))

	return &Session{Game: game, Loop: l, clock: time.Now}
}

func (s *Session) SetClock(now func() time.Time) {
	s.clock = now
}

func (s *Session) Frame(ctx context.Context, now time.Time) bool {
	return s.Loop.Frame(ctx, now)
}

func (s *Session) MovePaddleTo(x float64) bool {
	return s.Game.MovePaddleTo(x)
}

// Restart resets the game and re-arms the loop.
func (s *Session) Restart() {
	s.Game.Restart()
	s.Loop.Start(s.clock())
}

func (s *Session) Close() {
	s.Loop.Stop()
}
