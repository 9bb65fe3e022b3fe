package blocks

import (
	"context"
	"time"

	"github.com/plus3/blockfall/loop"
)

// GravitySystem ticks the game on every loop tick.
type GravitySystem struct {
	Game *Game
	Last Step
}

func (s *GravitySystem) Execute(frame *loop.Frame) {
	s.Last = s.Game.Tick(frame.Context)
}

// RenderSystem hands a fresh snapshot to each renderer every frame.
type RenderSystem struct {
	Game      *Game
	Renderers []Renderer
}

func (s *RenderSystem) Execute(*loop.Frame) {
	if len(s.Renderers) == 0 {
		return
	}
	state := s.Game.Snapshot()
	for _, r := range s.Renderers {
		r.Render(state)
	}
}

// HaltSystem stops the loop once the game is over. It runs after rendering
// so the final state is drawn.
type HaltSystem struct {
	Game *Game
	Loop *loop.Loop
}

func (s *HaltSystem) Execute(*loop.Frame) {
	if s.Game.Phase() == GameOver {
		s.Loop.Stop()
	}
}

// Session binds a game to a loop ticking at the game's interval. It
// implements Controller, restarting the loop together with the game.
type Session struct {
	Game *Game
	Loop *loop.Loop

	gravity *GravitySystem
	clock   func() time.Time
}

// NewSession wires game into a new loop. Renderers are called on every
// frame, after any tick.
func NewSession(game *Game, renderers ...Renderer) *Session {
	l := loop.New(game.Config().TickInterval)
	gravity := &GravitySystem{Game: game}
	l.OnTick(gravity)
	l.OnFrame(&RenderSystem{Game: game, Renderers: renderers})
	l.OnFrame(&HaltSystem{Game: game, Loop: l})

	return &Session{
		Game:    game,
		Loop:    l,
		gravity: gravity,
		clock:   time.Now,
	}
}

// SetClock replaces the clock used by Restart to re-arm the loop.
func (s *Session) SetClock(now func() time.Time) {
	s.clock = now
}

// Frame advances the loop to now and reports whether a tick fired.
func (s *Session) Frame(ctx context.Context, now time.Time) bool {
	return s.Loop.Frame(ctx, now)
}

// LastStep reports what the most recent tick did.
func (s *Session) LastStep() Step {
	return s.gravity.Last
}

func (s *Session) Apply(cmd Command) bool {
	return s.Game.Apply(cmd)
}

// Restart resets the game and re-arms the loop so the next frame spawns.
func (s *Session) Restart() {
	s.Game.Restart()
	s.gravity.Last = StepIdle
	s.Loop.Start(s.clock())
}

// Close stops the loop. Frames arriving afterwards do nothing.
func (s *Session) Close() {
	s.Loop.Stop()
}

var _ Controller = (*Session)(nil)
var _ Controller = (*Game)(nil)
