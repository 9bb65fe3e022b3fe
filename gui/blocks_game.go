package gui

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/blocks"
)

// BlocksGame runs a block session inside an ebiten window.
type BlocksGame struct {
	ctx      context.Context
	session  *blocks.Session
	view     *BoardView
	keyboard *Keyboard
	touch    *Touch
	overlay  Overlay
	last     time.Time
}

var _ ebiten.Game = (*BlocksGame)(nil)

// NewBlocksGame wraps session. view must be one of the session's renderers.
// A nil overlay draws nothing.
func NewBlocksGame(ctx context.Context, session *blocks.Session, view *BoardView, overlay Overlay) *BlocksGame {
	if overlay == nil {
		overlay = noOverlay{}
	}
	return &BlocksGame{
		ctx:      ctx,
		session:  session,
		view:     view,
		keyboard: NewKeyboard(),
		touch:    NewTouch(),
		overlay:  overlay,
	}
}

func (g *BlocksGame) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.overlay.Update()

	if !g.overlay.WantCaptureKeyboard() {
		if QuitRequested() {
			return ebiten.Termination
		}
		g.keyboard.Poll(g.session, dt)
	}
	if !g.overlay.WantCaptureMouse() {
		g.touch.Poll(g.session, g.session.Game.Phase() == blocks.GameOver)
	}

	g.session.Frame(g.ctx, now)
	return nil
}

func (g *BlocksGame) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.view.Draw(screen)
	g.overlay.Draw(screen)
}

func (g *BlocksGame) Layout(int, int) (int, int) {
	w, h := g.view.Size()
	g.overlay.Layout(w, h)
	return w, h
}
