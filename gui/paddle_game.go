package gui

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/paddle"
)

var (
	courtColor  = color.RGBA{0x1f, 0x29, 0x37, 0xff}
	paddleColor = color.RGBA{0x1e, 0x40, 0xaf, 0xff}
	ballColor   = color.RGBA{0xef, 0x44, 0x44, 0xff}
)

// paddleKeySpeed is how far the arrow keys move the paddle per update.
const paddleKeySpeed = 8

// CourtView renders paddle game snapshots.
type CourtView struct {
	mu    sync.Mutex
	state paddle.State
	cfg   paddle.Config
}

var _ paddle.Renderer = (*CourtView)(nil)

func NewCourtView(cfg paddle.Config) *CourtView {
	return &CourtView{cfg: cfg}
}

func (v *CourtView) Render(s paddle.State) {
	v.mu.Lock()
	v.state = s
	v.mu.Unlock()
}

func (v *CourtView) Size() (int, int) {
	return int(v.cfg.Width), int(v.cfg.Height)
}

func (v *CourtView) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	s := v.state
	v.mu.Unlock()

	screen.Fill(courtColor)
	p := s.Paddle
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), paddleColor, false)
	b := s.Ball
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), ballColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score.Current), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("High Score: %d", s.Score.Best), int(v.cfg.Width)-110, 10)

	if s.GameOver {
		vector.DrawFilledRect(screen, 0, 0, float32(v.cfg.Width), float32(v.cfg.Height), shadeColor, false)
		cx, cy := int(v.cfg.Width/2), int(v.cfg.Height/2)
		ebitenutil.DebugPrintAt(screen, "Game Over", cx-27, cy-16)
		ebitenutil.DebugPrintAt(screen, "Click or press R to restart", cx-81, cy+4)
	}
}

// PaddleGame runs a paddle session inside an ebiten window. The paddle
// follows the mouse or a touch, or moves with the arrow keys.
type PaddleGame struct {
	ctx     context.Context
	session *paddle.Session
	view    *CourtView
	overlay Overlay
	touches []ebiten.TouchID
	cursorX int
}

var _ ebiten.Game = (*PaddleGame)(nil)

func NewPaddleGame(ctx context.Context, session *paddle.Session, view *CourtView, overlay Overlay) *PaddleGame {
	if overlay == nil {
		overlay = noOverlay{}
	}
	return &PaddleGame{
		ctx:     ctx,
		session: session,
		view:    view,
		overlay: overlay,
		cursorX: -1,
	}
}

func (g *PaddleGame) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	g.overlay.Update()
	over := g.session.Game.Over()

	if !g.overlay.WantCaptureKeyboard() {
		if QuitRequested() {
			return ebiten.Termination
		}
		if over && justPressed(restartKeys) {
			g.session.Restart()
		}
		p := g.session.Game.Snapshot().Paddle
		center := p.X + p.Width/2
		if pressed(leftKeys) {
			g.session.MovePaddleTo(center - paddleKeySpeed)
		}
		if pressed(rightKeys) {
			g.session.MovePaddleTo(center + paddleKeySpeed)
		}
	}

	if !g.overlay.WantCaptureMouse() {
		if x, _ := ebiten.CursorPosition(); x != g.cursorX {
			g.cursorX = x
			g.session.MovePaddleTo(float64(x))
		}
		g.touches = ebiten.AppendTouchIDs(g.touches[:0])
		for _, id := range g.touches {
			x, _ := ebiten.TouchPosition(id)
			g.session.MovePaddleTo(float64(x))
		}
		if over && (inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0) {
			g.session.Restart()
		}
	}

	g.session.Frame(g.ctx, time.Now())
	return nil
}

func (g *PaddleGame) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
	g.overlay.Draw(screen)
}

func (g *PaddleGame) Layout(int, int) (int, int) {
	w, h := g.view.Size()
	g.overlay.Layout(w, h)
	return w, h
}
