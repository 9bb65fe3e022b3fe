package gui

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/blocks"
)

const (
	CellSize   = 24
	boardInset = 20
	sidePanel  = 140
)

// BoardView renders block game snapshots. Render stores the latest
// snapshot; Draw paints it during ebiten's draw phase.
type BoardView struct {
	mu            sync.Mutex
	state         blocks.State
	width, height int
}

var _ blocks.Renderer = (*BoardView)(nil)

func NewBoardView(cfg blocks.Config) *BoardView {
	return &BoardView{width: cfg.Width, height: cfg.Height}
}

func (v *BoardView) Render(s blocks.State) {
	v.mu.Lock()
	v.state = s
	v.mu.Unlock()
}

// Size returns the logical screen size needed to show the board.
func (v *BoardView) Size() (int, int) {
	return boardInset*2 + v.width*CellSize + sidePanel, boardInset*2 + v.height*CellSize
}

func (v *BoardView) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	s := v.state
	v.mu.Unlock()

	ox, oy := float32(boardInset), float32(boardInset)
	w, h := float32(v.width*CellSize), float32(v.height*CellSize)

	vector.DrawFilledRect(screen, ox, oy, w, h, wellColor, false)
	vector.StrokeRect(screen, ox-2, oy-2, w+4, h+4, 2, borderGray, false)

	if s.Grid != nil {
		for y, row := range s.Grid.Rows() {
			for x, c := range row {
				if c != blocks.Empty {
					drawCell(screen, x, y, ColorOf(c))
				}
			}
		}
	}

	if s.Active != nil {
		if s.Ghost > 0 {
			for c := range s.Active.Cells() {
				if c.Y+s.Ghost >= 0 {
					drawCell(screen, c.X, c.Y+s.Ghost, ghostColor)
				}
			}
		}
		for c := range s.Active.Cells() {
			if c.Y >= 0 {
				drawCell(screen, c.X, c.Y, ColorOf(s.Active.Color))
			}
		}
	}

	tx := boardInset*2 + v.width*CellSize
	ebitenutil.DebugPrintAt(screen, "SCORE", tx, boardInset)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", s.Score.Current), tx, boardInset+16)
	ebitenutil.DebugPrintAt(screen, "HIGH SCORE", tx, boardInset+48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", s.Score.Best), tx, boardInset+64)
	ebitenutil.DebugPrintAt(screen, "LINES", tx, boardInset+96)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", s.LinesCleared), tx, boardInset+112)

	if s.Phase == blocks.GameOver {
		vector.DrawFilledRect(screen, ox, oy, w, h, shadeColor, false)
		cy := boardInset + v.height*CellSize/2
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardInset+v.width*CellSize/2-27, cy-16)
		ebitenutil.DebugPrintAt(screen, "Press R or tap to restart", boardInset+v.width*CellSize/2-75, cy+4)
	}
}

func drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	px := float32(boardInset + x*CellSize)
	py := float32(boardInset + y*CellSize)
	vector.DrawFilledRect(screen, px, py, CellSize, CellSize, clr, false)
	vector.StrokeRect(screen, px, py, CellSize, CellSize, 1, color.Black, false)
}
