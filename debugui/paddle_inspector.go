package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/paddle"
)

// PaddleInspector shows ball and paddle state.
type PaddleInspector struct {
	session *paddle.Session
}

func NewPaddleInspector(session *paddle.Session) *PaddleInspector {
	return &PaddleInspector{session: session}
}

func (pi *PaddleInspector) Render(float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 180), imgui.CondOnce)
	if !imgui.BeginV("Paddle", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := pi.session.Game.Snapshot()
	imgui.Text(fmt.Sprintf("Game Over: %t", s.GameOver))
	imgui.Text(fmt.Sprintf("Score: %d  Best: %d  Hits: %d", s.Score.Current, s.Score.Best, s.Hits))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ball: %.0f,%.0f", s.Ball.X, s.Ball.Y))
	imgui.Text(fmt.Sprintf("Velocity: %.0f,%.0f", s.Ball.DX, s.Ball.DY))
	imgui.Text(fmt.Sprintf("Paddle: %.0f..%.0f", s.Paddle.X, s.Paddle.X+s.Paddle.Width))

	if imgui.Button("Restart") {
		pi.session.Restart()
	}

	imgui.End()
}
