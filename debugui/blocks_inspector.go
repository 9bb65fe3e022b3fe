package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/blocks"
)

// BlocksInspector shows the state of a block game and lets the player
// restart it or step pieces by hand.
type BlocksInspector struct {
	game       *blocks.Game
	controller blocks.Controller
	lines      *History
}

// NewBlocksInspector inspects game. Buttons go through controller so a
// restart also re-arms the session loop.
func NewBlocksInspector(game *blocks.Game, controller blocks.Controller) *BlocksInspector {
	return &BlocksInspector{
		game:       game,
		controller: controller,
		lines:      NewHistory(120),
	}
}

func (bi *BlocksInspector) Render(float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 240), imgui.CondOnce)
	if !imgui.BeginV("Blocks", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := bi.game.Snapshot()
	cfg := bi.game.Config()
	bi.lines.Push(float32(s.LinesCleared))

	imgui.Text(fmt.Sprintf("Phase: %s", s.Phase))
	imgui.Text(fmt.Sprintf("Score: %d  Best: %d", s.Score.Current, s.Score.Best))
	imgui.Text(fmt.Sprintf("Lines: %d  Pieces: %d", s.LinesCleared, s.PiecesLocked))
	imgui.Text(fmt.Sprintf("Filled Cells: %d / %d", s.Grid.Occupied(), cfg.Width*cfg.Height))
	imgui.Separator()

	if s.Active != nil {
		imgui.Text(fmt.Sprintf("Active: %s (%s)", s.Active.Kind, s.Active.Color))
		imgui.Text(fmt.Sprintf("Origin: %d,%d  Drop: %d", s.Active.Origin.X, s.Active.Origin.Y, s.Ghost))
	} else {
		imgui.Text("Active: none")
	}

	imgui.PlotLinesFloatPtr("##lines", &bi.lines.Samples()[0], int32(len(bi.lines.Samples())))

	if imgui.TreeNodeStr("Config") {
		imgui.BulletText(fmt.Sprintf("Grid: %dx%d", cfg.Width, cfg.Height))
		imgui.BulletText(fmt.Sprintf("Spawn: %d,%d", cfg.Spawn.X, cfg.Spawn.Y))
		imgui.BulletText(fmt.Sprintf("Tick: %s", cfg.TickInterval))
		imgui.BulletText(fmt.Sprintf("Randomizer: %s", cfg.Randomizer))
		imgui.BulletText(fmt.Sprintf("Key: %s", cfg.HighScoreKey))
		imgui.TreePop()
	}

	imgui.Separator()
	for _, cmd := range blocks.Commands() {
		if imgui.Button(cmd.String()) {
			bi.controller.Apply(cmd)
		}
		imgui.SameLine()
	}
	if imgui.Button("Restart") {
		bi.controller.Restart()
	}

	imgui.End()
}
