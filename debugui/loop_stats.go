package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// LoopStats shows frame timing and per-system durations of a loop.
type LoopStats struct {
	loop   *loop.Loop
	frames *History
}

func NewLoopStats(l *loop.Loop, historyFrames int) *LoopStats {
	return &LoopStats{
		loop:   l,
		frames: NewHistory(historyFrames),
	}
}

func (ls *LoopStats) Render(dt float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 260), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 300), imgui.CondOnce)
	if !imgui.BeginV("Loop", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ls.frames.Push(dt * 1000.0)
	stats := ls.loop.Stats()

	avg := ls.frames.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Live: %t", stats.Live))
	imgui.Text(fmt.Sprintf("Tick Interval: %s", stats.Interval))
	imgui.Text(fmt.Sprintf("Ticks: %d  Frames: %d", stats.Ticks, stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.Text(fmt.Sprintf("Max Frame Time: %.2f ms", ls.frames.Max()))
	imgui.Text(fmt.Sprintf("Last Loop Frame: %.3f ms", ms(stats.LastFrame)))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ls.frames.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Tick Systems") {
		systemTable("TickSystems", stats.TickSystems)
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Frame Systems") {
		systemTable("FrameSystems", stats.FrameSystems)
		imgui.TreePop()
	}

	imgui.End()
}

func systemTable(id string, systems []loop.SystemStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV(id, 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Name")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Avg (ms)")
	imgui.TableSetupColumn("Min (ms)")
	imgui.TableSetupColumn("Max (ms)")
	imgui.TableHeadersRow()

	if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
		spec := sortSpecs.Specs()
		sort.Slice(systems, func(i, j int) bool {
			left, right := systems[i], systems[j]

			var less bool
			switch spec.ColumnIndex() {
			case 0:
				less = left.Name < right.Name
			case 1:
				less = left.ExecutionCount < right.ExecutionCount
			case 2:
				less = left.AvgDuration < right.AvgDuration
			case 3:
				less = left.MinDuration < right.MinDuration
			case 4:
				less = left.MaxDuration < right.MaxDuration
			}

			if spec.SortDirection() == imgui.SortDirectionDescending {
				return !less
			}
			return less
		})
	}

	for _, sys := range systems {
		imgui.TableNextRow()

		imgui.TableNextColumn()
		imgui.Text(sys.Name)

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", ms(sys.AvgDuration)))

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", ms(sys.MinDuration)))

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", ms(sys.MaxDuration)))
	}
	imgui.EndTable()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
