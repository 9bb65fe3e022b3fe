package cli

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/blocks"
	"github.com/plus3/blockfall/loop"
)

type Report struct {
	// Configuration
	Games      int
	Seed       uint64
	Randomizer string
	Store      string

	// Results
	Ticks          int
	TotalTime      time.Duration
	Lines          int
	Pieces         int
	TotalScore     int
	MaxScore       int
	Best           int
	Unfinished     int // games stopped by the tick limit
	FrameTime      Stats
	GameTime       Stats
	Loop           loop.Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

func (r *Report) addGame(s blocks.State, ticks int) {
	r.Ticks += ticks
	r.Lines += s.LinesCleared
	r.Pieces += s.PiecesLocked
	r.TotalScore += s.Score.Current
	r.MaxScore = max(r.MaxScore, s.Score.Current)
	r.Best = s.Score.Best
	if s.Phase != blocks.GameOver {
		r.Unfinished++
	}
}

// AvgScore is the mean final score per game.
func (r *Report) AvgScore() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.Games)
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blocks Bench Report

## Configuration
- **Games:** {{.Games}}
- **Seed:** {{.Seed}}
- **Randomizer:** {{.Randomizer}}
- **Store:** {{.Store}}

## Play
- **Ticks:** {{.Ticks}}
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Score:** avg {{printf "%.1f" .AvgScore}}, max {{.MaxScore}}, best {{.Best}}
- **Hit Tick Limit:** {{.Unfinished}}

## Performance Results
- **Total Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}

## Systems
{{range .Loop.TickSystems}}- {{.Name}} (tick): {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}{{range .Loop.FrameSystems}}- {{.Name}} (frame): {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{bsub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns int64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
