// Package loop drives game systems from wall-clock frames while stepping the
// simulation on a fixed interval.
//
// A Loop holds two lists of systems. Tick systems run when the interval has
// elapsed since the previous tick, at most once per frame. Frame systems run
// on every frame, after any tick. Stop disarms the loop so that a frame
// arriving late is a no-op.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Stats describes loop execution so far.
type Stats struct {
	Interval     time.Duration
	Live         bool
	Ticks        int64
	Frames       int64
	LastFrame    time.Duration // wall time spent in the most recent Frame
	TickSystems  []SystemStats
	FrameSystems []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type entry struct {
	system         System
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (e *entry) stats() SystemStats {
	avg := time.Duration(0)
	minimum := time.Duration(0)
	if e.executionCount > 0 {
		avg = e.totalDuration / time.Duration(e.executionCount)
		minimum = e.minDuration
	}
	return SystemStats{
		Name:           e.name,
		ExecutionCount: e.executionCount,
		MinDuration:    minimum,
		MaxDuration:    e.maxDuration,
		AvgDuration:    avg,
		LastDuration:   e.lastDuration,
		TotalDuration:  e.totalDuration,
	}
}

// Loop schedules tick and frame systems. Frame must be called from a single
// goroutine; Stop, Live and Stats are safe from any goroutine.
type Loop struct {
	interval time.Duration
	live     atomic.Bool

	lastTick  time.Time
	lastFrame time.Time

	mu           sync.Mutex
	ticks        []*entry
	frames       []*entry
	tickCount    int64
	frameCount   int64
	lastDuration time.Duration
}

// New creates a live loop that ticks every interval. The first frame ticks
// immediately.
func New(interval time.Duration) *Loop {
	l := &Loop{interval: interval}
	l.live.Store(true)
	return l
}

// Interval returns the fixed tick interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// OnTick registers a system that runs once per elapsed interval.
func (l *Loop) OnTick(system System) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ticks = append(l.ticks, newEntry(system))
}

// OnFrame registers a system that runs on every frame.
func (l *Loop) OnFrame(system System) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames = append(l.frames, newEntry(system))
}

func newEntry(system System) *entry {
	return &entry{
		system:      system,
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	}
}

// Start re-arms a stopped loop. The first frame at or after now ticks.
// Like Frame, it must be called from the goroutine that drives frames.
func (l *Loop) Start(now time.Time) {
	l.lastTick = time.Time{}
	l.lastFrame = now
	l.live.Store(true)
}

// Stop disarms the loop. Later frames do nothing until Start.
func (l *Loop) Stop() {
	l.live.Store(false)
}

// Live reports whether frames are being processed.
func (l *Loop) Live() bool {
	return l.live.Load()
}

// Frame advances the loop to now and reports whether a tick fired.
func (l *Loop) Frame(ctx context.Context, now time.Time) bool {
	if !l.live.Load() {
		return false
	}
	start := time.Now()

	frame := &Frame{Context: ctx, Now: now}
	if !l.lastFrame.IsZero() {
		frame.DeltaTime = now.Sub(l.lastFrame).Seconds()
	}
	l.lastFrame = now

	if l.lastTick.IsZero() || now.Sub(l.lastTick) >= l.interval {
		l.lastTick = now
		frame.Ticked = true
	}

	l.mu.Lock()
	ticks, frames := l.ticks, l.frames
	l.mu.Unlock()

	if frame.Ticked {
		l.execute(ticks, frame)
	}
	l.execute(frames, frame)

	l.mu.Lock()
	if frame.Ticked {
		l.tickCount++
	}
	l.frameCount++
	l.lastDuration = time.Since(start)
	l.mu.Unlock()

	return frame.Ticked
}

func (l *Loop) execute(entries []*entry, frame *Frame) {
	for _, e := range entries {
		// a system may stop the loop; the rest of the frame is skipped
		if !l.live.Load() {
			return
		}

		start := time.Now()
		e.system.Execute(frame)
		duration := time.Since(start)

		l.mu.Lock()
		e.executionCount++
		e.lastDuration = duration
		e.totalDuration += duration
		if duration < e.minDuration {
			e.minDuration = duration
		}
		if duration > e.maxDuration {
			e.maxDuration = duration
		}
		l.mu.Unlock()
	}
}

// Run calls Frame every frameInterval until ctx is cancelled.
func (l *Loop) Run(ctx context.Context, frameInterval time.Duration) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	l.Frame(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Frame(ctx, now)
		}
	}
}

// Stats returns a copy of the execution statistics.
func (l *Loop) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := Stats{
		Interval:     l.interval,
		Live:         l.live.Load(),
		Ticks:        l.tickCount,
		Frames:       l.frameCount,
		LastFrame:    l.lastDuration,
		TickSystems:  make([]SystemStats, len(l.ticks)),
		FrameSystems: make([]SystemStats, len(l.frames)),
	}
	for i, e := range l.ticks {
		stats.TickSystems[i] = e.stats()
	}
	for i, e := range l.frames {
		stats.FrameSystems[i] = e.stats()
	}
	return stats
}
