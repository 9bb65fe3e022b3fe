package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/blocks"
)

// Run drives session on screen until ctx is cancelled or a quit key is
// pressed. Terminal events are pumped through a channel so input and
// frames are handled by one goroutine. The caller owns screen and must
// have initialized it.
func Run(ctx context.Context, screen tcell.Screen, session *blocks.Session, frameInterval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen.HideCursor()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	tick := time.NewTicker(frameInterval)
	defer tick.Stop()

	session.Frame(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if IsQuit(e) {
					return nil
				}
				if IsRestart(e) {
					session.Restart()
					continue
				}
				if cmd, ok := KeyCommand(e); ok {
					session.Apply(cmd)
				}
			}
		case now := <-tick.C:
			session.Frame(ctx, now)
		}
	}
}
