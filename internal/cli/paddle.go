package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/gui"
	"github.com/plus3/blockfall/paddle"
	"github.com/plus3/blockfall/score"
)

func newPaddleCmd(a *app) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "paddle",
		Short: "Play the paddle game",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, closeStore, err := openStore(a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer closeStore()

			cfg := paddle.DefaultConfig()
			tracker := score.NewTracker(s, cfg.HighScoreKey, a.logger)
			tracker.Load(ctx)

			game, err := paddle.NewGame(cfg, tracker, a.logger)
			if err != nil {
				return err
			}

			view := gui.NewCourtView(cfg)
			session := paddle.NewSession(game, view)
			defer session.Close()

			var overlay gui.Overlay
			if debug {
				w, h := view.Size()
				overlay = debugui.New("paddle debug", w, h,
					debugui.NewPaddleInspector(session),
					debugui.NewLoopStats(session.Loop, 120),
				)
			}
			return gui.Run(gui.NewPaddleGame(ctx, session, view, overlay), "Paddle", 1)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Show the debug overlay")
	return cmd
}
