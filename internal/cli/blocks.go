package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/blocks"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/gui"
	"github.com/plus3/blockfall/score"
	"github.com/plus3/blockfall/tui"
)

const terminalFrameInterval = 16 * time.Millisecond

func newBlocksCmd(a *app) *cobra.Command {
	var (
		terminal   bool
		debug      bool
		randomizer string
		scale      int
	)

	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Play the falling-block game",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if terminal {
				closeLog, err := a.detachLogger()
				if err != nil {
					return err
				}
				defer closeLog()
			}

			cfg := a.blocksConfig(randomizer)
			game, closeStore, err := a.newBlocksGame(ctx, cfg, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			if terminal {
				return runBlocksTerminal(ctx, game)
			}
			return runBlocksWindow(ctx, game, debug, scale)
		},
	}

	cmd.Flags().BoolVar(&terminal, "terminal", false, "Play in the terminal instead of a window")
	cmd.Flags().BoolVar(&debug, "debug", false, "Show the debug overlay (window only)")
	cmd.Flags().StringVar(&randomizer, "randomizer", blocks.RandomizerUniform, "Piece randomizer: uniform, bag")
	cmd.Flags().IntVar(&scale, "scale", 2, "Window scale factor")

	return cmd
}

func (a *app) blocksConfig(randomizer string) blocks.Config {
	cfg := blocks.DefaultConfig()
	cfg.Randomizer = randomizer
	if a.cfg.Tick > 0 {
		cfg.TickInterval = a.cfg.Tick
	}
	return cfg
}

// newBlocksGame opens the store, loads the best score and builds a game.
// A nil random source uses the global generator.
func (a *app) newBlocksGame(ctx context.Context, cfg blocks.Config, r blocks.Random) (*blocks.Game, func() error, error) {
	s, closeStore, err := openStore(a.cfg, a.logger)
	if err != nil {
		return nil, nil, err
	}

	tracker := score.NewTracker(s, cfg.HighScoreKey, a.logger)
	tracker.Load(ctx)

	game, err := blocks.NewGame(cfg, blocks.NewCatalog(cfg, r), tracker, a.logger)
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	return game, closeStore, nil
}

func runBlocksTerminal(ctx context.Context, game *blocks.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	session := blocks.NewSession(game, tui.NewRenderer(screen))
	defer session.Close()
	return tui.Run(ctx, screen, session, terminalFrameInterval)
}

func runBlocksWindow(ctx context.Context, game *blocks.Game, debug bool, scale int) error {
	view := gui.NewBoardView(game.Config())
	session := blocks.NewSession(game, view)
	defer session.Close()

	var overlay gui.Overlay
	if debug {
		w, h := view.Size()
		overlay = debugui.New("blocks debug", w*scale, h*scale,
			debugui.NewBlocksInspector(game, session),
			debugui.NewLoopStats(session.Loop, 120),
		)
	}
	return gui.Run(gui.NewBlocksGame(ctx, session, view, overlay), "Blocks", scale)
}
