package cli

import (
	"context"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/blocks"
)

// benchHighScoreKey keeps benchmark scores apart from played ones.
const benchHighScoreKey = "benchHighScore"

type benchOptions struct {
	games          int
	seed           uint64
	maxTicks       int
	randomizer     string
	gcPauseMetrics bool
	store          string // overrides the configured store when set
}

func newBenchCmd(a *app) *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play headless random games and report timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			// scores stay in memory unless a store was chosen
			if !cmd.Flag("store").Changed && os.Getenv("ARCADE_STORE") == "" {
				opts.store = StoreMemory
			}
			report, err := a.runBench(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return report.Generate(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.games, "games", 20, "Number of games to play")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "Seed for pieces and moves")
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", 5000, "Tick limit per game")
	cmd.Flags().StringVar(&opts.randomizer, "randomizer", blocks.RandomizerUniform, "Piece randomizer: uniform, bag")
	cmd.Flags().BoolVar(&opts.gcPauseMetrics, "gc-pause-metrics", false, "Include GC pause metrics in the report")

	return cmd
}

// runBench plays opts.games games on a synthetic clock, issuing random
// commands before every tick.
func (a *app) runBench(ctx context.Context, opts benchOptions) (*Report, error) {
	if opts.store != "" {
		cfg := *a.cfg
		cfg.Store = opts.store
		a = &app{cfg: &cfg, logger: a.logger}
	}

	cfg := a.blocksConfig(opts.randomizer)
	cfg.HighScoreKey = benchHighScoreKey

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed))
	game, closeStore, err := a.newBlocksGame(ctx, cfg, rng)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	session := blocks.NewSession(game)
	defer session.Close()

	report := &Report{
		Games:          opts.games,
		Seed:           opts.seed,
		Randomizer:     cfg.Randomizer,
		Store:          a.cfg.Store,
		GCPauseMetrics: opts.gcPauseMetrics,
	}
	commands := blocks.Commands()

	runtime.ReadMemStats(&report.MemStatsStart)
	a.logger.Info("running bench", "games", opts.games, "seed", opts.seed)

	now := time.Unix(0, 0)
	session.SetClock(func() time.Time { return now })
	startTime := time.Now()

	for i := range opts.games {
		if i > 0 {
			session.Restart()
		}
		gameStart := time.Now()

		ticks := 0
		for session.Loop.Live() && ticks < opts.maxTicks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			for range rng.IntN(4) {
				session.Apply(commands[rng.IntN(len(commands))])
			}

			frameStart := time.Now()
			session.Frame(ctx, now)
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))

			now = now.Add(cfg.TickInterval)
			ticks++
		}

		report.GameTime.Samples = append(report.GameTime.Samples, time.Since(gameStart))
		report.addGame(game.Snapshot(), ticks)
		a.logger.Debug("bench game finished", "game", i, "ticks", ticks)
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.GameTime.Finalize()
	report.Loop = session.Loop.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report, nil
}
