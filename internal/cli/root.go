// Package cli implements the arcade command line.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// app carries state built once by the root command for its subcommands.
type app struct {
	cfg    *Config
	logger *slog.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "arcade",
		Short: "Falling-block and paddle games",
		Long: `arcade runs a falling-block puzzle and a paddle game in a window or a
terminal, keeping the best score of each in a memory, file or Redis store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.Store, "store", a.cfg.Store, "High score store: memory, file, redis (env: ARCADE_STORE)")
	flags.StringVar(&a.cfg.StorePath, "store-path", a.cfg.StorePath, "File store path (env: ARCADE_STORE_PATH)")
	flags.StringVar(&a.cfg.RedisURL, "redis-url", a.cfg.RedisURL, "Redis store URL (env: ARCADE_REDIS_URL)")
	flags.DurationVar(&a.cfg.Tick, "tick", a.cfg.Tick, "Block drop interval, 0 keeps the default")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level: debug, info, warn, error (env: ARCADE_LOG_LEVEL)")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "Log format: text, json")
	flags.StringVar(&a.cfg.LogFile, "log-file", a.cfg.LogFile, "Log file used while the terminal is drawn on (env: ARCADE_LOG_FILE)")

	rootCmd.AddCommand(newBlocksCmd(a))
	rootCmd.AddCommand(newPaddleCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
