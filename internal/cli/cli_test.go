package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/blocks"
	"github.com/plus3/blockfall/internal/testutil"
)

func testApp(cfg *Config) *app {
	if cfg == nil {
		cfg = &Config{Store: StoreMemory}
	}
	return &app{cfg: cfg, logger: testutil.NopLogger()}
}

func TestDefaultConfigReadsEnvironment(t *testing.T) {
	t.Setenv("ARCADE_STORE", StoreRedis)
	t.Setenv("ARCADE_REDIS_URL", "redis://example:6380/2")

	cfg := DefaultConfig()
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "redis://example:6380/2", cfg.RedisURL)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Zero(t, cfg.Tick)
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger(&buf, "warn", "json")
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "n", 1)
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := newLogger(&bytes.Buffer{}, "loud", "text")
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := newLogger(&bytes.Buffer{}, "info", "xml")
		assert.ErrorContains(t, err, "xml")
	})
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("file creates directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "scores.json")
		a := testApp(&Config{Store: StoreFile, StorePath: path})

		s, closeStore, err := openStore(a.cfg, a.logger)
		require.NoError(t, err)
		defer closeStore()

		require.NoError(t, s.Set(ctx, "k", 42))
		v, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 42, v)
		assert.FileExists(t, path)
	})

	t.Run("redis", func(t *testing.T) {
		mini := miniredis.RunT(t)
		a := testApp(&Config{Store: StoreRedis, RedisURL: "redis://" + mini.Addr()})

		s, closeStore, err := openStore(a.cfg, a.logger)
		require.NoError(t, err)
		defer closeStore()

		require.NoError(t, s.Set(ctx, "k", 7))
		got, err := mini.Get("arcade:highscore:k")
		require.NoError(t, err)
		assert.Equal(t, "7", got)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		a := testApp(&Config{Store: StoreRedis, RedisURL: "redis://127.0.0.1:1"})
		_, _, err := openStore(a.cfg, a.logger)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		a := testApp(&Config{Store: "tape"})
		_, _, err := openStore(a.cfg, a.logger)
		assert.ErrorContains(t, err, "tape")
	})
}

func TestStatsFinalize(t *testing.T) {
	tests := []struct {
		name          string
		samples       []time.Duration
		min, max, avg time.Duration
	}{
		{name: "empty"},
		{name: "single", samples: []time.Duration{5}, min: 5, max: 5, avg: 5},
		{name: "several", samples: []time.Duration{4, 1, 7}, min: 1, max: 7, avg: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stats{Samples: tt.samples}
			s.Finalize()
			assert.Equal(t, tt.min, s.Min)
			assert.Equal(t, tt.max, s.Max)
			assert.Equal(t, tt.avg, s.Avg)
		})
	}
}

func TestRunBenchIsDeterministic(t *testing.T) {
	ctx := context.Background()
	opts := benchOptions{games: 3, seed: 42, maxTicks: 2000, randomizer: blocks.RandomizerBag}

	first, err := testApp(nil).runBench(ctx, opts)
	require.NoError(t, err)
	second, err := testApp(nil).runBench(ctx, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Ticks, second.Ticks)
	assert.Equal(t, first.Pieces, second.Pieces)
	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, first.TotalScore, second.TotalScore)

	assert.Len(t, first.GameTime.Samples, 3)
	assert.Len(t, first.FrameTime.Samples, first.Ticks)
	assert.Equal(t, first.Lines*blocks.PointsPerRow, first.TotalScore)
	assert.Equal(t, first.MaxScore, first.Best)
}

func TestRunBenchTicksOncePerFrame(t *testing.T) {
	report, err := testApp(nil).runBench(context.Background(), benchOptions{
		games: 2, seed: 1, maxTicks: 1000, randomizer: blocks.RandomizerUniform,
	})
	require.NoError(t, err)

	require.Len(t, report.Loop.TickSystems, 1)
	assert.Equal(t, "GravitySystem", report.Loop.TickSystems[0].Name)
	assert.Equal(t, int64(report.Ticks), report.Loop.TickSystems[0].ExecutionCount)
	assert.Equal(t, int64(report.Ticks), report.Loop.Ticks)
	assert.Equal(t, int64(report.Ticks), report.Loop.Frames)
}

func TestRunBenchTickLimit(t *testing.T) {
	report, err := testApp(nil).runBench(context.Background(), benchOptions{
		games: 4, seed: 9, maxTicks: 1, randomizer: blocks.RandomizerUniform,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, report.Ticks)
	assert.Equal(t, 4, report.Unfinished)
	assert.Zero(t, report.Pieces)
}

func TestRunBenchRejectsBadRandomizer(t *testing.T) {
	_, err := testApp(nil).runBench(context.Background(), benchOptions{
		games: 1, seed: 1, maxTicks: 10, randomizer: "shuffle",
	})
	assert.ErrorIs(t, err, blocks.ErrInvalidConfig)
}

func TestBenchCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{
		"--store", StoreMemory, "--log-level", "debug", "--tick", "250ms",
		"bench", "--games", "2", "--max-ticks", "300", "--seed", "3",
	})

	require.NoError(t, cmd.Execute())

	report := out.String()
	assert.Contains(t, report, "# Blocks Bench Report")
	assert.Contains(t, report, "**Games:** 2")
	assert.Contains(t, report, "**Store:** memory")
	assert.Contains(t, report, "GravitySystem (tick)")
	assert.Contains(t, report, "RenderSystem (frame)")
	assert.Contains(t, report, "HaltSystem (frame)")
	assert.NotContains(t, report, "GC Pause")
	assert.Contains(t, errOut.String(), "running bench")
}

func TestRootRejectsBadLogFormat(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--store", StoreMemory, "--log-format", "yaml", "bench", "--games", "1"})

	assert.Error(t, cmd.Execute())
}

func TestDetachLoggerKeepsStderrClean(t *testing.T) {
	t.Run("discard", func(t *testing.T) {
		var stderr bytes.Buffer
		logger, err := newLogger(&stderr, "debug", "text")
		require.NoError(t, err)
		a := &app{cfg: &Config{Store: StoreMemory, LogLevel: "debug", LogFormat: "text"}, logger: logger}

		closeLog, err := a.detachLogger()
		require.NoError(t, err)
		defer closeLog()

		game, closeStore, err := a.newBlocksGame(context.Background(), a.blocksConfig(blocks.RandomizerUniform), nil)
		require.NoError(t, err)
		defer closeStore()
		game.Restart()

		assert.Empty(t, stderr.String())
	})

	t.Run("log file", func(t *testing.T) {
		var stderr bytes.Buffer
		logger, err := newLogger(&stderr, "info", "text")
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "arcade.log")
		a := &app{cfg: &Config{Store: StoreMemory, LogLevel: "info", LogFormat: "text", LogFile: path}, logger: logger}

		closeLog, err := a.detachLogger()
		require.NoError(t, err)

		game, closeStore, err := a.newBlocksGame(context.Background(), a.blocksConfig(blocks.RandomizerUniform), nil)
		require.NoError(t, err)
		defer closeStore()
		game.Restart()
		require.NoError(t, closeLog())

		assert.Empty(t, stderr.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "game restarted")
	})

	t.Run("bad path", func(t *testing.T) {
		a := testApp(&Config{LogLevel: "info", LogFormat: "text", LogFile: filepath.Join(t.TempDir(), "missing", "arcade.log")})
		_, err := a.detachLogger()
		assert.ErrorContains(t, err, "log file")
	})
}

func TestBenchDefaultsToMemoryStore(t *testing.T) {
	t.Setenv("ARCADE_STORE", "")
	path := filepath.Join(t.TempDir(), "scores.json")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--store-path", path, "bench", "--games", "2", "--max-ticks", "300"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "**Store:** memory")
	assert.NoFileExists(t, path)
}

func TestBenchUsesExplicitStore(t *testing.T) {
	t.Setenv("ARCADE_STORE", "")
	path := filepath.Join(t.TempDir(), "scores.json")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--store", StoreFile, "--store-path", path, "bench", "--games", "1", "--max-ticks", "50"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "**Store:** file")
}
