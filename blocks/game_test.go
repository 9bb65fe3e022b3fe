package blocks

import (
	"context"
	"testing"

	"github.com/plus3/blockfall/internal/testutil"
	"github.com/plus3/blockfall/score"
	"github.com/plus3/blockfall/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameFixture struct {
	game    *Game
	random  *testutil.MockRandom
	store   *memory.Store
	tracker *score.Tracker
}

func newGameFixture(t *testing.T, kinds ...Kind) *gameFixture {
	t.Helper()

	random := testutil.NewMockRandom()
	for _, k := range kinds {
		random.QueueIntN(int(k))
	}
	cfg := DefaultConfig()
	st := memory.New()
	tracker := score.NewTracker(st, cfg.HighScoreKey, testutil.NopLogger())
	game, err := NewGame(cfg, NewCatalog(cfg, random), tracker, testutil.NopLogger())
	require.NoError(t, err)

	return &gameFixture{game: game, random: random, store: st, tracker: tracker}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0

	_, err := NewGame(cfg, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGameStartsPlayingWithoutPiece(t *testing.T) {
	f := newGameFixture(t)
	s := f.game.Snapshot()

	assert.Equal(t, Playing, s.Phase)
	assert.Nil(t, s.Active)
	assert.Equal(t, 0, s.Grid.Occupied())
	assert.Equal(t, 0, s.Score.Current)
}

func TestGameTickSpawnsThenFalls(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t, KindO)

	assert.Equal(t, StepSpawned, f.game.Tick(ctx))
	s := f.game.Snapshot()
	require.NotNil(t, s.Active)
	assert.Equal(t, KindO, s.Active.Kind)
	assert.Equal(t, Point{X: 4, Y: 0}, s.Active.Origin)
	assert.Equal(t, 18, s.Ghost)

	assert.Equal(t, StepFell, f.game.Tick(ctx))
	assert.Equal(t, 1, f.game.Snapshot().Active.Origin.Y)
}

func TestGameLocksAndRespawnsOnNextTick(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t, KindO, KindT)

	require.Equal(t, StepSpawned, f.game.Tick(ctx))
	for range 18 {
		require.Equal(t, StepFell, f.game.Tick(ctx))
	}

	assert.Equal(t, StepLocked, f.game.Tick(ctx))
	s := f.game.Snapshot()
	assert.Nil(t, s.Active)
	assert.Equal(t, 4, s.Grid.Occupied())
	assert.Equal(t, Yellow, s.Grid.At(4, 19))
	assert.Equal(t, 1, s.PiecesLocked)
	assert.Equal(t, 0, s.Score.Current)

	assert.Equal(t, StepSpawned, f.game.Tick(ctx))
	assert.Equal(t, KindT, f.game.Snapshot().Active.Kind)
}

func TestGameLineClearScores(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t, KindI)

	// bottom row full except the four columns the I piece will land in
	for x := range 10 {
		if x < 4 || x > 7 {
			f.game.grid.SetCell(x, 19, Red)
		}
	}
	f.game.grid.SetCell(0, 18, Blue)

	require.Equal(t, StepSpawned, f.game.Tick(ctx))
	for range 19 {
		require.Equal(t, StepFell, f.game.Tick(ctx))
	}
	require.Equal(t, StepLocked, f.game.Tick(ctx))

	s := f.game.Snapshot()
	assert.Equal(t, 100, s.Score.Current)
	assert.Equal(t, 100, s.Score.Best)
	assert.Equal(t, 1, s.LinesCleared)
	assert.Equal(t, 1, s.Grid.Occupied())
	assert.Equal(t, Blue, s.Grid.At(0, 19))

	best, ok, err := f.store.Get(ctx, HighScoreKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 100, best)
}

func TestGameMultiLineClearIsLinear(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t, KindI)

	for y := 16; y < 20; y++ {
		for x := 1; x < 10; x++ {
			f.game.grid.SetCell(x, y, Green)
		}
	}

	require.Equal(t, StepSpawned, f.game.Tick(ctx))
	require.True(t, f.game.Apply(RotateCW))
	for f.game.Apply(MoveLeft) {
	}
	for f.game.Apply(SoftDrop) {
	}
	require.Equal(t, StepLocked, f.game.Tick(ctx))

	s := f.game.Snapshot()
	assert.Equal(t, 4, s.LinesCleared)
	assert.Equal(t, 400, s.Score.Current)
	assert.Equal(t, 0, s.Grid.Occupied())
}

func TestGameOverOnSpawnCollision(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t, KindO, KindO)
	f.game.grid.SetCell(4, 0, Red)

	assert.Equal(t, StepGameOver, f.game.Tick(ctx))
	assert.Equal(t, GameOver, f.game.Phase())
	assert.Nil(t, f.game.Snapshot().Active)

	assert.Equal(t, StepIdle, f.game.Tick(ctx))
	assert.Equal(t, 1, f.random.Remaining())
}

func TestGameApply(t *testing.T) {
	f := newGameFixture(t, KindT)

	t.Run("ignored without active piece", func(t *testing.T) {
		for _, cmd := range Commands() {
			assert.False(t, f.game.Apply(cmd), cmd.String())
		}
	})

	require.Equal(t, StepSpawned, f.game.Tick(context.Background()))

	t.Run("moves", func(t *testing.T) {
		assert.True(t, f.game.Apply(MoveLeft))
		assert.Equal(t, 3, f.game.Snapshot().Active.Origin.X)
		assert.True(t, f.game.Apply(MoveRight))
		assert.True(t, f.game.Apply(MoveRight))
		assert.Equal(t, 5, f.game.Snapshot().Active.Origin.X)
		assert.True(t, f.game.Apply(SoftDrop))
		assert.Equal(t, 1, f.game.Snapshot().Active.Origin.Y)
	})

	t.Run("rotate", func(t *testing.T) {
		assert.True(t, f.game.Apply(RotateCW))
		assert.Equal(t, 3, f.game.Snapshot().Active.Shape.Rows())
	})

	t.Run("unknown command", func(t *testing.T) {
		assert.False(t, f.game.Apply(Command(99)))
	})

	t.Run("ignored after game over", func(t *testing.T) {
		f.game.mu.Lock()
		f.game.phase = GameOver
		f.game.mu.Unlock()

		for _, cmd := range Commands() {
			assert.False(t, f.game.Apply(cmd), cmd.String())
		}
	})
}

func TestGameRestart(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t, KindI, KindO)
	for x := range 10 {
		if x < 4 || x > 7 {
			f.game.grid.SetCell(x, 19, Red)
		}
	}
	f.game.grid.SetCell(4, 0, Red)
	f.game.grid.SetCell(0, 18, Red)

	// the I piece cannot spawn on top of (4,0)
	require.Equal(t, StepGameOver, f.game.Tick(ctx))

	f.game.Restart()
	s := f.game.Snapshot()
	assert.Equal(t, Playing, s.Phase)
	assert.Equal(t, 0, s.Grid.Occupied())
	assert.Nil(t, s.Active)
	assert.Equal(t, 0, s.LinesCleared)

	assert.Equal(t, StepSpawned, f.game.Tick(ctx))
	assert.Equal(t, KindO, f.game.Snapshot().Active.Kind)
}

func TestGameRestartKeepsBest(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t)
	f.tracker.AddPoints(ctx, 300)

	f.game.Restart()

	s := f.game.Snapshot()
	assert.Equal(t, 0, s.Score.Current)
	assert.Equal(t, 300, s.Score.Best)
}

func TestGameSnapshotIsIndependent(t *testing.T) {
	f := newGameFixture(t, KindS)
	require.Equal(t, StepSpawned, f.game.Tick(context.Background()))

	s := f.game.Snapshot()
	s.Grid.SetCell(0, 0, Red)
	s.Active.Origin.X = 0
	s.Active.Shape[0][0] = true

	fresh := f.game.Snapshot()
	assert.Equal(t, Empty, fresh.Grid.At(0, 0))
	assert.Equal(t, 4, fresh.Active.Origin.X)
	assert.False(t, fresh.Active.Shape[0][0])
}

func TestGameLoadsBestFromStore(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	require.NoError(t, st.Set(ctx, HighScoreKey, 1200))

	cfg := DefaultConfig()
	tracker := score.NewTracker(st, cfg.HighScoreKey, testutil.NopLogger())
	tracker.Load(ctx)
	game, err := NewGame(cfg, nil, tracker, nil)
	require.NoError(t, err)

	assert.Equal(t, score.State{Current: 0, Best: 1200}, game.Snapshot().Score)
}

func TestGameLockWithoutRowsLeavesScoreAlone(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	failing := &testutil.FailingStore{}
	tracker := score.NewTracker(failing, cfg.HighScoreKey, testutil.NopLogger())
	game, err := NewGame(cfg, NewCatalog(cfg, testutil.NewMockRandom(int(KindO))), tracker, testutil.NopLogger())
	require.NoError(t, err)

	step := game.Tick(ctx)
	for step != StepLocked {
		require.NotEqual(t, StepGameOver, step)
		step = game.Tick(ctx)
	}

	s := game.Snapshot()
	assert.Equal(t, 1, s.PiecesLocked)
	assert.Equal(t, 0, s.LinesCleared)
	assert.Equal(t, score.State{}, s.Score)
	assert.Zero(t, failing.Sets)
}
