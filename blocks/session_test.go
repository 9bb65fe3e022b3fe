package blocks_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/blocks"
	"github.com/plus3/blockfall/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	states []blocks.State
}

func (r *recordingRenderer) Render(s blocks.State) {
	r.states = append(r.states, s)
}

func newSession(t *testing.T, kinds ...blocks.Kind) (*blocks.Session, *recordingRenderer, *testutil.Clock) {
	t.Helper()

	random := testutil.NewMockRandom()
	for _, k := range kinds {
		random.QueueIntN(int(k))
	}
	cfg := blocks.DefaultConfig()
	cfg.TickInterval = 100 * time.Millisecond
	game, err := blocks.NewGame(cfg, blocks.NewCatalog(cfg, random), nil, testutil.NopLogger())
	require.NoError(t, err)

	renderer := &recordingRenderer{}
	session := blocks.NewSession(game, renderer)
	clock := testutil.NewClock()
	session.SetClock(clock.Now)
	return session, renderer, clock
}

func TestSessionRendersEveryFrameAndTicksOnInterval(t *testing.T) {
	ctx := context.Background()
	session, renderer, clock := newSession(t, blocks.KindO)

	assert.True(t, session.Frame(ctx, clock.Now()))
	assert.Equal(t, blocks.StepSpawned, session.LastStep())

	for range 5 {
		assert.False(t, session.Frame(ctx, clock.Advance(16*time.Millisecond)))
	}
	assert.True(t, session.Frame(ctx, clock.Advance(40*time.Millisecond)))
	assert.Equal(t, blocks.StepFell, session.LastStep())

	require.Len(t, renderer.states, 7)
	assert.Equal(t, 0, renderer.states[0].Active.Origin.Y)
	assert.Equal(t, 1, renderer.states[6].Active.Origin.Y)
}

func TestSessionTicksAtMostOncePerFrame(t *testing.T) {
	ctx := context.Background()
	session, _, clock := newSession(t, blocks.KindO)

	session.Frame(ctx, clock.Now())
	assert.True(t, session.Frame(ctx, clock.Advance(time.Second)))

	stats := session.Loop.Stats()
	assert.Equal(t, int64(2), stats.Ticks)
	assert.Equal(t, 1, session.Game.Snapshot().Active.Origin.Y)
}

func TestSessionInputBetweenTicks(t *testing.T) {
	ctx := context.Background()
	session, renderer, clock := newSession(t, blocks.KindO)

	session.Frame(ctx, clock.Now())
	assert.True(t, session.Apply(blocks.MoveLeft))
	assert.True(t, session.Apply(blocks.MoveLeft))
	session.Frame(ctx, clock.Advance(10*time.Millisecond))

	last := renderer.states[len(renderer.states)-1]
	assert.Equal(t, blocks.Point{X: 2, Y: 0}, last.Active.Origin)
}

func TestSessionStopsOnGameOverAfterRendering(t *testing.T) {
	ctx := context.Background()
	session, renderer, clock := newSession(t, blocks.KindO)

	// the drained random source keeps dealing I pieces until they stack to the top
	for session.Loop.Live() {
		session.Frame(ctx, clock.Advance(time.Second))
		if len(renderer.states) > 1000 {
			t.Fatal("game never ended")
		}
	}

	last := renderer.states[len(renderer.states)-1]
	assert.Equal(t, blocks.GameOver, last.Phase)
	assert.Equal(t, blocks.GameOver, session.Game.Phase())

	rendered := len(renderer.states)
	assert.False(t, session.Frame(ctx, clock.Advance(time.Second)))
	assert.Len(t, renderer.states, rendered)
}

func TestSessionRestartRearmsLoop(t *testing.T) {
	ctx := context.Background()
	session, renderer, clock := newSession(t)

	for session.Loop.Live() {
		session.Frame(ctx, clock.Advance(time.Second))
	}
	require.Equal(t, blocks.GameOver, session.Game.Phase())

	session.Restart()
	assert.True(t, session.Loop.Live())
	assert.Equal(t, blocks.Playing, session.Game.Phase())

	assert.True(t, session.Frame(ctx, clock.Advance(time.Millisecond)))
	assert.Equal(t, blocks.StepSpawned, session.LastStep())
	assert.Equal(t, blocks.Playing, renderer.states[len(renderer.states)-1].Phase)
}

func TestSessionCloseMakesLateFramesNoOps(t *testing.T) {
	ctx := context.Background()
	session, renderer, clock := newSession(t, blocks.KindO)

	session.Frame(ctx, clock.Now())
	session.Close()

	assert.False(t, session.Frame(ctx, clock.Advance(time.Second)))
	assert.Len(t, renderer.states, 1)
	assert.Equal(t, 0, session.Game.Snapshot().Active.Origin.Y)
}
