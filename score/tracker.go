// Package score tracks the running score of a game and keeps the best score
// persisted in a store.Store.
package score

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/plus3/blockfall/store"
)

// State is a snapshot of the tracker.
type State struct {
	Current int
	Best    int
}

// Tracker owns the current and best score for one game. Best only ever
// increases, and every increase is written through to the store.
type Tracker struct {
	mu     sync.Mutex
	store  store.Store
	key    string
	logger *slog.Logger
	state  State
}

// NewTracker creates a tracker persisting under key. A nil store keeps the
// best score in memory only; a nil logger discards output.
func NewTracker(s store.Store, key string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tracker{
		store:  s,
		key:    key,
		logger: logger.With("key", key),
	}
}

// Key returns the store key of the best score.
func (t *Tracker) Key() string {
	return t.key
}

// Load seeds Best from the store. Missing, malformed or unreadable values
// leave Best at 0.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Best = 0
	if t.store == nil {
		return
	}

	best, ok, err := t.store.Get(ctx, t.key)
	switch {
	case err != nil:
		t.logger.Warn("failed to load high score", "error", err)
	case !ok:
		t.logger.Debug("no stored high score")
	case best < 0:
		t.logger.Warn("ignoring negative high score", "value", best)
	default:
		t.state.Best = best
		t.logger.Debug("loaded high score", "best", best)
	}
}

// AddPoints adds n to the current score. Non-positive n is ignored. When the
// current score passes the best, the new best is stored before returning.
func (t *Tracker) AddPoints(ctx context.Context, n int) {
	if n <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Current += n
	if t.state.Current <= t.state.Best {
		return
	}
	t.state.Best = t.state.Current

	if t.store == nil {
		return
	}
	if err := t.store.Set(ctx, t.key, t.state.Best); err != nil {
		t.logger.Warn("failed to save high score", "best", t.state.Best, "error", err)
	}
}

// Reset zeroes the current score. Best is kept.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Current = 0
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
