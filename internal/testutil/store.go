package testutil

import (
	"context"
	"errors"
	"sync"
)

// ErrStoreDown is returned by a FailingStore.
var ErrStoreDown = errors.New("store unavailable")

// FailingStore fails every call and counts them.
type FailingStore struct {
	mu   sync.Mutex
	Gets int
	Sets int
}

func (s *FailingStore) Get(context.Context, string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gets++
	return 0, false, ErrStoreDown
}

func (s *FailingStore) Set(context.Context, string, int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sets++
	return ErrStoreDown
}
