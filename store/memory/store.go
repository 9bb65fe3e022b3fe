// Package memory provides an in-process Store for tests and throwaway sessions.
package memory

import (
	"context"
	"sync"

	"github.com/plus3/blockfall/store"
)

// Store is a map-backed store.Store safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	values map[string]int
}

var _ store.Store = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{
		values: make(map[string]int),
	}
}

func (s *Store) Get(_ context.Context, key string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
