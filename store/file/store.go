// Package file persists values in a small JSON document on disk.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/plus3/blockfall/store"
)

// Store keeps every key in one JSON object, rewritten atomically on Set.
type Store struct {
	mu   sync.Mutex
	path string
}

var _ store.Store = (*Store)(nil)

// New returns a Store backed by path. The file itself is created on the
// first Set, but its directory must already exist.
func New(path string) (*Store, error) {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("the directory containing the score file does not exist: %w", err)
	}
	return &Store{path: path}, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(_ context.Context, key string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return 0, false, err
	}

	raw, ok := doc[key]
	if !ok {
		return 0, false, nil
	}

	v, err := strconv.Atoi(raw.String())
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", store.ErrInvalidValue, key, raw)
	}
	return v, true, nil
}

func (s *Store) Set(_ context.Context, key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil && !errors.Is(err, store.ErrInvalidValue) {
		return err
	}
	if doc == nil {
		// an unreadable document is replaced rather than blocking every write
		doc = make(map[string]json.Number)
	}
	doc[key] = json.Number(strconv.Itoa(value))

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return s.write(data)
}

func (s *Store) read() (map[string]json.Number, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]json.Number), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read score file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return make(map[string]json.Number), nil
	}

	var doc map[string]json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrInvalidValue, s.path, err)
	}
	return doc, nil
}

func (s *Store) write(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create score file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write score file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace score file: %w", err)
	}
	return nil
}
