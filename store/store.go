// Package store defines the key-value persistence used for high scores.
// Each key holds a single integer.
package store

import (
	"context"
	"errors"
)

// ErrInvalidValue is returned when a stored value cannot be read as an integer.
var ErrInvalidValue = errors.New("stored value is not an integer")

// Store persists integer values by key.
type Store interface {
	// Get returns the value stored under key. The boolean is false when
	// nothing has been stored yet.
	Get(ctx context.Context, key string) (int, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value int) error
}
