// Package storage is the portal's local key-value store. It plays the part the
// browser's localStorage plays for a single-page app: string keys, string
// values, whole-value reads and writes.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrQuotaExceeded is returned when a write would grow the store past its limit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrClosed is returned by a store after Close.
	ErrClosed = errors.New("storage closed")
)

// Storage is implemented by every backend.
type Storage interface {
	// GetItem returns the value for key. found is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Keys lists the keys that start with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
