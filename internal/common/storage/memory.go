package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStorage keeps items in a map. MaxBytes, when positive, caps the summed
// length of keys and values the way browsers cap localStorage.
type MemoryStorage struct {
	mu       sync.RWMutex
	items    map[string]string
	maxBytes int
	closed   bool
}

func NewMemoryStorage(maxBytes int) *MemoryStorage {
	return &MemoryStorage{
		items:    make(map[string]string),
		maxBytes: maxBytes,
	}
}

func (m *MemoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.maxBytes > 0 && usage(m.items, key, value) > m.maxBytes {
		return ErrQuotaExceeded
	}
	m.items[key] = value
	return nil
}

func (m *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.items, key)
	return nil
}

func (m *MemoryStorage) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	return matchingKeys(m.items, prefix), nil
}

func (m *MemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// usage is the size of items after key is set to value.
func usage(items map[string]string, key, value string) int {
	total := len(key) + len(value)
	for k, v := range items {
		if k == key {
			continue
		}
		total += len(k) + len(v)
	}
	return total
}

func matchingKeys(items map[string]string, prefix string) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
