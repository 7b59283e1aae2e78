// Package storage contains the key-value store abstraction that owns all the
// durable state of the service, and its interchangeable backends.
package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found in the storage")

// KVStore is the interface of the durable key-value store. Codes are stored
// under their own name, analytics counters under fixed "analytics:" keys.
type KVStore interface {

	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Put stores the value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value string) error

	// PutIfAbsent stores the value only when the key does not exist yet and
	// reports whether the write happened.
	PutIfAbsent(ctx context.Context, key string, value string) (bool, error)

	// List returns up to limit keys strictly after cursor in lexicographic
	// order, plus the cursor for the next page ("" when done).
	List(ctx context.Context, cursor string, limit int) ([]string, string, error)

	// Ping checks the backend availability.
	Ping(ctx context.Context) error

	// Close releases the backend resources.
	Close() error
}

// MemoryKV is the in-process KVStore backend, optionally journaled to a file
// so that restarts keep the mappings.
type MemoryKV struct {
	mu      sync.RWMutex
	data    map[string]string
	journal *FileJournal
}

// NewMemoryKV builds the in-memory store. When journal is non-nil its rows
// are replayed into memory and every subsequent write is appended to it.
func NewMemoryKV(journal *FileJournal) (*MemoryKV, error) {
	m := &MemoryKV{data: make(map[string]string), journal: journal}
	if journal == nil {
		return m, nil
	}
	for {
		row, err := journal.ReadNextLine()
		if err != nil {
			if errors.Is(err, ErrFileReadCompletely) {
				break
			}
			return nil, err
		}
		m.data[row.Key] = row.Value
	}
	return m, nil
}

// Get implements KVStore.
func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Put implements KVStore.
func (m *MemoryKV) Put(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	if m.journal != nil {
		return m.journal.Append(key, value)
	}
	return nil
}

// PutIfAbsent implements KVStore.
func (m *MemoryKV) PutIfAbsent(_ context.Context, key string, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value
	if m.journal != nil {
		if err := m.journal.Append(key, value); err != nil {
			return false, err
		}
	}
	return true, nil
}

// List implements KVStore.
func (m *MemoryKV) List(_ context.Context, cursor string, limit int) ([]string, string, error) {
	m.mu.RLock()
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		if key > cursor {
			keys = append(keys, key)
		}
	}
	m.mu.RUnlock()
	sort.Strings(keys)
	if len(keys) <= limit {
		return keys, "", nil
	}
	keys = keys[:limit]
	return keys, keys[len(keys)-1], nil
}

// Ping implements KVStore.
func (m *MemoryKV) Ping(_ context.Context) error {
	return nil
}

// Close implements KVStore.
func (m *MemoryKV) Close() error {
	if m.journal != nil {
		return m.journal.Close()
	}
	return nil
}
