package inmemory

import (
	"context"
	"sync"

	"github.com/botirk38/simetrics/types"
)

// FIFOBackend implements MetricBackend using FIFO (First In, First Out) eviction policy
type FIFOBackend[K comparable, V any] struct {
	mu       *sync.RWMutex
	entries  map[K]types.Entry[V]
	queue    []K
	capacity int
}

// NewFIFOBackend creates a new FIFO backend
func NewFIFOBackend[K comparable, V any](config types.BackendConfig) (*FIFOBackend[K, V], error) {
	return &FIFOBackend[K, V]{
		mu:       &sync.RWMutex{},
		entries:  make(map[K]types.Entry[V]),
		queue:    make([]K, 0, config.Capacity),
		capacity: config.Capacity,
	}, nil
}

// Set stores an entry in the FIFO cache
func (b *FIFOBackend[K, V]) Set(ctx context.Context, key K, entry types.Entry[V]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If key already exists, update it in place
	if _, exists := b.entries[key]; exists {
		b.entries[key] = entry
		return nil
	}

	// If at capacity, evict the oldest entry
	if len(b.entries) >= b.capacity && b.capacity > 0 {
		oldestKey := b.queue[0]
		b.queue = b.queue[1:]
		delete(b.entries, oldestKey)
	}

	b.entries[key] = entry
	b.queue = append(b.queue, key)
	return nil
}

// Get retrieves an entry from the FIFO cache
func (b *FIFOBackend[K, V]) Get(ctx context.Context, key K) (types.Entry[V], bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if entry, ok := b.entries[key]; ok {
		return entry, true, nil
	}
	return types.Entry[V]{}, false, nil
}

// Delete removes an entry from the FIFO cache
func (b *FIFOBackend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.entries[key]; !exists {
		return nil
	}

	delete(b.entries, key)
	for i, k := range b.queue {
		if k == key {
			b.queue = append(b.queue[:i], b.queue[i+1:]...)
			break
		}
	}
	return nil
}

// Contains checks if a key exists in the FIFO cache
func (b *FIFOBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, exists := b.entries[key]
	return exists, nil
}

// Flush clears all entries from the FIFO cache
func (b *FIFOBackend[K, V]) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make(map[K]types.Entry[V])
	b.queue = b.queue[:0]
	return nil
}

// Len returns the number of entries in the FIFO cache
func (b *FIFOBackend[K, V]) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries), nil
}

// Keys returns all keys in the FIFO cache, insertion order preserved
func (b *FIFOBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]K, len(b.queue))
	copy(keys, b.queue)
	return keys, nil
}

// Close closes the FIFO backend (no-op for in-memory)
func (b *FIFOBackend[K, V]) Close() error {
	return nil
}
