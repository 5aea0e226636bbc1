package inmemory

import (
	"context"
	"sync"

	"github.com/botirk38/simetrics/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUBackend implements MetricBackend using LRU eviction policy
type LRUBackend[K comparable, V any] struct {
	mu    *sync.RWMutex
	cache *lru.Cache[K, types.Entry[V]]
}

// NewLRUBackend creates a new LRU backend
func NewLRUBackend[K comparable, V any](config types.BackendConfig) (*LRUBackend[K, V], error) {
	lruCache, err := lru.New[K, types.Entry[V]](config.Capacity)
	if err != nil {
		return nil, err
	}

	return &LRUBackend[K, V]{
		mu:    &sync.RWMutex{},
		cache: lruCache,
	}, nil
}

// Set stores an entry in the LRU cache
func (b *LRUBackend[K, V]) Set(ctx context.Context, key K, entry types.Entry[V]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Add(key, entry)
	return nil
}

// Get retrieves an entry from the LRU cache
func (b *LRUBackend[K, V]) Get(ctx context.Context, key K) (types.Entry[V], bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if entry, ok := b.cache.Get(key); ok {
		return entry, true, nil
	}
	return types.Entry[V]{}, false, nil
}

// Delete removes an entry from the LRU cache
func (b *LRUBackend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Remove(key)
	return nil
}

// Contains checks if a key exists in the LRU cache without affecting recency
func (b *LRUBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.cache.Contains(key), nil
}

// Flush clears all entries from the LRU cache
func (b *LRUBackend[K, V]) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Purge()
	return nil
}

// Len returns the number of entries in the LRU cache
func (b *LRUBackend[K, V]) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.cache.Len(), nil
}

// Keys returns all keys in the LRU cache, oldest first
func (b *LRUBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.cache.Keys(), nil
}

// Close closes the LRU backend (no-op for in-memory)
func (b *LRUBackend[K, V]) Close() error {
	return nil
}
