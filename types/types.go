// Package types defines the shared types used by simetrics backends and the
// comparer.
package types

import (
	"context"
	"time"
)

// Entry holds a memoized metric result.
type Entry[V any] struct {
	Result V
}

// MetricBackend defines the interface for memoization storage backends.
// This allows for pluggable storage systems including in-memory and Redis.
// The metric functions themselves stay pure; a backend only remembers
// results that were already computed.
type MetricBackend[K comparable, V any] interface {
	// Set stores a computed result in the backend
	Set(ctx context.Context, key K, entry Entry[V]) error

	// Get retrieves an entry by key
	Get(ctx context.Context, key K) (Entry[V], bool, error)

	// Delete removes an entry by key
	Delete(ctx context.Context, key K) error

	// Contains checks if a key exists without retrieving the value
	Contains(ctx context.Context, key K) (bool, error)

	// Flush clears all entries from the backend
	Flush(ctx context.Context) error

	// Len returns the number of entries in the backend
	Len(ctx context.Context) (int, error)

	// Keys returns all keys in the backend
	Keys(ctx context.Context) ([]K, error)

	// Close closes the backend and releases resources
	Close() error
}

// BackendConfig provides configuration options for backends
type BackendConfig struct {
	// For in-memory backends
	Capacity int

	// Expiry for stored results; zero means no expiry. Only the Redis
	// backend honors it.
	TTL time.Duration

	// For Redis
	ConnectionString string
	Username         string
	Password         string
	Database         int

	// Additional options
	Options map[string]any
}

// BackendType represents the type of memoization backend
type BackendType string

const (
	BackendLRU   BackendType = "lru"
	BackendFIFO  BackendType = "fifo"
	BackendLFU   BackendType = "lfu"
	BackendRedis BackendType = "redis"
)
