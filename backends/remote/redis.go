package remote

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/botirk38/simetrics/types"
	"github.com/redis/go-redis/v9"
)

// RedisBackend implements MetricBackend using Redis, so memoized results can
// be shared across processes
type RedisBackend[K comparable, V any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// redisDocument represents a memoized result stored in Redis
type redisDocument[V any] struct {
	Key       string `json:"key"`
	Result    V      `json:"result"`
	Timestamp int64  `json:"timestamp"`
}

// parseRedisURL parses a Redis URL and returns redis.Options
func parseRedisURL(connectionString string) (*redis.Options, error) {
	// Handle redis:// or rediss:// URLs
	if strings.HasPrefix(connectionString, "redis://") || strings.HasPrefix(connectionString, "rediss://") {
		parsedURL, err := url.Parse(connectionString)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}

		opts := &redis.Options{
			Addr: parsedURL.Host,
		}

		if parsedURL.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}

		if parsedURL.User != nil {
			opts.Username = parsedURL.User.Username()
			if password, ok := parsedURL.User.Password(); ok {
				opts.Password = password
			}
		}

		if parsedURL.Path != "" && parsedURL.Path != "/" {
			dbStr := strings.TrimPrefix(parsedURL.Path, "/")
			if db, err := strconv.Atoi(dbStr); err == nil {
				opts.DB = db
			}
		}

		return opts, nil
	}

	// For simple address format (host:port), return minimal options
	return &redis.Options{
		Addr: connectionString,
	}, nil
}

// NewRedisBackend creates a new Redis backend
func NewRedisBackend[K comparable, V any](config types.BackendConfig) (*RedisBackend[K, V], error) {
	// Parse connection string (supports both URLs and simple addresses)
	opts, err := parseRedisURL(config.ConnectionString)
	if err != nil {
		return nil, err
	}

	// Override with explicit config values if provided
	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if config.Database != 0 {
		opts.DB = config.Database
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := "simetrics:"
	if prefixOpt, ok := config.Options["prefix"]; ok {
		if p, ok := prefixOpt.(string); ok {
			prefix = p
		}
	}

	return &RedisBackend[K, V]{
		client: client,
		prefix: prefix,
		ttl:    config.TTL,
	}, nil
}

// keyString converts a key to a Redis key string
func (b *RedisBackend[K, V]) keyString(key K) string {
	return fmt.Sprintf("%s%v", b.prefix, key)
}

// Set stores an entry in Redis as a JSON document
func (b *RedisBackend[K, V]) Set(ctx context.Context, key K, entry types.Entry[V]) error {
	doc := redisDocument[V]{
		Key:       fmt.Sprintf("%v", key),
		Result:    entry.Result,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	if err := b.client.Set(ctx, b.keyString(key), data, b.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set entry in Redis: %w", err)
	}

	return nil
}

// Get retrieves an entry from Redis
func (b *RedisBackend[K, V]) Get(ctx context.Context, key K) (types.Entry[V], bool, error) {
	result, err := b.client.Get(ctx, b.keyString(key)).Result()
	if err == redis.Nil {
		return types.Entry[V]{}, false, nil
	}
	if err != nil {
		return types.Entry[V]{}, false, fmt.Errorf("failed to get entry from Redis: %w", err)
	}

	var doc redisDocument[V]
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return types.Entry[V]{}, false, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	return types.Entry[V]{Result: doc.Result}, true, nil
}

// Delete removes an entry from Redis
func (b *RedisBackend[K, V]) Delete(ctx context.Context, key K) error {
	if err := b.client.Del(ctx, b.keyString(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete entry from Redis: %w", err)
	}
	return nil
}

// Contains checks if a key exists in Redis
func (b *RedisBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	exists, err := b.client.Exists(ctx, b.keyString(key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key existence in Redis: %w", err)
	}
	return exists > 0, nil
}

// scanKeys collects all Redis keys under the configured prefix
func (b *RedisBackend[K, V]) scanKeys(ctx context.Context) ([]string, error) {
	pattern := b.prefix + "*"
	var keys []string
	var cursor uint64

	for {
		result, nextCursor, err := b.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys from Redis: %w", err)
		}

		keys = append(keys, result...)
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// Flush clears all entries with the configured prefix from Redis
func (b *RedisBackend[K, V]) Flush(ctx context.Context) error {
	keys, err := b.scanKeys(ctx)
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := b.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to flush Redis: %w", err)
		}
	}

	return nil
}

// Len returns the number of entries in Redis with the configured prefix
func (b *RedisBackend[K, V]) Len(ctx context.Context) (int, error) {
	keys, err := b.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Keys returns all keys in Redis with the configured prefix
func (b *RedisBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	redisKeys, err := b.scanKeys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]K, 0, len(redisKeys))
	prefixLen := len(b.prefix)

	for _, redisKey := range redisKeys {
		if len(redisKey) > prefixLen {
			keyStr := redisKey[prefixLen:]
			var key K
			// Try to convert string back to key type
			if err := json.Unmarshal(fmt.Appendf(nil, "%q", keyStr), &key); err == nil {
				keys = append(keys, key)
			}
		}
	}

	return keys, nil
}

// Close closes the Redis connection
func (b *RedisBackend[K, V]) Close() error {
	return b.client.Close()
}
