package backends_test

import (
	"context"
	"os"
	"testing"

	"github.com/botirk38/simetrics/backends/remote"
	"github.com/botirk38/simetrics/types"
)

// TestRedisBackend tests Redis backend functionality
// Requires Redis to be running on localhost:6379
func TestRedisBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Redis tests in short mode")
	}

	connStr := os.Getenv("REDIS_URL")
	if connStr == "" {
		connStr = "localhost:6379"
	}

	config := types.BackendConfig{
		ConnectionString: connStr,
		Options: map[string]any{
			"prefix": "test_simetrics:",
		},
	}

	backend, err := remote.NewRedisBackend[string, int](config)
	if err != nil {
		t.Skipf("Redis not available, skipping Redis tests: %v", err)
	}
	defer func() { _ = backend.Close() }()

	ctx := context.Background()
	if err := backend.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}

	t.Run("SetAndGet", func(t *testing.T) {
		if err := backend.Set(ctx, "kitten\x00sitting", types.Entry[int]{Result: 3}); err != nil {
			t.Fatalf("Failed to set entry: %v", err)
		}

		entry, found, err := backend.Get(ctx, "kitten\x00sitting")
		if err != nil {
			t.Fatalf("Failed to get entry: %v", err)
		}
		if !found {
			t.Fatal("Expected to find stored key")
		}
		if entry.Result != 3 {
			t.Errorf("Expected 3, got %d", entry.Result)
		}
	})

	t.Run("ContainsAndDelete", func(t *testing.T) {
		if err := backend.Set(ctx, "a\x00b", types.Entry[int]{Result: 1}); err != nil {
			t.Fatalf("Failed to set entry: %v", err)
		}

		exists, err := backend.Contains(ctx, "a\x00b")
		if err != nil {
			t.Fatalf("Failed to check contains: %v", err)
		}
		if !exists {
			t.Error("Expected key to exist")
		}

		if err := backend.Delete(ctx, "a\x00b"); err != nil {
			t.Fatalf("Failed to delete entry: %v", err)
		}
		if exists, _ := backend.Contains(ctx, "a\x00b"); exists {
			t.Error("Expected key to be deleted")
		}
	})

	t.Run("LenAndFlush", func(t *testing.T) {
		if err := backend.Flush(ctx); err != nil {
			t.Fatalf("Failed to flush: %v", err)
		}

		_ = backend.Set(ctx, "x\x00y", types.Entry[int]{Result: 2})
		_ = backend.Set(ctx, "y\x00z", types.Entry[int]{Result: 4})

		n, err := backend.Len(ctx)
		if err != nil {
			t.Fatalf("Failed to get length: %v", err)
		}
		if n != 2 {
			t.Errorf("Expected 2 entries, got %d", n)
		}

		if err := backend.Flush(ctx); err != nil {
			t.Fatalf("Failed to flush: %v", err)
		}
		if n, _ := backend.Len(ctx); n != 0 {
			t.Errorf("Expected empty backend after flush, got %d", n)
		}
	})
}
