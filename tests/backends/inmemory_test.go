package backends_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/botirk38/simetrics/backends"
	"github.com/botirk38/simetrics/types"
)

// Test suite for all in-memory backends
func TestInMemoryBackends(t *testing.T) {
	backendTypes := []struct {
		name        string
		backendType types.BackendType
	}{
		{"LRU", types.BackendLRU},
		{"FIFO", types.BackendFIFO},
		{"LFU", types.BackendLFU},
	}

	for _, bt := range backendTypes {
		t.Run(bt.name, func(t *testing.T) {
			config := types.BackendConfig{Capacity: 3}
			factory := &backends.BackendFactory[string, int]{}
			backend, err := factory.NewBackend(bt.backendType, config)
			if err != nil {
				t.Fatalf("Failed to create %s backend: %v", bt.name, err)
			}
			defer func() { _ = backend.Close() }()

			testBasicOperations(t, backend)
			testCapacityLimits(t, backend, 3)
		})
	}
}

func testBasicOperations(t *testing.T, backend types.MetricBackend[string, int]) {
	ctx := context.Background()

	// Test initial state
	if n, _ := backend.Len(ctx); n != 0 {
		t.Errorf("Expected empty backend, got length %d", n)
	}

	// Test Set and Get
	err := backend.Set(ctx, "inform\x00information", types.Entry[int]{Result: 5})
	if err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}

	retrieved, found, err := backend.Get(ctx, "inform\x00information")
	if err != nil {
		t.Fatalf("Failed to get entry: %v", err)
	}
	if !found {
		t.Error("Expected to find stored key")
	}
	if retrieved.Result != 5 {
		t.Errorf("Expected 5, got %d", retrieved.Result)
	}

	// Test Contains
	exists, err := backend.Contains(ctx, "inform\x00information")
	if err != nil {
		t.Fatalf("Failed to check contains: %v", err)
	}
	if !exists {
		t.Error("Expected stored key to exist")
	}

	// Test missing key
	_, found, err = backend.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Failed to get missing key: %v", err)
	}
	if found {
		t.Error("Expected missing key to be absent")
	}

	// Test Keys
	keys, err := backend.Keys(ctx)
	if err != nil {
		t.Fatalf("Failed to list keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "inform\x00information" {
		t.Errorf("Expected single stored key, got %v", keys)
	}

	// Test Delete
	if err := backend.Delete(ctx, "inform\x00information"); err != nil {
		t.Fatalf("Failed to delete entry: %v", err)
	}
	if exists, _ := backend.Contains(ctx, "inform\x00information"); exists {
		t.Error("Expected key to be deleted")
	}

	// Test Flush
	_ = backend.Set(ctx, "a\x00b", types.Entry[int]{Result: 1})
	if err := backend.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}
	if n, _ := backend.Len(ctx); n != 0 {
		t.Errorf("Expected empty backend after flush, got length %d", n)
	}
}

func testCapacityLimits(t *testing.T, backend types.MetricBackend[string, int], capacity int) {
	ctx := context.Background()

	if err := backend.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}

	// Overfill beyond capacity
	for i := 0; i < capacity+2; i++ {
		key := fmt.Sprintf("key%d", i)
		if err := backend.Set(ctx, key, types.Entry[int]{Result: i}); err != nil {
			t.Fatalf("Failed to set %s: %v", key, err)
		}
	}

	n, err := backend.Len(ctx)
	if err != nil {
		t.Fatalf("Failed to get length: %v", err)
	}
	if n > capacity {
		t.Errorf("Expected at most %d entries after eviction, got %d", capacity, n)
	}

	if err := backend.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}
}
