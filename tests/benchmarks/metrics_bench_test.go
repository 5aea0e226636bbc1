package benchmarks_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/botirk38/simetrics"
	"github.com/botirk38/simetrics/options"
	"github.com/botirk38/simetrics/similarity"
)

func BenchmarkLevenshteinDistance(b *testing.B) {
	sizes := []int{8, 64, 256}

	for _, size := range sizes {
		left := makeWord("ab", size)
		right := makeWord("ba", size)

		b.Run(strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				similarity.LevenshteinDistance(left, right)
			}
		})
	}
}

func BenchmarkHammingDistance(b *testing.B) {
	left := makeWord("ab", 256)
	right := makeWord("ba", 256)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		similarity.HammingDistance(left, right)
	}
}

func BenchmarkMemoizedDistance(b *testing.B) {
	ctx := context.Background()

	comparer, err := simetrics.New(options.WithLRUBackend(1024))
	if err != nil {
		b.Fatalf("Failed to create comparer: %v", err)
	}
	defer func() { _ = comparer.Close() }()

	left := makeWord("ab", 256)
	right := makeWord("ba", 256)

	// First call computes, the rest hit the memo
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := comparer.Distance(ctx, left, right); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

func makeWord(unit string, size int) string {
	word := ""
	for len(word) < size {
		word += unit
	}
	return word[:size]
}
