// Package simetrics ties a string similarity metric to an optional
// memoization backend and provides candidate ranking on top of it.
//
// The metrics themselves live in the similarity package and are pure
// functions; a Comparer only adds configuration (which metric, which unit
// decomposition) and remembered results.
package simetrics

import (
	"context"
	"errors"
	"sort"

	"github.com/botirk38/simetrics/options"
	"github.com/botirk38/simetrics/similarity"
	"github.com/botirk38/simetrics/tokenizer"
	"github.com/botirk38/simetrics/types"
)

// Comparer computes distances between strings with a configurable metric and
// optional memoization.
type Comparer struct {
	backend    types.MetricBackend[string, int]
	metric     similarity.PairFunc[string, string, int]
	unitMetric similarity.PairFunc[[]uint, []uint, int]
	tokenizer  *tokenizer.Tokenizer
	asymmetric bool
}

// Match represents a ranked candidate with its distance from the target.
type Match struct {
	Candidate string `json:"candidate"`
	Distance  int    `json:"distance"`
}

// New creates a Comparer with functional options. Without options it
// computes rune-level Levenshtein distance with no memoization.
func New(opts ...options.Option) (*Comparer, error) {
	cfg := options.NewConfig()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Comparer{
		backend:    cfg.Backend,
		metric:     cfg.Metric,
		unitMetric: cfg.UnitMetric,
		tokenizer:  cfg.Tokenizer,
		asymmetric: cfg.Asymmetric,
	}, nil
}

// memoKey builds the backend key for a pair. Symmetric metrics get an
// order-normalized key so (a, b) and (b, a) share one entry.
func (c *Comparer) memoKey(a, b string) string {
	if !c.asymmetric && b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

// compute runs the configured metric over rune or token units.
func (c *Comparer) compute(a, b string) (int, error) {
	if c.tokenizer == nil {
		return c.metric(a, b), nil
	}

	unitsA, err := c.tokenizer.Units(a)
	if err != nil {
		return 0, err
	}
	unitsB, err := c.tokenizer.Units(b)
	if err != nil {
		return 0, err
	}

	return c.unitMetric(unitsA, unitsB), nil
}

// Distance returns the metric distance between a and b, consulting the
// memoization backend when one is configured.
func (c *Comparer) Distance(ctx context.Context, a, b string) (int, error) {
	if c.backend == nil {
		return c.compute(a, b)
	}

	key := c.memoKey(a, b)
	entry, found, err := c.backend.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if found {
		return entry.Result, nil
	}

	result, err := c.compute(a, b)
	if err != nil {
		return 0, err
	}
	if err := c.backend.Set(ctx, key, types.Entry[int]{Result: result}); err != nil {
		return 0, err
	}

	return result, nil
}

// Closest returns the candidate with the smallest distance to target.
// Returns nil when candidates is empty; earlier candidates win ties.
func (c *Comparer) Closest(ctx context.Context, target string, candidates []string) (*Match, error) {
	var best *Match

	for _, candidate := range candidates {
		d, err := c.Distance(ctx, target, candidate)
		if err != nil {
			return nil, err
		}
		if best == nil || d < best.Distance {
			best = &Match{Candidate: candidate, Distance: d}
		}
	}

	return best, nil
}

// Rank returns up to n candidates sorted by ascending distance to target.
func (c *Comparer) Rank(ctx context.Context, target string, candidates []string, n int) ([]Match, error) {
	if n <= 0 {
		return nil, errors.New("n must be positive")
	}

	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		d, err := c.Distance(ctx, target, candidate)
		if err != nil {
			return nil, err
		}
		matches = append(matches, Match{Candidate: candidate, Distance: d})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if len(matches) > n {
		return matches[:n], nil
	}
	return matches, nil
}

// Flush clears the memoization backend, if one is configured.
func (c *Comparer) Flush(ctx context.Context) error {
	if c.backend == nil {
		return nil
	}
	return c.backend.Flush(ctx)
}

// MemoLen returns the number of memoized results.
func (c *Comparer) MemoLen(ctx context.Context) (int, error) {
	if c.backend == nil {
		return 0, nil
	}
	return c.backend.Len(ctx)
}

// Close releases backend resources.
func (c *Comparer) Close() error {
	if c.backend == nil {
		return nil
	}
	return c.backend.Close()
}
