// Package options provides functional options for configuring Comparer instances.
package options

import (
	"errors"

	"github.com/botirk38/simetrics/backends"
	"github.com/botirk38/simetrics/similarity"
	"github.com/botirk38/simetrics/tokenizer"
	"github.com/botirk38/simetrics/types"
)

// Option represents a configuration option for a Comparer
type Option func(*Config) error

// Config holds the configuration for building a Comparer
type Config struct {
	Backend    types.MetricBackend[string, int]
	Metric     similarity.PairFunc[string, string, int]
	UnitMetric similarity.PairFunc[[]uint, []uint, int]
	Tokenizer  *tokenizer.Tokenizer

	// Asymmetric disables order-normalized memo keys for metrics where
	// distance(a, b) != distance(b, a).
	Asymmetric bool
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Metric:     similarity.LevenshteinDistance,
		UnitMetric: similarity.LevenshteinDistanceOf[uint],
	}
}

// Apply applies all the given options to the config
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Metric == nil {
		return errors.New("metric is required - use WithMetric or keep the default")
	}
	if c.Tokenizer != nil && c.UnitMetric == nil {
		return errors.New("unit metric is required with token units - use WithUnitMetric or keep the default")
	}
	return nil
}

// WithLRUBackend sets up an LRU in-memory memoization backend
func WithLRUBackend(capacity int) Option {
	return func(cfg *Config) error {
		backend, err := backends.NewLRUBackend[string, int](types.BackendConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithFIFOBackend sets up a FIFO in-memory memoization backend
func WithFIFOBackend(capacity int) Option {
	return func(cfg *Config) error {
		backend, err := backends.NewFIFOBackend[string, int](types.BackendConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithLFUBackend sets up an LFU in-memory memoization backend
func WithLFUBackend(capacity int) Option {
	return func(cfg *Config) error {
		backend, err := backends.NewLFUBackend[string, int](types.BackendConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithRedisBackend sets up a Redis memoization backend from a connection
// string (redis:// URL or host:port)
func WithRedisBackend(connectionString string) Option {
	return func(cfg *Config) error {
		backend, err := backends.NewRedisBackend[string, int](types.BackendConfig{
			ConnectionString: connectionString,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithBackendConfig sets up a backend from an explicit type and configuration
func WithBackendConfig(backendType types.BackendType, config types.BackendConfig) Option {
	return func(cfg *Config) error {
		factory := &backends.BackendFactory[string, int]{}
		backend, err := factory.NewBackend(backendType, config)
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithCustomBackend sets a pre-built memoization backend
func WithCustomBackend(backend types.MetricBackend[string, int]) Option {
	return func(cfg *Config) error {
		if backend == nil {
			return errors.New("backend cannot be nil")
		}
		cfg.Backend = backend
		return nil
	}
}

// WithMetric sets the string metric used over rune units
func WithMetric(metric similarity.PairFunc[string, string, int]) Option {
	return func(cfg *Config) error {
		if metric == nil {
			return errors.New("metric cannot be nil")
		}
		cfg.Metric = metric
		return nil
	}
}

// WithHammingMetric selects the truncating Hamming distance as the metric.
// Hamming is not a true distance over unequal lengths, so memo keys stay
// order-normalized only because the truncating policy is still symmetric.
func WithHammingMetric() Option {
	return func(cfg *Config) error {
		cfg.Metric = similarity.HammingDistance
		cfg.UnitMetric = similarity.HammingDistanceOf[uint]
		return nil
	}
}

// WithTokenUnits switches the string metrics from rune units to BPE token
// units
func WithTokenUnits() Option {
	return func(cfg *Config) error {
		tok, err := tokenizer.New()
		if err != nil {
			return err
		}
		cfg.Tokenizer = tok
		return nil
	}
}

// WithUnitMetric sets the metric applied to token unit sequences
func WithUnitMetric(metric similarity.PairFunc[[]uint, []uint, int]) Option {
	return func(cfg *Config) error {
		if metric == nil {
			return errors.New("unit metric cannot be nil")
		}
		cfg.UnitMetric = metric
		return nil
	}
}

// WithAsymmetricMetric marks the metric as asymmetric so memoization keys
// keep their argument order
func WithAsymmetricMetric() Option {
	return func(cfg *Config) error {
		cfg.Asymmetric = true
		return nil
	}
}
