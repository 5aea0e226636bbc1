package options

import (
	"errors"
	"testing"

	"github.com/botirk38/simetrics/similarity"
)

func TestConfigCreation(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		cfg := NewConfig()
		if cfg.Metric == nil {
			t.Error("Expected default metric to be set")
		}
		if cfg.UnitMetric == nil {
			t.Error("Expected default unit metric to be set")
		}
		if cfg.Backend != nil {
			t.Error("Expected backend to be nil initially")
		}
		if cfg.Tokenizer != nil {
			t.Error("Expected tokenizer to be nil initially")
		}
		if cfg.Asymmetric {
			t.Error("Expected symmetric default")
		}
	})

	t.Run("DefaultMetricIsLevenshtein", func(t *testing.T) {
		cfg := NewConfig()
		if d := cfg.Metric("inform", "information"); d != 5 {
			t.Errorf("Expected 5, got %d", d)
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("AppliesAllOptions", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.Apply(
			WithHammingMetric(),
			WithAsymmetricMetric(),
		)
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if d := cfg.Metric("information", "informatics"); d != 2 {
			t.Errorf("Expected Hamming metric, got distance %d", d)
		}
		if !cfg.Asymmetric {
			t.Error("Expected asymmetric flag to be set")
		}
	})

	t.Run("PropagatesOptionError", func(t *testing.T) {
		cfg := NewConfig()
		optErr := errors.New("bad option")
		err := cfg.Apply(func(*Config) error { return optErr })
		if !errors.Is(err, optErr) {
			t.Errorf("Expected option error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("ValidDefaults", func(t *testing.T) {
		cfg := NewConfig()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected valid default config, got %v", err)
		}
	})

	t.Run("MissingMetric", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Metric = nil
		if err := cfg.Validate(); err == nil {
			t.Error("Expected error for missing metric")
		}
	})
}

func TestBackendOptions(t *testing.T) {
	backendOptions := []struct {
		name   string
		option Option
	}{
		{"LRU", WithLRUBackend(8)},
		{"FIFO", WithFIFOBackend(8)},
		{"LFU", WithLFUBackend(8)},
	}

	for _, bo := range backendOptions {
		t.Run(bo.name, func(t *testing.T) {
			cfg := NewConfig()
			if err := cfg.Apply(bo.option); err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if cfg.Backend == nil {
				t.Error("Expected backend to be set")
			}
			defer func() { _ = cfg.Backend.Close() }()
		})
	}

	t.Run("NilCustomBackend", func(t *testing.T) {
		cfg := NewConfig()
		if err := cfg.Apply(WithCustomBackend(nil)); err == nil {
			t.Error("Expected error for nil backend")
		}
	})
}

func TestMetricOptions(t *testing.T) {
	t.Run("NilMetric", func(t *testing.T) {
		cfg := NewConfig()
		if err := cfg.Apply(WithMetric(nil)); err == nil {
			t.Error("Expected error for nil metric")
		}
	})

	t.Run("CustomMetric", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.Apply(WithMetric(func(a, b string) int {
			return similarity.HammingDistance(a, b)
		}))
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if d := cfg.Metric("abc", "abd"); d != 1 {
			t.Errorf("Expected 1, got %d", d)
		}
	})

	t.Run("NilUnitMetric", func(t *testing.T) {
		cfg := NewConfig()
		if err := cfg.Apply(WithUnitMetric(nil)); err == nil {
			t.Error("Expected error for nil unit metric")
		}
	})
}
