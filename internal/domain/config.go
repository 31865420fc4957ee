package domain

import "fmt"

// Config is the user-facing .unitcheck.yaml configuration.
type Config struct {
	// CoverageThreshold is the minimum fraction of a requirement's tokens
	// that must appear in the assessment text for it to count as covered.
	CoverageThreshold float64 `yaml:"coverage_threshold"`

	// MaxGapsPerCategory caps how many gaps a unit report lists per gap
	// category (critical PC gaps, improvement knowledge gaps).
	MaxGapsPerCategory int `yaml:"max_gaps_per_category"`

	// ExtraStopWords are discarded during tokenization in addition to the
	// built-in stop-word list.
	ExtraStopWords []string `yaml:"extra_stop_words"`

	Registry RegistryConfig `yaml:"registry"`
}

// RegistryConfig controls the live unit-definition lookup.
type RegistryConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Offline        bool   `yaml:"offline"`
}

// DefaultConfig returns the configuration used when no .unitcheck.yaml
// exists.
func DefaultConfig() Config {
	return Config{
		CoverageThreshold:  0.35,
		MaxGapsPerCategory: 5,
		Registry: RegistryConfig{
			TimeoutSeconds: 15,
		},
	}
}

// Validate catches out-of-range values in user-supplied raw config.
func (c Config) Validate() error {
	if c.CoverageThreshold < 0 || c.CoverageThreshold > 1 {
		return fmt.Errorf("coverage_threshold must be between 0 and 1, got %v", c.CoverageThreshold)
	}
	if c.MaxGapsPerCategory < 0 {
		return fmt.Errorf("max_gaps_per_category must not be negative, got %d", c.MaxGapsPerCategory)
	}
	if c.Registry.TimeoutSeconds < 0 {
		return fmt.Errorf("registry.timeout_seconds must not be negative, got %d", c.Registry.TimeoutSeconds)
	}
	return nil
}
