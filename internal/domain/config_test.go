package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unitcheck/unitcheck/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, 0.35, cfg.CoverageThreshold)
	assert.Equal(t, 5, cfg.MaxGapsPerCategory)
	assert.Equal(t, 15, cfg.Registry.TimeoutSeconds)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := domain.DefaultConfig()

	cfg.CoverageThreshold = 1.5
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.CoverageThreshold = -0.1
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.MaxGapsPerCategory = -1
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.Registry.TimeoutSeconds = -5
	assert.Error(t, cfg.Validate())
}
