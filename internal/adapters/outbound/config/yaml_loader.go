package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unitcheck/unitcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".unitcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .unitcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .unitcheck.yaml from dir. A missing file yields DefaultConfig;
// the file only needs to state the values it overrides.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
