package registry

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/unitcheck/unitcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed units.yaml
var unitsYAML []byte

// FallbackTable is the built-in static unit table, consulted when the live
// registry is unreachable or knows nothing about a code.
type FallbackTable struct {
	units map[string]domain.UnitDefinition
}

// NewFallbackTable parses the embedded unit table. Only a corrupted build
// can make this fail.
func NewFallbackTable() (*FallbackTable, error) {
	var file struct {
		Units []domain.UnitDefinition `yaml:"units"`
	}
	if err := yaml.Unmarshal(unitsYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing embedded unit table: %w", err)
	}

	units := make(map[string]domain.UnitDefinition, len(file.Units))
	for _, u := range file.Units {
		code := u.Code
		if code == "" {
			code = u.Unit.Code
		}
		units[strings.ToUpper(code)] = u
	}
	return &FallbackTable{units: units}, nil
}

// Lookup returns a copy of the fallback definition for code, tagged with
// the fallback source.
func (t *FallbackTable) Lookup(code string) (*domain.UnitDefinition, bool) {
	u, ok := t.units[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, false
	}
	def := u
	def.Source = domain.SourceFallback
	return &def, true
}

// Codes lists the unit codes present in the table, for diagnostics.
func (t *FallbackTable) Codes() []string {
	codes := make([]string, 0, len(t.units))
	for code := range t.units {
		codes = append(codes, code)
	}
	return codes
}
