package cache

import (
	"strings"
	"sync"

	"github.com/unitcheck/unitcheck/internal/domain"
)

// MemoryStore is the in-process implementation of domain.DefinitionCache:
// one entry per unit code, no eviction, created once per process.
// Definitions are treated as immutable after fetch, so last-writer-wins on
// concurrent resolutions of the same code is acceptable.
type MemoryStore struct {
	mu    sync.RWMutex
	units map[string]*domain.UnitDefinition
}

// New creates an empty definition cache.
func New() *MemoryStore {
	return &MemoryStore{units: make(map[string]*domain.UnitDefinition)}
}

func (s *MemoryStore) Get(code string) (*domain.UnitDefinition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.units[normalize(code)]
	return def, ok
}

func (s *MemoryStore) Put(code string, def *domain.UnitDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[normalize(code)] = def
}

// Len reports the number of cached definitions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.units)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
