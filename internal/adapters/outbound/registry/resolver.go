package registry

import (
	"fmt"
	"strings"

	"github.com/unitcheck/unitcheck/internal/domain"
)

// ChainResolver implements domain.UnitResolver as cache → live registry →
// fallback table. Safe for concurrent use: the cache is the only shared
// state and is last-writer-wins per code.
type ChainResolver struct {
	cache    domain.DefinitionCache
	client   *Client
	fallback *FallbackTable
	offline  bool
}

// NewChainResolver wires the resolution chain. Any stage may be nil, in
// which case it is skipped; offline skips the live client without removing
// it from the chain.
func NewChainResolver(cache domain.DefinitionCache, client *Client, fallback *FallbackTable, offline bool) *ChainResolver {
	return &ChainResolver{
		cache:    cache,
		client:   client,
		fallback: fallback,
		offline:  offline,
	}
}

func (r *ChainResolver) Resolve(code string) (*domain.UnitDefinition, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("empty code: %w", domain.ErrUnitNotFound)
	}

	if r.cache != nil {
		if def, ok := r.cache.Get(code); ok {
			return def, nil
		}
	}

	if r.client != nil && !r.offline {
		if def, err := r.client.Fetch(code); err == nil {
			r.store(code, def)
			return def, nil
		}
		// Live failures fall through to the fallback table; per-unit
		// failure isolation happens one level up, in the aggregator.
	}

	if r.fallback != nil {
		if def, ok := r.fallback.Lookup(code); ok {
			r.store(code, def)
			return def, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", code, domain.ErrUnitNotFound)
}

func (r *ChainResolver) store(code string, def *domain.UnitDefinition) {
	if r.cache != nil {
		r.cache.Put(code, def)
	}
}
