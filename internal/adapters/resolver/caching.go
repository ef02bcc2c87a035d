package resolver

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/blazerun/internal/core/domain"
	"go.trai.ch/blazerun/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize bounds the number of labels kept by NewCaching callers
// that have no better estimate.
const DefaultCacheSize = 1024

// Caching memoizes another resolver's answers in a bounded LRU.
// Failed lookups are not cached.
type Caching struct {
	inner ports.TargetResolver
	cache *lru.Cache[domain.Label, domain.Kind]
}

// NewCaching wraps inner with an LRU of the given size.
func NewCaching(inner ports.TargetResolver, size int) (*Caching, error) {
	cache, err := lru.New[domain.Label, domain.Kind](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create resolver cache"), "size", size)
	}
	return &Caching{inner: inner, cache: cache}, nil
}

// Resolve returns the cached kind for target or asks the wrapped resolver.
func (c *Caching) Resolve(ctx context.Context, target domain.Label) (domain.Kind, error) {
	if kind, ok := c.cache.Get(target); ok {
		return kind, nil
	}

	kind, err := c.inner.Resolve(ctx, target)
	if err != nil {
		return domain.KindUnknown, zerr.With(zerr.Wrap(err, domain.ErrTargetResolutionFailed.Error()), "target", target.String())
	}

	c.cache.Add(target, kind)
	return kind, nil
}

// Len returns the number of cached labels.
func (c *Caching) Len() int {
	return c.cache.Len()
}
