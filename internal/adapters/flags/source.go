// Package flags implements the base-flag source as an ordered list of providers.
package flags

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/blazerun/internal/adapters/env"
	"go.trai.ch/blazerun/internal/core/domain"
	"go.trai.ch/zerr"
)

// ProviderFunc contributes base flags. Providers are consulted in order and
// their flags concatenated without deduplication.
type ProviderFunc func(ctx context.Context) ([]string, error)

// Source implements ports.FlagSource over a fixed list of providers.
type Source struct {
	providers []ProviderFunc
}

// NewSource creates a Source consulting providers in the given order.
func NewSource(providers ...ProviderFunc) *Source {
	return &Source{providers: slices.Clone(providers)}
}

// CurrentFlags returns the concatenated flags of every provider.
func (s *Source) CurrentFlags(ctx context.Context) ([]string, error) {
	var out []string
	for i, p := range s.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		flags, err := p(ctx)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFlagSourceFailed.Error()), "provider", i)
		}
		out = append(out, flags...)
	}
	return out, nil
}

// Static provides a fixed list of flags.
func Static(flags ...string) ProviderFunc {
	flags = slices.Clone(flags)
	return func(context.Context) ([]string, error) {
		return slices.Clone(flags), nil
	}
}

// Project provides the project's configured flags.
func Project(p *domain.Project) ProviderFunc {
	return Static(p.Flags...)
}

// FromEnv provides the whitespace-separated flags held by key, if set.
func FromEnv(lookup env.Lookup, key string) ProviderFunc {
	return func(context.Context) ([]string, error) {
		v, ok := lookup(key)
		if !ok {
			return nil, nil
		}
		return strings.Fields(v), nil
	}
}
