// Package resolver provides target resolvers mapping labels to kinds.
package resolver

import (
	"context"
	"maps"

	"go.trai.ch/blazerun/internal/core/domain"
)

// Static resolves labels from a fixed table, typically the targets section
// of the project config.
type Static struct {
	targets map[domain.Label]domain.Kind
}

// NewStatic creates a Static resolver. The table is copied.
func NewStatic(targets map[domain.Label]domain.Kind) *Static {
	return &Static{targets: maps.Clone(targets)}
}

// Resolve returns the declared kind, or domain.KindUnknown for labels not in
// the table.
func (s *Static) Resolve(_ context.Context, target domain.Label) (domain.Kind, error) {
	return s.targets[target], nil
}
