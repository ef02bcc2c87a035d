// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/blazerun/internal/core/domain"
)

// TargetResolver maps a target label to its declared kind.
//
//go:generate go run go.uber.org/mock/mockgen -source=target_resolver.go -destination=mocks/mock_target_resolver.go -package=mocks
type TargetResolver interface {
	// Resolve returns the kind of the target.
	// An unclassified target yields domain.KindUnknown and a nil error.
	Resolve(ctx context.Context, target domain.Label) (domain.Kind, error)
}
