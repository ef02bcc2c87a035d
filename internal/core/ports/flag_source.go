package ports

import "context"

// FlagSource supplies the user- and project-configured base flags.
//
//go:generate go run go.uber.org/mock/mockgen -source=flag_source.go -destination=mocks/mock_flag_source.go -package=mocks
type FlagSource interface {
	// CurrentFlags returns the base flags in the order they must appear.
	CurrentFlags(ctx context.Context) ([]string, error)
}
