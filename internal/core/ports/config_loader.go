package ports

import "go.trai.ch/blazerun/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to the nearest blazerun.yaml and returns the project.
	// A directory tree without a config file yields an empty project rooted at cwd.
	Load(cwd string) (*domain.Project, error)
}
