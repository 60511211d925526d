package ports

import "go.trai.ch/hatchery/internal/core/domain"

// ProjectLoader defines the interface for loading project metadata.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load walks up from cwd to the nearest pyproject.toml and returns its metadata.
	Load(cwd string) (*domain.Project, error)
}

// UserConfigLoader defines the interface for loading per-user settings.
type UserConfigLoader interface {
	// Load returns the user configuration, falling back to defaults when no file exists.
	Load() (*domain.UserConfig, error)
}
