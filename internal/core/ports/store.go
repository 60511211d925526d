package ports

import "go.trai.ch/hatchery/internal/core/domain"

// EnvMetadataStore persists bookkeeping about environments across invocations.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EnvMetadataStore interface {
	// DependencyHash returns the dependency hash recorded for the environment, or "" if none.
	DependencyHash(project *domain.Project, env Environment) (string, error)
	// UpdateDependencyHash records the dependency hash of the environment.
	UpdateDependencyHash(project *domain.Project, env Environment, hash string) error
	// Reset discards all metadata of the environment.
	Reset(project *domain.Project, env Environment) error
}
