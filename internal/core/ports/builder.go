package ports

import "go.trai.ch/hatchery/internal/core/domain"

// Builder is the capability hatchery needs from a build backend plugin.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// PluginName returns the target name the builder serves.
	PluginName() string
	// Dependencies returns the extra build-time requirements of the builder.
	// The result may depend on environment variables in effect at call time.
	Dependencies() ([]string, error)
}

// VersionAPIProvider is implemented by builders that expose version sources.
// Orchestration does not require it.
type VersionAPIProvider interface {
	VersionAPI() map[string]string
}

// BuilderFactory creates builder handles for targets of a project.
type BuilderFactory interface {
	Builder(project *domain.Project, pluginName string) (Builder, error)
}
