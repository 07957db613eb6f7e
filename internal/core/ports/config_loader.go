// Package ports defines the core interfaces for the application.
package ports

import "github.com/Pougher/coyote/internal/core/domain"

// ConfigLoader defines the interface for loading a build description.
type ConfigLoader interface {
	// Load reads the build description at the given path and returns the
	// raw (unexpanded) project model.
	Load(path string) (*domain.Project, error)
}
