// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/cascade/internal/core/domain"

// OptionsLoader defines the interface for loading an option tree.
//
//go:generate mockgen -source=options_loader.go -destination=mocks/mock_options_loader.go -package=mocks
type OptionsLoader interface {
	// Discover walks up from cwd and returns the path of the first options file found.
	Discover(cwd string) (string, error)

	// Load reads and decodes the options file at path.
	Load(path string) (*domain.Catalog, error)
}
