package repositories

import (
	"context"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// LocatorRepository discovers Python virtual environments on disk.
type LocatorRepository interface {
	// Discover recursively searches root for virtual environments. A found
	// environment's subtree is not descended into.
	Discover(ctx context.Context, root string) ([]entities.Environment, error)
}
