package repositories

import (
	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// EnvironmentRepositoryFactory builds an EnvironmentRepository bound to one
// discovered environment.
type EnvironmentRepositoryFactory interface {
	ForEnvironment(env entities.Environment) EnvironmentRepository
}
