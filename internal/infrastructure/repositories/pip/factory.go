package pip

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// versionCacheSize bounds the interpreter-version cache; audits over large
// environment trees stay well under this.
const versionCacheSize = 256

// Factory builds pip-backed environment repositories. All repositories built
// by one factory share the interpreter-version cache.
type Factory struct {
	versionCache *lru.Cache[string, string]
}

var _ repositories.EnvironmentRepositoryFactory = (*Factory)(nil)

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	cache, err := lru.New[string, string](versionCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &Factory{versionCache: cache}
}

// ForEnvironment returns a repository bound to the given environment.
func (f *Factory) ForEnvironment(env entities.Environment) repositories.EnvironmentRepository {
	return &PipEnvironmentRepository{env: env, versionCache: f.versionCache}
}
