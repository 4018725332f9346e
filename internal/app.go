package internal

import (
	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// AppContext aggregates every CLI controller for the entrypoint.
type AppContext struct {
	controllers *[]entities.Controller
}

// NewAppContext creates a new AppContext.
func NewAppContext(controllers *[]entities.Controller) *AppContext {
	return &AppContext{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppContext) GetControllers() []entities.Controller {
	return *it.controllers
}
