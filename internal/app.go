package internal

import (
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// AppInternal holds everything the CLI entry point needs from the container.
type AppInternal struct {
	controllers *[]entities.Controller
	settings    *entities.Settings
}

// NewAppInternal creates the AppInternal.
func NewAppInternal(controllers *[]entities.Controller, settings *entities.Settings) *AppInternal {
	return &AppInternal{controllers: controllers, settings: settings}
}

// GetControllers returns the controllers to expose as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// GetSettings returns the settings shared by every layer.
func (it *AppInternal) GetSettings() *entities.Settings {
	return it.settings
}
