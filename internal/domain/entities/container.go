package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// The shared Settings start from the defaults and are reloaded in place once
// the --config flag is known.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(DefaultSettings)
}
