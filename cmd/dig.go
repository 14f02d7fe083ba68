package cmd

import (
	"go.uber.org/dig"

	"github.com/Ocramius/dependabot-core/infrastructure/provider"
)

// injectRegistry builds the provider registry through the DIG container.
func injectRegistry() *provider.Registry {
	container := dig.New()

	if err := provider.RegisterProviders(container); err != nil {
		panic(err)
	}

	var registry *provider.Registry
	if err := container.Invoke(func(r *provider.Registry) {
		registry = r
	}); err != nil {
		panic(err)
	}

	return registry
}
