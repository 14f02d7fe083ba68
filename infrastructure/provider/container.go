package provider

import (
	"go.uber.org/dig"

	ghProv "github.com/Ocramius/dependabot-core/infrastructure/provider/github"
	glProv "github.com/Ocramius/dependabot-core/infrastructure/provider/gitlab"
)

// RegisterProviders registers the provider registry with the DIG container,
// pre-populated with the two supported hosting backends.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() *Registry {
		reg := NewRegistry()
		reg.Register("github", ghProv.New)
		reg.Register("gitlab", glProv.New)
		return reg
	})
}
