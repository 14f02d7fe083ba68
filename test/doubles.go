// Package testdoubles provides test doubles (spies, stubs, dummies) for
// domain interfaces. These are hand-crafted implementations — no mock
// frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/Ocramius/dependabot-core/domain"
)

// SpyProvider implements domain.Provider as a configurable spy. Configure
// the response fields for the methods your test exercises, then inspect the
// call-tracking fields to verify behavior.
type SpyProvider struct {
	// --- identity ---
	ProviderName string

	// --- ListReleases ---
	Releases []domain.Release
	ListErr  error
	// spy: number of fetches and the repos requested
	ListCalls   int
	ListedRepos []string
}

var _ domain.Provider = (*SpyProvider)(nil)

func (p *SpyProvider) Name() string { return p.ProviderName }

func (p *SpyProvider) ReleasesURL(src domain.Source) string {
	return fmt.Sprintf("https://%s/%s/releases", src.Hostname, src.Repo)
}

func (p *SpyProvider) ListReleases(
	_ context.Context,
	src domain.Source,
) ([]domain.Release, error) {
	p.ListCalls++
	p.ListedRepos = append(p.ListedRepos, src.Repo)
	return p.Releases, p.ListErr
}
