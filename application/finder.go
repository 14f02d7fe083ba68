package application

import (
	"context"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/Ocramius/dependabot-core/domain"
)

// ReleaseFinder locates and renders the release notes covering one
// dependency upgrade. A finder is meant to be constructed fresh per
// comparison: the provider listing is fetched once and reused for the
// lifetime of the instance, with no invalidation or refresh path.
type ReleaseFinder struct {
	dependency domain.Dependency
	source     *domain.Source
	provider   domain.Provider

	mu       sync.Mutex
	releases []domain.Release
	fetched  bool
}

// NewReleaseFinder creates a finder for the given dependency upgrade.
// A nil source means the dependency has no known hosting source.
func NewReleaseFinder(
	dependency domain.Dependency,
	source *domain.Source,
	provider domain.Provider,
) *ReleaseFinder {
	return &ReleaseFinder{
		dependency: dependency,
		source:     source,
		provider:   provider,
	}
}

// ReleasesURL returns the human-facing URL of the source's release listing,
// or "" when there is no known source.
func (f *ReleaseFinder) ReleasesURL() string {
	if f.source == nil {
		return ""
	}
	return f.provider.ReleasesURL(*f.source)
}

// ReleasesText renders the release notes for the upgrade, newest-first.
// An empty string with a nil error means there is nothing useful to say:
// no known source, no release matching the new version, or only blank
// releases in range. Real output is never empty, so callers can tell
// "nothing to say" from "could not find out" (a non-nil error wrapping
// domain.ErrSourceUnavailable).
func (f *ReleaseFinder) ReleasesText(ctx context.Context) (string, error) {
	if f.source == nil {
		return "", nil
	}

	releases, err := f.fetchReleases(ctx)
	if err != nil {
		return "", err
	}

	selected := domain.SelectReleaseRange(releases, f.dependency)
	logger.Debugf(
		"Selected %d of %d releases for %s (%s -> %s)",
		len(selected), len(releases), f.dependency.Name,
		f.dependency.PreviousVersion, f.dependency.NewVersion,
	)

	text, ok := domain.ComposeReleaseNotes(selected)
	if !ok {
		return "", nil
	}
	return text, nil
}

// fetchReleases memoizes the first successful listing for the lifetime of
// the finder. Failed fetches are not cached; a later call retries.
func (f *ReleaseFinder) fetchReleases(ctx context.Context) ([]domain.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fetched {
		return f.releases, nil
	}

	releases, err := f.provider.ListReleases(ctx, *f.source)
	if err != nil {
		return nil, err
	}

	f.releases = releases
	f.fetched = true
	return releases, nil
}
