package domain

import (
	"context"
	"errors"
)

// ErrSourceUnavailable is returned when a hosting provider cannot be
// reached or answers with an unexpected status. A repository without any
// releases is not this error — it yields an empty listing.
var ErrSourceUnavailable = errors.New("release source unavailable")

// Provider abstracts a Git hosting service's release listing. Each
// implementation handles authentication and normalizes its platform's
// releases or tags into provider-order Release values.
type Provider interface {
	// Name returns the provider identifier (e.g. "github", "gitlab").
	Name() string

	// ReleasesURL returns the human-facing URL of the source's release
	// or tag listing.
	ReleasesURL(src Source) string

	// ListReleases fetches the full release listing for the source,
	// newest-first as returned by the provider. A repository with no
	// releases configured yields an empty slice, not an error.
	ListReleases(ctx context.Context, src Source) ([]Release, error)
}
