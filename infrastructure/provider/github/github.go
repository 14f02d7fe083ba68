package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/Ocramius/dependabot-core/domain"
)

const (
	providerName = "github"
	perPage      = 100
)

// ReleasesService is the slice of the go-github API this provider consumes.
type ReleasesService interface {
	ListReleases(
		ctx context.Context,
		owner, repo string,
		opts *gh.ListOptions,
	) ([]*gh.RepositoryRelease, *gh.Response, error)
}

// Provider implements domain.Provider on top of the GitHub releases API.
type Provider struct {
	token    string
	releases ReleasesService
}

// New creates a GitHub release provider with the given token. An empty
// token means unauthenticated requests.
func New(token string) domain.Provider {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &Provider{token: token, releases: client.Repositories}
}

// NewWithReleasesService wires a custom releases service; used in tests.
func NewWithReleasesService(token string, releases ReleasesService) *Provider {
	return &Provider{token: token, releases: releases}
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) ReleasesURL(src domain.Source) string {
	return fmt.Sprintf("https://%s/%s/releases", src.Hostname, src.Repo)
}

// ListReleases fetches every page of the repository's release listing in
// provider order. A 404 means no releases are configured and yields an
// empty listing; any other failure wraps domain.ErrSourceUnavailable.
func (p *Provider) ListReleases(
	ctx context.Context,
	src domain.Source,
) ([]domain.Release, error) {
	owner, name, err := splitRepo(src.Repo)
	if err != nil {
		return nil, err
	}

	var all []domain.Release
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		releases, resp, listErr := p.releases.ListReleases(ctx, owner, name, opts)
		if listErr != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return []domain.Release{}, nil
			}
			return nil, fmt.Errorf(
				"%w: failed to list releases for %q: %v",
				domain.ErrSourceUnavailable, src.Repo, listErr,
			)
		}

		for _, release := range releases {
			all = append(all, domain.Release{
				TagName: release.GetTagName(),
				Name:    release.GetName(),
				Body:    release.GetBody(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func splitRepo(repo string) (string, string, error) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid github repository path %q", repo)
	}
	return parts[0], parts[1], nil
}
