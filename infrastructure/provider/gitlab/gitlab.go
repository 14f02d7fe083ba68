package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/Ocramius/dependabot-core/domain"
)

const (
	providerName = "gitlab"
	perPage      = 100
)

var errClientNotInitialized = errors.New("gitlab client not initialized")

// TagsService is the slice of the GitLab API this provider consumes.
type TagsService interface {
	ListTags(
		pid interface{},
		opt *gl.ListTagsOptions,
		options ...gl.RequestOptionFunc,
	) ([]*gl.Tag, *gl.Response, error)
}

// Provider implements domain.Provider on top of the GitLab tags API. GitLab
// tags carry no display name; the body comes from the tag's release
// description when one exists, else from the tag message.
type Provider struct {
	token string
	tags  TagsService
}

// New creates a GitLab release provider with the given token. An empty
// token means unauthenticated requests.
func New(token string) domain.Provider {
	client, err := gl.NewClient(token)
	if err != nil {
		// Fail on use rather than panicking at construction.
		return &Provider{token: token, tags: nil}
	}
	return &Provider{token: token, tags: client.Tags}
}

// NewWithTagsService wires a custom tags service; used in tests.
func NewWithTagsService(token string, tags TagsService) *Provider {
	return &Provider{token: token, tags: tags}
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) ReleasesURL(src domain.Source) string {
	return fmt.Sprintf("https://%s/%s/tags", src.Hostname, src.Repo)
}

// ListReleases fetches every page of the project's tag listing in provider
// order. A 404 means the project has no tags visible and yields an empty
// listing; any other failure wraps domain.ErrSourceUnavailable.
func (p *Provider) ListReleases(
	ctx context.Context,
	src domain.Source,
) ([]domain.Release, error) {
	if p.tags == nil {
		return nil, errClientNotInitialized
	}

	var all []domain.Release
	opts := &gl.ListTagsOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
	}

	for {
		tags, resp, err := p.tags.ListTags(src.Repo, opts, gl.WithContext(ctx))
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return []domain.Release{}, nil
			}
			return nil, fmt.Errorf(
				"%w: failed to list tags for %q: %v",
				domain.ErrSourceUnavailable, src.Repo, err,
			)
		}

		for _, tag := range tags {
			all = append(all, domain.Release{
				TagName: tag.Name,
				Body:    tagBody(tag),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func tagBody(tag *gl.Tag) string {
	if tag.Release != nil && tag.Release.Description != "" {
		return tag.Release.Description
	}
	return tag.Message
}
