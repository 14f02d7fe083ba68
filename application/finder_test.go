package application_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ocramius/dependabot-core/application"
	"github.com/Ocramius/dependabot-core/domain"
	testdoubles "github.com/Ocramius/dependabot-core/test"
)

func TestReleaseFinder_ReleasesURL(t *testing.T) {
	t.Parallel()

	t.Run("should return the provider's listing URL", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyProvider{ProviderName: "github"}
		finder := application.NewReleaseFinder(
			domain.Dependency{Name: "business"},
			domain.NewGitHubSource("gocardless/business"),
			spy,
		)

		// when
		url := finder.ReleasesURL()

		// then
		assert.Equal(t, "https://github.com/gocardless/business/releases", url)
	})

	t.Run("should return empty when there is no source", func(t *testing.T) {
		t.Parallel()

		// given
		finder := application.NewReleaseFinder(
			domain.Dependency{Name: "business"}, nil, nil,
		)

		// when
		url := finder.ReleasesURL()

		// then
		assert.Empty(t, url)
	})
}

func TestReleaseFinder_ReleasesText(t *testing.T) {
	t.Parallel()

	t.Run("should render the notes for the selected range", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyProvider{
			ProviderName: "github",
			Releases: []domain.Release{
				{
					TagName: "v1.8.0",
					Body: "- Add 2018-2027 TARGET holiday defintions\n" +
						"- Add 2018-2027 Bankgirot holiday defintions",
				},
				{TagName: "v1.7.0", Body: "Old notes"},
			},
		}
		finder := application.NewReleaseFinder(
			domain.Dependency{
				Name:            "business",
				PreviousVersion: "1.7.0",
				NewVersion:      "1.8.0",
			},
			domain.NewGitHubSource("gocardless/business"),
			spy,
		)

		// when
		text, err := finder.ReleasesText(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(
			t,
			"## v1.8.0\n"+
				"- Add 2018-2027 TARGET holiday defintions\n"+
				"- Add 2018-2027 Bankgirot holiday defintions",
			text,
		)
		assert.Equal(t, []string{"gocardless/business"}, spy.ListedRepos)
	})

	t.Run("should return nothing without any fetch when there is no source", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyProvider{ProviderName: "github"}
		finder := application.NewReleaseFinder(
			domain.Dependency{
				Name:            "business",
				PreviousVersion: "1.7.0",
				NewVersion:      "1.8.0",
			},
			nil,
			spy,
		)

		// when
		text, err := finder.ReleasesText(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, text)
		assert.Zero(t, spy.ListCalls)
	})

	t.Run("should fetch the listing only once per finder instance", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyProvider{
			ProviderName: "github",
			Releases:     []domain.Release{{TagName: "v1.8.0", Body: "Notes"}},
		}
		finder := application.NewReleaseFinder(
			domain.Dependency{Name: "business", NewVersion: "1.8.0"},
			domain.NewGitHubSource("gocardless/business"),
			spy,
		)

		// when
		first, err1 := finder.ReleasesText(context.Background())
		second, err2 := finder.ReleasesText(context.Background())

		// then
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, spy.ListCalls)
	})

	t.Run("should propagate source failures without caching them", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyProvider{
			ProviderName: "github",
			ListErr: fmt.Errorf(
				"%w: failed to list releases: connection refused",
				domain.ErrSourceUnavailable,
			),
		}
		finder := application.NewReleaseFinder(
			domain.Dependency{Name: "business", NewVersion: "1.8.0"},
			domain.NewGitHubSource("gocardless/business"),
			spy,
		)

		// when
		_, err := finder.ReleasesText(context.Background())

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)

		// and a later call retries instead of reusing the failure
		spy.ListErr = nil
		_, retryErr := finder.ReleasesText(context.Background())
		require.NoError(t, retryErr)
		assert.Equal(t, 2, spy.ListCalls)
	})

	t.Run("should return nothing when no release matches the new version", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyProvider{
			ProviderName: "github",
			Releases:     []domain.Release{{TagName: "v1.7.0", Body: "Old"}},
		}
		finder := application.NewReleaseFinder(
			domain.Dependency{
				Name:            "business",
				PreviousVersion: "1.7.0",
				NewVersion:      "1.8.0",
			},
			domain.NewGitHubSource("gocardless/business"),
			spy,
		)

		// when
		text, err := finder.ReleasesText(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("should return nothing when the only release in range is blank", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyProvider{
			ProviderName: "github",
			Releases: []domain.Release{
				{TagName: "v1.7.0"},
				{TagName: "v1.7.0.beta", Body: "Beta notes"},
			},
		}
		finder := application.NewReleaseFinder(
			domain.Dependency{
				Name:            "business",
				PreviousVersion: "1.7.0.beta",
				NewVersion:      "1.7.0",
			},
			domain.NewGitHubSource("gocardless/business"),
			spy,
		)

		// when
		text, err := finder.ReleasesText(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("should render blank releases alongside a non-blank one", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyProvider{
			ProviderName: "github",
			Releases: []domain.Release{
				{TagName: "v1.8.0", Body: "- Add 2018-2027 TARGET holiday defintions"},
				{TagName: "v1.7.0"},
				{TagName: "v1.7.0.beta"},
				{TagName: "v1.7.0.alpha"},
			},
		}
		finder := application.NewReleaseFinder(
			domain.Dependency{
				Name:            "business",
				PreviousVersion: "1.6.0",
				NewVersion:      "1.8.0",
			},
			domain.NewGitHubSource("gocardless/business"),
			spy,
		)

		// when
		text, err := finder.ReleasesText(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(
			t,
			"## v1.8.0\n- Add 2018-2027 TARGET holiday defintions\n\n"+
				"## v1.7.0\nNo release notes provided.\n\n"+
				"## v1.7.0.beta\nNo release notes provided.\n\n"+
				"## v1.7.0.alpha\nNo release notes provided.",
			text,
		)
	})
}
