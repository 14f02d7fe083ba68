package domain

import "regexp"

// Supported hosting provider identifiers.
const (
	ProviderGitHub = "github"
	ProviderGitLab = "gitlab"
)

const (
	gitHubHost = "github.com"
	gitLabHost = "gitlab.com"
)

// Source identifies where a dependency's code is hosted. A nil *Source is a
// valid value meaning "no known hosting source". Immutable once constructed.
type Source struct {
	Provider string // "github" or "gitlab"
	Hostname string // e.g. "github.com"
	Repo     string // Repository path, e.g. "gocardless/business"
}

// NewGitHubSource creates a Source for a repository hosted on github.com.
func NewGitHubSource(repo string) *Source {
	return &Source{Provider: ProviderGitHub, Hostname: gitHubHost, Repo: repo}
}

// NewGitLabSource creates a Source for a project hosted on gitlab.com.
func NewGitLabSource(repo string) *Source {
	return &Source{Provider: ProviderGitLab, Hostname: gitLabHost, Repo: repo}
}

// sourceURLPattern matches HTTPS and SSH remote URLs for the two supported
// hosting providers, capturing the host and the repository path.
var sourceURLPattern = regexp.MustCompile(
	`^(?:https?://|git@)(github\.com|gitlab\.com)[:/]([^\s?#]+?)(?:\.git)?/?$`,
)

// ParseSourceURL recognizes a github.com or gitlab.com remote URL and builds
// the matching Source. Returns nil for anything else.
func ParseSourceURL(rawURL string) *Source {
	match := sourceURLPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return nil
	}

	host, repo := match[1], match[2]
	switch host {
	case gitHubHost:
		return NewGitHubSource(repo)
	case gitLabHost:
		return NewGitLabSource(repo)
	}
	return nil
}
