package domain

import (
	"regexp"
	"strings"
)

var (
	// embeddedVersionPattern matches a version token inside a longer tag or
	// display name. At least two dot-separated segments are required so that
	// incidental digits (build numbers, "java8", "r2") are not mistaken for
	// a version.
	embeddedVersionPattern = regexp.MustCompile(`\d+(?:\.[a-zA-Z0-9]+)+`)

	// versionOnlyPattern matches an entire string that is a version.
	versionOnlyPattern = regexp.MustCompile(`^\d+(?:\.[a-zA-Z0-9]+)*$`)
)

// tagFormat is one naming-convention candidate. matches decides whether a
// tag or display-name entry carries the given version; parse reverses the
// convention to recover the version an entry carries.
type tagFormat struct {
	matches func(dependency, version, entry string) bool
	parse   func(dependency, entry string) (string, bool)
}

// tagFormats is the fixed, ordered candidate set tried during resolution:
// exact version, "v"-prefixed, "name-version", the loose "name version"
// containment form, and a raw substring search as the last resort.
var tagFormats = []tagFormat{
	{
		matches: func(_, version, entry string) bool {
			return entry == version
		},
		parse: func(_, entry string) (string, bool) {
			if !versionOnlyPattern.MatchString(entry) {
				return "", false
			}
			return entry, true
		},
	},
	{
		matches: func(_, version, entry string) bool {
			return entry == "v"+version
		},
		parse: func(_, entry string) (string, bool) {
			rest, found := strings.CutPrefix(entry, "v")
			if !found || !versionOnlyPattern.MatchString(rest) {
				return "", false
			}
			return rest, true
		},
	},
	{
		matches: func(dependency, version, entry string) bool {
			return entry == dependency+"-"+version
		},
		parse: func(dependency, entry string) (string, bool) {
			rest, found := strings.CutPrefix(entry, dependency+"-")
			if !found || !versionOnlyPattern.MatchString(rest) {
				return "", false
			}
			return rest, true
		},
	},
	{
		// Loose form for display names like "JasperReports 6.5.1": the
		// entry contains the version and names the dependency, or is the
		// bare version with no other context.
		matches: func(dependency, version, entry string) bool {
			if entry == version {
				return true
			}
			return strings.Contains(entry, version) && strings.Contains(entry, dependency)
		},
		parse: parseEmbeddedVersion,
	},
	{
		// Raw substring search with the version alone.
		matches: func(_, version, entry string) bool {
			return strings.Contains(entry, version)
		},
		parse: parseEmbeddedVersion,
	},
}

// parseEmbeddedVersion extracts the first version-looking token from an
// entry, ignoring digits that belong to the dependency name itself.
func parseEmbeddedVersion(dependency, entry string) (string, bool) {
	if entry == "" {
		return "", false
	}

	stripped := entry
	if dependency != "" {
		stripped = strings.ReplaceAll(stripped, dependency, " ")
	}

	token := embeddedVersionPattern.FindString(stripped)
	if token == "" {
		return "", false
	}
	return token, true
}

// TagResolver infers a provider's tag-naming convention from observed data
// and maps versions to the releases carrying them. The convention is pinned
// by the first successful Resolve call — made with the upgrade's new
// version — and reused for every other version in the same finder pass, so
// a release list using one consistent convention is never mismatched across
// versions. A resolver holds per-pass state; build a fresh one per range
// selection.
type TagResolver struct {
	dependency string
	format     *tagFormat
}

// NewTagResolver creates a resolver for the given dependency name.
func NewTagResolver(dependency string) *TagResolver {
	return &TagResolver{dependency: dependency}
}

// Resolve returns the first release, in provider order, whose tag or display
// name carries the given version under the inferred naming convention.
func (r *TagResolver) Resolve(version string, releases []Release) (*Release, bool) {
	if version == "" {
		return nil, false
	}

	if r.format != nil {
		return r.findMatch(*r.format, version, releases)
	}

	for _, format := range tagFormats {
		if release, ok := r.findMatch(format, version, releases); ok {
			pinned := format
			r.format = &pinned
			return release, true
		}
	}

	return nil, false
}

// Version reverses the inferred convention to recover the version carried by
// a release's tag or display name. It reports false before any convention
// has been pinned or when the release does not follow it.
func (r *TagResolver) Version(release Release) (string, bool) {
	if r.format == nil {
		return "", false
	}
	if version, ok := r.format.parse(r.dependency, release.TagName); ok {
		return version, true
	}
	return r.format.parse(r.dependency, release.Name)
}

func (r *TagResolver) findMatch(
	format tagFormat,
	version string,
	releases []Release,
) (*Release, bool) {
	for i := range releases {
		release := &releases[i]
		if format.matches(r.dependency, version, release.TagName) ||
			format.matches(r.dependency, version, release.Name) {
			return release, true
		}
	}
	return nil, false
}
