package domain

import "sort"

// SelectReleaseRange picks the releases whose version lies in the interval
// (dep.PreviousVersion, dep.NewVersion], ordered newest-first. The provider
// order of the input is assumed newest-first and is kept for releases that
// resolve to the same version.
//
// The new version anchors the range: when it is absent, or no release
// carries it under any candidate naming convention, there is nothing to
// select and the result is empty. Absence of data is never an error.
func SelectReleaseRange(releases []Release, dep Dependency) []Release {
	if dep.NewVersion == "" {
		return nil
	}

	resolver := NewTagResolver(dep.Name)
	if _, ok := resolver.Resolve(dep.NewVersion, releases); !ok {
		return nil
	}

	type versionedRelease struct {
		release Release
		version string
	}

	var selected []versionedRelease
	for _, release := range releases {
		version, ok := resolver.Version(release)
		if !ok {
			continue
		}
		if !withinRange(version, dep.PreviousVersion, dep.NewVersion) {
			continue
		}
		selected = append(selected, versionedRelease{release: release, version: version})
	}

	sort.SliceStable(selected, func(i, j int) bool {
		cmp, err := CompareVersions(selected[i].version, selected[j].version)
		return err == nil && cmp > 0
	})

	result := make([]Release, 0, len(selected))
	for _, entry := range selected {
		result = append(result, entry.release)
	}
	return result
}

// withinRange reports whether version > previous (or previous is absent)
// and version <= newVersion. Both compared versions are known to be
// non-empty here, so comparison failures only occur for malformed input
// and exclude the release.
func withinRange(version, previous, newVersion string) bool {
	if previous != "" {
		cmp, err := CompareVersions(version, previous)
		if err != nil || cmp <= 0 {
			return false
		}
	}

	cmp, err := CompareVersions(version, newVersion)
	return err == nil && cmp <= 0
}
