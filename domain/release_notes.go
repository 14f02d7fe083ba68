package domain

import "strings"

// FallbackBody is rendered for a blank release that appears alongside
// releases with real content.
const FallbackBody = "No release notes provided."

// ComposeReleaseNotes renders the selected releases as one text block,
// newest-first, reporting false when there is nothing useful to say.
//
// An empty selection, or one where every release is blank, produces no
// output at all. Once at least one release carries content, every release
// is rendered — blank ones get the fixed fallback body — so the output is
// never partially absent.
func ComposeReleaseNotes(releases []Release) (string, bool) {
	if len(releases) == 0 || allBlank(releases) {
		return "", false
	}

	units := make([]string, 0, len(releases))
	for _, release := range releases {
		units = append(units, renderRelease(release))
	}

	return strings.Join(units, "\n\n"), true
}

func allBlank(releases []Release) bool {
	for _, release := range releases {
		if !release.Blank() {
			return false
		}
	}
	return true
}

// renderRelease produces "## <header>\n<body>". The header is the display
// name when present, else the literal tag name the release was matched by.
func renderRelease(release Release) string {
	header := release.TagName
	if strings.TrimSpace(release.Name) != "" {
		header = release.Name
	}

	body := strings.TrimSpace(release.Body)
	if body == "" {
		body = FallbackBody
	}

	return "## " + header + "\n" + body
}
