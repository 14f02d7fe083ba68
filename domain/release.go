package domain

import "strings"

// Release is a provider-side entity combining a tag, an optional display
// name, and optional free-text release notes. Instances are constructed
// fresh from each provider response and never mutated.
type Release struct {
	TagName string
	Name    string // Display name; empty on GitLab tag listings
	Body    string
}

// Blank reports whether the release carries no human-readable content:
// neither a display name nor a body after trimming whitespace.
func (r Release) Blank() bool {
	return strings.TrimSpace(r.Name) == "" && strings.TrimSpace(r.Body) == ""
}
