package domain

// Dependency identifies the package being upgraded and the two versions
// being compared. An empty version string means the value is unknown and
// disables any range computation involving it.
type Dependency struct {
	Name            string // Dependency name as published (e.g. "business")
	PreviousVersion string // Currently pinned version, empty when unknown
	NewVersion      string // Upgrade target version, empty when none
}
