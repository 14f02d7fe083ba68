package cmd

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "depnotes",
	Short: "Release notes finder for dependency upgrades",
	Long: `A tool that locates and renders human-readable release notes for a
dependency being upgraded from one version to another, by consulting the
hosting provider's release or tag listing.

Given a dependency name and the two versions being compared, it infers the
repository's tag-naming convention from observed data, selects the releases
in the relevant range, and prints a single text block suitable for a pull
request description.

Supports GitHub and GitLab as Git hosting providers.`,
}

func Execute() error {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable verbose output",
	)
}
