package cmd

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ocramius/dependabot-core/application"
	"github.com/Ocramius/dependabot-core/config"
	"github.com/Ocramius/dependabot-core/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	providerFilter string
	repoPath       string
	sourceURL      string
	dependencyName string
	fromVersion    string
	toVersion      string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Print release notes for one dependency upgrade",
	Long: `Fetch the release listing of the dependency's source repository,
select the releases between the old and the new version, and print them
as one text block.

Prints nothing (beyond a log line) when the repository has no useful
release notes for the range.`,
	RunE: runNotes,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	notesCmd.Flags().StringVar(
		&providerFilter, "provider", "github",
		"Hosting provider of the source repository (github, gitlab)",
	)
	notesCmd.Flags().StringVar(
		&repoPath, "repo", "",
		"Repository path on the provider (e.g. gocardless/business)",
	)
	notesCmd.Flags().StringVar(
		&sourceURL, "source-url", "",
		"Remote URL of the source repository (overrides --provider/--repo)",
	)
	notesCmd.Flags().StringVar(
		&dependencyName, "dependency", "",
		"Name of the dependency being upgraded",
	)
	notesCmd.Flags().StringVar(
		&fromVersion, "from", "",
		"Version currently in use (optional)",
	)
	notesCmd.Flags().StringVar(
		&toVersion, "to", "",
		"Version being upgraded to",
	)
	_ = notesCmd.MarkFlagRequired("dependency")

	rootCmd.AddCommand(notesCmd)
}

func runNotes(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	src := resolveSource()
	if src == nil && sourceURL != "" {
		logger.Warnf("Unrecognized source URL %q, treating as no hosting source", sourceURL)
	}

	dependency := domain.Dependency{
		Name:            dependencyName,
		PreviousVersion: fromVersion,
		NewVersion:      toVersion,
	}

	var prov domain.Provider
	if src != nil {
		registry := injectRegistry()
		var err error
		prov, err = registry.Get(src.Provider, lookupToken(src.Hostname))
		if err != nil {
			return fmt.Errorf("failed to initialize provider %q: %w", src.Provider, err)
		}
	}

	finder := application.NewReleaseFinder(dependency, src, prov)

	if url := finder.ReleasesURL(); url != "" {
		logger.Debugf("Release listing: %s", url)
	}

	text, err := finder.ReleasesText(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch release notes: %w", err)
	}
	if text == "" {
		logger.Infof("No release notes found for %s", dependencyName)
		return nil
	}

	fmt.Println(text)
	return nil
}

// resolveSource builds the Source descriptor from the CLI flags. Returns
// nil when no hosting source is known.
func resolveSource() *domain.Source {
	if sourceURL != "" {
		return domain.ParseSourceURL(sourceURL)
	}
	if repoPath == "" {
		return nil
	}

	switch providerFilter {
	case domain.ProviderGitLab:
		return domain.NewGitLabSource(repoPath)
	default:
		return domain.NewGitHubSource(repoPath)
	}
}

// lookupToken resolves the access token for a host from the configuration
// file. Missing config or credential means unauthenticated access.
func lookupToken(host string) string {
	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using unauthenticated access: %v", err)
			return ""
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warnf("Failed to load config %q: %v", cfgPath, err)
		return ""
	}

	return cfg.TokenForHost(host)
}
