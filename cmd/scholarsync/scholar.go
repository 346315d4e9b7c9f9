package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/config"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/fetch"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/observability"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/scholar"
)

var (
	scholarUseBrowser bool
	scholarVerbose    bool
)

var scholarCmd = &cobra.Command{
	Use:   "scholar <url>",
	Short: "Fetch a Google Scholar profile as structured JSON",
	Long:  "Fetch and parse a Google Scholar profile (citation stats, research interests, publications) printed as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScholar,
}

func init() {
	scholarCmd.Flags().BoolVar(&scholarUseBrowser, "use-browser", false, "Render via headless browser when Scholar blocks plain fetches")
	scholarCmd.Flags().BoolVarP(&scholarVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	rootCmd.AddCommand(scholarCmd)
}

func runScholar(cmd *cobra.Command, args []string) error {
	profileURL := args[0]
	if !scholar.IsValidProfileURL(profileURL) {
		return fmt.Errorf("invalid Google Scholar URL: %s", profileURL)
	}

	scraper := newScraper(config.FromEnv(), scholarUseBrowser)

	profile, err := scraper.FetchProfile(cmd.Context(), profileURL)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	if scholarVerbose {
		observability.NewPrinter(os.Stderr).PrintScholarSummary(profile)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// newScraper builds a Scholar scraper from environment config. The browser
// fallback is enabled when either the flag or the config asks for it.
func newScraper(cfg config.Config, useBrowser bool) *scholar.Scraper {
	fetchOpts := fetch.DefaultOptions()
	fetchOpts.Timeout = cfg.FetchTimeoutDuration()
	if cfg.UserAgent != "" {
		fetchOpts.UserAgent = cfg.UserAgent
	}
	return scholar.NewScraper(scholar.Config{
		BaseURL:        cfg.ScholarBaseURL,
		Fetch:          fetchOpts,
		UseBrowser:     useBrowser || cfg.UseBrowser,
		BrowserTimeout: cfg.BrowserTimeoutDuration(),
	})
}
