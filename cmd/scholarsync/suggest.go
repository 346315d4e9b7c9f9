package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/config"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/observability"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/resume"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/scholar"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/suggest"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

var (
	suggestResumePath string
	suggestScholarURL string
	suggestJSON       bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate ranked project suggestions from a resume and/or Scholar profile",
	Long: "Generate ranked project suggestions by combining resume skills with Google Scholar " +
		"research interests. At least one of --resume or --scholar-url is required.",
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestResumePath, "resume", "", "Path to a PDF or DOCX resume")
	suggestCmd.Flags().StringVar(&suggestScholarURL, "scholar-url", "", "Google Scholar profile URL")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Print suggestions as JSON instead of a summary")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if suggestResumePath == "" && suggestScholarURL == "" {
		return fmt.Errorf("either --resume or --scholar-url is required")
	}

	var (
		parsed  *types.ParsedResume
		profile *types.ScholarProfile
	)

	// The two extraction pipelines are independent, so run them concurrently.
	g, ctx := errgroup.WithContext(cmd.Context())

	if suggestResumePath != "" {
		g.Go(func() error {
			mimeType, err := mimeTypeForFile(suggestResumePath)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(suggestResumePath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", suggestResumePath, err)
			}
			parsed, err = resume.Parse(data, mimeType)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", suggestResumePath, err)
			}
			return nil
		})
	}

	if suggestScholarURL != "" {
		if !scholar.IsValidProfileURL(suggestScholarURL) {
			return fmt.Errorf("invalid Google Scholar URL: %s", suggestScholarURL)
		}
		scraper := newScraper(config.FromEnv(), false)
		g.Go(func() error {
			var err error
			profile, err = scraper.FetchProfile(ctx, suggestScholarURL)
			if err != nil {
				return fmt.Errorf("failed to fetch profile: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	suggestions := suggest.Generate(parsed, profile)

	if suggestJSON {
		out, err := json.MarshalIndent(suggestions, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	if parsed != nil {
		printer.PrintResumeSummary(parsed)
	}
	if profile != nil {
		printer.PrintScholarSummary(profile)
	}
	printer.PrintSuggestions(suggestions)
	return nil
}
