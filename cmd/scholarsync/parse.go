package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/ingestion"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/observability"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/resume"
)

var parseVerbose bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume document into structured JSON",
	Long:  "Parse a PDF or DOCX resume into structured facts (name, contact, skills, experience, education) printed as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	path := args[0]

	mimeType, err := mimeTypeForFile(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	parsed, err := resume.Parse(data, mimeType)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintResumeSummary(parsed)
	}

	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// mimeTypeForFile maps a resume filename to a supported decoder mime type.
func mimeTypeForFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return ingestion.MimePDF, nil
	case ".docx":
		return ingestion.MimeDOCX, nil
	default:
		return "", fmt.Errorf("unsupported file type %q: expected .pdf or .docx", filepath.Ext(path))
	}
}
