package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/config"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveUseBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for resume parsing,
Google Scholar profile fetching, and project suggestion generation.

Configuration can be loaded from a JSON file using --config. Command-line
arguments and environment variables override config file values.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 3000)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Fall back to a headless browser when Scholar serves block pages")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	// CLI flags win over config file and environment
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveUseBrowser {
		cfg.UseBrowser = true
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
