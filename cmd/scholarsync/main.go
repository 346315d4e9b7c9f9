// Package main provides the entry point for the ScholarSync CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scholarsync",
	Short: "ScholarSync resume and Google Scholar integration",
	Long: "ScholarSync extracts structured facts from resume documents and Google Scholar profiles, " +
		"then generates ranked academic project suggestions via REST API or CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
