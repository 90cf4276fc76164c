// Package main provides the entry point for the jobfit analyzer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobfit_agent",
	Short: "Resume-vs-job fit analyzer",
	Long:  "Jobfit Analyzer scores a resume against a job posting across skills, experience, location, education, and keywords, and explains every score it produces.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
