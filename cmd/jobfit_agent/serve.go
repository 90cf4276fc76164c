package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit-analyzer/internal/config"
	"github.com/jonathan/jobfit-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for running analyses,
managing weight profiles, and collecting feedback.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveAddr       string
	serveSemantic   bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().BoolVar(&serveSemantic, "semantic", false, "Enable the LLM semantic supplement")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr = serveAddr
	}
	if cmd.Flags().Changed("semantic") {
		cfg.Semantic = serveSemantic
	}

	// Environment fallbacks; both are optional
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Semantic && cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or api_key config is required for semantic mode")
	}

	srv, err := server.New(context.Background(), server.Config{
		Addr:        cfg.ListenAddr,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
		Semantic:    cfg.Semantic,
		Weights:     cfg.Weights,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
