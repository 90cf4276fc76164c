package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit-analyzer/internal/analysis"
	"github.com/jonathan/jobfit-analyzer/internal/config"
	"github.com/jonathan/jobfit-analyzer/internal/fetch"
	"github.com/jonathan/jobfit-analyzer/internal/observability"
	"github.com/jonathan/jobfit-analyzer/internal/schemas"
	"github.com/jonathan/jobfit-analyzer/internal/semantic"
	"github.com/jonathan/jobfit-analyzer/internal/store"
	"github.com/jonathan/jobfit-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze how well a resume fits a job posting",
	Long: `Scores a resume against a job posting across five weighted dimensions and
prints the factor breakdown, missing-data alerts, and tier-based guidance.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath     string
	analyzeResume         string
	analyzeJob            string
	analyzeJobURL         string
	analyzeSampleJob      bool
	analyzeWeightsProfile string
	analyzeSave           bool
	analyzeSemantic       bool
	analyzeAPIKey         string
	analyzeDatabaseURL    string
	analyzeJSON           bool
	analyzeVerbose        bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().BoolVar(&analyzeSampleJob, "sample-job", false, "Use the bundled sample job posting")
	analyzeCmd.Flags().StringVar(&analyzeWeightsProfile, "weights-profile", "", "Named weight profile to load from the database (requires --db-url)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the analysis to the database (requires --db-url)")
	analyzeCmd.Flags().BoolVar(&analyzeSemantic, "semantic", false, "Enable the LLM semantic supplement")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the analysis result as JSON instead of formatted output")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed factor explanations")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for persistence and weight profiles
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("semantic") {
		cfg.Semantic = analyzeSemantic
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	// Step 3: Validate required inputs
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	jobSources := 0
	for _, set := range []bool{cfg.Job != "", cfg.JobURL != "", analyzeSampleJob} {
		if set {
			jobSources++
		}
	}
	if jobSources == 0 {
		return fmt.Errorf("one of --job, --job-url, or --sample-job must be provided")
	}
	if jobSources > 1 {
		return fmt.Errorf("--job, --job-url, and --sample-job are mutually exclusive; provide only one")
	}

	// Step 4: Resolve input texts
	resumeBytes, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText := string(resumeBytes)

	var jobText string
	switch {
	case cfg.Job != "":
		jobBytes, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobText = string(jobBytes)
	case cfg.JobURL != "":
		jobText, err = fetch.JobPosting(ctx, cfg.JobURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	default:
		jobText = sampleJobText
	}

	// Step 5: Database connection when persistence or a profile is requested
	var db *store.Store
	if analyzeWeightsProfile != "" || analyzeSave {
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required for --save and --weights-profile")
		}
		db, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	// Step 6: Resolve weights: stored profile wins, then config, then defaults
	weights := cfg.EffectiveWeights()
	if analyzeWeightsProfile != "" {
		profile, err := db.GetWeightProfile(ctx, analyzeWeightsProfile)
		if err != nil {
			return fmt.Errorf("failed to load weight profile: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("weight profile not found: %s", analyzeWeightsProfile)
		}
		weights = profile.Weights
	}

	// Step 7: Optional semantic supplement
	var sem analysis.SemanticProvider
	if cfg.Semantic {
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required for --semantic")
		}
		analyzer, err := semantic.NewFromAPIKey(ctx, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create semantic analyzer: %w", err)
		}
		defer analyzer.Close()
		sem = analyzer
	}

	// Step 8: Run the analysis
	runner := analysis.NewWithSemantic(sem)
	result, err := runner.Run(ctx, resumeText, jobText, weights)
	if err != nil {
		return err
	}

	// Step 9: Persist when requested
	if analyzeSave {
		id, err := db.SaveAnalysis(ctx, result, resumeText, jobText)
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Saved analysis %s\n", id)
	}

	// Step 10: Output
	if analyzeJSON {
		return emitJSON(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(result)
	if cfg.Verbose {
		printer.PrintFactorDetails(result)
	}
	printer.PrintAlerts(result.MissingDataAlerts)
	printer.PrintGuidance(result.Guidance)
	if result.Semantic != nil {
		printer.PrintSemantic(result.Semantic)
	}
	return nil
}

// emitJSON writes the result as indented JSON to stdout, validating it
// against the published schema first when the schema file can be located.
func emitJSON(result *types.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/analysis_result.schema.json"); schemaPath != "" {
		schemaData, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("failed to read schema: %w", err)
		}
		if err := schemas.ValidateJSONString(string(schemaData), string(data)); err != nil {
			return fmt.Errorf("result failed schema validation: %w", err)
		}
	}

	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}
