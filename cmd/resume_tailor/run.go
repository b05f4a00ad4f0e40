package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asharma/resume-tailor/internal/config"
	"github.com/asharma/resume-tailor/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Tailor the resume against every job posting in the input CSV",
	Long: `Reads job postings from the input CSV, extracts the resume text once,
and for each row asks the model for a tailored resume, an ATS match score
(0-100), and the score reasoning. The output CSV carries every input
column plus TAILORED_RESUME, ATS_MATCH_SCORE, and SCORE_REASONING.

With no flags the fixed filenames resume.pdf, jobs_summary.csv, and
job_matches_with_resumes.csv in the working directory are used.
Configuration can be loaded from a JSON file using --config; command-line
arguments override config file values.`,
	RunE: runTailorCmd,
}

var (
	runConfigPath string
	runResume     string
	runInput      string
	runOutput     string
	runModel      string
	runAPIKey     string
	runOnError    string
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to the resume document (.pdf, .docx, or .txt)")
	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Path to the jobs CSV (requires a 'description' column)")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Path for the augmented output CSV")
	runCommand.Flags().StringVarP(&runModel, "model", "m", "", "Gemini model name override")
	runCommand.Flags().StringVar(&runOnError, "on-error", "", "Failed-row policy: mark (keep with error marker) or skip")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runTailorCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("on-error") {
		cfg.OnError = runOnError
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Fill remaining fields from env and fixed defaults, then
	// validate before any row is processed
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.Run(ctx, pipeline.RunOptions{Config: &cfg})
}
