// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Failure policies for rows whose model call or parsing failed.
const (
	// OnErrorMark keeps failed rows, with an explicit error marker in the
	// output columns. Output row count equals input row count.
	OnErrorMark = "mark"
	// OnErrorSkip drops failed rows from the output.
	OnErrorSkip = "skip"
)

// Defaults reproduce the conventional fixed filenames, so the tool runs
// with no flags when the files sit in the working directory.
const (
	DefaultResume = "resume.pdf"
	DefaultInput  = "jobs_summary.csv"
	DefaultOutput = "job_matches_with_resumes.csv"
)

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

var validate = validator.New()

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional in the file; missing values use defaults
// or come from CLI flags and the environment.
type Config struct {
	Resume  string `json:"resume,omitempty"` // Path to the résumé document (.pdf, .docx, .txt)
	Input   string `json:"input,omitempty"`  // Path to the jobs CSV
	Output  string `json:"output,omitempty"` // Path for the augmented output CSV
	Model   string `json:"model,omitempty"`  // Gemini model name override
	APIKey  string `json:"api_key,omitempty" validate:"required"`
	OnError string `json:"on_error,omitempty" validate:"required,oneof=mark skip"`
	Verbose bool   `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills unset fields with the fixed filenames, the mark
// policy, and the API key from the environment.
func (c *Config) ApplyDefaults() {
	if c.Resume == "" {
		c.Resume = DefaultResume
	}
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.OnError == "" {
		c.OnError = OnErrorMark
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(APIKeyEnv)
	}
}

// Validate checks the merged configuration. A missing API key is a fatal
// startup error, reported before any row is processed.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "APIKey":
				return fmt.Errorf("config error: %s not set; add it to your environment or .env file", APIKeyEnv)
			case "OnError":
				return fmt.Errorf("config error: 'on_error' must be %q or %q", OnErrorMark, OnErrorSkip)
			}
		}
		return err
	}

	if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
		return fmt.Errorf("config error: resume file not found: %s", c.Resume)
	}
	if _, err := os.Stat(c.Input); os.IsNotExist(err) {
		return fmt.Errorf("config error: input file not found: %s", c.Input)
	}

	return nil
}
