// Package pipeline provides the high-level orchestration for the bulk
// tailoring process: extract the résumé once, then for each job record
// build a prompt, call the model, parse the response, and finally write
// the augmented table in one shot.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/asharma/resume-tailor/internal/config"
	"github.com/asharma/resume-tailor/internal/extract"
	"github.com/asharma/resume-tailor/internal/jobs"
	"github.com/asharma/resume-tailor/internal/llm"
	"github.com/asharma/resume-tailor/internal/observability"
	"github.com/asharma/resume-tailor/internal/results"
	"github.com/asharma/resume-tailor/internal/tailoring"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	RunID   string `json:"run_id"`
	Row     int    `json:"row"`
	Total   int    `json:"total"`
	Title   string `json:"title,omitempty"`
	Failed  bool   `json:"failed,omitempty"`
	Message string `json:"message,omitempty"`
}

// ProgressCallback is called after each row is processed
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Config *config.Config

	// Client substitutes the remote model; when nil a Gemini client is
	// constructed from the config's API key.
	Client llm.Client

	// Out receives progress lines; defaults to os.Stdout.
	Out io.Writer

	OnProgress ProgressCallback
}

// Run executes the whole pipeline. Fatal errors (unreadable résumé,
// missing input file or description column, missing API key) return
// before any row is processed and produce no output file. Per-row
// failures never abort the run: depending on the configured policy the
// row is kept with an error marker or skipped.
func Run(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)
	runID := uuid.New().String()

	// Fatal path: the résumé is required for every prompt
	resumeText, err := extract.ResumeText(cfg.Resume)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintResumeText(resumeText)
	}

	// Fatal path: schema check happens before any model call
	source, err := jobs.Open(cfg.Input)
	if err != nil {
		return err
	}

	client := opts.Client
	if client == nil {
		llmConfig := llm.DefaultConfig().WithResponseSchema(tailoring.ResponseSchema())
		if cfg.Model != "" {
			llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
		}
		// Fatal path: a missing key is rejected here, before any row
		geminiClient, err := llm.NewGeminiClient(ctx, llmConfig, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		defer func() { _ = geminiClient.Close() }()
		client = geminiClient
	}

	total, err := source.Count()
	if err != nil {
		return fmt.Errorf("failed to count input rows: %w", err)
	}
	fmt.Fprintf(out, "Starting AI resume tailoring for %d jobs...\n", total)

	table := results.NewTable(source.Header())

	rows, err := source.Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	row := 0
	for rows.Next() {
		row++
		record := rows.Record()
		title := record.Get(jobs.TitleColumn)
		fmt.Fprintf(out, "[%d/%d] Tailoring resume for: %s\n", row, total, title)

		result, err := tailoring.TailorRecord(ctx, client, resumeText, record)
		if err != nil {
			switch cfg.OnError {
			case config.OnErrorSkip:
				fmt.Fprintf(out, "Skipping row %d: %v\n", row, err)
			default:
				fmt.Fprintf(out, "Marking row %d as failed: %v\n", row, err)
				table.AppendFailure(record, err)
			}
			emit(opts.OnProgress, ProgressEvent{RunID: runID, Row: row, Total: total, Title: title, Failed: true, Message: err.Error()})
			continue
		}

		table.AppendResult(record, result)
		emit(opts.OnProgress, ProgressEvent{RunID: runID, Row: row, Total: total, Title: title})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read input rows: %w", err)
	}

	if err := table.WriteCSV(cfg.Output); err != nil {
		return err
	}

	printer.PrintRunSummary(table, cfg.Output)
	return nil
}

func emit(cb ProgressCallback, event ProgressEvent) {
	if cb != nil {
		cb(event)
	}
}
