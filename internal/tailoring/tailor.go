package tailoring

import (
	"context"

	"github.com/asharma/resume-tailor/internal/jobs"
	"github.com/asharma/resume-tailor/internal/llm"
)

// TailorRecord runs the full per-row sequence for one job record: build
// the prompt, make one blocking model call, and parse the response.
// Errors here are per-row; the caller decides whether to mark or skip.
func TailorRecord(ctx context.Context, client llm.Client, resumeText string, record jobs.Record) (*Result, error) {
	prompt := BuildPrompt(resumeText, record)

	response, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate tailored resume", Cause: err}
	}

	return ParseResponse(response)
}
