package tailoring

import (
	"github.com/google/generative-ai-go/genai"

	"github.com/asharma/resume-tailor/internal/jobs"
	"github.com/asharma/resume-tailor/internal/prompts"
)

// BuildPrompt deterministically embeds the résumé text and one job record
// into the tailoring instruction template. The full job description is
// always included; the title only when the record carries one. Pure
// function: no side effects, always produces a string.
func BuildPrompt(resumeText string, record jobs.Record) string {
	data := map[string]string{
		"ResumeText":     resumeText,
		"JobDescription": record.Get(jobs.DescriptionColumn),
	}

	key := "tailor-resume-untitled"
	if record.Has(jobs.TitleColumn) {
		key = "tailor-resume"
		data["JobTitle"] = record.Get(jobs.TitleColumn)
	}

	return prompts.Format(prompts.MustGet("tailoring.json", key), data)
}

// ResponseSchema describes the expected model output for the request side,
// so JSON-mode generation is constrained to the three tailoring fields.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			FieldTailoredResume: {Type: genai.TypeString},
			FieldATSMatchScore:  {Type: genai.TypeInteger},
			FieldScoreReasoning: {Type: genai.TypeString},
		},
		Required: []string{FieldTailoredResume, FieldATSMatchScore, FieldScoreReasoning},
	}
}
