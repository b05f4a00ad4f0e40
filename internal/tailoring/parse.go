// Package tailoring turns one job record plus the candidate's résumé text
// into a tailored résumé, an ATS match score, and the score reasoning, by
// prompting the generative model and interpreting its JSON response.
package tailoring

import (
	_ "embed"
	"encoding/json"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/asharma/resume-tailor/internal/llm"
)

// Output field names, as written to the output CSV.
const (
	FieldTailoredResume = "TAILORED_RESUME"
	FieldATSMatchScore  = "ATS_MATCH_SCORE"
	FieldScoreReasoning = "SCORE_REASONING"
)

//go:embed response_schema.json
var responseSchemaJSON string

// Result is the structured model response for one job record.
type Result struct {
	TailoredResume string `json:"TAILORED_RESUME"`
	ATSMatchScore  int    `json:"ATS_MATCH_SCORE"`
	ScoreReasoning string `json:"SCORE_REASONING"`
}

// ParseResponse interprets raw model output as a three-field JSON object.
// The response is expected to be JSON but may be wrapped in explanatory
// prose or markdown code fences, so parsing proceeds in stages:
//
//  1. strip code fences and attempt a direct parse;
//  2. on failure, isolate the substring between the first '{' and the
//     last '}' and retry;
//  3. on failure, return a *ParseError with the raw text attached.
//
// A parseable object missing any of the three fields yields a
// *MissingFieldError.
func ParseResponse(raw string) (*Result, error) {
	cleaned := llm.CleanJSONBlock(raw)

	payload, ok := decodeObject(cleaned)
	if !ok {
		isolated, found := isolateObject(cleaned)
		if found {
			payload, ok = decodeObject(isolated)
		}
		if !ok {
			return nil, &ParseError{Message: "response is not a JSON object", Raw: raw}
		}
		cleaned = isolated
	}

	if err := validatePayload(cleaned, raw); err != nil {
		return nil, err
	}

	return buildResult(payload), nil
}

// decodeObject attempts a strict decode of text into a JSON object.
func decodeObject(text string) (map[string]any, bool) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, false
	}
	return payload, payload != nil
}

// isolateObject extracts the substring between the first '{' and the last
// '}' inclusive. This recovers JSON wrapped in leading or trailing prose.
func isolateObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// validatePayload checks the decoded object against the embedded response
// schema. Required-field violations surface as *MissingFieldError, other
// violations as *ParseError.
func validatePayload(jsonText, raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(responseSchemaJSON),
		gojsonschema.NewStringLoader(jsonText),
	)
	if err != nil {
		return &ParseError{Message: "schema validation failed", Raw: raw, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	var messages []string
	for _, desc := range result.Errors() {
		if desc.Type() == "required" {
			if property, ok := desc.Details()["property"].(string); ok {
				return &MissingFieldError{Field: property}
			}
		}
		messages = append(messages, desc.String())
	}
	return &ParseError{Message: "response does not match expected shape: " + strings.Join(messages, "; "), Raw: raw}
}

// buildResult assembles a Result from a schema-valid payload. The score is
// coerced to an integer; the model is asked for 0-100 but the range is not
// enforced here.
func buildResult(payload map[string]any) *Result {
	result := &Result{}
	if text, ok := payload[FieldTailoredResume].(string); ok {
		result.TailoredResume = text
	}
	if score, ok := payload[FieldATSMatchScore].(float64); ok {
		result.ATSMatchScore = int(math.Round(score))
	}
	if reasoning, ok := payload[FieldScoreReasoning].(string); ok {
		result.ScoreReasoning = reasoning
	}
	return result
}
