package tailoring

import "fmt"

// APICallError represents a failed call to the generative model service.
// These are per-row failures: the run continues with the next record.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a model response that could not be interpreted as
// the expected JSON object. Raw carries the full response text for
// diagnosis.
type ParseError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v (raw response: %.200s)", e.Message, e.Cause, e.Raw)
	}
	return fmt.Sprintf("parse error: %s (raw response: %.200s)", e.Message, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// MissingFieldError reports a parseable response that lacks one of the
// three expected fields. Never a silent partial success.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model response is missing required field %q", e.Field)
}
