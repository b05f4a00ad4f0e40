package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("tailoring.json", "tailor-resume")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ResumeText}}")
	assert.Contains(t, prompt, "{{.JobTitle}}")
	assert.Contains(t, prompt, "{{.JobDescription}}")
	assert.Contains(t, prompt, "TAILORED_RESUME")
}

func TestGetUntitledVariant(t *testing.T) {
	prompt, err := Get("tailoring.json", "tailor-resume-untitled")
	require.NoError(t, err)
	assert.NotContains(t, prompt, "{{.JobTitle}}")
	assert.Contains(t, prompt, "{{.JobDescription}}")
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("tailoring.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "tailor-resume")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Place}}", map[string]string{
		"Name":  "Jane",
		"Place": "Acme",
	})
	assert.Equal(t, "Hello Jane, welcome to Acme", result)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("tailoring.json", "no-such-prompt")
	})
}
