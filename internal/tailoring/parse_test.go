package tailoring

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      *Result
		wantError bool
	}{
		{
			name: "Bare JSON object",
			raw:  `{"TAILORED_RESUME": "Jane Doe...", "ATS_MATCH_SCORE": 82, "SCORE_REASONING": "Strong match on backend skills"}`,
			want: &Result{
				TailoredResume: "Jane Doe...",
				ATSMatchScore:  82,
				ScoreReasoning: "Strong match on backend skills",
			},
		},
		{
			name: "JSON wrapped in code fence with leading prose",
			raw:  "Here is the result:\n```json\n{\"TAILORED_RESUME\":\"X\",\"ATS_MATCH_SCORE\":70,\"SCORE_REASONING\":\"Y\"}\n```",
			want: &Result{TailoredResume: "X", ATSMatchScore: 70, ScoreReasoning: "Y"},
		},
		{
			name: "JSON surrounded by prose on both sides",
			raw:  "Sure! {\"TAILORED_RESUME\":\"X\",\"ATS_MATCH_SCORE\":55,\"SCORE_REASONING\":\"Y\"} Hope this helps.",
			want: &Result{TailoredResume: "X", ATSMatchScore: 55, ScoreReasoning: "Y"},
		},
		{
			name: "Fractional score is coerced to an integer",
			raw:  `{"TAILORED_RESUME":"X","ATS_MATCH_SCORE":81.6,"SCORE_REASONING":"Y"}`,
			want: &Result{TailoredResume: "X", ATSMatchScore: 82, ScoreReasoning: "Y"},
		},
		{
			name:      "Not JSON at all",
			raw:       "I could not produce a resume for this posting.",
			wantError: true,
		},
		{
			name:      "Truncated JSON",
			raw:       `{"TAILORED_RESUME":"X","ATS_MATCH_SCORE":70`,
			wantError: true,
		},
		{
			name:      "Score has the wrong type",
			raw:       `{"TAILORED_RESUME":"X","ATS_MATCH_SCORE":"eighty","SCORE_REASONING":"Y"}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResponse(tt.raw)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, result)
			}
		})
	}
}

func TestParseResponseWrappedEqualsBare(t *testing.T) {
	bare := `{"TAILORED_RESUME":"X","ATS_MATCH_SCORE":70,"SCORE_REASONING":"Y"}`
	wrapped := "Here is the result:\n```json\n" + bare + "\n```"

	fromBare, err := ParseResponse(bare)
	require.NoError(t, err)
	fromWrapped, err := ParseResponse(wrapped)
	require.NoError(t, err)

	assert.Equal(t, fromBare, fromWrapped)
}

func TestParseResponseMissingField(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		missing string
	}{
		{
			name:    "Missing tailored resume",
			raw:     `{"ATS_MATCH_SCORE":70,"SCORE_REASONING":"Y"}`,
			missing: FieldTailoredResume,
		},
		{
			name:    "Missing score",
			raw:     `{"TAILORED_RESUME":"X","SCORE_REASONING":"Y"}`,
			missing: FieldATSMatchScore,
		},
		{
			name:    "Missing reasoning",
			raw:     `{"TAILORED_RESUME":"X","ATS_MATCH_SCORE":70}`,
			missing: FieldScoreReasoning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.raw)
			require.Error(t, err)

			var missingErr *MissingFieldError
			require.True(t, errors.As(err, &missingErr))
			assert.Equal(t, tt.missing, missingErr.Field)
		})
	}
}

func TestParseResponseAttachesRawText(t *testing.T) {
	raw := "complete garbage, nothing to parse"
	_, err := ParseResponse(raw)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, raw, parseErr.Raw)
}

// A well-formed response survives a parse/serialize round trip with the
// same three field values.
func TestParseResponseRoundTrip(t *testing.T) {
	raw := `{"TAILORED_RESUME":"Jane Doe...","ATS_MATCH_SCORE":82,"SCORE_REASONING":"Strong match"}`

	first, err := ParseResponse(raw)
	require.NoError(t, err)

	serialized, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := ParseResponse(string(serialized))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
