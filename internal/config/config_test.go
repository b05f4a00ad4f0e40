package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"resume": "cv.pdf",
		"input": "postings.csv",
		"on_error": "skip",
		"verbose": true
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", cfg.Resume)
	assert.Equal(t, "postings.csv", cfg.Input)
	assert.Equal(t, OnErrorSkip, cfg.OnError)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Output)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	t.Setenv(APIKeyEnv, "test-key")

	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultResume, cfg.Resume)
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, OnErrorMark, cfg.OnError)
	assert.Equal(t, "test-key", cfg.APIKey)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	cfg := &Config{Resume: "cv.docx", APIKey: "flag-key", OnError: OnErrorSkip}
	cfg.ApplyDefaults()

	assert.Equal(t, "cv.docx", cfg.Resume)
	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.Equal(t, OnErrorSkip, cfg.OnError)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	cfg := &Config{OnError: OnErrorMark}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), APIKeyEnv)
}

func TestValidateRejectsUnknownPolicy(t *testing.T) {
	cfg := &Config{APIKey: "key", OnError: "retry"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on_error")
}

func TestValidateChecksFilesExist(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	input := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(resume, []byte("resume"), 0o644))
	require.NoError(t, os.WriteFile(input, []byte("description\n"), 0o644))

	cfg := &Config{APIKey: "key", OnError: OnErrorMark, Resume: resume, Input: input, Output: filepath.Join(dir, "out.csv")}
	assert.NoError(t, cfg.Validate())

	cfg.Resume = filepath.Join(dir, "missing.pdf")
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")

	cfg.Resume = resume
	cfg.Input = filepath.Join(dir, "missing.csv")
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}
