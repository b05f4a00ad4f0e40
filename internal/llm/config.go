// Package llm provides the Gemini client abstraction used by the tailoring
// pipeline. The client is an interface so tests can substitute a
// deterministic stub for the remote model.
package llm

import "github.com/google/generative-ai-go/genai"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction
	TierLite ModelTier = "lite"
	// TierStandard is for moderate tasks: tailoring with structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning tasks
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the application
type Config struct {
	Models map[ModelTier]string

	// ResponseSchema, when set, is sent with JSON-mode requests so the
	// service constrains its output to the given object shape.
	ResponseSchema *genai.Schema
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Models:         make(map[ModelTier]string),
		ResponseSchema: c.ResponseSchema,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// WithResponseSchema returns a new Config carrying a response schema for
// JSON-mode requests.
func (c *Config) WithResponseSchema(schema *genai.Schema) *Config {
	newConfig := &Config{
		Models:         make(map[ModelTier]string),
		ResponseSchema: schema,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	return newConfig
}
