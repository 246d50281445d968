// Package llm provides the chat-completion client abstraction for script
// generation and its Gemini-backed implementation.
package llm

// Generation settings for the completion call. The pipeline makes exactly one
// completion request per inbound request, with a fixed temperature and a
// bounded output length.
const (
	// DefaultModel is the completion model used for script generation
	DefaultModel = "gemini-2.5-flash"
	// DefaultTemperature is the fixed sampling temperature
	DefaultTemperature = 0.7
	// DefaultMaxOutputTokens bounds the generated script length
	DefaultMaxOutputTokens = 300
)

// Config holds the completion model configuration.
type Config struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the production generation settings.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}
