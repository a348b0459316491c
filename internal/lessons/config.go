package lessons

// InsightCompressionThreshold is the character count above which raw
// remediation transcripts are summarized before entering a lesson prompt.
const InsightCompressionThreshold = 4000

// Config holds lesson generation settings.
type Config struct {
	MaxTokens          int
	Temperature        float64
	InsightMaxTokens   int
	InsightTemperature float64
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          4096,
		Temperature:        0.7,
		InsightMaxTokens:   512,
		InsightTemperature: 0.3,
	}
}
