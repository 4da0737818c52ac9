// Package llm provides the completion-API boundary used by the match scorer.
package llm

// ModelTier represents the capability level requested for a completion.
type ModelTier string

const (
	// TierLite is for cheap structured tasks such as per-job match scoring.
	TierLite ModelTier = "lite"
	// TierStandard is for heavier reasoning tasks.
	TierStandard ModelTier = "standard"
)

// Config holds the model selection per tier.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to the standard
// tier when the requested one is not configured.
func (c *Config) Model(tier ModelTier) string {
	if m, ok := c.Models[tier]; ok {
		return m
	}
	return c.Models[TierStandard]
}
