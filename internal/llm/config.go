// Package llm wraps the Gemini client behind a small interface so the
// semantic supplement can be tested without network access. Model selection
// is tiered by the weight of the task: callers name the work they need done,
// not a model version.
package llm

// Tier selects a model by task weight.
type Tier string

const (
	// TierExtraction covers light structured pulls (role titles, skill lists).
	TierExtraction Tier = "extraction"
	// TierFit runs the structured resume-vs-job fit analysis.
	TierFit Tier = "fit"
	// TierNarrative is for longer guidance prose, where quality beats latency.
	TierNarrative Tier = "narrative"
)

// Config maps tiers to Gemini model names and carries shared generation
// settings.
type Config struct {
	Models      map[Tier]string
	Temperature float32
}

// DefaultConfig returns the stock tier-to-model mapping. Temperature is kept
// low so repeated runs over the same texts stay close to deterministic.
func DefaultConfig() *Config {
	return &Config{
		Models: map[Tier]string{
			TierExtraction: "gemini-2.5-flash-lite",
			TierFit:        "gemini-2.5-flash",
			TierNarrative:  "gemini-2.5-pro",
		},
		Temperature: 0.1,
	}
}

// Model resolves the model name for a tier. A sparsely configured Config
// falls back to the fit-tier model, then the extraction-tier model, so a
// single-entry config still serves every tier.
func (c *Config) Model(tier Tier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	for _, fallback := range []Tier{TierFit, TierExtraction} {
		if model, ok := c.Models[fallback]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of c with the tier's model replaced. The receiver
// is not modified.
func (c *Config) WithModel(tier Tier, model string) *Config {
	models := make(map[Tier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models, Temperature: c.Temperature}
}
