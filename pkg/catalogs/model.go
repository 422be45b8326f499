package catalogs

// Model represents a single chat model entry in a provider catalog.
type Model struct {
	Name                string `json:"name" yaml:"name"`                                             // Unique model identifier within a catalog
	Label               string `json:"label" yaml:"label"`                                           // Display label, may carry pricing/context hints
	Provider            string `json:"provider" yaml:"provider"`                                     // Owning provider ID (never empty)
	MaxTokenAllowed     int    `json:"max_token_allowed" yaml:"max_token_allowed"`                   // Context window size in tokens
	MaxCompletionTokens int    `json:"max_completion_tokens,omitempty" yaml:"max_completion_tokens,omitempty"` // Maximum completion tokens
}

// DefaultMaxTokens is the context size assumed when a provider does not
// report one.
const DefaultMaxTokens = 8000

// DefaultMaxCompletionTokens caps completion length regardless of the
// reported context window.
const DefaultMaxCompletionTokens = 8192

// Validate checks that the model carries the fields every catalog entry
// must have.
func (m Model) Validate() error {
	if m.Name == "" {
		return errValidation("name", "must not be empty")
	}
	if m.Provider == "" {
		return errValidation("provider", "must not be empty")
	}
	return nil
}

// DedupeModels removes entries sharing a Name, keeping the first occurrence
// and preserving encounter order.
func DedupeModels(models []Model) []Model {
	seen := make(map[string]bool, len(models))
	out := make([]Model, 0, len(models))
	for _, m := range models {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		out = append(out, m)
	}
	return out
}
