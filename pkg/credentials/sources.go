// Package credentials resolves provider credentials from layered sources
// with a fixed precedence: explicit key map, named per-provider settings,
// then process environment.
package credentials

import "os"

// ProviderSettings holds the per-provider fields of the named settings
// source.
type ProviderSettings struct {
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// Sources bundles the credential sources consulted during resolution.
// The zero value is valid and falls through to the process environment.
type Sources struct {
	// APIKeys is the explicit key map. Keyed by provider ID for API keys
	// and by the provider's base URL key name for base URLs.
	APIKeys map[string]string

	// Settings is the named settings object, keyed by provider ID.
	Settings map[string]ProviderSettings

	// Env looks up process environment variables. Nil means os.Getenv.
	Env func(string) string
}

// getenv reads from the configured environment source.
func (s Sources) getenv(key string) string {
	if key == "" {
		return ""
	}
	if s.Env != nil {
		return s.Env(key)
	}
	return os.Getenv(key)
}

// apiKey reads from the explicit key map.
func (s Sources) apiKey(key string) string {
	if key == "" {
		return ""
	}
	return s.APIKeys[key]
}

// settings reads the named settings entry for a provider.
func (s Sources) settings(provider string) ProviderSettings {
	if provider == "" {
		return ProviderSettings{}
	}
	return s.Settings[provider]
}
