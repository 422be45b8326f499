package credentials

import (
	"fmt"

	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/errors"
)

// Resolved is a provider credential resolved to an endpoint and key.
// Constructed fresh per request, never persisted.
type Resolved struct {
	BaseURL string
	APIKey  string
}

// step is one consulted credential source: a display name for diagnostics
// and the value it produced.
type step struct {
	name  string
	value string
}

// resolveChain walks the steps in order and returns the first non-empty
// value plus the names of every step, for error reporting.
func resolveChain(steps []step) (string, []string) {
	attempted := make([]string, 0, len(steps))
	value := ""
	for _, s := range steps {
		attempted = append(attempted, s.name)
		if value == "" && s.value != "" {
			value = s.value
		}
	}
	return value, attempted
}

// apiKeySteps builds the apiKey resolution order for a provider.
func apiKeySteps(p *catalogs.Provider, src Sources) []step {
	id := string(p.ID)
	steps := []step{
		{"apiKeys." + id, src.apiKey(id)},
		{"apiKeys." + p.Keys.APIKey, src.apiKey(p.Keys.APIKey)},
	}
	if p.Keys.AliasAPIKey != "" {
		steps = append(steps, step{"apiKeys." + p.Keys.AliasAPIKey, src.apiKey(p.Keys.AliasAPIKey)})
	}
	steps = append(steps, step{"settings." + id + ".apiKey", src.settings(id).APIKey})
	if alias := string(p.Keys.AliasProvider); alias != "" {
		steps = append(steps, step{"settings." + alias + ".apiKey", src.settings(alias).APIKey})
	}
	steps = append(steps, step{"env." + p.Keys.APIKey, src.getenv(p.Keys.APIKey)})
	if p.Keys.AliasAPIKey != "" {
		steps = append(steps, step{"env." + p.Keys.AliasAPIKey, src.getenv(p.Keys.AliasAPIKey)})
	}
	return steps
}

// baseURLSteps builds the baseUrl resolution order for a provider. The
// hard-coded default base URL sits at the end of the chain.
func baseURLSteps(p *catalogs.Provider, src Sources) []step {
	id := string(p.ID)
	steps := []step{
		{"apiKeys." + p.Keys.BaseURL, src.apiKey(p.Keys.BaseURL)},
	}
	if p.Keys.AliasBaseURL != "" {
		steps = append(steps, step{"apiKeys." + p.Keys.AliasBaseURL, src.apiKey(p.Keys.AliasBaseURL)})
	}
	steps = append(steps, step{"settings." + id + ".baseUrl", src.settings(id).BaseURL})
	if alias := string(p.Keys.AliasProvider); alias != "" {
		steps = append(steps, step{"settings." + alias + ".baseUrl", src.settings(alias).BaseURL})
	}
	steps = append(steps, step{"env." + p.Keys.BaseURL, src.getenv(p.Keys.BaseURL)})
	if p.Keys.AliasBaseURL != "" {
		steps = append(steps, step{"env." + p.Keys.AliasBaseURL, src.getenv(p.Keys.AliasBaseURL)})
	}
	if p.DefaultBaseURL != "" {
		steps = append(steps, step{"default", p.DefaultBaseURL})
	}
	return steps
}

// Resolve resolves the (baseUrl, apiKey) pair for a key-pair provider.
// The two fields are resolved independently, first non-empty source wins.
// When either field stays empty the returned error names every source that
// was tried, to aid operator diagnosis.
func Resolve(p *catalogs.Provider, src Sources) (Resolved, error) {
	apiKey, keyAttempts := resolveChain(apiKeySteps(p, src))
	baseURL, urlAttempts := resolveChain(baseURLSteps(p, src))

	if apiKey == "" || baseURL == "" {
		missing := ""
		attempted := []string{}
		if apiKey == "" {
			missing = "apiKey"
			attempted = append(attempted, keyAttempts...)
		}
		if baseURL == "" {
			if missing != "" {
				missing += " and baseUrl"
			} else {
				missing = "baseUrl"
			}
			attempted = append(attempted, urlAttempts...)
		}
		return Resolved{}, &errors.ConfigError{
			Provider:  string(p.ID),
			Message:   fmt.Sprintf("missing %s", missing),
			Attempted: attempted,
		}
	}

	return Resolved{BaseURL: baseURL, APIKey: apiKey}, nil
}

// ResolveBlob resolves the opaque credential blob for a blob provider and
// parses it. The blob travels through the same apiKey precedence chain.
func ResolveBlob(p *catalogs.Provider, src Sources) (BedrockConfig, error) {
	blob, attempted := resolveChain(apiKeySteps(p, src))
	if blob == "" {
		return BedrockConfig{}, &errors.ConfigError{
			Provider:  string(p.ID),
			Message:   "missing credential blob",
			Attempted: attempted,
		}
	}
	return ParseBedrockConfig(string(p.ID), blob)
}
