package providers

import (
	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/errors"
)

// definitions declares the configured providers. The two gateway entries
// are variants of the same backend and differ only in fallback policy;
// both are kept as distinct registrations on purpose.
var definitions = []*catalogs.Provider{
	{
		ID:         catalogs.ProviderIDBedrock,
		Name:       "Amazon Bedrock",
		DocsURL:    "https://docs.aws.amazon.com/bedrock/latest/userguide/setting-up.html",
		Credential: catalogs.CredentialKindBlob,
		Keys: catalogs.ProviderKeys{
			APIKey: "AWS_BEDROCK_CONFIG",
		},
		Fallback: catalogs.FallbackStatic,
	},
	{
		ID:         catalogs.ProviderIDOpenAILike,
		Name:       "OpenAI Like",
		DocsURL:    "https://platform.openai.com/docs/api-reference/models",
		Credential: catalogs.CredentialKindKeyPair,
		Keys: catalogs.ProviderKeys{
			APIKey:        "OPENAI_LIKE_API_KEY",
			BaseURL:       "OPENAI_LIKE_API_BASE_URL",
			AliasAPIKey:   "OPENAI_COMPATIBLE_API_KEY",
			AliasBaseURL:  "OPENAI_COMPATIBLE_API_BASE_URL",
			AliasProvider: "openai-compatible",
		},
		DefaultBaseURL: "https://api.openai.com",
		Fallback:       catalogs.FallbackStatic,
	},
	{
		ID:         catalogs.ProviderIDOpenAILikeBeta,
		Name:       "OpenAI Like (Beta)",
		DocsURL:    "https://platform.openai.com/docs/api-reference/models",
		Credential: catalogs.CredentialKindKeyPair,
		Keys: catalogs.ProviderKeys{
			APIKey:        "OPENAI_LIKE_API_KEY",
			BaseURL:       "OPENAI_LIKE_API_BASE_URL",
			AliasAPIKey:   "OPENAI_COMPATIBLE_API_KEY",
			AliasBaseURL:  "OPENAI_COMPATIBLE_API_BASE_URL",
			AliasProvider: "openai-compatible",
		},
		DefaultBaseURL: "https://api.openai.com",
		StaticCatalog:  "openai-like",
		Fallback:       catalogs.FallbackEmpty,
	},
}

// registry maps provider IDs to configured adapters, built once at init.
var registry = func() map[catalogs.ProviderID]*Adapter {
	m := make(map[catalogs.ProviderID]*Adapter, len(definitions))
	for _, def := range definitions {
		m[def.ID] = New(def)
	}
	return m
}()

// Get returns the adapter registered for a provider ID.
func Get(id catalogs.ProviderID) (*Adapter, error) {
	adapter, ok := registry[id]
	if !ok {
		return nil, errors.NewNotFoundError("provider", string(id))
	}
	return adapter, nil
}

// All returns every registered adapter in declaration order.
func All() []*Adapter {
	adapters := make([]*Adapter, 0, len(definitions))
	for _, def := range definitions {
		adapters = append(adapters, registry[def.ID])
	}
	return adapters
}

// IDs returns the registered provider IDs in declaration order.
func IDs() []catalogs.ProviderID {
	ids := make([]catalogs.ProviderID, 0, len(definitions))
	for _, def := range definitions {
		ids = append(ids, def.ID)
	}
	return ids
}
