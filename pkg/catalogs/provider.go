package catalogs

import (
	"github.com/mepankajsingh/modelmap/pkg/errors"
)

// Provider represents a provider configuration.
//
// The two backends differ only in these parameters, so provider behavior is
// data-driven rather than subclassed: one generic resolver/fetcher consumes
// the key names, endpoint suffixes, and fallback policy declared here.
type Provider struct {
	// Core identification
	ID      ProviderID `json:"id" yaml:"id"`             // Unique provider identifier
	Name    string     `json:"name" yaml:"name"`         // Display name (must not be empty)
	DocsURL string     `json:"docs_url" yaml:"docs_url"` // Link to provider API key documentation

	// Credential configuration
	Credential CredentialKind `json:"credential" yaml:"credential"` // How this provider authenticates
	Keys       ProviderKeys   `json:"keys" yaml:"keys"`             // Key names consulted during resolution

	// Endpoint configuration
	DefaultBaseURL string   `json:"default_base_url,omitempty" yaml:"default_base_url,omitempty"` // Literal fallback base URL
	ModelPaths     []string `json:"model_paths,omitempty" yaml:"model_paths,omitempty"`           // Candidate path suffixes for the models endpoint

	// Catalog configuration
	StaticCatalog string         `json:"static_catalog,omitempty" yaml:"static_catalog,omitempty"` // Embedded catalog name; defaults to ID
	Fallback      FallbackPolicy `json:"fallback" yaml:"fallback"`                                 // What DynamicModels returns when discovery yields nothing
}

// ProviderKeys names the credential sources a provider consults, in the
// fixed resolution order. Alias entries cover providers reachable under a
// second vendor key or settings name.
type ProviderKeys struct {
	APIKey        string     `json:"api_key" yaml:"api_key"`                                   // Default apiKey key name (settings/env)
	BaseURL       string     `json:"base_url" yaml:"base_url"`                                 // Default baseUrl key name (settings/env)
	AliasAPIKey   string     `json:"alias_api_key,omitempty" yaml:"alias_api_key,omitempty"`   // Secondary apiKey alias key name
	AliasBaseURL  string     `json:"alias_base_url,omitempty" yaml:"alias_base_url,omitempty"` // Secondary baseUrl alias key name
	AliasProvider ProviderID `json:"alias_provider,omitempty" yaml:"alias_provider,omitempty"` // Alias provider name for settings lookup
}

// ProviderID represents a provider identifier type for compile-time safety.
type ProviderID string

// String returns the string representation of a ProviderID.
func (pid ProviderID) String() string {
	return string(pid)
}

// Provider ID constants.
const (
	ProviderIDBedrock        ProviderID = "bedrock"
	ProviderIDOpenAILike     ProviderID = "openai-like"
	ProviderIDOpenAILikeBeta ProviderID = "openai-like-beta"
)

// CredentialKind represents how a provider authenticates.
type CredentialKind string

// String returns the string representation of a CredentialKind.
func (ck CredentialKind) String() string {
	return string(ck)
}

// Credential kinds.
const (
	CredentialKindKeyPair CredentialKind = "key_pair" // Resolved (baseUrl, apiKey) pair
	CredentialKindBlob    CredentialKind = "blob"     // Single opaque JSON credential blob
)

// FallbackPolicy represents what a dynamic catalog returns when discovery
// is unavailable or yields nothing.
type FallbackPolicy string

// String returns the string representation of a FallbackPolicy.
func (fp FallbackPolicy) String() string {
	return string(fp)
}

// Fallback policies. Both appear in the wild for the same gateway and are
// preserved per-provider rather than unified.
const (
	FallbackStatic FallbackPolicy = "static" // Degrade to the embedded static list
	FallbackEmpty  FallbackPolicy = "empty"  // Degrade to an empty list
)

// CatalogName returns the embedded static catalog name for this provider.
func (p *Provider) CatalogName() string {
	if p.StaticCatalog != "" {
		return p.StaticCatalog
	}
	return string(p.ID)
}

// Validate performs basic sanity checks on the provider configuration.
func (p *Provider) Validate() error {
	if p.ID == "" {
		return errValidation("id", "must not be empty")
	}
	if p.Name == "" {
		return errValidation("name", "must not be empty")
	}
	if p.Credential == CredentialKindKeyPair && p.Keys.APIKey == "" {
		return errValidation("keys.api_key", "key-pair providers must name an apiKey source")
	}
	return nil
}

// errValidation builds the package's validation errors.
func errValidation(field, message string) error {
	return &errors.ValidationError{Field: field, Message: message}
}
