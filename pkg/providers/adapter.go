// Package providers implements the provider adapters: credential-aware
// model catalogs and client construction for each configured backend.
package providers

import (
	"github.com/mepankajsingh/modelmap/internal/transport"
	"github.com/mepankajsingh/modelmap/pkg/catalogs"
)

// Adapter binds a provider configuration to the generic catalog and
// factory machinery. Adapters hold no mutable state; every operation works
// on locally-scoped data.
type Adapter struct {
	provider  *catalogs.Provider
	transport *transport.Client
}

// New creates an adapter for the given provider configuration.
func New(provider *catalogs.Provider) *Adapter {
	return &Adapter{
		provider:  provider,
		transport: transport.New(),
	}
}

// Provider returns the adapter's provider configuration.
func (a *Adapter) Provider() *catalogs.Provider {
	return a.provider
}

// ID returns the adapter's provider ID.
func (a *Adapter) ID() catalogs.ProviderID {
	return a.provider.ID
}

// StaticModels returns the provider's fixed model list.
func (a *Adapter) StaticModels() []catalogs.Model {
	return a.provider.StaticModels()
}
