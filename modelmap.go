// Package modelmap translates a uniform "get me a chat model" request into
// provider-specific authentication and endpoint conventions. It resolves
// layered credential sources, lists provider models (static and
// live-fetched), and constructs inert, model-bound client handles.
package modelmap

import (
	"context"

	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/credentials"
	"github.com/mepankajsingh/modelmap/pkg/providers"
)

// Providers returns the configured provider definitions in declaration
// order.
func Providers() []*catalogs.Provider {
	adapters := providers.All()
	defs := make([]*catalogs.Provider, 0, len(adapters))
	for _, a := range adapters {
		defs = append(defs, a.Provider())
	}
	return defs
}

// StaticModels returns a provider's fixed model list.
func StaticModels(id catalogs.ProviderID) ([]catalogs.Model, error) {
	adapter, err := providers.Get(id)
	if err != nil {
		return nil, err
	}
	return adapter.StaticModels(), nil
}

// Models returns a provider's live model list, degrading to the provider's
// fallback catalog on any discovery failure. The lookup error is the only
// error surfaced; discovery itself never fails.
func Models(ctx context.Context, id catalogs.ProviderID, src credentials.Sources) ([]catalogs.Model, error) {
	adapter, err := providers.Get(id)
	if err != nil {
		return nil, err
	}
	return adapter.DynamicModels(ctx, src), nil
}

// Instance constructs a client handle for a provider's model. Missing
// credentials surface as a *errors.ConfigError naming every source tried.
func Instance(id catalogs.ProviderID, opts providers.InstanceOptions) (providers.Handle, error) {
	adapter, err := providers.Get(id)
	if err != nil {
		return nil, err
	}
	return adapter.ModelInstance(opts)
}
