package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/errors"
)

func TestGet(t *testing.T) {
	for _, id := range []catalogs.ProviderID{
		catalogs.ProviderIDBedrock,
		catalogs.ProviderIDOpenAILike,
		catalogs.ProviderIDOpenAILikeBeta,
	} {
		adapter, err := Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, adapter.ID())
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-provider")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeclarationOrder(t *testing.T) {
	want := []catalogs.ProviderID{
		catalogs.ProviderIDBedrock,
		catalogs.ProviderIDOpenAILike,
		catalogs.ProviderIDOpenAILikeBeta,
	}
	assert.Equal(t, want, IDs())

	all := All()
	require.Len(t, all, len(want))
	for i, adapter := range all {
		assert.Equal(t, want[i], adapter.ID())
	}
}

func TestRegisteredProvidersValidate(t *testing.T) {
	for _, adapter := range All() {
		assert.NoError(t, adapter.Provider().Validate(), string(adapter.ID()))
	}
}

func TestBetaVariantSharesStaticCatalog(t *testing.T) {
	stable, err := Get(catalogs.ProviderIDOpenAILike)
	require.NoError(t, err)
	beta, err := Get(catalogs.ProviderIDOpenAILikeBeta)
	require.NoError(t, err)

	stableModels := stable.StaticModels()
	betaModels := beta.StaticModels()
	require.Equal(t, len(stableModels), len(betaModels))

	for i := range betaModels {
		assert.Equal(t, stableModels[i].Name, betaModels[i].Name)
		// Shared catalog entries are re-stamped with the requesting
		// provider's ID.
		assert.Equal(t, string(catalogs.ProviderIDOpenAILikeBeta), betaModels[i].Provider)
	}
}
