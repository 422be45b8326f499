package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalogsParse(t *testing.T) {
	require.NoError(t, StaticLoadError())
}

func TestStaticModels(t *testing.T) {
	p := &Provider{ID: ProviderIDBedrock, Name: "Amazon Bedrock"}

	models := p.StaticModels()
	require.NotEmpty(t, models)

	for _, m := range models {
		assert.NoError(t, m.Validate(), m.Name)
		assert.Equal(t, "bedrock", m.Provider)
		assert.Positive(t, m.MaxTokenAllowed, m.Name)
	}
}

func TestStaticModelsStable(t *testing.T) {
	p := &Provider{ID: ProviderIDOpenAILike, Name: "OpenAI Like"}
	assert.Equal(t, p.StaticModels(), p.StaticModels())
}

func TestStaticModelsCopyIsolated(t *testing.T) {
	p := &Provider{ID: ProviderIDOpenAILike, Name: "OpenAI Like"}

	first := p.StaticModels()
	require.NotEmpty(t, first)
	first[0].Name = "mutated"

	second := p.StaticModels()
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestStaticModelsSharedCatalogRestamped(t *testing.T) {
	p := &Provider{
		ID:            "gateway-variant",
		Name:          "Gateway Variant",
		StaticCatalog: "openai-like",
	}

	models := p.StaticModels()
	require.NotEmpty(t, models)
	for _, m := range models {
		assert.Equal(t, "gateway-variant", m.Provider)
	}
}

func TestStaticModelsUnknownCatalog(t *testing.T) {
	p := &Provider{ID: "no-such-catalog", Name: "Nope"}
	assert.Empty(t, p.StaticModels())
}
