package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/errors"
)

// noEnv keeps tests isolated from the real process environment.
func noEnv(string) string { return "" }

func gatewayProvider() *catalogs.Provider {
	return &catalogs.Provider{
		ID:         "openai-like",
		Name:       "OpenAI Like",
		Credential: catalogs.CredentialKindKeyPair,
		Keys: catalogs.ProviderKeys{
			APIKey:        "OPENAI_LIKE_API_KEY",
			BaseURL:       "OPENAI_LIKE_API_BASE_URL",
			AliasAPIKey:   "OPENAI_COMPATIBLE_API_KEY",
			AliasBaseURL:  "OPENAI_COMPATIBLE_API_BASE_URL",
			AliasProvider: "openai-compatible",
		},
		DefaultBaseURL: "https://api.openai.com",
	}
}

func TestResolvePrecedence(t *testing.T) {
	p := gatewayProvider()

	tests := []struct {
		name    string
		src     Sources
		wantKey string
		wantURL string
	}{
		{
			name: "explicit provider key beats shared key",
			src: Sources{
				APIKeys: map[string]string{
					"openai-like":         "A",
					"OPENAI_LIKE_API_KEY": "B",
				},
				Env: noEnv,
			},
			wantKey: "A",
			wantURL: "https://api.openai.com",
		},
		{
			name: "shared key beats alias key",
			src: Sources{
				APIKeys: map[string]string{
					"OPENAI_LIKE_API_KEY":       "shared",
					"OPENAI_COMPATIBLE_API_KEY": "alias",
				},
				Env: noEnv,
			},
			wantKey: "shared",
			wantURL: "https://api.openai.com",
		},
		{
			name: "alias key beats settings",
			src: Sources{
				APIKeys: map[string]string{
					"OPENAI_COMPATIBLE_API_KEY": "alias",
				},
				Settings: map[string]ProviderSettings{
					"openai-like": {APIKey: "from-settings"},
				},
				Env: noEnv,
			},
			wantKey: "alias",
			wantURL: "https://api.openai.com",
		},
		{
			name: "own settings beat alias provider settings",
			src: Sources{
				Settings: map[string]ProviderSettings{
					"openai-like":       {APIKey: "own", BaseURL: "https://own.example.com"},
					"openai-compatible": {APIKey: "alias", BaseURL: "https://alias.example.com"},
				},
				Env: noEnv,
			},
			wantKey: "own",
			wantURL: "https://own.example.com",
		},
		{
			name: "alias provider settings beat environment",
			src: Sources{
				Settings: map[string]ProviderSettings{
					"openai-compatible": {APIKey: "alias", BaseURL: "https://alias.example.com"},
				},
				Env: func(key string) string {
					if key == "OPENAI_LIKE_API_KEY" {
						return "from-env"
					}
					return ""
				},
			},
			wantKey: "alias",
			wantURL: "https://alias.example.com",
		},
		{
			name: "environment default key before alias key",
			src: Sources{
				Env: func(key string) string {
					switch key {
					case "OPENAI_LIKE_API_KEY":
						return "env-default"
					case "OPENAI_COMPATIBLE_API_KEY":
						return "env-alias"
					}
					return ""
				},
			},
			wantKey: "env-default",
			wantURL: "https://api.openai.com",
		},
		{
			name: "alias environment key as last key source",
			src: Sources{
				Env: func(key string) string {
					if key == "OPENAI_COMPATIBLE_API_KEY" {
						return "env-alias"
					}
					return ""
				},
			},
			wantKey: "env-alias",
			wantURL: "https://api.openai.com",
		},
		{
			name: "explicit base url beats settings base url",
			src: Sources{
				APIKeys: map[string]string{
					"openai-like":              "key",
					"OPENAI_LIKE_API_BASE_URL": "https://explicit.example.com",
				},
				Settings: map[string]ProviderSettings{
					"openai-like": {BaseURL: "https://settings.example.com"},
				},
				Env: noEnv,
			},
			wantKey: "key",
			wantURL: "https://explicit.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve(p, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, resolved.APIKey)
			assert.Equal(t, tt.wantURL, resolved.BaseURL)
		})
	}
}

func TestResolveMissingAPIKey(t *testing.T) {
	p := gatewayProvider()

	_, err := Resolve(p, Sources{Env: noEnv})
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "openai-like", cfgErr.Provider)

	// Every consulted apiKey source must be named for the operator.
	assert.Contains(t, cfgErr.Attempted, "apiKeys.openai-like")
	assert.Contains(t, cfgErr.Attempted, "apiKeys.OPENAI_LIKE_API_KEY")
	assert.Contains(t, cfgErr.Attempted, "apiKeys.OPENAI_COMPATIBLE_API_KEY")
	assert.Contains(t, cfgErr.Attempted, "settings.openai-like.apiKey")
	assert.Contains(t, cfgErr.Attempted, "settings.openai-compatible.apiKey")
	assert.Contains(t, cfgErr.Attempted, "env.OPENAI_LIKE_API_KEY")
	assert.Contains(t, cfgErr.Attempted, "env.OPENAI_COMPATIBLE_API_KEY")
}

func TestResolveMissingBaseURL(t *testing.T) {
	p := gatewayProvider()
	p.DefaultBaseURL = ""

	_, err := Resolve(p, Sources{
		APIKeys: map[string]string{"openai-like": "key"},
		Env:     noEnv,
	})
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, "baseUrl")
	assert.Contains(t, cfgErr.Attempted, "env.OPENAI_LIKE_API_BASE_URL")
	assert.NotContains(t, cfgErr.Attempted, "apiKeys.openai-like")
}

func TestResolveDefaultBaseURL(t *testing.T) {
	p := gatewayProvider()

	resolved, err := Resolve(p, Sources{
		APIKeys: map[string]string{"openai-like": "key"},
		Env:     noEnv,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.openai.com", resolved.BaseURL)
}
