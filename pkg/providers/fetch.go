package providers

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mepankajsingh/modelmap/internal/transport"
	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/credentials"
	"github.com/mepankajsingh/modelmap/pkg/logging"
)

// defaultModelPaths are the candidate path suffixes tried against the
// resolved base URL when the provider does not declare its own.
var defaultModelPaths = []string{"/v1beta/models", "/v1/models", "/models"}

// DynamicModels fetches the provider's live model list, normalizes it into
// catalog records, and falls back per the provider's policy on any failure.
// It never returns an error: discovery problems are logged and swallowed.
func (a *Adapter) DynamicModels(ctx context.Context, src credentials.Sources) []catalogs.Model {
	log := logging.FromContext(ctx).With().
		Str("provider", string(a.provider.ID)).
		Logger()

	if a.provider.Credential != catalogs.CredentialKindKeyPair {
		// Blob providers have no listing endpoint; the static list is
		// the catalog.
		return a.StaticModels()
	}

	creds, err := credentials.Resolve(a.provider, src)
	if err != nil {
		log.Debug().Err(err).Msg("credentials unresolved, using fallback catalog")
		return a.fallback()
	}

	payload, ok := a.fetchModelPayload(ctx, &log, creds)
	if !ok {
		return a.fallback()
	}

	entries, ok := extractModelList(payload)
	if !ok {
		log.Debug().Msg("no model sequence found in response, using static catalog")
		return a.StaticModels()
	}

	models := a.normalize(entries)
	if len(models) == 0 {
		log.Debug().Msg("no chat-capable models after normalization, using static catalog")
		return a.StaticModels()
	}
	return models
}

// fallback returns what discovery degrades to when credentials are missing
// or no endpoint candidate succeeds.
func (a *Adapter) fallback() []catalogs.Model {
	if a.provider.Fallback == catalogs.FallbackEmpty {
		return []catalogs.Model{}
	}
	return a.StaticModels()
}

// modelPaths returns the candidate path suffixes for this provider.
func (a *Adapter) modelPaths() []string {
	if len(a.provider.ModelPaths) > 0 {
		return a.provider.ModelPaths
	}
	return defaultModelPaths
}

// fetchModelPayload tries each candidate endpoint in order and returns the
// first parseable JSON body. Candidates are attempted sequentially to
// completion; a 401 or 403 on the Bearer attempt triggers exactly one retry
// against the same URL with the x-api-key header instead.
func (a *Adapter) fetchModelPayload(ctx context.Context, log *zerolog.Logger, creds credentials.Resolved) (any, bool) {
	base := strings.TrimSuffix(creds.BaseURL, "/")

	for _, suffix := range a.modelPaths() {
		url := base + suffix

		resp, err := a.transport.Get(ctx, url, &transport.BearerAuth{}, creds.APIKey)
		if err != nil {
			log.Debug().Err(err).Str("url", url).Msg("candidate request failed")
			continue
		}

		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			transport.Drain(resp)
			resp, err = a.transport.Get(ctx, url, &transport.HeaderAuth{Header: transport.APIKeyHeader}, creds.APIKey)
			if err != nil {
				log.Debug().Err(err).Str("url", url).Msg("x-api-key retry failed")
				continue
			}
		}

		var payload any
		if err := transport.DecodeResponse(resp, &payload); err != nil {
			log.Debug().Err(err).Str("url", url).Msg("candidate response unusable")
			continue
		}

		log.Debug().Str("url", url).Msg("model list fetched")
		return payload, true
	}

	log.Warn().Str("base_url", base).Msg("all model endpoint candidates failed")
	return nil, false
}

// normalize filters raw entries to chat-capable models, maps them to
// catalog records, and deduplicates by name, first occurrence wins.
func (a *Adapter) normalize(entries []map[string]any) []catalogs.Model {
	models := make([]catalogs.Model, 0, len(entries))
	for _, entry := range entries {
		if !chatCapable(entry) {
			continue
		}
		model, ok := a.mapEntry(entry)
		if !ok {
			continue
		}
		models = append(models, model)
	}
	return catalogs.DedupeModels(models)
}
