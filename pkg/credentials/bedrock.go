package credentials

import (
	"encoding/json"

	"github.com/mepankajsingh/modelmap/pkg/errors"
)

// BedrockConfig is the structured credential carried in the Bedrock blob.
type BedrockConfig struct {
	Region          string `json:"region"`
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	SessionToken    string `json:"sessionToken,omitempty"`
}

// ParseBedrockConfig parses the opaque JSON credential blob. Input that is
// not valid JSON fails with "invalid format"; valid JSON missing region,
// accessKeyId, or secretAccessKey fails with "missing required fields".
// sessionToken is carried through only when present and non-empty.
func ParseBedrockConfig(provider, blob string) (BedrockConfig, error) {
	var raw struct {
		Region          string `json:"region"`
		AccessKeyID     string `json:"accessKeyId"`
		SecretAccessKey string `json:"secretAccessKey"`
		SessionToken    string `json:"sessionToken"`
	}

	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return BedrockConfig{}, &errors.ConfigError{
			Provider: provider,
			Message:  "invalid format",
			Err:      err,
		}
	}

	if raw.Region == "" || raw.AccessKeyID == "" || raw.SecretAccessKey == "" {
		return BedrockConfig{}, &errors.ConfigError{
			Provider: provider,
			Message:  "missing required fields",
		}
	}

	cfg := BedrockConfig{
		Region:          raw.Region,
		AccessKeyID:     raw.AccessKeyID,
		SecretAccessKey: raw.SecretAccessKey,
	}
	if raw.SessionToken != "" {
		cfg.SessionToken = raw.SessionToken
	}
	return cfg, nil
}
