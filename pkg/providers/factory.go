package providers

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	openai "github.com/sashabaranov/go-openai"

	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/credentials"
	"github.com/mepankajsingh/modelmap/pkg/errors"
)

// Handle is an inert, provider-bound model client. Construction validates
// credentials and binds the endpoint, key, and model; invocation happens
// elsewhere.
type Handle interface {
	// Provider returns the owning provider's ID.
	Provider() string

	// Model returns the bound model identifier.
	Model() string
}

// InstanceOptions configures ModelInstance.
type InstanceOptions struct {
	Model   string
	Sources credentials.Sources
}

// GatewayHandle is a handle for OpenAI-compatible gateways.
type GatewayHandle struct {
	provider string
	model    string
	baseURL  string
	client   *openai.Client
}

// Provider implements Handle.
func (h *GatewayHandle) Provider() string { return h.provider }

// Model implements Handle.
func (h *GatewayHandle) Model() string { return h.model }

// BaseURL returns the resolved endpoint the handle is bound to.
func (h *GatewayHandle) BaseURL() string { return h.baseURL }

// Client returns the underlying chat client for the invocation layer.
func (h *GatewayHandle) Client() *openai.Client { return h.client }

// BedrockHandle is a handle for the Bedrock runtime.
type BedrockHandle struct {
	provider string
	model    string
	region   string
	client   *bedrockruntime.Client
}

// Provider implements Handle.
func (h *BedrockHandle) Provider() string { return h.provider }

// Model implements Handle.
func (h *BedrockHandle) Model() string { return h.model }

// Region returns the region the handle is bound to.
func (h *BedrockHandle) Region() string { return h.region }

// Client returns the underlying runtime client for the invocation layer.
func (h *BedrockHandle) Client() *bedrockruntime.Client { return h.client }

// ModelInstance resolves credentials and constructs a client handle bound
// to the requested model. Missing or malformed credentials surface as a
// *errors.ConfigError naming the attempted sources; construction performs
// no network I/O.
func (a *Adapter) ModelInstance(opts InstanceOptions) (Handle, error) {
	if opts.Model == "" {
		return nil, &errors.ValidationError{Field: "model", Message: "must not be empty"}
	}

	switch a.provider.Credential {
	case catalogs.CredentialKindBlob:
		return a.bedrockInstance(opts)
	default:
		return a.gatewayInstance(opts)
	}
}

// gatewayInstance builds an OpenAI-compatible client from a resolved
// (baseUrl, apiKey) pair.
func (a *Adapter) gatewayInstance(opts InstanceOptions) (Handle, error) {
	creds, err := credentials.Resolve(a.provider, opts.Sources)
	if err != nil {
		return nil, err
	}

	cfg := openai.DefaultConfig(creds.APIKey)
	cfg.BaseURL = creds.BaseURL

	return &GatewayHandle{
		provider: string(a.provider.ID),
		model:    opts.Model,
		baseURL:  creds.BaseURL,
		client:   openai.NewClientWithConfig(cfg),
	}, nil
}

// bedrockInstance builds a Bedrock runtime client from the parsed blob
// credential. Static credentials only; no default-chain lookups that could
// touch the network at construction time.
func (a *Adapter) bedrockInstance(opts InstanceOptions) (Handle, error) {
	blob, err := credentials.ResolveBlob(a.provider, opts.Sources)
	if err != nil {
		return nil, err
	}

	cfg := aws.Config{
		Region: blob.Region,
		Credentials: awscredentials.NewStaticCredentialsProvider(
			blob.AccessKeyID,
			blob.SecretAccessKey,
			blob.SessionToken,
		),
	}

	return &BedrockHandle{
		provider: string(a.provider.ID),
		model:    opts.Model,
		region:   blob.Region,
		client:   bedrockruntime.NewFromConfig(cfg),
	}, nil
}
