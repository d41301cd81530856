package tasksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the taskvault service. It handles identity
// minting and health checks; everything request-scoped to a caller lives on
// Caller.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewIdentity mints a fresh principal and returns a Caller bound to it.
func (c *SDKClient) NewIdentity(ctx context.Context) (*Caller, error) {
	var resp IdentityResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/identity", "", nil, &resp); err != nil {
		return nil, err
	}

	return &Caller{
		client:   c,
		identity: resp.Identity,
		token:    resp.Token,
	}, nil
}

// AnonymousCaller returns a Caller that sends no identity token and so runs
// as the shared anonymous principal.
func (c *SDKClient) AnonymousCaller() *Caller {
	return &Caller{client: c}
}

// CallerFromToken rebinds a previously minted identity token, e.g. one
// stored by a CLI between runs.
func (c *SDKClient) CallerFromToken(identity, token string) *Caller {
	return &Caller{client: c, identity: identity, token: token}
}

// Livez checks the liveness endpoint.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Readyz checks the readiness endpoint.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
