package rpc

import (
	"context"
	"encoding/json"
	"net/url"
)

// Requester issues indexing API calls. Paths are relative to /v1/<chain>/<network>.
type Requester interface {
	Post(ctx context.Context, path string, payload any) (json.RawMessage, error)
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Patch(ctx context.Context, path string, payload any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}

// Caller issues JSON-RPC calls against a node endpoint.
type Caller interface {
	CallRPC(ctx context.Context, method string, params any) (json.RawMessage, error)
}

var (
	_ Requester = (*Client)(nil)
	_ Caller    = (*NodeClient)(nil)
)
