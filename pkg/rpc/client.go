package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the indexing API. Every path is prefixed with /v1/<chain>/<network>.
type Client struct {
	httpClient *http.Client
	baseURL    string
	chain      string
	network    string
	auth       *AuthConfig
	logger     *slog.Logger
}

func NewClient(baseURL, chain, network string, auth *AuthConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		chain:      chain,
		network:    network,
		auth:       auth,
		logger:     logger,
	}
}

func (c *Client) Post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, payload, nil)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, query)
}

func (c *Client) Patch(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPatch, path, payload, nil)
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do sends one request to the indexing API and returns the body verbatim.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	endpoint := c.URL() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return do(ctx, c.httpClient, c.logger, c.auth, method, endpoint, body)
}

// URL returns the versioned API root, e.g. https://web3.nodit.io/v1/kaia/mainnet.
func (c *Client) URL() string {
	return fmt.Sprintf("%s/v1/%s/%s", c.baseURL, c.chain, c.network)
}

// NodeClient posts JSON-RPC envelopes to a node URL, used as-is.
type NodeClient struct {
	httpClient *http.Client
	url        string
	auth       *AuthConfig
	logger     *slog.Logger
}

func NewNodeClient(url string, auth *AuthConfig, httpClient *http.Client, logger *slog.Logger) *NodeClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NodeClient{
		httpClient: httpClient,
		url:        url,
		auth:       auth,
		logger:     logger,
	}
}

// CallRPC sends {id, jsonrpc, method, params} and returns the whole response body.
// A nil params is left out of the envelope.
func (c *NodeClient) CallRPC(ctx context.Context, method string, params any) (json.RawMessage, error) {
	req := &RPCRequest{ID: RequestID, JSONRPC: JSONRPCVersion, Method: method, Params: params}
	return do(ctx, c.httpClient, c.logger, c.auth, http.MethodPost, c.url, req)
}

func (c *NodeClient) GetURL() string { return c.url }

func do(
	ctx context.Context,
	httpClient *http.Client,
	logger *slog.Logger,
	auth *AuthConfig,
	method, endpoint string,
	body any,
) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setHeaders(req, auth)

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		logger.Debug("HTTP request failed", "method", method, "url", endpoint, "elapsed", time.Since(start), "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request completed", "method", method, "url", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: data}
	}
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return json.RawMessage(data), nil
}
