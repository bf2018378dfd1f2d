package nodit

import (
	"log/slog"
	"net/http"

	"github.com/fystack/nodit-kaia/pkg/common/enum"
)

type clientOptions struct {
	network    enum.Network
	baseURL    string
	nodeURL    string
	httpClient *http.Client
	logger     *slog.Logger
	headers    map[string]string
}

// Option configures client behavior
type Option func(*clientOptions)

// WithNetwork selects the target network. The default is mainnet.
func WithNetwork(network enum.Network) Option {
	return func(o *clientOptions) {
		o.network = network
	}
}

// WithBaseURL overrides the indexing API host.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithNodeURL overrides the node endpoint that would be picked from the network.
func WithNodeURL(nodeURL string) Option {
	return func(o *clientOptions) {
		o.nodeURL = nodeURL
	}
}

// WithHTTPClient sets the http.Client used by both transports.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithHeaders adds headers to every request. The API key header always wins.
func WithHeaders(headers map[string]string) Option {
	return func(o *clientOptions) {
		o.headers = headers
	}
}
