// Package nodit is the entry point of the SDK: it builds the transports for a
// network and exposes every endpoint group of the Nodit Kaia API.
//
//	client, err := nodit.New(apiKey, nodit.WithNetwork(enum.NetworkKairos))
//	if err != nil {
//		return err
//	}
//	resp, err := client.Token.GetTokenPricesByContracts(ctx, []string{addr}, "USD")
//
// A Client is safe for concurrent use.
package nodit

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fystack/nodit-kaia/pkg/blockchain"
	"github.com/fystack/nodit-kaia/pkg/common/config"
	"github.com/fystack/nodit-kaia/pkg/common/constant"
	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/nft"
	"github.com/fystack/nodit-kaia/pkg/node"
	"github.com/fystack/nodit-kaia/pkg/rpc"
	"github.com/fystack/nodit-kaia/pkg/statistics"
	"github.com/fystack/nodit-kaia/pkg/token"
	"github.com/fystack/nodit-kaia/pkg/webhook"
)

var ErrMissingAPIKey = errors.New("api key is required")

type Client struct {
	NFT        *nft.Service
	Token      *token.Service
	Statistics *statistics.Service
	Blockchain *blockchain.Service
	Node       *node.Client
	Webhook    *webhook.Service

	network enum.Network
	api     *rpc.Client
	node    *rpc.NodeClient
}

func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	o := &clientOptions{
		network: enum.NetworkMainnet,
		baseURL: constant.DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.network == "" {
		o.network = enum.NetworkMainnet
	}
	if o.baseURL == "" {
		o.baseURL = constant.DefaultBaseURL
	}
	if o.nodeURL == "" {
		o.nodeURL = NodeURL(o.network)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	auth := &rpc.AuthConfig{APIKey: apiKey, Headers: o.headers}
	api := rpc.NewClient(o.baseURL, constant.ChainKaia, o.network.String(), auth, o.httpClient, o.logger)
	nodeClient := rpc.NewNodeClient(o.nodeURL, auth, o.httpClient, o.logger)

	o.logger.Debug("nodit client ready", "network", o.network, "api", api.URL(), "node", o.nodeURL)

	return &Client{
		NFT:        nft.NewService(api),
		Token:      token.NewService(api),
		Statistics: statistics.NewService(api),
		Blockchain: blockchain.NewService(api),
		Node:       node.NewClient(nodeClient),
		Webhook:    webhook.NewService(api),
		network:    o.network,
		api:        api,
		node:       nodeClient,
	}, nil
}

// NewFromConfig builds a client from a loaded config file. Extra options are
// applied after the ones derived from cfg.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Client, error) {
	base := []Option{
		WithNetwork(cfg.Network),
		WithBaseURL(cfg.BaseURL),
		WithNodeURL(cfg.NodeURL),
		WithHeaders(cfg.Headers),
		WithLogger(logger),
	}
	if cfg.Timeout > 0 {
		base = append(base, WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	return New(cfg.APIKey, append(base, opts...)...)
}

func (c *Client) Network() enum.Network { return c.network }

// APIURL returns the versioned indexing API root in use.
func (c *Client) APIURL() string { return c.api.URL() }

// NodeURL returns the JSON-RPC endpoint in use.
func (c *Client) NodeURL() string { return c.node.GetURL() }
