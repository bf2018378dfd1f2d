package nodit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fystack/nodit-kaia/pkg/common/config"
	"github.com/fystack/nodit-kaia/pkg/common/constant"
	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/rpc"
	"github.com/fystack/nodit-kaia/pkg/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNew_NetworkSelectsNodeHost(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		wantNode string
		wantAPI  string
	}{
		{"default", nil, constant.KaiaMainnetNodeURL, "https://web3.nodit.io/v1/kaia/mainnet"},
		{"mainnet", []Option{WithNetwork(enum.NetworkMainnet)}, constant.KaiaMainnetNodeURL, "https://web3.nodit.io/v1/kaia/mainnet"},
		{"testnet", []Option{WithNetwork(enum.NetworkTestnet)}, constant.KaiaKairosNodeURL, "https://web3.nodit.io/v1/kaia/testnet"},
		{"kairos", []Option{WithNetwork(enum.NetworkKairos)}, constant.KaiaKairosNodeURL, "https://web3.nodit.io/v1/kaia/kairos"},
		{"unknown network", []Option{WithNetwork("devnet")}, constant.KaiaKairosNodeURL, "https://web3.nodit.io/v1/kaia/devnet"},
		{"node override", []Option{WithNodeURL("http://localhost:8551")}, "http://localhost:8551", "https://web3.nodit.io/v1/kaia/mainnet"},
		{"base url override", []Option{WithBaseURL("http://localhost:9000/")}, constant.KaiaMainnetNodeURL, "http://localhost:9000/v1/kaia/mainnet"},
		{"empty base url", []Option{WithBaseURL("")}, constant.KaiaMainnetNodeURL, "https://web3.nodit.io/v1/kaia/mainnet"},
		{"empty network", []Option{WithNetwork("")}, constant.KaiaMainnetNodeURL, "https://web3.nodit.io/v1/kaia/mainnet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("key", tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNode, c.NodeURL())
			assert.Equal(t, tt.wantAPI, c.APIURL())
			assert.NotNil(t, c.NFT)
			assert.NotNil(t, c.Token)
			assert.NotNil(t, c.Statistics)
			assert.NotNil(t, c.Blockchain)
			assert.NotNil(t, c.Node)
			assert.NotNil(t, c.Webhook)
		})
	}
}

type seen struct {
	mu     sync.Mutex
	hits   atomic.Int32
	path   string
	header http.Header
	body   []byte
}

func newTestServer(t *testing.T, status int, reply string) (*httptest.Server, *seen) {
	t.Helper()
	s := &seen{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.path = r.URL.Path
		s.header = r.Header.Clone()
		s.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server, s
}

func TestClient_EndToEnd(t *testing.T) {
	server, got := newTestServer(t, http.StatusOK, `{"items":[{"price":"0.1"}]}`)

	c, err := New("secret", WithBaseURL(server.URL), WithNodeURL(server.URL+"/rpc"), WithNetwork(enum.NetworkKairos))
	require.NoError(t, err)

	resp, err := c.Token.GetTokenPricesByContracts(context.Background(), []string{"0xa"}, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"price":"0.1"}]}`, string(resp))
	assert.Equal(t, "/v1/kaia/kairos/token/getTokenPricesByContracts", got.path)
	assert.Equal(t, "secret", got.header.Get(rpc.HeaderAPIKey))
	assert.JSONEq(t, `{"contractAddresses":["0xa"]}`, string(got.body))

	_, err = c.Node.GetBalance(context.Background(), "0xabc", "")
	require.NoError(t, err)
	assert.Equal(t, "/rpc", got.path)
	assert.JSONEq(t, `{"id":1,"jsonrpc":"2.0","method":"kaia_getBalance","params":["0xabc","latest"]}`, string(got.body))
}

func TestClient_HTTPError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		server, _ := newTestServer(t, status, `{"code":"NOT_FOUND"}`)
		c, err := New("secret", WithBaseURL(server.URL), WithNodeURL(server.URL))
		require.NoError(t, err)

		_, err = c.Statistics.GetAccountStats(context.Background(), "0xa")
		var httpErr *rpc.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, status, httpErr.StatusCode)
		assert.Contains(t, err.Error(), strconv.Itoa(status))

		_, err = c.Node.BlockNumber(context.Background())
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, status, httpErr.StatusCode)
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := New("secret", WithBaseURL(addr), WithNodeURL(addr))
	require.NoError(t, err)

	_, err = c.Blockchain.GetGasPrice(context.Background())
	require.Error(t, err)
	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)
	var httpErr *rpc.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestClient_WebhookValidationSkipsNetwork(t *testing.T) {
	server, got := newTestServer(t, http.StatusOK, `{}`)
	c, err := New("secret", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = c.Webhook.UpdateWebhook(context.Background(), "", webhook.UpdateRequest{})
	assert.ErrorIs(t, err, webhook.ErrMissingWebhookID)
	_, err = c.Webhook.DeleteWebhook(context.Background(), "")
	assert.ErrorIs(t, err, webhook.ErrMissingWebhookID)
	_, err = c.Webhook.GetWebhookHistory(context.Background(), webhook.HistoryParams{})
	assert.ErrorIs(t, err, webhook.ErrMissingSubscriptionID)

	assert.Equal(t, int32(0), got.hits.Load())
}

func TestClient_ConcurrentCalls(t *testing.T) {
	server, got := newTestServer(t, http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":"0x1"}`)
	c, err := New("secret", WithBaseURL(server.URL), WithNodeURL(server.URL))
	require.NoError(t, err)

	const n = 16
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			resp, err := c.Node.BlockNumber(context.Background())
			if err == nil {
				var out string
				err = rpc.DecodeResult(resp, &out)
			}
			errs <- err
		}()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-errs)
	}
	assert.Equal(t, int32(n), got.hits.Load())
}

func TestNewFromConfig(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Trace")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer server.Close()

	cfg := &config.Config{
		APIKey:  "secret",
		Network: enum.NetworkKairos,
		BaseURL: server.URL,
		Headers: map[string]string{"X-Trace": "abc"},
		Timeout: 2 * time.Second,
	}
	c, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.NetworkKairos, c.Network())
	assert.Equal(t, constant.KaiaKairosNodeURL, c.NodeURL())

	_, err = c.Blockchain.IsContract(context.Background(), "0xc")
	require.NoError(t, err)
	assert.Equal(t, "abc", gotHeader)
}

func TestNewFromConfig_UnparsedConfigUsesDefaults(t *testing.T) {
	c, err := NewFromConfig(&config.Config{APIKey: "k", Network: enum.NetworkMainnet}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://web3.nodit.io/v1/kaia/mainnet", c.APIURL())
	assert.Equal(t, constant.KaiaMainnetNodeURL, c.NodeURL())
}
