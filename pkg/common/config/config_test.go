package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fystack/nodit-kaia/pkg/common/constant"
	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api_key: "abc"
network: kairos
base_url: "https://example.com"
node_url: "https://node.example.com"
timeout: 5s
log_level: debug
headers:
  X-Trace: "1"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, enum.NetworkKairos, cfg.Network)
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, "https://node.example.com", cfg.NodeURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "1", cfg.Headers["X-Trace"])
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`api_key: "abc"`))
	require.NoError(t, err)

	assert.Equal(t, enum.NetworkMainnet, cfg.Network)
	assert.Equal(t, constant.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestApplyDefaultsKeepsSetFields(t *testing.T) {
	cfg := &Config{APIKey: "abc", Network: enum.NetworkKairos, Timeout: time.Second}
	require.NoError(t, cfg.ApplyDefaults())

	assert.Equal(t, enum.NetworkKairos, cfg.Network)
	assert.Equal(t, constant.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Empty(t, cfg.NodeURL)
}

func TestParseExpandsEnv(t *testing.T) {
	t.Setenv("NODIT_TEST_KEY", "from-env")

	cfg, err := Parse([]byte(`api_key: "${NODIT_TEST_KEY}"`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)

	cfg, err = Parse([]byte(`api_key_env: NODIT_TEST_KEY`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte(`network: mainnet`))
	require.Error(t, err, "missing api key")

	_, err = Parse([]byte("api_key: abc\nlog_level: loud"))
	require.Error(t, err)

	_, err = Parse([]byte("api_key: abc\nbase_url: not a url"))
	require.Error(t, err)

	_, err = Parse([]byte("api_key: [unterminated"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
