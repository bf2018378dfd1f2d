package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fystack/nodit-kaia/pkg/common/config"
	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/common/logger"
	"github.com/fystack/nodit-kaia/pkg/nodit"
	"github.com/spf13/cobra"
)

const envAPIKey = "NODIT_API_KEY"

type rootFlags struct {
	configPath string
	apiKey     string
	network    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "kaiactl",
		Short:         "Query the Nodit Kaia data and node APIs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "configs/config.yaml", "path to config file")
	cmd.PersistentFlags().StringVar(&flags.apiKey, "api-key", "", "API key (overrides config, default $"+envAPIKey+")")
	cmd.PersistentFlags().StringVar(&flags.network, "network", "", "network: mainnet or kairos (overrides config)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logs")

	cmd.AddCommand(
		newBalanceCmd(flags),
		newBlockCmd(flags),
		newGasPriceCmd(flags),
		newStatsCmd(flags),
		newTokenPricesCmd(flags),
		newWebhooksCmd(flags),
	)
	return cmd
}

// loadConfig reads the config file when present and applies flag overrides on top.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		cfg = &config.Config{APIKey: os.Getenv(envAPIKey)}
		if err := cfg.ApplyDefaults(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("load config %s: %w", flags.configPath, err)
	}

	if flags.apiKey != "" {
		cfg.APIKey = flags.apiKey
	}
	if flags.network != "" {
		cfg.Network = enum.Network(flags.network)
	}
	if flags.debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func newClient(flags *rootFlags) (*nodit.Client, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	log := logger.Init(&logger.Options{Level: logger.ParseLevel(cfg.LogLevel)})
	log.Debug("Config loaded", "network", cfg.Network, "base_url", cfg.BaseURL)

	client, err := nodit.NewFromConfig(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		slog.Warn("response is not JSON, printing as-is", "err", err)
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
