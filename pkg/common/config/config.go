package config

import (
	"time"

	"github.com/fystack/nodit-kaia/pkg/common/constant"
	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/imdario/mergo"
)

type Config struct {
	APIKey    string            `yaml:"api_key" validate:"required"`
	APIKeyEnv string            `yaml:"api_key_env"`
	Network   enum.Network      `yaml:"network" validate:"required"`
	BaseURL   string            `yaml:"base_url" validate:"required,url"`
	NodeURL   string            `yaml:"node_url" validate:"omitempty,url"`
	Headers   map[string]string `yaml:"headers,omitempty"`
	Timeout   time.Duration     `yaml:"timeout" validate:"gte=0"`
	LogLevel  string            `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

var defaultConfig = Config{
	Network:  enum.NetworkMainnet,
	BaseURL:  constant.DefaultBaseURL,
	LogLevel: "info",
}

// ApplyDefaults fills in every field the file left empty. Values already set are kept.
func (c *Config) ApplyDefaults() error {
	return mergo.Merge(c, defaultConfig)
}
