package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/xrpl-commons/xrpapi-go/rpc"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys
const EnvPrefix = "XRPAPI"

// Config holds the CLI settings used to build an XRP-API client
type Config struct {
	Node                    string        `mapstructure:"node"`
	APIVersion              int           `mapstructure:"api_version"`
	APIKey                  string        `mapstructure:"api_key"`
	Timeout                 time.Duration `mapstructure:"timeout"`
	ProbeURL                string        `mapstructure:"probe_url"`
	ProbeTimeout            time.Duration `mapstructure:"probe_timeout"`
	SkipConnectivityCheck   bool          `mapstructure:"skip_connectivity_check"`
	LegacyDestinationTagKey bool          `mapstructure:"legacy_destination_tag_key"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("node", rpc.DefaultNode)
	v.SetDefault("api_version", rpc.DefaultAPIVersion)
	v.SetDefault("api_key", "")
	v.SetDefault("timeout", rpc.DefaultTimeout)
	v.SetDefault("probe_url", rpc.DefaultProbeURL)
	v.SetDefault("probe_timeout", rpc.DefaultProbeTimeout)
	v.SetDefault("skip_connectivity_check", false)
	v.SetDefault("legacy_destination_tag_key", false)
}

// Load reads configuration in priority order:
// 1. Default values
// 2. Configuration file, when path is not empty (any format viper reads)
// 3. Environment variables (XRPAPI_ prefix, e.g. XRPAPI_API_KEY)
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.APIVersion < 1 {
		return fmt.Errorf("api_version must be positive, got %d", c.APIVersion)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe_timeout must be positive, got %s", c.ProbeTimeout)
	}
	return nil
}

// ClientConfig converts the CLI settings into an rpc client configuration
func (c *Config) ClientConfig() *rpc.ClientConfig {
	opts := []rpc.ConfigOpt{
		rpc.WithAPIVersion(c.APIVersion),
		rpc.WithTimeout(c.Timeout),
		rpc.WithProbe(c.ProbeURL, c.ProbeTimeout),
	}
	if c.SkipConnectivityCheck {
		opts = append(opts, rpc.WithoutConnectivityCheck())
	}
	if c.LegacyDestinationTagKey {
		opts = append(opts, rpc.WithLegacyDestinationTagKey())
	}

	return rpc.NewClientConfig(c.Node, opts...)
}
