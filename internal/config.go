package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the GhostBank wallet configuration
type Config struct {
	// InitialBalances seeds the session ledger, currency code -> amount
	InitialBalances map[string]string `mapstructure:"initial_balances"`

	// Rates holds the static rate table, "FROM-TO" -> rate
	Rates map[string]string `mapstructure:"rates"`

	// StageDelay is the pause between lifecycle stages, e.g. "700ms"
	StageDelay string `mapstructure:"stage_delay"`

	// Telemetry configures the cosmetic circuit rotation
	Telemetry struct {
		Interval string   `mapstructure:"interval"` // e.g. "8s"
		Nodes    []string `mapstructure:"nodes"`
	} `mapstructure:"telemetry"`

	// LogDir is where session logs are written
	LogDir string `mapstructure:"log_dir"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// LoadConfig loads the configuration from file and environment
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaultConfig(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/ghostbank/")
		v.SetConfigName("config")
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults carry a full demo session
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("GHOSTBANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// StageDelayDuration parses the configured stage delay, falling back to
// the default pacing on a bad value.
func (c *Config) StageDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.StageDelay)
	if err != nil || d < 0 {
		return 700 * time.Millisecond
	}
	return d
}

// TelemetryInterval parses the circuit rotation interval
func (c *Config) TelemetryInterval() time.Duration {
	d, err := time.ParseDuration(c.Telemetry.Interval)
	if err != nil || d <= 0 {
		return 8 * time.Second
	}
	return d
}

func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("initial_balances", map[string]string{
		"BRL":   "28450.00",
		"USD":   "4120.50",
		"BTC":   "0.12",
		"XMR":   "124.0",
		"GHOST": "50000.00",
		"USDT":  "1250.00",
	})

	v.SetDefault("rates", map[string]string{
		"BRL-USD": "0.1824",
		"USD-BRL": "5.4820",
		"BRL-BTC": "0.0000028",
		"BTC-BRL": "357142.85",
		"USD-BTC": "0.000015",
		"BTC-USD": "66666.66",
		"XMR-USD": "164.20",
		"USD-XMR": "0.0060",
		"BRL-XMR": "0.0031",
		"XMR-BRL": "322.58",
	})

	v.SetDefault("stage_delay", "700ms")
	v.SetDefault("telemetry.interval", "8s")
	v.SetDefault("telemetry.nodes", []string{
		"Amsterdam_NL_88",
		"Reykjavik_IS_12",
		"Zurich_CH_44",
		"Toronto_CA_09",
		"Lagos_NG_22",
	})
	v.SetDefault("log_dir", "logs")
	v.SetDefault("debug", false)
}
