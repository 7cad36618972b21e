// Package config provides Viper-based hierarchical configuration management:
// defaults, then an optional YAML config file, then SNAPLEDGER_* environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Store struct {
		Path string `mapstructure:"path" yaml:"path"`
		// Passphrase is only ever read from the environment and never
		// serialized.
		Passphrase string `mapstructure:"passphrase" yaml:"-"`
	} `mapstructure:"store" yaml:"store"`

	Matching struct {
		CaseSensitive bool `mapstructure:"case_sensitive" yaml:"case_sensitive"`
	} `mapstructure:"matching" yaml:"matching"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	History struct {
		Limit int `mapstructure:"limit" yaml:"limit"`
	} `mapstructure:"history" yaml:"history"`
}

// InitializeConfig loads the configuration with hierarchical precedence.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.snapledger")
	v.AddConfigPath(".snapledger")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SNAPLEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The passphrase comes from a dedicated, unprefixed variable so it can be
	// shared with deployment tooling.
	if err := v.BindEnv("store.passphrase", "SNAPLEDGER_PASSPHRASE"); err != nil {
		fmt.Printf("Warning: failed to bind SNAPLEDGER_PASSPHRASE environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("store.path", "database/accounts.json.enc")
	v.SetDefault("store.passphrase", "")

	v.SetDefault("matching.case_sensitive", false)

	v.SetDefault("rules.file", "")

	v.SetDefault("history.limit", 1000)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Store.Path == "" {
		return fmt.Errorf("store.path cannot be empty")
	}

	if config.History.Limit < 1 {
		return fmt.Errorf("history.limit must be at least 1, got: %d", config.History.Limit)
	}

	return nil
}
