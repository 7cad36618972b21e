package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "database/accounts.json.enc", cfg.Store.Path)
	assert.Empty(t, cfg.Store.Passphrase)
	assert.False(t, cfg.Matching.CaseSensitive)
	assert.Equal(t, 1000, cfg.History.Limit)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("SNAPLEDGER_LOG_LEVEL", "debug")
	t.Setenv("SNAPLEDGER_STORE_PATH", "/tmp/accounts.enc")
	t.Setenv("SNAPLEDGER_PASSPHRASE", "hunter2")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/accounts.enc", cfg.Store.Path)
	assert.Equal(t, "hunter2", cfg.Store.Passphrase)
}

func TestInitializeConfigRejectsBadLevel(t *testing.T) {
	t.Setenv("SNAPLEDGER_LOG_LEVEL", "verbose")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Store.Path = "accounts.json.enc"
		cfg.History.Limit = 1000
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateConfig(valid()))
	})

	t.Run("bad format", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Format = "xml"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("empty store path", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Path = ""
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("zero history limit", func(t *testing.T) {
		cfg := valid()
		cfg.History.Limit = 0
		assert.Error(t, validateConfig(cfg))
	})
}
