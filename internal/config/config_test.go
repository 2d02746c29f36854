package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
api_key: key-from-file
servers:
  order: https://o-test.ordr.in
  user: https://u-test.ordr.in
session:
  email: jane@example.com
  password: secret
http:
  timeout: 10s
logger:
  level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "key-from-file", cfg.APIKey)
	assert.Equal(t, "https://o-test.ordr.in", cfg.Servers.Order)
	assert.Equal(t, "https://u-test.ordr.in", cfg.Servers.User)
	assert.Equal(t, "jane@example.com", cfg.Session.Email)
	assert.Equal(t, "secret", cfg.Session.Password)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, time.Duration(0), cfg.HTTP.RateInterval)
	assert.Equal(t, 1, cfg.HTTP.RateBurst)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 100, cfg.Logger.MaxSizeMB)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("ORDRIN_API_KEY", "key-from-env")
	t.Setenv("ORDRIN_RATE_INTERVAL", "250ms")

	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", cfg.APIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.RateInterval)
}

func TestLoadFromEnvOnly(t *testing.T) {
	t.Setenv("ORDRIN_API_KEY", "env-key")
	t.Setenv("ORDRIN_ORDER_URL", "https://o.example.com")
	t.Setenv("ORDRIN_USER_URL", "https://u.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "servers:\n  order: not a url\n  user: https://u.example.com\napi_key: k\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Servers.Order")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			APIKey:  "key",
			Servers: Servers{Order: "https://o.example.com", User: "https://u.example.com"},
			HTTP:    HTTP{Timeout: time.Second, RateBurst: 1},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		mutate func(*Config)
		name   string
		field  string
	}{
		{name: "no api key", mutate: func(c *Config) { c.APIKey = "" }, field: "Config.APIKey"},
		{name: "bad user url", mutate: func(c *Config) { c.Servers.User = "u" }, field: "Config.Servers.User"},
		{name: "bad email", mutate: func(c *Config) { c.Session.Email = "jane" }, field: "Config.Session.Email"},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTP.Timeout = 0 }, field: "Config.HTTP.Timeout"},
		{name: "zero burst", mutate: func(c *Config) { c.HTTP.RateBurst = 0 }, field: "Config.HTTP.RateBurst"},
		{name: "bad level", mutate: func(c *Config) { c.Logger.Level = "loud" }, field: "Config.Logger.Level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
