package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "empty.yaml"))
	require.NoError(t, os.WriteFile(os.Getenv("CONFIG_PATH"), []byte("{}\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 0.4, cfg.FAQ.MatchThreshold)
	require.Equal(t, CatalogSourceEmbedded, cfg.FAQ.Catalog.Source)
	require.Equal(t, time.Second, cfg.Conversation.Debounce)
	require.Equal(t, 10, cfg.Conversation.HistoryLimit)
	require.Len(t, cfg.Conversation.Suggestions.English, 3)
	require.Len(t, cfg.Conversation.Suggestions.Hindi, 3)
	require.Empty(t, cfg.Admin.JWTSecret)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  allowedOrigins: ["https://omx.example"]
faq:
  matchThreshold: 0.5
  catalog:
    source: file
    path: configs/catalog.yaml
conversation:
  debounce: 2s
  sessionTtl: 10m
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CONVERSATION_HISTORY_LIMIT", "6")
	t.Setenv("SESSION_VALKEY_ENABLED", "true")
	t.Setenv("SESSION_VALKEY_ADDR", "localhost:6379")
	t.Setenv("ADMIN_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 0.5, cfg.FAQ.MatchThreshold)
	require.Equal(t, CatalogSourceFile, cfg.FAQ.Catalog.Source)
	require.Equal(t, "configs/catalog.yaml", cfg.FAQ.Catalog.Path)
	require.Equal(t, 2*time.Second, cfg.Conversation.Debounce)
	require.Equal(t, 10*time.Minute, cfg.Conversation.SessionTTL)
	require.Equal(t, 6, cfg.Conversation.HistoryLimit)
	require.True(t, cfg.Conversation.Valkey.Enabled)
	require.Equal(t, "localhost:6379", cfg.Conversation.Valkey.Addr)
	require.Equal(t, "s3cret", cfg.Admin.JWTSecret)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "threshold too high", mutate: func(c *Config) { c.FAQ.MatchThreshold = 1 }, errMsg: "faq.matchThreshold"},
		{name: "unknown catalog source", mutate: func(c *Config) { c.FAQ.Catalog.Source = "ftp" }, errMsg: "not supported"},
		{name: "file without path", mutate: func(c *Config) { c.FAQ.Catalog.Source = CatalogSourceFile }, errMsg: "faq.catalog.path"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.FAQ.Catalog.Source = CatalogSourcePostgres }, errMsg: "dsn"},
		{name: "object without bucket", mutate: func(c *Config) {
			c.FAQ.Catalog.Source = CatalogSourceObject
			c.FAQ.Catalog.Object.Endpoint = "localhost:9000"
		}, errMsg: "faq.catalog.object"},
		{name: "history limit", mutate: func(c *Config) { c.Conversation.HistoryLimit = 0 }, errMsg: "historyLimit"},
		{name: "negative debounce", mutate: func(c *Config) { c.Conversation.Debounce = -time.Second }, errMsg: "debounce"},
		{name: "valkey without addr", mutate: func(c *Config) { c.Conversation.Valkey.Enabled = true }, errMsg: "valkey.addr"},
		{name: "metrics path", mutate: func(c *Config) { c.Metrics.Path = "metrics" }, errMsg: "metrics.path"},
		{name: "rate limit burst", mutate: func(c *Config) { c.HTTP.RateLimit.Burst = 0 }, errMsg: "burst"},
	}

	require.NoError(t, defaultConfig().Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
