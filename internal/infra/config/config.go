package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog source kinds.
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
	CatalogSourceObject   = "object"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	FAQ          FAQConfig          `yaml:"faq"`
	Conversation ConversationConfig `yaml:"conversation"`
	Admin        AdminConfig        `yaml:"admin"`
	Metrics      MetricsConfig      `yaml:"metrics"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"` // path prefixes never replayed
}

// FAQConfig controls catalog matching and where the catalog comes from.
type FAQConfig struct {
	MatchThreshold     float64       `yaml:"matchThreshold"`
	TopRecommendations int           `yaml:"topRecommendations"`
	Catalog            CatalogConfig `yaml:"catalog"`
}

// CatalogConfig selects the catalog source.
type CatalogConfig struct {
	Source   string         `yaml:"source"`
	Path     string         `yaml:"path"`
	Postgres PostgresConfig `yaml:"postgres"`
	Object   ObjectConfig   `yaml:"object"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ObjectConfig locates the catalog document in S3-compatible storage.
type ObjectConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Key       string `yaml:"key"`
}

// ConversationConfig controls session behavior.
type ConversationConfig struct {
	Debounce     time.Duration     `yaml:"debounce"`
	HistoryLimit int               `yaml:"historyLimit"`
	SessionTTL   time.Duration     `yaml:"sessionTtl"`
	Suggestions  SuggestionsConfig `yaml:"suggestions"`
	Valkey       ValkeyConfig      `yaml:"valkey"`
}

// SuggestionsConfig lists the quick questions per language.
type SuggestionsConfig struct {
	English []string `yaml:"english"`
	Hindi   []string `yaml:"hindi"`
}

// ValkeyConfig contains connection information for session storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// AdminConfig guards operational endpoints. An empty secret disables them.
type AdminConfig struct {
	JWTSecret string `yaml:"jwtSecret"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("FAQ_MATCH_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FAQ.MatchThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_RECOMMENDATIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.TopRecommendations = parsed
		}
	}
	if v := os.Getenv("FAQ_CATALOG_SOURCE"); v != "" {
		cfg.FAQ.Catalog.Source = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("FAQ_CATALOG_PATH"); v != "" {
		cfg.FAQ.Catalog.Path = v
	}
	if v := os.Getenv("FAQ_POSTGRES_DSN"); v != "" {
		cfg.FAQ.Catalog.Postgres.DSN = v
	}
	if v := os.Getenv("FAQ_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Catalog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Catalog.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_OBJECT_ENDPOINT"); v != "" {
		cfg.FAQ.Catalog.Object.Endpoint = v
	}
	if v := os.Getenv("FAQ_OBJECT_ACCESS_KEY"); v != "" {
		cfg.FAQ.Catalog.Object.AccessKey = v
	}
	if v := os.Getenv("FAQ_OBJECT_SECRET_KEY"); v != "" {
		cfg.FAQ.Catalog.Object.SecretKey = v
	}
	if v := os.Getenv("FAQ_OBJECT_BUCKET"); v != "" {
		cfg.FAQ.Catalog.Object.Bucket = v
	}
	if v := os.Getenv("FAQ_OBJECT_REGION"); v != "" {
		cfg.FAQ.Catalog.Object.Region = v
	}
	if v := os.Getenv("FAQ_OBJECT_KEY"); v != "" {
		cfg.FAQ.Catalog.Object.Key = v
	}
	if v := os.Getenv("CONVERSATION_DEBOUNCE"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Conversation.Debounce = parsed
		}
	}
	if v := os.Getenv("CONVERSATION_HISTORY_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Conversation.HistoryLimit = parsed
		}
	}
	if v := os.Getenv("CONVERSATION_SESSION_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Conversation.SessionTTL = parsed
		}
	}
	if v := os.Getenv("SESSION_VALKEY_ENABLED"); v != "" {
		cfg.Conversation.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("SESSION_VALKEY_ADDR"); v != "" {
		cfg.Conversation.Valkey.Addr = v
	}
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		cfg.Admin.JWTSecret = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/sessions",
					"/api/v1/admin",
				},
			},
		},
		FAQ: FAQConfig{
			MatchThreshold:     0.4,
			TopRecommendations: 10,
			Catalog: CatalogConfig{
				Source: CatalogSourceEmbedded,
				Postgres: PostgresConfig{
					MaxConns: 4,
					MinConns: 0,
				},
			},
		},
		Conversation: ConversationConfig{
			Debounce:     time.Second,
			HistoryLimit: 10,
			SessionTTL:   30 * time.Minute,
			Suggestions: SuggestionsConfig{
				English: []string{"what is omx digital", "what are your business hours", "how can i contact support"},
				Hindi:   []string{"omx digital kya hai", "aapke vyapar ke ghante kya hain", "main support se kaise sampark kar sakta hoon"},
			},
			Valkey: ValkeyConfig{
				Prefix: "omx",
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if c.FAQ.MatchThreshold < 0 || c.FAQ.MatchThreshold >= 1 {
		return errors.New("faq.matchThreshold must be in [0, 1)")
	}
	if c.FAQ.TopRecommendations < 0 {
		return errors.New("faq.topRecommendations cannot be negative")
	}
	if err := c.FAQ.Catalog.validate(); err != nil {
		return err
	}
	if c.Conversation.Debounce < 0 {
		return errors.New("conversation.debounce cannot be negative")
	}
	if c.Conversation.HistoryLimit <= 0 {
		return errors.New("conversation.historyLimit must be positive")
	}
	if c.Conversation.SessionTTL <= 0 {
		return errors.New("conversation.sessionTtl must be positive")
	}
	if c.Conversation.Valkey.Enabled && strings.TrimSpace(c.Conversation.Valkey.Addr) == "" {
		return errors.New("conversation.valkey.addr cannot be empty when valkey sessions are enabled")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("metrics.path must start with /")
	}
	return nil
}

func (c CatalogConfig) validate() error {
	switch c.Source {
	case CatalogSourceEmbedded:
		return nil
	case CatalogSourceFile:
		if strings.TrimSpace(c.Path) == "" {
			return errors.New("faq.catalog.path cannot be empty for file catalogs")
		}
	case CatalogSourcePostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return errors.New("faq.catalog.postgres.dsn cannot be empty for postgres catalogs")
		}
	case CatalogSourceObject:
		if strings.TrimSpace(c.Object.Endpoint) == "" || strings.TrimSpace(c.Object.Bucket) == "" || strings.TrimSpace(c.Object.Key) == "" {
			return errors.New("faq.catalog.object requires endpoint, bucket and key")
		}
	default:
		return fmt.Errorf("faq.catalog.source %q is not supported", c.Source)
	}
	return nil
}
