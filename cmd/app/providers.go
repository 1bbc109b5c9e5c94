package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/omx-assistant/internal/domain/auth"
	"github.com/yanqian/omx-assistant/internal/domain/conversation"
	"github.com/yanqian/omx-assistant/internal/domain/faq"
	"github.com/yanqian/omx-assistant/internal/domain/language"
	"github.com/yanqian/omx-assistant/internal/infra/catalogsrc"
	"github.com/yanqian/omx-assistant/internal/infra/config"
	"github.com/yanqian/omx-assistant/internal/infra/faqstore"
	"github.com/yanqian/omx-assistant/internal/infra/sessionstore"
	httpiface "github.com/yanqian/omx-assistant/internal/interface/http"
	"github.com/yanqian/omx-assistant/internal/interface/ws"
)

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		MatchThreshold:     cfg.FAQ.MatchThreshold,
		TopRecommendations: cfg.FAQ.TopRecommendations,
	}
}

func provideConversationConfig(cfg *config.Config) conversation.Config {
	debounce := cfg.Conversation.Debounce
	if debounce == 0 {
		// a configured zero turns the debounce off
		debounce = conversation.NoDebounce
	}
	return conversation.Config{
		Debounce:     debounce,
		HistoryLimit: cfg.Conversation.HistoryLimit,
		SessionTTL:   cfg.Conversation.SessionTTL,
		Suggestions: conversation.Suggestions{
			English: cfg.Conversation.Suggestions.English,
			Hindi:   cfg.Conversation.Suggestions.Hindi,
		},
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{Secret: cfg.Admin.JWTSecret}
}

func provideCatalogSource(cfg *config.Config, logger *slog.Logger) (faq.CatalogSource, error) {
	catalog := cfg.FAQ.Catalog
	switch catalog.Source {
	case config.CatalogSourceFile:
		return catalogsrc.NewFileSource(catalog.Path)
	case config.CatalogSourceObject:
		return catalogsrc.NewObjectSource(catalogsrc.ObjectConfig{
			Endpoint:  catalog.Object.Endpoint,
			AccessKey: catalog.Object.AccessKey,
			SecretKey: catalog.Object.SecretKey,
			Bucket:    catalog.Object.Bucket,
			Region:    catalog.Object.Region,
			Key:       catalog.Object.Key,
		}, logger)
	case config.CatalogSourcePostgres:
		pool, err := newPostgresPool(catalog.Postgres)
		if err != nil {
			logger.Error("faq postgres catalog unavailable, using embedded catalog", "error", err)
			return catalogsrc.NewEmbeddedSource(), nil
		}
		logger.Info("faq postgres catalog enabled")
		return catalogsrc.NewPostgresSource(pool), nil
	default:
		logger.Info("using embedded faq catalog")
		return catalogsrc.NewEmbeddedSource(), nil
	}
}

func newPostgresPool(cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.DSN))
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func provideFAQStore() faq.Store {
	return faqstore.NewMemoryStore()
}

func provideDetector() *language.Detector {
	return language.NewDetector()
}

func provideSessionStore(cfg *config.Config, logger *slog.Logger) conversation.SessionStore {
	if cfg.Conversation.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Conversation.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory sessions", "error", err)
			return sessionstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory sessions", "error", err)
			return sessionstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory sessions", "error", err)
			client.Close()
		} else {
			logger.Info("valkey session store enabled", "addr", cfg.Conversation.Valkey.Addr)
			return sessionstore.NewValkeyStore(client, cfg.Conversation.Valkey.Prefix)
		}
	}
	return sessionstore.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(addr, "://") {
		opt, err = valkey.ParseURL(addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideConversationService(cfg conversation.Config, faqSvc faq.Service, store conversation.SessionStore, hub *ws.Hub, logger *slog.Logger) (conversation.Service, error) {
	return conversation.NewService(cfg, faqSvc, store, logger, conversation.WithPublisher(hub))
}

func provideHandler(cfg *config.Config, faqSvc faq.Service, conversationSvc conversation.Service, hub *ws.Hub, logger *slog.Logger) *httpiface.Handler {
	return httpiface.NewHandler(faqSvc, conversationSvc, hub, cfg.HTTP.AllowedOrigins, logger)
}
