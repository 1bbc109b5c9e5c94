package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/omx-assistant/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, tokens TokenValidator) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(newIPRateLimiter(cfg.HTTP.RateLimit, time.Now), handler.logger))
	{
		api.POST("/language/detect", handler.DetectLanguage)

		api.POST("/faq/answer", handler.AnswerFAQ)
		api.GET("/faq/entries", handler.ListEntries)
		api.GET("/faq/trending", handler.TrendingFAQ)
		api.GET("/faq/unanswered", handler.UnansweredFAQ)
		api.GET("/faq/suggestions", handler.Suggestions)

		api.POST("/sessions", handler.CreateSession)
		api.GET("/sessions/:id", handler.GetSession)
		api.DELETE("/sessions/:id", handler.DeleteSession)
		api.POST("/sessions/:id/ask", handler.Ask)
		api.GET("/sessions/:id/ws", handler.StreamSession)
	}

	if tokens != nil && tokens.Enabled() {
		admin := api.Group("/admin", adminMiddleware(tokens))
		admin.POST("/catalog/reload", handler.ReloadCatalog)
	} else {
		handler.logger.Info("admin endpoints disabled: no jwt secret configured")
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
