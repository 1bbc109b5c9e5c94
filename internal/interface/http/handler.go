package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/omx-assistant/internal/domain/conversation"
	"github.com/yanqian/omx-assistant/internal/domain/faq"
	"github.com/yanqian/omx-assistant/internal/interface/ws"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	faqSvc          faq.Service
	conversationSvc conversation.Service
	hub             *ws.Hub
	allowedOrigins  []string
	logger          *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, conversationSvc conversation.Service, hub *ws.Hub, allowedOrigins []string, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc:          faqSvc,
		conversationSvc: conversationSvc,
		hub:             hub,
		allowedOrigins:  allowedOrigins,
		logger:          logger.With("component", "http.handler"),
	}
}

type detectRequest struct {
	Text string `json:"text"`
}

// DetectLanguage classifies free text as English or Hindi.
func (h *Handler) DetectLanguage(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	tag := h.faqSvc.Detect(req.Text)
	c.JSON(http.StatusOK, gin.H{"language": tag, "label": tag.Label()})
}

// AnswerFAQ resolves a question against the catalog. It never fails for well-formed JSON.
func (h *Handler) AnswerFAQ(c *gin.Context) {
	var req faq.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, h.faqSvc.Answer(c.Request.Context(), req))
}

// ListEntries returns the active catalog in catalog order.
func (h *Handler) ListEntries(c *gin.Context) {
	entries := h.faqSvc.Entries(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// TrendingFAQ returns the most frequently matched catalog questions.
func (h *Handler) TrendingFAQ(c *gin.Context) {
	items, err := h.faqSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err, "faq_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// UnansweredFAQ returns the most frequent questions that fell back.
func (h *Handler) UnansweredFAQ(c *gin.Context) {
	items, err := h.faqSvc.Unanswered(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err, "faq_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"queries": items})
}

// Suggestions returns the quick questions per language.
func (h *Handler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.conversationSvc.Suggestions())
}

// ReloadCatalog re-reads the catalog source.
func (h *Handler) ReloadCatalog(c *gin.Context) {
	count, err := h.faqSvc.Reload(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err, "reload_failed"))
		return
	}
	subject := ""
	if claims, ok := getClaims(c); ok {
		subject = claims.Subject
	}
	h.logger.Info("catalog reload requested", "subject", subject, "entries", count)
	c.JSON(http.StatusOK, gin.H{"entries": count})
}

// Health reports liveness along with the catalog size.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "catalogEntries": len(h.faqSvc.Entries(c.Request.Context()))})
}
