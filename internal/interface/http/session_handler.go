package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/omx-assistant/internal/domain/conversation"
)

// CreateSession opens a new conversation.
func (h *Handler) CreateSession(c *gin.Context) {
	session, err := h.conversationSvc.Create(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err, "session_failed"))
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Ask submits a typed, tapped or transcribed question to a session.
func (h *Handler) Ask(c *gin.Context) {
	var req conversation.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.conversationSvc.Ask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithError(c, domainError(err, "ask_failed"))
		return
	}
	if resp.Skipped {
		c.JSON(http.StatusAccepted, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession returns the session transcript.
func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.conversationSvc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, domainError(err, "session_failed"))
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeleteSession discards the session and its history.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.conversationSvc.Reset(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, domainError(err, "session_failed"))
		return
	}
	c.Status(http.StatusNoContent)
}

// StreamSession upgrades to a websocket that receives every new turn of the session.
func (h *Handler) StreamSession(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.conversationSvc.History(c.Request.Context(), sessionID); err != nil {
		abortWithError(c, domainError(err, "session_failed"))
		return
	}
	h.hub.ServeWs(c.Writer, c.Request, sessionID, originAllowed(h.allowedOrigins))
}
