package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamewell/gamewell-backend/internal/middleware"
	pkgerrors "github.com/gamewell/gamewell-backend/internal/pkg/errors"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/services"
)

type SessionHandler struct {
	log        *logger.Logger
	sessionSvc services.SessionService
}

func NewSessionHandler(baseLog *logger.Logger, sessionSvc services.SessionService) *SessionHandler {
	return &SessionHandler{
		log:        baseLog.With("handler", "SessionHandler"),
		sessionSvc: sessionSvc,
	}
}

// POST /api/sessions
func (h *SessionHandler) Log(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	var input services.GameSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	session, err := h.sessionSvc.LogSession(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidArgument) {
			RespondError(c, http.StatusBadRequest, "invalid_argument", err)
			return
		}
		h.log.Error("Failed to log game session", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "log_failed", err)
		return
	}
	RespondCreated(c, session)
}

// GET /api/sessions
func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	sessions, err := h.sessionSvc.ListSessions(c.Request.Context(), userID, 100)
	if err != nil {
		h.log.Error("Failed to list game sessions", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, sessions)
}
