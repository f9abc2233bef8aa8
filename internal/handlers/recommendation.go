package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gamewell/gamewell-backend/internal/middleware"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/services"
	"github.com/gamewell/gamewell-backend/internal/types"
)

type RecommendationHandler struct {
	log    *logger.Logger
	recSvc services.RecommendationService
}

func NewRecommendationHandler(baseLog *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		log:    baseLog.With("handler", "RecommendationHandler"),
		recSvc: recSvc,
	}
}

type generateRecommendationsRequest struct {
	Mood  types.MoodSliders `json:"mood"`
	Limit int               `json:"limit"`
}

// POST /api/recommendations/generate
func (h *RecommendationHandler) Generate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req generateRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	recs, err := h.recSvc.GenerateRecommendations(c.Request.Context(), userID, req.Mood, req.Limit)
	if err != nil {
		h.log.Error("Failed to generate recommendations", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "generate_failed", err)
		return
	}
	RespondOK(c, recs)
}

// GET /api/recommendations
func (h *RecommendationHandler) ListRecent(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	recs, err := h.recSvc.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		h.log.Error("Failed to list recommendations", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, recs)
}
