package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamewell/gamewell-backend/internal/middleware"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/services"
	"github.com/gamewell/gamewell-backend/internal/types"
)

type MoodHandler struct {
	log      *logger.Logger
	moodSvc  services.MoodService
	analyzer services.MoodAnalysisService
}

func NewMoodHandler(baseLog *logger.Logger, moodSvc services.MoodService, analyzer services.MoodAnalysisService) *MoodHandler {
	return &MoodHandler{
		log:      baseLog.With("handler", "MoodHandler"),
		moodSvc:  moodSvc,
		analyzer: analyzer,
	}
}

// POST /api/moods
func (h *MoodHandler) CreateEntry(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	var input services.MoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	entry, err := h.moodSvc.CreateEntry(c.Request.Context(), userID, input)
	if err != nil {
		h.log.Error("Failed to create mood entry", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "create_failed", err)
		return
	}
	RespondCreated(c, entry)
}

// GET /api/moods
func (h *MoodHandler) ListEntries(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	entries, err := h.moodSvc.ListEntries(c.Request.Context(), userID, 50)
	if err != nil {
		h.log.Error("Failed to list mood entries", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, entries)
}

type moodAnalysisRequest struct {
	Text string `json:"text"`
}

// POST /api/ai/mood-analysis
// Text analysis never fails; bad moods and empty text both produce a usable
// (possibly neutral) analysis.
func (h *MoodHandler) AnalyzeText(c *gin.Context) {
	var req moodAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	RespondOK(c, h.analyzer.AnalyzeMoodFromText(req.Text))
}

// POST /api/ai/mood-insights
func (h *MoodHandler) SliderInsights(c *gin.Context) {
	var sliders types.MoodSliders
	if err := c.ShouldBindJSON(&sliders); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	RespondOK(c, h.analyzer.AnalyzeMoodFromSliders(sliders))
}
