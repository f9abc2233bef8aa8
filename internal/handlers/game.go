package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgerrors "github.com/gamewell/gamewell-backend/internal/pkg/errors"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/services"
)

type GameHandler struct {
	log     *logger.Logger
	gameSvc services.GameService
}

func NewGameHandler(baseLog *logger.Logger, gameSvc services.GameService) *GameHandler {
	return &GameHandler{
		log:     baseLog.With("handler", "GameHandler"),
		gameSvc: gameSvc,
	}
}

// GET /api/games
func (h *GameHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	games, err := h.gameSvc.ListGames(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("Failed to list games", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, games)
}

// GET /api/games/:id
func (h *GameHandler) Get(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	game, err := h.gameSvc.GetGame(c.Request.Context(), gameID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		h.log.Error("Failed to get game", "game_id", gameID, "error", err)
		RespondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}
	RespondOK(c, game)
}
