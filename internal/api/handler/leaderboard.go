package handler

import (
	"net/http"

	"github.com/mcoot/qrhunt/internal/api/response"
	"github.com/mcoot/qrhunt/internal/services/leaderboard"
)

// LeaderboardHandler serves the ranked standings
type LeaderboardHandler struct {
	service leaderboard.ServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(service leaderboard.ServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		service: service,
	}
}

// Get handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	standings, err := h.service.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromStandings(standings))
}
