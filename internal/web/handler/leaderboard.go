package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/qrhunt/internal/services/leaderboard"
	"github.com/mcoot/qrhunt/internal/web/templates/layout"
	"github.com/mcoot/qrhunt/internal/web/templates/pages"
)

// LeaderboardHandler renders the leaderboard page
type LeaderboardHandler struct {
	service leaderboard.ServiceInterface
	logger  *slog.Logger
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(service leaderboard.ServiceInterface, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		service: service,
		logger:  logger,
	}
}

// View renders GET / and GET /leaderboard
func (h *LeaderboardHandler) View(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.service.Ranked(r.Context())
	if err != nil {
		renderError(w, r, h.logger, err)
		return
	}

	render(w, r, h.logger, http.StatusOK, pages.Leaderboard(pages.LeaderboardData{
		PageData: layout.PageData{Title: "Leaderboard"},
		Ranked:   ranked,
	}))
}
