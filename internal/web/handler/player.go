package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/qrhunt/internal/services/hunt"
	"github.com/mcoot/qrhunt/internal/web/templates/layout"
	"github.com/mcoot/qrhunt/internal/web/templates/pages"
)

// PlayerHandler renders player profile pages
type PlayerHandler struct {
	controller hunt.ControllerInterface
	logger     *slog.Logger
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(controller hunt.ControllerInterface, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		controller: controller,
		logger:     logger,
	}
}

// View renders GET /players/{username}
func (h *PlayerHandler) View(w http.ResponseWriter, r *http.Request) {
	player, err := h.controller.GetPlayer(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		renderError(w, r, h.logger, err)
		return
	}

	render(w, r, h.logger, http.StatusOK, pages.Player(pages.PlayerData{
		PageData: layout.PageData{Title: player.Username()},
		Player:   player,
	}))
}
