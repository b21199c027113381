package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/qrhunt/internal/api/request"
	"github.com/mcoot/qrhunt/internal/api/response"
	"github.com/mcoot/qrhunt/internal/services/hunt"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	controller hunt.ControllerInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller hunt.ControllerInterface) *PlayerHandler {
	return &PlayerHandler{
		controller: controller,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if !validUsername(req.Username) {
		WriteError(w, NewInvalidRequestError("username must not contain '/'"))
		return
	}

	player, err := h.controller.RegisterPlayer(r.Context(), req.Username, req.Phone)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.controller.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerListFromModel(players))
}

// Get handles GET /api/v1/players/{username}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	player, err := h.controller.GetPlayer(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{username}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Phone == nil {
		WriteError(w, NewInvalidRequestError("phone is required"))
		return
	}

	player, err := h.controller.UpdatePhone(r.Context(), username, *req.Phone)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{username}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if err := h.controller.DeletePlayer(r.Context(), username); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
