package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/qrhunt/internal/api/request"
	"github.com/mcoot/qrhunt/internal/api/response"
	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/services/hunt"
)

// ScanHandler handles a player's scanned codes
type ScanHandler struct {
	controller hunt.ControllerInterface
}

// NewScanHandler creates a new scan handler
func NewScanHandler(controller hunt.ControllerInterface) *ScanHandler {
	return &ScanHandler{
		controller: controller,
	}
}

// Create handles POST /api/v1/players/{username}/scans
func (h *ScanHandler) Create(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	var req request.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var (
		player *model.Player
		err    error
	)
	switch {
	case req.Content != "" && req.Hash != "":
		WriteError(w, NewInvalidRequestError("provide either content or hash, not both"))
		return
	case req.Content != "":
		player, _, err = h.controller.ScanContent(r.Context(), username, req.Content)
	case req.Hash != "":
		if req.Name == "" {
			WriteError(w, NewInvalidRequestError("name is required with hash"))
			return
		}
		if !validHash(req.Hash) {
			WriteError(w, NewInvalidRequestError("hash must be lowercase hex"))
			return
		}
		if !validScore(req.Score) {
			WriteError(w, NewInvalidRequestError("score must be between 0 and 2147483647"))
			return
		}
		player, err = h.controller.RecordScan(r.Context(), username, model.NewQRCode(req.Hash, req.Name, req.Score))
	default:
		WriteError(w, NewInvalidRequestError("content or hash is required"))
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{username}/scans/{hash}
func (h *ScanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	player, err := h.controller.RemoveScan(r.Context(), vars["username"], vars["hash"])
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// GetQRCode handles GET /api/v1/qrcodes/{hash}
func (h *ScanHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.controller.GetQRCode(r.Context(), mux.Vars(r)["hash"])
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QRCodeFromModel(code))
}

// ListQRCodes handles GET /api/v1/qrcodes
func (h *ScanHandler) ListQRCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.controller.ListQRCodes(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QRCodeListFromModel(codes))
}
