package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/qrhunt/internal/api/apierr"
	"github.com/mcoot/qrhunt/internal/api/handler"
	"github.com/mcoot/qrhunt/internal/api/middleware"
	"github.com/mcoot/qrhunt/internal/api/response"
	"github.com/mcoot/qrhunt/internal/services/hunt"
	"github.com/mcoot/qrhunt/internal/services/leaderboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	HuntController     hunt.ControllerInterface
	LeaderboardService leaderboard.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

// RegisterRoutes mounts the API under /api/v1 on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.HuntController)
	scanHandler := handler.NewScanHandler(cfg.HuntController)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{username}", playerHandler.Delete).Methods(http.MethodDelete)

	// Scan routes
	api.HandleFunc("/players/{username}/scans", scanHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{username}/scans/{hash}", scanHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/qrcodes", scanHandler.ListQRCodes).Methods(http.MethodGet)
	api.HandleFunc("/qrcodes/{hash}", scanHandler.GetQRCode).Methods(http.MethodGet)

	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}

func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewMethodNotAllowedError())
}
