package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/qrhunt/internal/services/hunt"
	"github.com/mcoot/qrhunt/internal/services/leaderboard"
	"github.com/mcoot/qrhunt/internal/web/handler"
	"github.com/mcoot/qrhunt/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger             *slog.Logger
	HuntController     hunt.ControllerInterface
	LeaderboardService leaderboard.ServiceInterface
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

// RegisterRoutes mounts the HTML pages on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Recovery(cfg.Logger))
	pages.Use(middleware.Logging(cfg.Logger))

	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.Logger)
	playerHandler := handler.NewPlayerHandler(cfg.HuntController, cfg.Logger)

	pages.HandleFunc("/", leaderboardHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/leaderboard", leaderboardHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/players/{username}", playerHandler.View).Methods(http.MethodGet)

	r.NotFoundHandler = handler.NotFound(cfg.Logger)
}
