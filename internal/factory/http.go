package factory

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/qrhunt/internal/api"
	"github.com/mcoot/qrhunt/internal/middleware"
	"github.com/mcoot/qrhunt/internal/web"
)

// NewHTTPHandler mounts the JSON API under /api/v1 and the HTML pages at the root
func NewHTTPHandler(app *App) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.RequestID)

	api.RegisterRoutes(router, api.RouterConfig{
		Logger:             app.Logger,
		HuntController:     app.HuntController,
		LeaderboardService: app.LeaderboardService,
	})
	web.RegisterRoutes(router, web.RouterConfig{
		Logger:             app.Logger,
		HuntController:     app.HuntController,
		LeaderboardService: app.LeaderboardService,
	})

	return router
}
