package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/web/templates/layout"
	"github.com/mcoot/qrhunt/internal/web/templates/pages"
)

// render writes a component as an HTML response
func render(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logger.Error("failed to render page",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
}

// renderError renders the error page with a status chosen from the error
func renderError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, title, message := http.StatusInternalServerError, "Error", "Something went wrong. Please try again later."
	if errors.Is(err, model.ErrPlayerNotFound) {
		status, title, message = http.StatusNotFound, "Player not found", "No player goes by that name."
	} else {
		logger.Error("page request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	render(w, r, logger, status, pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: title},
		Message:  message,
	}))
}

// NotFound renders the HTML 404 page
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, logger, http.StatusNotFound, pages.Error(pages.ErrorData{
			PageData: layout.PageData{Title: "Not found"},
			Message:  "That page does not exist.",
		}))
	}
}
