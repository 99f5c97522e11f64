// Package web serves the server-rendered admin frontend. Pages are
// html/template views over the campaign API; in-page updates (keyword
// suggestions, form submits) are driven by htmx attributes.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-admin/internal/adapter/httpmw"
	"campaign-admin/internal/core/port"
)

// Handler is the inbound adapter of the admin frontend. Every screen is
// rebuilt from the API on each request; the handler keeps no state.
type Handler struct {
	api    port.CampaignAPI
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all frontend routes configured.
func NewHandler(api port.CampaignAPI, logger *slog.Logger) *Handler {
	h := &Handler{api: api, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(httpmw.Observability("web", logger))

	r.Get("/healthz", h.handleHealthz)
	r.Handle("/metrics", httpmw.MetricsHandler())

	r.Get("/", h.handleDashboard)
	r.Get("/campaigns/{id}/delete", h.handleConfirmDelete)
	r.Post("/campaigns/{id}/delete", h.handleDelete)

	r.Get("/add", h.handleAddPage)
	r.Post("/add", h.handleAddSubmit)
	r.Get("/edit", h.handleEditSelect)
	r.Get("/edit/{campaignId}", h.handleEditPage)
	r.Post("/edit/{campaignId}", h.handleEditSubmit)

	r.Get("/forms/change", h.handleFieldChange)
	r.Post("/forms/keywords/select", h.handleSelectSuggestion)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
