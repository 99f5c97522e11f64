package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	v := h.loadDashboard(r.Context())
	v.Title = "Campaigns"
	h.renderPage(w, http.StatusOK, "dashboard", v)
}

// handleEditSelect is the target of the dashboard's campaign selector.
func (h *Handler) handleEditSelect(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("campaignId"))
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/edit/"+id, http.StatusSeeOther)
}

// handleConfirmDelete asks for confirmation before a delete. Cancelling
// is a plain link back to the dashboard, so no request reaches the API.
func (h *Handler) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	label := "ID: " + strconv.FormatInt(id, 10)
	if c, err := h.api.GetCampaign(r.Context(), id); err != nil {
		h.logger.Warn("campaign unavailable", slog.Int64("campaign_id", id), slog.Any("error", err))
	} else if c.CampaignName != "" {
		label = c.CampaignName
	}
	h.renderPage(w, http.StatusOK, "confirm_delete", confirmDeleteView{
		Title: "Delete Campaign",
		ID:    id,
		Label: label,
	})
}

// handleDelete deletes the campaign and returns to the dashboard, which
// fetches campaigns and sellers again.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		redirect(w, r, "/")
		return
	}
	if err = h.api.DeleteCampaign(r.Context(), id); err != nil {
		h.logger.Warn("delete campaign failed", slog.Int64("campaign_id", id), slog.Any("error", err))
	}
	redirect(w, r, "/")
}
