package web

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-admin/internal/core/form"
	"campaign-admin/internal/core/port"
)

func (h *Handler) handleAddPage(w http.ResponseWriter, r *http.Request) {
	ref := h.loadReference(r.Context())
	fields := form.CreateDefaults()
	fields.ApplyReferenceDefaults(ref.Sellers, ref.Towns)
	h.renderPage(w, http.StatusOK, "form", createView(fields, ref.Sellers, ref.Towns))
}

// handleAddSubmit posts a new campaign. Only a successful create leaves
// the form; an incomplete form or a rejected create keeps it on screen.
func (h *Handler) handleAddSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ed := form.NewEditor(form.FromValues(form.CreateDefaults(), r.PostForm), h.api, h.logger)
	sent, err := ed.Submit(r.Context(), func(ctx context.Context, req port.CampaignRequest) error {
		_, err := h.api.CreateCampaign(ctx, req)
		return err
	})
	if sent && err == nil {
		redirect(w, r, "/")
		return
	}
	if err != nil {
		h.logger.Warn("create campaign failed", slog.Any("error", err))
	}
	if isHTMX(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	ref := h.loadReference(r.Context())
	h.renderPage(w, http.StatusOK, "form", createView(ed.Fields, ref.Sellers, ref.Towns))
}

func (h *Handler) handleEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "campaignId"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	campaign, ref := h.loadEdit(r.Context(), id)
	fields := form.EditDefaults()
	if campaign != nil {
		fields = form.FromCampaign(*campaign)
	}
	h.renderPage(w, http.StatusOK, "form", editView(strconv.FormatInt(id, 10), fields, ref.Sellers, ref.Towns))
}

// handleEditSubmit sends the update and returns to the dashboard whatever
// the API answered. A failed update is only logged.
func (h *Handler) handleEditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "campaignId"), 10, 64)
	if err != nil {
		redirect(w, r, "/")
		return
	}
	if err = r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ed := form.NewEditor(form.FromValues(form.EditDefaults(), r.PostForm), h.api, h.logger)
	sent, err := ed.Submit(r.Context(), func(ctx context.Context, req port.CampaignRequest) error {
		_, err := h.api.UpdateCampaign(ctx, id, req)
		return err
	})
	if sent {
		if err != nil {
			h.logger.Warn("update campaign failed", slog.Int64("campaign_id", id), slog.Any("error", err))
		}
		redirect(w, r, "/")
		return
	}
	if isHTMX(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	ref := h.loadReference(r.Context())
	h.renderPage(w, http.StatusOK, "form", editView(strconv.FormatInt(id, 10), ed.Fields, ref.Sellers, ref.Towns))
}

// handleFieldChange applies one field change and answers with the keyword
// suggestion list. The changed field is the one that triggered the htmx
// request; a field query parameter overrides it.
func (h *Handler) handleFieldChange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("field")
	if name == "" {
		name = r.Header.Get(hxTriggerName)
	}
	ed := form.NewEditor(form.FromValues(form.Fields{}, q), h.api, h.logger)
	ed.Change(r.Context(), name, q.Get(name))

	h.renderPartial(w, "suggestions", formView{
		Suffix:      suffix(q.Get("suffix")),
		Fields:      ed.Fields,
		Suggestions: ed.Suggestions,
	})
}

// handleSelectSuggestion puts the chosen suggestion into the keywords
// field. The response replaces the keyword input, focused again, and
// clears the suggestion list out of band.
func (h *Handler) handleSelectSuggestion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ed := form.NewEditor(form.FromValues(form.Fields{}, r.PostForm), h.api, h.logger)
	ed.SelectSuggestion(r.Form.Get("suggestion"))

	h.renderPartial(w, "keywords_selected", formView{
		Suffix:    suffix(r.Form.Get("suffix")),
		Fields:    ed.Fields,
		Autofocus: true,
		OOB:       true,
	})
}

// suffix only lets the known form id suffixes through.
func suffix(s string) string {
	if s == formSuffix {
		return formSuffix
	}
	return ""
}
