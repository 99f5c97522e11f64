package httpadapter

import "net/http"

func (h *Handler) handleTowns(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Towns())
}

// handleKeywordSuggestions answers the typeahead. A missing or short q
// yields an empty list, never an error.
func (h *Handler) handleKeywordSuggestions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.KeywordSuggestions(r.URL.Query().Get("q")))
}
