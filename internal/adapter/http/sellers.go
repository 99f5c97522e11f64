package httpadapter

import (
	"net/http"

	"campaign-admin/internal/core/port"
)

func (h *Handler) handleListSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.svc.ListSellers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]port.SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, port.NewSellerResponse(s))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeMessage(w, http.StatusBadRequest, "invalid seller id")
		return
	}
	s, err := h.svc.GetSeller(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, port.NewSellerResponse(*s))
}
