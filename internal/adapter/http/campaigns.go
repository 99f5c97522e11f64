package httpadapter

import (
	"net/http"

	"campaign-admin/internal/core/port"
)

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]port.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, port.NewCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeMessage(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, port.NewCampaignResponse(*c))
}

// handleCreateCampaign validates the body and creates the campaign. It
// answers 201 with the stored campaign and the seller's new balance.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCampaign(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := req.Input()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, port.NewCampaignResponse(*c))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeMessage(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	req, err := h.decodeCampaign(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := req.Input()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, port.NewCampaignResponse(*c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeMessage(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err := h.svc.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
