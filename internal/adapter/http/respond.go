package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-admin/internal/core/port"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, port.ErrorResponse{Error: msg})
}

// writeError maps use case errors to HTTP statuses. Unknown errors are
// logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound), errors.Is(err, port.ErrSellerNotFound):
		h.writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrInsufficientFunds),
		errors.Is(err, port.ErrUnknownTown),
		errors.Is(err, port.ErrInvalidRequest):
		h.writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
