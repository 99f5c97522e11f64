package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"campaign-admin/internal/core/port"
)

// maxBodyBytes limits request bodies read by decodeCampaign.
const maxBodyBytes = 1 << 20

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"campaignName": "Campaign name is mandatory",
	"keywords":     "Keywords are mandatory",
	"bidAmount":    "Bid amount must be between 0.01 and 1000000000",
	"campaignFund": "Campaign fund must be between 0.01 and 1000000000",
	"status":       "Status must be ON or OFF",
	"radius":       "Radius must be at least 1 kilometer",
	"sellerId":     "Seller's id required",
}

// decodeCampaign reads and validates a campaign request body. The returned
// error wraps port.ErrInvalidRequest and carries one message per failed
// field.
func (h *Handler) decodeCampaign(w http.ResponseWriter, r *http.Request) (port.CampaignRequest, error) {
	var req port.CampaignRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return req, fmt.Errorf("%w: invalid JSON", port.ErrInvalidRequest)
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return req, err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msg, ok := fieldMessages[fe.Field()]
			if !ok {
				msg = fe.Field() + " is invalid"
			}
			msgs = append(msgs, msg)
		}
		return req, fmt.Errorf("%w: %s", port.ErrInvalidRequest, strings.Join(msgs, "; "))
	}
	return req, nil
}
