package form

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"campaign-admin/internal/core/port"
)

// ErrIncomplete blocks a submission: a required field is empty or a number
// is not strictly positive.
var ErrIncomplete = errors.New("form: incomplete campaign")

// Payload validates the form and converts it into the API request body.
// Keywords are normalized and numbers parsed. It returns ErrIncomplete when
// campaignName, keywords, sellerId or town is empty, or when bidAmount,
// campaignFund or radius is not a positive number.
func (f Fields) Payload() (port.CampaignRequest, error) {
	if f.CampaignName == "" || f.Keywords == "" || f.SellerID == "" || f.Town == "" {
		return port.CampaignRequest{}, ErrIncomplete
	}
	bid, ok := positiveFloat(f.BidAmount)
	if !ok {
		return port.CampaignRequest{}, ErrIncomplete
	}
	fund, ok := positiveFloat(f.CampaignFund)
	if !ok {
		return port.CampaignRequest{}, ErrIncomplete
	}
	radius, err := strconv.Atoi(strings.TrimSpace(f.Radius))
	if err != nil || radius <= 0 {
		return port.CampaignRequest{}, ErrIncomplete
	}
	sellerID, err := strconv.ParseInt(strings.TrimSpace(f.SellerID), 10, 64)
	if err != nil {
		return port.CampaignRequest{}, ErrIncomplete
	}

	return port.CampaignRequest{
		CampaignName: f.CampaignName,
		Keywords:     Normalize(f.Keywords),
		BidAmount:    bid,
		CampaignFund: fund,
		Status:       f.Status,
		Town:         f.Town,
		Radius:       radius,
		SellerID:     sellerID,
	}, nil
}

func positiveFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || !(v > 0) {
		return 0, false
	}
	return v, true
}
