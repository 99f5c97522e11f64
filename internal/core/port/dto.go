package port

import (
	"fmt"
	"strconv"

	"campaign-admin/internal/core/domain"
)

// CampaignRequest is the JSON body of POST and PUT /api/campaigns. It is a
// DTO shared by the API handlers and the frontend client.
type CampaignRequest struct {
	CampaignName string  `json:"campaignName" validate:"notblank"`
	Keywords     string  `json:"keywords" validate:"notblank"`
	BidAmount    float64 `json:"bidAmount" validate:"gte=0.01,lte=1000000000"`
	CampaignFund float64 `json:"campaignFund" validate:"gte=0.01,lte=1000000000"`
	Status       string  `json:"status" validate:"oneof=ON OFF"`
	Town         string  `json:"town"`
	Radius       int     `json:"radius" validate:"gte=1"`
	SellerID     int64   `json:"sellerId" validate:"required"`
}

// Input converts the request into domain units. Amounts that do not fit
// domain.MaxAmount are reported as ErrInvalidRequest.
func (r CampaignRequest) Input() (domain.CampaignInput, error) {
	bid, err := domain.Cents(r.BidAmount)
	if err != nil {
		return domain.CampaignInput{}, fmt.Errorf("%w: bidAmount %w", ErrInvalidRequest, err)
	}
	fund, err := domain.Cents(r.CampaignFund)
	if err != nil {
		return domain.CampaignInput{}, fmt.Errorf("%w: campaignFund %w", ErrInvalidRequest, err)
	}
	return domain.CampaignInput{
		Name:         r.CampaignName,
		Keywords:     r.Keywords,
		BidAmount:    bid,
		CampaignFund: fund,
		Status:       domain.CampaignStatus(r.Status),
		Town:         r.Town,
		Radius:       r.Radius,
		SellerID:     r.SellerID,
	}, nil
}

// CampaignResponse is the JSON representation of a campaign.
type CampaignResponse struct {
	ID            int64   `json:"id"`
	CampaignName  string  `json:"campaignName"`
	Keywords      string  `json:"keywords"`
	BidAmount     float64 `json:"bidAmount"`
	CampaignFund  float64 `json:"campaignFund"`
	Status        string  `json:"status"`
	Town          string  `json:"town"`
	Radius        int     `json:"radius"`
	SellerID      int64   `json:"sellerId"`
	SellerName    string  `json:"sellerName"`
	SellerBalance float64 `json:"sellerEmeraldBalanceAfterTransaction"`
}

// IDString returns the campaign id in decimal form, as used in routes.
func (c CampaignResponse) IDString() string {
	return strconv.FormatInt(c.ID, 10)
}

// NewCampaignResponse converts a domain campaign. The seller balance is
// always reported, zero included.
func NewCampaignResponse(c domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:            c.ID,
		CampaignName:  c.Name,
		Keywords:      c.Keywords,
		BidAmount:     domain.Amount(c.BidAmount),
		CampaignFund:  domain.Amount(c.CampaignFund),
		Status:        string(c.Status),
		Town:          c.Town,
		Radius:        c.Radius,
		SellerID:      c.SellerID,
		SellerName:    c.SellerName,
		SellerBalance: domain.Amount(c.SellerBalance),
	}
}

// SellerResponse is the JSON representation of a seller.
type SellerResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	EmeraldBalance float64 `json:"emeraldBalance"`
}

func (s SellerResponse) IDString() string {
	return strconv.FormatInt(s.ID, 10)
}

func NewSellerResponse(s domain.Seller) SellerResponse {
	return SellerResponse{ID: s.ID, Name: s.Name, EmeraldBalance: domain.Amount(s.EmeraldBalance)}
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
