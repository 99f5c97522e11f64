package port

import (
	"context"
	"errors"

	"campaign-admin/internal/core/domain"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrSellerNotFound    = errors.New("seller not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// CampaignRepository defines the persistence layer for campaigns and sellers.
// Writes that move money between a campaign fund and the seller's emerald
// balance must be atomic and must lock the seller row.
type CampaignRepository interface {
	// ListCampaigns returns all campaigns with their seller names.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns ErrCampaignNotFound for unknown ids.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCampaignAndDebit stores a campaign and debits its fund from the
	// seller. It fills ID, SellerName and SellerBalance on success.
	CreateCampaignAndDebit(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaignAndAdjust rewrites a campaign and moves the fund
	// difference between the campaign and its seller. The stored seller
	// is kept; c.SellerID is ignored.
	UpdateCampaignAndAdjust(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaignAndRefund removes a campaign and returns its fund to the
	// seller.
	DeleteCampaignAndRefund(ctx context.Context, id int64) error

	ListSellers(ctx context.Context) ([]domain.Seller, error)
	// GetSeller returns ErrSellerNotFound for unknown ids.
	GetSeller(ctx context.Context, id int64) (*domain.Seller, error)
}
