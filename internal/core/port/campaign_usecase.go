package port

import (
	"context"
	"errors"

	"campaign-admin/internal/core/domain"
)

var (
	ErrUnknownTown    = errors.New("unknown town")
	ErrInvalidRequest = errors.New("invalid request")
)

// CampaignUseCase defines the operations exposed by the campaign API. This
// interface is the primary port into the application domain.
type CampaignUseCase interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// CreateCampaign validates the town and debits the campaign fund from the
	// seller's balance. ErrSellerNotFound, ErrUnknownTown and
	// ErrInsufficientFunds are returned for the respective violations.
	CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error)

	// UpdateCampaign rewrites an existing campaign. Changing the seller is
	// not supported and silently keeps the stored one.
	UpdateCampaign(ctx context.Context, id int64, in domain.CampaignInput) (*domain.Campaign, error)

	// DeleteCampaign removes a campaign and refunds its fund.
	DeleteCampaign(ctx context.Context, id int64) error

	ListSellers(ctx context.Context) ([]domain.Seller, error)
	GetSeller(ctx context.Context, id int64) (*domain.Seller, error)

	// Towns returns the fixed list of towns a campaign may target.
	Towns() []string

	// KeywordSuggestions returns catalog keywords starting with query
	// (case-insensitive). Queries shorter than two characters after trimming
	// yield an empty list.
	KeywordSuggestions(query string) []string
}
