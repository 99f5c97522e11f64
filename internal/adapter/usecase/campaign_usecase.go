package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"campaign-admin/internal/core/domain"
	"campaign-admin/internal/core/port"
)

// CampaignUseCase provides the business rules of the campaign API on top of
// a repository: town and status checks, and the seller funding rules that
// the repository applies atomically.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, logger: logger}
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, id)
}

// CreateCampaign checks the input, then stores the campaign while debiting
// its fund from the seller.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error) {
	if err := u.check(in); err != nil {
		return nil, err
	}
	c := campaignFromInput(in)
	if err := u.repo.CreateCampaignAndDebit(ctx, &c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.Int64("seller_id", c.SellerID),
		slog.Int64("seller_balance", c.SellerBalance),
	)
	return &c, nil
}

// UpdateCampaign rewrites a campaign. A different sellerId in the input is
// logged and ignored: campaigns cannot move between sellers.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id int64, in domain.CampaignInput) (*domain.Campaign, error) {
	if err := u.check(in); err != nil {
		return nil, err
	}
	existing, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.SellerID != 0 && in.SellerID != existing.SellerID {
		u.logger.Warn("seller change is not supported",
			slog.Int64("campaign_id", id),
			slog.Int64("seller_id", existing.SellerID),
			slog.Int64("requested_seller_id", in.SellerID),
		)
	}
	c := campaignFromInput(in)
	c.ID = id
	c.SellerID = existing.SellerID
	if err = u.repo.UpdateCampaignAndAdjust(ctx, &c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign updated",
		slog.Int64("campaign_id", id),
		slog.Int64("fund_delta", c.CampaignFund-existing.CampaignFund),
	)
	return &c, nil
}

func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id int64) error {
	if err := u.repo.DeleteCampaignAndRefund(ctx, id); err != nil {
		return err
	}
	u.logger.Info("campaign deleted", slog.Int64("campaign_id", id))
	return nil
}

func (u *CampaignUseCase) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	return u.repo.ListSellers(ctx)
}

func (u *CampaignUseCase) GetSeller(ctx context.Context, id int64) (*domain.Seller, error) {
	return u.repo.GetSeller(ctx, id)
}

func (u *CampaignUseCase) Towns() []string {
	return slices.Clone(towns)
}

func (u *CampaignUseCase) KeywordSuggestions(query string) []string {
	return suggest(query)
}

func (u *CampaignUseCase) check(in domain.CampaignInput) error {
	if in.BidAmount <= 0 || in.CampaignFund <= 0 {
		return fmt.Errorf("%w: bid and fund must be positive", port.ErrInvalidRequest)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: status %q", port.ErrInvalidRequest, in.Status)
	}
	if !knownTown(in.Town) {
		return fmt.Errorf("%w: %q", port.ErrUnknownTown, in.Town)
	}
	return nil
}

func campaignFromInput(in domain.CampaignInput) domain.Campaign {
	return domain.Campaign{
		Name:         in.Name,
		Keywords:     in.Keywords,
		BidAmount:    in.BidAmount,
		CampaignFund: in.CampaignFund,
		Status:       in.Status,
		Town:         in.Town,
		Radius:       in.Radius,
		SellerID:     in.SellerID,
	}
}
