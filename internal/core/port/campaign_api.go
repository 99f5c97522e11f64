package port

import "context"

// CampaignAPI is the outbound port of the admin frontend: the remote
// campaign service it renders. Implementations report non-2xx responses
// as errors; callers decide whether an error means "no data".
type CampaignAPI interface {
	ListCampaigns(ctx context.Context) ([]CampaignResponse, error)
	GetCampaign(ctx context.Context, id int64) (*CampaignResponse, error)
	CreateCampaign(ctx context.Context, req CampaignRequest) (*CampaignResponse, error)
	UpdateCampaign(ctx context.Context, id int64, req CampaignRequest) (*CampaignResponse, error)
	DeleteCampaign(ctx context.Context, id int64) error
	ListSellers(ctx context.Context) ([]SellerResponse, error)
	ListTowns(ctx context.Context) ([]string, error)
	KeywordSuggestions(ctx context.Context, query string) ([]string, error)
}
