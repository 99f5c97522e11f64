package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-admin/internal/core/domain"
	"campaign-admin/internal/core/port"
	"campaign-admin/internal/core/port/mocks"
)

func newUseCase(t *testing.T) (*CampaignUseCase, *mocks.MockCampaignRepository) {
	repo := mocks.NewMockCampaignRepository(t)
	return NewCampaignUseCase(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func validInput() domain.CampaignInput {
	return domain.CampaignInput{
		Name:         "Laptop week",
		Keywords:     "laptops,gaming",
		BidAmount:    250,
		CampaignFund: 10000,
		Status:       domain.StatusOn,
		Town:         "Kraków",
		Radius:       10,
		SellerID:     1,
	}
}

// TestCreateCampaignDebitsThroughRepository ensures the usecase hands the
// campaign to the atomic debit and returns what the repository filled in.
func TestCreateCampaignDebitsThroughRepository(t *testing.T) {
	svc, repo := newUseCase(t)

	repo.EXPECT().CreateCampaignAndDebit(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, c *domain.Campaign) {
			assert.Equal(t, int64(10000), c.CampaignFund)
			assert.Equal(t, int64(1), c.SellerID)
			c.ID = 5
			c.SellerName = "Acme"
			c.SellerBalance = 90000
		}).
		Return(nil).Once()

	c, err := svc.CreateCampaign(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)
	assert.Equal(t, "Acme", c.SellerName)
	assert.Equal(t, int64(90000), c.SellerBalance)
}

func TestCreateCampaignPropagatesInsufficientFunds(t *testing.T) {
	svc, repo := newUseCase(t)
	repo.EXPECT().CreateCampaignAndDebit(mock.Anything, mock.Anything).Return(port.ErrInsufficientFunds).Once()

	_, err := svc.CreateCampaign(context.Background(), validInput())
	assert.ErrorIs(t, err, port.ErrInsufficientFunds)
}

func TestCreateCampaignRejectsUnknownTownAndStatus(t *testing.T) {
	svc, repo := newUseCase(t)

	in := validInput()
	in.Town = "Springfield"
	_, err := svc.CreateCampaign(context.Background(), in)
	assert.ErrorIs(t, err, port.ErrUnknownTown)

	in = validInput()
	in.Status = "PAUSED"
	_, err = svc.CreateCampaign(context.Background(), in)
	assert.ErrorIs(t, err, port.ErrInvalidRequest)

	repo.AssertNotCalled(t, "CreateCampaignAndDebit", mock.Anything, mock.Anything)
}

func TestCreateCampaignRejectsNonPositiveAmounts(t *testing.T) {
	svc, repo := newUseCase(t)

	in := validInput()
	in.CampaignFund = -1
	_, err := svc.CreateCampaign(context.Background(), in)
	assert.ErrorIs(t, err, port.ErrInvalidRequest)

	in = validInput()
	in.BidAmount = 0
	_, err = svc.CreateCampaign(context.Background(), in)
	assert.ErrorIs(t, err, port.ErrInvalidRequest)

	repo.AssertNotCalled(t, "CreateCampaignAndDebit", mock.Anything, mock.Anything)
}

// TestUpdateCampaignKeepsSeller ensures a sellerId change in the request is
// ignored and the stored seller is used.
func TestUpdateCampaignKeepsSeller(t *testing.T) {
	svc, repo := newUseCase(t)

	repo.EXPECT().GetCampaign(mock.Anything, int64(3)).
		Return(&domain.Campaign{ID: 3, SellerID: 1, CampaignFund: 5000}, nil).Once()
	repo.EXPECT().UpdateCampaignAndAdjust(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool {
		return c.ID == 3 && c.SellerID == 1 && c.CampaignFund == 10000
	})).Return(nil).Once()

	in := validInput()
	in.SellerID = 2
	c, err := svc.UpdateCampaign(context.Background(), 3, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.SellerID)
}

func TestUpdateCampaignNotFound(t *testing.T) {
	svc, repo := newUseCase(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(9)).Return(nil, port.ErrCampaignNotFound).Once()

	_, err := svc.UpdateCampaign(context.Background(), 9, validInput())
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestDeleteCampaign(t *testing.T) {
	svc, repo := newUseCase(t)
	repo.EXPECT().DeleteCampaignAndRefund(mock.Anything, int64(4)).Return(nil).Once()

	require.NoError(t, svc.DeleteCampaign(context.Background(), 4))
}

func TestKeywordSuggestions(t *testing.T) {
	svc, _ := newUseCase(t)

	assert.Equal(t, []string{"laptops"}, svc.KeywordSuggestions("lap"))
	assert.Equal(t, []string{"VR headset"}, svc.KeywordSuggestions("  vr "))
	assert.Equal(t, []string{"smartphones", "smart watch", "smart home"}, svc.KeywordSuggestions("Smart"))
	assert.Empty(t, svc.KeywordSuggestions("s"))
	assert.Empty(t, svc.KeywordSuggestions(""))
	assert.NotNil(t, svc.KeywordSuggestions("zzz"))
}

func TestTownsIsACopy(t *testing.T) {
	svc, _ := newUseCase(t)

	got := svc.Towns()
	require.Len(t, got, 10)
	assert.Equal(t, "Warszawa", got[0])
	got[0] = "changed"
	assert.Equal(t, "Warszawa", svc.Towns()[0])
}
