package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-admin/internal/core/domain"
	"campaign-admin/internal/core/port"
	"campaign-admin/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockCampaignUseCase) {
	svc := mocks.NewMockCampaignUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h.Router(), svc
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body port.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

const springSale = `{"campaignName":"Spring Sale","keywords":"shoes,sale","bidAmount":1.5,` +
	`"campaignFund":100,"status":"ON","town":"Kraków","radius":10,"sellerId":1}`

func TestCreateCampaignReturnsCreated(t *testing.T) {
	h, svc := newTestHandler(t)

	want := domain.CampaignInput{
		Name:         "Spring Sale",
		Keywords:     "shoes,sale",
		BidAmount:    150,
		CampaignFund: 10000,
		Status:       domain.StatusOn,
		Town:         "Kraków",
		Radius:       10,
		SellerID:     1,
	}
	svc.EXPECT().CreateCampaign(mock.Anything, want).Return(&domain.Campaign{
		ID: 7, Name: "Spring Sale", Keywords: "shoes,sale", BidAmount: 150, CampaignFund: 10000,
		Status: domain.StatusOn, Town: "Kraków", Radius: 10, SellerID: 1,
		SellerName: "Emerald Electronics", SellerBalance: 490000,
	}, nil).Once()

	rec := serve(h, http.MethodPost, "/api/campaigns", springSale)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got port.CampaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, 100.0, got.CampaignFund)
	assert.Equal(t, 4900.0, got.SellerBalance)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCreateCampaignRejectsInvalidBody(t *testing.T) {
	tests := map[string]string{
		"blank name":  strings.Replace(springSale, `"Spring Sale"`, `"  "`, 1),
		"low bid":     strings.Replace(springSale, `"bidAmount":1.5`, `"bidAmount":0`, 1),
		"bad status":  strings.Replace(springSale, `"ON"`, `"PAUSED"`, 1),
		"zero radius": strings.Replace(springSale, `"radius":10`, `"radius":0`, 1),
		"no seller":   strings.Replace(springSale, `"sellerId":1`, `"sellerId":0`, 1),
		"huge bid":    strings.Replace(springSale, `"bidAmount":1.5`, `"bidAmount":1e20`, 1),
		"huge fund":   strings.Replace(springSale, `"campaignFund":100`, `"campaignFund":1e20`, 1),
		"over max":    strings.Replace(springSale, `"campaignFund":100`, `"campaignFund":1000000000.01`, 1),
		"not json":    `{"campaignName":`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			rec := serve(h, http.MethodPost, "/api/campaigns", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec), "invalid request")
		})
	}
}

func TestCreateCampaignReportsBalanceDebitedToZero(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("domain.CampaignInput")).
		Return(&domain.Campaign{ID: 8, Name: "Spring Sale", CampaignFund: 10000, SellerID: 1, SellerBalance: 0}, nil).Once()

	rec := serve(h, http.MethodPost, "/api/campaigns", springSale)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sellerEmeraldBalanceAfterTransaction":0`)
}

func TestCreateCampaignMapsDomainErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{port.ErrInsufficientFunds, http.StatusBadRequest},
		{port.ErrUnknownTown, http.StatusBadRequest},
		{port.ErrSellerNotFound, http.StatusNotFound},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := serve(h, http.MethodPost, "/api/campaigns", springSale)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "internal error", decodeError(t, rec))
			} else {
				assert.Equal(t, tt.err.Error(), decodeError(t, rec))
			}
		})
	}
}

func TestListCampaignsReturnsEmptyArray(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil).Once()

	rec := serve(h, http.MethodGet, "/api/campaigns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetCampaign(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, int64(3)).
		Return(&domain.Campaign{ID: 3, Name: "Winter", BidAmount: 99, Status: domain.StatusOff}, nil).Once()
	svc.EXPECT().GetCampaign(mock.Anything, int64(4)).Return(nil, port.ErrCampaignNotFound).Once()

	rec := serve(h, http.MethodGet, "/api/campaigns/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got port.CampaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Winter", got.CampaignName)
	assert.Equal(t, 0.99, got.BidAmount)
	assert.Zero(t, got.SellerBalance)

	rec = serve(h, http.MethodGet, "/api/campaigns/4", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/api/campaigns/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCampaign(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().UpdateCampaign(mock.Anything, int64(7), mock.AnythingOfType("domain.CampaignInput")).
		Return(&domain.Campaign{ID: 7, Name: "Spring Sale", SellerBalance: 500000}, nil).Once()

	rec := serve(h, http.MethodPut, "/api/campaigns/7", springSale)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteCampaign(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().DeleteCampaign(mock.Anything, int64(7)).Return(nil).Once()
	svc.EXPECT().DeleteCampaign(mock.Anything, int64(8)).Return(port.ErrCampaignNotFound).Once()

	rec := serve(h, http.MethodDelete, "/api/campaigns/7", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serve(h, http.MethodDelete, "/api/campaigns/8", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSellers(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().ListSellers(mock.Anything).
		Return([]domain.Seller{{ID: 1, Name: "Emerald Electronics", EmeraldBalance: 500000}}, nil).Once()
	svc.EXPECT().GetSeller(mock.Anything, int64(9)).Return(nil, port.ErrSellerNotFound).Once()

	rec := serve(h, http.MethodGet, "/api/sellers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Emerald Electronics","emeraldBalance":5000}]`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/sellers/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLookups(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Towns().Return([]string{"Kraków", "Gdańsk"}).Once()
	svc.EXPECT().KeywordSuggestions("lap").Return([]string{"laptops"}).Once()

	rec := serve(h, http.MethodGet, "/api/towns", "")
	assert.JSONEq(t, `["Kraków","Gdańsk"]`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/keywords/suggestions?q=lap", "")
	assert.JSONEq(t, `["laptops"]`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
