package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-admin/internal/adapter/httpmw"
	"campaign-admin/internal/core/port"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateCampaignPostsPayload(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/campaigns", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "rid-1", r.Header.Get(httpmw.RequestIDHeader))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":11,"campaignName":"Spring Sale","sellerId":3,"sellerName":"Acme"}`))
	})

	ctx := httpmw.WithRequestID(context.Background(), "rid-1")
	created, err := c.CreateCampaign(ctx, port.CampaignRequest{
		CampaignName: "Spring Sale",
		Keywords:     "sale,spring",
		BidAmount:    2.5,
		CampaignFund: 100,
		Status:       "ON",
		Town:         "Springfield",
		Radius:       5,
		SellerID:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	assert.Equal(t, map[string]any{
		"campaignName": "Spring Sale",
		"keywords":     "sale,spring",
		"bidAmount":    2.5,
		"campaignFund": float64(100),
		"status":       "ON",
		"town":         "Springfield",
		"radius":       float64(5),
		"sellerId":     float64(3),
	}, body)
}

func TestGetCampaignNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/campaigns/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"campaign not found"}`))
	})

	_, err := c.GetCampaign(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Contains(t, se.Body, "campaign not found")
}

func TestDeleteCampaignAcceptsNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/campaigns/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.DeleteCampaign(context.Background(), 7))
}

func TestKeywordSuggestionsEscapesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/keywords/suggestions", r.URL.Path)
		assert.Equal(t, "new arr&x", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`["new arrival"]`))
	})

	got, err := c.KeywordSuggestions(context.Background(), "new arr&x")
	require.NoError(t, err)
	assert.Equal(t, []string{"new arrival"}, got)
}

func TestListsDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sellers":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Acme","emeraldBalance":900.5}]`))
		case "/api/towns":
			_, _ = w.Write([]byte(`["Warszawa","Kraków"]`))
		case "/api/campaigns":
			_, _ = w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	})

	sellers, err := c.ListSellers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []port.SellerResponse{{ID: 1, Name: "Acme", EmeraldBalance: 900.5}}, sellers)

	towns, err := c.ListTowns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Warszawa", "Kraków"}, towns)

	campaigns, err := c.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.ListTowns(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campaign api unavailable")
	assert.NotErrorIs(t, err, ErrNotFound)
}
