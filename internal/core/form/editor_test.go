package form

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-admin/internal/core/port"
	"campaign-admin/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEditorKeywordChangeLooksUpLastSegment(t *testing.T) {
	api := mocks.NewMockCampaignAPI(t)
	api.EXPECT().KeywordSuggestions(mock.Anything, "run").Return([]string{"running"}, nil).Once()

	e := NewEditor(CreateDefaults(), api, discardLogger())
	e.Change(context.Background(), FieldKeywords, "shoes, run")

	assert.Equal(t, "shoes, run", e.Fields.Keywords)
	assert.Equal(t, []string{"running"}, e.Suggestions)

	e.SelectSuggestion("running")
	assert.Equal(t, "shoes, running, ", e.Fields.Keywords)
	assert.Empty(t, e.Suggestions)
}

func TestEditorShortQueryClearsWithoutLookup(t *testing.T) {
	api := mocks.NewMockCampaignAPI(t)

	e := NewEditor(CreateDefaults(), api, discardLogger())
	e.Suggestions = []string{"sale"}
	e.Change(context.Background(), FieldKeywords, "sale, s")

	assert.Empty(t, e.Suggestions)
	api.AssertNotCalled(t, "KeywordSuggestions", mock.Anything, mock.Anything)
}

func TestEditorFailedLookupClears(t *testing.T) {
	api := mocks.NewMockCampaignAPI(t)
	api.EXPECT().KeywordSuggestions(mock.Anything, "lap").Return(nil, errors.New("boom")).Once()

	e := NewEditor(CreateDefaults(), api, discardLogger())
	e.Suggestions = []string{"stale"}
	e.Change(context.Background(), FieldKeywords, "lap")

	assert.Empty(t, e.Suggestions)
}

func TestEditorOtherFieldClearsSuggestions(t *testing.T) {
	api := mocks.NewMockCampaignAPI(t)

	e := NewEditor(CreateDefaults(), api, discardLogger())
	e.Suggestions = []string{"laptops"}
	e.Change(context.Background(), FieldRadius, "12")

	assert.Equal(t, "12", e.Fields.Radius)
	assert.Empty(t, e.Suggestions)
}

func TestEditorSubmitBlockedMakesNoCall(t *testing.T) {
	f := springSale()
	f.BidAmount = "0"
	e := NewEditor(f, mocks.NewMockCampaignAPI(t), discardLogger())
	e.Suggestions = []string{"x"}

	called := false
	sent, err := e.Submit(context.Background(), func(context.Context, port.CampaignRequest) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, sent)
	assert.False(t, called)
	assert.Empty(t, e.Suggestions)
}

func TestEditorSubmitSendsPayload(t *testing.T) {
	e := NewEditor(springSale(), mocks.NewMockCampaignAPI(t), discardLogger())

	var got port.CampaignRequest
	sendErr := errors.New("rejected")
	sent, err := e.Submit(context.Background(), func(_ context.Context, req port.CampaignRequest) error {
		got = req
		return sendErr
	})
	assert.True(t, sent)
	assert.ErrorIs(t, err, sendErr)
	assert.Equal(t, "sale,spring", got.Keywords)
	assert.Equal(t, int64(3), got.SellerID)
}
