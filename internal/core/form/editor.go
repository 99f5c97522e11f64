package form

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"campaign-admin/internal/core/port"
)

// Suggester looks up keyword completions for a typed fragment.
type Suggester interface {
	KeywordSuggestions(ctx context.Context, query string) ([]string, error)
}

// SubmitFunc sends a validated payload to the API.
type SubmitFunc func(ctx context.Context, req port.CampaignRequest) error

// Editor keeps a campaign form and its keyword suggestion list in sync. It
// is rebuilt from the posted values on every request.
type Editor struct {
	Fields      Fields
	Suggestions []string

	suggester Suggester
	logger    *slog.Logger
}

// NewEditor returns an editor over fields. Lookups go to suggester.
func NewEditor(fields Fields, suggester Suggester, logger *slog.Logger) *Editor {
	return &Editor{Fields: fields, suggester: suggester, logger: logger}
}

// Change sets a field. A keywords change looks up suggestions for the
// keyword being typed once it has MinQueryLength characters and clears
// them otherwise. Changing any other field clears the suggestions.
func (e *Editor) Change(ctx context.Context, name, value string) {
	e.Fields.Set(name, value)
	if name != FieldKeywords {
		e.Suggestions = nil
		return
	}
	e.lookup(ctx, CurrentQuery(value))
}

func (e *Editor) lookup(ctx context.Context, query string) {
	if utf8.RuneCountInString(query) < MinQueryLength {
		e.Suggestions = nil
		return
	}
	suggestions, err := e.suggester.KeywordSuggestions(ctx, query)
	if err != nil {
		e.logger.Warn("keyword suggestions unavailable", slog.String("query", query), slog.Any("error", err))
		e.Suggestions = nil
		return
	}
	e.Suggestions = suggestions
}

// SelectSuggestion puts suggestion in place of the keyword being typed and
// closes the suggestion list.
func (e *Editor) SelectSuggestion(suggestion string) {
	e.Fields.Keywords = ApplySuggestion(e.Fields.Keywords, suggestion)
	e.Suggestions = nil
}

// Submit validates the form and hands the payload to send. It reports
// whether send was called; an incomplete form is a silent no-op and
// returns false with a nil error.
func (e *Editor) Submit(ctx context.Context, send SubmitFunc) (bool, error) {
	e.Suggestions = nil
	req, err := e.Fields.Payload()
	if err != nil {
		return false, nil
	}
	return true, send(ctx, req)
}
