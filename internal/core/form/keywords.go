package form

import "strings"

// MinQueryLength is the shortest keyword fragment worth a suggestion lookup.
const MinQueryLength = 2

const (
	segmentSeparator = ","
	displaySeparator = ", "
)

// Segments splits a keywords field on commas, trims every part and drops
// empty ones. Order is preserved.
func Segments(keywords string) []string {
	parts := strings.Split(keywords, segmentSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Normalize rejoins the segments of keywords into a clean comma list, the
// form sent to the API.
func Normalize(keywords string) string {
	return strings.Join(Segments(keywords), segmentSeparator)
}

// CurrentQuery returns the trimmed last comma segment of keywords: the
// keyword the user is typing. It is empty when keywords ends in a comma.
func CurrentQuery(keywords string) string {
	parts := strings.Split(keywords, segmentSeparator)
	return strings.TrimSpace(parts[len(parts)-1])
}

// ApplySuggestion replaces the keyword being typed with suggestion. When
// keywords already ends with ", " the suggestion becomes a new segment.
// The result is joined with ", " and always ends with ", " so typing can
// continue with the next keyword.
func ApplySuggestion(keywords, suggestion string) string {
	segments := Segments(keywords)
	switch {
	case len(segments) > 0 && strings.HasSuffix(keywords, displaySeparator):
		segments = append(segments, suggestion)
	case len(segments) > 0:
		segments[len(segments)-1] = suggestion
	default:
		segments = append(segments, suggestion)
	}
	out := strings.Join(segments, displaySeparator)
	if out != "" {
		out += displaySeparator
	}
	return out
}
