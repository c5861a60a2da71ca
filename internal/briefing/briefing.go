package briefing

import (
	"time"
)

// Placeholder is shown for any field the API left empty.
const Placeholder = "N/A"

// Briefing is one competitive-intelligence record returned by the search API.
// Every field is optional from the client's perspective; the server is the
// only source of truth and nothing is validated locally.
type Briefing struct {
	Competitor    string `json:"competitor"`
	ProductLine   string `json:"product_line"`
	FeatureUpdate string `json:"feature_update"`
	Summary       string `json:"summary"`
	PMAnalysis    string `json:"pm_analysis"`
	SourceURL     string `json:"source_url"`
	ProcessedAt   string `json:"processed_at"`
}

// Display returns a copy with empty fields replaced by the placeholder.
func (b Briefing) Display() Briefing {
	b.Competitor = orPlaceholder(b.Competitor)
	b.ProductLine = orPlaceholder(b.ProductLine)
	b.FeatureUpdate = orPlaceholder(b.FeatureUpdate)
	b.Summary = orPlaceholder(b.Summary)
	b.PMAnalysis = orPlaceholder(b.PMAnalysis)
	b.SourceURL = orPlaceholder(b.SourceURL)
	b.ProcessedAt = orPlaceholder(b.ProcessedAt)
	return b
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// processedAtLayouts covers the timestamp styles the API has been seen to
// emit: RFC3339 and the plain SQL datetime postgres/sqlite return.
var processedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseProcessedAt parses a processed_at value. Returns false when no layout
// matches; callers fall back to the raw string.
func ParseProcessedAt(s string) (time.Time, bool) {
	for _, layout := range processedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FreshnessLabel derives the human-readable freshness line from the first
// briefing's processed_at. The result set is trusted to arrive newest-first,
// so element 0 is the most recent; no client-side sort happens anywhere.
// Malformed timestamps are shown raw, a missing one as the placeholder.
func FreshnessLabel(briefings []Briefing) string {
	if len(briefings) == 0 {
		return ""
	}
	raw := briefings[0].ProcessedAt
	if raw == "" {
		return Placeholder
	}
	t, ok := ParseProcessedAt(raw)
	if !ok {
		return raw
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}
