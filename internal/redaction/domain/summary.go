package domain

import (
	"fmt"
	"sort"
	"strings"

	tokenmapDomain "github.com/allisson/redactor/internal/tokenmap/domain"
)

// categoryLabels maps detection categories to the plural labels used in
// user-facing reports.
var categoryLabels = map[string]string{
	"PERSON":   "names",
	"COMPANY":  "companies",
	"EMAIL":    "emails",
	"PHONE":    "phone numbers",
	"ADDRESS":  "addresses",
	"URL":      "links",
	"DATE":     "dates",
	"POSTCODE": "postcodes",
	"TAX":      "tax IDs",
	"NI":       "NI numbers",
	"CURRENCY": "amounts",
}

// categoryOrder fixes the report ordering so the same counts always render
// the same text.
var categoryOrder = []string{
	"PERSON", "COMPANY", "EMAIL", "PHONE", "ADDRESS", "URL",
	"DATE", "POSTCODE", "TAX", "NI", "CURRENCY",
}

// CategoryLabel returns the user-facing label for a detection category.
// Unknown categories render as their lowercased name.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return strings.ToLower(category)
}

// FormatEntityCounts renders per-category counts as a single line, like
// "1 names, 2 emails". A nil or zero-total map renders as
// "no entities found" so an empty result is never mistaken for a failure.
func FormatEntityCounts(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(counts))
	for _, category := range categoryOrder {
		if n := counts[category]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, CategoryLabel(category)))
			seen[category] = true
		}
	}
	extra := make([]string, 0)
	for category, n := range counts {
		if n > 0 && !seen[category] {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)
	for _, category := range extra {
		parts = append(parts, fmt.Sprintf("%d %s", counts[category], CategoryLabel(category)))
	}
	if len(parts) == 0 {
		return "no entities found"
	}
	return strings.Join(parts, ", ")
}

// Summary is the result of redacting a whole document.
type Summary struct {
	Document     string         `json:"document"`
	RedactedPath string         `json:"redacted_path"`
	MapPath      string         `json:"map_path"`
	EntityCounts map[string]int `json:"entity_counts"`
	TokenCount   int            `json:"token_count"`
}

// TotalEntities returns the sum of all per-category counts.
func (s *Summary) TotalEntities() int {
	total := 0
	for _, n := range s.EntityCounts {
		total += n
	}
	return total
}

// Report renders the summary as a human-readable line.
func (s *Summary) Report() string {
	return fmt.Sprintf("redacted %s: %s", s.Document, FormatEntityCounts(s.EntityCounts))
}

// RestorationSummary is the result of restoring a redacted document.
type RestorationSummary struct {
	Document     string `json:"document"`
	RestoredPath string `json:"restored_path"`
	TokenCount   int    `json:"token_count"`
}

// Report renders the summary as a human-readable line.
func (s *RestorationSummary) Report() string {
	return fmt.Sprintf("restored %s using %d tokens", s.Document, s.TokenCount)
}

// InlineSummary is the result of redacting a text fragment against a
// document's token map.
type InlineSummary struct {
	Document     string                    `json:"document"`
	RedactedText string                    `json:"redacted_text"`
	EntityCounts map[string]int            `json:"entity_counts"`
	Conflicts    []tokenmapDomain.Conflict `json:"conflicts,omitempty"`
	MapDiscarded bool                      `json:"map_discarded,omitempty"`
}

// Report renders the summary as a human-readable line, including merge
// conflicts when any token resolved to a different value than before.
func (s *InlineSummary) Report() string {
	line := fmt.Sprintf("redacted fragment for %s: %s", s.Document, FormatEntityCounts(s.EntityCounts))
	if s.MapDiscarded {
		line += " (existing map was corrupted and replaced)"
	}
	if len(s.Conflicts) > 0 {
		line += fmt.Sprintf(" (%d token conflicts resolved to latest values)", len(s.Conflicts))
	}
	return line
}
