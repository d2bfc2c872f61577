package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tokenmapDomain "github.com/allisson/redactor/internal/tokenmap/domain"
)

func TestFormatEntityCounts(t *testing.T) {
	tests := []struct {
		name     string
		counts   map[string]int
		expected string
	}{
		{
			name:     "person and email",
			counts:   map[string]int{"PERSON": 1, "EMAIL": 1},
			expected: "1 names, 1 emails",
		},
		{
			name:     "ordering is stable",
			counts:   map[string]int{"EMAIL": 2, "PHONE": 3, "PERSON": 1},
			expected: "1 names, 2 emails, 3 phone numbers",
		},
		{
			name:     "zero counts are skipped",
			counts:   map[string]int{"PERSON": 1, "EMAIL": 0},
			expected: "1 names",
		},
		{
			name:     "empty counts report distinctly",
			counts:   map[string]int{},
			expected: "no entities found",
		},
		{
			name:     "nil counts report distinctly",
			counts:   nil,
			expected: "no entities found",
		},
		{
			name:     "unknown category falls back to lowercased name",
			counts:   map[string]int{"IBAN": 2},
			expected: "2 iban",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEntityCounts(tt.counts))
		})
	}
}

func TestSummary(t *testing.T) {
	summary := &Summary{
		Document:     "invoice.txt",
		EntityCounts: map[string]int{"PERSON": 1, "EMAIL": 1},
		TokenCount:   2,
	}
	assert.Equal(t, 2, summary.TotalEntities())
	assert.Equal(t, "redacted invoice.txt: 1 names, 1 emails", summary.Report())

	empty := &Summary{Document: "blank.txt"}
	assert.Equal(t, 0, empty.TotalEntities())
	assert.Equal(t, "redacted blank.txt: no entities found", empty.Report())
}

func TestRestorationSummary(t *testing.T) {
	summary := &RestorationSummary{Document: "invoice.txt", TokenCount: 5}
	assert.Equal(t, "restored invoice.txt using 5 tokens", summary.Report())
}

func TestInlineSummary(t *testing.T) {
	summary := &InlineSummary{
		Document:     "notes.txt",
		RedactedText: "Call [PERSON_1] on [PHONE_1]",
		EntityCounts: map[string]int{"PERSON": 1, "PHONE": 1},
	}
	assert.Equal(t, "redacted fragment for notes.txt: 1 names, 1 phone numbers", summary.Report())

	summary.Conflicts = []tokenmapDomain.Conflict{
		{Token: "[PERSON_1]", Existing: "John Smith", Incoming: "Jane Doe"},
	}
	summary.MapDiscarded = true
	assert.Equal(
		t,
		"redacted fragment for notes.txt: 1 names, 1 phone numbers (existing map was corrupted and replaced) (1 token conflicts resolved to latest values)",
		summary.Report(),
	)
}
