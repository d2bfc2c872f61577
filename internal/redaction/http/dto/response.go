package dto

import (
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
)

// RedactDocumentResponse represents a completed document redaction in API responses.
type RedactDocumentResponse struct {
	Document     string         `json:"document"`
	RedactedPath string         `json:"redacted_path"`
	MapPath      string         `json:"map_path"`
	EntityCounts map[string]int `json:"entity_counts"`
	TokenCount   int            `json:"token_count"`
	Report       string         `json:"report"`
}

// MapSummaryToResponse converts a redaction summary to an API response.
func MapSummaryToResponse(summary *redactionDomain.Summary) RedactDocumentResponse {
	return RedactDocumentResponse{
		Document:     summary.Document,
		RedactedPath: summary.RedactedPath,
		MapPath:      summary.MapPath,
		EntityCounts: summary.EntityCounts,
		TokenCount:   summary.TokenCount,
		Report:       summary.Report(),
	}
}

// RestoreDocumentResponse represents a completed restoration in API responses.
type RestoreDocumentResponse struct {
	Document     string `json:"document"`
	RestoredPath string `json:"restored_path"`
	TokenCount   int    `json:"token_count"`
	Report       string `json:"report"`
}

// MapRestorationSummaryToResponse converts a restoration summary to an API response.
func MapRestorationSummaryToResponse(summary *redactionDomain.RestorationSummary) RestoreDocumentResponse {
	return RestoreDocumentResponse{
		Document:     summary.Document,
		RestoredPath: summary.RestoredPath,
		TokenCount:   summary.TokenCount,
		Report:       summary.Report(),
	}
}

// ConflictResponse represents a token merge conflict in API responses.
type ConflictResponse struct {
	Token    string `json:"token"`
	Existing string `json:"existing"`
	Incoming string `json:"incoming"`
}

// RedactFragmentResponse represents a completed fragment redaction in API responses.
type RedactFragmentResponse struct {
	Document     string             `json:"document"`
	RedactedText string             `json:"redacted_text"`
	EntityCounts map[string]int     `json:"entity_counts"`
	Conflicts    []ConflictResponse `json:"conflicts"`
	MapDiscarded bool               `json:"map_discarded"`
	Report       string             `json:"report"`
}

// MapInlineSummaryToResponse converts an inline summary to an API response.
func MapInlineSummaryToResponse(summary *redactionDomain.InlineSummary) RedactFragmentResponse {
	conflicts := make([]ConflictResponse, 0, len(summary.Conflicts))
	for _, conflict := range summary.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			Token:    conflict.Token,
			Existing: conflict.Existing,
			Incoming: conflict.Incoming,
		})
	}

	return RedactFragmentResponse{
		Document:     summary.Document,
		RedactedText: summary.RedactedText,
		EntityCounts: summary.EntityCounts,
		Conflicts:    conflicts,
		MapDiscarded: summary.MapDiscarded,
		Report:       summary.Report(),
	}
}

// DetectorStatusResponse represents the detection service diagnostic in API responses.
type DetectorStatusResponse struct {
	ServiceUp     bool   `json:"service_up"`
	DetectorReady bool   `json:"detector_ready"`
	DeepScanReady bool   `json:"deep_scan_ready"`
	DeepScanModel string `json:"deep_scan_model,omitempty"`
	State         string `json:"state"`
}
