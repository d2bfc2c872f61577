// Package domain defines the data exchanged with the PII detection service.
package domain

// RedactionResult is the outcome of a single detection pass over a piece of
// text. Tokens holds the placeholder-to-original-value fragment produced by
// this call only; the caller is responsible for merging it into the document's
// token map.
type RedactionResult struct {
	RedactedText string
	Tokens       map[string]string
	EntityCounts map[string]int
}

// TotalEntities returns the number of entity occurrences across all categories.
func (r *RedactionResult) TotalEntities() int {
	total := 0
	for _, count := range r.EntityCounts {
		total += count
	}
	return total
}

// RestorationResult is the outcome of substituting tokens back to their
// original values. Tokens absent from the supplied map are passed through
// unchanged by the service.
type RestorationResult struct {
	RestoredText string
}

// ServiceStatus is the detection service's self-reported diagnostic.
type ServiceStatus struct {
	// ServiceUp reports whether the status probe succeeded at all.
	ServiceUp bool
	// DetectorReady reports whether the named-entity recognizer is loaded.
	DetectorReady bool
	// DeepScanReady reports whether the deep-scan language model is loaded.
	DeepScanReady bool
	// DeepScanModel is the deep-scan model name, empty when unavailable.
	DeepScanModel string
}
