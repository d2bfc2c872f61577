package usecase

import (
	"context"
	"time"

	"github.com/allisson/redactor/internal/metrics"
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
)

// redactionUseCaseWithMetrics decorates RedactionUseCase with metrics
// instrumentation.
type redactionUseCaseWithMetrics struct {
	next    RedactionUseCase
	metrics metrics.BusinessMetrics
}

// NewRedactionUseCaseWithMetrics wraps a RedactionUseCase with metrics recording.
func NewRedactionUseCaseWithMetrics(useCase RedactionUseCase, m metrics.BusinessMetrics) RedactionUseCase {
	return &redactionUseCaseWithMetrics{next: useCase, metrics: m}
}

// RedactDocument records metrics for whole-document redaction operations.
func (r *redactionUseCaseWithMetrics) RedactDocument(
	ctx context.Context,
	path string,
	deepScan bool,
) (*redactionDomain.Summary, error) {
	start := time.Now()
	summary, err := r.next.RedactDocument(ctx, path, deepScan)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "redaction", "document_redact", status)
	r.metrics.RecordDuration(ctx, "redaction", "document_redact", time.Since(start), status)

	return summary, err
}

// restorationUseCaseWithMetrics decorates RestorationUseCase with metrics
// instrumentation.
type restorationUseCaseWithMetrics struct {
	next    RestorationUseCase
	metrics metrics.BusinessMetrics
}

// NewRestorationUseCaseWithMetrics wraps a RestorationUseCase with metrics recording.
func NewRestorationUseCaseWithMetrics(useCase RestorationUseCase, m metrics.BusinessMetrics) RestorationUseCase {
	return &restorationUseCaseWithMetrics{next: useCase, metrics: m}
}

// RestoreDocument records metrics for restoration operations.
func (r *restorationUseCaseWithMetrics) RestoreDocument(
	ctx context.Context,
	document string,
) (*redactionDomain.RestorationSummary, error) {
	start := time.Now()
	summary, err := r.next.RestoreDocument(ctx, document)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "redaction", "document_restore", status)
	r.metrics.RecordDuration(ctx, "redaction", "document_restore", time.Since(start), status)

	return summary, err
}

// inlineUseCaseWithMetrics decorates InlineUseCase with metrics instrumentation.
type inlineUseCaseWithMetrics struct {
	next    InlineUseCase
	metrics metrics.BusinessMetrics
}

// NewInlineUseCaseWithMetrics wraps an InlineUseCase with metrics recording.
func NewInlineUseCaseWithMetrics(useCase InlineUseCase, m metrics.BusinessMetrics) InlineUseCase {
	return &inlineUseCaseWithMetrics{next: useCase, metrics: m}
}

// RedactFragment records metrics for inline fragment redaction operations.
func (i *inlineUseCaseWithMetrics) RedactFragment(
	ctx context.Context,
	document string,
	fragment string,
	deepScan bool,
) (*redactionDomain.InlineSummary, error) {
	start := time.Now()
	summary, err := i.next.RedactFragment(ctx, document, fragment, deepScan)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "redaction", "fragment_redact", status)
	i.metrics.RecordDuration(ctx, "redaction", "fragment_redact", time.Since(start), status)

	return summary, err
}
