package usecase

import (
	"context"
	"log/slog"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
)

// restorationUseCase implements restoration of redacted documents.
type restorationUseCase struct {
	health    HealthState
	detector  DetectorClient
	artifacts ArtifactRepository
	maps      TokenMapRepository
	recorder  OperationRecorder
	logger    *slog.Logger
}

// NewRestorationUseCase creates a new restoration use case instance.
func NewRestorationUseCase(
	health HealthState,
	detector DetectorClient,
	artifacts ArtifactRepository,
	maps TokenMapRepository,
	recorder OperationRecorder,
	logger *slog.Logger,
) RestorationUseCase {
	return &restorationUseCase{
		health:    health,
		detector:  detector,
		artifacts: artifacts,
		maps:      maps,
		recorder:  recorder,
		logger:    logger,
	}
}

// RestoreDocument restores the redacted artifact of document back to its
// original values using the persisted token map.
func (r *restorationUseCase) RestoreDocument(
	ctx context.Context,
	document string,
) (*redactionDomain.RestorationSummary, error) {
	if !r.health.Online() {
		return nil, r.fail(ctx, document, redactionDomain.ErrDetectorOffline)
	}

	// The map is loaded before anything else: restoration without the real
	// map would silently produce a still-redacted document, so a missing or
	// corrupted map aborts before any network call.
	tokenMap, err := r.maps.Get(ctx, document)
	if err != nil {
		return nil, r.fail(ctx, document, err)
	}

	text, err := r.artifacts.ReadRedacted(ctx, document)
	if err != nil {
		return nil, r.fail(ctx, document, err)
	}

	result, err := r.detector.Restore(ctx, text, tokenMap.Tokens)
	if err != nil {
		return nil, r.fail(ctx, document, err)
	}

	restoredPath, err := r.artifacts.SaveRestored(ctx, document, result.RestoredText)
	if err != nil {
		return nil, r.fail(ctx, document, err)
	}

	summary := &redactionDomain.RestorationSummary{
		Document:     document,
		RestoredPath: restoredPath,
		TokenCount:   tokenMap.Count(),
	}

	r.record(ctx, &auditDomain.OperationLog{
		Operation: auditDomain.OperationRestore,
		Document:  document,
		Status:    auditDomain.StatusSuccess,
		Entities:  tokenMap.Count(),
	})

	return summary, nil
}

func (r *restorationUseCase) fail(ctx context.Context, document string, err error) error {
	r.record(ctx, &auditDomain.OperationLog{
		Operation: auditDomain.OperationRestore,
		Document:  document,
		Status:    auditDomain.StatusError,
		Detail:    err.Error(),
	})
	return err
}

func (r *restorationUseCase) record(ctx context.Context, log *auditDomain.OperationLog) {
	if err := r.recorder.Record(ctx, log); err != nil {
		r.logger.Warn("failed to record operation",
			slog.String("operation", log.Operation),
			slog.String("document", log.Document),
			slog.Any("error", err),
		)
	}
}
