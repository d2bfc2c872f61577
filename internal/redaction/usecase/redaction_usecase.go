package usecase

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
	tokenmapDomain "github.com/allisson/redactor/internal/tokenmap/domain"
)

// redactionUseCase implements whole-document redaction.
type redactionUseCase struct {
	health    HealthState
	detector  DetectorClient
	artifacts ArtifactRepository
	maps      TokenMapRepository
	recorder  OperationRecorder
	locker    *DocumentLocker
	logger    *slog.Logger
}

// NewRedactionUseCase creates a new redaction use case instance.
func NewRedactionUseCase(
	health HealthState,
	detector DetectorClient,
	artifacts ArtifactRepository,
	maps TokenMapRepository,
	recorder OperationRecorder,
	locker *DocumentLocker,
	logger *slog.Logger,
) RedactionUseCase {
	return &redactionUseCase{
		health:    health,
		detector:  detector,
		artifacts: artifacts,
		maps:      maps,
		recorder:  recorder,
		locker:    locker,
		logger:    logger,
	}
}

// RedactDocument runs the full redaction flow for the document at path.
func (r *redactionUseCase) RedactDocument(
	ctx context.Context,
	path string,
	deepScan bool,
) (*redactionDomain.Summary, error) {
	document := filepath.Base(path)

	if !r.health.Online() {
		return nil, r.fail(ctx, document, redactionDomain.ErrDetectorOffline)
	}

	text, err := r.artifacts.ReadSource(ctx, path)
	if err != nil {
		return nil, r.fail(ctx, document, err)
	}

	result, err := r.detector.Detect(ctx, text, deepScan)
	if err != nil {
		// Detection failed, so nothing has been written yet and nothing is.
		return nil, r.fail(ctx, document, err)
	}

	release := r.locker.lock(document)
	defer release()

	redactedPath, err := r.artifacts.SaveRedacted(ctx, document, result.RedactedText)
	if err != nil {
		return nil, r.fail(ctx, document, err)
	}

	// A full-document run supersedes any earlier map for this document; the
	// fresh map replaces it wholesale.
	tokenMap := tokenmapDomain.New(document, time.Now())
	tokenMap.Merge(result.Tokens)
	if err := r.maps.Save(ctx, tokenMap); err != nil {
		return nil, r.fail(ctx, document, err)
	}

	summary := &redactionDomain.Summary{
		Document:     document,
		RedactedPath: redactedPath,
		MapPath:      r.maps.Path(document),
		EntityCounts: result.EntityCounts,
		TokenCount:   tokenMap.Count(),
	}

	r.record(ctx, &auditDomain.OperationLog{
		Operation: auditDomain.OperationRedact,
		Document:  document,
		Status:    auditDomain.StatusSuccess,
		Entities:  summary.TotalEntities(),
	})

	return summary, nil
}

// fail records the failed operation and returns the original error.
func (r *redactionUseCase) fail(ctx context.Context, document string, err error) error {
	r.record(ctx, &auditDomain.OperationLog{
		Operation: auditDomain.OperationRedact,
		Document:  document,
		Status:    auditDomain.StatusError,
		Detail:    err.Error(),
	})
	return err
}

// record persists the audit entry. Recording failures are logged and dropped.
func (r *redactionUseCase) record(ctx context.Context, log *auditDomain.OperationLog) {
	if err := r.recorder.Record(ctx, log); err != nil {
		r.logger.Warn("failed to record operation",
			slog.String("operation", log.Operation),
			slog.String("document", log.Document),
			slog.Any("error", err),
		)
	}
}
