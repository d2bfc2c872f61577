package usecase

import (
	"context"
	"log/slog"
	"time"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
	apperrors "github.com/allisson/redactor/internal/errors"
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
	tokenmapDomain "github.com/allisson/redactor/internal/tokenmap/domain"
)

// inlineUseCase implements fragment redaction against a document's
// accumulated token map.
type inlineUseCase struct {
	health   HealthState
	detector DetectorClient
	maps     TokenMapRepository
	recorder OperationRecorder
	locker   *DocumentLocker
	logger   *slog.Logger
}

// NewInlineUseCase creates a new inline redaction use case instance.
func NewInlineUseCase(
	health HealthState,
	detector DetectorClient,
	maps TokenMapRepository,
	recorder OperationRecorder,
	locker *DocumentLocker,
	logger *slog.Logger,
) InlineUseCase {
	return &inlineUseCase{
		health:   health,
		detector: detector,
		maps:     maps,
		recorder: recorder,
		locker:   locker,
		logger:   logger,
	}
}

// RedactFragment redacts a fragment of document and folds the resulting
// tokens into the document's map.
func (i *inlineUseCase) RedactFragment(
	ctx context.Context,
	document string,
	fragment string,
	deepScan bool,
) (*redactionDomain.InlineSummary, error) {
	if !i.health.Online() {
		return nil, i.fail(ctx, document, redactionDomain.ErrDetectorOffline)
	}

	result, err := i.detector.Detect(ctx, fragment, deepScan)
	if err != nil {
		return nil, i.fail(ctx, document, err)
	}

	// The read-merge-write cycle below must not interleave with another
	// operation writing the same document's map.
	release := i.locker.lock(document)
	defer release()

	mapDiscarded := false
	tokenMap, err := i.maps.Get(ctx, document)
	switch {
	case err == nil:
	case apperrors.Is(err, tokenmapDomain.ErrMapNotFound):
		// First fragment for this document, start an empty map.
		tokenMap = tokenmapDomain.New(document, time.Now())
	case apperrors.Is(err, tokenmapDomain.ErrMapCorrupted):
		// The stored map is unreadable. Starting fresh keeps the user's edit
		// flow alive; the discarded map is flagged so they know earlier
		// tokens can no longer be restored.
		i.logger.Warn("discarding corrupted token map",
			slog.String("document", document),
			slog.Any("error", err),
		)
		tokenMap = tokenmapDomain.New(document, time.Now())
		mapDiscarded = true
	default:
		return nil, i.fail(ctx, document, err)
	}

	conflicts := tokenMap.Merge(result.Tokens)
	for _, conflict := range conflicts {
		i.logger.Warn("token map merge conflict, keeping latest value",
			slog.String("document", document),
			slog.String("token", conflict.Token),
		)
	}

	if err := i.maps.Save(ctx, tokenMap); err != nil {
		return nil, i.fail(ctx, document, err)
	}

	summary := &redactionDomain.InlineSummary{
		Document:     document,
		RedactedText: result.RedactedText,
		EntityCounts: result.EntityCounts,
		Conflicts:    conflicts,
		MapDiscarded: mapDiscarded,
	}

	i.record(ctx, &auditDomain.OperationLog{
		Operation: auditDomain.OperationRedactInline,
		Document:  document,
		Status:    auditDomain.StatusSuccess,
		Entities:  result.TotalEntities(),
		Conflicts: len(conflicts),
	})

	return summary, nil
}

func (i *inlineUseCase) fail(ctx context.Context, document string, err error) error {
	i.record(ctx, &auditDomain.OperationLog{
		Operation: auditDomain.OperationRedactInline,
		Document:  document,
		Status:    auditDomain.StatusError,
		Detail:    err.Error(),
	})
	return err
}

func (i *inlineUseCase) record(ctx context.Context, log *auditDomain.OperationLog) {
	if err := i.recorder.Record(ctx, log); err != nil {
		i.logger.Warn("failed to record operation",
			slog.String("operation", log.Operation),
			slog.String("document", log.Document),
			slog.Any("error", err),
		)
	}
}
