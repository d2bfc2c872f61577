package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
	apperrors "github.com/allisson/redactor/internal/errors"
)

// auditUseCase implements the AuditUseCase interface.
type auditUseCase struct {
	operationLogRepo OperationLogRepository
}

// NewAuditUseCase creates a new AuditUseCase with the provided dependencies.
func NewAuditUseCase(operationLogRepo OperationLogRepository) AuditUseCase {
	return &auditUseCase{operationLogRepo: operationLogRepo}
}

// Record persists an operation log entry. Generates a unique UUIDv7
// identifier and timestamp and picks up the request ID from the context when
// the caller did not set one.
func (a *auditUseCase) Record(ctx context.Context, log *auditDomain.OperationLog) error {
	log.ID = uuid.Must(uuid.NewV7())
	log.CreatedAt = time.Now().UTC()
	if log.RequestID == "" {
		log.RequestID = auditDomain.RequestIDFromContext(ctx)
	}

	if err := a.operationLogRepo.Create(ctx, log); err != nil {
		return apperrors.Wrap(err, "failed to record operation log")
	}

	return nil
}

// List retrieves operation logs newest first with pagination.
func (a *auditUseCase) List(ctx context.Context, offset, limit int) ([]*auditDomain.OperationLog, error) {
	logs, err := a.operationLogRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list operation logs")
	}

	return logs, nil
}

// Clean removes operation logs older than the retention period.
func (a *auditUseCase) Clean(ctx context.Context, olderThan time.Duration, dryRun bool) (int64, error) {
	before := time.Now().UTC().Add(-olderThan)

	affected, err := a.operationLogRepo.DeleteOlderThan(ctx, before, dryRun)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to clean operation logs")
	}

	return affected, nil
}
