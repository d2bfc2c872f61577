// Package usecase implements business logic for the operation audit log.
package usecase

import (
	"context"
	"time"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
)

// OperationLogRepository defines the interface for OperationLog persistence.
type OperationLogRepository interface {
	Create(ctx context.Context, log *auditDomain.OperationLog) error
	List(ctx context.Context, offset, limit int) ([]*auditDomain.OperationLog, error)
	DeleteOlderThan(ctx context.Context, before time.Time, dryRun bool) (int64, error)
}

// AuditUseCase defines the interface for recording and querying operation logs.
type AuditUseCase interface {
	// Record persists an operation log entry, filling in the identifier,
	// timestamp and any request ID carried by the context.
	Record(ctx context.Context, log *auditDomain.OperationLog) error
	// List retrieves operation logs newest first with pagination.
	List(ctx context.Context, offset, limit int) ([]*auditDomain.OperationLog, error)
	// Clean removes operation logs older than the retention period. With
	// dryRun set it only reports how many entries would be removed.
	Clean(ctx context.Context, olderThan time.Duration, dryRun bool) (int64, error)
}
