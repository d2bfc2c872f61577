// Package repository implements operation log persistence for SQLite.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
	apperrors "github.com/allisson/redactor/internal/errors"
)

// SQLiteOperationLogRepository implements OperationLog persistence for SQLite.
// Identifiers are stored as their canonical string form.
type SQLiteOperationLogRepository struct {
	db *sql.DB
}

// NewSQLiteOperationLogRepository creates a new SQLite OperationLog repository.
func NewSQLiteOperationLogRepository(db *sql.DB) *SQLiteOperationLogRepository {
	return &SQLiteOperationLogRepository{db: db}
}

// Create inserts a new OperationLog into the database.
func (s *SQLiteOperationLogRepository) Create(ctx context.Context, log *auditDomain.OperationLog) error {
	query := `INSERT INTO operation_logs
			  (id, request_id, operation, document, status, entities, conflicts, detail, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		log.ID.String(),
		log.RequestID,
		log.Operation,
		log.Document,
		log.Status,
		log.Entities,
		log.Conflicts,
		log.Detail,
		log.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create operation log")
	}

	return nil
}

// List retrieves operation logs ordered by ID descending (newest first) with
// pagination. Returns an empty slice if no logs match.
func (s *SQLiteOperationLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.OperationLog, error) {
	query := `SELECT id, request_id, operation, document, status, entities, conflicts, detail, created_at
			  FROM operation_logs
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list operation logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	logs := make([]*auditDomain.OperationLog, 0)
	for rows.Next() {
		var log auditDomain.OperationLog
		var id string

		err := rows.Scan(
			&id,
			&log.RequestID,
			&log.Operation,
			&log.Document,
			&log.Status,
			&log.Entities,
			&log.Conflicts,
			&log.Detail,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan operation log")
		}

		log.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to parse operation log id")
		}

		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate operation logs")
	}

	return logs, nil
}

// DeleteOlderThan removes operation logs created before the given time and
// returns the number of affected rows. With dryRun set the logs are only
// counted, never removed.
func (s *SQLiteOperationLogRepository) DeleteOlderThan(
	ctx context.Context,
	before time.Time,
	dryRun bool,
) (int64, error) {
	if dryRun {
		var count int64
		query := `SELECT COUNT(*) FROM operation_logs WHERE created_at < ?`
		if err := s.db.QueryRowContext(ctx, query, before).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count operation logs")
		}
		return count, nil
	}

	query := `DELETE FROM operation_logs WHERE created_at < ?`
	result, err := s.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete operation logs")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}

	return affected, nil
}
