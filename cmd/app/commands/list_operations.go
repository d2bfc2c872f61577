package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	auditUseCase "github.com/allisson/redactor/internal/audit/usecase"
)

// RunListOperations prints recorded operations newest first.
//
// Requirements: database must be migrated and accessible.
func RunListOperations(
	ctx context.Context,
	useCase auditUseCase.AuditUseCase,
	logger *slog.Logger,
	out io.Writer,
	offset int,
	limit int,
	format string,
) error {
	if offset < 0 {
		return fmt.Errorf("offset must be a non-negative number, got: %d", offset)
	}
	if limit < 1 || limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100, got: %d", limit)
	}

	logger.Info("listing operations", slog.Int("offset", offset), slog.Int("limit", limit))

	logs, err := useCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}

	if format == "json" {
		entries := make([]map[string]any, 0, len(logs))
		for _, log := range logs {
			entries = append(entries, map[string]any{
				"id":         log.ID.String(),
				"request_id": log.RequestID,
				"operation":  log.Operation,
				"document":   log.Document,
				"status":     log.Status,
				"entities":   log.Entities,
				"conflicts":  log.Conflicts,
				"detail":     log.Detail,
				"created_at": log.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		return writeJSON(out, entries)
	}

	if len(logs) == 0 {
		fmt.Fprintln(out, "No operations recorded")
		return nil
	}

	for _, log := range logs {
		line := fmt.Sprintf(
			"%s  %-13s %-8s %s (entities: %d",
			log.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			log.Operation,
			log.Status,
			log.Document,
			log.Entities,
		)
		if log.Conflicts > 0 {
			line += fmt.Sprintf(", conflicts: %d", log.Conflicts)
		}
		line += ")"
		if log.Detail != "" {
			line += fmt.Sprintf(" %s", log.Detail)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
