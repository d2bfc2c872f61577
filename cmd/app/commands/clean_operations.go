package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	auditUseCase "github.com/allisson/redactor/internal/audit/usecase"
)

// RunCleanOperations deletes operation logs older than the specified number
// of days. Supports dry-run mode to preview the deletion count.
//
// Requirements: database must be migrated and accessible.
func RunCleanOperations(
	ctx context.Context,
	useCase auditUseCase.AuditUseCase,
	logger *slog.Logger,
	out io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	logger.Info("cleaning operation logs",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	count, err := useCase.Clean(ctx, time.Duration(days)*24*time.Hour, dryRun)
	if err != nil {
		return fmt.Errorf("failed to clean operation logs: %w", err)
	}

	if format == "json" {
		if err := writeJSON(out, map[string]any{
			"count":   count,
			"days":    days,
			"dry_run": dryRun,
		}); err != nil {
			return err
		}
	} else if dryRun {
		fmt.Fprintf(out, "Dry-run mode: Would delete %d operation log(s) older than %d day(s)\n", count, days)
	} else {
		fmt.Fprintf(out, "Successfully deleted %d operation log(s) older than %d day(s)\n", count, days)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}
