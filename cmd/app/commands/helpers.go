// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/redactor/internal/app"
	detectorDomain "github.com/allisson/redactor/internal/detector/domain"
	"github.com/allisson/redactor/internal/health"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// StatusProber refreshes and reports the detection service status. One-shot
// commands probe once before invoking a use case so the health gate reflects
// reality rather than the initial offline state.
type StatusProber interface {
	CheckNow(ctx context.Context) (*detectorDomain.ServiceStatus, error)
	State() health.State
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// refreshDetectorState probes the detection service once, ignoring the
// outcome. A failed probe leaves the cached state offline and the use case's
// health gate produces the canonical error.
func refreshDetectorState(ctx context.Context, prober StatusProber, logger *slog.Logger) {
	if _, err := prober.CheckNow(ctx); err != nil {
		logger.Warn("detection service probe failed", slog.Any("error", err))
	}
}

// writeJSON writes value as indented JSON to w.
func writeJSON(w io.Writer, value any) error {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(jsonBytes))
	return nil
}
