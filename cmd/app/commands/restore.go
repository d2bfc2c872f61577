package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	redactionUseCase "github.com/allisson/redactor/internal/redaction/usecase"
)

// RunRestore restores a previously redacted document back to its original
// values using the persisted token map.
//
// Requirements: the document must have been redacted before so its token map
// and redacted artifact exist.
func RunRestore(
	ctx context.Context,
	useCase redactionUseCase.RestorationUseCase,
	prober StatusProber,
	logger *slog.Logger,
	out io.Writer,
	document string,
	format string,
) error {
	if document == "" {
		return fmt.Errorf("document name is required")
	}

	logger.Info("restoring document", slog.String("document", document))

	refreshDetectorState(ctx, prober, logger)

	summary, err := useCase.RestoreDocument(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to restore document: %w", err)
	}

	if format == "json" {
		return writeJSON(out, map[string]any{
			"document":      summary.Document,
			"restored_path": summary.RestoredPath,
			"token_count":   summary.TokenCount,
			"report":        summary.Report(),
		})
	}

	fmt.Fprintln(out, summary.Report())
	fmt.Fprintf(out, "Restored document: %s\n", summary.RestoredPath)
	return nil
}
