package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	redactionUseCase "github.com/allisson/redactor/internal/redaction/usecase"
)

// RunRedact redacts the document at path and reports where the redacted
// artifact and token map were written.
//
// Requirements: the detection service must be reachable on its configured
// loopback address.
func RunRedact(
	ctx context.Context,
	useCase redactionUseCase.RedactionUseCase,
	prober StatusProber,
	logger *slog.Logger,
	out io.Writer,
	path string,
	deepScan bool,
	format string,
) error {
	if path == "" {
		return fmt.Errorf("document path is required")
	}

	logger.Info("redacting document",
		slog.String("path", path),
		slog.Bool("deep_scan", deepScan),
	)

	refreshDetectorState(ctx, prober, logger)

	summary, err := useCase.RedactDocument(ctx, path, deepScan)
	if err != nil {
		return fmt.Errorf("failed to redact document: %w", err)
	}

	if format == "json" {
		return writeJSON(out, map[string]any{
			"document":      summary.Document,
			"redacted_path": summary.RedactedPath,
			"map_path":      summary.MapPath,
			"entity_counts": summary.EntityCounts,
			"token_count":   summary.TokenCount,
			"report":        summary.Report(),
		})
	}

	fmt.Fprintln(out, summary.Report())
	fmt.Fprintf(out, "Redacted document: %s\n", summary.RedactedPath)
	fmt.Fprintf(out, "Token map: %s\n", summary.MapPath)
	return nil
}
