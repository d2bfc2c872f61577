package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	redactionUseCase "github.com/allisson/redactor/internal/redaction/usecase"
)

// RunRedactInline redacts a text fragment against a document's token map and
// prints the redacted text. The fragment is taken from the text argument, or
// read from in when the argument is empty. New tokens are merged into the
// document's existing map.
func RunRedactInline(
	ctx context.Context,
	useCase redactionUseCase.InlineUseCase,
	prober StatusProber,
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
	document string,
	text string,
	deepScan bool,
	format string,
) error {
	if document == "" {
		return fmt.Errorf("document name is required")
	}

	if text == "" {
		raw, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read fragment from input: %w", err)
		}
		text = strings.TrimRight(string(raw), "\n")
	}
	if text == "" {
		return fmt.Errorf("fragment text is required")
	}

	logger.Info("redacting fragment",
		slog.String("document", document),
		slog.Bool("deep_scan", deepScan),
	)

	refreshDetectorState(ctx, prober, logger)

	summary, err := useCase.RedactFragment(ctx, document, text, deepScan)
	if err != nil {
		return fmt.Errorf("failed to redact fragment: %w", err)
	}

	if format == "json" {
		conflicts := make([]map[string]string, 0, len(summary.Conflicts))
		for _, conflict := range summary.Conflicts {
			conflicts = append(conflicts, map[string]string{
				"token":    conflict.Token,
				"existing": conflict.Existing,
				"incoming": conflict.Incoming,
			})
		}
		return writeJSON(out, map[string]any{
			"document":      summary.Document,
			"redacted_text": summary.RedactedText,
			"entity_counts": summary.EntityCounts,
			"conflicts":     conflicts,
			"map_discarded": summary.MapDiscarded,
			"report":        summary.Report(),
		})
	}

	fmt.Fprintln(out, summary.RedactedText)
	fmt.Fprintln(out, summary.Report())
	return nil
}
