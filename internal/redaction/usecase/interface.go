// Package usecase implements the orchestration flows between the detection
// service, the token map store and the artifact store: whole-document
// redaction, restoration, and inline fragment redaction.
package usecase

import (
	"context"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
	detectorDomain "github.com/allisson/redactor/internal/detector/domain"
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
	tokenmapDomain "github.com/allisson/redactor/internal/tokenmap/domain"
)

// DetectorClient defines the detection service operations the orchestrators
// depend on.
type DetectorClient interface {
	Detect(ctx context.Context, text string, deepScan bool) (*detectorDomain.RedactionResult, error)
	Restore(ctx context.Context, text string, tokens map[string]string) (*detectorDomain.RestorationResult, error)
}

// HealthState exposes the cached availability of the detection service.
// Orchestrators consult it before doing any work and fail fast while offline.
type HealthState interface {
	Online() bool
}

// TokenMapRepository defines token map persistence operations.
type TokenMapRepository interface {
	Get(ctx context.Context, document string) (*tokenmapDomain.TokenMap, error)
	Save(ctx context.Context, tokenMap *tokenmapDomain.TokenMap) error
	Path(document string) string
}

// ArtifactRepository defines document artifact persistence operations.
type ArtifactRepository interface {
	ReadSource(ctx context.Context, path string) (string, error)
	ReadRedacted(ctx context.Context, document string) (string, error)
	SaveRedacted(ctx context.Context, document, text string) (string, error)
	SaveRestored(ctx context.Context, document, text string) (string, error)
}

// OperationRecorder persists audit records for completed operations. Recorder
// failures must never fail the recorded operation.
type OperationRecorder interface {
	Record(ctx context.Context, log *auditDomain.OperationLog) error
}

// RedactionUseCase redacts whole documents.
type RedactionUseCase interface {
	// RedactDocument reads the document at path, sends it for detection and
	// persists the redacted artifact plus a fresh token map. Any previous map
	// for the document is replaced wholesale, never merged.
	RedactDocument(ctx context.Context, path string, deepScan bool) (*redactionDomain.Summary, error)
}

// RestorationUseCase restores previously redacted documents.
type RestorationUseCase interface {
	// RestoreDocument loads the document's token map and redacted artifact,
	// sends both for restoration and persists the restored artifact. A missing
	// map is an error; an empty map is never fabricated. Tokens absent from
	// the map pass through unchanged.
	RestoreDocument(ctx context.Context, document string) (*redactionDomain.RestorationSummary, error)
}

// InlineUseCase redacts text fragments against a document's accumulated map.
type InlineUseCase interface {
	// RedactFragment redacts a fragment and merges the resulting tokens into
	// the document's existing map. A missing map is tolerated as empty; a
	// corrupted map is replaced and flagged in the summary. Merge conflicts
	// are surfaced, with the latest value winning.
	RedactFragment(ctx context.Context, document, fragment string, deepScan bool) (*redactionDomain.InlineSummary, error)
}
