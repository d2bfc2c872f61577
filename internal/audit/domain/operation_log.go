// Package domain defines the operation audit log entities. Every redaction,
// restoration and inline-redaction run is recorded so users can answer "what
// left this machine redacted, and when".
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Operation names recorded in the audit log.
const (
	OperationRedact       = "redact"
	OperationRestore      = "restore"
	OperationRedactInline = "redact_inline"
)

// Operation outcome values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// OperationLog records a single orchestrated operation.
type OperationLog struct {
	ID        uuid.UUID `json:"id"`
	RequestID string    `json:"request_id,omitempty"`
	Operation string    `json:"operation"`
	Document  string    `json:"document"`
	Status    string    `json:"status"`
	Entities  int       `json:"entities"`
	Conflicts int       `json:"conflicts"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type requestIDKey struct{}

// ContextWithRequestID attaches the inbound request identifier so audit
// records created deeper in the call chain can carry it. CLI invocations
// leave it unset.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request identifier attached by
// ContextWithRequestID, or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
