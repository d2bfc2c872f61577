// Package dto provides data transfer objects for the audit log HTTP API.
package dto

import (
	"time"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
)

// OperationLogResponse represents a single audit log entry in API responses.
type OperationLogResponse struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id,omitempty"`
	Operation string `json:"operation"`
	Document  string `json:"document"`
	Status    string `json:"status"`
	Entities  int    `json:"entities"`
	Conflicts int    `json:"conflicts"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ListOperationLogsResponse represents a page of audit log entries.
type ListOperationLogsResponse struct {
	Data   []OperationLogResponse `json:"data"`
	Offset int                    `json:"offset"`
	Limit  int                    `json:"limit"`
}

// MapOperationLogToResponse converts an operation log to an API response.
func MapOperationLogToResponse(log *auditDomain.OperationLog) OperationLogResponse {
	return OperationLogResponse{
		ID:        log.ID.String(),
		RequestID: log.RequestID,
		Operation: log.Operation,
		Document:  log.Document,
		Status:    log.Status,
		Entities:  log.Entities,
		Conflicts: log.Conflicts,
		Detail:    log.Detail,
		CreatedAt: log.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// MapOperationLogsToResponse converts a page of operation logs to an API response.
func MapOperationLogsToResponse(logs []*auditDomain.OperationLog, offset, limit int) ListOperationLogsResponse {
	data := make([]OperationLogResponse, 0, len(logs))
	for _, log := range logs {
		data = append(data, MapOperationLogToResponse(log))
	}
	return ListOperationLogsResponse{
		Data:   data,
		Offset: offset,
		Limit:  limit,
	}
}
