package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
	"github.com/allisson/redactor/internal/audit/http/dto"
	auditMocks "github.com/allisson/redactor/internal/audit/usecase/mocks"
	apperrors "github.com/allisson/redactor/internal/errors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func setupRouter() (*gin.Engine, *auditMocks.MockAuditUseCase) {
	auditUseCase := &auditMocks.MockAuditUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewOperationLogHandler(auditUseCase, logger)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router, auditUseCase
}

func performGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestOperationLogHandler_ListHandler(t *testing.T) {
	t.Run("Success_ListOperations", func(t *testing.T) {
		router, auditUseCase := setupRouter()

		logID := uuid.Must(uuid.NewV7())
		logs := []*auditDomain.OperationLog{
			{
				ID:        logID,
				RequestID: "req-1",
				Operation: auditDomain.OperationRedact,
				Document:  "invoice.txt",
				Status:    auditDomain.StatusSuccess,
				Entities:  2,
				CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
		}
		auditUseCase.On("List", mock.Anything, 0, 50).Return(logs, nil)

		w := performGet(router, "/v1/operations")

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListOperationLogsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, logID.String(), response.Data[0].ID)
		assert.Equal(t, "redact", response.Data[0].Operation)
		assert.Equal(t, "2025-06-01T12:00:00Z", response.Data[0].CreatedAt)
		assert.Equal(t, 0, response.Offset)
		assert.Equal(t, 50, response.Limit)
	})

	t.Run("Success_WithPagination", func(t *testing.T) {
		router, auditUseCase := setupRouter()

		auditUseCase.On("List", mock.Anything, 10, 5).
			Return([]*auditDomain.OperationLog{}, nil)

		w := performGet(router, "/v1/operations?offset=10&limit=5")

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListOperationLogsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Empty(t, response.Data)
		assert.Equal(t, 10, response.Offset)
		assert.Equal(t, 5, response.Limit)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		router, auditUseCase := setupRouter()

		w := performGet(router, "/v1/operations?limit=1000")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		auditUseCase.AssertNotCalled(t, "List")
	})

	t.Run("Error_PersistenceFailure", func(t *testing.T) {
		router, auditUseCase := setupRouter()

		auditUseCase.On("List", mock.Anything, 0, 50).
			Return(nil, apperrors.Wrap(apperrors.ErrPersistence, "query operation logs"))

		w := performGet(router, "/v1/operations")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "persistence_failure")
	})
}
