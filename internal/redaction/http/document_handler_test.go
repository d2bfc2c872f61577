package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	detectorDomain "github.com/allisson/redactor/internal/detector/domain"
	"github.com/allisson/redactor/internal/health"
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
	"github.com/allisson/redactor/internal/redaction/http/dto"
	redactionMocks "github.com/allisson/redactor/internal/redaction/usecase/mocks"
	tokenmapDomain "github.com/allisson/redactor/internal/tokenmap/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// mockStatusChecker is a mock implementation of StatusChecker for testing.
type mockStatusChecker struct {
	mock.Mock
}

func (m *mockStatusChecker) CheckNow(ctx context.Context) (*detectorDomain.ServiceStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*detectorDomain.ServiceStatus), args.Error(1)
}

func (m *mockStatusChecker) State() health.State {
	args := m.Called()
	return args.Get(0).(health.State)
}

type handlerMocks struct {
	redaction   *redactionMocks.MockRedactionUseCase
	restoration *redactionMocks.MockRestorationUseCase
	inline      *redactionMocks.MockInlineUseCase
	status      *mockStatusChecker
}

func setupRouter() (*gin.Engine, *handlerMocks) {
	mocks := &handlerMocks{
		redaction:   &redactionMocks.MockRedactionUseCase{},
		restoration: &redactionMocks.MockRestorationUseCase{},
		inline:      &redactionMocks.MockInlineUseCase{},
		status:      &mockStatusChecker{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewDocumentHandler(mocks.redaction, mocks.restoration, mocks.inline, mocks.status, logger)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router, mocks
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestDocumentHandler_RedactHandler(t *testing.T) {
	t.Run("Success_RedactDocument", func(t *testing.T) {
		router, mocks := setupRouter()

		summary := &redactionDomain.Summary{
			Document:     "invoice.txt",
			RedactedPath: "data/redacted/invoice.txt",
			MapPath:      "data/maps/invoice.txt.map.json",
			EntityCounts: map[string]int{"PERSON": 1, "EMAIL": 1},
			TokenCount:   2,
		}
		mocks.redaction.On("RedactDocument", mock.Anything, "invoice.txt", true).
			Return(summary, nil)

		w := performJSON(router, http.MethodPost, "/v1/documents/redact", gin.H{
			"document":  "invoice.txt",
			"deep_scan": true,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.RedactDocumentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invoice.txt", response.Document)
		assert.Equal(t, 2, response.TokenCount)
		assert.Equal(t, "redacted invoice.txt: 1 names, 1 emails", response.Report)
	})

	t.Run("Error_MissingDocument", func(t *testing.T) {
		router, _ := setupRouter()

		w := performJSON(router, http.MethodPost, "/v1/documents/redact", gin.H{"deep_scan": true})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_BlankDocument", func(t *testing.T) {
		router, _ := setupRouter()

		w := performJSON(router, http.MethodPost, "/v1/documents/redact", gin.H{"document": "   "})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_DetectorOffline", func(t *testing.T) {
		router, mocks := setupRouter()

		mocks.redaction.On("RedactDocument", mock.Anything, "invoice.txt", false).
			Return(nil, redactionDomain.ErrDetectorOffline)

		w := performJSON(router, http.MethodPost, "/v1/documents/redact", gin.H{"document": "invoice.txt"})

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "service_unavailable")
	})
}

func TestDocumentHandler_RestoreHandler(t *testing.T) {
	t.Run("Success_RestoreDocument", func(t *testing.T) {
		router, mocks := setupRouter()

		summary := &redactionDomain.RestorationSummary{
			Document:     "invoice.txt",
			RestoredPath: "data/restored/invoice.txt",
			TokenCount:   2,
		}
		mocks.restoration.On("RestoreDocument", mock.Anything, "invoice.txt").
			Return(summary, nil)

		w := performJSON(router, http.MethodPost, "/v1/documents/restore", gin.H{"document": "invoice.txt"})

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.RestoreDocumentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "data/restored/invoice.txt", response.RestoredPath)
	})

	t.Run("Error_MapNotFound", func(t *testing.T) {
		router, mocks := setupRouter()

		mocks.restoration.On("RestoreDocument", mock.Anything, "invoice.txt").
			Return(nil, tokenmapDomain.ErrMapNotFound)

		w := performJSON(router, http.MethodPost, "/v1/documents/restore", gin.H{"document": "invoice.txt"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_MapCorrupted", func(t *testing.T) {
		router, mocks := setupRouter()

		mocks.restoration.On("RestoreDocument", mock.Anything, "invoice.txt").
			Return(nil, tokenmapDomain.ErrMapCorrupted)

		w := performJSON(router, http.MethodPost, "/v1/documents/restore", gin.H{"document": "invoice.txt"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "corrupted_data")
	})
}

func TestDocumentHandler_RedactFragmentHandler(t *testing.T) {
	t.Run("Success_RedactFragment", func(t *testing.T) {
		router, mocks := setupRouter()

		summary := &redactionDomain.InlineSummary{
			Document:     "notes.txt",
			RedactedText: "Call [PERSON_1] on [PHONE_1]",
			EntityCounts: map[string]int{"PERSON": 1, "PHONE": 1},
			Conflicts: []tokenmapDomain.Conflict{
				{Token: "[PERSON_1]", Existing: "John Smith", Incoming: "Jane Doe"},
			},
		}
		mocks.inline.On("RedactFragment", mock.Anything, "notes.txt", "Call Jane Doe on 07911 123456", false).
			Return(summary, nil)

		w := performJSON(router, http.MethodPost, "/v1/fragments/redact", gin.H{
			"document": "notes.txt",
			"fragment": "Call Jane Doe on 07911 123456",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.RedactFragmentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Call [PERSON_1] on [PHONE_1]", response.RedactedText)
		require.Len(t, response.Conflicts, 1)
		assert.Equal(t, "[PERSON_1]", response.Conflicts[0].Token)
	})

	t.Run("Error_MissingFragment", func(t *testing.T) {
		router, _ := setupRouter()

		w := performJSON(router, http.MethodPost, "/v1/fragments/redact", gin.H{"document": "notes.txt"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDocumentHandler_DetectorStatusHandler(t *testing.T) {
	t.Run("Success_ServiceUp", func(t *testing.T) {
		router, mocks := setupRouter()

		model := "phi3:mini"
		mocks.status.On("CheckNow", mock.Anything).Return(&detectorDomain.ServiceStatus{
			ServiceUp:     true,
			DetectorReady: true,
			DeepScanReady: true,
			DeepScanModel: model,
		}, nil)
		mocks.status.On("State").Return(health.StateOnline)

		w := performJSON(router, http.MethodGet, "/v1/detector/status", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.DetectorStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.ServiceUp)
		assert.True(t, response.DeepScanReady)
		assert.Equal(t, "phi3:mini", response.DeepScanModel)
		assert.Equal(t, "online", response.State)
	})

	t.Run("Success_ServiceDownReportedAsData", func(t *testing.T) {
		router, mocks := setupRouter()

		mocks.status.On("CheckNow", mock.Anything).
			Return(nil, detectorDomain.ErrServiceUnavailable)
		mocks.status.On("State").Return(health.StateOffline)

		w := performJSON(router, http.MethodGet, "/v1/detector/status", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.DetectorStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.ServiceUp)
		assert.Equal(t, "offline", response.State)
	})
}
