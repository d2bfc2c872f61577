package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/redactor/internal/errors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
	}{
		{
			name:          "not found",
			err:           apperrors.ErrNotFound,
			expectedCode:  http.StatusNotFound,
			expectedError: "not_found",
		},
		{
			name:          "wrapped not found",
			err:           apperrors.Wrap(apperrors.ErrNotFound, "token map for invoice.txt"),
			expectedCode:  http.StatusNotFound,
			expectedError: "not_found",
		},
		{
			name:          "invalid input",
			err:           apperrors.ErrInvalidInput,
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid_input",
		},
		{
			name:          "unavailable",
			err:           apperrors.Wrap(apperrors.ErrUnavailable, "detection service is offline"),
			expectedCode:  http.StatusServiceUnavailable,
			expectedError: "service_unavailable",
		},
		{
			name:          "corrupted",
			err:           apperrors.Wrap(apperrors.ErrCorrupted, "token map unreadable"),
			expectedCode:  http.StatusConflict,
			expectedError: "corrupted_data",
		},
		{
			name:          "persistence failure",
			err:           apperrors.Wrap(apperrors.ErrPersistence, "disk full"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "persistence_failure",
		},
		{
			name:          "unknown error",
			err:           apperrors.New("boom"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, discardLogger())

			assert.Equal(t, tt.expectedCode, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedError, response.Error)
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, nil, discardLogger())

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, apperrors.New("malformed json"), discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, "malformed json", response.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, apperrors.New("document: cannot be blank"), discardLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response.Error)
}
