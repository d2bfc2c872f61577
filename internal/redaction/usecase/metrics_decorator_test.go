package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/redactor/internal/metrics"
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
	redactionMocks "github.com/allisson/redactor/internal/redaction/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestRedactionMetricsDecorator(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &redactionMocks.MockRedactionUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		expected := &redactionDomain.Summary{Document: "invoice.txt"}
		mockUseCase.On("RedactDocument", ctx, "invoice.txt", false).Return(expected, nil)
		mockMetrics.On("RecordOperation", ctx, "redaction", "document_redact", "success").Return()
		mockMetrics.On("RecordDuration", ctx, "redaction", "document_redact", mock.Anything, "success").Return()

		decorator := NewRedactionUseCaseWithMetrics(mockUseCase, mockMetrics)
		summary, err := decorator.RedactDocument(ctx, "invoice.txt", false)

		assert.NoError(t, err)
		assert.Equal(t, expected, summary)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &redactionMocks.MockRedactionUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("RedactDocument", ctx, "invoice.txt", false).
			Return(nil, redactionDomain.ErrDetectorOffline)
		mockMetrics.On("RecordOperation", ctx, "redaction", "document_redact", "error").Return()
		mockMetrics.On("RecordDuration", ctx, "redaction", "document_redact", mock.Anything, "error").Return()

		decorator := NewRedactionUseCaseWithMetrics(mockUseCase, mockMetrics)
		_, err := decorator.RedactDocument(ctx, "invoice.txt", false)

		assert.ErrorIs(t, err, redactionDomain.ErrDetectorOffline)
		mockMetrics.AssertExpectations(t)
	})
}

func TestRestorationMetricsDecorator(t *testing.T) {
	ctx := context.Background()

	mockUseCase := &redactionMocks.MockRestorationUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	expected := &redactionDomain.RestorationSummary{Document: "invoice.txt"}
	mockUseCase.On("RestoreDocument", ctx, "invoice.txt").Return(expected, nil)
	mockMetrics.On("RecordOperation", ctx, "redaction", "document_restore", "success").Return()
	mockMetrics.On("RecordDuration", ctx, "redaction", "document_restore", mock.Anything, "success").Return()

	decorator := NewRestorationUseCaseWithMetrics(mockUseCase, mockMetrics)
	summary, err := decorator.RestoreDocument(ctx, "invoice.txt")

	assert.NoError(t, err)
	assert.Equal(t, expected, summary)
	mockMetrics.AssertExpectations(t)
}

func TestInlineMetricsDecorator(t *testing.T) {
	ctx := context.Background()

	mockUseCase := &redactionMocks.MockInlineUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	expected := &redactionDomain.InlineSummary{Document: "notes.txt"}
	mockUseCase.On("RedactFragment", ctx, "notes.txt", "fragment", true).Return(expected, nil)
	mockMetrics.On("RecordOperation", ctx, "redaction", "fragment_redact", "success").Return()
	mockMetrics.On("RecordDuration", ctx, "redaction", "fragment_redact", mock.Anything, "success").Return()

	decorator := NewInlineUseCaseWithMetrics(mockUseCase, mockMetrics)
	summary, err := decorator.RedactFragment(ctx, "notes.txt", "fragment", true)

	assert.NoError(t, err)
	assert.Equal(t, expected, summary)
	mockMetrics.AssertExpectations(t)
}
