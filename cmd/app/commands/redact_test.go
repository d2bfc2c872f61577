package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	detectorDomain "github.com/allisson/redactor/internal/detector/domain"
	"github.com/allisson/redactor/internal/health"
	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
	redactionMocks "github.com/allisson/redactor/internal/redaction/usecase/mocks"
)

// mockStatusProber is a mock implementation of StatusProber for testing.
type mockStatusProber struct {
	mock.Mock
}

func (m *mockStatusProber) CheckNow(ctx context.Context) (*detectorDomain.ServiceStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*detectorDomain.ServiceStatus), args.Error(1)
}

func (m *mockStatusProber) State() health.State {
	args := m.Called()
	return args.Get(0).(health.State)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func onlineProber() *mockStatusProber {
	prober := &mockStatusProber{}
	prober.On("CheckNow", mock.Anything).Return(&detectorDomain.ServiceStatus{
		ServiceUp:     true,
		DetectorReady: true,
	}, nil)
	return prober
}

func TestRunRedact(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &redactionMocks.MockRedactionUseCase{}
		mockUseCase.On("RedactDocument", ctx, "docs/invoice.txt", false).Return(&redactionDomain.Summary{
			Document:     "invoice.txt",
			RedactedPath: "data/redacted/invoice.txt",
			MapPath:      "data/maps/invoice.txt.map.json",
			EntityCounts: map[string]int{"PERSON": 1, "EMAIL": 1},
			TokenCount:   2,
		}, nil)

		var out bytes.Buffer
		err := RunRedact(ctx, mockUseCase, onlineProber(), testLogger(), &out, "docs/invoice.txt", false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "redacted invoice.txt: 1 names, 1 emails")
		require.Contains(t, out.String(), "data/redacted/invoice.txt")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &redactionMocks.MockRedactionUseCase{}
		mockUseCase.On("RedactDocument", ctx, "docs/invoice.txt", true).Return(&redactionDomain.Summary{
			Document:   "invoice.txt",
			TokenCount: 3,
		}, nil)

		var out bytes.Buffer
		err := RunRedact(ctx, mockUseCase, onlineProber(), testLogger(), &out, "docs/invoice.txt", true, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"token_count": 3`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("detector-offline", func(t *testing.T) {
		mockUseCase := &redactionMocks.MockRedactionUseCase{}
		mockUseCase.On("RedactDocument", ctx, "docs/invoice.txt", false).
			Return(nil, redactionDomain.ErrDetectorOffline)

		prober := &mockStatusProber{}
		prober.On("CheckNow", mock.Anything).Return(nil, detectorDomain.ErrServiceUnavailable)

		err := RunRedact(ctx, mockUseCase, prober, testLogger(), &bytes.Buffer{}, "docs/invoice.txt", false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to redact document")
	})

	t.Run("missing-path", func(t *testing.T) {
		mockUseCase := &redactionMocks.MockRedactionUseCase{}

		err := RunRedact(ctx, mockUseCase, onlineProber(), testLogger(), &bytes.Buffer{}, "", false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "document path is required")
		mockUseCase.AssertNotCalled(t, "RedactDocument")
	})
}
