// Package mocks provides mock implementations of the orchestrator
// dependencies for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
	detectorDomain "github.com/allisson/redactor/internal/detector/domain"
	tokenmapDomain "github.com/allisson/redactor/internal/tokenmap/domain"
)

// MockDetectorClient is a mock implementation of DetectorClient for testing.
type MockDetectorClient struct {
	mock.Mock
}

// Detect mocks the Detect method of DetectorClient.
func (m *MockDetectorClient) Detect(
	ctx context.Context,
	text string,
	deepScan bool,
) (*detectorDomain.RedactionResult, error) {
	args := m.Called(ctx, text, deepScan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*detectorDomain.RedactionResult), args.Error(1)
}

// Restore mocks the Restore method of DetectorClient.
func (m *MockDetectorClient) Restore(
	ctx context.Context,
	text string,
	tokens map[string]string,
) (*detectorDomain.RestorationResult, error) {
	args := m.Called(ctx, text, tokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*detectorDomain.RestorationResult), args.Error(1)
}

// MockHealthState is a mock implementation of HealthState for testing.
type MockHealthState struct {
	mock.Mock
}

// Online mocks the Online method of HealthState.
func (m *MockHealthState) Online() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockTokenMapRepository is a mock implementation of TokenMapRepository for testing.
type MockTokenMapRepository struct {
	mock.Mock
}

// Get mocks the Get method of TokenMapRepository.
func (m *MockTokenMapRepository) Get(ctx context.Context, document string) (*tokenmapDomain.TokenMap, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenmapDomain.TokenMap), args.Error(1)
}

// Save mocks the Save method of TokenMapRepository.
func (m *MockTokenMapRepository) Save(ctx context.Context, tokenMap *tokenmapDomain.TokenMap) error {
	args := m.Called(ctx, tokenMap)
	return args.Error(0)
}

// Path mocks the Path method of TokenMapRepository.
func (m *MockTokenMapRepository) Path(document string) string {
	args := m.Called(document)
	return args.String(0)
}

// MockArtifactRepository is a mock implementation of ArtifactRepository for testing.
type MockArtifactRepository struct {
	mock.Mock
}

// ReadSource mocks the ReadSource method of ArtifactRepository.
func (m *MockArtifactRepository) ReadSource(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// ReadRedacted mocks the ReadRedacted method of ArtifactRepository.
func (m *MockArtifactRepository) ReadRedacted(ctx context.Context, document string) (string, error) {
	args := m.Called(ctx, document)
	return args.String(0), args.Error(1)
}

// SaveRedacted mocks the SaveRedacted method of ArtifactRepository.
func (m *MockArtifactRepository) SaveRedacted(ctx context.Context, document, text string) (string, error) {
	args := m.Called(ctx, document, text)
	return args.String(0), args.Error(1)
}

// SaveRestored mocks the SaveRestored method of ArtifactRepository.
func (m *MockArtifactRepository) SaveRestored(ctx context.Context, document, text string) (string, error) {
	args := m.Called(ctx, document, text)
	return args.String(0), args.Error(1)
}

// MockOperationRecorder is a mock implementation of OperationRecorder for testing.
type MockOperationRecorder struct {
	mock.Mock
}

// Record mocks the Record method of OperationRecorder.
func (m *MockOperationRecorder) Record(ctx context.Context, log *auditDomain.OperationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
