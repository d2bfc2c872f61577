package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	redactionDomain "github.com/allisson/redactor/internal/redaction/domain"
)

// MockRedactionUseCase is a mock implementation of RedactionUseCase for testing.
type MockRedactionUseCase struct {
	mock.Mock
}

// RedactDocument mocks the RedactDocument method of RedactionUseCase.
func (m *MockRedactionUseCase) RedactDocument(
	ctx context.Context,
	path string,
	deepScan bool,
) (*redactionDomain.Summary, error) {
	args := m.Called(ctx, path, deepScan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redactionDomain.Summary), args.Error(1)
}

// MockRestorationUseCase is a mock implementation of RestorationUseCase for testing.
type MockRestorationUseCase struct {
	mock.Mock
}

// RestoreDocument mocks the RestoreDocument method of RestorationUseCase.
func (m *MockRestorationUseCase) RestoreDocument(
	ctx context.Context,
	document string,
) (*redactionDomain.RestorationSummary, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redactionDomain.RestorationSummary), args.Error(1)
}

// MockInlineUseCase is a mock implementation of InlineUseCase for testing.
type MockInlineUseCase struct {
	mock.Mock
}

// RedactFragment mocks the RedactFragment method of InlineUseCase.
func (m *MockInlineUseCase) RedactFragment(
	ctx context.Context,
	document string,
	fragment string,
	deepScan bool,
) (*redactionDomain.InlineSummary, error) {
	args := m.Called(ctx, document, fragment, deepScan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redactionDomain.InlineSummary), args.Error(1)
}
