// Package mocks provides mock implementations for audit use case testing.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	auditDomain "github.com/allisson/redactor/internal/audit/domain"
)

// MockOperationLogRepository is a mock implementation of OperationLogRepository for testing.
type MockOperationLogRepository struct {
	mock.Mock
}

// Create mocks the Create method of OperationLogRepository.
func (m *MockOperationLogRepository) Create(ctx context.Context, log *auditDomain.OperationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// List mocks the List method of OperationLogRepository.
func (m *MockOperationLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.OperationLog, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.OperationLog), args.Error(1)
}

// DeleteOlderThan mocks the DeleteOlderThan method of OperationLogRepository.
func (m *MockOperationLogRepository) DeleteOlderThan(
	ctx context.Context,
	before time.Time,
	dryRun bool,
) (int64, error) {
	args := m.Called(ctx, before, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditUseCase is a mock implementation of AuditUseCase for testing.
type MockAuditUseCase struct {
	mock.Mock
}

// Record mocks the Record method of AuditUseCase.
func (m *MockAuditUseCase) Record(ctx context.Context, log *auditDomain.OperationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// List mocks the List method of AuditUseCase.
func (m *MockAuditUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.OperationLog, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.OperationLog), args.Error(1)
}

// Clean mocks the Clean method of AuditUseCase.
func (m *MockAuditUseCase) Clean(ctx context.Context, olderThan time.Duration, dryRun bool) (int64, error) {
	args := m.Called(ctx, olderThan, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
