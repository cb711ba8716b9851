package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/govilvipul/HealthcareCM/internal/domain"
)

// MockCaseService is a mock implementation of service.CaseService.
type MockCaseService struct {
	mock.Mock
}

func (m *MockCaseService) ListCases(ctx context.Context) []domain.Case {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Case)
}

func (m *MockCaseService) GetCase(ctx context.Context, caseID string) (*domain.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCaseService) UpdateCaseStatus(ctx context.Context, caseID string, status domain.CaseStatus) bool {
	args := m.Called(ctx, caseID, status)
	return args.Bool(0)
}

func (m *MockCaseService) Metrics(ctx context.Context) domain.CaseMetrics {
	args := m.Called(ctx)
	return args.Get(0).(domain.CaseMetrics)
}
