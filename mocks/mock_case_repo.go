package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/govilvipul/HealthcareCM/internal/domain"
)

// MockCaseRepo is a mock implementation of port.CaseRepository.
type MockCaseRepo struct {
	mock.Mock
}

func (m *MockCaseRepo) ListAll(ctx context.Context) ([]domain.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Case), args.Error(1)
}

func (m *MockCaseRepo) GetByID(ctx context.Context, caseID string) (*domain.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCaseRepo) UpdateStatus(ctx context.Context, caseID string, status domain.CaseStatus) error {
	args := m.Called(ctx, caseID, status)
	return args.Error(0)
}
