package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/govilvipul/HealthcareCM/internal/domain"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) DocumentURL(ctx context.Context, c *domain.Case) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) DownloadDocument(ctx context.Context, c *domain.Case) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}
