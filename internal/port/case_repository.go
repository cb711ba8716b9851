package port

import (
	"context"

	"github.com/govilvipul/HealthcareCM/internal/domain"
)

// CaseRepository defines the contract for case persistence. The backing
// store is a key-value table keyed by caseID and read by full scan; order
// of returned cases is unspecified.
type CaseRepository interface {
	ListAll(ctx context.Context) ([]domain.Case, error)
	GetByID(ctx context.Context, caseID string) (*domain.Case, error)
	UpdateStatus(ctx context.Context, caseID string, status domain.CaseStatus) error
}
