package service

import (
	"context"
	"log"

	"github.com/govilvipul/HealthcareCM/internal/domain"
	"github.com/govilvipul/HealthcareCM/internal/port"
)

// CaseService exposes the case review operations backed by the case store.
type CaseService interface {
	// ListCases returns every case in the store. Store failures degrade to
	// an empty list; they are logged, never propagated.
	ListCases(ctx context.Context) []domain.Case
	GetCase(ctx context.Context, caseID string) (*domain.Case, error)
	// UpdateCaseStatus persists a status decision for one case and reports
	// success. Failures (unknown case, connectivity) are logged and
	// surface only as false; the store is left unchanged.
	UpdateCaseStatus(ctx context.Context, caseID string, status domain.CaseStatus) bool
	// Metrics summarizes the full unfiltered case set for dashboard tiles.
	Metrics(ctx context.Context) domain.CaseMetrics
}

type caseService struct {
	repo port.CaseRepository
}

// NewCaseService creates a new CaseService implementation.
func NewCaseService(repo port.CaseRepository) CaseService {
	return &caseService{repo: repo}
}

func (s *caseService) ListCases(ctx context.Context) []domain.Case {
	cases, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("service.CaseService: fetching cases: %v", err)
		return []domain.Case{}
	}
	return cases
}

func (s *caseService) GetCase(ctx context.Context, caseID string) (*domain.Case, error) {
	return s.repo.GetByID(ctx, caseID)
}

func (s *caseService) UpdateCaseStatus(ctx context.Context, caseID string, status domain.CaseStatus) bool {
	if !status.IsValid() {
		log.Printf("service.CaseService: rejecting unknown status %q for case %s", status, caseID)
		return false
	}
	if err := s.repo.UpdateStatus(ctx, caseID, status); err != nil {
		log.Printf("service.CaseService: updating case %s: %v", caseID, err)
		return false
	}
	log.Printf("service.CaseService: case %s updated to %s", caseID, status)
	return true
}

func (s *caseService) Metrics(ctx context.Context) domain.CaseMetrics {
	return domain.ComputeMetrics(s.ListCases(ctx))
}
