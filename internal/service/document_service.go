package service

import (
	"context"
	"log"

	"github.com/govilvipul/HealthcareCM/internal/config"
	"github.com/govilvipul/HealthcareCM/internal/domain"
	"github.com/govilvipul/HealthcareCM/internal/port"
)

// DocumentService resolves case document locations to downloadable forms.
// All failures surface as ErrDocumentUnavailable so callers can render a
// notice instead of crashing.
type DocumentService interface {
	// DocumentURL returns a time-limited download URL for the case's
	// source document.
	DocumentURL(ctx context.Context, c *domain.Case) (string, error)
	// DownloadDocument copies the case's source document to a local
	// temporary file and returns its path.
	DownloadDocument(ctx context.Context, c *domain.Case) (string, error)
}

type documentService struct {
	storage       port.ObjectStorage
	presignExpiry int64
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(storage port.ObjectStorage, cfg *config.S3Config) DocumentService {
	return &documentService{storage: storage, presignExpiry: cfg.PresignExpiry}
}

func (s *documentService) DocumentURL(ctx context.Context, c *domain.Case) (string, error) {
	bucket, key, ok := s.location(c)
	if !ok {
		return "", domain.ErrDocumentUnavailable
	}

	url, err := s.storage.GetPresignedURL(ctx, bucket, key, s.presignExpiry)
	if err != nil {
		log.Printf("service.DocumentService: presigning %s: %v", c.S3Location, err)
		return "", domain.ErrDocumentUnavailable
	}
	return url, nil
}

func (s *documentService) DownloadDocument(ctx context.Context, c *domain.Case) (string, error) {
	bucket, key, ok := s.location(c)
	if !ok {
		return "", domain.ErrDocumentUnavailable
	}

	localPath, err := s.storage.DownloadToTemp(ctx, bucket, key)
	if err != nil {
		log.Printf("service.DocumentService: downloading %s: %v", c.S3Location, err)
		return "", domain.ErrDocumentUnavailable
	}
	log.Printf("service.DocumentService: downloaded %s to %s", c.S3Location, localPath)
	return localPath, nil
}

func (s *documentService) location(c *domain.Case) (bucket, key string, ok bool) {
	if c == nil || c.S3Location == "" {
		return "", "", false
	}
	bucket, key, err := domain.ParseS3Location(c.S3Location)
	if err != nil {
		log.Printf("service.DocumentService: parsing location %q: %v", c.S3Location, err)
		return "", "", false
	}
	return bucket, key, true
}
