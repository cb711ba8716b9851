package main

import (
	"fmt"
	"log"

	"github.com/govilvipul/HealthcareCM/internal/config"
	"github.com/govilvipul/HealthcareCM/internal/handler"
	"github.com/govilvipul/HealthcareCM/internal/repository/dynamo"
	"github.com/govilvipul/HealthcareCM/internal/router"
	"github.com/govilvipul/HealthcareCM/internal/service"
	s3storage "github.com/govilvipul/HealthcareCM/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := dynamo.NewClient(&cfg.Dynamo)
	if err != nil {
		return fmt.Errorf("failed to initialize DynamoDB client: %w", err)
	}

	// Initialize repositories
	caseRepo := dynamo.NewCaseRepo(db, cfg.Dynamo.Table)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	caseSvc := service.NewCaseService(caseRepo)
	docSvc := service.NewDocumentService(s3Client, &cfg.S3)

	// Initialize handlers
	caseH := handler.NewCaseHandler(caseSvc, docSvc)
	healthH := handler.NewHealthHandler(db, cfg.Dynamo.Table)

	// Setup router
	r := router.Setup(cfg, caseH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
