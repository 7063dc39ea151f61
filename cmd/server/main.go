package main

import (
	"fmt"
	"log"

	"policyparse/internal/config"
	"policyparse/internal/extractor"
	"policyparse/internal/handler"
	"policyparse/internal/repository/postgres"
	"policyparse/internal/router"
	"policyparse/internal/service"
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

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	extractionRepo := postgres.NewExtractionRepo(db)

	// Initialize services
	extractionSvc := service.NewExtractionService(extractionRepo, extractor.New())

	// Initialize handlers
	extractionH := handler.NewExtractionHandler(extractionSvc, cfg.Ingest.MaxFileSizeMB)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(extractionH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
