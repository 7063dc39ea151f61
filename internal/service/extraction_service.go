package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"policyparse/internal/domain"
	"policyparse/internal/extractor"
	"policyparse/internal/ingest"
	"policyparse/internal/normalizer"
	"policyparse/internal/port"
	"policyparse/internal/validator"
)

// ExtractionResult bundles a stored extraction with its freshly computed
// validation report.
type ExtractionResult struct {
	Extraction *domain.Extraction `json:"extraction"`
	Report     *validator.Report  `json:"validation"`
}

// ExtractionService defines the document extraction contract.
type ExtractionService interface {
	ExtractText(ctx context.Context, documentName, rawText string) (*ExtractionResult, error)
	ExtractUpload(ctx context.Context, filename string, contents []byte) (*ExtractionResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Extraction, error)
	GetValidation(ctx context.Context, id uuid.UUID) (*validator.Report, error)
	List(ctx context.Context, offset, limit int) ([]domain.Extraction, int, error)
	ListAll(ctx context.Context) ([]domain.Extraction, error)
}

type extractionService struct {
	repo   port.ExtractionRepository
	engine *extractor.Engine
}

// NewExtractionService creates an ExtractionService over a repository and a
// shared extraction engine.
func NewExtractionService(repo port.ExtractionRepository, engine *extractor.Engine) ExtractionService {
	return &extractionService{repo: repo, engine: engine}
}

func (s *extractionService) ExtractText(ctx context.Context, documentName, rawText string) (*ExtractionResult, error) {
	return s.run(ctx, documentName, rawText, domain.SourceTypeRaw)
}

func (s *extractionService) ExtractUpload(ctx context.Context, filename string, contents []byte) (*ExtractionResult, error) {
	rawText, sourceType, err := ingest.ReadBytes(filename, contents)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, filename, rawText, sourceType)
}

// run is the full pipeline: normalize, extract, validate, persist. Field
// misses never fail a run; only non-text input does.
func (s *extractionService) run(ctx context.Context, documentName, rawText string, sourceType domain.SourceType) (*ExtractionResult, error) {
	normalized, err := normalizer.Normalize(rawText)
	if err != nil {
		return nil, err
	}

	data, err := s.engine.Extract(normalized)
	if err != nil {
		return nil, err
	}
	report := validator.Validate(data)

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("service.ExtractionService: marshaling result: %w", err)
	}

	extraction := &domain.Extraction{
		ID:           uuid.New(),
		DocumentName: documentName,
		SourceType:   sourceType,
		Status:       domain.ExtractionStatusCompleted,
		Data:         payload,
		IsComplete:   report.IsComplete,
	}
	if err := s.repo.Create(ctx, extraction); err != nil {
		return nil, err
	}

	log.Printf("service.ExtractionService: document %q extracted (complete=%t, confidence=%.2f)",
		documentName, report.IsComplete, report.Confidence)
	return &ExtractionResult{Extraction: extraction, Report: report}, nil
}

func (s *extractionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Extraction, error) {
	return s.repo.GetByID(ctx, id)
}

// GetValidation recomputes the completeness report from the stored record.
// Reports are derived views and are never cached.
func (s *extractionService) GetValidation(ctx context.Context, id uuid.UUID) (*validator.Report, error) {
	extraction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := extraction.PolicyData()
	if err != nil {
		return nil, fmt.Errorf("service.ExtractionService: decoding stored data: %w", err)
	}
	return validator.Validate(data), nil
}

func (s *extractionService) List(ctx context.Context, offset, limit int) ([]domain.Extraction, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *extractionService) ListAll(ctx context.Context) ([]domain.Extraction, error) {
	return s.repo.ListAll(ctx)
}
