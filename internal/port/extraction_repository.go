// Package port declares the interfaces the service layer depends on.
package port

import (
	"context"

	"github.com/google/uuid"

	"policyparse/internal/domain"
)

// ExtractionRepository persists and retrieves extraction runs.
type ExtractionRepository interface {
	Create(ctx context.Context, extraction *domain.Extraction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Extraction, error)
	List(ctx context.Context, offset, limit int) ([]domain.Extraction, int, error)
	ListAll(ctx context.Context) ([]domain.Extraction, error)
}
