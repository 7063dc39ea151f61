package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"policyparse/internal/domain"
	"policyparse/internal/port"
)

type extractionRepo struct {
	db *sqlx.DB
}

// NewExtractionRepo creates a new PostgreSQL-backed ExtractionRepository.
func NewExtractionRepo(db *sqlx.DB) port.ExtractionRepository {
	return &extractionRepo{db: db}
}

func (r *extractionRepo) Create(ctx context.Context, e *domain.Extraction) error {
	e.CreatedAt = time.Now().UTC()

	query := `INSERT INTO extractions (
		id, document_name, source_type, status, data, is_complete, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.DocumentName, e.SourceType, e.Status, e.Data, e.IsComplete, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("extractionRepo.Create: %w", err)
	}
	return nil
}

func (r *extractionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Extraction, error) {
	var e domain.Extraction
	err := r.db.GetContext(ctx, &e, "SELECT * FROM extractions WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExtractionNotFound
		}
		return nil, fmt.Errorf("extractionRepo.GetByID: %w", err)
	}
	return &e, nil
}

func (r *extractionRepo) List(ctx context.Context, offset, limit int) ([]domain.Extraction, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM extractions")
	if err != nil {
		return nil, 0, fmt.Errorf("extractionRepo.List count: %w", err)
	}

	var extractions []domain.Extraction
	err = r.db.SelectContext(ctx, &extractions,
		"SELECT * FROM extractions ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("extractionRepo.List: %w", err)
	}
	return extractions, total, nil
}

func (r *extractionRepo) ListAll(ctx context.Context) ([]domain.Extraction, error) {
	var extractions []domain.Extraction
	err := r.db.SelectContext(ctx, &extractions,
		"SELECT * FROM extractions ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("extractionRepo.ListAll: %w", err)
	}
	return extractions, nil
}
