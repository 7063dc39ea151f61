package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"policyparse/internal/domain"
	"policyparse/internal/service"
	"policyparse/internal/validator"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractText(ctx context.Context, documentName, rawText string) (*service.ExtractionResult, error) {
	args := m.Called(ctx, documentName, rawText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractionResult), args.Error(1)
}

func (m *MockExtractionService) ExtractUpload(ctx context.Context, filename string, contents []byte) (*service.ExtractionResult, error) {
	args := m.Called(ctx, filename, contents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractionResult), args.Error(1)
}

func (m *MockExtractionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Extraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Extraction), args.Error(1)
}

func (m *MockExtractionService) GetValidation(ctx context.Context, id uuid.UUID) (*validator.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*validator.Report), args.Error(1)
}

func (m *MockExtractionService) List(ctx context.Context, offset, limit int) ([]domain.Extraction, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Extraction), args.Int(1), args.Error(2)
}

func (m *MockExtractionService) ListAll(ctx context.Context) ([]domain.Extraction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Extraction), args.Error(1)
}
