package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"policyparse/internal/domain"
	"policyparse/internal/extractor"
	"policyparse/internal/service"
	"policyparse/mocks"
)

func setupExtractionService() (service.ExtractionService, *mocks.MockExtractionRepo) {
	repo := new(mocks.MockExtractionRepo)
	svc := service.NewExtractionService(repo, extractor.New())
	return svc, repo
}

const sampleText = `Policy Number: HOM-2024-789456
Policyholder: Sarah Johnson
Policy Type: Home Insurance
Effective Date: 01/15/2024
Expiration Date: 01/15/2025
Coverage Amount: $450,000
Premium: $1,850.00
Total Premium: $1,975.50
Coverage Details:
- Fire and smoke damage
- Water damage`

func TestExtractionService_ExtractText_Complete(t *testing.T) {
	svc, repo := setupExtractionService()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Extraction")).Return(nil)

	result, err := svc.ExtractText(context.Background(), "policy.txt", sampleText)
	require.NoError(t, err)

	assert.Equal(t, "policy.txt", result.Extraction.DocumentName)
	assert.Equal(t, domain.SourceTypeRaw, result.Extraction.SourceType)
	assert.Equal(t, domain.ExtractionStatusCompleted, result.Extraction.Status)
	assert.True(t, result.Extraction.IsComplete)
	assert.NotEqual(t, uuid.Nil, result.Extraction.ID)

	assert.True(t, result.Report.IsComplete)
	assert.InDelta(t, 1.0, result.Report.Confidence, 1e-9)

	data, err := result.Extraction.PolicyData()
	require.NoError(t, err)
	require.NotNil(t, data.PolicyNumber)
	assert.Equal(t, "HOM-2024-789456", *data.PolicyNumber)
	require.NotNil(t, data.Premium)
	assert.Equal(t, "1850.00", *data.Premium)

	repo.AssertExpectations(t)
}

func TestExtractionService_ExtractText_PartialStillPersisted(t *testing.T) {
	svc, repo := setupExtractionService()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Extraction")).Return(nil)

	result, err := svc.ExtractText(context.Background(), "partial.txt", "Policy Number: AUT-2023-001")
	require.NoError(t, err)

	assert.Equal(t, domain.ExtractionStatusCompleted, result.Extraction.Status)
	assert.False(t, result.Extraction.IsComplete)
	assert.False(t, result.Report.IsComplete)
	assert.Greater(t, result.Report.Confidence, 0.0)
	assert.Less(t, result.Report.Confidence, 1.0)

	repo.AssertExpectations(t)
}

func TestExtractionService_ExtractText_InvalidInputNotPersisted(t *testing.T) {
	svc, repo := setupExtractionService()

	_, err := svc.ExtractText(context.Background(), "binary.txt", "policy\xff\xfe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExtractionService_ExtractText_RepoError(t *testing.T) {
	svc, repo := setupExtractionService()
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.ExtractText(context.Background(), "policy.txt", sampleText)
	assert.EqualError(t, err, "db down")
}

func TestExtractionService_ExtractUpload_Txt(t *testing.T) {
	svc, repo := setupExtractionService()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Extraction")).Return(nil)

	result, err := svc.ExtractUpload(context.Background(), "upload.txt", []byte(sampleText))
	require.NoError(t, err)
	assert.Equal(t, domain.SourceTypeTxt, result.Extraction.SourceType)

	repo.AssertExpectations(t)
}

func TestExtractionService_ExtractUpload_UnsupportedExtension(t *testing.T) {
	svc, repo := setupExtractionService()

	_, err := svc.ExtractUpload(context.Background(), "upload.docx", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExtractionService_GetValidation_Recomputes(t *testing.T) {
	svc, repo := setupExtractionService()

	id := uuid.New()
	payload, err := json.Marshal(domain.PolicyData{
		PolicyNumber:    ptr("HOM-2024-789456"),
		EffectiveDate:   ptr("01/15/2024"),
		ExpirationDate:  ptr("01/15/2025"),
		CoverageAmount:  ptr("450000"),
		Premium:         ptr("1850.00"),
		TotalPremium:    ptr("1975.50"),
		CoverageDetails: []string{"Fire"},
		ParsedAt:        time.Now().UTC(),
	})
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, id).Return(&domain.Extraction{
		ID:   id,
		Data: payload,
	}, nil)

	report, err := svc.GetValidation(context.Background(), id)
	require.NoError(t, err)

	assert.False(t, report.IsComplete)
	assert.Equal(t, []string{"policyholder", "policy_type"}, report.Groups["policy_info"].Missing)
	assert.True(t, report.Groups["financial_info"].Complete)
	assert.True(t, report.Groups["coverage_info"].Complete)
}

func TestExtractionService_GetValidation_NotFound(t *testing.T) {
	svc, repo := setupExtractionService()

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrExtractionNotFound)

	_, err := svc.GetValidation(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrExtractionNotFound)
}

func TestExtractionService_List_Passthrough(t *testing.T) {
	svc, repo := setupExtractionService()

	stored := []domain.Extraction{{ID: uuid.New(), DocumentName: "a.txt"}}
	repo.On("List", mock.Anything, 0, 20).Return(stored, 1, nil)

	got, total, err := svc.List(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, 1, total)
}

func ptr(s string) *string { return &s }
