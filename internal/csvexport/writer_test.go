package csvexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policyparse/internal/domain"
)

func strp(s string) *string { return &s }

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 19)
	assert.Equal(t, "Document Name", row[0])
	assert.Equal(t, "Policy Number", row[4])
	assert.Equal(t, "Parsed At", row[18])
}

func TestWriteExtractions_Completed(t *testing.T) {
	parsedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	payload, err := json.Marshal(domain.PolicyData{
		PolicyNumber:    strp("HOM-2024-789456"),
		Policyholder:    strp("Sarah Johnson"),
		PolicyType:      strp("Home Insurance"),
		EffectiveDate:   strp("01/15/2024"),
		ExpirationDate:  strp("01/15/2025"),
		CoverageAmount:  strp("450000"),
		Premium:         strp("1850.00"),
		TotalPremium:    strp("1975.50"),
		CoverageDetails: []string{"Fire damage", "Water damage"},
		ParsedAt:        parsedAt,
	})
	require.NoError(t, err)

	e := domain.Extraction{
		ID:           uuid.New(),
		DocumentName: "policy.txt",
		SourceType:   domain.SourceTypeTxt,
		Status:       domain.ExtractionStatusCompleted,
		Data:         payload,
		IsComplete:   true,
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteExtractions([]domain.Extraction{e}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "policy.txt", row[0])
	assert.Equal(t, "txt", row[1])
	assert.Equal(t, "completed", row[2])
	assert.Equal(t, "true", row[3])
	assert.Equal(t, "HOM-2024-789456", row[4])
	assert.Equal(t, "Sarah Johnson", row[5])
	assert.Equal(t, "1850.00", row[10])
	assert.Equal(t, "1975.50", row[11])
	assert.Equal(t, "", row[12])
	assert.Equal(t, "Fire damage; Water damage", row[17])
	assert.Equal(t, "2024-01-15T10:30:00Z", row[18])
}

func TestWriteExtractions_InvalidPayloadFillsMetadataOnly(t *testing.T) {
	e := domain.Extraction{
		ID:           uuid.New(),
		DocumentName: "broken.txt",
		SourceType:   domain.SourceTypeTxt,
		Status:       domain.ExtractionStatusFailed,
		Data:         json.RawMessage(`{not json`),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteExtractions([]domain.Extraction{e}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "broken.txt", row[0])
	assert.Equal(t, "failed", row[2])
	assert.Equal(t, "false", row[3])
	for i := 4; i < len(row); i++ {
		assert.Equal(t, "", row[i])
	}
}
