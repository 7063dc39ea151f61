package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PolicyData is the structured result of one extraction run. Every scalar
// field is a pointer: nil means the field was not found in the document,
// which is a success case, not an error. CoverageDetails keeps source order
// and duplicates.
type PolicyData struct {
	PolicyNumber     *string   `json:"policy_number"`
	Policyholder     *string   `json:"policyholder"`
	PolicyType       *string   `json:"policy_type"`
	EffectiveDate    *string   `json:"effective_date"`
	ExpirationDate   *string   `json:"expiration_date"`
	CoverageAmount   *string   `json:"coverage_amount"`
	Premium          *string   `json:"premium"`
	TotalPremium     *string   `json:"total_premium"`
	Taxes            *string   `json:"taxes"`
	Fees             *string   `json:"fees"`
	Deductible       *string   `json:"deductible"`
	PaymentFrequency *string   `json:"payment_frequency"`
	Copay            *string   `json:"copay"`
	CoverageDetails  []string  `json:"coverage_details"`
	ParsedAt         time.Time `json:"parsed_at"`
}

// Extraction is a stored extraction run for one document.
type Extraction struct {
	ID           uuid.UUID        `db:"id" json:"id"`
	DocumentName string           `db:"document_name" json:"document_name"`
	SourceType   SourceType       `db:"source_type" json:"source_type"`
	Status       ExtractionStatus `db:"status" json:"status"`
	Data         json.RawMessage  `db:"data" json:"data"`
	IsComplete   bool             `db:"is_complete" json:"is_complete"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// PolicyData decodes the stored JSONB payload back into a typed record.
func (e *Extraction) PolicyData() (*PolicyData, error) {
	var data PolicyData
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
