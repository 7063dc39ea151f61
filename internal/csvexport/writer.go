// Package csvexport renders stored extractions as CSV for download.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"policyparse/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (19 columns).
var columns = []string{
	"Document Name",
	"Source Type",
	"Status",
	"Complete",
	"Policy Number",
	"Policyholder",
	"Policy Type",
	"Effective Date",
	"Expiration Date",
	"Coverage Amount",
	"Premium",
	"Total Premium",
	"Taxes",
	"Fees",
	"Deductible",
	"Payment Frequency",
	"Copay",
	"Coverage Details",
	"Parsed At",
}

// Writer wraps csv.Writer for exporting extractions as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteExtractions converts a batch of extractions to CSV rows and writes them.
func (w *Writer) WriteExtractions(extractions []domain.Extraction) error {
	for i := range extractions {
		row := extractionToRow(&extractions[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// extractionToRow converts a single extraction to a row. If the stored
// payload is invalid, metadata columns are filled and field columns are
// left empty.
func extractionToRow(e *domain.Extraction) []string {
	row := make([]string, len(columns))

	row[0] = e.DocumentName
	row[1] = string(e.SourceType)
	row[2] = string(e.Status)
	row[3] = strconv.FormatBool(e.IsComplete)

	data, err := e.PolicyData()
	if err != nil {
		return row
	}

	row[4] = deref(data.PolicyNumber)
	row[5] = deref(data.Policyholder)
	row[6] = deref(data.PolicyType)
	row[7] = deref(data.EffectiveDate)
	row[8] = deref(data.ExpirationDate)
	row[9] = deref(data.CoverageAmount)
	row[10] = deref(data.Premium)
	row[11] = deref(data.TotalPremium)
	row[12] = deref(data.Taxes)
	row[13] = deref(data.Fees)
	row[14] = deref(data.Deductible)
	row[15] = deref(data.PaymentFrequency)
	row[16] = deref(data.Copay)
	row[17] = strings.Join(data.CoverageDetails, "; ")
	if !data.ParsedAt.IsZero() {
		row[18] = data.ParsedAt.UTC().Format(time.RFC3339)
	}

	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
