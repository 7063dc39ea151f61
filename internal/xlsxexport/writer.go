// Package xlsxexport renders stored extractions as an XLSX workbook.
package xlsxexport

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"policyparse/internal/domain"
)

const sheet = "Extractions"

var headers = []string{
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

// Build returns an XLSX workbook (as bytes) for a batch of extractions.
func Build(extractions []domain.Extraction) ([]byte, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsxexport.Build: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsxexport.Build: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("xlsxexport.Build: %w", err)
		}
	}

	row := 2
	for i := range extractions {
		writeRow(f, row, &extractions[i])
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsxexport.Build: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, e *domain.Extraction) {
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, e.DocumentName)
	write(2, string(e.SourceType))
	write(3, string(e.Status))
	write(4, e.IsComplete)

	data, err := e.PolicyData()
	if err != nil {
		return
	}

	scalars := []*string{
		data.PolicyNumber, data.Policyholder, data.PolicyType,
		data.EffectiveDate, data.ExpirationDate, data.CoverageAmount,
		data.Premium, data.TotalPremium, data.Taxes, data.Fees,
		data.Deductible, data.PaymentFrequency, data.Copay,
	}
	for i, s := range scalars {
		if s != nil {
			write(5+i, *s)
		}
	}
	write(18, strings.Join(data.CoverageDetails, "; "))
	if !data.ParsedAt.IsZero() {
		write(19, data.ParsedAt.UTC().Format(time.RFC3339))
	}
}
