// Package jsonexport serializes extraction results to the stable JSON
// interchange shape: every registered field present, nulls explicit.
package jsonexport

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"policyparse/internal/domain"
)

// Write serializes data as indented JSON to w.
func Write(w io.Writer, data *domain.PolicyData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("jsonexport.Write: %w", err)
	}
	return nil
}

// WriteFile serializes data as indented JSON to a file at path.
func WriteFile(path string, data *domain.PolicyData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("jsonexport.WriteFile: %w", err)
	}
	defer f.Close()

	return Write(f, data)
}
