// Package ingest turns .txt and .pdf documents into raw text for the
// extraction core. It is the only place that touches the filesystem.
package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"policyparse/internal/domain"
)

// ReadDocument reads a document file and returns its raw text plus the
// detected source type. Only .txt and .pdf are supported.
func ReadDocument(path string) (string, domain.SourceType, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	sourceType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", "", fmt.Errorf("ingest.ReadDocument: %q: %w (use .txt or .pdf)", ext, domain.ErrUnsupportedFileType)
	}

	switch sourceType {
	case domain.SourceTypePDF:
		text, err := readPDF(path)
		if err != nil {
			return "", "", err
		}
		return text, sourceType, nil
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("ingest.ReadDocument: %w", err)
		}
		return string(raw), sourceType, nil
	}
}

// ReadBytes extracts raw text from an in-memory document, e.g. a multipart
// upload. The source type is detected from the filename extension.
func ReadBytes(filename string, raw []byte) (string, domain.SourceType, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	sourceType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", "", fmt.Errorf("ingest.ReadBytes: %q: %w (use .txt or .pdf)", ext, domain.ErrUnsupportedFileType)
	}

	if sourceType == domain.SourceTypePDF {
		reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
		if err != nil {
			return "", "", fmt.Errorf("ingest.ReadBytes: reading pdf: %w", err)
		}
		text, err := plainText(reader)
		if err != nil {
			return "", "", err
		}
		return text, sourceType, nil
	}
	return string(raw), sourceType, nil
}

// readPDF extracts plain text from every page of a PDF.
func readPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("ingest.readPDF: opening %s: %w", path, err)
	}
	defer f.Close()

	return plainText(reader)
}

func plainText(reader *pdf.Reader) (string, error) {
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("ingest.plainText: extracting text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("ingest.plainText: reading text: %w", err)
	}
	return buf.String(), nil
}
