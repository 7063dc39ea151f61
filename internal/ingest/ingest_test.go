package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policyparse/internal/domain"
)

func TestReadDocument_Txt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.txt")
	content := "Policy Number: HOM-2024-789456\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, sourceType, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
	assert.Equal(t, domain.SourceTypeTxt, sourceType)
}

func TestReadDocument_ExtensionCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "POLICY.TXT")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, sourceType, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceTypeTxt, sourceType)
}

func TestReadDocument_UnsupportedExtension(t *testing.T) {
	_, _, err := ReadDocument("policy.docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, _, err := ReadDocument(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestReadBytes_Txt(t *testing.T) {
	text, sourceType, err := ReadBytes("upload.txt", []byte("Premium: $100.00"))
	require.NoError(t, err)
	assert.Equal(t, "Premium: $100.00", text)
	assert.Equal(t, domain.SourceTypeTxt, sourceType)
}

func TestReadBytes_UnsupportedExtension(t *testing.T) {
	_, _, err := ReadBytes("upload.csv", []byte("a,b"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestReadBytes_MalformedPDF(t *testing.T) {
	_, _, err := ReadBytes("upload.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}
