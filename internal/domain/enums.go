package domain

// SourceType records where a document's raw text came from.
type SourceType string

const (
	SourceTypeTxt SourceType = "txt"
	SourceTypePDF SourceType = "pdf"
	SourceTypeRaw SourceType = "raw"
)

// AllowedExtensions maps file extensions (without dot) to SourceType.
var AllowedExtensions = map[string]SourceType{
	"txt": SourceTypeTxt,
	"pdf": SourceTypePDF,
}

// ExtractionStatus represents the outcome of an extraction run. Per-field
// misses do not fail a run; only fatal input errors do.
type ExtractionStatus string

const (
	ExtractionStatusCompleted ExtractionStatus = "completed"
	ExtractionStatusFailed    ExtractionStatus = "failed"
)
