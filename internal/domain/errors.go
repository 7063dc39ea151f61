package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("input is not valid text")
	ErrUnknownField        = errors.New("field is not in the extraction registry")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrExtractionNotFound  = errors.New("extraction not found")
)
