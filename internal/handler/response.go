package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"policyparse/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status and code.
func RespondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{Success: false, Error: &APIError{Code: code, Message: message}})
}

// RespondDomainError maps domain sentinel errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrExtractionNotFound):
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "extraction not found")
	case errors.Is(err, domain.ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "document is not valid text")
	case errors.Is(err, domain.ErrUnsupportedFileType):
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "use a .txt or .pdf document")
	default:
		RespondError(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
