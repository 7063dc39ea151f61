package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"policyparse/internal/csvexport"
	"policyparse/internal/service"
	"policyparse/internal/xlsxexport"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ExtractionHandler handles document extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
	maxUploadBytes    int64
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService, maxUploadMB int64) *ExtractionHandler {
	return &ExtractionHandler{
		extractionService: extractionService,
		maxUploadBytes:    maxUploadMB * 1024 * 1024,
	}
}

// Create handles POST /api/v1/extractions with a raw text payload.
func (h *ExtractionHandler) Create(c *gin.Context) {
	var req struct {
		DocumentName string `json:"document_name" binding:"required"`
		Text         string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document_name and text are required")
		return
	}

	result, err := h.extractionService.ExtractText(c.Request.Context(), req.DocumentName, req.Text)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, result)
}

// Upload handles POST /api/v1/extractions/upload with a multipart document.
func (h *ExtractionHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart field 'file' is required")
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			fmt.Sprintf("file exceeds the %d byte upload limit", h.maxUploadBytes))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not open uploaded file")
		return
	}
	defer f.Close()

	contents, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}

	result, err := h.extractionService.ExtractUpload(c.Request.Context(), fileHeader.Filename, contents)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, result)
}

// List handles GET /api/v1/extractions.
func (h *ExtractionHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	extractions, total, err := h.extractionService.List(c.Request.Context(), offset, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPaginated(c, extractions, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/extractions/:id.
func (h *ExtractionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a UUID")
		return
	}

	extraction, err := h.extractionService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, extraction)
}

// GetValidation handles GET /api/v1/extractions/:id/validation. The report
// is recomputed from the stored record on every request.
func (h *ExtractionHandler) GetValidation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a UUID")
		return
	}

	report, err := h.extractionService.GetValidation(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, report)
}

// ExportCSV handles GET /api/v1/extractions/export/csv.
func (h *ExtractionHandler) ExportCSV(c *gin.Context) {
	extractions, err := h.extractionService.ListAll(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("extractions-%s.csv", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteExtractions(extractions); err != nil {
		return
	}
	w.Flush()
}

// ExportXLSX handles GET /api/v1/extractions/export/xlsx.
func (h *ExtractionHandler) ExportXLSX(c *gin.Context) {
	extractions, err := h.extractionService.ListAll(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	workbook, err := xlsxexport.Build(extractions)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "could not build workbook")
		return
	}

	filename := fmt.Sprintf("extractions-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return offset, limit
}
