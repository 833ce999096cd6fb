package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizworth/internal/domain"
	"bizworth/internal/pipeline"
	"bizworth/internal/storage/s3"
)

// DocumentHandler serves financial document extraction.
type DocumentHandler struct {
	controller *pipeline.Controller
	archiver   s3.Archiver
	maxBytes   int64
}

// NewDocumentHandler wires the handler. archiver may be nil.
func NewDocumentHandler(controller *pipeline.Controller, archiver s3.Archiver, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{controller: controller, archiver: archiver, maxBytes: maxBytes}
}

// DocumentResponse is the flat extraction payload returned to the caller.
type DocumentResponse struct {
	Success              bool                           `json:"success"`
	FileType             domain.FileType                `json:"fileType"`
	Method               domain.ExtractionMethod        `json:"method"`
	FallbackUsed         bool                           `json:"fallbackUsed"`
	Confidence           float64                        `json:"confidence"`
	CostUSD              float64                        `json:"cost"`
	ProcessingTimeMs     int64                          `json:"processingTimeMs"`
	RequiresManualReview bool                           `json:"requiresManualReview"`
	Error                string                         `json:"error,omitempty"`
	Data                 *domain.CanonicalFinancialData `json:"data,omitempty"`
	Calculations         []domain.Calculation           `json:"calculations"`
	Validations          []domain.ValidationResult      `json:"validations"`
	Attempts             []domain.ExtractionResult      `json:"attempts"`
}

// Extract handles POST /api/v1/extract/document
// @Summary      Extract financial data from a document
// @Description  Parses CSV/Excel for free, escalating to paid AI vendors when confidence is low
// @Tags         extract
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Financial document (csv, xlsx, xls, pdf, jpg, jpeg, png)"
// @Success      200 {object} DocumentResponse
// @Failure      400 {object} APIResponse
// @Failure      503 {object} APIResponse
// @Router       /extract/document [post]
func (h *DocumentHandler) Extract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	if fileHeader.Size > h.maxBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		HandleError(c, err)
		return
	}
	if int64(len(data)) > h.maxBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	out, err := h.controller.Process(c.Request.Context(), pipeline.Input{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	if h.archiver != nil {
		h.archiver.Archive(fileHeader.Filename, contentType, data)
	}

	requestID, _ := c.Get("request_id")
	log.Printf("[%s] extracted %s via %s (confidence %.0f, cost $%.4f)",
		requestID, fileHeader.Filename, out.Result.Method, out.Result.Confidence, out.TotalCostUSD)

	resp := DocumentResponse{
		Success:              out.Result.Success,
		FileType:             out.FileType,
		Method:               out.Result.Method,
		FallbackUsed:         out.FallbackUsed,
		Confidence:           out.Result.Confidence,
		CostUSD:              out.TotalCostUSD,
		ProcessingTimeMs:     out.TotalTimeMs,
		RequiresManualReview: out.RequiresManualReview,
		Error:                out.Result.Error,
		Data:                 out.Result.Data,
		Calculations:         out.Calculations,
		Validations:          out.Validations,
		Attempts:             out.Attempts,
	}
	c.JSON(http.StatusOK, resp)
}
