package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizworth/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: csv, xlsx, xls, pdf, jpg, png"
	case errors.Is(err, domain.ErrInvalidURL):
		return http.StatusBadRequest, "INVALID_URL", "url is required and must be http or https"
	case errors.Is(err, domain.ErrInsufficientData):
		return http.StatusBadRequest, "INSUFFICIENT_DATA", "file has too little content to extract"
	case errors.Is(err, domain.ErrNoVendorConfigured):
		return http.StatusServiceUnavailable, "NO_VENDOR_CONFIGURED", "no extraction vendor is configured"
	case errors.Is(err, domain.ErrBrowserUnavailable):
		return http.StatusServiceUnavailable, "BROWSER_UNAVAILABLE", "headless browser is not available"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
