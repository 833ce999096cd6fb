package domain

import "errors"

var (
	ErrMissingFile         = errors.New("file field is required")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidURL          = errors.New("url is missing or not http(s)")
	ErrInsufficientData    = errors.New("file has too few rows to parse")
	ErrNoVendorConfigured  = errors.New("no extraction vendor is configured")
	ErrBrowserUnavailable  = errors.New("headless browser is not available")
)
