package domain

import "errors"

var (
	ErrInvalidRole        = errors.New("invalid document role")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrMalformedCSV       = errors.New("malformed CSV file")
	ErrExtractionFailed   = errors.New("document extraction failed")
	ErrContentUnavailable = errors.New("invoice or purchase order content not available")
	ErrNoComparison       = errors.New("no comparison result available")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrSessionNotFound    = errors.New("session not found")
)
