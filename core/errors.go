package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidSegment indicates a Segment failed validation.
	ErrInvalidSegment = errors.New("invalid segment")

	// ErrInvalidChunkSize indicates a chunk size below 1.
	ErrInvalidChunkSize = errors.New("chunk size must be greater than 0")

	// ErrInputTooLarge indicates the document text exceeds the configured
	// character cap and the oversize policy forbids truncation.
	ErrInputTooLarge = errors.New("input text exceeds the configured character limit")
)
