package doctext

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// ErrNoText is returned when conversion succeeds but yields no text.
var ErrNoText = errors.New("document contains no extractable text")

// Converter turns opaque document bytes into plain text.
// The extraction pipeline never depends on this; it is the collaborator
// the caller uses before handing text to the pipeline.
type Converter interface {
	// Text extracts plain text from the document. The filename is used
	// to determine the document format.
	Text(data []byte, filename string) (string, error)
}

// DocconvConverter implements Converter using docconv, which handles
// PDF, DOCX, and the other common document formats.
type DocconvConverter struct {
	logger *slog.Logger
}

// NewConverter creates a document-to-text converter.
//
// Returns the Converter interface to enforce abstraction.
func NewConverter() Converter {
	return &DocconvConverter{
		logger: slog.Default().With("component", "doctext"),
	}
}

// Text extracts plain text from document bytes. Files with a .txt
// extension bypass conversion and are returned as-is (trimmed).
func (c *DocconvConverter) Text(data []byte, filename string) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".txt") {
		return strings.TrimSpace(string(data)), nil
	}

	mimeType := docconv.MimeTypeByExtension(filename)
	c.logger.Debug("converting document", "file", filename, "mime", mimeType)

	res, err := docconv.Convert(bytes.NewReader(data), mimeType, false)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", filepath.Base(filename), err)
	}

	text := strings.TrimSpace(res.Body)
	if text == "" {
		return "", fmt.Errorf("%s: %w", filepath.Base(filename), ErrNoText)
	}
	return text, nil
}
