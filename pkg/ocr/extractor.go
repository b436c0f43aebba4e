// Package ocr extracts text from uploaded documents. Plain-text uploads are
// decoded in-process; PDFs and images go to the configured OCR engine over
// HTTP. Engine internals are an external concern — this package only owns
// the contract.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEmptyDocument is returned when extraction yields no usable text. The
// pipeline refuses such jobs before any LLM call.
var ErrEmptyDocument = errors.New("document produced no text")

// ErrUnsupportedType is returned for file types outside the upload allowlist.
var ErrUnsupportedType = errors.New("unsupported file type")

// Document is one extraction input.
type Document struct {
	Filename string
	FileType string // lowercased extension without dot: pdf, png, jpg, jpeg, tiff, txt
	Content  []byte
}

// Extractor turns an uploaded document into text.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (string, error)
}

// Service routes plain text locally and everything else to the remote
// engine. remote may be nil, in which case only text uploads succeed.
type Service struct {
	remote *RemoteEngine
}

// NewService builds the extraction service.
func NewService(remote *RemoteEngine) *Service {
	return &Service{remote: remote}
}

// Extract dispatches by file type and normalizes the result: CRLF folded,
// outer whitespace trimmed. Empty results are an error.
func (s *Service) Extract(ctx context.Context, doc Document) (string, error) {
	var text string
	var err error

	switch strings.ToLower(doc.FileType) {
	case "txt", "text":
		text, err = extractPlainText(doc.Content)
	case "pdf", "png", "jpg", "jpeg", "tiff":
		if s.remote == nil {
			return "", fmt.Errorf("%w: no OCR engine configured for %q", ErrUnsupportedType, doc.FileType)
		}
		text, err = s.remote.Recognize(ctx, doc)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, doc.FileType)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func extractPlainText(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", errors.New("text upload is not valid UTF-8")
	}
	return string(content), nil
}
