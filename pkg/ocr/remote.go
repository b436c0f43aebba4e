package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	recognizeTimeout = 5 * time.Minute
	maxOCRResponse   = 64 * 1024 * 1024
)

// RemoteEngine posts documents to the configured OCR endpoint and reads
// back recognized text.
type RemoteEngine struct {
	endpoint      string
	languageHints []string
	httpClient    *http.Client
}

// NewRemoteEngine builds a client for the given endpoint. Language hints
// come from the active OCR configuration row.
func NewRemoteEngine(endpoint string, languageHints []string) *RemoteEngine {
	return &RemoteEngine{
		endpoint:      strings.TrimSuffix(endpoint, "/"),
		languageHints: languageHints,
		httpClient:    &http.Client{Timeout: recognizeTimeout},
	}
}

type recognizeResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Pages      int     `json:"pages"`
}

// Recognize sends the document as multipart form data and returns the
// extracted text.
func (e *RemoteEngine) Recognize(ctx context.Context, doc Document) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", doc.Filename)
	if err != nil {
		return "", fmt.Errorf("building OCR request: %w", err)
	}
	if _, err := part.Write(doc.Content); err != nil {
		return "", fmt.Errorf("building OCR request: %w", err)
	}
	if len(e.languageHints) > 0 {
		if err := writer.WriteField("languages", strings.Join(e.languageHints, ",")); err != nil {
			return "", fmt.Errorf("building OCR request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("building OCR request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint+"/extract", &body)
	if err != nil {
		return "", fmt.Errorf("building OCR request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling OCR engine: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxOCRResponse))
	if err != nil {
		return "", fmt.Errorf("reading OCR response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR engine returned %d", resp.StatusCode)
	}

	var parsed recognizeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decoding OCR response: %w", err)
	}
	return parsed.Text, nil
}
