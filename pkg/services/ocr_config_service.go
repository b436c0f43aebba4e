package services

import (
	"context"
	"fmt"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/ocrconfiguration"
)

// OCRConfigService resolves the active OCR configuration jobs snapshot at
// enqueue time.
type OCRConfigService struct {
	client *ent.Client
}

// NewOCRConfigService creates a new OCRConfigService.
func NewOCRConfigService(client *ent.Client) *OCRConfigService {
	return &OCRConfigService{client: client}
}

// Active returns the enabled OCR configuration, newest first, or
// ErrNotFound when none is enabled.
func (s *OCRConfigService) Active(ctx context.Context) (*ent.OCRConfiguration, error) {
	row, err := s.client.OCRConfiguration.Query().
		Where(ocrconfiguration.Enabled(true)).
		Order(ent.Desc(ocrconfiguration.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load ocr configuration: %w", err)
	}
	return row, nil
}
