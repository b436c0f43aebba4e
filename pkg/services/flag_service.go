package services

import (
	"context"
	"fmt"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/featureflag"
	"github.com/klartext-health/befund/pkg/config"
)

// FlagService resolves feature flags. FEATURE_FLAG_* environment
// overrides win over database rows; unknown flags are off.
type FlagService struct {
	client *ent.Client
	cfg    *config.Config
}

// NewFlagService creates a new FlagService.
func NewFlagService(client *ent.Client, cfg *config.Config) *FlagService {
	return &FlagService{client: client, cfg: cfg}
}

// IsEnabled reports whether a flag is on.
func (s *FlagService) IsEnabled(ctx context.Context, name string) bool {
	if value, ok := s.cfg.FlagOverride(name); ok {
		return value
	}
	row, err := s.client.FeatureFlag.Query().
		Where(featureflag.Name(name)).
		Only(ctx)
	if err != nil {
		return false
	}
	return row.Enabled
}

// SetEnabled upserts a flag row. Environment overrides still win at read
// time.
func (s *FlagService) SetEnabled(ctx context.Context, name string, enabled bool) error {
	err := s.client.FeatureFlag.Create().
		SetName(name).
		SetEnabled(enabled).
		OnConflictColumns(featureflag.FieldName).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set feature flag: %w", err)
	}
	return nil
}

// List returns all flag rows for the admin surface.
func (s *FlagService) List(ctx context.Context) ([]*ent.FeatureFlag, error) {
	rows, err := s.client.FeatureFlag.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature flags: %w", err)
	}
	return rows, nil
}
