package services

import (
	"context"
	"fmt"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/systemsetting"
	"github.com/klartext-health/befund/pkg/crypto"
)

// DataKeySetting is the SystemSetting row holding the sealed data
// encryption key.
const DataKeySetting = "data_encryption_key"

// SettingsService manages the system settings table and the data key
// bootstrap.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// EnsureDataKey loads the data encryption key, generating and sealing a
// fresh one under the master key on first boot. All payload sealing uses
// the returned box; the master key only ever wraps this one value, so
// master rotation re-seals a single row.
func (s *SettingsService) EnsureDataKey(ctx context.Context, master *crypto.Box) (*crypto.Box, error) {
	row, err := s.client.SystemSetting.Query().
		Where(systemsetting.Key(DataKeySetting)).
		Only(ctx)
	switch {
	case err == nil:
		if !row.IsEncrypted {
			return nil, fmt.Errorf("setting %s is not sealed", DataKeySetting)
		}
		encoded, err := master.OpenBase64(row.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to unseal data key: %w", err)
		}
		return crypto.NewBoxFromBase64(encoded)
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to load data key: %w", err)
	}

	encoded, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate data key: %w", err)
	}
	sealed, err := master.SealBase64(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to seal data key: %w", err)
	}

	// A concurrent replica may win the insert; in that case read back its
	// key instead of keeping ours.
	err = s.client.SystemSetting.Create().
		SetKey(DataKeySetting).
		SetValue(sealed).
		SetIsEncrypted(true).
		OnConflictColumns(systemsetting.FieldKey).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store data key: %w", err)
	}

	row, err = s.client.SystemSetting.Query().
		Where(systemsetting.Key(DataKeySetting)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read data key: %w", err)
	}
	winner, err := master.OpenBase64(row.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal data key: %w", err)
	}
	return crypto.NewBoxFromBase64(winner)
}

// Get returns a plain setting value, or ErrNotFound.
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	row, err := s.client.SystemSetting.Query().
		Where(systemsetting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return row.Value, nil
}

// Set upserts a plain setting value.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	err := s.client.SystemSetting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(systemsetting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}
	return nil
}
