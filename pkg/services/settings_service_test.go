package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/pkg/crypto"
	testdb "github.com/klartext-health/befund/test/database"
)

func wrongBox(t *testing.T) *crypto.Box {
	t.Helper()
	box, err := crypto.NewBox(bytes.Repeat([]byte{0x13}, crypto.KeySize))
	require.NoError(t, err)
	return box
}

func TestSettingsService_EnsureDataKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSettingsService(client.Client)
	master := testBox(t)
	ctx := context.Background()

	box1, err := service.EnsureDataKey(ctx, master)
	require.NoError(t, err)
	require.NotNil(t, box1)

	// The stored value must be sealed, not a raw key.
	row, err := service.Get(ctx, DataKeySetting)
	require.NoError(t, err)
	assert.NotEmpty(t, row)

	// A second boot unseals the same key.
	box2, err := service.EnsureDataKey(ctx, master)
	require.NoError(t, err)

	sealed, err := box1.SealString("probe")
	require.NoError(t, err)
	opened, err := box2.OpenString(sealed)
	require.NoError(t, err)
	assert.Equal(t, "probe", opened)

	t.Run("wrong master key cannot unseal", func(t *testing.T) {
		otherMaster, err := service.EnsureDataKey(ctx, wrongBox(t))
		assert.Error(t, err)
		assert.Nil(t, otherMaster)
	})
}

func TestSettingsService_GetSet(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSettingsService(client.Client)
	ctx := context.Background()

	_, err := service.Get(ctx, "maintenance_last_run")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, service.Set(ctx, "maintenance_last_run", "2026-01-01T00:00:00Z"))
	value, err := service.Get(ctx, "maintenance_last_run")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T00:00:00Z", value)

	// Upsert overwrites.
	require.NoError(t, service.Set(ctx, "maintenance_last_run", "2026-01-02T00:00:00Z"))
	value, err = service.Get(ctx, "maintenance_last_run")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02T00:00:00Z", value)
}
