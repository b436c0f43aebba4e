package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/pkg/config"
	testdb "github.com/klartext-health/befund/test/database"
)

func TestFlagService(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := &config.Config{FlagOverrides: map[string]bool{"use_external_pii": false}}
	service := NewFlagService(client.Client, cfg)

	t.Run("unknown flag is off", func(t *testing.T) {
		assert.False(t, service.IsEnabled(ctx, "does_not_exist"))
	})

	t.Run("database row answers", func(t *testing.T) {
		require.NoError(t, service.SetEnabled(ctx, "batch_pii", true))
		assert.True(t, service.IsEnabled(ctx, "batch_pii"))

		require.NoError(t, service.SetEnabled(ctx, "batch_pii", false))
		assert.False(t, service.IsEnabled(ctx, "batch_pii"))
	})

	t.Run("environment override wins over the row", func(t *testing.T) {
		require.NoError(t, service.SetEnabled(ctx, "use_external_pii", true))
		assert.False(t, service.IsEnabled(ctx, "use_external_pii"))
	})
}
