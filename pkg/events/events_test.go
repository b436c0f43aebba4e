package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/events"
	testdb "github.com/klartext-health/befund/test/database"
)

func TestPublisherListener(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	publisherSide := shared.NewClient(t)
	ctx := context.Background()

	received := make(chan []byte, 16)
	configChanged := make(chan []byte, 16)

	listener := events.NewListener(shared.ConnString())
	listener.Handle(events.ChannelJobProgress, func(p []byte) { received <- p })
	listener.Handle(events.ChannelConfigChanged, func(p []byte) { configChanged <- p })
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	pub := events.NewPublisher(publisherSide.DB())

	t.Run("job status crosses the wire", func(t *testing.T) {
		pub.PublishJobStatus(ctx, "01JABCDEF", job.StatusCompleted)

		select {
		case raw := <-received:
			var payload events.JobStatusPayload
			require.NoError(t, json.Unmarshal(raw, &payload))
			assert.Equal(t, events.EventTypeJobStatus, payload.Type)
			assert.Equal(t, "01JABCDEF", payload.ProcessingID)
			assert.Equal(t, string(job.StatusCompleted), payload.Status)
		case <-time.After(5 * time.Second):
			t.Fatal("no notification received")
		}
	})

	t.Run("progress updates cross the wire", func(t *testing.T) {
		pub.PublishProgress(ctx, "job-1", 40, "Simplification")

		select {
		case raw := <-received:
			var payload events.JobProgressPayload
			require.NoError(t, json.Unmarshal(raw, &payload))
			assert.Equal(t, events.EventTypeJobProgress, payload.Type)
			assert.Equal(t, 40, payload.Percent)
			assert.Equal(t, "Simplification", payload.CurrentStep)
		case <-time.After(5 * time.Second):
			t.Fatal("no notification received")
		}
	})

	t.Run("config change reaches the invalidation handler", func(t *testing.T) {
		require.NoError(t, pub.PublishConfigChanged(ctx, "pipeline"))

		select {
		case raw := <-configChanged:
			var payload events.ConfigChangedPayload
			require.NoError(t, json.Unmarshal(raw, &payload))
			assert.Equal(t, "pipeline", payload.Scope)
		case <-time.After(5 * time.Second):
			t.Fatal("no notification received")
		}
	})
}
