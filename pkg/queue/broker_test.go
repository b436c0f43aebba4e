package queue

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/services"
	testdb "github.com/klartext-health/befund/test/database"
)

func newMiniredisBroker(t *testing.T) *RedisBroker {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisBrokerFromClient(rdb, slog.New(slog.DiscardHandler))
}

func TestRedisBroker(t *testing.T) {
	ctx := context.Background()

	t.Run("fifo within a lane", func(t *testing.T) {
		broker := newMiniredisBroker(t)
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, "job-1"))
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, "job-2"))

		id, lane, err := broker.Dequeue(ctx, config.Lanes(), 100*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "job-1", id)
		assert.Equal(t, config.LaneDefault, lane)

		id, _, err = broker.Dequeue(ctx, config.Lanes(), 100*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "job-2", id)
	})

	t.Run("high priority lane drains first", func(t *testing.T) {
		broker := newMiniredisBroker(t)
		require.NoError(t, broker.Enqueue(ctx, config.LaneLowPriority, "job-low"))
		require.NoError(t, broker.Enqueue(ctx, config.LaneHighPriority, "job-high"))
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, "job-default"))

		var order []string
		for i := 0; i < 3; i++ {
			id, _, err := broker.Dequeue(ctx, config.Lanes(), 100*time.Millisecond)
			require.NoError(t, err)
			order = append(order, id)
		}
		assert.Equal(t, []string{"job-high", "job-default", "job-low"}, order)
	})

	t.Run("empty lanes time out", func(t *testing.T) {
		broker := newMiniredisBroker(t)
		_, _, err := broker.Dequeue(ctx, config.Lanes(), 50*time.Millisecond)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})

	t.Run("depth counts waiting jobs", func(t *testing.T) {
		broker := newMiniredisBroker(t)
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, "job-1"))
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, "job-2"))

		n, err := broker.Depth(ctx, config.LaneDefault)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = broker.Depth(ctx, config.LaneHighPriority)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestPollBroker(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, queueTestBox(t))
	broker := NewPollBroker(client.Client, 10*time.Millisecond, 0, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	t.Run("finds queued jobs in priority order", func(t *testing.T) {
		low := seedQueuedJob(t, jobs, config.LaneLowPriority)
		high := seedQueuedJob(t, jobs, config.LaneHighPriority)

		id, lane, err := broker.Dequeue(ctx, config.Lanes(), 200*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, high.ID, id)
		assert.Equal(t, config.LaneHighPriority, lane)

		// The poll broker does not consume: reserving is what removes a
		// job from the QUEUED set.
		_, err = jobs.ReserveForRun(ctx, high.ID, "pod-a/worker-0")
		require.NoError(t, err)

		id, lane, err = broker.Dequeue(ctx, config.Lanes(), 200*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, low.ID, id)
		assert.Equal(t, config.LaneLowPriority, lane)
		_, err = jobs.ReserveForRun(ctx, low.ID, "pod-a/worker-0")
		require.NoError(t, err)
	})

	t.Run("times out when nothing is queued", func(t *testing.T) {
		_, _, err := broker.Dequeue(ctx, config.Lanes(), 30*time.Millisecond)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})

	t.Run("depth counts queued rows per lane", func(t *testing.T) {
		seedQueuedJob(t, jobs, config.LaneDefault)
		seedQueuedJob(t, jobs, config.LaneDefault)

		n, err := broker.Depth(ctx, config.LaneDefault)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = broker.Depth(ctx, config.LaneMaintenance)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
