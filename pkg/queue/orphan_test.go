package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/services"
	testdb "github.com/klartext-health/befund/test/database"
)

// seedRunningJob reserves a queued job and optionally backdates its
// heartbeat.
func seedRunningJob(t *testing.T, client *ent.Client, jobs *services.JobService, workerID string, heartbeatAge time.Duration) *ent.Job {
	t.Helper()
	ctx := context.Background()

	queued := seedQueuedJob(t, jobs, config.LaneDefault)
	running, err := jobs.ReserveForRun(ctx, queued.ID, workerID)
	require.NoError(t, err)

	if heartbeatAge > 0 {
		err = client.Job.UpdateOneID(running.ID).
			SetLastHeartbeatAt(time.Now().Add(-heartbeatAge)).
			Exec(ctx)
		require.NoError(t, err)
	}
	jb, err := jobs.Get(ctx, running.ID)
	require.NoError(t, err)
	return jb
}

func TestOrphanDetection(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, queueTestBox(t))
	ctx := context.Background()

	cfg := config.DefaultQueueConfig()
	cfg.OrphanThreshold = 10 * time.Minute
	pool := NewWorkerPool("pod-a", client.Client, cfg, newStubBroker(), jobs, &stubExecutor{}, nil)

	t.Run("stale heartbeat times the job out", func(t *testing.T) {
		stale := seedRunningJob(t, client.Client, jobs, "pod-gone/worker-2", time.Hour)
		fresh := seedRunningJob(t, client.Client, jobs, "pod-a/worker-0", 0)

		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		recovered, err := jobs.Get(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusTimeout, recovered.Status)
		require.NotNil(t, recovered.ErrorMessage)
		assert.Contains(t, *recovered.ErrorMessage, "Orphaned")
		assert.Contains(t, *recovered.ErrorMessage, "pod-gone/worker-2")

		untouched, err := jobs.Get(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusRunning, untouched.Status)

		health := pool.Health()
		assert.Equal(t, 1, health.OrphansRecovered)
		assert.False(t, health.LastOrphanScan.IsZero())
	})

	t.Run("concurrent recovery does not double count", func(t *testing.T) {
		stale := seedRunningJob(t, client.Client, jobs, "pod-gone/worker-9", time.Hour)

		// The row is already terminal when the scan reaches it.
		require.NoError(t, jobs.Timeout(ctx, stale.ID))

		before := pool.Health().OrphansRecovered
		require.NoError(t, pool.detectAndRecoverOrphans(ctx))
		assert.Equal(t, before, pool.Health().OrphansRecovered)
	})
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, queueTestBox(t))
	ctx := context.Background()

	mine := seedRunningJob(t, client.Client, jobs, "pod-a/worker-1", 0)
	other := seedRunningJob(t, client.Client, jobs, "pod-b/worker-1", 0)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "pod-a"))

	recovered, err := jobs.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusTimeout, recovered.Status)
	require.NotNil(t, recovered.ErrorMessage)
	assert.Contains(t, *recovered.ErrorMessage, "restarted")

	untouched, err := jobs.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status)
}
