package maintenance

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/stepexecution"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/crypto"
	"github.com/klartext-health/befund/pkg/pipeline"
	"github.com/klartext-health/befund/pkg/services"
	testdb "github.com/klartext-health/befund/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		DataRetentionHours: 24,
		CleanupInterval:    time.Hour,
		StuckPendingAge:    6 * time.Hour,
	}
}

func maintenanceBox(t *testing.T) *crypto.Box {
	t.Helper()
	box, err := crypto.NewBox(bytes.Repeat([]byte{0x42}, crypto.KeySize))
	require.NoError(t, err)
	return box
}

func createJob(t *testing.T, jobs *services.JobService) *ent.Job {
	t.Helper()
	created, err := jobs.Create(context.Background(), services.CreateJobRequest{
		Filename: "befund.txt",
		FileType: "txt",
		Content:  []byte("Befund"),
	})
	require.NoError(t, err)
	return created
}

func backdate(t *testing.T, client *ent.Client, jobID string, age time.Duration) {
	t.Helper()
	err := client.Job.UpdateOneID(jobID).
		SetCreatedAt(time.Now().Add(-age)).
		SetUpdatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
}

// recordingBroker captures re-announced job ids.
type recordingBroker struct {
	enqueued map[string][]string
}

func newRecordingBroker() *recordingBroker {
	return &recordingBroker{enqueued: make(map[string][]string)}
}

func (b *recordingBroker) Enqueue(_ context.Context, lane, jobID string) error {
	b.enqueued[lane] = append(b.enqueued[lane], jobID)
	return nil
}

func (b *recordingBroker) Dequeue(context.Context, []string, time.Duration) (string, string, error) {
	return "", "", nil
}

func (b *recordingBroker) Depth(context.Context, string) (int64, error) { return 0, nil }
func (b *recordingBroker) Close() error                                 { return nil }

func TestPurgeExpiredJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	box := maintenanceBox(t)
	jobs := services.NewJobService(client.Client, box)
	svc := NewService(retentionConfig(), client.Client, newRecordingBroker())
	ctx := context.Background()

	expired := createJob(t, jobs)
	fresh := createJob(t, jobs)
	backdate(t, client.Client, expired.ID, 25*time.Hour)

	// Children must go with the job.
	recorder := services.NewExecutionRecorder(client.Client, box, jobs)
	execID, err := recorder.RecordStep(ctx, expired.ID, pipeline.StepRecord{
		StepName: "Simplification",
		Order:    1,
		Status:   pipeline.StepSucceeded,
	})
	require.NoError(t, err)
	require.NoError(t, recorder.RecordInteraction(ctx, expired.ID, execID, pipeline.Interaction{
		StepName:  "Simplification",
		ModelName: "llama",
		Success:   true,
	}))

	svc.purgeExpiredJobs(ctx)

	_, err = jobs.Get(ctx, expired.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = jobs.Get(ctx, fresh.ID)
	assert.NoError(t, err)

	// Cascade removed the children.
	n, err := client.StepExecution.Query().
		Where(stepexecution.JobID(expired.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = client.AIInteractionLog.Query().
		Where(aiinteractionlog.JobID(expired.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRemoveStuckPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, maintenanceBox(t))
	svc := NewService(retentionConfig(), client.Client, newRecordingBroker())
	ctx := context.Background()

	stuck := createJob(t, jobs)
	backdate(t, client.Client, stuck.ID, 7*time.Hour)

	// An old but already-queued job is retention's problem, not this sweep's.
	queued := createJob(t, jobs)
	require.NoError(t, jobs.SnapshotAndQueue(ctx, queued.ID, minimalMaintenanceSnapshot(), nil, config.LaneDefault))
	backdate(t, client.Client, queued.ID, 7*time.Hour)

	svc.removeStuckPending(ctx)

	_, err := jobs.Get(ctx, stuck.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	still, err := jobs.Get(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, still.Status)
}

func TestReannounceQueued(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, maintenanceBox(t))
	broker := newRecordingBroker()
	svc := NewService(retentionConfig(), client.Client, broker)
	ctx := context.Background()

	lost := createJob(t, jobs)
	require.NoError(t, jobs.SnapshotAndQueue(ctx, lost.ID, minimalMaintenanceSnapshot(), nil, config.LaneHighPriority))
	backdate(t, client.Client, lost.ID, 10*time.Minute)

	recent := createJob(t, jobs)
	require.NoError(t, jobs.SnapshotAndQueue(ctx, recent.ID, minimalMaintenanceSnapshot(), nil, config.LaneDefault))

	svc.reannounceQueued(ctx)

	assert.Equal(t, []string{lost.ID}, broker.enqueued[config.LaneHighPriority])
	assert.Empty(t, broker.enqueued[config.LaneDefault])

	// The touched row is skipped by the next sweep.
	svc.reannounceQueued(ctx)
	assert.Len(t, broker.enqueued[config.LaneHighPriority], 1)
}

func minimalMaintenanceSnapshot() *pipeline.Snapshot {
	return &pipeline.Snapshot{
		Steps: []pipeline.StepSpec{
			{ID: 1, Name: "Simplification", Order: 10, Enabled: true, ModelName: "llama", MaxTokens: 100,
				PromptTemplate: "Vereinfache: {input_text}"},
		},
		Models: map[string]pipeline.ModelSpec{
			"llama": {Name: "llama", MaxTokens: 4096, Active: true},
		},
	}
}
