package queue

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/crypto"
	"github.com/klartext-health/befund/pkg/pipeline"
	"github.com/klartext-health/befund/pkg/services"
	testdb "github.com/klartext-health/befund/test/database"
)

func queueTestBox(t *testing.T) *crypto.Box {
	t.Helper()
	box, err := crypto.NewBox(bytes.Repeat([]byte{0x42}, crypto.KeySize))
	require.NoError(t, err)
	return box
}

func queueTestSnapshot() *pipeline.Snapshot {
	return &pipeline.Snapshot{
		Steps: []pipeline.StepSpec{
			{ID: 1, Name: "Simplification", Order: 10, Enabled: true, ModelName: "llama", MaxTokens: 200,
				PromptTemplate: "Vereinfache: {input_text}"},
		},
		Models: map[string]pipeline.ModelSpec{
			"llama": {Name: "llama", MaxTokens: 4096, Active: true},
		},
	}
}

func seedQueuedJob(t *testing.T, jobs *services.JobService, lane string) *ent.Job {
	t.Helper()
	ctx := context.Background()
	created, err := jobs.Create(ctx, services.CreateJobRequest{
		Filename: "befund.txt",
		FileType: "txt",
		Content:  []byte("Arztbrief: Pat. mit V.a. Pneumonie"),
	})
	require.NoError(t, err)
	require.NoError(t, jobs.SnapshotAndQueue(ctx, created.ID, queueTestSnapshot(), nil, lane))
	queued, err := jobs.Get(ctx, created.ID)
	require.NoError(t, err)
	return queued
}

// stubBroker is an in-memory lane store for worker tests.
type stubBroker struct {
	mu     sync.Mutex
	queues map[string][]string
}

func newStubBroker() *stubBroker {
	return &stubBroker{queues: make(map[string][]string)}
}

func (b *stubBroker) Enqueue(_ context.Context, lane, jobID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queues[lane] = append(b.queues[lane], jobID)
	return nil
}

func (b *stubBroker) Dequeue(_ context.Context, lanes []string, _ time.Duration) (string, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, lane := range lanes {
		if q := b.queues[lane]; len(q) > 0 {
			b.queues[lane] = q[1:]
			return q[0], lane, nil
		}
	}
	return "", "", ErrNoJobsAvailable
}

func (b *stubBroker) Depth(_ context.Context, lane string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int64(len(b.queues[lane])), nil
}

func (b *stubBroker) Close() error { return nil }

// stubExecutor returns a scripted result and records the jobs it saw.
type stubExecutor struct {
	mu   sync.Mutex
	fn   func(ctx context.Context, jb *ent.Job) *ExecutionResult
	seen []string
}

func (e *stubExecutor) Execute(ctx context.Context, jb *ent.Job) *ExecutionResult {
	e.mu.Lock()
	e.seen = append(e.seen, jb.ID)
	e.mu.Unlock()
	return e.fn(ctx, jb)
}

type noopRegistry struct{}

func (noopRegistry) RegisterJob(string, context.CancelFunc) {}
func (noopRegistry) UnregisterJob(string)                   {}

func newTestWorker(client *ent.Client, jobs *services.JobService, broker Broker, exec JobExecutor, cfg *config.QueueConfig) *Worker {
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
		cfg.HeartbeatInterval = time.Hour // keep the ticker quiet in tests
	}
	return NewWorker("worker-0", "pod-a", client, cfg, broker, jobs, exec, noopRegistry{}, nil)
}

func TestWorker_DequeueAndProcess(t *testing.T) {
	client := testdb.NewTestClient(t)
	box := queueTestBox(t)
	jobs := services.NewJobService(client.Client, box)
	ctx := context.Background()

	t.Run("runs a queued job to completion", func(t *testing.T) {
		queued := seedQueuedJob(t, jobs, config.LaneDefault)
		broker := newStubBroker()
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, queued.ID))

		exec := &stubExecutor{fn: func(_ context.Context, jb *ent.Job) *ExecutionResult {
			// Reservation happened before execution.
			assert.Equal(t, job.StatusRunning, jb.Status)
			return &ExecutionResult{
				Status:         job.StatusCompleted,
				SimplifiedText: "Vereinfachter Text.",
			}
		}}
		w := newTestWorker(client.Client, jobs, broker, exec, nil)

		require.NoError(t, w.dequeueAndProcess(ctx))

		final, err := jobs.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, final.Status)
		assert.Equal(t, 100, final.ProgressPercent)
		assert.NotNil(t, final.CompletedAt)

		texts, err := jobs.OpenTexts(final)
		require.NoError(t, err)
		assert.Equal(t, "Vereinfachter Text.", texts.SimplifiedText)
	})

	t.Run("drops deliveries for jobs no longer queued", func(t *testing.T) {
		queued := seedQueuedJob(t, jobs, config.LaneDefault)
		_, err := jobs.ReserveForRun(ctx, queued.ID, "pod-b/worker-3")
		require.NoError(t, err)

		broker := newStubBroker()
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, queued.ID))

		exec := &stubExecutor{fn: func(context.Context, *ent.Job) *ExecutionResult {
			t.Fatal("executor must not run for a lost reservation")
			return nil
		}}
		w := newTestWorker(client.Client, jobs, broker, exec, nil)

		require.NoError(t, w.dequeueAndProcess(ctx))
		assert.Empty(t, exec.seen)

		still, err := jobs.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusRunning, still.Status)
	})

	t.Run("requeues a transient failure once", func(t *testing.T) {
		queued := seedQueuedJob(t, jobs, config.LaneDefault)
		broker := newStubBroker()
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, queued.ID))

		exec := &stubExecutor{fn: func(context.Context, *ent.Job) *ExecutionResult {
			return &ExecutionResult{
				Status:    job.StatusFailed,
				Err:       errors.New("llm transient_transport: connection refused"),
				Transient: true,
			}
		}}
		w := newTestWorker(client.Client, jobs, broker, exec, nil)

		// First transient failure lands back on the low priority lane.
		require.NoError(t, w.dequeueAndProcess(ctx))

		requeued, err := jobs.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusQueued, requeued.Status)
		assert.Equal(t, config.LaneLowPriority, requeued.QueueLane)
		assert.Equal(t, 1, requeued.JobAttempts)

		depth, err := broker.Depth(ctx, config.LaneLowPriority)
		require.NoError(t, err)
		assert.Equal(t, int64(1), depth)

		// The second transient failure is final.
		require.NoError(t, w.dequeueAndProcess(ctx))

		final, err := jobs.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, final.Status)
		require.NotNil(t, final.ErrorMessage)
		assert.Contains(t, *final.ErrorMessage, "connection refused")
	})

	t.Run("api cancellation is never overwritten", func(t *testing.T) {
		queued := seedQueuedJob(t, jobs, config.LaneDefault)
		broker := newStubBroker()
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, queued.ID))

		exec := &stubExecutor{fn: func(_ context.Context, jb *ent.Job) *ExecutionResult {
			// Cancel through the API while the job is mid-run.
			_, err := jobs.Cancel(ctx, jb.ProcessingID)
			require.NoError(t, err)
			return &ExecutionResult{Status: job.StatusCancelled}
		}}
		w := newTestWorker(client.Client, jobs, broker, exec, nil)

		require.NoError(t, w.dequeueAndProcess(ctx))

		final, err := jobs.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, final.Status)
	})

	t.Run("completion loses to an earlier cancel", func(t *testing.T) {
		queued := seedQueuedJob(t, jobs, config.LaneDefault)
		broker := newStubBroker()
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, queued.ID))

		exec := &stubExecutor{fn: func(_ context.Context, jb *ent.Job) *ExecutionResult {
			_, err := jobs.Cancel(ctx, jb.ProcessingID)
			require.NoError(t, err)
			// The executor did not notice and reports success.
			return &ExecutionResult{Status: job.StatusCompleted, SimplifiedText: "Text"}
		}}
		w := newTestWorker(client.Client, jobs, broker, exec, nil)

		require.NoError(t, w.dequeueAndProcess(ctx))

		final, err := jobs.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, final.Status)
	})

	t.Run("timeout status writes the deadline message", func(t *testing.T) {
		queued := seedQueuedJob(t, jobs, config.LaneDefault)
		broker := newStubBroker()
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, queued.ID))

		exec := &stubExecutor{fn: func(context.Context, *ent.Job) *ExecutionResult {
			return &ExecutionResult{Status: job.StatusTimeout}
		}}
		w := newTestWorker(client.Client, jobs, broker, exec, nil)

		require.NoError(t, w.dequeueAndProcess(ctx))

		final, err := jobs.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusTimeout, final.Status)
		require.NotNil(t, final.ErrorMessage)
		assert.Contains(t, *final.ErrorMessage, "deadline")
	})

	t.Run("terminated run stores the termination details", func(t *testing.T) {
		queued := seedQueuedJob(t, jobs, config.LaneDefault)
		broker := newStubBroker()
		require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, queued.ID))

		exec := &stubExecutor{fn: func(context.Context, *ent.Job) *ExecutionResult {
			return &ExecutionResult{
				Status: job.StatusTerminated,
				ResultData: map[string]interface{}{
					"terminated":       true,
					"termination_step": "Medical Validation",
					"matched_value":    "NICHT_MEDIZINISCH",
				},
			}
		}}
		w := newTestWorker(client.Client, jobs, broker, exec, nil)

		require.NoError(t, w.dequeueAndProcess(ctx))

		final, err := jobs.Get(ctx, queued.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusTerminated, final.Status)
		assert.Equal(t, 100, final.ProgressPercent)
		assert.Equal(t, "Medical Validation", final.ResultData["termination_step"])
	})

	t.Run("reports no jobs on empty lanes", func(t *testing.T) {
		w := newTestWorker(client.Client, jobs, newStubBroker(), &stubExecutor{}, nil)
		err := w.dequeueAndProcess(ctx)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})
}

func TestWorker_CapacityLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, queueTestBox(t))
	ctx := context.Background()

	running := seedQueuedJob(t, jobs, config.LaneDefault)
	_, err := jobs.ReserveForRun(ctx, running.ID, "pod-b/worker-1")
	require.NoError(t, err)

	waiting := seedQueuedJob(t, jobs, config.LaneDefault)
	broker := newStubBroker()
	require.NoError(t, broker.Enqueue(ctx, config.LaneDefault, waiting.ID))

	cfg := config.DefaultQueueConfig()
	cfg.MaxConcurrentJobs = 1
	cfg.HeartbeatInterval = time.Hour
	w := newTestWorker(client.Client, jobs, broker, &stubExecutor{}, cfg)

	err = w.dequeueAndProcess(ctx)
	assert.ErrorIs(t, err, ErrAtCapacity)

	// The waiting job was not touched.
	still, err := jobs.Get(ctx, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, still.Status)
}
