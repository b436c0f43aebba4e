package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/crypto"
	"github.com/klartext-health/befund/pkg/pipeline"
	testdb "github.com/klartext-health/befund/test/database"
)

func testBox(t *testing.T) *crypto.Box {
	t.Helper()
	box, err := crypto.NewBox(bytes.Repeat([]byte{0x42}, crypto.KeySize))
	require.NoError(t, err)
	return box
}

func minimalSnapshot() *pipeline.Snapshot {
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

func TestJobService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client, testBox(t))
	ctx := context.Background()

	t.Run("creates pending job with sealed content", func(t *testing.T) {
		content := []byte("Arztbrief: Pat. mit V.a. Pneumonie")
		created, err := service.Create(ctx, CreateJobRequest{
			Filename:       "befund.txt",
			FileType:       "txt",
			Content:        content,
			TargetLanguage: "en",
		})
		require.NoError(t, err)

		assert.Equal(t, job.StatusPending, created.Status)
		assert.NotEmpty(t, created.ProcessingID)
		assert.NotEmpty(t, created.FileHash)
		assert.Equal(t, int64(len(content)), created.FileSize)

		// Stored bytes must not be the plaintext.
		stored, err := client.Job.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.NotEqual(t, content, stored.FileContent)

		opened, err := service.OpenContent(stored)
		require.NoError(t, err)
		assert.Equal(t, content, opened)
	})

	t.Run("rejects empty upload", func(t *testing.T) {
		_, err := service.Create(ctx, CreateJobRequest{Filename: "x.txt", FileType: "txt"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("processing ids are unique and sortable", func(t *testing.T) {
		a, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("a")})
		require.NoError(t, err)
		b, err := service.Create(ctx, CreateJobRequest{Filename: "b.txt", FileType: "txt", Content: []byte("b")})
		require.NoError(t, err)
		assert.NotEqual(t, a.ProcessingID, b.ProcessingID)
		assert.LessOrEqual(t, a.ProcessingID, b.ProcessingID)
	})
}

func TestJobService_SnapshotAndQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client, testBox(t))
	ctx := context.Background()

	created, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("text")})
	require.NoError(t, err)

	require.NoError(t, service.SnapshotAndQueue(ctx, created.ID, minimalSnapshot(), nil, "default"))

	queued, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, queued.Status)
	assert.Equal(t, "default", queued.QueueLane)

	snap, err := service.Snapshot(queued)
	require.NoError(t, err)
	require.Len(t, snap.Steps, 1)
	assert.Equal(t, "Simplification", snap.Steps[0].Name)

	t.Run("second queue attempt loses", func(t *testing.T) {
		err := service.SnapshotAndQueue(ctx, created.ID, minimalSnapshot(), nil, "default")
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})
}

func TestJobService_ReserveForRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client, testBox(t))
	ctx := context.Background()

	created, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("text")})
	require.NoError(t, err)
	require.NoError(t, service.SnapshotAndQueue(ctx, created.ID, minimalSnapshot(), nil, "default"))

	reserved, err := service.ReserveForRun(ctx, created.ID, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, reserved.Status)
	require.NotNil(t, reserved.WorkerID)
	assert.Equal(t, "worker-1", *reserved.WorkerID)
	assert.NotNil(t, reserved.StartedAt)
	assert.NotNil(t, reserved.LastHeartbeatAt)

	t.Run("reservation is at most once", func(t *testing.T) {
		_, err := service.ReserveForRun(ctx, created.ID, "worker-2")
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("pending job cannot be reserved", func(t *testing.T) {
		other, err := service.Create(ctx, CreateJobRequest{Filename: "b.txt", FileType: "txt", Content: []byte("b")})
		require.NoError(t, err)
		_, err = service.ReserveForRun(ctx, other.ID, "worker-1")
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})
}

func TestJobService_ProgressIsMonotone(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client, testBox(t))
	ctx := context.Background()

	created, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("text")})
	require.NoError(t, err)

	require.NoError(t, service.UpdateProgress(ctx, created.ID, 40, "Classification"))
	require.NoError(t, service.UpdateProgress(ctx, created.ID, 20, "Validation"))

	jb, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, jb.ProgressPercent, "progress must never move backwards")

	require.NoError(t, service.UpdateProgress(ctx, created.ID, 150, "Simplification"))
	jb, err = service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, jb.ProgressPercent)
}

func TestJobService_AddUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client, testBox(t))
	ctx := context.Background()

	created, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("text")})
	require.NoError(t, err)

	require.NoError(t, service.AddUsage(ctx, created.ID, 100, 0.002))
	require.NoError(t, service.AddUsage(ctx, created.ID, 50, 0.001))

	jb, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, jb.TotalTokens)
	assert.InDelta(t, 0.003, jb.TotalCost, 1e-9)
}

func TestJobService_TerminalTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client, testBox(t))
	ctx := context.Background()

	runningJob := func(t *testing.T) string {
		created, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("text")})
		require.NoError(t, err)
		require.NoError(t, service.SnapshotAndQueue(ctx, created.ID, minimalSnapshot(), nil, "default"))
		_, err = service.ReserveForRun(ctx, created.ID, "worker-1")
		require.NoError(t, err)
		return created.ID
	}

	t.Run("complete seals outputs", func(t *testing.T) {
		id := runningJob(t)
		err := service.Complete(ctx, id, CompleteResult{
			SimplifiedText: "Einfacher Text.",
			TranslatedText: "Simple text.",
			ResultData:     map[string]interface{}{"total_tokens": 120},
		})
		require.NoError(t, err)

		jb, err := service.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, jb.Status)
		assert.Equal(t, 100, jb.ProgressPercent)
		assert.NotNil(t, jb.CompletedAt)

		texts, err := service.OpenTexts(jb)
		require.NoError(t, err)
		assert.Equal(t, "Einfacher Text.", texts.SimplifiedText)
		assert.Equal(t, "Simple text.", texts.TranslatedText)
	})

	t.Run("terminate records the stop details", func(t *testing.T) {
		id := runningJob(t)
		err := service.Terminate(ctx, id, map[string]interface{}{
			"terminated":         true,
			"termination_reason": "not_medical",
		})
		require.NoError(t, err)

		jb, err := service.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusTerminated, jb.Status)
		assert.Equal(t, true, jb.ResultData["terminated"])
	})

	t.Run("fail keeps the message", func(t *testing.T) {
		id := runningJob(t)
		require.NoError(t, service.Fail(ctx, id, "llm auth_failure"))
		jb, err := service.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, jb.Status)
		require.NotNil(t, jb.ErrorMessage)
		assert.Equal(t, "llm auth_failure", *jb.ErrorMessage)
	})

	t.Run("terminal states never overwrite each other", func(t *testing.T) {
		id := runningJob(t)
		require.NoError(t, service.Complete(ctx, id, CompleteResult{}))
		err := service.Fail(ctx, id, "too late")
		assert.ErrorIs(t, err, ErrConcurrentModification)

		jb, err := service.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, jb.Status)
	})
}

func TestJobService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client, testBox(t))
	ctx := context.Background()

	t.Run("cancels a queued job", func(t *testing.T) {
		created, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("text")})
		require.NoError(t, err)
		require.NoError(t, service.SnapshotAndQueue(ctx, created.ID, minimalSnapshot(), nil, "default"))

		cancelled, err := service.Cancel(ctx, created.ProcessingID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, cancelled.Status)
	})

	t.Run("completed job stays completed", func(t *testing.T) {
		created, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("text")})
		require.NoError(t, err)
		require.NoError(t, service.SnapshotAndQueue(ctx, created.ID, minimalSnapshot(), nil, "default"))
		_, err = service.ReserveForRun(ctx, created.ID, "worker-1")
		require.NoError(t, err)
		require.NoError(t, service.Complete(ctx, created.ID, CompleteResult{}))

		_, err = service.Cancel(ctx, created.ProcessingID)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("unknown processing id", func(t *testing.T) {
		_, err := service.Cancel(ctx, "01KFAKEULID000000000000000")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestJobService_Requeue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client, testBox(t))
	ctx := context.Background()

	created, err := service.Create(ctx, CreateJobRequest{Filename: "a.txt", FileType: "txt", Content: []byte("text")})
	require.NoError(t, err)
	require.NoError(t, service.SnapshotAndQueue(ctx, created.ID, minimalSnapshot(), nil, "default"))
	_, err = service.ReserveForRun(ctx, created.ID, "worker-1")
	require.NoError(t, err)

	requeued, err := service.Requeue(ctx, created.ID, "low_priority", 1)
	require.NoError(t, err)
	assert.True(t, requeued)

	jb, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, jb.Status)
	assert.Equal(t, "low_priority", jb.QueueLane)
	assert.Equal(t, 1, jb.JobAttempts)
	assert.Nil(t, jb.WorkerID)

	t.Run("second requeue is refused", func(t *testing.T) {
		_, err := service.ReserveForRun(ctx, created.ID, "worker-2")
		require.NoError(t, err)

		requeued, err := service.Requeue(ctx, created.ID, "low_priority", 1)
		require.NoError(t, err)
		assert.False(t, requeued, "a job is requeued at most once")
	})
}
