package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/pkg/pipeline"
	testdb "github.com/klartext-health/befund/test/database"
)

func recorderFixture(t *testing.T) (*ExecutionRecorder, *JobService, *ent.Client, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	box := testBox(t)
	jobs := NewJobService(client.Client, box)
	recorder := NewExecutionRecorder(client.Client, box, jobs)

	created, err := jobs.Create(context.Background(), CreateJobRequest{
		Filename: "a.txt", FileType: "txt", Content: []byte("Befundtext"),
	})
	require.NoError(t, err)
	return recorder, jobs, client.Client, created.ID
}

func TestExecutionRecorder_RecordStep(t *testing.T) {
	recorder, _, client, jobID := recorderFixture(t)
	ctx := context.Background()

	started := time.Now().Add(-2 * time.Second)
	execID, err := recorder.RecordStep(ctx, jobID, pipeline.StepRecord{
		StepID:       1,
		StepName:     "Simplification",
		Order:        1,
		PhaseRank:    pipeline.PhasePostBranch,
		Status:       pipeline.StepSucceeded,
		InputText:    "Komplizierter Befund",
		OutputText:   "Einfacher Befund",
		ModelUsed:    "llama",
		Attempts:     1,
		DurationMS:   1800,
		InputTokens:  120,
		OutputTokens: 60,
		Cost:         0.0002,
		StartedAt:    started,
		CompletedAt:  time.Now(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, execID)

	row, err := client.StepExecution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, "Simplification", row.StepName)
	assert.Equal(t, 1, row.StepOrder)
	assert.NotEqual(t, []byte("Komplizierter Befund"), row.InputText, "texts are sealed at rest")
	assert.NotEqual(t, []byte("Einfacher Befund"), row.OutputText)

	t.Run("duplicate step order is rejected", func(t *testing.T) {
		_, err := recorder.RecordStep(ctx, jobID, pipeline.StepRecord{
			StepName: "Other", Order: 1, PhaseRank: 1, Status: pipeline.StepSucceeded, Attempts: 1,
		})
		assert.Error(t, err)
	})

	t.Run("unknown status is refused", func(t *testing.T) {
		_, err := recorder.RecordStep(ctx, jobID, pipeline.StepRecord{
			StepName: "Bad", Order: 2, PhaseRank: 1, Status: "exploded", Attempts: 1,
		})
		assert.Error(t, err)
	})
}

func TestExecutionRecorder_RecordInteraction(t *testing.T) {
	recorder, jobs, client, jobID := recorderFixture(t)
	ctx := context.Background()

	execID, err := recorder.RecordStep(ctx, jobID, pipeline.StepRecord{
		StepName: "Simplification", Order: 1, PhaseRank: 3, Status: pipeline.StepSucceeded, Attempts: 1,
	})
	require.NoError(t, err)

	err = recorder.RecordInteraction(ctx, jobID, execID, pipeline.Interaction{
		StepName:     "Simplification",
		ModelName:    "llama",
		InputTokens:  100,
		OutputTokens: 40,
		Cost:         0.0001,
		LatencyMS:    900,
		Success:      true,
	})
	require.NoError(t, err)

	err = recorder.RecordInteraction(ctx, jobID, "", pipeline.Interaction{
		StepName:  "Simplification",
		ModelName: "llama",
		Success:   false,
		ErrorCode: "transient_transport",
	})
	require.NoError(t, err)

	rows, err := client.AIInteractionLog.Query().
		Where(aiinteractionlog.JobID(jobID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Job totals track successful calls only.
	jb, err := jobs.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, 140, jb.TotalTokens)
	assert.InDelta(t, 0.0001, jb.TotalCost, 1e-9)
}
