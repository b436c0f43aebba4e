package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	testdb "github.com/klartext-health/befund/test/database"
)

func seedPipeline(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	_, err := client.ModelConfig.Create().
		SetName("llama").
		SetInputPricePerM(0.9).
		SetOutputPricePerM(0.6).
		SetMaxTokens(4096).
		Save(ctx)
	require.NoError(t, err)

	arztbrief, err := client.DocumentClass.Create().
		SetClassKey("ARZTBRIEF").
		SetDisplayName("Arztbrief").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PipelineStep.Create().
		SetName("Medical Content Validation").
		SetSortOrder(10).
		SetModelName("llama").
		SetMaxTokens(100).
		SetPromptTemplate("Ist das medizinisch? {input_text}").
		SetStopOnValues([]string{"NICHT_MEDIZINISCH"}).
		SetAllowedContinueValues([]string{"MEDIZINISCH"}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PipelineStep.Create().
		SetName("Document Classification").
		SetSortOrder(20).
		SetIsBranchingStep(true).
		SetModelName("llama").
		SetMaxTokens(100).
		SetPromptTemplate("Klassifiziere: {input_text}").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PipelineStep.Create().
		SetName("Arztbrief Extraction").
		SetSortOrder(10).
		SetDocumentClassID(arztbrief.ID).
		SetModelName("llama").
		SetMaxTokens(2000).
		SetPromptTemplate("Extrahiere: {original_text}").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PipelineStep.Create().
		SetName("Simplification").
		SetSortOrder(30).
		SetPostBranching(true).
		SetModelName("llama").
		SetMaxTokens(4000).
		SetPromptTemplate("Vereinfache: {input_text}").
		Save(ctx)
	require.NoError(t, err)
}

func TestPipelineService_Snapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedPipeline(t, client.Client)
	service := NewPipelineService(client.Client)
	ctx := context.Background()

	snap, err := service.Snapshot(ctx)
	require.NoError(t, err)

	assert.Len(t, snap.Steps, 4)
	assert.Len(t, snap.Classes, 1)
	require.Contains(t, snap.Models, "llama")
	assert.Equal(t, 4096, snap.Models["llama"].MaxTokens)

	t.Run("cache serves edits stale until invalidated", func(t *testing.T) {
		_, err := client.PipelineStep.Update().SetEnabled(false).Save(ctx)
		require.NoError(t, err)

		cached, err := service.Snapshot(ctx)
		require.NoError(t, err)
		assert.Same(t, snap, cached)

		service.Invalidate()
		fresh, err := service.Snapshot(ctx)
		require.NoError(t, err)
		for _, step := range fresh.Steps {
			assert.False(t, step.Enabled)
		}
	})
}

func TestPipelineService_SnapshotRejectsBrokenGraph(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedPipeline(t, client.Client)
	service := NewPipelineService(client.Client)
	ctx := context.Background()

	// A second enabled branching step breaks the graph invariant.
	_, err := client.PipelineStep.Create().
		SetName("Rogue Classifier").
		SetSortOrder(25).
		SetIsBranchingStep(true).
		SetModelName("llama").
		SetMaxTokens(100).
		SetPromptTemplate("Nochmal: {input_text}").
		Save(ctx)
	require.NoError(t, err)

	_, err = service.Snapshot(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "branching")
}

func TestPipelineService_UpdateStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedPipeline(t, client.Client)
	service := NewPipelineService(client.Client)
	ctx := context.Background()

	steps, err := service.ListSteps(ctx)
	require.NoError(t, err)
	var target *ent.PipelineStep
	for _, st := range steps {
		if st.Name == "Simplification" {
			target = st
		}
	}
	require.NotNil(t, target)

	temp := 0.3
	updated, err := service.UpdateStep(ctx, target.ID, target.Version, StepUpdate{Temperature: &temp})
	require.NoError(t, err)
	assert.Equal(t, target.Version+1, updated.Version)
	assert.InDelta(t, 0.3, updated.Temperature, 1e-9)

	t.Run("stale version loses", func(t *testing.T) {
		other := 0.9
		_, err := service.UpdateStep(ctx, target.ID, target.Version, StepUpdate{Temperature: &other})
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("edit invalidates the snapshot cache", func(t *testing.T) {
		snap, err := service.Snapshot(ctx)
		require.NoError(t, err)
		enabled := false
		_, err = service.UpdateStep(ctx, updated.ID, updated.Version, StepUpdate{Enabled: &enabled})
		require.NoError(t, err)

		fresh, err := service.Snapshot(ctx)
		require.NoError(t, err)
		assert.NotSame(t, snap, fresh)
	})
}
