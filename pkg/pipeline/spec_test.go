package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func testSnapshot() *Snapshot {
	return &Snapshot{
		Steps: []StepSpec{
			{ID: 3, Name: "Simplification", Order: 30, PostBranching: true, Enabled: true, ModelName: "llama"},
			{ID: 1, Name: "Classification", Order: 20, Enabled: true, IsBranchingStep: true, ModelName: "llama"},
			{ID: 2, Name: "Validation", Order: 10, Enabled: true, ModelName: "llama"},
			{ID: 4, Name: "Arztbrief Details", Order: 10, DocumentClassID: intPtr(7), Enabled: true, ModelName: "llama"},
			{ID: 5, Name: "Arztbrief Summary", Order: 20, DocumentClassID: intPtr(7), Enabled: true, ModelName: "llama"},
			{ID: 6, Name: "Labor Details", Order: 10, DocumentClassID: intPtr(8), Enabled: true, ModelName: "llama"},
			{ID: 7, Name: "Disabled Step", Order: 40, Enabled: false, ModelName: "llama"},
		},
		Classes: []ClassSpec{
			{ID: 7, ClassKey: "ARZTBRIEF", DisplayName: "Arztbrief", Enabled: true},
			{ID: 8, ClassKey: "LABORBERICHT", DisplayName: "Laborbericht", Enabled: true},
			{ID: 9, ClassKey: "ALTLAST", DisplayName: "Stillgelegt", Enabled: false},
		},
		Models: map[string]ModelSpec{
			"llama": {Name: "llama", MaxTokens: 4096, Active: true},
		},
	}
}

func TestBuildPlanOrdering(t *testing.T) {
	plan := BuildPlan(testSnapshot())

	names := func(steps []StepSpec) []string {
		out := make([]string, len(steps))
		for i, s := range steps {
			out[i] = s.Name
		}
		return out
	}

	assert.Equal(t, []string{"Validation", "Classification"}, names(plan.PreBranch))
	assert.Equal(t, []string{"Arztbrief Details", "Arztbrief Summary"}, names(plan.ByClass[7]))
	assert.Equal(t, []string{"Labor Details"}, names(plan.ByClass[8]))
	assert.Equal(t, []string{"Simplification"}, names(plan.PostBranch))
}

func TestBuildPlanOrderTieBreaksByID(t *testing.T) {
	snap := &Snapshot{
		Steps: []StepSpec{
			{ID: 9, Name: "b", Order: 5, Enabled: true, ModelName: "m"},
			{ID: 2, Name: "a", Order: 5, Enabled: true, ModelName: "m"},
		},
		Models: map[string]ModelSpec{"m": {Name: "m", Active: true}},
	}
	plan := BuildPlan(snap)
	require.Len(t, plan.PreBranch, 2)
	assert.Equal(t, "a", plan.PreBranch[0].Name)
	assert.Equal(t, "b", plan.PreBranch[1].Name)
}

func TestPlanClassSteps(t *testing.T) {
	snap := testSnapshot()
	plan := BuildPlan(snap)

	assert.Len(t, plan.ClassSteps(snap, "ARZTBRIEF"), 2)
	assert.Len(t, plan.ClassSteps(snap, "arztbrief"), 2, "class key match is case-insensitive")
	assert.Nil(t, plan.ClassSteps(snap, "UNBEKANNT"))
	assert.Nil(t, plan.ClassSteps(snap, "ALTLAST"), "disabled class selects nothing")
	assert.Nil(t, plan.ClassSteps(snap, ""))
}

func TestSnapshotValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, testSnapshot().Validate())
	})

	t.Run("disabled branching step leaves a valid graph", func(t *testing.T) {
		// Execution then runs pre- and post-branch with an empty phase 2.
		snap := testSnapshot()
		snap.Steps[1].Enabled = false
		assert.NoError(t, snap.Validate())
	})

	t.Run("two branching steps", func(t *testing.T) {
		snap := testSnapshot()
		snap.Steps[2].IsBranchingStep = true
		assert.Error(t, snap.Validate())
	})

	t.Run("branching step must be pre-branch", func(t *testing.T) {
		snap := testSnapshot()
		snap.Steps[1].IsBranchingStep = false
		snap.Steps[0].IsBranchingStep = true
		assert.Error(t, snap.Validate())
	})

	t.Run("duplicate order in same bucket", func(t *testing.T) {
		snap := testSnapshot()
		snap.Steps[4].Order = 10
		assert.Error(t, snap.Validate())
	})

	t.Run("same order in different buckets is fine", func(t *testing.T) {
		snap := testSnapshot()
		// Arztbrief and Labor both start at order 10 already.
		assert.NoError(t, snap.Validate())
	})

	t.Run("disabled steps are ignored", func(t *testing.T) {
		snap := testSnapshot()
		snap.Steps[6].IsBranchingStep = true
		assert.NoError(t, snap.Validate())
	})

	t.Run("unknown model", func(t *testing.T) {
		snap := testSnapshot()
		snap.Steps[2].ModelName = "fehlt"
		assert.Error(t, snap.Validate())
	})
}
