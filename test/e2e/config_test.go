package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent/job"
)

// Disabling a step through the admin API must reach running replicas via
// the NOTIFY listener: the next job plans without it.
func TestE2E_AdminEditInvalidatesSnapshot(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddScript(
		"MEDIZINISCH",
		"UNBEKANNT",
		"Bereinigter Text.",
		// Final Check is disabled below; Formatting follows directly.
		"# Ergebnis\n\nBereinigter Text.",
	)

	app := NewTestApp(t, WithLLMClient(llm))
	ctx := context.Background()

	// Warm the snapshot cache so the test proves invalidation, not the
	// first load.
	_, err := app.Pipeline.Snapshot(ctx)
	require.NoError(t, err)

	id, version := app.findStep(t, "Final Check")
	app.patchJSON(t, fmt.Sprintf("/api/admin/pipeline/steps/%d", id), map[string]interface{}{
		"version": version,
		"enabled": false,
	}, http.StatusOK)

	// The config_changed notification travels through Postgres; wait until
	// the cached snapshot reflects the edit.
	require.Eventually(t, func() bool {
		snap, err := app.Pipeline.Snapshot(ctx)
		if err != nil {
			return false
		}
		for _, s := range snap.Steps {
			if s.Name == "Final Check" {
				return !s.Enabled
			}
		}
		return false
	}, 10*time.Second, 50*time.Millisecond, "snapshot kept the stale Final Check step")

	pid := app.Process(t, "brief.txt", arztbriefText, nil)
	app.WaitForStatus(t, pid, job.StatusCompleted)

	names := StepNames(app.QuerySteps(t, pid))
	assert.NotContains(t, names, "Final Check:succeeded")
	assert.Contains(t, names, "Formatting:succeeded")
	assert.Equal(t, 4, llm.CallCount())
}

// A per-request pipeline_config override tunes a step for that job only.
func TestE2E_PipelineConfigOverride(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddScript(
		"MEDIZINISCH",
		"UNBEKANNT",
		"Bereinigter Text.",
		"Geprüfter Text.",
		"# Ergebnis\n\nGeprüfter Text.",
	)

	app := NewTestApp(t, WithLLMClient(llm))
	override := map[string]interface{}{
		"steps": []map[string]interface{}{
			{"name": "Formatting", "temperature": 0.7, "max_tokens": 512},
		},
	}
	raw, err := json.Marshal(override)
	require.NoError(t, err)

	pid := app.Process(t, "brief.txt", arztbriefText, map[string]interface{}{
		"pipeline_config": json.RawMessage(raw),
	})
	app.WaitForStatus(t, pid, job.StatusCompleted)

	// The formatting call ran with the overridden knobs.
	reqs := llm.CapturedRequests()
	require.Len(t, reqs, 5)
	last := reqs[len(reqs)-1]
	assert.Equal(t, 0.7, last.Temperature)
	assert.Equal(t, 512, last.MaxTokens)

	// The stored configuration is untouched.
	snap, err := app.Pipeline.Snapshot(context.Background())
	require.NoError(t, err)
	for _, s := range snap.Steps {
		if s.Name == "Formatting" {
			assert.NotEqual(t, 0.7, s.Temperature)
		}
	}
}

// findStep looks a pipeline step up through the admin listing and returns
// its id and current version.
func (app *TestApp) findStep(t *testing.T, name string) (id, version int) {
	t.Helper()
	for _, raw := range app.getJSONArray(t, "/api/admin/pipeline/steps", http.StatusOK) {
		row, ok := raw.(map[string]interface{})
		if !ok || row["name"] != name {
			continue
		}
		return int(row["id"].(float64)), int(row["version"].(float64))
	}
	t.Fatalf("step %q not found in admin listing", name)
	return 0, 0
}
