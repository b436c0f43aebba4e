package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/pipeline"
)

// A cooking recipe is the canonical non-medical upload; the validation gate
// must end the run gracefully without touching any later step.
func TestE2E_NonMedicalTermination(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddScript("NICHT_MEDIZINISCH")

	app := NewTestApp(t, WithLLMClient(llm))
	pid := app.Process(t, "rezept.txt", "Man nehme 500g Mehl, drei Eier und etwas Milch.", nil)

	app.WaitForStatus(t, pid, job.StatusTerminated)

	resp := app.GetProcessing(t, pid)
	assert.Equal(t, "TERMINATED", resp["status"])
	assert.Equal(t, true, resp["terminated"])
	assert.Equal(t, "Medical Content Validation", resp["termination_step"])
	assert.Equal(t, "non_medical_content", resp["termination_reason"])
	assert.Equal(t, "NICHT_MEDIZINISCH", resp["matched_value"])
	assert.NotEmpty(t, resp["termination_message"])
	assert.Equal(t, float64(1), resp["steps_executed"])
	assert.Contains(t, resp, "processing_time_seconds")

	// No simplified output and no further LLM calls.
	assert.NotContains(t, resp, "simplified_text")
	assert.Equal(t, 1, llm.CallCount())

	steps := app.QuerySteps(t, pid)
	if assert.Len(t, steps, 1) {
		assert.Equal(t, pipeline.StepTerminated, string(steps[0].Status))
	}
}
