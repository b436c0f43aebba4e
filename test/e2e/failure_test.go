package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/llm"
)

func transientEntry() LLMScriptEntry {
	return LLMScriptEntry{Err: &llm.Error{Kind: llm.KindTransientTransport, StatusCode: 503}}
}

// A transient provider outage exhausts the step's own retries, then earns
// the job exactly one requeue on the low priority lane. The second run
// succeeds end to end.
func TestE2E_TransientFailureRequeued(t *testing.T) {
	llmClient := NewScriptedLLMClient()
	// First run: the validation step burns both attempts on 503s.
	llmClient.AddSequential(transientEntry())
	llmClient.AddSequential(transientEntry())
	// Second run after the requeue.
	llmClient.AddScript(
		"MEDIZINISCH",
		"ARZTBRIEF",
		"Bereinigter Text.",
		"Vereinfachter Text.",
		"Geprüfter Text.",
		"Finaler Text.",
		"# Ergebnis\n\nFinaler Text.",
	)

	app := NewTestApp(t, WithLLMClient(llmClient))
	pid := app.Process(t, "brief.txt", arztbriefText, nil)

	app.WaitForStatus(t, pid, job.StatusCompleted)

	jb := app.Job(t, pid)
	assert.Equal(t, 1, jb.JobAttempts)
	assert.Equal(t, config.LaneLowPriority, jb.QueueLane)
	assert.Equal(t, 9, llmClient.CallCount())

	// The first run left a failed validation row; the requeued run wrote a
	// fresh succeeded one.
	names := StepNames(app.QuerySteps(t, pid))
	assert.Contains(t, names, "Medical Content Validation:failed")
	assert.Contains(t, names, "Medical Content Validation:succeeded")

	// Failed attempts are logged with their error class.
	var failedCalls int
	for _, in := range app.QueryInteractions(t, pid) {
		if !in.Success {
			failedCalls++
			assert.Equal(t, string(llm.KindTransientTransport), *in.ErrorCode)
		}
	}
	assert.Equal(t, 2, failedCalls)
}

// A second transient run is final: one requeue per job, then FAILED.
func TestE2E_TransientFailureBudgetExhausted(t *testing.T) {
	llmClient := NewScriptedLLMClient()
	for i := 0; i < 4; i++ {
		llmClient.AddSequential(transientEntry())
	}

	app := NewTestApp(t, WithLLMClient(llmClient))
	pid := app.Process(t, "brief.txt", arztbriefText, nil)

	app.WaitForStatus(t, pid, job.StatusFailed)

	jb := app.Job(t, pid)
	assert.Equal(t, 1, jb.JobAttempts)
	assert.Equal(t, 4, llmClient.CallCount())

	resp := app.GetProcessing(t, pid)
	assert.Equal(t, "FAILED", resp["status"])
	assert.Contains(t, resp["error"], "step failed after 2 attempt(s)")
}

// Non-retryable provider errors fail immediately, with no retry and no
// requeue.
func TestE2E_FatalProviderError(t *testing.T) {
	llmClient := NewScriptedLLMClient()
	llmClient.AddSequential(LLMScriptEntry{Err: &llm.Error{Kind: llm.KindAuthFailure, StatusCode: 401}})

	app := NewTestApp(t, WithLLMClient(llmClient))
	pid := app.Process(t, "brief.txt", arztbriefText, nil)

	app.WaitForStatus(t, pid, job.StatusFailed)

	jb := app.Job(t, pid)
	assert.Equal(t, 0, jb.JobAttempts)
	assert.Equal(t, 1, llmClient.CallCount())
	assert.Contains(t, *jb.ErrorMessage, "auth_failure")
}
