package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klartext-health/befund/ent/job"
)

// A job that outlives its execution deadline ends as TIMEOUT with the
// in-flight provider call cancelled.
func TestE2E_JobTimeout(t *testing.T) {
	blocked := make(chan struct{}, 1)
	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{BlockUntilCancelled: true, OnBlock: blocked})

	app := NewTestApp(t, WithLLMClient(llm), WithJobTimeout(500*time.Millisecond))
	pid := app.Process(t, "brief.txt", arztbriefText, nil)

	<-blocked
	app.WaitForStatus(t, pid, job.StatusTimeout)

	resp := app.GetProcessing(t, pid)
	assert.Equal(t, "TIMEOUT", resp["status"])
	assert.Contains(t, resp["error"], "deadline")

	// Exactly one call was started; the deadline killed it.
	assert.Equal(t, 1, llm.CallCount())
}
