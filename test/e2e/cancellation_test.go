package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klartext-health/befund/ent/job"
)

// Cancelling a running job must interrupt the in-flight LLM call and leave
// the row CANCELLED, not let the worker overwrite it with a terminal write.
func TestE2E_CancelRunningJob(t *testing.T) {
	blocked := make(chan struct{}, 1)
	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{BlockUntilCancelled: true, OnBlock: blocked})

	app := NewTestApp(t, WithLLMClient(llm))
	pid := app.Process(t, "brief.txt", arztbriefText, nil)

	// The first pipeline step is now stuck inside the provider call.
	<-blocked

	resp := app.CancelProcessing(t, pid, http.StatusOK)
	assert.Equal(t, "CANCELLED", resp["status"])

	app.WaitForStatus(t, pid, job.StatusCancelled)

	// The status must stay cancelled once the worker unwinds.
	jb := app.Job(t, pid)
	assert.Equal(t, job.StatusCancelled, jb.Status)
	assert.Nil(t, jb.SimplifiedText)

	// A second cancel is rejected: the job is already terminal.
	app.CancelProcessing(t, pid, http.StatusConflict)
}

// Cancelling a queued job needs no worker involvement at all.
func TestE2E_CancelQueuedJob(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(0))
	pid := app.Process(t, "brief.txt", arztbriefText, nil)

	app.CancelProcessing(t, pid, http.StatusOK)
	assert.Equal(t, job.StatusCancelled, app.Job(t, pid).Status)
	assert.Equal(t, 0, app.LLM.CallCount())
}
