package e2e

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klartext-health/befund/ent/job"
)

// Several workers racing over one queue must execute every job exactly
// once: one reservation, one terminal write, one step row per job.
func TestE2E_ConcurrentWorkersExactlyOnce(t *testing.T) {
	const jobCount = 5

	llm := NewScriptedLLMClient()
	// Routed on a marker all five documents share: identical entries keep
	// the scenario order-independent across interleaved workers.
	for i := 0; i < jobCount; i++ {
		llm.AddRouted("Einkaufszettel", LLMScriptEntry{Text: "NICHT_MEDIZINISCH"})
	}

	app := NewTestApp(t, WithLLMClient(llm), WithWorkerCount(3))

	pids := make([]string, 0, jobCount)
	for i := 0; i < jobCount; i++ {
		content := fmt.Sprintf("Einkaufszettel Nummer %d: Brot, Milch, Butter.", i)
		pids = append(pids, app.Process(t, fmt.Sprintf("doc-%d.txt", i), content, nil))
	}

	for _, pid := range pids {
		app.WaitForStatus(t, pid, job.StatusTerminated)
	}

	// Exactly one provider call and one step row per job.
	assert.Equal(t, jobCount, llm.CallCount())
	for _, pid := range pids {
		assert.Len(t, app.QuerySteps(t, pid), 1, "job %s executed more than once", pid)
	}
}
