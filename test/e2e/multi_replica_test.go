package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent/job"
)

// Two replicas share one database. A job accepted by an API-only replica is
// picked up and completed by the other replica's workers.
func TestE2E_SharedQueueAcrossReplicas(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddScript("NICHT_MEDIZINISCH")

	front := NewTestApp(t, WithWorkerCount(0), WithPodID("pod-front"))
	NewTestApp(t,
		WithDBClient(front.DBClient),
		WithLLMClient(llm),
		WithPodID("pod-worker"))

	pid := front.Process(t, "zettel.txt", "Einkaufszettel: Brot und Milch.", nil)
	front.WaitForStatus(t, pid, job.StatusTerminated)

	jb := front.Job(t, pid)
	require.NotNil(t, jb.WorkerID)
	assert.Contains(t, *jb.WorkerID, "pod-worker/")
}

// A running job whose worker died silently is recovered by any replica's
// orphan sweep: stale heartbeat past the threshold means terminal TIMEOUT.
func TestE2E_OrphanRecovery(t *testing.T) {
	app := NewTestApp(t,
		WithWorkerCount(0),
		WithOrphanScan(200*time.Millisecond, 500*time.Millisecond))

	pid := app.Process(t, "brief.txt", arztbriefText, nil)

	// Simulate a crashed pod: reserve the job, then let the heartbeat age.
	ctx := context.Background()
	jb := app.Job(t, pid)
	_, err := app.Jobs.ReserveForRun(ctx, jb.ID, "pod-dead/worker-0")
	require.NoError(t, err)
	err = app.EntClient.Job.UpdateOneID(jb.ID).
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	app.WaitForStatus(t, pid, job.StatusTimeout)

	jb = app.Job(t, pid)
	require.NotNil(t, jb.ErrorMessage)
	assert.Contains(t, *jb.ErrorMessage, "no heartbeat from worker pod-dead/worker-0")
	assert.Equal(t, 0, app.LLM.CallCount())
}
