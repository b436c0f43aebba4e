package e2e

import (
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/queue"
)

// The full pipeline over the Redis broker instead of the database poller.
// The API push and the worker's blocking pop go through the same lane keys
// production uses.
func TestE2E_RedisBrokerPipeline(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	broker := queue.NewRedisBrokerFromClient(rdb, slog.Default())

	llm := NewScriptedLLMClient()
	llm.AddScript(
		"MEDIZINISCH",
		"BEFUNDBERICHT",
		"Bereinigter Befundtext.",
		"Ihr Befund zeigt keine Auffälligkeiten.",
		"Ihr Befund zeigt keine Auffälligkeiten. Eine Behandlung ist nicht nötig.",
		"# Ihr Befund\n\nKeine Auffälligkeiten.",
	)

	app := NewTestApp(t, WithLLMClient(llm), WithBroker(broker))
	pid := app.Process(t, "befund.txt", "Befundbericht: Sonographie des Abdomens unauffällig.", nil)

	app.WaitForStatus(t, pid, job.StatusCompleted)

	names := StepNames(app.QuerySteps(t, pid))
	assert.Contains(t, names, "Befund Simplification:succeeded")

	resp := app.GetProcessing(t, pid)
	assert.Equal(t, "# Ihr Befund\n\nKeine Auffälligkeiten.", resp["simplified_text"])
}
