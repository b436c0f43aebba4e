// Package queue provides the priority lanes, job reservation, and worker
// pool that drive asynchronous document processing.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no queued jobs are in any subscribed lane.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Broker hands queued job ids to workers. Delivery is at-least-once and
// advisory: the QUEUED→RUNNING CAS on the job row is what makes execution
// at-most-once, so duplicate or stale deliveries are harmless.
type Broker interface {
	// Enqueue pushes a job id onto a lane.
	Enqueue(ctx context.Context, lane, jobID string) error

	// Dequeue blocks up to timeout for the next job id, honoring the lane
	// order as strict priority. Returns ErrNoJobsAvailable on timeout.
	Dequeue(ctx context.Context, lanes []string, timeout time.Duration) (jobID, lane string, err error)

	// Depth reports the number of waiting jobs in a lane.
	Depth(ctx context.Context, lane string) (int64, error)

	Close() error
}

// JobExecutor runs one reserved job to its terminal state.
//
// The executor owns the ENTIRE processing lifecycle internally: payload
// decryption, OCR, the privacy filter, and the step pipeline. It writes
// step executions, interaction logs, and progress PROGRESSIVELY during the
// run. The worker only handles: dequeue, reservation, heartbeat, the
// terminal status write, and requeue decisions.
type JobExecutor interface {
	Execute(ctx context.Context, jb *ent.Job) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. All
// intermediate state was already written to the DB by the executor.
type ExecutionResult struct {
	Status job.Status // completed, terminated, failed, cancelled, timeout
	Err    error      // set when Status is failed or timeout

	// Transient marks a failure worth one job-level requeue.
	Transient bool

	SimplifiedText string
	TranslatedText string
	ResultData     map[string]interface{}
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool             `json:"is_healthy"`
	DBReachable      bool             `json:"db_reachable"`
	DBError          string           `json:"db_error,omitempty"`
	PodID            string           `json:"pod_id"`
	ActiveWorkers    int              `json:"active_workers"`
	TotalWorkers     int              `json:"total_workers"`
	ActiveJobs       int              `json:"active_jobs"`
	MaxConcurrent    int              `json:"max_concurrent"`
	QueueDepths      map[string]int64 `json:"queue_depths"`
	WorkerStats      []WorkerHealth   `json:"worker_stats"`
	LastOrphanScan   time.Time        `json:"last_orphan_scan"`
	OrphansRecovered int              `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
