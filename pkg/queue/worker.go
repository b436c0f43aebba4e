package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/metrics"
	"github.com/klartext-health/befund/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// JobRegistry is the subset of WorkerPool used by Worker for cancel
// registration. Jobs are keyed by processing id, which is what the cancel
// endpoint receives.
type JobRegistry interface {
	RegisterJob(processingID string, cancel context.CancelFunc)
	UnregisterJob(processingID string)
}

// StatusPublisher broadcasts job status transitions to listeners on other
// replicas. Implementations are non-blocking; nil disables publishing.
type StatusPublisher interface {
	PublishJobStatus(ctx context.Context, processingID string, status job.Status)
}

// Worker is a single queue worker that dequeues and processes jobs.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	broker    Broker
	jobs      *services.JobService
	executor  JobExecutor
	publisher StatusPublisher
	pool      JobRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
// publisher may be nil (status events disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, broker Broker, jobs *services.JobService, executor JobExecutor, pool JobRegistry, publisher StatusPublisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		broker:       broker,
		jobs:         jobs,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.dequeueAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					// The blocking dequeue already waited; loop again to
					// re-check shutdown.
					continue
				}
				if errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// dequeueAndProcess checks capacity, reserves a job, and processes it.
func (w *Worker) dequeueAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	// 2. Pull the next job id, high priority lanes first.
	jobID, lane, err := w.broker.Dequeue(ctx, config.Lanes(), w.config.DequeueBlockTimeout)
	if err != nil {
		return err
	}

	log := slog.With("job_id", jobID, "lane", lane, "worker_id", w.id)

	// 3. Reserve via the QUEUED→RUNNING CAS. A lost CAS means another
	//    worker won the row, or the job was cancelled while waiting; the
	//    delivery is simply dropped.
	jb, err := w.jobs.ReserveForRun(ctx, jobID, fmt.Sprintf("%s/%s", w.podID, w.id))
	if err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			log.Debug("Job no longer reservable, dropping delivery")
			return nil
		}
		return fmt.Errorf("reserving job: %w", err)
	}

	log.Info("Job reserved", "processing_id", jb.ProcessingID)
	w.publishStatus(ctx, jb.ProcessingID, job.StatusRunning)

	w.setStatus(WorkerStatusWorking, jb.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Create job context with the per-job deadline.
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// 5. Register cancel function for API-triggered cancellation.
	w.pool.RegisterJob(jb.ProcessingID, cancelJob)
	defer w.pool.UnregisterJob(jb.ProcessingID)

	// 6. Start heartbeat.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, jb.ID)

	// 7. Execute the pipeline.
	result := w.executor.Execute(jobCtx, jb)

	// 7a. Nil-guard: synthesize a safe result if executor returned nil.
	if result == nil {
		result = &ExecutionResult{}
	}

	// 8. Map an unset status to what the context says happened.
	if result.Status == "" {
		switch {
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			result.Status = job.StatusTimeout
			result.Err = fmt.Errorf("job timed out after %v", w.config.JobTimeout)
		case errors.Is(jobCtx.Err(), context.Canceled):
			result.Status = job.StatusCancelled
		default:
			result.Status = job.StatusFailed
			result.Err = fmt.Errorf("executor returned no status")
		}
	}

	// 9. Stop heartbeat before the terminal write.
	cancelHeartbeat()

	// 10. Write terminal status (background context — job ctx may be done).
	if err := w.finalize(context.Background(), jb, result); err != nil {
		log.Error("Failed to finalize job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "status", result.Status)
	return nil
}

// finalize writes the terminal status for a finished run. All terminal
// setters CAS from RUNNING, so a job cancelled through the API mid-run is
// never overwritten; the resulting ErrConcurrentModification is expected
// and swallowed.
func (w *Worker) finalize(ctx context.Context, jb *ent.Job, result *ExecutionResult) error {
	var err error
	switch result.Status {
	case job.StatusCompleted:
		err = w.jobs.Complete(ctx, jb.ID, services.CompleteResult{
			SimplifiedText: result.SimplifiedText,
			TranslatedText: result.TranslatedText,
			ResultData:     result.ResultData,
		})
	case job.StatusTerminated:
		err = w.jobs.Terminate(ctx, jb.ID, result.ResultData)
	case job.StatusTimeout:
		err = w.jobs.Timeout(ctx, jb.ID)
	case job.StatusCancelled:
		// The cancel endpoint already moved the row to CANCELLED. A
		// shutdown-cancelled run stays RUNNING and is recovered by the
		// orphan sweep.
		metrics.JobsTotal.WithLabelValues(string(job.StatusCancelled)).Inc()
		w.publishStatus(ctx, jb.ProcessingID, job.StatusCancelled)
		return nil
	case job.StatusFailed:
		if result.Transient {
			requeued, rqErr := w.jobs.Requeue(ctx, jb.ID, config.LaneLowPriority, w.config.MaxJobRetries)
			if rqErr != nil {
				return rqErr
			}
			if requeued {
				if err := w.broker.Enqueue(ctx, config.LaneLowPriority, jb.ID); err != nil {
					slog.Warn("Failed to re-announce requeued job; polling will pick it up",
						"job_id", jb.ID, "error", err)
				}
				slog.Info("Job requeued after transient failure",
					"job_id", jb.ID, "lane", config.LaneLowPriority)
				w.publishStatus(ctx, jb.ProcessingID, job.StatusQueued)
				return nil
			}
		}
		msg := "job failed"
		if result.Err != nil {
			msg = result.Err.Error()
		}
		err = w.jobs.Fail(ctx, jb.ID, msg)
	default:
		err = w.jobs.Fail(ctx, jb.ID, fmt.Sprintf("executor returned unknown status %q", result.Status))
		result.Status = job.StatusFailed
	}

	if err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			slog.Info("Job reached a terminal state elsewhere, keeping it",
				"job_id", jb.ID, "attempted_status", result.Status)
			return nil
		}
		return err
	}

	metrics.JobsTotal.WithLabelValues(string(result.Status)).Inc()
	w.publishStatus(ctx, jb.ProcessingID, result.Status)
	return nil
}

// runHeartbeat periodically bumps last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.jobs.Heartbeat(ctx, jobID); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// publishStatus emits a status transition event. Non-blocking, nil-safe.
func (w *Worker) publishStatus(ctx context.Context, processingID string, status job.Status) {
	if w.publisher == nil {
		return
	}
	w.publisher.PublishJobStatus(ctx, processingID, status)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
