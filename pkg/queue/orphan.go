package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/metrics"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — the timeout write is a CAS from
// RUNNING, so concurrent scans are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running jobs with stale heartbeats and
// marks them as timed out (terminal state).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, jb := range orphans {
		ok, err := p.recoverOrphanedJob(ctx, jb)
		if err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", jb.ID,
				"error", err)
			continue
		}
		if ok {
			recovered++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob marks a single orphaned job as timed out. Returns
// false when another actor already moved the job out of RUNNING.
func (p *WorkerPool) recoverOrphanedJob(ctx context.Context, jb *ent.Job) (bool, error) {
	lastHeartbeat := "unknown"
	if jb.LastHeartbeatAt != nil {
		lastHeartbeat = jb.LastHeartbeatAt.Format(time.RFC3339)
	}

	workerID := "unknown"
	if jb.WorkerID != nil {
		workerID = *jb.WorkerID
	}

	// Terminal — jobs never resume; a restart goes through the API again.
	n, err := p.client.Job.Update().
		Where(job.ID(jb.ID), job.StatusEQ(job.StatusRunning)).
		SetStatus(job.StatusTimeout).
		SetCompletedAt(time.Now()).
		ClearCurrentStep().
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from worker %s since %s", workerID, lastHeartbeat)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark job as timed out: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	metrics.JobsTotal.WithLabelValues(string(job.StatusTimeout)).Inc()
	if p.publisher != nil {
		p.publisher.PublishJobStatus(ctx, jb.ProcessingID, job.StatusTimeout)
	}
	slog.Warn("Orphaned job marked as timed out",
		"job_id", jb.ID, "last_heartbeat", lastHeartbeat)
	return true, nil
}

// CleanupStartupOrphans performs a one-time cleanup of jobs owned by this
// pod that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.WorkerIDHasPrefix(podID+"/"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, jb := range orphans {
		n, err := client.Job.Update().
			Where(job.ID(jb.ID), job.StatusEQ(job.StatusRunning)).
			SetStatus(job.StatusTimeout).
			SetCompletedAt(now).
			ClearCurrentStep().
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while job was running", podID)).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"job_id", jb.ID,
				"error", err)
			continue
		}
		if n > 0 {
			metrics.JobsTotal.WithLabelValues(string(job.StatusTimeout)).Inc()
			slog.Info("Startup orphan recovered", "job_id", jb.ID)
		}
	}

	return nil
}
