// Package maintenance provides the periodic retention and queue-repair
// sweeps. Every run is idempotent and safe to execute from multiple pods.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/metrics"
	"github.com/klartext-health/befund/pkg/queue"
)

// requeueAge is how long a QUEUED row may go untouched before its broker
// announcement is assumed lost and repeated.
const requeueAge = 5 * time.Minute

// Service periodically enforces the data retention mandate and repairs
// the queue:
//   - Hard-deletes jobs past the retention window, regardless of status.
//     Step executions and interaction logs go with them via cascade.
//   - Removes jobs stuck in PENDING (uploaded but never enqueued).
//   - Re-announces QUEUED jobs whose broker push was lost.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client
	broker queue.Broker

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new maintenance service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, broker queue.Broker) *Service {
	return &Service{
		config: cfg,
		client: client,
		broker: broker,
	}
}

// Start launches the background maintenance loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Maintenance service started",
		"data_retention_hours", s.config.DataRetentionHours,
		"stuck_pending_age", s.config.StuckPendingAge,
		"interval", s.config.CleanupInterval)
}

// Stop signals the maintenance loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Maintenance service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeExpiredJobs(ctx)
	s.removeStuckPending(ctx)
	s.reannounceQueued(ctx)
}

// purgeExpiredJobs deletes every job past the retention window. The window
// applies to all statuses: retention is a data-protection mandate, not a
// completion courtesy.
func (s *Service) purgeExpiredJobs(ctx context.Context) {
	cutoff := time.Now().Add(-time.Duration(s.config.DataRetentionHours) * time.Hour)

	n, err := s.client.Job.Delete().
		Where(job.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: job purge failed", "error", err)
		return
	}
	if n > 0 {
		metrics.MaintenanceDeletions.WithLabelValues("expired_job").Add(float64(n))
		slog.Info("Retention: purged expired jobs", "count", n)
	}
}

// removeStuckPending deletes uploads that never reached the queue.
func (s *Service) removeStuckPending(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.StuckPendingAge)

	n, err := s.client.Job.Delete().
		Where(
			job.StatusEQ(job.StatusPending),
			job.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: stuck pending cleanup failed", "error", err)
		return
	}
	if n > 0 {
		metrics.MaintenanceDeletions.WithLabelValues("stuck_pending").Add(float64(n))
		slog.Info("Retention: removed stuck pending jobs", "count", n)
	}
}

// reannounceQueued repeats the broker push for QUEUED jobs that sat
// untouched past requeueAge — the enqueue crashed between the DB write
// and the push. Duplicate announcements are harmless: reservation is a
// CAS on the row.
func (s *Service) reannounceQueued(ctx context.Context) {
	cutoff := time.Now().Add(-requeueAge)

	stale, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusQueued),
			job.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Queue repair: stale queued scan failed", "error", err)
		return
	}

	announced := 0
	for _, jb := range stale {
		if err := s.broker.Enqueue(ctx, jb.QueueLane, jb.ID); err != nil {
			slog.Warn("Queue repair: re-announce failed", "job_id", jb.ID, "error", err)
			continue
		}
		// Touch the row so the next sweep skips it.
		if err := s.client.Job.UpdateOneID(jb.ID).
			SetUpdatedAt(time.Now()).
			Exec(ctx); err != nil {
			slog.Warn("Queue repair: touch failed", "job_id", jb.ID, "error", err)
		}
		announced++
	}
	if announced > 0 {
		slog.Info("Queue repair: re-announced queued jobs", "count", announced)
	}
}
