package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/klartext-health/befund/ent/job"
)

// notifyLimit keeps payloads safely under PostgreSQL's 8000-byte NOTIFY
// cap. Payloads here are small routing records; oversize is a bug, not a
// truncation case.
const notifyLimit = 7900

// Publisher broadcasts transient events via pg_notify. All methods are
// best-effort from the caller's perspective: processing never fails because
// a notification did not go out.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher on the shared connection pool.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishJobStatus announces a job status transition. Errors are logged,
// not returned; the job row already carries the durable state.
func (p *Publisher) PublishJobStatus(ctx context.Context, processingID string, status job.Status) {
	payload := JobStatusPayload{
		Type:         EventTypeJobStatus,
		ProcessingID: processingID,
		Status:       string(status),
		Timestamp:    time.Now(),
	}
	if err := p.notify(ctx, ChannelJobProgress, payload); err != nil {
		slog.Warn("Failed to publish job status",
			"processing_id", processingID, "status", status, "error", err)
	}
}

// PublishProgress announces a progress update for a running job.
func (p *Publisher) PublishProgress(ctx context.Context, jobID string, percent int, currentStep string) {
	payload := JobProgressPayload{
		Type:        EventTypeJobProgress,
		JobID:       jobID,
		Percent:     percent,
		CurrentStep: currentStep,
		Timestamp:   time.Now(),
	}
	if err := p.notify(ctx, ChannelJobProgress, payload); err != nil {
		slog.Warn("Failed to publish job progress", "job_id", jobID, "error", err)
	}
}

// PublishConfigChanged tells every replica to drop its cached pipeline
// snapshot. The local cache is invalidated by the caller directly; this
// reaches the others.
func (p *Publisher) PublishConfigChanged(ctx context.Context, scope string) error {
	payload := ConfigChangedPayload{Scope: scope, Timestamp: time.Now()}
	if err := p.notify(ctx, ChannelConfigChanged, payload); err != nil {
		return fmt.Errorf("failed to publish config change: %w", err)
	}
	return nil
}

func (p *Publisher) notify(ctx context.Context, channel string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", channel, err)
	}
	if len(raw) > notifyLimit {
		return fmt.Errorf("payload exceeds NOTIFY limit (%d bytes)", len(raw))
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(raw)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}
