// Package events distributes coordination signals between replicas over
// PostgreSQL NOTIFY/LISTEN: job status and progress transitions for
// observers, and config-change notifications that invalidate the per-process
// pipeline snapshot cache.
//
// All events here are transient — NOTIFY only, nothing persisted. The job
// row is the durable record; a missed notification costs at most one cache
// TTL or one poll interval.
package events

import "time"

// NOTIFY channels.
const (
	// ChannelJobProgress carries job status and progress payloads.
	ChannelJobProgress = "job_progress"

	// ChannelConfigChanged signals that pipeline configuration (steps,
	// classes, models, flags) changed and snapshot caches must refresh.
	ChannelConfigChanged = "config_changed"
)

// Event types within ChannelJobProgress.
const (
	EventTypeJobStatus   = "job.status"
	EventTypeJobProgress = "job.progress"
)

// JobStatusPayload announces a job status transition.
type JobStatusPayload struct {
	Type         string    `json:"type"`
	ProcessingID string    `json:"processing_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

// JobProgressPayload announces a progress update for a running job.
type JobProgressPayload struct {
	Type        string    `json:"type"`
	JobID       string    `json:"job_id"`
	Percent     int       `json:"percent"`
	CurrentStep string    `json:"current_step,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ConfigChangedPayload announces a configuration change.
type ConfigChangedPayload struct {
	Scope     string    `json:"scope"` // "pipeline", "models", "flags", "ocr"
	Timestamp time.Time `json:"timestamp"`
}
