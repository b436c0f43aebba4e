package api

import (
	"github.com/klartext-health/befund/pkg/database"
	"github.com/klartext-health/befund/pkg/queue"
)

// UploadResponse is returned by POST /api/upload.
type UploadResponse struct {
	ProcessingID string `json:"processing_id"`
	Status       string `json:"status"`
}

// ProcessResponse is returned by POST /api/process/translate.
type ProcessResponse struct {
	ProcessingID string `json:"processing_id"`
	Status       string `json:"status"`
	QueueLane    string `json:"queue_lane"`
}

// CancelResponse is returned by POST /api/processing/:id/cancel.
type CancelResponse struct {
	ProcessingID string `json:"processing_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

// HealthCheck is one component check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Checks     map[string]HealthCheck `json:"checks"`
}
