package database

import (
	"context"
	"database/sql"
	"time"
)

// degradedAfter is the ping latency beyond which a reachable database is
// reported as degraded rather than healthy.
const degradedAfter = 250 * time.Millisecond

// HealthStatus reports database reachability and connection pool statistics.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health checks database connectivity and returns pool statistics. A slow
// but successful ping reports "degraded" so operators can tell saturation
// from an outage.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	elapsed := time.Since(start)
	status := "healthy"
	if elapsed > degradedAfter {
		status = "degraded"
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:          status,
		ResponseTime:    elapsed.Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
