package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// DataRetentionHours is how long finished jobs are kept before the
	// maintenance sweep deletes them together with their step executions
	// and interaction logs.
	DataRetentionHours int `yaml:"data_retention_hours"`

	// CleanupInterval is how often the maintenance loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// StuckPendingAge is how long a job may sit in pending (uploaded but
	// never enqueued) before the sweep removes it.
	StuckPendingAge time.Duration `yaml:"stuck_pending_age"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		DataRetentionHours: 24,
		CleanupInterval:    1 * time.Hour,
		StuckPendingAge:    6 * time.Hour,
	}
}
