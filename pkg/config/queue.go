package config

import "time"

// Lane names in strict dequeue priority order. Workers drain high_priority
// before touching default, and so on.
const (
	LaneHighPriority = "high_priority"
	LaneDefault      = "default"
	LaneLowPriority  = "low_priority"
	LaneMaintenance  = "maintenance"
)

// Lanes returns all lane names in priority order.
func Lanes() []string {
	return []string{LaneHighPriority, LaneDefault, LaneLowPriority, LaneMaintenance}
}

// QueueConfig contains queue and worker pool configuration. These values
// control how jobs are dequeued, reserved, and processed.
type QueueConfig struct {
	// RedisURL selects the Redis broker when set. Empty falls back to
	// database polling, which is slower but needs no extra infrastructure.
	RedisURL string `yaml:"redis_url"`

	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of jobs running across ALL
	// replicas. Enforced by a database COUNT(*) check before reserving.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// DequeueBlockTimeout is how long a blocking pop waits before the
	// worker re-checks shutdown and capacity.
	DequeueBlockTimeout time.Duration `yaml:"dequeue_block_timeout"`

	// PollInterval is the base interval for the database fallback broker.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the per-job deadline. On expiry the in-flight LLM call
	// is cancelled and the job ends as timeout.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs to
	// finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker bumps last_heartbeat_at on
	// its running job.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a running job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxJobRetries bounds job-level requeues after a transient failure,
	// distinct from per-step retries.
	MaxJobRetries int `yaml:"max_job_retries"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       5,
		DequeueBlockTimeout:     2 * time.Second,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         15 * time.Minute,
		MaxJobRetries:           1,
	}
}
