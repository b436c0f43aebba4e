package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
)

const queueKeyPrefix = "befund:queue:"

func queueKey(lane string) string {
	return queueKeyPrefix + lane
}

// RedisBroker is the production broker. Each lane is a Redis list; Dequeue
// uses BRPOP across all lane keys, whose argument order gives strict
// priority between lanes.
type RedisBroker struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewRedisBroker connects to Redis using a URL of the form
// redis://[:password@]host:port[/db].
func NewRedisBroker(ctx context.Context, redisURL string, logger *slog.Logger) (*RedisBroker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisBroker{rdb: rdb, logger: logger}, nil
}

// NewRedisBrokerFromClient wraps an existing client. Used by tests.
func NewRedisBrokerFromClient(rdb *redis.Client, logger *slog.Logger) *RedisBroker {
	return &RedisBroker{rdb: rdb, logger: logger}
}

func (b *RedisBroker) Enqueue(ctx context.Context, lane, jobID string) error {
	if err := b.rdb.LPush(ctx, queueKey(lane), jobID).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job %s on lane %s: %w", jobID, lane, err)
	}
	return nil
}

func (b *RedisBroker) Dequeue(ctx context.Context, lanes []string, timeout time.Duration) (string, string, error) {
	keys := make([]string, len(lanes))
	for i, lane := range lanes {
		keys[i] = queueKey(lane)
	}

	res, err := b.rdb.BRPop(ctx, timeout, keys...).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", ErrNoJobsAvailable
		}
		return "", "", fmt.Errorf("failed to dequeue: %w", err)
	}
	// BRPOP returns [key, value].
	if len(res) != 2 {
		return "", "", fmt.Errorf("unexpected BRPOP reply of length %d", len(res))
	}
	lane := res[0][len(queueKeyPrefix):]
	return res[1], lane, nil
}

func (b *RedisBroker) Depth(ctx context.Context, lane string) (int64, error) {
	n, err := b.rdb.LLen(ctx, queueKey(lane)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get depth of lane %s: %w", lane, err)
	}
	return n, nil
}

func (b *RedisBroker) Close() error {
	return b.rdb.Close()
}

// PollBroker is the fallback when no Redis is configured. It serves
// Dequeue by polling the jobs table for QUEUED rows; the reservation CAS
// still guarantees each job runs at most once, so concurrent pollers
// observing the same row are safe.
type PollBroker struct {
	client       *ent.Client
	pollInterval time.Duration
	pollJitter   time.Duration
	logger       *slog.Logger
}

func NewPollBroker(client *ent.Client, pollInterval, pollJitter time.Duration, logger *slog.Logger) *PollBroker {
	return &PollBroker{
		client:       client,
		pollInterval: pollInterval,
		pollJitter:   pollJitter,
		logger:       logger,
	}
}

// Enqueue is a no-op: queued jobs are discovered by polling the jobs
// table, so the QUEUED status written by the service is the enqueue.
func (b *PollBroker) Enqueue(ctx context.Context, lane, jobID string) error {
	return nil
}

func (b *PollBroker) Dequeue(ctx context.Context, lanes []string, timeout time.Duration) (string, string, error) {
	deadline := time.Now().Add(timeout)
	for {
		for _, lane := range lanes {
			jb, err := b.client.Job.Query().
				Where(
					job.StatusEQ(job.StatusQueued),
					job.QueueLaneEQ(lane),
				).
				Order(ent.Asc(job.FieldCreatedAt)).
				First(ctx)
			if err == nil {
				return jb.ID, lane, nil
			}
			if !ent.IsNotFound(err) {
				return "", "", fmt.Errorf("failed to poll lane %s: %w", lane, err)
			}
		}

		if time.Now().After(deadline) {
			return "", "", ErrNoJobsAvailable
		}

		// Jitter desynchronizes replicas polling the same table.
		wait := b.pollInterval
		if b.pollJitter > 0 {
			wait += time.Duration(rand.Int63n(int64(b.pollJitter)))
		}
		select {
		case <-ctx.Done():
			return "", "", ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (b *PollBroker) Depth(ctx context.Context, lane string) (int64, error) {
	n, err := b.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusQueued),
			job.QueueLaneEQ(lane),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count lane %s: %w", lane, err)
	}
	return int64(n), nil
}

func (b *PollBroker) Close() error {
	return nil
}
