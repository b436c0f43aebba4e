// Package e2e boots the full service — database, broker, worker pool and
// HTTP API — against a scripted LLM and drives it through the public
// endpoints the way a deployment would be used.
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/pkg/api"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/crypto"
	"github.com/klartext-health/befund/pkg/database"
	"github.com/klartext-health/befund/pkg/events"
	"github.com/klartext-health/befund/pkg/ocr"
	"github.com/klartext-health/befund/pkg/pipeline"
	"github.com/klartext-health/befund/pkg/privacy"
	"github.com/klartext-health/befund/pkg/queue"
	"github.com/klartext-health/befund/pkg/services"
	testdb "github.com/klartext-health/befund/test/database"
	"github.com/klartext-health/befund/test/util"
)

// TestApp is a fully wired service instance under test.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	LLM       *ScriptedLLMClient
	Broker    queue.Broker
	Publisher *events.Publisher
	Listener  *events.Listener

	Jobs       *services.JobService
	Pipeline   *services.PipelineService
	WorkerPool *queue.WorkerPool
	Server     *api.Server

	BaseURL string

	t *testing.T
}

// testAppConfig holds construction options.
type testAppConfig struct {
	cfg         *config.Config
	dbClient    *database.Client
	llmClient   *ScriptedLLMClient
	broker      queue.Broker
	workerCount int
	jobTimeout  time.Duration
	orphanScan  time.Duration
	orphanAge   time.Duration
	podID       string
}

// TestAppOption customizes TestApp creation.
type TestAppOption func(*testAppConfig)

// WithConfig injects a custom config instead of the test defaults.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithLLMClient injects a pre-scripted LLM client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithBroker injects a broker instead of the default database poller.
func WithBroker(b queue.Broker) TestAppOption {
	return func(c *testAppConfig) { c.broker = b }
}

// WithWorkerCount sets the number of pool workers (default 1).
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithJobTimeout sets the per-job execution deadline (default 30s).
func WithJobTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.jobTimeout = d }
}

// WithOrphanScan tightens the orphan sweep for recovery tests: scan every
// interval, recover running jobs whose heartbeat is older than age.
func WithOrphanScan(interval, age time.Duration) TestAppOption {
	return func(c *testAppConfig) {
		c.orphanScan = interval
		c.orphanAge = age
	}
}

// WithDBClient shares an existing database client. Multi-replica tests use
// this to point two apps at the same schema.
func WithDBClient(db *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = db }
}

// WithPodID sets the pod identity used in worker ids and orphan recovery.
func WithPodID(podID string) TestAppOption {
	return func(c *testAppConfig) { c.podID = podID }
}

// NewTestApp creates and starts a full service instance. The database is
// seeded with the embedded default pipeline; shutdown is registered via
// t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount: 1,
		jobTimeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}

	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}
	if tc.cfg.Queue == nil {
		tc.cfg.Queue = config.DefaultQueueConfig()
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	tc.cfg.Queue.MaxConcurrentJobs = tc.workerCount
	tc.cfg.Queue.DequeueBlockTimeout = 200 * time.Millisecond
	tc.cfg.Queue.PollInterval = 100 * time.Millisecond
	tc.cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	tc.cfg.Queue.JobTimeout = tc.jobTimeout
	tc.cfg.Queue.HeartbeatInterval = 5 * time.Second
	tc.cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	tc.cfg.Queue.MaxJobRetries = 1
	if tc.orphanScan > 0 {
		tc.cfg.Queue.OrphanDetectionInterval = tc.orphanScan
		tc.cfg.Queue.OrphanThreshold = tc.orphanAge
	} else {
		tc.cfg.Queue.OrphanDetectionInterval = time.Minute
		tc.cfg.Queue.OrphanThreshold = time.Minute
	}

	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}

	// 1. Database, seeded with the embedded default pipeline. Seeding is a
	//    no-op on a shared, already seeded schema.
	ctx := context.Background()
	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client
	require.NoError(t, dbClient.Seed(ctx))

	// 2. Crypto: a fixed test master key, no settings indirection.
	box, err := crypto.NewBox(bytes.Repeat([]byte{0x42}, crypto.KeySize))
	require.NoError(t, err)

	// 3. Event publishing and the NOTIFY listener, both real.
	publisher := events.NewPublisher(dbClient.DB())
	pipelineSvc := services.NewPipelineService(entClient)
	pipelineSvc.SetNotifier(publisher)

	listener := events.NewListener(util.GetBaseConnectionString(t))
	listener.Handle(events.ChannelConfigChanged, func([]byte) { pipelineSvc.Invalidate() })
	require.NoError(t, listener.Start(ctx))

	// 4. Domain services.
	jobs := services.NewJobService(entClient, box)
	flags := services.NewFlagService(entClient, tc.cfg)
	recorder := services.NewExecutionRecorder(entClient, box, jobs)
	recorder.SetNotifier(publisher)

	// 5. Processing stages: plain-text extraction only, local PII filter,
	//    scripted LLM.
	executor := pipeline.NewExecutor(tc.llmClient, recorder, slog.Default())
	processor := queue.NewProcessor(jobs, ocr.NewService(nil), privacy.NewService(nil, false), executor, nil, slog.Default())

	// 6. Broker and worker pool.
	broker := tc.broker
	if broker == nil {
		broker = queue.NewPollBroker(entClient, tc.cfg.Queue.PollInterval, tc.cfg.Queue.PollIntervalJitter, slog.Default())
	}

	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-%s", t.Name())
	}
	pool := queue.NewWorkerPool(podID, entClient, tc.cfg.Queue, broker, jobs, processor, publisher)
	require.NoError(t, pool.Start(ctx))

	// 7. HTTP server on an OS-assigned port.
	server := api.NewServer(tc.cfg.Server, dbClient, jobs, pipelineSvc, broker)
	server.SetWorkerPool(pool)
	server.SetFlagService(flags)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		Config:     tc.cfg,
		DBClient:   dbClient,
		EntClient:  entClient,
		LLM:        tc.llmClient,
		Broker:     broker,
		Publisher:  publisher,
		Listener:   listener,
		Jobs:       jobs,
		Pipeline:   pipelineSvc,
		WorkerPool: pool,
		Server:     server,
		BaseURL:    fmt.Sprintf("http://%s", ln.Addr().String()),
		t:          t,
	}

	// Cleanup in reverse creation order.
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		pool.Stop()
		_ = broker.Close()
		listener.Stop(context.Background())
	})

	return app
}

// defaultTestConfig builds a config from the built-in defaults. No API key,
// so the auth middleware is disabled.
func defaultTestConfig() *config.Config {
	return &config.Config{
		Queue:     config.DefaultQueueConfig(),
		Retention: config.DefaultRetentionConfig(),
		LLM:       config.DefaultLLMConfig(),
		Privacy:   config.DefaultPrivacyConfig(),
		Server:    config.DefaultServerConfig(),
	}
}
