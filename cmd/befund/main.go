// Befund server — hosts the HTTP API, the queue worker pool, and the
// retention maintenance loop for medical document processing.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/klartext-health/befund/pkg/api"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/crypto"
	"github.com/klartext-health/befund/pkg/database"
	"github.com/klartext-health/befund/pkg/events"
	"github.com/klartext-health/befund/pkg/llm"
	"github.com/klartext-health/befund/pkg/maintenance"
	"github.com/klartext-health/befund/pkg/ocr"
	"github.com/klartext-health/befund/pkg/pipeline"
	"github.com/klartext-health/befund/pkg/privacy"
	"github.com/klartext-health/befund/pkg/queue"
	"github.com/klartext-health/befund/pkg/services"
	"github.com/klartext-health/befund/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize()
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting befund", "version", version.Full(), "pod_id", podID, "addr", cfg.Server.Addr)

	// 2. Database (runs pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// First boot seeds the default pipeline; subsequent boots are no-ops.
	if err := dbClient.Seed(ctx); err != nil {
		slog.Error("Failed to seed default pipeline", "error", err)
		os.Exit(1)
	}

	// 3. Encryption: master key from the environment unseals (or creates)
	// the data key stored in system settings.
	master, err := crypto.NewBoxFromBase64(cfg.EncryptionKey)
	if err != nil {
		slog.Error("ENCRYPTION_KEY is not a valid base64 32-byte key", "error", err)
		os.Exit(1)
	}
	settings := services.NewSettingsService(dbClient.Client)
	dataBox, err := settings.EnsureDataKey(ctx, master)
	if err != nil {
		slog.Error("Failed to bootstrap data encryption key", "error", err)
		os.Exit(1)
	}

	// 4. Domain services
	jobs := services.NewJobService(dbClient.Client, dataBox)
	pipelineSvc := services.NewPipelineService(dbClient.Client)
	flags := services.NewFlagService(dbClient.Client, cfg)
	ocrConfigs := services.NewOCRConfigService(dbClient.Client)

	// 5. Cross-replica events: publisher for progress and config changes,
	// listener to drop the snapshot cache when another replica edits.
	publisher := events.NewPublisher(dbClient.DB())
	pipelineSvc.SetNotifier(publisher)

	listener := events.NewListener(dbConfig.DSN())
	listener.Handle(events.ChannelConfigChanged, func([]byte) {
		pipelineSvc.Invalidate()
	})
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start notification listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(context.Background())

	// 6. One-time startup orphan cleanup for jobs this pod left running.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic sweep catches them too.
	}

	// 7. Queue broker: Redis when configured, DB polling otherwise.
	var broker queue.Broker
	if cfg.Queue.RedisURL != "" {
		broker, err = queue.NewRedisBroker(ctx, cfg.Queue.RedisURL, slog.Default())
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		slog.Info("Queue broker: redis")
	} else {
		broker = queue.NewPollBroker(dbClient.Client, cfg.Queue.PollInterval, cfg.Queue.PollIntervalJitter, slog.Default())
		slog.Info("Queue broker: database polling")
	}
	defer func() {
		if err := broker.Close(); err != nil {
			slog.Error("Error closing queue broker", "error", err)
		}
	}()

	// 8. Execution collaborators
	llmClient := llm.NewHTTPClient(cfg.LLM.BaseURL, cfg.LLM.AccessToken)

	var remoteFilter *privacy.RemoteFilter
	if cfg.Privacy.UseExternal {
		remoteFilter = privacy.NewRemoteFilter(cfg.Privacy.ExternalURL, cfg.Privacy.APIKey)
	}
	piiFilter := privacy.NewService(remoteFilter, cfg.Privacy.UseExternal)

	var ocrEngine *ocr.RemoteEngine
	if active, err := ocrConfigs.Active(ctx); err == nil {
		ocrEngine = ocr.NewRemoteEngine(active.Endpoint, active.LanguageHints)
		slog.Info("OCR engine configured", "engine", active.Engine)
	} else if !errors.Is(err, services.ErrNotFound) {
		slog.Error("Failed to load OCR configuration", "error", err)
		os.Exit(1)
	} else {
		slog.Warn("No OCR engine configured; only plain text uploads will process")
	}
	extractor := ocr.NewService(ocrEngine)

	recorder := services.NewExecutionRecorder(dbClient.Client, dataBox, jobs)
	recorder.SetNotifier(publisher)
	executor := pipeline.NewExecutor(llmClient, recorder, slog.Default())
	processor := queue.NewProcessor(jobs, extractor, piiFilter, executor, nil, slog.Default())

	// 9. Worker pool
	pool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, broker, jobs, processor, publisher)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Retention maintenance
	cleaner := maintenance.NewService(cfg.Retention, dbClient.Client, broker)
	cleaner.Start(ctx)

	// 11. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg.Server, dbClient, jobs, pipelineSvc, broker)
	httpServer.SetWorkerPool(pool)
	httpServer.SetFlagService(flags)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Befund started",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop intake first, then drain workers.
	httpCtx, httpCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	cleaner.Stop()

	drainCtx, drainCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer drainCancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Shutdown timeout exceeded; incomplete jobs will be orphan-recovered")
	}

	slog.Info("Shutdown complete")
}
