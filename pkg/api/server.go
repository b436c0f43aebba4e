// Package api exposes the HTTP surface: document upload, processing
// control, status polling, admin pipeline edits, health and metrics.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/database"
	"github.com/klartext-health/befund/pkg/queue"
	"github.com/klartext-health/befund/pkg/services"
)

// Server hosts the HTTP API in front of the job and pipeline services.
type Server struct {
	cfg      *config.ServerConfig
	db       *database.Client
	jobs     *services.JobService
	pipeline *services.PipelineService
	broker   queue.Broker
	pool     *queue.WorkerPool
	flags    *services.FlagService

	httpSrv *http.Server
}

// NewServer creates the API server. pool and flags are optional; without a
// pool the cancel endpoint only flips the DB status and health omits worker
// state.
func NewServer(cfg *config.ServerConfig, db *database.Client, jobs *services.JobService, pipelineSvc *services.PipelineService, broker queue.Broker) *Server {
	return &Server{
		cfg:      cfg,
		db:       db,
		jobs:     jobs,
		pipeline: pipelineSvc,
		broker:   broker,
	}
}

// SetWorkerPool wires the local worker pool for cancellation and health.
func (s *Server) SetWorkerPool(pool *queue.WorkerPool) {
	s.pool = pool
}

// SetFlagService wires the feature flag admin endpoints.
func (s *Server) SetFlagService(flags *services.FlagService) {
	s.flags = flags
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders(), requestLogger())

	r.GET("/api/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authed := r.Group("/api", apiKeyAuth(s.cfg.APIKey))
	authed.POST("/upload", s.uploadHandler)
	authed.POST("/process/translate", s.processTranslateHandler)
	authed.GET("/processing/:id", s.getProcessingHandler)
	authed.POST("/processing/:id/cancel", s.cancelProcessingHandler)

	admin := authed.Group("/admin")
	admin.GET("/pipeline/steps", s.listStepsHandler)
	admin.PATCH("/pipeline/steps/:id", s.updateStepHandler)
	admin.GET("/flags", s.listFlagsHandler)
	admin.PUT("/flags/:name", s.setFlagHandler)

	return r
}

// Start begins serving on the configured address. Blocks until the
// listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// StartWithListener serves on an existing listener. Used by tests that
// need an OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpSrv = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.Serve(ln)
}

// Shutdown stops the HTTP server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
