package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/pipeline"
)

// processTranslateHandler handles POST /api/process/translate.
// Moves an uploaded job from PENDING to QUEUED on the high priority lane
// with the current pipeline configuration frozen onto it. Caller-supplied
// pipeline_config overrides are schema-validated and applied to the frozen
// copy only; the live configuration is untouched.
func (s *Server) processTranslateHandler(c *gin.Context) {
	var req ProcessTranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProcessingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "processing_id is required; upload the document via /api/upload first"})
		return
	}

	jb, err := s.jobs.GetByProcessingID(c.Request.Context(), req.ProcessingID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if jb.Status != job.StatusPending {
		c.JSON(http.StatusConflict,
			gin.H{"error": fmt.Sprintf("job is %s; only pending jobs can be queued", jb.Status)})
		return
	}

	override, err := parseOverride(req.PipelineConfig)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := s.pipeline.Snapshot(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	snap, err = applyOverride(snap, override)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DocumentType != "" && !classKnown(snap, req.DocumentType) {
		c.JSON(http.StatusBadRequest,
			gin.H{"error": fmt.Sprintf("unknown document_type %q", req.DocumentType)})
		return
	}

	if req.TargetLanguage != "" || req.DocumentType != "" {
		if err := s.jobs.SetProcessingOptions(c.Request.Context(), jb.ID, req.TargetLanguage, req.DocumentType); err != nil {
			abortServiceError(c, err)
			return
		}
	}

	if err := s.jobs.SnapshotAndQueue(c.Request.Context(), jb.ID, snap, nil, config.LaneHighPriority); err != nil {
		abortServiceError(c, err)
		return
	}

	// Push failure is not fatal: the DB poller re-announces queued rows.
	if err := s.broker.Enqueue(c.Request.Context(), config.LaneHighPriority, jb.ID); err != nil {
		slog.Warn("Failed to announce queued job on broker",
			"job_id", jb.ID, "error", err)
	}

	c.JSON(http.StatusAccepted, &ProcessResponse{
		ProcessingID: jb.ProcessingID,
		Status:       strings.ToUpper(string(job.StatusQueued)),
		QueueLane:    config.LaneHighPriority,
	})
}

func classKnown(snap *pipeline.Snapshot, classKey string) bool {
	for _, cl := range snap.Classes {
		if cl.ClassKey == classKey {
			return true
		}
	}
	return false
}
