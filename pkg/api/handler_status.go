package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
)

// getProcessingHandler handles GET /api/processing/:id.
// The id is the public processing token, never the internal job id.
func (s *Server) getProcessingHandler(c *gin.Context) {
	processingID := c.Param("id")

	jb, err := s.jobs.GetByProcessingID(c.Request.Context(), processingID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	resp := gin.H{
		"processing_id": jb.ProcessingID,
		"status":        strings.ToUpper(string(jb.Status)),
		"progress":      jb.ProgressPercent,
		"filename":      jb.Filename,
		"created_at":    jb.CreatedAt.Format(time.RFC3339),
	}
	if jb.CurrentStep != nil {
		resp["current_step"] = *jb.CurrentStep
	}
	if jb.CompletedAt != nil {
		resp["completed_at"] = jb.CompletedAt.Format(time.RFC3339)
	}
	if jb.DocumentClass != nil {
		resp["document_type"] = *jb.DocumentClass
	}

	switch jb.Status {
	case job.StatusCompleted:
		texts, err := s.jobs.OpenTexts(jb)
		if err != nil {
			abortServiceError(c, err)
			return
		}
		resp["simplified_text"] = texts.SimplifiedText
		if texts.TranslatedText != "" {
			resp["translated_text"] = texts.TranslatedText
		}
		if jb.ResultData != nil {
			resp["result"] = jb.ResultData
		}
		if jb.PiiDegraded {
			resp["pii_degraded"] = true
		}

	case job.StatusTerminated:
		// The termination outcome is surfaced verbatim at the top level:
		// terminated, termination_step, termination_reason,
		// termination_message, matched_value, processing_time_seconds,
		// steps_executed.
		mergeResultData(resp, jb)

	case job.StatusFailed, job.StatusTimeout, job.StatusCancelled:
		if jb.ErrorMessage != nil {
			resp["error"] = *jb.ErrorMessage
		}
	}

	c.JSON(http.StatusOK, resp)
}

func mergeResultData(resp gin.H, jb *ent.Job) {
	for k, v := range jb.ResultData {
		resp[k] = v
	}
}
