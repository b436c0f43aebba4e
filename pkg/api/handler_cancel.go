package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klartext-health/befund/pkg/services"
)

// cancelProcessingHandler handles POST /api/processing/:id/cancel.
// The DB transition is authoritative; cancelling the local execution
// context is best effort since the job may run on another replica, where
// the worker's terminal write loses the status CAS instead.
func (s *Server) cancelProcessingHandler(c *gin.Context) {
	processingID := c.Param("id")

	jb, err := s.jobs.Cancel(c.Request.Context(), processingID)
	if errors.Is(err, services.ErrConcurrentModification) {
		c.JSON(http.StatusConflict, gin.H{"error": "job is not in a cancellable state"})
		return
	}
	if err != nil {
		abortServiceError(c, err)
		return
	}

	if s.pool != nil {
		s.pool.CancelJob(processingID)
	}

	c.JSON(http.StatusOK, &CancelResponse{
		ProcessingID: processingID,
		Status:       strings.ToUpper(string(jb.Status)),
		Message:      "processing cancelled",
	})
}
