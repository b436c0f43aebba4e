package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/klartext-health/befund/pkg/services"
)

// listStepsHandler handles GET /api/admin/pipeline/steps.
func (s *Server) listStepsHandler(c *gin.Context) {
	steps, err := s.pipeline.ListSteps(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

// updateStepHandler handles PATCH /api/admin/pipeline/steps/:id.
// Optimistic: version must match what the editor read. Running jobs keep
// their frozen snapshot; the edit only affects jobs queued afterwards.
func (s *Server) updateStepHandler(c *gin.Context) {
	stepID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step id must be an integer"})
		return
	}

	var req UpdateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.pipeline.UpdateStep(c.Request.Context(), stepID, req.Version, services.StepUpdate{
		Description:    req.Description,
		SortOrder:      req.SortOrder,
		Enabled:        req.Enabled,
		ModelName:      req.ModelName,
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		PromptTemplate: req.PromptTemplate,
		SystemPrompt:   req.SystemPrompt,
		RetryOnFailure: req.RetryOnFailure,
		MaxRetries:     req.MaxRetries,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// listFlagsHandler handles GET /api/admin/flags.
func (s *Server) listFlagsHandler(c *gin.Context) {
	if s.flags == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feature flags are not configured"})
		return
	}
	flags, err := s.flags.List(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flags)
}

// setFlagHandler handles PUT /api/admin/flags/:name.
func (s *Server) setFlagHandler(c *gin.Context) {
	if s.flags == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feature flags are not configured"})
		return
	}
	var req SetFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.flags.SetEnabled(c.Request.Context(), c.Param("name"), req.Enabled); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "enabled": req.Enabled})
}
