package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klartext-health/befund/pkg/services"
)

// uploadHandler handles POST /api/upload.
// Creates a job in PENDING and returns the public processing_id. The
// payload is sealed at rest immediately; nothing runs until the caller
// queues the job via /api/process/translate.
func (s *Server) uploadHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge,
				gin.H{"error": fmt.Sprintf("upload exceeds maximum size of %d bytes", s.cfg.MaxUploadBytes)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	if fileHeader.Size > s.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge,
			gin.H{"error": fmt.Sprintf("upload exceeds maximum size of %d bytes", s.cfg.MaxUploadBytes)})
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !s.cfg.FileTypeAllowed(ext) {
		c.JSON(http.StatusBadRequest,
			gin.H{"error": fmt.Sprintf("file type %q is not accepted", ext)})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload could not be read"})
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload could not be read"})
		return
	}

	jb, err := s.jobs.Create(c.Request.Context(), services.CreateJobRequest{
		Filename:    filepath.Base(fileHeader.Filename),
		FileType:    ext,
		Content:     content,
		Tenant:      tenant(c),
		SubmittedBy: subject(c),
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &UploadResponse{
		ProcessingID: jb.ProcessingID,
		Status:       strings.ToUpper(string(jb.Status)),
	})
}
