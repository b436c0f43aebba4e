package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

// UploadText uploads a plain-text document and returns its processing id.
func (app *TestApp) UploadText(t *testing.T, filename, content string) string {
	t.Helper()
	resp := app.upload(t, filename, content, http.StatusCreated)
	pid, _ := resp["processing_id"].(string)
	require.NotEmpty(t, pid)
	return pid
}

func (app *TestApp) upload(t *testing.T, filename, content string, expectedStatus int) map[string]interface{} {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+"/api/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "POST /api/upload: unexpected status")

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// StartProcessing queues an uploaded document. body may carry document_type,
// target_language and pipeline_config next to the processing id.
func (app *TestApp) StartProcessing(t *testing.T, processingID string, extra map[string]interface{}) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{"processing_id": processingID}
	for k, v := range extra {
		body[k] = v
	}
	return app.postJSON(t, "/api/process/translate", body, http.StatusAccepted)
}

// Process uploads and immediately queues a document, returning the
// processing id. The shorthand for scenarios that do not inspect the
// intermediate PENDING state.
func (app *TestApp) Process(t *testing.T, filename, content string, extra map[string]interface{}) string {
	t.Helper()
	pid := app.UploadText(t, filename, content)
	app.StartProcessing(t, pid, extra)
	return pid
}

// GetProcessing fetches the public status document.
func (app *TestApp) GetProcessing(t *testing.T, processingID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/processing/"+processingID, http.StatusOK)
}

// CancelProcessing requests cancellation and returns the parsed response.
func (app *TestApp) CancelProcessing(t *testing.T, processingID string, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/processing/"+processingID+"/cancel", nil, expectedStatus)
}

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSONArray(t *testing.T, path string, expectedStatus int) []interface{} {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result []interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) patchJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPatch, app.BaseURL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "PATCH %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// ────────────────────────────────────────────────────────────
// Wait and Query Helpers
// ────────────────────────────────────────────────────────────

// WaitForStatus polls the job row until it reaches one of the expected
// statuses; it returns the status that matched.
func (app *TestApp) WaitForStatus(t *testing.T, processingID string, expected ...job.Status) job.Status {
	t.Helper()
	var actual job.Status
	require.Eventually(t, func() bool {
		jb, err := app.EntClient.Job.Query().
			Where(job.ProcessingID(processingID)).
			Only(context.Background())
		if err != nil {
			return false
		}
		actual = jb.Status
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 50*time.Millisecond,
		"job %s did not reach status %v (last: %s)", processingID, expected, actual)
	return actual
}

// Job fetches the full job row by its public id.
func (app *TestApp) Job(t *testing.T, processingID string) *ent.Job {
	t.Helper()
	jb, err := app.EntClient.Job.Query().
		Where(job.ProcessingID(processingID)).
		Only(context.Background())
	require.NoError(t, err)
	return jb
}

// QuerySteps returns the job's step executions in execution order.
func (app *TestApp) QuerySteps(t *testing.T, processingID string) []*ent.StepExecution {
	t.Helper()
	jb := app.Job(t, processingID)
	steps, err := app.EntClient.StepExecution.Query().
		Where(stepexecution.JobID(jb.ID)).
		Order(ent.Asc(stepexecution.FieldStepOrder), ent.Asc(stepexecution.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return steps
}

// StepNames maps executions to "name:status" strings for compact assertions.
func StepNames(steps []*ent.StepExecution) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, fmt.Sprintf("%s:%s", s.StepName, s.Status))
	}
	return out
}

// QueryInteractions returns the job's AI interaction log rows.
func (app *TestApp) QueryInteractions(t *testing.T, processingID string) []*ent.AIInteractionLog {
	t.Helper()
	jb := app.Job(t, processingID)
	rows, err := app.EntClient.AIInteractionLog.Query().
		Where(aiinteractionlog.JobID(jb.ID)).
		Order(ent.Asc(aiinteractionlog.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}
