package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/crypto"
	"github.com/klartext-health/befund/pkg/database"
	"github.com/klartext-health/befund/pkg/services"
	testdb "github.com/klartext-health/befund/test/database"
)

type apiFixture struct {
	client *database.Client
	jobs   *services.JobService
	broker *captureBroker
	cfg    *config.ServerConfig
	router *gin.Engine
}

// captureBroker records enqueued ids, nothing more.
type captureBroker struct {
	enqueued map[string][]string
}

func (b *captureBroker) Enqueue(_ context.Context, lane, jobID string) error {
	if b.enqueued == nil {
		b.enqueued = make(map[string][]string)
	}
	b.enqueued[lane] = append(b.enqueued[lane], jobID)
	return nil
}

func (b *captureBroker) Dequeue(context.Context, []string, time.Duration) (string, string, error) {
	return "", "", nil
}

func (b *captureBroker) Depth(context.Context, string) (int64, error) { return 0, nil }
func (b *captureBroker) Close() error                                 { return nil }

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	seedAPIConfig(t, client.Client)

	box, err := crypto.NewBox(bytes.Repeat([]byte{0x42}, crypto.KeySize))
	require.NoError(t, err)

	f := &apiFixture{
		client: client,
		jobs:   services.NewJobService(client.Client, box),
		broker: &captureBroker{},
		cfg:    config.DefaultServerConfig(),
	}
	srv := NewServer(f.cfg, client, f.jobs, services.NewPipelineService(client.Client), f.broker)
	f.router = srv.Router()
	return f
}

func seedAPIConfig(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	_, err := client.ModelConfig.Create().
		SetName("llama").
		SetInputPricePerM(0.9).
		SetOutputPricePerM(0.6).
		SetMaxTokens(4096).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.DocumentClass.Create().
		SetClassKey("ARZTBRIEF").
		SetDisplayName("Arztbrief").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PipelineStep.Create().
		SetName("Simplification").
		SetSortOrder(10).
		SetModelName("llama").
		SetMaxTokens(2000).
		SetTemperature(0.3).
		SetPromptTemplate("Vereinfache: {input_text}").
		Save(ctx)
	require.NoError(t, err)
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) upload(t *testing.T, filename, content string) string {
	t.Helper()
	rec := f.uploadRaw(t, filename, content)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ProcessingID)
	return resp.ProcessingID
}

func (f *apiFixture) uploadRaw(t *testing.T, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestUploadHandler(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("creates a pending job", func(t *testing.T) {
		rec := f.uploadRaw(t, "befund.txt", "Diagnose: Morbus Parkinson.")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp UploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "PENDING", resp.Status)

		jb, err := f.jobs.GetByProcessingID(context.Background(), resp.ProcessingID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, jb.Status)
		assert.Equal(t, "befund.txt", jb.Filename)
		assert.Equal(t, "txt", jb.FileType)
	})

	t.Run("rejects unknown file types", func(t *testing.T) {
		rec := f.uploadRaw(t, "payload.exe", "MZ")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "not accepted")
	})

	t.Run("rejects missing file field", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("other", "value"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects oversized uploads", func(t *testing.T) {
		f.cfg.MaxUploadBytes = 16
		defer func() { f.cfg.MaxUploadBytes = config.DefaultServerConfig().MaxUploadBytes }()

		rec := f.uploadRaw(t, "big.txt", strings.Repeat("x", 1024))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestProcessTranslateHandler(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	t.Run("queues a pending job on the high priority lane", func(t *testing.T) {
		pid := f.upload(t, "befund.txt", "Diagnose: Morbus Parkinson.")

		rec := f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{
			ProcessingID:   pid,
			TargetLanguage: "en",
			DocumentType:   "ARZTBRIEF",
		})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		var resp ProcessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "QUEUED", resp.Status)
		assert.Equal(t, config.LaneHighPriority, resp.QueueLane)

		jb, err := f.jobs.GetByProcessingID(ctx, pid)
		require.NoError(t, err)
		assert.Equal(t, job.StatusQueued, jb.Status)
		assert.Equal(t, config.LaneHighPriority, jb.QueueLane)
		require.NotNil(t, jb.TargetLanguage)
		assert.Equal(t, "en", *jb.TargetLanguage)
		require.NotNil(t, jb.DocumentClass)
		assert.Equal(t, "ARZTBRIEF", *jb.DocumentClass)
		assert.NotNil(t, jb.PipelineConfig)

		assert.Contains(t, f.broker.enqueued[config.LaneHighPriority], jb.ID)
	})

	t.Run("rejects a second queue attempt", func(t *testing.T) {
		pid := f.upload(t, "befund.txt", "Befund")
		rec := f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{ProcessingID: pid})
		require.Equal(t, http.StatusAccepted, rec.Code)

		rec = f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{ProcessingID: pid})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "only pending jobs")
	})

	t.Run("unknown processing id", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{ProcessingID: "nope"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing processing id", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "processing_id is required")
	})

	t.Run("unknown document type", func(t *testing.T) {
		pid := f.upload(t, "befund.txt", "Befund")
		rec := f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{
			ProcessingID: pid,
			DocumentType: "KASSENZETTEL",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown document_type")
	})

	t.Run("schema-invalid pipeline_config", func(t *testing.T) {
		pid := f.upload(t, "befund.txt", "Befund")
		rec := f.do(t, http.MethodPost, "/api/process/translate", map[string]interface{}{
			"processing_id":   pid,
			"pipeline_config": map[string]interface{}{"prompts": "nope"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "schema")
	})

	t.Run("override lands in the frozen snapshot only", func(t *testing.T) {
		pid := f.upload(t, "befund.txt", "Befund")
		rec := f.do(t, http.MethodPost, "/api/process/translate", map[string]interface{}{
			"processing_id": pid,
			"pipeline_config": map[string]interface{}{
				"steps": []map[string]interface{}{
					{"name": "Simplification", "temperature": 0.9, "max_tokens": 512},
				},
			},
		})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		jb, err := f.jobs.GetByProcessingID(ctx, pid)
		require.NoError(t, err)
		snap, err := f.jobs.Snapshot(jb)
		require.NoError(t, err)
		require.Len(t, snap.Steps, 1)
		assert.Equal(t, 0.9, snap.Steps[0].Temperature)
		assert.Equal(t, 512, snap.Steps[0].MaxTokens)

		// A later job without overrides gets the untouched configuration.
		pid2 := f.upload(t, "befund.txt", "Befund")
		rec = f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{ProcessingID: pid2})
		require.Equal(t, http.StatusAccepted, rec.Code)
		jb2, err := f.jobs.GetByProcessingID(ctx, pid2)
		require.NoError(t, err)
		snap2, err := f.jobs.Snapshot(jb2)
		require.NoError(t, err)
		assert.Equal(t, 0.3, snap2.Steps[0].Temperature)
	})
}

func TestGetProcessingHandler(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	queueAndRun := func(t *testing.T) (string, string) {
		pid := f.upload(t, "befund.txt", "Befund")
		rec := f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{ProcessingID: pid})
		require.Equal(t, http.StatusAccepted, rec.Code)
		jb, err := f.jobs.GetByProcessingID(ctx, pid)
		require.NoError(t, err)
		_, err = f.jobs.ReserveForRun(ctx, jb.ID, "pod-1/worker-0")
		require.NoError(t, err)
		return pid, jb.ID
	}

	t.Run("running job reports progress", func(t *testing.T) {
		pid, jobID := queueAndRun(t)
		require.NoError(t, f.jobs.UpdateProgress(ctx, jobID, 40, "Simplification"))

		rec := f.do(t, http.MethodGet, "/api/processing/"+pid, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "RUNNING", resp["status"])
		assert.Equal(t, float64(40), resp["progress"])
		assert.Equal(t, "Simplification", resp["current_step"])
		assert.NotContains(t, resp, "simplified_text")
	})

	t.Run("completed job exposes decrypted outputs", func(t *testing.T) {
		pid, jobID := queueAndRun(t)
		require.NoError(t, f.jobs.Complete(ctx, jobID, services.CompleteResult{
			SimplifiedText: "Einfacher Text.",
			TranslatedText: "Simple text.",
			ResultData:     map[string]interface{}{"total_tokens": 150},
		}))

		rec := f.do(t, http.MethodGet, "/api/processing/"+pid, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "COMPLETED", resp["status"])
		assert.Equal(t, "Einfacher Text.", resp["simplified_text"])
		assert.Equal(t, "Simple text.", resp["translated_text"])
		assert.NotEmpty(t, resp["completed_at"])
		result := resp["result"].(map[string]interface{})
		assert.Equal(t, float64(150), result["total_tokens"])
	})

	t.Run("terminated job surfaces the termination shape", func(t *testing.T) {
		pid, jobID := queueAndRun(t)
		require.NoError(t, f.jobs.Terminate(ctx, jobID, map[string]interface{}{
			"terminated":          true,
			"termination_step":    "Medical Content Validation",
			"termination_reason":  "NOT_MEDICAL",
			"termination_message": "Dieses Dokument enthält keinen medizinischen Inhalt.",
			"matched_value":       "NICHT_MEDIZINISCH",
		}))

		rec := f.do(t, http.MethodGet, "/api/processing/"+pid, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "TERMINATED", resp["status"])
		assert.Equal(t, true, resp["terminated"])
		assert.Equal(t, "Medical Content Validation", resp["termination_step"])
		assert.Equal(t, "NOT_MEDICAL", resp["termination_reason"])
		assert.Equal(t, "NICHT_MEDIZINISCH", resp["matched_value"])
	})

	t.Run("failed job exposes the error message", func(t *testing.T) {
		pid, jobID := queueAndRun(t)
		require.NoError(t, f.jobs.Fail(ctx, jobID, "pipeline step failed"))

		rec := f.do(t, http.MethodGet, "/api/processing/"+pid, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "FAILED", resp["status"])
		assert.Equal(t, "pipeline step failed", resp["error"])
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/processing/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCancelProcessingHandler(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	t.Run("cancels a queued job", func(t *testing.T) {
		pid := f.upload(t, "befund.txt", "Befund")
		rec := f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{ProcessingID: pid})
		require.Equal(t, http.StatusAccepted, rec.Code)

		rec = f.do(t, http.MethodPost, "/api/processing/"+pid+"/cancel", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		jb, err := f.jobs.GetByProcessingID(ctx, pid)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, jb.Status)
	})

	t.Run("terminal jobs are not cancellable", func(t *testing.T) {
		pid := f.upload(t, "befund.txt", "Befund")
		rec := f.do(t, http.MethodPost, "/api/process/translate", ProcessTranslateRequest{ProcessingID: pid})
		require.Equal(t, http.StatusAccepted, rec.Code)
		jb, err := f.jobs.GetByProcessingID(ctx, pid)
		require.NoError(t, err)
		_, err = f.jobs.ReserveForRun(ctx, jb.ID, "pod-1/worker-0")
		require.NoError(t, err)
		require.NoError(t, f.jobs.Complete(ctx, jb.ID, services.CompleteResult{SimplifiedText: "fertig"}))

		rec = f.do(t, http.MethodPost, "/api/processing/"+pid+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "not in a cancellable state")
	})
}

func TestAPIKeyAuth(t *testing.T) {
	f := newAPIFixture(t)
	keyed := *f.cfg
	keyed.APIKey = "secret"
	srv := NewServer(&keyed, f.client, f.jobs, services.NewPipelineService(f.client.Client), f.broker)
	f.router = srv.Router()

	t.Run("rejects missing key", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/processing/some-id", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepts the configured key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/processing/some-id", nil)
		req.Header.Set("X-API-Key", "secret")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health stays open", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminStepEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/admin/pipeline/steps", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var steps []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &steps))
	require.Len(t, steps, 1)
	stepID := int(steps[0]["id"].(float64))
	version := int(steps[0]["version"].(float64))

	t.Run("applies a versioned edit", func(t *testing.T) {
		temp := 0.7
		rec := f.do(t, http.MethodPatch, "/api/admin/pipeline/steps/"+strconv.Itoa(stepID), UpdateStepRequest{
			Version:     version,
			Temperature: &temp,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, 0.7, updated["temperature"])
		assert.Equal(t, float64(version+1), updated["version"])
	})

	t.Run("rejects a stale version", func(t *testing.T) {
		enabled := false
		rec := f.do(t, http.MethodPatch, "/api/admin/pipeline/steps/"+strconv.Itoa(stepID), UpdateStepRequest{
			Version: version, // already bumped by the previous edit
			Enabled: &enabled,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

