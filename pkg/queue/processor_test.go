package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/ent"
	entjob "github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/config"
	"github.com/klartext-health/befund/pkg/database"
	"github.com/klartext-health/befund/pkg/llm"
	"github.com/klartext-health/befund/pkg/ocr"
	"github.com/klartext-health/befund/pkg/pipeline"
	"github.com/klartext-health/befund/pkg/privacy"
	"github.com/klartext-health/befund/pkg/services"
	testdb "github.com/klartext-health/befund/test/database"
)

// cannedLLM replays scripted responses in call order.
type cannedLLM struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (c *cannedLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls >= len(c.responses) {
		return nil, fmt.Errorf("unexpected call %d", c.calls+1)
	}
	text := c.responses[c.calls]
	c.calls++
	return &llm.Response{
		Text:         text,
		Model:        req.Model,
		InputTokens:  100,
		OutputTokens: 50,
	}, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(context.Context, ocr.Document) (string, error) {
	return s.text, s.err
}

// stubFilter replaces a fixed name so tests can observe the cleaning.
type stubFilter struct {
	degraded bool
	err      error
}

func (s stubFilter) RemovePII(_ context.Context, text, _ string, _ []string) (*privacy.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &privacy.Result{
		CleanedText: strings.ReplaceAll(text, "Müller", privacy.PlaceholderName),
		Degraded:    s.degraded,
	}, nil
}

type processorFixture struct {
	client *database.Client
	jobs   *services.JobService
	llm    *cannedLLM
}

func newProcessor(t *testing.T, fx *processorFixture, extractor ocr.Extractor, filter privacy.Filter) *Processor {
	t.Helper()
	box := queueTestBox(t)
	recorder := services.NewExecutionRecorder(fx.client.Client, box, fx.jobs)
	exec := pipeline.NewExecutor(fx.llm, recorder, slog.New(slog.DiscardHandler))
	return NewProcessor(fx.jobs, extractor, filter, exec, nil, slog.New(slog.DiscardHandler))
}

func translationSnapshot() *pipeline.Snapshot {
	return &pipeline.Snapshot{
		Steps: []pipeline.StepSpec{
			{ID: 1, Name: "Simplification", Order: 10, Enabled: true, ModelName: "llama", MaxTokens: 500,
				PromptTemplate: "Vereinfache: {input_text}"},
			{ID: 2, Name: "Translation", Order: 20, Enabled: true, ModelName: "llama", MaxTokens: 500,
				PromptTemplate:           "Übersetze nach {target_language}: {input_text}",
				RequiredContextVariables: []string{"target_language"}},
		},
		Models: map[string]pipeline.ModelSpec{
			"llama": {Name: "llama", MaxTokens: 4096, Active: true},
		},
	}
}

// seedReservedJob creates, queues, and reserves a job so the processor
// sees the same state a worker hands it.
func seedReservedJob(t *testing.T, jobs *services.JobService, snap *pipeline.Snapshot, targetLanguage string) *ent.Job {
	t.Helper()
	ctx := context.Background()
	created, err := jobs.Create(ctx, services.CreateJobRequest{
		Filename:       "befund.txt",
		FileType:       "txt",
		Content:        []byte("Befund für Herrn Müller: V.a. Pneumonie"),
		TargetLanguage: targetLanguage,
	})
	require.NoError(t, err)
	require.NoError(t, jobs.SnapshotAndQueue(ctx, created.ID, snap, nil, config.LaneDefault))
	reserved, err := jobs.ReserveForRun(ctx, created.ID, "pod-a/worker-0")
	require.NoError(t, err)
	return reserved
}

func TestProcessor_Execute(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, queueTestBox(t))
	ctx := context.Background()

	t.Run("full run with translation", func(t *testing.T) {
		fx := &processorFixture{client: client, jobs: jobs,
			llm: &cannedLLM{responses: []string{"Vereinfachter Befund.", "Simplified report."}}}
		p := newProcessor(t, fx,
			stubExtractor{text: "Befund für Herrn Müller: V.a. Pneumonie"}, stubFilter{})

		jb := seedReservedJob(t, jobs, translationSnapshot(), "en")
		result := p.Execute(ctx, jb)

		require.NotNil(t, result)
		assert.Equal(t, entjob.StatusCompleted, result.Status)
		assert.Equal(t, "Vereinfachter Befund.", result.SimplifiedText)
		assert.Equal(t, "Simplified report.", result.TranslatedText)

		steps, ok := result.ResultData["processing_steps"].([]map[string]interface{})
		require.True(t, ok)
		assert.Len(t, steps, 2)

		// The PII-cleaned text is stored sealed on the row.
		stored, err := jobs.Get(ctx, jb.ID)
		require.NoError(t, err)
		texts, err := jobs.OpenTexts(stored)
		require.NoError(t, err)
		assert.Equal(t, "Befund für Herrn "+privacy.PlaceholderName+": V.a. Pneumonie", texts.OriginalText)
		assert.False(t, stored.PiiDegraded)
	})

	t.Run("translation step skipped without target language", func(t *testing.T) {
		fx := &processorFixture{client: client, jobs: jobs,
			llm: &cannedLLM{responses: []string{"Vereinfachter Befund."}}}
		p := newProcessor(t, fx,
			stubExtractor{text: "Befund: V.a. Pneumonie"}, stubFilter{})

		jb := seedReservedJob(t, jobs, translationSnapshot(), "")
		result := p.Execute(ctx, jb)

		assert.Equal(t, entjob.StatusCompleted, result.Status)
		assert.Equal(t, "Vereinfachter Befund.", result.SimplifiedText)
		assert.Empty(t, result.TranslatedText)
	})

	t.Run("stop condition terminates the run", func(t *testing.T) {
		snap := &pipeline.Snapshot{
			Steps: []pipeline.StepSpec{
				{ID: 1, Name: "Medical Validation", Order: 10, Enabled: true, ModelName: "llama", MaxTokens: 50,
					PromptTemplate:        "Ist das medizinisch? {input_text}",
					StopOnValues:          []string{"NICHT_MEDIZINISCH"},
					AllowedContinueValues: []string{"MEDIZINISCH"},
					TerminationReason:     "not_medical"},
			},
			Models: map[string]pipeline.ModelSpec{
				"llama": {Name: "llama", MaxTokens: 4096, Active: true},
			},
		}
		fx := &processorFixture{client: client, jobs: jobs,
			llm: &cannedLLM{responses: []string{"NICHT_MEDIZINISCH"}}}
		p := newProcessor(t, fx, stubExtractor{text: "Einkaufsliste: Brot, Milch"}, stubFilter{})

		jb := seedReservedJob(t, jobs, snap, "")
		result := p.Execute(ctx, jb)

		assert.Equal(t, entjob.StatusTerminated, result.Status)
		assert.Equal(t, true, result.ResultData["terminated"])
		assert.Equal(t, "Medical Validation", result.ResultData["termination_step"])
		assert.Equal(t, "NICHT_MEDIZINISCH", result.ResultData["matched_value"])
	})

	t.Run("payload hash mismatch fails permanently", func(t *testing.T) {
		fx := &processorFixture{client: client, jobs: jobs, llm: &cannedLLM{}}
		p := newProcessor(t, fx, stubExtractor{text: "x"}, stubFilter{})

		jb := seedReservedJob(t, jobs, translationSnapshot(), "")
		err := client.Job.UpdateOneID(jb.ID).
			SetFileHash(strings.Repeat("0", 64)).
			Exec(ctx)
		require.NoError(t, err)
		jb, err = jobs.Get(ctx, jb.ID)
		require.NoError(t, err)

		result := p.Execute(ctx, jb)
		assert.Equal(t, entjob.StatusFailed, result.Status)
		assert.False(t, result.Transient)
		assert.Contains(t, result.Err.Error(), "hash")
	})

	t.Run("extraction outage is transient, bad input is not", func(t *testing.T) {
		fx := &processorFixture{client: client, jobs: jobs, llm: &cannedLLM{}}

		p := newProcessor(t, fx, stubExtractor{err: errors.New("ocr engine: 502")}, stubFilter{})
		jb := seedReservedJob(t, jobs, translationSnapshot(), "")
		result := p.Execute(ctx, jb)
		assert.Equal(t, entjob.StatusFailed, result.Status)
		assert.True(t, result.Transient)

		p = newProcessor(t, fx, stubExtractor{err: ocr.ErrEmptyDocument}, stubFilter{})
		jb = seedReservedJob(t, jobs, translationSnapshot(), "")
		result = p.Execute(ctx, jb)
		assert.Equal(t, entjob.StatusFailed, result.Status)
		assert.False(t, result.Transient)
	})

	t.Run("pii filter failure is transient", func(t *testing.T) {
		fx := &processorFixture{client: client, jobs: jobs, llm: &cannedLLM{}}
		p := newProcessor(t, fx, stubExtractor{text: "Befund"}, stubFilter{err: errors.New("removal service down")})

		jb := seedReservedJob(t, jobs, translationSnapshot(), "")
		result := p.Execute(ctx, jb)
		assert.Equal(t, entjob.StatusFailed, result.Status)
		assert.True(t, result.Transient)
	})

	t.Run("degraded pii filtering is flagged on the job", func(t *testing.T) {
		fx := &processorFixture{client: client, jobs: jobs,
			llm: &cannedLLM{responses: []string{"Vereinfacht."}}}
		p := newProcessor(t, fx, stubExtractor{text: "Befund"}, stubFilter{degraded: true})

		jb := seedReservedJob(t, jobs, translationSnapshot(), "")
		result := p.Execute(ctx, jb)
		assert.Equal(t, entjob.StatusCompleted, result.Status)

		stored, err := jobs.Get(ctx, jb.ID)
		require.NoError(t, err)
		assert.True(t, stored.PiiDegraded)
	})

	t.Run("requeued job reuses the stored text", func(t *testing.T) {
		fx := &processorFixture{client: client, jobs: jobs,
			llm: &cannedLLM{responses: []string{"Vereinfacht."}}}
		// Extraction would fail; it must not be reached.
		p := newProcessor(t, fx, stubExtractor{err: errors.New("boom")}, stubFilter{})

		jb := seedReservedJob(t, jobs, translationSnapshot(), "")
		require.NoError(t, jobs.SetOriginalText(ctx, jb.ID, "Gespeicherter Befund", false))
		jb, err := jobs.Get(ctx, jb.ID)
		require.NoError(t, err)

		result := p.Execute(ctx, jb)
		assert.Equal(t, entjob.StatusCompleted, result.Status)
		assert.Equal(t, "Vereinfacht.", result.SimplifiedText)
	})

	t.Run("missing pipeline snapshot fails permanently", func(t *testing.T) {
		fx := &processorFixture{client: client, jobs: jobs, llm: &cannedLLM{}}
		p := newProcessor(t, fx, stubExtractor{text: "Befund"}, stubFilter{})

		created, err := jobs.Create(ctx, services.CreateJobRequest{
			Filename: "befund.txt", FileType: "txt", Content: []byte("Befund"),
		})
		require.NoError(t, err)
		err = client.Job.UpdateOneID(created.ID).
			SetStatus(entjob.StatusRunning).
			Exec(ctx)
		require.NoError(t, err)
		jb, err := jobs.Get(ctx, created.ID)
		require.NoError(t, err)

		result := p.Execute(ctx, jb)
		assert.Equal(t, entjob.StatusFailed, result.Status)
		assert.False(t, result.Transient)
		assert.Contains(t, result.Err.Error(), "snapshot")
	})
}
