package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/pkg/llm"
)

// scriptedLLM replays canned responses in call order.
type scriptedLLM struct {
	mu       sync.Mutex
	script   []func(llm.Request) (*llm.Response, error)
	requests []llm.Request
}

func (s *scriptedLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	idx := len(s.requests) - 1
	if idx >= len(s.script) {
		return nil, fmt.Errorf("unexpected llm call %d", idx)
	}
	return s.script[idx](req)
}

func reply(text string, inTok, outTok int) func(llm.Request) (*llm.Response, error) {
	return func(req llm.Request) (*llm.Response, error) {
		return &llm.Response{Text: text, Model: req.Model, InputTokens: inTok, OutputTokens: outTok, LatencyMS: 5}, nil
	}
}

func failWith(kind llm.ErrorKind) func(llm.Request) (*llm.Response, error) {
	return func(llm.Request) (*llm.Response, error) {
		return nil, &llm.Error{Kind: kind, StatusCode: 500}
	}
}

// memSink collects persistence events in memory.
type memSink struct {
	mu           sync.Mutex
	steps        []StepRecord
	interactions []Interaction
	progress     []string
	stepErr      error
}

func (m *memSink) RecordStep(_ context.Context, _ string, rec StepRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stepErr != nil {
		return "", m.stepErr
	}
	m.steps = append(m.steps, rec)
	return fmt.Sprintf("exec-%d", len(m.steps)), nil
}

func (m *memSink) RecordInteraction(_ context.Context, _ string, _ string, rec Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactions = append(m.interactions, rec)
	return nil
}

func (m *memSink) Progress(_ context.Context, _ string, _ int, step string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = append(m.progress, step)
	return nil
}

func executorSnapshot() *Snapshot {
	seven := 7
	eight := 8
	return &Snapshot{
		Steps: []StepSpec{
			{
				ID: 1, Name: "Medical Validation", Order: 10, Enabled: true,
				ModelName: "llama", MaxTokens: 100,
				PromptTemplate:        "Ist das medizinisch? {input_text}",
				StopOnValues:          []string{"NICHT_MEDIZINISCH"},
				AllowedContinueValues: []string{"MEDIZINISCH"},
				TerminationReason:     "not_medical",
				TerminationMessage:    "Das Dokument ist kein medizinisches Dokument.",
				RetryOnFailure:        true, MaxRetries: 2,
			},
			{
				ID: 2, Name: "Classification", Order: 20, Enabled: true, IsBranchingStep: true,
				ModelName: "llama", MaxTokens: 100,
				PromptTemplate:        "Klassifiziere: {input_text}",
				AllowedContinueValues: []string{"SONSTIGES"},
				UseOriginalText:       true,
			},
			{
				ID: 3, Name: "Arztbrief Extraction", Order: 10, DocumentClassID: &seven, Enabled: true,
				ModelName: "llama", MaxTokens: 2000,
				PromptTemplate: "Extrahiere aus dem Arztbrief: {original_text}",
			},
			{
				ID: 4, Name: "Labor Extraction", Order: 10, DocumentClassID: &eight, Enabled: true,
				ModelName: "llama", MaxTokens: 2000,
				PromptTemplate: "Extrahiere Laborwerte: {original_text}",
			},
			{
				ID: 5, Name: "Simplification", Order: 30, PostBranching: true, Enabled: true,
				ModelName: "llama", MaxTokens: 4000,
				PromptTemplate: "Vereinfache: {input_text}",
				SystemPrompt:   "Du bist ein medizinischer Übersetzer für Laien und erklärst Befunde einfach.",
			},
			{
				ID: 6, Name: "Translation", Order: 40, PostBranching: true, Enabled: true,
				ModelName: "llama", MaxTokens: 4000,
				PromptTemplate:           "Übersetze nach {target_language}: {input_text}",
				RequiredContextVariables: []string{"target_language"},
			},
		},
		Classes: []ClassSpec{
			{ID: 7, ClassKey: "ARZTBRIEF", DisplayName: "Arztbrief", Enabled: true},
			{ID: 8, ClassKey: "LABORBERICHT", DisplayName: "Laborbericht", Enabled: true},
		},
		Models: map[string]ModelSpec{
			"llama": {Name: "llama", MaxTokens: 4096, Active: true, InputPricePerM: 0.9, OutputPricePerM: 0.6},
		},
	}
}

func newTestExecutor(client llm.Client, sink Sink) *Executor {
	return NewExecutor(client, sink, slog.New(slog.DiscardHandler))
}

func TestExecuteHappyPathWithBranch(t *testing.T) {
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		reply("MEDIZINISCH", 100, 5),
		reply("ARZTBRIEF", 100, 5),
		reply("Diagnose: Hypertonie. Therapie: Ramipril.", 200, 80),
		reply("Ihr Blutdruck ist zu hoch, Sie bekommen ein Medikament dagegen.", 300, 120),
		reply("Your blood pressure is too high.", 200, 90),
	}}
	sink := &memSink{}
	exec := newTestExecutor(client, sink)

	res := exec.Execute(context.Background(), "job-1", "proc-1", executorSnapshot(),
		"Arztbrief: Pat. mit art. Hypertonie.", map[string]string{"target_language": "en"})

	require.True(t, res.Success, "error: %s", res.Error)
	assert.False(t, res.Terminated)
	assert.Equal(t, "ARZTBRIEF", res.DocumentType)
	assert.Equal(t, "Your blood pressure is too high.", res.FinalOutput)

	require.Len(t, res.StepsExecuted, 5)
	var names []string
	for _, rec := range res.StepsExecuted {
		names = append(names, rec.StepName)
		assert.Equal(t, StepSucceeded, rec.Status)
	}
	assert.Equal(t, []string{"Medical Validation", "Classification", "Arztbrief Extraction", "Simplification", "Translation"}, names)

	// Labor branch must not run.
	for _, req := range client.requests {
		assert.NotContains(t, req.Messages[len(req.Messages)-1].Content, "Laborwerte")
	}

	assert.Equal(t, 900+300, res.TotalTokens)
	assert.InDelta(t, 900*0.9/1e6+300*0.6/1e6, res.TotalCost, 1e-12)
	assert.Len(t, sink.interactions, 5)
	assert.Len(t, sink.steps, 5)
}

func TestExecuteSystemPromptSeparation(t *testing.T) {
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		reply("MEDIZINISCH", 10, 2),
		reply("LABORBERICHT", 10, 2),
		reply("Leukozyten 12.3", 10, 2),
		reply("Ihre weißen Blutkörperchen sind leicht erhöht.", 10, 2),
		reply("Slightly elevated white cells.", 10, 2),
	}}
	exec := newTestExecutor(client, &memSink{})

	res := exec.Execute(context.Background(), "job-2", "proc-2", executorSnapshot(),
		"Labor: Leukozyten 12.3 /nl", map[string]string{"target_language": "en"})
	require.True(t, res.Success, "error: %s", res.Error)

	// Simplification is call index 3 and is the only step with a system prompt.
	req := client.requests[3]
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "medizinischer Übersetzer")
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
	for i, other := range client.requests {
		if i == 3 {
			continue
		}
		require.Len(t, other.Messages, 1)
		assert.Equal(t, llm.RoleUser, other.Messages[0].Role)
	}
}

func TestExecuteGracefulTermination(t *testing.T) {
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		reply("NICHT_MEDIZINISCH, das ist ein Mietvertrag.", 50, 10),
	}}
	sink := &memSink{}
	exec := newTestExecutor(client, sink)

	res := exec.Execute(context.Background(), "job-3", "proc-3", executorSnapshot(),
		"Mietvertrag über die Wohnung in der [ADDRESS]", nil)

	require.True(t, res.Success)
	assert.True(t, res.Terminated)
	assert.Equal(t, "Medical Validation", res.TerminationStep)
	assert.Equal(t, "not_medical", res.TerminationReason)
	assert.Equal(t, "Das Dokument ist kein medizinisches Dokument.", res.TerminationMessage)
	assert.Equal(t, "NICHT_MEDIZINISCH", res.MatchedValue)
	assert.Contains(t, res.FinalOutput, "Mietvertrag")

	require.Len(t, sink.steps, 1)
	assert.Equal(t, StepTerminated, sink.steps[0].Status)
	assert.Len(t, client.requests, 1, "no step may run after termination")
}

func TestExecuteRetriesValidationFailure(t *testing.T) {
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		reply("", 10, 0),             // empty output, retryable
		reply("VIELLEICHT", 10, 2),   // unexpected token, retryable
		reply("MEDIZINISCH", 10, 2),  // third attempt passes
		reply("SONSTIGES", 10, 2),    // classification: tolerated non-class token
		reply("Vereinfacht.", 10, 2), // simplification
	}}
	sink := &memSink{}
	exec := newTestExecutor(client, sink)

	res := exec.Execute(context.Background(), "job-4", "proc-4", executorSnapshot(),
		"Befundtext", nil)

	require.True(t, res.Success, "error: %s", res.Error)
	assert.Equal(t, 3, res.StepsExecuted[0].Attempts)
	assert.Empty(t, res.DocumentType, "unknown class token leaves phase 2 empty")

	// Translation skipped: target_language not set.
	last := res.StepsExecuted[len(res.StepsExecuted)-1]
	assert.Equal(t, "Translation", last.StepName)
	assert.Equal(t, StepSkipped, last.Status)
	assert.Equal(t, "Vereinfacht.", res.FinalOutput, "skipped step carries input forward")

	// All three validation attempts are logged.
	var validationCalls int
	for _, inter := range sink.interactions {
		if inter.StepName == "Medical Validation" {
			validationCalls++
		}
	}
	assert.Equal(t, 3, validationCalls)
}

func TestExecuteRetriesExhaust(t *testing.T) {
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		reply("UNSINN", 10, 2),
		reply("QUATSCH", 10, 2),
		reply("BLA", 10, 2),
	}}
	sink := &memSink{}
	exec := newTestExecutor(client, sink)

	res := exec.Execute(context.Background(), "job-5", "proc-5", executorSnapshot(), "Befundtext", nil)

	assert.False(t, res.Success)
	assert.Equal(t, "Medical Validation", res.FailedStep)
	assert.Contains(t, res.Error, "after 3 attempt(s)")
	require.Len(t, sink.steps, 1)
	assert.Equal(t, StepFailed, sink.steps[0].Status)
	assert.Len(t, client.requests, 3)
}

func TestExecuteFatalErrorSkipsRetries(t *testing.T) {
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		failWith(llm.KindAuthFailure),
	}}
	exec := newTestExecutor(client, &memSink{})

	res := exec.Execute(context.Background(), "job-6", "proc-6", executorSnapshot(), "Befundtext", nil)

	assert.False(t, res.Success)
	assert.Len(t, client.requests, 1, "auth failures must not be retried")
	assert.Contains(t, res.Error, "auth_failure")
}

func TestExecuteTransientErrorUsesStepRetries(t *testing.T) {
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		failWith(llm.KindTransientTransport),
		reply("MEDIZINISCH", 10, 2),
		reply("ARZTBRIEF", 10, 2),
		reply("Extrahiert.", 10, 2),
		reply("Vereinfacht.", 10, 2),
	}}
	sink := &memSink{}
	exec := newTestExecutor(client, sink)

	res := exec.Execute(context.Background(), "job-7", "proc-7", executorSnapshot(), "Befundtext", nil)

	require.True(t, res.Success, "error: %s", res.Error)
	assert.Equal(t, 2, res.StepsExecuted[0].Attempts)
	assert.False(t, sink.interactions[0].Success)
	assert.Equal(t, string(llm.KindTransientTransport), sink.interactions[0].ErrorCode)
}

func TestExecuteExternalDocumentType(t *testing.T) {
	snap := executorSnapshot()
	// Disable the branching step; phase 2 must still follow the caller's type.
	snap.Steps[1].Enabled = false

	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		reply("MEDIZINISCH", 10, 2),
		reply("Laborwerte extrahiert.", 10, 2),
		reply("Vereinfacht.", 10, 2),
	}}
	exec := newTestExecutor(client, &memSink{})

	res := exec.Execute(context.Background(), "job-8", "proc-8", snap,
		"Labortext", map[string]string{"document_type": "LABORBERICHT"})

	require.True(t, res.Success, "error: %s", res.Error)
	assert.Equal(t, "LABORBERICHT", res.DocumentType)
	assert.Contains(t, client.requests[1].Messages[0].Content, "Laborwerte")
}

func TestExecuteMaxTokensOverModelLimit(t *testing.T) {
	snap := executorSnapshot()
	snap.Steps[0].MaxTokens = 10000

	client := &scriptedLLM{}
	exec := newTestExecutor(client, &memSink{})

	res := exec.Execute(context.Background(), "job-9", "proc-9", snap, "Befundtext", nil)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "max_tokens")
	assert.Empty(t, client.requests, "no call may be made for an unresolvable step")
}

func TestExecuteUndefinedPlaceholderFails(t *testing.T) {
	snap := executorSnapshot()
	snap.Steps[0].PromptTemplate = "Hier fehlt was: {gibt_es_nicht}"

	client := &scriptedLLM{}
	exec := newTestExecutor(client, &memSink{})

	res := exec.Execute(context.Background(), "job-10", "proc-10", snap, "Befundtext", nil)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "gibt_es_nicht")
	assert.Empty(t, client.requests)
}

func TestExecuteEmptyInputRefused(t *testing.T) {
	exec := newTestExecutor(&scriptedLLM{}, &memSink{})
	res := exec.Execute(context.Background(), "job-11", "proc-11", executorSnapshot(), "   \n ", nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "empty")
}

func TestExecuteCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		func(req llm.Request) (*llm.Response, error) {
			cancel()
			return &llm.Response{Text: "MEDIZINISCH", Model: req.Model, InputTokens: 10, OutputTokens: 2}, nil
		},
	}}
	exec := newTestExecutor(client, &memSink{})

	res := exec.Execute(ctx, "job-12", "proc-12", executorSnapshot(), "Befundtext", nil)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "cancelled")
	assert.Len(t, client.requests, 1)
}

func TestExecuteBracesInDocumentSurviveSubstitution(t *testing.T) {
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		reply("MEDIZINISCH", 10, 2),
		reply("ARZTBRIEF", 10, 2),
		reply("ok", 10, 2),
		reply("ok", 10, 2),
	}}
	exec := newTestExecutor(client, &memSink{})

	res := exec.Execute(context.Background(), "job-13", "proc-13", executorSnapshot(),
		"Befund mit {geschweiften} Klammern und {input_text} als Text", nil)

	require.True(t, res.Success, "error: %s", res.Error)
	prompt := client.requests[0].Messages[0].Content
	assert.Contains(t, prompt, "{geschweiften}", "document braces must reach the model verbatim")
	assert.Contains(t, prompt, "{input_text} als Text", "placeholder-looking text in documents is data, not a template")
}

func TestExecuteSinkFailureHaltsRun(t *testing.T) {
	sink := &memSink{stepErr: errors.New("db down")}
	client := &scriptedLLM{script: []func(llm.Request) (*llm.Response, error){
		reply("MEDIZINISCH", 10, 2),
	}}
	exec := newTestExecutor(client, sink)

	res := exec.Execute(context.Background(), "job-14", "proc-14", executorSnapshot(), "Befundtext", nil)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "db down")
}
