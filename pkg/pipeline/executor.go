package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/klartext-health/befund/pkg/guard"
	"github.com/klartext-health/befund/pkg/llm"
)

// MaxInputBytes caps the cleaned OCR text accepted by Execute.
const MaxInputBytes = 10 << 20

// Step execution statuses as persisted.
const (
	StepSucceeded  = "succeeded"
	StepFailed     = "failed"
	StepSkipped    = "skipped"
	StepTerminated = "terminated"
)

// StepRecord is one finished (or skipped) step as handed to the Sink and
// echoed in the result metadata.
type StepRecord struct {
	StepID       int
	StepName     string
	Order        int
	PhaseRank    int
	Status       string
	InputText    string
	OutputText   string
	ModelUsed    string
	Attempts     int
	DurationMS   int
	InputTokens  int
	OutputTokens int
	Cost         float64
	ErrorMessage string
	StartedAt    time.Time
	CompletedAt  time.Time
}

// Interaction is one LLM call's accounting row, text-free.
type Interaction struct {
	StepName     string
	ModelName    string
	InputTokens  int
	OutputTokens int
	Cost         float64
	LatencyMS    int64
	Success      bool
	ErrorCode    string
	Estimated    bool
}

// Sink receives the executor's persistence events. The database-backed
// implementation lives in pkg/services; tests substitute an in-memory one.
type Sink interface {
	RecordStep(ctx context.Context, jobID string, rec StepRecord) (string, error)
	RecordInteraction(ctx context.Context, jobID, stepExecutionID string, rec Interaction) error
	Progress(ctx context.Context, jobID string, percent int, currentStep string) error
}

// Result is the outcome of one pipeline run.
type Result struct {
	Success     bool
	FinalOutput string

	Terminated         bool
	TerminationStep    string
	TerminationReason  string
	TerminationMessage string
	MatchedValue       string

	DocumentType string
	FailedStep   string
	Error        string

	// Transient is set on failures that exhausted their retries on a
	// retryable provider error; the job may be requeued once.
	Transient bool

	TotalTimeSeconds float64
	TotalTokens      int
	TotalCost        float64
	StepsExecuted    []StepRecord
}

// Executor runs a job's pipeline snapshot to completion. It is stateless
// across jobs; one instance serves all workers.
type Executor struct {
	llm    llm.Client
	sink   Sink
	logger *slog.Logger
}

func NewExecutor(client llm.Client, sink Sink, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{llm: client, sink: sink, logger: logger}
}

// runState carries the mutable position of one execution.
type runState struct {
	jobID        string
	processingID string
	snap         *Snapshot
	plan         *Plan
	vars         map[string]string
	current      string // feeds the next step's input_text
	globalPos    int    // step_order across phases
	done         int
	planned      int
	result       *Result
}

// Execute runs the snapshot against the cleaned input text. The context
// pre-populated by the caller may carry target_language and document_type;
// original_text and ocr_text are always set here. Persistence failures in
// the Sink fail the run; an LLM failure or validation failure after
// retries fails the step and halts.
func (e *Executor) Execute(ctx context.Context, jobID, processingID string, snap *Snapshot, inputText string, vars map[string]string) *Result {
	started := time.Now()
	res := &Result{}
	defer func() { res.TotalTimeSeconds = time.Since(started).Seconds() }()

	if strings.TrimSpace(inputText) == "" {
		res.Error = "input text is empty"
		return res
	}
	if len(inputText) > MaxInputBytes {
		res.Error = fmt.Sprintf("input text exceeds %d bytes", MaxInputBytes)
		return res
	}
	if err := snap.Validate(); err != nil {
		res.Error = fmt.Sprintf("invalid pipeline snapshot: %v", err)
		return res
	}

	st := &runState{
		jobID:        jobID,
		processingID: processingID,
		snap:         snap,
		plan:         BuildPlan(snap),
		vars:         make(map[string]string, len(vars)+3),
		current:      inputText,
		result:       res,
	}
	for k, v := range vars {
		st.vars[k] = v
	}
	st.vars[VarOriginalText] = inputText
	st.vars[VarOCRText] = inputText
	res.DocumentType = st.vars[VarDocumentType]

	// Phase 2 length is unknown until the branch fires; estimate with the
	// pre-set document_type if any so progress does not jump backwards.
	st.planned = len(st.plan.PreBranch) + len(st.plan.PostBranch) +
		len(st.plan.ClassSteps(snap, st.vars[VarDocumentType]))

	if halted := e.runPhase(ctx, st, st.plan.PreBranch); halted {
		return res
	}

	res.DocumentType = st.vars[VarDocumentType]
	classSteps := st.plan.ClassSteps(snap, st.vars[VarDocumentType])
	st.planned = st.done + len(classSteps) + len(st.plan.PostBranch)
	if halted := e.runPhase(ctx, st, classSteps); halted {
		return res
	}

	if halted := e.runPhase(ctx, st, st.plan.PostBranch); halted {
		return res
	}

	res.Success = true
	res.FinalOutput = st.current
	return res
}

// runPhase executes one phase bucket in order. It reports true when the
// run is over, whether by graceful termination or by failure.
func (e *Executor) runPhase(ctx context.Context, st *runState, steps []StepSpec) (halted bool) {
	for i := range steps {
		if err := ctx.Err(); err != nil {
			st.result.Error = fmt.Sprintf("execution cancelled: %v", err)
			return true
		}
		if over := e.runStep(ctx, st, &steps[i]); over {
			return true
		}
	}
	return false
}

func (e *Executor) runStep(ctx context.Context, st *runState, step *StepSpec) (halted bool) {
	st.globalPos++
	startedAt := time.Now()
	rec := StepRecord{
		StepID:    step.ID,
		StepName:  step.Name,
		Order:     st.globalPos,
		PhaseRank: step.Phase(),
		StartedAt: startedAt,
	}

	if err := e.sink.Progress(ctx, st.jobID, st.percent(), step.Name); err != nil {
		return e.failStep(ctx, st, rec, nil, fmt.Sprintf("progress update: %v", err))
	}

	// Conditional skip: the step's input carries forward unchanged.
	if missing := missingRequiredVars(step, st.vars); missing != "" {
		rec.Status = StepSkipped
		rec.InputText = st.current
		rec.CompletedAt = time.Now()
		rec.ErrorMessage = fmt.Sprintf("required context variable %q not set", missing)
		if _, err := e.sink.RecordStep(ctx, st.jobID, rec); err != nil {
			e.logger.Error("failed to record skipped step",
				slog.String("job_id", st.jobID), slog.String("step", step.Name), slog.Any("error", err))
		}
		st.done++
		st.result.StepsExecuted = append(st.result.StepsExecuted, rec)
		return false
	}

	input := st.current
	if step.UseOriginalText {
		input = st.vars[VarOriginalText]
	}
	rec.InputText = input

	model, ok := st.snap.Models[step.ModelName]
	if !ok || !model.Active {
		return e.failStep(ctx, st, rec, nil, fmt.Sprintf("model %q is not available", step.ModelName))
	}
	if model.MaxTokens > 0 && step.MaxTokens > model.MaxTokens {
		return e.failStep(ctx, st, rec, nil,
			fmt.Sprintf("step max_tokens %d exceeds model limit %d", step.MaxTokens, model.MaxTokens))
	}

	// Injection detection is observational only.
	if report := guard.DetectInjection(input); report.Severity != guard.SeverityNone {
		guard.LogSecurityEvent(e.logger, st.processingID, step.Name, report)
	}

	sanitized := e.sanitizedVars(st, input)
	userPrompt, err := Substitute(step.PromptTemplate, sanitized)
	if err != nil {
		return e.failStep(ctx, st, rec, nil, fmt.Sprintf("prompt build: %v", err))
	}

	expected := expectedTokens(step)
	if step.IsBranchingStep && len(expected) > 0 {
		expected = append(expected, st.snap.ClassKeys()...)
	}
	maxAttempts := 1
	if step.RetryOnFailure && step.MaxRetries > 0 {
		maxAttempts += step.MaxRetries
	}

	var (
		resp          *llm.Response
		lastErr       string
		lastTransient bool
		inters        []Interaction
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			st.result.Error = fmt.Sprintf("execution cancelled: %v", err)
			e.flushInteractions(ctx, st, "", inters)
			return true
		}
		rec.Attempts = attempt

		r, inter, callErr := e.invoke(ctx, st, &rec, step, model, userPrompt)
		inters = append(inters, inter)
		if callErr != nil {
			lastErr = callErr.Error()
			lastTransient = llm.IsRetryable(callErr)
			if !lastTransient {
				break
			}
			continue
		}

		check := guard.ValidateStepOutput(r.Text, input, expected, step.SystemPrompt)
		lastTransient = false
		if check.Warning != "" {
			e.logger.Warn("step output anomaly",
				slog.String("processing_id", st.processingID),
				slog.String("step", step.Name),
				slog.String("warning", check.Warning))
		}
		if !check.Valid {
			lastErr = check.Message
			continue
		}
		resp = r
		break
	}

	if resp == nil {
		st.result.Transient = lastTransient
		return e.failStep(ctx, st, rec, inters,
			fmt.Sprintf("step failed after %d attempt(s): %s", rec.Attempts, lastErr))
	}

	rec.OutputText = resp.Text
	rec.ModelUsed = resp.Model
	rec.CompletedAt = time.Now()
	rec.DurationMS = int(rec.CompletedAt.Sub(startedAt).Milliseconds())

	// Stop conditions terminate the whole run gracefully.
	if matched, canonical := matchesStopValue(resp.Text, step.StopOnValues); matched {
		rec.Status = StepTerminated
		execID, err := e.sink.RecordStep(ctx, st.jobID, rec)
		if err != nil {
			return e.failStep(ctx, st, rec, inters, fmt.Sprintf("persist terminated step: %v", err))
		}
		e.flushInteractions(ctx, st, execID, inters)
		st.done++
		st.result.StepsExecuted = append(st.result.StepsExecuted, rec)
		st.result.Success = true
		st.result.Terminated = true
		st.result.TerminationStep = step.Name
		st.result.TerminationReason = step.TerminationReason
		st.result.TerminationMessage = step.TerminationMessage
		st.result.MatchedValue = canonical
		st.result.FinalOutput = resp.Text
		return true
	}

	if step.IsBranchingStep {
		token := strings.ToUpper(guard.FirstToken(resp.Text))
		if _, known := st.snap.ClassByKey(token); known {
			st.vars[VarDocumentType] = token
		} else {
			e.logger.Warn("branching step returned unknown class, phase 2 will be empty",
				slog.String("processing_id", st.processingID),
				slog.String("step", step.Name),
				slog.String("token", token))
		}
	}

	rec.Status = StepSucceeded
	execID, err := e.sink.RecordStep(ctx, st.jobID, rec)
	if err != nil {
		return e.failStep(ctx, st, rec, inters, fmt.Sprintf("persist step: %v", err))
	}
	e.flushInteractions(ctx, st, execID, inters)
	st.done++
	st.result.StepsExecuted = append(st.result.StepsExecuted, rec)
	st.current = resp.Text
	return false
}

// invoke performs one LLM attempt. Token and cost totals on the record
// accumulate across attempts; the interaction row is returned for the
// caller to flush once the step execution id exists.
func (e *Executor) invoke(ctx context.Context, st *runState, rec *StepRecord, step *StepSpec, model ModelSpec, userPrompt string) (*llm.Response, Interaction, error) {
	req := llm.Request{
		Model:       step.ModelName,
		Temperature: step.Temperature,
		MaxTokens:   step.MaxTokens,
		TimeoutSecs: model.TimeoutSecs,
	}
	if step.SystemPrompt != "" {
		req.Messages = append(req.Messages, llm.Message{Role: llm.RoleSystem, Content: step.SystemPrompt})
	}
	req.Messages = append(req.Messages, llm.Message{Role: llm.RoleUser, Content: userPrompt})

	resp, err := e.llm.Complete(ctx, req)

	inter := Interaction{
		StepName:  step.Name,
		ModelName: step.ModelName,
	}
	if err != nil {
		inter.Success = false
		inter.ErrorCode = string(llm.KindOf(err))
	} else {
		cost := callCost(model, resp.InputTokens, resp.OutputTokens)
		inter.Success = true
		inter.InputTokens = resp.InputTokens
		inter.OutputTokens = resp.OutputTokens
		inter.Cost = cost
		inter.LatencyMS = resp.LatencyMS
		inter.Estimated = resp.Estimated

		rec.InputTokens += resp.InputTokens
		rec.OutputTokens += resp.OutputTokens
		rec.Cost += cost
		st.result.TotalTokens += resp.InputTokens + resp.OutputTokens
		st.result.TotalCost += cost
	}
	return resp, inter, err
}

func (e *Executor) flushInteractions(ctx context.Context, st *runState, stepExecutionID string, inters []Interaction) {
	for _, inter := range inters {
		if err := e.sink.RecordInteraction(ctx, st.jobID, stepExecutionID, inter); err != nil {
			e.logger.Error("failed to record interaction",
				slog.String("job_id", st.jobID), slog.String("step", inter.StepName), slog.Any("error", err))
		}
	}
}

// failStep persists the failed step, flushes any interactions from its
// attempts, and marks the whole run failed.
func (e *Executor) failStep(ctx context.Context, st *runState, rec StepRecord, inters []Interaction, msg string) bool {
	rec.Status = StepFailed
	rec.ErrorMessage = msg
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
		rec.DurationMS = int(rec.CompletedAt.Sub(rec.StartedAt).Milliseconds())
	}
	execID, err := e.sink.RecordStep(ctx, st.jobID, rec)
	if err != nil && !errors.Is(err, context.Canceled) {
		e.logger.Error("failed to record failed step",
			slog.String("job_id", st.jobID), slog.String("step", rec.StepName), slog.Any("error", err))
	}
	e.flushInteractions(ctx, st, execID, inters)
	st.result.StepsExecuted = append(st.result.StepsExecuted, rec)
	st.result.FailedStep = rec.StepName
	st.result.Error = msg
	e.logger.Error("pipeline halted",
		slog.String("processing_id", st.processingID),
		slog.String("step", rec.StepName),
		slog.String("error", msg))
	return true
}

// sanitizedVars runs every substitutable value through the prompt guard.
// input_text reflects this step's chosen input source.
func (e *Executor) sanitizedVars(st *runState, input string) map[string]string {
	out := make(map[string]string, len(st.vars)+1)
	for k, v := range st.vars {
		out[k], _ = guard.SanitizeForPrompt(v)
	}
	out[VarInputText], _ = guard.SanitizeForPrompt(input)
	return out
}

func (st *runState) percent() int {
	if st.planned == 0 {
		return 0
	}
	p := st.done * 100 / st.planned
	if p > 100 {
		p = 100
	}
	return p
}

func missingRequiredVars(step *StepSpec, vars map[string]string) string {
	for _, name := range step.RequiredContextVariables {
		if strings.TrimSpace(vars[name]) == "" {
			return name
		}
	}
	return ""
}

// expectedTokens is the union the validator checks classification outputs
// against. Steps without stop values are free-form.
func expectedTokens(step *StepSpec) []string {
	if len(step.StopOnValues) == 0 {
		return nil
	}
	union := make([]string, 0, len(step.StopOnValues)+len(step.AllowedContinueValues))
	union = append(union, step.StopOnValues...)
	union = append(union, step.AllowedContinueValues...)
	return union
}

func matchesStopValue(output string, stopValues []string) (bool, string) {
	if len(stopValues) == 0 {
		return false, ""
	}
	canonical, ok := guard.FirstTokenMatches(output, stopValues)
	return ok, canonical
}

func callCost(model ModelSpec, inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*model.InputPricePerM/1_000_000 +
		float64(outputTokens)*model.OutputPricePerM/1_000_000
}
