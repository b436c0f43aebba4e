package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/stepexecution"
	"github.com/klartext-health/befund/pkg/crypto"
	"github.com/klartext-health/befund/pkg/pipeline"
)

// ProgressNotifier broadcasts progress transitions to observers on other
// replicas. Implementations are non-blocking.
type ProgressNotifier interface {
	PublishProgress(ctx context.Context, jobID string, percent int, currentStep string)
}

// ExecutionRecorder is the persistence sink the pipeline executor writes
// through: step execution rows with sealed texts, text-free interaction
// rows, and job progress.
type ExecutionRecorder struct {
	client   *ent.Client
	box      *crypto.Box
	jobs     *JobService
	notifier ProgressNotifier
}

// NewExecutionRecorder creates a new ExecutionRecorder.
func NewExecutionRecorder(client *ent.Client, box *crypto.Box, jobs *JobService) *ExecutionRecorder {
	return &ExecutionRecorder{client: client, box: box, jobs: jobs}
}

// SetNotifier wires the optional progress broadcast.
func (r *ExecutionRecorder) SetNotifier(n ProgressNotifier) {
	r.notifier = n
}

var _ pipeline.Sink = (*ExecutionRecorder)(nil)

// RecordStep persists one finished or skipped step.
func (r *ExecutionRecorder) RecordStep(ctx context.Context, jobID string, rec pipeline.StepRecord) (string, error) {
	status, err := stepStatus(rec.Status)
	if err != nil {
		return "", err
	}

	builder := r.client.StepExecution.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetStepName(rec.StepName).
		SetStepOrder(rec.Order).
		SetPhaseRank(rec.PhaseRank).
		SetStatus(status).
		SetAttempts(rec.Attempts)

	if !rec.StartedAt.IsZero() {
		builder.SetStartedAt(rec.StartedAt)
	}
	if !rec.CompletedAt.IsZero() {
		builder.SetCompletedAt(rec.CompletedAt)
	}
	if rec.DurationMS > 0 {
		builder.SetDurationMs(rec.DurationMS)
	}
	if rec.InputText != "" {
		sealed, err := r.box.SealString(rec.InputText)
		if err != nil {
			return "", fmt.Errorf("failed to seal step input: %w", err)
		}
		builder.SetInputText(sealed)
	}
	if rec.OutputText != "" {
		sealed, err := r.box.SealString(rec.OutputText)
		if err != nil {
			return "", fmt.Errorf("failed to seal step output: %w", err)
		}
		builder.SetOutputText(sealed)
	}
	if rec.ErrorMessage != "" {
		builder.SetErrorMessage(rec.ErrorMessage)
	}
	if rec.ModelUsed != "" {
		builder.SetModelUsed(rec.ModelUsed)
	}
	if rec.InputTokens > 0 {
		builder.SetInputTokens(rec.InputTokens)
	}
	if rec.OutputTokens > 0 {
		builder.SetOutputTokens(rec.OutputTokens)
	}
	if rec.Cost > 0 {
		builder.SetCost(rec.Cost)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to record step execution: %w", err)
	}
	return created.ID, nil
}

// RecordInteraction persists one LLM call's accounting row and bumps the
// job totals in the same pass. stepExecutionID may be empty when the call
// never reached a persisted step.
func (r *ExecutionRecorder) RecordInteraction(ctx context.Context, jobID, stepExecutionID string, rec pipeline.Interaction) error {
	builder := r.client.AIInteractionLog.Create().
		SetJobID(jobID).
		SetModelName(rec.ModelName).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetTotalTokens(rec.InputTokens + rec.OutputTokens).
		SetCost(rec.Cost).
		SetLatencyMs(rec.LatencyMS).
		SetSuccess(rec.Success).
		SetEstimatedTokens(rec.Estimated)
	if stepExecutionID != "" {
		builder.SetStepExecutionID(stepExecutionID)
	}
	if rec.ErrorCode != "" {
		builder.SetErrorCode(rec.ErrorCode)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to record interaction: %w", err)
	}

	if tokens := rec.InputTokens + rec.OutputTokens; tokens > 0 || rec.Cost > 0 {
		if err := r.jobs.AddUsage(ctx, jobID, tokens, rec.Cost); err != nil {
			return err
		}
	}
	return nil
}

// Progress forwards the executor's progress to the job row and broadcasts
// it when a notifier is wired.
func (r *ExecutionRecorder) Progress(ctx context.Context, jobID string, percent int, currentStep string) error {
	if err := r.jobs.UpdateProgress(ctx, jobID, percent, currentStep); err != nil {
		return err
	}
	if r.notifier != nil {
		r.notifier.PublishProgress(ctx, jobID, percent, currentStep)
	}
	return nil
}

// StepsForJob returns a job's step executions in execution order.
func (r *ExecutionRecorder) StepsForJob(ctx context.Context, jobID string) ([]*ent.StepExecution, error) {
	steps, err := r.client.StepExecution.Query().
		Where(stepexecution.JobID(jobID)).
		Order(ent.Asc(stepexecution.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step executions: %w", err)
	}
	return steps, nil
}

func stepStatus(s string) (stepexecution.Status, error) {
	switch s {
	case pipeline.StepSucceeded:
		return stepexecution.StatusSucceeded, nil
	case pipeline.StepFailed:
		return stepexecution.StatusFailed, nil
	case pipeline.StepSkipped:
		return stepexecution.StatusSkipped, nil
	case pipeline.StepTerminated:
		return stepexecution.StatusTerminated, nil
	default:
		return "", fmt.Errorf("unknown step status %q", s)
	}
}
