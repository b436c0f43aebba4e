package queue

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zeebo/blake3"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/metrics"
	"github.com/klartext-health/befund/pkg/ocr"
	"github.com/klartext-health/befund/pkg/pipeline"
	"github.com/klartext-health/befund/pkg/privacy"
	"github.com/klartext-health/befund/pkg/services"
)

// defaultLanguage is the PII filter language when the job carries none.
const defaultLanguage = "de"

// Processor runs one job end to end: payload decryption, text extraction,
// PII removal, and the step pipeline. It implements JobExecutor.
type Processor struct {
	jobs           *services.JobService
	extractor      ocr.Extractor
	privacy        privacy.Filter
	pipeline       *pipeline.Executor
	protectedTerms []string
	logger         *slog.Logger
}

var _ JobExecutor = (*Processor)(nil)

// NewProcessor wires the processing stages. protectedTerms are medical
// terms the PII filter must never rewrite.
func NewProcessor(jobs *services.JobService, extractor ocr.Extractor, filter privacy.Filter, exec *pipeline.Executor, protectedTerms []string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		jobs:           jobs,
		extractor:      extractor,
		privacy:        filter,
		pipeline:       exec,
		protectedTerms: protectedTerms,
		logger:         logger,
	}
}

// Execute processes a reserved job. Intermediate state (step executions,
// interaction logs, progress) is written as the run advances; only the
// terminal status is left to the worker.
func (p *Processor) Execute(ctx context.Context, jb *ent.Job) *ExecutionResult {
	log := p.logger.With("job_id", jb.ID, "processing_id", jb.ProcessingID)

	cleaned, res := p.prepareText(ctx, jb, log)
	if res != nil {
		return res
	}

	snap, err := p.jobs.Snapshot(jb)
	if err != nil {
		return failed(fmt.Errorf("pipeline snapshot: %w", err), false)
	}

	vars := map[string]string{}
	if jb.TargetLanguage != nil && *jb.TargetLanguage != "" {
		vars[pipeline.VarTargetLang] = *jb.TargetLanguage
	}
	if jb.DocumentClass != nil && *jb.DocumentClass != "" {
		vars[pipeline.VarDocumentType] = *jb.DocumentClass
	}

	result := p.pipeline.Execute(ctx, jb.ID, jb.ProcessingID, snap, cleaned, vars)
	p.observe(result)

	if ctx.Err() != nil {
		// Let the worker read the context: timeout vs cancellation.
		return &ExecutionResult{}
	}

	switch {
	case result.Terminated:
		return &ExecutionResult{
			Status:     job.StatusTerminated,
			ResultData: terminationData(result),
		}
	case result.Success:
		simplified, translated := splitOutputs(snap, result)
		return &ExecutionResult{
			Status:         job.StatusCompleted,
			SimplifiedText: simplified,
			TranslatedText: translated,
			ResultData:     completionData(result),
		}
	default:
		return failed(errors.New(result.Error), result.Transient)
	}
}

// prepareText produces the PII-cleaned pipeline input. The second return
// is non-nil when preparation already decided the run's outcome. Requeued
// jobs reuse the stored original text; it is immutable once set.
func (p *Processor) prepareText(ctx context.Context, jb *ent.Job, log *slog.Logger) (string, *ExecutionResult) {
	if len(jb.OriginalText) > 0 {
		texts, err := p.jobs.OpenTexts(jb)
		if err != nil {
			return "", failed(fmt.Errorf("open stored text: %w", err), false)
		}
		log.Info("Reusing stored original text")
		return texts.OriginalText, nil
	}

	content, err := p.jobs.OpenContent(jb)
	if err != nil {
		return "", failed(fmt.Errorf("open payload: %w", err), false)
	}
	if jb.FileHash != "" {
		sum := blake3.Sum256(content)
		if hex.EncodeToString(sum[:]) != jb.FileHash {
			return "", failed(errors.New("stored payload does not match its recorded hash"), false)
		}
	}

	text, err := p.extractor.Extract(ctx, ocr.Document{
		Filename: jb.Filename,
		FileType: jb.FileType,
		Content:  content,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", &ExecutionResult{}
		}
		// Engine outages are worth a requeue; bad inputs are not.
		transient := !errors.Is(err, ocr.ErrEmptyDocument) && !errors.Is(err, ocr.ErrUnsupportedType)
		return "", failed(fmt.Errorf("text extraction: %w", err), transient)
	}

	language := defaultLanguage
	cleaned, err := p.privacy.RemovePII(ctx, text, language, p.protectedTerms)
	if err != nil {
		if ctx.Err() != nil {
			return "", &ExecutionResult{}
		}
		return "", failed(fmt.Errorf("pii removal: %w", err), true)
	}
	if cleaned.Degraded {
		log.Warn("PII removal degraded to local filter")
	}

	if err := p.jobs.SetOriginalText(ctx, jb.ID, cleaned.CleanedText, cleaned.Degraded); err != nil {
		return "", failed(fmt.Errorf("store original text: %w", err), false)
	}
	return cleaned.CleanedText, nil
}

// observe feeds the run's step records into the Prometheus collectors.
func (p *Processor) observe(result *pipeline.Result) {
	for _, rec := range result.StepsExecuted {
		metrics.StepsTotal.WithLabelValues(rec.Status).Inc()
		if rec.ModelUsed != "" {
			metrics.LLMTokens.WithLabelValues("input", rec.ModelUsed).Add(float64(rec.InputTokens))
			metrics.LLMTokens.WithLabelValues("output", rec.ModelUsed).Add(float64(rec.OutputTokens))
		}
	}
	metrics.JobCost.Add(result.TotalCost)
}

// splitOutputs decides which step output is the simplified German text and
// which is the translation. The translation step is recognized by its
// target_language requirement; when the run has no such step the final
// output is the simplified text.
func splitOutputs(snap *pipeline.Snapshot, result *pipeline.Result) (simplified, translated string) {
	byID := make(map[int]pipeline.StepSpec, len(snap.Steps))
	for _, s := range snap.Steps {
		byID[s.ID] = s
	}

	simplified = result.FinalOutput
	for i := len(result.StepsExecuted) - 1; i >= 0; i-- {
		rec := result.StepsExecuted[i]
		if rec.Status != pipeline.StepSucceeded {
			continue
		}
		if !requiresTargetLanguage(byID[rec.StepID]) {
			break
		}
		// Last success was a translation: its output is the translated
		// text and the simplified text is the preceding success.
		translated = rec.OutputText
		for j := i - 1; j >= 0; j-- {
			if result.StepsExecuted[j].Status == pipeline.StepSucceeded {
				simplified = result.StepsExecuted[j].OutputText
				break
			}
		}
		break
	}
	return simplified, translated
}

func requiresTargetLanguage(spec pipeline.StepSpec) bool {
	for _, v := range spec.RequiredContextVariables {
		if v == pipeline.VarTargetLang {
			return true
		}
	}
	return false
}

func terminationData(result *pipeline.Result) map[string]interface{} {
	return map[string]interface{}{
		"terminated":              true,
		"termination_step":        result.TerminationStep,
		"termination_reason":      result.TerminationReason,
		"termination_message":     result.TerminationMessage,
		"matched_value":           result.MatchedValue,
		"processing_time_seconds": result.TotalTimeSeconds,
		"steps_executed":          len(result.StepsExecuted),
		"total_tokens":            result.TotalTokens,
		"total_cost":              result.TotalCost,
	}
}

func completionData(result *pipeline.Result) map[string]interface{} {
	steps := make([]map[string]interface{}, 0, len(result.StepsExecuted))
	for _, rec := range result.StepsExecuted {
		steps = append(steps, map[string]interface{}{
			"step_name":   rec.StepName,
			"status":      rec.Status,
			"model":       rec.ModelUsed,
			"duration_ms": rec.DurationMS,
			"attempts":    rec.Attempts,
		})
	}
	data := map[string]interface{}{
		"processing_steps":        steps,
		"processing_time_seconds": result.TotalTimeSeconds,
		"total_tokens":            result.TotalTokens,
		"total_cost":              result.TotalCost,
	}
	if result.DocumentType != "" {
		data["document_type"] = result.DocumentType
	}
	return data
}

func failed(err error, transient bool) *ExecutionResult {
	return &ExecutionResult{
		Status:    job.StatusFailed,
		Err:       err,
		Transient: transient,
	}
}
