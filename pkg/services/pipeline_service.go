package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/documentclass"
	"github.com/klartext-health/befund/ent/modelconfig"
	"github.com/klartext-health/befund/ent/pipelinestep"
	"github.com/klartext-health/befund/pkg/pipeline"
)

// snapshotTTL bounds how stale a cached snapshot may get when the
// config-changed notification is lost.
const snapshotTTL = 5 * time.Minute

// ConfigNotifier broadcasts configuration changes to other replicas so
// their snapshot caches refresh before the TTL.
type ConfigNotifier interface {
	PublishConfigChanged(ctx context.Context, scope string) error
}

// PipelineService builds and caches pipeline snapshots and manages the
// step graph. Edits bump the step version; concurrent editors lose.
type PipelineService struct {
	client   *ent.Client
	notifier ConfigNotifier

	mu       sync.Mutex
	cached   *pipeline.Snapshot
	cachedAt time.Time
}

// NewPipelineService creates a new PipelineService.
func NewPipelineService(client *ent.Client) *PipelineService {
	return &PipelineService{client: client}
}

// SetNotifier wires the cross-replica change broadcast. Optional; without
// it other replicas refresh on the snapshot TTL.
func (s *PipelineService) SetNotifier(n ConfigNotifier) {
	s.notifier = n
}

// Snapshot returns the current step graph, from cache when fresh. The
// returned value is shared; callers must not mutate it.
func (s *PipelineService) Snapshot(ctx context.Context) (*pipeline.Snapshot, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < snapshotTTL {
		snap := s.cached
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline configuration is invalid: %w", err)
	}

	s.mu.Lock()
	s.cached = snap
	s.cachedAt = time.Now()
	s.mu.Unlock()
	return snap, nil
}

// Invalidate drops the cached snapshot. Wired to the config-changed
// notification so edits propagate across replicas within one rebuild.
func (s *PipelineService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *PipelineService) buildSnapshot(ctx context.Context) (*pipeline.Snapshot, error) {
	steps, err := s.client.PipelineStep.Query().
		Order(ent.Asc(pipelinestep.FieldSortOrder), ent.Asc(pipelinestep.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline steps: %w", err)
	}
	classes, err := s.client.DocumentClass.Query().
		Order(ent.Asc(documentclass.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document classes: %w", err)
	}
	models, err := s.client.ModelConfig.Query().
		Where(modelconfig.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load model registry: %w", err)
	}

	snap := &pipeline.Snapshot{Models: make(map[string]pipeline.ModelSpec, len(models))}
	for _, st := range steps {
		snap.Steps = append(snap.Steps, stepSpec(st))
	}
	for _, c := range classes {
		snap.Classes = append(snap.Classes, pipeline.ClassSpec{
			ID:          c.ID,
			ClassKey:    c.ClassKey,
			DisplayName: c.DisplayName,
			Enabled:     c.Enabled,
		})
	}
	for _, m := range models {
		spec := pipeline.ModelSpec{
			Name:            m.Name,
			Provider:        m.Provider,
			InputPricePerM:  m.InputPricePerM,
			OutputPricePerM: m.OutputPricePerM,
			MaxTokens:       m.MaxTokens,
			Active:          m.Active,
		}
		if m.RequestTimeoutSecs != nil {
			spec.TimeoutSecs = *m.RequestTimeoutSecs
		}
		snap.Models[m.Name] = spec
	}
	return snap, nil
}

func stepSpec(st *ent.PipelineStep) pipeline.StepSpec {
	spec := pipeline.StepSpec{
		ID:                       st.ID,
		Name:                     st.Name,
		Description:              st.Description,
		Order:                    st.SortOrder,
		PostBranching:            st.PostBranching,
		DocumentClassID:          st.DocumentClassID,
		Enabled:                  st.Enabled,
		IsBranchingStep:          st.IsBranchingStep,
		ModelName:                st.ModelName,
		Temperature:              st.Temperature,
		MaxTokens:                st.MaxTokens,
		PromptTemplate:           st.PromptTemplate,
		RequiredContextVariables: st.RequiredContextVariables,
		StopOnValues:             st.StopOnValues,
		AllowedContinueValues:    st.AllowedContinueValues,
		RetryOnFailure:           st.RetryOnFailure,
		MaxRetries:               st.MaxRetries,
		UseOriginalText:          st.UseOriginalText,
		OutputFormat:             string(st.OutputFormat),
		Version:                  st.Version,
	}
	if st.SystemPrompt != nil {
		spec.SystemPrompt = *st.SystemPrompt
	}
	if st.TerminationReason != nil {
		spec.TerminationReason = *st.TerminationReason
	}
	if st.TerminationMessage != nil {
		spec.TerminationMessage = *st.TerminationMessage
	}
	return spec
}

// StepUpdate carries the editable fields of a pipeline step. Nil pointers
// leave the field untouched.
type StepUpdate struct {
	Description    *string
	SortOrder      *int
	Enabled        *bool
	ModelName      *string
	Temperature    *float64
	MaxTokens      *int
	PromptTemplate *string
	SystemPrompt   *string
	RetryOnFailure *bool
	MaxRetries     *int
}

// UpdateStep applies an edit against the version the editor read. A stale
// version loses with ErrConcurrentModification.
func (s *PipelineService) UpdateStep(httpCtx context.Context, stepID, version int, upd StepUpdate) (*ent.PipelineStep, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	builder := s.client.PipelineStep.Update().
		Where(pipelinestep.ID(stepID), pipelinestep.Version(version)).
		AddVersion(1)

	if upd.Description != nil {
		builder.SetDescription(*upd.Description)
	}
	if upd.SortOrder != nil {
		builder.SetSortOrder(*upd.SortOrder)
	}
	if upd.Enabled != nil {
		builder.SetEnabled(*upd.Enabled)
	}
	if upd.ModelName != nil {
		builder.SetModelName(*upd.ModelName)
	}
	if upd.Temperature != nil {
		builder.SetTemperature(*upd.Temperature)
	}
	if upd.MaxTokens != nil {
		builder.SetMaxTokens(*upd.MaxTokens)
	}
	if upd.PromptTemplate != nil {
		builder.SetPromptTemplate(*upd.PromptTemplate)
	}
	if upd.SystemPrompt != nil {
		builder.SetSystemPrompt(*upd.SystemPrompt)
	}
	if upd.RetryOnFailure != nil {
		builder.SetRetryOnFailure(*upd.RetryOnFailure)
	}
	if upd.MaxRetries != nil {
		builder.SetMaxRetries(*upd.MaxRetries)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update step: %w", err)
	}
	if n == 0 {
		return nil, ErrConcurrentModification
	}
	s.Invalidate()
	if s.notifier != nil {
		if err := s.notifier.PublishConfigChanged(ctx, "pipeline"); err != nil {
			slog.Warn("Failed to broadcast config change", "error", err)
		}
	}

	return s.client.PipelineStep.Get(ctx, stepID)
}

// ListSteps returns the full step graph for the admin surface.
func (s *PipelineService) ListSteps(ctx context.Context) ([]*ent.PipelineStep, error) {
	steps, err := s.client.PipelineStep.Query().
		Order(ent.Asc(pipelinestep.FieldSortOrder), ent.Asc(pipelinestep.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}
