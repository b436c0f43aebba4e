// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/documentclass"
	"github.com/klartext-health/befund/ent/featureflag"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/modelconfig"
	"github.com/klartext-health/befund/ent/ocrconfiguration"
	"github.com/klartext-health/befund/ent/pipelinestep"
	"github.com/klartext-health/befund/ent/predicate"
	"github.com/klartext-health/befund/ent/stepexecution"
	"github.com/klartext-health/befund/ent/systemsetting"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAIInteractionLog = "AIInteractionLog"
	TypeDocumentClass    = "DocumentClass"
	TypeFeatureFlag      = "FeatureFlag"
	TypeJob              = "Job"
	TypeModelConfig      = "ModelConfig"
	TypeOCRConfiguration = "OCRConfiguration"
	TypePipelineStep     = "PipelineStep"
	TypeStepExecution    = "StepExecution"
	TypeSystemSetting    = "SystemSetting"
)

// AIInteractionLogMutation represents an operation that mutates the AIInteractionLog nodes in the graph.
type AIInteractionLogMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	model_name            *string
	input_tokens          *int
	addinput_tokens       *int
	output_tokens         *int
	addoutput_tokens      *int
	total_tokens          *int
	addtotal_tokens       *int
	cost                  *float64
	addcost               *float64
	latency_ms            *int64
	addlatency_ms         *int64
	success               *bool
	error_code            *string
	estimated_tokens      *bool
	created_at            *time.Time
	clearedFields         map[string]struct{}
	job                   *string
	clearedjob            bool
	step_execution        *string
	clearedstep_execution bool
	done                  bool
	oldValue              func(context.Context) (*AIInteractionLog, error)
	predicates            []predicate.AIInteractionLog
}

var _ ent.Mutation = (*AIInteractionLogMutation)(nil)

// aiinteractionlogOption allows management of the mutation configuration using functional options.
type aiinteractionlogOption func(*AIInteractionLogMutation)

// newAIInteractionLogMutation creates new mutation for the AIInteractionLog entity.
func newAIInteractionLogMutation(c config, op Op, opts ...aiinteractionlogOption) *AIInteractionLogMutation {
	m := &AIInteractionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAIInteractionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAIInteractionLogID sets the ID field of the mutation.
func withAIInteractionLogID(id int) aiinteractionlogOption {
	return func(m *AIInteractionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AIInteractionLog
		)
		m.oldValue = func(ctx context.Context) (*AIInteractionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AIInteractionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAIInteractionLog sets the old AIInteractionLog of the mutation.
func withAIInteractionLog(node *AIInteractionLog) aiinteractionlogOption {
	return func(m *AIInteractionLogMutation) {
		m.oldValue = func(context.Context) (*AIInteractionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AIInteractionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AIInteractionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AIInteractionLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AIInteractionLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AIInteractionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *AIInteractionLogMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *AIInteractionLogMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *AIInteractionLogMutation) ResetJobID() {
	m.job = nil
}

// SetStepExecutionID sets the "step_execution_id" field.
func (m *AIInteractionLogMutation) SetStepExecutionID(s string) {
	m.step_execution = &s
}

// StepExecutionID returns the value of the "step_execution_id" field in the mutation.
func (m *AIInteractionLogMutation) StepExecutionID() (r string, exists bool) {
	v := m.step_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldStepExecutionID returns the old "step_execution_id" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldStepExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepExecutionID: %w", err)
	}
	return oldValue.StepExecutionID, nil
}

// ClearStepExecutionID clears the value of the "step_execution_id" field.
func (m *AIInteractionLogMutation) ClearStepExecutionID() {
	m.step_execution = nil
	m.clearedFields[aiinteractionlog.FieldStepExecutionID] = struct{}{}
}

// StepExecutionIDCleared returns if the "step_execution_id" field was cleared in this mutation.
func (m *AIInteractionLogMutation) StepExecutionIDCleared() bool {
	_, ok := m.clearedFields[aiinteractionlog.FieldStepExecutionID]
	return ok
}

// ResetStepExecutionID resets all changes to the "step_execution_id" field.
func (m *AIInteractionLogMutation) ResetStepExecutionID() {
	m.step_execution = nil
	delete(m.clearedFields, aiinteractionlog.FieldStepExecutionID)
}

// SetModelName sets the "model_name" field.
func (m *AIInteractionLogMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *AIInteractionLogMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *AIInteractionLogMutation) ResetModelName() {
	m.model_name = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *AIInteractionLogMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AIInteractionLogMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AIInteractionLogMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AIInteractionLogMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AIInteractionLogMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AIInteractionLogMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AIInteractionLogMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AIInteractionLogMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AIInteractionLogMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AIInteractionLogMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *AIInteractionLogMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *AIInteractionLogMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *AIInteractionLogMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *AIInteractionLogMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *AIInteractionLogMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCost sets the "cost" field.
func (m *AIInteractionLogMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *AIInteractionLogMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *AIInteractionLogMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *AIInteractionLogMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *AIInteractionLogMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AIInteractionLogMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AIInteractionLogMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *AIInteractionLogMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AIInteractionLogMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AIInteractionLogMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *AIInteractionLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AIInteractionLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *AIInteractionLogMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorCode sets the "error_code" field.
func (m *AIInteractionLogMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *AIInteractionLogMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *AIInteractionLogMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[aiinteractionlog.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *AIInteractionLogMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[aiinteractionlog.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *AIInteractionLogMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, aiinteractionlog.FieldErrorCode)
}

// SetEstimatedTokens sets the "estimated_tokens" field.
func (m *AIInteractionLogMutation) SetEstimatedTokens(b bool) {
	m.estimated_tokens = &b
}

// EstimatedTokens returns the value of the "estimated_tokens" field in the mutation.
func (m *AIInteractionLogMutation) EstimatedTokens() (r bool, exists bool) {
	v := m.estimated_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedTokens returns the old "estimated_tokens" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldEstimatedTokens(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedTokens: %w", err)
	}
	return oldValue.EstimatedTokens, nil
}

// ResetEstimatedTokens resets all changes to the "estimated_tokens" field.
func (m *AIInteractionLogMutation) ResetEstimatedTokens() {
	m.estimated_tokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AIInteractionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AIInteractionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AIInteractionLog entity.
// If the AIInteractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIInteractionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AIInteractionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *AIInteractionLogMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[aiinteractionlog.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *AIInteractionLogMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *AIInteractionLogMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *AIInteractionLogMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearStepExecution clears the "step_execution" edge to the StepExecution entity.
func (m *AIInteractionLogMutation) ClearStepExecution() {
	m.clearedstep_execution = true
	m.clearedFields[aiinteractionlog.FieldStepExecutionID] = struct{}{}
}

// StepExecutionCleared reports if the "step_execution" edge to the StepExecution entity was cleared.
func (m *AIInteractionLogMutation) StepExecutionCleared() bool {
	return m.StepExecutionIDCleared() || m.clearedstep_execution
}

// StepExecutionIDs returns the "step_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepExecutionID instead. It exists only for internal usage by the builders.
func (m *AIInteractionLogMutation) StepExecutionIDs() (ids []string) {
	if id := m.step_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStepExecution resets all changes to the "step_execution" edge.
func (m *AIInteractionLogMutation) ResetStepExecution() {
	m.step_execution = nil
	m.clearedstep_execution = false
}

// Where appends a list predicates to the AIInteractionLogMutation builder.
func (m *AIInteractionLogMutation) Where(ps ...predicate.AIInteractionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AIInteractionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AIInteractionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AIInteractionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AIInteractionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AIInteractionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AIInteractionLog).
func (m *AIInteractionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AIInteractionLogMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.job != nil {
		fields = append(fields, aiinteractionlog.FieldJobID)
	}
	if m.step_execution != nil {
		fields = append(fields, aiinteractionlog.FieldStepExecutionID)
	}
	if m.model_name != nil {
		fields = append(fields, aiinteractionlog.FieldModelName)
	}
	if m.input_tokens != nil {
		fields = append(fields, aiinteractionlog.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, aiinteractionlog.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, aiinteractionlog.FieldTotalTokens)
	}
	if m.cost != nil {
		fields = append(fields, aiinteractionlog.FieldCost)
	}
	if m.latency_ms != nil {
		fields = append(fields, aiinteractionlog.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, aiinteractionlog.FieldSuccess)
	}
	if m.error_code != nil {
		fields = append(fields, aiinteractionlog.FieldErrorCode)
	}
	if m.estimated_tokens != nil {
		fields = append(fields, aiinteractionlog.FieldEstimatedTokens)
	}
	if m.created_at != nil {
		fields = append(fields, aiinteractionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AIInteractionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case aiinteractionlog.FieldJobID:
		return m.JobID()
	case aiinteractionlog.FieldStepExecutionID:
		return m.StepExecutionID()
	case aiinteractionlog.FieldModelName:
		return m.ModelName()
	case aiinteractionlog.FieldInputTokens:
		return m.InputTokens()
	case aiinteractionlog.FieldOutputTokens:
		return m.OutputTokens()
	case aiinteractionlog.FieldTotalTokens:
		return m.TotalTokens()
	case aiinteractionlog.FieldCost:
		return m.Cost()
	case aiinteractionlog.FieldLatencyMs:
		return m.LatencyMs()
	case aiinteractionlog.FieldSuccess:
		return m.Success()
	case aiinteractionlog.FieldErrorCode:
		return m.ErrorCode()
	case aiinteractionlog.FieldEstimatedTokens:
		return m.EstimatedTokens()
	case aiinteractionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AIInteractionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case aiinteractionlog.FieldJobID:
		return m.OldJobID(ctx)
	case aiinteractionlog.FieldStepExecutionID:
		return m.OldStepExecutionID(ctx)
	case aiinteractionlog.FieldModelName:
		return m.OldModelName(ctx)
	case aiinteractionlog.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case aiinteractionlog.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case aiinteractionlog.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case aiinteractionlog.FieldCost:
		return m.OldCost(ctx)
	case aiinteractionlog.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case aiinteractionlog.FieldSuccess:
		return m.OldSuccess(ctx)
	case aiinteractionlog.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case aiinteractionlog.FieldEstimatedTokens:
		return m.OldEstimatedTokens(ctx)
	case aiinteractionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AIInteractionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIInteractionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case aiinteractionlog.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case aiinteractionlog.FieldStepExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepExecutionID(v)
		return nil
	case aiinteractionlog.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case aiinteractionlog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case aiinteractionlog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case aiinteractionlog.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case aiinteractionlog.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case aiinteractionlog.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case aiinteractionlog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case aiinteractionlog.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case aiinteractionlog.FieldEstimatedTokens:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedTokens(v)
		return nil
	case aiinteractionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AIInteractionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AIInteractionLogMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, aiinteractionlog.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, aiinteractionlog.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, aiinteractionlog.FieldTotalTokens)
	}
	if m.addcost != nil {
		fields = append(fields, aiinteractionlog.FieldCost)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, aiinteractionlog.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AIInteractionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case aiinteractionlog.FieldInputTokens:
		return m.AddedInputTokens()
	case aiinteractionlog.FieldOutputTokens:
		return m.AddedOutputTokens()
	case aiinteractionlog.FieldTotalTokens:
		return m.AddedTotalTokens()
	case aiinteractionlog.FieldCost:
		return m.AddedCost()
	case aiinteractionlog.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIInteractionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case aiinteractionlog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case aiinteractionlog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case aiinteractionlog.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case aiinteractionlog.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case aiinteractionlog.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown AIInteractionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AIInteractionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(aiinteractionlog.FieldStepExecutionID) {
		fields = append(fields, aiinteractionlog.FieldStepExecutionID)
	}
	if m.FieldCleared(aiinteractionlog.FieldErrorCode) {
		fields = append(fields, aiinteractionlog.FieldErrorCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AIInteractionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AIInteractionLogMutation) ClearField(name string) error {
	switch name {
	case aiinteractionlog.FieldStepExecutionID:
		m.ClearStepExecutionID()
		return nil
	case aiinteractionlog.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	}
	return fmt.Errorf("unknown AIInteractionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AIInteractionLogMutation) ResetField(name string) error {
	switch name {
	case aiinteractionlog.FieldJobID:
		m.ResetJobID()
		return nil
	case aiinteractionlog.FieldStepExecutionID:
		m.ResetStepExecutionID()
		return nil
	case aiinteractionlog.FieldModelName:
		m.ResetModelName()
		return nil
	case aiinteractionlog.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case aiinteractionlog.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case aiinteractionlog.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case aiinteractionlog.FieldCost:
		m.ResetCost()
		return nil
	case aiinteractionlog.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case aiinteractionlog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case aiinteractionlog.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case aiinteractionlog.FieldEstimatedTokens:
		m.ResetEstimatedTokens()
		return nil
	case aiinteractionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AIInteractionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AIInteractionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, aiinteractionlog.EdgeJob)
	}
	if m.step_execution != nil {
		edges = append(edges, aiinteractionlog.EdgeStepExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AIInteractionLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case aiinteractionlog.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case aiinteractionlog.EdgeStepExecution:
		if id := m.step_execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AIInteractionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AIInteractionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AIInteractionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, aiinteractionlog.EdgeJob)
	}
	if m.clearedstep_execution {
		edges = append(edges, aiinteractionlog.EdgeStepExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AIInteractionLogMutation) EdgeCleared(name string) bool {
	switch name {
	case aiinteractionlog.EdgeJob:
		return m.clearedjob
	case aiinteractionlog.EdgeStepExecution:
		return m.clearedstep_execution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AIInteractionLogMutation) ClearEdge(name string) error {
	switch name {
	case aiinteractionlog.EdgeJob:
		m.ClearJob()
		return nil
	case aiinteractionlog.EdgeStepExecution:
		m.ClearStepExecution()
		return nil
	}
	return fmt.Errorf("unknown AIInteractionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AIInteractionLogMutation) ResetEdge(name string) error {
	switch name {
	case aiinteractionlog.EdgeJob:
		m.ResetJob()
		return nil
	case aiinteractionlog.EdgeStepExecution:
		m.ResetStepExecution()
		return nil
	}
	return fmt.Errorf("unknown AIInteractionLog edge %s", name)
}

// DocumentClassMutation represents an operation that mutates the DocumentClass nodes in the graph.
type DocumentClassMutation struct {
	config
	op            Op
	typ           string
	id            *int
	class_key     *string
	display_name  *string
	enabled       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	steps         map[int]struct{}
	removedsteps  map[int]struct{}
	clearedsteps  bool
	done          bool
	oldValue      func(context.Context) (*DocumentClass, error)
	predicates    []predicate.DocumentClass
}

var _ ent.Mutation = (*DocumentClassMutation)(nil)

// documentclassOption allows management of the mutation configuration using functional options.
type documentclassOption func(*DocumentClassMutation)

// newDocumentClassMutation creates new mutation for the DocumentClass entity.
func newDocumentClassMutation(c config, op Op, opts ...documentclassOption) *DocumentClassMutation {
	m := &DocumentClassMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentClass,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentClassID sets the ID field of the mutation.
func withDocumentClassID(id int) documentclassOption {
	return func(m *DocumentClassMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentClass
		)
		m.oldValue = func(ctx context.Context) (*DocumentClass, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentClass.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentClass sets the old DocumentClass of the mutation.
func withDocumentClass(node *DocumentClass) documentclassOption {
	return func(m *DocumentClassMutation) {
		m.oldValue = func(context.Context) (*DocumentClass, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentClassMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentClassMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentClassMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentClassMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentClass.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClassKey sets the "class_key" field.
func (m *DocumentClassMutation) SetClassKey(s string) {
	m.class_key = &s
}

// ClassKey returns the value of the "class_key" field in the mutation.
func (m *DocumentClassMutation) ClassKey() (r string, exists bool) {
	v := m.class_key
	if v == nil {
		return
	}
	return *v, true
}

// OldClassKey returns the old "class_key" field's value of the DocumentClass entity.
// If the DocumentClass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentClassMutation) OldClassKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassKey: %w", err)
	}
	return oldValue.ClassKey, nil
}

// ResetClassKey resets all changes to the "class_key" field.
func (m *DocumentClassMutation) ResetClassKey() {
	m.class_key = nil
}

// SetDisplayName sets the "display_name" field.
func (m *DocumentClassMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *DocumentClassMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the DocumentClass entity.
// If the DocumentClass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentClassMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *DocumentClassMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetEnabled sets the "enabled" field.
func (m *DocumentClassMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *DocumentClassMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the DocumentClass entity.
// If the DocumentClass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentClassMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *DocumentClassMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentClassMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentClassMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentClass entity.
// If the DocumentClass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentClassMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentClassMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by ids.
func (m *DocumentClassMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the PipelineStep entity.
func (m *DocumentClassMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the PipelineStep entity was cleared.
func (m *DocumentClassMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the PipelineStep entity by IDs.
func (m *DocumentClassMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the PipelineStep entity.
func (m *DocumentClassMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *DocumentClassMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *DocumentClassMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the DocumentClassMutation builder.
func (m *DocumentClassMutation) Where(ps ...predicate.DocumentClass) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentClassMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentClassMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentClass, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentClassMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentClassMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentClass).
func (m *DocumentClassMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentClassMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.class_key != nil {
		fields = append(fields, documentclass.FieldClassKey)
	}
	if m.display_name != nil {
		fields = append(fields, documentclass.FieldDisplayName)
	}
	if m.enabled != nil {
		fields = append(fields, documentclass.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, documentclass.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentClassMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentclass.FieldClassKey:
		return m.ClassKey()
	case documentclass.FieldDisplayName:
		return m.DisplayName()
	case documentclass.FieldEnabled:
		return m.Enabled()
	case documentclass.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentClassMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentclass.FieldClassKey:
		return m.OldClassKey(ctx)
	case documentclass.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case documentclass.FieldEnabled:
		return m.OldEnabled(ctx)
	case documentclass.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentClass field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentClassMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentclass.FieldClassKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassKey(v)
		return nil
	case documentclass.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case documentclass.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case documentclass.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentClass field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentClassMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentClassMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentClassMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentClass numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentClassMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentClassMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentClassMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentClass nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentClassMutation) ResetField(name string) error {
	switch name {
	case documentclass.FieldClassKey:
		m.ResetClassKey()
		return nil
	case documentclass.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case documentclass.FieldEnabled:
		m.ResetEnabled()
		return nil
	case documentclass.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentClass field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentClassMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.steps != nil {
		edges = append(edges, documentclass.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentClassMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentclass.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentClassMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsteps != nil {
		edges = append(edges, documentclass.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentClassMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentclass.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentClassMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsteps {
		edges = append(edges, documentclass.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentClassMutation) EdgeCleared(name string) bool {
	switch name {
	case documentclass.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentClassMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentClass unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentClassMutation) ResetEdge(name string) error {
	switch name {
	case documentclass.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown DocumentClass edge %s", name)
}

// FeatureFlagMutation represents an operation that mutates the FeatureFlag nodes in the graph.
type FeatureFlagMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	enabled       *bool
	description   *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FeatureFlag, error)
	predicates    []predicate.FeatureFlag
}

var _ ent.Mutation = (*FeatureFlagMutation)(nil)

// featureflagOption allows management of the mutation configuration using functional options.
type featureflagOption func(*FeatureFlagMutation)

// newFeatureFlagMutation creates new mutation for the FeatureFlag entity.
func newFeatureFlagMutation(c config, op Op, opts ...featureflagOption) *FeatureFlagMutation {
	m := &FeatureFlagMutation{
		config:        c,
		op:            op,
		typ:           TypeFeatureFlag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeatureFlagID sets the ID field of the mutation.
func withFeatureFlagID(id int) featureflagOption {
	return func(m *FeatureFlagMutation) {
		var (
			err   error
			once  sync.Once
			value *FeatureFlag
		)
		m.oldValue = func(ctx context.Context) (*FeatureFlag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeatureFlag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeatureFlag sets the old FeatureFlag of the mutation.
func withFeatureFlag(node *FeatureFlag) featureflagOption {
	return func(m *FeatureFlagMutation) {
		m.oldValue = func(context.Context) (*FeatureFlag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeatureFlagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeatureFlagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeatureFlagMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeatureFlagMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeatureFlag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FeatureFlagMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FeatureFlagMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FeatureFlag entity.
// If the FeatureFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureFlagMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FeatureFlagMutation) ResetName() {
	m.name = nil
}

// SetEnabled sets the "enabled" field.
func (m *FeatureFlagMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *FeatureFlagMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the FeatureFlag entity.
// If the FeatureFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureFlagMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *FeatureFlagMutation) ResetEnabled() {
	m.enabled = nil
}

// SetDescription sets the "description" field.
func (m *FeatureFlagMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FeatureFlagMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the FeatureFlag entity.
// If the FeatureFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureFlagMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *FeatureFlagMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[featureflag.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *FeatureFlagMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[featureflag.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *FeatureFlagMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, featureflag.FieldDescription)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FeatureFlagMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FeatureFlagMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FeatureFlag entity.
// If the FeatureFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureFlagMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FeatureFlagMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FeatureFlagMutation builder.
func (m *FeatureFlagMutation) Where(ps ...predicate.FeatureFlag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeatureFlagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeatureFlagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeatureFlag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeatureFlagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeatureFlagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeatureFlag).
func (m *FeatureFlagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeatureFlagMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, featureflag.FieldName)
	}
	if m.enabled != nil {
		fields = append(fields, featureflag.FieldEnabled)
	}
	if m.description != nil {
		fields = append(fields, featureflag.FieldDescription)
	}
	if m.updated_at != nil {
		fields = append(fields, featureflag.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeatureFlagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case featureflag.FieldName:
		return m.Name()
	case featureflag.FieldEnabled:
		return m.Enabled()
	case featureflag.FieldDescription:
		return m.Description()
	case featureflag.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeatureFlagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case featureflag.FieldName:
		return m.OldName(ctx)
	case featureflag.FieldEnabled:
		return m.OldEnabled(ctx)
	case featureflag.FieldDescription:
		return m.OldDescription(ctx)
	case featureflag.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeatureFlag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureFlagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case featureflag.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case featureflag.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case featureflag.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case featureflag.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeatureFlag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeatureFlagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeatureFlagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureFlagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FeatureFlag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeatureFlagMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(featureflag.FieldDescription) {
		fields = append(fields, featureflag.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeatureFlagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeatureFlagMutation) ClearField(name string) error {
	switch name {
	case featureflag.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown FeatureFlag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeatureFlagMutation) ResetField(name string) error {
	switch name {
	case featureflag.FieldName:
		m.ResetName()
		return nil
	case featureflag.FieldEnabled:
		m.ResetEnabled()
		return nil
	case featureflag.FieldDescription:
		m.ResetDescription()
		return nil
	case featureflag.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeatureFlag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeatureFlagMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeatureFlagMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeatureFlagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeatureFlagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeatureFlagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeatureFlagMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeatureFlagMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeatureFlag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeatureFlagMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeatureFlag edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	processing_id          *string
	filename               *string
	file_type              *string
	file_size              *int64
	addfile_size           *int64
	file_content           *[]byte
	file_hash              *string
	pipeline_config        *map[string]interface{}
	ocr_config             *map[string]interface{}
	target_language        *string
	document_class         *string
	status                 *job.Status
	queue_lane             *string
	job_attempts           *int
	addjob_attempts        *int
	progress_percent       *int
	addprogress_percent    *int
	current_step           *string
	original_text          *[]byte
	simplified_text        *[]byte
	translated_text        *[]byte
	result_data            *map[string]interface{}
	error_message          *string
	total_tokens           *int
	addtotal_tokens        *int
	total_cost             *float64
	addtotal_cost          *float64
	pii_degraded           *bool
	tenant                 *string
	submitted_by           *string
	worker_id              *string
	last_heartbeat_at      *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	step_executions        map[string]struct{}
	removedstep_executions map[string]struct{}
	clearedstep_executions bool
	ai_interactions        map[int]struct{}
	removedai_interactions map[int]struct{}
	clearedai_interactions bool
	done                   bool
	oldValue               func(context.Context) (*Job, error)
	predicates             []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessingID sets the "processing_id" field.
func (m *JobMutation) SetProcessingID(s string) {
	m.processing_id = &s
}

// ProcessingID returns the value of the "processing_id" field in the mutation.
func (m *JobMutation) ProcessingID() (r string, exists bool) {
	v := m.processing_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingID returns the old "processing_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProcessingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingID: %w", err)
	}
	return oldValue.ProcessingID, nil
}

// ResetProcessingID resets all changes to the "processing_id" field.
func (m *JobMutation) ResetProcessingID() {
	m.processing_id = nil
}

// SetFilename sets the "filename" field.
func (m *JobMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *JobMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *JobMutation) ResetFilename() {
	m.filename = nil
}

// SetFileType sets the "file_type" field.
func (m *JobMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *JobMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *JobMutation) ResetFileType() {
	m.file_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *JobMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *JobMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *JobMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *JobMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *JobMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetFileContent sets the "file_content" field.
func (m *JobMutation) SetFileContent(b []byte) {
	m.file_content = &b
}

// FileContent returns the value of the "file_content" field in the mutation.
func (m *JobMutation) FileContent() (r []byte, exists bool) {
	v := m.file_content
	if v == nil {
		return
	}
	return *v, true
}

// OldFileContent returns the old "file_content" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFileContent(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileContent: %w", err)
	}
	return oldValue.FileContent, nil
}

// ClearFileContent clears the value of the "file_content" field.
func (m *JobMutation) ClearFileContent() {
	m.file_content = nil
	m.clearedFields[job.FieldFileContent] = struct{}{}
}

// FileContentCleared returns if the "file_content" field was cleared in this mutation.
func (m *JobMutation) FileContentCleared() bool {
	_, ok := m.clearedFields[job.FieldFileContent]
	return ok
}

// ResetFileContent resets all changes to the "file_content" field.
func (m *JobMutation) ResetFileContent() {
	m.file_content = nil
	delete(m.clearedFields, job.FieldFileContent)
}

// SetFileHash sets the "file_hash" field.
func (m *JobMutation) SetFileHash(s string) {
	m.file_hash = &s
}

// FileHash returns the value of the "file_hash" field in the mutation.
func (m *JobMutation) FileHash() (r string, exists bool) {
	v := m.file_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHash returns the old "file_hash" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFileHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHash: %w", err)
	}
	return oldValue.FileHash, nil
}

// ClearFileHash clears the value of the "file_hash" field.
func (m *JobMutation) ClearFileHash() {
	m.file_hash = nil
	m.clearedFields[job.FieldFileHash] = struct{}{}
}

// FileHashCleared returns if the "file_hash" field was cleared in this mutation.
func (m *JobMutation) FileHashCleared() bool {
	_, ok := m.clearedFields[job.FieldFileHash]
	return ok
}

// ResetFileHash resets all changes to the "file_hash" field.
func (m *JobMutation) ResetFileHash() {
	m.file_hash = nil
	delete(m.clearedFields, job.FieldFileHash)
}

// SetPipelineConfig sets the "pipeline_config" field.
func (m *JobMutation) SetPipelineConfig(value map[string]interface{}) {
	m.pipeline_config = &value
}

// PipelineConfig returns the value of the "pipeline_config" field in the mutation.
func (m *JobMutation) PipelineConfig() (r map[string]interface{}, exists bool) {
	v := m.pipeline_config
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineConfig returns the old "pipeline_config" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPipelineConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineConfig: %w", err)
	}
	return oldValue.PipelineConfig, nil
}

// ClearPipelineConfig clears the value of the "pipeline_config" field.
func (m *JobMutation) ClearPipelineConfig() {
	m.pipeline_config = nil
	m.clearedFields[job.FieldPipelineConfig] = struct{}{}
}

// PipelineConfigCleared returns if the "pipeline_config" field was cleared in this mutation.
func (m *JobMutation) PipelineConfigCleared() bool {
	_, ok := m.clearedFields[job.FieldPipelineConfig]
	return ok
}

// ResetPipelineConfig resets all changes to the "pipeline_config" field.
func (m *JobMutation) ResetPipelineConfig() {
	m.pipeline_config = nil
	delete(m.clearedFields, job.FieldPipelineConfig)
}

// SetOcrConfig sets the "ocr_config" field.
func (m *JobMutation) SetOcrConfig(value map[string]interface{}) {
	m.ocr_config = &value
}

// OcrConfig returns the value of the "ocr_config" field in the mutation.
func (m *JobMutation) OcrConfig() (r map[string]interface{}, exists bool) {
	v := m.ocr_config
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfig returns the old "ocr_config" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOcrConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfig: %w", err)
	}
	return oldValue.OcrConfig, nil
}

// ClearOcrConfig clears the value of the "ocr_config" field.
func (m *JobMutation) ClearOcrConfig() {
	m.ocr_config = nil
	m.clearedFields[job.FieldOcrConfig] = struct{}{}
}

// OcrConfigCleared returns if the "ocr_config" field was cleared in this mutation.
func (m *JobMutation) OcrConfigCleared() bool {
	_, ok := m.clearedFields[job.FieldOcrConfig]
	return ok
}

// ResetOcrConfig resets all changes to the "ocr_config" field.
func (m *JobMutation) ResetOcrConfig() {
	m.ocr_config = nil
	delete(m.clearedFields, job.FieldOcrConfig)
}

// SetTargetLanguage sets the "target_language" field.
func (m *JobMutation) SetTargetLanguage(s string) {
	m.target_language = &s
}

// TargetLanguage returns the value of the "target_language" field in the mutation.
func (m *JobMutation) TargetLanguage() (r string, exists bool) {
	v := m.target_language
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLanguage returns the old "target_language" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTargetLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLanguage: %w", err)
	}
	return oldValue.TargetLanguage, nil
}

// ClearTargetLanguage clears the value of the "target_language" field.
func (m *JobMutation) ClearTargetLanguage() {
	m.target_language = nil
	m.clearedFields[job.FieldTargetLanguage] = struct{}{}
}

// TargetLanguageCleared returns if the "target_language" field was cleared in this mutation.
func (m *JobMutation) TargetLanguageCleared() bool {
	_, ok := m.clearedFields[job.FieldTargetLanguage]
	return ok
}

// ResetTargetLanguage resets all changes to the "target_language" field.
func (m *JobMutation) ResetTargetLanguage() {
	m.target_language = nil
	delete(m.clearedFields, job.FieldTargetLanguage)
}

// SetDocumentClass sets the "document_class" field.
func (m *JobMutation) SetDocumentClass(s string) {
	m.document_class = &s
}

// DocumentClass returns the value of the "document_class" field in the mutation.
func (m *JobMutation) DocumentClass() (r string, exists bool) {
	v := m.document_class
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentClass returns the old "document_class" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDocumentClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentClass: %w", err)
	}
	return oldValue.DocumentClass, nil
}

// ClearDocumentClass clears the value of the "document_class" field.
func (m *JobMutation) ClearDocumentClass() {
	m.document_class = nil
	m.clearedFields[job.FieldDocumentClass] = struct{}{}
}

// DocumentClassCleared returns if the "document_class" field was cleared in this mutation.
func (m *JobMutation) DocumentClassCleared() bool {
	_, ok := m.clearedFields[job.FieldDocumentClass]
	return ok
}

// ResetDocumentClass resets all changes to the "document_class" field.
func (m *JobMutation) ResetDocumentClass() {
	m.document_class = nil
	delete(m.clearedFields, job.FieldDocumentClass)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetQueueLane sets the "queue_lane" field.
func (m *JobMutation) SetQueueLane(s string) {
	m.queue_lane = &s
}

// QueueLane returns the value of the "queue_lane" field in the mutation.
func (m *JobMutation) QueueLane() (r string, exists bool) {
	v := m.queue_lane
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueLane returns the old "queue_lane" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueueLane(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueLane: %w", err)
	}
	return oldValue.QueueLane, nil
}

// ResetQueueLane resets all changes to the "queue_lane" field.
func (m *JobMutation) ResetQueueLane() {
	m.queue_lane = nil
}

// SetJobAttempts sets the "job_attempts" field.
func (m *JobMutation) SetJobAttempts(i int) {
	m.job_attempts = &i
	m.addjob_attempts = nil
}

// JobAttempts returns the value of the "job_attempts" field in the mutation.
func (m *JobMutation) JobAttempts() (r int, exists bool) {
	v := m.job_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldJobAttempts returns the old "job_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobAttempts: %w", err)
	}
	return oldValue.JobAttempts, nil
}

// AddJobAttempts adds i to the "job_attempts" field.
func (m *JobMutation) AddJobAttempts(i int) {
	if m.addjob_attempts != nil {
		*m.addjob_attempts += i
	} else {
		m.addjob_attempts = &i
	}
}

// AddedJobAttempts returns the value that was added to the "job_attempts" field in this mutation.
func (m *JobMutation) AddedJobAttempts() (r int, exists bool) {
	v := m.addjob_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetJobAttempts resets all changes to the "job_attempts" field.
func (m *JobMutation) ResetJobAttempts() {
	m.job_attempts = nil
	m.addjob_attempts = nil
}

// SetProgressPercent sets the "progress_percent" field.
func (m *JobMutation) SetProgressPercent(i int) {
	m.progress_percent = &i
	m.addprogress_percent = nil
}

// ProgressPercent returns the value of the "progress_percent" field in the mutation.
func (m *JobMutation) ProgressPercent() (r int, exists bool) {
	v := m.progress_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercent returns the old "progress_percent" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgressPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercent: %w", err)
	}
	return oldValue.ProgressPercent, nil
}

// AddProgressPercent adds i to the "progress_percent" field.
func (m *JobMutation) AddProgressPercent(i int) {
	if m.addprogress_percent != nil {
		*m.addprogress_percent += i
	} else {
		m.addprogress_percent = &i
	}
}

// AddedProgressPercent returns the value that was added to the "progress_percent" field in this mutation.
func (m *JobMutation) AddedProgressPercent() (r int, exists bool) {
	v := m.addprogress_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercent resets all changes to the "progress_percent" field.
func (m *JobMutation) ResetProgressPercent() {
	m.progress_percent = nil
	m.addprogress_percent = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *JobMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *JobMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCurrentStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *JobMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[job.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *JobMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[job.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *JobMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, job.FieldCurrentStep)
}

// SetOriginalText sets the "original_text" field.
func (m *JobMutation) SetOriginalText(b []byte) {
	m.original_text = &b
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *JobMutation) OriginalText() (r []byte, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOriginalText(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ClearOriginalText clears the value of the "original_text" field.
func (m *JobMutation) ClearOriginalText() {
	m.original_text = nil
	m.clearedFields[job.FieldOriginalText] = struct{}{}
}

// OriginalTextCleared returns if the "original_text" field was cleared in this mutation.
func (m *JobMutation) OriginalTextCleared() bool {
	_, ok := m.clearedFields[job.FieldOriginalText]
	return ok
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *JobMutation) ResetOriginalText() {
	m.original_text = nil
	delete(m.clearedFields, job.FieldOriginalText)
}

// SetSimplifiedText sets the "simplified_text" field.
func (m *JobMutation) SetSimplifiedText(b []byte) {
	m.simplified_text = &b
}

// SimplifiedText returns the value of the "simplified_text" field in the mutation.
func (m *JobMutation) SimplifiedText() (r []byte, exists bool) {
	v := m.simplified_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSimplifiedText returns the old "simplified_text" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSimplifiedText(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimplifiedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimplifiedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimplifiedText: %w", err)
	}
	return oldValue.SimplifiedText, nil
}

// ClearSimplifiedText clears the value of the "simplified_text" field.
func (m *JobMutation) ClearSimplifiedText() {
	m.simplified_text = nil
	m.clearedFields[job.FieldSimplifiedText] = struct{}{}
}

// SimplifiedTextCleared returns if the "simplified_text" field was cleared in this mutation.
func (m *JobMutation) SimplifiedTextCleared() bool {
	_, ok := m.clearedFields[job.FieldSimplifiedText]
	return ok
}

// ResetSimplifiedText resets all changes to the "simplified_text" field.
func (m *JobMutation) ResetSimplifiedText() {
	m.simplified_text = nil
	delete(m.clearedFields, job.FieldSimplifiedText)
}

// SetTranslatedText sets the "translated_text" field.
func (m *JobMutation) SetTranslatedText(b []byte) {
	m.translated_text = &b
}

// TranslatedText returns the value of the "translated_text" field in the mutation.
func (m *JobMutation) TranslatedText() (r []byte, exists bool) {
	v := m.translated_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslatedText returns the old "translated_text" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTranslatedText(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslatedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslatedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslatedText: %w", err)
	}
	return oldValue.TranslatedText, nil
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (m *JobMutation) ClearTranslatedText() {
	m.translated_text = nil
	m.clearedFields[job.FieldTranslatedText] = struct{}{}
}

// TranslatedTextCleared returns if the "translated_text" field was cleared in this mutation.
func (m *JobMutation) TranslatedTextCleared() bool {
	_, ok := m.clearedFields[job.FieldTranslatedText]
	return ok
}

// ResetTranslatedText resets all changes to the "translated_text" field.
func (m *JobMutation) ResetTranslatedText() {
	m.translated_text = nil
	delete(m.clearedFields, job.FieldTranslatedText)
}

// SetResultData sets the "result_data" field.
func (m *JobMutation) SetResultData(value map[string]interface{}) {
	m.result_data = &value
}

// ResultData returns the value of the "result_data" field in the mutation.
func (m *JobMutation) ResultData() (r map[string]interface{}, exists bool) {
	v := m.result_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResultData returns the old "result_data" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResultData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultData: %w", err)
	}
	return oldValue.ResultData, nil
}

// ClearResultData clears the value of the "result_data" field.
func (m *JobMutation) ClearResultData() {
	m.result_data = nil
	m.clearedFields[job.FieldResultData] = struct{}{}
}

// ResultDataCleared returns if the "result_data" field was cleared in this mutation.
func (m *JobMutation) ResultDataCleared() bool {
	_, ok := m.clearedFields[job.FieldResultData]
	return ok
}

// ResetResultData resets all changes to the "result_data" field.
func (m *JobMutation) ResetResultData() {
	m.result_data = nil
	delete(m.clearedFields, job.FieldResultData)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *JobMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *JobMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *JobMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *JobMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *JobMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *JobMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *JobMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *JobMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *JobMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *JobMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetPiiDegraded sets the "pii_degraded" field.
func (m *JobMutation) SetPiiDegraded(b bool) {
	m.pii_degraded = &b
}

// PiiDegraded returns the value of the "pii_degraded" field in the mutation.
func (m *JobMutation) PiiDegraded() (r bool, exists bool) {
	v := m.pii_degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldPiiDegraded returns the old "pii_degraded" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPiiDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPiiDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPiiDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPiiDegraded: %w", err)
	}
	return oldValue.PiiDegraded, nil
}

// ResetPiiDegraded resets all changes to the "pii_degraded" field.
func (m *JobMutation) ResetPiiDegraded() {
	m.pii_degraded = nil
}

// SetTenant sets the "tenant" field.
func (m *JobMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *JobMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTenant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ClearTenant clears the value of the "tenant" field.
func (m *JobMutation) ClearTenant() {
	m.tenant = nil
	m.clearedFields[job.FieldTenant] = struct{}{}
}

// TenantCleared returns if the "tenant" field was cleared in this mutation.
func (m *JobMutation) TenantCleared() bool {
	_, ok := m.clearedFields[job.FieldTenant]
	return ok
}

// ResetTenant resets all changes to the "tenant" field.
func (m *JobMutation) ResetTenant() {
	m.tenant = nil
	delete(m.clearedFields, job.FieldTenant)
}

// SetSubmittedBy sets the "submitted_by" field.
func (m *JobMutation) SetSubmittedBy(s string) {
	m.submitted_by = &s
}

// SubmittedBy returns the value of the "submitted_by" field in the mutation.
func (m *JobMutation) SubmittedBy() (r string, exists bool) {
	v := m.submitted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedBy returns the old "submitted_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSubmittedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedBy: %w", err)
	}
	return oldValue.SubmittedBy, nil
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (m *JobMutation) ClearSubmittedBy() {
	m.submitted_by = nil
	m.clearedFields[job.FieldSubmittedBy] = struct{}{}
}

// SubmittedByCleared returns if the "submitted_by" field was cleared in this mutation.
func (m *JobMutation) SubmittedByCleared() bool {
	_, ok := m.clearedFields[job.FieldSubmittedBy]
	return ok
}

// ResetSubmittedBy resets all changes to the "submitted_by" field.
func (m *JobMutation) ResetSubmittedBy() {
	m.submitted_by = nil
	delete(m.clearedFields, job.FieldSubmittedBy)
}

// SetWorkerID sets the "worker_id" field.
func (m *JobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *JobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *JobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[job.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *JobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *JobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, job.FieldWorkerID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// AddStepExecutionIDs adds the "step_executions" edge to the StepExecution entity by ids.
func (m *JobMutation) AddStepExecutionIDs(ids ...string) {
	if m.step_executions == nil {
		m.step_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.step_executions[ids[i]] = struct{}{}
	}
}

// ClearStepExecutions clears the "step_executions" edge to the StepExecution entity.
func (m *JobMutation) ClearStepExecutions() {
	m.clearedstep_executions = true
}

// StepExecutionsCleared reports if the "step_executions" edge to the StepExecution entity was cleared.
func (m *JobMutation) StepExecutionsCleared() bool {
	return m.clearedstep_executions
}

// RemoveStepExecutionIDs removes the "step_executions" edge to the StepExecution entity by IDs.
func (m *JobMutation) RemoveStepExecutionIDs(ids ...string) {
	if m.removedstep_executions == nil {
		m.removedstep_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.step_executions, ids[i])
		m.removedstep_executions[ids[i]] = struct{}{}
	}
}

// RemovedStepExecutions returns the removed IDs of the "step_executions" edge to the StepExecution entity.
func (m *JobMutation) RemovedStepExecutionsIDs() (ids []string) {
	for id := range m.removedstep_executions {
		ids = append(ids, id)
	}
	return
}

// StepExecutionsIDs returns the "step_executions" edge IDs in the mutation.
func (m *JobMutation) StepExecutionsIDs() (ids []string) {
	for id := range m.step_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStepExecutions resets all changes to the "step_executions" edge.
func (m *JobMutation) ResetStepExecutions() {
	m.step_executions = nil
	m.clearedstep_executions = false
	m.removedstep_executions = nil
}

// AddAiInteractionIDs adds the "ai_interactions" edge to the AIInteractionLog entity by ids.
func (m *JobMutation) AddAiInteractionIDs(ids ...int) {
	if m.ai_interactions == nil {
		m.ai_interactions = make(map[int]struct{})
	}
	for i := range ids {
		m.ai_interactions[ids[i]] = struct{}{}
	}
}

// ClearAiInteractions clears the "ai_interactions" edge to the AIInteractionLog entity.
func (m *JobMutation) ClearAiInteractions() {
	m.clearedai_interactions = true
}

// AiInteractionsCleared reports if the "ai_interactions" edge to the AIInteractionLog entity was cleared.
func (m *JobMutation) AiInteractionsCleared() bool {
	return m.clearedai_interactions
}

// RemoveAiInteractionIDs removes the "ai_interactions" edge to the AIInteractionLog entity by IDs.
func (m *JobMutation) RemoveAiInteractionIDs(ids ...int) {
	if m.removedai_interactions == nil {
		m.removedai_interactions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.ai_interactions, ids[i])
		m.removedai_interactions[ids[i]] = struct{}{}
	}
}

// RemovedAiInteractions returns the removed IDs of the "ai_interactions" edge to the AIInteractionLog entity.
func (m *JobMutation) RemovedAiInteractionsIDs() (ids []int) {
	for id := range m.removedai_interactions {
		ids = append(ids, id)
	}
	return
}

// AiInteractionsIDs returns the "ai_interactions" edge IDs in the mutation.
func (m *JobMutation) AiInteractionsIDs() (ids []int) {
	for id := range m.ai_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetAiInteractions resets all changes to the "ai_interactions" edge.
func (m *JobMutation) ResetAiInteractions() {
	m.ai_interactions = nil
	m.clearedai_interactions = false
	m.removedai_interactions = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 31)
	if m.processing_id != nil {
		fields = append(fields, job.FieldProcessingID)
	}
	if m.filename != nil {
		fields = append(fields, job.FieldFilename)
	}
	if m.file_type != nil {
		fields = append(fields, job.FieldFileType)
	}
	if m.file_size != nil {
		fields = append(fields, job.FieldFileSize)
	}
	if m.file_content != nil {
		fields = append(fields, job.FieldFileContent)
	}
	if m.file_hash != nil {
		fields = append(fields, job.FieldFileHash)
	}
	if m.pipeline_config != nil {
		fields = append(fields, job.FieldPipelineConfig)
	}
	if m.ocr_config != nil {
		fields = append(fields, job.FieldOcrConfig)
	}
	if m.target_language != nil {
		fields = append(fields, job.FieldTargetLanguage)
	}
	if m.document_class != nil {
		fields = append(fields, job.FieldDocumentClass)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.queue_lane != nil {
		fields = append(fields, job.FieldQueueLane)
	}
	if m.job_attempts != nil {
		fields = append(fields, job.FieldJobAttempts)
	}
	if m.progress_percent != nil {
		fields = append(fields, job.FieldProgressPercent)
	}
	if m.current_step != nil {
		fields = append(fields, job.FieldCurrentStep)
	}
	if m.original_text != nil {
		fields = append(fields, job.FieldOriginalText)
	}
	if m.simplified_text != nil {
		fields = append(fields, job.FieldSimplifiedText)
	}
	if m.translated_text != nil {
		fields = append(fields, job.FieldTranslatedText)
	}
	if m.result_data != nil {
		fields = append(fields, job.FieldResultData)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.total_tokens != nil {
		fields = append(fields, job.FieldTotalTokens)
	}
	if m.total_cost != nil {
		fields = append(fields, job.FieldTotalCost)
	}
	if m.pii_degraded != nil {
		fields = append(fields, job.FieldPiiDegraded)
	}
	if m.tenant != nil {
		fields = append(fields, job.FieldTenant)
	}
	if m.submitted_by != nil {
		fields = append(fields, job.FieldSubmittedBy)
	}
	if m.worker_id != nil {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldProcessingID:
		return m.ProcessingID()
	case job.FieldFilename:
		return m.Filename()
	case job.FieldFileType:
		return m.FileType()
	case job.FieldFileSize:
		return m.FileSize()
	case job.FieldFileContent:
		return m.FileContent()
	case job.FieldFileHash:
		return m.FileHash()
	case job.FieldPipelineConfig:
		return m.PipelineConfig()
	case job.FieldOcrConfig:
		return m.OcrConfig()
	case job.FieldTargetLanguage:
		return m.TargetLanguage()
	case job.FieldDocumentClass:
		return m.DocumentClass()
	case job.FieldStatus:
		return m.Status()
	case job.FieldQueueLane:
		return m.QueueLane()
	case job.FieldJobAttempts:
		return m.JobAttempts()
	case job.FieldProgressPercent:
		return m.ProgressPercent()
	case job.FieldCurrentStep:
		return m.CurrentStep()
	case job.FieldOriginalText:
		return m.OriginalText()
	case job.FieldSimplifiedText:
		return m.SimplifiedText()
	case job.FieldTranslatedText:
		return m.TranslatedText()
	case job.FieldResultData:
		return m.ResultData()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldTotalTokens:
		return m.TotalTokens()
	case job.FieldTotalCost:
		return m.TotalCost()
	case job.FieldPiiDegraded:
		return m.PiiDegraded()
	case job.FieldTenant:
		return m.Tenant()
	case job.FieldSubmittedBy:
		return m.SubmittedBy()
	case job.FieldWorkerID:
		return m.WorkerID()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldProcessingID:
		return m.OldProcessingID(ctx)
	case job.FieldFilename:
		return m.OldFilename(ctx)
	case job.FieldFileType:
		return m.OldFileType(ctx)
	case job.FieldFileSize:
		return m.OldFileSize(ctx)
	case job.FieldFileContent:
		return m.OldFileContent(ctx)
	case job.FieldFileHash:
		return m.OldFileHash(ctx)
	case job.FieldPipelineConfig:
		return m.OldPipelineConfig(ctx)
	case job.FieldOcrConfig:
		return m.OldOcrConfig(ctx)
	case job.FieldTargetLanguage:
		return m.OldTargetLanguage(ctx)
	case job.FieldDocumentClass:
		return m.OldDocumentClass(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldQueueLane:
		return m.OldQueueLane(ctx)
	case job.FieldJobAttempts:
		return m.OldJobAttempts(ctx)
	case job.FieldProgressPercent:
		return m.OldProgressPercent(ctx)
	case job.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case job.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case job.FieldSimplifiedText:
		return m.OldSimplifiedText(ctx)
	case job.FieldTranslatedText:
		return m.OldTranslatedText(ctx)
	case job.FieldResultData:
		return m.OldResultData(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case job.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case job.FieldPiiDegraded:
		return m.OldPiiDegraded(ctx)
	case job.FieldTenant:
		return m.OldTenant(ctx)
	case job.FieldSubmittedBy:
		return m.OldSubmittedBy(ctx)
	case job.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldProcessingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingID(v)
		return nil
	case job.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case job.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case job.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case job.FieldFileContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileContent(v)
		return nil
	case job.FieldFileHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHash(v)
		return nil
	case job.FieldPipelineConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineConfig(v)
		return nil
	case job.FieldOcrConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfig(v)
		return nil
	case job.FieldTargetLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLanguage(v)
		return nil
	case job.FieldDocumentClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentClass(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldQueueLane:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueLane(v)
		return nil
	case job.FieldJobAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobAttempts(v)
		return nil
	case job.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercent(v)
		return nil
	case job.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case job.FieldOriginalText:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case job.FieldSimplifiedText:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimplifiedText(v)
		return nil
	case job.FieldTranslatedText:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslatedText(v)
		return nil
	case job.FieldResultData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultData(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case job.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case job.FieldPiiDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPiiDegraded(v)
		return nil
	case job.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case job.FieldSubmittedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedBy(v)
		return nil
	case job.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, job.FieldFileSize)
	}
	if m.addjob_attempts != nil {
		fields = append(fields, job.FieldJobAttempts)
	}
	if m.addprogress_percent != nil {
		fields = append(fields, job.FieldProgressPercent)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, job.FieldTotalTokens)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, job.FieldTotalCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldFileSize:
		return m.AddedFileSize()
	case job.FieldJobAttempts:
		return m.AddedJobAttempts()
	case job.FieldProgressPercent:
		return m.AddedProgressPercent()
	case job.FieldTotalTokens:
		return m.AddedTotalTokens()
	case job.FieldTotalCost:
		return m.AddedTotalCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case job.FieldJobAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJobAttempts(v)
		return nil
	case job.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercent(v)
		return nil
	case job.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case job.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldFileContent) {
		fields = append(fields, job.FieldFileContent)
	}
	if m.FieldCleared(job.FieldFileHash) {
		fields = append(fields, job.FieldFileHash)
	}
	if m.FieldCleared(job.FieldPipelineConfig) {
		fields = append(fields, job.FieldPipelineConfig)
	}
	if m.FieldCleared(job.FieldOcrConfig) {
		fields = append(fields, job.FieldOcrConfig)
	}
	if m.FieldCleared(job.FieldTargetLanguage) {
		fields = append(fields, job.FieldTargetLanguage)
	}
	if m.FieldCleared(job.FieldDocumentClass) {
		fields = append(fields, job.FieldDocumentClass)
	}
	if m.FieldCleared(job.FieldCurrentStep) {
		fields = append(fields, job.FieldCurrentStep)
	}
	if m.FieldCleared(job.FieldOriginalText) {
		fields = append(fields, job.FieldOriginalText)
	}
	if m.FieldCleared(job.FieldSimplifiedText) {
		fields = append(fields, job.FieldSimplifiedText)
	}
	if m.FieldCleared(job.FieldTranslatedText) {
		fields = append(fields, job.FieldTranslatedText)
	}
	if m.FieldCleared(job.FieldResultData) {
		fields = append(fields, job.FieldResultData)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldTenant) {
		fields = append(fields, job.FieldTenant)
	}
	if m.FieldCleared(job.FieldSubmittedBy) {
		fields = append(fields, job.FieldSubmittedBy)
	}
	if m.FieldCleared(job.FieldWorkerID) {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldFileContent:
		m.ClearFileContent()
		return nil
	case job.FieldFileHash:
		m.ClearFileHash()
		return nil
	case job.FieldPipelineConfig:
		m.ClearPipelineConfig()
		return nil
	case job.FieldOcrConfig:
		m.ClearOcrConfig()
		return nil
	case job.FieldTargetLanguage:
		m.ClearTargetLanguage()
		return nil
	case job.FieldDocumentClass:
		m.ClearDocumentClass()
		return nil
	case job.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case job.FieldOriginalText:
		m.ClearOriginalText()
		return nil
	case job.FieldSimplifiedText:
		m.ClearSimplifiedText()
		return nil
	case job.FieldTranslatedText:
		m.ClearTranslatedText()
		return nil
	case job.FieldResultData:
		m.ClearResultData()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldTenant:
		m.ClearTenant()
		return nil
	case job.FieldSubmittedBy:
		m.ClearSubmittedBy()
		return nil
	case job.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldProcessingID:
		m.ResetProcessingID()
		return nil
	case job.FieldFilename:
		m.ResetFilename()
		return nil
	case job.FieldFileType:
		m.ResetFileType()
		return nil
	case job.FieldFileSize:
		m.ResetFileSize()
		return nil
	case job.FieldFileContent:
		m.ResetFileContent()
		return nil
	case job.FieldFileHash:
		m.ResetFileHash()
		return nil
	case job.FieldPipelineConfig:
		m.ResetPipelineConfig()
		return nil
	case job.FieldOcrConfig:
		m.ResetOcrConfig()
		return nil
	case job.FieldTargetLanguage:
		m.ResetTargetLanguage()
		return nil
	case job.FieldDocumentClass:
		m.ResetDocumentClass()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldQueueLane:
		m.ResetQueueLane()
		return nil
	case job.FieldJobAttempts:
		m.ResetJobAttempts()
		return nil
	case job.FieldProgressPercent:
		m.ResetProgressPercent()
		return nil
	case job.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case job.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case job.FieldSimplifiedText:
		m.ResetSimplifiedText()
		return nil
	case job.FieldTranslatedText:
		m.ResetTranslatedText()
		return nil
	case job.FieldResultData:
		m.ResetResultData()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case job.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case job.FieldPiiDegraded:
		m.ResetPiiDegraded()
		return nil
	case job.FieldTenant:
		m.ResetTenant()
		return nil
	case job.FieldSubmittedBy:
		m.ResetSubmittedBy()
		return nil
	case job.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.step_executions != nil {
		edges = append(edges, job.EdgeStepExecutions)
	}
	if m.ai_interactions != nil {
		edges = append(edges, job.EdgeAiInteractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeStepExecutions:
		ids := make([]ent.Value, 0, len(m.step_executions))
		for id := range m.step_executions {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeAiInteractions:
		ids := make([]ent.Value, 0, len(m.ai_interactions))
		for id := range m.ai_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedstep_executions != nil {
		edges = append(edges, job.EdgeStepExecutions)
	}
	if m.removedai_interactions != nil {
		edges = append(edges, job.EdgeAiInteractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeStepExecutions:
		ids := make([]ent.Value, 0, len(m.removedstep_executions))
		for id := range m.removedstep_executions {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeAiInteractions:
		ids := make([]ent.Value, 0, len(m.removedai_interactions))
		for id := range m.removedai_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstep_executions {
		edges = append(edges, job.EdgeStepExecutions)
	}
	if m.clearedai_interactions {
		edges = append(edges, job.EdgeAiInteractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeStepExecutions:
		return m.clearedstep_executions
	case job.EdgeAiInteractions:
		return m.clearedai_interactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeStepExecutions:
		m.ResetStepExecutions()
		return nil
	case job.EdgeAiInteractions:
		m.ResetAiInteractions()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// ModelConfigMutation represents an operation that mutates the ModelConfig nodes in the graph.
type ModelConfigMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	name                    *string
	provider                *string
	input_price_per_m       *float64
	addinput_price_per_m    *float64
	output_price_per_m      *float64
	addoutput_price_per_m   *float64
	max_tokens              *int
	addmax_tokens           *int
	supports_vision         *bool
	supports_streaming      *bool
	active                  *bool
	request_timeout_secs    *int
	addrequest_timeout_secs *int
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ModelConfig, error)
	predicates              []predicate.ModelConfig
}

var _ ent.Mutation = (*ModelConfigMutation)(nil)

// modelconfigOption allows management of the mutation configuration using functional options.
type modelconfigOption func(*ModelConfigMutation)

// newModelConfigMutation creates new mutation for the ModelConfig entity.
func newModelConfigMutation(c config, op Op, opts ...modelconfigOption) *ModelConfigMutation {
	m := &ModelConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeModelConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelConfigID sets the ID field of the mutation.
func withModelConfigID(id int) modelconfigOption {
	return func(m *ModelConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelConfig
		)
		m.oldValue = func(ctx context.Context) (*ModelConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelConfig sets the old ModelConfig of the mutation.
func withModelConfig(node *ModelConfig) modelconfigOption {
	return func(m *ModelConfigMutation) {
		m.oldValue = func(context.Context) (*ModelConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ModelConfigMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ModelConfigMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ModelConfigMutation) ResetName() {
	m.name = nil
}

// SetProvider sets the "provider" field.
func (m *ModelConfigMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ModelConfigMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ModelConfigMutation) ResetProvider() {
	m.provider = nil
}

// SetInputPricePerM sets the "input_price_per_m" field.
func (m *ModelConfigMutation) SetInputPricePerM(f float64) {
	m.input_price_per_m = &f
	m.addinput_price_per_m = nil
}

// InputPricePerM returns the value of the "input_price_per_m" field in the mutation.
func (m *ModelConfigMutation) InputPricePerM() (r float64, exists bool) {
	v := m.input_price_per_m
	if v == nil {
		return
	}
	return *v, true
}

// OldInputPricePerM returns the old "input_price_per_m" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldInputPricePerM(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputPricePerM is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputPricePerM requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputPricePerM: %w", err)
	}
	return oldValue.InputPricePerM, nil
}

// AddInputPricePerM adds f to the "input_price_per_m" field.
func (m *ModelConfigMutation) AddInputPricePerM(f float64) {
	if m.addinput_price_per_m != nil {
		*m.addinput_price_per_m += f
	} else {
		m.addinput_price_per_m = &f
	}
}

// AddedInputPricePerM returns the value that was added to the "input_price_per_m" field in this mutation.
func (m *ModelConfigMutation) AddedInputPricePerM() (r float64, exists bool) {
	v := m.addinput_price_per_m
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputPricePerM resets all changes to the "input_price_per_m" field.
func (m *ModelConfigMutation) ResetInputPricePerM() {
	m.input_price_per_m = nil
	m.addinput_price_per_m = nil
}

// SetOutputPricePerM sets the "output_price_per_m" field.
func (m *ModelConfigMutation) SetOutputPricePerM(f float64) {
	m.output_price_per_m = &f
	m.addoutput_price_per_m = nil
}

// OutputPricePerM returns the value of the "output_price_per_m" field in the mutation.
func (m *ModelConfigMutation) OutputPricePerM() (r float64, exists bool) {
	v := m.output_price_per_m
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPricePerM returns the old "output_price_per_m" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldOutputPricePerM(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPricePerM is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPricePerM requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPricePerM: %w", err)
	}
	return oldValue.OutputPricePerM, nil
}

// AddOutputPricePerM adds f to the "output_price_per_m" field.
func (m *ModelConfigMutation) AddOutputPricePerM(f float64) {
	if m.addoutput_price_per_m != nil {
		*m.addoutput_price_per_m += f
	} else {
		m.addoutput_price_per_m = &f
	}
}

// AddedOutputPricePerM returns the value that was added to the "output_price_per_m" field in this mutation.
func (m *ModelConfigMutation) AddedOutputPricePerM() (r float64, exists bool) {
	v := m.addoutput_price_per_m
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputPricePerM resets all changes to the "output_price_per_m" field.
func (m *ModelConfigMutation) ResetOutputPricePerM() {
	m.output_price_per_m = nil
	m.addoutput_price_per_m = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *ModelConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *ModelConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *ModelConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *ModelConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *ModelConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetSupportsVision sets the "supports_vision" field.
func (m *ModelConfigMutation) SetSupportsVision(b bool) {
	m.supports_vision = &b
}

// SupportsVision returns the value of the "supports_vision" field in the mutation.
func (m *ModelConfigMutation) SupportsVision() (r bool, exists bool) {
	v := m.supports_vision
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportsVision returns the old "supports_vision" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldSupportsVision(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportsVision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportsVision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportsVision: %w", err)
	}
	return oldValue.SupportsVision, nil
}

// ResetSupportsVision resets all changes to the "supports_vision" field.
func (m *ModelConfigMutation) ResetSupportsVision() {
	m.supports_vision = nil
}

// SetSupportsStreaming sets the "supports_streaming" field.
func (m *ModelConfigMutation) SetSupportsStreaming(b bool) {
	m.supports_streaming = &b
}

// SupportsStreaming returns the value of the "supports_streaming" field in the mutation.
func (m *ModelConfigMutation) SupportsStreaming() (r bool, exists bool) {
	v := m.supports_streaming
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportsStreaming returns the old "supports_streaming" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldSupportsStreaming(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportsStreaming is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportsStreaming requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportsStreaming: %w", err)
	}
	return oldValue.SupportsStreaming, nil
}

// ResetSupportsStreaming resets all changes to the "supports_streaming" field.
func (m *ModelConfigMutation) ResetSupportsStreaming() {
	m.supports_streaming = nil
}

// SetActive sets the "active" field.
func (m *ModelConfigMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ModelConfigMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ModelConfigMutation) ResetActive() {
	m.active = nil
}

// SetRequestTimeoutSecs sets the "request_timeout_secs" field.
func (m *ModelConfigMutation) SetRequestTimeoutSecs(i int) {
	m.request_timeout_secs = &i
	m.addrequest_timeout_secs = nil
}

// RequestTimeoutSecs returns the value of the "request_timeout_secs" field in the mutation.
func (m *ModelConfigMutation) RequestTimeoutSecs() (r int, exists bool) {
	v := m.request_timeout_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestTimeoutSecs returns the old "request_timeout_secs" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldRequestTimeoutSecs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestTimeoutSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestTimeoutSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestTimeoutSecs: %w", err)
	}
	return oldValue.RequestTimeoutSecs, nil
}

// AddRequestTimeoutSecs adds i to the "request_timeout_secs" field.
func (m *ModelConfigMutation) AddRequestTimeoutSecs(i int) {
	if m.addrequest_timeout_secs != nil {
		*m.addrequest_timeout_secs += i
	} else {
		m.addrequest_timeout_secs = &i
	}
}

// AddedRequestTimeoutSecs returns the value that was added to the "request_timeout_secs" field in this mutation.
func (m *ModelConfigMutation) AddedRequestTimeoutSecs() (r int, exists bool) {
	v := m.addrequest_timeout_secs
	if v == nil {
		return
	}
	return *v, true
}

// ClearRequestTimeoutSecs clears the value of the "request_timeout_secs" field.
func (m *ModelConfigMutation) ClearRequestTimeoutSecs() {
	m.request_timeout_secs = nil
	m.addrequest_timeout_secs = nil
	m.clearedFields[modelconfig.FieldRequestTimeoutSecs] = struct{}{}
}

// RequestTimeoutSecsCleared returns if the "request_timeout_secs" field was cleared in this mutation.
func (m *ModelConfigMutation) RequestTimeoutSecsCleared() bool {
	_, ok := m.clearedFields[modelconfig.FieldRequestTimeoutSecs]
	return ok
}

// ResetRequestTimeoutSecs resets all changes to the "request_timeout_secs" field.
func (m *ModelConfigMutation) ResetRequestTimeoutSecs() {
	m.request_timeout_secs = nil
	m.addrequest_timeout_secs = nil
	delete(m.clearedFields, modelconfig.FieldRequestTimeoutSecs)
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ModelConfigMutation builder.
func (m *ModelConfigMutation) Where(ps ...predicate.ModelConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelConfig).
func (m *ModelConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelConfigMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, modelconfig.FieldName)
	}
	if m.provider != nil {
		fields = append(fields, modelconfig.FieldProvider)
	}
	if m.input_price_per_m != nil {
		fields = append(fields, modelconfig.FieldInputPricePerM)
	}
	if m.output_price_per_m != nil {
		fields = append(fields, modelconfig.FieldOutputPricePerM)
	}
	if m.max_tokens != nil {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	if m.supports_vision != nil {
		fields = append(fields, modelconfig.FieldSupportsVision)
	}
	if m.supports_streaming != nil {
		fields = append(fields, modelconfig.FieldSupportsStreaming)
	}
	if m.active != nil {
		fields = append(fields, modelconfig.FieldActive)
	}
	if m.request_timeout_secs != nil {
		fields = append(fields, modelconfig.FieldRequestTimeoutSecs)
	}
	if m.created_at != nil {
		fields = append(fields, modelconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modelconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldName:
		return m.Name()
	case modelconfig.FieldProvider:
		return m.Provider()
	case modelconfig.FieldInputPricePerM:
		return m.InputPricePerM()
	case modelconfig.FieldOutputPricePerM:
		return m.OutputPricePerM()
	case modelconfig.FieldMaxTokens:
		return m.MaxTokens()
	case modelconfig.FieldSupportsVision:
		return m.SupportsVision()
	case modelconfig.FieldSupportsStreaming:
		return m.SupportsStreaming()
	case modelconfig.FieldActive:
		return m.Active()
	case modelconfig.FieldRequestTimeoutSecs:
		return m.RequestTimeoutSecs()
	case modelconfig.FieldCreatedAt:
		return m.CreatedAt()
	case modelconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelconfig.FieldName:
		return m.OldName(ctx)
	case modelconfig.FieldProvider:
		return m.OldProvider(ctx)
	case modelconfig.FieldInputPricePerM:
		return m.OldInputPricePerM(ctx)
	case modelconfig.FieldOutputPricePerM:
		return m.OldOutputPricePerM(ctx)
	case modelconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case modelconfig.FieldSupportsVision:
		return m.OldSupportsVision(ctx)
	case modelconfig.FieldSupportsStreaming:
		return m.OldSupportsStreaming(ctx)
	case modelconfig.FieldActive:
		return m.OldActive(ctx)
	case modelconfig.FieldRequestTimeoutSecs:
		return m.OldRequestTimeoutSecs(ctx)
	case modelconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modelconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case modelconfig.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case modelconfig.FieldInputPricePerM:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputPricePerM(v)
		return nil
	case modelconfig.FieldOutputPricePerM:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPricePerM(v)
		return nil
	case modelconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case modelconfig.FieldSupportsVision:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportsVision(v)
		return nil
	case modelconfig.FieldSupportsStreaming:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportsStreaming(v)
		return nil
	case modelconfig.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case modelconfig.FieldRequestTimeoutSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestTimeoutSecs(v)
		return nil
	case modelconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modelconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelConfigMutation) AddedFields() []string {
	var fields []string
	if m.addinput_price_per_m != nil {
		fields = append(fields, modelconfig.FieldInputPricePerM)
	}
	if m.addoutput_price_per_m != nil {
		fields = append(fields, modelconfig.FieldOutputPricePerM)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	if m.addrequest_timeout_secs != nil {
		fields = append(fields, modelconfig.FieldRequestTimeoutSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldInputPricePerM:
		return m.AddedInputPricePerM()
	case modelconfig.FieldOutputPricePerM:
		return m.AddedOutputPricePerM()
	case modelconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	case modelconfig.FieldRequestTimeoutSecs:
		return m.AddedRequestTimeoutSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldInputPricePerM:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputPricePerM(v)
		return nil
	case modelconfig.FieldOutputPricePerM:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputPricePerM(v)
		return nil
	case modelconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case modelconfig.FieldRequestTimeoutSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestTimeoutSecs(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelconfig.FieldRequestTimeoutSecs) {
		fields = append(fields, modelconfig.FieldRequestTimeoutSecs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelConfigMutation) ClearField(name string) error {
	switch name {
	case modelconfig.FieldRequestTimeoutSecs:
		m.ClearRequestTimeoutSecs()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelConfigMutation) ResetField(name string) error {
	switch name {
	case modelconfig.FieldName:
		m.ResetName()
		return nil
	case modelconfig.FieldProvider:
		m.ResetProvider()
		return nil
	case modelconfig.FieldInputPricePerM:
		m.ResetInputPricePerM()
		return nil
	case modelconfig.FieldOutputPricePerM:
		m.ResetOutputPricePerM()
		return nil
	case modelconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case modelconfig.FieldSupportsVision:
		m.ResetSupportsVision()
		return nil
	case modelconfig.FieldSupportsStreaming:
		m.ResetSupportsStreaming()
		return nil
	case modelconfig.FieldActive:
		m.ResetActive()
		return nil
	case modelconfig.FieldRequestTimeoutSecs:
		m.ResetRequestTimeoutSecs()
		return nil
	case modelconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modelconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelConfig edge %s", name)
}

// OCRConfigurationMutation represents an operation that mutates the OCRConfiguration nodes in the graph.
type OCRConfigurationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	engine               *string
	endpoint             *string
	language_hints       *[]string
	appendlanguage_hints []string
	enabled              *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*OCRConfiguration, error)
	predicates           []predicate.OCRConfiguration
}

var _ ent.Mutation = (*OCRConfigurationMutation)(nil)

// ocrconfigurationOption allows management of the mutation configuration using functional options.
type ocrconfigurationOption func(*OCRConfigurationMutation)

// newOCRConfigurationMutation creates new mutation for the OCRConfiguration entity.
func newOCRConfigurationMutation(c config, op Op, opts ...ocrconfigurationOption) *OCRConfigurationMutation {
	m := &OCRConfigurationMutation{
		config:        c,
		op:            op,
		typ:           TypeOCRConfiguration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOCRConfigurationID sets the ID field of the mutation.
func withOCRConfigurationID(id int) ocrconfigurationOption {
	return func(m *OCRConfigurationMutation) {
		var (
			err   error
			once  sync.Once
			value *OCRConfiguration
		)
		m.oldValue = func(ctx context.Context) (*OCRConfiguration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OCRConfiguration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOCRConfiguration sets the old OCRConfiguration of the mutation.
func withOCRConfiguration(node *OCRConfiguration) ocrconfigurationOption {
	return func(m *OCRConfigurationMutation) {
		m.oldValue = func(context.Context) (*OCRConfiguration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OCRConfigurationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OCRConfigurationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OCRConfigurationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OCRConfigurationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OCRConfiguration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngine sets the "engine" field.
func (m *OCRConfigurationMutation) SetEngine(s string) {
	m.engine = &s
}

// Engine returns the value of the "engine" field in the mutation.
func (m *OCRConfigurationMutation) Engine() (r string, exists bool) {
	v := m.engine
	if v == nil {
		return
	}
	return *v, true
}

// OldEngine returns the old "engine" field's value of the OCRConfiguration entity.
// If the OCRConfiguration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRConfigurationMutation) OldEngine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngine: %w", err)
	}
	return oldValue.Engine, nil
}

// ResetEngine resets all changes to the "engine" field.
func (m *OCRConfigurationMutation) ResetEngine() {
	m.engine = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *OCRConfigurationMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *OCRConfigurationMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the OCRConfiguration entity.
// If the OCRConfiguration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRConfigurationMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ClearEndpoint clears the value of the "endpoint" field.
func (m *OCRConfigurationMutation) ClearEndpoint() {
	m.endpoint = nil
	m.clearedFields[ocrconfiguration.FieldEndpoint] = struct{}{}
}

// EndpointCleared returns if the "endpoint" field was cleared in this mutation.
func (m *OCRConfigurationMutation) EndpointCleared() bool {
	_, ok := m.clearedFields[ocrconfiguration.FieldEndpoint]
	return ok
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *OCRConfigurationMutation) ResetEndpoint() {
	m.endpoint = nil
	delete(m.clearedFields, ocrconfiguration.FieldEndpoint)
}

// SetLanguageHints sets the "language_hints" field.
func (m *OCRConfigurationMutation) SetLanguageHints(s []string) {
	m.language_hints = &s
	m.appendlanguage_hints = nil
}

// LanguageHints returns the value of the "language_hints" field in the mutation.
func (m *OCRConfigurationMutation) LanguageHints() (r []string, exists bool) {
	v := m.language_hints
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageHints returns the old "language_hints" field's value of the OCRConfiguration entity.
// If the OCRConfiguration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRConfigurationMutation) OldLanguageHints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageHints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageHints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageHints: %w", err)
	}
	return oldValue.LanguageHints, nil
}

// AppendLanguageHints adds s to the "language_hints" field.
func (m *OCRConfigurationMutation) AppendLanguageHints(s []string) {
	m.appendlanguage_hints = append(m.appendlanguage_hints, s...)
}

// AppendedLanguageHints returns the list of values that were appended to the "language_hints" field in this mutation.
func (m *OCRConfigurationMutation) AppendedLanguageHints() ([]string, bool) {
	if len(m.appendlanguage_hints) == 0 {
		return nil, false
	}
	return m.appendlanguage_hints, true
}

// ClearLanguageHints clears the value of the "language_hints" field.
func (m *OCRConfigurationMutation) ClearLanguageHints() {
	m.language_hints = nil
	m.appendlanguage_hints = nil
	m.clearedFields[ocrconfiguration.FieldLanguageHints] = struct{}{}
}

// LanguageHintsCleared returns if the "language_hints" field was cleared in this mutation.
func (m *OCRConfigurationMutation) LanguageHintsCleared() bool {
	_, ok := m.clearedFields[ocrconfiguration.FieldLanguageHints]
	return ok
}

// ResetLanguageHints resets all changes to the "language_hints" field.
func (m *OCRConfigurationMutation) ResetLanguageHints() {
	m.language_hints = nil
	m.appendlanguage_hints = nil
	delete(m.clearedFields, ocrconfiguration.FieldLanguageHints)
}

// SetEnabled sets the "enabled" field.
func (m *OCRConfigurationMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *OCRConfigurationMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the OCRConfiguration entity.
// If the OCRConfiguration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRConfigurationMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *OCRConfigurationMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OCRConfigurationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OCRConfigurationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OCRConfiguration entity.
// If the OCRConfiguration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRConfigurationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OCRConfigurationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OCRConfigurationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OCRConfigurationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OCRConfiguration entity.
// If the OCRConfiguration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRConfigurationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OCRConfigurationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OCRConfigurationMutation builder.
func (m *OCRConfigurationMutation) Where(ps ...predicate.OCRConfiguration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OCRConfigurationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OCRConfigurationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OCRConfiguration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OCRConfigurationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OCRConfigurationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OCRConfiguration).
func (m *OCRConfigurationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OCRConfigurationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.engine != nil {
		fields = append(fields, ocrconfiguration.FieldEngine)
	}
	if m.endpoint != nil {
		fields = append(fields, ocrconfiguration.FieldEndpoint)
	}
	if m.language_hints != nil {
		fields = append(fields, ocrconfiguration.FieldLanguageHints)
	}
	if m.enabled != nil {
		fields = append(fields, ocrconfiguration.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, ocrconfiguration.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ocrconfiguration.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OCRConfigurationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ocrconfiguration.FieldEngine:
		return m.Engine()
	case ocrconfiguration.FieldEndpoint:
		return m.Endpoint()
	case ocrconfiguration.FieldLanguageHints:
		return m.LanguageHints()
	case ocrconfiguration.FieldEnabled:
		return m.Enabled()
	case ocrconfiguration.FieldCreatedAt:
		return m.CreatedAt()
	case ocrconfiguration.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OCRConfigurationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ocrconfiguration.FieldEngine:
		return m.OldEngine(ctx)
	case ocrconfiguration.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case ocrconfiguration.FieldLanguageHints:
		return m.OldLanguageHints(ctx)
	case ocrconfiguration.FieldEnabled:
		return m.OldEnabled(ctx)
	case ocrconfiguration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ocrconfiguration.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OCRConfiguration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OCRConfigurationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ocrconfiguration.FieldEngine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngine(v)
		return nil
	case ocrconfiguration.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case ocrconfiguration.FieldLanguageHints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageHints(v)
		return nil
	case ocrconfiguration.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case ocrconfiguration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ocrconfiguration.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OCRConfiguration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OCRConfigurationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OCRConfigurationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OCRConfigurationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OCRConfiguration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OCRConfigurationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ocrconfiguration.FieldEndpoint) {
		fields = append(fields, ocrconfiguration.FieldEndpoint)
	}
	if m.FieldCleared(ocrconfiguration.FieldLanguageHints) {
		fields = append(fields, ocrconfiguration.FieldLanguageHints)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OCRConfigurationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OCRConfigurationMutation) ClearField(name string) error {
	switch name {
	case ocrconfiguration.FieldEndpoint:
		m.ClearEndpoint()
		return nil
	case ocrconfiguration.FieldLanguageHints:
		m.ClearLanguageHints()
		return nil
	}
	return fmt.Errorf("unknown OCRConfiguration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OCRConfigurationMutation) ResetField(name string) error {
	switch name {
	case ocrconfiguration.FieldEngine:
		m.ResetEngine()
		return nil
	case ocrconfiguration.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case ocrconfiguration.FieldLanguageHints:
		m.ResetLanguageHints()
		return nil
	case ocrconfiguration.FieldEnabled:
		m.ResetEnabled()
		return nil
	case ocrconfiguration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ocrconfiguration.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OCRConfiguration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OCRConfigurationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OCRConfigurationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OCRConfigurationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OCRConfigurationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OCRConfigurationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OCRConfigurationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OCRConfigurationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OCRConfiguration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OCRConfigurationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OCRConfiguration edge %s", name)
}

// PipelineStepMutation represents an operation that mutates the PipelineStep nodes in the graph.
type PipelineStepMutation struct {
	config
	op                               Op
	typ                              string
	id                               *int
	name                             *string
	description                      *string
	sort_order                       *int
	addsort_order                    *int
	post_branching                   *bool
	enabled                          *bool
	is_branching_step                *bool
	model_name                       *string
	temperature                      *float64
	addtemperature                   *float64
	max_tokens                       *int
	addmax_tokens                    *int
	prompt_template                  *string
	system_prompt                    *string
	required_context_variables       *[]string
	appendrequired_context_variables []string
	stop_on_values                   *[]string
	appendstop_on_values             []string
	allowed_continue_values          *[]string
	appendallowed_continue_values    []string
	termination_reason               *string
	termination_message              *string
	retry_on_failure                 *bool
	max_retries                      *int
	addmax_retries                   *int
	use_original_text                *bool
	output_format                    *pipelinestep.OutputFormat
	version                          *int
	addversion                       *int
	created_at                       *time.Time
	updated_at                       *time.Time
	clearedFields                    map[string]struct{}
	document_class                   *int
	cleareddocument_class            bool
	done                             bool
	oldValue                         func(context.Context) (*PipelineStep, error)
	predicates                       []predicate.PipelineStep
}

var _ ent.Mutation = (*PipelineStepMutation)(nil)

// pipelinestepOption allows management of the mutation configuration using functional options.
type pipelinestepOption func(*PipelineStepMutation)

// newPipelineStepMutation creates new mutation for the PipelineStep entity.
func newPipelineStepMutation(c config, op Op, opts ...pipelinestepOption) *PipelineStepMutation {
	m := &PipelineStepMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStepID sets the ID field of the mutation.
func withPipelineStepID(id int) pipelinestepOption {
	return func(m *PipelineStepMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineStep
		)
		m.oldValue = func(ctx context.Context) (*PipelineStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineStep sets the old PipelineStep of the mutation.
func withPipelineStep(node *PipelineStep) pipelinestepOption {
	return func(m *PipelineStepMutation) {
		m.oldValue = func(context.Context) (*PipelineStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStepMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStepMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PipelineStepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineStepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineStepMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *PipelineStepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PipelineStepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PipelineStepMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[pipelinestep.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PipelineStepMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PipelineStepMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, pipelinestep.FieldDescription)
}

// SetSortOrder sets the "sort_order" field.
func (m *PipelineStepMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *PipelineStepMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *PipelineStepMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *PipelineStepMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *PipelineStepMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetPostBranching sets the "post_branching" field.
func (m *PipelineStepMutation) SetPostBranching(b bool) {
	m.post_branching = &b
}

// PostBranching returns the value of the "post_branching" field in the mutation.
func (m *PipelineStepMutation) PostBranching() (r bool, exists bool) {
	v := m.post_branching
	if v == nil {
		return
	}
	return *v, true
}

// OldPostBranching returns the old "post_branching" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldPostBranching(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostBranching is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostBranching requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostBranching: %w", err)
	}
	return oldValue.PostBranching, nil
}

// ResetPostBranching resets all changes to the "post_branching" field.
func (m *PipelineStepMutation) ResetPostBranching() {
	m.post_branching = nil
}

// SetDocumentClassID sets the "document_class_id" field.
func (m *PipelineStepMutation) SetDocumentClassID(i int) {
	m.document_class = &i
}

// DocumentClassID returns the value of the "document_class_id" field in the mutation.
func (m *PipelineStepMutation) DocumentClassID() (r int, exists bool) {
	v := m.document_class
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentClassID returns the old "document_class_id" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldDocumentClassID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentClassID: %w", err)
	}
	return oldValue.DocumentClassID, nil
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (m *PipelineStepMutation) ClearDocumentClassID() {
	m.document_class = nil
	m.clearedFields[pipelinestep.FieldDocumentClassID] = struct{}{}
}

// DocumentClassIDCleared returns if the "document_class_id" field was cleared in this mutation.
func (m *PipelineStepMutation) DocumentClassIDCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldDocumentClassID]
	return ok
}

// ResetDocumentClassID resets all changes to the "document_class_id" field.
func (m *PipelineStepMutation) ResetDocumentClassID() {
	m.document_class = nil
	delete(m.clearedFields, pipelinestep.FieldDocumentClassID)
}

// SetEnabled sets the "enabled" field.
func (m *PipelineStepMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *PipelineStepMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *PipelineStepMutation) ResetEnabled() {
	m.enabled = nil
}

// SetIsBranchingStep sets the "is_branching_step" field.
func (m *PipelineStepMutation) SetIsBranchingStep(b bool) {
	m.is_branching_step = &b
}

// IsBranchingStep returns the value of the "is_branching_step" field in the mutation.
func (m *PipelineStepMutation) IsBranchingStep() (r bool, exists bool) {
	v := m.is_branching_step
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBranchingStep returns the old "is_branching_step" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldIsBranchingStep(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBranchingStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBranchingStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBranchingStep: %w", err)
	}
	return oldValue.IsBranchingStep, nil
}

// ResetIsBranchingStep resets all changes to the "is_branching_step" field.
func (m *PipelineStepMutation) ResetIsBranchingStep() {
	m.is_branching_step = nil
}

// SetModelName sets the "model_name" field.
func (m *PipelineStepMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *PipelineStepMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *PipelineStepMutation) ResetModelName() {
	m.model_name = nil
}

// SetTemperature sets the "temperature" field.
func (m *PipelineStepMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *PipelineStepMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *PipelineStepMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *PipelineStepMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *PipelineStepMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *PipelineStepMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *PipelineStepMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *PipelineStepMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *PipelineStepMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *PipelineStepMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetPromptTemplate sets the "prompt_template" field.
func (m *PipelineStepMutation) SetPromptTemplate(s string) {
	m.prompt_template = &s
}

// PromptTemplate returns the value of the "prompt_template" field in the mutation.
func (m *PipelineStepMutation) PromptTemplate() (r string, exists bool) {
	v := m.prompt_template
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTemplate returns the old "prompt_template" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldPromptTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTemplate: %w", err)
	}
	return oldValue.PromptTemplate, nil
}

// ResetPromptTemplate resets all changes to the "prompt_template" field.
func (m *PipelineStepMutation) ResetPromptTemplate() {
	m.prompt_template = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *PipelineStepMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *PipelineStepMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldSystemPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *PipelineStepMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[pipelinestep.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *PipelineStepMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *PipelineStepMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, pipelinestep.FieldSystemPrompt)
}

// SetRequiredContextVariables sets the "required_context_variables" field.
func (m *PipelineStepMutation) SetRequiredContextVariables(s []string) {
	m.required_context_variables = &s
	m.appendrequired_context_variables = nil
}

// RequiredContextVariables returns the value of the "required_context_variables" field in the mutation.
func (m *PipelineStepMutation) RequiredContextVariables() (r []string, exists bool) {
	v := m.required_context_variables
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredContextVariables returns the old "required_context_variables" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldRequiredContextVariables(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredContextVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredContextVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredContextVariables: %w", err)
	}
	return oldValue.RequiredContextVariables, nil
}

// AppendRequiredContextVariables adds s to the "required_context_variables" field.
func (m *PipelineStepMutation) AppendRequiredContextVariables(s []string) {
	m.appendrequired_context_variables = append(m.appendrequired_context_variables, s...)
}

// AppendedRequiredContextVariables returns the list of values that were appended to the "required_context_variables" field in this mutation.
func (m *PipelineStepMutation) AppendedRequiredContextVariables() ([]string, bool) {
	if len(m.appendrequired_context_variables) == 0 {
		return nil, false
	}
	return m.appendrequired_context_variables, true
}

// ClearRequiredContextVariables clears the value of the "required_context_variables" field.
func (m *PipelineStepMutation) ClearRequiredContextVariables() {
	m.required_context_variables = nil
	m.appendrequired_context_variables = nil
	m.clearedFields[pipelinestep.FieldRequiredContextVariables] = struct{}{}
}

// RequiredContextVariablesCleared returns if the "required_context_variables" field was cleared in this mutation.
func (m *PipelineStepMutation) RequiredContextVariablesCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldRequiredContextVariables]
	return ok
}

// ResetRequiredContextVariables resets all changes to the "required_context_variables" field.
func (m *PipelineStepMutation) ResetRequiredContextVariables() {
	m.required_context_variables = nil
	m.appendrequired_context_variables = nil
	delete(m.clearedFields, pipelinestep.FieldRequiredContextVariables)
}

// SetStopOnValues sets the "stop_on_values" field.
func (m *PipelineStepMutation) SetStopOnValues(s []string) {
	m.stop_on_values = &s
	m.appendstop_on_values = nil
}

// StopOnValues returns the value of the "stop_on_values" field in the mutation.
func (m *PipelineStepMutation) StopOnValues() (r []string, exists bool) {
	v := m.stop_on_values
	if v == nil {
		return
	}
	return *v, true
}

// OldStopOnValues returns the old "stop_on_values" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldStopOnValues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopOnValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopOnValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopOnValues: %w", err)
	}
	return oldValue.StopOnValues, nil
}

// AppendStopOnValues adds s to the "stop_on_values" field.
func (m *PipelineStepMutation) AppendStopOnValues(s []string) {
	m.appendstop_on_values = append(m.appendstop_on_values, s...)
}

// AppendedStopOnValues returns the list of values that were appended to the "stop_on_values" field in this mutation.
func (m *PipelineStepMutation) AppendedStopOnValues() ([]string, bool) {
	if len(m.appendstop_on_values) == 0 {
		return nil, false
	}
	return m.appendstop_on_values, true
}

// ClearStopOnValues clears the value of the "stop_on_values" field.
func (m *PipelineStepMutation) ClearStopOnValues() {
	m.stop_on_values = nil
	m.appendstop_on_values = nil
	m.clearedFields[pipelinestep.FieldStopOnValues] = struct{}{}
}

// StopOnValuesCleared returns if the "stop_on_values" field was cleared in this mutation.
func (m *PipelineStepMutation) StopOnValuesCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldStopOnValues]
	return ok
}

// ResetStopOnValues resets all changes to the "stop_on_values" field.
func (m *PipelineStepMutation) ResetStopOnValues() {
	m.stop_on_values = nil
	m.appendstop_on_values = nil
	delete(m.clearedFields, pipelinestep.FieldStopOnValues)
}

// SetAllowedContinueValues sets the "allowed_continue_values" field.
func (m *PipelineStepMutation) SetAllowedContinueValues(s []string) {
	m.allowed_continue_values = &s
	m.appendallowed_continue_values = nil
}

// AllowedContinueValues returns the value of the "allowed_continue_values" field in the mutation.
func (m *PipelineStepMutation) AllowedContinueValues() (r []string, exists bool) {
	v := m.allowed_continue_values
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedContinueValues returns the old "allowed_continue_values" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldAllowedContinueValues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedContinueValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedContinueValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedContinueValues: %w", err)
	}
	return oldValue.AllowedContinueValues, nil
}

// AppendAllowedContinueValues adds s to the "allowed_continue_values" field.
func (m *PipelineStepMutation) AppendAllowedContinueValues(s []string) {
	m.appendallowed_continue_values = append(m.appendallowed_continue_values, s...)
}

// AppendedAllowedContinueValues returns the list of values that were appended to the "allowed_continue_values" field in this mutation.
func (m *PipelineStepMutation) AppendedAllowedContinueValues() ([]string, bool) {
	if len(m.appendallowed_continue_values) == 0 {
		return nil, false
	}
	return m.appendallowed_continue_values, true
}

// ClearAllowedContinueValues clears the value of the "allowed_continue_values" field.
func (m *PipelineStepMutation) ClearAllowedContinueValues() {
	m.allowed_continue_values = nil
	m.appendallowed_continue_values = nil
	m.clearedFields[pipelinestep.FieldAllowedContinueValues] = struct{}{}
}

// AllowedContinueValuesCleared returns if the "allowed_continue_values" field was cleared in this mutation.
func (m *PipelineStepMutation) AllowedContinueValuesCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldAllowedContinueValues]
	return ok
}

// ResetAllowedContinueValues resets all changes to the "allowed_continue_values" field.
func (m *PipelineStepMutation) ResetAllowedContinueValues() {
	m.allowed_continue_values = nil
	m.appendallowed_continue_values = nil
	delete(m.clearedFields, pipelinestep.FieldAllowedContinueValues)
}

// SetTerminationReason sets the "termination_reason" field.
func (m *PipelineStepMutation) SetTerminationReason(s string) {
	m.termination_reason = &s
}

// TerminationReason returns the value of the "termination_reason" field in the mutation.
func (m *PipelineStepMutation) TerminationReason() (r string, exists bool) {
	v := m.termination_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationReason returns the old "termination_reason" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldTerminationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationReason: %w", err)
	}
	return oldValue.TerminationReason, nil
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (m *PipelineStepMutation) ClearTerminationReason() {
	m.termination_reason = nil
	m.clearedFields[pipelinestep.FieldTerminationReason] = struct{}{}
}

// TerminationReasonCleared returns if the "termination_reason" field was cleared in this mutation.
func (m *PipelineStepMutation) TerminationReasonCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldTerminationReason]
	return ok
}

// ResetTerminationReason resets all changes to the "termination_reason" field.
func (m *PipelineStepMutation) ResetTerminationReason() {
	m.termination_reason = nil
	delete(m.clearedFields, pipelinestep.FieldTerminationReason)
}

// SetTerminationMessage sets the "termination_message" field.
func (m *PipelineStepMutation) SetTerminationMessage(s string) {
	m.termination_message = &s
}

// TerminationMessage returns the value of the "termination_message" field in the mutation.
func (m *PipelineStepMutation) TerminationMessage() (r string, exists bool) {
	v := m.termination_message
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationMessage returns the old "termination_message" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldTerminationMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationMessage: %w", err)
	}
	return oldValue.TerminationMessage, nil
}

// ClearTerminationMessage clears the value of the "termination_message" field.
func (m *PipelineStepMutation) ClearTerminationMessage() {
	m.termination_message = nil
	m.clearedFields[pipelinestep.FieldTerminationMessage] = struct{}{}
}

// TerminationMessageCleared returns if the "termination_message" field was cleared in this mutation.
func (m *PipelineStepMutation) TerminationMessageCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldTerminationMessage]
	return ok
}

// ResetTerminationMessage resets all changes to the "termination_message" field.
func (m *PipelineStepMutation) ResetTerminationMessage() {
	m.termination_message = nil
	delete(m.clearedFields, pipelinestep.FieldTerminationMessage)
}

// SetRetryOnFailure sets the "retry_on_failure" field.
func (m *PipelineStepMutation) SetRetryOnFailure(b bool) {
	m.retry_on_failure = &b
}

// RetryOnFailure returns the value of the "retry_on_failure" field in the mutation.
func (m *PipelineStepMutation) RetryOnFailure() (r bool, exists bool) {
	v := m.retry_on_failure
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryOnFailure returns the old "retry_on_failure" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldRetryOnFailure(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryOnFailure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryOnFailure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryOnFailure: %w", err)
	}
	return oldValue.RetryOnFailure, nil
}

// ResetRetryOnFailure resets all changes to the "retry_on_failure" field.
func (m *PipelineStepMutation) ResetRetryOnFailure() {
	m.retry_on_failure = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *PipelineStepMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *PipelineStepMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *PipelineStepMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *PipelineStepMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *PipelineStepMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetUseOriginalText sets the "use_original_text" field.
func (m *PipelineStepMutation) SetUseOriginalText(b bool) {
	m.use_original_text = &b
}

// UseOriginalText returns the value of the "use_original_text" field in the mutation.
func (m *PipelineStepMutation) UseOriginalText() (r bool, exists bool) {
	v := m.use_original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldUseOriginalText returns the old "use_original_text" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldUseOriginalText(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseOriginalText: %w", err)
	}
	return oldValue.UseOriginalText, nil
}

// ResetUseOriginalText resets all changes to the "use_original_text" field.
func (m *PipelineStepMutation) ResetUseOriginalText() {
	m.use_original_text = nil
}

// SetOutputFormat sets the "output_format" field.
func (m *PipelineStepMutation) SetOutputFormat(pf pipelinestep.OutputFormat) {
	m.output_format = &pf
}

// OutputFormat returns the value of the "output_format" field in the mutation.
func (m *PipelineStepMutation) OutputFormat() (r pipelinestep.OutputFormat, exists bool) {
	v := m.output_format
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputFormat returns the old "output_format" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldOutputFormat(ctx context.Context) (v pipelinestep.OutputFormat, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputFormat: %w", err)
	}
	return oldValue.OutputFormat, nil
}

// ResetOutputFormat resets all changes to the "output_format" field.
func (m *PipelineStepMutation) ResetOutputFormat() {
	m.output_format = nil
}

// SetVersion sets the "version" field.
func (m *PipelineStepMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PipelineStepMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PipelineStepMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PipelineStepMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PipelineStepMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocumentClass clears the "document_class" edge to the DocumentClass entity.
func (m *PipelineStepMutation) ClearDocumentClass() {
	m.cleareddocument_class = true
	m.clearedFields[pipelinestep.FieldDocumentClassID] = struct{}{}
}

// DocumentClassCleared reports if the "document_class" edge to the DocumentClass entity was cleared.
func (m *PipelineStepMutation) DocumentClassCleared() bool {
	return m.DocumentClassIDCleared() || m.cleareddocument_class
}

// DocumentClassIDs returns the "document_class" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentClassID instead. It exists only for internal usage by the builders.
func (m *PipelineStepMutation) DocumentClassIDs() (ids []int) {
	if id := m.document_class; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocumentClass resets all changes to the "document_class" edge.
func (m *PipelineStepMutation) ResetDocumentClass() {
	m.document_class = nil
	m.cleareddocument_class = false
}

// Where appends a list predicates to the PipelineStepMutation builder.
func (m *PipelineStepMutation) Where(ps ...predicate.PipelineStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineStep).
func (m *PipelineStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStepMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.name != nil {
		fields = append(fields, pipelinestep.FieldName)
	}
	if m.description != nil {
		fields = append(fields, pipelinestep.FieldDescription)
	}
	if m.sort_order != nil {
		fields = append(fields, pipelinestep.FieldSortOrder)
	}
	if m.post_branching != nil {
		fields = append(fields, pipelinestep.FieldPostBranching)
	}
	if m.document_class != nil {
		fields = append(fields, pipelinestep.FieldDocumentClassID)
	}
	if m.enabled != nil {
		fields = append(fields, pipelinestep.FieldEnabled)
	}
	if m.is_branching_step != nil {
		fields = append(fields, pipelinestep.FieldIsBranchingStep)
	}
	if m.model_name != nil {
		fields = append(fields, pipelinestep.FieldModelName)
	}
	if m.temperature != nil {
		fields = append(fields, pipelinestep.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, pipelinestep.FieldMaxTokens)
	}
	if m.prompt_template != nil {
		fields = append(fields, pipelinestep.FieldPromptTemplate)
	}
	if m.system_prompt != nil {
		fields = append(fields, pipelinestep.FieldSystemPrompt)
	}
	if m.required_context_variables != nil {
		fields = append(fields, pipelinestep.FieldRequiredContextVariables)
	}
	if m.stop_on_values != nil {
		fields = append(fields, pipelinestep.FieldStopOnValues)
	}
	if m.allowed_continue_values != nil {
		fields = append(fields, pipelinestep.FieldAllowedContinueValues)
	}
	if m.termination_reason != nil {
		fields = append(fields, pipelinestep.FieldTerminationReason)
	}
	if m.termination_message != nil {
		fields = append(fields, pipelinestep.FieldTerminationMessage)
	}
	if m.retry_on_failure != nil {
		fields = append(fields, pipelinestep.FieldRetryOnFailure)
	}
	if m.max_retries != nil {
		fields = append(fields, pipelinestep.FieldMaxRetries)
	}
	if m.use_original_text != nil {
		fields = append(fields, pipelinestep.FieldUseOriginalText)
	}
	if m.output_format != nil {
		fields = append(fields, pipelinestep.FieldOutputFormat)
	}
	if m.version != nil {
		fields = append(fields, pipelinestep.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinestep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinestep.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinestep.FieldName:
		return m.Name()
	case pipelinestep.FieldDescription:
		return m.Description()
	case pipelinestep.FieldSortOrder:
		return m.SortOrder()
	case pipelinestep.FieldPostBranching:
		return m.PostBranching()
	case pipelinestep.FieldDocumentClassID:
		return m.DocumentClassID()
	case pipelinestep.FieldEnabled:
		return m.Enabled()
	case pipelinestep.FieldIsBranchingStep:
		return m.IsBranchingStep()
	case pipelinestep.FieldModelName:
		return m.ModelName()
	case pipelinestep.FieldTemperature:
		return m.Temperature()
	case pipelinestep.FieldMaxTokens:
		return m.MaxTokens()
	case pipelinestep.FieldPromptTemplate:
		return m.PromptTemplate()
	case pipelinestep.FieldSystemPrompt:
		return m.SystemPrompt()
	case pipelinestep.FieldRequiredContextVariables:
		return m.RequiredContextVariables()
	case pipelinestep.FieldStopOnValues:
		return m.StopOnValues()
	case pipelinestep.FieldAllowedContinueValues:
		return m.AllowedContinueValues()
	case pipelinestep.FieldTerminationReason:
		return m.TerminationReason()
	case pipelinestep.FieldTerminationMessage:
		return m.TerminationMessage()
	case pipelinestep.FieldRetryOnFailure:
		return m.RetryOnFailure()
	case pipelinestep.FieldMaxRetries:
		return m.MaxRetries()
	case pipelinestep.FieldUseOriginalText:
		return m.UseOriginalText()
	case pipelinestep.FieldOutputFormat:
		return m.OutputFormat()
	case pipelinestep.FieldVersion:
		return m.Version()
	case pipelinestep.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinestep.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinestep.FieldName:
		return m.OldName(ctx)
	case pipelinestep.FieldDescription:
		return m.OldDescription(ctx)
	case pipelinestep.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case pipelinestep.FieldPostBranching:
		return m.OldPostBranching(ctx)
	case pipelinestep.FieldDocumentClassID:
		return m.OldDocumentClassID(ctx)
	case pipelinestep.FieldEnabled:
		return m.OldEnabled(ctx)
	case pipelinestep.FieldIsBranchingStep:
		return m.OldIsBranchingStep(ctx)
	case pipelinestep.FieldModelName:
		return m.OldModelName(ctx)
	case pipelinestep.FieldTemperature:
		return m.OldTemperature(ctx)
	case pipelinestep.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case pipelinestep.FieldPromptTemplate:
		return m.OldPromptTemplate(ctx)
	case pipelinestep.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case pipelinestep.FieldRequiredContextVariables:
		return m.OldRequiredContextVariables(ctx)
	case pipelinestep.FieldStopOnValues:
		return m.OldStopOnValues(ctx)
	case pipelinestep.FieldAllowedContinueValues:
		return m.OldAllowedContinueValues(ctx)
	case pipelinestep.FieldTerminationReason:
		return m.OldTerminationReason(ctx)
	case pipelinestep.FieldTerminationMessage:
		return m.OldTerminationMessage(ctx)
	case pipelinestep.FieldRetryOnFailure:
		return m.OldRetryOnFailure(ctx)
	case pipelinestep.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case pipelinestep.FieldUseOriginalText:
		return m.OldUseOriginalText(ctx)
	case pipelinestep.FieldOutputFormat:
		return m.OldOutputFormat(ctx)
	case pipelinestep.FieldVersion:
		return m.OldVersion(ctx)
	case pipelinestep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinestep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinestep.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipelinestep.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pipelinestep.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case pipelinestep.FieldPostBranching:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostBranching(v)
		return nil
	case pipelinestep.FieldDocumentClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentClassID(v)
		return nil
	case pipelinestep.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case pipelinestep.FieldIsBranchingStep:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBranchingStep(v)
		return nil
	case pipelinestep.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case pipelinestep.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case pipelinestep.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case pipelinestep.FieldPromptTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTemplate(v)
		return nil
	case pipelinestep.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case pipelinestep.FieldRequiredContextVariables:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredContextVariables(v)
		return nil
	case pipelinestep.FieldStopOnValues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopOnValues(v)
		return nil
	case pipelinestep.FieldAllowedContinueValues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedContinueValues(v)
		return nil
	case pipelinestep.FieldTerminationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationReason(v)
		return nil
	case pipelinestep.FieldTerminationMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationMessage(v)
		return nil
	case pipelinestep.FieldRetryOnFailure:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryOnFailure(v)
		return nil
	case pipelinestep.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case pipelinestep.FieldUseOriginalText:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseOriginalText(v)
		return nil
	case pipelinestep.FieldOutputFormat:
		v, ok := value.(pipelinestep.OutputFormat)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputFormat(v)
		return nil
	case pipelinestep.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case pipelinestep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinestep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStepMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, pipelinestep.FieldSortOrder)
	}
	if m.addtemperature != nil {
		fields = append(fields, pipelinestep.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, pipelinestep.FieldMaxTokens)
	}
	if m.addmax_retries != nil {
		fields = append(fields, pipelinestep.FieldMaxRetries)
	}
	if m.addversion != nil {
		fields = append(fields, pipelinestep.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinestep.FieldSortOrder:
		return m.AddedSortOrder()
	case pipelinestep.FieldTemperature:
		return m.AddedTemperature()
	case pipelinestep.FieldMaxTokens:
		return m.AddedMaxTokens()
	case pipelinestep.FieldMaxRetries:
		return m.AddedMaxRetries()
	case pipelinestep.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinestep.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	case pipelinestep.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case pipelinestep.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case pipelinestep.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case pipelinestep.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinestep.FieldDescription) {
		fields = append(fields, pipelinestep.FieldDescription)
	}
	if m.FieldCleared(pipelinestep.FieldDocumentClassID) {
		fields = append(fields, pipelinestep.FieldDocumentClassID)
	}
	if m.FieldCleared(pipelinestep.FieldSystemPrompt) {
		fields = append(fields, pipelinestep.FieldSystemPrompt)
	}
	if m.FieldCleared(pipelinestep.FieldRequiredContextVariables) {
		fields = append(fields, pipelinestep.FieldRequiredContextVariables)
	}
	if m.FieldCleared(pipelinestep.FieldStopOnValues) {
		fields = append(fields, pipelinestep.FieldStopOnValues)
	}
	if m.FieldCleared(pipelinestep.FieldAllowedContinueValues) {
		fields = append(fields, pipelinestep.FieldAllowedContinueValues)
	}
	if m.FieldCleared(pipelinestep.FieldTerminationReason) {
		fields = append(fields, pipelinestep.FieldTerminationReason)
	}
	if m.FieldCleared(pipelinestep.FieldTerminationMessage) {
		fields = append(fields, pipelinestep.FieldTerminationMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStepMutation) ClearField(name string) error {
	switch name {
	case pipelinestep.FieldDescription:
		m.ClearDescription()
		return nil
	case pipelinestep.FieldDocumentClassID:
		m.ClearDocumentClassID()
		return nil
	case pipelinestep.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case pipelinestep.FieldRequiredContextVariables:
		m.ClearRequiredContextVariables()
		return nil
	case pipelinestep.FieldStopOnValues:
		m.ClearStopOnValues()
		return nil
	case pipelinestep.FieldAllowedContinueValues:
		m.ClearAllowedContinueValues()
		return nil
	case pipelinestep.FieldTerminationReason:
		m.ClearTerminationReason()
		return nil
	case pipelinestep.FieldTerminationMessage:
		m.ClearTerminationMessage()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStepMutation) ResetField(name string) error {
	switch name {
	case pipelinestep.FieldName:
		m.ResetName()
		return nil
	case pipelinestep.FieldDescription:
		m.ResetDescription()
		return nil
	case pipelinestep.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case pipelinestep.FieldPostBranching:
		m.ResetPostBranching()
		return nil
	case pipelinestep.FieldDocumentClassID:
		m.ResetDocumentClassID()
		return nil
	case pipelinestep.FieldEnabled:
		m.ResetEnabled()
		return nil
	case pipelinestep.FieldIsBranchingStep:
		m.ResetIsBranchingStep()
		return nil
	case pipelinestep.FieldModelName:
		m.ResetModelName()
		return nil
	case pipelinestep.FieldTemperature:
		m.ResetTemperature()
		return nil
	case pipelinestep.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case pipelinestep.FieldPromptTemplate:
		m.ResetPromptTemplate()
		return nil
	case pipelinestep.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case pipelinestep.FieldRequiredContextVariables:
		m.ResetRequiredContextVariables()
		return nil
	case pipelinestep.FieldStopOnValues:
		m.ResetStopOnValues()
		return nil
	case pipelinestep.FieldAllowedContinueValues:
		m.ResetAllowedContinueValues()
		return nil
	case pipelinestep.FieldTerminationReason:
		m.ResetTerminationReason()
		return nil
	case pipelinestep.FieldTerminationMessage:
		m.ResetTerminationMessage()
		return nil
	case pipelinestep.FieldRetryOnFailure:
		m.ResetRetryOnFailure()
		return nil
	case pipelinestep.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case pipelinestep.FieldUseOriginalText:
		m.ResetUseOriginalText()
		return nil
	case pipelinestep.FieldOutputFormat:
		m.ResetOutputFormat()
		return nil
	case pipelinestep.FieldVersion:
		m.ResetVersion()
		return nil
	case pipelinestep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinestep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document_class != nil {
		edges = append(edges, pipelinestep.EdgeDocumentClass)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinestep.EdgeDocumentClass:
		if id := m.document_class; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument_class {
		edges = append(edges, pipelinestep.EdgeDocumentClass)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStepMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinestep.EdgeDocumentClass:
		return m.cleareddocument_class
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStepMutation) ClearEdge(name string) error {
	switch name {
	case pipelinestep.EdgeDocumentClass:
		m.ClearDocumentClass()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStepMutation) ResetEdge(name string) error {
	switch name {
	case pipelinestep.EdgeDocumentClass:
		m.ResetDocumentClass()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep edge %s", name)
}

// StepExecutionMutation represents an operation that mutates the StepExecution nodes in the graph.
type StepExecutionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	step_name              *string
	step_order             *int
	addstep_order          *int
	phase_rank             *int
	addphase_rank          *int
	status                 *stepexecution.Status
	started_at             *time.Time
	completed_at           *time.Time
	duration_ms            *int
	addduration_ms         *int
	input_text             *[]byte
	output_text            *[]byte
	error_message          *string
	model_used             *string
	input_tokens           *int
	addinput_tokens        *int
	output_tokens          *int
	addoutput_tokens       *int
	cost                   *float64
	addcost                *float64
	attempts               *int
	addattempts            *int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	job                    *string
	clearedjob             bool
	ai_interactions        map[int]struct{}
	removedai_interactions map[int]struct{}
	clearedai_interactions bool
	done                   bool
	oldValue               func(context.Context) (*StepExecution, error)
	predicates             []predicate.StepExecution
}

var _ ent.Mutation = (*StepExecutionMutation)(nil)

// stepexecutionOption allows management of the mutation configuration using functional options.
type stepexecutionOption func(*StepExecutionMutation)

// newStepExecutionMutation creates new mutation for the StepExecution entity.
func newStepExecutionMutation(c config, op Op, opts ...stepexecutionOption) *StepExecutionMutation {
	m := &StepExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStepExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepExecutionID sets the ID field of the mutation.
func withStepExecutionID(id string) stepexecutionOption {
	return func(m *StepExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StepExecution
		)
		m.oldValue = func(ctx context.Context) (*StepExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepExecution sets the old StepExecution of the mutation.
func withStepExecution(node *StepExecution) stepexecutionOption {
	return func(m *StepExecutionMutation) {
		m.oldValue = func(context.Context) (*StepExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepExecution entities.
func (m *StepExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *StepExecutionMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *StepExecutionMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *StepExecutionMutation) ResetJobID() {
	m.job = nil
}

// SetStepName sets the "step_name" field.
func (m *StepExecutionMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *StepExecutionMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *StepExecutionMutation) ResetStepName() {
	m.step_name = nil
}

// SetStepOrder sets the "step_order" field.
func (m *StepExecutionMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *StepExecutionMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *StepExecutionMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *StepExecutionMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *StepExecutionMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetPhaseRank sets the "phase_rank" field.
func (m *StepExecutionMutation) SetPhaseRank(i int) {
	m.phase_rank = &i
	m.addphase_rank = nil
}

// PhaseRank returns the value of the "phase_rank" field in the mutation.
func (m *StepExecutionMutation) PhaseRank() (r int, exists bool) {
	v := m.phase_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseRank returns the old "phase_rank" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldPhaseRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseRank: %w", err)
	}
	return oldValue.PhaseRank, nil
}

// AddPhaseRank adds i to the "phase_rank" field.
func (m *StepExecutionMutation) AddPhaseRank(i int) {
	if m.addphase_rank != nil {
		*m.addphase_rank += i
	} else {
		m.addphase_rank = &i
	}
}

// AddedPhaseRank returns the value that was added to the "phase_rank" field in this mutation.
func (m *StepExecutionMutation) AddedPhaseRank() (r int, exists bool) {
	v := m.addphase_rank
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhaseRank resets all changes to the "phase_rank" field.
func (m *StepExecutionMutation) ResetPhaseRank() {
	m.phase_rank = nil
	m.addphase_rank = nil
}

// SetStatus sets the "status" field.
func (m *StepExecutionMutation) SetStatus(s stepexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepExecutionMutation) Status() (r stepexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStatus(ctx context.Context) (v stepexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StepExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[stepexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, stepexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stepexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stepexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StepExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StepExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StepExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StepExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *StepExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[stepexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *StepExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StepExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, stepexecution.FieldDurationMs)
}

// SetInputText sets the "input_text" field.
func (m *StepExecutionMutation) SetInputText(b []byte) {
	m.input_text = &b
}

// InputText returns the value of the "input_text" field in the mutation.
func (m *StepExecutionMutation) InputText() (r []byte, exists bool) {
	v := m.input_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInputText returns the old "input_text" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldInputText(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputText: %w", err)
	}
	return oldValue.InputText, nil
}

// ClearInputText clears the value of the "input_text" field.
func (m *StepExecutionMutation) ClearInputText() {
	m.input_text = nil
	m.clearedFields[stepexecution.FieldInputText] = struct{}{}
}

// InputTextCleared returns if the "input_text" field was cleared in this mutation.
func (m *StepExecutionMutation) InputTextCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldInputText]
	return ok
}

// ResetInputText resets all changes to the "input_text" field.
func (m *StepExecutionMutation) ResetInputText() {
	m.input_text = nil
	delete(m.clearedFields, stepexecution.FieldInputText)
}

// SetOutputText sets the "output_text" field.
func (m *StepExecutionMutation) SetOutputText(b []byte) {
	m.output_text = &b
}

// OutputText returns the value of the "output_text" field in the mutation.
func (m *StepExecutionMutation) OutputText() (r []byte, exists bool) {
	v := m.output_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputText returns the old "output_text" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldOutputText(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputText: %w", err)
	}
	return oldValue.OutputText, nil
}

// ClearOutputText clears the value of the "output_text" field.
func (m *StepExecutionMutation) ClearOutputText() {
	m.output_text = nil
	m.clearedFields[stepexecution.FieldOutputText] = struct{}{}
}

// OutputTextCleared returns if the "output_text" field was cleared in this mutation.
func (m *StepExecutionMutation) OutputTextCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldOutputText]
	return ok
}

// ResetOutputText resets all changes to the "output_text" field.
func (m *StepExecutionMutation) ResetOutputText() {
	m.output_text = nil
	delete(m.clearedFields, stepexecution.FieldOutputText)
}

// SetErrorMessage sets the "error_message" field.
func (m *StepExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StepExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StepExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stepexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StepExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StepExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stepexecution.FieldErrorMessage)
}

// SetModelUsed sets the "model_used" field.
func (m *StepExecutionMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *StepExecutionMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldModelUsed(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *StepExecutionMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[stepexecution.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *StepExecutionMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *StepExecutionMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, stepexecution.FieldModelUsed)
}

// SetInputTokens sets the "input_tokens" field.
func (m *StepExecutionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *StepExecutionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *StepExecutionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *StepExecutionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *StepExecutionMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[stepexecution.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *StepExecutionMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *StepExecutionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, stepexecution.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *StepExecutionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *StepExecutionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *StepExecutionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *StepExecutionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *StepExecutionMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[stepexecution.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *StepExecutionMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *StepExecutionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, stepexecution.FieldOutputTokens)
}

// SetCost sets the "cost" field.
func (m *StepExecutionMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *StepExecutionMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *StepExecutionMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *StepExecutionMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ClearCost clears the value of the "cost" field.
func (m *StepExecutionMutation) ClearCost() {
	m.cost = nil
	m.addcost = nil
	m.clearedFields[stepexecution.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *StepExecutionMutation) CostCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *StepExecutionMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
	delete(m.clearedFields, stepexecution.FieldCost)
}

// SetAttempts sets the "attempts" field.
func (m *StepExecutionMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *StepExecutionMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *StepExecutionMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *StepExecutionMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *StepExecutionMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StepExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *StepExecutionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[stepexecution.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *StepExecutionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *StepExecutionMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *StepExecutionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddAiInteractionIDs adds the "ai_interactions" edge to the AIInteractionLog entity by ids.
func (m *StepExecutionMutation) AddAiInteractionIDs(ids ...int) {
	if m.ai_interactions == nil {
		m.ai_interactions = make(map[int]struct{})
	}
	for i := range ids {
		m.ai_interactions[ids[i]] = struct{}{}
	}
}

// ClearAiInteractions clears the "ai_interactions" edge to the AIInteractionLog entity.
func (m *StepExecutionMutation) ClearAiInteractions() {
	m.clearedai_interactions = true
}

// AiInteractionsCleared reports if the "ai_interactions" edge to the AIInteractionLog entity was cleared.
func (m *StepExecutionMutation) AiInteractionsCleared() bool {
	return m.clearedai_interactions
}

// RemoveAiInteractionIDs removes the "ai_interactions" edge to the AIInteractionLog entity by IDs.
func (m *StepExecutionMutation) RemoveAiInteractionIDs(ids ...int) {
	if m.removedai_interactions == nil {
		m.removedai_interactions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.ai_interactions, ids[i])
		m.removedai_interactions[ids[i]] = struct{}{}
	}
}

// RemovedAiInteractions returns the removed IDs of the "ai_interactions" edge to the AIInteractionLog entity.
func (m *StepExecutionMutation) RemovedAiInteractionsIDs() (ids []int) {
	for id := range m.removedai_interactions {
		ids = append(ids, id)
	}
	return
}

// AiInteractionsIDs returns the "ai_interactions" edge IDs in the mutation.
func (m *StepExecutionMutation) AiInteractionsIDs() (ids []int) {
	for id := range m.ai_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetAiInteractions resets all changes to the "ai_interactions" edge.
func (m *StepExecutionMutation) ResetAiInteractions() {
	m.ai_interactions = nil
	m.clearedai_interactions = false
	m.removedai_interactions = nil
}

// Where appends a list predicates to the StepExecutionMutation builder.
func (m *StepExecutionMutation) Where(ps ...predicate.StepExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepExecution).
func (m *StepExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepExecutionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.job != nil {
		fields = append(fields, stepexecution.FieldJobID)
	}
	if m.step_name != nil {
		fields = append(fields, stepexecution.FieldStepName)
	}
	if m.step_order != nil {
		fields = append(fields, stepexecution.FieldStepOrder)
	}
	if m.phase_rank != nil {
		fields = append(fields, stepexecution.FieldPhaseRank)
	}
	if m.status != nil {
		fields = append(fields, stepexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, stepexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stepexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, stepexecution.FieldDurationMs)
	}
	if m.input_text != nil {
		fields = append(fields, stepexecution.FieldInputText)
	}
	if m.output_text != nil {
		fields = append(fields, stepexecution.FieldOutputText)
	}
	if m.error_message != nil {
		fields = append(fields, stepexecution.FieldErrorMessage)
	}
	if m.model_used != nil {
		fields = append(fields, stepexecution.FieldModelUsed)
	}
	if m.input_tokens != nil {
		fields = append(fields, stepexecution.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, stepexecution.FieldOutputTokens)
	}
	if m.cost != nil {
		fields = append(fields, stepexecution.FieldCost)
	}
	if m.attempts != nil {
		fields = append(fields, stepexecution.FieldAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, stepexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepexecution.FieldJobID:
		return m.JobID()
	case stepexecution.FieldStepName:
		return m.StepName()
	case stepexecution.FieldStepOrder:
		return m.StepOrder()
	case stepexecution.FieldPhaseRank:
		return m.PhaseRank()
	case stepexecution.FieldStatus:
		return m.Status()
	case stepexecution.FieldStartedAt:
		return m.StartedAt()
	case stepexecution.FieldCompletedAt:
		return m.CompletedAt()
	case stepexecution.FieldDurationMs:
		return m.DurationMs()
	case stepexecution.FieldInputText:
		return m.InputText()
	case stepexecution.FieldOutputText:
		return m.OutputText()
	case stepexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case stepexecution.FieldModelUsed:
		return m.ModelUsed()
	case stepexecution.FieldInputTokens:
		return m.InputTokens()
	case stepexecution.FieldOutputTokens:
		return m.OutputTokens()
	case stepexecution.FieldCost:
		return m.Cost()
	case stepexecution.FieldAttempts:
		return m.Attempts()
	case stepexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepexecution.FieldJobID:
		return m.OldJobID(ctx)
	case stepexecution.FieldStepName:
		return m.OldStepName(ctx)
	case stepexecution.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case stepexecution.FieldPhaseRank:
		return m.OldPhaseRank(ctx)
	case stepexecution.FieldStatus:
		return m.OldStatus(ctx)
	case stepexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stepexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case stepexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stepexecution.FieldInputText:
		return m.OldInputText(ctx)
	case stepexecution.FieldOutputText:
		return m.OldOutputText(ctx)
	case stepexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stepexecution.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case stepexecution.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case stepexecution.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case stepexecution.FieldCost:
		return m.OldCost(ctx)
	case stepexecution.FieldAttempts:
		return m.OldAttempts(ctx)
	case stepexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepexecution.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case stepexecution.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case stepexecution.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case stepexecution.FieldPhaseRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseRank(v)
		return nil
	case stepexecution.FieldStatus:
		v, ok := value.(stepexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stepexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stepexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case stepexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stepexecution.FieldInputText:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputText(v)
		return nil
	case stepexecution.FieldOutputText:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputText(v)
		return nil
	case stepexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stepexecution.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case stepexecution.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case stepexecution.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case stepexecution.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case stepexecution.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case stepexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, stepexecution.FieldStepOrder)
	}
	if m.addphase_rank != nil {
		fields = append(fields, stepexecution.FieldPhaseRank)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stepexecution.FieldDurationMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, stepexecution.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, stepexecution.FieldOutputTokens)
	}
	if m.addcost != nil {
		fields = append(fields, stepexecution.FieldCost)
	}
	if m.addattempts != nil {
		fields = append(fields, stepexecution.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepexecution.FieldStepOrder:
		return m.AddedStepOrder()
	case stepexecution.FieldPhaseRank:
		return m.AddedPhaseRank()
	case stepexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case stepexecution.FieldInputTokens:
		return m.AddedInputTokens()
	case stepexecution.FieldOutputTokens:
		return m.AddedOutputTokens()
	case stepexecution.FieldCost:
		return m.AddedCost()
	case stepexecution.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepexecution.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case stepexecution.FieldPhaseRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhaseRank(v)
		return nil
	case stepexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case stepexecution.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case stepexecution.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case stepexecution.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case stepexecution.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown StepExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepexecution.FieldStartedAt) {
		fields = append(fields, stepexecution.FieldStartedAt)
	}
	if m.FieldCleared(stepexecution.FieldCompletedAt) {
		fields = append(fields, stepexecution.FieldCompletedAt)
	}
	if m.FieldCleared(stepexecution.FieldDurationMs) {
		fields = append(fields, stepexecution.FieldDurationMs)
	}
	if m.FieldCleared(stepexecution.FieldInputText) {
		fields = append(fields, stepexecution.FieldInputText)
	}
	if m.FieldCleared(stepexecution.FieldOutputText) {
		fields = append(fields, stepexecution.FieldOutputText)
	}
	if m.FieldCleared(stepexecution.FieldErrorMessage) {
		fields = append(fields, stepexecution.FieldErrorMessage)
	}
	if m.FieldCleared(stepexecution.FieldModelUsed) {
		fields = append(fields, stepexecution.FieldModelUsed)
	}
	if m.FieldCleared(stepexecution.FieldInputTokens) {
		fields = append(fields, stepexecution.FieldInputTokens)
	}
	if m.FieldCleared(stepexecution.FieldOutputTokens) {
		fields = append(fields, stepexecution.FieldOutputTokens)
	}
	if m.FieldCleared(stepexecution.FieldCost) {
		fields = append(fields, stepexecution.FieldCost)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepExecutionMutation) ClearField(name string) error {
	switch name {
	case stepexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case stepexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case stepexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case stepexecution.FieldInputText:
		m.ClearInputText()
		return nil
	case stepexecution.FieldOutputText:
		m.ClearOutputText()
		return nil
	case stepexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stepexecution.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	case stepexecution.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case stepexecution.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case stepexecution.FieldCost:
		m.ClearCost()
		return nil
	}
	return fmt.Errorf("unknown StepExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepExecutionMutation) ResetField(name string) error {
	switch name {
	case stepexecution.FieldJobID:
		m.ResetJobID()
		return nil
	case stepexecution.FieldStepName:
		m.ResetStepName()
		return nil
	case stepexecution.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case stepexecution.FieldPhaseRank:
		m.ResetPhaseRank()
		return nil
	case stepexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case stepexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stepexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case stepexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stepexecution.FieldInputText:
		m.ResetInputText()
		return nil
	case stepexecution.FieldOutputText:
		m.ResetOutputText()
		return nil
	case stepexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stepexecution.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case stepexecution.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case stepexecution.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case stepexecution.FieldCost:
		m.ResetCost()
		return nil
	case stepexecution.FieldAttempts:
		m.ResetAttempts()
		return nil
	case stepexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StepExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, stepexecution.EdgeJob)
	}
	if m.ai_interactions != nil {
		edges = append(edges, stepexecution.EdgeAiInteractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stepexecution.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case stepexecution.EdgeAiInteractions:
		ids := make([]ent.Value, 0, len(m.ai_interactions))
		for id := range m.ai_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedai_interactions != nil {
		edges = append(edges, stepexecution.EdgeAiInteractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stepexecution.EdgeAiInteractions:
		ids := make([]ent.Value, 0, len(m.removedai_interactions))
		for id := range m.removedai_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, stepexecution.EdgeJob)
	}
	if m.clearedai_interactions {
		edges = append(edges, stepexecution.EdgeAiInteractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stepexecution.EdgeJob:
		return m.clearedjob
	case stepexecution.EdgeAiInteractions:
		return m.clearedai_interactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stepexecution.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown StepExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stepexecution.EdgeJob:
		m.ResetJob()
		return nil
	case stepexecution.EdgeAiInteractions:
		m.ResetAiInteractions()
		return nil
	}
	return fmt.Errorf("unknown StepExecution edge %s", name)
}

// SystemSettingMutation represents an operation that mutates the SystemSetting nodes in the graph.
type SystemSettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *string
	is_encrypted  *bool
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SystemSetting, error)
	predicates    []predicate.SystemSetting
}

var _ ent.Mutation = (*SystemSettingMutation)(nil)

// systemsettingOption allows management of the mutation configuration using functional options.
type systemsettingOption func(*SystemSettingMutation)

// newSystemSettingMutation creates new mutation for the SystemSetting entity.
func newSystemSettingMutation(c config, op Op, opts ...systemsettingOption) *SystemSettingMutation {
	m := &SystemSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemSettingID sets the ID field of the mutation.
func withSystemSettingID(id int) systemsettingOption {
	return func(m *SystemSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemSetting
		)
		m.oldValue = func(ctx context.Context) (*SystemSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemSetting sets the old SystemSetting of the mutation.
func withSystemSetting(node *SystemSetting) systemsettingOption {
	return func(m *SystemSettingMutation) {
		m.oldValue = func(context.Context) (*SystemSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemSettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemSettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SystemSettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SystemSettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SystemSettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SystemSettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SystemSettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SystemSettingMutation) ResetValue() {
	m.value = nil
}

// SetIsEncrypted sets the "is_encrypted" field.
func (m *SystemSettingMutation) SetIsEncrypted(b bool) {
	m.is_encrypted = &b
}

// IsEncrypted returns the value of the "is_encrypted" field in the mutation.
func (m *SystemSettingMutation) IsEncrypted() (r bool, exists bool) {
	v := m.is_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEncrypted returns the old "is_encrypted" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldIsEncrypted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEncrypted: %w", err)
	}
	return oldValue.IsEncrypted, nil
}

// ResetIsEncrypted resets all changes to the "is_encrypted" field.
func (m *SystemSettingMutation) ResetIsEncrypted() {
	m.is_encrypted = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SystemSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SystemSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SystemSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SystemSettingMutation builder.
func (m *SystemSettingMutation) Where(ps ...predicate.SystemSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemSetting).
func (m *SystemSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemSettingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.key != nil {
		fields = append(fields, systemsetting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, systemsetting.FieldValue)
	}
	if m.is_encrypted != nil {
		fields = append(fields, systemsetting.FieldIsEncrypted)
	}
	if m.updated_at != nil {
		fields = append(fields, systemsetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemsetting.FieldKey:
		return m.Key()
	case systemsetting.FieldValue:
		return m.Value()
	case systemsetting.FieldIsEncrypted:
		return m.IsEncrypted()
	case systemsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemsetting.FieldKey:
		return m.OldKey(ctx)
	case systemsetting.FieldValue:
		return m.OldValue(ctx)
	case systemsetting.FieldIsEncrypted:
		return m.OldIsEncrypted(ctx)
	case systemsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemsetting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case systemsetting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case systemsetting.FieldIsEncrypted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEncrypted(v)
		return nil
	case systemsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SystemSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemSettingMutation) ResetField(name string) error {
	switch name {
	case systemsetting.FieldKey:
		m.ResetKey()
		return nil
	case systemsetting.FieldValue:
		m.ResetValue()
		return nil
	case systemsetting.FieldIsEncrypted:
		m.ResetIsEncrypted()
		return nil
	case systemsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SystemSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SystemSetting edge %s", name)
}
