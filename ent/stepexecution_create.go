// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// StepExecutionCreate is the builder for creating a StepExecution entity.
type StepExecutionCreate struct {
	config
	mutation *StepExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *StepExecutionCreate) SetJobID(v string) *StepExecutionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *StepExecutionCreate) SetStepName(v string) *StepExecutionCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *StepExecutionCreate) SetStepOrder(v int) *StepExecutionCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetPhaseRank sets the "phase_rank" field.
func (_c *StepExecutionCreate) SetPhaseRank(v int) *StepExecutionCreate {
	_c.mutation.SetPhaseRank(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepExecutionCreate) SetStatus(v stepexecution.Status) *StepExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableStatus(v *stepexecution.Status) *StepExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepExecutionCreate) SetStartedAt(v time.Time) *StepExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableStartedAt(v *time.Time) *StepExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepExecutionCreate) SetCompletedAt(v time.Time) *StepExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableCompletedAt(v *time.Time) *StepExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StepExecutionCreate) SetDurationMs(v int) *StepExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableDurationMs(v *int) *StepExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetInputText sets the "input_text" field.
func (_c *StepExecutionCreate) SetInputText(v []byte) *StepExecutionCreate {
	_c.mutation.SetInputText(v)
	return _c
}

// SetOutputText sets the "output_text" field.
func (_c *StepExecutionCreate) SetOutputText(v []byte) *StepExecutionCreate {
	_c.mutation.SetOutputText(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StepExecutionCreate) SetErrorMessage(v string) *StepExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableErrorMessage(v *string) *StepExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *StepExecutionCreate) SetModelUsed(v string) *StepExecutionCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableModelUsed(v *string) *StepExecutionCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *StepExecutionCreate) SetInputTokens(v int) *StepExecutionCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableInputTokens(v *int) *StepExecutionCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *StepExecutionCreate) SetOutputTokens(v int) *StepExecutionCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableOutputTokens(v *int) *StepExecutionCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *StepExecutionCreate) SetCost(v float64) *StepExecutionCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableCost(v *float64) *StepExecutionCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *StepExecutionCreate) SetAttempts(v int) *StepExecutionCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableAttempts(v *int) *StepExecutionCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepExecutionCreate) SetCreatedAt(v time.Time) *StepExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableCreatedAt(v *time.Time) *StepExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepExecutionCreate) SetID(v string) *StepExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *StepExecutionCreate) SetJob(v *Job) *StepExecutionCreate {
	return _c.SetJobID(v.ID)
}

// AddAiInteractionIDs adds the "ai_interactions" edge to the AIInteractionLog entity by IDs.
func (_c *StepExecutionCreate) AddAiInteractionIDs(ids ...int) *StepExecutionCreate {
	_c.mutation.AddAiInteractionIDs(ids...)
	return _c
}

// AddAiInteractions adds the "ai_interactions" edges to the AIInteractionLog entity.
func (_c *StepExecutionCreate) AddAiInteractions(v ...*AIInteractionLog) *StepExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAiInteractionIDs(ids...)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_c *StepExecutionCreate) Mutation() *StepExecutionMutation {
	return _c.mutation
}

// Save creates the StepExecution in the database.
func (_c *StepExecutionCreate) Save(ctx context.Context) (*StepExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepExecutionCreate) SaveX(ctx context.Context) *StepExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stepexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := stepexecution.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stepexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepExecutionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "StepExecution.job_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "StepExecution.step_name"`)}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "StepExecution.step_order"`)}
	}
	if _, ok := _c.mutation.PhaseRank(); !ok {
		return &ValidationError{Name: "phase_rank", err: errors.New(`ent: missing required field "StepExecution.phase_rank"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "StepExecution.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StepExecution.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "StepExecution.job"`)}
	}
	return nil
}

func (_c *StepExecutionCreate) sqlSave(ctx context.Context) (*StepExecution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StepExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepExecutionCreate) createSpec() (*StepExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &StepExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepexecution.Table, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(stepexecution.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(stepexecution.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.PhaseRank(); ok {
		_spec.SetField(stepexecution.FieldPhaseRank, field.TypeInt, value)
		_node.PhaseRank = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stepexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stepexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stepexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stepexecution.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.InputText(); ok {
		_spec.SetField(stepexecution.FieldInputText, field.TypeBytes, value)
		_node.InputText = value
	}
	if value, ok := _c.mutation.OutputText(); ok {
		_spec.SetField(stepexecution.FieldOutputText, field.TypeBytes, value)
		_node.OutputText = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stepexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(stepexecution.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(stepexecution.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(stepexecution.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(stepexecution.FieldCost, field.TypeFloat64, value)
		_node.Cost = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(stepexecution.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stepexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.JobTable,
			Columns: []string{stepexecution.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AiInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stepexecution.AiInteractionsTable,
			Columns: []string{stepexecution.AiInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepExecution.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepExecutionUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepExecutionCreate) OnConflict(opts ...sql.ConflictOption) *StepExecutionUpsertOne {
	_c.conflict = opts
	return &StepExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepExecutionCreate) OnConflictColumns(columns ...string) *StepExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepExecutionUpsertOne{
		create: _c,
	}
}

type (
	// StepExecutionUpsertOne is the builder for "upsert"-ing
	//  one StepExecution node.
	StepExecutionUpsertOne struct {
		create *StepExecutionCreate
	}

	// StepExecutionUpsert is the "OnConflict" setter.
	StepExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepName sets the "step_name" field.
func (u *StepExecutionUpsert) SetStepName(v string) *StepExecutionUpsert {
	u.Set(stepexecution.FieldStepName, v)
	return u
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateStepName() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldStepName)
	return u
}

// SetStepOrder sets the "step_order" field.
func (u *StepExecutionUpsert) SetStepOrder(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldStepOrder, v)
	return u
}

// UpdateStepOrder sets the "step_order" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateStepOrder() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldStepOrder)
	return u
}

// AddStepOrder adds v to the "step_order" field.
func (u *StepExecutionUpsert) AddStepOrder(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldStepOrder, v)
	return u
}

// SetPhaseRank sets the "phase_rank" field.
func (u *StepExecutionUpsert) SetPhaseRank(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldPhaseRank, v)
	return u
}

// UpdatePhaseRank sets the "phase_rank" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdatePhaseRank() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldPhaseRank)
	return u
}

// AddPhaseRank adds v to the "phase_rank" field.
func (u *StepExecutionUpsert) AddPhaseRank(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldPhaseRank, v)
	return u
}

// SetStatus sets the "status" field.
func (u *StepExecutionUpsert) SetStatus(v stepexecution.Status) *StepExecutionUpsert {
	u.Set(stepexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateStatus() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StepExecutionUpsert) SetStartedAt(v time.Time) *StepExecutionUpsert {
	u.Set(stepexecution.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateStartedAt() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepExecutionUpsert) ClearStartedAt() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepExecutionUpsert) SetCompletedAt(v time.Time) *StepExecutionUpsert {
	u.Set(stepexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateCompletedAt() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepExecutionUpsert) ClearCompletedAt() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepExecutionUpsert) SetDurationMs(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateDurationMs() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepExecutionUpsert) AddDurationMs(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepExecutionUpsert) ClearDurationMs() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldDurationMs)
	return u
}

// SetInputText sets the "input_text" field.
func (u *StepExecutionUpsert) SetInputText(v []byte) *StepExecutionUpsert {
	u.Set(stepexecution.FieldInputText, v)
	return u
}

// UpdateInputText sets the "input_text" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateInputText() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldInputText)
	return u
}

// ClearInputText clears the value of the "input_text" field.
func (u *StepExecutionUpsert) ClearInputText() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldInputText)
	return u
}

// SetOutputText sets the "output_text" field.
func (u *StepExecutionUpsert) SetOutputText(v []byte) *StepExecutionUpsert {
	u.Set(stepexecution.FieldOutputText, v)
	return u
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateOutputText() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldOutputText)
	return u
}

// ClearOutputText clears the value of the "output_text" field.
func (u *StepExecutionUpsert) ClearOutputText() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldOutputText)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StepExecutionUpsert) SetErrorMessage(v string) *StepExecutionUpsert {
	u.Set(stepexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateErrorMessage() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepExecutionUpsert) ClearErrorMessage() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldErrorMessage)
	return u
}

// SetModelUsed sets the "model_used" field.
func (u *StepExecutionUpsert) SetModelUsed(v string) *StepExecutionUpsert {
	u.Set(stepexecution.FieldModelUsed, v)
	return u
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateModelUsed() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldModelUsed)
	return u
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *StepExecutionUpsert) ClearModelUsed() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldModelUsed)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *StepExecutionUpsert) SetInputTokens(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateInputTokens() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *StepExecutionUpsert) AddInputTokens(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldInputTokens, v)
	return u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *StepExecutionUpsert) ClearInputTokens() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldInputTokens)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *StepExecutionUpsert) SetOutputTokens(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateOutputTokens() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *StepExecutionUpsert) AddOutputTokens(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldOutputTokens, v)
	return u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *StepExecutionUpsert) ClearOutputTokens() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldOutputTokens)
	return u
}

// SetCost sets the "cost" field.
func (u *StepExecutionUpsert) SetCost(v float64) *StepExecutionUpsert {
	u.Set(stepexecution.FieldCost, v)
	return u
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateCost() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldCost)
	return u
}

// AddCost adds v to the "cost" field.
func (u *StepExecutionUpsert) AddCost(v float64) *StepExecutionUpsert {
	u.Add(stepexecution.FieldCost, v)
	return u
}

// ClearCost clears the value of the "cost" field.
func (u *StepExecutionUpsert) ClearCost() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldCost)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *StepExecutionUpsert) SetAttempts(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateAttempts() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *StepExecutionUpsert) AddAttempts(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldAttempts, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *StepExecutionUpsert) SetCreatedAt(v time.Time) *StepExecutionUpsert {
	u.Set(stepexecution.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateCreatedAt() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stepexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepExecutionUpsertOne) UpdateNewValues() *StepExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stepexecution.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(stepexecution.FieldJobID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepExecutionUpsertOne) Ignore() *StepExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepExecutionUpsertOne) DoNothing() *StepExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepExecutionCreate.OnConflict
// documentation for more info.
func (u *StepExecutionUpsertOne) Update(set func(*StepExecutionUpsert)) *StepExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepName sets the "step_name" field.
func (u *StepExecutionUpsertOne) SetStepName(v string) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStepName(v)
	})
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateStepName() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStepName()
	})
}

// SetStepOrder sets the "step_order" field.
func (u *StepExecutionUpsertOne) SetStepOrder(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStepOrder(v)
	})
}

// AddStepOrder adds v to the "step_order" field.
func (u *StepExecutionUpsertOne) AddStepOrder(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddStepOrder(v)
	})
}

// UpdateStepOrder sets the "step_order" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateStepOrder() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStepOrder()
	})
}

// SetPhaseRank sets the "phase_rank" field.
func (u *StepExecutionUpsertOne) SetPhaseRank(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetPhaseRank(v)
	})
}

// AddPhaseRank adds v to the "phase_rank" field.
func (u *StepExecutionUpsertOne) AddPhaseRank(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddPhaseRank(v)
	})
}

// UpdatePhaseRank sets the "phase_rank" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdatePhaseRank() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdatePhaseRank()
	})
}

// SetStatus sets the "status" field.
func (u *StepExecutionUpsertOne) SetStatus(v stepexecution.Status) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateStatus() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepExecutionUpsertOne) SetStartedAt(v time.Time) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateStartedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepExecutionUpsertOne) ClearStartedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepExecutionUpsertOne) SetCompletedAt(v time.Time) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateCompletedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepExecutionUpsertOne) ClearCompletedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepExecutionUpsertOne) SetDurationMs(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepExecutionUpsertOne) AddDurationMs(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateDurationMs() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepExecutionUpsertOne) ClearDurationMs() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearDurationMs()
	})
}

// SetInputText sets the "input_text" field.
func (u *StepExecutionUpsertOne) SetInputText(v []byte) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetInputText(v)
	})
}

// UpdateInputText sets the "input_text" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateInputText() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateInputText()
	})
}

// ClearInputText clears the value of the "input_text" field.
func (u *StepExecutionUpsertOne) ClearInputText() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearInputText()
	})
}

// SetOutputText sets the "output_text" field.
func (u *StepExecutionUpsertOne) SetOutputText(v []byte) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetOutputText(v)
	})
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateOutputText() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateOutputText()
	})
}

// ClearOutputText clears the value of the "output_text" field.
func (u *StepExecutionUpsertOne) ClearOutputText() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearOutputText()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StepExecutionUpsertOne) SetErrorMessage(v string) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateErrorMessage() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepExecutionUpsertOne) ClearErrorMessage() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetModelUsed sets the "model_used" field.
func (u *StepExecutionUpsertOne) SetModelUsed(v string) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetModelUsed(v)
	})
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateModelUsed() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateModelUsed()
	})
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *StepExecutionUpsertOne) ClearModelUsed() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearModelUsed()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *StepExecutionUpsertOne) SetInputTokens(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *StepExecutionUpsertOne) AddInputTokens(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateInputTokens() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateInputTokens()
	})
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *StepExecutionUpsertOne) ClearInputTokens() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *StepExecutionUpsertOne) SetOutputTokens(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *StepExecutionUpsertOne) AddOutputTokens(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateOutputTokens() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateOutputTokens()
	})
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *StepExecutionUpsertOne) ClearOutputTokens() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearOutputTokens()
	})
}

// SetCost sets the "cost" field.
func (u *StepExecutionUpsertOne) SetCost(v float64) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *StepExecutionUpsertOne) AddCost(v float64) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateCost() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCost()
	})
}

// ClearCost clears the value of the "cost" field.
func (u *StepExecutionUpsertOne) ClearCost() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearCost()
	})
}

// SetAttempts sets the "attempts" field.
func (u *StepExecutionUpsertOne) SetAttempts(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *StepExecutionUpsertOne) AddAttempts(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateAttempts() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateAttempts()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StepExecutionUpsertOne) SetCreatedAt(v time.Time) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateCreatedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *StepExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StepExecutionUpsertOne.ID is not supported by MySQL driver. Use StepExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepExecutionCreateBulk is the builder for creating many StepExecution entities in bulk.
type StepExecutionCreateBulk struct {
	config
	err      error
	builders []*StepExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the StepExecution entities in the database.
func (_c *StepExecutionCreateBulk) Save(ctx context.Context) ([]*StepExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StepExecutionCreateBulk) SaveX(ctx context.Context) []*StepExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepExecutionUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepExecutionUpsertBulk {
	_c.conflict = opts
	return &StepExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepExecutionCreateBulk) OnConflictColumns(columns ...string) *StepExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepExecutionUpsertBulk{
		create: _c,
	}
}

// StepExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of StepExecution nodes.
type StepExecutionUpsertBulk struct {
	create *StepExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stepexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepExecutionUpsertBulk) UpdateNewValues() *StepExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stepexecution.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(stepexecution.FieldJobID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepExecutionUpsertBulk) Ignore() *StepExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepExecutionUpsertBulk) DoNothing() *StepExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *StepExecutionUpsertBulk) Update(set func(*StepExecutionUpsert)) *StepExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepName sets the "step_name" field.
func (u *StepExecutionUpsertBulk) SetStepName(v string) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStepName(v)
	})
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateStepName() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStepName()
	})
}

// SetStepOrder sets the "step_order" field.
func (u *StepExecutionUpsertBulk) SetStepOrder(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStepOrder(v)
	})
}

// AddStepOrder adds v to the "step_order" field.
func (u *StepExecutionUpsertBulk) AddStepOrder(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddStepOrder(v)
	})
}

// UpdateStepOrder sets the "step_order" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateStepOrder() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStepOrder()
	})
}

// SetPhaseRank sets the "phase_rank" field.
func (u *StepExecutionUpsertBulk) SetPhaseRank(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetPhaseRank(v)
	})
}

// AddPhaseRank adds v to the "phase_rank" field.
func (u *StepExecutionUpsertBulk) AddPhaseRank(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddPhaseRank(v)
	})
}

// UpdatePhaseRank sets the "phase_rank" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdatePhaseRank() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdatePhaseRank()
	})
}

// SetStatus sets the "status" field.
func (u *StepExecutionUpsertBulk) SetStatus(v stepexecution.Status) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateStatus() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepExecutionUpsertBulk) SetStartedAt(v time.Time) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateStartedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepExecutionUpsertBulk) ClearStartedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepExecutionUpsertBulk) SetCompletedAt(v time.Time) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateCompletedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepExecutionUpsertBulk) ClearCompletedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepExecutionUpsertBulk) SetDurationMs(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepExecutionUpsertBulk) AddDurationMs(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateDurationMs() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepExecutionUpsertBulk) ClearDurationMs() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearDurationMs()
	})
}

// SetInputText sets the "input_text" field.
func (u *StepExecutionUpsertBulk) SetInputText(v []byte) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetInputText(v)
	})
}

// UpdateInputText sets the "input_text" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateInputText() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateInputText()
	})
}

// ClearInputText clears the value of the "input_text" field.
func (u *StepExecutionUpsertBulk) ClearInputText() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearInputText()
	})
}

// SetOutputText sets the "output_text" field.
func (u *StepExecutionUpsertBulk) SetOutputText(v []byte) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetOutputText(v)
	})
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateOutputText() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateOutputText()
	})
}

// ClearOutputText clears the value of the "output_text" field.
func (u *StepExecutionUpsertBulk) ClearOutputText() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearOutputText()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StepExecutionUpsertBulk) SetErrorMessage(v string) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateErrorMessage() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepExecutionUpsertBulk) ClearErrorMessage() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetModelUsed sets the "model_used" field.
func (u *StepExecutionUpsertBulk) SetModelUsed(v string) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetModelUsed(v)
	})
}

// UpdateModelUsed sets the "model_used" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateModelUsed() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateModelUsed()
	})
}

// ClearModelUsed clears the value of the "model_used" field.
func (u *StepExecutionUpsertBulk) ClearModelUsed() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearModelUsed()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *StepExecutionUpsertBulk) SetInputTokens(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *StepExecutionUpsertBulk) AddInputTokens(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateInputTokens() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateInputTokens()
	})
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *StepExecutionUpsertBulk) ClearInputTokens() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *StepExecutionUpsertBulk) SetOutputTokens(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *StepExecutionUpsertBulk) AddOutputTokens(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateOutputTokens() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateOutputTokens()
	})
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *StepExecutionUpsertBulk) ClearOutputTokens() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearOutputTokens()
	})
}

// SetCost sets the "cost" field.
func (u *StepExecutionUpsertBulk) SetCost(v float64) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *StepExecutionUpsertBulk) AddCost(v float64) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateCost() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCost()
	})
}

// ClearCost clears the value of the "cost" field.
func (u *StepExecutionUpsertBulk) ClearCost() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearCost()
	})
}

// SetAttempts sets the "attempts" field.
func (u *StepExecutionUpsertBulk) SetAttempts(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *StepExecutionUpsertBulk) AddAttempts(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateAttempts() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateAttempts()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StepExecutionUpsertBulk) SetCreatedAt(v time.Time) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateCreatedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *StepExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
