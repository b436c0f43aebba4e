// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// AIInteractionLogCreate is the builder for creating a AIInteractionLog entity.
type AIInteractionLogCreate struct {
	config
	mutation *AIInteractionLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *AIInteractionLogCreate) SetJobID(v string) *AIInteractionLogCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStepExecutionID sets the "step_execution_id" field.
func (_c *AIInteractionLogCreate) SetStepExecutionID(v string) *AIInteractionLogCreate {
	_c.mutation.SetStepExecutionID(v)
	return _c
}

// SetNillableStepExecutionID sets the "step_execution_id" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableStepExecutionID(v *string) *AIInteractionLogCreate {
	if v != nil {
		_c.SetStepExecutionID(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *AIInteractionLogCreate) SetModelName(v string) *AIInteractionLogCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AIInteractionLogCreate) SetInputTokens(v int) *AIInteractionLogCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableInputTokens(v *int) *AIInteractionLogCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AIInteractionLogCreate) SetOutputTokens(v int) *AIInteractionLogCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableOutputTokens(v *int) *AIInteractionLogCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *AIInteractionLogCreate) SetTotalTokens(v int) *AIInteractionLogCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableTotalTokens(v *int) *AIInteractionLogCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *AIInteractionLogCreate) SetCost(v float64) *AIInteractionLogCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableCost(v *float64) *AIInteractionLogCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *AIInteractionLogCreate) SetLatencyMs(v int64) *AIInteractionLogCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableLatencyMs(v *int64) *AIInteractionLogCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AIInteractionLogCreate) SetSuccess(v bool) *AIInteractionLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *AIInteractionLogCreate) SetErrorCode(v string) *AIInteractionLogCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableErrorCode(v *string) *AIInteractionLogCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetEstimatedTokens sets the "estimated_tokens" field.
func (_c *AIInteractionLogCreate) SetEstimatedTokens(v bool) *AIInteractionLogCreate {
	_c.mutation.SetEstimatedTokens(v)
	return _c
}

// SetNillableEstimatedTokens sets the "estimated_tokens" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableEstimatedTokens(v *bool) *AIInteractionLogCreate {
	if v != nil {
		_c.SetEstimatedTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AIInteractionLogCreate) SetCreatedAt(v time.Time) *AIInteractionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AIInteractionLogCreate) SetNillableCreatedAt(v *time.Time) *AIInteractionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *AIInteractionLogCreate) SetJob(v *Job) *AIInteractionLogCreate {
	return _c.SetJobID(v.ID)
}

// SetStepExecution sets the "step_execution" edge to the StepExecution entity.
func (_c *AIInteractionLogCreate) SetStepExecution(v *StepExecution) *AIInteractionLogCreate {
	return _c.SetStepExecutionID(v.ID)
}

// Mutation returns the AIInteractionLogMutation object of the builder.
func (_c *AIInteractionLogCreate) Mutation() *AIInteractionLogMutation {
	return _c.mutation
}

// Save creates the AIInteractionLog in the database.
func (_c *AIInteractionLogCreate) Save(ctx context.Context) (*AIInteractionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AIInteractionLogCreate) SaveX(ctx context.Context) *AIInteractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIInteractionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIInteractionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AIInteractionLogCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := aiinteractionlog.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := aiinteractionlog.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := aiinteractionlog.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := aiinteractionlog.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := aiinteractionlog.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.EstimatedTokens(); !ok {
		v := aiinteractionlog.DefaultEstimatedTokens
		_c.mutation.SetEstimatedTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := aiinteractionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AIInteractionLogCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "AIInteractionLog.job_id"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "AIInteractionLog.model_name"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "AIInteractionLog.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "AIInteractionLog.output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "AIInteractionLog.total_tokens"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "AIInteractionLog.cost"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "AIInteractionLog.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AIInteractionLog.success"`)}
	}
	if _, ok := _c.mutation.EstimatedTokens(); !ok {
		return &ValidationError{Name: "estimated_tokens", err: errors.New(`ent: missing required field "AIInteractionLog.estimated_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AIInteractionLog.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "AIInteractionLog.job"`)}
	}
	return nil
}

func (_c *AIInteractionLogCreate) sqlSave(ctx context.Context) (*AIInteractionLog, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AIInteractionLogCreate) createSpec() (*AIInteractionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AIInteractionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aiinteractionlog.Table, sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(aiinteractionlog.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(aiinteractionlog.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(aiinteractionlog.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(aiinteractionlog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(aiinteractionlog.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.EstimatedTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldEstimatedTokens, field.TypeBool, value)
		_node.EstimatedTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(aiinteractionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   aiinteractionlog.JobTable,
			Columns: []string{aiinteractionlog.JobColumn},
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
	if nodes := _c.mutation.StepExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   aiinteractionlog.StepExecutionTable,
			Columns: []string{aiinteractionlog.StepExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepExecutionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AIInteractionLog.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AIInteractionLogUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *AIInteractionLogCreate) OnConflict(opts ...sql.ConflictOption) *AIInteractionLogUpsertOne {
	_c.conflict = opts
	return &AIInteractionLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AIInteractionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AIInteractionLogCreate) OnConflictColumns(columns ...string) *AIInteractionLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AIInteractionLogUpsertOne{
		create: _c,
	}
}

type (
	// AIInteractionLogUpsertOne is the builder for "upsert"-ing
	//  one AIInteractionLog node.
	AIInteractionLogUpsertOne struct {
		create *AIInteractionLogCreate
	}

	// AIInteractionLogUpsert is the "OnConflict" setter.
	AIInteractionLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepExecutionID sets the "step_execution_id" field.
func (u *AIInteractionLogUpsert) SetStepExecutionID(v string) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldStepExecutionID, v)
	return u
}

// UpdateStepExecutionID sets the "step_execution_id" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateStepExecutionID() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldStepExecutionID)
	return u
}

// ClearStepExecutionID clears the value of the "step_execution_id" field.
func (u *AIInteractionLogUpsert) ClearStepExecutionID() *AIInteractionLogUpsert {
	u.SetNull(aiinteractionlog.FieldStepExecutionID)
	return u
}

// SetModelName sets the "model_name" field.
func (u *AIInteractionLogUpsert) SetModelName(v string) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateModelName() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldModelName)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *AIInteractionLogUpsert) SetInputTokens(v int) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateInputTokens() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AIInteractionLogUpsert) AddInputTokens(v int) *AIInteractionLogUpsert {
	u.Add(aiinteractionlog.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AIInteractionLogUpsert) SetOutputTokens(v int) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateOutputTokens() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AIInteractionLogUpsert) AddOutputTokens(v int) *AIInteractionLogUpsert {
	u.Add(aiinteractionlog.FieldOutputTokens, v)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *AIInteractionLogUpsert) SetTotalTokens(v int) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateTotalTokens() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *AIInteractionLogUpsert) AddTotalTokens(v int) *AIInteractionLogUpsert {
	u.Add(aiinteractionlog.FieldTotalTokens, v)
	return u
}

// SetCost sets the "cost" field.
func (u *AIInteractionLogUpsert) SetCost(v float64) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldCost, v)
	return u
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateCost() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldCost)
	return u
}

// AddCost adds v to the "cost" field.
func (u *AIInteractionLogUpsert) AddCost(v float64) *AIInteractionLogUpsert {
	u.Add(aiinteractionlog.FieldCost, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AIInteractionLogUpsert) SetLatencyMs(v int64) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateLatencyMs() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AIInteractionLogUpsert) AddLatencyMs(v int64) *AIInteractionLogUpsert {
	u.Add(aiinteractionlog.FieldLatencyMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *AIInteractionLogUpsert) SetSuccess(v bool) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateSuccess() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldSuccess)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *AIInteractionLogUpsert) SetErrorCode(v string) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateErrorCode() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *AIInteractionLogUpsert) ClearErrorCode() *AIInteractionLogUpsert {
	u.SetNull(aiinteractionlog.FieldErrorCode)
	return u
}

// SetEstimatedTokens sets the "estimated_tokens" field.
func (u *AIInteractionLogUpsert) SetEstimatedTokens(v bool) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldEstimatedTokens, v)
	return u
}

// UpdateEstimatedTokens sets the "estimated_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateEstimatedTokens() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldEstimatedTokens)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AIInteractionLogUpsert) SetCreatedAt(v time.Time) *AIInteractionLogUpsert {
	u.Set(aiinteractionlog.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AIInteractionLogUpsert) UpdateCreatedAt() *AIInteractionLogUpsert {
	u.SetExcluded(aiinteractionlog.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AIInteractionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AIInteractionLogUpsertOne) UpdateNewValues() *AIInteractionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(aiinteractionlog.FieldJobID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AIInteractionLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AIInteractionLogUpsertOne) Ignore() *AIInteractionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AIInteractionLogUpsertOne) DoNothing() *AIInteractionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AIInteractionLogCreate.OnConflict
// documentation for more info.
func (u *AIInteractionLogUpsertOne) Update(set func(*AIInteractionLogUpsert)) *AIInteractionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AIInteractionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepExecutionID sets the "step_execution_id" field.
func (u *AIInteractionLogUpsertOne) SetStepExecutionID(v string) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetStepExecutionID(v)
	})
}

// UpdateStepExecutionID sets the "step_execution_id" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateStepExecutionID() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateStepExecutionID()
	})
}

// ClearStepExecutionID clears the value of the "step_execution_id" field.
func (u *AIInteractionLogUpsertOne) ClearStepExecutionID() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.ClearStepExecutionID()
	})
}

// SetModelName sets the "model_name" field.
func (u *AIInteractionLogUpsertOne) SetModelName(v string) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateModelName() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateModelName()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *AIInteractionLogUpsertOne) SetInputTokens(v int) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AIInteractionLogUpsertOne) AddInputTokens(v int) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateInputTokens() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AIInteractionLogUpsertOne) SetOutputTokens(v int) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AIInteractionLogUpsertOne) AddOutputTokens(v int) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateOutputTokens() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *AIInteractionLogUpsertOne) SetTotalTokens(v int) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *AIInteractionLogUpsertOne) AddTotalTokens(v int) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateTotalTokens() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetCost sets the "cost" field.
func (u *AIInteractionLogUpsertOne) SetCost(v float64) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *AIInteractionLogUpsertOne) AddCost(v float64) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateCost() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateCost()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AIInteractionLogUpsertOne) SetLatencyMs(v int64) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AIInteractionLogUpsertOne) AddLatencyMs(v int64) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateLatencyMs() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *AIInteractionLogUpsertOne) SetSuccess(v bool) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateSuccess() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *AIInteractionLogUpsertOne) SetErrorCode(v string) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateErrorCode() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *AIInteractionLogUpsertOne) ClearErrorCode() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.ClearErrorCode()
	})
}

// SetEstimatedTokens sets the "estimated_tokens" field.
func (u *AIInteractionLogUpsertOne) SetEstimatedTokens(v bool) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetEstimatedTokens(v)
	})
}

// UpdateEstimatedTokens sets the "estimated_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateEstimatedTokens() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateEstimatedTokens()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AIInteractionLogUpsertOne) SetCreatedAt(v time.Time) *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AIInteractionLogUpsertOne) UpdateCreatedAt() *AIInteractionLogUpsertOne {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AIInteractionLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AIInteractionLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AIInteractionLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AIInteractionLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AIInteractionLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AIInteractionLogCreateBulk is the builder for creating many AIInteractionLog entities in bulk.
type AIInteractionLogCreateBulk struct {
	config
	err      error
	builders []*AIInteractionLogCreate
	conflict []sql.ConflictOption
}

// Save creates the AIInteractionLog entities in the database.
func (_c *AIInteractionLogCreateBulk) Save(ctx context.Context) ([]*AIInteractionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AIInteractionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AIInteractionLogMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AIInteractionLogCreateBulk) SaveX(ctx context.Context) []*AIInteractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIInteractionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIInteractionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AIInteractionLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AIInteractionLogUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *AIInteractionLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *AIInteractionLogUpsertBulk {
	_c.conflict = opts
	return &AIInteractionLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AIInteractionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AIInteractionLogCreateBulk) OnConflictColumns(columns ...string) *AIInteractionLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AIInteractionLogUpsertBulk{
		create: _c,
	}
}

// AIInteractionLogUpsertBulk is the builder for "upsert"-ing
// a bulk of AIInteractionLog nodes.
type AIInteractionLogUpsertBulk struct {
	create *AIInteractionLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AIInteractionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AIInteractionLogUpsertBulk) UpdateNewValues() *AIInteractionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(aiinteractionlog.FieldJobID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AIInteractionLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AIInteractionLogUpsertBulk) Ignore() *AIInteractionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AIInteractionLogUpsertBulk) DoNothing() *AIInteractionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AIInteractionLogCreateBulk.OnConflict
// documentation for more info.
func (u *AIInteractionLogUpsertBulk) Update(set func(*AIInteractionLogUpsert)) *AIInteractionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AIInteractionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepExecutionID sets the "step_execution_id" field.
func (u *AIInteractionLogUpsertBulk) SetStepExecutionID(v string) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetStepExecutionID(v)
	})
}

// UpdateStepExecutionID sets the "step_execution_id" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateStepExecutionID() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateStepExecutionID()
	})
}

// ClearStepExecutionID clears the value of the "step_execution_id" field.
func (u *AIInteractionLogUpsertBulk) ClearStepExecutionID() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.ClearStepExecutionID()
	})
}

// SetModelName sets the "model_name" field.
func (u *AIInteractionLogUpsertBulk) SetModelName(v string) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateModelName() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateModelName()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *AIInteractionLogUpsertBulk) SetInputTokens(v int) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AIInteractionLogUpsertBulk) AddInputTokens(v int) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateInputTokens() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AIInteractionLogUpsertBulk) SetOutputTokens(v int) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AIInteractionLogUpsertBulk) AddOutputTokens(v int) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateOutputTokens() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *AIInteractionLogUpsertBulk) SetTotalTokens(v int) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *AIInteractionLogUpsertBulk) AddTotalTokens(v int) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateTotalTokens() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetCost sets the "cost" field.
func (u *AIInteractionLogUpsertBulk) SetCost(v float64) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *AIInteractionLogUpsertBulk) AddCost(v float64) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateCost() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateCost()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AIInteractionLogUpsertBulk) SetLatencyMs(v int64) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AIInteractionLogUpsertBulk) AddLatencyMs(v int64) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateLatencyMs() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *AIInteractionLogUpsertBulk) SetSuccess(v bool) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateSuccess() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *AIInteractionLogUpsertBulk) SetErrorCode(v string) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateErrorCode() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *AIInteractionLogUpsertBulk) ClearErrorCode() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.ClearErrorCode()
	})
}

// SetEstimatedTokens sets the "estimated_tokens" field.
func (u *AIInteractionLogUpsertBulk) SetEstimatedTokens(v bool) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetEstimatedTokens(v)
	})
}

// UpdateEstimatedTokens sets the "estimated_tokens" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateEstimatedTokens() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateEstimatedTokens()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AIInteractionLogUpsertBulk) SetCreatedAt(v time.Time) *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AIInteractionLogUpsertBulk) UpdateCreatedAt() *AIInteractionLogUpsertBulk {
	return u.Update(func(s *AIInteractionLogUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AIInteractionLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AIInteractionLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AIInteractionLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AIInteractionLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
