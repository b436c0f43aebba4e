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
	"github.com/klartext-health/befund/ent/predicate"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// AIInteractionLogUpdate is the builder for updating AIInteractionLog entities.
type AIInteractionLogUpdate struct {
	config
	hooks    []Hook
	mutation *AIInteractionLogMutation
}

// Where appends a list predicates to the AIInteractionLogUpdate builder.
func (_u *AIInteractionLogUpdate) Where(ps ...predicate.AIInteractionLog) *AIInteractionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepExecutionID sets the "step_execution_id" field.
func (_u *AIInteractionLogUpdate) SetStepExecutionID(v string) *AIInteractionLogUpdate {
	_u.mutation.SetStepExecutionID(v)
	return _u
}

// SetNillableStepExecutionID sets the "step_execution_id" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableStepExecutionID(v *string) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetStepExecutionID(*v)
	}
	return _u
}

// ClearStepExecutionID clears the value of the "step_execution_id" field.
func (_u *AIInteractionLogUpdate) ClearStepExecutionID() *AIInteractionLogUpdate {
	_u.mutation.ClearStepExecutionID()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *AIInteractionLogUpdate) SetModelName(v string) *AIInteractionLogUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableModelName(v *string) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AIInteractionLogUpdate) SetInputTokens(v int) *AIInteractionLogUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableInputTokens(v *int) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AIInteractionLogUpdate) AddInputTokens(v int) *AIInteractionLogUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AIInteractionLogUpdate) SetOutputTokens(v int) *AIInteractionLogUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableOutputTokens(v *int) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AIInteractionLogUpdate) AddOutputTokens(v int) *AIInteractionLogUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *AIInteractionLogUpdate) SetTotalTokens(v int) *AIInteractionLogUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableTotalTokens(v *int) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *AIInteractionLogUpdate) AddTotalTokens(v int) *AIInteractionLogUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *AIInteractionLogUpdate) SetCost(v float64) *AIInteractionLogUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableCost(v *float64) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *AIInteractionLogUpdate) AddCost(v float64) *AIInteractionLogUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AIInteractionLogUpdate) SetLatencyMs(v int64) *AIInteractionLogUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableLatencyMs(v *int64) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AIInteractionLogUpdate) AddLatencyMs(v int64) *AIInteractionLogUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AIInteractionLogUpdate) SetSuccess(v bool) *AIInteractionLogUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableSuccess(v *bool) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *AIInteractionLogUpdate) SetErrorCode(v string) *AIInteractionLogUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableErrorCode(v *string) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *AIInteractionLogUpdate) ClearErrorCode() *AIInteractionLogUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetEstimatedTokens sets the "estimated_tokens" field.
func (_u *AIInteractionLogUpdate) SetEstimatedTokens(v bool) *AIInteractionLogUpdate {
	_u.mutation.SetEstimatedTokens(v)
	return _u
}

// SetNillableEstimatedTokens sets the "estimated_tokens" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableEstimatedTokens(v *bool) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetEstimatedTokens(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AIInteractionLogUpdate) SetCreatedAt(v time.Time) *AIInteractionLogUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AIInteractionLogUpdate) SetNillableCreatedAt(v *time.Time) *AIInteractionLogUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStepExecution sets the "step_execution" edge to the StepExecution entity.
func (_u *AIInteractionLogUpdate) SetStepExecution(v *StepExecution) *AIInteractionLogUpdate {
	return _u.SetStepExecutionID(v.ID)
}

// Mutation returns the AIInteractionLogMutation object of the builder.
func (_u *AIInteractionLogUpdate) Mutation() *AIInteractionLogMutation {
	return _u.mutation
}

// ClearStepExecution clears the "step_execution" edge to the StepExecution entity.
func (_u *AIInteractionLogUpdate) ClearStepExecution() *AIInteractionLogUpdate {
	_u.mutation.ClearStepExecution()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AIInteractionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIInteractionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AIInteractionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIInteractionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIInteractionLogUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AIInteractionLog.job"`)
	}
	return nil
}

func (_u *AIInteractionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiinteractionlog.Table, aiinteractionlog.Columns, sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(aiinteractionlog.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(aiinteractionlog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(aiinteractionlog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(aiinteractionlog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(aiinteractionlog.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(aiinteractionlog.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(aiinteractionlog.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(aiinteractionlog.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(aiinteractionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(aiinteractionlog.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(aiinteractionlog.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldEstimatedTokens, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(aiinteractionlog.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepExecutionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepExecutionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiinteractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AIInteractionLogUpdateOne is the builder for updating a single AIInteractionLog entity.
type AIInteractionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AIInteractionLogMutation
}

// SetStepExecutionID sets the "step_execution_id" field.
func (_u *AIInteractionLogUpdateOne) SetStepExecutionID(v string) *AIInteractionLogUpdateOne {
	_u.mutation.SetStepExecutionID(v)
	return _u
}

// SetNillableStepExecutionID sets the "step_execution_id" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableStepExecutionID(v *string) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetStepExecutionID(*v)
	}
	return _u
}

// ClearStepExecutionID clears the value of the "step_execution_id" field.
func (_u *AIInteractionLogUpdateOne) ClearStepExecutionID() *AIInteractionLogUpdateOne {
	_u.mutation.ClearStepExecutionID()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *AIInteractionLogUpdateOne) SetModelName(v string) *AIInteractionLogUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableModelName(v *string) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AIInteractionLogUpdateOne) SetInputTokens(v int) *AIInteractionLogUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableInputTokens(v *int) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AIInteractionLogUpdateOne) AddInputTokens(v int) *AIInteractionLogUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AIInteractionLogUpdateOne) SetOutputTokens(v int) *AIInteractionLogUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableOutputTokens(v *int) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AIInteractionLogUpdateOne) AddOutputTokens(v int) *AIInteractionLogUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *AIInteractionLogUpdateOne) SetTotalTokens(v int) *AIInteractionLogUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableTotalTokens(v *int) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *AIInteractionLogUpdateOne) AddTotalTokens(v int) *AIInteractionLogUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *AIInteractionLogUpdateOne) SetCost(v float64) *AIInteractionLogUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableCost(v *float64) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *AIInteractionLogUpdateOne) AddCost(v float64) *AIInteractionLogUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AIInteractionLogUpdateOne) SetLatencyMs(v int64) *AIInteractionLogUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableLatencyMs(v *int64) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AIInteractionLogUpdateOne) AddLatencyMs(v int64) *AIInteractionLogUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AIInteractionLogUpdateOne) SetSuccess(v bool) *AIInteractionLogUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableSuccess(v *bool) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *AIInteractionLogUpdateOne) SetErrorCode(v string) *AIInteractionLogUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableErrorCode(v *string) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *AIInteractionLogUpdateOne) ClearErrorCode() *AIInteractionLogUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetEstimatedTokens sets the "estimated_tokens" field.
func (_u *AIInteractionLogUpdateOne) SetEstimatedTokens(v bool) *AIInteractionLogUpdateOne {
	_u.mutation.SetEstimatedTokens(v)
	return _u
}

// SetNillableEstimatedTokens sets the "estimated_tokens" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableEstimatedTokens(v *bool) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetEstimatedTokens(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AIInteractionLogUpdateOne) SetCreatedAt(v time.Time) *AIInteractionLogUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AIInteractionLogUpdateOne) SetNillableCreatedAt(v *time.Time) *AIInteractionLogUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStepExecution sets the "step_execution" edge to the StepExecution entity.
func (_u *AIInteractionLogUpdateOne) SetStepExecution(v *StepExecution) *AIInteractionLogUpdateOne {
	return _u.SetStepExecutionID(v.ID)
}

// Mutation returns the AIInteractionLogMutation object of the builder.
func (_u *AIInteractionLogUpdateOne) Mutation() *AIInteractionLogMutation {
	return _u.mutation
}

// ClearStepExecution clears the "step_execution" edge to the StepExecution entity.
func (_u *AIInteractionLogUpdateOne) ClearStepExecution() *AIInteractionLogUpdateOne {
	_u.mutation.ClearStepExecution()
	return _u
}

// Where appends a list predicates to the AIInteractionLogUpdate builder.
func (_u *AIInteractionLogUpdateOne) Where(ps ...predicate.AIInteractionLog) *AIInteractionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AIInteractionLogUpdateOne) Select(field string, fields ...string) *AIInteractionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AIInteractionLog entity.
func (_u *AIInteractionLogUpdateOne) Save(ctx context.Context) (*AIInteractionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIInteractionLogUpdateOne) SaveX(ctx context.Context) *AIInteractionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AIInteractionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIInteractionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIInteractionLogUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AIInteractionLog.job"`)
	}
	return nil
}

func (_u *AIInteractionLogUpdateOne) sqlSave(ctx context.Context) (_node *AIInteractionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiinteractionlog.Table, aiinteractionlog.Columns, sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AIInteractionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aiinteractionlog.FieldID)
		for _, f := range fields {
			if !aiinteractionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aiinteractionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(aiinteractionlog.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(aiinteractionlog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(aiinteractionlog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(aiinteractionlog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(aiinteractionlog.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(aiinteractionlog.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(aiinteractionlog.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(aiinteractionlog.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(aiinteractionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(aiinteractionlog.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(aiinteractionlog.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedTokens(); ok {
		_spec.SetField(aiinteractionlog.FieldEstimatedTokens, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(aiinteractionlog.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepExecutionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepExecutionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AIInteractionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiinteractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
