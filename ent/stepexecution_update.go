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

// StepExecutionUpdate is the builder for updating StepExecution entities.
type StepExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *StepExecutionMutation
}

// Where appends a list predicates to the StepExecutionUpdate builder.
func (_u *StepExecutionUpdate) Where(ps ...predicate.StepExecution) *StepExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *StepExecutionUpdate) SetStepName(v string) *StepExecutionUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStepName(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *StepExecutionUpdate) SetStepOrder(v int) *StepExecutionUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStepOrder(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *StepExecutionUpdate) AddStepOrder(v int) *StepExecutionUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetPhaseRank sets the "phase_rank" field.
func (_u *StepExecutionUpdate) SetPhaseRank(v int) *StepExecutionUpdate {
	_u.mutation.ResetPhaseRank()
	_u.mutation.SetPhaseRank(v)
	return _u
}

// SetNillablePhaseRank sets the "phase_rank" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillablePhaseRank(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetPhaseRank(*v)
	}
	return _u
}

// AddPhaseRank adds value to the "phase_rank" field.
func (_u *StepExecutionUpdate) AddPhaseRank(v int) *StepExecutionUpdate {
	_u.mutation.AddPhaseRank(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepExecutionUpdate) SetStatus(v stepexecution.Status) *StepExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStatus(v *stepexecution.Status) *StepExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepExecutionUpdate) SetStartedAt(v time.Time) *StepExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStartedAt(v *time.Time) *StepExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepExecutionUpdate) ClearStartedAt() *StepExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepExecutionUpdate) SetCompletedAt(v time.Time) *StepExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableCompletedAt(v *time.Time) *StepExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepExecutionUpdate) ClearCompletedAt() *StepExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StepExecutionUpdate) SetDurationMs(v int) *StepExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableDurationMs(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StepExecutionUpdate) AddDurationMs(v int) *StepExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StepExecutionUpdate) ClearDurationMs() *StepExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *StepExecutionUpdate) SetInputText(v []byte) *StepExecutionUpdate {
	_u.mutation.SetInputText(v)
	return _u
}

// ClearInputText clears the value of the "input_text" field.
func (_u *StepExecutionUpdate) ClearInputText() *StepExecutionUpdate {
	_u.mutation.ClearInputText()
	return _u
}

// SetOutputText sets the "output_text" field.
func (_u *StepExecutionUpdate) SetOutputText(v []byte) *StepExecutionUpdate {
	_u.mutation.SetOutputText(v)
	return _u
}

// ClearOutputText clears the value of the "output_text" field.
func (_u *StepExecutionUpdate) ClearOutputText() *StepExecutionUpdate {
	_u.mutation.ClearOutputText()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepExecutionUpdate) SetErrorMessage(v string) *StepExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableErrorMessage(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepExecutionUpdate) ClearErrorMessage() *StepExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *StepExecutionUpdate) SetModelUsed(v string) *StepExecutionUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableModelUsed(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *StepExecutionUpdate) ClearModelUsed() *StepExecutionUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *StepExecutionUpdate) SetInputTokens(v int) *StepExecutionUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableInputTokens(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *StepExecutionUpdate) AddInputTokens(v int) *StepExecutionUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *StepExecutionUpdate) ClearInputTokens() *StepExecutionUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *StepExecutionUpdate) SetOutputTokens(v int) *StepExecutionUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableOutputTokens(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *StepExecutionUpdate) AddOutputTokens(v int) *StepExecutionUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *StepExecutionUpdate) ClearOutputTokens() *StepExecutionUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetCost sets the "cost" field.
func (_u *StepExecutionUpdate) SetCost(v float64) *StepExecutionUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableCost(v *float64) *StepExecutionUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *StepExecutionUpdate) AddCost(v float64) *StepExecutionUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *StepExecutionUpdate) ClearCost() *StepExecutionUpdate {
	_u.mutation.ClearCost()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepExecutionUpdate) SetAttempts(v int) *StepExecutionUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableAttempts(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepExecutionUpdate) AddAttempts(v int) *StepExecutionUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StepExecutionUpdate) SetCreatedAt(v time.Time) *StepExecutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableCreatedAt(v *time.Time) *StepExecutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddAiInteractionIDs adds the "ai_interactions" edge to the AIInteractionLog entity by IDs.
func (_u *StepExecutionUpdate) AddAiInteractionIDs(ids ...int) *StepExecutionUpdate {
	_u.mutation.AddAiInteractionIDs(ids...)
	return _u
}

// AddAiInteractions adds the "ai_interactions" edges to the AIInteractionLog entity.
func (_u *StepExecutionUpdate) AddAiInteractions(v ...*AIInteractionLog) *StepExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAiInteractionIDs(ids...)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_u *StepExecutionUpdate) Mutation() *StepExecutionMutation {
	return _u.mutation
}

// ClearAiInteractions clears all "ai_interactions" edges to the AIInteractionLog entity.
func (_u *StepExecutionUpdate) ClearAiInteractions() *StepExecutionUpdate {
	_u.mutation.ClearAiInteractions()
	return _u
}

// RemoveAiInteractionIDs removes the "ai_interactions" edge to AIInteractionLog entities by IDs.
func (_u *StepExecutionUpdate) RemoveAiInteractionIDs(ids ...int) *StepExecutionUpdate {
	_u.mutation.RemoveAiInteractionIDs(ids...)
	return _u
}

// RemoveAiInteractions removes "ai_interactions" edges to AIInteractionLog entities.
func (_u *StepExecutionUpdate) RemoveAiInteractions(v ...*AIInteractionLog) *StepExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAiInteractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepExecution.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepExecution.job"`)
	}
	return nil
}

func (_u *StepExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepexecution.Table, stepexecution.Columns, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(stepexecution.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(stepexecution.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(stepexecution.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhaseRank(); ok {
		_spec.SetField(stepexecution.FieldPhaseRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseRank(); ok {
		_spec.AddField(stepexecution.FieldPhaseRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stepexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stepexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stepexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stepexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stepexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stepexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(stepexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(stepexecution.FieldInputText, field.TypeBytes, value)
	}
	if _u.mutation.InputTextCleared() {
		_spec.ClearField(stepexecution.FieldInputText, field.TypeBytes)
	}
	if value, ok := _u.mutation.OutputText(); ok {
		_spec.SetField(stepexecution.FieldOutputText, field.TypeBytes, value)
	}
	if _u.mutation.OutputTextCleared() {
		_spec.ClearField(stepexecution.FieldOutputText, field.TypeBytes)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stepexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stepexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(stepexecution.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(stepexecution.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(stepexecution.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(stepexecution.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(stepexecution.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(stepexecution.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(stepexecution.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(stepexecution.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(stepexecution.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(stepexecution.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(stepexecution.FieldCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(stepexecution.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(stepexecution.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stepexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AiInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAiInteractionsIDs(); len(nodes) > 0 && !_u.mutation.AiInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AiInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepExecutionUpdateOne is the builder for updating a single StepExecution entity.
type StepExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepExecutionMutation
}

// SetStepName sets the "step_name" field.
func (_u *StepExecutionUpdateOne) SetStepName(v string) *StepExecutionUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStepName(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *StepExecutionUpdateOne) SetStepOrder(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStepOrder(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *StepExecutionUpdateOne) AddStepOrder(v int) *StepExecutionUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetPhaseRank sets the "phase_rank" field.
func (_u *StepExecutionUpdateOne) SetPhaseRank(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetPhaseRank()
	_u.mutation.SetPhaseRank(v)
	return _u
}

// SetNillablePhaseRank sets the "phase_rank" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillablePhaseRank(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetPhaseRank(*v)
	}
	return _u
}

// AddPhaseRank adds value to the "phase_rank" field.
func (_u *StepExecutionUpdateOne) AddPhaseRank(v int) *StepExecutionUpdateOne {
	_u.mutation.AddPhaseRank(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepExecutionUpdateOne) SetStatus(v stepexecution.Status) *StepExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStatus(v *stepexecution.Status) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepExecutionUpdateOne) SetStartedAt(v time.Time) *StepExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepExecutionUpdateOne) ClearStartedAt() *StepExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepExecutionUpdateOne) SetCompletedAt(v time.Time) *StepExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepExecutionUpdateOne) ClearCompletedAt() *StepExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StepExecutionUpdateOne) SetDurationMs(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableDurationMs(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StepExecutionUpdateOne) AddDurationMs(v int) *StepExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StepExecutionUpdateOne) ClearDurationMs() *StepExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *StepExecutionUpdateOne) SetInputText(v []byte) *StepExecutionUpdateOne {
	_u.mutation.SetInputText(v)
	return _u
}

// ClearInputText clears the value of the "input_text" field.
func (_u *StepExecutionUpdateOne) ClearInputText() *StepExecutionUpdateOne {
	_u.mutation.ClearInputText()
	return _u
}

// SetOutputText sets the "output_text" field.
func (_u *StepExecutionUpdateOne) SetOutputText(v []byte) *StepExecutionUpdateOne {
	_u.mutation.SetOutputText(v)
	return _u
}

// ClearOutputText clears the value of the "output_text" field.
func (_u *StepExecutionUpdateOne) ClearOutputText() *StepExecutionUpdateOne {
	_u.mutation.ClearOutputText()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepExecutionUpdateOne) SetErrorMessage(v string) *StepExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableErrorMessage(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepExecutionUpdateOne) ClearErrorMessage() *StepExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *StepExecutionUpdateOne) SetModelUsed(v string) *StepExecutionUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableModelUsed(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *StepExecutionUpdateOne) ClearModelUsed() *StepExecutionUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *StepExecutionUpdateOne) SetInputTokens(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableInputTokens(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *StepExecutionUpdateOne) AddInputTokens(v int) *StepExecutionUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *StepExecutionUpdateOne) ClearInputTokens() *StepExecutionUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *StepExecutionUpdateOne) SetOutputTokens(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableOutputTokens(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *StepExecutionUpdateOne) AddOutputTokens(v int) *StepExecutionUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *StepExecutionUpdateOne) ClearOutputTokens() *StepExecutionUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetCost sets the "cost" field.
func (_u *StepExecutionUpdateOne) SetCost(v float64) *StepExecutionUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableCost(v *float64) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *StepExecutionUpdateOne) AddCost(v float64) *StepExecutionUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *StepExecutionUpdateOne) ClearCost() *StepExecutionUpdateOne {
	_u.mutation.ClearCost()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepExecutionUpdateOne) SetAttempts(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableAttempts(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepExecutionUpdateOne) AddAttempts(v int) *StepExecutionUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StepExecutionUpdateOne) SetCreatedAt(v time.Time) *StepExecutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableCreatedAt(v *time.Time) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddAiInteractionIDs adds the "ai_interactions" edge to the AIInteractionLog entity by IDs.
func (_u *StepExecutionUpdateOne) AddAiInteractionIDs(ids ...int) *StepExecutionUpdateOne {
	_u.mutation.AddAiInteractionIDs(ids...)
	return _u
}

// AddAiInteractions adds the "ai_interactions" edges to the AIInteractionLog entity.
func (_u *StepExecutionUpdateOne) AddAiInteractions(v ...*AIInteractionLog) *StepExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAiInteractionIDs(ids...)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_u *StepExecutionUpdateOne) Mutation() *StepExecutionMutation {
	return _u.mutation
}

// ClearAiInteractions clears all "ai_interactions" edges to the AIInteractionLog entity.
func (_u *StepExecutionUpdateOne) ClearAiInteractions() *StepExecutionUpdateOne {
	_u.mutation.ClearAiInteractions()
	return _u
}

// RemoveAiInteractionIDs removes the "ai_interactions" edge to AIInteractionLog entities by IDs.
func (_u *StepExecutionUpdateOne) RemoveAiInteractionIDs(ids ...int) *StepExecutionUpdateOne {
	_u.mutation.RemoveAiInteractionIDs(ids...)
	return _u
}

// RemoveAiInteractions removes "ai_interactions" edges to AIInteractionLog entities.
func (_u *StepExecutionUpdateOne) RemoveAiInteractions(v ...*AIInteractionLog) *StepExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAiInteractionIDs(ids...)
}

// Where appends a list predicates to the StepExecutionUpdate builder.
func (_u *StepExecutionUpdateOne) Where(ps ...predicate.StepExecution) *StepExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepExecutionUpdateOne) Select(field string, fields ...string) *StepExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepExecution entity.
func (_u *StepExecutionUpdateOne) Save(ctx context.Context) (*StepExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepExecutionUpdateOne) SaveX(ctx context.Context) *StepExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepExecution.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepExecution.job"`)
	}
	return nil
}

func (_u *StepExecutionUpdateOne) sqlSave(ctx context.Context) (_node *StepExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepexecution.Table, stepexecution.Columns, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepexecution.FieldID)
		for _, f := range fields {
			if !stepexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepexecution.FieldID {
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
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(stepexecution.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(stepexecution.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(stepexecution.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhaseRank(); ok {
		_spec.SetField(stepexecution.FieldPhaseRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseRank(); ok {
		_spec.AddField(stepexecution.FieldPhaseRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stepexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stepexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stepexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stepexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stepexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stepexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(stepexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(stepexecution.FieldInputText, field.TypeBytes, value)
	}
	if _u.mutation.InputTextCleared() {
		_spec.ClearField(stepexecution.FieldInputText, field.TypeBytes)
	}
	if value, ok := _u.mutation.OutputText(); ok {
		_spec.SetField(stepexecution.FieldOutputText, field.TypeBytes, value)
	}
	if _u.mutation.OutputTextCleared() {
		_spec.ClearField(stepexecution.FieldOutputText, field.TypeBytes)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stepexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stepexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(stepexecution.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(stepexecution.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(stepexecution.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(stepexecution.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(stepexecution.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(stepexecution.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(stepexecution.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(stepexecution.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(stepexecution.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(stepexecution.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(stepexecution.FieldCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(stepexecution.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(stepexecution.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stepexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AiInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAiInteractionsIDs(); len(nodes) > 0 && !_u.mutation.AiInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AiInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StepExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
