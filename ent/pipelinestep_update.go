// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/klartext-health/befund/ent/documentclass"
	"github.com/klartext-health/befund/ent/pipelinestep"
	"github.com/klartext-health/befund/ent/predicate"
)

// PipelineStepUpdate is the builder for updating PipelineStep entities.
type PipelineStepUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineStepMutation
}

// Where appends a list predicates to the PipelineStepUpdate builder.
func (_u *PipelineStepUpdate) Where(ps ...predicate.PipelineStep) *PipelineStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineStepUpdate) SetName(v string) *PipelineStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableName(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PipelineStepUpdate) SetDescription(v string) *PipelineStepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableDescription(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PipelineStepUpdate) ClearDescription() *PipelineStepUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *PipelineStepUpdate) SetSortOrder(v int) *PipelineStepUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableSortOrder(v *int) *PipelineStepUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *PipelineStepUpdate) AddSortOrder(v int) *PipelineStepUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetPostBranching sets the "post_branching" field.
func (_u *PipelineStepUpdate) SetPostBranching(v bool) *PipelineStepUpdate {
	_u.mutation.SetPostBranching(v)
	return _u
}

// SetNillablePostBranching sets the "post_branching" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillablePostBranching(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetPostBranching(*v)
	}
	return _u
}

// SetDocumentClassID sets the "document_class_id" field.
func (_u *PipelineStepUpdate) SetDocumentClassID(v int) *PipelineStepUpdate {
	_u.mutation.SetDocumentClassID(v)
	return _u
}

// SetNillableDocumentClassID sets the "document_class_id" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableDocumentClassID(v *int) *PipelineStepUpdate {
	if v != nil {
		_u.SetDocumentClassID(*v)
	}
	return _u
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (_u *PipelineStepUpdate) ClearDocumentClassID() *PipelineStepUpdate {
	_u.mutation.ClearDocumentClassID()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PipelineStepUpdate) SetEnabled(v bool) *PipelineStepUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableEnabled(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsBranchingStep sets the "is_branching_step" field.
func (_u *PipelineStepUpdate) SetIsBranchingStep(v bool) *PipelineStepUpdate {
	_u.mutation.SetIsBranchingStep(v)
	return _u
}

// SetNillableIsBranchingStep sets the "is_branching_step" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableIsBranchingStep(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetIsBranchingStep(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PipelineStepUpdate) SetModelName(v string) *PipelineStepUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableModelName(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *PipelineStepUpdate) SetTemperature(v float64) *PipelineStepUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableTemperature(v *float64) *PipelineStepUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *PipelineStepUpdate) AddTemperature(v float64) *PipelineStepUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *PipelineStepUpdate) SetMaxTokens(v int) *PipelineStepUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableMaxTokens(v *int) *PipelineStepUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *PipelineStepUpdate) AddMaxTokens(v int) *PipelineStepUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetPromptTemplate sets the "prompt_template" field.
func (_u *PipelineStepUpdate) SetPromptTemplate(v string) *PipelineStepUpdate {
	_u.mutation.SetPromptTemplate(v)
	return _u
}

// SetNillablePromptTemplate sets the "prompt_template" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillablePromptTemplate(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetPromptTemplate(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PipelineStepUpdate) SetSystemPrompt(v string) *PipelineStepUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableSystemPrompt(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *PipelineStepUpdate) ClearSystemPrompt() *PipelineStepUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetRequiredContextVariables sets the "required_context_variables" field.
func (_u *PipelineStepUpdate) SetRequiredContextVariables(v []string) *PipelineStepUpdate {
	_u.mutation.SetRequiredContextVariables(v)
	return _u
}

// AppendRequiredContextVariables appends value to the "required_context_variables" field.
func (_u *PipelineStepUpdate) AppendRequiredContextVariables(v []string) *PipelineStepUpdate {
	_u.mutation.AppendRequiredContextVariables(v)
	return _u
}

// ClearRequiredContextVariables clears the value of the "required_context_variables" field.
func (_u *PipelineStepUpdate) ClearRequiredContextVariables() *PipelineStepUpdate {
	_u.mutation.ClearRequiredContextVariables()
	return _u
}

// SetStopOnValues sets the "stop_on_values" field.
func (_u *PipelineStepUpdate) SetStopOnValues(v []string) *PipelineStepUpdate {
	_u.mutation.SetStopOnValues(v)
	return _u
}

// AppendStopOnValues appends value to the "stop_on_values" field.
func (_u *PipelineStepUpdate) AppendStopOnValues(v []string) *PipelineStepUpdate {
	_u.mutation.AppendStopOnValues(v)
	return _u
}

// ClearStopOnValues clears the value of the "stop_on_values" field.
func (_u *PipelineStepUpdate) ClearStopOnValues() *PipelineStepUpdate {
	_u.mutation.ClearStopOnValues()
	return _u
}

// SetAllowedContinueValues sets the "allowed_continue_values" field.
func (_u *PipelineStepUpdate) SetAllowedContinueValues(v []string) *PipelineStepUpdate {
	_u.mutation.SetAllowedContinueValues(v)
	return _u
}

// AppendAllowedContinueValues appends value to the "allowed_continue_values" field.
func (_u *PipelineStepUpdate) AppendAllowedContinueValues(v []string) *PipelineStepUpdate {
	_u.mutation.AppendAllowedContinueValues(v)
	return _u
}

// ClearAllowedContinueValues clears the value of the "allowed_continue_values" field.
func (_u *PipelineStepUpdate) ClearAllowedContinueValues() *PipelineStepUpdate {
	_u.mutation.ClearAllowedContinueValues()
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *PipelineStepUpdate) SetTerminationReason(v string) *PipelineStepUpdate {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableTerminationReason(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *PipelineStepUpdate) ClearTerminationReason() *PipelineStepUpdate {
	_u.mutation.ClearTerminationReason()
	return _u
}

// SetTerminationMessage sets the "termination_message" field.
func (_u *PipelineStepUpdate) SetTerminationMessage(v string) *PipelineStepUpdate {
	_u.mutation.SetTerminationMessage(v)
	return _u
}

// SetNillableTerminationMessage sets the "termination_message" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableTerminationMessage(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetTerminationMessage(*v)
	}
	return _u
}

// ClearTerminationMessage clears the value of the "termination_message" field.
func (_u *PipelineStepUpdate) ClearTerminationMessage() *PipelineStepUpdate {
	_u.mutation.ClearTerminationMessage()
	return _u
}

// SetRetryOnFailure sets the "retry_on_failure" field.
func (_u *PipelineStepUpdate) SetRetryOnFailure(v bool) *PipelineStepUpdate {
	_u.mutation.SetRetryOnFailure(v)
	return _u
}

// SetNillableRetryOnFailure sets the "retry_on_failure" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableRetryOnFailure(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetRetryOnFailure(*v)
	}
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *PipelineStepUpdate) SetMaxRetries(v int) *PipelineStepUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableMaxRetries(v *int) *PipelineStepUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *PipelineStepUpdate) AddMaxRetries(v int) *PipelineStepUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetUseOriginalText sets the "use_original_text" field.
func (_u *PipelineStepUpdate) SetUseOriginalText(v bool) *PipelineStepUpdate {
	_u.mutation.SetUseOriginalText(v)
	return _u
}

// SetNillableUseOriginalText sets the "use_original_text" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableUseOriginalText(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetUseOriginalText(*v)
	}
	return _u
}

// SetOutputFormat sets the "output_format" field.
func (_u *PipelineStepUpdate) SetOutputFormat(v pipelinestep.OutputFormat) *PipelineStepUpdate {
	_u.mutation.SetOutputFormat(v)
	return _u
}

// SetNillableOutputFormat sets the "output_format" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableOutputFormat(v *pipelinestep.OutputFormat) *PipelineStepUpdate {
	if v != nil {
		_u.SetOutputFormat(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PipelineStepUpdate) SetVersion(v int) *PipelineStepUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableVersion(v *int) *PipelineStepUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PipelineStepUpdate) AddVersion(v int) *PipelineStepUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineStepUpdate) SetCreatedAt(v time.Time) *PipelineStepUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableCreatedAt(v *time.Time) *PipelineStepUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineStepUpdate) SetUpdatedAt(v time.Time) *PipelineStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumentClass sets the "document_class" edge to the DocumentClass entity.
func (_u *PipelineStepUpdate) SetDocumentClass(v *DocumentClass) *PipelineStepUpdate {
	return _u.SetDocumentClassID(v.ID)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_u *PipelineStepUpdate) Mutation() *PipelineStepMutation {
	return _u.mutation
}

// ClearDocumentClass clears the "document_class" edge to the DocumentClass entity.
func (_u *PipelineStepUpdate) ClearDocumentClass() *PipelineStepUpdate {
	_u.mutation.ClearDocumentClass()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinestep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepUpdate) check() error {
	if v, ok := _u.mutation.SortOrder(); ok {
		if err := pipelinestep.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.sort_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Temperature(); ok {
		if err := pipelinestep.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.temperature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := pipelinestep.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.max_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := pipelinestep.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.max_retries": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputFormat(); ok {
		if err := pipelinestep.OutputFormatValidator(v); err != nil {
			return &ValidationError{Name: "output_format", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.output_format": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pipelinestep.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pipelinestep.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(pipelinestep.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(pipelinestep.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostBranching(); ok {
		_spec.SetField(pipelinestep.FieldPostBranching, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(pipelinestep.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBranchingStep(); ok {
		_spec.SetField(pipelinestep.FieldIsBranchingStep, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(pipelinestep.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(pipelinestep.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(pipelinestep.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(pipelinestep.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(pipelinestep.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTemplate(); ok {
		_spec.SetField(pipelinestep.FieldPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(pipelinestep.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(pipelinestep.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredContextVariables(); ok {
		_spec.SetField(pipelinestep.FieldRequiredContextVariables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredContextVariables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldRequiredContextVariables, value)
		})
	}
	if _u.mutation.RequiredContextVariablesCleared() {
		_spec.ClearField(pipelinestep.FieldRequiredContextVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.StopOnValues(); ok {
		_spec.SetField(pipelinestep.FieldStopOnValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStopOnValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldStopOnValues, value)
		})
	}
	if _u.mutation.StopOnValuesCleared() {
		_spec.ClearField(pipelinestep.FieldStopOnValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.AllowedContinueValues(); ok {
		_spec.SetField(pipelinestep.FieldAllowedContinueValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedContinueValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldAllowedContinueValues, value)
		})
	}
	if _u.mutation.AllowedContinueValuesCleared() {
		_spec.ClearField(pipelinestep.FieldAllowedContinueValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(pipelinestep.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(pipelinestep.FieldTerminationReason, field.TypeString)
	}
	if value, ok := _u.mutation.TerminationMessage(); ok {
		_spec.SetField(pipelinestep.FieldTerminationMessage, field.TypeString, value)
	}
	if _u.mutation.TerminationMessageCleared() {
		_spec.ClearField(pipelinestep.FieldTerminationMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryOnFailure(); ok {
		_spec.SetField(pipelinestep.FieldRetryOnFailure, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(pipelinestep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(pipelinestep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UseOriginalText(); ok {
		_spec.SetField(pipelinestep.FieldUseOriginalText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OutputFormat(); ok {
		_spec.SetField(pipelinestep.FieldOutputFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(pipelinestep.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(pipelinestep.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinestep.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentClassCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.DocumentClassTable,
			Columns: []string{pipelinestep.DocumentClassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentClassIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.DocumentClassTable,
			Columns: []string{pipelinestep.DocumentClassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineStepUpdateOne is the builder for updating a single PipelineStep entity.
type PipelineStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineStepMutation
}

// SetName sets the "name" field.
func (_u *PipelineStepUpdateOne) SetName(v string) *PipelineStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableName(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PipelineStepUpdateOne) SetDescription(v string) *PipelineStepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableDescription(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PipelineStepUpdateOne) ClearDescription() *PipelineStepUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *PipelineStepUpdateOne) SetSortOrder(v int) *PipelineStepUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableSortOrder(v *int) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *PipelineStepUpdateOne) AddSortOrder(v int) *PipelineStepUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetPostBranching sets the "post_branching" field.
func (_u *PipelineStepUpdateOne) SetPostBranching(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetPostBranching(v)
	return _u
}

// SetNillablePostBranching sets the "post_branching" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillablePostBranching(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetPostBranching(*v)
	}
	return _u
}

// SetDocumentClassID sets the "document_class_id" field.
func (_u *PipelineStepUpdateOne) SetDocumentClassID(v int) *PipelineStepUpdateOne {
	_u.mutation.SetDocumentClassID(v)
	return _u
}

// SetNillableDocumentClassID sets the "document_class_id" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableDocumentClassID(v *int) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetDocumentClassID(*v)
	}
	return _u
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (_u *PipelineStepUpdateOne) ClearDocumentClassID() *PipelineStepUpdateOne {
	_u.mutation.ClearDocumentClassID()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PipelineStepUpdateOne) SetEnabled(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableEnabled(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsBranchingStep sets the "is_branching_step" field.
func (_u *PipelineStepUpdateOne) SetIsBranchingStep(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetIsBranchingStep(v)
	return _u
}

// SetNillableIsBranchingStep sets the "is_branching_step" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableIsBranchingStep(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetIsBranchingStep(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PipelineStepUpdateOne) SetModelName(v string) *PipelineStepUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableModelName(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *PipelineStepUpdateOne) SetTemperature(v float64) *PipelineStepUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableTemperature(v *float64) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *PipelineStepUpdateOne) AddTemperature(v float64) *PipelineStepUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *PipelineStepUpdateOne) SetMaxTokens(v int) *PipelineStepUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableMaxTokens(v *int) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *PipelineStepUpdateOne) AddMaxTokens(v int) *PipelineStepUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetPromptTemplate sets the "prompt_template" field.
func (_u *PipelineStepUpdateOne) SetPromptTemplate(v string) *PipelineStepUpdateOne {
	_u.mutation.SetPromptTemplate(v)
	return _u
}

// SetNillablePromptTemplate sets the "prompt_template" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillablePromptTemplate(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetPromptTemplate(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PipelineStepUpdateOne) SetSystemPrompt(v string) *PipelineStepUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableSystemPrompt(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *PipelineStepUpdateOne) ClearSystemPrompt() *PipelineStepUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetRequiredContextVariables sets the "required_context_variables" field.
func (_u *PipelineStepUpdateOne) SetRequiredContextVariables(v []string) *PipelineStepUpdateOne {
	_u.mutation.SetRequiredContextVariables(v)
	return _u
}

// AppendRequiredContextVariables appends value to the "required_context_variables" field.
func (_u *PipelineStepUpdateOne) AppendRequiredContextVariables(v []string) *PipelineStepUpdateOne {
	_u.mutation.AppendRequiredContextVariables(v)
	return _u
}

// ClearRequiredContextVariables clears the value of the "required_context_variables" field.
func (_u *PipelineStepUpdateOne) ClearRequiredContextVariables() *PipelineStepUpdateOne {
	_u.mutation.ClearRequiredContextVariables()
	return _u
}

// SetStopOnValues sets the "stop_on_values" field.
func (_u *PipelineStepUpdateOne) SetStopOnValues(v []string) *PipelineStepUpdateOne {
	_u.mutation.SetStopOnValues(v)
	return _u
}

// AppendStopOnValues appends value to the "stop_on_values" field.
func (_u *PipelineStepUpdateOne) AppendStopOnValues(v []string) *PipelineStepUpdateOne {
	_u.mutation.AppendStopOnValues(v)
	return _u
}

// ClearStopOnValues clears the value of the "stop_on_values" field.
func (_u *PipelineStepUpdateOne) ClearStopOnValues() *PipelineStepUpdateOne {
	_u.mutation.ClearStopOnValues()
	return _u
}

// SetAllowedContinueValues sets the "allowed_continue_values" field.
func (_u *PipelineStepUpdateOne) SetAllowedContinueValues(v []string) *PipelineStepUpdateOne {
	_u.mutation.SetAllowedContinueValues(v)
	return _u
}

// AppendAllowedContinueValues appends value to the "allowed_continue_values" field.
func (_u *PipelineStepUpdateOne) AppendAllowedContinueValues(v []string) *PipelineStepUpdateOne {
	_u.mutation.AppendAllowedContinueValues(v)
	return _u
}

// ClearAllowedContinueValues clears the value of the "allowed_continue_values" field.
func (_u *PipelineStepUpdateOne) ClearAllowedContinueValues() *PipelineStepUpdateOne {
	_u.mutation.ClearAllowedContinueValues()
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *PipelineStepUpdateOne) SetTerminationReason(v string) *PipelineStepUpdateOne {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableTerminationReason(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *PipelineStepUpdateOne) ClearTerminationReason() *PipelineStepUpdateOne {
	_u.mutation.ClearTerminationReason()
	return _u
}

// SetTerminationMessage sets the "termination_message" field.
func (_u *PipelineStepUpdateOne) SetTerminationMessage(v string) *PipelineStepUpdateOne {
	_u.mutation.SetTerminationMessage(v)
	return _u
}

// SetNillableTerminationMessage sets the "termination_message" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableTerminationMessage(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetTerminationMessage(*v)
	}
	return _u
}

// ClearTerminationMessage clears the value of the "termination_message" field.
func (_u *PipelineStepUpdateOne) ClearTerminationMessage() *PipelineStepUpdateOne {
	_u.mutation.ClearTerminationMessage()
	return _u
}

// SetRetryOnFailure sets the "retry_on_failure" field.
func (_u *PipelineStepUpdateOne) SetRetryOnFailure(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetRetryOnFailure(v)
	return _u
}

// SetNillableRetryOnFailure sets the "retry_on_failure" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableRetryOnFailure(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetRetryOnFailure(*v)
	}
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *PipelineStepUpdateOne) SetMaxRetries(v int) *PipelineStepUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableMaxRetries(v *int) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *PipelineStepUpdateOne) AddMaxRetries(v int) *PipelineStepUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetUseOriginalText sets the "use_original_text" field.
func (_u *PipelineStepUpdateOne) SetUseOriginalText(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetUseOriginalText(v)
	return _u
}

// SetNillableUseOriginalText sets the "use_original_text" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableUseOriginalText(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetUseOriginalText(*v)
	}
	return _u
}

// SetOutputFormat sets the "output_format" field.
func (_u *PipelineStepUpdateOne) SetOutputFormat(v pipelinestep.OutputFormat) *PipelineStepUpdateOne {
	_u.mutation.SetOutputFormat(v)
	return _u
}

// SetNillableOutputFormat sets the "output_format" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableOutputFormat(v *pipelinestep.OutputFormat) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetOutputFormat(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PipelineStepUpdateOne) SetVersion(v int) *PipelineStepUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableVersion(v *int) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PipelineStepUpdateOne) AddVersion(v int) *PipelineStepUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineStepUpdateOne) SetCreatedAt(v time.Time) *PipelineStepUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableCreatedAt(v *time.Time) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineStepUpdateOne) SetUpdatedAt(v time.Time) *PipelineStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumentClass sets the "document_class" edge to the DocumentClass entity.
func (_u *PipelineStepUpdateOne) SetDocumentClass(v *DocumentClass) *PipelineStepUpdateOne {
	return _u.SetDocumentClassID(v.ID)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_u *PipelineStepUpdateOne) Mutation() *PipelineStepMutation {
	return _u.mutation
}

// ClearDocumentClass clears the "document_class" edge to the DocumentClass entity.
func (_u *PipelineStepUpdateOne) ClearDocumentClass() *PipelineStepUpdateOne {
	_u.mutation.ClearDocumentClass()
	return _u
}

// Where appends a list predicates to the PipelineStepUpdate builder.
func (_u *PipelineStepUpdateOne) Where(ps ...predicate.PipelineStep) *PipelineStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineStepUpdateOne) Select(field string, fields ...string) *PipelineStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineStep entity.
func (_u *PipelineStepUpdateOne) Save(ctx context.Context) (*PipelineStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepUpdateOne) SaveX(ctx context.Context) *PipelineStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinestep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepUpdateOne) check() error {
	if v, ok := _u.mutation.SortOrder(); ok {
		if err := pipelinestep.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.sort_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Temperature(); ok {
		if err := pipelinestep.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.temperature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := pipelinestep.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.max_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := pipelinestep.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.max_retries": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputFormat(); ok {
		if err := pipelinestep.OutputFormatValidator(v); err != nil {
			return &ValidationError{Name: "output_format", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.output_format": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineStepUpdateOne) sqlSave(ctx context.Context) (_node *PipelineStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinestep.FieldID)
		for _, f := range fields {
			if !pipelinestep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinestep.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pipelinestep.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pipelinestep.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(pipelinestep.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(pipelinestep.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostBranching(); ok {
		_spec.SetField(pipelinestep.FieldPostBranching, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(pipelinestep.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBranchingStep(); ok {
		_spec.SetField(pipelinestep.FieldIsBranchingStep, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(pipelinestep.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(pipelinestep.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(pipelinestep.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(pipelinestep.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(pipelinestep.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTemplate(); ok {
		_spec.SetField(pipelinestep.FieldPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(pipelinestep.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(pipelinestep.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredContextVariables(); ok {
		_spec.SetField(pipelinestep.FieldRequiredContextVariables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredContextVariables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldRequiredContextVariables, value)
		})
	}
	if _u.mutation.RequiredContextVariablesCleared() {
		_spec.ClearField(pipelinestep.FieldRequiredContextVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.StopOnValues(); ok {
		_spec.SetField(pipelinestep.FieldStopOnValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStopOnValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldStopOnValues, value)
		})
	}
	if _u.mutation.StopOnValuesCleared() {
		_spec.ClearField(pipelinestep.FieldStopOnValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.AllowedContinueValues(); ok {
		_spec.SetField(pipelinestep.FieldAllowedContinueValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedContinueValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldAllowedContinueValues, value)
		})
	}
	if _u.mutation.AllowedContinueValuesCleared() {
		_spec.ClearField(pipelinestep.FieldAllowedContinueValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(pipelinestep.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(pipelinestep.FieldTerminationReason, field.TypeString)
	}
	if value, ok := _u.mutation.TerminationMessage(); ok {
		_spec.SetField(pipelinestep.FieldTerminationMessage, field.TypeString, value)
	}
	if _u.mutation.TerminationMessageCleared() {
		_spec.ClearField(pipelinestep.FieldTerminationMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryOnFailure(); ok {
		_spec.SetField(pipelinestep.FieldRetryOnFailure, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(pipelinestep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(pipelinestep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UseOriginalText(); ok {
		_spec.SetField(pipelinestep.FieldUseOriginalText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OutputFormat(); ok {
		_spec.SetField(pipelinestep.FieldOutputFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(pipelinestep.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(pipelinestep.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinestep.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentClassCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.DocumentClassTable,
			Columns: []string{pipelinestep.DocumentClassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentClassIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.DocumentClassTable,
			Columns: []string{pipelinestep.DocumentClassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
