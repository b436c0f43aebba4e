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
	"github.com/klartext-health/befund/ent/documentclass"
	"github.com/klartext-health/befund/ent/pipelinestep"
)

// PipelineStepCreate is the builder for creating a PipelineStep entity.
type PipelineStepCreate struct {
	config
	mutation *PipelineStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *PipelineStepCreate) SetName(v string) *PipelineStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PipelineStepCreate) SetDescription(v string) *PipelineStepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableDescription(v *string) *PipelineStepCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *PipelineStepCreate) SetSortOrder(v int) *PipelineStepCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetPostBranching sets the "post_branching" field.
func (_c *PipelineStepCreate) SetPostBranching(v bool) *PipelineStepCreate {
	_c.mutation.SetPostBranching(v)
	return _c
}

// SetNillablePostBranching sets the "post_branching" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillablePostBranching(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetPostBranching(*v)
	}
	return _c
}

// SetDocumentClassID sets the "document_class_id" field.
func (_c *PipelineStepCreate) SetDocumentClassID(v int) *PipelineStepCreate {
	_c.mutation.SetDocumentClassID(v)
	return _c
}

// SetNillableDocumentClassID sets the "document_class_id" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableDocumentClassID(v *int) *PipelineStepCreate {
	if v != nil {
		_c.SetDocumentClassID(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PipelineStepCreate) SetEnabled(v bool) *PipelineStepCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableEnabled(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetIsBranchingStep sets the "is_branching_step" field.
func (_c *PipelineStepCreate) SetIsBranchingStep(v bool) *PipelineStepCreate {
	_c.mutation.SetIsBranchingStep(v)
	return _c
}

// SetNillableIsBranchingStep sets the "is_branching_step" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableIsBranchingStep(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetIsBranchingStep(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *PipelineStepCreate) SetModelName(v string) *PipelineStepCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *PipelineStepCreate) SetTemperature(v float64) *PipelineStepCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableTemperature(v *float64) *PipelineStepCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *PipelineStepCreate) SetMaxTokens(v int) *PipelineStepCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetPromptTemplate sets the "prompt_template" field.
func (_c *PipelineStepCreate) SetPromptTemplate(v string) *PipelineStepCreate {
	_c.mutation.SetPromptTemplate(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *PipelineStepCreate) SetSystemPrompt(v string) *PipelineStepCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableSystemPrompt(v *string) *PipelineStepCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetRequiredContextVariables sets the "required_context_variables" field.
func (_c *PipelineStepCreate) SetRequiredContextVariables(v []string) *PipelineStepCreate {
	_c.mutation.SetRequiredContextVariables(v)
	return _c
}

// SetStopOnValues sets the "stop_on_values" field.
func (_c *PipelineStepCreate) SetStopOnValues(v []string) *PipelineStepCreate {
	_c.mutation.SetStopOnValues(v)
	return _c
}

// SetAllowedContinueValues sets the "allowed_continue_values" field.
func (_c *PipelineStepCreate) SetAllowedContinueValues(v []string) *PipelineStepCreate {
	_c.mutation.SetAllowedContinueValues(v)
	return _c
}

// SetTerminationReason sets the "termination_reason" field.
func (_c *PipelineStepCreate) SetTerminationReason(v string) *PipelineStepCreate {
	_c.mutation.SetTerminationReason(v)
	return _c
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableTerminationReason(v *string) *PipelineStepCreate {
	if v != nil {
		_c.SetTerminationReason(*v)
	}
	return _c
}

// SetTerminationMessage sets the "termination_message" field.
func (_c *PipelineStepCreate) SetTerminationMessage(v string) *PipelineStepCreate {
	_c.mutation.SetTerminationMessage(v)
	return _c
}

// SetNillableTerminationMessage sets the "termination_message" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableTerminationMessage(v *string) *PipelineStepCreate {
	if v != nil {
		_c.SetTerminationMessage(*v)
	}
	return _c
}

// SetRetryOnFailure sets the "retry_on_failure" field.
func (_c *PipelineStepCreate) SetRetryOnFailure(v bool) *PipelineStepCreate {
	_c.mutation.SetRetryOnFailure(v)
	return _c
}

// SetNillableRetryOnFailure sets the "retry_on_failure" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableRetryOnFailure(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetRetryOnFailure(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *PipelineStepCreate) SetMaxRetries(v int) *PipelineStepCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableMaxRetries(v *int) *PipelineStepCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetUseOriginalText sets the "use_original_text" field.
func (_c *PipelineStepCreate) SetUseOriginalText(v bool) *PipelineStepCreate {
	_c.mutation.SetUseOriginalText(v)
	return _c
}

// SetNillableUseOriginalText sets the "use_original_text" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableUseOriginalText(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetUseOriginalText(*v)
	}
	return _c
}

// SetOutputFormat sets the "output_format" field.
func (_c *PipelineStepCreate) SetOutputFormat(v pipelinestep.OutputFormat) *PipelineStepCreate {
	_c.mutation.SetOutputFormat(v)
	return _c
}

// SetNillableOutputFormat sets the "output_format" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableOutputFormat(v *pipelinestep.OutputFormat) *PipelineStepCreate {
	if v != nil {
		_c.SetOutputFormat(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *PipelineStepCreate) SetVersion(v int) *PipelineStepCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableVersion(v *int) *PipelineStepCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineStepCreate) SetCreatedAt(v time.Time) *PipelineStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableCreatedAt(v *time.Time) *PipelineStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineStepCreate) SetUpdatedAt(v time.Time) *PipelineStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableUpdatedAt(v *time.Time) *PipelineStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDocumentClass sets the "document_class" edge to the DocumentClass entity.
func (_c *PipelineStepCreate) SetDocumentClass(v *DocumentClass) *PipelineStepCreate {
	return _c.SetDocumentClassID(v.ID)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_c *PipelineStepCreate) Mutation() *PipelineStepMutation {
	return _c.mutation
}

// Save creates the PipelineStep in the database.
func (_c *PipelineStepCreate) Save(ctx context.Context) (*PipelineStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineStepCreate) SaveX(ctx context.Context) *PipelineStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineStepCreate) defaults() {
	if _, ok := _c.mutation.PostBranching(); !ok {
		v := pipelinestep.DefaultPostBranching
		_c.mutation.SetPostBranching(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := pipelinestep.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.IsBranchingStep(); !ok {
		v := pipelinestep.DefaultIsBranchingStep
		_c.mutation.SetIsBranchingStep(v)
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		v := pipelinestep.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.RetryOnFailure(); !ok {
		v := pipelinestep.DefaultRetryOnFailure
		_c.mutation.SetRetryOnFailure(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := pipelinestep.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.UseOriginalText(); !ok {
		v := pipelinestep.DefaultUseOriginalText
		_c.mutation.SetUseOriginalText(v)
	}
	if _, ok := _c.mutation.OutputFormat(); !ok {
		v := pipelinestep.DefaultOutputFormat
		_c.mutation.SetOutputFormat(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := pipelinestep.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinestep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinestep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineStepCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PipelineStep.name"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "PipelineStep.sort_order"`)}
	}
	if v, ok := _c.mutation.SortOrder(); ok {
		if err := pipelinestep.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.sort_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PostBranching(); !ok {
		return &ValidationError{Name: "post_branching", err: errors.New(`ent: missing required field "PipelineStep.post_branching"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PipelineStep.enabled"`)}
	}
	if _, ok := _c.mutation.IsBranchingStep(); !ok {
		return &ValidationError{Name: "is_branching_step", err: errors.New(`ent: missing required field "PipelineStep.is_branching_step"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "PipelineStep.model_name"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "PipelineStep.temperature"`)}
	}
	if v, ok := _c.mutation.Temperature(); ok {
		if err := pipelinestep.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.temperature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "PipelineStep.max_tokens"`)}
	}
	if v, ok := _c.mutation.MaxTokens(); ok {
		if err := pipelinestep.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.max_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptTemplate(); !ok {
		return &ValidationError{Name: "prompt_template", err: errors.New(`ent: missing required field "PipelineStep.prompt_template"`)}
	}
	if _, ok := _c.mutation.RetryOnFailure(); !ok {
		return &ValidationError{Name: "retry_on_failure", err: errors.New(`ent: missing required field "PipelineStep.retry_on_failure"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "PipelineStep.max_retries"`)}
	}
	if v, ok := _c.mutation.MaxRetries(); ok {
		if err := pipelinestep.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.max_retries": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UseOriginalText(); !ok {
		return &ValidationError{Name: "use_original_text", err: errors.New(`ent: missing required field "PipelineStep.use_original_text"`)}
	}
	if _, ok := _c.mutation.OutputFormat(); !ok {
		return &ValidationError{Name: "output_format", err: errors.New(`ent: missing required field "PipelineStep.output_format"`)}
	}
	if v, ok := _c.mutation.OutputFormat(); ok {
		if err := pipelinestep.OutputFormatValidator(v); err != nil {
			return &ValidationError{Name: "output_format", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.output_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PipelineStep.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineStep.updated_at"`)}
	}
	return nil
}

func (_c *PipelineStepCreate) sqlSave(ctx context.Context) (*PipelineStep, error) {
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

func (_c *PipelineStepCreate) createSpec() (*PipelineStep, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinestep.Table, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(pipelinestep.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(pipelinestep.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.PostBranching(); ok {
		_spec.SetField(pipelinestep.FieldPostBranching, field.TypeBool, value)
		_node.PostBranching = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(pipelinestep.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.IsBranchingStep(); ok {
		_spec.SetField(pipelinestep.FieldIsBranchingStep, field.TypeBool, value)
		_node.IsBranchingStep = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(pipelinestep.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(pipelinestep.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(pipelinestep.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.PromptTemplate(); ok {
		_spec.SetField(pipelinestep.FieldPromptTemplate, field.TypeString, value)
		_node.PromptTemplate = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(pipelinestep.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = &value
	}
	if value, ok := _c.mutation.RequiredContextVariables(); ok {
		_spec.SetField(pipelinestep.FieldRequiredContextVariables, field.TypeJSON, value)
		_node.RequiredContextVariables = value
	}
	if value, ok := _c.mutation.StopOnValues(); ok {
		_spec.SetField(pipelinestep.FieldStopOnValues, field.TypeJSON, value)
		_node.StopOnValues = value
	}
	if value, ok := _c.mutation.AllowedContinueValues(); ok {
		_spec.SetField(pipelinestep.FieldAllowedContinueValues, field.TypeJSON, value)
		_node.AllowedContinueValues = value
	}
	if value, ok := _c.mutation.TerminationReason(); ok {
		_spec.SetField(pipelinestep.FieldTerminationReason, field.TypeString, value)
		_node.TerminationReason = &value
	}
	if value, ok := _c.mutation.TerminationMessage(); ok {
		_spec.SetField(pipelinestep.FieldTerminationMessage, field.TypeString, value)
		_node.TerminationMessage = &value
	}
	if value, ok := _c.mutation.RetryOnFailure(); ok {
		_spec.SetField(pipelinestep.FieldRetryOnFailure, field.TypeBool, value)
		_node.RetryOnFailure = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(pipelinestep.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.UseOriginalText(); ok {
		_spec.SetField(pipelinestep.FieldUseOriginalText, field.TypeBool, value)
		_node.UseOriginalText = value
	}
	if value, ok := _c.mutation.OutputFormat(); ok {
		_spec.SetField(pipelinestep.FieldOutputFormat, field.TypeEnum, value)
		_node.OutputFormat = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(pipelinestep.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinestep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentClassIDs(); len(nodes) > 0 {
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
		_node.DocumentClassID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineStep.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineStepUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineStepCreate) OnConflict(opts ...sql.ConflictOption) *PipelineStepUpsertOne {
	_c.conflict = opts
	return &PipelineStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineStepCreate) OnConflictColumns(columns ...string) *PipelineStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineStepUpsertOne{
		create: _c,
	}
}

type (
	// PipelineStepUpsertOne is the builder for "upsert"-ing
	//  one PipelineStep node.
	PipelineStepUpsertOne struct {
		create *PipelineStepCreate
	}

	// PipelineStepUpsert is the "OnConflict" setter.
	PipelineStepUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PipelineStepUpsert) SetName(v string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateName() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *PipelineStepUpsert) SetDescription(v string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateDescription() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *PipelineStepUpsert) ClearDescription() *PipelineStepUpsert {
	u.SetNull(pipelinestep.FieldDescription)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *PipelineStepUpsert) SetSortOrder(v int) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateSortOrder() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *PipelineStepUpsert) AddSortOrder(v int) *PipelineStepUpsert {
	u.Add(pipelinestep.FieldSortOrder, v)
	return u
}

// SetPostBranching sets the "post_branching" field.
func (u *PipelineStepUpsert) SetPostBranching(v bool) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldPostBranching, v)
	return u
}

// UpdatePostBranching sets the "post_branching" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdatePostBranching() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldPostBranching)
	return u
}

// SetDocumentClassID sets the "document_class_id" field.
func (u *PipelineStepUpsert) SetDocumentClassID(v int) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldDocumentClassID, v)
	return u
}

// UpdateDocumentClassID sets the "document_class_id" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateDocumentClassID() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldDocumentClassID)
	return u
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (u *PipelineStepUpsert) ClearDocumentClassID() *PipelineStepUpsert {
	u.SetNull(pipelinestep.FieldDocumentClassID)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *PipelineStepUpsert) SetEnabled(v bool) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateEnabled() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldEnabled)
	return u
}

// SetIsBranchingStep sets the "is_branching_step" field.
func (u *PipelineStepUpsert) SetIsBranchingStep(v bool) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldIsBranchingStep, v)
	return u
}

// UpdateIsBranchingStep sets the "is_branching_step" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateIsBranchingStep() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldIsBranchingStep)
	return u
}

// SetModelName sets the "model_name" field.
func (u *PipelineStepUpsert) SetModelName(v string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateModelName() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldModelName)
	return u
}

// SetTemperature sets the "temperature" field.
func (u *PipelineStepUpsert) SetTemperature(v float64) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldTemperature, v)
	return u
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateTemperature() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldTemperature)
	return u
}

// AddTemperature adds v to the "temperature" field.
func (u *PipelineStepUpsert) AddTemperature(v float64) *PipelineStepUpsert {
	u.Add(pipelinestep.FieldTemperature, v)
	return u
}

// SetMaxTokens sets the "max_tokens" field.
func (u *PipelineStepUpsert) SetMaxTokens(v int) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldMaxTokens, v)
	return u
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateMaxTokens() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldMaxTokens)
	return u
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *PipelineStepUpsert) AddMaxTokens(v int) *PipelineStepUpsert {
	u.Add(pipelinestep.FieldMaxTokens, v)
	return u
}

// SetPromptTemplate sets the "prompt_template" field.
func (u *PipelineStepUpsert) SetPromptTemplate(v string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldPromptTemplate, v)
	return u
}

// UpdatePromptTemplate sets the "prompt_template" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdatePromptTemplate() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldPromptTemplate)
	return u
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *PipelineStepUpsert) SetSystemPrompt(v string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldSystemPrompt, v)
	return u
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateSystemPrompt() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldSystemPrompt)
	return u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *PipelineStepUpsert) ClearSystemPrompt() *PipelineStepUpsert {
	u.SetNull(pipelinestep.FieldSystemPrompt)
	return u
}

// SetRequiredContextVariables sets the "required_context_variables" field.
func (u *PipelineStepUpsert) SetRequiredContextVariables(v []string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldRequiredContextVariables, v)
	return u
}

// UpdateRequiredContextVariables sets the "required_context_variables" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateRequiredContextVariables() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldRequiredContextVariables)
	return u
}

// ClearRequiredContextVariables clears the value of the "required_context_variables" field.
func (u *PipelineStepUpsert) ClearRequiredContextVariables() *PipelineStepUpsert {
	u.SetNull(pipelinestep.FieldRequiredContextVariables)
	return u
}

// SetStopOnValues sets the "stop_on_values" field.
func (u *PipelineStepUpsert) SetStopOnValues(v []string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldStopOnValues, v)
	return u
}

// UpdateStopOnValues sets the "stop_on_values" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateStopOnValues() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldStopOnValues)
	return u
}

// ClearStopOnValues clears the value of the "stop_on_values" field.
func (u *PipelineStepUpsert) ClearStopOnValues() *PipelineStepUpsert {
	u.SetNull(pipelinestep.FieldStopOnValues)
	return u
}

// SetAllowedContinueValues sets the "allowed_continue_values" field.
func (u *PipelineStepUpsert) SetAllowedContinueValues(v []string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldAllowedContinueValues, v)
	return u
}

// UpdateAllowedContinueValues sets the "allowed_continue_values" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateAllowedContinueValues() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldAllowedContinueValues)
	return u
}

// ClearAllowedContinueValues clears the value of the "allowed_continue_values" field.
func (u *PipelineStepUpsert) ClearAllowedContinueValues() *PipelineStepUpsert {
	u.SetNull(pipelinestep.FieldAllowedContinueValues)
	return u
}

// SetTerminationReason sets the "termination_reason" field.
func (u *PipelineStepUpsert) SetTerminationReason(v string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldTerminationReason, v)
	return u
}

// UpdateTerminationReason sets the "termination_reason" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateTerminationReason() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldTerminationReason)
	return u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (u *PipelineStepUpsert) ClearTerminationReason() *PipelineStepUpsert {
	u.SetNull(pipelinestep.FieldTerminationReason)
	return u
}

// SetTerminationMessage sets the "termination_message" field.
func (u *PipelineStepUpsert) SetTerminationMessage(v string) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldTerminationMessage, v)
	return u
}

// UpdateTerminationMessage sets the "termination_message" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateTerminationMessage() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldTerminationMessage)
	return u
}

// ClearTerminationMessage clears the value of the "termination_message" field.
func (u *PipelineStepUpsert) ClearTerminationMessage() *PipelineStepUpsert {
	u.SetNull(pipelinestep.FieldTerminationMessage)
	return u
}

// SetRetryOnFailure sets the "retry_on_failure" field.
func (u *PipelineStepUpsert) SetRetryOnFailure(v bool) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldRetryOnFailure, v)
	return u
}

// UpdateRetryOnFailure sets the "retry_on_failure" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateRetryOnFailure() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldRetryOnFailure)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *PipelineStepUpsert) SetMaxRetries(v int) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateMaxRetries() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *PipelineStepUpsert) AddMaxRetries(v int) *PipelineStepUpsert {
	u.Add(pipelinestep.FieldMaxRetries, v)
	return u
}

// SetUseOriginalText sets the "use_original_text" field.
func (u *PipelineStepUpsert) SetUseOriginalText(v bool) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldUseOriginalText, v)
	return u
}

// UpdateUseOriginalText sets the "use_original_text" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateUseOriginalText() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldUseOriginalText)
	return u
}

// SetOutputFormat sets the "output_format" field.
func (u *PipelineStepUpsert) SetOutputFormat(v pipelinestep.OutputFormat) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldOutputFormat, v)
	return u
}

// UpdateOutputFormat sets the "output_format" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateOutputFormat() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldOutputFormat)
	return u
}

// SetVersion sets the "version" field.
func (u *PipelineStepUpsert) SetVersion(v int) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateVersion() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *PipelineStepUpsert) AddVersion(v int) *PipelineStepUpsert {
	u.Add(pipelinestep.FieldVersion, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PipelineStepUpsert) SetCreatedAt(v time.Time) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateCreatedAt() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineStepUpsert) SetUpdatedAt(v time.Time) *PipelineStepUpsert {
	u.Set(pipelinestep.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineStepUpsert) UpdateUpdatedAt() *PipelineStepUpsert {
	u.SetExcluded(pipelinestep.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PipelineStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PipelineStepUpsertOne) UpdateNewValues() *PipelineStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineStepUpsertOne) Ignore() *PipelineStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineStepUpsertOne) DoNothing() *PipelineStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineStepCreate.OnConflict
// documentation for more info.
func (u *PipelineStepUpsertOne) Update(set func(*PipelineStepUpsert)) *PipelineStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PipelineStepUpsertOne) SetName(v string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateName() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *PipelineStepUpsertOne) SetDescription(v string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateDescription() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PipelineStepUpsertOne) ClearDescription() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearDescription()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *PipelineStepUpsertOne) SetSortOrder(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *PipelineStepUpsertOne) AddSortOrder(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateSortOrder() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateSortOrder()
	})
}

// SetPostBranching sets the "post_branching" field.
func (u *PipelineStepUpsertOne) SetPostBranching(v bool) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetPostBranching(v)
	})
}

// UpdatePostBranching sets the "post_branching" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdatePostBranching() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdatePostBranching()
	})
}

// SetDocumentClassID sets the "document_class_id" field.
func (u *PipelineStepUpsertOne) SetDocumentClassID(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetDocumentClassID(v)
	})
}

// UpdateDocumentClassID sets the "document_class_id" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateDocumentClassID() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateDocumentClassID()
	})
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (u *PipelineStepUpsertOne) ClearDocumentClassID() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearDocumentClassID()
	})
}

// SetEnabled sets the "enabled" field.
func (u *PipelineStepUpsertOne) SetEnabled(v bool) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateEnabled() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateEnabled()
	})
}

// SetIsBranchingStep sets the "is_branching_step" field.
func (u *PipelineStepUpsertOne) SetIsBranchingStep(v bool) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetIsBranchingStep(v)
	})
}

// UpdateIsBranchingStep sets the "is_branching_step" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateIsBranchingStep() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateIsBranchingStep()
	})
}

// SetModelName sets the "model_name" field.
func (u *PipelineStepUpsertOne) SetModelName(v string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateModelName() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateModelName()
	})
}

// SetTemperature sets the "temperature" field.
func (u *PipelineStepUpsertOne) SetTemperature(v float64) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetTemperature(v)
	})
}

// AddTemperature adds v to the "temperature" field.
func (u *PipelineStepUpsertOne) AddTemperature(v float64) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddTemperature(v)
	})
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateTemperature() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateTemperature()
	})
}

// SetMaxTokens sets the "max_tokens" field.
func (u *PipelineStepUpsertOne) SetMaxTokens(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetMaxTokens(v)
	})
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *PipelineStepUpsertOne) AddMaxTokens(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddMaxTokens(v)
	})
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateMaxTokens() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateMaxTokens()
	})
}

// SetPromptTemplate sets the "prompt_template" field.
func (u *PipelineStepUpsertOne) SetPromptTemplate(v string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetPromptTemplate(v)
	})
}

// UpdatePromptTemplate sets the "prompt_template" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdatePromptTemplate() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdatePromptTemplate()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *PipelineStepUpsertOne) SetSystemPrompt(v string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateSystemPrompt() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateSystemPrompt()
	})
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *PipelineStepUpsertOne) ClearSystemPrompt() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearSystemPrompt()
	})
}

// SetRequiredContextVariables sets the "required_context_variables" field.
func (u *PipelineStepUpsertOne) SetRequiredContextVariables(v []string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetRequiredContextVariables(v)
	})
}

// UpdateRequiredContextVariables sets the "required_context_variables" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateRequiredContextVariables() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateRequiredContextVariables()
	})
}

// ClearRequiredContextVariables clears the value of the "required_context_variables" field.
func (u *PipelineStepUpsertOne) ClearRequiredContextVariables() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearRequiredContextVariables()
	})
}

// SetStopOnValues sets the "stop_on_values" field.
func (u *PipelineStepUpsertOne) SetStopOnValues(v []string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetStopOnValues(v)
	})
}

// UpdateStopOnValues sets the "stop_on_values" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateStopOnValues() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateStopOnValues()
	})
}

// ClearStopOnValues clears the value of the "stop_on_values" field.
func (u *PipelineStepUpsertOne) ClearStopOnValues() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearStopOnValues()
	})
}

// SetAllowedContinueValues sets the "allowed_continue_values" field.
func (u *PipelineStepUpsertOne) SetAllowedContinueValues(v []string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetAllowedContinueValues(v)
	})
}

// UpdateAllowedContinueValues sets the "allowed_continue_values" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateAllowedContinueValues() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateAllowedContinueValues()
	})
}

// ClearAllowedContinueValues clears the value of the "allowed_continue_values" field.
func (u *PipelineStepUpsertOne) ClearAllowedContinueValues() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearAllowedContinueValues()
	})
}

// SetTerminationReason sets the "termination_reason" field.
func (u *PipelineStepUpsertOne) SetTerminationReason(v string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetTerminationReason(v)
	})
}

// UpdateTerminationReason sets the "termination_reason" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateTerminationReason() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateTerminationReason()
	})
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (u *PipelineStepUpsertOne) ClearTerminationReason() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearTerminationReason()
	})
}

// SetTerminationMessage sets the "termination_message" field.
func (u *PipelineStepUpsertOne) SetTerminationMessage(v string) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetTerminationMessage(v)
	})
}

// UpdateTerminationMessage sets the "termination_message" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateTerminationMessage() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateTerminationMessage()
	})
}

// ClearTerminationMessage clears the value of the "termination_message" field.
func (u *PipelineStepUpsertOne) ClearTerminationMessage() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearTerminationMessage()
	})
}

// SetRetryOnFailure sets the "retry_on_failure" field.
func (u *PipelineStepUpsertOne) SetRetryOnFailure(v bool) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetRetryOnFailure(v)
	})
}

// UpdateRetryOnFailure sets the "retry_on_failure" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateRetryOnFailure() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateRetryOnFailure()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *PipelineStepUpsertOne) SetMaxRetries(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *PipelineStepUpsertOne) AddMaxRetries(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateMaxRetries() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetUseOriginalText sets the "use_original_text" field.
func (u *PipelineStepUpsertOne) SetUseOriginalText(v bool) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetUseOriginalText(v)
	})
}

// UpdateUseOriginalText sets the "use_original_text" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateUseOriginalText() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateUseOriginalText()
	})
}

// SetOutputFormat sets the "output_format" field.
func (u *PipelineStepUpsertOne) SetOutputFormat(v pipelinestep.OutputFormat) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetOutputFormat(v)
	})
}

// UpdateOutputFormat sets the "output_format" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateOutputFormat() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateOutputFormat()
	})
}

// SetVersion sets the "version" field.
func (u *PipelineStepUpsertOne) SetVersion(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PipelineStepUpsertOne) AddVersion(v int) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateVersion() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PipelineStepUpsertOne) SetCreatedAt(v time.Time) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateCreatedAt() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineStepUpsertOne) SetUpdatedAt(v time.Time) *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineStepUpsertOne) UpdateUpdatedAt() *PipelineStepUpsertOne {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineStepUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineStepUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineStepCreateBulk is the builder for creating many PipelineStep entities in bulk.
type PipelineStepCreateBulk struct {
	config
	err      error
	builders []*PipelineStepCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineStep entities in the database.
func (_c *PipelineStepCreateBulk) Save(ctx context.Context) ([]*PipelineStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineStepMutation)
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
func (_c *PipelineStepCreateBulk) SaveX(ctx context.Context) []*PipelineStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineStepUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineStepUpsertBulk {
	_c.conflict = opts
	return &PipelineStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineStepCreateBulk) OnConflictColumns(columns ...string) *PipelineStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineStepUpsertBulk{
		create: _c,
	}
}

// PipelineStepUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineStep nodes.
type PipelineStepUpsertBulk struct {
	create *PipelineStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PipelineStepUpsertBulk) UpdateNewValues() *PipelineStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineStepUpsertBulk) Ignore() *PipelineStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineStepUpsertBulk) DoNothing() *PipelineStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineStepCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineStepUpsertBulk) Update(set func(*PipelineStepUpsert)) *PipelineStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PipelineStepUpsertBulk) SetName(v string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateName() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *PipelineStepUpsertBulk) SetDescription(v string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateDescription() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PipelineStepUpsertBulk) ClearDescription() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearDescription()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *PipelineStepUpsertBulk) SetSortOrder(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *PipelineStepUpsertBulk) AddSortOrder(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateSortOrder() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateSortOrder()
	})
}

// SetPostBranching sets the "post_branching" field.
func (u *PipelineStepUpsertBulk) SetPostBranching(v bool) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetPostBranching(v)
	})
}

// UpdatePostBranching sets the "post_branching" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdatePostBranching() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdatePostBranching()
	})
}

// SetDocumentClassID sets the "document_class_id" field.
func (u *PipelineStepUpsertBulk) SetDocumentClassID(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetDocumentClassID(v)
	})
}

// UpdateDocumentClassID sets the "document_class_id" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateDocumentClassID() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateDocumentClassID()
	})
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (u *PipelineStepUpsertBulk) ClearDocumentClassID() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearDocumentClassID()
	})
}

// SetEnabled sets the "enabled" field.
func (u *PipelineStepUpsertBulk) SetEnabled(v bool) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateEnabled() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateEnabled()
	})
}

// SetIsBranchingStep sets the "is_branching_step" field.
func (u *PipelineStepUpsertBulk) SetIsBranchingStep(v bool) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetIsBranchingStep(v)
	})
}

// UpdateIsBranchingStep sets the "is_branching_step" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateIsBranchingStep() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateIsBranchingStep()
	})
}

// SetModelName sets the "model_name" field.
func (u *PipelineStepUpsertBulk) SetModelName(v string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateModelName() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateModelName()
	})
}

// SetTemperature sets the "temperature" field.
func (u *PipelineStepUpsertBulk) SetTemperature(v float64) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetTemperature(v)
	})
}

// AddTemperature adds v to the "temperature" field.
func (u *PipelineStepUpsertBulk) AddTemperature(v float64) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddTemperature(v)
	})
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateTemperature() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateTemperature()
	})
}

// SetMaxTokens sets the "max_tokens" field.
func (u *PipelineStepUpsertBulk) SetMaxTokens(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetMaxTokens(v)
	})
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *PipelineStepUpsertBulk) AddMaxTokens(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddMaxTokens(v)
	})
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateMaxTokens() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateMaxTokens()
	})
}

// SetPromptTemplate sets the "prompt_template" field.
func (u *PipelineStepUpsertBulk) SetPromptTemplate(v string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetPromptTemplate(v)
	})
}

// UpdatePromptTemplate sets the "prompt_template" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdatePromptTemplate() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdatePromptTemplate()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *PipelineStepUpsertBulk) SetSystemPrompt(v string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateSystemPrompt() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateSystemPrompt()
	})
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *PipelineStepUpsertBulk) ClearSystemPrompt() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearSystemPrompt()
	})
}

// SetRequiredContextVariables sets the "required_context_variables" field.
func (u *PipelineStepUpsertBulk) SetRequiredContextVariables(v []string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetRequiredContextVariables(v)
	})
}

// UpdateRequiredContextVariables sets the "required_context_variables" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateRequiredContextVariables() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateRequiredContextVariables()
	})
}

// ClearRequiredContextVariables clears the value of the "required_context_variables" field.
func (u *PipelineStepUpsertBulk) ClearRequiredContextVariables() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearRequiredContextVariables()
	})
}

// SetStopOnValues sets the "stop_on_values" field.
func (u *PipelineStepUpsertBulk) SetStopOnValues(v []string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetStopOnValues(v)
	})
}

// UpdateStopOnValues sets the "stop_on_values" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateStopOnValues() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateStopOnValues()
	})
}

// ClearStopOnValues clears the value of the "stop_on_values" field.
func (u *PipelineStepUpsertBulk) ClearStopOnValues() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearStopOnValues()
	})
}

// SetAllowedContinueValues sets the "allowed_continue_values" field.
func (u *PipelineStepUpsertBulk) SetAllowedContinueValues(v []string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetAllowedContinueValues(v)
	})
}

// UpdateAllowedContinueValues sets the "allowed_continue_values" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateAllowedContinueValues() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateAllowedContinueValues()
	})
}

// ClearAllowedContinueValues clears the value of the "allowed_continue_values" field.
func (u *PipelineStepUpsertBulk) ClearAllowedContinueValues() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearAllowedContinueValues()
	})
}

// SetTerminationReason sets the "termination_reason" field.
func (u *PipelineStepUpsertBulk) SetTerminationReason(v string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetTerminationReason(v)
	})
}

// UpdateTerminationReason sets the "termination_reason" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateTerminationReason() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateTerminationReason()
	})
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (u *PipelineStepUpsertBulk) ClearTerminationReason() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearTerminationReason()
	})
}

// SetTerminationMessage sets the "termination_message" field.
func (u *PipelineStepUpsertBulk) SetTerminationMessage(v string) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetTerminationMessage(v)
	})
}

// UpdateTerminationMessage sets the "termination_message" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateTerminationMessage() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateTerminationMessage()
	})
}

// ClearTerminationMessage clears the value of the "termination_message" field.
func (u *PipelineStepUpsertBulk) ClearTerminationMessage() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.ClearTerminationMessage()
	})
}

// SetRetryOnFailure sets the "retry_on_failure" field.
func (u *PipelineStepUpsertBulk) SetRetryOnFailure(v bool) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetRetryOnFailure(v)
	})
}

// UpdateRetryOnFailure sets the "retry_on_failure" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateRetryOnFailure() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateRetryOnFailure()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *PipelineStepUpsertBulk) SetMaxRetries(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *PipelineStepUpsertBulk) AddMaxRetries(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateMaxRetries() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetUseOriginalText sets the "use_original_text" field.
func (u *PipelineStepUpsertBulk) SetUseOriginalText(v bool) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetUseOriginalText(v)
	})
}

// UpdateUseOriginalText sets the "use_original_text" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateUseOriginalText() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateUseOriginalText()
	})
}

// SetOutputFormat sets the "output_format" field.
func (u *PipelineStepUpsertBulk) SetOutputFormat(v pipelinestep.OutputFormat) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetOutputFormat(v)
	})
}

// UpdateOutputFormat sets the "output_format" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateOutputFormat() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateOutputFormat()
	})
}

// SetVersion sets the "version" field.
func (u *PipelineStepUpsertBulk) SetVersion(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PipelineStepUpsertBulk) AddVersion(v int) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateVersion() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PipelineStepUpsertBulk) SetCreatedAt(v time.Time) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateCreatedAt() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineStepUpsertBulk) SetUpdatedAt(v time.Time) *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineStepUpsertBulk) UpdateUpdatedAt() *PipelineStepUpsertBulk {
	return u.Update(func(s *PipelineStepUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
