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
	"github.com/klartext-health/befund/ent/modelconfig"
	"github.com/klartext-health/befund/ent/predicate"
)

// ModelConfigUpdate is the builder for updating ModelConfig entities.
type ModelConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ModelConfigMutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (_u *ModelConfigUpdate) Where(ps ...predicate.ModelConfig) *ModelConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ModelConfigUpdate) SetName(v string) *ModelConfigUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableName(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelConfigUpdate) SetProvider(v string) *ModelConfigUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableProvider(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetInputPricePerM sets the "input_price_per_m" field.
func (_u *ModelConfigUpdate) SetInputPricePerM(v float64) *ModelConfigUpdate {
	_u.mutation.ResetInputPricePerM()
	_u.mutation.SetInputPricePerM(v)
	return _u
}

// SetNillableInputPricePerM sets the "input_price_per_m" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableInputPricePerM(v *float64) *ModelConfigUpdate {
	if v != nil {
		_u.SetInputPricePerM(*v)
	}
	return _u
}

// AddInputPricePerM adds value to the "input_price_per_m" field.
func (_u *ModelConfigUpdate) AddInputPricePerM(v float64) *ModelConfigUpdate {
	_u.mutation.AddInputPricePerM(v)
	return _u
}

// SetOutputPricePerM sets the "output_price_per_m" field.
func (_u *ModelConfigUpdate) SetOutputPricePerM(v float64) *ModelConfigUpdate {
	_u.mutation.ResetOutputPricePerM()
	_u.mutation.SetOutputPricePerM(v)
	return _u
}

// SetNillableOutputPricePerM sets the "output_price_per_m" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableOutputPricePerM(v *float64) *ModelConfigUpdate {
	if v != nil {
		_u.SetOutputPricePerM(*v)
	}
	return _u
}

// AddOutputPricePerM adds value to the "output_price_per_m" field.
func (_u *ModelConfigUpdate) AddOutputPricePerM(v float64) *ModelConfigUpdate {
	_u.mutation.AddOutputPricePerM(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *ModelConfigUpdate) SetMaxTokens(v int) *ModelConfigUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableMaxTokens(v *int) *ModelConfigUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *ModelConfigUpdate) AddMaxTokens(v int) *ModelConfigUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetSupportsVision sets the "supports_vision" field.
func (_u *ModelConfigUpdate) SetSupportsVision(v bool) *ModelConfigUpdate {
	_u.mutation.SetSupportsVision(v)
	return _u
}

// SetNillableSupportsVision sets the "supports_vision" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableSupportsVision(v *bool) *ModelConfigUpdate {
	if v != nil {
		_u.SetSupportsVision(*v)
	}
	return _u
}

// SetSupportsStreaming sets the "supports_streaming" field.
func (_u *ModelConfigUpdate) SetSupportsStreaming(v bool) *ModelConfigUpdate {
	_u.mutation.SetSupportsStreaming(v)
	return _u
}

// SetNillableSupportsStreaming sets the "supports_streaming" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableSupportsStreaming(v *bool) *ModelConfigUpdate {
	if v != nil {
		_u.SetSupportsStreaming(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ModelConfigUpdate) SetActive(v bool) *ModelConfigUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableActive(v *bool) *ModelConfigUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetRequestTimeoutSecs sets the "request_timeout_secs" field.
func (_u *ModelConfigUpdate) SetRequestTimeoutSecs(v int) *ModelConfigUpdate {
	_u.mutation.ResetRequestTimeoutSecs()
	_u.mutation.SetRequestTimeoutSecs(v)
	return _u
}

// SetNillableRequestTimeoutSecs sets the "request_timeout_secs" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableRequestTimeoutSecs(v *int) *ModelConfigUpdate {
	if v != nil {
		_u.SetRequestTimeoutSecs(*v)
	}
	return _u
}

// AddRequestTimeoutSecs adds value to the "request_timeout_secs" field.
func (_u *ModelConfigUpdate) AddRequestTimeoutSecs(v int) *ModelConfigUpdate {
	_u.mutation.AddRequestTimeoutSecs(v)
	return _u
}

// ClearRequestTimeoutSecs clears the value of the "request_timeout_secs" field.
func (_u *ModelConfigUpdate) ClearRequestTimeoutSecs() *ModelConfigUpdate {
	_u.mutation.ClearRequestTimeoutSecs()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ModelConfigUpdate) SetCreatedAt(v time.Time) *ModelConfigUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableCreatedAt(v *time.Time) *ModelConfigUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelConfigUpdate) SetUpdatedAt(v time.Time) *ModelConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_u *ModelConfigUpdate) Mutation() *ModelConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelConfigUpdate) check() error {
	if v, ok := _u.mutation.InputPricePerM(); ok {
		if err := modelconfig.InputPricePerMValidator(v); err != nil {
			return &ValidationError{Name: "input_price_per_m", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.input_price_per_m": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputPricePerM(); ok {
		if err := modelconfig.OutputPricePerMValidator(v); err != nil {
			return &ValidationError{Name: "output_price_per_m", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.output_price_per_m": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := modelconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.max_tokens": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(modelconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelconfig.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputPricePerM(); ok {
		_spec.SetField(modelconfig.FieldInputPricePerM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInputPricePerM(); ok {
		_spec.AddField(modelconfig.FieldInputPricePerM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OutputPricePerM(); ok {
		_spec.SetField(modelconfig.FieldOutputPricePerM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutputPricePerM(); ok {
		_spec.AddField(modelconfig.FieldOutputPricePerM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SupportsVision(); ok {
		_spec.SetField(modelconfig.FieldSupportsVision, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SupportsStreaming(); ok {
		_spec.SetField(modelconfig.FieldSupportsStreaming, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(modelconfig.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequestTimeoutSecs(); ok {
		_spec.SetField(modelconfig.FieldRequestTimeoutSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestTimeoutSecs(); ok {
		_spec.AddField(modelconfig.FieldRequestTimeoutSecs, field.TypeInt, value)
	}
	if _u.mutation.RequestTimeoutSecsCleared() {
		_spec.ClearField(modelconfig.FieldRequestTimeoutSecs, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(modelconfig.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelConfigUpdateOne is the builder for updating a single ModelConfig entity.
type ModelConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelConfigMutation
}

// SetName sets the "name" field.
func (_u *ModelConfigUpdateOne) SetName(v string) *ModelConfigUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableName(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelConfigUpdateOne) SetProvider(v string) *ModelConfigUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableProvider(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetInputPricePerM sets the "input_price_per_m" field.
func (_u *ModelConfigUpdateOne) SetInputPricePerM(v float64) *ModelConfigUpdateOne {
	_u.mutation.ResetInputPricePerM()
	_u.mutation.SetInputPricePerM(v)
	return _u
}

// SetNillableInputPricePerM sets the "input_price_per_m" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableInputPricePerM(v *float64) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetInputPricePerM(*v)
	}
	return _u
}

// AddInputPricePerM adds value to the "input_price_per_m" field.
func (_u *ModelConfigUpdateOne) AddInputPricePerM(v float64) *ModelConfigUpdateOne {
	_u.mutation.AddInputPricePerM(v)
	return _u
}

// SetOutputPricePerM sets the "output_price_per_m" field.
func (_u *ModelConfigUpdateOne) SetOutputPricePerM(v float64) *ModelConfigUpdateOne {
	_u.mutation.ResetOutputPricePerM()
	_u.mutation.SetOutputPricePerM(v)
	return _u
}

// SetNillableOutputPricePerM sets the "output_price_per_m" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableOutputPricePerM(v *float64) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetOutputPricePerM(*v)
	}
	return _u
}

// AddOutputPricePerM adds value to the "output_price_per_m" field.
func (_u *ModelConfigUpdateOne) AddOutputPricePerM(v float64) *ModelConfigUpdateOne {
	_u.mutation.AddOutputPricePerM(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *ModelConfigUpdateOne) SetMaxTokens(v int) *ModelConfigUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableMaxTokens(v *int) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *ModelConfigUpdateOne) AddMaxTokens(v int) *ModelConfigUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetSupportsVision sets the "supports_vision" field.
func (_u *ModelConfigUpdateOne) SetSupportsVision(v bool) *ModelConfigUpdateOne {
	_u.mutation.SetSupportsVision(v)
	return _u
}

// SetNillableSupportsVision sets the "supports_vision" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableSupportsVision(v *bool) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetSupportsVision(*v)
	}
	return _u
}

// SetSupportsStreaming sets the "supports_streaming" field.
func (_u *ModelConfigUpdateOne) SetSupportsStreaming(v bool) *ModelConfigUpdateOne {
	_u.mutation.SetSupportsStreaming(v)
	return _u
}

// SetNillableSupportsStreaming sets the "supports_streaming" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableSupportsStreaming(v *bool) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetSupportsStreaming(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ModelConfigUpdateOne) SetActive(v bool) *ModelConfigUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableActive(v *bool) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetRequestTimeoutSecs sets the "request_timeout_secs" field.
func (_u *ModelConfigUpdateOne) SetRequestTimeoutSecs(v int) *ModelConfigUpdateOne {
	_u.mutation.ResetRequestTimeoutSecs()
	_u.mutation.SetRequestTimeoutSecs(v)
	return _u
}

// SetNillableRequestTimeoutSecs sets the "request_timeout_secs" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableRequestTimeoutSecs(v *int) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetRequestTimeoutSecs(*v)
	}
	return _u
}

// AddRequestTimeoutSecs adds value to the "request_timeout_secs" field.
func (_u *ModelConfigUpdateOne) AddRequestTimeoutSecs(v int) *ModelConfigUpdateOne {
	_u.mutation.AddRequestTimeoutSecs(v)
	return _u
}

// ClearRequestTimeoutSecs clears the value of the "request_timeout_secs" field.
func (_u *ModelConfigUpdateOne) ClearRequestTimeoutSecs() *ModelConfigUpdateOne {
	_u.mutation.ClearRequestTimeoutSecs()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ModelConfigUpdateOne) SetCreatedAt(v time.Time) *ModelConfigUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableCreatedAt(v *time.Time) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelConfigUpdateOne) SetUpdatedAt(v time.Time) *ModelConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_u *ModelConfigUpdateOne) Mutation() *ModelConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (_u *ModelConfigUpdateOne) Where(ps ...predicate.ModelConfig) *ModelConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelConfigUpdateOne) Select(field string, fields ...string) *ModelConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelConfig entity.
func (_u *ModelConfigUpdateOne) Save(ctx context.Context) (*ModelConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigUpdateOne) SaveX(ctx context.Context) *ModelConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelConfigUpdateOne) check() error {
	if v, ok := _u.mutation.InputPricePerM(); ok {
		if err := modelconfig.InputPricePerMValidator(v); err != nil {
			return &ValidationError{Name: "input_price_per_m", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.input_price_per_m": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputPricePerM(); ok {
		if err := modelconfig.OutputPricePerMValidator(v); err != nil {
			return &ValidationError{Name: "output_price_per_m", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.output_price_per_m": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := modelconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.max_tokens": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelConfigUpdateOne) sqlSave(ctx context.Context) (_node *ModelConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelconfig.FieldID)
		for _, f := range fields {
			if !modelconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelconfig.FieldID {
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
		_spec.SetField(modelconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelconfig.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputPricePerM(); ok {
		_spec.SetField(modelconfig.FieldInputPricePerM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInputPricePerM(); ok {
		_spec.AddField(modelconfig.FieldInputPricePerM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OutputPricePerM(); ok {
		_spec.SetField(modelconfig.FieldOutputPricePerM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutputPricePerM(); ok {
		_spec.AddField(modelconfig.FieldOutputPricePerM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SupportsVision(); ok {
		_spec.SetField(modelconfig.FieldSupportsVision, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SupportsStreaming(); ok {
		_spec.SetField(modelconfig.FieldSupportsStreaming, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(modelconfig.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequestTimeoutSecs(); ok {
		_spec.SetField(modelconfig.FieldRequestTimeoutSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestTimeoutSecs(); ok {
		_spec.AddField(modelconfig.FieldRequestTimeoutSecs, field.TypeInt, value)
	}
	if _u.mutation.RequestTimeoutSecsCleared() {
		_spec.ClearField(modelconfig.FieldRequestTimeoutSecs, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(modelconfig.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
