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
)

// ModelConfigCreate is the builder for creating a ModelConfig entity.
type ModelConfigCreate struct {
	config
	mutation *ModelConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ModelConfigCreate) SetName(v string) *ModelConfigCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ModelConfigCreate) SetProvider(v string) *ModelConfigCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableProvider(v *string) *ModelConfigCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetInputPricePerM sets the "input_price_per_m" field.
func (_c *ModelConfigCreate) SetInputPricePerM(v float64) *ModelConfigCreate {
	_c.mutation.SetInputPricePerM(v)
	return _c
}

// SetOutputPricePerM sets the "output_price_per_m" field.
func (_c *ModelConfigCreate) SetOutputPricePerM(v float64) *ModelConfigCreate {
	_c.mutation.SetOutputPricePerM(v)
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *ModelConfigCreate) SetMaxTokens(v int) *ModelConfigCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetSupportsVision sets the "supports_vision" field.
func (_c *ModelConfigCreate) SetSupportsVision(v bool) *ModelConfigCreate {
	_c.mutation.SetSupportsVision(v)
	return _c
}

// SetNillableSupportsVision sets the "supports_vision" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableSupportsVision(v *bool) *ModelConfigCreate {
	if v != nil {
		_c.SetSupportsVision(*v)
	}
	return _c
}

// SetSupportsStreaming sets the "supports_streaming" field.
func (_c *ModelConfigCreate) SetSupportsStreaming(v bool) *ModelConfigCreate {
	_c.mutation.SetSupportsStreaming(v)
	return _c
}

// SetNillableSupportsStreaming sets the "supports_streaming" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableSupportsStreaming(v *bool) *ModelConfigCreate {
	if v != nil {
		_c.SetSupportsStreaming(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ModelConfigCreate) SetActive(v bool) *ModelConfigCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableActive(v *bool) *ModelConfigCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetRequestTimeoutSecs sets the "request_timeout_secs" field.
func (_c *ModelConfigCreate) SetRequestTimeoutSecs(v int) *ModelConfigCreate {
	_c.mutation.SetRequestTimeoutSecs(v)
	return _c
}

// SetNillableRequestTimeoutSecs sets the "request_timeout_secs" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableRequestTimeoutSecs(v *int) *ModelConfigCreate {
	if v != nil {
		_c.SetRequestTimeoutSecs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelConfigCreate) SetCreatedAt(v time.Time) *ModelConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableCreatedAt(v *time.Time) *ModelConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModelConfigCreate) SetUpdatedAt(v time.Time) *ModelConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableUpdatedAt(v *time.Time) *ModelConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_c *ModelConfigCreate) Mutation() *ModelConfigMutation {
	return _c.mutation
}

// Save creates the ModelConfig in the database.
func (_c *ModelConfigCreate) Save(ctx context.Context) (*ModelConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelConfigCreate) SaveX(ctx context.Context) *ModelConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelConfigCreate) defaults() {
	if _, ok := _c.mutation.Provider(); !ok {
		v := modelconfig.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.SupportsVision(); !ok {
		v := modelconfig.DefaultSupportsVision
		_c.mutation.SetSupportsVision(v)
	}
	if _, ok := _c.mutation.SupportsStreaming(); !ok {
		v := modelconfig.DefaultSupportsStreaming
		_c.mutation.SetSupportsStreaming(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := modelconfig.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modelconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelConfigCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ModelConfig.name"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ModelConfig.provider"`)}
	}
	if _, ok := _c.mutation.InputPricePerM(); !ok {
		return &ValidationError{Name: "input_price_per_m", err: errors.New(`ent: missing required field "ModelConfig.input_price_per_m"`)}
	}
	if v, ok := _c.mutation.InputPricePerM(); ok {
		if err := modelconfig.InputPricePerMValidator(v); err != nil {
			return &ValidationError{Name: "input_price_per_m", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.input_price_per_m": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputPricePerM(); !ok {
		return &ValidationError{Name: "output_price_per_m", err: errors.New(`ent: missing required field "ModelConfig.output_price_per_m"`)}
	}
	if v, ok := _c.mutation.OutputPricePerM(); ok {
		if err := modelconfig.OutputPricePerMValidator(v); err != nil {
			return &ValidationError{Name: "output_price_per_m", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.output_price_per_m": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "ModelConfig.max_tokens"`)}
	}
	if v, ok := _c.mutation.MaxTokens(); ok {
		if err := modelconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.max_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SupportsVision(); !ok {
		return &ValidationError{Name: "supports_vision", err: errors.New(`ent: missing required field "ModelConfig.supports_vision"`)}
	}
	if _, ok := _c.mutation.SupportsStreaming(); !ok {
		return &ValidationError{Name: "supports_streaming", err: errors.New(`ent: missing required field "ModelConfig.supports_streaming"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ModelConfig.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelConfig.updated_at"`)}
	}
	return nil
}

func (_c *ModelConfigCreate) sqlSave(ctx context.Context) (*ModelConfig, error) {
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

func (_c *ModelConfigCreate) createSpec() (*ModelConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelconfig.Table, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(modelconfig.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(modelconfig.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.InputPricePerM(); ok {
		_spec.SetField(modelconfig.FieldInputPricePerM, field.TypeFloat64, value)
		_node.InputPricePerM = value
	}
	if value, ok := _c.mutation.OutputPricePerM(); ok {
		_spec.SetField(modelconfig.FieldOutputPricePerM, field.TypeFloat64, value)
		_node.OutputPricePerM = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.SupportsVision(); ok {
		_spec.SetField(modelconfig.FieldSupportsVision, field.TypeBool, value)
		_node.SupportsVision = value
	}
	if value, ok := _c.mutation.SupportsStreaming(); ok {
		_spec.SetField(modelconfig.FieldSupportsStreaming, field.TypeBool, value)
		_node.SupportsStreaming = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(modelconfig.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.RequestTimeoutSecs(); ok {
		_spec.SetField(modelconfig.FieldRequestTimeoutSecs, field.TypeInt, value)
		_node.RequestTimeoutSecs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelConfig.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelConfigUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelConfigCreate) OnConflict(opts ...sql.ConflictOption) *ModelConfigUpsertOne {
	_c.conflict = opts
	return &ModelConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelConfigCreate) OnConflictColumns(columns ...string) *ModelConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelConfigUpsertOne{
		create: _c,
	}
}

type (
	// ModelConfigUpsertOne is the builder for "upsert"-ing
	//  one ModelConfig node.
	ModelConfigUpsertOne struct {
		create *ModelConfigCreate
	}

	// ModelConfigUpsert is the "OnConflict" setter.
	ModelConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ModelConfigUpsert) SetName(v string) *ModelConfigUpsert {
	u.Set(modelconfig.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateName() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldName)
	return u
}

// SetProvider sets the "provider" field.
func (u *ModelConfigUpsert) SetProvider(v string) *ModelConfigUpsert {
	u.Set(modelconfig.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateProvider() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldProvider)
	return u
}

// SetInputPricePerM sets the "input_price_per_m" field.
func (u *ModelConfigUpsert) SetInputPricePerM(v float64) *ModelConfigUpsert {
	u.Set(modelconfig.FieldInputPricePerM, v)
	return u
}

// UpdateInputPricePerM sets the "input_price_per_m" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateInputPricePerM() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldInputPricePerM)
	return u
}

// AddInputPricePerM adds v to the "input_price_per_m" field.
func (u *ModelConfigUpsert) AddInputPricePerM(v float64) *ModelConfigUpsert {
	u.Add(modelconfig.FieldInputPricePerM, v)
	return u
}

// SetOutputPricePerM sets the "output_price_per_m" field.
func (u *ModelConfigUpsert) SetOutputPricePerM(v float64) *ModelConfigUpsert {
	u.Set(modelconfig.FieldOutputPricePerM, v)
	return u
}

// UpdateOutputPricePerM sets the "output_price_per_m" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateOutputPricePerM() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldOutputPricePerM)
	return u
}

// AddOutputPricePerM adds v to the "output_price_per_m" field.
func (u *ModelConfigUpsert) AddOutputPricePerM(v float64) *ModelConfigUpsert {
	u.Add(modelconfig.FieldOutputPricePerM, v)
	return u
}

// SetMaxTokens sets the "max_tokens" field.
func (u *ModelConfigUpsert) SetMaxTokens(v int) *ModelConfigUpsert {
	u.Set(modelconfig.FieldMaxTokens, v)
	return u
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateMaxTokens() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldMaxTokens)
	return u
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *ModelConfigUpsert) AddMaxTokens(v int) *ModelConfigUpsert {
	u.Add(modelconfig.FieldMaxTokens, v)
	return u
}

// SetSupportsVision sets the "supports_vision" field.
func (u *ModelConfigUpsert) SetSupportsVision(v bool) *ModelConfigUpsert {
	u.Set(modelconfig.FieldSupportsVision, v)
	return u
}

// UpdateSupportsVision sets the "supports_vision" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateSupportsVision() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldSupportsVision)
	return u
}

// SetSupportsStreaming sets the "supports_streaming" field.
func (u *ModelConfigUpsert) SetSupportsStreaming(v bool) *ModelConfigUpsert {
	u.Set(modelconfig.FieldSupportsStreaming, v)
	return u
}

// UpdateSupportsStreaming sets the "supports_streaming" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateSupportsStreaming() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldSupportsStreaming)
	return u
}

// SetActive sets the "active" field.
func (u *ModelConfigUpsert) SetActive(v bool) *ModelConfigUpsert {
	u.Set(modelconfig.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateActive() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldActive)
	return u
}

// SetRequestTimeoutSecs sets the "request_timeout_secs" field.
func (u *ModelConfigUpsert) SetRequestTimeoutSecs(v int) *ModelConfigUpsert {
	u.Set(modelconfig.FieldRequestTimeoutSecs, v)
	return u
}

// UpdateRequestTimeoutSecs sets the "request_timeout_secs" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateRequestTimeoutSecs() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldRequestTimeoutSecs)
	return u
}

// AddRequestTimeoutSecs adds v to the "request_timeout_secs" field.
func (u *ModelConfigUpsert) AddRequestTimeoutSecs(v int) *ModelConfigUpsert {
	u.Add(modelconfig.FieldRequestTimeoutSecs, v)
	return u
}

// ClearRequestTimeoutSecs clears the value of the "request_timeout_secs" field.
func (u *ModelConfigUpsert) ClearRequestTimeoutSecs() *ModelConfigUpsert {
	u.SetNull(modelconfig.FieldRequestTimeoutSecs)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ModelConfigUpsert) SetCreatedAt(v time.Time) *ModelConfigUpsert {
	u.Set(modelconfig.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateCreatedAt() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelConfigUpsert) SetUpdatedAt(v time.Time) *ModelConfigUpsert {
	u.Set(modelconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateUpdatedAt() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ModelConfigUpsertOne) UpdateNewValues() *ModelConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ModelConfigUpsertOne) Ignore() *ModelConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelConfigUpsertOne) DoNothing() *ModelConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelConfigCreate.OnConflict
// documentation for more info.
func (u *ModelConfigUpsertOne) Update(set func(*ModelConfigUpsert)) *ModelConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ModelConfigUpsertOne) SetName(v string) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateName() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateName()
	})
}

// SetProvider sets the "provider" field.
func (u *ModelConfigUpsertOne) SetProvider(v string) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateProvider() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateProvider()
	})
}

// SetInputPricePerM sets the "input_price_per_m" field.
func (u *ModelConfigUpsertOne) SetInputPricePerM(v float64) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetInputPricePerM(v)
	})
}

// AddInputPricePerM adds v to the "input_price_per_m" field.
func (u *ModelConfigUpsertOne) AddInputPricePerM(v float64) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.AddInputPricePerM(v)
	})
}

// UpdateInputPricePerM sets the "input_price_per_m" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateInputPricePerM() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateInputPricePerM()
	})
}

// SetOutputPricePerM sets the "output_price_per_m" field.
func (u *ModelConfigUpsertOne) SetOutputPricePerM(v float64) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetOutputPricePerM(v)
	})
}

// AddOutputPricePerM adds v to the "output_price_per_m" field.
func (u *ModelConfigUpsertOne) AddOutputPricePerM(v float64) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.AddOutputPricePerM(v)
	})
}

// UpdateOutputPricePerM sets the "output_price_per_m" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateOutputPricePerM() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateOutputPricePerM()
	})
}

// SetMaxTokens sets the "max_tokens" field.
func (u *ModelConfigUpsertOne) SetMaxTokens(v int) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetMaxTokens(v)
	})
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *ModelConfigUpsertOne) AddMaxTokens(v int) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.AddMaxTokens(v)
	})
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateMaxTokens() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateMaxTokens()
	})
}

// SetSupportsVision sets the "supports_vision" field.
func (u *ModelConfigUpsertOne) SetSupportsVision(v bool) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetSupportsVision(v)
	})
}

// UpdateSupportsVision sets the "supports_vision" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateSupportsVision() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateSupportsVision()
	})
}

// SetSupportsStreaming sets the "supports_streaming" field.
func (u *ModelConfigUpsertOne) SetSupportsStreaming(v bool) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetSupportsStreaming(v)
	})
}

// UpdateSupportsStreaming sets the "supports_streaming" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateSupportsStreaming() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateSupportsStreaming()
	})
}

// SetActive sets the "active" field.
func (u *ModelConfigUpsertOne) SetActive(v bool) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateActive() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateActive()
	})
}

// SetRequestTimeoutSecs sets the "request_timeout_secs" field.
func (u *ModelConfigUpsertOne) SetRequestTimeoutSecs(v int) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetRequestTimeoutSecs(v)
	})
}

// AddRequestTimeoutSecs adds v to the "request_timeout_secs" field.
func (u *ModelConfigUpsertOne) AddRequestTimeoutSecs(v int) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.AddRequestTimeoutSecs(v)
	})
}

// UpdateRequestTimeoutSecs sets the "request_timeout_secs" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateRequestTimeoutSecs() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateRequestTimeoutSecs()
	})
}

// ClearRequestTimeoutSecs clears the value of the "request_timeout_secs" field.
func (u *ModelConfigUpsertOne) ClearRequestTimeoutSecs() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.ClearRequestTimeoutSecs()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ModelConfigUpsertOne) SetCreatedAt(v time.Time) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateCreatedAt() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelConfigUpsertOne) SetUpdatedAt(v time.Time) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateUpdatedAt() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ModelConfigUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ModelConfigUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ModelConfigCreateBulk is the builder for creating many ModelConfig entities in bulk.
type ModelConfigCreateBulk struct {
	config
	err      error
	builders []*ModelConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the ModelConfig entities in the database.
func (_c *ModelConfigCreateBulk) Save(ctx context.Context) ([]*ModelConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelConfigMutation)
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
func (_c *ModelConfigCreateBulk) SaveX(ctx context.Context) []*ModelConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelConfigUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *ModelConfigUpsertBulk {
	_c.conflict = opts
	return &ModelConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelConfigCreateBulk) OnConflictColumns(columns ...string) *ModelConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelConfigUpsertBulk{
		create: _c,
	}
}

// ModelConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of ModelConfig nodes.
type ModelConfigUpsertBulk struct {
	create *ModelConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ModelConfigUpsertBulk) UpdateNewValues() *ModelConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ModelConfigUpsertBulk) Ignore() *ModelConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelConfigUpsertBulk) DoNothing() *ModelConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelConfigCreateBulk.OnConflict
// documentation for more info.
func (u *ModelConfigUpsertBulk) Update(set func(*ModelConfigUpsert)) *ModelConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ModelConfigUpsertBulk) SetName(v string) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateName() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateName()
	})
}

// SetProvider sets the "provider" field.
func (u *ModelConfigUpsertBulk) SetProvider(v string) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateProvider() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateProvider()
	})
}

// SetInputPricePerM sets the "input_price_per_m" field.
func (u *ModelConfigUpsertBulk) SetInputPricePerM(v float64) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetInputPricePerM(v)
	})
}

// AddInputPricePerM adds v to the "input_price_per_m" field.
func (u *ModelConfigUpsertBulk) AddInputPricePerM(v float64) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.AddInputPricePerM(v)
	})
}

// UpdateInputPricePerM sets the "input_price_per_m" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateInputPricePerM() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateInputPricePerM()
	})
}

// SetOutputPricePerM sets the "output_price_per_m" field.
func (u *ModelConfigUpsertBulk) SetOutputPricePerM(v float64) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetOutputPricePerM(v)
	})
}

// AddOutputPricePerM adds v to the "output_price_per_m" field.
func (u *ModelConfigUpsertBulk) AddOutputPricePerM(v float64) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.AddOutputPricePerM(v)
	})
}

// UpdateOutputPricePerM sets the "output_price_per_m" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateOutputPricePerM() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateOutputPricePerM()
	})
}

// SetMaxTokens sets the "max_tokens" field.
func (u *ModelConfigUpsertBulk) SetMaxTokens(v int) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetMaxTokens(v)
	})
}

// AddMaxTokens adds v to the "max_tokens" field.
func (u *ModelConfigUpsertBulk) AddMaxTokens(v int) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.AddMaxTokens(v)
	})
}

// UpdateMaxTokens sets the "max_tokens" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateMaxTokens() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateMaxTokens()
	})
}

// SetSupportsVision sets the "supports_vision" field.
func (u *ModelConfigUpsertBulk) SetSupportsVision(v bool) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetSupportsVision(v)
	})
}

// UpdateSupportsVision sets the "supports_vision" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateSupportsVision() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateSupportsVision()
	})
}

// SetSupportsStreaming sets the "supports_streaming" field.
func (u *ModelConfigUpsertBulk) SetSupportsStreaming(v bool) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetSupportsStreaming(v)
	})
}

// UpdateSupportsStreaming sets the "supports_streaming" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateSupportsStreaming() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateSupportsStreaming()
	})
}

// SetActive sets the "active" field.
func (u *ModelConfigUpsertBulk) SetActive(v bool) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateActive() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateActive()
	})
}

// SetRequestTimeoutSecs sets the "request_timeout_secs" field.
func (u *ModelConfigUpsertBulk) SetRequestTimeoutSecs(v int) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetRequestTimeoutSecs(v)
	})
}

// AddRequestTimeoutSecs adds v to the "request_timeout_secs" field.
func (u *ModelConfigUpsertBulk) AddRequestTimeoutSecs(v int) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.AddRequestTimeoutSecs(v)
	})
}

// UpdateRequestTimeoutSecs sets the "request_timeout_secs" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateRequestTimeoutSecs() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateRequestTimeoutSecs()
	})
}

// ClearRequestTimeoutSecs clears the value of the "request_timeout_secs" field.
func (u *ModelConfigUpsertBulk) ClearRequestTimeoutSecs() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.ClearRequestTimeoutSecs()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ModelConfigUpsertBulk) SetCreatedAt(v time.Time) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateCreatedAt() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelConfigUpsertBulk) SetUpdatedAt(v time.Time) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateUpdatedAt() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ModelConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
