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
	"github.com/klartext-health/befund/ent/predicate"
	"github.com/klartext-health/befund/ent/systemsetting"
)

// SystemSettingUpdate is the builder for updating SystemSetting entities.
type SystemSettingUpdate struct {
	config
	hooks    []Hook
	mutation *SystemSettingMutation
}

// Where appends a list predicates to the SystemSettingUpdate builder.
func (_u *SystemSettingUpdate) Where(ps ...predicate.SystemSetting) *SystemSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *SystemSettingUpdate) SetKey(v string) *SystemSettingUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SystemSettingUpdate) SetNillableKey(v *string) *SystemSettingUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SystemSettingUpdate) SetValue(v string) *SystemSettingUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SystemSettingUpdate) SetNillableValue(v *string) *SystemSettingUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetIsEncrypted sets the "is_encrypted" field.
func (_u *SystemSettingUpdate) SetIsEncrypted(v bool) *SystemSettingUpdate {
	_u.mutation.SetIsEncrypted(v)
	return _u
}

// SetNillableIsEncrypted sets the "is_encrypted" field if the given value is not nil.
func (_u *SystemSettingUpdate) SetNillableIsEncrypted(v *bool) *SystemSettingUpdate {
	if v != nil {
		_u.SetIsEncrypted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SystemSettingUpdate) SetUpdatedAt(v time.Time) *SystemSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SystemSettingMutation object of the builder.
func (_u *SystemSettingUpdate) Mutation() *SystemSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SystemSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SystemSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SystemSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SystemSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SystemSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := systemsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SystemSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(systemsetting.Table, systemsetting.Columns, sqlgraph.NewFieldSpec(systemsetting.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(systemsetting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(systemsetting.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsEncrypted(); ok {
		_spec.SetField(systemsetting.FieldIsEncrypted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(systemsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{systemsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SystemSettingUpdateOne is the builder for updating a single SystemSetting entity.
type SystemSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SystemSettingMutation
}

// SetKey sets the "key" field.
func (_u *SystemSettingUpdateOne) SetKey(v string) *SystemSettingUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SystemSettingUpdateOne) SetNillableKey(v *string) *SystemSettingUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SystemSettingUpdateOne) SetValue(v string) *SystemSettingUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SystemSettingUpdateOne) SetNillableValue(v *string) *SystemSettingUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetIsEncrypted sets the "is_encrypted" field.
func (_u *SystemSettingUpdateOne) SetIsEncrypted(v bool) *SystemSettingUpdateOne {
	_u.mutation.SetIsEncrypted(v)
	return _u
}

// SetNillableIsEncrypted sets the "is_encrypted" field if the given value is not nil.
func (_u *SystemSettingUpdateOne) SetNillableIsEncrypted(v *bool) *SystemSettingUpdateOne {
	if v != nil {
		_u.SetIsEncrypted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SystemSettingUpdateOne) SetUpdatedAt(v time.Time) *SystemSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SystemSettingMutation object of the builder.
func (_u *SystemSettingUpdateOne) Mutation() *SystemSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the SystemSettingUpdate builder.
func (_u *SystemSettingUpdateOne) Where(ps ...predicate.SystemSetting) *SystemSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SystemSettingUpdateOne) Select(field string, fields ...string) *SystemSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SystemSetting entity.
func (_u *SystemSettingUpdateOne) Save(ctx context.Context) (*SystemSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SystemSettingUpdateOne) SaveX(ctx context.Context) *SystemSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SystemSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SystemSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SystemSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := systemsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SystemSettingUpdateOne) sqlSave(ctx context.Context) (_node *SystemSetting, err error) {
	_spec := sqlgraph.NewUpdateSpec(systemsetting.Table, systemsetting.Columns, sqlgraph.NewFieldSpec(systemsetting.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SystemSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, systemsetting.FieldID)
		for _, f := range fields {
			if !systemsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != systemsetting.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(systemsetting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(systemsetting.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsEncrypted(); ok {
		_spec.SetField(systemsetting.FieldIsEncrypted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(systemsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SystemSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{systemsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
