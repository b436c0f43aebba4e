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
	"github.com/klartext-health/befund/ent/ocrconfiguration"
	"github.com/klartext-health/befund/ent/predicate"
)

// OCRConfigurationUpdate is the builder for updating OCRConfiguration entities.
type OCRConfigurationUpdate struct {
	config
	hooks    []Hook
	mutation *OCRConfigurationMutation
}

// Where appends a list predicates to the OCRConfigurationUpdate builder.
func (_u *OCRConfigurationUpdate) Where(ps ...predicate.OCRConfiguration) *OCRConfigurationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEngine sets the "engine" field.
func (_u *OCRConfigurationUpdate) SetEngine(v string) *OCRConfigurationUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *OCRConfigurationUpdate) SetNillableEngine(v *string) *OCRConfigurationUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *OCRConfigurationUpdate) SetEndpoint(v string) *OCRConfigurationUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *OCRConfigurationUpdate) SetNillableEndpoint(v *string) *OCRConfigurationUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// ClearEndpoint clears the value of the "endpoint" field.
func (_u *OCRConfigurationUpdate) ClearEndpoint() *OCRConfigurationUpdate {
	_u.mutation.ClearEndpoint()
	return _u
}

// SetLanguageHints sets the "language_hints" field.
func (_u *OCRConfigurationUpdate) SetLanguageHints(v []string) *OCRConfigurationUpdate {
	_u.mutation.SetLanguageHints(v)
	return _u
}

// AppendLanguageHints appends value to the "language_hints" field.
func (_u *OCRConfigurationUpdate) AppendLanguageHints(v []string) *OCRConfigurationUpdate {
	_u.mutation.AppendLanguageHints(v)
	return _u
}

// ClearLanguageHints clears the value of the "language_hints" field.
func (_u *OCRConfigurationUpdate) ClearLanguageHints() *OCRConfigurationUpdate {
	_u.mutation.ClearLanguageHints()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *OCRConfigurationUpdate) SetEnabled(v bool) *OCRConfigurationUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *OCRConfigurationUpdate) SetNillableEnabled(v *bool) *OCRConfigurationUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OCRConfigurationUpdate) SetCreatedAt(v time.Time) *OCRConfigurationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OCRConfigurationUpdate) SetNillableCreatedAt(v *time.Time) *OCRConfigurationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OCRConfigurationUpdate) SetUpdatedAt(v time.Time) *OCRConfigurationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OCRConfigurationMutation object of the builder.
func (_u *OCRConfigurationUpdate) Mutation() *OCRConfigurationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OCRConfigurationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRConfigurationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OCRConfigurationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRConfigurationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OCRConfigurationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ocrconfiguration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *OCRConfigurationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ocrconfiguration.Table, ocrconfiguration.Columns, sqlgraph.NewFieldSpec(ocrconfiguration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(ocrconfiguration.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(ocrconfiguration.FieldEndpoint, field.TypeString, value)
	}
	if _u.mutation.EndpointCleared() {
		_spec.ClearField(ocrconfiguration.FieldEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageHints(); ok {
		_spec.SetField(ocrconfiguration.FieldLanguageHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguageHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrconfiguration.FieldLanguageHints, value)
		})
	}
	if _u.mutation.LanguageHintsCleared() {
		_spec.ClearField(ocrconfiguration.FieldLanguageHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(ocrconfiguration.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrconfiguration.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrconfiguration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrconfiguration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OCRConfigurationUpdateOne is the builder for updating a single OCRConfiguration entity.
type OCRConfigurationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OCRConfigurationMutation
}

// SetEngine sets the "engine" field.
func (_u *OCRConfigurationUpdateOne) SetEngine(v string) *OCRConfigurationUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *OCRConfigurationUpdateOne) SetNillableEngine(v *string) *OCRConfigurationUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *OCRConfigurationUpdateOne) SetEndpoint(v string) *OCRConfigurationUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *OCRConfigurationUpdateOne) SetNillableEndpoint(v *string) *OCRConfigurationUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// ClearEndpoint clears the value of the "endpoint" field.
func (_u *OCRConfigurationUpdateOne) ClearEndpoint() *OCRConfigurationUpdateOne {
	_u.mutation.ClearEndpoint()
	return _u
}

// SetLanguageHints sets the "language_hints" field.
func (_u *OCRConfigurationUpdateOne) SetLanguageHints(v []string) *OCRConfigurationUpdateOne {
	_u.mutation.SetLanguageHints(v)
	return _u
}

// AppendLanguageHints appends value to the "language_hints" field.
func (_u *OCRConfigurationUpdateOne) AppendLanguageHints(v []string) *OCRConfigurationUpdateOne {
	_u.mutation.AppendLanguageHints(v)
	return _u
}

// ClearLanguageHints clears the value of the "language_hints" field.
func (_u *OCRConfigurationUpdateOne) ClearLanguageHints() *OCRConfigurationUpdateOne {
	_u.mutation.ClearLanguageHints()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *OCRConfigurationUpdateOne) SetEnabled(v bool) *OCRConfigurationUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *OCRConfigurationUpdateOne) SetNillableEnabled(v *bool) *OCRConfigurationUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OCRConfigurationUpdateOne) SetCreatedAt(v time.Time) *OCRConfigurationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OCRConfigurationUpdateOne) SetNillableCreatedAt(v *time.Time) *OCRConfigurationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OCRConfigurationUpdateOne) SetUpdatedAt(v time.Time) *OCRConfigurationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OCRConfigurationMutation object of the builder.
func (_u *OCRConfigurationUpdateOne) Mutation() *OCRConfigurationMutation {
	return _u.mutation
}

// Where appends a list predicates to the OCRConfigurationUpdate builder.
func (_u *OCRConfigurationUpdateOne) Where(ps ...predicate.OCRConfiguration) *OCRConfigurationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OCRConfigurationUpdateOne) Select(field string, fields ...string) *OCRConfigurationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OCRConfiguration entity.
func (_u *OCRConfigurationUpdateOne) Save(ctx context.Context) (*OCRConfiguration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRConfigurationUpdateOne) SaveX(ctx context.Context) *OCRConfiguration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OCRConfigurationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRConfigurationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OCRConfigurationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ocrconfiguration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *OCRConfigurationUpdateOne) sqlSave(ctx context.Context) (_node *OCRConfiguration, err error) {
	_spec := sqlgraph.NewUpdateSpec(ocrconfiguration.Table, ocrconfiguration.Columns, sqlgraph.NewFieldSpec(ocrconfiguration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OCRConfiguration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrconfiguration.FieldID)
		for _, f := range fields {
			if !ocrconfiguration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrconfiguration.FieldID {
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
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(ocrconfiguration.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(ocrconfiguration.FieldEndpoint, field.TypeString, value)
	}
	if _u.mutation.EndpointCleared() {
		_spec.ClearField(ocrconfiguration.FieldEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageHints(); ok {
		_spec.SetField(ocrconfiguration.FieldLanguageHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguageHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrconfiguration.FieldLanguageHints, value)
		})
	}
	if _u.mutation.LanguageHintsCleared() {
		_spec.ClearField(ocrconfiguration.FieldLanguageHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(ocrconfiguration.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrconfiguration.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrconfiguration.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &OCRConfiguration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrconfiguration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
