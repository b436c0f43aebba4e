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
	"github.com/klartext-health/befund/ent/ocrconfiguration"
)

// OCRConfigurationCreate is the builder for creating a OCRConfiguration entity.
type OCRConfigurationCreate struct {
	config
	mutation *OCRConfigurationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngine sets the "engine" field.
func (_c *OCRConfigurationCreate) SetEngine(v string) *OCRConfigurationCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_c *OCRConfigurationCreate) SetNillableEngine(v *string) *OCRConfigurationCreate {
	if v != nil {
		_c.SetEngine(*v)
	}
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *OCRConfigurationCreate) SetEndpoint(v string) *OCRConfigurationCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_c *OCRConfigurationCreate) SetNillableEndpoint(v *string) *OCRConfigurationCreate {
	if v != nil {
		_c.SetEndpoint(*v)
	}
	return _c
}

// SetLanguageHints sets the "language_hints" field.
func (_c *OCRConfigurationCreate) SetLanguageHints(v []string) *OCRConfigurationCreate {
	_c.mutation.SetLanguageHints(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *OCRConfigurationCreate) SetEnabled(v bool) *OCRConfigurationCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *OCRConfigurationCreate) SetNillableEnabled(v *bool) *OCRConfigurationCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OCRConfigurationCreate) SetCreatedAt(v time.Time) *OCRConfigurationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OCRConfigurationCreate) SetNillableCreatedAt(v *time.Time) *OCRConfigurationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OCRConfigurationCreate) SetUpdatedAt(v time.Time) *OCRConfigurationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OCRConfigurationCreate) SetNillableUpdatedAt(v *time.Time) *OCRConfigurationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the OCRConfigurationMutation object of the builder.
func (_c *OCRConfigurationCreate) Mutation() *OCRConfigurationMutation {
	return _c.mutation
}

// Save creates the OCRConfiguration in the database.
func (_c *OCRConfigurationCreate) Save(ctx context.Context) (*OCRConfiguration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OCRConfigurationCreate) SaveX(ctx context.Context) *OCRConfiguration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRConfigurationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRConfigurationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OCRConfigurationCreate) defaults() {
	if _, ok := _c.mutation.Engine(); !ok {
		v := ocrconfiguration.DefaultEngine
		_c.mutation.SetEngine(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := ocrconfiguration.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ocrconfiguration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ocrconfiguration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OCRConfigurationCreate) check() error {
	if _, ok := _c.mutation.Engine(); !ok {
		return &ValidationError{Name: "engine", err: errors.New(`ent: missing required field "OCRConfiguration.engine"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "OCRConfiguration.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OCRConfiguration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OCRConfiguration.updated_at"`)}
	}
	return nil
}

func (_c *OCRConfigurationCreate) sqlSave(ctx context.Context) (*OCRConfiguration, error) {
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

func (_c *OCRConfigurationCreate) createSpec() (*OCRConfiguration, *sqlgraph.CreateSpec) {
	var (
		_node = &OCRConfiguration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrconfiguration.Table, sqlgraph.NewFieldSpec(ocrconfiguration.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(ocrconfiguration.FieldEngine, field.TypeString, value)
		_node.Engine = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(ocrconfiguration.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.LanguageHints(); ok {
		_spec.SetField(ocrconfiguration.FieldLanguageHints, field.TypeJSON, value)
		_node.LanguageHints = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(ocrconfiguration.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ocrconfiguration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrconfiguration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OCRConfiguration.Create().
//		SetEngine(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OCRConfigurationUpsert) {
//			SetEngine(v+v).
//		}).
//		Exec(ctx)
func (_c *OCRConfigurationCreate) OnConflict(opts ...sql.ConflictOption) *OCRConfigurationUpsertOne {
	_c.conflict = opts
	return &OCRConfigurationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OCRConfiguration.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OCRConfigurationCreate) OnConflictColumns(columns ...string) *OCRConfigurationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OCRConfigurationUpsertOne{
		create: _c,
	}
}

type (
	// OCRConfigurationUpsertOne is the builder for "upsert"-ing
	//  one OCRConfiguration node.
	OCRConfigurationUpsertOne struct {
		create *OCRConfigurationCreate
	}

	// OCRConfigurationUpsert is the "OnConflict" setter.
	OCRConfigurationUpsert struct {
		*sql.UpdateSet
	}
)

// SetEngine sets the "engine" field.
func (u *OCRConfigurationUpsert) SetEngine(v string) *OCRConfigurationUpsert {
	u.Set(ocrconfiguration.FieldEngine, v)
	return u
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *OCRConfigurationUpsert) UpdateEngine() *OCRConfigurationUpsert {
	u.SetExcluded(ocrconfiguration.FieldEngine)
	return u
}

// SetEndpoint sets the "endpoint" field.
func (u *OCRConfigurationUpsert) SetEndpoint(v string) *OCRConfigurationUpsert {
	u.Set(ocrconfiguration.FieldEndpoint, v)
	return u
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *OCRConfigurationUpsert) UpdateEndpoint() *OCRConfigurationUpsert {
	u.SetExcluded(ocrconfiguration.FieldEndpoint)
	return u
}

// ClearEndpoint clears the value of the "endpoint" field.
func (u *OCRConfigurationUpsert) ClearEndpoint() *OCRConfigurationUpsert {
	u.SetNull(ocrconfiguration.FieldEndpoint)
	return u
}

// SetLanguageHints sets the "language_hints" field.
func (u *OCRConfigurationUpsert) SetLanguageHints(v []string) *OCRConfigurationUpsert {
	u.Set(ocrconfiguration.FieldLanguageHints, v)
	return u
}

// UpdateLanguageHints sets the "language_hints" field to the value that was provided on create.
func (u *OCRConfigurationUpsert) UpdateLanguageHints() *OCRConfigurationUpsert {
	u.SetExcluded(ocrconfiguration.FieldLanguageHints)
	return u
}

// ClearLanguageHints clears the value of the "language_hints" field.
func (u *OCRConfigurationUpsert) ClearLanguageHints() *OCRConfigurationUpsert {
	u.SetNull(ocrconfiguration.FieldLanguageHints)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *OCRConfigurationUpsert) SetEnabled(v bool) *OCRConfigurationUpsert {
	u.Set(ocrconfiguration.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *OCRConfigurationUpsert) UpdateEnabled() *OCRConfigurationUpsert {
	u.SetExcluded(ocrconfiguration.FieldEnabled)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *OCRConfigurationUpsert) SetCreatedAt(v time.Time) *OCRConfigurationUpsert {
	u.Set(ocrconfiguration.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OCRConfigurationUpsert) UpdateCreatedAt() *OCRConfigurationUpsert {
	u.SetExcluded(ocrconfiguration.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OCRConfigurationUpsert) SetUpdatedAt(v time.Time) *OCRConfigurationUpsert {
	u.Set(ocrconfiguration.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OCRConfigurationUpsert) UpdateUpdatedAt() *OCRConfigurationUpsert {
	u.SetExcluded(ocrconfiguration.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OCRConfiguration.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OCRConfigurationUpsertOne) UpdateNewValues() *OCRConfigurationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OCRConfiguration.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OCRConfigurationUpsertOne) Ignore() *OCRConfigurationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OCRConfigurationUpsertOne) DoNothing() *OCRConfigurationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OCRConfigurationCreate.OnConflict
// documentation for more info.
func (u *OCRConfigurationUpsertOne) Update(set func(*OCRConfigurationUpsert)) *OCRConfigurationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OCRConfigurationUpsert{UpdateSet: update})
	}))
	return u
}

// SetEngine sets the "engine" field.
func (u *OCRConfigurationUpsertOne) SetEngine(v string) *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetEngine(v)
	})
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *OCRConfigurationUpsertOne) UpdateEngine() *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateEngine()
	})
}

// SetEndpoint sets the "endpoint" field.
func (u *OCRConfigurationUpsertOne) SetEndpoint(v string) *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *OCRConfigurationUpsertOne) UpdateEndpoint() *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateEndpoint()
	})
}

// ClearEndpoint clears the value of the "endpoint" field.
func (u *OCRConfigurationUpsertOne) ClearEndpoint() *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.ClearEndpoint()
	})
}

// SetLanguageHints sets the "language_hints" field.
func (u *OCRConfigurationUpsertOne) SetLanguageHints(v []string) *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetLanguageHints(v)
	})
}

// UpdateLanguageHints sets the "language_hints" field to the value that was provided on create.
func (u *OCRConfigurationUpsertOne) UpdateLanguageHints() *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateLanguageHints()
	})
}

// ClearLanguageHints clears the value of the "language_hints" field.
func (u *OCRConfigurationUpsertOne) ClearLanguageHints() *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.ClearLanguageHints()
	})
}

// SetEnabled sets the "enabled" field.
func (u *OCRConfigurationUpsertOne) SetEnabled(v bool) *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *OCRConfigurationUpsertOne) UpdateEnabled() *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateEnabled()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OCRConfigurationUpsertOne) SetCreatedAt(v time.Time) *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OCRConfigurationUpsertOne) UpdateCreatedAt() *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OCRConfigurationUpsertOne) SetUpdatedAt(v time.Time) *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OCRConfigurationUpsertOne) UpdateUpdatedAt() *OCRConfigurationUpsertOne {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OCRConfigurationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OCRConfigurationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OCRConfigurationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OCRConfigurationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OCRConfigurationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OCRConfigurationCreateBulk is the builder for creating many OCRConfiguration entities in bulk.
type OCRConfigurationCreateBulk struct {
	config
	err      error
	builders []*OCRConfigurationCreate
	conflict []sql.ConflictOption
}

// Save creates the OCRConfiguration entities in the database.
func (_c *OCRConfigurationCreateBulk) Save(ctx context.Context) ([]*OCRConfiguration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OCRConfiguration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OCRConfigurationMutation)
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
func (_c *OCRConfigurationCreateBulk) SaveX(ctx context.Context) []*OCRConfiguration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRConfigurationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRConfigurationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OCRConfiguration.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OCRConfigurationUpsert) {
//			SetEngine(v+v).
//		}).
//		Exec(ctx)
func (_c *OCRConfigurationCreateBulk) OnConflict(opts ...sql.ConflictOption) *OCRConfigurationUpsertBulk {
	_c.conflict = opts
	return &OCRConfigurationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OCRConfiguration.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OCRConfigurationCreateBulk) OnConflictColumns(columns ...string) *OCRConfigurationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OCRConfigurationUpsertBulk{
		create: _c,
	}
}

// OCRConfigurationUpsertBulk is the builder for "upsert"-ing
// a bulk of OCRConfiguration nodes.
type OCRConfigurationUpsertBulk struct {
	create *OCRConfigurationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OCRConfiguration.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OCRConfigurationUpsertBulk) UpdateNewValues() *OCRConfigurationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OCRConfiguration.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OCRConfigurationUpsertBulk) Ignore() *OCRConfigurationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OCRConfigurationUpsertBulk) DoNothing() *OCRConfigurationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OCRConfigurationCreateBulk.OnConflict
// documentation for more info.
func (u *OCRConfigurationUpsertBulk) Update(set func(*OCRConfigurationUpsert)) *OCRConfigurationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OCRConfigurationUpsert{UpdateSet: update})
	}))
	return u
}

// SetEngine sets the "engine" field.
func (u *OCRConfigurationUpsertBulk) SetEngine(v string) *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetEngine(v)
	})
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *OCRConfigurationUpsertBulk) UpdateEngine() *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateEngine()
	})
}

// SetEndpoint sets the "endpoint" field.
func (u *OCRConfigurationUpsertBulk) SetEndpoint(v string) *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *OCRConfigurationUpsertBulk) UpdateEndpoint() *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateEndpoint()
	})
}

// ClearEndpoint clears the value of the "endpoint" field.
func (u *OCRConfigurationUpsertBulk) ClearEndpoint() *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.ClearEndpoint()
	})
}

// SetLanguageHints sets the "language_hints" field.
func (u *OCRConfigurationUpsertBulk) SetLanguageHints(v []string) *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetLanguageHints(v)
	})
}

// UpdateLanguageHints sets the "language_hints" field to the value that was provided on create.
func (u *OCRConfigurationUpsertBulk) UpdateLanguageHints() *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateLanguageHints()
	})
}

// ClearLanguageHints clears the value of the "language_hints" field.
func (u *OCRConfigurationUpsertBulk) ClearLanguageHints() *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.ClearLanguageHints()
	})
}

// SetEnabled sets the "enabled" field.
func (u *OCRConfigurationUpsertBulk) SetEnabled(v bool) *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *OCRConfigurationUpsertBulk) UpdateEnabled() *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateEnabled()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OCRConfigurationUpsertBulk) SetCreatedAt(v time.Time) *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OCRConfigurationUpsertBulk) UpdateCreatedAt() *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OCRConfigurationUpsertBulk) SetUpdatedAt(v time.Time) *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OCRConfigurationUpsertBulk) UpdateUpdatedAt() *OCRConfigurationUpsertBulk {
	return u.Update(func(s *OCRConfigurationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OCRConfigurationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OCRConfigurationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OCRConfigurationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OCRConfigurationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
