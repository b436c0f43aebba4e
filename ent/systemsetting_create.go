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
	"github.com/klartext-health/befund/ent/systemsetting"
)

// SystemSettingCreate is the builder for creating a SystemSetting entity.
type SystemSettingCreate struct {
	config
	mutation *SystemSettingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *SystemSettingCreate) SetKey(v string) *SystemSettingCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SystemSettingCreate) SetValue(v string) *SystemSettingCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetIsEncrypted sets the "is_encrypted" field.
func (_c *SystemSettingCreate) SetIsEncrypted(v bool) *SystemSettingCreate {
	_c.mutation.SetIsEncrypted(v)
	return _c
}

// SetNillableIsEncrypted sets the "is_encrypted" field if the given value is not nil.
func (_c *SystemSettingCreate) SetNillableIsEncrypted(v *bool) *SystemSettingCreate {
	if v != nil {
		_c.SetIsEncrypted(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SystemSettingCreate) SetUpdatedAt(v time.Time) *SystemSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SystemSettingCreate) SetNillableUpdatedAt(v *time.Time) *SystemSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SystemSettingMutation object of the builder.
func (_c *SystemSettingCreate) Mutation() *SystemSettingMutation {
	return _c.mutation
}

// Save creates the SystemSetting in the database.
func (_c *SystemSettingCreate) Save(ctx context.Context) (*SystemSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SystemSettingCreate) SaveX(ctx context.Context) *SystemSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SystemSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SystemSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SystemSettingCreate) defaults() {
	if _, ok := _c.mutation.IsEncrypted(); !ok {
		v := systemsetting.DefaultIsEncrypted
		_c.mutation.SetIsEncrypted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := systemsetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SystemSettingCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "SystemSetting.key"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "SystemSetting.value"`)}
	}
	if _, ok := _c.mutation.IsEncrypted(); !ok {
		return &ValidationError{Name: "is_encrypted", err: errors.New(`ent: missing required field "SystemSetting.is_encrypted"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SystemSetting.updated_at"`)}
	}
	return nil
}

func (_c *SystemSettingCreate) sqlSave(ctx context.Context) (*SystemSetting, error) {
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

func (_c *SystemSettingCreate) createSpec() (*SystemSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &SystemSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(systemsetting.Table, sqlgraph.NewFieldSpec(systemsetting.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(systemsetting.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(systemsetting.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.IsEncrypted(); ok {
		_spec.SetField(systemsetting.FieldIsEncrypted, field.TypeBool, value)
		_node.IsEncrypted = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(systemsetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SystemSetting.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SystemSettingUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *SystemSettingCreate) OnConflict(opts ...sql.ConflictOption) *SystemSettingUpsertOne {
	_c.conflict = opts
	return &SystemSettingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SystemSetting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SystemSettingCreate) OnConflictColumns(columns ...string) *SystemSettingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SystemSettingUpsertOne{
		create: _c,
	}
}

type (
	// SystemSettingUpsertOne is the builder for "upsert"-ing
	//  one SystemSetting node.
	SystemSettingUpsertOne struct {
		create *SystemSettingCreate
	}

	// SystemSettingUpsert is the "OnConflict" setter.
	SystemSettingUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *SystemSettingUpsert) SetKey(v string) *SystemSettingUpsert {
	u.Set(systemsetting.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *SystemSettingUpsert) UpdateKey() *SystemSettingUpsert {
	u.SetExcluded(systemsetting.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *SystemSettingUpsert) SetValue(v string) *SystemSettingUpsert {
	u.Set(systemsetting.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SystemSettingUpsert) UpdateValue() *SystemSettingUpsert {
	u.SetExcluded(systemsetting.FieldValue)
	return u
}

// SetIsEncrypted sets the "is_encrypted" field.
func (u *SystemSettingUpsert) SetIsEncrypted(v bool) *SystemSettingUpsert {
	u.Set(systemsetting.FieldIsEncrypted, v)
	return u
}

// UpdateIsEncrypted sets the "is_encrypted" field to the value that was provided on create.
func (u *SystemSettingUpsert) UpdateIsEncrypted() *SystemSettingUpsert {
	u.SetExcluded(systemsetting.FieldIsEncrypted)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SystemSettingUpsert) SetUpdatedAt(v time.Time) *SystemSettingUpsert {
	u.Set(systemsetting.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SystemSettingUpsert) UpdateUpdatedAt() *SystemSettingUpsert {
	u.SetExcluded(systemsetting.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SystemSetting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SystemSettingUpsertOne) UpdateNewValues() *SystemSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SystemSetting.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SystemSettingUpsertOne) Ignore() *SystemSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SystemSettingUpsertOne) DoNothing() *SystemSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SystemSettingCreate.OnConflict
// documentation for more info.
func (u *SystemSettingUpsertOne) Update(set func(*SystemSettingUpsert)) *SystemSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SystemSettingUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *SystemSettingUpsertOne) SetKey(v string) *SystemSettingUpsertOne {
	return u.Update(func(s *SystemSettingUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *SystemSettingUpsertOne) UpdateKey() *SystemSettingUpsertOne {
	return u.Update(func(s *SystemSettingUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *SystemSettingUpsertOne) SetValue(v string) *SystemSettingUpsertOne {
	return u.Update(func(s *SystemSettingUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SystemSettingUpsertOne) UpdateValue() *SystemSettingUpsertOne {
	return u.Update(func(s *SystemSettingUpsert) {
		s.UpdateValue()
	})
}

// SetIsEncrypted sets the "is_encrypted" field.
func (u *SystemSettingUpsertOne) SetIsEncrypted(v bool) *SystemSettingUpsertOne {
	return u.Update(func(s *SystemSettingUpsert) {
		s.SetIsEncrypted(v)
	})
}

// UpdateIsEncrypted sets the "is_encrypted" field to the value that was provided on create.
func (u *SystemSettingUpsertOne) UpdateIsEncrypted() *SystemSettingUpsertOne {
	return u.Update(func(s *SystemSettingUpsert) {
		s.UpdateIsEncrypted()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SystemSettingUpsertOne) SetUpdatedAt(v time.Time) *SystemSettingUpsertOne {
	return u.Update(func(s *SystemSettingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SystemSettingUpsertOne) UpdateUpdatedAt() *SystemSettingUpsertOne {
	return u.Update(func(s *SystemSettingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SystemSettingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SystemSettingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SystemSettingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SystemSettingUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SystemSettingUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SystemSettingCreateBulk is the builder for creating many SystemSetting entities in bulk.
type SystemSettingCreateBulk struct {
	config
	err      error
	builders []*SystemSettingCreate
	conflict []sql.ConflictOption
}

// Save creates the SystemSetting entities in the database.
func (_c *SystemSettingCreateBulk) Save(ctx context.Context) ([]*SystemSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SystemSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SystemSettingMutation)
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
func (_c *SystemSettingCreateBulk) SaveX(ctx context.Context) []*SystemSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SystemSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SystemSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SystemSetting.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SystemSettingUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *SystemSettingCreateBulk) OnConflict(opts ...sql.ConflictOption) *SystemSettingUpsertBulk {
	_c.conflict = opts
	return &SystemSettingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SystemSetting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SystemSettingCreateBulk) OnConflictColumns(columns ...string) *SystemSettingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SystemSettingUpsertBulk{
		create: _c,
	}
}

// SystemSettingUpsertBulk is the builder for "upsert"-ing
// a bulk of SystemSetting nodes.
type SystemSettingUpsertBulk struct {
	create *SystemSettingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SystemSetting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SystemSettingUpsertBulk) UpdateNewValues() *SystemSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SystemSetting.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SystemSettingUpsertBulk) Ignore() *SystemSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SystemSettingUpsertBulk) DoNothing() *SystemSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SystemSettingCreateBulk.OnConflict
// documentation for more info.
func (u *SystemSettingUpsertBulk) Update(set func(*SystemSettingUpsert)) *SystemSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SystemSettingUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *SystemSettingUpsertBulk) SetKey(v string) *SystemSettingUpsertBulk {
	return u.Update(func(s *SystemSettingUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *SystemSettingUpsertBulk) UpdateKey() *SystemSettingUpsertBulk {
	return u.Update(func(s *SystemSettingUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *SystemSettingUpsertBulk) SetValue(v string) *SystemSettingUpsertBulk {
	return u.Update(func(s *SystemSettingUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SystemSettingUpsertBulk) UpdateValue() *SystemSettingUpsertBulk {
	return u.Update(func(s *SystemSettingUpsert) {
		s.UpdateValue()
	})
}

// SetIsEncrypted sets the "is_encrypted" field.
func (u *SystemSettingUpsertBulk) SetIsEncrypted(v bool) *SystemSettingUpsertBulk {
	return u.Update(func(s *SystemSettingUpsert) {
		s.SetIsEncrypted(v)
	})
}

// UpdateIsEncrypted sets the "is_encrypted" field to the value that was provided on create.
func (u *SystemSettingUpsertBulk) UpdateIsEncrypted() *SystemSettingUpsertBulk {
	return u.Update(func(s *SystemSettingUpsert) {
		s.UpdateIsEncrypted()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SystemSettingUpsertBulk) SetUpdatedAt(v time.Time) *SystemSettingUpsertBulk {
	return u.Update(func(s *SystemSettingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SystemSettingUpsertBulk) UpdateUpdatedAt() *SystemSettingUpsertBulk {
	return u.Update(func(s *SystemSettingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SystemSettingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SystemSettingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SystemSettingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SystemSettingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
