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

// DocumentClassCreate is the builder for creating a DocumentClass entity.
type DocumentClassCreate struct {
	config
	mutation *DocumentClassMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetClassKey sets the "class_key" field.
func (_c *DocumentClassCreate) SetClassKey(v string) *DocumentClassCreate {
	_c.mutation.SetClassKey(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *DocumentClassCreate) SetDisplayName(v string) *DocumentClassCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *DocumentClassCreate) SetEnabled(v bool) *DocumentClassCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *DocumentClassCreate) SetNillableEnabled(v *bool) *DocumentClassCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentClassCreate) SetCreatedAt(v time.Time) *DocumentClassCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentClassCreate) SetNillableCreatedAt(v *time.Time) *DocumentClassCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by IDs.
func (_c *DocumentClassCreate) AddStepIDs(ids ...int) *DocumentClassCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the PipelineStep entity.
func (_c *DocumentClassCreate) AddSteps(v ...*PipelineStep) *DocumentClassCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the DocumentClassMutation object of the builder.
func (_c *DocumentClassCreate) Mutation() *DocumentClassMutation {
	return _c.mutation
}

// Save creates the DocumentClass in the database.
func (_c *DocumentClassCreate) Save(ctx context.Context) (*DocumentClass, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentClassCreate) SaveX(ctx context.Context) *DocumentClass {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentClassCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentClassCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentClassCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := documentclass.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentclass.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentClassCreate) check() error {
	if _, ok := _c.mutation.ClassKey(); !ok {
		return &ValidationError{Name: "class_key", err: errors.New(`ent: missing required field "DocumentClass.class_key"`)}
	}
	if v, ok := _c.mutation.ClassKey(); ok {
		if err := documentclass.ClassKeyValidator(v); err != nil {
			return &ValidationError{Name: "class_key", err: fmt.Errorf(`ent: validator failed for field "DocumentClass.class_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "DocumentClass.display_name"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "DocumentClass.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentClass.created_at"`)}
	}
	return nil
}

func (_c *DocumentClassCreate) sqlSave(ctx context.Context) (*DocumentClass, error) {
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

func (_c *DocumentClassCreate) createSpec() (*DocumentClass, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentClass{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentclass.Table, sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ClassKey(); ok {
		_spec.SetField(documentclass.FieldClassKey, field.TypeString, value)
		_node.ClassKey = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(documentclass.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(documentclass.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentclass.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentclass.StepsTable,
			Columns: []string{documentclass.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocumentClass.Create().
//		SetClassKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentClassUpsert) {
//			SetClassKey(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentClassCreate) OnConflict(opts ...sql.ConflictOption) *DocumentClassUpsertOne {
	_c.conflict = opts
	return &DocumentClassUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocumentClass.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentClassCreate) OnConflictColumns(columns ...string) *DocumentClassUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentClassUpsertOne{
		create: _c,
	}
}

type (
	// DocumentClassUpsertOne is the builder for "upsert"-ing
	//  one DocumentClass node.
	DocumentClassUpsertOne struct {
		create *DocumentClassCreate
	}

	// DocumentClassUpsert is the "OnConflict" setter.
	DocumentClassUpsert struct {
		*sql.UpdateSet
	}
)

// SetClassKey sets the "class_key" field.
func (u *DocumentClassUpsert) SetClassKey(v string) *DocumentClassUpsert {
	u.Set(documentclass.FieldClassKey, v)
	return u
}

// UpdateClassKey sets the "class_key" field to the value that was provided on create.
func (u *DocumentClassUpsert) UpdateClassKey() *DocumentClassUpsert {
	u.SetExcluded(documentclass.FieldClassKey)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *DocumentClassUpsert) SetDisplayName(v string) *DocumentClassUpsert {
	u.Set(documentclass.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *DocumentClassUpsert) UpdateDisplayName() *DocumentClassUpsert {
	u.SetExcluded(documentclass.FieldDisplayName)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *DocumentClassUpsert) SetEnabled(v bool) *DocumentClassUpsert {
	u.Set(documentclass.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *DocumentClassUpsert) UpdateEnabled() *DocumentClassUpsert {
	u.SetExcluded(documentclass.FieldEnabled)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentClassUpsert) SetCreatedAt(v time.Time) *DocumentClassUpsert {
	u.Set(documentclass.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentClassUpsert) UpdateCreatedAt() *DocumentClassUpsert {
	u.SetExcluded(documentclass.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DocumentClass.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocumentClassUpsertOne) UpdateNewValues() *DocumentClassUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocumentClass.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentClassUpsertOne) Ignore() *DocumentClassUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentClassUpsertOne) DoNothing() *DocumentClassUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentClassCreate.OnConflict
// documentation for more info.
func (u *DocumentClassUpsertOne) Update(set func(*DocumentClassUpsert)) *DocumentClassUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentClassUpsert{UpdateSet: update})
	}))
	return u
}

// SetClassKey sets the "class_key" field.
func (u *DocumentClassUpsertOne) SetClassKey(v string) *DocumentClassUpsertOne {
	return u.Update(func(s *DocumentClassUpsert) {
		s.SetClassKey(v)
	})
}

// UpdateClassKey sets the "class_key" field to the value that was provided on create.
func (u *DocumentClassUpsertOne) UpdateClassKey() *DocumentClassUpsertOne {
	return u.Update(func(s *DocumentClassUpsert) {
		s.UpdateClassKey()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *DocumentClassUpsertOne) SetDisplayName(v string) *DocumentClassUpsertOne {
	return u.Update(func(s *DocumentClassUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *DocumentClassUpsertOne) UpdateDisplayName() *DocumentClassUpsertOne {
	return u.Update(func(s *DocumentClassUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEnabled sets the "enabled" field.
func (u *DocumentClassUpsertOne) SetEnabled(v bool) *DocumentClassUpsertOne {
	return u.Update(func(s *DocumentClassUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *DocumentClassUpsertOne) UpdateEnabled() *DocumentClassUpsertOne {
	return u.Update(func(s *DocumentClassUpsert) {
		s.UpdateEnabled()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentClassUpsertOne) SetCreatedAt(v time.Time) *DocumentClassUpsertOne {
	return u.Update(func(s *DocumentClassUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentClassUpsertOne) UpdateCreatedAt() *DocumentClassUpsertOne {
	return u.Update(func(s *DocumentClassUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DocumentClassUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentClassCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentClassUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentClassUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentClassUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentClassCreateBulk is the builder for creating many DocumentClass entities in bulk.
type DocumentClassCreateBulk struct {
	config
	err      error
	builders []*DocumentClassCreate
	conflict []sql.ConflictOption
}

// Save creates the DocumentClass entities in the database.
func (_c *DocumentClassCreateBulk) Save(ctx context.Context) ([]*DocumentClass, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentClass, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentClassMutation)
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
func (_c *DocumentClassCreateBulk) SaveX(ctx context.Context) []*DocumentClass {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentClassCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentClassCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocumentClass.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentClassUpsert) {
//			SetClassKey(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentClassCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentClassUpsertBulk {
	_c.conflict = opts
	return &DocumentClassUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocumentClass.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentClassCreateBulk) OnConflictColumns(columns ...string) *DocumentClassUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentClassUpsertBulk{
		create: _c,
	}
}

// DocumentClassUpsertBulk is the builder for "upsert"-ing
// a bulk of DocumentClass nodes.
type DocumentClassUpsertBulk struct {
	create *DocumentClassCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DocumentClass.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocumentClassUpsertBulk) UpdateNewValues() *DocumentClassUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocumentClass.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentClassUpsertBulk) Ignore() *DocumentClassUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentClassUpsertBulk) DoNothing() *DocumentClassUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentClassCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentClassUpsertBulk) Update(set func(*DocumentClassUpsert)) *DocumentClassUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentClassUpsert{UpdateSet: update})
	}))
	return u
}

// SetClassKey sets the "class_key" field.
func (u *DocumentClassUpsertBulk) SetClassKey(v string) *DocumentClassUpsertBulk {
	return u.Update(func(s *DocumentClassUpsert) {
		s.SetClassKey(v)
	})
}

// UpdateClassKey sets the "class_key" field to the value that was provided on create.
func (u *DocumentClassUpsertBulk) UpdateClassKey() *DocumentClassUpsertBulk {
	return u.Update(func(s *DocumentClassUpsert) {
		s.UpdateClassKey()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *DocumentClassUpsertBulk) SetDisplayName(v string) *DocumentClassUpsertBulk {
	return u.Update(func(s *DocumentClassUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *DocumentClassUpsertBulk) UpdateDisplayName() *DocumentClassUpsertBulk {
	return u.Update(func(s *DocumentClassUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEnabled sets the "enabled" field.
func (u *DocumentClassUpsertBulk) SetEnabled(v bool) *DocumentClassUpsertBulk {
	return u.Update(func(s *DocumentClassUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *DocumentClassUpsertBulk) UpdateEnabled() *DocumentClassUpsertBulk {
	return u.Update(func(s *DocumentClassUpsert) {
		s.UpdateEnabled()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentClassUpsertBulk) SetCreatedAt(v time.Time) *DocumentClassUpsertBulk {
	return u.Update(func(s *DocumentClassUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentClassUpsertBulk) UpdateCreatedAt() *DocumentClassUpsertBulk {
	return u.Update(func(s *DocumentClassUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DocumentClassUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentClassCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentClassCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentClassUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
