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
	"github.com/klartext-health/befund/ent/predicate"
)

// DocumentClassUpdate is the builder for updating DocumentClass entities.
type DocumentClassUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentClassMutation
}

// Where appends a list predicates to the DocumentClassUpdate builder.
func (_u *DocumentClassUpdate) Where(ps ...predicate.DocumentClass) *DocumentClassUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClassKey sets the "class_key" field.
func (_u *DocumentClassUpdate) SetClassKey(v string) *DocumentClassUpdate {
	_u.mutation.SetClassKey(v)
	return _u
}

// SetNillableClassKey sets the "class_key" field if the given value is not nil.
func (_u *DocumentClassUpdate) SetNillableClassKey(v *string) *DocumentClassUpdate {
	if v != nil {
		_u.SetClassKey(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *DocumentClassUpdate) SetDisplayName(v string) *DocumentClassUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *DocumentClassUpdate) SetNillableDisplayName(v *string) *DocumentClassUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *DocumentClassUpdate) SetEnabled(v bool) *DocumentClassUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *DocumentClassUpdate) SetNillableEnabled(v *bool) *DocumentClassUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentClassUpdate) SetCreatedAt(v time.Time) *DocumentClassUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentClassUpdate) SetNillableCreatedAt(v *time.Time) *DocumentClassUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by IDs.
func (_u *DocumentClassUpdate) AddStepIDs(ids ...int) *DocumentClassUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the PipelineStep entity.
func (_u *DocumentClassUpdate) AddSteps(v ...*PipelineStep) *DocumentClassUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the DocumentClassMutation object of the builder.
func (_u *DocumentClassUpdate) Mutation() *DocumentClassMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the PipelineStep entity.
func (_u *DocumentClassUpdate) ClearSteps() *DocumentClassUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to PipelineStep entities by IDs.
func (_u *DocumentClassUpdate) RemoveStepIDs(ids ...int) *DocumentClassUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to PipelineStep entities.
func (_u *DocumentClassUpdate) RemoveSteps(v ...*PipelineStep) *DocumentClassUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentClassUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentClassUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentClassUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentClassUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentClassUpdate) check() error {
	if v, ok := _u.mutation.ClassKey(); ok {
		if err := documentclass.ClassKeyValidator(v); err != nil {
			return &ValidationError{Name: "class_key", err: fmt.Errorf(`ent: validator failed for field "DocumentClass.class_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentClassUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentclass.Table, documentclass.Columns, sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClassKey(); ok {
		_spec.SetField(documentclass.FieldClassKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(documentclass.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(documentclass.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documentclass.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentclass.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentClassUpdateOne is the builder for updating a single DocumentClass entity.
type DocumentClassUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentClassMutation
}

// SetClassKey sets the "class_key" field.
func (_u *DocumentClassUpdateOne) SetClassKey(v string) *DocumentClassUpdateOne {
	_u.mutation.SetClassKey(v)
	return _u
}

// SetNillableClassKey sets the "class_key" field if the given value is not nil.
func (_u *DocumentClassUpdateOne) SetNillableClassKey(v *string) *DocumentClassUpdateOne {
	if v != nil {
		_u.SetClassKey(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *DocumentClassUpdateOne) SetDisplayName(v string) *DocumentClassUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *DocumentClassUpdateOne) SetNillableDisplayName(v *string) *DocumentClassUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *DocumentClassUpdateOne) SetEnabled(v bool) *DocumentClassUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *DocumentClassUpdateOne) SetNillableEnabled(v *bool) *DocumentClassUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentClassUpdateOne) SetCreatedAt(v time.Time) *DocumentClassUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentClassUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentClassUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by IDs.
func (_u *DocumentClassUpdateOne) AddStepIDs(ids ...int) *DocumentClassUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the PipelineStep entity.
func (_u *DocumentClassUpdateOne) AddSteps(v ...*PipelineStep) *DocumentClassUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the DocumentClassMutation object of the builder.
func (_u *DocumentClassUpdateOne) Mutation() *DocumentClassMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the PipelineStep entity.
func (_u *DocumentClassUpdateOne) ClearSteps() *DocumentClassUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to PipelineStep entities by IDs.
func (_u *DocumentClassUpdateOne) RemoveStepIDs(ids ...int) *DocumentClassUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to PipelineStep entities.
func (_u *DocumentClassUpdateOne) RemoveSteps(v ...*PipelineStep) *DocumentClassUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the DocumentClassUpdate builder.
func (_u *DocumentClassUpdateOne) Where(ps ...predicate.DocumentClass) *DocumentClassUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentClassUpdateOne) Select(field string, fields ...string) *DocumentClassUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentClass entity.
func (_u *DocumentClassUpdateOne) Save(ctx context.Context) (*DocumentClass, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentClassUpdateOne) SaveX(ctx context.Context) *DocumentClass {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentClassUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentClassUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentClassUpdateOne) check() error {
	if v, ok := _u.mutation.ClassKey(); ok {
		if err := documentclass.ClassKeyValidator(v); err != nil {
			return &ValidationError{Name: "class_key", err: fmt.Errorf(`ent: validator failed for field "DocumentClass.class_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentClassUpdateOne) sqlSave(ctx context.Context) (_node *DocumentClass, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentclass.Table, documentclass.Columns, sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentClass.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentclass.FieldID)
		for _, f := range fields {
			if !documentclass.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentclass.FieldID {
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
	if value, ok := _u.mutation.ClassKey(); ok {
		_spec.SetField(documentclass.FieldClassKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(documentclass.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(documentclass.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documentclass.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentClass{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentclass.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
