// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/klartext-health/befund/ent/ocrconfiguration"
	"github.com/klartext-health/befund/ent/predicate"
)

// OCRConfigurationDelete is the builder for deleting a OCRConfiguration entity.
type OCRConfigurationDelete struct {
	config
	hooks    []Hook
	mutation *OCRConfigurationMutation
}

// Where appends a list predicates to the OCRConfigurationDelete builder.
func (_d *OCRConfigurationDelete) Where(ps ...predicate.OCRConfiguration) *OCRConfigurationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OCRConfigurationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OCRConfigurationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OCRConfigurationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ocrconfiguration.Table, sqlgraph.NewFieldSpec(ocrconfiguration.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// OCRConfigurationDeleteOne is the builder for deleting a single OCRConfiguration entity.
type OCRConfigurationDeleteOne struct {
	_d *OCRConfigurationDelete
}

// Where appends a list predicates to the OCRConfigurationDelete builder.
func (_d *OCRConfigurationDeleteOne) Where(ps ...predicate.OCRConfiguration) *OCRConfigurationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OCRConfigurationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ocrconfiguration.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OCRConfigurationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
