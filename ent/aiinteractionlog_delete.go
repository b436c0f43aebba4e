// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/predicate"
)

// AIInteractionLogDelete is the builder for deleting a AIInteractionLog entity.
type AIInteractionLogDelete struct {
	config
	hooks    []Hook
	mutation *AIInteractionLogMutation
}

// Where appends a list predicates to the AIInteractionLogDelete builder.
func (_d *AIInteractionLogDelete) Where(ps ...predicate.AIInteractionLog) *AIInteractionLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AIInteractionLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AIInteractionLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AIInteractionLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(aiinteractionlog.Table, sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt))
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

// AIInteractionLogDeleteOne is the builder for deleting a single AIInteractionLog entity.
type AIInteractionLogDeleteOne struct {
	_d *AIInteractionLogDelete
}

// Where appends a list predicates to the AIInteractionLogDelete builder.
func (_d *AIInteractionLogDeleteOne) Where(ps ...predicate.AIInteractionLog) *AIInteractionLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AIInteractionLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{aiinteractionlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AIInteractionLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
