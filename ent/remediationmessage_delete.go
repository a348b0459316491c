// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorloop/ent/predicate"
	"github.com/abhisek/tutorloop/ent/remediationmessage"
)

// RemediationMessageDelete is the builder for deleting a RemediationMessage entity.
type RemediationMessageDelete struct {
	config
	hooks    []Hook
	mutation *RemediationMessageMutation
}

// Where appends a list predicates to the RemediationMessageDelete builder.
func (_d *RemediationMessageDelete) Where(ps ...predicate.RemediationMessage) *RemediationMessageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RemediationMessageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RemediationMessageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RemediationMessageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(remediationmessage.Table, sqlgraph.NewFieldSpec(remediationmessage.FieldID, field.TypeString))
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

// RemediationMessageDeleteOne is the builder for deleting a single RemediationMessage entity.
type RemediationMessageDeleteOne struct {
	_d *RemediationMessageDelete
}

// Where appends a list predicates to the RemediationMessageDelete builder.
func (_d *RemediationMessageDeleteOne) Where(ps ...predicate.RemediationMessage) *RemediationMessageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RemediationMessageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{remediationmessage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RemediationMessageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
