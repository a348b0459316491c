// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorloop/ent/predicate"
	"github.com/abhisek/tutorloop/ent/remediationmessage"
	"github.com/abhisek/tutorloop/ent/remediationthread"
)

// RemediationThreadUpdate is the builder for updating RemediationThread entities.
type RemediationThreadUpdate struct {
	config
	hooks    []Hook
	mutation *RemediationThreadMutation
}

// Where appends a list predicates to the RemediationThreadUpdate builder.
func (_u *RemediationThreadUpdate) Where(ps ...predicate.RemediationThread) *RemediationThreadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsResolved sets the "is_resolved" field.
func (_u *RemediationThreadUpdate) SetIsResolved(v bool) *RemediationThreadUpdate {
	_u.mutation.SetIsResolved(v)
	return _u
}

// SetNillableIsResolved sets the "is_resolved" field if the given value is not nil.
func (_u *RemediationThreadUpdate) SetNillableIsResolved(v *bool) *RemediationThreadUpdate {
	if v != nil {
		_u.SetIsResolved(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the RemediationMessage entity by IDs.
func (_u *RemediationThreadUpdate) AddMessageIDs(ids ...string) *RemediationThreadUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the RemediationMessage entity.
func (_u *RemediationThreadUpdate) AddMessages(v ...*RemediationMessage) *RemediationThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the RemediationThreadMutation object of the builder.
func (_u *RemediationThreadUpdate) Mutation() *RemediationThreadMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the RemediationMessage entity.
func (_u *RemediationThreadUpdate) ClearMessages() *RemediationThreadUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to RemediationMessage entities by IDs.
func (_u *RemediationThreadUpdate) RemoveMessageIDs(ids ...string) *RemediationThreadUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to RemediationMessage entities.
func (_u *RemediationThreadUpdate) RemoveMessages(v ...*RemediationMessage) *RemediationThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RemediationThreadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemediationThreadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RemediationThreadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemediationThreadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemediationThreadUpdate) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RemediationThread.question"`)
	}
	return nil
}

func (_u *RemediationThreadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remediationthread.Table, remediationthread.Columns, sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsResolved(); ok {
		_spec.SetField(remediationthread.FieldIsResolved, field.TypeBool, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   remediationthread.MessagesTable,
			Columns: []string{remediationthread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   remediationthread.MessagesTable,
			Columns: []string{remediationthread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   remediationthread.MessagesTable,
			Columns: []string{remediationthread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remediationthread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RemediationThreadUpdateOne is the builder for updating a single RemediationThread entity.
type RemediationThreadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RemediationThreadMutation
}

// SetIsResolved sets the "is_resolved" field.
func (_u *RemediationThreadUpdateOne) SetIsResolved(v bool) *RemediationThreadUpdateOne {
	_u.mutation.SetIsResolved(v)
	return _u
}

// SetNillableIsResolved sets the "is_resolved" field if the given value is not nil.
func (_u *RemediationThreadUpdateOne) SetNillableIsResolved(v *bool) *RemediationThreadUpdateOne {
	if v != nil {
		_u.SetIsResolved(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the RemediationMessage entity by IDs.
func (_u *RemediationThreadUpdateOne) AddMessageIDs(ids ...string) *RemediationThreadUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the RemediationMessage entity.
func (_u *RemediationThreadUpdateOne) AddMessages(v ...*RemediationMessage) *RemediationThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the RemediationThreadMutation object of the builder.
func (_u *RemediationThreadUpdateOne) Mutation() *RemediationThreadMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the RemediationMessage entity.
func (_u *RemediationThreadUpdateOne) ClearMessages() *RemediationThreadUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to RemediationMessage entities by IDs.
func (_u *RemediationThreadUpdateOne) RemoveMessageIDs(ids ...string) *RemediationThreadUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to RemediationMessage entities.
func (_u *RemediationThreadUpdateOne) RemoveMessages(v ...*RemediationMessage) *RemediationThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the RemediationThreadUpdate builder.
func (_u *RemediationThreadUpdateOne) Where(ps ...predicate.RemediationThread) *RemediationThreadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RemediationThreadUpdateOne) Select(field string, fields ...string) *RemediationThreadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RemediationThread entity.
func (_u *RemediationThreadUpdateOne) Save(ctx context.Context) (*RemediationThread, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemediationThreadUpdateOne) SaveX(ctx context.Context) *RemediationThread {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RemediationThreadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemediationThreadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemediationThreadUpdateOne) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RemediationThread.question"`)
	}
	return nil
}

func (_u *RemediationThreadUpdateOne) sqlSave(ctx context.Context) (_node *RemediationThread, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remediationthread.Table, remediationthread.Columns, sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RemediationThread.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, remediationthread.FieldID)
		for _, f := range fields {
			if !remediationthread.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != remediationthread.FieldID {
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
	if value, ok := _u.mutation.IsResolved(); ok {
		_spec.SetField(remediationthread.FieldIsResolved, field.TypeBool, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   remediationthread.MessagesTable,
			Columns: []string{remediationthread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   remediationthread.MessagesTable,
			Columns: []string{remediationthread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   remediationthread.MessagesTable,
			Columns: []string{remediationthread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RemediationThread{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remediationthread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
