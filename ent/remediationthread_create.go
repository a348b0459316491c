// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorloop/ent/examquestion"
	"github.com/abhisek/tutorloop/ent/remediationmessage"
	"github.com/abhisek/tutorloop/ent/remediationthread"
)

// RemediationThreadCreate is the builder for creating a RemediationThread entity.
type RemediationThreadCreate struct {
	config
	mutation *RemediationThreadMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *RemediationThreadCreate) SetQuestionID(v string) *RemediationThreadCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RemediationThreadCreate) SetSessionID(v string) *RemediationThreadCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RemediationThreadCreate) SetUserID(v string) *RemediationThreadCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetIsResolved sets the "is_resolved" field.
func (_c *RemediationThreadCreate) SetIsResolved(v bool) *RemediationThreadCreate {
	_c.mutation.SetIsResolved(v)
	return _c
}

// SetNillableIsResolved sets the "is_resolved" field if the given value is not nil.
func (_c *RemediationThreadCreate) SetNillableIsResolved(v *bool) *RemediationThreadCreate {
	if v != nil {
		_c.SetIsResolved(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RemediationThreadCreate) SetCreatedAt(v time.Time) *RemediationThreadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RemediationThreadCreate) SetNillableCreatedAt(v *time.Time) *RemediationThreadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RemediationThreadCreate) SetID(v string) *RemediationThreadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RemediationThreadCreate) SetNillableID(v *string) *RemediationThreadCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestion sets the "question" edge to the ExamQuestion entity.
func (_c *RemediationThreadCreate) SetQuestion(v *ExamQuestion) *RemediationThreadCreate {
	return _c.SetQuestionID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the RemediationMessage entity by IDs.
func (_c *RemediationThreadCreate) AddMessageIDs(ids ...string) *RemediationThreadCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the RemediationMessage entity.
func (_c *RemediationThreadCreate) AddMessages(v ...*RemediationMessage) *RemediationThreadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the RemediationThreadMutation object of the builder.
func (_c *RemediationThreadCreate) Mutation() *RemediationThreadMutation {
	return _c.mutation
}

// Save creates the RemediationThread in the database.
func (_c *RemediationThreadCreate) Save(ctx context.Context) (*RemediationThread, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RemediationThreadCreate) SaveX(ctx context.Context) *RemediationThread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemediationThreadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemediationThreadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RemediationThreadCreate) defaults() {
	if _, ok := _c.mutation.IsResolved(); !ok {
		v := remediationthread.DefaultIsResolved
		_c.mutation.SetIsResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := remediationthread.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := remediationthread.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RemediationThreadCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "RemediationThread.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := remediationthread.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "RemediationThread.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RemediationThread.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := remediationthread.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RemediationThread.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RemediationThread.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := remediationthread.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RemediationThread.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsResolved(); !ok {
		return &ValidationError{Name: "is_resolved", err: errors.New(`ent: missing required field "RemediationThread.is_resolved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RemediationThread.created_at"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "RemediationThread.question"`)}
	}
	return nil
}

func (_c *RemediationThreadCreate) sqlSave(ctx context.Context) (*RemediationThread, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RemediationThread.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RemediationThreadCreate) createSpec() (*RemediationThread, *sqlgraph.CreateSpec) {
	var (
		_node = &RemediationThread{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(remediationthread.Table, sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(remediationthread.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(remediationthread.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.IsResolved(); ok {
		_spec.SetField(remediationthread.FieldIsResolved, field.TypeBool, value)
		_node.IsResolved = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(remediationthread.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   remediationthread.QuestionTable,
			Columns: []string{remediationthread.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RemediationThreadCreateBulk is the builder for creating many RemediationThread entities in bulk.
type RemediationThreadCreateBulk struct {
	config
	err      error
	builders []*RemediationThreadCreate
}

// Save creates the RemediationThread entities in the database.
func (_c *RemediationThreadCreateBulk) Save(ctx context.Context) ([]*RemediationThread, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RemediationThread, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RemediationThreadMutation)
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
func (_c *RemediationThreadCreateBulk) SaveX(ctx context.Context) []*RemediationThread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemediationThreadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemediationThreadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
