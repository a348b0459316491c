// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorloop/ent/topicprogress"
)

// TopicProgressCreate is the builder for creating a TopicProgress entity.
type TopicProgressCreate struct {
	config
	mutation *TopicProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TopicProgressCreate) SetUserID(v string) *TopicProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *TopicProgressCreate) SetTopicID(v string) *TopicProgressCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TopicProgressCreate) SetStatus(v string) *TopicProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableStatus(v *string) *TopicProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *TopicProgressCreate) SetBestScore(v int) *TopicProgressCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableBestScore(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetBestScore(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TopicProgressCreate) SetAttempts(v int) *TopicProgressCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableAttempts(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TopicProgressCreate) SetUpdatedAt(v time.Time) *TopicProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableUpdatedAt(v *time.Time) *TopicProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TopicProgressCreate) SetID(v string) *TopicProgressCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableID(v *string) *TopicProgressCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_c *TopicProgressCreate) Mutation() *TopicProgressMutation {
	return _c.mutation
}

// Save creates the TopicProgress in the database.
func (_c *TopicProgressCreate) Save(ctx context.Context) (*TopicProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicProgressCreate) SaveX(ctx context.Context) *TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicProgressCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := topicprogress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := topicprogress.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := topicprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := topicprogress.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := topicprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicProgress.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := topicprogress.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TopicProgress.status"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TopicProgress.attempts"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TopicProgress.updated_at"`)}
	}
	return nil
}

func (_c *TopicProgressCreate) sqlSave(ctx context.Context) (*TopicProgress, error) {
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
			return nil, fmt.Errorf("unexpected TopicProgress.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicProgressCreate) createSpec() (*TopicProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicprogress.Table, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(topicprogress.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(topicprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
		_node.BestScore = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(topicprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TopicProgressCreateBulk is the builder for creating many TopicProgress entities in bulk.
type TopicProgressCreateBulk struct {
	config
	err      error
	builders []*TopicProgressCreate
}

// Save creates the TopicProgress entities in the database.
func (_c *TopicProgressCreateBulk) Save(ctx context.Context) ([]*TopicProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicProgressMutation)
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
func (_c *TopicProgressCreateBulk) SaveX(ctx context.Context) []*TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
