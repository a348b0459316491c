// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorloop/ent/studentmodel"
)

// StudentModelCreate is the builder for creating a StudentModel entity.
type StudentModelCreate struct {
	config
	mutation *StudentModelMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *StudentModelCreate) SetUserID(v string) *StudentModelCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *StudentModelCreate) SetTopicID(v string) *StudentModelCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *StudentModelCreate) SetStrengths(v []string) *StudentModelCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetWeaknesses sets the "weaknesses" field.
func (_c *StudentModelCreate) SetWeaknesses(v []string) *StudentModelCreate {
	_c.mutation.SetWeaknesses(v)
	return _c
}

// SetMisconceptions sets the "misconceptions" field.
func (_c *StudentModelCreate) SetMisconceptions(v []string) *StudentModelCreate {
	_c.mutation.SetMisconceptions(v)
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *StudentModelCreate) SetMasteryLevel(v int) *StudentModelCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *StudentModelCreate) SetNillableMasteryLevel(v *int) *StudentModelCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentModelCreate) SetUpdatedAt(v time.Time) *StudentModelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentModelCreate) SetNillableUpdatedAt(v *time.Time) *StudentModelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudentModelCreate) SetID(v string) *StudentModelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudentModelCreate) SetNillableID(v *string) *StudentModelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StudentModelMutation object of the builder.
func (_c *StudentModelCreate) Mutation() *StudentModelMutation {
	return _c.mutation
}

// Save creates the StudentModel in the database.
func (_c *StudentModelCreate) Save(ctx context.Context) (*StudentModel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentModelCreate) SaveX(ctx context.Context) *StudentModel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentModelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentModelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentModelCreate) defaults() {
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := studentmodel.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentmodel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := studentmodel.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentModelCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudentModel.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := studentmodel.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudentModel.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "StudentModel.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := studentmodel.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "StudentModel.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "StudentModel.mastery_level"`)}
	}
	if v, ok := _c.mutation.MasteryLevel(); ok {
		if err := studentmodel.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "StudentModel.mastery_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudentModel.updated_at"`)}
	}
	return nil
}

func (_c *StudentModelCreate) sqlSave(ctx context.Context) (*StudentModel, error) {
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
			return nil, fmt.Errorf("unexpected StudentModel.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentModelCreate) createSpec() (*StudentModel, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentModel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentmodel.Table, sqlgraph.NewFieldSpec(studentmodel.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(studentmodel.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(studentmodel.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(studentmodel.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.Weaknesses(); ok {
		_spec.SetField(studentmodel.FieldWeaknesses, field.TypeJSON, value)
		_node.Weaknesses = value
	}
	if value, ok := _c.mutation.Misconceptions(); ok {
		_spec.SetField(studentmodel.FieldMisconceptions, field.TypeJSON, value)
		_node.Misconceptions = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(studentmodel.FieldMasteryLevel, field.TypeInt, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentmodel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StudentModelCreateBulk is the builder for creating many StudentModel entities in bulk.
type StudentModelCreateBulk struct {
	config
	err      error
	builders []*StudentModelCreate
}

// Save creates the StudentModel entities in the database.
func (_c *StudentModelCreateBulk) Save(ctx context.Context) ([]*StudentModel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentModel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentModelMutation)
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
func (_c *StudentModelCreateBulk) SaveX(ctx context.Context) []*StudentModel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentModelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentModelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
