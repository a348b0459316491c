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
	"github.com/abhisek/tutorloop/ent/predicate"
	"github.com/abhisek/tutorloop/ent/topicprogress"
)

// TopicProgressUpdate is the builder for updating TopicProgress entities.
type TopicProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TopicProgressMutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdate) Where(ps ...predicate.TopicProgress) *TopicProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TopicProgressUpdate) SetStatus(v string) *TopicProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableStatus(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *TopicProgressUpdate) SetBestScore(v int) *TopicProgressUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableBestScore(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *TopicProgressUpdate) AddBestScore(v int) *TopicProgressUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// ClearBestScore clears the value of the "best_score" field.
func (_u *TopicProgressUpdate) ClearBestScore() *TopicProgressUpdate {
	_u.mutation.ClearBestScore()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicProgressUpdate) SetAttempts(v int) *TopicProgressUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableAttempts(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicProgressUpdate) AddAttempts(v int) *TopicProgressUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicProgressUpdate) SetUpdatedAt(v time.Time) *TopicProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdate) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TopicProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(topicprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if _u.mutation.BestScoreCleared() {
		_spec.ClearField(topicprogress.FieldBestScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicProgressUpdateOne is the builder for updating a single TopicProgress entity.
type TopicProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicProgressMutation
}

// SetStatus sets the "status" field.
func (_u *TopicProgressUpdateOne) SetStatus(v string) *TopicProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableStatus(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *TopicProgressUpdateOne) SetBestScore(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableBestScore(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *TopicProgressUpdateOne) AddBestScore(v int) *TopicProgressUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// ClearBestScore clears the value of the "best_score" field.
func (_u *TopicProgressUpdateOne) ClearBestScore() *TopicProgressUpdateOne {
	_u.mutation.ClearBestScore()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicProgressUpdateOne) SetAttempts(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableAttempts(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicProgressUpdateOne) AddAttempts(v int) *TopicProgressUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicProgressUpdateOne) SetUpdatedAt(v time.Time) *TopicProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdateOne) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdateOne) Where(ps ...predicate.TopicProgress) *TopicProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicProgressUpdateOne) Select(field string, fields ...string) *TopicProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicProgress entity.
func (_u *TopicProgressUpdateOne) Save(ctx context.Context) (*TopicProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) SaveX(ctx context.Context) *TopicProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TopicProgressUpdateOne) sqlSave(ctx context.Context) (_node *TopicProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicprogress.FieldID)
		for _, f := range fields {
			if !topicprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicprogress.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(topicprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if _u.mutation.BestScoreCleared() {
		_spec.ClearField(topicprogress.FieldBestScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TopicProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
