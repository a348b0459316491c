// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorloop/ent/predicate"
	"github.com/abhisek/tutorloop/ent/studentmodel"
)

// StudentModelUpdate is the builder for updating StudentModel entities.
type StudentModelUpdate struct {
	config
	hooks    []Hook
	mutation *StudentModelMutation
}

// Where appends a list predicates to the StudentModelUpdate builder.
func (_u *StudentModelUpdate) Where(ps ...predicate.StudentModel) *StudentModelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *StudentModelUpdate) SetStrengths(v []string) *StudentModelUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *StudentModelUpdate) AppendStrengths(v []string) *StudentModelUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *StudentModelUpdate) ClearStrengths() *StudentModelUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *StudentModelUpdate) SetWeaknesses(v []string) *StudentModelUpdate {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *StudentModelUpdate) AppendWeaknesses(v []string) *StudentModelUpdate {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (_u *StudentModelUpdate) ClearWeaknesses() *StudentModelUpdate {
	_u.mutation.ClearWeaknesses()
	return _u
}

// SetMisconceptions sets the "misconceptions" field.
func (_u *StudentModelUpdate) SetMisconceptions(v []string) *StudentModelUpdate {
	_u.mutation.SetMisconceptions(v)
	return _u
}

// AppendMisconceptions appends value to the "misconceptions" field.
func (_u *StudentModelUpdate) AppendMisconceptions(v []string) *StudentModelUpdate {
	_u.mutation.AppendMisconceptions(v)
	return _u
}

// ClearMisconceptions clears the value of the "misconceptions" field.
func (_u *StudentModelUpdate) ClearMisconceptions() *StudentModelUpdate {
	_u.mutation.ClearMisconceptions()
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *StudentModelUpdate) SetMasteryLevel(v int) *StudentModelUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *StudentModelUpdate) SetNillableMasteryLevel(v *int) *StudentModelUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *StudentModelUpdate) AddMasteryLevel(v int) *StudentModelUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentModelUpdate) SetUpdatedAt(v time.Time) *StudentModelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentModelMutation object of the builder.
func (_u *StudentModelUpdate) Mutation() *StudentModelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentModelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentModelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentModelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentModelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentModelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentmodel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentModelUpdate) check() error {
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := studentmodel.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "StudentModel.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentModelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentmodel.Table, studentmodel.Columns, sqlgraph.NewFieldSpec(studentmodel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(studentmodel.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentmodel.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(studentmodel.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(studentmodel.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentmodel.FieldWeaknesses, value)
		})
	}
	if _u.mutation.WeaknessesCleared() {
		_spec.ClearField(studentmodel.FieldWeaknesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Misconceptions(); ok {
		_spec.SetField(studentmodel.FieldMisconceptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentmodel.FieldMisconceptions, value)
		})
	}
	if _u.mutation.MisconceptionsCleared() {
		_spec.ClearField(studentmodel.FieldMisconceptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(studentmodel.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(studentmodel.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentmodel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentmodel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentModelUpdateOne is the builder for updating a single StudentModel entity.
type StudentModelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentModelMutation
}

// SetStrengths sets the "strengths" field.
func (_u *StudentModelUpdateOne) SetStrengths(v []string) *StudentModelUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *StudentModelUpdateOne) AppendStrengths(v []string) *StudentModelUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *StudentModelUpdateOne) ClearStrengths() *StudentModelUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *StudentModelUpdateOne) SetWeaknesses(v []string) *StudentModelUpdateOne {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *StudentModelUpdateOne) AppendWeaknesses(v []string) *StudentModelUpdateOne {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (_u *StudentModelUpdateOne) ClearWeaknesses() *StudentModelUpdateOne {
	_u.mutation.ClearWeaknesses()
	return _u
}

// SetMisconceptions sets the "misconceptions" field.
func (_u *StudentModelUpdateOne) SetMisconceptions(v []string) *StudentModelUpdateOne {
	_u.mutation.SetMisconceptions(v)
	return _u
}

// AppendMisconceptions appends value to the "misconceptions" field.
func (_u *StudentModelUpdateOne) AppendMisconceptions(v []string) *StudentModelUpdateOne {
	_u.mutation.AppendMisconceptions(v)
	return _u
}

// ClearMisconceptions clears the value of the "misconceptions" field.
func (_u *StudentModelUpdateOne) ClearMisconceptions() *StudentModelUpdateOne {
	_u.mutation.ClearMisconceptions()
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *StudentModelUpdateOne) SetMasteryLevel(v int) *StudentModelUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *StudentModelUpdateOne) SetNillableMasteryLevel(v *int) *StudentModelUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *StudentModelUpdateOne) AddMasteryLevel(v int) *StudentModelUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentModelUpdateOne) SetUpdatedAt(v time.Time) *StudentModelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentModelMutation object of the builder.
func (_u *StudentModelUpdateOne) Mutation() *StudentModelMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentModelUpdate builder.
func (_u *StudentModelUpdateOne) Where(ps ...predicate.StudentModel) *StudentModelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentModelUpdateOne) Select(field string, fields ...string) *StudentModelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentModel entity.
func (_u *StudentModelUpdateOne) Save(ctx context.Context) (*StudentModel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentModelUpdateOne) SaveX(ctx context.Context) *StudentModel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentModelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentModelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentModelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentmodel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentModelUpdateOne) check() error {
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := studentmodel.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "StudentModel.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentModelUpdateOne) sqlSave(ctx context.Context) (_node *StudentModel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentmodel.Table, studentmodel.Columns, sqlgraph.NewFieldSpec(studentmodel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentModel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentmodel.FieldID)
		for _, f := range fields {
			if !studentmodel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentmodel.FieldID {
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
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(studentmodel.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentmodel.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(studentmodel.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(studentmodel.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentmodel.FieldWeaknesses, value)
		})
	}
	if _u.mutation.WeaknessesCleared() {
		_spec.ClearField(studentmodel.FieldWeaknesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Misconceptions(); ok {
		_spec.SetField(studentmodel.FieldMisconceptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentmodel.FieldMisconceptions, value)
		})
	}
	if _u.mutation.MisconceptionsCleared() {
		_spec.ClearField(studentmodel.FieldMisconceptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(studentmodel.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(studentmodel.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentmodel.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudentModel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentmodel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
