// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorloop/ent/examquestion"
	"github.com/abhisek/tutorloop/ent/predicate"
	"github.com/abhisek/tutorloop/ent/remediationthread"
)

// ExamQuestionUpdate is the builder for updating ExamQuestion entities.
type ExamQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *ExamQuestionMutation
}

// Where appends a list predicates to the ExamQuestionUpdate builder.
func (_u *ExamQuestionUpdate) Where(ps ...predicate.ExamQuestion) *ExamQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ExamQuestionUpdate) SetQuestionText(v string) *ExamQuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ExamQuestionUpdate) SetNillableQuestionText(v *string) *ExamQuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetChoices sets the "choices" field.
func (_u *ExamQuestionUpdate) SetChoices(v map[string]string) *ExamQuestionUpdate {
	_u.mutation.SetChoices(v)
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ExamQuestionUpdate) SetCorrectAnswer(v string) *ExamQuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ExamQuestionUpdate) SetNillableCorrectAnswer(v *string) *ExamQuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ExamQuestionUpdate) SetExplanation(v string) *ExamQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ExamQuestionUpdate) SetNillableExplanation(v *string) *ExamQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *ExamQuestionUpdate) SetUserAnswer(v string) *ExamQuestionUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *ExamQuestionUpdate) SetNillableUserAnswer(v *string) *ExamQuestionUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (_u *ExamQuestionUpdate) ClearUserAnswer() *ExamQuestionUpdate {
	_u.mutation.ClearUserAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *ExamQuestionUpdate) SetIsCorrect(v bool) *ExamQuestionUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *ExamQuestionUpdate) SetNillableIsCorrect(v *bool) *ExamQuestionUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *ExamQuestionUpdate) ClearIsCorrect() *ExamQuestionUpdate {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetIsIdk sets the "is_idk" field.
func (_u *ExamQuestionUpdate) SetIsIdk(v bool) *ExamQuestionUpdate {
	_u.mutation.SetIsIdk(v)
	return _u
}

// SetNillableIsIdk sets the "is_idk" field if the given value is not nil.
func (_u *ExamQuestionUpdate) SetNillableIsIdk(v *bool) *ExamQuestionUpdate {
	if v != nil {
		_u.SetIsIdk(*v)
	}
	return _u
}

// AddThreadIDs adds the "threads" edge to the RemediationThread entity by IDs.
func (_u *ExamQuestionUpdate) AddThreadIDs(ids ...string) *ExamQuestionUpdate {
	_u.mutation.AddThreadIDs(ids...)
	return _u
}

// AddThreads adds the "threads" edges to the RemediationThread entity.
func (_u *ExamQuestionUpdate) AddThreads(v ...*RemediationThread) *ExamQuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThreadIDs(ids...)
}

// Mutation returns the ExamQuestionMutation object of the builder.
func (_u *ExamQuestionUpdate) Mutation() *ExamQuestionMutation {
	return _u.mutation
}

// ClearThreads clears all "threads" edges to the RemediationThread entity.
func (_u *ExamQuestionUpdate) ClearThreads() *ExamQuestionUpdate {
	_u.mutation.ClearThreads()
	return _u
}

// RemoveThreadIDs removes the "threads" edge to RemediationThread entities by IDs.
func (_u *ExamQuestionUpdate) RemoveThreadIDs(ids ...string) *ExamQuestionUpdate {
	_u.mutation.RemoveThreadIDs(ids...)
	return _u
}

// RemoveThreads removes "threads" edges to RemediationThread entities.
func (_u *ExamQuestionUpdate) RemoveThreads(v ...*RemediationThread) *ExamQuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThreadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamQuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := examquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExamQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := examquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "ExamQuestion.correct_answer": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExamQuestion.session"`)
	}
	return nil
}

func (_u *ExamQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examquestion.Table, examquestion.Columns, sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(examquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(examquestion.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(examquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(examquestion.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(examquestion.FieldUserAnswer, field.TypeString, value)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(examquestion.FieldUserAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(examquestion.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(examquestion.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.IsIdk(); ok {
		_spec.SetField(examquestion.FieldIsIdk, field.TypeBool, value)
	}
	if _u.mutation.ThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examquestion.ThreadsTable,
			Columns: []string{examquestion.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThreadsIDs(); len(nodes) > 0 && !_u.mutation.ThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examquestion.ThreadsTable,
			Columns: []string{examquestion.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examquestion.ThreadsTable,
			Columns: []string{examquestion.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamQuestionUpdateOne is the builder for updating a single ExamQuestion entity.
type ExamQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamQuestionMutation
}

// SetQuestionText sets the "question_text" field.
func (_u *ExamQuestionUpdateOne) SetQuestionText(v string) *ExamQuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ExamQuestionUpdateOne) SetNillableQuestionText(v *string) *ExamQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetChoices sets the "choices" field.
func (_u *ExamQuestionUpdateOne) SetChoices(v map[string]string) *ExamQuestionUpdateOne {
	_u.mutation.SetChoices(v)
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ExamQuestionUpdateOne) SetCorrectAnswer(v string) *ExamQuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ExamQuestionUpdateOne) SetNillableCorrectAnswer(v *string) *ExamQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ExamQuestionUpdateOne) SetExplanation(v string) *ExamQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ExamQuestionUpdateOne) SetNillableExplanation(v *string) *ExamQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *ExamQuestionUpdateOne) SetUserAnswer(v string) *ExamQuestionUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *ExamQuestionUpdateOne) SetNillableUserAnswer(v *string) *ExamQuestionUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (_u *ExamQuestionUpdateOne) ClearUserAnswer() *ExamQuestionUpdateOne {
	_u.mutation.ClearUserAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *ExamQuestionUpdateOne) SetIsCorrect(v bool) *ExamQuestionUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *ExamQuestionUpdateOne) SetNillableIsCorrect(v *bool) *ExamQuestionUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *ExamQuestionUpdateOne) ClearIsCorrect() *ExamQuestionUpdateOne {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetIsIdk sets the "is_idk" field.
func (_u *ExamQuestionUpdateOne) SetIsIdk(v bool) *ExamQuestionUpdateOne {
	_u.mutation.SetIsIdk(v)
	return _u
}

// SetNillableIsIdk sets the "is_idk" field if the given value is not nil.
func (_u *ExamQuestionUpdateOne) SetNillableIsIdk(v *bool) *ExamQuestionUpdateOne {
	if v != nil {
		_u.SetIsIdk(*v)
	}
	return _u
}

// AddThreadIDs adds the "threads" edge to the RemediationThread entity by IDs.
func (_u *ExamQuestionUpdateOne) AddThreadIDs(ids ...string) *ExamQuestionUpdateOne {
	_u.mutation.AddThreadIDs(ids...)
	return _u
}

// AddThreads adds the "threads" edges to the RemediationThread entity.
func (_u *ExamQuestionUpdateOne) AddThreads(v ...*RemediationThread) *ExamQuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThreadIDs(ids...)
}

// Mutation returns the ExamQuestionMutation object of the builder.
func (_u *ExamQuestionUpdateOne) Mutation() *ExamQuestionMutation {
	return _u.mutation
}

// ClearThreads clears all "threads" edges to the RemediationThread entity.
func (_u *ExamQuestionUpdateOne) ClearThreads() *ExamQuestionUpdateOne {
	_u.mutation.ClearThreads()
	return _u
}

// RemoveThreadIDs removes the "threads" edge to RemediationThread entities by IDs.
func (_u *ExamQuestionUpdateOne) RemoveThreadIDs(ids ...string) *ExamQuestionUpdateOne {
	_u.mutation.RemoveThreadIDs(ids...)
	return _u
}

// RemoveThreads removes "threads" edges to RemediationThread entities.
func (_u *ExamQuestionUpdateOne) RemoveThreads(v ...*RemediationThread) *ExamQuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThreadIDs(ids...)
}

// Where appends a list predicates to the ExamQuestionUpdate builder.
func (_u *ExamQuestionUpdateOne) Where(ps ...predicate.ExamQuestion) *ExamQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamQuestionUpdateOne) Select(field string, fields ...string) *ExamQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamQuestion entity.
func (_u *ExamQuestionUpdateOne) Save(ctx context.Context) (*ExamQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamQuestionUpdateOne) SaveX(ctx context.Context) *ExamQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := examquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExamQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := examquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "ExamQuestion.correct_answer": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExamQuestion.session"`)
	}
	return nil
}

func (_u *ExamQuestionUpdateOne) sqlSave(ctx context.Context) (_node *ExamQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examquestion.Table, examquestion.Columns, sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examquestion.FieldID)
		for _, f := range fields {
			if !examquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examquestion.FieldID {
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
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(examquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(examquestion.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(examquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(examquestion.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(examquestion.FieldUserAnswer, field.TypeString, value)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(examquestion.FieldUserAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(examquestion.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(examquestion.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.IsIdk(); ok {
		_spec.SetField(examquestion.FieldIsIdk, field.TypeBool, value)
	}
	if _u.mutation.ThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examquestion.ThreadsTable,
			Columns: []string{examquestion.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThreadsIDs(); len(nodes) > 0 && !_u.mutation.ThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examquestion.ThreadsTable,
			Columns: []string{examquestion.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examquestion.ThreadsTable,
			Columns: []string{examquestion.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remediationthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExamQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
