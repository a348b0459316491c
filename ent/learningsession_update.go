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
	"github.com/abhisek/tutorloop/ent/examquestion"
	"github.com/abhisek/tutorloop/ent/learningsession"
	"github.com/abhisek/tutorloop/ent/lesson"
	"github.com/abhisek/tutorloop/ent/predicate"
)

// LearningSessionUpdate is the builder for updating LearningSession entities.
type LearningSessionUpdate struct {
	config
	hooks    []Hook
	mutation *LearningSessionMutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdate) Where(ps ...predicate.LearningSession) *LearningSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *LearningSessionUpdate) SetState(v string) *LearningSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableState(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPreExamScore sets the "pre_exam_score" field.
func (_u *LearningSessionUpdate) SetPreExamScore(v int) *LearningSessionUpdate {
	_u.mutation.ResetPreExamScore()
	_u.mutation.SetPreExamScore(v)
	return _u
}

// SetNillablePreExamScore sets the "pre_exam_score" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillablePreExamScore(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetPreExamScore(*v)
	}
	return _u
}

// AddPreExamScore adds value to the "pre_exam_score" field.
func (_u *LearningSessionUpdate) AddPreExamScore(v int) *LearningSessionUpdate {
	_u.mutation.AddPreExamScore(v)
	return _u
}

// ClearPreExamScore clears the value of the "pre_exam_score" field.
func (_u *LearningSessionUpdate) ClearPreExamScore() *LearningSessionUpdate {
	_u.mutation.ClearPreExamScore()
	return _u
}

// SetPostExamScore sets the "post_exam_score" field.
func (_u *LearningSessionUpdate) SetPostExamScore(v int) *LearningSessionUpdate {
	_u.mutation.ResetPostExamScore()
	_u.mutation.SetPostExamScore(v)
	return _u
}

// SetNillablePostExamScore sets the "post_exam_score" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillablePostExamScore(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetPostExamScore(*v)
	}
	return _u
}

// AddPostExamScore adds value to the "post_exam_score" field.
func (_u *LearningSessionUpdate) AddPostExamScore(v int) *LearningSessionUpdate {
	_u.mutation.AddPostExamScore(v)
	return _u
}

// ClearPostExamScore clears the value of the "post_exam_score" field.
func (_u *LearningSessionUpdate) ClearPostExamScore() *LearningSessionUpdate {
	_u.mutation.ClearPostExamScore()
	return _u
}

// SetRemediationExamScore sets the "remediation_exam_score" field.
func (_u *LearningSessionUpdate) SetRemediationExamScore(v int) *LearningSessionUpdate {
	_u.mutation.ResetRemediationExamScore()
	_u.mutation.SetRemediationExamScore(v)
	return _u
}

// SetNillableRemediationExamScore sets the "remediation_exam_score" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableRemediationExamScore(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetRemediationExamScore(*v)
	}
	return _u
}

// AddRemediationExamScore adds value to the "remediation_exam_score" field.
func (_u *LearningSessionUpdate) AddRemediationExamScore(v int) *LearningSessionUpdate {
	_u.mutation.AddRemediationExamScore(v)
	return _u
}

// ClearRemediationExamScore clears the value of the "remediation_exam_score" field.
func (_u *LearningSessionUpdate) ClearRemediationExamScore() *LearningSessionUpdate {
	_u.mutation.ClearRemediationExamScore()
	return _u
}

// SetRemediationLoopCount sets the "remediation_loop_count" field.
func (_u *LearningSessionUpdate) SetRemediationLoopCount(v int) *LearningSessionUpdate {
	_u.mutation.ResetRemediationLoopCount()
	_u.mutation.SetRemediationLoopCount(v)
	return _u
}

// SetNillableRemediationLoopCount sets the "remediation_loop_count" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableRemediationLoopCount(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetRemediationLoopCount(*v)
	}
	return _u
}

// AddRemediationLoopCount adds value to the "remediation_loop_count" field.
func (_u *LearningSessionUpdate) AddRemediationLoopCount(v int) *LearningSessionUpdate {
	_u.mutation.AddRemediationLoopCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningSessionUpdate) SetUpdatedAt(v time.Time) *LearningSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddQuestionIDs adds the "questions" edge to the ExamQuestion entity by IDs.
func (_u *LearningSessionUpdate) AddQuestionIDs(ids ...string) *LearningSessionUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the ExamQuestion entity.
func (_u *LearningSessionUpdate) AddQuestions(v ...*ExamQuestion) *LearningSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *LearningSessionUpdate) AddLessonIDs(ids ...string) *LearningSessionUpdate {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *LearningSessionUpdate) AddLessons(v ...*Lesson) *LearningSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdate) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the ExamQuestion entity.
func (_u *LearningSessionUpdate) ClearQuestions() *LearningSessionUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to ExamQuestion entities by IDs.
func (_u *LearningSessionUpdate) RemoveQuestionIDs(ids ...string) *LearningSessionUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to ExamQuestion entities.
func (_u *LearningSessionUpdate) RemoveQuestions(v ...*ExamQuestion) *LearningSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *LearningSessionUpdate) ClearLessons() *LearningSessionUpdate {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *LearningSessionUpdate) RemoveLessonIDs(ids ...string) *LearningSessionUpdate {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *LearningSessionUpdate) RemoveLessons(v ...*Lesson) *LearningSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdate) check() error {
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LearningSession.topic"`)
	}
	return nil
}

func (_u *LearningSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(learningsession.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreExamScore(); ok {
		_spec.SetField(learningsession.FieldPreExamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreExamScore(); ok {
		_spec.AddField(learningsession.FieldPreExamScore, field.TypeInt, value)
	}
	if _u.mutation.PreExamScoreCleared() {
		_spec.ClearField(learningsession.FieldPreExamScore, field.TypeInt)
	}
	if value, ok := _u.mutation.PostExamScore(); ok {
		_spec.SetField(learningsession.FieldPostExamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPostExamScore(); ok {
		_spec.AddField(learningsession.FieldPostExamScore, field.TypeInt, value)
	}
	if _u.mutation.PostExamScoreCleared() {
		_spec.ClearField(learningsession.FieldPostExamScore, field.TypeInt)
	}
	if value, ok := _u.mutation.RemediationExamScore(); ok {
		_spec.SetField(learningsession.FieldRemediationExamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemediationExamScore(); ok {
		_spec.AddField(learningsession.FieldRemediationExamScore, field.TypeInt, value)
	}
	if _u.mutation.RemediationExamScoreCleared() {
		_spec.ClearField(learningsession.FieldRemediationExamScore, field.TypeInt)
	}
	if value, ok := _u.mutation.RemediationLoopCount(); ok {
		_spec.SetField(learningsession.FieldRemediationLoopCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemediationLoopCount(); ok {
		_spec.AddField(learningsession.FieldRemediationLoopCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.QuestionsTable,
			Columns: []string{learningsession.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.QuestionsTable,
			Columns: []string{learningsession.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.QuestionsTable,
			Columns: []string{learningsession.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.LessonsTable,
			Columns: []string{learningsession.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.LessonsTable,
			Columns: []string{learningsession.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.LessonsTable,
			Columns: []string{learningsession.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningSessionUpdateOne is the builder for updating a single LearningSession entity.
type LearningSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningSessionMutation
}

// SetState sets the "state" field.
func (_u *LearningSessionUpdateOne) SetState(v string) *LearningSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableState(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPreExamScore sets the "pre_exam_score" field.
func (_u *LearningSessionUpdateOne) SetPreExamScore(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetPreExamScore()
	_u.mutation.SetPreExamScore(v)
	return _u
}

// SetNillablePreExamScore sets the "pre_exam_score" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillablePreExamScore(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetPreExamScore(*v)
	}
	return _u
}

// AddPreExamScore adds value to the "pre_exam_score" field.
func (_u *LearningSessionUpdateOne) AddPreExamScore(v int) *LearningSessionUpdateOne {
	_u.mutation.AddPreExamScore(v)
	return _u
}

// ClearPreExamScore clears the value of the "pre_exam_score" field.
func (_u *LearningSessionUpdateOne) ClearPreExamScore() *LearningSessionUpdateOne {
	_u.mutation.ClearPreExamScore()
	return _u
}

// SetPostExamScore sets the "post_exam_score" field.
func (_u *LearningSessionUpdateOne) SetPostExamScore(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetPostExamScore()
	_u.mutation.SetPostExamScore(v)
	return _u
}

// SetNillablePostExamScore sets the "post_exam_score" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillablePostExamScore(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetPostExamScore(*v)
	}
	return _u
}

// AddPostExamScore adds value to the "post_exam_score" field.
func (_u *LearningSessionUpdateOne) AddPostExamScore(v int) *LearningSessionUpdateOne {
	_u.mutation.AddPostExamScore(v)
	return _u
}

// ClearPostExamScore clears the value of the "post_exam_score" field.
func (_u *LearningSessionUpdateOne) ClearPostExamScore() *LearningSessionUpdateOne {
	_u.mutation.ClearPostExamScore()
	return _u
}

// SetRemediationExamScore sets the "remediation_exam_score" field.
func (_u *LearningSessionUpdateOne) SetRemediationExamScore(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetRemediationExamScore()
	_u.mutation.SetRemediationExamScore(v)
	return _u
}

// SetNillableRemediationExamScore sets the "remediation_exam_score" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableRemediationExamScore(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetRemediationExamScore(*v)
	}
	return _u
}

// AddRemediationExamScore adds value to the "remediation_exam_score" field.
func (_u *LearningSessionUpdateOne) AddRemediationExamScore(v int) *LearningSessionUpdateOne {
	_u.mutation.AddRemediationExamScore(v)
	return _u
}

// ClearRemediationExamScore clears the value of the "remediation_exam_score" field.
func (_u *LearningSessionUpdateOne) ClearRemediationExamScore() *LearningSessionUpdateOne {
	_u.mutation.ClearRemediationExamScore()
	return _u
}

// SetRemediationLoopCount sets the "remediation_loop_count" field.
func (_u *LearningSessionUpdateOne) SetRemediationLoopCount(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetRemediationLoopCount()
	_u.mutation.SetRemediationLoopCount(v)
	return _u
}

// SetNillableRemediationLoopCount sets the "remediation_loop_count" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableRemediationLoopCount(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetRemediationLoopCount(*v)
	}
	return _u
}

// AddRemediationLoopCount adds value to the "remediation_loop_count" field.
func (_u *LearningSessionUpdateOne) AddRemediationLoopCount(v int) *LearningSessionUpdateOne {
	_u.mutation.AddRemediationLoopCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningSessionUpdateOne) SetUpdatedAt(v time.Time) *LearningSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddQuestionIDs adds the "questions" edge to the ExamQuestion entity by IDs.
func (_u *LearningSessionUpdateOne) AddQuestionIDs(ids ...string) *LearningSessionUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the ExamQuestion entity.
func (_u *LearningSessionUpdateOne) AddQuestions(v ...*ExamQuestion) *LearningSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *LearningSessionUpdateOne) AddLessonIDs(ids ...string) *LearningSessionUpdateOne {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *LearningSessionUpdateOne) AddLessons(v ...*Lesson) *LearningSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdateOne) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the ExamQuestion entity.
func (_u *LearningSessionUpdateOne) ClearQuestions() *LearningSessionUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to ExamQuestion entities by IDs.
func (_u *LearningSessionUpdateOne) RemoveQuestionIDs(ids ...string) *LearningSessionUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to ExamQuestion entities.
func (_u *LearningSessionUpdateOne) RemoveQuestions(v ...*ExamQuestion) *LearningSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *LearningSessionUpdateOne) ClearLessons() *LearningSessionUpdateOne {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *LearningSessionUpdateOne) RemoveLessonIDs(ids ...string) *LearningSessionUpdateOne {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *LearningSessionUpdateOne) RemoveLessons(v ...*Lesson) *LearningSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdateOne) Where(ps ...predicate.LearningSession) *LearningSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningSessionUpdateOne) Select(field string, fields ...string) *LearningSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningSession entity.
func (_u *LearningSessionUpdateOne) Save(ctx context.Context) (*LearningSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) SaveX(ctx context.Context) *LearningSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdateOne) check() error {
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LearningSession.topic"`)
	}
	return nil
}

func (_u *LearningSessionUpdateOne) sqlSave(ctx context.Context) (_node *LearningSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningsession.FieldID)
		for _, f := range fields {
			if !learningsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningsession.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(learningsession.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreExamScore(); ok {
		_spec.SetField(learningsession.FieldPreExamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreExamScore(); ok {
		_spec.AddField(learningsession.FieldPreExamScore, field.TypeInt, value)
	}
	if _u.mutation.PreExamScoreCleared() {
		_spec.ClearField(learningsession.FieldPreExamScore, field.TypeInt)
	}
	if value, ok := _u.mutation.PostExamScore(); ok {
		_spec.SetField(learningsession.FieldPostExamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPostExamScore(); ok {
		_spec.AddField(learningsession.FieldPostExamScore, field.TypeInt, value)
	}
	if _u.mutation.PostExamScoreCleared() {
		_spec.ClearField(learningsession.FieldPostExamScore, field.TypeInt)
	}
	if value, ok := _u.mutation.RemediationExamScore(); ok {
		_spec.SetField(learningsession.FieldRemediationExamScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemediationExamScore(); ok {
		_spec.AddField(learningsession.FieldRemediationExamScore, field.TypeInt, value)
	}
	if _u.mutation.RemediationExamScoreCleared() {
		_spec.ClearField(learningsession.FieldRemediationExamScore, field.TypeInt)
	}
	if value, ok := _u.mutation.RemediationLoopCount(); ok {
		_spec.SetField(learningsession.FieldRemediationLoopCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemediationLoopCount(); ok {
		_spec.AddField(learningsession.FieldRemediationLoopCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.QuestionsTable,
			Columns: []string{learningsession.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.QuestionsTable,
			Columns: []string{learningsession.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.QuestionsTable,
			Columns: []string{learningsession.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.LessonsTable,
			Columns: []string{learningsession.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.LessonsTable,
			Columns: []string{learningsession.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   learningsession.LessonsTable,
			Columns: []string{learningsession.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LearningSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
