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
	"github.com/abhisek/tutorloop/ent/learningsession"
	"github.com/abhisek/tutorloop/ent/lesson"
	"github.com/abhisek/tutorloop/ent/topic"
)

// LearningSessionCreate is the builder for creating a LearningSession entity.
type LearningSessionCreate struct {
	config
	mutation *LearningSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningSessionCreate) SetUserID(v string) *LearningSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *LearningSessionCreate) SetTopicID(v string) *LearningSessionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *LearningSessionCreate) SetState(v string) *LearningSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableState(v *string) *LearningSessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetSessionNumber sets the "session_number" field.
func (_c *LearningSessionCreate) SetSessionNumber(v int) *LearningSessionCreate {
	_c.mutation.SetSessionNumber(v)
	return _c
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableSessionNumber(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetSessionNumber(*v)
	}
	return _c
}

// SetPreExamScore sets the "pre_exam_score" field.
func (_c *LearningSessionCreate) SetPreExamScore(v int) *LearningSessionCreate {
	_c.mutation.SetPreExamScore(v)
	return _c
}

// SetNillablePreExamScore sets the "pre_exam_score" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillablePreExamScore(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetPreExamScore(*v)
	}
	return _c
}

// SetPostExamScore sets the "post_exam_score" field.
func (_c *LearningSessionCreate) SetPostExamScore(v int) *LearningSessionCreate {
	_c.mutation.SetPostExamScore(v)
	return _c
}

// SetNillablePostExamScore sets the "post_exam_score" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillablePostExamScore(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetPostExamScore(*v)
	}
	return _c
}

// SetRemediationExamScore sets the "remediation_exam_score" field.
func (_c *LearningSessionCreate) SetRemediationExamScore(v int) *LearningSessionCreate {
	_c.mutation.SetRemediationExamScore(v)
	return _c
}

// SetNillableRemediationExamScore sets the "remediation_exam_score" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableRemediationExamScore(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetRemediationExamScore(*v)
	}
	return _c
}

// SetRemediationLoopCount sets the "remediation_loop_count" field.
func (_c *LearningSessionCreate) SetRemediationLoopCount(v int) *LearningSessionCreate {
	_c.mutation.SetRemediationLoopCount(v)
	return _c
}

// SetNillableRemediationLoopCount sets the "remediation_loop_count" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableRemediationLoopCount(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetRemediationLoopCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningSessionCreate) SetCreatedAt(v time.Time) *LearningSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableCreatedAt(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearningSessionCreate) SetUpdatedAt(v time.Time) *LearningSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableUpdatedAt(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningSessionCreate) SetID(v string) *LearningSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableID(v *string) *LearningSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_c *LearningSessionCreate) SetTopic(v *Topic) *LearningSessionCreate {
	return _c.SetTopicID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the ExamQuestion entity by IDs.
func (_c *LearningSessionCreate) AddQuestionIDs(ids ...string) *LearningSessionCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the ExamQuestion entity.
func (_c *LearningSessionCreate) AddQuestions(v ...*ExamQuestion) *LearningSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_c *LearningSessionCreate) AddLessonIDs(ids ...string) *LearningSessionCreate {
	_c.mutation.AddLessonIDs(ids...)
	return _c
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_c *LearningSessionCreate) AddLessons(v ...*Lesson) *LearningSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLessonIDs(ids...)
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_c *LearningSessionCreate) Mutation() *LearningSessionMutation {
	return _c.mutation
}

// Save creates the LearningSession in the database.
func (_c *LearningSessionCreate) Save(ctx context.Context) (*LearningSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningSessionCreate) SaveX(ctx context.Context) *LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningSessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := learningsession.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.SessionNumber(); !ok {
		v := learningsession.DefaultSessionNumber
		_c.mutation.SetSessionNumber(v)
	}
	if _, ok := _c.mutation.RemediationLoopCount(); !ok {
		v := learningsession.DefaultRemediationLoopCount
		_c.mutation.SetRemediationLoopCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learningsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := learningsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "LearningSession.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := learningsession.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "LearningSession.state"`)}
	}
	if _, ok := _c.mutation.SessionNumber(); !ok {
		return &ValidationError{Name: "session_number", err: errors.New(`ent: missing required field "LearningSession.session_number"`)}
	}
	if _, ok := _c.mutation.RemediationLoopCount(); !ok {
		return &ValidationError{Name: "remediation_loop_count", err: errors.New(`ent: missing required field "LearningSession.remediation_loop_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningSession.updated_at"`)}
	}
	if len(_c.mutation.TopicIDs()) == 0 {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required edge "LearningSession.topic"`)}
	}
	return nil
}

func (_c *LearningSessionCreate) sqlSave(ctx context.Context) (*LearningSession, error) {
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
			return nil, fmt.Errorf("unexpected LearningSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningSessionCreate) createSpec() (*LearningSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningsession.Table, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(learningsession.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.SessionNumber(); ok {
		_spec.SetField(learningsession.FieldSessionNumber, field.TypeInt, value)
		_node.SessionNumber = value
	}
	if value, ok := _c.mutation.PreExamScore(); ok {
		_spec.SetField(learningsession.FieldPreExamScore, field.TypeInt, value)
		_node.PreExamScore = &value
	}
	if value, ok := _c.mutation.PostExamScore(); ok {
		_spec.SetField(learningsession.FieldPostExamScore, field.TypeInt, value)
		_node.PostExamScore = &value
	}
	if value, ok := _c.mutation.RemediationExamScore(); ok {
		_spec.SetField(learningsession.FieldRemediationExamScore, field.TypeInt, value)
		_node.RemediationExamScore = &value
	}
	if value, ok := _c.mutation.RemediationLoopCount(); ok {
		_spec.SetField(learningsession.FieldRemediationLoopCount, field.TypeInt, value)
		_node.RemediationLoopCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learningsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   learningsession.TopicTable,
			Columns: []string{learningsession.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TopicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LearningSessionCreateBulk is the builder for creating many LearningSession entities in bulk.
type LearningSessionCreateBulk struct {
	config
	err      error
	builders []*LearningSessionCreate
}

// Save creates the LearningSession entities in the database.
func (_c *LearningSessionCreateBulk) Save(ctx context.Context) ([]*LearningSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningSessionMutation)
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
func (_c *LearningSessionCreateBulk) SaveX(ctx context.Context) []*LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
