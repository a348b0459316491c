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
	"github.com/abhisek/tutorloop/ent/remediationthread"
)

// ExamQuestionCreate is the builder for creating a ExamQuestion entity.
type ExamQuestionCreate struct {
	config
	mutation *ExamQuestionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ExamQuestionCreate) SetSessionID(v string) *ExamQuestionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExamQuestionCreate) SetUserID(v string) *ExamQuestionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamType sets the "exam_type" field.
func (_c *ExamQuestionCreate) SetExamType(v string) *ExamQuestionCreate {
	_c.mutation.SetExamType(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *ExamQuestionCreate) SetAttemptNumber(v int) *ExamQuestionCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *ExamQuestionCreate) SetNillableAttemptNumber(v *int) *ExamQuestionCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *ExamQuestionCreate) SetQuestionNumber(v int) *ExamQuestionCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *ExamQuestionCreate) SetQuestionText(v string) *ExamQuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetChoices sets the "choices" field.
func (_c *ExamQuestionCreate) SetChoices(v map[string]string) *ExamQuestionCreate {
	_c.mutation.SetChoices(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ExamQuestionCreate) SetCorrectAnswer(v string) *ExamQuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ExamQuestionCreate) SetExplanation(v string) *ExamQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *ExamQuestionCreate) SetNillableExplanation(v *string) *ExamQuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *ExamQuestionCreate) SetUserAnswer(v string) *ExamQuestionCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_c *ExamQuestionCreate) SetNillableUserAnswer(v *string) *ExamQuestionCreate {
	if v != nil {
		_c.SetUserAnswer(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *ExamQuestionCreate) SetIsCorrect(v bool) *ExamQuestionCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *ExamQuestionCreate) SetNillableIsCorrect(v *bool) *ExamQuestionCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetIsIdk sets the "is_idk" field.
func (_c *ExamQuestionCreate) SetIsIdk(v bool) *ExamQuestionCreate {
	_c.mutation.SetIsIdk(v)
	return _c
}

// SetNillableIsIdk sets the "is_idk" field if the given value is not nil.
func (_c *ExamQuestionCreate) SetNillableIsIdk(v *bool) *ExamQuestionCreate {
	if v != nil {
		_c.SetIsIdk(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExamQuestionCreate) SetCreatedAt(v time.Time) *ExamQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExamQuestionCreate) SetNillableCreatedAt(v *time.Time) *ExamQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExamQuestionCreate) SetID(v string) *ExamQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExamQuestionCreate) SetNillableID(v *string) *ExamQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the LearningSession entity.
func (_c *ExamQuestionCreate) SetSession(v *LearningSession) *ExamQuestionCreate {
	return _c.SetSessionID(v.ID)
}

// AddThreadIDs adds the "threads" edge to the RemediationThread entity by IDs.
func (_c *ExamQuestionCreate) AddThreadIDs(ids ...string) *ExamQuestionCreate {
	_c.mutation.AddThreadIDs(ids...)
	return _c
}

// AddThreads adds the "threads" edges to the RemediationThread entity.
func (_c *ExamQuestionCreate) AddThreads(v ...*RemediationThread) *ExamQuestionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddThreadIDs(ids...)
}

// Mutation returns the ExamQuestionMutation object of the builder.
func (_c *ExamQuestionCreate) Mutation() *ExamQuestionMutation {
	return _c.mutation
}

// Save creates the ExamQuestion in the database.
func (_c *ExamQuestionCreate) Save(ctx context.Context) (*ExamQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamQuestionCreate) SaveX(ctx context.Context) *ExamQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamQuestionCreate) defaults() {
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		v := examquestion.DefaultAttemptNumber
		_c.mutation.SetAttemptNumber(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := examquestion.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.IsIdk(); !ok {
		v := examquestion.DefaultIsIdk
		_c.mutation.SetIsIdk(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := examquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := examquestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamQuestionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExamQuestion.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := examquestion.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamQuestion.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExamQuestion.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := examquestion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExamQuestion.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamType(); !ok {
		return &ValidationError{Name: "exam_type", err: errors.New(`ent: missing required field "ExamQuestion.exam_type"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "ExamQuestion.attempt_number"`)}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "ExamQuestion.question_number"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "ExamQuestion.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := examquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExamQuestion.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Choices(); !ok {
		return &ValidationError{Name: "choices", err: errors.New(`ent: missing required field "ExamQuestion.choices"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "ExamQuestion.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := examquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "ExamQuestion.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "ExamQuestion.explanation"`)}
	}
	if _, ok := _c.mutation.IsIdk(); !ok {
		return &ValidationError{Name: "is_idk", err: errors.New(`ent: missing required field "ExamQuestion.is_idk"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExamQuestion.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ExamQuestion.session"`)}
	}
	return nil
}

func (_c *ExamQuestionCreate) sqlSave(ctx context.Context) (*ExamQuestion, error) {
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
			return nil, fmt.Errorf("unexpected ExamQuestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExamQuestionCreate) createSpec() (*ExamQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examquestion.Table, sqlgraph.NewFieldSpec(examquestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(examquestion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamType(); ok {
		_spec.SetField(examquestion.FieldExamType, field.TypeString, value)
		_node.ExamType = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(examquestion.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(examquestion.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(examquestion.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Choices(); ok {
		_spec.SetField(examquestion.FieldChoices, field.TypeJSON, value)
		_node.Choices = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(examquestion.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(examquestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(examquestion.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = &value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(examquestion.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = &value
	}
	if value, ok := _c.mutation.IsIdk(); ok {
		_spec.SetField(examquestion.FieldIsIdk, field.TypeBool, value)
		_node.IsIdk = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(examquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   examquestion.SessionTable,
			Columns: []string{examquestion.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ThreadsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExamQuestionCreateBulk is the builder for creating many ExamQuestion entities in bulk.
type ExamQuestionCreateBulk struct {
	config
	err      error
	builders []*ExamQuestionCreate
}

// Save creates the ExamQuestion entities in the database.
func (_c *ExamQuestionCreateBulk) Save(ctx context.Context) ([]*ExamQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamQuestionMutation)
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
func (_c *ExamQuestionCreateBulk) SaveX(ctx context.Context) []*ExamQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
