// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorloop/ent/examquestion"
	"github.com/abhisek/tutorloop/ent/learningsession"
)

// ExamQuestion is the model entity for the ExamQuestion schema.
type ExamQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// pre, post, or remediation
	ExamType string `json:"exam_type,omitempty"`
	// Remediation loop the question belongs to; 1 for pre/post
	AttemptNumber int `json:"attempt_number,omitempty"`
	// 1-based position within the exam
	QuestionNumber int `json:"question_number,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// Answer choices keyed A through D
	Choices map[string]string `json:"choices,omitempty"`
	// Choice key of the correct answer
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// UserAnswer holds the value of the "user_answer" field.
	UserAnswer *string `json:"user_answer,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect *bool `json:"is_correct,omitempty"`
	// IsIdk holds the value of the "is_idk" field.
	IsIdk bool `json:"is_idk,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExamQuestionQuery when eager-loading is set.
	Edges        ExamQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExamQuestionEdges holds the relations/edges for other nodes in the graph.
type ExamQuestionEdges struct {
	// Session holds the value of the session edge.
	Session *LearningSession `json:"session,omitempty"`
	// Threads holds the value of the threads edge.
	Threads []*RemediationThread `json:"threads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExamQuestionEdges) SessionOrErr() (*LearningSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: learningsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ThreadsOrErr returns the Threads value or an error if the edge
// was not loaded in eager-loading.
func (e ExamQuestionEdges) ThreadsOrErr() ([]*RemediationThread, error) {
	if e.loadedTypes[1] {
		return e.Threads, nil
	}
	return nil, &NotLoadedError{edge: "threads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examquestion.FieldChoices:
			values[i] = new([]byte)
		case examquestion.FieldIsCorrect, examquestion.FieldIsIdk:
			values[i] = new(sql.NullBool)
		case examquestion.FieldAttemptNumber, examquestion.FieldQuestionNumber:
			values[i] = new(sql.NullInt64)
		case examquestion.FieldID, examquestion.FieldSessionID, examquestion.FieldUserID, examquestion.FieldExamType, examquestion.FieldQuestionText, examquestion.FieldCorrectAnswer, examquestion.FieldExplanation, examquestion.FieldUserAnswer:
			values[i] = new(sql.NullString)
		case examquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamQuestion fields.
func (_m *ExamQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examquestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case examquestion.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case examquestion.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case examquestion.FieldExamType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_type", values[i])
			} else if value.Valid {
				_m.ExamType = value.String
			}
		case examquestion.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case examquestion.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = int(value.Int64)
			}
		case examquestion.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case examquestion.FieldChoices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field choices", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Choices); err != nil {
					return fmt.Errorf("unmarshal field choices: %w", err)
				}
			}
		case examquestion.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case examquestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case examquestion.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = new(string)
				*_m.UserAnswer = value.String
			}
		case examquestion.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = new(bool)
				*_m.IsCorrect = value.Bool
			}
		case examquestion.FieldIsIdk:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_idk", values[i])
			} else if value.Valid {
				_m.IsIdk = value.Bool
			}
		case examquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *ExamQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ExamQuestion entity.
func (_m *ExamQuestion) QuerySession() *LearningSessionQuery {
	return NewExamQuestionClient(_m.config).QuerySession(_m)
}

// QueryThreads queries the "threads" edge of the ExamQuestion entity.
func (_m *ExamQuestion) QueryThreads() *RemediationThreadQuery {
	return NewExamQuestionClient(_m.config).QueryThreads(_m)
}

// Update returns a builder for updating this ExamQuestion.
// Note that you need to call ExamQuestion.Unwrap() before calling this method if this ExamQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamQuestion) Update() *ExamQuestionUpdateOne {
	return NewExamQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamQuestion) Unwrap() *ExamQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("ExamQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("exam_type=")
	builder.WriteString(_m.ExamType)
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("question_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionNumber))
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("choices=")
	builder.WriteString(fmt.Sprintf("%v", _m.Choices))
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	if v := _m.UserAnswer; v != nil {
		builder.WriteString("user_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IsCorrect; v != nil {
		builder.WriteString("is_correct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_idk=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsIdk))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExamQuestions is a parsable slice of ExamQuestion.
type ExamQuestions []*ExamQuestion
