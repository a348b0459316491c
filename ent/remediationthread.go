// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorloop/ent/examquestion"
	"github.com/abhisek/tutorloop/ent/remediationthread"
)

// RemediationThread is the model entity for the RemediationThread schema.
type RemediationThread struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// IsResolved holds the value of the "is_resolved" field.
	IsResolved bool `json:"is_resolved,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RemediationThreadQuery when eager-loading is set.
	Edges        RemediationThreadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RemediationThreadEdges holds the relations/edges for other nodes in the graph.
type RemediationThreadEdges struct {
	// Question holds the value of the question edge.
	Question *ExamQuestion `json:"question,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*RemediationMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RemediationThreadEdges) QuestionOrErr() (*ExamQuestion, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: examquestion.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e RemediationThreadEdges) MessagesOrErr() ([]*RemediationMessage, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RemediationThread) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case remediationthread.FieldIsResolved:
			values[i] = new(sql.NullBool)
		case remediationthread.FieldID, remediationthread.FieldQuestionID, remediationthread.FieldSessionID, remediationthread.FieldUserID:
			values[i] = new(sql.NullString)
		case remediationthread.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RemediationThread fields.
func (_m *RemediationThread) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case remediationthread.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case remediationthread.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case remediationthread.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case remediationthread.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case remediationthread.FieldIsResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_resolved", values[i])
			} else if value.Valid {
				_m.IsResolved = value.Bool
			}
		case remediationthread.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RemediationThread.
// This includes values selected through modifiers, order, etc.
func (_m *RemediationThread) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestion queries the "question" edge of the RemediationThread entity.
func (_m *RemediationThread) QueryQuestion() *ExamQuestionQuery {
	return NewRemediationThreadClient(_m.config).QueryQuestion(_m)
}

// QueryMessages queries the "messages" edge of the RemediationThread entity.
func (_m *RemediationThread) QueryMessages() *RemediationMessageQuery {
	return NewRemediationThreadClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this RemediationThread.
// Note that you need to call RemediationThread.Unwrap() before calling this method if this RemediationThread
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RemediationThread) Update() *RemediationThreadUpdateOne {
	return NewRemediationThreadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RemediationThread entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RemediationThread) Unwrap() *RemediationThread {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RemediationThread is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RemediationThread) String() string {
	var builder strings.Builder
	builder.WriteString("RemediationThread(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("is_resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsResolved))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RemediationThreads is a parsable slice of RemediationThread.
type RemediationThreads []*RemediationThread
