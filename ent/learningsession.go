// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorloop/ent/learningsession"
	"github.com/abhisek/tutorloop/ent/topic"
)

// LearningSession is the model entity for the LearningSession schema.
type LearningSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Current state machine state
	State string `json:"state,omitempty"`
	// 1-based count of sessions this user has started on this topic
	SessionNumber int `json:"session_number,omitempty"`
	// PreExamScore holds the value of the "pre_exam_score" field.
	PreExamScore *int `json:"pre_exam_score,omitempty"`
	// PostExamScore holds the value of the "post_exam_score" field.
	PostExamScore *int `json:"post_exam_score,omitempty"`
	// Score of the most recent remediation exam
	RemediationExamScore *int `json:"remediation_exam_score,omitempty"`
	// Remediation cycles entered; capped by the loop limit
	RemediationLoopCount int `json:"remediation_loop_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LearningSessionQuery when eager-loading is set.
	Edges        LearningSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LearningSessionEdges holds the relations/edges for other nodes in the graph.
type LearningSessionEdges struct {
	// Topic holds the value of the topic edge.
	Topic *Topic `json:"topic,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*ExamQuestion `json:"questions,omitempty"`
	// Lessons holds the value of the lessons edge.
	Lessons []*Lesson `json:"lessons,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TopicOrErr returns the Topic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LearningSessionEdges) TopicOrErr() (*Topic, error) {
	if e.Topic != nil {
		return e.Topic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topic.Label}
	}
	return nil, &NotLoadedError{edge: "topic"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e LearningSessionEdges) QuestionsOrErr() ([]*ExamQuestion, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// LessonsOrErr returns the Lessons value or an error if the edge
// was not loaded in eager-loading.
func (e LearningSessionEdges) LessonsOrErr() ([]*Lesson, error) {
	if e.loadedTypes[2] {
		return e.Lessons, nil
	}
	return nil, &NotLoadedError{edge: "lessons"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningsession.FieldSessionNumber, learningsession.FieldPreExamScore, learningsession.FieldPostExamScore, learningsession.FieldRemediationExamScore, learningsession.FieldRemediationLoopCount:
			values[i] = new(sql.NullInt64)
		case learningsession.FieldID, learningsession.FieldUserID, learningsession.FieldTopicID, learningsession.FieldState:
			values[i] = new(sql.NullString)
		case learningsession.FieldCreatedAt, learningsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningSession fields.
func (_m *LearningSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learningsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningsession.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case learningsession.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case learningsession.FieldSessionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_number", values[i])
			} else if value.Valid {
				_m.SessionNumber = int(value.Int64)
			}
		case learningsession.FieldPreExamScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pre_exam_score", values[i])
			} else if value.Valid {
				_m.PreExamScore = new(int)
				*_m.PreExamScore = int(value.Int64)
			}
		case learningsession.FieldPostExamScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field post_exam_score", values[i])
			} else if value.Valid {
				_m.PostExamScore = new(int)
				*_m.PostExamScore = int(value.Int64)
			}
		case learningsession.FieldRemediationExamScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remediation_exam_score", values[i])
			} else if value.Valid {
				_m.RemediationExamScore = new(int)
				*_m.RemediationExamScore = int(value.Int64)
			}
		case learningsession.FieldRemediationLoopCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remediation_loop_count", values[i])
			} else if value.Valid {
				_m.RemediationLoopCount = int(value.Int64)
			}
		case learningsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learningsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningSession.
// This includes values selected through modifiers, order, etc.
func (_m *LearningSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTopic queries the "topic" edge of the LearningSession entity.
func (_m *LearningSession) QueryTopic() *TopicQuery {
	return NewLearningSessionClient(_m.config).QueryTopic(_m)
}

// QueryQuestions queries the "questions" edge of the LearningSession entity.
func (_m *LearningSession) QueryQuestions() *ExamQuestionQuery {
	return NewLearningSessionClient(_m.config).QueryQuestions(_m)
}

// QueryLessons queries the "lessons" edge of the LearningSession entity.
func (_m *LearningSession) QueryLessons() *LessonQuery {
	return NewLearningSessionClient(_m.config).QueryLessons(_m)
}

// Update returns a builder for updating this LearningSession.
// Note that you need to call LearningSession.Unwrap() before calling this method if this LearningSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningSession) Update() *LearningSessionUpdateOne {
	return NewLearningSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningSession) Unwrap() *LearningSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningSession) String() string {
	var builder strings.Builder
	builder.WriteString("LearningSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("session_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionNumber))
	builder.WriteString(", ")
	if v := _m.PreExamScore; v != nil {
		builder.WriteString("pre_exam_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PostExamScore; v != nil {
		builder.WriteString("post_exam_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RemediationExamScore; v != nil {
		builder.WriteString("remediation_exam_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("remediation_loop_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemediationLoopCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningSessions is a parsable slice of LearningSession.
type LearningSessions []*LearningSession
