// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorloop/ent/studentmodel"
)

// StudentModel is the model entity for the StudentModel schema.
type StudentModel struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []string `json:"strengths,omitempty"`
	// Weaknesses holds the value of the "weaknesses" field.
	Weaknesses []string `json:"weaknesses,omitempty"`
	// Misconceptions holds the value of the "misconceptions" field.
	Misconceptions []string `json:"misconceptions,omitempty"`
	// 0-100 overall understanding of the topic
	MasteryLevel int `json:"mastery_level,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentModel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentmodel.FieldStrengths, studentmodel.FieldWeaknesses, studentmodel.FieldMisconceptions:
			values[i] = new([]byte)
		case studentmodel.FieldMasteryLevel:
			values[i] = new(sql.NullInt64)
		case studentmodel.FieldID, studentmodel.FieldUserID, studentmodel.FieldTopicID:
			values[i] = new(sql.NullString)
		case studentmodel.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentModel fields.
func (_m *StudentModel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentmodel.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case studentmodel.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case studentmodel.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case studentmodel.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case studentmodel.FieldWeaknesses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weaknesses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weaknesses); err != nil {
					return fmt.Errorf("unmarshal field weaknesses: %w", err)
				}
			}
		case studentmodel.FieldMisconceptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field misconceptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Misconceptions); err != nil {
					return fmt.Errorf("unmarshal field misconceptions: %w", err)
				}
			}
		case studentmodel.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = int(value.Int64)
			}
		case studentmodel.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StudentModel.
// This includes values selected through modifiers, order, etc.
func (_m *StudentModel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudentModel.
// Note that you need to call StudentModel.Unwrap() before calling this method if this StudentModel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentModel) Update() *StudentModelUpdateOne {
	return NewStudentModelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentModel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentModel) Unwrap() *StudentModel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentModel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentModel) String() string {
	var builder strings.Builder
	builder.WriteString("StudentModel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("weaknesses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weaknesses))
	builder.WriteString(", ")
	builder.WriteString("misconceptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Misconceptions))
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevel))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudentModels is a parsable slice of StudentModel.
type StudentModels []*StudentModel
