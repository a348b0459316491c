package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LearningSession is one run of the learning loop for a (user, topic)
// pair. The state column drives the session state machine; scores and the
// remediation loop counter accumulate as exams are submitted.
type LearningSession struct {
	ent.Schema
}

func (LearningSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("topic_id").
			NotEmpty().
			Immutable(),
		field.String("state").
			Default("pre_exam_pending").
			Comment("Current state machine state"),
		field.Int("session_number").
			Default(1).
			Immutable().
			Comment("1-based count of sessions this user has started on this topic"),
		field.Int("pre_exam_score").
			Optional().
			Nillable(),
		field.Int("post_exam_score").
			Optional().
			Nillable(),
		field.Int("remediation_exam_score").
			Optional().
			Nillable().
			Comment("Score of the most recent remediation exam"),
		field.Int("remediation_loop_count").
			Default(0).
			Comment("Remediation cycles entered; capped by the loop limit"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearningSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("topic", Topic.Type).
			Unique().
			Required().
			Immutable().
			Field("topic_id"),
		edge.To("questions", ExamQuestion.Type),
		edge.To("lessons", Lesson.Type),
	}
}

func (LearningSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id"),
		index.Fields("user_id", "state"),
	}
}
