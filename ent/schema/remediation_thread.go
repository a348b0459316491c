package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RemediationThread is a Socratic dialogue about one wrongly-answered
// question. At most one thread exists per (question, user); the tutor
// marks it resolved when the learner demonstrates understanding.
type RemediationThread struct {
	ent.Schema
}

func (RemediationThread) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Bool("is_resolved").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (RemediationThread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", ExamQuestion.Type).
			Ref("threads").
			Unique().
			Required().
			Immutable().
			Field("question_id"),
		edge.To("messages", RemediationMessage.Type),
	}
}

func (RemediationThread) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "user_id").
			Unique(),
		index.Fields("session_id"),
	}
}
