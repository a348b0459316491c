package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Lesson is the persisted text of a generated lesson. The content is the
// fully streamed, normalized Markdown/LaTeX.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("lesson_type").
			Immutable().
			Comment("initial or remediation"),
		field.Text("content").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", LearningSession.Type).
			Ref("lessons").
			Unique().
			Required().
			Immutable().
			Field("session_id"),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "lesson_type"),
	}
}
