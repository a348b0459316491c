package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TopicProgress tracks one user's standing on one topic: locked until the
// prerequisite is passed, available once unlocked, then in_progress and
// finally completed.
type TopicProgress struct {
	ent.Schema
}

func (TopicProgress) Fields() []ent.Field {
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
		field.String("status").
			Default("locked").
			Comment("locked, available, in_progress, or completed"),
		field.Int("best_score").
			Optional().
			Nillable().
			Comment("Highest passing-path score across sessions"),
		field.Int("attempts").
			Default(0).
			Comment("Sessions started on this topic"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (TopicProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").
			Unique(),
		index.Fields("user_id", "status"),
	}
}
