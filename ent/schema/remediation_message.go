package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RemediationMessage is one turn in a remediation thread.
type RemediationMessage struct {
	ent.Schema
}

func (RemediationMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("thread_id").
			NotEmpty().
			Immutable(),
		field.String("role").
			Immutable().
			Comment("user or assistant"),
		field.Text("content").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (RemediationMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", RemediationThread.Type).
			Ref("messages").
			Unique().
			Required().
			Immutable().
			Field("thread_id"),
	}
}

func (RemediationMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "created_at"),
	}
}
