package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is a unit of the curriculum. Topics form a linear prerequisite
// chain; a learner unlocks a topic by passing the one before it.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable slug, e.g. linear-equations"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.String("description").
			Default("").
			Comment("One-paragraph summary shown before starting"),
		field.Int("display_order").
			Comment("Position in the curriculum sequence"),
		field.String("prerequisite_id").
			Optional().
			Comment("Topic that must be passed first; empty for the entry topic"),
	}
}

func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("dependents", Topic.Type).
			From("prerequisite").
			Unique().
			Field("prerequisite_id"),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("display_order"),
	}
}
