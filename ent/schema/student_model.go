package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// StudentModel is the LLM-maintained profile of a learner on one topic.
// It is rebuilt by merging each exam result and remediation insight into
// the previous profile, then fed back into exam and lesson prompts.
type StudentModel struct {
	ent.Schema
}

func (StudentModel) Fields() []ent.Field {
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
		field.JSON("strengths", []string{}).
			Optional(),
		field.JSON("weaknesses", []string{}).
			Optional(),
		field.JSON("misconceptions", []string{}).
			Optional(),
		field.Int("mastery_level").
			Default(0).
			Min(0).
			Max(100).
			Comment("0-100 overall understanding of the topic"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StudentModel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").
			Unique(),
	}
}
