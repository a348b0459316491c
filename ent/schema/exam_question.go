package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ExamQuestion is one multiple-choice question served in an exam. Answer
// fields start null and are filled in by submission; is_idk records an
// explicit "I don't know", which always grades as incorrect.
type ExamQuestion struct {
	ent.Schema
}

func (ExamQuestion) Fields() []ent.Field {
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
		field.String("exam_type").
			Immutable().
			Comment("pre, post, or remediation"),
		field.Int("attempt_number").
			Default(1).
			Immutable().
			Comment("Remediation loop the question belongs to; 1 for pre/post"),
		field.Int("question_number").
			Immutable().
			Comment("1-based position within the exam"),
		field.Text("question_text").
			NotEmpty(),
		field.JSON("choices", map[string]string{}).
			Comment("Answer choices keyed A through D"),
		field.String("correct_answer").
			NotEmpty().
			Comment("Choice key of the correct answer"),
		field.Text("explanation").
			Default(""),
		field.String("user_answer").
			Optional().
			Nillable(),
		field.Bool("is_correct").
			Optional().
			Nillable(),
		field.Bool("is_idk").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExamQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", LearningSession.Type).
			Ref("questions").
			Unique().
			Required().
			Immutable().
			Field("session_id"),
		edge.To("threads", RemediationThread.Type),
	}
}

func (ExamQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "exam_type"),
		index.Fields("user_id"),
	}
}
