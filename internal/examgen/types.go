package examgen

import (
	"errors"

	"github.com/abhisek/tutorloop/internal/store"
)

// ErrGenerationExhausted is returned when no defect-free batch could be
// produced within the attempt budget.
var ErrGenerationExhausted = errors.New("examgen: exhausted generation attempts")

// Question is one generated multiple-choice question. Choices is keyed by
// the letters A through D.
type Question struct {
	QuestionText  string            `json:"question_text"`
	Explanation   string            `json:"explanation"`
	Choices       map[string]string `json:"choices"`
	CorrectAnswer string            `json:"correct_answer"`
}

// Batch is an accepted set of questions, in serving order.
type Batch struct {
	Questions []Question
}

// PriorWrongQuestion is a question the learner previously missed, used to
// bias generation toward weak areas. UserAnswer is nil for an "I don't
// know" response.
type PriorWrongQuestion struct {
	QuestionText  string
	CorrectAnswer string
	UserAnswer    *string
}

// GenerateInput holds all context needed to generate an exam batch.
type GenerateInput struct {
	TopicName        string
	TopicDescription string

	// ExamType is "pre", "post" or "remediation".
	ExamType string

	// Count is the number of questions to produce.
	Count int

	// StudentModel is the learner profile for this topic, nil when the
	// learner has no history yet.
	StudentModel *store.StudentModel

	// PriorWrong lists questions missed on the preceding exam.
	PriorWrong []PriorWrongQuestion

	// AvoidQuestions lists question texts from earlier remediation
	// attempts that must not be repeated.
	AvoidQuestions []string
}
