package api

import (
	"time"

	"github.com/abhisek/tutorloop/internal/store"
)

type sessionPayload struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	TopicID              string    `json:"topic_id"`
	State                string    `json:"state"`
	SessionNumber        int       `json:"session_number"`
	PreExamScore         *int      `json:"pre_exam_score"`
	PostExamScore        *int      `json:"post_exam_score"`
	RemediationExamScore *int      `json:"remediation_exam_score"`
	RemediationLoopCount int       `json:"remediation_loop_count"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func toSessionPayload(s *store.Session) sessionPayload {
	return sessionPayload{
		ID:                   s.ID,
		UserID:               s.UserID,
		TopicID:              s.TopicID,
		State:                s.State,
		SessionNumber:        s.SessionNumber,
		PreExamScore:         s.PreExamScore,
		PostExamScore:        s.PostExamScore,
		RemediationExamScore: s.RemediationExamScore,
		RemediationLoopCount: s.RemediationLoopCount,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

// questionPayload is an exam question row. The answer key is withheld
// until the question has been answered.
type questionPayload struct {
	ID             string            `json:"id"`
	SessionID      string            `json:"session_id"`
	ExamType       string            `json:"exam_type"`
	AttemptNumber  int               `json:"attempt_number"`
	QuestionNumber int               `json:"question_number"`
	QuestionText   string            `json:"question_text"`
	Choices        map[string]string `json:"choices"`
	CorrectAnswer  string            `json:"correct_answer,omitempty"`
	Explanation    string            `json:"explanation,omitempty"`
	UserAnswer     *string           `json:"user_answer"`
	IsCorrect      *bool             `json:"is_correct"`
	IsIDK          bool              `json:"is_idk"`
}

func toQuestionPayload(q *store.ExamQuestion) questionPayload {
	p := questionPayload{
		ID:             q.ID,
		SessionID:      q.SessionID,
		ExamType:       q.ExamType,
		AttemptNumber:  q.AttemptNumber,
		QuestionNumber: q.QuestionNumber,
		QuestionText:   q.QuestionText,
		Choices:        q.Choices,
		UserAnswer:     q.UserAnswer,
		IsCorrect:      q.IsCorrect,
		IsIDK:          q.IsIDK,
	}
	if q.UserAnswer != nil {
		p.CorrectAnswer = q.CorrectAnswer
		p.Explanation = q.Explanation
	}
	return p
}

func toQuestionPayloads(qs []*store.ExamQuestion) []questionPayload {
	out := make([]questionPayload, 0, len(qs))
	for _, q := range qs {
		out = append(out, toQuestionPayload(q))
	}
	return out
}

type threadPayload struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	SessionID  string    `json:"session_id"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

func toThreadPayload(t *store.Thread) threadPayload {
	return threadPayload{
		ID:         t.ID,
		QuestionID: t.QuestionID,
		SessionID:  t.SessionID,
		IsResolved: t.IsResolved,
		CreatedAt:  t.CreatedAt,
	}
}

type messagePayload struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessagePayloads(msgs []*store.Message) []messagePayload {
	out := make([]messagePayload, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messagePayload{
			ID:        m.ID,
			ThreadID:  m.ThreadID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

type studentModelPayload struct {
	UserID         string    `json:"user_id"`
	TopicID        string    `json:"topic_id"`
	Strengths      []string  `json:"strengths"`
	Weaknesses     []string  `json:"weaknesses"`
	Misconceptions []string  `json:"misconceptions"`
	MasteryLevel   int       `json:"mastery_level"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toStudentModelPayload(m *store.StudentModel) studentModelPayload {
	return studentModelPayload{
		UserID:         m.UserID,
		TopicID:        m.TopicID,
		Strengths:      m.Strengths,
		Weaknesses:     m.Weaknesses,
		Misconceptions: m.Misconceptions,
		MasteryLevel:   m.MasteryLevel,
		UpdatedAt:      m.UpdatedAt,
	}
}

type lessonPayload struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	LessonType string    `json:"lesson_type"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func toLessonPayload(l *store.Lesson) lessonPayload {
	return lessonPayload{
		ID:         l.ID,
		SessionID:  l.SessionID,
		LessonType: l.LessonType,
		Content:    l.Content,
		CreatedAt:  l.CreatedAt,
	}
}

type topicPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DisplayOrder   int    `json:"display_order"`
	PrerequisiteID string `json:"prerequisite_id,omitempty"`
}

func toTopicPayload(t *store.Topic) topicPayload {
	return topicPayload{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		DisplayOrder:   t.DisplayOrder,
		PrerequisiteID: t.PrerequisiteID,
	}
}

// progressPayload is a progress row enriched with topic details and the
// student model's mastery level.
type progressPayload struct {
	TopicID      string `json:"topic_id"`
	TopicName    string `json:"topic_name"`
	DisplayOrder int    `json:"display_order"`
	Status       string `json:"status"`
	BestScore    *int   `json:"best_score"`
	Attempts     int    `json:"attempts"`
	MasteryLevel int    `json:"mastery_level"`
}
