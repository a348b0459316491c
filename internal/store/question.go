package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/ent"
	"github.com/abhisek/tutorloop/ent/examquestion"
)

// questionRepo implements ExamQuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) CreateBatch(ctx context.Context, qs []*ExamQuestion) error {
	builders := make([]*ent.ExamQuestionCreate, len(qs))
	for i, q := range qs {
		builders[i] = r.client.ExamQuestion.Create().
			SetSessionID(q.SessionID).
			SetUserID(q.UserID).
			SetExamType(q.ExamType).
			SetAttemptNumber(q.AttemptNumber).
			SetQuestionNumber(q.QuestionNumber).
			SetQuestionText(q.QuestionText).
			SetChoices(q.Choices).
			SetCorrectAnswer(q.CorrectAnswer).
			SetExplanation(q.Explanation)
	}
	rows, err := r.client.ExamQuestion.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return fmt.Errorf("create questions: %w", err)
	}
	for i, row := range rows {
		qs[i].ID = row.ID
		qs[i].CreatedAt = row.CreatedAt
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, id string) (*ExamQuestion, error) {
	row, err := r.client.ExamQuestion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return questionFromEnt(row), nil
}

func (r *questionRepo) BySessionAndType(ctx context.Context, sessionID, examType string) ([]*ExamQuestion, error) {
	rows, err := r.client.ExamQuestion.Query().
		Where(
			examquestion.SessionID(sessionID),
			examquestion.ExamType(examType),
		).
		Order(ent.Asc(examquestion.FieldAttemptNumber), ent.Asc(examquestion.FieldQuestionNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return questionsFromEnt(rows), nil
}

func (r *questionRepo) BySessionTypeAttempt(ctx context.Context, sessionID, examType string, attempt int) ([]*ExamQuestion, error) {
	rows, err := r.client.ExamQuestion.Query().
		Where(
			examquestion.SessionID(sessionID),
			examquestion.ExamType(examType),
			examquestion.AttemptNumber(attempt),
		).
		Order(ent.Asc(examquestion.FieldQuestionNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt questions: %w", err)
	}
	return questionsFromEnt(rows), nil
}

func (r *questionRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.ExamQuestion.Delete().
		Where(examquestion.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}
	return nil
}

func (r *questionRepo) RecordAnswers(ctx context.Context, records []AnswerRecord) error {
	for _, rec := range records {
		builder := r.client.ExamQuestion.UpdateOneID(rec.QuestionID).
			SetIsCorrect(rec.IsCorrect).
			SetIsIdk(rec.IsIDK)
		if rec.UserAnswer != nil {
			builder = builder.SetUserAnswer(*rec.UserAnswer)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("record answer for %s: %w", rec.QuestionID, err)
		}
	}
	return nil
}

func questionFromEnt(row *ent.ExamQuestion) *ExamQuestion {
	return &ExamQuestion{
		ID:             row.ID,
		SessionID:      row.SessionID,
		UserID:         row.UserID,
		ExamType:       row.ExamType,
		AttemptNumber:  row.AttemptNumber,
		QuestionNumber: row.QuestionNumber,
		QuestionText:   row.QuestionText,
		Choices:        row.Choices,
		CorrectAnswer:  row.CorrectAnswer,
		Explanation:    row.Explanation,
		UserAnswer:     row.UserAnswer,
		IsCorrect:      row.IsCorrect,
		IsIDK:          row.IsIdk,
		CreatedAt:      row.CreatedAt,
	}
}

func questionsFromEnt(rows []*ent.ExamQuestion) []*ExamQuestion {
	out := make([]*ExamQuestion, len(rows))
	for i, row := range rows {
		out[i] = questionFromEnt(row)
	}
	return out
}
