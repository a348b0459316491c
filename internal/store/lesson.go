package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/ent"
	"github.com/abhisek/tutorloop/ent/lesson"
)

// lessonRepo implements LessonRepo using the ent client.
type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) Create(ctx context.Context, l *Lesson) (*Lesson, error) {
	row, err := r.client.Lesson.Create().
		SetSessionID(l.SessionID).
		SetUserID(l.UserID).
		SetLessonType(l.LessonType).
		SetContent(l.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}
	return lessonFromEnt(row), nil
}

func (r *lessonRepo) BySessionAndType(ctx context.Context, sessionID, lessonType string) (*Lesson, error) {
	row, err := r.client.Lesson.Query().
		Where(lesson.SessionID(sessionID), lesson.LessonType(lessonType)).
		Order(ent.Desc(lesson.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query lesson: %w", err)
	}
	return lessonFromEnt(row), nil
}

func lessonFromEnt(row *ent.Lesson) *Lesson {
	return &Lesson{
		ID:         row.ID,
		SessionID:  row.SessionID,
		UserID:     row.UserID,
		LessonType: row.LessonType,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
	}
}
