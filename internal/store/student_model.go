package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/ent"
	"github.com/abhisek/tutorloop/ent/studentmodel"
)

// studentModelRepo implements StudentModelRepo using the ent client.
type studentModelRepo struct {
	client *ent.Client
}

func (r *studentModelRepo) Get(ctx context.Context, userID, topicID string) (*StudentModel, error) {
	row, err := r.client.StudentModel.Query().
		Where(studentmodel.UserID(userID), studentmodel.TopicID(topicID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student model: %w", err)
	}
	return studentModelFromEnt(row), nil
}

func (r *studentModelRepo) Upsert(ctx context.Context, m *StudentModel) error {
	existing, err := r.client.StudentModel.Query().
		Where(studentmodel.UserID(m.UserID), studentmodel.TopicID(m.TopicID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetStrengths(m.Strengths).
			SetWeaknesses(m.Weaknesses).
			SetMisconceptions(m.Misconceptions).
			SetMasteryLevel(m.MasteryLevel).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update student model: %w", err)
		}
		m.ID = existing.ID
		return nil
	case ent.IsNotFound(err):
		row, err := r.client.StudentModel.Create().
			SetUserID(m.UserID).
			SetTopicID(m.TopicID).
			SetStrengths(m.Strengths).
			SetWeaknesses(m.Weaknesses).
			SetMisconceptions(m.Misconceptions).
			SetMasteryLevel(m.MasteryLevel).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create student model: %w", err)
		}
		m.ID = row.ID
		return nil
	default:
		return fmt.Errorf("query student model: %w", err)
	}
}

func studentModelFromEnt(row *ent.StudentModel) *StudentModel {
	return &StudentModel{
		ID:             row.ID,
		UserID:         row.UserID,
		TopicID:        row.TopicID,
		Strengths:      row.Strengths,
		Weaknesses:     row.Weaknesses,
		Misconceptions: row.Misconceptions,
		MasteryLevel:   row.MasteryLevel,
		UpdatedAt:      row.UpdatedAt,
	}
}
