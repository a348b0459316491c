package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/ent"
	"github.com/abhisek/tutorloop/ent/topicprogress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, topicID string) (*TopicProgress, error) {
	row, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(userID), topicprogress.TopicID(topicID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return progressFromEnt(row), nil
}

func (r *progressRepo) ListByUser(ctx context.Context, userID string) ([]*TopicProgress, error) {
	rows, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]*TopicProgress, len(rows))
	for i, row := range rows {
		out[i] = progressFromEnt(row)
	}
	return out, nil
}

func (r *progressRepo) CreateMany(ctx context.Context, rows []*TopicProgress) error {
	builders := make([]*ent.TopicProgressCreate, len(rows))
	for i, p := range rows {
		builders[i] = r.client.TopicProgress.Create().
			SetUserID(p.UserID).
			SetTopicID(p.TopicID).
			SetStatus(p.Status)
	}
	created, err := r.client.TopicProgress.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress rows: %w", err)
	}
	for i, row := range created {
		rows[i].ID = row.ID
	}
	return nil
}

func (r *progressRepo) MarkStarted(ctx context.Context, userID, topicID string) error {
	n, err := r.client.TopicProgress.Update().
		Where(topicprogress.UserID(userID), topicprogress.TopicID(topicID)).
		SetStatus("in_progress").
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark progress started: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *progressRepo) MarkCompleted(ctx context.Context, userID, topicID string, score int) error {
	row, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(userID), topicprogress.TopicID(topicID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("query progress: %w", err)
	}

	best := score
	if row.BestScore != nil && *row.BestScore > best {
		best = *row.BestScore
	}
	_, err = row.Update().
		SetStatus("completed").
		SetBestScore(best).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark progress completed: %w", err)
	}
	return nil
}

func (r *progressRepo) UnlockIfLocked(ctx context.Context, userID, topicID string) error {
	_, err := r.client.TopicProgress.Update().
		Where(
			topicprogress.UserID(userID),
			topicprogress.TopicID(topicID),
			topicprogress.Status("locked"),
		).
		SetStatus("available").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("unlock progress: %w", err)
	}
	return nil
}

func progressFromEnt(row *ent.TopicProgress) *TopicProgress {
	return &TopicProgress{
		ID:        row.ID,
		UserID:    row.UserID,
		TopicID:   row.TopicID,
		Status:    row.Status,
		BestScore: row.BestScore,
		Attempts:  row.Attempts,
		UpdatedAt: row.UpdatedAt,
	}
}
