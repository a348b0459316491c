package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/ent"
	"github.com/abhisek/tutorloop/ent/learningsession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, userID, topicID string, sessionNumber int) (*Session, error) {
	row, err := r.client.LearningSession.Create().
		SetUserID(userID).
		SetTopicID(topicID).
		SetSessionNumber(sessionNumber).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row, err := r.client.LearningSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) GetOwned(ctx context.Context, id, userID string) (*Session, error) {
	row, err := r.client.LearningSession.Query().
		Where(learningsession.ID(id), learningsession.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get owned session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) CountForTopic(ctx context.Context, userID, topicID string) (int, error) {
	n, err := r.client.LearningSession.Query().
		Where(learningsession.UserID(userID), learningsession.TopicID(topicID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func (r *sessionRepo) Update(ctx context.Context, id string, upd SessionUpdate) error {
	builder := r.client.LearningSession.UpdateOneID(id).
		SetNillablePreExamScore(upd.PreExamScore).
		SetNillablePostExamScore(upd.PostExamScore).
		SetNillableRemediationExamScore(upd.RemediationExamScore)
	if upd.State != nil {
		builder = builder.SetState(*upd.State)
	}
	if upd.IncrementLoopCount {
		builder = builder.AddRemediationLoopCount(1)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func sessionFromEnt(row *ent.LearningSession) *Session {
	return &Session{
		ID:                   row.ID,
		UserID:               row.UserID,
		TopicID:              row.TopicID,
		State:                row.State,
		SessionNumber:        row.SessionNumber,
		PreExamScore:         row.PreExamScore,
		PostExamScore:        row.PostExamScore,
		RemediationExamScore: row.RemediationExamScore,
		RemediationLoopCount: row.RemediationLoopCount,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}
