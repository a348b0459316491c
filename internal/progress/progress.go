// Package progress maintains per-user topic progression: which topics are
// locked, available, in progress or completed, and the unlock chain that
// follows a passed session.
package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/internal/store"
)

// Service manages topic progress rows.
type Service struct {
	topics   store.TopicRepo
	progress store.ProgressRepo
}

func New(topics store.TopicRepo, progress store.ProgressRepo) *Service {
	return &Service{topics: topics, progress: progress}
}

// Initialize ensures the user has a progress row for every topic. The
// curriculum's first topic starts available, every other new row starts
// locked. Existing rows are never touched, so the call is idempotent.
func (s *Service) Initialize(ctx context.Context, userID string) error {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	if len(topics) == 0 {
		return nil
	}

	existing, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list progress: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p.TopicID] = true
	}

	var rows []*store.TopicProgress
	for i, t := range topics {
		if have[t.ID] {
			continue
		}
		status := "locked"
		if i == 0 {
			status = "available"
		}
		rows = append(rows, &store.TopicProgress{
			UserID:  userID,
			TopicID: t.ID,
			Status:  status,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.progress.CreateMany(ctx, rows); err != nil {
		return fmt.Errorf("create progress rows: %w", err)
	}
	return nil
}

// Start marks the topic in_progress and counts the attempt.
func (s *Service) Start(ctx context.Context, userID, topicID string) error {
	return s.progress.MarkStarted(ctx, userID, topicID)
}

// Complete marks the topic completed with the session's score and unlocks
// every topic whose prerequisite is the completed one. Locked dependents
// become available; dependents in any other status are left alone.
func (s *Service) Complete(ctx context.Context, userID, topicID string, score int) error {
	if err := s.progress.MarkCompleted(ctx, userID, topicID, score); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}

	dependents, err := s.topics.Dependents(ctx, topicID)
	if err != nil {
		return fmt.Errorf("list dependents: %w", err)
	}
	for _, d := range dependents {
		if err := s.progress.UnlockIfLocked(ctx, userID, d.ID); err != nil {
			return fmt.Errorf("unlock topic %s: %w", d.ID, err)
		}
	}
	return nil
}

// ListByUser returns the user's progress rows.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*store.TopicProgress, error) {
	return s.progress.ListByUser(ctx, userID)
}
