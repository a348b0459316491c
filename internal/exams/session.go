package exams

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/store"
)

// StartSession creates a new learning session for (userID, topicID) in the
// pre_exam_pending state. It also seeds the user's progress rows when
// missing, creates an empty student model on the learner's first session
// for the topic, and counts the attempt on the topic's progress row.
func (s *Service) StartSession(ctx context.Context, userID, topicID string) (*store.Session, error) {
	if _, err := s.topics.Get(ctx, topicID); err != nil {
		return nil, err
	}

	if err := s.progress.Initialize(ctx, userID); err != nil {
		return nil, err
	}

	count, err := s.sessions.CountForTopic(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	model, err := s.students.Get(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("get student model: %w", err)
	}
	if model == nil {
		if err := s.students.Upsert(ctx, &store.StudentModel{
			UserID:  userID,
			TopicID: topicID,
		}); err != nil {
			return nil, fmt.Errorf("create student model: %w", err)
		}
	}

	if err := s.progress.Start(ctx, userID, topicID); err != nil {
		return nil, fmt.Errorf("mark progress started: %w", err)
	}

	sess, err := s.sessions.Create(ctx, userID, topicID, count+1)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Transition moves a session to target if the state machine allows it.
func (s *Service) Transition(ctx context.Context, userID, sessionID string, target loop.State) (*store.Session, error) {
	sess, err := s.sessions.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	from := loop.State(sess.State)
	if !loop.Valid(target) || !loop.CanTransition(from, target) {
		return nil, &loop.TransitionError{From: from, To: target}
	}

	if err := s.setState(ctx, sessionID, target); err != nil {
		return nil, err
	}
	sess.State = string(target)
	return sess, nil
}

// GetSession returns a session owned by the user.
func (s *Service) GetSession(ctx context.Context, userID, sessionID string) (*store.Session, error) {
	return s.sessions.GetOwned(ctx, sessionID, userID)
}
