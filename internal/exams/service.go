// Package exams orchestrates the learning-session lifecycle: starting
// sessions, serving and grading exams, and driving the state machine's
// branch decisions with their side effects.
package exams

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/tutorloop/internal/examgen"
	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/progress"
	"github.com/abhisek/tutorloop/internal/store"
)

// Generator produces validated exam batches. Satisfied by
// *examgen.Service.
type Generator interface {
	GenerateBatch(ctx context.Context, input examgen.GenerateInput) (*examgen.Batch, error)
}

// Service runs exam generation and submission against the store.
type Service struct {
	sessions  store.SessionRepo
	questions store.ExamQuestionRepo
	students  store.StudentModelRepo
	topics    store.TopicRepo
	progress  *progress.Service
	generator Generator
	logger    *slog.Logger
}

func New(
	sessions store.SessionRepo,
	questions store.ExamQuestionRepo,
	students store.StudentModelRepo,
	topics store.TopicRepo,
	prog *progress.Service,
	generator Generator,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		sessions:  sessions,
		questions: questions,
		students:  students,
		topics:    topics,
		progress:  prog,
		generator: generator,
		logger:    logger,
	}
}

// examStates returns the pending, active and completed states for an exam
// type, or an error for an unknown type.
func examStates(examType string) (pending, active, completed loop.State, err error) {
	switch examType {
	case "pre":
		return loop.PreExamPending, loop.PreExamActive, loop.PreExamCompleted, nil
	case "post":
		return loop.PostExamPending, loop.PostExamActive, loop.PostExamCompleted, nil
	case "remediation":
		return loop.RemediationExamPending, loop.RemediationExamActive, loop.RemediationExamCompleted, nil
	default:
		return "", "", "", fmt.Errorf("unknown exam type %q", examType)
	}
}

// attemptNumber is 1 for pre and post exams. Remediation exams are
// numbered by the session's loop count so each cycle gets its own set.
func attemptNumber(examType string, sess *store.Session) int {
	if examType != "remediation" {
		return 1
	}
	if sess.RemediationLoopCount < 1 {
		return 1
	}
	return sess.RemediationLoopCount
}

// unanswered filters questions that have not been submitted yet.
func unanswered(qs []*store.ExamQuestion) []*store.ExamQuestion {
	var out []*store.ExamQuestion
	for _, q := range qs {
		if q.UserAnswer == nil && !q.IsIDK && q.IsCorrect == nil {
			out = append(out, q)
		}
	}
	return out
}

func questionIDs(qs []*store.ExamQuestion) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func (s *Service) setState(ctx context.Context, sessionID string, state loop.State) error {
	st := string(state)
	if err := s.sessions.Update(ctx, sessionID, store.SessionUpdate{State: &st}); err != nil {
		return fmt.Errorf("update session state: %w", err)
	}
	return nil
}
