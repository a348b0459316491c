package exams

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/internal/examgen"
	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/scoring"
	"github.com/abhisek/tutorloop/internal/store"
)

// Generate produces the question set for (session, examType) and moves the
// session to the exam's active state. The operation is idempotent: a
// reload while the exam is active returns the existing unanswered set, and
// a concurrent duplicate trigger adopts the set the other request
// inserted. Any persistence failure after generation is returned as an
// error; retrying the whole call is safe.
func (s *Service) Generate(ctx context.Context, userID, sessionID, examType string) ([]*store.ExamQuestion, error) {
	pending, active, _, err := examStates(examType)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	attempt := attemptNumber(examType, sess)
	count := scoring.QuestionCount(examType)
	state := loop.State(sess.State)

	// Reload guard: while the exam is active, a complete unanswered set is
	// returned as-is. A partial set is discarded and regenerated.
	if state == active {
		rows, err := s.questions.BySessionTypeAttempt(ctx, sessionID, examType, attempt)
		if err != nil {
			return nil, fmt.Errorf("load existing questions: %w", err)
		}
		open := unanswered(rows)
		if len(open) > 0 {
			if len(open) == count {
				return open, nil
			}
			if err := s.questions.DeleteByIDs(ctx, questionIDs(rows)); err != nil {
				return nil, fmt.Errorf("clear partial question set: %w", err)
			}
		}
	}

	if state != pending && state != active && !loop.CanTransition(state, active) {
		return nil, &loop.TransitionError{From: state, To: active}
	}

	topic, err := s.topics.Get(ctx, sess.TopicID)
	if err != nil {
		return nil, err
	}

	model, err := s.students.Get(ctx, userID, sess.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get student model: %w", err)
	}

	priorWrong, err := s.priorWrongQuestions(ctx, sessionID, examType)
	if err != nil {
		return nil, err
	}

	// A fully answered remediation set from this loop count means a stale
	// attempt is in the way (the loop count was not bumped, e.g. after a
	// manual state rollback). Clear it so the learner gets fresh questions.
	if examType == "remediation" && state != active {
		rows, err := s.questions.BySessionTypeAttempt(ctx, sessionID, examType, attempt)
		if err != nil {
			return nil, fmt.Errorf("load remediation questions: %w", err)
		}
		if len(rows) > 0 && len(unanswered(rows)) == 0 {
			if err := s.questions.DeleteByIDs(ctx, questionIDs(rows)); err != nil {
				return nil, fmt.Errorf("clear stale remediation set: %w", err)
			}
		}
	}

	avoid, err := s.avoidList(ctx, sessionID, examType, attempt)
	if err != nil {
		return nil, err
	}

	// Race guard: a concurrent request may have inserted a set after the
	// state checks above. Adopt a complete set instead of duplicating it.
	rows, err := s.questions.BySessionTypeAttempt(ctx, sessionID, examType, attempt)
	if err != nil {
		return nil, fmt.Errorf("recheck questions: %w", err)
	}
	if open := unanswered(rows); len(open) > 0 {
		if len(open) == count {
			if err := s.setState(ctx, sessionID, active); err != nil {
				return nil, err
			}
			return open, nil
		}
		if err := s.questions.DeleteByIDs(ctx, questionIDs(rows)); err != nil {
			return nil, fmt.Errorf("clear racing question set: %w", err)
		}
	}

	batch, err := s.generator.GenerateBatch(ctx, examgen.GenerateInput{
		TopicName:        topic.Name,
		TopicDescription: topic.Description,
		ExamType:         examType,
		Count:            count,
		StudentModel:     model,
		PriorWrong:       priorWrong,
		AvoidQuestions:   avoid,
	})
	if err != nil {
		return nil, err
	}

	created := make([]*store.ExamQuestion, len(batch.Questions))
	for i, q := range batch.Questions {
		created[i] = &store.ExamQuestion{
			SessionID:      sessionID,
			UserID:         userID,
			ExamType:       examType,
			AttemptNumber:  attempt,
			QuestionNumber: i + 1,
			QuestionText:   q.QuestionText,
			Choices:        q.Choices,
			CorrectAnswer:  q.CorrectAnswer,
			Explanation:    q.Explanation,
		}
	}
	if err := s.questions.CreateBatch(ctx, created); err != nil {
		return nil, fmt.Errorf("save questions: %w", err)
	}

	if err := s.setState(ctx, sessionID, active); err != nil {
		return nil, err
	}
	return created, nil
}

// priorWrongQuestions collects the missed or IDK questions from the exam
// preceding this one: the pre exam for post, the post exam for
// remediation. Pre exams have no predecessor.
func (s *Service) priorWrongQuestions(ctx context.Context, sessionID, examType string) ([]examgen.PriorWrongQuestion, error) {
	var priorType string
	switch examType {
	case "post":
		priorType = "pre"
	case "remediation":
		priorType = "post"
	default:
		return nil, nil
	}

	rows, err := s.questions.BySessionAndType(ctx, sessionID, priorType)
	if err != nil {
		return nil, fmt.Errorf("load prior questions: %w", err)
	}

	var wrong []examgen.PriorWrongQuestion
	for _, q := range rows {
		if q.IsIDK || (q.IsCorrect != nil && !*q.IsCorrect) {
			wrong = append(wrong, examgen.PriorWrongQuestion{
				QuestionText:  q.QuestionText,
				CorrectAnswer: q.CorrectAnswer,
				UserAnswer:    q.UserAnswer,
			})
		}
	}
	return wrong, nil
}

// avoidList gathers the texts of earlier remediation attempts' questions
// so repeat loops don't serve the same problems again.
func (s *Service) avoidList(ctx context.Context, sessionID, examType string, attempt int) ([]string, error) {
	if examType != "remediation" || attempt <= 1 {
		return nil, nil
	}

	rows, err := s.questions.BySessionAndType(ctx, sessionID, "remediation")
	if err != nil {
		return nil, fmt.Errorf("load earlier remediation questions: %w", err)
	}

	var texts []string
	for _, q := range rows {
		if q.AttemptNumber < attempt {
			texts = append(texts, q.QuestionText)
		}
	}
	return texts, nil
}
