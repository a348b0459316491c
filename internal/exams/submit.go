package exams

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/scoring"
	"github.com/abhisek/tutorloop/internal/store"
)

// Answer is one submitted answer. Answer is nil for an "I don't know"
// response.
type Answer struct {
	QuestionID string
	Answer     *string
	IsIDK      bool
}

// QuestionResult is the graded outcome of one question, returned to the
// client with the answer key revealed.
type QuestionResult struct {
	QuestionID    string
	IsCorrect     bool
	IsIDK         bool
	CorrectAnswer string
	Explanation   string
}

// SubmitResult is the outcome of grading one exam.
type SubmitResult struct {
	Score           int
	HasWrongAnswers bool
	NextState       loop.State
	Results         []QuestionResult
}

// Submit grades the answers for (session, examType), persists them,
// records the score, and advances the session state including the branch
// decisions and their side effects. Answers referencing question ids not
// in this session's set are skipped, tolerating stale clients.
func (s *Service) Submit(ctx context.Context, userID, sessionID, examType string, answers []Answer) (*SubmitResult, error) {
	_, active, completed, err := examStates(examType)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	state := loop.State(sess.State)
	if state != active {
		return nil, &loop.TransitionError{From: state, To: completed}
	}

	rows, err := s.questions.BySessionTypeAttempt(ctx, sessionID, examType, attemptNumber(examType, sess))
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	byID := make(map[string]*store.ExamQuestion, len(rows))
	for _, q := range rows {
		byID[q.ID] = q
	}

	var (
		records []store.AnswerRecord
		results []QuestionResult
		graded  []scoring.Result
	)
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}

		correct := scoring.GradeAnswer(a.Answer, a.IsIDK, q.CorrectAnswer)
		records = append(records, store.AnswerRecord{
			QuestionID: a.QuestionID,
			UserAnswer: a.Answer,
			IsCorrect:  correct,
			IsIDK:      a.IsIDK,
		})
		results = append(results, QuestionResult{
			QuestionID:    a.QuestionID,
			IsCorrect:     correct,
			IsIDK:         a.IsIDK,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
		graded = append(graded, scoring.Result{Correct: &correct, IsIDK: a.IsIDK})
	}

	if err := s.questions.RecordAnswers(ctx, records); err != nil {
		return nil, fmt.Errorf("record answers: %w", err)
	}

	score := scoring.CalculateScore(graded)
	hasWrong := false
	for _, r := range results {
		if !r.IsCorrect || r.IsIDK {
			hasWrong = true
			break
		}
	}

	next := s.nextState(examType, completed, score, sess.RemediationLoopCount)

	upd := store.SessionUpdate{}
	st := string(next)
	upd.State = &st
	switch examType {
	case "pre":
		upd.PreExamScore = &score
	case "post":
		upd.PostExamScore = &score
	case "remediation":
		upd.RemediationExamScore = &score
	}
	if next == loop.RemediationActive {
		upd.IncrementLoopCount = true
	}
	if err := s.sessions.Update(ctx, sessionID, upd); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	if next == loop.SessionPassed {
		if err := s.progress.Complete(ctx, userID, sess.TopicID, score); err != nil {
			return nil, err
		}
	}

	return &SubmitResult{
		Score:           score,
		HasWrongAnswers: hasWrong,
		NextState:       next,
		Results:         results,
	}, nil
}

// nextState resolves the state the session lands in after grading. A
// perfect pre-exam score skips the lesson and post-exam entirely; post and
// remediation exams branch on the score and loop count.
func (s *Service) nextState(examType string, completed loop.State, score, loopCount int) loop.State {
	if examType == "pre" && score == 100 {
		return loop.SessionPassed
	}
	if branched := loop.NextState(completed, loop.BranchContext{
		ExamScore:            &score,
		RemediationLoopCount: loopCount,
	}); branched != "" {
		return branched
	}
	return completed
}
