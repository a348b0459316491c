package exams

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/store"
)

func letter(s string) *string { return &s }

// answersFor builds one submission per question, answering correct for the
// first n and "B" after that.
func answersFor(qs []*store.ExamQuestion, correct int) []Answer {
	out := make([]Answer, len(qs))
	for i, q := range qs {
		a := Answer{QuestionID: q.ID}
		if i < correct {
			a.Answer = letter(q.CorrectAnswer)
		} else {
			a.Answer = letter("B")
		}
		out[i] = a
	}
	return out
}

func TestSubmit_GradesAndScores(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamActive))
	qs := seedQuestions(t, env, sess, "pre", 1, 5)

	res, err := env.svc.Submit(ctx, "user-1", sess.ID, "pre", answersFor(qs, 4))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 80 {
		t.Errorf("score = %d, want 80", res.Score)
	}
	if !res.HasWrongAnswers {
		t.Error("HasWrongAnswers = false, want true")
	}
	if res.NextState != loop.PreExamCompleted {
		t.Errorf("next state = %q, want %q", res.NextState, loop.PreExamCompleted)
	}
	if len(res.Results) != 5 {
		t.Fatalf("results = %d, want 5", len(res.Results))
	}
	if res.Results[0].CorrectAnswer == "" || res.Results[0].Explanation == "" {
		t.Error("answer key not revealed in results")
	}

	if sess.PreExamScore == nil || *sess.PreExamScore != 80 {
		t.Errorf("pre exam score = %v, want 80", sess.PreExamScore)
	}
	if sess.State != string(loop.PreExamCompleted) {
		t.Errorf("state = %q, want %q", sess.State, loop.PreExamCompleted)
	}
	if qs[0].IsCorrect == nil || !*qs[0].IsCorrect {
		t.Error("graded answer not written back to question row")
	}
}

func TestSubmit_PerfectPreExamPassesSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamActive))
	qs := seedQuestions(t, env, sess, "pre", 1, 5)

	res, err := env.svc.Submit(ctx, "user-1", sess.ID, "pre", answersFor(qs, 5))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 100 || res.HasWrongAnswers {
		t.Errorf("score = %d hasWrong = %v, want 100/false", res.Score, res.HasWrongAnswers)
	}
	if res.NextState != loop.SessionPassed {
		t.Errorf("next state = %q, want %q", res.NextState, loop.SessionPassed)
	}

	prog := env.progress.byKey["user-1|linear-equations"]
	if prog.Status != "completed" {
		t.Errorf("topic status = %q, want completed", prog.Status)
	}
	if prog.BestScore == nil || *prog.BestScore != 100 {
		t.Errorf("best score = %v, want 100", prog.BestScore)
	}
	next := env.progress.byKey["user-1|systems"]
	if next.Status != "available" {
		t.Errorf("dependent topic status = %q, want available", next.Status)
	}
}

func TestSubmit_FailedPostExamEntersRemediation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PostExamActive))
	qs := seedQuestions(t, env, sess, "post", 1, 5)

	res, err := env.svc.Submit(ctx, "user-1", sess.ID, "post", answersFor(qs, 2))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 40 {
		t.Errorf("score = %d, want 40", res.Score)
	}
	if res.NextState != loop.RemediationActive {
		t.Errorf("next state = %q, want %q", res.NextState, loop.RemediationActive)
	}
	if sess.RemediationLoopCount != 1 {
		t.Errorf("loop count = %d, want 1", sess.RemediationLoopCount)
	}
	if sess.PostExamScore == nil || *sess.PostExamScore != 40 {
		t.Errorf("post exam score = %v, want 40", sess.PostExamScore)
	}
}

func TestSubmit_PassingRemediationExamPassesSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.RemediationExamActive))
	sess.RemediationLoopCount = 1
	qs := seedQuestions(t, env, sess, "remediation", 1, 3)

	res, err := env.svc.Submit(ctx, "user-1", sess.ID, "remediation", answersFor(qs, 3))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 100 || res.NextState != loop.SessionPassed {
		t.Errorf("score = %d next = %q, want 100/%q", res.Score, res.NextState, loop.SessionPassed)
	}
	if env.progress.byKey["user-1|linear-equations"].Status != "completed" {
		t.Error("topic not completed on passing remediation exam")
	}
}

func TestSubmit_ThirdFailedRemediationFailsSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.RemediationExamActive))
	sess.RemediationLoopCount = 3
	qs := seedQuestions(t, env, sess, "remediation", 3, 3)

	res, err := env.svc.Submit(ctx, "user-1", sess.ID, "remediation", answersFor(qs, 1))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.NextState != loop.SessionFailed {
		t.Errorf("next state = %q, want %q", res.NextState, loop.SessionFailed)
	}
	if sess.RemediationLoopCount != 3 {
		t.Errorf("loop count = %d, want 3", sess.RemediationLoopCount)
	}
}

func TestSubmit_SkipsUnknownQuestionIDs(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamActive))
	qs := seedQuestions(t, env, sess, "pre", 1, 5)

	answers := append(answersFor(qs, 5), Answer{QuestionID: "question-from-another-session", Answer: letter("A")})
	res, err := env.svc.Submit(ctx, "user-1", sess.ID, "pre", answers)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(res.Results) != 5 {
		t.Errorf("results = %d, want 5 with stale id skipped", len(res.Results))
	}
	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
}

func TestSubmit_GradesIDK(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamActive))
	qs := seedQuestions(t, env, sess, "pre", 1, 5)

	answers := answersFor(qs, 4)
	answers[4] = Answer{QuestionID: qs[4].ID, IsIDK: true}
	res, err := env.svc.Submit(ctx, "user-1", sess.ID, "pre", answers)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 80 {
		t.Errorf("score = %d, want 80", res.Score)
	}
	if !res.Results[4].IsIDK || res.Results[4].IsCorrect {
		t.Errorf("IDK result = %+v", res.Results[4])
	}
	if !qs[4].IsIDK {
		t.Error("IDK flag not written back to question row")
	}
}

func TestSubmit_RejectsWrongState(t *testing.T) {
	env := newTestEnv()
	sess := env.startSession(t, string(loop.PreExamPending))

	_, err := env.svc.Submit(context.Background(), "user-1", sess.ID, "pre", nil)
	var terr *loop.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *loop.TransitionError", err)
	}
	if terr.From != loop.PreExamPending || terr.To != loop.PreExamCompleted {
		t.Errorf("transition error = %v", terr)
	}
}
