package exams

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/store"
)

func TestStartSession_SeedsProgressAndStudentModel(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	sess, err := env.svc.StartSession(ctx, "user-1", "linear-equations")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if sess.SessionNumber != 1 {
		t.Errorf("session number = %d, want 1", sess.SessionNumber)
	}
	if sess.State != string(loop.PreExamPending) {
		t.Errorf("state = %q, want %q", sess.State, loop.PreExamPending)
	}

	first := env.progress.byKey["user-1|linear-equations"]
	if first == nil {
		t.Fatal("no progress row for started topic")
	}
	if first.Status != "in_progress" {
		t.Errorf("started topic status = %q, want in_progress", first.Status)
	}
	if first.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", first.Attempts)
	}

	locked := env.progress.byKey["user-1|systems"]
	if locked == nil {
		t.Fatal("no progress row for dependent topic")
	}
	if locked.Status != "locked" {
		t.Errorf("dependent topic status = %q, want locked", locked.Status)
	}

	model := env.students.byKey["user-1|linear-equations"]
	if model == nil {
		t.Fatal("student model not created")
	}
	if model.MasteryLevel != 0 {
		t.Errorf("mastery level = %d, want 0", model.MasteryLevel)
	}
}

func TestStartSession_NumbersSessionsAndKeepsModel(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.svc.StartSession(ctx, "user-1", "linear-equations"); err != nil {
		t.Fatalf("first StartSession: %v", err)
	}
	env.students.byKey["user-1|linear-equations"].Strengths = []string{"isolating variables"}

	sess, err := env.svc.StartSession(ctx, "user-1", "linear-equations")
	if err != nil {
		t.Fatalf("second StartSession: %v", err)
	}
	if sess.SessionNumber != 2 {
		t.Errorf("session number = %d, want 2", sess.SessionNumber)
	}

	model := env.students.byKey["user-1|linear-equations"]
	if len(model.Strengths) != 1 {
		t.Errorf("existing student model was replaced: %+v", model)
	}
}

func TestStartSession_UnknownTopic(t *testing.T) {
	env := newTestEnv()
	_, err := env.svc.StartSession(context.Background(), "user-1", "no-such-topic")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTransition(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamPending))

	got, err := env.svc.Transition(ctx, "user-1", sess.ID, loop.PreExamActive)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if got.State != string(loop.PreExamActive) {
		t.Errorf("state = %q, want %q", got.State, loop.PreExamActive)
	}

	_, err = env.svc.Transition(ctx, "user-1", sess.ID, loop.LessonActive)
	var terr *loop.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *loop.TransitionError", err)
	}
	if terr.From != loop.PreExamActive || terr.To != loop.LessonActive {
		t.Errorf("transition error = %v", terr)
	}
}

func TestTransition_WrongOwner(t *testing.T) {
	env := newTestEnv()
	sess := env.startSession(t, string(loop.PreExamPending))

	_, err := env.svc.Transition(context.Background(), "someone-else", sess.ID, loop.PreExamActive)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
