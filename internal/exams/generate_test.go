package exams

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/store"
)

// seedQuestions inserts a question set directly, bypassing the generator.
func seedQuestions(t *testing.T, env *testEnv, sess *store.Session, examType string, attempt, n int) []*store.ExamQuestion {
	t.Helper()
	rows := make([]*store.ExamQuestion, n)
	for i := range rows {
		rows[i] = &store.ExamQuestion{
			SessionID:      sess.ID,
			UserID:         sess.UserID,
			ExamType:       examType,
			AttemptNumber:  attempt,
			QuestionNumber: i + 1,
			QuestionText:   "Solve $x + 1 = 2$.",
			Choices:        map[string]string{"A": "$1$", "B": "$2$", "C": "$3$", "D": "$4$"},
			CorrectAnswer:  "A",
			Explanation:    "Subtract 1 from both sides.",
		}
	}
	if err := env.questions.CreateBatch(context.Background(), rows); err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return rows
}

func answerRow(q *store.ExamQuestion, letter string, correct bool) {
	q.UserAnswer = &letter
	q.IsCorrect = &correct
}

func TestGenerate_CreatesQuestionsAndActivates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamPending))

	created, err := env.svc.Generate(ctx, "user-1", sess.ID, "pre")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(created) != 5 {
		t.Fatalf("created %d questions, want 5", len(created))
	}
	for i, q := range created {
		if q.QuestionNumber != i+1 {
			t.Errorf("question %d has number %d", i, q.QuestionNumber)
		}
		if q.AttemptNumber != 1 {
			t.Errorf("question %d attempt = %d, want 1", i, q.AttemptNumber)
		}
		if q.ID == "" {
			t.Errorf("question %d not persisted", i)
		}
	}
	if sess.State != string(loop.PreExamActive) {
		t.Errorf("state = %q, want %q", sess.State, loop.PreExamActive)
	}

	if len(env.generator.inputs) != 1 {
		t.Fatalf("generator called %d times, want 1", len(env.generator.inputs))
	}
	input := env.generator.inputs[0]
	if input.TopicName != "Linear Equations" || input.ExamType != "pre" || input.Count != 5 {
		t.Errorf("generator input = %+v", input)
	}
	if input.StudentModel == nil {
		t.Error("student model not passed to generator")
	}
	if len(input.PriorWrong) != 0 || len(input.AvoidQuestions) != 0 {
		t.Errorf("pre exam should have no prior context: %+v", input)
	}
}

func TestGenerate_ReloadReturnsExistingSet(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamPending))

	first, err := env.svc.Generate(ctx, "user-1", sess.ID, "pre")
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := env.svc.Generate(ctx, "user-1", sess.ID, "pre")
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	if len(env.generator.inputs) != 1 {
		t.Errorf("generator called %d times, want 1", len(env.generator.inputs))
	}
	if len(second) != len(first) {
		t.Fatalf("reload returned %d questions, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i].ID != first[i].ID {
			t.Errorf("question %d id changed on reload", i)
		}
	}
}

func TestGenerate_PartialSetRegenerated(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamPending))

	first, err := env.svc.Generate(ctx, "user-1", sess.ID, "pre")
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	answerRow(first[0], "A", true)
	answerRow(first[1], "B", false)

	second, err := env.svc.Generate(ctx, "user-1", sess.ID, "pre")
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if len(env.generator.inputs) != 2 {
		t.Errorf("generator called %d times, want 2", len(env.generator.inputs))
	}
	if len(second) != 5 {
		t.Fatalf("regenerated %d questions, want 5", len(second))
	}
	if len(env.questions.rows) != 5 {
		t.Errorf("store holds %d rows, want 5 after partial set deleted", len(env.questions.rows))
	}
	for i := range second {
		if second[i].ID == first[i].ID {
			t.Errorf("question %d reused a deleted row", i)
		}
	}
}

func TestGenerate_AdoptsRacingSet(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.PreExamPending))
	seeded := seedQuestions(t, env, sess, "pre", 1, 5)

	got, err := env.svc.Generate(ctx, "user-1", sess.ID, "pre")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(env.generator.inputs) != 0 {
		t.Errorf("generator called %d times, want 0", len(env.generator.inputs))
	}
	if len(got) != 5 || got[0].ID != seeded[0].ID {
		t.Errorf("racing set not adopted")
	}
	if sess.State != string(loop.PreExamActive) {
		t.Errorf("state = %q, want %q", sess.State, loop.PreExamActive)
	}
}

func TestGenerate_GatingRejectsWrongState(t *testing.T) {
	env := newTestEnv()
	sess := env.startSession(t, string(loop.LessonActive))

	_, err := env.svc.Generate(context.Background(), "user-1", sess.ID, "pre")
	var terr *loop.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *loop.TransitionError", err)
	}
	if terr.From != loop.LessonActive || terr.To != loop.PreExamActive {
		t.Errorf("transition error = %v", terr)
	}
	if len(env.generator.inputs) != 0 {
		t.Errorf("generator called %d times, want 0", len(env.generator.inputs))
	}
}

func TestGenerate_RemediationContext(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	sess := env.startSession(t, string(loop.RemediationExamPending))
	sess.RemediationLoopCount = 2

	// Post exam: one wrong, one IDK, rest correct.
	post := seedQuestions(t, env, sess, "post", 1, 5)
	answerRow(post[0], "B", false)
	post[1].IsIDK = true
	wrong := false
	post[1].IsCorrect = &wrong
	for _, q := range post[2:] {
		answerRow(q, "A", true)
	}

	// First remediation loop, fully answered.
	prior := seedQuestions(t, env, sess, "remediation", 1, 3)
	for _, q := range prior {
		answerRow(q, "A", true)
	}

	got, err := env.svc.Generate(ctx, "user-1", sess.ID, "remediation")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("created %d questions, want 3", len(got))
	}
	for _, q := range got {
		if q.AttemptNumber != 2 {
			t.Errorf("attempt = %d, want 2", q.AttemptNumber)
		}
	}

	if len(env.generator.inputs) != 1 {
		t.Fatalf("generator called %d times, want 1", len(env.generator.inputs))
	}
	input := env.generator.inputs[0]
	if input.Count != 3 || input.ExamType != "remediation" {
		t.Errorf("generator input = %+v", input)
	}
	if len(input.PriorWrong) != 2 {
		t.Errorf("prior wrong = %d questions, want 2", len(input.PriorWrong))
	}
	if len(input.AvoidQuestions) != 3 {
		t.Errorf("avoid list = %d texts, want 3", len(input.AvoidQuestions))
	}
}

func TestGenerate_UnknownExamType(t *testing.T) {
	env := newTestEnv()
	sess := env.startSession(t, string(loop.PreExamPending))

	if _, err := env.svc.Generate(context.Background(), "user-1", sess.ID, "midterm"); err == nil {
		t.Fatal("expected error for unknown exam type")
	}
}
