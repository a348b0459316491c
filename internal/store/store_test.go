package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTopic(t *testing.T, s *Store, id string) {
	t.Helper()
	err := s.Topics().UpsertAll(context.Background(), []*Topic{
		{ID: id, Name: id, DisplayOrder: 1},
	})
	if err != nil {
		t.Fatalf("seed topic: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopic(t, s, "linear-equations")
	repo := s.Sessions()

	sess, err := repo.Create(ctx, "user-1", "linear-equations", 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.State != "pre_exam_pending" {
		t.Errorf("state = %q, want pre_exam_pending", sess.State)
	}
	if sess.RemediationLoopCount != 0 {
		t.Errorf("loop count = %d, want 0", sess.RemediationLoopCount)
	}

	score := 60
	state := "remediation_active"
	err = repo.Update(ctx, sess.ID, SessionUpdate{
		State:              &state,
		PostExamScore:      &score,
		IncrementLoopCount: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != "remediation_active" {
		t.Errorf("state = %q, want remediation_active", got.State)
	}
	if got.PostExamScore == nil || *got.PostExamScore != 60 {
		t.Errorf("post exam score = %v, want 60", got.PostExamScore)
	}
	if got.PreExamScore != nil {
		t.Errorf("pre exam score = %v, want nil", got.PreExamScore)
	}
	if got.RemediationLoopCount != 1 {
		t.Errorf("loop count = %d, want 1", got.RemediationLoopCount)
	}
}

func TestSessionGetOwned(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopic(t, s, "fractions")
	repo := s.Sessions()

	sess, err := repo.Create(ctx, "user-1", "fractions", 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetOwned(ctx, sess.ID, "user-1"); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if _, err := repo.GetOwned(ctx, sess.ID, "someone-else"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong user, got %v", err)
	}
}

func TestQuestionBatchAndAnswers(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopic(t, s, "fractions")
	sess, err := s.Sessions().Create(ctx, "user-1", "fractions", 1)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	repo := s.Questions()
	qs := []*ExamQuestion{
		{
			SessionID:      sess.ID,
			UserID:         "user-1",
			ExamType:       "pre",
			AttemptNumber:  1,
			QuestionNumber: 1,
			QuestionText:   "What is $1/2 + 1/4$?",
			Choices:        map[string]string{"A": "$3/4$", "B": "$1/4$", "C": "$2/6$", "D": "$1$"},
			CorrectAnswer:  "A",
			Explanation:    "Common denominator is 4.",
		},
		{
			SessionID:      sess.ID,
			UserID:         "user-1",
			ExamType:       "pre",
			AttemptNumber:  1,
			QuestionNumber: 2,
			QuestionText:   "What is $2/3$ of $9$?",
			Choices:        map[string]string{"A": "$3$", "B": "$6$", "C": "$9$", "D": "$12$"},
			CorrectAnswer:  "B",
		},
	}
	if err := repo.CreateBatch(ctx, qs); err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if qs[0].ID == "" || qs[1].ID == "" {
		t.Fatal("expected generated ids on created questions")
	}

	ans := "A"
	err = repo.RecordAnswers(ctx, []AnswerRecord{
		{QuestionID: qs[0].ID, UserAnswer: &ans, IsCorrect: true},
		{QuestionID: qs[1].ID, IsIDK: true, IsCorrect: false},
	})
	if err != nil {
		t.Fatalf("record answers: %v", err)
	}

	rows, err := repo.BySessionTypeAttempt(ctx, sess.ID, "pre", 1)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d questions, want 2", len(rows))
	}
	if rows[0].QuestionNumber != 1 || rows[1].QuestionNumber != 2 {
		t.Errorf("rows out of order: %d, %d", rows[0].QuestionNumber, rows[1].QuestionNumber)
	}
	if rows[0].UserAnswer == nil || *rows[0].UserAnswer != "A" {
		t.Errorf("user answer = %v, want A", rows[0].UserAnswer)
	}
	if rows[0].IsCorrect == nil || !*rows[0].IsCorrect {
		t.Errorf("is_correct = %v, want true", rows[0].IsCorrect)
	}
	if rows[1].UserAnswer != nil {
		t.Errorf("IDK answer should stay nil, got %v", rows[1].UserAnswer)
	}
	if !rows[1].IsIDK {
		t.Error("expected is_idk true")
	}
}

func TestStudentModelUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopic(t, s, "fractions")
	repo := s.StudentModels()

	got, err := repo.Get(ctx, "user-1", "fractions")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil model before upsert")
	}

	m := &StudentModel{
		UserID:       "user-1",
		TopicID:      "fractions",
		Weaknesses:   []string{"common denominators"},
		MasteryLevel: 20,
	}
	if err := repo.Upsert(ctx, m); err != nil {
		t.Fatalf("insert: %v", err)
	}

	m.MasteryLevel = 45
	m.Strengths = []string{"multiplication"}
	if err := repo.Upsert(ctx, m); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = repo.Get(ctx, "user-1", "fractions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MasteryLevel != 45 {
		t.Errorf("mastery = %d, want 45", got.MasteryLevel)
	}
	if len(got.Strengths) != 1 || got.Strengths[0] != "multiplication" {
		t.Errorf("strengths = %v", got.Strengths)
	}
}

func TestRemediationThreadLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopic(t, s, "fractions")
	sess, _ := s.Sessions().Create(ctx, "user-1", "fractions", 1)
	qs := []*ExamQuestion{{
		SessionID:      sess.ID,
		UserID:         "user-1",
		ExamType:       "post",
		AttemptNumber:  1,
		QuestionNumber: 1,
		QuestionText:   "q",
		Choices:        map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"},
		CorrectAnswer:  "A",
	}}
	if err := s.Questions().CreateBatch(ctx, qs); err != nil {
		t.Fatalf("create question: %v", err)
	}

	repo := s.Remediation()
	th, err := repo.CreateThread(ctx, qs[0].ID, sess.ID, "user-1")
	if err != nil {
		t.Fatalf("create thread: %v", err)
	}
	if th.IsResolved {
		t.Error("new thread should be unresolved")
	}

	if _, err := repo.AddMessage(ctx, th.ID, "assistant", "What does the denominator tell you?"); err != nil {
		t.Fatalf("add message: %v", err)
	}
	if _, err := repo.AddMessage(ctx, th.ID, "user", "How many parts the whole is split into."); err != nil {
		t.Fatalf("add message: %v", err)
	}

	msgs, err := repo.Messages(ctx, th.ID)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != "assistant" || msgs[1].Role != "user" {
		t.Errorf("roles out of order: %s, %s", msgs[0].Role, msgs[1].Role)
	}

	if err := repo.ResolveThread(ctx, th.ID); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got, err := repo.ThreadByQuestion(ctx, qs[0].ID, "user-1")
	if err != nil {
		t.Fatalf("thread by question: %v", err)
	}
	if got == nil || !got.IsResolved {
		t.Fatalf("expected resolved thread, got %+v", got)
	}

	if err := repo.DeleteThread(ctx, th.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.ThreadByQuestion(ctx, qs[0].ID, "user-1")
	if err != nil {
		t.Fatalf("thread by question after delete: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil thread after delete")
	}
}

func TestProgressUnlockOnlyWhenLocked(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopic(t, s, "fractions")
	repo := s.Progress()

	rows := []*TopicProgress{{UserID: "user-1", TopicID: "fractions", Status: "locked"}}
	if err := repo.CreateMany(ctx, rows); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UnlockIfLocked(ctx, "user-1", "fractions"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	got, _ := repo.Get(ctx, "user-1", "fractions")
	if got.Status != "available" {
		t.Errorf("status = %q, want available", got.Status)
	}

	if err := repo.MarkStarted(ctx, "user-1", "fractions"); err != nil {
		t.Fatalf("mark started: %v", err)
	}
	got, _ = repo.Get(ctx, "user-1", "fractions")
	if got.Status != "in_progress" || got.Attempts != 1 {
		t.Errorf("got status=%q attempts=%d, want in_progress/1", got.Status, got.Attempts)
	}

	// Unlock must not touch a row that is already past locked.
	if err := repo.UnlockIfLocked(ctx, "user-1", "fractions"); err != nil {
		t.Fatalf("unlock (no-op): %v", err)
	}
	got, _ = repo.Get(ctx, "user-1", "fractions")
	if got.Status != "in_progress" {
		t.Errorf("status = %q, want in_progress after no-op unlock", got.Status)
	}

	if err := repo.MarkCompleted(ctx, "user-1", "fractions", 85); err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	if err := repo.MarkCompleted(ctx, "user-1", "fractions", 70); err != nil {
		t.Fatalf("mark completed (lower): %v", err)
	}
	got, _ = repo.Get(ctx, "user-1", "fractions")
	if got.Status != "completed" {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.BestScore == nil || *got.BestScore != 85 {
		t.Errorf("best score = %v, want 85 kept over 70", got.BestScore)
	}
}

func TestLLMEventLogAndQueries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Events()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "exam-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "req-1", ResponseBody: "resp-1"},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "exam-gen", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson", InputTokens: 20, OutputTokens: 10, LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Purpose != "lesson" || got[1].Purpose != "exam-gen" {
		t.Errorf("order = %q, %q; want lesson, exam-gen", got[0].Purpose, got[1].Purpose)
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("sequences not descending: %d then %d", got[0].Sequence, got[1].Sequence)
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	e, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.RequestBody != "req-1" || e.ResponseBody != "resp-1" {
		t.Errorf("got %+v, want the first event with captured bodies", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	// Sorted by purpose name.
	examGen := byPurpose[0]
	if examGen.Purpose != "exam-gen" || examGen.Calls != 2 || examGen.InputTokens != 400 || examGen.OutputTokens != 200 {
		t.Errorf("exam-gen usage = %+v, want 2 calls, 400 in, 200 out", examGen)
	}
	if examGen.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", examGen.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[0].Model != "claude-sonnet-4-5" || byModel[0].Calls != 2 {
		t.Errorf("model usage = %+v, want claude-sonnet-4-5 with 2 calls", byModel[0])
	}
}
