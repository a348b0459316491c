package studentmodel

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/store"
)

type fakeSessions struct {
	sess *store.Session
}

func (f *fakeSessions) Create(context.Context, string, string, int) (*store.Session, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSessions) Get(_ context.Context, id string) (*store.Session, error) {
	if f.sess == nil || f.sess.ID != id {
		return nil, store.ErrNotFound
	}
	return f.sess, nil
}

func (f *fakeSessions) GetOwned(_ context.Context, id, userID string) (*store.Session, error) {
	if f.sess == nil || f.sess.ID != id || f.sess.UserID != userID {
		return nil, store.ErrNotFound
	}
	return f.sess, nil
}

func (f *fakeSessions) CountForTopic(context.Context, string, string) (int, error) { return 0, nil }
func (f *fakeSessions) Update(context.Context, string, store.SessionUpdate) error { return nil }

type fakeQuestions struct {
	rows []*store.ExamQuestion
}

func (f *fakeQuestions) CreateBatch(context.Context, []*store.ExamQuestion) error { return nil }
func (f *fakeQuestions) Get(context.Context, string) (*store.ExamQuestion, error) {
	return nil, store.ErrNotFound
}

func (f *fakeQuestions) BySessionAndType(_ context.Context, sessionID, examType string) ([]*store.ExamQuestion, error) {
	var out []*store.ExamQuestion
	for _, q := range f.rows {
		if q.SessionID == sessionID && q.ExamType == examType {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) BySessionTypeAttempt(context.Context, string, string, int) ([]*store.ExamQuestion, error) {
	return nil, nil
}
func (f *fakeQuestions) DeleteByIDs(context.Context, []string) error               { return nil }
func (f *fakeQuestions) RecordAnswers(context.Context, []store.AnswerRecord) error { return nil }

type fakeStudents struct {
	model *store.StudentModel
}

func (f *fakeStudents) Get(context.Context, string, string) (*store.StudentModel, error) {
	return f.model, nil
}
func (f *fakeStudents) Upsert(_ context.Context, m *store.StudentModel) error {
	f.model = m
	return nil
}

type fakeTopics struct {
	topic *store.Topic
}

func (f *fakeTopics) Get(_ context.Context, id string) (*store.Topic, error) {
	if f.topic == nil || f.topic.ID != id {
		return nil, store.ErrNotFound
	}
	return f.topic, nil
}
func (f *fakeTopics) List(context.Context) ([]*store.Topic, error)               { return nil, nil }
func (f *fakeTopics) Dependents(context.Context, string) ([]*store.Topic, error) { return nil, nil }
func (f *fakeTopics) UpsertAll(context.Context, []*store.Topic) error            { return nil }

type fakeThreads struct {
	threads  []*store.Thread
	messages map[string][]*store.Message
}

func (f *fakeThreads) GetThread(context.Context, string) (*store.Thread, error) {
	return nil, store.ErrNotFound
}
func (f *fakeThreads) ThreadByQuestion(context.Context, string, string) (*store.Thread, error) {
	return nil, nil
}
func (f *fakeThreads) ThreadsBySession(context.Context, string) ([]*store.Thread, error) {
	return f.threads, nil
}
func (f *fakeThreads) CreateThread(context.Context, string, string, string) (*store.Thread, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeThreads) DeleteThread(context.Context, string) error  { return nil }
func (f *fakeThreads) ResolveThread(context.Context, string) error { return nil }
func (f *fakeThreads) Messages(_ context.Context, threadID string) ([]*store.Message, error) {
	return f.messages[threadID], nil
}
func (f *fakeThreads) AddMessage(context.Context, string, string, string) (*store.Message, error) {
	return nil, errors.New("not implemented")
}

type modelEnv struct {
	students  *fakeStudents
	questions *fakeQuestions
	threads   *fakeThreads
	mock      *llm.MockProvider
	svc       *Service
}

func newModelEnv(responses ...llm.MockResponse) *modelEnv {
	env := &modelEnv{
		students:  &fakeStudents{},
		questions: &fakeQuestions{},
		threads:   &fakeThreads{messages: map[string][]*store.Message{}},
		mock:      llm.NewMockProvider(responses...),
	}
	env.svc = New(
		&fakeSessions{sess: &store.Session{
			ID:      "session-1",
			UserID:  "user-1",
			TopicID: "linear-equations",
			State:   "post_exam_completed",
		}},
		env.questions,
		env.students,
		&fakeTopics{topic: &store.Topic{ID: "linear-equations", Name: "Linear Equations"}},
		env.threads,
		env.mock,
		DefaultConfig(),
	)
	return env
}

func gradedRow(text string, correct bool) *store.ExamQuestion {
	answer := "A"
	if !correct {
		answer = "B"
	}
	return &store.ExamQuestion{
		SessionID:     "session-1",
		UserID:        "user-1",
		ExamType:      "post",
		QuestionText:  text,
		CorrectAnswer: "A",
		UserAnswer:    &answer,
		IsCorrect:     &correct,
	}
}

func TestUpdate_MergesAndPersistsProfile(t *testing.T) {
	env := newModelEnv(llm.MockResponse{
		Content: json.RawMessage(`{
			"strengths": ["isolating variables"],
			"weaknesses": ["negative coefficients"],
			"misconceptions": ["Confuses -2x with 2x when dividing"],
			"mastery_level": 62.4
		}`),
	})
	env.students.model = &store.StudentModel{
		UserID:       "user-1",
		TopicID:      "linear-equations",
		Strengths:    []string{"arithmetic"},
		MasteryLevel: 40,
	}
	env.questions.rows = []*store.ExamQuestion{
		gradedRow("Solve $x + 1 = 2$.", true),
		gradedRow("Solve $-2x = 6$.", false),
	}

	model, err := env.svc.Update(context.Background(), "user-1", "session-1", "post")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if model.MasteryLevel != 62 {
		t.Errorf("mastery = %d, want 62", model.MasteryLevel)
	}
	if len(model.Misconceptions) != 1 || !strings.Contains(model.Misconceptions[0], "Confuses") {
		t.Errorf("misconceptions = %v", model.Misconceptions)
	}
	if env.students.model.MasteryLevel != 62 {
		t.Error("updated model not persisted")
	}

	prompt := env.mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"TOPIC: Linear Equations",
		"- Strengths: arithmetic",
		"- Current Mastery Level: 40%",
		"EXAM RESULTS (1/2 correct, 50%):",
		"Correct: A | Student: B | WRONG",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if env.mock.Calls[0].Schema != UpdateSchema {
		t.Error("update call should use the update schema")
	}
}

func TestUpdate_IncludesThreadTails(t *testing.T) {
	env := newModelEnv(llm.MockResponse{
		Content: json.RawMessage(`{"strengths": [], "weaknesses": [], "misconceptions": [], "mastery_level": 30}`),
	})
	env.questions.rows = []*store.ExamQuestion{gradedRow("Solve $x = 1$.", false)}
	env.threads.threads = []*store.Thread{{ID: "thread-1", SessionID: "session-1", IsResolved: true}}
	env.threads.messages["thread-1"] = []*store.Message{
		{Role: "assistant", Content: "first"},
		{Role: "user", Content: "second"},
		{Role: "assistant", Content: "third"},
		{Role: "user", Content: "fourth"},
		{Role: "assistant", Content: "fifth"},
	}

	if _, err := env.svc.Update(context.Background(), "user-1", "session-1", "post"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	prompt := env.mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "REMEDIATION INSIGHTS:") {
		t.Error("prompt missing insights section")
	}
	if !strings.Contains(prompt, "Resolved: true") {
		t.Error("prompt missing thread resolution flag")
	}
	if strings.Contains(prompt, "first") {
		t.Error("prompt carries messages beyond the trailing window")
	}
	if !strings.Contains(prompt, "fifth") {
		t.Error("prompt missing the latest message")
	}
}

func TestUpdate_NoResults(t *testing.T) {
	env := newModelEnv()
	_, err := env.svc.Update(context.Background(), "user-1", "session-1", "post")
	if !errors.Is(err, ErrNoExamResults) {
		t.Fatalf("err = %v, want ErrNoExamResults", err)
	}
	if env.mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", env.mock.CallCount())
	}
}

func TestUpdate_ClampsMastery(t *testing.T) {
	env := newModelEnv(llm.MockResponse{
		Content: json.RawMessage(`{"strengths": [], "weaknesses": [], "misconceptions": [], "mastery_level": 140}`),
	})
	env.questions.rows = []*store.ExamQuestion{gradedRow("Solve $x = 1$.", true)}

	model, err := env.svc.Update(context.Background(), "user-1", "session-1", "post")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if model.MasteryLevel != 100 {
		t.Errorf("mastery = %d, want 100", model.MasteryLevel)
	}
}

func TestUpdate_UnknownExamType(t *testing.T) {
	env := newModelEnv()
	if _, err := env.svc.Update(context.Background(), "user-1", "session-1", "midterm"); err == nil {
		t.Fatal("expected error for unknown exam type")
	}
}
