package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/loop"
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

func (f *fakeSessions) CountForTopic(context.Context, string, string) (int, error) {
	return 0, nil
}

func (f *fakeSessions) Update(_ context.Context, id string, upd store.SessionUpdate) error {
	if f.sess == nil || f.sess.ID != id {
		return store.ErrNotFound
	}
	if upd.State != nil {
		f.sess.State = *upd.State
	}
	return nil
}

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

func (f *fakeQuestions) BySessionTypeAttempt(_ context.Context, sessionID, examType string, _ int) ([]*store.ExamQuestion, error) {
	return f.BySessionAndType(context.Background(), sessionID, examType)
}

func (f *fakeQuestions) DeleteByIDs(context.Context, []string) error          { return nil }
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
func (f *fakeTopics) List(context.Context) ([]*store.Topic, error)              { return nil, nil }
func (f *fakeTopics) Dependents(context.Context, string) ([]*store.Topic, error) { return nil, nil }
func (f *fakeTopics) UpsertAll(context.Context, []*store.Topic) error           { return nil }

type fakeLessons struct {
	saved []*store.Lesson
}

func (f *fakeLessons) Create(_ context.Context, l *store.Lesson) (*store.Lesson, error) {
	l.ID = fmt.Sprintf("lesson-%d", len(f.saved)+1)
	l.CreatedAt = time.Now()
	f.saved = append(f.saved, l)
	return l, nil
}

func (f *fakeLessons) BySessionAndType(_ context.Context, sessionID, lessonType string) (*store.Lesson, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].SessionID == sessionID && f.saved[i].LessonType == lessonType {
			return f.saved[i], nil
		}
	}
	return nil, nil
}

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

type lessonEnv struct {
	sessions  *fakeSessions
	questions *fakeQuestions
	students  *fakeStudents
	topics    *fakeTopics
	lessons   *fakeLessons
	threads   *fakeThreads
	mock      *llm.MockProvider
	svc       *Service
}

func newLessonEnv(state loop.State, responses ...llm.MockResponse) *lessonEnv {
	env := &lessonEnv{
		sessions: &fakeSessions{sess: &store.Session{
			ID:            "session-1",
			UserID:        "user-1",
			TopicID:       "linear-equations",
			State:         string(state),
			SessionNumber: 1,
		}},
		questions: &fakeQuestions{},
		students:  &fakeStudents{},
		topics: &fakeTopics{topic: &store.Topic{
			ID:          "linear-equations",
			Name:        "Linear Equations",
			Description: "Solving equations in one variable",
		}},
		lessons: &fakeLessons{},
		threads: &fakeThreads{messages: map[string][]*store.Message{}},
		mock:    llm.NewMockProvider(responses...),
	}
	env.svc = New(
		env.sessions, env.questions, env.students, env.topics,
		env.lessons, env.threads, env.mock, DefaultConfig(),
	)
	return env
}

func wrongRow(text string) *store.ExamQuestion {
	wrong := false
	answer := "B"
	return &store.ExamQuestion{
		ID:            "question-1",
		SessionID:     "session-1",
		UserID:        "user-1",
		ExamType:      "pre",
		QuestionText:  text,
		Choices:       map[string]string{"A": "$1$", "B": "$2$"},
		CorrectAnswer: "A",
		Explanation:   "Subtract 1 from both sides.",
		UserAnswer:    &answer,
		IsCorrect:     &wrong,
	}
}

func TestGenerate_StreamsAndPersistsLesson(t *testing.T) {
	raw := "# Linear Equations\n\nAn equation \\( x + 1 = 2 \\) has one solution."
	env := newLessonEnv(loop.LessonPending, llm.MockResponse{
		Content: json.RawMessage(raw),
		Chunks:  []string{"# Linear Equations\n\n", "An equation \\( x + 1 = 2 \\) has one solution."},
	})
	env.questions.rows = append(env.questions.rows, wrongRow("Solve $x + 1 = 2$."))

	var streamed strings.Builder
	lesson, err := env.svc.Generate(context.Background(), "user-1", "session-1", "initial", func(delta string) {
		streamed.WriteString(delta)
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if streamed.String() != raw {
		t.Errorf("streamed %q, want the raw text verbatim", streamed.String())
	}
	if strings.Contains(lesson.Content, `\(`) {
		t.Errorf("persisted content not normalized: %q", lesson.Content)
	}
	if lesson.LessonType != "initial" {
		t.Errorf("lesson type = %q, want initial", lesson.LessonType)
	}
	if env.sessions.sess.State != string(loop.LessonCompleted) {
		t.Errorf("state = %q, want %q", env.sessions.sess.State, loop.LessonCompleted)
	}
	if len(env.lessons.saved) != 1 {
		t.Fatalf("saved %d lessons, want 1", len(env.lessons.saved))
	}

	prompt := env.mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "QUESTIONS THE STUDENT GOT WRONG") {
		t.Error("prompt missing wrong-question section")
	}
	if !strings.Contains(prompt, "Solve $x + 1 = 2$.") {
		t.Error("prompt missing the missed question text")
	}
	if !strings.Contains(prompt, "INITIAL LESSON") {
		t.Error("prompt missing initial-lesson framing")
	}
}

func TestGenerate_AllowsExamCompletedState(t *testing.T) {
	env := newLessonEnv(loop.PreExamCompleted, llm.MockResponse{
		Content: json.RawMessage("A short lesson."),
	})

	if _, err := env.svc.Generate(context.Background(), "user-1", "session-1", "initial", nil); err != nil {
		t.Fatalf("Generate from pre_exam_completed: %v", err)
	}
	if env.sessions.sess.State != string(loop.LessonCompleted) {
		t.Errorf("state = %q, want %q", env.sessions.sess.State, loop.LessonCompleted)
	}
}

func TestGenerate_RejectsWrongState(t *testing.T) {
	env := newLessonEnv(loop.PreExamActive)

	_, err := env.svc.Generate(context.Background(), "user-1", "session-1", "initial", nil)
	var terr *loop.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *loop.TransitionError", err)
	}
	if terr.To != loop.LessonActive {
		t.Errorf("transition error = %v", terr)
	}
	if env.mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", env.mock.CallCount())
	}
}

func TestGenerate_RemediationIncludesThreadInsights(t *testing.T) {
	env := newLessonEnv(loop.RemediationLessonPending, llm.MockResponse{
		Content: json.RawMessage("A remediation lesson."),
	})
	env.threads.threads = []*store.Thread{{ID: "thread-1", SessionID: "session-1", IsResolved: true}}
	env.threads.messages["thread-1"] = []*store.Message{
		{Role: "assistant", Content: "What does the 2 in $2x$ mean?"},
		{Role: "user", Content: "It multiplies x."},
	}

	if _, err := env.svc.Generate(context.Background(), "user-1", "session-1", "remediation", nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	prompt := env.mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "INSIGHTS FROM REMEDIATION CONVERSATIONS") {
		t.Error("prompt missing insights section")
	}
	if !strings.Contains(prompt, "Thread (resolved: true):") {
		t.Error("prompt missing thread transcript header")
	}
	if !strings.Contains(prompt, "assistant: What does the 2 in $2x$ mean?") {
		t.Error("prompt missing transcript messages")
	}
	if !strings.Contains(prompt, "REMEDIATION LESSON") {
		t.Error("prompt missing remediation framing")
	}
	if env.sessions.sess.State != string(loop.RemediationLessonCompleted) {
		t.Errorf("state = %q, want %q", env.sessions.sess.State, loop.RemediationLessonCompleted)
	}
}

func TestGenerate_CompressesLongTranscripts(t *testing.T) {
	env := newLessonEnv(loop.RemediationLessonPending,
		llm.MockResponse{Content: json.RawMessage(`{"summary": "The student confused coefficients with constants."}`)},
		llm.MockResponse{Content: json.RawMessage("A remediation lesson.")},
	)
	env.threads.threads = []*store.Thread{{ID: "thread-1", SessionID: "session-1"}}
	env.threads.messages["thread-1"] = []*store.Message{
		{Role: "assistant", Content: strings.Repeat("Let us look at this step again. ", 200)},
	}

	if _, err := env.svc.Generate(context.Background(), "user-1", "session-1", "remediation", nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if env.mock.CallCount() != 2 {
		t.Fatalf("provider called %d times, want 2 (compression then lesson)", env.mock.CallCount())
	}
	if env.mock.Calls[0].Schema != InsightCompressionSchema {
		t.Error("first call should use the compression schema")
	}

	prompt := env.mock.Calls[1].Messages[0].Content
	if !strings.Contains(prompt, "The student confused coefficients with constants.") {
		t.Error("lesson prompt missing compressed summary")
	}
	if strings.Contains(prompt, "Let us look at this step again.") {
		t.Error("lesson prompt carries the raw transcript despite compression")
	}
}

func TestGet_ReturnsLatestLesson(t *testing.T) {
	env := newLessonEnv(loop.LessonCompleted)
	env.lessons.saved = []*store.Lesson{
		{ID: "lesson-1", SessionID: "session-1", LessonType: "initial", Content: "old"},
		{ID: "lesson-2", SessionID: "session-1", LessonType: "initial", Content: "new"},
	}

	lesson, err := env.svc.Get(context.Background(), "user-1", "session-1", "initial")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if lesson == nil || lesson.Content != "new" {
		t.Errorf("lesson = %+v, want the most recent", lesson)
	}
}

func TestGenerate_UnknownLessonType(t *testing.T) {
	env := newLessonEnv(loop.LessonPending)
	if _, err := env.svc.Generate(context.Background(), "user-1", "session-1", "bonus", nil); err == nil {
		t.Fatal("expected error for unknown lesson type")
	}
}
