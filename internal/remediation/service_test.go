package remediation

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

func (f *fakeSessions) CountForTopic(context.Context, string, string) (int, error) { return 0, nil }
func (f *fakeSessions) Update(context.Context, string, store.SessionUpdate) error { return nil }

type fakeQuestions struct {
	rows map[string]*store.ExamQuestion
}

func (f *fakeQuestions) CreateBatch(context.Context, []*store.ExamQuestion) error { return nil }

func (f *fakeQuestions) Get(_ context.Context, id string) (*store.ExamQuestion, error) {
	q, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return q, nil
}

func (f *fakeQuestions) BySessionAndType(context.Context, string, string) ([]*store.ExamQuestion, error) {
	return nil, nil
}
func (f *fakeQuestions) BySessionTypeAttempt(context.Context, string, string, int) ([]*store.ExamQuestion, error) {
	return nil, nil
}
func (f *fakeQuestions) DeleteByIDs(context.Context, []string) error                { return nil }
func (f *fakeQuestions) RecordAnswers(context.Context, []store.AnswerRecord) error  { return nil }

type fakeStudents struct {
	model *store.StudentModel
}

func (f *fakeStudents) Get(context.Context, string, string) (*store.StudentModel, error) {
	return f.model, nil
}
func (f *fakeStudents) Upsert(context.Context, *store.StudentModel) error { return nil }

type fakeTopics struct {
	topic *store.Topic
}

func (f *fakeTopics) Get(_ context.Context, id string) (*store.Topic, error) {
	if f.topic == nil || f.topic.ID != id {
		return nil, store.ErrNotFound
	}
	return f.topic, nil
}
func (f *fakeTopics) List(context.Context) ([]*store.Topic, error)                { return nil, nil }
func (f *fakeTopics) Dependents(context.Context, string) ([]*store.Topic, error)  { return nil, nil }
func (f *fakeTopics) UpsertAll(context.Context, []*store.Topic) error             { return nil }

type fakeThreads struct {
	threads  map[string]*store.Thread
	messages map[string][]*store.Message
	nextID   int
}

func newFakeThreads() *fakeThreads {
	return &fakeThreads{
		threads:  make(map[string]*store.Thread),
		messages: make(map[string][]*store.Message),
	}
}

func (f *fakeThreads) GetThread(_ context.Context, id string) (*store.Thread, error) {
	th, ok := f.threads[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return th, nil
}

func (f *fakeThreads) ThreadByQuestion(_ context.Context, questionID, userID string) (*store.Thread, error) {
	for _, th := range f.threads {
		if th.QuestionID == questionID && th.UserID == userID {
			return th, nil
		}
	}
	return nil, nil
}

func (f *fakeThreads) ThreadsBySession(_ context.Context, sessionID string) ([]*store.Thread, error) {
	var out []*store.Thread
	for _, th := range f.threads {
		if th.SessionID == sessionID {
			out = append(out, th)
		}
	}
	return out, nil
}

func (f *fakeThreads) CreateThread(_ context.Context, questionID, sessionID, userID string) (*store.Thread, error) {
	f.nextID++
	th := &store.Thread{
		ID:         fmt.Sprintf("thread-%d", f.nextID),
		QuestionID: questionID,
		SessionID:  sessionID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
	f.threads[th.ID] = th
	return th, nil
}

func (f *fakeThreads) DeleteThread(_ context.Context, id string) error {
	delete(f.threads, id)
	delete(f.messages, id)
	return nil
}

func (f *fakeThreads) ResolveThread(_ context.Context, id string) error {
	th, ok := f.threads[id]
	if !ok {
		return store.ErrNotFound
	}
	th.IsResolved = true
	return nil
}

func (f *fakeThreads) Messages(_ context.Context, threadID string) ([]*store.Message, error) {
	return f.messages[threadID], nil
}

func (f *fakeThreads) AddMessage(_ context.Context, threadID, role, content string) (*store.Message, error) {
	f.nextID++
	msg := &store.Message{
		ID:        fmt.Sprintf("message-%d", f.nextID),
		ThreadID:  threadID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	f.messages[threadID] = append(f.messages[threadID], msg)
	return msg, nil
}

type remEnv struct {
	sessions  *fakeSessions
	questions *fakeQuestions
	threads   *fakeThreads
	mock      *llm.MockProvider
	svc       *Service
}

func newRemEnv(responses ...llm.MockResponse) *remEnv {
	answer := "B"
	wrong := false
	env := &remEnv{
		sessions: &fakeSessions{sess: &store.Session{
			ID:      "session-1",
			UserID:  "user-1",
			TopicID: "linear-equations",
			State:   string(loop.RemediationActive),
		}},
		questions: &fakeQuestions{rows: map[string]*store.ExamQuestion{
			"question-1": {
				ID:            "question-1",
				SessionID:     "session-1",
				UserID:        "user-1",
				ExamType:      "post",
				AttemptNumber: 1,
				QuestionText:  "Solve $2x = 6$.",
				Choices:       map[string]string{"A": "$3$", "B": "$2$"},
				CorrectAnswer: "A",
				Explanation:   "Divide both sides by 2.",
				UserAnswer:    &answer,
				IsCorrect:     &wrong,
			},
		}},
		threads: newFakeThreads(),
		mock:    llm.NewMockProvider(responses...),
	}
	env.svc = New(
		env.sessions,
		env.questions,
		&fakeStudents{model: &store.StudentModel{
			Misconceptions: []string{"divides only one side"},
		}},
		&fakeTopics{topic: &store.Topic{ID: "linear-equations", Name: "Linear Equations"}},
		env.threads,
		env.mock,
		DefaultConfig(),
	)
	return env
}

func TestStart_StreamsOpeningMessage(t *testing.T) {
	opening := "Nice try! What does the \\( 2 \\) in $2x$ do to $x$?"
	env := newRemEnv(llm.MockResponse{
		Content: json.RawMessage(opening),
		Chunks:  []string{"Nice try! ", "What does the \\( 2 \\) in $2x$ do to $x$?"},
	})

	var streamed strings.Builder
	var announced *store.Thread
	res, err := env.svc.Start(context.Background(), "user-1", "question-1", "session-1", func(th *store.Thread) {
		announced = th
	}, func(delta string) {
		streamed.WriteString(delta)
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if res.Resumed {
		t.Error("fresh thread reported as resumed")
	}
	if announced == nil || announced.ID != res.Thread.ID {
		t.Errorf("onThread got %+v, want the created thread", announced)
	}
	if streamed.String() != opening {
		t.Errorf("streamed %q, want the raw text verbatim", streamed.String())
	}
	if len(res.Messages) != 1 || res.Messages[0].Role != "assistant" {
		t.Fatalf("messages = %+v, want one assistant message", res.Messages)
	}
	if strings.Contains(res.Messages[0].Content, `\(`) {
		t.Errorf("persisted message not normalized: %q", res.Messages[0].Content)
	}

	prompt := env.mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Socratic SAT Math tutor",
		"THE QUESTION:\nSolve $2x = 6$.",
		"CORRECT ANSWER: A",
		"STUDENT'S ANSWER: B",
		"Known misconceptions: divides only one side",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestStart_ResumesExistingThread(t *testing.T) {
	env := newRemEnv()
	th, _ := env.threads.CreateThread(context.Background(), "question-1", "session-1", "user-1")
	env.threads.AddMessage(context.Background(), th.ID, "assistant", "Where did we leave off?")

	res, err := env.svc.Start(context.Background(), "user-1", "question-1", "session-1", nil, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !res.Resumed {
		t.Error("existing thread not reported as resumed")
	}
	if res.Thread.ID != th.ID {
		t.Errorf("thread = %q, want %q", res.Thread.ID, th.ID)
	}
	if len(res.Messages) != 1 {
		t.Errorf("messages = %d, want 1", len(res.Messages))
	}
	if env.mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", env.mock.CallCount())
	}
}

func TestStart_RecreatesStaleThread(t *testing.T) {
	env := newRemEnv(llm.MockResponse{Content: json.RawMessage("Fresh start.")})
	env.sessions.sess.RemediationLoopCount = 2
	q := env.questions.rows["question-1"]
	q.ExamType = "remediation"
	q.AttemptNumber = 1

	old, _ := env.threads.CreateThread(context.Background(), "question-1", "session-1", "user-1")

	res, err := env.svc.Start(context.Background(), "user-1", "question-1", "session-1", nil, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if res.Resumed {
		t.Error("stale thread should not be resumed")
	}
	if res.Thread.ID == old.ID {
		t.Error("stale thread not recreated")
	}
	if _, ok := env.threads.threads[old.ID]; ok {
		t.Error("stale thread still in store")
	}
}

func TestStart_RejectsTerminalSession(t *testing.T) {
	env := newRemEnv()
	env.sessions.sess.State = string(loop.SessionFailed)

	_, err := env.svc.Start(context.Background(), "user-1", "question-1", "session-1", nil, nil)
	if !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("err = %v, want ErrSessionClosed", err)
	}
}

func TestStart_RejectsForeignQuestion(t *testing.T) {
	env := newRemEnv()
	env.questions.rows["question-1"].UserID = "someone-else"

	_, err := env.svc.Start(context.Background(), "user-1", "question-1", "session-1", nil, nil)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRespond_AppendsTurnAndResolves(t *testing.T) {
	env := newRemEnv(llm.MockResponse{
		Content: json.RawMessage(`{"message": "Exactly! Dividing by $2$ isolates $x$, so $x = 3$.", "is_resolved": true}`),
	})
	th, _ := env.threads.CreateThread(context.Background(), "question-1", "session-1", "user-1")
	env.threads.AddMessage(context.Background(), th.ID, "assistant", "What undoes multiplying by $2$?")

	res, err := env.svc.Respond(context.Background(), "user-1", th.ID, "Dividing by 2?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !res.IsResolved {
		t.Error("IsResolved = false, want true")
	}
	if !strings.Contains(res.Message, "isolates $x$") {
		t.Errorf("message = %q", res.Message)
	}
	if !env.threads.threads[th.ID].IsResolved {
		t.Error("thread not marked resolved in store")
	}

	msgs := env.threads.messages[th.ID]
	if len(msgs) != 3 {
		t.Fatalf("thread has %d messages, want 3", len(msgs))
	}
	if msgs[1].Role != "user" || msgs[1].Content != "Dividing by 2?" {
		t.Errorf("student message = %+v", msgs[1])
	}
	if msgs[2].Role != "assistant" {
		t.Errorf("tutor message = %+v", msgs[2])
	}

	prompt := env.mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "[assistant]: What undoes multiplying by $2$?") {
		t.Error("prompt missing conversation history")
	}
	if !strings.Contains(prompt, "Student's latest message: Dividing by 2?") {
		t.Error("prompt missing latest student message")
	}
	if env.mock.Calls[0].Schema != ResponseSchema {
		t.Error("respond call should use the response schema")
	}
}

func TestRespond_RejectsResolvedThread(t *testing.T) {
	env := newRemEnv()
	th, _ := env.threads.CreateThread(context.Background(), "question-1", "session-1", "user-1")
	env.threads.ResolveThread(context.Background(), th.ID)

	_, err := env.svc.Respond(context.Background(), "user-1", th.ID, "Hello?")
	if !errors.Is(err, ErrThreadResolved) {
		t.Fatalf("err = %v, want ErrThreadResolved", err)
	}
	if env.mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", env.mock.CallCount())
	}
}

func TestRespond_RejectsForeignThread(t *testing.T) {
	env := newRemEnv()
	th, _ := env.threads.CreateThread(context.Background(), "question-1", "session-1", "someone-else")

	_, err := env.svc.Respond(context.Background(), "user-1", th.ID, "Hi")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
