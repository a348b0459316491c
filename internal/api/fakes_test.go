package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/abhisek/tutorloop/internal/examgen"
	"github.com/abhisek/tutorloop/internal/exams"
	"github.com/abhisek/tutorloop/internal/lessons"
	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/progress"
	"github.com/abhisek/tutorloop/internal/remediation"
	"github.com/abhisek/tutorloop/internal/store"
	"github.com/abhisek/tutorloop/internal/studentmodel"
)

// In-memory store fakes backing real services, so the tests exercise the
// full handler-to-service path over HTTP.

type fakeSessions struct {
	byID   map[string]*store.Session
	nextID int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byID: make(map[string]*store.Session)}
}

func (f *fakeSessions) Create(_ context.Context, userID, topicID string, sessionNumber int) (*store.Session, error) {
	f.nextID++
	sess := &store.Session{
		ID:            fmt.Sprintf("session-%d", f.nextID),
		UserID:        userID,
		TopicID:       topicID,
		State:         "pre_exam_pending",
		SessionNumber: sessionNumber,
		CreatedAt:     time.Now(),
	}
	f.byID[sess.ID] = sess
	return sess, nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*store.Session, error) {
	sess, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return sess, nil
}

func (f *fakeSessions) GetOwned(_ context.Context, id, userID string) (*store.Session, error) {
	sess, ok := f.byID[id]
	if !ok || sess.UserID != userID {
		return nil, store.ErrNotFound
	}
	return sess, nil
}

func (f *fakeSessions) CountForTopic(_ context.Context, userID, topicID string) (int, error) {
	n := 0
	for _, sess := range f.byID {
		if sess.UserID == userID && sess.TopicID == topicID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSessions) Update(_ context.Context, id string, upd store.SessionUpdate) error {
	sess, ok := f.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	if upd.State != nil {
		sess.State = *upd.State
	}
	if upd.PreExamScore != nil {
		sess.PreExamScore = upd.PreExamScore
	}
	if upd.PostExamScore != nil {
		sess.PostExamScore = upd.PostExamScore
	}
	if upd.RemediationExamScore != nil {
		sess.RemediationExamScore = upd.RemediationExamScore
	}
	if upd.IncrementLoopCount {
		sess.RemediationLoopCount++
	}
	return nil
}

type fakeQuestions struct {
	rows   []*store.ExamQuestion
	nextID int
}

func (f *fakeQuestions) CreateBatch(_ context.Context, qs []*store.ExamQuestion) error {
	for _, q := range qs {
		f.nextID++
		q.ID = fmt.Sprintf("question-%d", f.nextID)
		q.CreatedAt = time.Now()
		f.rows = append(f.rows, q)
	}
	return nil
}

func (f *fakeQuestions) Get(_ context.Context, id string) (*store.ExamQuestion, error) {
	for _, q := range f.rows {
		if q.ID == id {
			return q, nil
		}
	}
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

func (f *fakeQuestions) BySessionTypeAttempt(_ context.Context, sessionID, examType string, attempt int) ([]*store.ExamQuestion, error) {
	var out []*store.ExamQuestion
	for _, q := range f.rows {
		if q.SessionID == sessionID && q.ExamType == examType && q.AttemptNumber == attempt {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) DeleteByIDs(_ context.Context, ids []string) error {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []*store.ExamQuestion
	for _, q := range f.rows {
		if !drop[q.ID] {
			kept = append(kept, q)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeQuestions) RecordAnswers(_ context.Context, records []store.AnswerRecord) error {
	for _, rec := range records {
		for _, q := range f.rows {
			if q.ID == rec.QuestionID {
				q.UserAnswer = rec.UserAnswer
				correct := rec.IsCorrect
				q.IsCorrect = &correct
				q.IsIDK = rec.IsIDK
			}
		}
	}
	return nil
}

type fakeStudents struct {
	byKey map[string]*store.StudentModel
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{byKey: make(map[string]*store.StudentModel)}
}

func (f *fakeStudents) Get(_ context.Context, userID, topicID string) (*store.StudentModel, error) {
	return f.byKey[userID+"|"+topicID], nil
}

func (f *fakeStudents) Upsert(_ context.Context, m *store.StudentModel) error {
	f.byKey[m.UserID+"|"+m.TopicID] = m
	return nil
}

type fakeTopics struct {
	topics []*store.Topic
}

func (f *fakeTopics) Get(_ context.Context, id string) (*store.Topic, error) {
	for _, t := range f.topics {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTopics) List(_ context.Context) ([]*store.Topic, error) {
	return f.topics, nil
}

func (f *fakeTopics) Dependents(_ context.Context, topicID string) ([]*store.Topic, error) {
	var out []*store.Topic
	for _, t := range f.topics {
		if t.PrerequisiteID == topicID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTopics) UpsertAll(_ context.Context, topics []*store.Topic) error {
	f.topics = topics
	return nil
}

type fakeProgressRepo struct {
	byKey map[string]*store.TopicProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{byKey: make(map[string]*store.TopicProgress)}
}

func (f *fakeProgressRepo) Get(_ context.Context, userID, topicID string) (*store.TopicProgress, error) {
	return f.byKey[userID+"|"+topicID], nil
}

func (f *fakeProgressRepo) ListByUser(_ context.Context, userID string) ([]*store.TopicProgress, error) {
	var out []*store.TopicProgress
	for _, p := range f.byKey {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) CreateMany(_ context.Context, rows []*store.TopicProgress) error {
	for _, p := range rows {
		f.byKey[p.UserID+"|"+p.TopicID] = p
	}
	return nil
}

func (f *fakeProgressRepo) MarkStarted(_ context.Context, userID, topicID string) error {
	p, ok := f.byKey[userID+"|"+topicID]
	if !ok {
		return store.ErrNotFound
	}
	p.Status = "in_progress"
	p.Attempts++
	return nil
}

func (f *fakeProgressRepo) MarkCompleted(_ context.Context, userID, topicID string, score int) error {
	p, ok := f.byKey[userID+"|"+topicID]
	if !ok {
		return store.ErrNotFound
	}
	p.Status = "completed"
	if p.BestScore == nil || score > *p.BestScore {
		p.BestScore = &score
	}
	return nil
}

func (f *fakeProgressRepo) UnlockIfLocked(_ context.Context, userID, topicID string) error {
	p, ok := f.byKey[userID+"|"+topicID]
	if !ok {
		return nil
	}
	if p.Status == "locked" {
		p.Status = "available"
	}
	return nil
}

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

type fakeLessons struct {
	rows   []*store.Lesson
	nextID int
}

func (f *fakeLessons) Create(_ context.Context, l *store.Lesson) (*store.Lesson, error) {
	f.nextID++
	l.ID = fmt.Sprintf("lesson-%d", f.nextID)
	l.CreatedAt = time.Now()
	f.rows = append(f.rows, l)
	return l, nil
}

func (f *fakeLessons) BySessionAndType(_ context.Context, sessionID, lessonType string) (*store.Lesson, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].SessionID == sessionID && f.rows[i].LessonType == lessonType {
			return f.rows[i], nil
		}
	}
	return nil, nil
}

// fakeGenerator returns a deterministic validated batch.
type fakeGenerator struct{}

func (fakeGenerator) GenerateBatch(_ context.Context, input examgen.GenerateInput) (*examgen.Batch, error) {
	batch := &examgen.Batch{}
	for i := 0; i < input.Count; i++ {
		batch.Questions = append(batch.Questions, examgen.Question{
			QuestionText:  fmt.Sprintf("Generated question %d", i+1),
			Explanation:   "Therefore $x = 1$.",
			Choices:       map[string]string{"A": "$1$", "B": "$2$", "C": "$3$", "D": "$4$"},
			CorrectAnswer: "A",
		})
	}
	return batch, nil
}

// apiEnv is a full server wired over fakes and a mock LLM provider.
type apiEnv struct {
	sessions  *fakeSessions
	questions *fakeQuestions
	students  *fakeStudents
	topics    *fakeTopics
	progress  *fakeProgressRepo
	threads   *fakeThreads
	lessons   *fakeLessons
	mock      *llm.MockProvider
	handler   http.Handler
}

func newAPIEnv(responses ...llm.MockResponse) *apiEnv {
	env := &apiEnv{
		sessions:  newFakeSessions(),
		questions: &fakeQuestions{},
		students:  newFakeStudents(),
		topics: &fakeTopics{topics: []*store.Topic{
			{ID: "linear-equations", Name: "Linear Equations", DisplayOrder: 1},
			{ID: "systems", Name: "Systems of Equations", DisplayOrder: 2, PrerequisiteID: "linear-equations"},
		}},
		progress: newFakeProgressRepo(),
		threads:  newFakeThreads(),
		lessons:  &fakeLessons{},
		mock:     llm.NewMockProvider(responses...),
	}

	prog := progress.New(env.topics, env.progress)
	srv := &Server{
		Exams:        exams.New(env.sessions, env.questions, env.students, env.topics, prog, fakeGenerator{}, nil),
		Lessons:      lessons.New(env.sessions, env.questions, env.students, env.topics, env.lessons, env.threads, env.mock, lessons.DefaultConfig()),
		Remediation:  remediation.New(env.sessions, env.questions, env.students, env.topics, env.threads, env.mock, remediation.DefaultConfig()),
		StudentModel: studentmodel.New(env.sessions, env.questions, env.students, env.topics, env.threads, env.mock, studentmodel.DefaultConfig()),
		Progress:     prog,
		Topics:       env.topics,
		Students:     env.students,
	}
	env.handler = srv.Routes()
	return env
}
