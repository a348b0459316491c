package exams

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/tutorloop/internal/examgen"
	"github.com/abhisek/tutorloop/internal/progress"
	"github.com/abhisek/tutorloop/internal/store"
)

// In-memory fakes for the store interfaces. They implement just enough
// behavior for the orchestration paths under test.

type fakeSessions struct {
	byID    map[string]*store.Session
	nextID  int
	updates int
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
	f.updates++
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

type fakeProgress struct {
	byKey map[string]*store.TopicProgress
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{byKey: make(map[string]*store.TopicProgress)}
}

func (f *fakeProgress) Get(_ context.Context, userID, topicID string) (*store.TopicProgress, error) {
	return f.byKey[userID+"|"+topicID], nil
}

func (f *fakeProgress) ListByUser(_ context.Context, userID string) ([]*store.TopicProgress, error) {
	var out []*store.TopicProgress
	for _, p := range f.byKey {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgress) CreateMany(_ context.Context, rows []*store.TopicProgress) error {
	for _, p := range rows {
		f.byKey[p.UserID+"|"+p.TopicID] = p
	}
	return nil
}

func (f *fakeProgress) MarkStarted(_ context.Context, userID, topicID string) error {
	p, ok := f.byKey[userID+"|"+topicID]
	if !ok {
		return store.ErrNotFound
	}
	p.Status = "in_progress"
	p.Attempts++
	return nil
}

func (f *fakeProgress) MarkCompleted(_ context.Context, userID, topicID string, score int) error {
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

func (f *fakeProgress) UnlockIfLocked(_ context.Context, userID, topicID string) error {
	p, ok := f.byKey[userID+"|"+topicID]
	if !ok {
		return nil
	}
	if p.Status == "locked" {
		p.Status = "available"
	}
	return nil
}

// fakeGenerator returns a deterministic batch and records its inputs.
type fakeGenerator struct {
	inputs []examgen.GenerateInput
	err    error
}

func (f *fakeGenerator) GenerateBatch(_ context.Context, input examgen.GenerateInput) (*examgen.Batch, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
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

// testEnv wires a Service over fresh fakes with a two-topic curriculum.
type testEnv struct {
	sessions  *fakeSessions
	questions *fakeQuestions
	students  *fakeStudents
	topics    *fakeTopics
	progress  *fakeProgress
	generator *fakeGenerator
	svc       *Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		sessions:  newFakeSessions(),
		questions: &fakeQuestions{},
		students:  newFakeStudents(),
		topics: &fakeTopics{topics: []*store.Topic{
			{ID: "linear-equations", Name: "Linear Equations", DisplayOrder: 1},
			{ID: "systems", Name: "Systems of Equations", DisplayOrder: 2, PrerequisiteID: "linear-equations"},
		}},
		progress:  newFakeProgress(),
		generator: &fakeGenerator{},
	}
	env.svc = New(
		env.sessions,
		env.questions,
		env.students,
		env.topics,
		progress.New(env.topics, env.progress),
		env.generator,
		nil,
	)
	return env
}

// startSession creates a session and moves it to the given state.
func (env *testEnv) startSession(t interface{ Fatalf(string, ...any) }, state string) *store.Session {
	sess, err := env.svc.StartSession(context.Background(), "user-1", "linear-equations")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	sess.State = state
	return sess
}
