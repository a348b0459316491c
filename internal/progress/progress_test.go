package progress

import (
	"context"
	"testing"

	"github.com/abhisek/tutorloop/internal/store"
)

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

func (f *fakeTopics) Dependents(_ context.Context, id string) ([]*store.Topic, error) {
	var deps []*store.Topic
	for _, t := range f.topics {
		if t.PrerequisiteID == id {
			deps = append(deps, t)
		}
	}
	return deps, nil
}

func (f *fakeTopics) UpsertAll(_ context.Context, topics []*store.Topic) error {
	f.topics = topics
	return nil
}

type fakeProgress struct {
	rows map[string]*store.TopicProgress // keyed by userID|topicID
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{rows: make(map[string]*store.TopicProgress)}
}

func (f *fakeProgress) key(userID, topicID string) string { return userID + "|" + topicID }

func (f *fakeProgress) Get(_ context.Context, userID, topicID string) (*store.TopicProgress, error) {
	return f.rows[f.key(userID, topicID)], nil
}

func (f *fakeProgress) ListByUser(_ context.Context, userID string) ([]*store.TopicProgress, error) {
	var out []*store.TopicProgress
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProgress) CreateMany(_ context.Context, rows []*store.TopicProgress) error {
	for _, r := range rows {
		cp := *r
		f.rows[f.key(r.UserID, r.TopicID)] = &cp
	}
	return nil
}

func (f *fakeProgress) MarkStarted(_ context.Context, userID, topicID string) error {
	r, ok := f.rows[f.key(userID, topicID)]
	if !ok {
		return store.ErrNotFound
	}
	r.Status = "in_progress"
	r.Attempts++
	return nil
}

func (f *fakeProgress) MarkCompleted(_ context.Context, userID, topicID string, score int) error {
	r, ok := f.rows[f.key(userID, topicID)]
	if !ok {
		return store.ErrNotFound
	}
	r.Status = "completed"
	if r.BestScore == nil || score > *r.BestScore {
		r.BestScore = &score
	}
	return nil
}

func (f *fakeProgress) UnlockIfLocked(_ context.Context, userID, topicID string) error {
	r, ok := f.rows[f.key(userID, topicID)]
	if !ok {
		return store.ErrNotFound
	}
	if r.Status == "locked" {
		r.Status = "available"
	}
	return nil
}

func testTopics() []*store.Topic {
	return []*store.Topic{
		{ID: "linear-equations", Name: "Linear Equations", DisplayOrder: 1},
		{ID: "inequalities", Name: "Inequalities", DisplayOrder: 2, PrerequisiteID: "linear-equations"},
		{ID: "systems", Name: "Systems of Equations", DisplayOrder: 3, PrerequisiteID: "inequalities"},
	}
}

func TestInitialize(t *testing.T) {
	topics := &fakeTopics{topics: testTopics()}
	repo := newFakeProgress()
	svc := New(topics, repo)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "user-1"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	rows, _ := svc.ListByUser(ctx, "user-1")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	want := map[string]string{
		"linear-equations": "available",
		"inequalities":     "locked",
		"systems":          "locked",
	}
	for _, r := range rows {
		if r.Status != want[r.TopicID] {
			t.Errorf("topic %s status = %q, want %q", r.TopicID, r.Status, want[r.TopicID])
		}
	}
}

func TestInitializeIdempotent(t *testing.T) {
	topics := &fakeTopics{topics: testTopics()}
	repo := newFakeProgress()
	svc := New(topics, repo)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "user-1"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	// Mutate a row, then re-initialize. The row must survive untouched.
	if err := svc.Start(ctx, "user-1", "linear-equations"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := svc.Initialize(ctx, "user-1"); err != nil {
		t.Fatalf("second Initialize() error = %v", err)
	}

	row, _ := repo.Get(ctx, "user-1", "linear-equations")
	if row.Status != "in_progress" || row.Attempts != 1 {
		t.Errorf("row after re-init = %q attempts %d, want in_progress attempts 1", row.Status, row.Attempts)
	}
	rows, _ := svc.ListByUser(ctx, "user-1")
	if len(rows) != 3 {
		t.Errorf("expected 3 rows after re-init, got %d", len(rows))
	}
}

func TestInitializeEmptyCurriculum(t *testing.T) {
	svc := New(&fakeTopics{}, newFakeProgress())
	if err := svc.Initialize(context.Background(), "user-1"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
}

func TestCompleteUnlocksDependents(t *testing.T) {
	topics := &fakeTopics{topics: testTopics()}
	repo := newFakeProgress()
	svc := New(topics, repo)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "user-1"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := svc.Complete(ctx, "user-1", "linear-equations", 85); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	done, _ := repo.Get(ctx, "user-1", "linear-equations")
	if done.Status != "completed" {
		t.Errorf("completed topic status = %q, want completed", done.Status)
	}
	if done.BestScore == nil || *done.BestScore != 85 {
		t.Errorf("best score = %v, want 85", done.BestScore)
	}

	next, _ := repo.Get(ctx, "user-1", "inequalities")
	if next.Status != "available" {
		t.Errorf("dependent status = %q, want available", next.Status)
	}

	// Only the direct dependent unlocks.
	far, _ := repo.Get(ctx, "user-1", "systems")
	if far.Status != "locked" {
		t.Errorf("transitive dependent status = %q, want locked", far.Status)
	}
}

func TestCompleteKeepsBestScore(t *testing.T) {
	topics := &fakeTopics{topics: testTopics()}
	repo := newFakeProgress()
	svc := New(topics, repo)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "user-1"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := svc.Complete(ctx, "user-1", "linear-equations", 90); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if err := svc.Complete(ctx, "user-1", "linear-equations", 80); err != nil {
		t.Fatalf("second Complete() error = %v", err)
	}

	row, _ := repo.Get(ctx, "user-1", "linear-equations")
	if row.BestScore == nil || *row.BestScore != 90 {
		t.Errorf("best score = %v, want 90 preserved", row.BestScore)
	}
}

func TestCompleteDoesNotRelockInProgressDependent(t *testing.T) {
	topics := &fakeTopics{topics: testTopics()}
	repo := newFakeProgress()
	svc := New(topics, repo)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "user-1"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	repo.rows[repo.key("user-1", "inequalities")].Status = "in_progress"

	if err := svc.Complete(ctx, "user-1", "linear-equations", 100); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	row, _ := repo.Get(ctx, "user-1", "inequalities")
	if row.Status != "in_progress" {
		t.Errorf("dependent status = %q, want in_progress untouched", row.Status)
	}
}
