package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist or is not
// visible to the requesting user.
var ErrNotFound = errors.New("store: not found")

// Session is one run of the learning loop for a (user, topic) pair.
type Session struct {
	ID                   string
	UserID               string
	TopicID              string
	State                string
	SessionNumber        int
	PreExamScore         *int
	PostExamScore        *int
	RemediationExamScore *int
	RemediationLoopCount int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SessionUpdate describes a partial update; nil fields are left unchanged.
type SessionUpdate struct {
	State                *string
	PreExamScore         *int
	PostExamScore        *int
	RemediationExamScore *int
	IncrementLoopCount   bool
}

// SessionRepo manages learning sessions.
type SessionRepo interface {
	// Create inserts a new session in the pre_exam_pending state.
	Create(ctx context.Context, userID, topicID string, sessionNumber int) (*Session, error)

	// Get returns the session, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// GetOwned returns the session only if it belongs to userID.
	GetOwned(ctx context.Context, id, userID string) (*Session, error)

	// CountForTopic counts sessions this user has started on the topic.
	CountForTopic(ctx context.Context, userID, topicID string) (int, error)

	// Update applies the non-nil fields of upd.
	Update(ctx context.Context, id string, upd SessionUpdate) error
}

// ExamQuestion is one multiple-choice question served in an exam.
type ExamQuestion struct {
	ID             string
	SessionID      string
	UserID         string
	ExamType       string
	AttemptNumber  int
	QuestionNumber int
	QuestionText   string
	Choices        map[string]string
	CorrectAnswer  string
	Explanation    string
	UserAnswer     *string
	IsCorrect      *bool
	IsIDK          bool
	CreatedAt      time.Time
}

// AnswerRecord is one graded answer to write back to a question row.
type AnswerRecord struct {
	QuestionID string
	UserAnswer *string
	IsCorrect  bool
	IsIDK      bool
}

// ExamQuestionRepo manages exam question rows.
type ExamQuestionRepo interface {
	// CreateBatch inserts all questions in one bulk create.
	CreateBatch(ctx context.Context, qs []*ExamQuestion) error

	// Get returns the question, or ErrNotFound.
	Get(ctx context.Context, id string) (*ExamQuestion, error)

	// BySessionAndType returns all questions of an exam type across
	// attempts, ordered by attempt then question number.
	BySessionAndType(ctx context.Context, sessionID, examType string) ([]*ExamQuestion, error)

	// BySessionTypeAttempt returns one attempt's questions ordered by
	// question number.
	BySessionTypeAttempt(ctx context.Context, sessionID, examType string, attempt int) ([]*ExamQuestion, error)

	// DeleteByIDs removes the given questions.
	DeleteByIDs(ctx context.Context, ids []string) error

	// RecordAnswers writes graded answers back to their rows.
	RecordAnswers(ctx context.Context, records []AnswerRecord) error
}

// StudentModel is the LLM-maintained learner profile for one topic.
type StudentModel struct {
	ID             string
	UserID         string
	TopicID        string
	Strengths      []string
	Weaknesses     []string
	Misconceptions []string
	MasteryLevel   int
	UpdatedAt      time.Time
}

// StudentModelRepo manages learner profiles.
type StudentModelRepo interface {
	// Get returns the profile for (userID, topicID), or nil if none exists.
	Get(ctx context.Context, userID, topicID string) (*StudentModel, error)

	// Upsert creates or replaces the profile for (m.UserID, m.TopicID).
	Upsert(ctx context.Context, m *StudentModel) error
}

// Thread is a remediation dialogue about one question.
type Thread struct {
	ID         string
	QuestionID string
	SessionID  string
	UserID     string
	IsResolved bool
	CreatedAt  time.Time
}

// Message is one turn in a remediation thread.
type Message struct {
	ID        string
	ThreadID  string
	Role      string
	Content   string
	CreatedAt time.Time
}

// RemediationRepo manages remediation threads and their messages.
type RemediationRepo interface {
	// GetThread returns the thread, or ErrNotFound.
	GetThread(ctx context.Context, id string) (*Thread, error)

	// ThreadByQuestion returns the thread for (questionID, userID), or nil
	// if none exists.
	ThreadByQuestion(ctx context.Context, questionID, userID string) (*Thread, error)

	// ThreadsBySession returns all threads opened during a session.
	ThreadsBySession(ctx context.Context, sessionID string) ([]*Thread, error)

	// CreateThread opens a new unresolved thread.
	CreateThread(ctx context.Context, questionID, sessionID, userID string) (*Thread, error)

	// DeleteThread removes the thread and its messages.
	DeleteThread(ctx context.Context, id string) error

	// ResolveThread marks the thread resolved.
	ResolveThread(ctx context.Context, id string) error

	// Messages returns the thread's messages in chronological order.
	Messages(ctx context.Context, threadID string) ([]*Message, error)

	// AddMessage appends a message to the thread.
	AddMessage(ctx context.Context, threadID, role, content string) (*Message, error)
}

// TopicProgress tracks one user's standing on one topic.
type TopicProgress struct {
	ID        string
	UserID    string
	TopicID   string
	Status    string
	BestScore *int
	Attempts  int
	UpdatedAt time.Time
}

// ProgressRepo manages per-user topic progress rows.
type ProgressRepo interface {
	// Get returns the progress row for (userID, topicID), or nil if none.
	Get(ctx context.Context, userID, topicID string) (*TopicProgress, error)

	// ListByUser returns all progress rows for the user.
	ListByUser(ctx context.Context, userID string) ([]*TopicProgress, error)

	// CreateMany inserts the given rows in one bulk create.
	CreateMany(ctx context.Context, rows []*TopicProgress) error

	// MarkStarted sets status to in_progress and increments attempts.
	MarkStarted(ctx context.Context, userID, topicID string) error

	// MarkCompleted sets status to completed and raises best_score to
	// score if it improves on the stored value.
	MarkCompleted(ctx context.Context, userID, topicID string, score int) error

	// UnlockIfLocked flips a locked row to available. Rows in any other
	// status are left unchanged.
	UnlockIfLocked(ctx context.Context, userID, topicID string) error
}

// Topic is a unit of the curriculum.
type Topic struct {
	ID             string
	Name           string
	Description    string
	DisplayOrder   int
	PrerequisiteID string
}

// TopicRepo manages curriculum topics.
type TopicRepo interface {
	// Get returns the topic, or ErrNotFound.
	Get(ctx context.Context, id string) (*Topic, error)

	// List returns all topics in display order.
	List(ctx context.Context) ([]*Topic, error)

	// Dependents returns the topics whose prerequisite is topicID.
	Dependents(ctx context.Context, topicID string) ([]*Topic, error)

	// UpsertAll seeds or refreshes the curriculum.
	UpsertAll(ctx context.Context, topics []*Topic) error
}

// Lesson is the persisted text of a generated lesson.
type Lesson struct {
	ID         string
	SessionID  string
	UserID     string
	LessonType string
	Content    string
	CreatedAt  time.Time
}

// LessonRepo manages persisted lessons.
type LessonRepo interface {
	// Create inserts a lesson.
	Create(ctx context.Context, l *Lesson) (*Lesson, error)

	// BySessionAndType returns the most recent lesson of the given type
	// in the session, or nil if none exists.
	BySessionAndType(ctx context.Context, sessionID, lessonType string) (*Lesson, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event as returned by queries.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates token usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// EventRepo provides append and query access to the LLM request log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events ordered by sequence descending.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event with the given row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
