// Package remediation runs per-question Socratic dialogue threads: an
// opening tutor message streamed to the client, then structured
// turn-by-turn replies until the thread resolves.
package remediation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/mathtext"
	"github.com/abhisek/tutorloop/internal/store"
)

// ErrThreadResolved is returned when a message is sent to a thread that
// has already been marked resolved.
var ErrThreadResolved = errors.New("remediation thread already resolved")

// ErrSessionClosed is returned when a thread is started on a session in a
// terminal state.
var ErrSessionClosed = errors.New("session is in a terminal state")

// Config holds dialogue generation settings.
type Config struct {
	StartMaxTokens     int
	RespondMaxTokens   int
	StartTemperature   float64
	RespondTemperature float64
}

// DefaultConfig returns sensible defaults for remediation dialogue.
func DefaultConfig() Config {
	return Config{
		StartMaxTokens:     1024,
		RespondMaxTokens:   1024,
		StartTemperature:   0.7,
		RespondTemperature: 0.3,
	}
}

// Service orchestrates remediation threads against the store.
type Service struct {
	sessions  store.SessionRepo
	questions store.ExamQuestionRepo
	students  store.StudentModelRepo
	topics    store.TopicRepo
	threads   store.RemediationRepo
	provider  llm.Provider
	cfg       Config
}

func New(
	sessions store.SessionRepo,
	questions store.ExamQuestionRepo,
	students store.StudentModelRepo,
	topics store.TopicRepo,
	threads store.RemediationRepo,
	provider llm.Provider,
	cfg Config,
) *Service {
	return &Service{
		sessions:  sessions,
		questions: questions,
		students:  students,
		topics:    topics,
		threads:   threads,
		provider:  provider,
		cfg:       cfg,
	}
}

// StartResult is the thread and its messages after Start. Resumed reports
// whether an existing thread was returned instead of a new one being
// opened (in which case nothing was streamed).
type StartResult struct {
	Thread   *store.Thread
	Messages []*store.Message
	Resumed  bool
}

// Start opens (or resumes) the remediation thread for a question the user
// got wrong. A fresh thread invokes onThread once the thread row exists,
// streams the opening Socratic message through onDelta, and persists the
// normalized text once the stream completes. An existing thread for the
// question is returned with its history, except when the question belongs
// to an earlier remediation attempt than the session's current loop; such
// stale threads are deleted and recreated.
func (s *Service) Start(ctx context.Context, userID, questionID, sessionID string, onThread func(*store.Thread), onDelta llm.StreamFunc) (*StartResult, error) {
	question, err := s.questions.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.UserID != userID {
		return nil, store.ErrNotFound
	}

	sess, err := s.sessions.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if loop.IsTerminal(loop.State(sess.State)) {
		return nil, ErrSessionClosed
	}

	existing, err := s.threads.ThreadByQuestion(ctx, questionID, userID)
	if err != nil {
		return nil, fmt.Errorf("look up thread: %w", err)
	}
	if existing != nil {
		if !s.staleThread(question, sess) {
			msgs, err := s.threads.Messages(ctx, existing.ID)
			if err != nil {
				return nil, fmt.Errorf("load thread messages: %w", err)
			}
			return &StartResult{Thread: existing, Messages: msgs, Resumed: true}, nil
		}
		if err := s.threads.DeleteThread(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("delete stale thread: %w", err)
		}
	}

	topic, err := s.topics.Get(ctx, sess.TopicID)
	if err != nil {
		return nil, err
	}
	model, err := s.students.Get(ctx, userID, sess.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get student model: %w", err)
	}

	thread, err := s.threads.CreateThread(ctx, questionID, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}
	if onThread != nil {
		onThread(thread)
	}

	prompt := buildStartPrompt(startInput{
		TopicName:    topic.Name,
		Question:     question,
		StudentModel: model,
	})

	ctx = llm.WithPurpose(ctx, "remediation-start")
	var full strings.Builder
	_, err = llm.GenerateStream(ctx, s.provider, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   s.cfg.StartMaxTokens,
		Temperature: s.cfg.StartTemperature,
	}, func(delta string) {
		full.WriteString(delta)
		if onDelta != nil {
			onDelta(delta)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("remediation opening: %w", err)
	}

	msg, err := s.threads.AddMessage(ctx, thread.ID, "assistant", mathtext.Normalize(full.String()))
	if err != nil {
		return nil, fmt.Errorf("save opening message: %w", err)
	}

	return &StartResult{Thread: thread, Messages: []*store.Message{msg}}, nil
}

// RespondResult is one tutor reply.
type RespondResult struct {
	Message    string
	IsResolved bool
}

type respondOutput struct {
	Message    string `json:"message"`
	IsResolved bool   `json:"is_resolved"`
}

// Respond appends the student's message to the thread and generates the
// tutor's structured reply, marking the thread resolved when the model
// judges the concept understood.
func (s *Service) Respond(ctx context.Context, userID, threadID, message string) (*RespondResult, error) {
	thread, err := s.threads.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread.UserID != userID {
		return nil, store.ErrNotFound
	}
	if thread.IsResolved {
		return nil, ErrThreadResolved
	}

	question, err := s.questions.Get(ctx, thread.QuestionID)
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(ctx, thread.SessionID)
	if err != nil {
		return nil, err
	}
	topic, err := s.topics.Get(ctx, sess.TopicID)
	if err != nil {
		return nil, err
	}

	if _, err := s.threads.AddMessage(ctx, threadID, "user", message); err != nil {
		return nil, fmt.Errorf("save student message: %w", err)
	}
	history, err := s.threads.Messages(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("load thread messages: %w", err)
	}

	prompt := buildRespondPrompt(respondInput{
		TopicName:      topic.Name,
		Question:       question,
		History:        history,
		StudentMessage: message,
	})

	ctx = llm.WithPurpose(ctx, "remediation-respond")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      ResponseSchema,
		MaxTokens:   s.cfg.RespondMaxTokens,
		Temperature: s.cfg.RespondTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("remediation reply: %w", err)
	}

	var out respondOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse remediation reply: %w", err)
	}

	reply := mathtext.Normalize(out.Message)
	if _, err := s.threads.AddMessage(ctx, threadID, "assistant", reply); err != nil {
		return nil, fmt.Errorf("save tutor message: %w", err)
	}
	if out.IsResolved {
		if err := s.threads.ResolveThread(ctx, threadID); err != nil {
			return nil, fmt.Errorf("resolve thread: %w", err)
		}
	}

	return &RespondResult{Message: reply, IsResolved: out.IsResolved}, nil
}

// Thread returns a thread and its messages for the owning user.
func (s *Service) Thread(ctx context.Context, userID, threadID string) (*store.Thread, []*store.Message, error) {
	thread, err := s.threads.GetThread(ctx, threadID)
	if err != nil {
		return nil, nil, err
	}
	if thread.UserID != userID {
		return nil, nil, store.ErrNotFound
	}
	msgs, err := s.threads.Messages(ctx, threadID)
	if err != nil {
		return nil, nil, fmt.Errorf("load thread messages: %w", err)
	}
	return thread, msgs, nil
}

// staleThread reports whether the question's remediation attempt predates
// the session's current loop.
func (s *Service) staleThread(q *store.ExamQuestion, sess *store.Session) bool {
	if q.ExamType != "remediation" {
		return false
	}
	current := sess.RemediationLoopCount
	if current < 1 {
		current = 1
	}
	return q.AttemptNumber < current
}
