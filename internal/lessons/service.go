// Package lessons generates streamed, personalized lesson prose and
// persists it when the stream completes.
package lessons

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/mathtext"
	"github.com/abhisek/tutorloop/internal/store"
)

// Service streams lesson content to a caller-supplied sink and saves the
// normalized text once the stream ends.
type Service struct {
	sessions  store.SessionRepo
	questions store.ExamQuestionRepo
	students  store.StudentModelRepo
	topics    store.TopicRepo
	lessons   store.LessonRepo
	threads   store.RemediationRepo
	provider  llm.Provider
	cfg       Config
}

func New(
	sessions store.SessionRepo,
	questions store.ExamQuestionRepo,
	students store.StudentModelRepo,
	topics store.TopicRepo,
	lessons store.LessonRepo,
	threads store.RemediationRepo,
	provider llm.Provider,
	cfg Config,
) *Service {
	return &Service{
		sessions:  sessions,
		questions: questions,
		students:  students,
		topics:    topics,
		lessons:   lessons,
		threads:   threads,
		provider:  provider,
		cfg:       cfg,
	}
}

// lessonStates maps a lesson type to its pending/active/completed states
// and the exam whose missed questions the lesson should address.
func lessonStates(lessonType string) (pending, active, completed loop.State, examType string, err error) {
	switch lessonType {
	case "initial":
		return loop.LessonPending, loop.LessonActive, loop.LessonCompleted, "pre", nil
	case "remediation":
		return loop.RemediationLessonPending, loop.RemediationLessonActive, loop.RemediationLessonCompleted, "post", nil
	default:
		return "", "", "", "", fmt.Errorf("unknown lesson type %q", lessonType)
	}
}

// Generate streams a lesson for (session, lessonType). Deltas go to
// onDelta raw; the accumulated text is normalized exactly once after the
// stream completes, persisted, and the session advanced to the lesson's
// completed state. The returned lesson holds the normalized content.
func (s *Service) Generate(ctx context.Context, userID, sessionID, lessonType string, onDelta llm.StreamFunc) (*store.Lesson, error) {
	pendingState, activeState, completedState, examType, err := lessonStates(lessonType)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	state := loop.State(sess.State)
	if state != pendingState && !loop.CanTransition(state, activeState) {
		// The exam-completed branch state feeds straight into the initial
		// lesson without a separate pending hop from the client.
		if !(lessonType == "initial" && state == loop.PreExamCompleted) {
			return nil, &loop.TransitionError{From: state, To: activeState}
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

	wrong, err := s.wrongQuestions(ctx, sessionID, examType)
	if err != nil {
		return nil, err
	}

	insights := ""
	if lessonType == "remediation" {
		insights, err = s.remediationInsights(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	}

	prompt := buildLessonPrompt(promptInput{
		TopicName:           topic.Name,
		TopicDescription:    topic.Description,
		LessonType:          lessonType,
		SessionNumber:       sess.SessionNumber,
		StudentModel:        model,
		WrongQuestions:      wrong,
		RemediationInsights: insights,
	})

	if err := s.setState(ctx, sessionID, activeState); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "lesson")
	var full strings.Builder
	_, err = llm.GenerateStream(ctx, s.provider, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}, func(delta string) {
		full.WriteString(delta)
		if onDelta != nil {
			onDelta(delta)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	lesson, err := s.lessons.Create(ctx, &store.Lesson{
		SessionID:  sessionID,
		UserID:     userID,
		LessonType: lessonType,
		Content:    mathtext.Normalize(full.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("save lesson: %w", err)
	}

	if err := s.setState(ctx, sessionID, completedState); err != nil {
		return nil, err
	}
	return lesson, nil
}

// Get returns the most recent persisted lesson of the given type, or nil
// if none has been generated yet.
func (s *Service) Get(ctx context.Context, userID, sessionID, lessonType string) (*store.Lesson, error) {
	if _, _, _, _, err := lessonStates(lessonType); err != nil {
		return nil, err
	}
	if _, err := s.sessions.GetOwned(ctx, sessionID, userID); err != nil {
		return nil, err
	}
	return s.lessons.BySessionAndType(ctx, sessionID, lessonType)
}

// wrongQuestions collects the missed or IDK questions of the exam that
// precedes this lesson.
func (s *Service) wrongQuestions(ctx context.Context, sessionID, examType string) ([]WrongQuestion, error) {
	rows, err := s.questions.BySessionAndType(ctx, sessionID, examType)
	if err != nil {
		return nil, fmt.Errorf("load exam questions: %w", err)
	}

	var wrong []WrongQuestion
	for _, q := range rows {
		if q.IsIDK || (q.IsCorrect != nil && !*q.IsCorrect) {
			wrong = append(wrong, WrongQuestion{
				QuestionText:  q.QuestionText,
				Choices:       q.Choices,
				CorrectAnswer: q.CorrectAnswer,
				UserAnswer:    q.UserAnswer,
				IsIDK:         q.IsIDK,
				Explanation:   q.Explanation,
			})
		}
	}
	return wrong, nil
}

// remediationInsights renders the session's remediation threads as a
// transcript. Transcripts past the compression threshold are summarized
// with a structured completion so the lesson prompt stays bounded.
func (s *Service) remediationInsights(ctx context.Context, sessionID string) (string, error) {
	threads, err := s.threads.ThreadsBySession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load remediation threads: %w", err)
	}
	if len(threads) == 0 {
		return "", nil
	}

	var parts []string
	for _, th := range threads {
		msgs, err := s.threads.Messages(ctx, th.ID)
		if err != nil {
			return "", fmt.Errorf("load thread messages: %w", err)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Thread (resolved: %t):\n", th.IsResolved)
		for _, m := range msgs {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
		parts = append(parts, strings.TrimRight(b.String(), "\n"))
	}

	transcript := strings.Join(parts, "\n\n")
	if len(transcript) <= InsightCompressionThreshold {
		return transcript, nil
	}
	return s.compressInsights(ctx, transcript)
}

type compressionOutput struct {
	Summary string `json:"summary"`
}

func (s *Service) compressInsights(ctx context.Context, transcript string) (string, error) {
	ctx = llm.WithPurpose(ctx, "insight-compress")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: compressionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCompressionUserMessage(transcript)},
		},
		Schema:      InsightCompressionSchema,
		MaxTokens:   s.cfg.InsightMaxTokens,
		Temperature: s.cfg.InsightTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("insight compression: %w", err)
	}

	var out compressionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse compression response: %w", err)
	}
	return out.Summary, nil
}

func (s *Service) setState(ctx context.Context, sessionID string, state loop.State) error {
	st := string(state)
	if err := s.sessions.Update(ctx, sessionID, store.SessionUpdate{State: &st}); err != nil {
		return fmt.Errorf("update session state: %w", err)
	}
	return nil
}
