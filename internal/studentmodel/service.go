// Package studentmodel maintains the per-topic learner profile: an
// LLM-driven merge of exam results and remediation insights into the
// stored strengths, weaknesses, misconceptions, and mastery level.
package studentmodel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/store"
)

// ErrNoExamResults is returned when an update is requested before the
// exam has any recorded questions.
var ErrNoExamResults = errors.New("no exam results to analyze")

// insightMessageWindow limits how many trailing messages of each thread
// enter the update prompt.
const insightMessageWindow = 4

// Config holds profile update settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for profile updates.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// UpdateSchema defines the JSON schema for a profile update.
var UpdateSchema = &llm.Schema{
	Name:        "student-model-update",
	Description: "Updated learner profile for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"weaknesses": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"misconceptions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"mastery_level": map[string]any{
				"type": "number",
			},
		},
		"required":             []any{"strengths", "weaknesses", "misconceptions", "mastery_level"},
		"additionalProperties": false,
	},
}

// Service updates learner profiles against the store.
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

type updateOutput struct {
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Misconceptions []string `json:"misconceptions"`
	MasteryLevel   float64  `json:"mastery_level"`
}

// Update merges one exam's results (and any remediation conversations in
// the session) into the profile for the session's topic and persists it.
// The returned model is the stored state after the merge.
func (s *Service) Update(ctx context.Context, userID, sessionID, examType string) (*store.StudentModel, error) {
	switch examType {
	case "pre", "post", "remediation":
	default:
		return nil, fmt.Errorf("unknown exam type %q", examType)
	}

	sess, err := s.sessions.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	topic, err := s.topics.Get(ctx, sess.TopicID)
	if err != nil {
		return nil, err
	}

	current, err := s.students.Get(ctx, userID, sess.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get student model: %w", err)
	}
	if current == nil {
		current = &store.StudentModel{UserID: userID, TopicID: sess.TopicID}
	}

	results, err := s.questions.BySessionAndType(ctx, sessionID, examType)
	if err != nil {
		return nil, fmt.Errorf("load exam results: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoExamResults
	}

	insights, err := s.remediationInsights(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prompt := buildUpdatePrompt(promptInput{
		TopicName:           topic.Name,
		Current:             current,
		ExamResults:         results,
		RemediationInsights: insights,
	})

	ctx = llm.WithPurpose(ctx, "student-model")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      UpdateSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("student model update: %w", err)
	}

	var out updateOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse student model update: %w", err)
	}

	current.Strengths = out.Strengths
	current.Weaknesses = out.Weaknesses
	current.Misconceptions = out.Misconceptions
	current.MasteryLevel = clampMastery(out.MasteryLevel)

	if err := s.students.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("save student model: %w", err)
	}
	return current, nil
}

// Get returns the profile for (user, topic), or nil if none exists yet.
func (s *Service) Get(ctx context.Context, userID, topicID string) (*store.StudentModel, error) {
	return s.students.Get(ctx, userID, topicID)
}

// remediationInsights renders the tail of each thread in the session.
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
		if len(msgs) > insightMessageWindow {
			msgs = msgs[len(msgs)-insightMessageWindow:]
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Resolved: %t\n", th.IsResolved)
		for _, m := range msgs {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
		parts = append(parts, strings.TrimRight(b.String(), "\n"))
	}
	return strings.Join(parts, "\n---\n"), nil
}

func clampMastery(v float64) int {
	n := int(v + 0.5)
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
