package examgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/mathtext"
)

// Config controls the generation loop bounds and LLM parameters.
type Config struct {
	// MaxAttempts bounds the outer generate-validate loop.
	MaxAttempts int

	// MaxValidationAttempts bounds retries of the validation round-trip
	// when its result set is incomplete.
	MaxValidationAttempts int

	// MaxPartialRegenAttempts bounds replacement candidates generated for
	// each individually defective question.
	MaxPartialRegenAttempts int

	// MaxTokens is the token budget for each LLM response.
	MaxTokens int

	// Temperature for generation calls. Validation always runs at 0.
	Temperature float64
}

// DefaultConfig returns the standard loop bounds.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:             5,
		MaxValidationAttempts:   2,
		MaxPartialRegenAttempts: 3,
		MaxTokens:               8192,
		Temperature:             0.3,
	}
}

// Service generates validated exam question batches.
type Service struct {
	provider llm.Provider
	cfg      Config
	rng      *rand.Rand
	logger   *slog.Logger
}

// New creates a Service. The rng drives answer-choice shuffling; pass a
// seeded source in tests for deterministic output.
func New(provider llm.Provider, cfg Config, rng *rand.Rand, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, cfg: cfg, rng: rng, logger: logger}
}

// generationOutput is the raw LLM response before validation.
type generationOutput struct {
	Questions []Question `json:"questions"`
}

// GenerateBatch produces input.Count validated questions. It retries a
// defective batch up to cfg.MaxAttempts times, attempting single-question
// replacement before discarding a batch, and feeds a description of the
// previous attempt's defects into each retry prompt. Accepted questions
// have their choices shuffled before return.
func (s *Service) GenerateBatch(ctx context.Context, input GenerateInput) (*Batch, error) {
	basePrompt := buildExamPrompt(input)

	var feedback string
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		prompt := basePrompt
		if feedback != "" {
			prompt = fmt.Sprintf("%s\n\nVALIDATION FEEDBACK (fix these issues):\n- %s\n- Ensure each question has exactly one correct choice and three incorrect distractors. Avoid ambiguous wording.", basePrompt, feedback)
		}

		questions, err := s.generate(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if len(questions) != input.Count {
			feedback = fmt.Sprintf("Expected %d questions, got %d.", input.Count, len(questions))
			continue
		}

		r, err := s.validateQuestions(ctx, questions)
		if err != nil {
			return nil, err
		}
		if r.pass() {
			return s.accept(questions), nil
		}
		feedback = r.feedback()
		s.logDefects(attempt, r)

		// Replace individually defective questions in place before
		// discarding the whole batch. Skipped when validation itself
		// failed, since per-question defects are then unknown.
		if !r.missingValidation {
			for _, index := range r.invalidIndexes() {
				if candidate, ok := s.regenerateOne(ctx, input, index); ok {
					questions[index-1] = *candidate
				}
			}

			r, err = s.validateQuestions(ctx, questions)
			if err != nil {
				return nil, err
			}
			if r.pass() {
				return s.accept(questions), nil
			}
			feedback = r.feedback()
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrGenerationExhausted, feedback)
}

// generate performs one generation call and parses the batch.
func (s *Service) generate(ctx context.Context, prompt string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "exam-gen")

	req := llm.Request{
		System: generationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      GenerationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exam generation failed: %w", err)
	}

	var out generationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse generation response: %w", err)
	}
	return out.Questions, nil
}

// regenerateOne produces a standalone replacement for the question at the
// given 1-based index, accepting the first candidate that passes the full
// detector set on its own.
func (s *Service) regenerateOne(ctx context.Context, input GenerateInput, index int) (*Question, bool) {
	single := input
	single.Count = 1
	prompt := fmt.Sprintf("%s\n\nREGENERATION INSTRUCTIONS:\n- This replaces question #%d.\n- Ensure exactly one correct answer.\n- Avoid ambiguous wording.\n- Ensure choices are distinct values.", buildExamPrompt(single), index)

	for regen := 1; regen <= s.cfg.MaxPartialRegenAttempts; regen++ {
		candidates, err := s.generate(ctx, prompt)
		if err != nil || len(candidates) == 0 {
			continue
		}
		candidate := candidates[0]

		r, err := s.validateQuestions(ctx, []Question{candidate})
		if err != nil {
			continue
		}
		if r.pass() {
			return &candidate, true
		}
	}
	return nil, false
}

// logDefects records which questions failed which detector, for
// diagnosing generator drift. Never shown to the learner.
func (s *Service) logDefects(attempt int, r *report) {
	s.logger.Warn("exam batch failed validation",
		"attempt", attempt,
		"missing_validation", r.missingValidation,
		"duplicate_choices", r.duplicateIndexes,
		"validator_mismatch", r.incorrectIndexes,
		"graphing_not_equals", r.graphingIndexes,
		"banned_phrasing", r.bannedPhrasingIndexes,
		"scalar_not_equals", r.scalarChoiceIndexes,
	)
}

// accept normalizes each question's markup, shuffles its choices and wraps
// the batch. All accepted questions pass through here, so persisted content
// is always normalized.
func (s *Service) accept(questions []Question) *Batch {
	for i := range questions {
		q := &questions[i]
		q.QuestionText = mathtext.Normalize(q.QuestionText)
		q.Explanation = mathtext.Normalize(q.Explanation)
		for label, choice := range q.Choices {
			q.Choices[label] = mathtext.Normalize(choice)
		}
		ShuffleChoices(q, s.rng)
	}
	return &Batch{Questions: questions}
}
