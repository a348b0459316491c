package examgen

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/mathtext"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxTokens = 1024
	return cfg
}

func goodQuestion(text string) Question {
	return Question{
		QuestionText:  text,
		Explanation:   "Therefore $x = 4$.",
		Choices:       map[string]string{"A": "$4$", "B": "$5$", "C": "$6$", "D": "$7$"},
		CorrectAnswer: "A",
	}
}

func genResponse(t *testing.T, questions ...Question) llm.MockResponse {
	t.Helper()
	content, err := json.Marshal(generationOutput{Questions: questions})
	if err != nil {
		t.Fatalf("marshal generation response: %v", err)
	}
	return llm.MockResponse{Content: content}
}

func valResponse(t *testing.T, correctLetters ...string) llm.MockResponse {
	t.Helper()
	out := validationOutput{}
	for i, letter := range correctLetters {
		out.Results = append(out.Results, validationResult{
			Index:          i + 1,
			Reasoning:      "solved independently",
			CorrectChoices: []string{letter},
		})
	}
	content, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal validation response: %v", err)
	}
	return llm.MockResponse{Content: content}
}

func TestGenerateBatch_AcceptsCleanBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		genResponse(t, goodQuestion("What is $2 + 2$?"), goodQuestion("What is $8 / 2$?")),
		valResponse(t, "A", "A"),
	)
	svc := New(mock, testConfig(), rand.New(rand.NewSource(1)), nil)

	batch, err := svc.GenerateBatch(context.Background(), GenerateInput{
		TopicName: "Linear Equations",
		ExamType:  "pre",
		Count:     2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(batch.Questions))
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", mock.CallCount())
	}

	// Choices are shuffled on acceptance; the answer letter must still
	// hold the correct value.
	for _, q := range batch.Questions {
		if q.Choices[q.CorrectAnswer] != "$4$" {
			t.Fatalf("answer letter %q holds %q after shuffle", q.CorrectAnswer, q.Choices[q.CorrectAnswer])
		}
	}
}

func TestGenerateBatch_NormalizesAcceptedContent(t *testing.T) {
	glued := Question{
		QuestionText:  "solve$x$for$y$when$x=2$",
		Explanation:   "substitute$x=2$into$y=x+1$",
		Choices:       map[string]string{"A": "$3$", "B": "$4$", "C": "$5$", "D": "$6$"},
		CorrectAnswer: "A",
	}

	mock := llm.NewMockProvider(
		genResponse(t, glued),
		valResponse(t, "A"),
	)
	svc := New(mock, testConfig(), rand.New(rand.NewSource(1)), nil)

	batch, err := svc.GenerateBatch(context.Background(), GenerateInput{
		TopicName: "Linear Equations",
		ExamType:  "pre",
		Count:     1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := batch.Questions[0]
	if q.QuestionText != "solve $x$ for $y$ when $x=2$" {
		t.Errorf("question text not normalized: %q", q.QuestionText)
	}
	if q.Explanation != mathtext.Normalize(glued.Explanation) {
		t.Errorf("explanation not normalized: %q", q.Explanation)
	}
	for label, choice := range q.Choices {
		if choice != mathtext.Normalize(choice) {
			t.Errorf("choice %s not normalized: %q", label, choice)
		}
	}
}

func TestGenerateBatch_PartialRegenReplacesDefectiveQuestion(t *testing.T) {
	duplicate := goodQuestion("Broken question")
	duplicate.Choices = map[string]string{"A": "$4$", "B": "$4$", "C": "$6$", "D": "$7$"}

	replacement := goodQuestion("Replacement question")

	mock := llm.NewMockProvider(
		genResponse(t, duplicate),      // attempt 1 batch
		valResponse(t, "A"),            // batch validation: detectors still flag duplicates
		genResponse(t, replacement),    // partial regen candidate
		valResponse(t, "A"),            // candidate validation
		valResponse(t, "A"),            // whole-batch re-validation
	)
	svc := New(mock, testConfig(), rand.New(rand.NewSource(1)), nil)

	batch, err := svc.GenerateBatch(context.Background(), GenerateInput{
		TopicName: "Linear Equations",
		ExamType:  "post",
		Count:     1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Questions[0].QuestionText != "Replacement question" {
		t.Fatalf("expected replacement, got %q", batch.Questions[0].QuestionText)
	}
	if mock.CallCount() != 5 {
		t.Fatalf("expected 5 LLM calls, got %d", mock.CallCount())
	}

	regenCall := mock.Calls[2]
	if !strings.Contains(regenCall.Messages[0].Content, "REGENERATION INSTRUCTIONS") {
		t.Fatal("partial regen prompt missing regeneration instructions")
	}
	if !strings.Contains(regenCall.Messages[0].Content, "replaces question #1") {
		t.Fatal("partial regen prompt missing target index")
	}
}

func TestGenerateBatch_FeedbackInjectedOnRetry(t *testing.T) {
	banned := goodQuestion(`If $2x \neq 6$, which of the following is NOT a possible value for $x$?`)

	cfg := testConfig()
	cfg.MaxAttempts = 2
	cfg.MaxPartialRegenAttempts = 0

	mock := llm.NewMockProvider(
		genResponse(t, banned),                    // attempt 1
		valResponse(t, "A"),                       // validation
		valResponse(t, "A"),                       // re-validation after (empty) partial regen
		genResponse(t, goodQuestion("Clean one")), // attempt 2
		valResponse(t, "A"),
	)
	svc := New(mock, cfg, rand.New(rand.NewSource(1)), nil)

	batch, err := svc.GenerateBatch(context.Background(), GenerateInput{
		TopicName: "Linear Equations",
		ExamType:  "remediation",
		Count:     1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Questions[0].QuestionText != "Clean one" {
		t.Fatalf("expected the retried question, got %q", batch.Questions[0].QuestionText)
	}

	retryPrompt := mock.Calls[3].Messages[0].Content
	if !strings.Contains(retryPrompt, "VALIDATION FEEDBACK") {
		t.Fatal("retry prompt missing feedback block")
	}
	if !strings.Contains(retryPrompt, `banned "possible value" phrasing`) {
		t.Fatalf("retry prompt missing defect description: %s", retryPrompt)
	}
}

func TestGenerateBatch_ExhaustionAfterMaxAttempts(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 2
	cfg.MaxValidationAttempts = 1

	// The validator returns an incomplete result set on every attempt, so
	// the batch never passes and partial regen is skipped.
	mock := llm.NewMockProvider(
		genResponse(t, goodQuestion("Q1"), goodQuestion("Q2")),
		valResponse(t, "A"), // one result for two questions
		genResponse(t, goodQuestion("Q1"), goodQuestion("Q2")),
		valResponse(t, "A"),
	)
	svc := New(mock, cfg, rand.New(rand.NewSource(1)), nil)

	_, err := svc.GenerateBatch(context.Background(), GenerateInput{
		TopicName: "Linear Equations",
		ExamType:  "pre",
		Count:     2,
	})
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("expected ErrGenerationExhausted, got %v", err)
	}
	if mock.CallCount() != 4 {
		t.Fatalf("expected 4 LLM calls, got %d", mock.CallCount())
	}
}

func TestGenerateBatch_CountMismatchRetries(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 2

	mock := llm.NewMockProvider(
		genResponse(t, goodQuestion("only one")), // asked for two
		genResponse(t, goodQuestion("Q1"), goodQuestion("Q2")),
		valResponse(t, "A", "A"),
	)
	svc := New(mock, cfg, rand.New(rand.NewSource(1)), nil)

	batch, err := svc.GenerateBatch(context.Background(), GenerateInput{
		TopicName: "Linear Equations",
		ExamType:  "pre",
		Count:     2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(batch.Questions))
	}

	retryPrompt := mock.Calls[1].Messages[0].Content
	if !strings.Contains(retryPrompt, "Expected 2 questions, got 1") {
		t.Fatal("count-mismatch feedback missing from retry prompt")
	}
}

func TestGenerateBatch_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := New(mock, testConfig(), rand.New(rand.NewSource(1)), nil)

	_, err := svc.GenerateBatch(context.Background(), GenerateInput{Count: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}
