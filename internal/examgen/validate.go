package examgen

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/tutorloop/internal/llm"
)

// validationOutput is the raw validator response before checking.
type validationOutput struct {
	Results []validationResult `json:"results"`
}

type validationResult struct {
	Index          int      `json:"index"`
	Reasoning      string   `json:"reasoning"`
	CorrectChoices []string `json:"correct_choices"`
}

// report collects the outcome of one validation plus detector pass over a
// batch. All index slices are 1-based, matching question numbering.
type report struct {
	// correctByIndex holds the validator's fresh-solve results.
	correctByIndex map[int][]string

	// missingValidation is set when the validator never produced a
	// complete result set for the batch.
	missingValidation bool

	duplicateIndexes      []int
	incorrectIndexes      []int
	graphingIndexes       []int
	bannedPhrasingIndexes []int
	scalarChoiceIndexes   []int
}

func (r *report) pass() bool {
	return !r.missingValidation &&
		len(r.duplicateIndexes) == 0 &&
		len(r.incorrectIndexes) == 0 &&
		len(r.graphingIndexes) == 0 &&
		len(r.bannedPhrasingIndexes) == 0 &&
		len(r.scalarChoiceIndexes) == 0
}

// invalidIndexes returns the union of all per-question defects, sorted.
// Missing validation is a batch-level defect and is not included.
func (r *report) invalidIndexes() []int {
	seen := make(map[int]bool)
	var out []int
	for _, group := range [][]int{
		r.duplicateIndexes,
		r.incorrectIndexes,
		r.graphingIndexes,
		r.bannedPhrasingIndexes,
		r.scalarChoiceIndexes,
	} {
		for _, i := range group {
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	sort.Ints(out)
	return out
}

// feedback builds the consolidated defect description injected into the
// next generation prompt.
func (r *report) feedback() string {
	var parts []string
	if r.missingValidation {
		parts = append(parts, "Validator did not return results for every question.")
	}
	if len(r.duplicateIndexes) > 0 {
		parts = append(parts, fmt.Sprintf("Duplicate choice values in questions: %s", joinIndexes(r.duplicateIndexes)))
	}
	if len(r.incorrectIndexes) > 0 {
		parts = append(parts, fmt.Sprintf("Invalid or non-unique correct answers in questions: %s", joinIndexes(r.incorrectIndexes)))
	}
	if len(r.graphingIndexes) > 0 {
		parts = append(parts, fmt.Sprintf("Graphing not-equals questions missing both-sides shading: %s", joinIndexes(r.graphingIndexes)))
	}
	if len(r.bannedPhrasingIndexes) > 0 {
		parts = append(parts, fmt.Sprintf(`Questions using banned "possible value" phrasing for not-equals: %s`, joinIndexes(r.bannedPhrasingIndexes)))
	}
	if len(r.scalarChoiceIndexes) > 0 {
		parts = append(parts, fmt.Sprintf("Not-equals solve questions with bare numeric choices: %s", joinIndexes(r.scalarChoiceIndexes)))
	}
	return strings.Join(parts, " | ")
}

func joinIndexes(idx []int) string {
	strs := make([]string, len(idx))
	for i, n := range idx {
		strs[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(strs, ", ")
}

// validateQuestions runs the validation round-trip and all deterministic
// detectors over the batch. The validation call itself is retried when the
// returned result set doesn't cover every question index.
func (s *Service) validateQuestions(ctx context.Context, questions []Question) (*report, error) {
	ctx = llm.WithPurpose(ctx, "exam-validation")

	var validated *validationOutput
	for attempt := 1; attempt <= s.cfg.MaxValidationAttempts; attempt++ {
		req := llm.Request{
			System: validationSystemPrompt,
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: buildValidationPrompt(questions)},
			},
			Schema:      ValidationSchema,
			MaxTokens:   s.cfg.MaxTokens,
			Temperature: 0,
		}

		resp, err := s.provider.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("exam validation failed: %w", err)
		}

		var out validationOutput
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			return nil, fmt.Errorf("failed to parse validation response: %w", err)
		}

		if completeResultSet(out.Results, len(questions)) {
			validated = &out
			break
		}
	}

	r := &report{correctByIndex: make(map[int][]string)}
	if validated != nil {
		for _, item := range validated.Results {
			r.correctByIndex[item.Index] = item.CorrectChoices
		}
	}

	for i, q := range questions {
		index := i + 1

		if _, ok := r.correctByIndex[index]; !ok {
			r.missingValidation = true
		}

		if hasDuplicateChoiceValues(q.Choices) {
			r.duplicateIndexes = append(r.duplicateIndexes, index)
		}
		if answerMismatch(q, r.correctByIndex[index]) {
			r.incorrectIndexes = append(r.incorrectIndexes, index)
		}
		if isGraphingNotEquals(q.QuestionText) && !hasBothSidesShading(q.Choices) {
			r.graphingIndexes = append(r.graphingIndexes, index)
		}
		if hasBannedPossibleValuePhrasing(q.QuestionText) {
			r.bannedPhrasingIndexes = append(r.bannedPhrasingIndexes, index)
		}
		if isScalarNotEqualsSolve(q.QuestionText, q.Choices) {
			r.scalarChoiceIndexes = append(r.scalarChoiceIndexes, index)
		}
	}

	return r, nil
}

// completeResultSet checks that results has exactly one entry per question
// index, in order.
func completeResultSet(results []validationResult, count int) bool {
	if len(results) != count {
		return false
	}
	for i, item := range results {
		if item.Index != i+1 {
			return false
		}
	}
	return true
}

// answerMismatch reports whether the validator's fresh solve disagrees
// with the generator's claimed answer. A disagreement is tolerated for the
// not-equals excluded-value idiom: when the stem's own coefficients solve
// to a value that appears among the choices under the claimed letter, the
// validator's divergent phrasing is not treated as a defect.
func answerMismatch(q Question, correctChoices []string) bool {
	if correctChoices == nil {
		// No validation result at all; missingValidation covers this.
		return true
	}
	if len(correctChoices) != 1 {
		return true
	}
	if correctChoices[0] == q.CorrectAnswer {
		return false
	}

	if excluded, ok := parseNotEqualsExcludedValue(q.QuestionText); ok {
		if letter, found := choiceForValue(q.Choices, excluded); found && letter == q.CorrectAnswer {
			return false
		}
	}
	return true
}
