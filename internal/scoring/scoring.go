// Package scoring holds the pure grading and scoring rules of the
// learning loop: percentage scores, the pass threshold, and per-answer
// correctness. It has no dependencies and no side effects.
package scoring

import "math"

// Loop constants. These are business rules, not tunables.
const (
	// PassThreshold is the minimum percentage score to pass an exam.
	PassThreshold = 80

	// MaxRemediationLoops is the number of remediation cycles a learner
	// gets before the session fails.
	MaxRemediationLoops = 3

	PreExamQuestionCount         = 5
	PostExamQuestionCount        = 5
	RemediationExamQuestionCount = 3
)

// Result is the correctness outcome of a single graded question.
// Correct is nil when the question has not been graded; ungraded
// questions count as incorrect.
type Result struct {
	Correct *bool
	IsIDK   bool
}

// CalculateScore returns the percentage of correct results, rounded
// half-up. An empty slice scores 0.
func CalculateScore(results []Result) int {
	if len(results) == 0 {
		return 0
	}
	correct := 0
	for _, r := range results {
		if r.Correct != nil && *r.Correct {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(results)) * 100))
}

// GradeAnswer reports whether a submitted answer is correct. An "I don't
// know" response is always incorrect regardless of the answer value.
// Comparison is exact and case-sensitive.
func GradeAnswer(answer *string, isIDK bool, correctAnswer string) bool {
	return !isIDK && answer != nil && *answer == correctAnswer
}

// IsPassing reports whether score meets the pass threshold.
func IsPassing(score int) bool {
	return score >= PassThreshold
}

// WrongResults returns the indexes of results that were answered
// incorrectly or marked "I don't know". Ungraded results are skipped;
// they belong to questions that were never submitted.
func WrongResults(results []Result) []int {
	var wrong []int
	for i, r := range results {
		if r.IsIDK || (r.Correct != nil && !*r.Correct) {
			wrong = append(wrong, i)
		}
	}
	return wrong
}

// QuestionCount returns the expected number of questions for an exam type.
// Unknown exam types fall back to the remediation count, the smallest.
func QuestionCount(examType string) int {
	switch examType {
	case "pre":
		return PreExamQuestionCount
	case "post":
		return PostExamQuestionCount
	default:
		return RemediationExamQuestionCount
	}
}
