package studentmodel

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutorloop/internal/store"
)

type promptInput struct {
	TopicName           string
	Current             *store.StudentModel
	ExamResults         []*store.ExamQuestion
	RemediationInsights string
}

func buildUpdatePrompt(in promptInput) string {
	correct := 0
	for _, q := range in.ExamResults {
		if q.IsCorrect != nil && *q.IsCorrect {
			correct++
		}
	}
	total := len(in.ExamResults)
	score := 0
	if total > 0 {
		score = int(float64(correct)/float64(total)*100 + 0.5)
	}

	var b strings.Builder
	b.WriteString("You are an AI tutor analyzing a student's performance to update their learning profile.\n\n")
	fmt.Fprintf(&b, "TOPIC: %s\n", in.TopicName)

	b.WriteString("\nCURRENT STUDENT MODEL:\n")
	fmt.Fprintf(&b, "- Strengths: %s\n", orNone(in.Current.Strengths))
	fmt.Fprintf(&b, "- Weaknesses: %s\n", orNone(in.Current.Weaknesses))
	fmt.Fprintf(&b, "- Misconceptions: %s\n", orNone(in.Current.Misconceptions))
	fmt.Fprintf(&b, "- Current Mastery Level: %d%%\n", in.Current.MasteryLevel)

	fmt.Fprintf(&b, "\nEXAM RESULTS (%d/%d correct, %d%%):\n", correct, total, score)
	for i, q := range in.ExamResults {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.QuestionText)
		fmt.Fprintf(&b, "   Correct: %s | Student: %s | %s\n", q.CorrectAnswer, studentAnswer(q), verdict(q))
	}

	if in.RemediationInsights != "" {
		fmt.Fprintf(&b, "\nREMEDIATION INSIGHTS:\n%s\n", in.RemediationInsights)
	}

	b.WriteString(`
Based on this data, update the student model:
1. STRENGTHS: What concepts has the student demonstrated understanding of? (Keep existing valid strengths, add new ones)
2. WEAKNESSES: What areas need more work? (Update: remove resolved weaknesses, add new ones)
3. MISCONCEPTIONS: What specific misunderstandings does the student have? (Be precise, e.g. "Confuses slope with y-intercept" not just "doesn't understand lines")
4. MASTERY LEVEL: 0-100 score reflecting overall understanding of this topic

Be specific and actionable in your descriptions.`)

	return b.String()
}

func studentAnswer(q *store.ExamQuestion) string {
	if q.IsIDK {
		return "IDK"
	}
	if q.UserAnswer == nil {
		return "No answer"
	}
	return *q.UserAnswer
}

func verdict(q *store.ExamQuestion) string {
	if q.IsCorrect != nil && *q.IsCorrect {
		return "CORRECT"
	}
	return "WRONG"
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "None identified"
	}
	return strings.Join(items, ", ")
}
