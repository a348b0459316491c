package remediation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/tutorloop/internal/store"
)

const latexStyleRules = `Use LaTeX ($...$) for any math in your response - even single variables like $x$ or $y$.
NEVER put spaces after opening $ or before closing $.
ALWAYS put a SPACE before and after every $...$ expression in prose (WRONG: "the value of$y$when$x = 2$", CORRECT: "the value of $y$ when $x = 2$").
NEVER write bare LaTeX like \frac or \left outside $...$ delimiters.`

type startInput struct {
	TopicName    string
	Question     *store.ExamQuestion
	StudentModel *store.StudentModel
}

func buildStartPrompt(in startInput) string {
	q := in.Question

	var b strings.Builder
	b.WriteString(`You are a Socratic SAT Math tutor. A student got this question wrong (or said "I don't know"). Your job is to guide them to understanding through hints and sub-questions, NOT by giving the answer directly.` + "\n\n")

	fmt.Fprintf(&b, "TOPIC: %s\n", in.TopicName)
	if m := in.StudentModel; m != nil {
		b.WriteString("\nSTUDENT PROFILE:\n")
		fmt.Fprintf(&b, "- Known misconceptions: %s\n", orNone(m.Misconceptions))
		fmt.Fprintf(&b, "- Weaknesses: %s\n", orNone(m.Weaknesses))
	}

	fmt.Fprintf(&b, "\nTHE QUESTION:\n%s\n", q.QuestionText)
	fmt.Fprintf(&b, "\nCHOICES:\n%s\n", formatChoices(q.Choices))
	fmt.Fprintf(&b, "\nCORRECT ANSWER: %s\n", q.CorrectAnswer)
	fmt.Fprintf(&b, "STUDENT'S ANSWER: %s\n", studentAnswer(q))
	fmt.Fprintf(&b, "EXPLANATION: %s\n", q.Explanation)

	b.WriteString(`
Begin the remediation by:
1. Acknowledging the student's attempt (be encouraging, not judgmental)
2. Asking a simpler sub-question or giving a hint that guides them toward the key concept
3. Do NOT reveal the correct answer yet

` + latexStyleRules + `
Keep your response concise (2-4 sentences plus a question).
Do NOT start your response with "Tutor:", "Assistant:", or any role label. Begin directly with your message.`)

	return b.String()
}

type respondInput struct {
	TopicName      string
	Question       *store.ExamQuestion
	History        []*store.Message
	StudentMessage string
}

func buildRespondPrompt(in respondInput) string {
	q := in.Question

	var b strings.Builder
	b.WriteString("You are a Socratic SAT Math tutor guiding a student through a problem they got wrong.\n\n")

	fmt.Fprintf(&b, "TOPIC: %s\n", in.TopicName)
	fmt.Fprintf(&b, "\nORIGINAL QUESTION:\n%s\n", q.QuestionText)
	fmt.Fprintf(&b, "\nCHOICES:\n%s\n", formatChoices(q.Choices))
	fmt.Fprintf(&b, "\nCORRECT ANSWER: %s\n", q.CorrectAnswer)
	fmt.Fprintf(&b, "FULL EXPLANATION: %s\n", q.Explanation)

	b.WriteString("\nCONVERSATION SO FAR:\n")
	for i, m := range in.History {
		if i > 0 {
			b.WriteString("\n")
		}
		role := "student"
		if m.Role == "assistant" {
			role = "assistant"
		}
		fmt.Fprintf(&b, "[%s]: %s\n", role, m.Content)
	}

	fmt.Fprintf(&b, "\nStudent's latest message: %s\n", in.StudentMessage)

	b.WriteString(`
INSTRUCTIONS:
- If the student is making progress, encourage them and ask a follow-up question to deepen understanding
- If the student is stuck, provide a more direct hint
- If the student demonstrates clear understanding of the concept, mark the conversation as RESOLVED
- Keep responses concise (2-4 sentences)
- Use LaTeX ($...$) for ALL math including single variables - no spaces after opening $ or before closing $, ALWAYS space before and after every $...$ in prose, NEVER write bare LaTeX (\frac, \left, \right) outside $...$
- Be warm and encouraging
- After 4-5 exchanges, if the student is still struggling, explain the solution clearly and mark as RESOLVED
- IMPORTANT: Do NOT start your response with "Tutor:", "Assistant:", or any role label. Begin directly with your message.`)

	return b.String()
}

func formatChoices(choices map[string]string) string {
	letters := make([]string, 0, len(choices))
	for letter := range choices {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	lines := make([]string, len(letters))
	for i, letter := range letters {
		lines[i] = fmt.Sprintf("%s) %s", letter, choices[letter])
	}
	return strings.Join(lines, "\n")
}

func studentAnswer(q *store.ExamQuestion) string {
	if q.IsIDK {
		return `Said "I don't know"`
	}
	if q.UserAnswer == nil {
		return "No answer"
	}
	return *q.UserAnswer
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "None yet"
	}
	return strings.Join(items, ", ")
}
