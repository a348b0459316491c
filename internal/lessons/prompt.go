package lessons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/tutorloop/internal/store"
)

const compressionSystemPrompt = `You are summarizing a math tutoring conversation. Create a concise summary that captures what the student misunderstood and what finally made the concept click, without losing important details.`

type promptInput struct {
	TopicName           string
	TopicDescription    string
	LessonType          string
	SessionNumber       int
	StudentModel        *store.StudentModel
	WrongQuestions      []WrongQuestion
	RemediationInsights string
}

func buildLessonPrompt(in promptInput) string {
	isRemediation := in.LessonType == "remediation"

	var b strings.Builder
	if isRemediation {
		b.WriteString("You are an expert SAT Math tutor creating a remediation lesson.\n\n")
	} else {
		b.WriteString("You are an expert SAT Math tutor creating a personalized lesson.\n\n")
	}

	fmt.Fprintf(&b, "TOPIC: %s\n", in.TopicName)
	fmt.Fprintf(&b, "DESCRIPTION: %s\n", in.TopicDescription)

	if m := in.StudentModel; m != nil && (len(m.Strengths) > 0 || len(m.Weaknesses) > 0) {
		b.WriteString("\nSTUDENT PROFILE:\n")
		fmt.Fprintf(&b, "- Strengths: %s\n", orNone(m.Strengths))
		fmt.Fprintf(&b, "- Weaknesses: %s\n", orNone(m.Weaknesses))
		fmt.Fprintf(&b, "- Misconceptions: %s\n", orNone(m.Misconceptions))
		fmt.Fprintf(&b, "- Mastery Level: %d%%\n", m.MasteryLevel)
	}

	if isRemediation && in.SessionNumber > 1 {
		fmt.Fprintf(&b, `
IMPORTANT: This is attempt #%d at remediation. The student has already seen a lesson on these concepts but still struggled. Use a DIFFERENT teaching approach:
- Try different analogies and examples
- Break concepts down into smaller steps
- Use more visual/concrete explanations
- Start from an even more fundamental level
`, in.SessionNumber)
	}

	if isRemediation {
		b.WriteString("\nThis is a REMEDIATION LESSON targeting specific concepts the student got wrong.\n")
	} else {
		b.WriteString("\nThis is an INITIAL LESSON teaching the fundamentals of this topic.\n")
	}

	if len(in.WrongQuestions) > 0 {
		b.WriteString("\nQUESTIONS THE STUDENT GOT WRONG (you MUST address each one):\n")
		for i, q := range in.WrongQuestions {
			fmt.Fprintf(&b, "\nQuestion %d: %s\n", i+1, q.QuestionText)
			fmt.Fprintf(&b, "Choices: %s\n", formatChoices(q.Choices))
			fmt.Fprintf(&b, "Correct Answer: %s\n", q.CorrectAnswer)
			fmt.Fprintf(&b, "Student's Answer: %s\n", studentAnswer(q))
			fmt.Fprintf(&b, "Explanation: %s\n", q.Explanation)
		}
	}

	if in.RemediationInsights != "" {
		fmt.Fprintf(&b, "\nINSIGHTS FROM REMEDIATION CONVERSATIONS:\n%s\n", in.RemediationInsights)
	}

	b.WriteString("\nWrite a comprehensive, engaging lesson in Markdown format. Use LaTeX for all math ($...$ inline, $$...$$ display).\n")
	b.WriteString(`
STRUCTURE YOUR LESSON AS FOLLOWS:

1. **Introduction** - Brief, motivating introduction to the concept
2. **Core Concepts** - Teach the underlying mathematical concepts clearly
   - Use clear definitions and properties
   - Provide intuitive explanations
3. **Worked Examples** - Walk through examples step by step
`)
	if len(in.WrongQuestions) > 0 {
		b.WriteString(`4. **Your Exam Questions Explained** - For EACH question the student got wrong:
   - Show the question
   - Explain why their answer was incorrect (or why they might have been unsure)
   - Walk through the correct solution step by step
   - Highlight the key concept or technique needed
`)
	}
	b.WriteString(`5. **Key Takeaways** - Summarize the most important points
6. **Video Resources** - Suggest 2-3 relevant Khan Academy or educational video topics (describe what to search for)

STYLE:
- Write at a high school level, friendly but not condescending
- Use encouraging language
- Break complex ideas into digestible steps
- Use analogies where helpful
- Bold key terms and formulas`)

	return b.String()
}

func buildCompressionUserMessage(transcript string) string {
	var b strings.Builder
	b.WriteString("Summarize the following tutoring conversations in at most five sentences. Focus on the misconceptions the student showed and how they were resolved.\n\n")
	b.WriteString(transcript)
	return b.String()
}

func formatChoices(choices map[string]string) string {
	letters := make([]string, 0, len(choices))
	for letter := range choices {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	parts := make([]string, len(letters))
	for i, letter := range letters {
		parts[i] = fmt.Sprintf("%s) %s", letter, choices[letter])
	}
	return strings.Join(parts, ", ")
}

func studentAnswer(q WrongQuestion) string {
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
		return "None identified yet"
	}
	return strings.Join(items, ", ")
}
