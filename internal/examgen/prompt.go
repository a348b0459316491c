package examgen

import (
	"fmt"
	"strings"
)

// generationSystemPrompt primes the model to solve before writing. The
// worst observed failure mode is an explanation that second-guesses itself
// and lands on a different value than the keyed choice.
const generationSystemPrompt = `You are a precise SAT Math question writer. Every answer and explanation must be mathematically correct. Solve each problem fully before writing. Never second-guess or recompute within an explanation.`

const validationSystemPrompt = `You are a careful SAT Math validator. Do not assume the provided answer is correct.`

const examRequirements = `REQUIREMENTS:
- Each question must be SAT-style with 4 answer choices (A, B, C, D)
- Exactly ONE answer choice must be correct; the other three must be incorrect.
- Use LaTeX notation for ALL math: $...$ for inline, $$...$$ for display
- EVERY math expression must be wrapped in $...$, including in choice values — write "$\frac{2}{3}$" not "\frac{2}{3}"
- For inequalities, ALWAYS use LaTeX commands INSIDE $...$: write "$x \leq 3$" not "$x$ ≤ $3$" or "x \leq 3"
- NEVER write \leq, \geq, \neq, \frac, \left, \right, or ANY LaTeX command outside of $...$
- ALWAYS put a SPACE between a word and an opening $ — WRONG: "solve$x$" — CORRECT: "solve $x$"
- ALWAYS put a SPACE between a closing $ and the next word — WRONG: "$x = 3$and" — CORRECT: "$x = 3$ and"
- Questions should be at SAT difficulty level
- Vary the difficulty across questions
- Each question should test a distinct concept within the topic
- Do NOT repeat the same question structure — vary the problem types

MATHEMATICAL ACCURACY (critical — follow exactly):
1. Solve the problem completely in your head before writing anything. Confirm the numerical answer.
2. Write the explanation as ONE clean, linear solution path showing each algebraic step, with EACH step on its OWN line. The final line must state the answer unambiguously (e.g. "Therefore $x = 1$").
3. Write the four choices, placing the answer from step 2 under one of the letters (A-D). The other three choices must be distinct plausible distractors with different values.
4. Set correct_answer to the letter whose value matches the answer in the explanation.
5. Do NOT include "rechecking", "verifying", "however", "alternatively", or any second computation in the explanation. One path, one answer, done.
6. When multiplying or dividing by a negative number, only flip inequality signs for <, >, \leq, \geq. Do NOT flip for \neq.

NOT-EQUALS RULE (important):
- NEVER ask "Which of the following is a possible value" or "Which of the following is NOT a possible value" for a $\neq$ statement. Both phrasings produce ambiguous or multiple-answer questions.
- For a single-variable $\neq$ problem, the answer choices must be solution-set expressions (e.g. "$x \neq 2$"), never bare numbers. With bare numeric choices, every non-excluded value is technically correct.

SYSTEMS OF EQUATIONS — CONSISTENCY RULE (critical):
- When writing a question involving a system of equations, you MUST start from a known solution point (e.g. pick $x = 2$, $y = 3$ first, then build equations that are satisfied by those values).
- NEVER write two equations and a given value unless you have verified that the given value produces the SAME answer in EVERY equation in the system.
- To avoid inconsistency: pick the solution first, then create equations around it, then ask the question.

GRAPHING INEQUALITIES — NOT-EQUALS RULE (critical):
- If a question involves graphing $y \neq c$ or $x \neq c$, the correct graph must be a dashed line at the boundary with shading on BOTH sides (all values except the line).
- You MUST ensure one answer choice explicitly shows shading on both sides of the dashed line.
- Do NOT include graphing choices that all shade only one side for $\neq$.`

// buildExamPrompt constructs the generation user message from the input
// context. Feedback from a failed attempt is appended by the caller.
func buildExamPrompt(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TOPIC: %s\n", input.TopicName)
	fmt.Fprintf(&b, "DESCRIPTION: %s\n\n", input.TopicDescription)

	switch input.ExamType {
	case "pre":
		b.WriteString("This is a PRE-EXAM diagnostic. Generate questions that cover the full range of difficulty for this topic to assess the student's current understanding. Include easy, medium, and hard questions.\n")
	case "post":
		b.WriteString("This is a POST-EXAM assessment after the student has completed a lesson. Generate questions that test whether the student has learned the material. Focus on the concepts taught in the lesson.\n")
	default:
		b.WriteString("This is a REMEDIATION EXAM. Generate questions specifically targeting the concepts the student previously got wrong. Focus on testing understanding of previously missed concepts with different numbers/scenarios.\n")
	}

	if m := input.StudentModel; m != nil && (len(m.Strengths) > 0 || len(m.Weaknesses) > 0) {
		b.WriteString("\nSTUDENT PROFILE:\n")
		fmt.Fprintf(&b, "- Strengths: %s\n", orNone(m.Strengths))
		fmt.Fprintf(&b, "- Weaknesses: %s\n", orNone(m.Weaknesses))
		fmt.Fprintf(&b, "- Misconceptions: %s\n", orNone(m.Misconceptions))
		fmt.Fprintf(&b, "- Mastery Level: %d%%\n", m.MasteryLevel)
	}

	if len(input.PriorWrong) > 0 {
		b.WriteString("\nPREVIOUSLY MISSED QUESTIONS (generate new questions testing these same concepts):\n")
		for i, q := range input.PriorWrong {
			answer := "IDK"
			if q.UserAnswer != nil {
				answer = *q.UserAnswer
			}
			fmt.Fprintf(&b, "%d. %s (Correct: %s, Student answered: %s)\n", i+1, q.QuestionText, q.CorrectAnswer, answer)
		}
	}

	if len(input.AvoidQuestions) > 0 {
		b.WriteString("\nQUESTIONS TO AVOID REPEATING (do NOT reuse these exact questions or numbers):\n")
		for i, q := range input.AvoidQuestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
	}

	fmt.Fprintf(&b, "\nGenerate exactly %d multiple-choice questions for the SAT Math section.\n\n", input.Count)
	b.WriteString(examRequirements)

	return b.String()
}

// buildValidationPrompt asks for an independent solve of every question,
// ignoring the generator's claimed answers.
func buildValidationPrompt(questions []Question) string {
	var b strings.Builder

	b.WriteString("For each question, solve it and determine which answer choices (A-D) are correct.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Only use the question text and choices (ignore any provided correct_answer).\n")
	b.WriteString("- If more than one choice is correct, include all correct letters.\n")
	b.WriteString("- If no choices are correct, return an empty array for that question.\n")
	fmt.Fprintf(&b, "- You MUST return a result for EVERY question. The results array must have exactly %d items, with indices 1..%d in order.\n", len(questions), len(questions))
	b.WriteString(`- For graphing questions that ONLY involve a single $\neq$ inequality (e.g. $y \neq c$ or $x \neq c$ with no other inequalities), the ONLY correct graph shows a dashed boundary and shading on BOTH sides. One-sided shading is incorrect.
- For systems of inequalities involving $\neq$, a point is a solution only if it satisfies all strict inequalities and is NOT on any $\neq$ boundary line. If the point lies exactly on the excluded line, it is NOT a solution.
- For questions of the form "$ax + b \neq c$" that ask for an excluded value, the correct choice is the value that makes $ax + b = c$. All other values are possible.

QUESTIONS:
`)

	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.QuestionText)
		for _, letter := range choiceLetters {
			fmt.Fprintf(&b, "%s) %s\n", letter, q.Choices[letter])
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

var choiceLetters = []string{"A", "B", "C", "D"}

func orNone(items []string) string {
	if len(items) == 0 {
		return "None identified yet"
	}
	return strings.Join(items, ", ")
}
