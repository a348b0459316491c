package lessons

import (
	"strings"
	"testing"

	"github.com/abhisek/tutorloop/internal/store"
)

func TestBuildLessonPrompt_InitialLesson(t *testing.T) {
	answer := "C"
	prompt := buildLessonPrompt(promptInput{
		TopicName:        "Linear Equations",
		TopicDescription: "Solving equations in one variable",
		LessonType:       "initial",
		SessionNumber:    1,
		StudentModel: &store.StudentModel{
			Strengths:    []string{"arithmetic"},
			Weaknesses:   []string{"negative coefficients"},
			MasteryLevel: 45,
		},
		WrongQuestions: []WrongQuestion{{
			QuestionText:  "Solve $2x = 6$.",
			Choices:       map[string]string{"B": "$2$", "A": "$3$"},
			CorrectAnswer: "A",
			UserAnswer:    &answer,
			Explanation:   "Divide both sides by 2.",
		}},
	})

	for _, want := range []string{
		"TOPIC: Linear Equations",
		"INITIAL LESSON",
		"- Strengths: arithmetic",
		"- Mastery Level: 45%",
		"Question 1: Solve $2x = 6$.",
		"Choices: A) $3$, B) $2$",
		"Student's Answer: C",
		"Your Exam Questions Explained",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "attempt #") {
		t.Error("initial lesson should not mention remediation attempts")
	}
}

func TestBuildLessonPrompt_RepeatRemediation(t *testing.T) {
	prompt := buildLessonPrompt(promptInput{
		TopicName:     "Linear Equations",
		LessonType:    "remediation",
		SessionNumber: 3,
	})

	if !strings.Contains(prompt, "REMEDIATION LESSON") {
		t.Error("prompt missing remediation framing")
	}
	if !strings.Contains(prompt, "attempt #3") {
		t.Error("prompt missing repeat-attempt instruction")
	}
	if strings.Contains(prompt, "Your Exam Questions Explained") {
		t.Error("prompt lists the exam-question section with no wrong questions")
	}
}

func TestBuildLessonPrompt_IDKAnswer(t *testing.T) {
	prompt := buildLessonPrompt(promptInput{
		TopicName:  "Linear Equations",
		LessonType: "initial",
		WrongQuestions: []WrongQuestion{{
			QuestionText:  "Solve $x - 1 = 0$.",
			Choices:       map[string]string{"A": "$1$"},
			CorrectAnswer: "A",
			IsIDK:         true,
		}},
	})

	if !strings.Contains(prompt, `Said "I don't know"`) {
		t.Error("prompt missing IDK rendering")
	}
}
