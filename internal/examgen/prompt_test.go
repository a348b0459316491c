package examgen

import (
	"strings"
	"testing"

	"github.com/abhisek/tutorloop/internal/store"
)

func TestBuildExamPrompt_IncludesContext(t *testing.T) {
	answer := "B"
	input := GenerateInput{
		TopicName:        "Systems of Equations",
		TopicDescription: "Solving pairs of linear equations",
		ExamType:         "remediation",
		Count:            3,
		StudentModel: &store.StudentModel{
			Strengths:    []string{"substitution"},
			Weaknesses:   []string{"elimination"},
			MasteryLevel: 45,
		},
		PriorWrong: []PriorWrongQuestion{
			{QuestionText: "Solve the system...", CorrectAnswer: "A", UserAnswer: &answer},
			{QuestionText: "Find $y$ when...", CorrectAnswer: "C", UserAnswer: nil},
		},
		AvoidQuestions: []string{"An earlier remediation question"},
	}

	prompt := buildExamPrompt(input)

	for _, want := range []string{
		"TOPIC: Systems of Equations",
		"REMEDIATION EXAM",
		"Generate exactly 3 multiple-choice questions",
		"Strengths: substitution",
		"Weaknesses: elimination",
		"Student answered: B",
		"Student answered: IDK",
		"QUESTIONS TO AVOID REPEATING",
		"An earlier remediation question",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildExamPrompt_OmitsEmptySections(t *testing.T) {
	prompt := buildExamPrompt(GenerateInput{
		TopicName: "Linear Equations",
		ExamType:  "pre",
		Count:     5,
	})

	if strings.Contains(prompt, "STUDENT PROFILE") {
		t.Error("empty student model should not produce a profile section")
	}
	if strings.Contains(prompt, "PREVIOUSLY MISSED") {
		t.Error("no prior wrong questions expected")
	}
	if strings.Contains(prompt, "AVOID REPEATING") {
		t.Error("no avoid list expected")
	}
	if !strings.Contains(prompt, "PRE-EXAM diagnostic") {
		t.Error("pre-exam framing missing")
	}
}

func TestBuildValidationPrompt_ListsEveryQuestion(t *testing.T) {
	questions := []Question{
		{QuestionText: "First stem", Choices: map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"}},
		{QuestionText: "Second stem", Choices: map[string]string{"A": "5", "B": "6", "C": "7", "D": "8"}},
	}

	prompt := buildValidationPrompt(questions)

	for _, want := range []string{
		"exactly 2 items, with indices 1..2",
		"1. First stem",
		"2. Second stem",
		"A) 1",
		"D) 8",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("validation prompt missing %q", want)
		}
	}
}
