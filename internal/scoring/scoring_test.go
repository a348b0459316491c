package scoring

import "testing"

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    int
	}{
		{"empty", nil, 0},
		{"all correct", []Result{{Correct: boolPtr(true)}, {Correct: boolPtr(true)}}, 100},
		{"all wrong", []Result{{Correct: boolPtr(false)}, {Correct: boolPtr(false)}}, 0},
		{"ungraded counts as wrong", []Result{{Correct: nil}, {Correct: boolPtr(true)}}, 50},
		{"one third rounds to 33", []Result{{Correct: boolPtr(true)}, {Correct: boolPtr(false)}, {Correct: boolPtr(false)}}, 33},
		{"two thirds rounds to 67", []Result{{Correct: boolPtr(true)}, {Correct: boolPtr(true)}, {Correct: boolPtr(false)}}, 67},
		{"four of five is exactly 80", []Result{
			{Correct: boolPtr(true)}, {Correct: boolPtr(true)}, {Correct: boolPtr(true)},
			{Correct: boolPtr(true)}, {Correct: boolPtr(false)},
		}, 80},
		{"half rounds up", []Result{{Correct: boolPtr(true)}, {Correct: boolPtr(false)}, {Correct: boolPtr(false)}, {Correct: boolPtr(false)}, {Correct: boolPtr(true)}, {Correct: boolPtr(true)}, {Correct: boolPtr(false)}, {Correct: boolPtr(false)}}, 38},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateScore(tt.results); got != tt.want {
				t.Errorf("CalculateScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGradeAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  *string
		isIDK   bool
		correct string
		want    bool
	}{
		{"exact match", strPtr("B"), false, "B", true},
		{"mismatch", strPtr("A"), false, "B", false},
		{"case sensitive", strPtr("b"), false, "B", false},
		{"nil answer", nil, false, "B", false},
		{"idk overrides matching answer", strPtr("B"), true, "B", false},
		{"idk with nil answer", nil, true, "B", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradeAnswer(tt.answer, tt.isIDK, tt.correct); got != tt.want {
				t.Errorf("GradeAnswer() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestIsPassing(t *testing.T) {
	if !IsPassing(80) {
		t.Error("exactly 80 must pass")
	}
	if !IsPassing(100) {
		t.Error("100 must pass")
	}
	if IsPassing(79) {
		t.Error("79 must not pass")
	}
	if IsPassing(0) {
		t.Error("0 must not pass")
	}
}

func TestWrongResults(t *testing.T) {
	results := []Result{
		{Correct: boolPtr(true)},
		{Correct: boolPtr(false)},
		{Correct: boolPtr(true), IsIDK: true},
		{Correct: nil},
	}
	got := WrongResults(results)
	want := []int{1, 2}
	if len(got) != len(want) {
		t.Fatalf("WrongResults() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WrongResults()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestQuestionCount(t *testing.T) {
	if QuestionCount("pre") != 5 || QuestionCount("post") != 5 {
		t.Error("pre and post exams have 5 questions")
	}
	if QuestionCount("remediation") != 3 {
		t.Error("remediation exams have 3 questions")
	}
}
