package examgen

import "testing"

func TestDuplicateChoiceValues(t *testing.T) {
	tests := []struct {
		name    string
		choices map[string]string
		want    int
	}{
		{
			name:    "distinct values",
			choices: map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"},
			want:    0,
		},
		{
			name:    "whitespace variants collide",
			choices: map[string]string{"A": "$x = 2$", "B": " $x  =  2$ ", "C": "3", "D": "4"},
			want:    1,
		},
		{
			name:    "two duplicate pairs",
			choices: map[string]string{"A": "5", "B": "5", "C": "7", "D": "7"},
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := duplicateChoiceValues(tt.choices)
			if len(got) != tt.want {
				t.Fatalf("duplicateChoiceValues() = %v, want %d values", got, tt.want)
			}
			if hasDuplicateChoiceValues(tt.choices) != (tt.want > 0) {
				t.Fatalf("hasDuplicateChoiceValues() disagrees with duplicate list %v", got)
			}
		})
	}
}

func TestIsGraphingNotEquals(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "single not-equals graph",
			text: `Which graph represents the solution of $y \neq 2$ on the number line?`,
			want: true,
		},
		{
			name: "mixed inequality system",
			text: `Which graph represents the solution of $y \neq 2$ and $y \leq 5$?`,
			want: false,
		},
		{
			name: "not-equals without graphing",
			text: `If $x \neq 3$, what is $x + 1$?`,
			want: false,
		},
		{
			name: "graphing without not-equals",
			text: `Which graph represents $y = 2x + 1$?`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isGraphingNotEquals(tt.text); got != tt.want {
				t.Fatalf("isGraphingNotEquals(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasBothSidesShading(t *testing.T) {
	with := map[string]string{
		"A": "A dashed line at $y = 2$ with shading on both sides",
		"B": "A solid line at $y = 2$ shaded above",
		"C": "A dashed line shaded below",
		"D": "A solid line shaded below",
	}
	if !hasBothSidesShading(with) {
		t.Fatal("expected both-sides shading to be detected")
	}

	without := map[string]string{
		"A": "A dashed line shaded above",
		"B": "A solid line shaded above",
		"C": "A dashed line shaded below",
		"D": "A solid line shaded below",
	}
	if hasBothSidesShading(without) {
		t.Fatal("expected no both-sides shading")
	}
}

func TestParseNotEqualsExcludedValue(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{
			name:   "full linear form",
			text:   `If $3x + 2 \neq 8$, which of the following is not a possible value of $x$?`,
			want:   2,
			wantOK: true,
		},
		{
			name:   "implicit coefficient",
			text:   `If $x \neq 7$, which of the following is not a possible value of $x$?`,
			want:   7,
			wantOK: true,
		},
		{
			name:   "negative coefficient",
			text:   `If $-2x + 4 \neq 10$, which of the following is not a possible value of $x$?`,
			want:   -3,
			wantOK: true,
		},
		{
			name:   "missing trigger phrase",
			text:   `Solve $3x + 2 \neq 8$ for $x$.`,
			wantOK: false,
		},
		{
			name:   "no linear pattern",
			text:   `Which of the following is not a possible value of $x$ if $x^2 > 4$?`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseNotEqualsExcludedValue(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("parseNotEqualsExcludedValue(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("parseNotEqualsExcludedValue(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestChoiceForValue(t *testing.T) {
	choices := map[string]string{"A": "$4$", "B": "$-3$", "C": "$0.5$", "D": "seven"}

	if letter, ok := choiceForValue(choices, 4); !ok || letter != "A" {
		t.Fatalf("choiceForValue(4) = %q, %v", letter, ok)
	}
	if letter, ok := choiceForValue(choices, -3); !ok || letter != "B" {
		t.Fatalf("choiceForValue(-3) = %q, %v", letter, ok)
	}
	if letter, ok := choiceForValue(choices, 0.5); !ok || letter != "C" {
		t.Fatalf("choiceForValue(0.5) = %q, %v", letter, ok)
	}
	if _, ok := choiceForValue(choices, 7); ok {
		t.Fatal("expected no match for 7")
	}
}

func TestHasBannedPossibleValuePhrasing(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "negative phrasing",
			text: `If $2x \neq 6$, which of the following is NOT a possible value for $x$?`,
			want: true,
		},
		{
			name: "positive phrasing",
			text: `If $2x \neq 6$, which of the following is a possible value for $x$?`,
			want: true,
		},
		{
			name: "no not-equals in stem",
			text: `Which of the following is a possible value of $x$ if $x > 3$?`,
			want: false,
		},
		{
			name: "not-equals without the phrasing",
			text: `If $2x \neq 6$, what value is excluded for $x$?`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasBannedPossibleValuePhrasing(tt.text); got != tt.want {
				t.Fatalf("hasBannedPossibleValuePhrasing(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsScalarNotEqualsSolve(t *testing.T) {
	scalar := map[string]string{"A": "$2$", "B": "$3$", "C": "$-1$", "D": "$0$"}
	setForm := map[string]string{"A": `$x \neq 2$`, "B": `$x \neq 3$`, "C": `$x \neq -1$`, "D": `$x \neq 0$`}

	tests := []struct {
		name    string
		text    string
		choices map[string]string
		want    bool
	}{
		{
			name:    "scalar choices on not-equals solve",
			text:    `Solve $2x + 1 \neq 5$ for $x$.`,
			choices: scalar,
			want:    true,
		},
		{
			name:    "set-form choices pass",
			text:    `Solve $2x + 1 \neq 5$ for $x$.`,
			choices: setForm,
			want:    false,
		},
		{
			name:    "scalar choices on an equation are fine",
			text:    `Solve $2x + 1 = 5$ for $x$.`,
			choices: scalar,
			want:    false,
		},
		{
			name:    "not-equals without solve verb",
			text:    `The relation $2x + 1 \neq 5$ is graphed below.`,
			choices: scalar,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isScalarNotEqualsSolve(tt.text, tt.choices); got != tt.want {
				t.Fatalf("isScalarNotEqualsSolve(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnswerMismatch(t *testing.T) {
	base := Question{
		QuestionText:  `What is $2 + 2$?`,
		Choices:       map[string]string{"A": "$4$", "B": "$5$", "C": "$6$", "D": "$7$"},
		CorrectAnswer: "A",
	}

	if answerMismatch(base, []string{"A"}) {
		t.Fatal("agreement flagged as mismatch")
	}
	if !answerMismatch(base, []string{"B"}) {
		t.Fatal("disagreement not flagged")
	}
	if !answerMismatch(base, []string{"A", "B"}) {
		t.Fatal("multiple correct choices not flagged")
	}
	if !answerMismatch(base, []string{}) {
		t.Fatal("no correct choices not flagged")
	}
	if !answerMismatch(base, nil) {
		t.Fatal("missing result not flagged")
	}
}

func TestAnswerMismatch_ExcludedValueTolerance(t *testing.T) {
	q := Question{
		QuestionText:  `If $3x + 2 \neq 8$, which value is not a possible value of $x$?`,
		Choices:       map[string]string{"A": "$2$", "B": "$3$", "C": "$4$", "D": "$5$"},
		CorrectAnswer: "A",
	}

	// The validator picked a different letter, but the stem's own
	// coefficients solve to 2, which sits under the claimed answer.
	if answerMismatch(q, []string{"B"}) {
		t.Fatal("excluded-value disagreement should be tolerated")
	}

	// Same disagreement with the claimed answer not holding the excluded
	// value is a real defect.
	q.CorrectAnswer = "C"
	if !answerMismatch(q, []string{"B"}) {
		t.Fatal("disagreement without the excluded value under the claim must be flagged")
	}
}
