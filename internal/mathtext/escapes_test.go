package mathtext

import "testing"

func TestRecoverCorruptedEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newline family neq", "x \neq 5", `x \neq 5`},
		{"newline family at end", "2\neq", `2\neq`},
		{"form feed frac", "\frac{1}{2}", `\frac{1}{2}`},
		{"carriage return right", "\right)", `\right)`},
		{"tab text", "\text{sum}", `\text{sum}`},
		{"backspace boxed", "\boxed{4}", `\boxed{4}`},
		{"double escaped command", `\\frac{y^4}{y^2}`, `\frac{y^4}{y^2}`},
		{"intact command untouched", `already \neq fine`, `already \neq fine`},
		{"ordinary line break untouched", "first\nsecond", "first\nsecond"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recoverCorruptedEscapes(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeUnicodeMinus(t *testing.T) {
	if got := normalizeUnicodeMinus("−5 − x"); got != "-5 - x" {
		t.Errorf("got %q, want %q", got, "-5 - x")
	}
}

func TestRecoverBareInequalities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare leq", "x leq 5", `x \leq 5`},
		{"bare neq at start", "neq 3", `\neq 3`},
		{"split across line break", "x \\\nleq 5", `x \leq 5`},
		{"word suffix untouched", "bleq stays", "bleq stays"},
		{"escaped form untouched", `x \leq 5`, `x \leq 5`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recoverBareInequalities(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
