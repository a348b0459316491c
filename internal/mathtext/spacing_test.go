package mathtext

import "testing"

func TestSplitDerivationSteps(t *testing.T) {
	got := splitDerivationSteps(`$x+2=5$ $x=3$ $2x=6$`)
	want := "$x+2=5$\n$x=3$\n$2x=6$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Spans without comparison operators are not derivation steps.
	in := `$x$ $y$`
	if got := splitDerivationSteps(in); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestRepairWordSpacing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"word glued to digit", "she has3 apples", "she has 3 apples"},
		{"word glued to variable", "the value ofx", "the value of x"},
		{"variable glued to word", "split xinto parts", "split x into parts"},
		{"math span untouched", "see $x2$ here", "see $x2$ here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repairWordSpacing(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpaceAroundSpans(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"prose glued to span", "solve$x$for$y$", "solve $x$ for $y$"},
		{"colon glued to span", "Solve:$x+1=2$", "Solve: $x+1=2$"},
		{"already spaced", "solve $x$ now", "solve $x$ now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spaceAroundSpans(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrimSpanInterior(t *testing.T) {
	got := trimSpanInterior(`$ x + 1 $ and $y$`)
	want := `$x + 1$ and $y$`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMergeAdjacentSpans(t *testing.T) {
	got := mergeAdjacentSpans(`$2x$ + $5$`)
	want := `$2x + 5$`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Word separators keep the spans apart.
	in := `$x$ for $y$`
	if got := mergeAdjacentSpans(in); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestLiberateProseWords(t *testing.T) {
	got := liberateProseWords(`the $answer$ is $x$ and $ab$`)
	want := `the answer is $x$ and $ab$`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSpaceDelimiterPairs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"alnum before and letter after", "2$x$y", "2 $x$ y"},
		{"closing bracket before", "f(x)$x$", "f(x) $x$"},
		{"punctuation boundaries untouched", "($x$)", "($x$)"},
		{"invalid pair untouched", "$ x$ here", "$ x$ here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spaceDelimiterPairs(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFinalProseSpacing(t *testing.T) {
	got := finalProseSpacing("the result is-3points")
	want := "the result is -3 points"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
