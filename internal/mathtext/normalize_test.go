package mathtext

import "testing"

func TestNormalize_GluedProse(t *testing.T) {
	got := Normalize("solve$x$for$y$when$x=2$")
	want := "solve $x$ for $y$ when $x=2$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_CorruptedEscape(t *testing.T) {
	// \neq whose backslash was consumed as a JSON \n escape.
	got := Normalize("Find the set where 3x + 2 \neq 5.")
	want := `Find the set where 3x + $2 \neq 5$.`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_DoubleEscapedCommands(t *testing.T) {
	got := Normalize(`Simplify: $\\frac{y^4}{y^2} \\cdot y^3$`)
	want := `Simplify: $\frac{y^4}{y^2} \cdot y^3$`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_GluedDisplayBlocks(t *testing.T) {
	got := Normalize("Steps:\n$$x+1=2$$$$x=1$$")
	want := "Steps:\n$$x+1=2$$\n$$x=1$$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"solve$x$for$y$when$x=2$",
		"Find the set where 3x + 2 \neq 5.",
		`Simplify: $\\frac{y^4}{y^2} \\cdot y^3$`,
		"Steps:\n$$x+1=2$$$$x=1$$",
		"A)5\nB) -3.5",
		`the value \frac{1}{2} of the total`,
		"$$\nx+1=2\n$$",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if twice != once {
			t.Errorf("not idempotent for %q:\n once: %q\ntwice: %q", in, once, twice)
		}
	}
}
