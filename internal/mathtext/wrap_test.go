package mathtext

import "testing"

func TestWrapBareMath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"bare frac",
			`the value \frac{1}{2} of the total`,
			`the value $\frac{1}{2}$ of the total`,
		},
		{
			"two bare fracs",
			`compare \frac{1}{2} and \frac{3}{4}`,
			`compare $\frac{1}{2}$ and $\frac{3}{4}$`,
		},
		{
			"left right group",
			`evaluate \left( x+1 \right) now`,
			`evaluate $\left( x+1 \right)$ now`,
		},
		{
			"comparison with operands",
			`for x \leq 3 holds`,
			`for $x \leq 3$ holds`,
		},
		{
			"word before operator stays whole",
			`all values \leq 3 count`,
			`all values $\leq 3$ count`,
		},
		{
			"bare operator",
			`multiply a \cdot b`,
			`multiply a $\cdot$ b`,
		},
		{
			"already wrapped untouched",
			`$x \leq 3$`,
			`$x \leq 3$`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapBareMath(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeFragmentedGroups(t *testing.T) {
	got := mergeFragmentedGroups(`$\left(2x$ $+$ $5\right)$`)
	want := `$\left(2x + 5\right)$`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// A complete group is left alone.
	in := `$\left(2x + 5\right)$`
	if got := mergeFragmentedGroups(in); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestWrapChoiceLiterals(t *testing.T) {
	got := wrapChoiceLiterals("A)5\nB) -3.5\nC) $x+1$\nD) two words")
	want := "A) $5$\nB) $-3.5$\nC) $x+1$\nD) two words"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
