package mathtext

import "testing"

func TestUnifyDelimiters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paren to inline", `\(x + 1\)`, `$x + 1$`},
		{"bracket to display", `\[x^2\]`, `$$x^2$$`},
		{"paren wrapping existing span", `\( $x+1$ \)`, `$x+1$`},
		{"plain text untouched", "no math here", "no math here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unifyDelimiters(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripDisplayBrackets(t *testing.T) {
	if got := stripDisplayBrackets(`$$[ x+1 ]$$`); got != `$$x+1$$` {
		t.Errorf("got %q, want %q", got, `$$x+1$$`)
	}
}

func TestIsolateDisplayMath_GluedBlocks(t *testing.T) {
	got := isolateDisplayMath("$$a+b$$$$c+d$$")
	want := "$$a+b$$\n$$c+d$$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIsolateDisplayMath_ListItem(t *testing.T) {
	got := isolateDisplayMath("- compute $$x=1$$ done")
	want := "- compute\n\n$$\nx=1\n$$\n\ndone"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIsolateDisplayMath_ListItemBeforeFence(t *testing.T) {
	got := isolateDisplayMath("- step\n$$\nx\n$$")
	want := "- step\n  \n$$\nx\n$$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBalanceDisplayDollars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"missing close", "$$x+2", "$$x+2$$"},
		{"missing open", "x+2$$", "$$x+2$$"},
		{"mid-line missing close", "intro $$x+2", "intro $$x+2$$"},
		{"balanced untouched", "$$x+2$$", "$$x+2$$"},
		{"fence lines untouched", "$$\nx=1\n$$", "$$\nx=1\n$$"},
		{"empty pair removed", "$$\n$$", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := balanceDisplayDollars(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCloseUnclosedCommand(t *testing.T) {
	got := closeUnclosedCommand(`the answer is $\frac{1}{2}`)
	want := `the answer is $\frac{1}{2}$`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// A stray $ with no command after it is left for the final repair pass.
	in := "ends with 5 $"
	if got := closeUnclosedCommand(in); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestRepairOddDollars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing stray dropped", "ends with 5 $", "ends with 5 "},
		{"math-like tail closed", "subtotal: $ 12 + 3", "subtotal: $ 12 + 3$"},
		{"balanced untouched", "price $5$ total", "price $5$ total"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repairOddDollars(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
