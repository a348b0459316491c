package mathtext

import (
	"regexp"
	"strings"
)

// mathSpanRe matches an existing math span: display form first so a
// $$...$$ block is never consumed as two broken inline spans.
var mathSpanRe = regexp.MustCompile(`\$\$[^$]*\$\$|\$[^$\n]+\$`)

// rewriteOutsideMath applies fn only to the text segments that lie outside
// existing $...$ / $$...$$ spans. Rewrites that wrap bare LaTeX must go
// through this helper or they would nest delimiters inside existing math.
func rewriteOutsideMath(s string, fn func(string) string) string {
	spans := mathSpanRe.FindAllStringIndex(s, -1)
	if len(spans) == 0 {
		return fn(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	prev := 0
	for _, span := range spans {
		b.WriteString(fn(s[prev:span[0]]))
		b.WriteString(s[span[0]:span[1]])
		prev = span[1]
	}
	b.WriteString(fn(s[prev:]))
	return b.String()
}

// maxFixedPointIterations caps the fixed-point loops. Every pass below
// strictly reduces a measurable defect, so convergence is expected well
// before the cap; the cap guards against a non-converging regex interaction.
const maxFixedPointIterations = 50

// fixedPoint re-applies pass until the output stops changing.
func fixedPoint(s string, pass func(string) string) string {
	for range maxFixedPointIterations {
		next := pass(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

// eachLine applies fn to every line of s, preserving line separators.
func eachLine(s string, fn func(string) string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}

// countUnescapedDollars counts $ characters not preceded by a backslash.
func countUnescapedDollars(line string) int {
	count := 0
	for i := 0; i < len(line); i++ {
		if line[i] == '$' && (i == 0 || line[i-1] != '\\') {
			count++
		}
	}
	return count
}
