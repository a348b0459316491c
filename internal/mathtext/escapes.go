package mathtext

import (
	"regexp"
	"strings"
)

// LaTeX commands whose leading backslash gets swallowed by JSON string
// escape interpretation: \neq arrives as a literal newline + "eq", \frac
// as form feed + "rac", \right as CR + "ight", \text as tab + "ext",
// \boxed as backspace + "oxed". The alternations are ordered longest
// first because Go regexp alternation is leftmost-first.
var (
	corruptNewlineRe   = regexp.MustCompile(`\n(otin|abla|leq|geq|mid|eq|eg|ot|u|i)([^a-zA-Z]|$)`)
	corruptTabRe       = regexp.MustCompile(`\t(riangle|extbf|extit|heta|ilde|imes|ext|an|op|o)([^a-zA-Z]|$)`)
	corruptCarriageRe  = regexp.MustCompile(`\r(angle|floor|ceil|ight|ho)([^a-zA-Z]|$)`)
	corruptFormFeedRe  = regexp.MustCompile(`\f(orall|rac)([^a-zA-Z]|$)`)
	corruptBackspaceRe = regexp.MustCompile("\x08" + `(oxed|inom|egin|eta|mod|ar)([^a-zA-Z]|$)`)

	doubleEscapeRe = regexp.MustCompile(`\\\\([a-zA-Z]+)`)
)

// recoverCorruptedEscapes reconstructs LaTeX commands whose backslash was
// consumed as a JSON string escape. This must run before any math
// detection: a \neq that currently reads as newline + "eq" is invisible
// to every later pass. Double-escaped commands (\\frac) are collapsed to
// single-escaped in the same family.
func recoverCorruptedEscapes(s string) string {
	s = corruptNewlineRe.ReplaceAllString(s, `\n${1}${2}`)
	s = corruptTabRe.ReplaceAllString(s, `\t${1}${2}`)
	s = corruptCarriageRe.ReplaceAllString(s, `\r${1}${2}`)
	s = corruptFormFeedRe.ReplaceAllString(s, `\f${1}${2}`)
	s = corruptBackspaceRe.ReplaceAllString(s, `\b${1}${2}`)
	s = doubleEscapeRe.ReplaceAllString(s, `\${1}`)
	return s
}

// normalizeUnicodeMinus maps U+2212 (minus sign) to ASCII hyphen-minus so
// later numeric and operator regexes see a single code point.
func normalizeUnicodeMinus(s string) string {
	return strings.ReplaceAll(s, "−", "-")
}

var (
	// An inequality operator that lost its backslash across a line break:
	// a trailing backslash, a newline, then the operator letters.
	splitInequalityRe = regexp.MustCompile(`\\\n(nleq|ngeq|leq|geq|neq)\b`)

	// A standalone operator token with no backslash at all. The leading
	// capture keeps a word character or backslash from matching, so
	// \leq and "bleq" stay untouched.
	bareInequalityRe = regexp.MustCompile(`(^|[^\\a-zA-Z])(nleq|ngeq|leq|geq|neq)\b`)
)

// recoverBareInequalities reattaches the backslash to leq/geq/neq tokens
// that lost it, including the split-across-a-line-break form.
func recoverBareInequalities(s string) string {
	s = splitInequalityRe.ReplaceAllString(s, `\${1}`)
	s = bareInequalityRe.ReplaceAllString(s, `${1}\${2}`)
	return s
}
