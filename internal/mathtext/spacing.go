package mathtext

import (
	"regexp"
	"strings"
)

// comparison matches a span body that contains a comparison operator,
// the signature of one derivation step.
const comparison = `[^$\n]*(?:=|<|>|\\leq|\\geq|\\neq)[^$\n]*`

var (
	adjacentStepsRe = regexp.MustCompile(`(\$` + comparison + `\$)[ \t]+(\$` + comparison + `\$)`)

	wordThenDigitRe  = regexp.MustCompile(`([a-zA-Z])(\d)`)
	wordThenVarRe    = regexp.MustCompile(`\b(of|when|into|for|and|the|is|to|by|where|then|if|let)([xyz])\b`)
	varThenWordRe    = regexp.MustCompile(`\b([xyz])(of|when|into|for|and|the|is|to|by|where|then|if|let)\b`)
	spanThenAlnumRe  = regexp.MustCompile(`(\$[^$\n]+\$)([a-zA-Z0-9])`)
	alnumThenSpanRe  = regexp.MustCompile(`([a-zA-Z0-9])(\$[^$\n]+\$)`)
	colonThenTokenRe = regexp.MustCompile(`:([a-zA-Z0-9$\\])`)

	inlineSpanRe     = regexp.MustCompile(`\$([^$\n]+)\$`)
	adjacentSpansRe  = regexp.MustCompile(`\$([^$\n]+)\$([ \t\d+\-*/=<>]+)\$([^$\n]+)\$`)
	proseOnlySpanRe  = regexp.MustCompile(`\$([a-zA-Z]{3,})\$`)
	negNumAfterWordRe = regexp.MustCompile(`([a-zA-Z])(-\d)`)
	negNumBeforeWordRe = regexp.MustCompile(`(-\d+)([a-zA-Z])`)
)

// splitDerivationSteps puts adjacent inline spans that each contain a
// comparison operator on their own lines, turning run-on derivations into
// one step per line. Looped to a fixed point so chains of three or more
// steps all split.
func splitDerivationSteps(s string) string {
	return fixedPoint(s, func(cur string) string {
		return adjacentStepsRe.ReplaceAllString(cur, "${1}\n${2}")
	})
}

// repairWordSpacing inserts the spaces the generator dropped between
// prose tokens: a word glued to a following digit, and a single-letter
// variable glued to a common neighboring word. Runs to a fixed point
// because fixing one boundary can expose another. Only text outside math
// spans is touched.
func repairWordSpacing(s string) string {
	return fixedPoint(s, func(cur string) string {
		return rewriteOutsideMath(cur, func(seg string) string {
			seg = wordThenDigitRe.ReplaceAllString(seg, "${1} ${2}")
			seg = wordThenVarRe.ReplaceAllString(seg, "${1} ${2}")
			seg = varThenWordRe.ReplaceAllString(seg, "${1} ${2}")
			return seg
		})
	})
}

// spaceAroundSpans guarantees at least one space between an inline span
// and adjacent alphanumeric prose, and after a colon that is glued to the
// next token.
func spaceAroundSpans(s string) string {
	s = alnumThenSpanRe.ReplaceAllString(s, "${1} ${2}")
	s = spanThenAlnumRe.ReplaceAllString(s, "${1} ${2}")
	s = colonThenTokenRe.ReplaceAllString(s, ": ${1}")
	return s
}

// trimSpanInterior removes leading/trailing whitespace just inside $...$
// spans; most math renderers reject spans that start or end with a space.
func trimSpanInterior(s string) string {
	return inlineSpanRe.ReplaceAllStringFunc(s, func(span string) string {
		body := strings.TrimSpace(span[1 : len(span)-1])
		if body == "" {
			return span
		}
		return "$" + body + "$"
	})
}

// mergeAdjacentSpans joins two inline spans separated only by whitespace,
// digits, or operators into a single span. Looped to a fixed point so
// longer chains collapse fully.
func mergeAdjacentSpans(s string) string {
	return fixedPoint(s, func(cur string) string {
		return adjacentSpansRe.ReplaceAllString(cur, "$$${1}${2}${3}$$")
	})
}

// liberateProseWords strips the delimiters from a span whose entire
// content is a plain 3+ letter word, i.e. English that was accidentally
// math-delimited.
func liberateProseWords(s string) string {
	return proseOnlySpanRe.ReplaceAllString(s, "${1}")
}

// spaceDelimiterPairs scans each line left to right, finds valid
// $...$ / $$...$$ pairs (content not starting or ending with whitespace),
// and inserts a space before a pair preceded by an alphanumeric or closing
// bracket and after a pair followed by a letter.
func spaceDelimiterPairs(s string) string {
	return eachLine(s, spaceDelimiterPairsLine)
}

func spaceDelimiterPairsLine(line string) string {
	var b strings.Builder
	b.Grow(len(line) + 8)
	i := 0
	for i < len(line) {
		if line[i] != '$' || (i > 0 && line[i-1] == '\\') {
			b.WriteByte(line[i])
			i++
			continue
		}

		// Locate the pair, display form first.
		open := 1
		if strings.HasPrefix(line[i:], "$$") {
			open = 2
		}
		rel := strings.Index(line[i+open:], line[i:i+open])
		if rel < 0 {
			b.WriteByte(line[i])
			i++
			continue
		}
		body := line[i+open : i+open+rel]
		end := i + open + rel + open
		if body == "" || body != strings.TrimSpace(body) {
			// Not a valid pair; copy verbatim.
			b.WriteString(line[i:end])
			i = end
			continue
		}

		if i > 0 {
			prev := line[i-1]
			if isAlnumByte(prev) || prev == ')' || prev == ']' || prev == '}' {
				b.WriteByte(' ')
			}
		}
		b.WriteString(line[i:end])
		if end < len(line) && isLetterByte(line[end]) {
			b.WriteByte(' ')
		}
		i = end
	}
	return b.String()
}

func isAlnumByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// finalProseSpacing splits residual glued tokens around a hyphenated
// negative number and a neighboring letter.
func finalProseSpacing(s string) string {
	return rewriteOutsideMath(s, func(seg string) string {
		seg = negNumAfterWordRe.ReplaceAllString(seg, "${1} ${2}")
		seg = negNumBeforeWordRe.ReplaceAllString(seg, "${1} ${2}")
		return seg
	})
}
