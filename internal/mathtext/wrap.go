package mathtext

import (
	"regexp"
	"strings"
)

var (
	leftRightGroupRe = regexp.MustCompile(`(?s)\\left\s*\\?[(\[{|.].*?\\right\s*\\?[)\]}|.]`)
	fracRe           = regexp.MustCompile(`\\frac\s*\{[^{}]*\}\s*\{[^{}]*\}`)
	sqrtRe           = regexp.MustCompile(`\\sqrt(?:\[[^\]]*\])?\s*\{[^{}]*\}`)

	// A bare comparison with its immediate operands, e.g. "x \leq 3" or
	// "2x+1 \neq 7". Operands are a number or a single letter so a word
	// ending in a letter is never split. The leading capture stands in
	// for a lookbehind, which Go regexp does not support.
	bareComparisonRe = regexp.MustCompile(`(^|[^\w$\\])((?:(?:[-+]?\d[\w.^]*|[a-zA-Z])\s*)?(?:\\not\s*)?\\(?:leq|geq|neq|lt|gt)(?:\s*(?:[-+]?\d[\w.^]*|[a-zA-Z]\b))?)`)

	bareOperatorRe = regexp.MustCompile(`(\\(?:cdot|times|pm|mp|div|approx|equiv|infty|pi|alpha|beta|gamma|theta|lambda|mu|sigma|phi|omega|Delta|Omega))\b`)

	fragmentedGroupRe = regexp.MustCompile(`\$([^$\n]*\\left\([^$\n]*)\$(.{0,120}?)\$([^$\n]*\\right\)[^$\n]*)\$`)

	choiceLabelGlueRe   = regexp.MustCompile(`(?m)^(\s*[A-D]\))(\S)`)
	choiceBareNumberRe  = regexp.MustCompile(`(?m)^(\s*[A-D]\))\s+(-?\d+(?:\.\d+)?)\s*$`)
)

// wrapBareMath puts $...$ around LaTeX that appears outside any math span.
// \left...\right groups go first so their interiors are not wrapped
// piecemeal; each family runs in its own outside-math rewrite so a span
// created by an earlier family is never double-wrapped by a later one.
func wrapBareMath(s string) string {
	s = rewriteOutsideMath(s, func(seg string) string {
		return leftRightGroupRe.ReplaceAllString(seg, "$$${0}$$")
	})
	s = rewriteOutsideMath(s, func(seg string) string {
		return fracRe.ReplaceAllString(seg, "$$${0}$$")
	})
	s = rewriteOutsideMath(s, func(seg string) string {
		return sqrtRe.ReplaceAllString(seg, "$$${0}$$")
	})
	s = rewriteOutsideMath(s, func(seg string) string {
		return bareComparisonRe.ReplaceAllString(seg, "${1}$$${2}$$")
	})
	s = rewriteOutsideMath(s, func(seg string) string {
		return bareOperatorRe.ReplaceAllString(seg, "$$${1}$$")
	})
	return s
}

// mergeFragmentedGroups rejoins a \left( opened in one span and closed by
// \right) in a later span. The free text that an earlier pass split out
// between them is folded back into the single merged span, with any
// stray delimiters it acquired removed.
func mergeFragmentedGroups(s string) string {
	return fragmentedGroupRe.ReplaceAllStringFunc(s, func(match string) string {
		m := fragmentedGroupRe.FindStringSubmatch(match)
		if m == nil {
			return match
		}
		middle := strings.ReplaceAll(m[2], "$", "")
		return "$" + m[1] + middle + m[3] + "$"
	})
}

// wrapChoiceLiterals ensures multiple-choice answer lines render their
// values as math: a missing space after the A)-D) label is inserted, and a
// bare numeric value after the label is wrapped in $...$.
func wrapChoiceLiterals(s string) string {
	s = choiceLabelGlueRe.ReplaceAllString(s, "${1} ${2}")
	s = choiceBareNumberRe.ReplaceAllString(s, "${1} $$${2}$$")
	return s
}
