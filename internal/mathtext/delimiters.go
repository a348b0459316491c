package mathtext

import (
	"regexp"
	"strings"
)

var (
	parenWrappedInlineRe  = regexp.MustCompile(`\\\(\s*\$([^$\n]+)\$\s*\\\)`)
	parenDelimRe          = regexp.MustCompile(`(?s)\\\((.+?)\\\)`)
	bracketDelimRe        = regexp.MustCompile(`(?s)\\\[(.+?)\\\]`)
	bracketedDisplayRe    = regexp.MustCompile(`(?s)\$\$\s*\[\s*(.+?)\s*\]\s*\$\$`)
	gluedDisplayBlocksRe  = regexp.MustCompile(`(\$\$[^$]+\$\$)(\$\$)`)
	listItemDisplayRe     = regexp.MustCompile(`^(\s*(?:[-*+]|\d+\.)\s+\S.*?)\s*\$\$([^$]+)\$\$\s*(.*)$`)
	listItemRe            = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+\S`)
	emptyDisplayPairRe    = regexp.MustCompile(`(?m)^\s*\$\$\s*\n\s*\$\$\s*$\n?`)
	trailingBareCommandRe = regexp.MustCompile(`^\\[a-zA-Z]+`)
)

// unifyDelimiters rewrites \(...\) and \[...\] delimiters into the dollar
// forms. Display math uses the $$ block form, which the Markdown block
// parser handles far more reliably than \[...\]. A \(...\) that redundantly
// wraps an existing $...$ span collapses to the plain span first.
func unifyDelimiters(s string) string {
	s = parenWrappedInlineRe.ReplaceAllString(s, "$$${1}$$")
	s = parenDelimRe.ReplaceAllString(s, "$$${1}$$")
	s = bracketDelimRe.ReplaceAllString(s, "$$$$${1}$$$$")
	return s
}

// stripDisplayBrackets removes the stray square brackets from display math
// that arrived as $$[ expr ]$$.
func stripDisplayBrackets(s string) string {
	return bracketedDisplayRe.ReplaceAllString(s, "$$$$${1}$$$$")
}

// isolateDisplayMath gives every $$...$$ block its own lines: glued
// consecutive blocks are split apart, a single-line block inside a list
// item is expanded to a fenced three-line form with blank lines before and
// after (never inside the fence), and a list item immediately followed by
// a display block gets a blank indented line so the math stays attached to
// the item as its own paragraph instead of breaking out of the list.
func isolateDisplayMath(s string) string {
	s = fixedPoint(s, func(cur string) string {
		return gluedDisplayBlocksRe.ReplaceAllString(cur, "${1}\n${2}")
	})

	lines := strings.Split(s, "\n")
	var out []string
	for _, line := range lines {
		m := listItemDisplayRe.FindStringSubmatch(line)
		if m == nil {
			out = append(out, line)
			continue
		}
		item, expr, rest := m[1], strings.TrimSpace(m[2]), m[3]
		out = append(out, item, "", "$$", expr, "$$", "")
		if rest != "" {
			out = append(out, rest)
		}
	}

	// Blank indented line between a list item and a following $$ line.
	var final []string
	for i, line := range out {
		final = append(final, line)
		if listItemRe.MatchString(line) && i+1 < len(out) &&
			strings.HasPrefix(strings.TrimSpace(out[i+1]), "$$") {
			final = append(final, "  ")
		}
	}
	return strings.Join(final, "\n")
}

// balanceDisplayDollars repairs lines with an odd number of $$ tokens by
// adding the missing open or close, then drops empty $$ pairs.
func balanceDisplayDollars(s string) string {
	s = eachLine(s, func(line string) string {
		if strings.Count(line, "$$")%2 == 0 {
			return line
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "$$" {
			// The open or close fence of a multi-line block.
			return line
		}
		switch {
		case strings.HasPrefix(trimmed, "$$"):
			return line + "$$"
		case strings.HasSuffix(trimmed, "$$"):
			return "$$" + line
		default:
			return line + "$$"
		}
	})
	return emptyDisplayPairRe.ReplaceAllString(s, "")
}

// closeUnclosedCommand appends the missing closing $ when an opening $ is
// followed by a bare LaTeX command and the line ends without a close.
func closeUnclosedCommand(s string) string {
	return eachLine(s, func(line string) string {
		if countUnescapedDollars(line)%2 == 0 {
			return line
		}
		last := strings.LastIndexByte(line, '$')
		tail := line[last+1:]
		if trailingBareCommandRe.MatchString(strings.TrimSpace(tail)) {
			return line + "$"
		}
		return line
	})
}

// mathLikeTailRe decides whether the text after a stray $ is worth keeping
// as math: a LaTeX command, a digit, or a comparison/arithmetic operator.
var mathLikeTailRe = regexp.MustCompile(`\\[a-zA-Z]+|[0-9]|[=<>+^]|\w/\w`)

// repairOddDollars is the final safety net: a line with an odd count of
// unescaped $ either gets a closing $ appended when the trailing content
// looks like math, or has the stray $ dropped.
func repairOddDollars(s string) string {
	return eachLine(s, func(line string) string {
		if countUnescapedDollars(line)%2 == 0 {
			return line
		}
		last := strings.LastIndexByte(line, '$')
		tail := strings.TrimSpace(line[last+1:])
		if tail != "" && mathLikeTailRe.MatchString(tail) {
			return line + "$"
		}
		return line[:last] + line[last+1:]
	})
}
