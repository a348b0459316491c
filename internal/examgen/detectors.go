package examgen

import (
	"regexp"
	"strconv"
	"strings"
)

// The detectors below are heuristics tuned to observed generator failure
// modes, not complete mathematical checks. They are deliberately narrow:
// a false negative costs one bad question, a false positive costs a whole
// regeneration round.

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	notEqualsRe         = regexp.MustCompile(`(?i)\\neq|not\s+equal|≠`)
	mentionsGraphRe     = regexp.MustCompile(`graph|graphing|represents\s+the\s+solution`)
	otherInequalitiesRe = regexp.MustCompile(`(?i)<|>|\\leq|\\geq|\\lt|\\gt|≤|≥`)
	singleNotEqualsRe   = regexp.MustCompile(`(?:^|[^a-zA-Z])\s*(?:x|y)\s*\\neq\s*[-+]?\d`)

	bothSidesRe = regexp.MustCompile(`both\s+sides|shaded\s+on\s+both\s+sides|shading\s+on\s+both\s+sides|shade\s+on\s+both\s+sides|both\s+regions`)

	// x-coefficient, optional constant, excluded value: "3x + 2 \neq 8".
	linearNotEqualsRe = regexp.MustCompile(`(?i)([+-]?\d*)x\s*([+-]\s*\d+)?\s*\\neq\s*([+-]?\d+)`)

	notPossibleValueRe = regexp.MustCompile(`(?i)not a possible value`)

	possibleValuePhrasingRe = regexp.MustCompile(`(?i)which\s+of\s+the\s+following\s+is\s+(?:not\s+)?a\s+possible\s+value`)

	solveRe       = regexp.MustCompile(`(?i)\bsolve\b`)
	scalarValueRe = regexp.MustCompile(`^[-+]?\d+(?:\.\d+)?$`)
)

func normalizeChoiceValue(v string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(v), " ")
}

// duplicateChoiceValues returns the whitespace-normalized values that
// appear under more than one letter.
func duplicateChoiceValues(choices map[string]string) []string {
	counts := make(map[string]int)
	for _, v := range choices {
		counts[normalizeChoiceValue(v)]++
	}
	var dups []string
	for v, n := range counts {
		if n > 1 {
			dups = append(dups, v)
		}
	}
	return dups
}

func hasDuplicateChoiceValues(choices map[string]string) bool {
	return len(duplicateChoiceValues(choices)) > 0
}

// isGraphingNotEquals reports whether the stem asks to graph a single
// not-equals relation (no other inequality present). Such a question must
// offer a both-sides-shaded choice or it has no correct answer.
func isGraphingNotEquals(text string) bool {
	return notEqualsRe.MatchString(text) &&
		mentionsGraphRe.MatchString(strings.ToLower(text)) &&
		!otherInequalitiesRe.MatchString(text) &&
		singleNotEqualsRe.MatchString(text)
}

func hasBothSidesShading(choices map[string]string) bool {
	for _, v := range choices {
		if bothSidesRe.MatchString(strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// parseNotEqualsExcludedValue extracts the excluded value from a stem of
// the form "ax + b \neq c ... not a possible value". Returns false when
// the stem doesn't match the pattern or the coefficients don't parse.
func parseNotEqualsExcludedValue(text string) (float64, bool) {
	if !notPossibleValueRe.MatchString(text) {
		return 0, false
	}
	normalized := whitespaceRe.ReplaceAllString(strings.ReplaceAll(text, "$", ""), " ")

	m := linearNotEqualsRe.FindStringSubmatch(normalized)
	if m == nil {
		return 0, false
	}

	a, ok := parseCoefficient(m[1])
	if !ok || a == 0 {
		return 0, false
	}
	b := 0.0
	if m[2] != "" {
		v, err := strconv.ParseFloat(whitespaceRe.ReplaceAllString(m[2], ""), 64)
		if err != nil {
			return 0, false
		}
		b = v
	}
	c, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, false
	}

	return (c - b) / a, true
}

// parseCoefficient handles the implicit 1 in "x" and "-x".
func parseCoefficient(raw string) (float64, bool) {
	switch raw {
	case "", "+":
		return 1, true
	case "-":
		return -1, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// choiceForValue returns the letter whose choice is numerically equal to
// value, or false if no choice matches.
func choiceForValue(choices map[string]string, value float64) (string, bool) {
	for _, letter := range choiceLetters {
		raw, ok := choices[letter]
		if !ok {
			continue
		}
		normalized := whitespaceRe.ReplaceAllString(strings.ReplaceAll(raw, "$", ""), "")
		if v, err := strconv.ParseFloat(normalized, 64); err == nil && v == value {
			return letter, true
		}
	}
	return "", false
}

// hasBannedPossibleValuePhrasing reports whether a not-equals stem uses
// "which of the following is (not) a possible value". Both phrasings are
// rejected: the positive form has three correct choices, and the negative
// form invites scalar choices that make every non-excluded value correct.
func hasBannedPossibleValuePhrasing(text string) bool {
	return notEqualsRe.MatchString(text) && possibleValuePhrasingRe.MatchString(text)
}

// isScalarNotEqualsSolve reports whether a single-variable not-equals
// "solve" question offers only bare numeric choices. Such a question has
// multiple technically correct answers: every number except the excluded
// value satisfies the relation.
func isScalarNotEqualsSolve(text string, choices map[string]string) bool {
	if !solveRe.MatchString(text) || !notEqualsRe.MatchString(text) {
		return false
	}
	normalized := whitespaceRe.ReplaceAllString(strings.ReplaceAll(text, "$", ""), " ")
	if !linearNotEqualsRe.MatchString(normalized) && !singleNotEqualsRe.MatchString(text) {
		return false
	}
	for _, v := range choices {
		normalized := whitespaceRe.ReplaceAllString(strings.ReplaceAll(v, "$", ""), "")
		if !scalarValueRe.MatchString(normalized) {
			return false
		}
	}
	return len(choices) > 0
}
