// Package mathtext repairs LLM-generated Markdown+LaTeX so a standard
// remark/KaTeX-style renderer can consume it without parse errors. The
// generator is prompted to emit well-delimited math but drifts in
// predictable ways: backslashes swallowed by JSON escaping, missing or
// unbalanced delimiters, fused tokens, and run-on derivations.
//
// Normalize is a strictly ordered pipeline of pure string-rewrite passes.
// The order is load-bearing: later passes assume the normal form produced
// by earlier ones (corrupted escapes must be recovered before anything
// that detects math; delimiters must be unified before anything that
// counts them). Reordering silently changes output.
package mathtext

// passes is the full pipeline in required order.
var passes = []func(string) string{
	recoverCorruptedEscapes, // must run first: corrupted commands are invisible to every later pass
	normalizeUnicodeMinus,
	recoverBareInequalities,
	unifyDelimiters,
	stripDisplayBrackets,
	isolateDisplayMath,
	balanceDisplayDollars,
	splitDerivationSteps,
	repairWordSpacing,
	spaceAroundSpans,
	wrapBareMath,
	mergeFragmentedGroups,
	trimSpanInterior,
	mergeAdjacentSpans,
	closeUnclosedCommand,
	liberateProseWords,
	spaceDelimiterPairs,
	wrapChoiceLiterals,
	repairOddDollars,
	finalProseSpacing,
}

// Normalize rewrites mixed Markdown/LaTeX text into renderable form. It is
// deterministic and idempotent on already-normalized input.
//
// Streaming callers must not run partial text through Normalize: incomplete
// LaTeX mid-stream would misfire the delimiter passes. Render raw chunks
// while streaming and call Normalize exactly once on the completed text.
func Normalize(s string) string {
	for _, pass := range passes {
		s = pass(s)
	}
	return s
}
