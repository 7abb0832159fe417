// Package analysis computes the classical and quantum complexity
// metrics consumed by the routing decision. Both analyzers are pure
// functions of their input and safe for concurrent use.
package analysis

import (
	"regexp"
	"strings"

	"github.com/quantalab/qce/internal/pyast"
	"github.com/quantalab/qce/internal/types"
)

// cyclomaticCap bounds the regex-fallback complexity estimate.
const cyclomaticCap = 50

// ClassicalAnalyzer estimates control-flow and asymptotic complexity
// from the source text plus the extractor's shallow metadata. It prefers
// a full-grammar complexity walk and degrades to keyword counting when
// the text is not valid Python.
type ClassicalAnalyzer struct {
	decisionKeywords []string
	sortKeywords     []string
	logKeywords      []string
	expKeywords      []string
	headerRe         *regexp.Regexp
}

// NewClassicalAnalyzer creates a classical complexity analyzer.
func NewClassicalAnalyzer() *ClassicalAnalyzer {
	return &ClassicalAnalyzer{
		decisionKeywords: []string{"if", "elif", "else", "for", "while", "try", "except", "and", "or", "?"},
		sortKeywords:     []string{"sort", "sorted", "quicksort", "mergesort"},
		logKeywords:      []string{"log", "binary"},
		expKeywords:      []string{"pow", "**", "^"},
		headerRe:         regexp.MustCompile(`def\s+(\w+)\s*\(`),
	}
}

// Analyze computes the classical metrics for one submission.
func (a *ClassicalAnalyzer) Analyze(code string, meta types.SourceMetadata, functionCount int) types.ClassicalMetrics {
	return types.ClassicalMetrics{
		CyclomaticComplexity: a.cyclomaticComplexity(code),
		TimeComplexity:       a.estimateTimeComplexity(code, meta),
		SpaceComplexity:      a.estimateSpaceComplexity(code),
		LoopCount:            meta.LoopCount,
		ConditionalCount:     meta.ConditionalCount,
		FunctionCount:        functionCount,
		MaxNestingDepth:      meta.NestingDepth,
		LinesOfCode:          meta.LinesOfCode,
	}
}

// cyclomaticComplexity walks the full grammar when the text parses as
// Python, averaging per-function complexity. Otherwise it falls back to
// counting decision keywords, capped at cyclomaticCap.
func (a *ClassicalAnalyzer) cyclomaticComplexity(code string) int {
	if src, ok := pyast.Parse(code); ok {
		defer src.Close()
		return src.AverageComplexity()
	}

	complexity := 1
	for _, line := range strings.Split(code, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range a.decisionKeywords {
			complexity += strings.Count(lower, kw)
		}
	}
	if complexity > cyclomaticCap {
		return cyclomaticCap
	}
	return complexity
}

// estimateTimeComplexity is a strict decision list; the first matching
// rule wins.
func (a *ClassicalAnalyzer) estimateTimeComplexity(code string, meta types.SourceMetadata) types.TimeComplexity {
	lower := strings.ToLower(code)

	hasFactorial := strings.Contains(lower, "factorial") || strings.Contains(code, "!")
	hasExponential := containsAny(lower, a.expKeywords)
	hasRecursion := a.hasRecursion(code)

	switch {
	case hasFactorial:
		return types.ComplexityFactorial
	case hasExponential && hasRecursion:
		return types.ComplexityExponential
	case meta.NestingDepth >= 3 || meta.LoopCount >= 3:
		return types.ComplexityCubic
	case meta.NestingDepth >= 2 || meta.LoopCount >= 2:
		return types.ComplexityQuadratic
	case meta.LoopCount == 1:
		if containsAny(lower, a.sortKeywords) {
			return types.ComplexityLinearithmic
		}
		return types.ComplexityLinear
	case meta.LoopCount == 0:
		if containsAny(lower, a.logKeywords) {
			return types.ComplexityLogarithmic
		}
		return types.ComplexityConstant
	}
	return types.ComplexityUnknown
}

// estimateSpaceComplexity is an independent decision list over data
// structure allocations and recursion (stack space).
func (a *ClassicalAnalyzer) estimateSpaceComplexity(code string) string {
	hasList := strings.Contains(code, "[]") || strings.Contains(code, "list(") || strings.Contains(code, "List[")
	hasDict := strings.Contains(code, "{}") || strings.Contains(code, "dict(") || strings.Contains(code, "Dict[")
	hasSet := strings.Contains(code, "set(")

	bracketNesting := strings.Count(code, "[") + strings.Count(code, "{")

	switch {
	case a.hasRecursion(code):
		return "O(n)" // stack space
	case bracketNesting > 3 || (hasList && hasDict):
		return "O(n^2)"
	case hasList || hasDict || hasSet:
		return "O(n)"
	}
	return "O(1)"
}

// hasRecursion reports whether any function calls itself: a full-grammar
// walk when the text parses as Python, else a best-effort scan for a
// same-name call after each function header.
func (a *ClassicalAnalyzer) hasRecursion(code string) bool {
	if src, ok := pyast.Parse(code); ok {
		defer src.Close()
		return src.HasRecursion()
	}

	for _, m := range a.headerRe.FindAllStringSubmatchIndex(code, -1) {
		name := code[m[2]:m[3]]
		rest := code[m[1]:]
		if strings.Contains(rest, name+"(") {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
