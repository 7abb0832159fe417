// Package extract converts raw source text into elements of the unified
// circuit model. One extractor exists per supported notation behind a
// single capability interface; all of them are stateless, never fail on
// malformed input, and silently drop constructs they cannot recognize.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quantalab/qce/internal/pyast"
	"github.com/quantalab/qce/internal/types"
)

// Extractor is the common contract implemented once per notation.
type Extractor interface {
	Language() types.Language
	Extract(code string) *types.Extraction
}

// ForLanguage returns the extractor for a supported notation.
func ForLanguage(lang types.Language) (Extractor, bool) {
	switch lang {
	case types.LangPython:
		return NewPythonExtractor(), true
	case types.LangQiskit:
		return NewQiskitExtractor(), true
	case types.LangCirq:
		return NewCirqExtractor(), true
	case types.LangOpenQASM:
		return NewOpenQASMExtractor(), true
	case types.LangQSharp:
		return NewQSharpExtractor(), true
	}
	return nil, false
}

var (
	loopKeywords        = []string{"for", "while", "repeat", "loop"}
	conditionalKeywords = []string{"if", "else", "elif", "switch", "case"}

	leadingWordRe      = regexp.MustCompile(`^[A-Za-z_]+`)
	fallbackFunctionRe = regexp.MustCompile(`(?:def|function|operation)\s+(\w+)\s*\(`)
)

// countLines counts non-blank lines whose first non-whitespace characters
// do not start a comment in the notation.
func countLines(code, commentPrefix string) int {
	count := 0
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if commentPrefix != "" && strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}
		count++
	}
	return count
}

// countKeywordLines counts lines whose first token, case-insensitive, is
// one of the given keywords. Intentionally shallow: no nesting context.
func countKeywordLines(code string, keywords []string) int {
	count := 0
	for _, line := range strings.Split(code, "\n") {
		word := strings.ToLower(leadingWordRe.FindString(strings.TrimSpace(line)))
		if word == "" {
			continue
		}
		for _, kw := range keywords {
			if word == kw {
				count++
				break
			}
		}
	}
	return count
}

// nestingDepth keeps the maximum of (a) the running bracket balance over
// the whole text, clamped at 0 from below, and (b) the deepest
// indentation divided by indentWidth. indentWidth 0 disables the
// indentation pass for brace-structured notations.
func nestingDepth(code string, indentWidth int) int {
	maxDepth := 0
	depth := 0
	for _, ch := range code {
		switch ch {
		case '{', '[', '(':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case '}', ']', ')':
			if depth > 0 {
				depth--
			}
		}
	}

	if indentWidth > 0 {
		for _, line := range strings.Split(code, "\n") {
			indent := len(line) - len(strings.TrimLeft(line, " \t"))
			if d := indent / indentWidth; d > maxDepth {
				maxDepth = d
			}
		}
	}

	return maxDepth
}

// sourceMetadata computes the shallow structural counts shared by the
// indentation-based notations.
func sourceMetadata(code, commentPrefix string) types.SourceMetadata {
	return types.SourceMetadata{
		LinesOfCode:      countLines(code, commentPrefix),
		LoopCount:        countKeywordLines(code, loopKeywords),
		ConditionalCount: countKeywordLines(code, conditionalKeywords),
		NestingDepth:     nestingDepth(code, 4),
	}
}

// parseIndexList parses "0", "[0, 1]" or "0, 1" into indices. ok is
// false when any element is not an integer, e.g. a bare register name.
func parseIndexList(arg string) ([]int, bool) {
	arg = strings.Trim(strings.TrimSpace(arg), "[]")
	if arg == "" {
		return nil, false
	}
	parts := strings.Split(arg, ",")
	indices := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		indices = append(indices, n)
	}
	return indices, true
}

// extractFunctions parses function headers with the full Python grammar
// when the text is valid Python, falling back to a header regex that also
// understands operation/function keywords.
func extractFunctions(code string) []types.Function {
	if src, ok := pyast.Parse(code); ok {
		defer src.Close()
		return src.Functions()
	}

	var out []types.Function
	for _, match := range fallbackFunctionRe.FindAllStringSubmatch(code, -1) {
		out = append(out, types.Function{Name: match[1]})
	}
	return out
}

// splitControls applies the shared convention for multi-qubit gate
// argument lists: the last index is the target, everything before it is
// a control.
func splitControls(kind types.GateKind, qubits []int) (targets, controls []int) {
	if kind.IsEntangling() && len(qubits) > 1 {
		return qubits[len(qubits)-1:], qubits[:len(qubits)-1]
	}
	return qubits, nil
}
