// Package detect classifies raw source text into one of the supported
// quantum notations (or plain Python) with a confidence score.
package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quantalab/qce/internal/types"
)

// languageSignature is one independent textual fingerprint of a
// notation. Each matched signature contributes at most 1 to the score
// regardless of how often it repeats in the text.
type languageSignature struct {
	pattern *regexp.Regexp
	label   string
}

type signatureSet struct {
	language   types.Language
	signatures []languageSignature
}

// Detector scores source text against a fixed signature table. The table
// is immutable after construction, so one Detector may be shared across
// concurrent submissions.
type Detector struct {
	// Slice order doubles as the deterministic tie-break: when two
	// notations match the same number of signatures, the earlier entry
	// wins (Qiskit > Cirq > Q# > OpenQASM).
	table            []signatureSet
	pythonIndicators []*regexp.Regexp
}

// New creates a detector with the built-in signature table.
func New() *Detector {
	return &Detector{
		table: []signatureSet{
			{
				language: types.LangQiskit,
				signatures: []languageSignature{
					sig(`from\s+qiskit\s+import`, "qiskit import"),
					sig(`import\s+qiskit`, "qiskit module"),
					sig(`QuantumCircuit`, "QuantumCircuit"),
					sig(`QuantumRegister`, "QuantumRegister"),
					sig(`ClassicalRegister`, "ClassicalRegister"),
				},
			},
			{
				language: types.LangCirq,
				signatures: []languageSignature{
					sig(`import\s+cirq`, "cirq module"),
					sig(`from\s+cirq\s+import`, "cirq import"),
					sig(`cirq\.Circuit`, "cirq.Circuit"),
					sig(`cirq\.LineQubit`, "cirq.LineQubit"),
				},
			},
			{
				language: types.LangQSharp,
				signatures: []languageSignature{
					sig(`namespace\s+\w+\s*\{`, "namespace block"),
					sig(`operation\s+\w+\s*\(`, "operation header"),
					sig(`using\s*\(`, "using allocation"),
					sig(`body\s*\(\.\.\.\)`, "body(...)"),
					sig(`Microsoft\.Quantum`, "Microsoft.Quantum"),
				},
			},
			{
				language: types.LangOpenQASM,
				signatures: []languageSignature{
					sig(`OPENQASM\s+\d+\.\d+`, "OPENQASM header"),
					sig(`include\s+"qelib1\.inc"`, "qelib1 include"),
					sig(`qreg\s+\w+\[\d+\]`, "qreg declaration"),
					sig(`creg\s+\w+\[\d+\]`, "creg declaration"),
					sig(`(?m)^gate\s+\w+`, "gate definition"),
				},
			},
		},
		pythonIndicators: []*regexp.Regexp{
			regexp.MustCompile(`def\s+\w+\s*\(`),
			regexp.MustCompile(`class\s+\w+`),
			regexp.MustCompile(`import\s+\w+`),
			regexp.MustCompile(`from\s+\w+\s+import`),
			regexp.MustCompile(`if\s+__name__\s*==\s*["']__main__["']`),
		},
	}
}

func sig(pattern, label string) languageSignature {
	return languageSignature{pattern: regexp.MustCompile(pattern), label: label}
}

// Detect classifies the source text. Empty or whitespace-only input is
// unknown with zero confidence. Among quantum notations the strictly
// highest signature count wins; with no quantum match at all the text
// falls back to the generic Python heuristic before giving up.
func (d *Detector) Detect(code string) types.Detection {
	if strings.TrimSpace(code) == "" {
		return types.Detection{
			Language:   types.LangUnknown,
			Confidence: 0.0,
			Supported:  false,
			Details:    "Empty code provided",
		}
	}

	bestScore := 0
	var best *signatureSet
	var bestLabels []string

	for i := range d.table {
		set := &d.table[i]
		score := 0
		var labels []string
		for _, s := range set.signatures {
			if s.pattern.MatchString(code) {
				score++
				labels = append(labels, s.label)
			}
		}
		// Strictly greater keeps the earlier table entry on ties.
		if score > bestScore {
			bestScore = score
			best = set
			bestLabels = labels
		}
	}

	if best == nil {
		if d.looksLikePython(code) {
			return types.Detection{
				Language:   types.LangPython,
				Confidence: 0.7,
				Supported:  true,
				Details:    "Detected as Python (no quantum library detected)",
			}
		}
		return types.Detection{
			Language:   types.LangUnknown,
			Confidence: 0.0,
			Supported:  false,
			Details:    "Could not identify language",
		}
	}

	confidence := float64(bestScore) / float64(len(best.signatures))
	if confidence > 1.0 {
		confidence = 1.0
	}

	shown := bestLabels
	if len(shown) > 3 {
		shown = shown[:3]
	}
	return types.Detection{
		Language:   best.language,
		Confidence: confidence,
		Supported:  true,
		Details:    fmt.Sprintf("Matched %d patterns: %s", bestScore, strings.Join(shown, ", ")),
	}
}

// looksLikePython applies the generic host-language heuristic: at least
// two structural indicators must be present.
func (d *Detector) looksLikePython(code string) bool {
	matches := 0
	for _, re := range d.pythonIndicators {
		if re.MatchString(code) {
			matches++
		}
	}
	return matches >= 2
}
