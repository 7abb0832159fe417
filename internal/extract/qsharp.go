package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quantalab/qce/internal/types"
)

// QSharpExtractor recognizes the operation-block DSL: qubit allocations
// inside using-scopes, single-argument operation applications as gates,
// and operation headers as callable units. The qubit index of a gate
// defaults to 0 when it cannot be resolved from the reference, a known
// simplification of this notation's extraction.
type QSharpExtractor struct {
	allocRe     *regexp.Regexp
	gateRe      *regexp.Regexp
	operationRe *regexp.Regexp
	gates       map[string]types.GateKind
}

// NewQSharpExtractor creates a Q# extractor.
func NewQSharpExtractor() *QSharpExtractor {
	return &QSharpExtractor{
		allocRe:     regexp.MustCompile(`using\s*\(\s*(\w+)\s*=\s*Qubit\[(\d+)\]`),
		gateRe:      regexp.MustCompile(`(\w+)\s*\(\s*\w+(?:\[(\d+)\])?\s*\)`),
		operationRe: regexp.MustCompile(`operation\s+(\w+)\s*\(`),
		gates: map[string]types.GateKind{
			"H":       types.GateH,
			"X":       types.GateX,
			"Y":       types.GateY,
			"Z":       types.GateZ,
			"S":       types.GateS,
			"T":       types.GateT,
			"CNOT":    types.GateCNOT,
			"CX":      types.GateCX,
			"SWAP":    types.GateSWAP,
			"Measure": types.GateMeasure,
		},
	}
}

// Language implements Extractor.
func (e *QSharpExtractor) Language() types.Language { return types.LangQSharp }

// Extract implements Extractor.
func (e *QSharpExtractor) Extract(code string) *types.Extraction {
	lines := strings.Split(code, "\n")

	ext := &types.Extraction{
		Imports:  e.extractImports(lines),
		Metadata: sourceMetadata(code, "//"),
	}
	e.extractRegisters(lines, ext)
	e.extractGates(lines, ext)
	e.extractOperations(code, ext)
	return ext
}

func (e *QSharpExtractor) extractImports(lines []string) []string {
	var imports []string
	for _, line := range lines {
		if strings.Contains(line, "using") || strings.Contains(line, "open") {
			imports = append(imports, strings.TrimSpace(line))
		}
	}
	return imports
}

func (e *QSharpExtractor) extractRegisters(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		if m := e.allocRe.FindStringSubmatch(line); m != nil {
			size, _ := strconv.Atoi(m[2])
			ext.QuantumRegisters = append(ext.QuantumRegisters, types.Register{
				Name: m[1], Size: size, Line: i + 1,
			})
		}
	}
}

func (e *QSharpExtractor) extractGates(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		for _, m := range e.gateRe.FindAllStringSubmatch(line, -1) {
			// Case-sensitive table: Q# operation names are capitalized
			// and lowercase identifiers are ordinary calls.
			kind, ok := e.gates[m[1]]
			if !ok {
				continue
			}
			qubit := 0
			if m[2] != "" {
				qubit, _ = strconv.Atoi(m[2])
			}
			ext.Gates = append(ext.Gates, types.NewGate(kind, []int{qubit}, nil, nil, i+1))
		}
	}
}

func (e *QSharpExtractor) extractOperations(code string, ext *types.Extraction) {
	for _, m := range e.operationRe.FindAllStringSubmatchIndex(code, -1) {
		name := code[m[2]:m[3]]
		line := 1 + strings.Count(code[:m[0]], "\n")
		ext.Functions = append(ext.Functions, types.Function{Name: name, Line: line})
	}
}
