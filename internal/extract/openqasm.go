package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quantalab/qce/internal/types"
)

// OpenQASMExtractor recognizes the declarative statement format:
// qreg/creg declarations, keyword-prefixed gate statements terminated by
// a semicolon, and explicit measure statements. The base format has no
// loop construct, so loop/conditional counts and nesting depth are
// fixed at 0.
type OpenQASMExtractor struct {
	qregRe    *regexp.Regexp
	cregRe    *regexp.Regexp
	gateRe    *regexp.Regexp
	indexRe   *regexp.Regexp
	measureRe *regexp.Regexp
	gates     map[string]types.GateKind
}

// directives and declarations that are never gate statements.
var qasmNonGatePrefixes = []string{"OPENQASM", "include", "qreg", "creg", "measure", "barrier"}

// NewOpenQASMExtractor creates an OpenQASM extractor.
func NewOpenQASMExtractor() *OpenQASMExtractor {
	return &OpenQASMExtractor{
		qregRe:    regexp.MustCompile(`qreg\s+(\w+)\[(\d+)\]`),
		cregRe:    regexp.MustCompile(`creg\s+(\w+)\[(\d+)\]`),
		gateRe:    regexp.MustCompile(`(\w+)\s+([\w\[\],\s]+);`),
		indexRe:   regexp.MustCompile(`\[(\d+)\]`),
		measureRe: regexp.MustCompile(`measure\s+(\w+)\[(\d+)\]\s*->\s*(\w+)\[(\d+)\]`),
		gates: map[string]types.GateKind{
			"h":    types.GateH,
			"x":    types.GateX,
			"y":    types.GateY,
			"z":    types.GateZ,
			"s":    types.GateS,
			"t":    types.GateT,
			"rx":   types.GateRX,
			"ry":   types.GateRY,
			"rz":   types.GateRZ,
			"cx":   types.GateCX,
			"cz":   types.GateCZ,
			"swap": types.GateSWAP,
			"ccx":  types.GateToffoli,
		},
	}
}

// Language implements Extractor.
func (e *OpenQASMExtractor) Language() types.Language { return types.LangOpenQASM }

// Extract implements Extractor.
func (e *OpenQASMExtractor) Extract(code string) *types.Extraction {
	// Statements are line-oriented; blank lines carry nothing.
	var lines []string
	for _, line := range strings.Split(code, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	ext := &types.Extraction{
		Metadata: types.SourceMetadata{
			LinesOfCode: countLines(code, "//"),
		},
	}
	e.extractImports(lines, ext)
	e.extractRegisters(lines, ext)
	e.extractGates(lines, ext)
	e.extractMeasurements(lines, ext)
	return ext
}

func (e *OpenQASMExtractor) extractImports(lines []string, ext *types.Extraction) {
	for _, line := range lines {
		if strings.HasPrefix(line, "include") {
			ext.Imports = append(ext.Imports, line)
		}
	}
}

func (e *OpenQASMExtractor) extractRegisters(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		if m := e.qregRe.FindStringSubmatch(line); m != nil {
			size, _ := strconv.Atoi(m[2])
			ext.QuantumRegisters = append(ext.QuantumRegisters, types.Register{
				Name: m[1], Size: size, Line: i + 1,
			})
		}
		if m := e.cregRe.FindStringSubmatch(line); m != nil {
			size, _ := strconv.Atoi(m[2])
			ext.ClassicalRegisters = append(ext.ClassicalRegisters, types.Register{
				Name: m[1], Size: size, Line: i + 1,
			})
		}
	}
}

func (e *OpenQASMExtractor) extractGates(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		if hasAnyPrefix(line, qasmNonGatePrefixes) {
			continue
		}

		m := e.gateRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		kind, ok := resolveGateName(m[1], e.gates)
		if !ok {
			// Statement-shaped but not a known gate: drop it, keep it
			// visible for observability.
			ext.Skipped = append(ext.Skipped, line)
			continue
		}

		qubits := e.qubitIndices(m[2])
		targets, controls := splitControls(kind, qubits)
		ext.Gates = append(ext.Gates, types.NewGate(kind, targets, controls, nil, i+1))
	}
}

func (e *OpenQASMExtractor) extractMeasurements(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		m := e.measureRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qIndex, _ := strconv.Atoi(m[2])
		cIndex, _ := strconv.Atoi(m[4])
		ext.Measurements = append(ext.Measurements, types.Measurement{
			QuantumRegister:   m[1],
			ClassicalRegister: m[3],
			QubitIndices:      []int{qIndex},
			ClassicalIndices:  []int{cIndex},
			Line:              i + 1,
		})
	}
}

// qubitIndices pulls the bracketed indices from "q[0], q[1]".
func (e *OpenQASMExtractor) qubitIndices(args string) []int {
	var indices []int
	for _, m := range e.indexRe.FindAllStringSubmatch(args, -1) {
		n, _ := strconv.Atoi(m[1])
		indices = append(indices, n)
	}
	return indices
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
