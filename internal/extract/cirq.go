package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quantalab/qce/internal/types"
)

// CirqExtractor recognizes the functional qubit-array API: LineQubit
// ranges and GridQubit constructors for registers, namespaced gate calls,
// and the fixed cirq.measure call for measurements.
type CirqExtractor struct {
	lineQubitRe *regexp.Regexp
	gridQubitRe *regexp.Regexp
	gateRe      *regexp.Regexp
	measureRe   *regexp.Regexp
	gates       map[string]types.GateKind
}

// NewCirqExtractor creates a Cirq extractor.
func NewCirqExtractor() *CirqExtractor {
	return &CirqExtractor{
		lineQubitRe: regexp.MustCompile(`cirq\.LineQubit\.range\s*\(\s*(\d+)\s*\)`),
		gridQubitRe: regexp.MustCompile(`GridQubit\s*\(\s*\d+\s*,\s*\d+\s*\)`),
		gateRe:      regexp.MustCompile(`cirq\.(\w+)(?:\.on)?\s*\(\s*([^)]+)\s*\)`),
		measureRe:   regexp.MustCompile(`cirq\.measure\s*\(`),
		gates: map[string]types.GateKind{
			"H":       types.GateH,
			"X":       types.GateX,
			"Y":       types.GateY,
			"Z":       types.GateZ,
			"S":       types.GateS,
			"T":       types.GateT,
			"CNOT":    types.GateCNOT,
			"CX":      types.GateCX,
			"CZ":      types.GateCZ,
			"SWAP":    types.GateSWAP,
			"TOFFOLI": types.GateToffoli,
		},
	}
}

// Language implements Extractor.
func (e *CirqExtractor) Language() types.Language { return types.LangCirq }

// Extract implements Extractor.
func (e *CirqExtractor) Extract(code string) *types.Extraction {
	lines := strings.Split(code, "\n")

	ext := &types.Extraction{
		Imports:   e.extractImports(lines),
		Functions: extractFunctions(code),
		Metadata:  sourceMetadata(code, "#"),
	}
	e.extractRegisters(lines, ext)
	e.extractGates(lines, ext)
	e.extractMeasurements(lines, ext)
	return ext
}

func (e *CirqExtractor) extractImports(lines []string) []string {
	var imports []string
	for _, line := range lines {
		if strings.Contains(line, "import cirq") || strings.Contains(line, "from cirq") {
			imports = append(imports, strings.TrimSpace(line))
		}
	}
	return imports
}

func (e *CirqExtractor) extractRegisters(lines []string, ext *types.Extraction) {
	gridQubits := 0
	for i, line := range lines {
		if m := e.lineQubitRe.FindStringSubmatch(line); m != nil {
			size, _ := strconv.Atoi(m[1])
			ext.QuantumRegisters = append(ext.QuantumRegisters, types.Register{
				Name: "qubits", Size: size, Line: i + 1,
			})
		}
		gridQubits += len(e.gridQubitRe.FindAllString(line, -1))
	}

	// Grid qubits fold into one synthetic register when no LineQubit
	// range declared anything.
	if gridQubits > 0 && len(ext.QuantumRegisters) == 0 {
		ext.QuantumRegisters = append(ext.QuantumRegisters, types.Register{
			Name: "qubits", Size: gridQubits,
		})
	}
}

func (e *CirqExtractor) extractGates(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		for _, m := range e.gateRe.FindAllStringSubmatch(line, -1) {
			kind, ok := e.gates[strings.ToUpper(m[1])]
			if !ok {
				continue
			}

			// Qubit arity is inferred from how many qubit-like tokens
			// appear in the argument list, never less than 1.
			qubitCount := strings.Count(strings.ToLower(m[2]), "qubit")
			if qubitCount == 0 {
				qubitCount = 1
			}
			qubits := make([]int, qubitCount)
			for q := range qubits {
				qubits[q] = q
			}

			targets, controls := splitControls(kind, qubits)
			ext.Gates = append(ext.Gates, types.NewGate(kind, targets, controls, nil, i+1))
		}
	}
}

func (e *CirqExtractor) extractMeasurements(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		if e.measureRe.MatchString(line) {
			ext.Measurements = append(ext.Measurements, types.Measurement{
				QuantumRegister:   "qubits",
				ClassicalRegister: "measurements",
				Line:              i + 1,
			})
		}
	}
}
