package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/quantalab/qce/internal/types"
)

// QiskitExtractor recognizes the imperative circuit-object API:
// explicit register constructors, the QuantumCircuit(n, m) shorthand,
// method-call gates with integer arguments, and two-argument measure
// calls.
type QiskitExtractor struct {
	importRes []*regexp.Regexp
	qregRe    *regexp.Regexp
	cregRe    *regexp.Regexp
	circuitRe *regexp.Regexp
	gateRe    *regexp.Regexp
	measureRe *regexp.Regexp
	gates     map[string]types.GateKind
}

// NewQiskitExtractor creates a Qiskit extractor.
func NewQiskitExtractor() *QiskitExtractor {
	return &QiskitExtractor{
		importRes: []*regexp.Regexp{
			regexp.MustCompile(`from\s+qiskit\s+import\s+(.+)`),
			regexp.MustCompile(`import\s+qiskit`),
			regexp.MustCompile(`from\s+qiskit\.(\w+)\s+import\s+(.+)`),
		},
		qregRe:    regexp.MustCompile(`QuantumRegister\s*\(\s*(\d+)(?:\s*,\s*['"](\w+)['"])?\s*\)`),
		cregRe:    regexp.MustCompile(`ClassicalRegister\s*\(\s*(\d+)(?:\s*,\s*['"](\w+)['"])?\s*\)`),
		circuitRe: regexp.MustCompile(`QuantumCircuit\s*\(\s*(\d+)(?:\s*,\s*(\d+))?\s*\)`),
		gateRe:    regexp.MustCompile(`\.(\w+)\s*\(\s*([\d,\s]+)\s*\)`),
		// Each measure argument is an integer, a bracketed index list,
		// or a bare register name.
		measureRe: regexp.MustCompile(`\.measure\s*\(\s*(\[[^\]]*\]|\w+)\s*,\s*(\[[^\]]*\]|\w+)\s*\)`),
		gates: map[string]types.GateKind{
			"h":       types.GateH,
			"x":       types.GateX,
			"y":       types.GateY,
			"z":       types.GateZ,
			"s":       types.GateS,
			"t":       types.GateT,
			"rx":      types.GateRX,
			"ry":      types.GateRY,
			"rz":      types.GateRZ,
			"cx":      types.GateCX,
			"cnot":    types.GateCNOT,
			"cz":      types.GateCZ,
			"swap":    types.GateSWAP,
			"ccx":     types.GateToffoli,
			"toffoli": types.GateToffoli,
			"measure": types.GateMeasure,
			"barrier": types.GateBarrier,
			"reset":   types.GateReset,
		},
	}
}

// Language implements Extractor.
func (e *QiskitExtractor) Language() types.Language { return types.LangQiskit }

// Extract implements Extractor.
func (e *QiskitExtractor) Extract(code string) *types.Extraction {
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

func (e *QiskitExtractor) extractImports(lines []string) []string {
	var imports []string
	for _, line := range lines {
		for _, re := range e.importRes {
			if re.MatchString(line) {
				imports = append(imports, strings.TrimSpace(line))
				break
			}
		}
	}
	return imports
}

func (e *QiskitExtractor) extractRegisters(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		if m := e.qregRe.FindStringSubmatch(line); m != nil {
			size, _ := strconv.Atoi(m[1])
			name := m[2]
			if name == "" {
				name = fmt.Sprintf("q%d", len(ext.QuantumRegisters))
			}
			ext.QuantumRegisters = append(ext.QuantumRegisters, types.Register{
				Name: name, Size: size, Line: i + 1,
			})
		}

		if m := e.cregRe.FindStringSubmatch(line); m != nil {
			size, _ := strconv.Atoi(m[1])
			name := m[2]
			if name == "" {
				name = fmt.Sprintf("c%d", len(ext.ClassicalRegisters))
			}
			ext.ClassicalRegisters = append(ext.ClassicalRegisters, types.Register{
				Name: name, Size: size, Line: i + 1,
			})
		}

		// QuantumCircuit(n[, m]) shorthand declares both registers at once.
		if m := e.circuitRe.FindStringSubmatch(line); m != nil {
			nQubits, _ := strconv.Atoi(m[1])
			nBits := 0
			if m[2] != "" {
				nBits, _ = strconv.Atoi(m[2])
			}
			if nQubits > 0 {
				ext.QuantumRegisters = append(ext.QuantumRegisters, types.Register{
					Name: "q", Size: nQubits, Line: i + 1,
				})
			}
			if nBits > 0 {
				ext.ClassicalRegisters = append(ext.ClassicalRegisters, types.Register{
					Name: "c", Size: nBits, Line: i + 1,
				})
			}
		}
	}
}

func (e *QiskitExtractor) extractGates(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		for _, m := range e.gateRe.FindAllStringSubmatch(line, -1) {
			kind, ok := resolveGateName(m[1], e.gates)
			if !ok {
				continue
			}
			qubits, ok := parseIndexList(m[2])
			if !ok {
				continue
			}
			targets, controls := splitControls(kind, qubits)
			ext.Gates = append(ext.Gates, types.NewGate(kind, targets, controls, nil, i+1))
		}
	}
}

func (e *QiskitExtractor) extractMeasurements(lines []string, ext *types.Extraction) {
	for i, line := range lines {
		m := e.measureRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		qIndices, qOK := parseIndexList(m[1])
		cIndices, cOK := parseIndexList(m[2])
		if qOK && cOK {
			ext.Measurements = append(ext.Measurements, types.Measurement{
				QuantumRegister:   "q",
				ClassicalRegister: "c",
				QubitIndices:      qIndices,
				ClassicalIndices:  cIndices,
				Line:              i + 1,
			})
			continue
		}

		// Symbolic register arguments: keep the names, leave indices empty.
		ext.Measurements = append(ext.Measurements, types.Measurement{
			QuantumRegister:   m[1],
			ClassicalRegister: m[2],
			Line:              i + 1,
		})
	}
}
