// Package types defines the unified circuit model shared by every
// extractor and analyzer. All derived totals are recomputed from the
// underlying lists so they can never drift out of sync.
package types

// Language identifies a supported source notation.
type Language string

const (
	LangPython   Language = "python"
	LangQiskit   Language = "qiskit"
	LangCirq     Language = "cirq"
	LangOpenQASM Language = "openqasm"
	LangQSharp   Language = "qsharp"
	LangUnknown  Language = "unknown"
)

// SupportedLanguages lists every notation an extractor exists for.
var SupportedLanguages = []Language{LangPython, LangQiskit, LangQSharp, LangCirq, LangOpenQASM}

// IsQuantum reports whether the notation can express quantum circuits.
func (l Language) IsQuantum() bool {
	switch l {
	case LangQiskit, LangCirq, LangOpenQASM, LangQSharp:
		return true
	}
	return false
}

// IsSupported reports whether an extractor exists for the notation.
func (l Language) IsSupported() bool {
	return l != LangUnknown && l != ""
}

// GateKind is the closed set of recognized gate operations.
type GateKind string

const (
	// Single-qubit gates
	GateH  GateKind = "hadamard"
	GateX  GateKind = "pauli_x"
	GateY  GateKind = "pauli_y"
	GateZ  GateKind = "pauli_z"
	GateS  GateKind = "s_gate"
	GateT  GateKind = "t_gate"
	GateRX GateKind = "rotation_x"
	GateRY GateKind = "rotation_y"
	GateRZ GateKind = "rotation_z"

	// Entangling gates
	GateCNOT    GateKind = "cnot"
	GateCX      GateKind = "cx"
	GateCZ      GateKind = "cz"
	GateSWAP    GateKind = "swap"
	GateToffoli GateKind = "toffoli"
	GateFredkin GateKind = "fredkin"

	// Structural operations
	GateMeasure GateKind = "measurement"
	GateBarrier GateKind = "barrier"
	GateReset   GateKind = "reset"
	GateCustom  GateKind = "custom"
)

var singleQubitKinds = map[GateKind]bool{
	GateH: true, GateX: true, GateY: true, GateZ: true,
	GateS: true, GateT: true, GateRX: true, GateRY: true, GateRZ: true,
}

var entanglingKinds = map[GateKind]bool{
	GateCNOT: true, GateCX: true, GateCZ: true,
	GateSWAP: true, GateToffoli: true, GateFredkin: true,
}

var superpositionKinds = map[GateKind]bool{
	GateH: true, GateRX: true, GateRY: true,
}

// IsSingleQubit reports whether the kind is a single-qubit gate.
func (k GateKind) IsSingleQubit() bool { return singleQubitKinds[k] }

// IsEntangling reports whether the kind can produce entanglement.
func (k GateKind) IsEntangling() bool { return entanglingKinds[k] }

// IsSuperposition reports whether the kind can place a qubit into superposition.
func (k GateKind) IsSuperposition() bool { return superpositionKinds[k] }

// IsCX reports whether the kind is a CNOT/CX gate.
func (k GateKind) IsCX() bool { return k == GateCNOT || k == GateCX }

// Register is a contiguous block of qubits or classical bits.
type Register struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Line int    `json:"line_number,omitempty"`
}

// Gate is a single gate operation in textual appearance order.
// IsControlled is derived from the kind and must never be set by hand;
// use NewGate.
type Gate struct {
	Kind         GateKind  `json:"gate_type"`
	Targets      []int     `json:"qubits"`
	Controls     []int     `json:"control_qubits,omitempty"`
	Params       []float64 `json:"parameters,omitempty"`
	IsControlled bool      `json:"is_controlled"`
	Line         int       `json:"line_number,omitempty"`
}

// NewGate builds a gate with IsControlled derived from the kind, keeping
// the is_controlled/entangling invariant intact for every extractor.
func NewGate(kind GateKind, targets, controls []int, params []float64, line int) Gate {
	if !kind.IsEntangling() {
		controls = nil
	}
	return Gate{
		Kind:         kind,
		Targets:      targets,
		Controls:     controls,
		Params:       params,
		IsControlled: kind.IsEntangling(),
		Line:         line,
	}
}

// Measurement records a quantum-to-classical readout. Indices are
// best-effort: extraction from loosely structured notations leaves them
// empty rather than guessing.
type Measurement struct {
	QuantumRegister   string `json:"quantum_register"`
	ClassicalRegister string `json:"classical_register"`
	QubitIndices      []int  `json:"qubit_indices"`
	ClassicalIndices  []int  `json:"classical_indices"`
	Line              int    `json:"line_number,omitempty"`
}

// Function is a declared callable unit (def/operation/function header).
type Function struct {
	Name string   `json:"name"`
	Line int      `json:"line,omitempty"`
	Args []string `json:"args,omitempty"`
}

// SourceMetadata carries the shallow structural counts every extractor
// computes over the raw text.
type SourceMetadata struct {
	LinesOfCode      int `json:"lines_of_code"`
	LoopCount        int `json:"loop_count"`
	ConditionalCount int `json:"conditional_count"`
	NestingDepth     int `json:"nesting_depth"`
}

// Extraction is the result of structural extraction for one notation.
// Extraction never fails: unrecognized constructs are dropped and, when
// interesting, recorded in Skipped for observability.
type Extraction struct {
	Imports            []string       `json:"imports"`
	QuantumRegisters   []Register     `json:"quantum_registers"`
	ClassicalRegisters []Register     `json:"classical_registers"`
	Gates              []Gate         `json:"gates"`
	Measurements       []Measurement  `json:"measurements"`
	Functions          []Function     `json:"functions"`
	Metadata           SourceMetadata `json:"metadata"`
	Skipped            []string       `json:"skipped,omitempty"`
}

// Circuit is the unified, language-agnostic representation of a
// submission. Gate order mirrors textual appearance order and stands in
// for execution order.
type Circuit struct {
	Language           Language      `json:"source_language"`
	QuantumRegisters   []Register    `json:"quantum_registers"`
	ClassicalRegisters []Register    `json:"classical_registers"`
	Gates              []Gate        `json:"gates"`
	Measurements       []Measurement `json:"measurements"`
	Imports            []string      `json:"imports"`
	Functions          []Function    `json:"functions"`
}

// NewCircuit assembles the unified representation from an extraction.
func NewCircuit(lang Language, ext *Extraction) *Circuit {
	return &Circuit{
		Language:           lang,
		QuantumRegisters:   ext.QuantumRegisters,
		ClassicalRegisters: ext.ClassicalRegisters,
		Gates:              ext.Gates,
		Measurements:       ext.Measurements,
		Imports:            ext.Imports,
		Functions:          ext.Functions,
	}
}

// TotalQubits is the sum of quantum register sizes.
func (c *Circuit) TotalQubits() int {
	total := 0
	for _, r := range c.QuantumRegisters {
		total += r.Size
	}
	return total
}

// TotalClassicalBits is the sum of classical register sizes.
func (c *Circuit) TotalClassicalBits() int {
	total := 0
	for _, r := range c.ClassicalRegisters {
		total += r.Size
	}
	return total
}

// TotalGates is the number of extracted gate operations.
func (c *Circuit) TotalGates() int { return len(c.Gates) }

// EntanglingGates returns the gates capable of producing entanglement.
func (c *Circuit) EntanglingGates() []Gate {
	var out []Gate
	for _, g := range c.Gates {
		if g.Kind.IsEntangling() {
			out = append(out, g)
		}
	}
	return out
}

// SingleQubitGateCount counts gates in the single-qubit set.
func (c *Circuit) SingleQubitGateCount() int {
	n := 0
	for _, g := range c.Gates {
		if g.Kind.IsSingleQubit() {
			n++
		}
	}
	return n
}

// HasSuperposition reports whether any superposition-producing gate is present.
func (c *Circuit) HasSuperposition() bool {
	for _, g := range c.Gates {
		if g.Kind.IsSuperposition() {
			return true
		}
	}
	return false
}

// HasEntanglement reports whether any entangling gate is present.
func (c *Circuit) HasEntanglement() bool {
	for _, g := range c.Gates {
		if g.Kind.IsEntangling() {
			return true
		}
	}
	return false
}
