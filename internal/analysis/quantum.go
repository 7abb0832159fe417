package analysis

import (
	"math"

	"github.com/quantalab/qce/internal/types"
)

// Typical hardware timings in microseconds, used by the runtime estimate.
const (
	singleQubitGateTimeUS = 0.1
	twoQubitGateTimeUS    = 0.5
	measurementTimeUS     = 1.0
)

// minimalMemoryMB is reported for a zero-qubit representation instead of 0.
const minimalMemoryMB = 0.01

// QuantumAnalyzer computes circuit-level metrics from the unified
// representation. Deterministic, pure function of its input.
type QuantumAnalyzer struct{}

// NewQuantumAnalyzer creates a quantum analyzer.
func NewQuantumAnalyzer() *QuantumAnalyzer { return &QuantumAnalyzer{} }

// Analyze computes the quantum metrics for one circuit.
func (a *QuantumAnalyzer) Analyze(c *types.Circuit) types.QuantumMetrics {
	totalGates := c.TotalGates()
	singleQubit := c.SingleQubitGateCount()
	entangling := c.EntanglingGates()

	cxCount := 0
	for _, g := range entangling {
		if g.Kind.IsCX() {
			cxCount++
		}
	}

	depth := a.circuitDepth(c)

	return types.QuantumMetrics{
		QubitsRequired:     c.TotalQubits(),
		CircuitDepth:       depth,
		GateCount:          totalGates,
		SingleQubitGates:   singleQubit,
		TwoQubitGates:      len(entangling),
		CXGateCount:        cxCount,
		CXGateRatio:        float64(cxCount) / float64(max(totalGates, 1)),
		MeasurementCount:   len(c.Measurements),
		SuperpositionScore: a.superpositionScore(c),
		EntanglementScore:  a.entanglementScore(c),
		HasSuperposition:   c.HasSuperposition(),
		HasEntanglement:    c.HasEntanglement(),
		QuantumVolume:      a.quantumVolume(c.TotalQubits(), depth),
		EstimatedRuntimeMS: a.estimateRuntimeMS(singleQubit, len(entangling), len(c.Measurements)),
	}
}

// superpositionScore is the ratio of superposition-producing gates to
// total gates, boosted by 1.2 when a Hadamard is present (it creates an
// even superposition), clamped to [0,1].
func (a *QuantumAnalyzer) superpositionScore(c *types.Circuit) float64 {
	count := 0
	hasH := false
	for _, g := range c.Gates {
		if g.Kind.IsSuperposition() {
			count++
		}
		if g.Kind == types.GateH {
			hasH = true
		}
	}

	score := math.Min(float64(count)/float64(max(c.TotalGates(), 1)), 1.0)
	if hasH {
		score = math.Min(score*1.2, 1.0)
	}
	return round3(score)
}

// entanglementScore is the entangling-gate ratio with a qubit-count
// boost: wider circuits have more entanglement potential. Clamped to [0,1].
func (a *QuantumAnalyzer) entanglementScore(c *types.Circuit) float64 {
	score := float64(len(c.EntanglingGates())) / float64(max(c.TotalGates(), 1))

	if qubits := c.TotalQubits(); qubits > 2 {
		score *= math.Min(float64(qubits)/10, 1.5)
	}
	return math.Min(round3(score), 1.0)
}

// circuitDepth is the documented sequential proxy, not a scheduling-aware
// depth: it divides the gate count by a crude parallelism factor and
// never drops below a third of the gate count. It deliberately ignores
// which qubits the gates act on; downstream consumers calibrate against
// this definition.
func (a *QuantumAnalyzer) circuitDepth(c *types.Circuit) int {
	totalGates := c.TotalGates()
	parallelism := max(c.TotalQubits()/2, 1)
	return max(totalGates/parallelism, totalGates/3)
}

// quantumVolume is min(qubits, depth)^2, or 0 when either is 0.
func (a *QuantumAnalyzer) quantumVolume(qubits, depth int) float64 {
	if qubits == 0 || depth == 0 {
		return 0.0
	}
	side := float64(min(qubits, depth))
	return side * side
}

// estimateRuntimeMS is a weighted sum of gate and measurement timings,
// converted from microseconds to milliseconds.
func (a *QuantumAnalyzer) estimateRuntimeMS(singleQubit, twoQubit, measurements int) float64 {
	totalUS := float64(singleQubit)*singleQubitGateTimeUS +
		float64(twoQubit)*twoQubitGateTimeUS +
		float64(measurements)*measurementTimeUS
	return round3(totalUS / 1000)
}

// EstimateMemoryMB estimates the memory needed to simulate an n-qubit
// state classically: 2^n amplitudes at 16 bytes each, in megabytes.
func (a *QuantumAnalyzer) EstimateMemoryMB(nQubits int) float64 {
	if nQubits == 0 {
		return minimalMemoryMB
	}
	bytes := math.Pow(2, float64(nQubits)) * 16
	return round3(bytes / (1024 * 1024))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
