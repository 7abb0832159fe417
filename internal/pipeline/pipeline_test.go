package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qceerrors "github.com/quantalab/qce/internal/errors"
	"github.com/quantalab/qce/internal/types"
)

const qiskitBell = `from qiskit import QuantumCircuit

qc = QuantumCircuit(2, 2)
qc.h(0)
qc.cx(0, 1)
qc.measure([0, 1], [0, 1])
`

func TestAnalyze_QiskitBell(t *testing.T) {
	p := New()
	result, err := p.Analyze(qiskitBell)
	require.NoError(t, err)

	assert.Equal(t, types.LangQiskit, result.DetectedLanguage)
	assert.True(t, result.IsQuantumEligible)
	assert.Equal(t, types.ProblemSimulation, result.ProblemType)

	assert.Equal(t, 2, result.QubitsRequired)
	assert.Equal(t, 2, result.GateCount)
	assert.Equal(t, 0.5, result.CXGateRatio)
	assert.Equal(t, 0.6, result.SuperpositionScore)
	assert.Equal(t, 0.5, result.EntanglementScore)
	assert.Equal(t, 2, result.CircuitDepth)
	assert.Equal(t, 2, result.ProblemSize)
	assert.Equal(t, types.ComplexityQuantumAdvantage, result.TimeComplexity)

	require.NotNil(t, result.QuantumMetrics)
	require.NotNil(t, result.ClassicalMetrics, "embedded notation keeps classical structure")
	assert.Len(t, result.SubmissionID, 16)
	assert.Contains(t, result.AnalysisNotes, "qiskit")
}

func TestAnalyze_OpenQASM(t *testing.T) {
	p := New()
	code := `OPENQASM 2.0;
include "qelib1.inc";
qreg q[2];
creg c[2];
h q[0];
cx q[0],q[1];
measure q[0] -> c[0];
`
	result, err := p.Analyze(code)
	require.NoError(t, err)

	assert.Equal(t, types.LangOpenQASM, result.DetectedLanguage)
	assert.Equal(t, 2, result.QubitsRequired)
	assert.Equal(t, 2, result.GateCount)
	assert.Equal(t, types.ComplexityQuantumAdvantage, result.TimeComplexity)
}

func TestAnalyze_CirqWithoutEntanglement(t *testing.T) {
	p := New()
	code := `import cirq
qubits = cirq.LineQubit.range(1)
circuit = cirq.Circuit()
circuit.append(cirq.X(qubits[0]))
`
	result, err := p.Analyze(code)
	require.NoError(t, err)

	assert.Equal(t, types.LangCirq, result.DetectedLanguage)
	assert.True(t, result.IsQuantumEligible)
	// No entangling gates: quantum, but no advantage claim.
	assert.Equal(t, types.ComplexityLinear, result.TimeComplexity)
	assert.Equal(t, 0.0, result.EntanglementScore)
}

func TestAnalyze_QSharp(t *testing.T) {
	p := New()
	code := `namespace Demo {
    open Microsoft.Quantum.Intrinsic;

    operation Prepare() : Unit {
        using (qubits = Qubit[2]) {
            H(qubits[0]);
        }
    }
}
`
	result, err := p.Analyze(code)
	require.NoError(t, err)

	assert.Equal(t, types.LangQSharp, result.DetectedLanguage)
	assert.Equal(t, 2, result.QubitsRequired)
	assert.True(t, result.IsQuantumEligible)
}

func TestAnalyze_ClassicalPython(t *testing.T) {
	p := New()
	code := `import math

def area(r):
    return math.pi * r * r

if __name__ == "__main__":
    print(area(2))
`
	result, err := p.Analyze(code)
	require.NoError(t, err)

	assert.Equal(t, types.LangPython, result.DetectedLanguage)
	assert.False(t, result.IsQuantumEligible)
	assert.Equal(t, types.ProblemClassical, result.ProblemType)
	assert.Nil(t, result.QuantumMetrics)
	require.NotNil(t, result.ClassicalMetrics)
	assert.Equal(t, 1.0, result.MemoryRequirementMB)
	assert.Equal(t, result.ClassicalMetrics.LinesOfCode, result.ProblemSize)
	assert.Equal(t, 0, result.QubitsRequired)
}

func TestAnalyze_UnsupportedInput(t *testing.T) {
	p := New()
	for _, code := range []string{"", "   ", "completely unrecognizable text 42"} {
		result, err := p.Analyze(code)
		assert.Nil(t, result)

		var unsupported *qceerrors.UnsupportedInputError
		require.ErrorAs(t, err, &unsupported, "code %q", code)
	}
}

func TestAnalyze_ProblemTypeKeywords(t *testing.T) {
	p := New()
	prefix := "from qiskit import QuantumCircuit\nqc = QuantumCircuit(2)\nqc.h(0)\n"

	cases := []struct {
		marker string
		want   types.ProblemType
	}{
		{"# grover diffusion step\n", types.ProblemSearch},
		{"# build the oracle\n", types.ProblemSearch},
		{"# vqe ansatz\n", types.ProblemOptimization},
		{"# shor period finding\n", types.ProblemFactorization},
		{"# qnn layer\n", types.ProblemMachineLearning},
		{"# apply qft\n", types.ProblemSampling},
		{"", types.ProblemSimulation},
	}

	for _, tc := range cases {
		result, err := p.Analyze(prefix + tc.marker)
		require.NoError(t, err)
		assert.Equal(t, tc.want, result.ProblemType, "marker %q", tc.marker)
	}
}

func TestAnalyze_KeywordPriorityOrder(t *testing.T) {
	p := New()
	code := "from qiskit import QuantumCircuit\n# shor with a grover subroutine\n"
	result, err := p.Analyze(code)
	require.NoError(t, err)
	assert.Equal(t, types.ProblemSearch, result.ProblemType, "search outranks factorization")
}

func TestAnalyze_Deterministic(t *testing.T) {
	p := New()

	first, err := p.Analyze(qiskitBell)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := p.Analyze(qiskitBell)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyze_SubmissionIDTracksContent(t *testing.T) {
	p := New()

	a, err := p.Analyze(qiskitBell)
	require.NoError(t, err)
	b, err := p.Analyze(qiskitBell + "# trailing comment\n")
	require.NoError(t, err)

	assert.NotEqual(t, a.SubmissionID, b.SubmissionID)
	assert.Len(t, b.SubmissionID, 16)
}
