package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantalab/qce/internal/types"
)

func TestDetect_Qiskit(t *testing.T) {
	d := New()
	code := `
from qiskit import QuantumCircuit, QuantumRegister
qc = QuantumCircuit(2)
qc.h(0)
qc.cx(0, 1)
`
	result := d.Detect(code)
	assert.Equal(t, types.LangQiskit, result.Language)
	assert.Greater(t, result.Confidence, 0.0)
	assert.True(t, result.Supported)
}

func TestDetect_Cirq(t *testing.T) {
	d := New()
	code := `
import cirq
qubits = cirq.LineQubit.range(2)
circuit = cirq.Circuit()
`
	result := d.Detect(code)
	assert.Equal(t, types.LangCirq, result.Language)
	assert.Greater(t, result.Confidence, 0.0)
	assert.True(t, result.Supported)
}

func TestDetect_QSharp(t *testing.T) {
	d := New()
	code := `
namespace Bell {
    open Microsoft.Quantum.Intrinsic;

    operation Entangle() : Unit {
        using (qubits = Qubit[2]) {
            H(qubits[0]);
        }
    }
}
`
	result := d.Detect(code)
	assert.Equal(t, types.LangQSharp, result.Language)
	assert.Greater(t, result.Confidence, 0.0)
	assert.True(t, result.Supported)
}

func TestDetect_OpenQASM(t *testing.T) {
	d := New()
	code := `OPENQASM 2.0;
include "qelib1.inc";
qreg q[2];
creg c[2];
h q[0];
`
	result := d.Detect(code)
	assert.Equal(t, types.LangOpenQASM, result.Language)
	assert.Greater(t, result.Confidence, 0.0)
	assert.True(t, result.Supported)
}

func TestDetect_PythonFallback(t *testing.T) {
	d := New()
	code := `
import math

def area(r):
    return math.pi * r * r

if __name__ == "__main__":
    print(area(2))
`
	result := d.Detect(code)
	assert.Equal(t, types.LangPython, result.Language)
	assert.Equal(t, 0.7, result.Confidence)
	assert.True(t, result.Supported)
}

func TestDetect_EmptyInput(t *testing.T) {
	d := New()
	for _, code := range []string{"", "   ", "\n\t\n"} {
		result := d.Detect(code)
		assert.Equal(t, types.LangUnknown, result.Language)
		assert.Equal(t, 0.0, result.Confidence)
		assert.False(t, result.Supported)
	}
}

func TestDetect_UnknownText(t *testing.T) {
	d := New()
	result := d.Detect("the quick brown fox jumps over 12345")
	assert.Equal(t, types.LangUnknown, result.Language)
	assert.Equal(t, 0.0, result.Confidence)
	assert.False(t, result.Supported)
}

// Equal top scores resolve by fixed table order, never map iteration.
func TestDetect_TieBreakIsDeterministic(t *testing.T) {
	d := New()
	code := "import qiskit\nimport cirq\n"

	first := d.Detect(code)
	assert.Equal(t, types.LangQiskit, first.Language)

	for i := 0; i < 50; i++ {
		assert.Equal(t, first, d.Detect(code))
	}
}

func TestDetect_ConfidenceNormalized(t *testing.T) {
	d := New()
	// All five Qiskit signatures present.
	code := `
from qiskit import QuantumCircuit
import qiskit
q = QuantumRegister(2)
c = ClassicalRegister(2)
qc = QuantumCircuit(q, c)
`
	result := d.Detect(code)
	assert.Equal(t, types.LangQiskit, result.Language)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestDetect_PythonNeedsTwoIndicators(t *testing.T) {
	d := New()
	// A single indicator is not enough for the generic fallback.
	result := d.Detect("x = 1\ny = x + 2\n")
	assert.Equal(t, types.LangUnknown, result.Language)
}
