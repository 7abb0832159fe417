package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateKind_Predicates(t *testing.T) {
	single := []GateKind{GateH, GateX, GateY, GateZ, GateS, GateT, GateRX, GateRY, GateRZ}
	entangling := []GateKind{GateCNOT, GateCX, GateCZ, GateSWAP, GateToffoli, GateFredkin}

	for _, k := range single {
		assert.True(t, k.IsSingleQubit(), "%s should be single-qubit", k)
		assert.False(t, k.IsEntangling(), "%s should not be entangling", k)
	}
	for _, k := range entangling {
		assert.True(t, k.IsEntangling(), "%s should be entangling", k)
		assert.False(t, k.IsSingleQubit(), "%s should not be single-qubit", k)
	}

	assert.True(t, GateH.IsSuperposition())
	assert.True(t, GateRX.IsSuperposition())
	assert.True(t, GateRY.IsSuperposition())
	assert.False(t, GateX.IsSuperposition())
	assert.False(t, GateCX.IsSuperposition())

	assert.True(t, GateCX.IsCX())
	assert.True(t, GateCNOT.IsCX())
	assert.False(t, GateCZ.IsCX())
}

func TestNewGate_ControlledInvariant(t *testing.T) {
	allKinds := []GateKind{
		GateH, GateX, GateY, GateZ, GateS, GateT, GateRX, GateRY, GateRZ,
		GateCNOT, GateCX, GateCZ, GateSWAP, GateToffoli, GateFredkin,
		GateMeasure, GateBarrier, GateReset, GateCustom,
	}

	for _, k := range allKinds {
		g := NewGate(k, []int{1}, []int{0}, nil, 1)
		assert.Equal(t, k.IsEntangling(), g.IsControlled,
			"is_controlled must hold exactly for entangling kinds (%s)", k)
		if !g.IsControlled {
			assert.Empty(t, g.Controls, "non-controlled gate %s must carry no controls", k)
		}
	}
}

func TestCircuit_TotalsRecomputedFromLists(t *testing.T) {
	c := &Circuit{
		Language: LangQiskit,
		QuantumRegisters: []Register{
			{Name: "q", Size: 3},
			{Name: "anc", Size: 2},
		},
		ClassicalRegisters: []Register{{Name: "c", Size: 3}},
		Gates: []Gate{
			NewGate(GateH, []int{0}, nil, nil, 1),
			NewGate(GateCX, []int{1}, []int{0}, nil, 2),
		},
	}

	assert.Equal(t, 5, c.TotalQubits())
	assert.Equal(t, 3, c.TotalClassicalBits())
	assert.Equal(t, 2, c.TotalGates())

	c.QuantumRegisters = append(c.QuantumRegisters, Register{Name: "extra", Size: 1})
	c.Gates = append(c.Gates, NewGate(GateX, []int{0}, nil, nil, 3))
	assert.Equal(t, 6, c.TotalQubits(), "totals must track the lists")
	assert.Equal(t, 3, c.TotalGates())
}

func TestCircuit_GatePartitions(t *testing.T) {
	c := &Circuit{
		Gates: []Gate{
			NewGate(GateH, []int{0}, nil, nil, 1),
			NewGate(GateX, []int{1}, nil, nil, 2),
			NewGate(GateCX, []int{1}, []int{0}, nil, 3),
			NewGate(GateMeasure, []int{0}, nil, nil, 4),
		},
	}

	assert.Equal(t, 2, c.SingleQubitGateCount())
	assert.Len(t, c.EntanglingGates(), 1)
	assert.True(t, c.HasSuperposition())
	assert.True(t, c.HasEntanglement())
}

func TestCircuit_EmptyHasNothing(t *testing.T) {
	c := &Circuit{Language: LangOpenQASM}
	assert.Equal(t, 0, c.TotalQubits())
	assert.Equal(t, 0, c.TotalGates())
	assert.False(t, c.HasSuperposition())
	assert.False(t, c.HasEntanglement())
}

func TestLanguage_Classification(t *testing.T) {
	assert.True(t, LangQiskit.IsQuantum())
	assert.True(t, LangCirq.IsQuantum())
	assert.True(t, LangOpenQASM.IsQuantum())
	assert.True(t, LangQSharp.IsQuantum())
	assert.False(t, LangPython.IsQuantum())
	assert.False(t, LangUnknown.IsQuantum())

	assert.True(t, LangPython.IsSupported())
	assert.False(t, LangUnknown.IsSupported())
}
