package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedLibraryIsUnitary(t *testing.T) {
	for _, g := range []*Gate{Hadamard, PauliX, PauliY, PauliZ, Identity, SGate, TGate, CNOT, Swap, Toffoli} {
		assert.NoError(t, g.VerifyUnitary(1e-12), "gate %s", g.Name())
	}
}

func TestDerivedGatesAreUnitary(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		g, err := RotationGate(0.73, axis)
		require.NoError(t, err)
		assert.NoError(t, g.VerifyUnitary(1e-12))
	}
	assert.NoError(t, PhaseGate(1.2).VerifyUnitary(1e-12))

	cu, err := ControlledU(TGate)
	require.NoError(t, err)
	assert.NoError(t, cu.VerifyUnitary(1e-12))
}

func TestRotationGateUnknownAxis(t *testing.T) {
	_, err := RotationGate(1.0, "w")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRotationGateAxisCaseInsensitive(t *testing.T) {
	g, err := RotationGate(math.Pi/3, "X")
	require.NoError(t, err)
	assert.Equal(t, "RX", g.Name())
}

func TestControlledUShape(t *testing.T) {
	cu, err := ControlledU(PauliX)
	require.NoError(t, err)
	assert.Equal(t, 2, cu.Qubits())

	// Control-0 block is identity, control-1 block is u.
	assert.Equal(t, complex128(1), cu.At(0, 0))
	assert.Equal(t, complex128(1), cu.At(1, 1))
	assert.Equal(t, complex128(1), cu.At(2, 3))
	assert.Equal(t, complex128(1), cu.At(3, 2))

	_, err = ControlledU(CNOT)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewGateShapeCheck(t *testing.T) {
	_, err := NewGate("bad", 1, []complex128{1, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewGate("bad", 0, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	g, err := NewGate("ok", 1, []complex128{1, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Dim())
}

func TestNewUnitaryGateRejectsNonUnitary(t *testing.T) {
	_, err := NewUnitaryGate("shear", 1, []complex128{1, 1, 0, 1})
	assert.ErrorIs(t, err, ErrNonUnitaryGate)

	// The same matrix passes the shape-only constructor.
	_, err = NewGate("shear", 1, []complex128{1, 1, 0, 1})
	assert.NoError(t, err)
}

func TestKron(t *testing.T) {
	hh := Kron(Hadamard, Hadamard)
	assert.Equal(t, 2, hh.Qubits())

	// Every entry of H⊗H has magnitude 1/2; the sign is
	// (-1)^popcount(i&j).
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.5
			if popcount(i&j)%2 == 1 {
				want = -0.5
			}
			assert.InDelta(t, want, real(hh.At(i, j)), 1e-12, "entry (%d,%d)", i, j)
			assert.InDelta(t, 0, imag(hh.At(i, j)), 1e-12)
		}
	}
}

func TestHadamardN(t *testing.T) {
	for n := 1; n <= 4; n++ {
		hn := HadamardN(n)
		assert.Equal(t, n, hn.Qubits())
		assert.NoError(t, hn.VerifyUnitary(1e-10))
	}
}

func popcount(x int) int {
	count := 0
	for x > 0 {
		count += x & 1
		x >>= 1
	}
	return count
}
