package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroverDiffusionFixedPoint(t *testing.T) {
	// |0...0⟩ transforms to the uniform superposition under H^⊗n, which
	// the mean reflection leaves alone, so the full step maps it to
	// itself.
	for n := 1; n <= 3; n++ {
		s := NewStateVector(n)
		out := s.ApplyGroverDiffusion()
		assertStatesEqual(t, s.Amplitudes, out, 1e-12)
	}
}

func TestGroverDiffusionBasisStates(t *testing.T) {
	// Every other basis state transforms to a zero-mean vector under
	// H^⊗n, so the reflection negates it and the step yields −|i⟩.
	for i := 1; i < 4; i++ {
		amps := make([]complex128, 4)
		amps[i] = 1
		s := mustState(t, amps)

		out := s.ApplyGroverDiffusion()

		want := make([]complex128, 4)
		want[i] = -1
		assertStatesEqual(t, want, out, 1e-12)
	}
}

func TestGroverDiffusionPreservesNorm(t *testing.T) {
	states := []*StateVector{
		mustState(t, []complex128{0.5, complex(0, 0.5), -0.5, complex(0, -0.5)}),
		mustState(t, []complex128{complex(0.6, 0), 0, 0, complex(0, 0.8)}),
		CreateBellState(),
	}
	for _, s := range states {
		out := s.ApplyGroverDiffusion()
		assert.InDelta(t, 1.0, out.Norm(), 1e-10)
	}
}

func TestGroverDiffusionOracleFlippedUniform(t *testing.T) {
	// Uniform 2-qubit superposition with the amplitude of |10⟩ sign
	// flipped by an oracle. The step is linear, so with u the uniform
	// state: D(u − e2) = D(u) + e2 = e0 − u + e2 = (1/2)(1, −1, 1, −1).
	s, err := NewStateVector(2).ApplyGate(HadamardN(2))
	if err != nil {
		t.Fatal(err)
	}
	flipped := append([]complex128(nil), s.Amplitudes...)
	flipped[2] = -flipped[2]
	mid := mustState(t, flipped)

	out := mid.ApplyGroverDiffusion()

	assert.InDelta(t, 1.0, out.Norm(), 1e-10)
	assertStatesEqual(t, []complex128{0.5, -0.5, 0.5, -0.5}, out, 1e-12)
}
