// Package quantum implements a small state-vector simulator: a register
// of qubits is held as a vector of complex amplitudes and evolved by
// multiplication with unitary gate matrices.
//
// The simulator uses a row-vector convention throughout: amplitudes form
// a row vector and a gate is applied by right-multiplying the state with
// the gate matrix (out[j] = Σ_i amp[i]·M[i][j]). Matrix constants in this
// package are written for that convention; do not transpose them.
package quantum

import (
	"fmt"
	"math/bits"
)

// StateVector holds the complex amplitudes of an n-qubit register.
// Amplitude index i corresponds to the basis label Label(i), with qubit 0
// as the most significant bit. Gate applications never mutate a
// StateVector; each one returns a fresh vector.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns the |0...0⟩ state of the given register size:
// all amplitude at index 0.
func NewStateVector(numQubits int) *StateVector {
	if numQubits < 1 {
		numQubits = 1
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// NewStateVectorFrom wraps caller-supplied amplitudes. The slice is
// copied. Its length must be a power of two, at least 2. The amplitudes
// are taken as given: no renormalization is applied, so a not-quite
// normalized input carries through to measurement probabilities.
func NewStateVectorFrom(amps []complex128) (*StateVector, error) {
	n := len(amps)
	if n < 2 || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: state length %d is not a power of two ≥ 2", ErrInvalidArgument, n)
	}
	cp := make([]complex128, n)
	copy(cp, amps)
	return &StateVector{Amplitudes: cp, NumQubits: bits.TrailingZeros(uint(n))}, nil
}

// Clone returns an independent copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Norm returns the sum of squared magnitudes. For any state produced by
// applying unitary gates to a normalized input this is 1 up to floating
// tolerance.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, a := range s.Amplitudes {
		total += real(a)*real(a) + imag(a)*imag(a)
	}
	return total
}

// Probabilities returns |a_i|² for every basis index, as given, without
// renormalization.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, a := range s.Amplitudes {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

// Label returns the zero-padded binary label of basis index i, one
// character per qubit, qubit 0 first.
func (s *StateVector) Label(i int) string {
	return fmt.Sprintf("%0*b", s.NumQubits, i)
}
