package quantum

import "fmt"

// ApplyGate right-multiplies the state row vector by the gate matrix.
// The gate must span the whole register: its dimension has to equal the
// number of amplitudes.
func (s *StateVector) ApplyGate(g *Gate) (*StateVector, error) {
	n := len(s.Amplitudes)
	if g.Dim() != n {
		return nil, fmt.Errorf("%w: gate %s is %d×%d, state has %d amplitudes",
			ErrDimensionMismatch, g.name, g.Dim(), g.Dim(), n)
	}
	out := make([]complex128, n)
	for j := 0; j < n; j++ {
		var acc complex128
		for i := 0; i < n; i++ {
			acc += s.Amplitudes[i] * g.At(i, j)
		}
		out[j] = acc
	}
	return &StateVector{Amplitudes: out, NumQubits: s.NumQubits}, nil
}

// Apply embeds a k-qubit gate on the named target qubits of the
// register. The first target maps to the gate's most significant qubit.
// Targets must be distinct, in range, and match the gate's arity.
func (s *StateVector) Apply(g *Gate, targets ...int) (*StateVector, error) {
	k := len(targets)
	if g.qubits != k {
		return nil, fmt.Errorf("%w: gate %s acts on %d qubits, got %d targets",
			ErrDimensionMismatch, g.name, g.qubits, k)
	}
	seen := make(map[int]bool, k)
	shifts := make([]int, k)
	for idx, t := range targets {
		if t < 0 || t >= s.NumQubits {
			return nil, fmt.Errorf("%w: target qubit %d out of range for %d-qubit register",
				ErrInvalidArgument, t, s.NumQubits)
		}
		if seen[t] {
			return nil, fmt.Errorf("%w: duplicate target qubit %d", ErrInvalidArgument, t)
		}
		seen[t] = true
		shifts[idx] = s.NumQubits - 1 - t
	}

	dim := 1 << k
	out := make([]complex128, len(s.Amplitudes))
	for j := range out {
		// Column index within the gate's 2^k subspace.
		sub := 0
		base := j
		for idx, sh := range shifts {
			if j&(1<<sh) != 0 {
				sub |= 1 << (k - 1 - idx)
			}
			base &^= 1 << sh
		}
		var acc complex128
		for r := 0; r < dim; r++ {
			i := base
			for idx, sh := range shifts {
				if r&(1<<(k-1-idx)) != 0 {
					i |= 1 << sh
				}
			}
			acc += s.Amplitudes[i] * g.At(r, sub)
		}
		out[j] = acc
	}
	return &StateVector{Amplitudes: out, NumQubits: s.NumQubits}, nil
}

// ApplyHadamard applies the library Hadamard across the whole register.
func (s *StateVector) ApplyHadamard() (*StateVector, error) { return s.ApplyGate(Hadamard) }

// ApplyPauliX applies the Pauli-X (NOT) gate.
func (s *StateVector) ApplyPauliX() (*StateVector, error) { return s.ApplyGate(PauliX) }

// ApplyPauliY applies the Pauli-Y gate.
func (s *StateVector) ApplyPauliY() (*StateVector, error) { return s.ApplyGate(PauliY) }

// ApplyPauliZ applies the Pauli-Z gate.
func (s *StateVector) ApplyPauliZ() (*StateVector, error) { return s.ApplyGate(PauliZ) }

// ApplyS applies the S (π/2 phase) gate.
func (s *StateVector) ApplyS() (*StateVector, error) { return s.ApplyGate(SGate) }

// ApplyT applies the T (π/4 phase) gate.
func (s *StateVector) ApplyT() (*StateVector, error) { return s.ApplyGate(TGate) }

// ApplyCNOT applies controlled-NOT to a two-qubit state.
func (s *StateVector) ApplyCNOT() (*StateVector, error) { return s.ApplyGate(CNOT) }

// ApplySwap applies SWAP to a two-qubit state.
func (s *StateVector) ApplySwap() (*StateVector, error) { return s.ApplyGate(Swap) }

// ApplyToffoli applies controlled-controlled-NOT to a three-qubit state.
func (s *StateVector) ApplyToffoli() (*StateVector, error) { return s.ApplyGate(Toffoli) }

// ApplyRotation derives the rotation matrix for the given angle and axis
// at call time and applies it. An unknown axis fails with
// ErrInvalidArgument; there is no silent default.
func (s *StateVector) ApplyRotation(angle float64, axis Axis) (*StateVector, error) {
	g, err := RotationGate(angle, axis)
	if err != nil {
		return nil, err
	}
	return s.ApplyGate(g)
}

// ApplyPhase applies diag(1, e^{iφ}).
func (s *StateVector) ApplyPhase(phase float64) (*StateVector, error) {
	return s.ApplyGate(PhaseGate(phase))
}

// ApplyControlledU builds the controlled version of the one-qubit gate u
// and applies it to a two-qubit state.
func (s *StateVector) ApplyControlledU(u *Gate) (*StateVector, error) {
	cu, err := ControlledU(u)
	if err != nil {
		return nil, err
	}
	return s.ApplyGate(cu)
}

// ApplyCustomGate applies a caller-supplied gate to the whole register.
// No unitarity check is performed; build the gate with NewUnitaryGate or
// call Gate.VerifyUnitary beforehand to opt in to strict checking.
func (s *StateVector) ApplyCustomGate(g *Gate) (*StateVector, error) {
	return s.ApplyGate(g)
}
