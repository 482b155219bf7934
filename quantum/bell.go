package quantum

// CreateBellState prepares the maximally entangled pair
// (|00⟩ + |11⟩)/√2: start at |00⟩, apply Hadamard on qubit 0 padded with
// identity on qubit 1, then CNOT with qubit 0 as control.
func CreateBellState() *StateVector {
	s := NewStateVector(2)
	s, _ = s.ApplyGate(Kron(Hadamard, Identity))
	s, _ = s.ApplyCNOT()
	return s
}

// CreateUniformPair prepares a two-qubit register by applying the
// Hadamard transform across the whole register and then CNOT. The result
// is the uniform superposition over all four outcomes, not an entangled
// pair. Kept for callers that expect that distribution.
func CreateUniformPair() *StateVector {
	s := NewStateVector(2)
	s, _ = s.ApplyGate(HadamardN(2))
	s, _ = s.ApplyCNOT()
	return s
}
