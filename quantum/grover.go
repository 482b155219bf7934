package quantum

// ApplyGroverDiffusion performs the amplitude-amplification diffusion
// step: apply H^⊗n, replace every amplitude a by 2·mean − a (reflection
// about the average of the transformed state, computed fresh each call),
// then apply H^⊗n again.
func (s *StateVector) ApplyGroverDiffusion() *StateVector {
	hn := HadamardN(s.NumQubits)
	st, _ := s.ApplyGate(hn)

	var mean complex128
	for _, a := range st.Amplitudes {
		mean += a
	}
	mean /= complex(float64(len(st.Amplitudes)), 0)

	flipped := make([]complex128, len(st.Amplitudes))
	for i, a := range st.Amplitudes {
		flipped[i] = 2*mean - a
	}

	mid := &StateVector{Amplitudes: flipped, NumQubits: s.NumQubits}
	out, _ := mid.ApplyGate(hn)
	return out
}
