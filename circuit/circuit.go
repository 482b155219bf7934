// Package circuit provides an ordered gate program over a fixed-size
// register, runnable against the quantum package, plus a small textual
// format for reading and writing programs.
package circuit

import (
	"fmt"

	"qgatesim/quantum"
)

// Op is a single gate application. The JSON shape doubles as the wire
// format accepted by the HTTP service.
type Op struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits,omitempty"`
	Params []float64 `json:"params,omitempty"`
}

// Circuit is an ordered gate program.
type Circuit struct {
	NumQubits int  `json:"num_qubits"`
	Ops       []Op `json:"ops"`
}

// opSpec fixes per-gate arity: number of qubit operands and parameters.
// qubits == 0 means the op acts on the whole register.
type opSpec struct {
	qubits int
	params int
}

var opSpecs = map[string]opSpec{
	"h":       {qubits: 1},
	"x":       {qubits: 1},
	"y":       {qubits: 1},
	"z":       {qubits: 1},
	"s":       {qubits: 1},
	"t":       {qubits: 1},
	"id":      {qubits: 1},
	"rx":      {qubits: 1, params: 1},
	"ry":      {qubits: 1, params: 1},
	"rz":      {qubits: 1, params: 1},
	"p":       {qubits: 1, params: 1},
	"cx":      {qubits: 2},
	"swap":    {qubits: 2},
	"ccx":     {qubits: 3},
	"diffuse": {},
}

// Add appends an op.
func (c *Circuit) Add(name string, params []float64, qubits ...int) {
	c.Ops = append(c.Ops, Op{Name: name, Qubits: qubits, Params: params})
}

// Validate checks op names, arities and qubit ranges without running
// anything.
func (c *Circuit) Validate() error {
	if c.NumQubits < 1 {
		return fmt.Errorf("circuit needs at least one qubit, got %d", c.NumQubits)
	}
	for i, op := range c.Ops {
		spec, ok := opSpecs[op.Name]
		if !ok {
			return fmt.Errorf("op %d: unknown gate %q", i, op.Name)
		}
		if len(op.Qubits) != spec.qubits {
			return fmt.Errorf("op %d: gate %q takes %d qubit operand(s), got %d", i, op.Name, spec.qubits, len(op.Qubits))
		}
		if len(op.Params) != spec.params {
			return fmt.Errorf("op %d: gate %q takes %d parameter(s), got %d", i, op.Name, spec.params, len(op.Params))
		}
		for _, q := range op.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("op %d: qubit %d out of range for %d-qubit register", i, q, c.NumQubits)
			}
		}
	}
	return nil
}

// Run executes the circuit from |0...0⟩ and returns the final state.
func (c *Circuit) Run() (*quantum.StateVector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	state := quantum.NewStateVector(c.NumQubits)
	for i, op := range c.Ops {
		next, err := applyOp(state, op)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Name, err)
		}
		state = next
	}
	return state, nil
}

func applyOp(st *quantum.StateVector, op Op) (*quantum.StateVector, error) {
	switch op.Name {
	case "h":
		return st.Apply(quantum.Hadamard, op.Qubits[0])
	case "x":
		return st.Apply(quantum.PauliX, op.Qubits[0])
	case "y":
		return st.Apply(quantum.PauliY, op.Qubits[0])
	case "z":
		return st.Apply(quantum.PauliZ, op.Qubits[0])
	case "s":
		return st.Apply(quantum.SGate, op.Qubits[0])
	case "t":
		return st.Apply(quantum.TGate, op.Qubits[0])
	case "id":
		return st.Apply(quantum.Identity, op.Qubits[0])
	case "rx":
		return applyRotation(st, op, quantum.AxisX)
	case "ry":
		return applyRotation(st, op, quantum.AxisY)
	case "rz":
		return applyRotation(st, op, quantum.AxisZ)
	case "p":
		return st.Apply(quantum.PhaseGate(op.Params[0]), op.Qubits[0])
	case "cx":
		return st.Apply(quantum.CNOT, op.Qubits[0], op.Qubits[1])
	case "swap":
		return st.Apply(quantum.Swap, op.Qubits[0], op.Qubits[1])
	case "ccx":
		return st.Apply(quantum.Toffoli, op.Qubits[0], op.Qubits[1], op.Qubits[2])
	case "diffuse":
		return st.ApplyGroverDiffusion(), nil
	}
	return nil, fmt.Errorf("unknown gate %q", op.Name)
}

func applyRotation(st *quantum.StateVector, op Op, axis quantum.Axis) (*quantum.StateVector, error) {
	g, err := quantum.RotationGate(op.Params[0], axis)
	if err != nil {
		return nil, err
	}
	return st.Apply(g, op.Qubits[0])
}
