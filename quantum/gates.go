package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Axis selects the rotation axis for RotationGate.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Gate is an immutable unitary matrix acting on a fixed number of
// qubits. The matrix is stored exactly as applied in the row-vector
// convention (see the package comment). Gates are safe for concurrent
// read-only use; the fixed library below is constructed once and shared.
type Gate struct {
	name   string
	qubits int
	m      *mat.CDense
}

// Name returns the gate's display name.
func (g *Gate) Name() string { return g.name }

// Qubits returns the number of qubits the gate acts on.
func (g *Gate) Qubits() int { return g.qubits }

// Dim returns the matrix dimension 2^k.
func (g *Gate) Dim() int { return 1 << g.qubits }

// At returns the matrix element in row i, column j.
func (g *Gate) At(i, j int) complex128 { return g.m.At(i, j) }

// Matrix returns a copy of the underlying matrix.
func (g *Gate) Matrix() *mat.CDense {
	d := g.Dim()
	out := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			out.Set(i, j, g.m.At(i, j))
		}
	}
	return out
}

func newGate(name string, qubits int, data []complex128) *Gate {
	d := 1 << qubits
	return &Gate{name: name, qubits: qubits, m: mat.NewCDense(d, d, data)}
}

// The fixed gate library. Constructed once at package init and treated as
// read-only from then on.
var (
	Hadamard = newGate("H", 1, scaled(1/math.Sqrt2, []complex128{
		1, 1,
		1, -1,
	}))
	PauliX = newGate("X", 1, []complex128{
		0, 1,
		1, 0,
	})
	PauliY = newGate("Y", 1, []complex128{
		0, -1i,
		1i, 0,
	})
	PauliZ = newGate("Z", 1, []complex128{
		1, 0,
		0, -1,
	})
	Identity = newGate("I", 1, []complex128{
		1, 0,
		0, 1,
	})
	SGate = newGate("S", 1, []complex128{
		1, 0,
		0, 1i,
	})
	TGate = newGate("T", 1, []complex128{
		1, 0,
		0, cmplx.Exp(complex(0, math.Pi/4)),
	})
	CNOT = newGate("CNOT", 2, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
	Swap = newGate("SWAP", 2, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
	Toffoli = toffoliGate()
)

func scaled(f float64, data []complex128) []complex128 {
	c := complex(f, 0)
	for i := range data {
		data[i] *= c
	}
	return data
}

// toffoliGate builds the 8×8 identity with the last 2×2 block replaced
// by Pauli-X: controlled-controlled-NOT.
func toffoliGate() *Gate {
	data := make([]complex128, 64)
	for i := 0; i < 6; i++ {
		data[i*8+i] = 1
	}
	data[6*8+7] = 1
	data[7*8+6] = 1
	return newGate("CCX", 3, data)
}

// RotationGate derives the single-qubit rotation matrix for the given
// angle (radians) about the given axis. The axis is matched
// case-insensitively; anything other than x, y or z is an error.
func RotationGate(angle float64, axis Axis) (*Gate, error) {
	c := complex(math.Cos(angle/2), 0)
	sin := math.Sin(angle / 2)
	switch Axis(strings.ToLower(string(axis))) {
	case AxisX:
		js := complex(0, -sin)
		return newGate("RX", 1, []complex128{
			c, js,
			js, c,
		}), nil
	case AxisY:
		s := complex(sin, 0)
		return newGate("RY", 1, []complex128{
			c, -s,
			s, c,
		}), nil
	case AxisZ:
		e := cmplx.Exp(complex(0, -angle/2))
		return newGate("RZ", 1, []complex128{
			e, 0,
			0, cmplx.Conj(e),
		}), nil
	}
	return nil, fmt.Errorf("%w: rotation axis %q (want x, y or z)", ErrInvalidArgument, axis)
}

// PhaseGate returns diag(1, e^{iφ}).
func PhaseGate(phase float64) *Gate {
	return newGate("P", 1, []complex128{
		1, 0,
		0, cmplx.Exp(complex(0, phase)),
	})
}

// ControlledU builds the 4×4 block-diagonal controlled version of a
// one-qubit gate: identity in the control-0 block, u in the control-1
// block. u is not checked for unitarity; see Gate.VerifyUnitary.
func ControlledU(u *Gate) (*Gate, error) {
	if u == nil || u.qubits != 1 {
		return nil, fmt.Errorf("%w: controlled-U needs a one-qubit gate", ErrInvalidArgument)
	}
	data := make([]complex128, 16)
	data[0] = 1
	data[5] = 1
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			data[(i+2)*4+(j+2)] = u.At(i, j)
		}
	}
	return newGate("C"+u.name, 2, data), nil
}

// NewGate wraps a caller-supplied matrix as a k-qubit gate. Only the
// shape is checked (row-major data of length 2^k × 2^k); unitarity is
// not verified, matching the legacy custom-gate behavior. Use
// NewUnitaryGate for the strict variant.
func NewGate(name string, qubits int, data []complex128) (*Gate, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("%w: gate arity %d", ErrInvalidArgument, qubits)
	}
	d := 1 << qubits
	if len(data) != d*d {
		return nil, fmt.Errorf("%w: gate %q wants %d matrix elements, got %d", ErrInvalidArgument, name, d*d, len(data))
	}
	cp := make([]complex128, len(data))
	copy(cp, data)
	return newGate(name, qubits, cp), nil
}

// NewUnitaryGate is NewGate plus a unitarity check, failing fast with
// ErrNonUnitaryGate if U†U deviates from the identity.
func NewUnitaryGate(name string, qubits int, data []complex128) (*Gate, error) {
	g, err := NewGate(name, qubits, data)
	if err != nil {
		return nil, err
	}
	if err := g.VerifyUnitary(1e-9); err != nil {
		return nil, err
	}
	return g, nil
}

// VerifyUnitary checks U†U ≈ I within tol. The product is computed
// element by element: mat.CDense carries no arithmetic receivers.
func (g *Gate) VerifyUnitary(tol float64) error {
	d := g.Dim()
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			var p complex128
			for k := 0; k < d; k++ {
				p += cmplx.Conj(g.m.At(k, i)) * g.m.At(k, j)
			}
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(p-want) > tol {
				return fmt.Errorf("%w: %s deviates at (%d,%d)", ErrNonUnitaryGate, g.name, i, j)
			}
		}
	}
	return nil
}

// Kron returns the tensor product a ⊗ b, composing operators in
// left-to-right qubit order.
func Kron(a, b *Gate) *Gate {
	da, db := a.Dim(), b.Dim()
	d := da * db
	out := mat.NewCDense(d, d, nil)
	for i := 0; i < da; i++ {
		for j := 0; j < da; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for k := 0; k < db; k++ {
				for l := 0; l < db; l++ {
					out.Set(i*db+k, j*db+l, aij*b.At(k, l))
				}
			}
		}
	}
	return &Gate{name: a.name + "⊗" + b.name, qubits: a.qubits + b.qubits, m: out}
}

// HadamardN builds H^⊗n by repeated tensor product. n must be ≥ 1.
func HadamardN(n int) *Gate {
	g := Hadamard
	for i := 1; i < n; i++ {
		g = Kron(g, Hadamard)
	}
	return g
}
