package quantum

import "errors"

// Errors returned by gate construction, application and measurement.
// All failures are detected synchronously at the offending call; nothing
// is retried internally and the caller's state is never touched on error.
var (
	// ErrDimensionMismatch means a gate and the state (or qubit
	// selection) it was applied to disagree in dimension.
	ErrDimensionMismatch = errors.New("quantum: gate and state dimensions disagree")

	// ErrInvalidArgument covers unsupported rotation axes, non-positive
	// shot counts, out-of-range or duplicate target qubits, and
	// malformed custom matrix shapes.
	ErrInvalidArgument = errors.New("quantum: invalid argument")

	// ErrNonUnitaryGate is reported by the opt-in unitarity check when a
	// caller-supplied matrix fails U†U ≈ I.
	ErrNonUnitaryGate = errors.New("quantum: gate matrix is not unitary")
)
