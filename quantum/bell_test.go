package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBellState(t *testing.T) {
	s := CreateBellState()
	inv := complex(1/math.Sqrt2, 0)
	assertStatesEqual(t, []complex128{inv, 0, 0, inv}, s, 1e-12)
	assert.InDelta(t, 1.0, s.Norm(), 1e-12)
}

func TestCreateUniformPair(t *testing.T) {
	s := CreateUniformPair()
	assertStatesEqual(t, []complex128{0.5, 0.5, 0.5, 0.5}, s, 1e-12)
	assert.InDelta(t, 1.0, s.Norm(), 1e-12)
}
