package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureBellStatistics(t *testing.T) {
	sampler := NewSampler(42)
	result, err := sampler.Measure(CreateBellState(), 10000)
	require.NoError(t, err)

	assert.NotContains(t, result, "01")
	assert.NotContains(t, result, "10")
	assert.InDelta(t, 0.5, result["00"], 0.05)
	assert.InDelta(t, 0.5, result["11"], 0.05)
}

func TestMeasureUniformPairStatistics(t *testing.T) {
	sampler := NewSampler(7)
	result, err := sampler.Measure(CreateUniformPair(), 10000)
	require.NoError(t, err)

	require.Len(t, result, 4)
	for _, label := range []string{"00", "01", "10", "11"} {
		assert.InDelta(t, 0.25, result[label], 0.05, "label %s", label)
	}
}

func TestMeasureBasisStateDeterministic(t *testing.T) {
	s := mustState(t, []complex128{0, 0, 1, 0})
	result, err := s.Measure(500)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"10": 1.0}, result)
}

func TestMeasureOmitsUnobservedLabels(t *testing.T) {
	result, err := NewSampler(1).Measure(CreateBellState(), 10000)
	require.NoError(t, err)
	total := 0.0
	for _, f := range result {
		total += f
	}
	assert.InDelta(t, 1.0, total, 1e-12)
	assert.LessOrEqual(t, len(result), 2)
}

func TestMeasureNonNormalizedState(t *testing.T) {
	// Raw weights are sampled proportionally; no renormalization step
	// touches the state itself.
	s := mustState(t, []complex128{2, 0})
	result, err := s.Measure(100)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"0": 1.0}, result)
	assert.InDelta(t, 4.0, s.Norm(), 1e-12)
}

func TestMeasureInvalidShots(t *testing.T) {
	s := NewStateVector(1)
	for _, shots := range []int{0, -5} {
		_, err := s.Measure(shots)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestMeasureZeroAmplitudeState(t *testing.T) {
	s := mustState(t, []complex128{0, 0})
	_, err := s.Measure(10)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSamplerReproducible(t *testing.T) {
	a, err := NewSampler(99).Measure(CreateBellState(), 1000)
	require.NoError(t, err)
	b, err := NewSampler(99).Measure(CreateBellState(), 1000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
