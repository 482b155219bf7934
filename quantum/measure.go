package quantum

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws measurement outcomes from a state's probability
// distribution. Each Sampler owns an independent random source, so
// concurrent simulations should each construct their own rather than
// share one.
type Sampler struct {
	src rand.Source
}

// NewSampler returns a deterministically seeded Sampler.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{src: rand.NewPCG(seed, seed)}
}

// Measure draws shots independent samples weighted by p_i = |a_i|² and
// returns the empirical frequency per binary basis label. The
// probabilities are used as provided with no renormalization step, so a
// caller-supplied state that is not exactly normalized is sampled in
// proportion to its raw weights. Labels never observed are omitted.
func (sp *Sampler) Measure(s *StateVector, shots int) (map[string]float64, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("%w: shots must be positive, got %d", ErrInvalidArgument, shots)
	}
	probs := s.Probabilities()
	total := 0.0
	for _, p := range probs {
		total += p
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: state has no amplitude to sample", ErrInvalidArgument)
	}

	dist := distuv.NewCategorical(probs, sp.src)
	counts := make([]int, len(probs))
	for i := 0; i < shots; i++ {
		counts[int(dist.Rand())]++
	}

	result := make(map[string]float64)
	for i, c := range counts {
		if c > 0 {
			result[s.Label(i)] = float64(c) / float64(shots)
		}
	}
	return result, nil
}

// Measure samples the state with a fresh time-seeded Sampler. Use a
// Sampler directly when reproducible draws are needed.
func (s *StateVector) Measure(shots int) (map[string]float64, error) {
	return NewSampler(uint64(time.Now().UnixNano())).Measure(s, shots)
}
