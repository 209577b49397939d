// Package rng provides the random source used by the samplers and the
// categorical draw over unnormalized topic weights.
package rng

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrNegativeWeight = errors.New("rng: negative weight")
	ErrDegenerate     = errors.New("rng: weights do not sum to a positive finite value")
	ErrNoWeights      = errors.New("rng: empty weight vector")
)

// Source is the randomness a sampler consumes. *rand.Rand from
// golang.org/x/exp/rand satisfies it; tests inject scripted sources.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Float64 returns a uniform real in [0, 1).
	Float64() float64
}

// New returns a PCG backed source. A zero seed is replaced by the
// current time, the seed actually used is returned alongside.
func New(seed uint64) (Source, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Categorical normalizes weights in place and draws one index from the
// resulting distribution. It is the single trial multinomial draw.
func Categorical(src Source, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, ErrNoWeights
	}
	for k, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return 0, fmt.Errorf("%w: weights[%d] = %g", ErrNegativeWeight, k, w)
		}
	}
	sum := floats.Sum(weights)
	if !(sum > 0) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("%w: sum %g", ErrDegenerate, sum)
	}
	floats.Scale(1/sum, weights)

	u := src.Float64()
	last := 0
	cumsum := 0.0
	for k, p := range weights {
		if p == 0 {
			continue
		}
		last = k
		cumsum += p
		if u < cumsum {
			return k, nil
		}
	}
	// u landed past the rounded total
	return last, nil
}
