// Package rng is the single injectable randomness source for the engine.
// Every non-deterministic subsystem (match kernel, cup state machine,
// season progression, economy engine) takes a *Source rather than
// reaching for a process-wide generator, so tests can pin a seed and
// reproduce a full sequence (spec §5, §9 "Global RNG").
package rng

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source wraps a math/rand/v2 generator behind the handful of draws the
// engine needs. Nothing in this package or its callers may read
// process-wide randomness implicitly.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a pseudo-random number in [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// IntN returns a pseudo-random number in [0,n).
func (s *Source) IntN(n int) int { return s.r.IntN(n) }

// Bool flips a fair coin.
func (s *Source) Bool() bool { return s.r.IntN(2) == 0 }

// Chance reports true with probability p (p is clamped to [0,1]).
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

// Uniform draws a float64 uniformly from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

// Gaussian draws from a normal distribution with the given mean/stddev,
// via gonum's distuv.Normal seeded from this source.
func (s *Source) Gaussian(mean, stddev float64) float64 {
	if stddev <= 0 {
		return mean
	}
	n := distuv.Normal{Mu: mean, Sigma: stddev, Src: s.r}
	return n.Rand()
}

// TruncatedGaussian draws from Gaussian(mean, stddev) and clamps the
// result into [lo, hi].
func (s *Source) TruncatedGaussian(mean, stddev, lo, hi float64) float64 {
	v := s.Gaussian(mean, stddev)
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Poisson draws a non-negative integer from a Poisson distribution with
// the given mean, using Knuth's algorithm (spec §4.2 step 7): repeatedly
// multiply by uniform draws until the running product drops below
// exp(-mean).
func (s *Source) Poisson(mean float64) int {
	if mean <= 0 {
		return 0
	}
	l := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		k++
		p *= s.r.Float64()
		if p <= l {
			return k - 1
		}
	}
}

// WeightedIndex picks an index in [0, len(weights)) with probability
// proportional to weights[i]. Returns -1 if weights is empty or sums to
// <= 0.
func (s *Source) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	target := s.r.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}
