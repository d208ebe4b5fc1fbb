// Package rnd draws the random numbers used by the particle filter.
// All draws come from an explicitly passed rand.Source so runs can be reproduced.
package rnd

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// WeightTol is the tolerance per weight allowed when checking that probabilities sum up to 1
const WeightTol = 1e-9

// ErrBadWeights is returned when probabilities are not a valid discrete distribution.
var ErrBadWeights = errors.New("invalid probabilities")

// NormalN draws n independent samples from normal distribution with mean mu and variance v.
// It returns error if v is negative.
func NormalN(mu, v float64, n int, src rand.Source) ([]float64, error) {
	if v < 0 || math.IsNaN(v) {
		return nil, errors.Errorf("invalid variance: %v", v)
	}

	if n <= 0 {
		return nil, errors.Errorf("invalid sample count: %d", n)
	}

	dist := distuv.Normal{
		Mu:    mu,
		Sigma: math.Sqrt(v),
		Src:   src,
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = dist.Rand()
	}

	return x, nil
}

// Multinomial draws replication counts from multinomial distribution with n trials and probabilities p.
// Element i of the returned slice counts how many of the n trials landed on outcome i, so the counts sum up to n.
// It returns error if p is empty, contains negative values or does not sum up to 1 within tolerance.
func Multinomial(n int, p []float64, src rand.Source) ([]int, error) {
	if n < 0 {
		return nil, errors.Errorf("invalid trial count: %d", n)
	}

	if err := checkProbs(p); err != nil {
		return nil, err
	}

	counts := make([]int, len(p))
	if n == 0 {
		return counts, nil
	}

	cat := distuv.NewCategorical(p, src)
	for i := 0; i < n; i++ {
		counts[int(cat.Rand())]++
	}

	return counts, nil
}

func checkProbs(p []float64) error {
	if len(p) == 0 {
		return errors.Wrap(ErrBadWeights, "no probabilities")
	}

	for i, v := range p {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrBadWeights, "probability %d: %v", i, v)
		}
	}

	sum := floats.Sum(p)
	if math.Abs(sum-1) > WeightTol*float64(len(p)) {
		return errors.Wrapf(ErrBadWeights, "probabilities sum up to %v", sum)
	}

	return nil
}
