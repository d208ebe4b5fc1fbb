package particle

import (
	"math"

	"github.com/milosgajdos83/matrix"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrDegenerate is returned when particle weights sum up to zero and can not be normalized.
	ErrDegenerate = errors.New("degenerate particle weights")
	// ErrDimMismatch is returned when particle states and weights differ in length.
	ErrDimMismatch = errors.New("particle dimension mismatch")
)

// Set is a generation of weighted particles at a single time step.
type Set struct {
	// x stores particle states
	x []float64
	// w stores particle weights
	w []float64
}

// NewSet creates new particle set from states x with equal weights and returns it.
// It returns error if x is empty.
func NewSet(x []float64) (*Set, error) {
	if len(x) == 0 {
		return nil, errors.New("empty particle set")
	}

	s := &Set{
		x: make([]float64, len(x)),
		w: make([]float64, len(x)),
	}
	copy(s.x, x)
	s.reset()

	return s, nil
}

// NewWeightedSet creates new particle set from states x and weights w and returns it.
// It returns error if x is empty or if x and w differ in length.
func NewWeightedSet(x, w []float64) (*Set, error) {
	if len(x) != len(w) {
		return nil, errors.Wrapf(ErrDimMismatch, "%d states, %d weights", len(x), len(w))
	}

	s, err := NewSet(x)
	if err != nil {
		return nil, err
	}
	copy(s.w, w)

	return s, nil
}

// reset sets all weights to 1/N
func (s *Set) reset() {
	for i := range s.w {
		s.w[i] = 1 / float64(len(s.w))
	}
}

// Len returns the number of particles
func (s *Set) Len() int {
	return len(s.x)
}

// States returns a copy of particle states
func (s *Set) States() []float64 {
	x := make([]float64, len(s.x))
	copy(x, s.x)

	return x
}

// Weights returns a copy of particle weights
func (s *Set) Weights() []float64 {
	w := make([]float64, len(s.w))
	copy(w, s.w)

	return w
}

// Weigh sets the weight of particle i to lik(i, x_i).
func (s *Set) Weigh(lik func(i int, x float64) float64) {
	for i, x := range s.x {
		s.w[i] = lik(i, x)
	}
}

// Normalize scales particle weights so they sum up to 1.
// It returns ErrDegenerate and leaves the weights untouched if they sum up to zero or to a non-finite value.
func (s *Set) Normalize() error {
	sum := floats.Sum(s.w)
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return errors.Wrapf(ErrDegenerate, "weights sum up to %v", sum)
	}

	for i := range s.w {
		s.w[i] /= sum
	}

	return nil
}

// Mean returns the unweighted mean of particle states
func (s *Set) Mean() float64 {
	return stat.Mean(s.x, nil)
}

// WeightedMean returns the mean of particle states weighted by particle weights
func (s *Set) WeightedMean() float64 {
	return stat.Mean(s.x, s.w)
}

// Spread returns the 1x1 covariance of particle states.
// A single particle has zero spread.
func (s *Set) Spread() (mat.Symmetric, error) {
	if len(s.x) < 2 {
		return mat.NewSymDense(1, nil), nil
	}

	cov, err := matrix.Cov(mat.NewDense(1, len(s.x), s.States()), "cols")
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate particle covariance")
	}

	return cov, nil
}
