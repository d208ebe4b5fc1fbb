package sim

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidStep is returned when the model is propagated to a negative time step.
var ErrInvalidStep = errors.New("invalid time step")

// Growth is the univariate nonstationary growth model:
//   x(k) = 0.5*x + 25*x/(1+x^2) + 8*cos(1.2*(k-1)) + q
//   z(k) = x^2/20 + r
// Every element of a state vector is treated as an independent scalar state.
type Growth struct {
	// R is measurement noise variance.
	// Likelihood uses R as the scale of the error distribution.
	R float64
}

// NewGrowth creates new growth model with measurement noise variance r and returns it.
// It returns error if r is negative.
func NewGrowth(r float64) (*Growth, error) {
	if r < 0 || math.IsNaN(r) {
		return nil, errors.Errorf("invalid measurement noise variance: %v", r)
	}

	return &Growth{R: r}, nil
}

// Propagate propagates every state in x to time step k and adds noise q.
// It returns error if k is negative or if q does not match the size of x.
func (g *Growth) Propagate(x mat.Vector, k int, q mat.Vector) (mat.Vector, error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrInvalidStep, "step %d", k)
	}

	if q != nil && q.Len() != x.Len() {
		return nil, errors.Errorf("invalid state noise size: %d", q.Len())
	}

	drive := 8 * math.Cos(1.2*float64(k-1))

	out := mat.NewVecDense(x.Len(), nil)
	for i := 0; i < x.Len(); i++ {
		v := x.AtVec(i)
		next := 0.5*v + 25*v/(1+v*v) + drive
		if q != nil {
			next += q.AtVec(i)
		}
		out.SetVec(i, next)
	}

	return out, nil
}

// Observe observes every state in x and adds noise r.
// It returns error if r does not match the size of x.
func (g *Growth) Observe(x mat.Vector, r mat.Vector) (mat.Vector, error) {
	if r != nil && r.Len() != x.Len() {
		return nil, errors.Errorf("invalid output noise size: %d", r.Len())
	}

	out := mat.NewVecDense(x.Len(), nil)
	for i := 0; i < x.Len(); i++ {
		v := x.AtVec(i)
		y := v * v / 20
		if r != nil {
			y += r.AtVec(i)
		}
		out.SetVec(i, y)
	}

	return out, nil
}

// Likelihood returns the density of normal distribution with mean z and standard deviation R at yHat.
// Note that R (a variance) is used as the standard deviation.
// When R is zero the density degenerates to 1 if yHat equals z and 0 otherwise.
func (g *Growth) Likelihood(yHat, z float64) float64 {
	if g.R == 0 {
		if yHat == z {
			return 1
		}
		return 0
	}

	return distuv.Normal{Mu: z, Sigma: g.R}.Prob(yHat)
}

// Predict propagates a single state x to time step k without noise.
func (g *Growth) Predict(x float64, k int) (float64, error) {
	next, err := g.Propagate(mat.NewVecDense(1, []float64{x}), k, nil)
	if err != nil {
		return 0, err
	}

	return next.AtVec(0), nil
}
