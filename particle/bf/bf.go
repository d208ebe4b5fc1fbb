package bf

import (
	"fmt"

	filter "github.com/marco-hrlic/go-sir"
	"github.com/marco-hrlic/go-sir/estimate"
	"github.com/marco-hrlic/go-sir/noise"
	"github.com/marco-hrlic/go-sir/particle"
	"github.com/marco-hrlic/go-sir/rnd"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// BF is a Bootstrap Filter a.k.a. SIR Particle Filter for scalar state.
// For more information about Bootstrap Filter see:
// https://en.wikipedia.org/wiki/Particle_filter#The_bootstrap_filter
type BF struct {
	// model is bootstrap filter model
	model filter.Model
	// set stores the current particle generation
	set *particle.Set
	// y stores particle outputs
	y []float64
	// q is state noise a.k.a. process noise
	q filter.Noise
	// r is output noise a.k.a. measurement noise
	r filter.Noise
	// src is the source of all random draws made by the filter
	src rand.Source
}

// New creates new Bootstrap Filter (BF) with the following parameters and returns it:
// - m:     system model
// - ic:    initial condition of the filter
// - q:     state noise a.k.a. process noise
// - r:     output noise a.k.a. measurement noise
// - p:     number of filter particles
// - src:   source of random numbers
// The initial particles are drawn from normal distribution centered at ic.State() with variance ic.Var(),
// and observed once with noise r.
// New returns error if non-positive number of particles is given or if the particles fail to be generated.
func New(m filter.Model, ic filter.InitCond, q, r filter.Noise, p int, src rand.Source) (*BF, error) {
	// must have at least one particle; can't be negative
	if p <= 0 {
		return nil, fmt.Errorf("invalid particle count: %d", p)
	}

	if m == nil {
		return nil, fmt.Errorf("invalid model")
	}

	if ic == nil {
		return nil, fmt.Errorf("invalid initial condition")
	}

	if src == nil {
		return nil, fmt.Errorf("invalid random source")
	}

	if q == nil {
		q = noise.NewZero()
	}

	if r == nil {
		r = noise.NewZero()
	}

	// draw particles from the prior
	x, err := rnd.NormalN(ic.State(), ic.Var(), p, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate filter particles")
	}

	set, err := particle.NewSet(x)
	if err != nil {
		return nil, err
	}

	y, err := m.Observe(mat.NewVecDense(p, x), r.Sample(p))
	if err != nil {
		return nil, errors.Wrap(err, "initial particle observation failed")
	}

	return &BF{
		model: m,
		set:   set,
		y:     vecData(y),
		q:     q,
		r:     r,
		src:   src,
	}, nil
}

// Predict propagates filter particles to time step k drawing independent process noise for every particle.
// It returns error if it fails to propagate the particles.
func (b *BF) Predict(k int) error {
	n := b.set.Len()

	xNext, err := b.model.Propagate(mat.NewVecDense(n, b.set.States()), k, b.q.Sample(n))
	if err != nil {
		return errors.Wrap(err, "particle state propagation failed")
	}

	set, err := particle.NewSet(vecData(xNext))
	if err != nil {
		return err
	}
	b.set = set

	return nil
}

// Update weighs filter particles by the likelihood of measurement z and normalizes their weights.
// Particle outputs are observed without noise: measurement noise is already realized in z.
// It returns the weighted mean estimate or error if the weights are degenerate.
func (b *BF) Update(z float64) (filter.Estimate, error) {
	n := b.set.Len()

	yPred, err := b.model.Observe(mat.NewVecDense(n, b.set.States()), nil)
	if err != nil {
		return nil, errors.Wrap(err, "particle state observation failed")
	}
	y := vecData(yPred)

	b.set.Weigh(func(i int, _ float64) float64 {
		return b.model.Likelihood(y[i], z)
	})

	if err := b.set.Normalize(); err != nil {
		return nil, err
	}

	// update filter particle outputs
	b.y = y

	return b.estimate(b.set.WeightedMean())
}

// Resample replaces filter particles with a new equally weighted generation drawn from particle weights.
// It returns error if the particles fail to be resampled.
func (b *BF) Resample() error {
	if err := b.set.Resample(b.src); err != nil {
		return errors.Wrap(err, "failed to resample filter particles")
	}

	return nil
}

// Run runs one step of Bootstrap Filter for time step k and measurement z:
// it predicts, updates and resamples the particles and returns the mean of the resampled particles.
// It returns error if either of the steps fails.
func (b *BF) Run(k int, z float64) (filter.Estimate, error) {
	if err := b.Predict(k); err != nil {
		return nil, err
	}

	if _, err := b.Update(z); err != nil {
		return nil, err
	}

	if err := b.Resample(); err != nil {
		return nil, err
	}

	return b.Estimate()
}

// Estimate returns the unweighted mean of filter particles along with their spread
func (b *BF) Estimate() (filter.Estimate, error) {
	return b.estimate(b.set.Mean())
}

func (b *BF) estimate(x float64) (filter.Estimate, error) {
	cov, err := b.set.Spread()
	if err != nil {
		return nil, err
	}

	est, err := estimate.NewBaseWithCov(mat.NewVecDense(1, []float64{x}), cov)
	if err != nil {
		return nil, err
	}

	return est, nil
}

// Particles returns BF particles
func (b *BF) Particles() mat.Vector {
	return mat.NewVecDense(b.set.Len(), b.set.States())
}

// Weights returns a vector containing BF particle weights
func (b *BF) Weights() mat.Vector {
	return mat.NewVecDense(b.set.Len(), b.set.Weights())
}

// Outputs returns a vector containing the last observed BF particle outputs
func (b *BF) Outputs() mat.Vector {
	data := make([]float64, len(b.y))
	copy(data, b.y)

	return mat.NewVecDense(len(data), data)
}

func vecData(v mat.Vector) []float64 {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}

	return data
}
