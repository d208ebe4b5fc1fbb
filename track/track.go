// Package track runs a bootstrap particle filter against a simulated growth model trajectory.
package track

import (
	"context"
	"io/ioutil"
	"time"

	"github.com/marco-hrlic/go-sir/noise"
	"github.com/marco-hrlic/go-sir/particle/bf"
	"github.com/marco-hrlic/go-sir/sim"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Result is the outcome of a tracking run.
// All sequences are indexed by time step and have the same length.
type Result struct {
	// Truth is the simulated ground truth state
	Truth []float64
	// Observations are noisy measurements of the ground truth
	Observations []float64
	// Estimates are the filter state estimates
	Estimates []float64
	// Spread is the variance of the filter particles
	Spread []float64
	// MSE is the mean squared error between Estimates and Truth
	MSE float64
}

// Option configures a run
type Option func(*options)

type options struct {
	logger log.FieldLogger
}

// WithLogger makes the run log its progress to l
func WithLogger(l log.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func discard() log.FieldLogger {
	l := log.New()
	l.Out = ioutil.Discard

	return l
}

// Run simulates cfg.Steps time steps of the growth model and tracks it with a bootstrap filter.
// The ground truth is propagated with the same model and noise but is never weighted or resampled.
// It returns error if cfg is invalid, if ctx is done before the run finishes
// or if the filter particle weights degenerate.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	o := &options{logger: discard()}
	for _, opt := range opts {
		opt(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	src := rand.NewSource(seed)

	logger := o.logger.WithFields(log.Fields{
		"particles": cfg.Particles,
		"steps":     cfg.Steps,
		"seed":      seed,
	})

	model, err := sim.NewGrowth(cfg.MeasurementVar)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}

	// process and measurement noise share the run's random source
	q, err := noise.New(cfg.ProcessVar, src)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}

	r, err := noise.New(cfg.MeasurementVar, src)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}

	res := &Result{
		Truth:        make([]float64, cfg.Steps),
		Observations: make([]float64, cfg.Steps),
		Estimates:    make([]float64, cfg.Steps),
		Spread:       make([]float64, cfg.Steps),
	}

	var x mat.Vector = mat.NewVecDense(1, []float64{cfg.InitialState})
	z, err := model.Observe(x, r.Sample(1))
	if err != nil {
		return nil, errors.Wrap(err, "initial observation failed")
	}

	f, err := bf.New(model, sim.NewInitCond(cfg.InitialState, cfg.InitialSpread), q, r, cfg.Particles, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bootstrap filter")
	}

	est, err := f.Estimate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to estimate initial state")
	}

	res.Truth[0] = x.AtVec(0)
	res.Observations[0] = z.AtVec(0)
	res.Estimates[0] = est.Val().AtVec(0)
	res.Spread[0] = est.Cov().At(0, 0)

	for k := 1; k < cfg.Steps; k++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "run stopped at step %d", k)
		default:
		}

		// ground truth
		x, err = model.Propagate(x, k, q.Sample(1))
		if err != nil {
			return nil, errors.Wrapf(err, "step %d: model propagation failed", k)
		}

		z, err = model.Observe(x, r.Sample(1))
		if err != nil {
			return nil, errors.Wrapf(err, "step %d: model observation failed", k)
		}

		est, err = f.Run(k, z.AtVec(0))
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", k)
		}

		res.Truth[k] = x.AtVec(0)
		res.Observations[k] = z.AtVec(0)
		res.Estimates[k] = est.Val().AtVec(0)
		res.Spread[k] = est.Cov().At(0, 0)

		logger.WithFields(log.Fields{
			"step":     k,
			"truth":    res.Truth[k],
			"measured": res.Observations[k],
			"estimate": res.Estimates[k],
			"spread":   res.Spread[k],
		}).Debug("filter step")
	}

	res.MSE = MSE(res.Estimates, res.Truth)
	logger.WithField("mse", res.MSE).Info("run finished")

	return res, nil
}

// MSE returns the mean squared error between estimates and truth.
// It panics if the slices differ in length.
func MSE(estimates, truth []float64) float64 {
	if len(estimates) == 0 {
		return 0
	}

	diff := make([]float64, len(estimates))
	floats.SubTo(diff, estimates, truth)

	return floats.Dot(diff, diff) / float64(len(diff))
}
