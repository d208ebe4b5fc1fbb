package track

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// MonteCarloRuns stores the results of repeated tracking runs
type MonteCarloRuns struct {
	// Runs stores the result of every run
	Runs []*Result
	// Seeds stores the seed of every run
	Seeds []uint64
}

// MonteCarlo repeats Run n times. Run i is seeded with cfg.Seed+i,
// or with a time based seed plus i when cfg.Seed is nil.
// It returns error if n is not positive or if any of the runs fails.
func MonteCarlo(ctx context.Context, cfg Config, n int, opts ...Option) (*MonteCarloRuns, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "run count: %d", n)
	}

	base := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		base = *cfg.Seed
	}

	o := &options{logger: discard()}
	for _, opt := range opts {
		opt(o)
	}

	mc := &MonteCarloRuns{
		Runs:  make([]*Result, n),
		Seeds: make([]uint64, n),
	}

	for i := 0; i < n; i++ {
		seed := base + uint64(i)
		res, err := Run(ctx, cfg.WithSeed(seed), opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "run %d", i)
		}
		mc.Runs[i] = res
		mc.Seeds[i] = seed

		o.logger.WithFields(log.Fields{
			"run":  i + 1,
			"of":   n,
			"seed": seed,
			"mse":  res.MSE,
		}).Debug("monte carlo run")
	}

	return mc, nil
}

// MSE returns the mean squared error of every run
func (mc *MonteCarloRuns) MSE() []float64 {
	mse := make([]float64, len(mc.Runs))
	for i, r := range mc.Runs {
		mse[i] = r.MSE
	}

	return mse
}

// MeanMSE returns the mean of the mean squared errors of all runs
func (mc *MonteCarloRuns) MeanMSE() float64 {
	return stat.Mean(mc.MSE(), nil)
}

// StdDevMSE returns the standard deviation of the mean squared errors of all runs
func (mc *MonteCarloRuns) StdDevMSE() float64 {
	return stat.StdDev(mc.MSE(), nil)
}

// Mean returns the mean estimate across all runs at time step k
func (mc *MonteCarloRuns) Mean(k int) float64 {
	est := make([]float64, len(mc.Runs))
	for i, r := range mc.Runs {
		est[i] = r.Estimates[k]
	}

	return stat.Mean(est, nil)
}
