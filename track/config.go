package track

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a run is requested with an invalid configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config configures a single tracking run
type Config struct {
	// InitialState is the true initial state of the system
	InitialState float64 `json:"initial_state"`
	// Particles is the number of filter particles
	Particles int `json:"particles"`
	// ProcessVar is process noise variance
	ProcessVar float64 `json:"process_var"`
	// MeasurementVar is measurement noise variance
	MeasurementVar float64 `json:"measurement_var"`
	// InitialSpread is the variance of the prior the initial particles are drawn from
	InitialSpread float64 `json:"initial_spread"`
	// Steps is the number of time steps including the initial one
	Steps int `json:"steps"`
	// Seed seeds the random source; a time based seed is used when nil
	Seed *uint64 `json:"seed,omitempty"`
}

// DefaultConfig returns the reference tracking scenario
func DefaultConfig() Config {
	return Config{
		InitialState:   0.1,
		Particles:      100,
		ProcessVar:     1.0,
		MeasurementVar: 1.0,
		InitialSpread:  2.0,
		Steps:          40,
	}
}

// Validate checks the configuration and returns error describing the first invalid field
func (c Config) Validate() error {
	if math.IsNaN(c.InitialState) || math.IsInf(c.InitialState, 0) {
		return errors.Wrapf(ErrInvalidConfig, "initial state: %v", c.InitialState)
	}

	if c.Particles <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "particle count: %d", c.Particles)
	}

	if c.Steps <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "step count: %d", c.Steps)
	}

	vars := []struct {
		name string
		v    float64
	}{
		{"process noise variance", c.ProcessVar},
		{"measurement noise variance", c.MeasurementVar},
		{"initial spread", c.InitialSpread},
	}

	for _, v := range vars {
		if v.v < 0 || math.IsNaN(v.v) || math.IsInf(v.v, 0) {
			return errors.Wrapf(ErrInvalidConfig, "%s: %v", v.name, v.v)
		}
	}

	return nil
}

// WithSeed returns a copy of c seeded with seed
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}
