package filter

import "gonum.org/v1/gonum/mat"

// Propagator propagates internal state of the system
type Propagator interface {
	// Propagate propagates states x at time step k to the next step adding noise q.
	// Every element of x is treated as an independent state; nil q means no noise.
	Propagate(x mat.Vector, k int, q mat.Vector) (mat.Vector, error)
}

// Observer observes external state (output) of the system
type Observer interface {
	// Observe observes external state of the system adding noise r.
	Observe(x mat.Vector, r mat.Vector) (mat.Vector, error)
}

// Model is a model of dynamical system
type Model interface {
	// Propagator is system propagator
	Propagator
	// Observer is system observer
	Observer
	// Likelihood returns the likelihood of predicted output yHat given the measurement z
	Likelihood(yHat, z float64) float64
}

// Noise is dynamical system noise
type Noise interface {
	// Sample returns n independent samples of the noise
	Sample(n int) mat.Vector
	// Var returns noise variance
	Var() float64
}

// InitCond is initial state condition of the filter
type InitCond interface {
	// State returns initial state
	State() float64
	// Var returns initial state variance
	Var() float64
}

// Estimate is dynamical system filter estimate
type Estimate interface {
	// Val returns estimate value
	Val() mat.Vector
	// Cov returns estimate covariance
	Cov() mat.Symmetric
}

// Filter is a dynamical system filter.
type Filter interface {
	// Predict propagates the filter to time step k
	Predict(k int) error
	// Update corrects the filter using the measurement z
	Update(z float64) (Estimate, error)
}
