package particle

import (
	filter "github.com/marco-hrlic/go-sir"
	"gonum.org/v1/gonum/mat"
)

// Particle is Particle Filter
type Particle interface {
	// filter.Filter is dynamical system filter
	filter.Filter
	// Resample replaces filter particles with a new equally weighted generation
	Resample() error
	// Particles returns filter particles
	Particles() mat.Vector
	// Weights returns particle weights
	Weights() mat.Vector
}
