package noise

import (
	"fmt"
	"math"

	filter "github.com/marco-hrlic/go-sir"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNegativeVariance is returned when noise is requested with a negative variance.
var ErrNegativeVariance = errors.New("negative noise variance")

// Gaussian is zero mean additive Gaussian noise
type Gaussian struct {
	// v is noise variance
	v float64
	// dist draws the noise samples
	dist distuv.Normal
}

// NewGaussian creates new zero mean Gaussian noise with variance v which draws its samples from src.
// It returns error if v is negative.
func NewGaussian(v float64, src rand.Source) (*Gaussian, error) {
	if v < 0 || math.IsNaN(v) {
		return nil, errors.Wrapf(ErrNegativeVariance, "variance %v", v)
	}

	return &Gaussian{
		v:    v,
		dist: distuv.Normal{
			Mu:    0,
			Sigma: math.Sqrt(v),
			Src:   src,
		},
	}, nil
}

// Sample returns n independent noise samples
func (g *Gaussian) Sample(n int) mat.Vector {
	data := make([]float64, n)
	for i := range data {
		data[i] = g.dist.Rand()
	}

	return mat.NewVecDense(n, data)
}

// Var returns noise variance
func (g *Gaussian) Var() float64 {
	return g.v
}

// String implements the Stringer interface
func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian{Var=%v}", g.v)
}

// Zero is zero noise: it never draws random numbers
type Zero struct{}

// NewZero creates new zero noise and returns it
func NewZero() *Zero {
	return &Zero{}
}

// Sample returns n zero samples
func (z *Zero) Sample(n int) mat.Vector {
	return mat.NewVecDense(n, nil)
}

// Var returns zero
func (z *Zero) Var() float64 {
	return 0
}

// String implements the Stringer interface
func (z *Zero) String() string {
	return "Zero{}"
}

// New returns zero noise when v is 0 and Gaussian noise with variance v otherwise.
// A zero variance therefore consumes nothing from src.
func New(v float64, src rand.Source) (filter.Noise, error) {
	if v == 0 {
		return NewZero(), nil
	}

	g, err := NewGaussian(v, src)
	if err != nil {
		return nil, err
	}

	return g, nil
}
