package sim

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestNewGrowth(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGrowth(-1.0)
	assert.Nil(g)
	assert.Error(err)

	g, err = NewGrowth(1.0)
	assert.NotNil(g)
	assert.NoError(err)
}

func TestPropagate(t *testing.T) {
	assert := assert.New(t)

	g, _ := NewGrowth(1.0)
	data := []float64{-3.2, 0.0, 0.1, 1.0, 12.5}
	x := mat.NewVecDense(len(data), data)

	// negative time step
	out, err := g.Propagate(x, -1, nil)
	assert.Nil(out)
	assert.Error(err)
	assert.Equal(ErrInvalidStep, errors.Cause(err))

	// invalid noise size
	out, err = g.Propagate(x, 1, mat.NewVecDense(2, nil))
	assert.Nil(out)
	assert.Error(err)

	for _, k := range []int{0, 1, 2, 17} {
		out, err = g.Propagate(x, k, nil)
		assert.NoError(err)
		assert.Equal(len(data), out.Len())
		for i, v := range data {
			want := 0.5*v + 25*v/(1+v*v) + 8*math.Cos(1.2*float64(k-1))
			assert.Equal(want, out.AtVec(i))
		}
	}

	// noise is added elementwise
	q := mat.NewVecDense(len(data), []float64{1, 2, 3, 4, 5})
	noisy, err := g.Propagate(x, 3, q)
	assert.NoError(err)
	clean, _ := g.Propagate(x, 3, nil)
	for i := range data {
		assert.InDelta(clean.AtVec(i)+q.AtVec(i), noisy.AtVec(i), 1e-12)
	}
}

func TestPredict(t *testing.T) {
	assert := assert.New(t)

	g, _ := NewGrowth(1.0)

	x0, k := 0.1, 1
	x, err := g.Predict(x0, k)
	assert.NoError(err)
	assert.Equal(0.5*x0+25*x0/(1+x0*x0)+8*math.Cos(1.2*float64(k-1)), x)

	_, err = g.Predict(0.1, -5)
	assert.Error(err)
}

func TestObserve(t *testing.T) {
	assert := assert.New(t)

	g, _ := NewGrowth(1.0)
	data := []float64{-4.0, 0.0, 0.3, 2.0}
	x := mat.NewVecDense(len(data), data)

	out, err := g.Observe(x, mat.NewVecDense(1, nil))
	assert.Nil(out)
	assert.Error(err)

	out, err = g.Observe(x, nil)
	assert.NoError(err)
	for i, v := range data {
		assert.Equal(v*v/20, out.AtVec(i))
	}

	r := mat.NewVecDense(len(data), []float64{0.5, -0.5, 1, 0})
	out, err = g.Observe(x, r)
	assert.NoError(err)
	for i, v := range data {
		assert.InDelta(v*v/20+r.AtVec(i), out.AtVec(i), 1e-12)
	}
}

func TestLikelihood(t *testing.T) {
	assert := assert.New(t)

	// R is used as the standard deviation
	g, _ := NewGrowth(4.0)
	want := 1 / (4.0 * math.Sqrt(2*math.Pi)) * math.Exp(-0.5*math.Pow((1.0-3.0)/4.0, 2))
	assert.InDelta(want, g.Likelihood(1.0, 3.0), 1e-12)

	// symmetric around the measurement
	assert.InDelta(g.Likelihood(1.0, 3.0), g.Likelihood(5.0, 3.0), 1e-12)
	assert.True(g.Likelihood(3.0, 3.0) > g.Likelihood(1.0, 3.0))

	g, _ = NewGrowth(0.0)
	assert.Equal(1.0, g.Likelihood(2.0, 2.0))
	assert.Equal(0.0, g.Likelihood(2.1, 2.0))
}

func TestInitCond(t *testing.T) {
	assert := assert.New(t)

	ic := NewInitCond(0.1, 2.0)
	assert.Equal(0.1, ic.State())
	assert.Equal(2.0, ic.Var())
}
