package particle

import (
	"testing"

	"github.com/marco-hrlic/go-sir/rnd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func uniform(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

func TestResample(t *testing.T) {
	assert := assert.New(t)

	x := []float64{1, 2, 3}

	out, err := Resample(x, []float64{0.5, 0.5}, rand.NewSource(1))
	assert.Nil(out)
	assert.Equal(ErrDimMismatch, errors.Cause(err))

	out, err = Resample(x, []float64{0.5, 0.6, 0.1}, rand.NewSource(1))
	assert.Nil(out)
	assert.Equal(rnd.ErrBadWeights, errors.Cause(err))

	out, err = Resample(nil, nil, rand.NewSource(1))
	assert.Nil(out)
	assert.Error(err)

	// all mass on one particle
	out, err = Resample(x, []float64{0, 1, 0}, rand.NewSource(1))
	assert.NoError(err)
	assert.Equal([]float64{2, 2, 2}, out)
}

func TestResampleLength(t *testing.T) {
	assert := assert.New(t)

	src := rand.NewSource(5)
	r := rand.New(src)
	for _, n := range []int{1, 2, 7, 100, 500} {
		x := make([]float64, n)
		w := make([]float64, n)
		for i := range x {
			x[i] = float64(i)
			w[i] = r.Float64()
		}
		s, _ := NewWeightedSet(x, w)
		assert.NoError(s.Normalize())

		out, err := Resample(s.States(), s.Weights(), src)
		assert.NoError(err)
		assert.Len(out, n)
	}
}

func TestResampleGrouped(t *testing.T) {
	assert := assert.New(t)

	// distinct states in ascending order: output must be non-decreasing
	n := 50
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	out, err := Resample(x, uniform(n), rand.NewSource(9))
	assert.NoError(err)
	for i := 1; i < len(out); i++ {
		assert.True(out[i-1] <= out[i])
	}
}

func TestResampleMatchesMultinomial(t *testing.T) {
	assert := assert.New(t)

	n := 20
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(10 * i)
	}
	w := uniform(n)

	out, err := Resample(x, w, rand.NewSource(123))
	assert.NoError(err)

	counts, err := rnd.Multinomial(n, w, rand.NewSource(123))
	assert.NoError(err)

	got := make([]int, n)
	for _, v := range out {
		got[int(v)/10]++
	}
	assert.Equal(counts, got)
}

func TestResampleSingle(t *testing.T) {
	assert := assert.New(t)

	s, _ := NewSet([]float64{3.14})
	s.Weigh(func(int, float64) float64 { return 1e-200 })
	assert.NoError(s.Normalize())
	assert.Equal([]float64{1.0}, s.Weights())

	for seed := uint64(0); seed < 10; seed++ {
		assert.NoError(s.Resample(rand.NewSource(seed)))
		assert.Equal([]float64{3.14}, s.States())
		assert.Equal([]float64{1.0}, s.Weights())
	}
}

func TestSetResample(t *testing.T) {
	assert := assert.New(t)

	s, _ := NewWeightedSet([]float64{1, 2, 3, 4}, []float64{0, 0, 0, 1})
	assert.NoError(s.Resample(rand.NewSource(2)))
	assert.Equal([]float64{4, 4, 4, 4}, s.States())
	assert.Equal(uniform(4), s.Weights())
}
