package rnd

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func TestNormalN(t *testing.T) {
	assert := assert.New(t)

	x, err := NormalN(0.0, -1.0, 10, rand.NewSource(1))
	assert.Nil(x)
	assert.Error(err)

	x, err = NormalN(0.0, 1.0, 0, rand.NewSource(1))
	assert.Nil(x)
	assert.Error(err)

	x, err = NormalN(5.0, 0.0, 10, rand.NewSource(1))
	assert.NoError(err)
	for i := range x {
		assert.Equal(5.0, x[i])
	}

	x, err = NormalN(3.0, 4.0, 20000, rand.NewSource(7))
	assert.NoError(err)
	assert.Len(x, 20000)
	assert.InDelta(3.0, stat.Mean(x, nil), 0.1)
	assert.InDelta(2.0, stat.StdDev(x, nil), 0.1)
}

func TestMultinomial(t *testing.T) {
	assert := assert.New(t)

	p := []float64{0.1, 0.2, 0.3, 0.4}

	counts, err := Multinomial(100, p, rand.NewSource(3))
	assert.NoError(err)
	assert.Len(counts, len(p))

	total := 0
	for _, c := range counts {
		assert.True(c >= 0)
		total += c
	}
	assert.Equal(100, total)

	again, err := Multinomial(100, p, rand.NewSource(3))
	assert.NoError(err)
	assert.Equal(counts, again)

	// all mass on a single outcome
	counts, err = Multinomial(10, []float64{0, 1, 0}, rand.NewSource(3))
	assert.NoError(err)
	assert.Equal([]int{0, 10, 0}, counts)

	counts, err = Multinomial(0, p, rand.NewSource(3))
	assert.NoError(err)
	assert.Equal([]int{0, 0, 0, 0}, counts)
}

func TestMultinomialErrors(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		n int
		p []float64
	}{
		{10, nil},
		{10, []float64{0.5, 0.6}},
		{10, []float64{-0.5, 1.5}},
		{10, []float64{0, 0, 0}},
		{-1, []float64{1}},
	}

	for _, tc := range testCases {
		counts, err := Multinomial(tc.n, tc.p, rand.NewSource(1))
		assert.Nil(counts)
		assert.Error(err)
	}

	_, err := Multinomial(10, []float64{0.5, 0.6}, rand.NewSource(1))
	assert.Equal(ErrBadWeights, errors.Cause(err))
}
