package estimate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Base is a basic filter estimate
type Base struct {
	val *mat.VecDense
	cov *mat.SymDense
}

// NewBase creates new Base estimate with value val and zero covariance and returns it.
// It returns error if val is empty.
func NewBase(val mat.Vector) (*Base, error) {
	if val == nil || val.Len() == 0 {
		return nil, fmt.Errorf("invalid estimate value")
	}

	return NewBaseWithCov(val, mat.NewSymDense(val.Len(), nil))
}

// NewBaseWithCov creates new Base estimate with value val and covariance cov and returns it.
// It returns error if the dimensions of val and cov do not match.
func NewBaseWithCov(val mat.Vector, cov mat.Symmetric) (*Base, error) {
	if val == nil || val.Len() == 0 {
		return nil, fmt.Errorf("invalid estimate value")
	}

	if cov.Symmetric() != val.Len() {
		return nil, fmt.Errorf("invalid covariance dimension: %d", cov.Symmetric())
	}

	v := &mat.VecDense{}
	v.CloneVec(val)

	c := mat.NewSymDense(cov.Symmetric(), nil)
	c.CopySym(cov)

	return &Base{
		val: v,
		cov: c,
	}, nil
}

// Val returns estimate value
func (b *Base) Val() mat.Vector {
	v := &mat.VecDense{}
	v.CloneVec(b.val)

	return v
}

// Cov returns estimate covariance
func (b *Base) Cov() mat.Symmetric {
	c := mat.NewSymDense(b.cov.Symmetric(), nil)
	c.CopySym(b.cov)

	return c
}
